package service

import (
	"context"
	"time"

	"go-calendar-api/core/cache"
	"go-calendar-api/core/constants"
	"go-calendar-api/core/errors"
	"go-calendar-api/core/logger"
	"go-calendar-api/core/utils"
	"go-calendar-api/modules/auth/dto"
	"go-calendar-api/modules/auth/entity"
	"go-calendar-api/modules/auth/repository"

	"github.com/google/uuid"
)

// AuthService handles registration, login and user account management.
type AuthService struct {
	repo  repository.UserRepositoryInterface
	cache cache.Cache
}

// AuthServiceInterface defines the service contract
type AuthServiceInterface interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, *errors.AppError)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, *errors.AppError)
	Logout(ctx context.Context, token string) *errors.AppError
	GetUserByID(ctx context.Context, id uuid.UUID) (*dto.UserResponse, *errors.AppError)
	UpdateUser(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, *errors.AppError)
	DeleteUser(ctx context.Context, id uuid.UUID) *errors.AppError
}

func NewAuthService(repo repository.UserRepositoryInterface, cache cache.Cache) AuthServiceInterface {
	return &AuthService{repo: repo, cache: cache}
}

// Register creates a new account and issues its first token.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, *errors.AppError) {
	existing, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check existing user", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "Email already in use", nil)
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to hash password", err)
	}

	timezone := req.Timezone
	if timezone == "" {
		timezone = "UTC"
	}

	user := &entity.User{
		Email:    req.Email,
		Name:     req.Name,
		Password: hashed,
		Timezone: timezone,
		Role:     entity.RoleUser,
	}

	created, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create user", err)
	}

	token, err := utils.GenerateToken(created.ID, created.Email, created.Role)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to issue token", err)
	}

	return &dto.AuthResponse{User: dto.ToUserResponse(created), Token: token}, nil
}

// Login verifies credentials and issues a token.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, *errors.AppError) {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get user", err)
	}
	if user == nil || !utils.ComparePassword(user.Password, req.Password) {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid credentials", nil)
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to issue token", err)
	}

	return &dto.AuthResponse{User: dto.ToUserResponse(user), Token: token}, nil
}

// Logout blacklists the presented token until its natural expiry.
func (s *AuthService) Logout(ctx context.Context, token string) *errors.AppError {
	claims, err := utils.ValidateAndParseToken(token)
	if err != nil {
		return errors.NewAppError(errors.ErrUnauthorized, "Invalid token", err)
	}

	ttl := constants.TokenDefaultTTL
	if claims.ExpiresAt != nil {
		if remaining := time.Until(claims.ExpiresAt.Time); remaining > 0 {
			ttl = remaining
		}
	}

	if err := s.cache.BlacklistToken(ctx, token, ttl); err != nil {
		logger.Error("AuthService:Logout:BlacklistToken", "error", err)
		return errors.NewAppError(errors.ErrInternalServer, "Failed to revoke token", err)
	}
	return nil
}

func (s *AuthService) GetUserByID(ctx context.Context, id uuid.UUID) (*dto.UserResponse, *errors.AppError) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get user", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "User not found", nil)
	}
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// UpdateUser applies a partial update. Email and password are immutable here.
func (s *AuthService) UpdateUser(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, *errors.AppError) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get user", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "User not found", nil)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Timezone != nil {
		if _, tzErr := time.LoadLocation(*req.Timezone); tzErr != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid timezone", tzErr)
		}
		user.Timezone = *req.Timezone
	}

	if err := s.repo.UpdateUser(ctx, user); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update user", err)
	}

	resp := dto.ToUserResponse(user)
	return &resp, nil
}

func (s *AuthService) DeleteUser(ctx context.Context, id uuid.UUID) *errors.AppError {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to get user", err)
	}
	if user == nil {
		return errors.NewAppError(errors.ErrNotFound, "User not found", nil)
	}

	if err := s.repo.DeleteUser(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete user", err)
	}
	return nil
}
