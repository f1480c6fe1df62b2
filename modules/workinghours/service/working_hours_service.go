package service

import (
	"context"

	"go-calendar-api/core/errors"
	"go-calendar-api/modules/workinghours/dto"
	"go-calendar-api/modules/workinghours/entity"
	"go-calendar-api/modules/workinghours/repository"

	"github.com/google/uuid"
)

// WorkingHoursService manages the single per-user working-hours record.
type WorkingHoursService struct {
	repo repository.WorkingHoursRepositoryInterface
}

// WorkingHoursServiceInterface defines the service contract
type WorkingHoursServiceInterface interface {
	CreateWorkingHours(ctx context.Context, userID uuid.UUID, req *dto.CreateWorkingHoursRequest) (*dto.WorkingHoursResponse, *errors.AppError)
	GetWorkingHours(ctx context.Context, userID uuid.UUID) (*dto.WorkingHoursResponse, *errors.AppError)
	UpdateWorkingHours(ctx context.Context, userID uuid.UUID, req *dto.UpdateWorkingHoursRequest) (*dto.WorkingHoursResponse, *errors.AppError)
	DeleteWorkingHours(ctx context.Context, userID uuid.UUID) *errors.AppError
}

func NewWorkingHoursService(repo repository.WorkingHoursRepositoryInterface) WorkingHoursServiceInterface {
	return &WorkingHoursService{repo: repo}
}

func (s *WorkingHoursService) CreateWorkingHours(ctx context.Context, userID uuid.UUID, req *dto.CreateWorkingHoursRequest) (*dto.WorkingHoursResponse, *errors.AppError) {
	existing, err := s.repo.GetWorkingHoursByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check working hours", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "Working hours already set for this user", nil)
	}

	wh := &entity.WorkingHours{UserID: userID}
	applyRequest(wh, req)

	created, err := s.repo.CreateWorkingHours(ctx, wh)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create working hours", err)
	}

	return dto.ToWorkingHoursResponse(created), nil
}

func (s *WorkingHoursService) GetWorkingHours(ctx context.Context, userID uuid.UUID) (*dto.WorkingHoursResponse, *errors.AppError) {
	wh, err := s.repo.GetWorkingHoursByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get working hours", err)
	}
	if wh == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Working hours not found", nil)
	}

	return dto.ToWorkingHoursResponse(wh), nil
}

// UpdateWorkingHours merges the provided fields over the stored record;
// absent fields keep their current values.
func (s *WorkingHoursService) UpdateWorkingHours(ctx context.Context, userID uuid.UUID, req *dto.UpdateWorkingHoursRequest) (*dto.WorkingHoursResponse, *errors.AppError) {
	wh, err := s.repo.GetWorkingHoursByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get working hours", err)
	}
	if wh == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Working hours not found", nil)
	}

	applyRequest(wh, req)

	if err := s.repo.UpdateWorkingHours(ctx, wh); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update working hours", err)
	}

	return dto.ToWorkingHoursResponse(wh), nil
}

func (s *WorkingHoursService) DeleteWorkingHours(ctx context.Context, userID uuid.UUID) *errors.AppError {
	wh, err := s.repo.GetWorkingHoursByUserID(ctx, userID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to get working hours", err)
	}
	if wh == nil {
		return errors.NewAppError(errors.ErrNotFound, "Working hours not found", nil)
	}

	if err := s.repo.DeleteWorkingHours(ctx, wh.ID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete working hours", err)
	}
	return nil
}

func applyRequest(wh *entity.WorkingHours, req *dto.CreateWorkingHoursRequest) {
	set := func(dst **int, src *int) {
		if src != nil {
			*dst = src
		}
	}

	set(&wh.MondayStart, req.MondayStart)
	set(&wh.MondayEnd, req.MondayEnd)
	set(&wh.TuesdayStart, req.TuesdayStart)
	set(&wh.TuesdayEnd, req.TuesdayEnd)
	set(&wh.WednesdayStart, req.WednesdayStart)
	set(&wh.WednesdayEnd, req.WednesdayEnd)
	set(&wh.ThursdayStart, req.ThursdayStart)
	set(&wh.ThursdayEnd, req.ThursdayEnd)
	set(&wh.FridayStart, req.FridayStart)
	set(&wh.FridayEnd, req.FridayEnd)
	set(&wh.SaturdayStart, req.SaturdayStart)
	set(&wh.SaturdayEnd, req.SaturdayEnd)
	set(&wh.SundayStart, req.SundayStart)
	set(&wh.SundayEnd, req.SundayEnd)
}
