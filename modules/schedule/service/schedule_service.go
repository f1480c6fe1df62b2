package service

import (
	"context"

	"go-calendar-api/core/errors"
	"go-calendar-api/modules/schedule/dto"
	"go-calendar-api/modules/schedule/entity"
	"go-calendar-api/modules/schedule/repository"

	"github.com/google/uuid"
)

// ScheduleService manages a user's named schedule labels. Each user holds
// at most one schedule per type; the service-level existence check gives a
// friendly error and the database constraint closes the race.
type ScheduleService struct {
	repo repository.ScheduleRepositoryInterface
}

// ScheduleServiceInterface defines the service contract
type ScheduleServiceInterface interface {
	CreateSchedule(ctx context.Context, userID uuid.UUID, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, *errors.AppError)
	GetMySchedules(ctx context.Context, userID uuid.UUID) ([]dto.ScheduleResponse, *errors.AppError)
	GetScheduleByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*dto.ScheduleResponse, *errors.AppError)
	UpdateSchedule(ctx context.Context, id uuid.UUID, userID uuid.UUID, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, *errors.AppError)
	DeleteSchedule(ctx context.Context, id uuid.UUID, userID uuid.UUID) *errors.AppError
}

func NewScheduleService(repo repository.ScheduleRepositoryInterface) ScheduleServiceInterface {
	return &ScheduleService{repo: repo}
}

func (s *ScheduleService) CreateSchedule(ctx context.Context, userID uuid.UUID, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, *errors.AppError) {
	if req.Name == "" || len(req.Name) > 100 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Name must be between 1 and 100 characters", nil)
	}
	if !entity.IsValidScheduleType(req.Type) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid schedule type", nil)
	}

	existing, err := s.repo.GetScheduleByTypeAndUserID(ctx, entity.ScheduleType(req.Type), userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check schedule", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "Schedule of this type already exists", nil)
	}

	schedule := &entity.Schedule{
		Name:   req.Name,
		Type:   entity.ScheduleType(req.Type),
		UserID: userID,
	}
	if req.Color != "" {
		schedule.Color = &req.Color
	}

	created, err := s.repo.CreateSchedule(ctx, schedule)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create schedule", err)
	}

	return dto.ToScheduleResponse(created), nil
}

func (s *ScheduleService) GetMySchedules(ctx context.Context, userID uuid.UUID) ([]dto.ScheduleResponse, *errors.AppError) {
	schedules, err := s.repo.GetSchedulesByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get schedules", err)
	}

	result := make([]dto.ScheduleResponse, 0, len(schedules))
	for i := range schedules {
		result = append(result, *dto.ToScheduleResponse(&schedules[i]))
	}
	return result, nil
}

func (s *ScheduleService) GetScheduleByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*dto.ScheduleResponse, *errors.AppError) {
	schedule, appErr := s.ownedSchedule(ctx, id, userID)
	if appErr != nil {
		return nil, appErr
	}
	return dto.ToScheduleResponse(schedule), nil
}

func (s *ScheduleService) UpdateSchedule(ctx context.Context, id uuid.UUID, userID uuid.UUID, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, *errors.AppError) {
	schedule, appErr := s.ownedSchedule(ctx, id, userID)
	if appErr != nil {
		return nil, appErr
	}

	if req.Name != nil {
		if *req.Name == "" || len(*req.Name) > 100 {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Name must be between 1 and 100 characters", nil)
		}
		schedule.Name = *req.Name
	}
	if req.Type != nil {
		if !entity.IsValidScheduleType(*req.Type) {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid schedule type", nil)
		}
		newType := entity.ScheduleType(*req.Type)
		if newType != schedule.Type {
			existing, err := s.repo.GetScheduleByTypeAndUserID(ctx, newType, userID)
			if err != nil {
				return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check schedule", err)
			}
			if existing != nil {
				return nil, errors.NewAppError(errors.ErrAlreadyExists, "Schedule of this type already exists", nil)
			}
			schedule.Type = newType
		}
	}
	if req.Color != nil {
		schedule.Color = req.Color
	}

	if err := s.repo.UpdateSchedule(ctx, schedule); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update schedule", err)
	}

	return dto.ToScheduleResponse(schedule), nil
}

func (s *ScheduleService) DeleteSchedule(ctx context.Context, id uuid.UUID, userID uuid.UUID) *errors.AppError {
	if _, appErr := s.ownedSchedule(ctx, id, userID); appErr != nil {
		return appErr
	}

	if err := s.repo.DeleteSchedule(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete schedule", err)
	}
	return nil
}

func (s *ScheduleService) ownedSchedule(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Schedule, *errors.AppError) {
	schedule, err := s.repo.GetScheduleByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get schedule", err)
	}
	if schedule == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Schedule not found", nil)
	}
	if schedule.UserID != userID {
		return nil, errors.NewAppError(errors.ErrForbidden, "Not authorized", nil)
	}
	return schedule, nil
}
