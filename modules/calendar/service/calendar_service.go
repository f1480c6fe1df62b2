package service

import (
	"context"

	"go-calendar-api/core/errors"
	"go-calendar-api/modules/calendar/dto"
	"go-calendar-api/modules/calendar/entity"
	"go-calendar-api/modules/calendar/repository"

	"github.com/google/uuid"
)

const defaultColor = "#3b82f6"

// CalendarService handles calendar business logic
type CalendarService struct {
	repo repository.CalendarRepositoryInterface
}

// CalendarServiceInterface defines the service contract
type CalendarServiceInterface interface {
	CreateCalendar(ctx context.Context, userID uuid.UUID, req *dto.CreateCalendarRequest) (*dto.CalendarResponse, *errors.AppError)
	GetCalendarByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*dto.CalendarResponse, *errors.AppError)
	GetMyCalendars(ctx context.Context, userID uuid.UUID) ([]dto.CalendarResponse, *errors.AppError)
	UpdateCalendar(ctx context.Context, id uuid.UUID, userID uuid.UUID, req *dto.UpdateCalendarRequest) (*dto.CalendarResponse, *errors.AppError)
	DeleteCalendar(ctx context.Context, id uuid.UUID, userID uuid.UUID) *errors.AppError
}

func NewCalendarService(repo repository.CalendarRepositoryInterface) CalendarServiceInterface {
	return &CalendarService{repo: repo}
}

func (s *CalendarService) CreateCalendar(ctx context.Context, userID uuid.UUID, req *dto.CreateCalendarRequest) (*dto.CalendarResponse, *errors.AppError) {
	if req.Name == "" || len(req.Name) > 100 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Calendar name must be between 1 and 100 characters", nil)
	}

	color := req.Color
	if color == "" {
		color = defaultColor
	}
	isVisible := true
	if req.IsVisible != nil {
		isVisible = *req.IsVisible
	}

	calendar := &entity.Calendar{
		Name:      req.Name,
		Color:     color,
		IsDefault: req.IsDefault,
		IsVisible: isVisible,
		UserID:    userID,
	}
	if req.Description != "" {
		calendar.Description = &req.Description
	}

	created, err := s.repo.CreateCalendar(ctx, calendar)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create calendar", err)
	}

	return dto.ToCalendarResponse(created), nil
}

func (s *CalendarService) GetCalendarByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*dto.CalendarResponse, *errors.AppError) {
	calendar, err := s.repo.GetCalendarByIDAndUserID(ctx, id, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get calendar", err)
	}
	if calendar == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Calendar not found", nil)
	}

	return dto.ToCalendarResponse(calendar), nil
}

func (s *CalendarService) GetMyCalendars(ctx context.Context, userID uuid.UUID) ([]dto.CalendarResponse, *errors.AppError) {
	calendars, err := s.repo.GetCalendarsByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get calendars", err)
	}

	result := make([]dto.CalendarResponse, 0, len(calendars))
	for i := range calendars {
		result = append(result, *dto.ToCalendarResponse(&calendars[i]))
	}
	return result, nil
}

func (s *CalendarService) UpdateCalendar(ctx context.Context, id uuid.UUID, userID uuid.UUID, req *dto.UpdateCalendarRequest) (*dto.CalendarResponse, *errors.AppError) {
	calendar, err := s.repo.GetCalendarByIDAndUserID(ctx, id, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get calendar", err)
	}
	if calendar == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Calendar not found", nil)
	}

	if req.Name != nil {
		calendar.Name = *req.Name
	}
	if req.Description != nil {
		calendar.Description = req.Description
	}
	if req.Color != nil {
		calendar.Color = *req.Color
	}
	if req.IsDefault != nil {
		calendar.IsDefault = *req.IsDefault
	}
	if req.IsVisible != nil {
		calendar.IsVisible = *req.IsVisible
	}

	if err := s.repo.UpdateCalendar(ctx, calendar); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update calendar", err)
	}

	return dto.ToCalendarResponse(calendar), nil
}

func (s *CalendarService) DeleteCalendar(ctx context.Context, id uuid.UUID, userID uuid.UUID) *errors.AppError {
	calendar, err := s.repo.GetCalendarByIDAndUserID(ctx, id, userID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to get calendar", err)
	}
	if calendar == nil {
		return errors.NewAppError(errors.ErrNotFound, "Calendar not found", nil)
	}

	if err := s.repo.DeleteCalendar(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete calendar", err)
	}
	return nil
}
