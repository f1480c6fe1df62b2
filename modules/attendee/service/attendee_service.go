package service

import (
	"context"
	"net/mail"

	"go-calendar-api/core/errors"
	"go-calendar-api/modules/attendee/dto"
	"go-calendar-api/modules/attendee/entity"
	"go-calendar-api/modules/attendee/repository"
	eventEntity "go-calendar-api/modules/event/entity"

	"github.com/google/uuid"
)

// EventFinder resolves the parent event for attendee operations.
type EventFinder interface {
	GetEventByID(ctx context.Context, id uuid.UUID) (*eventEntity.Event, error)
}

// AttendeeService manages an event's invitee list. One email appears at
// most once per event.
type AttendeeService struct {
	repo   repository.AttendeeRepositoryInterface
	events EventFinder
}

// AttendeeServiceInterface defines the service contract
type AttendeeServiceInterface interface {
	AddAttendee(ctx context.Context, eventID uuid.UUID, req *dto.AddAttendeeRequest) (*dto.AttendeeResponse, *errors.AppError)
	GetAttendeesByEventID(ctx context.Context, eventID uuid.UUID) ([]dto.AttendeeResponse, *errors.AppError)
	UpdateAttendee(ctx context.Context, id uuid.UUID, req *dto.UpdateAttendeeRequest) (*dto.AttendeeResponse, *errors.AppError)
	DeleteAttendee(ctx context.Context, id uuid.UUID) *errors.AppError
}

func NewAttendeeService(repo repository.AttendeeRepositoryInterface, events EventFinder) AttendeeServiceInterface {
	return &AttendeeService{repo: repo, events: events}
}

// AddAttendee invites an email address to an existing event.
func (s *AttendeeService) AddAttendee(ctx context.Context, eventID uuid.UUID, req *dto.AddAttendeeRequest) (*dto.AttendeeResponse, *errors.AppError) {
	event, err := s.events.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrInvalidReference, "Invalid event", nil)
	}

	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid email address", err)
	}

	existing, err := s.repo.GetAttendeeByEventAndEmail(ctx, eventID, req.Email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check attendee", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "Attendee already invited to this event", nil)
	}

	attendee := &entity.EventAttendee{
		EventID: eventID,
		Email:   req.Email,
		Status:  entity.AttendeeStatusPending,
		Role:    entity.AttendeeRoleAttendee,
	}
	if req.Name != "" {
		attendee.Name = &req.Name
	}
	if req.Status != "" {
		if !entity.IsValidAttendeeStatus(req.Status) {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid attendee status", nil)
		}
		attendee.Status = entity.AttendeeStatus(req.Status)
	}
	if req.Role != "" {
		if !entity.IsValidAttendeeRole(req.Role) {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid attendee role", nil)
		}
		attendee.Role = entity.AttendeeRole(req.Role)
	}

	created, err := s.repo.CreateAttendee(ctx, attendee)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to add attendee", err)
	}

	return dto.ToAttendeeResponse(created), nil
}

func (s *AttendeeService) GetAttendeesByEventID(ctx context.Context, eventID uuid.UUID) ([]dto.AttendeeResponse, *errors.AppError) {
	event, err := s.events.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	attendees, err := s.repo.GetAttendeesByEventID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get attendees", err)
	}

	result := make([]dto.AttendeeResponse, 0, len(attendees))
	for i := range attendees {
		result = append(result, *dto.ToAttendeeResponse(&attendees[i]))
	}
	return result, nil
}

// UpdateAttendee changes reply state, role, name or email. Moving an
// attendee to a different event is not supported.
func (s *AttendeeService) UpdateAttendee(ctx context.Context, id uuid.UUID, req *dto.UpdateAttendeeRequest) (*dto.AttendeeResponse, *errors.AppError) {
	attendee, err := s.repo.GetAttendeeByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get attendee", err)
	}
	if attendee == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Attendee not found", nil)
	}

	if req.Email != nil {
		if _, err := mail.ParseAddress(*req.Email); err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid email address", err)
		}
		if *req.Email != attendee.Email {
			existing, err := s.repo.GetAttendeeByEventAndEmail(ctx, attendee.EventID, *req.Email)
			if err != nil {
				return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check attendee", err)
			}
			if existing != nil {
				return nil, errors.NewAppError(errors.ErrAlreadyExists, "Attendee already invited to this event", nil)
			}
		}
		attendee.Email = *req.Email
	}
	if req.Name != nil {
		attendee.Name = req.Name
	}
	if req.Status != nil {
		if !entity.IsValidAttendeeStatus(*req.Status) {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid attendee status", nil)
		}
		attendee.Status = entity.AttendeeStatus(*req.Status)
	}
	if req.Role != nil {
		if !entity.IsValidAttendeeRole(*req.Role) {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid attendee role", nil)
		}
		attendee.Role = entity.AttendeeRole(*req.Role)
	}

	if err := s.repo.UpdateAttendee(ctx, attendee); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update attendee", err)
	}

	return dto.ToAttendeeResponse(attendee), nil
}

func (s *AttendeeService) DeleteAttendee(ctx context.Context, id uuid.UUID) *errors.AppError {
	attendee, err := s.repo.GetAttendeeByID(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to get attendee", err)
	}
	if attendee == nil {
		return errors.NewAppError(errors.ErrNotFound, "Attendee not found", nil)
	}

	if err := s.repo.DeleteAttendee(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete attendee", err)
	}
	return nil
}
