package service

import (
	"context"
	"time"

	"go-calendar-api/core/errors"
	eventEntity "go-calendar-api/modules/event/entity"
	"go-calendar-api/modules/recurrence/dto"
	"go-calendar-api/modules/recurrence/entity"
	"go-calendar-api/modules/recurrence/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// defaultExpansionWindow bounds an occurrences query when the caller gives
// no explicit horizon.
const defaultExpansionWindow = 365 * 24 * time.Hour

// EventFinder is the slice of the event store the recurrence service needs:
// rule ownership goes through the parent event, and attaching or removing a
// rule keeps the event's recurrence flag in sync.
type EventFinder interface {
	GetEventByID(ctx context.Context, id uuid.UUID) (*eventEntity.Event, error)
	SetEventRecurring(ctx context.Context, id uuid.UUID, recurring bool) error
}

// RecurrenceService manages the one-per-event recurrence rules and their
// expansion into concrete occurrences.
type RecurrenceService struct {
	repo   repository.RecurrenceRepositoryInterface
	events EventFinder
}

// RecurrenceServiceInterface defines the service contract
type RecurrenceServiceInterface interface {
	CreateRecurrence(ctx context.Context, eventID uuid.UUID, userID uuid.UUID, req *dto.CreateRecurrenceRequest) (*dto.RecurrenceResponse, *errors.AppError)
	GetRecurrenceByEventID(ctx context.Context, eventID uuid.UUID) (*dto.RecurrenceResponse, *errors.AppError)
	UpdateRecurrence(ctx context.Context, id uuid.UUID, userID uuid.UUID, req *dto.UpdateRecurrenceRequest) (*dto.RecurrenceResponse, *errors.AppError)
	DeleteRecurrence(ctx context.Context, id uuid.UUID, userID uuid.UUID) *errors.AppError
	GetOccurrences(ctx context.Context, eventID uuid.UUID, until string) (*dto.OccurrencesResponse, *errors.AppError)
}

func NewRecurrenceService(repo repository.RecurrenceRepositoryInterface, events EventFinder) RecurrenceServiceInterface {
	return &RecurrenceService{repo: repo, events: events}
}

// CreateRecurrence attaches a rule to an event the caller owns. An event
// carries at most one rule.
func (s *RecurrenceService) CreateRecurrence(ctx context.Context, eventID uuid.UUID, userID uuid.UUID, req *dto.CreateRecurrenceRequest) (*dto.RecurrenceResponse, *errors.AppError) {
	event, appErr := s.ownedEvent(ctx, eventID, userID)
	if appErr != nil {
		if appErr.Code == errors.ErrNotFound {
			return nil, errors.NewAppError(errors.ErrInvalidReference, "Invalid event", nil)
		}
		return nil, appErr
	}

	existing, err := s.repo.GetRecurrenceByEventID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check recurrence", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "Event already has a recurrence rule", nil)
	}

	rec := &entity.EventRecurrence{EventID: event.ID, Interval: 1}
	if appErr := applyCreateRequest(rec, req); appErr != nil {
		return nil, appErr
	}

	created, err := s.repo.CreateRecurrence(ctx, rec)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create recurrence", err)
	}

	if err := s.events.SetEventRecurring(ctx, event.ID, true); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to flag event as recurring", err)
	}

	return dto.ToRecurrenceResponse(created), nil
}

func (s *RecurrenceService) GetRecurrenceByEventID(ctx context.Context, eventID uuid.UUID) (*dto.RecurrenceResponse, *errors.AppError) {
	rec, err := s.repo.GetRecurrenceByEventID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get recurrence", err)
	}
	if rec == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Recurrence not found", nil)
	}
	return dto.ToRecurrenceResponse(rec), nil
}

func (s *RecurrenceService) UpdateRecurrence(ctx context.Context, id uuid.UUID, userID uuid.UUID, req *dto.UpdateRecurrenceRequest) (*dto.RecurrenceResponse, *errors.AppError) {
	rec, err := s.repo.GetRecurrenceByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get recurrence", err)
	}
	if rec == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Recurrence not found", nil)
	}

	if _, appErr := s.ownedEvent(ctx, rec.EventID, userID); appErr != nil {
		return nil, appErr
	}

	if appErr := applyUpdateRequest(rec, req); appErr != nil {
		return nil, appErr
	}

	if err := s.repo.UpdateRecurrence(ctx, rec); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update recurrence", err)
	}

	return dto.ToRecurrenceResponse(rec), nil
}

func (s *RecurrenceService) DeleteRecurrence(ctx context.Context, id uuid.UUID, userID uuid.UUID) *errors.AppError {
	rec, err := s.repo.GetRecurrenceByID(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to get recurrence", err)
	}
	if rec == nil {
		return errors.NewAppError(errors.ErrNotFound, "Recurrence not found", nil)
	}

	if _, appErr := s.ownedEvent(ctx, rec.EventID, userID); appErr != nil {
		return appErr
	}

	if err := s.repo.DeleteRecurrence(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete recurrence", err)
	}

	if err := s.events.SetEventRecurring(ctx, rec.EventID, false); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to unflag recurring event", err)
	}
	return nil
}

// GetOccurrences expands an event's rule from the event's start time up to
// the requested horizon. A non-recurring event yields its single start time.
func (s *RecurrenceService) GetOccurrences(ctx context.Context, eventID uuid.UUID, until string) (*dto.OccurrencesResponse, *errors.AppError) {
	event, err := s.events.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	windowEnd := event.StartTime.Add(defaultExpansionWindow)
	if until != "" {
		windowEnd, err = time.Parse(time.RFC3339, until)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidFormat, "Invalid until time format", err)
		}
	}

	rec, err := s.repo.GetRecurrenceByEventID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get recurrence", err)
	}

	var occurrences []time.Time
	if rec == nil {
		occurrences = []time.Time{}
		if !event.StartTime.After(windowEnd) {
			occurrences = append(occurrences, event.StartTime)
		}
	} else {
		occurrences = Expand(rec, event.StartTime, windowEnd)
		if occurrences == nil {
			occurrences = []time.Time{}
		}
	}

	return &dto.OccurrencesResponse{
		EventID:     eventID.String(),
		Until:       windowEnd,
		Occurrences: occurrences,
	}, nil
}

func (s *RecurrenceService) ownedEvent(ctx context.Context, eventID uuid.UUID, userID uuid.UUID) (*eventEntity.Event, *errors.AppError) {
	event, err := s.events.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}
	if event.UserID != userID {
		return nil, errors.NewAppError(errors.ErrForbidden, "Not authorized", nil)
	}
	return event, nil
}

func applyCreateRequest(rec *entity.EventRecurrence, req *dto.CreateRecurrenceRequest) *errors.AppError {
	if !entity.IsValidFrequency(req.Frequency) {
		return errors.NewAppError(errors.ErrInvalidInput, "Invalid recurrence frequency", nil)
	}
	rec.Frequency = entity.Frequency(req.Frequency)

	if req.Interval != 0 {
		if req.Interval < 1 {
			return errors.NewAppError(errors.ErrInvalidInput, "Interval must be at least 1", nil)
		}
		rec.Interval = req.Interval
	}

	days, appErr := toDaysOfWeek(req.DaysOfWeek)
	if appErr != nil {
		return appErr
	}
	rec.DaysOfWeek = days

	if req.EndDate != nil {
		end, err := time.Parse(time.RFC3339, *req.EndDate)
		if err != nil {
			return errors.NewAppError(errors.ErrInvalidFormat, "Invalid end date format", err)
		}
		rec.EndDate = &end
	}

	if req.Count != nil {
		if *req.Count < 1 {
			return errors.NewAppError(errors.ErrInvalidInput, "Count must be at least 1", nil)
		}
		rec.Count = req.Count
	}
	return nil
}

func applyUpdateRequest(rec *entity.EventRecurrence, req *dto.UpdateRecurrenceRequest) *errors.AppError {
	if req.Frequency != nil {
		if !entity.IsValidFrequency(*req.Frequency) {
			return errors.NewAppError(errors.ErrInvalidInput, "Invalid recurrence frequency", nil)
		}
		rec.Frequency = entity.Frequency(*req.Frequency)
	}
	if req.Interval != nil {
		if *req.Interval < 1 {
			return errors.NewAppError(errors.ErrInvalidInput, "Interval must be at least 1", nil)
		}
		rec.Interval = *req.Interval
	}
	if req.DaysOfWeek != nil {
		days, appErr := toDaysOfWeek(*req.DaysOfWeek)
		if appErr != nil {
			return appErr
		}
		rec.DaysOfWeek = days
	}
	if req.EndDate != nil {
		end, err := time.Parse(time.RFC3339, *req.EndDate)
		if err != nil {
			return errors.NewAppError(errors.ErrInvalidFormat, "Invalid end date format", err)
		}
		rec.EndDate = &end
	}
	if req.Count != nil {
		if *req.Count < 1 {
			return errors.NewAppError(errors.ErrInvalidInput, "Count must be at least 1", nil)
		}
		rec.Count = req.Count
	}
	return nil
}

func toDaysOfWeek(days []int) (pq.Int64Array, *errors.AppError) {
	if len(days) == 0 {
		return nil, nil
	}
	out := make(pq.Int64Array, 0, len(days))
	for _, d := range days {
		if d < 0 || d > 6 {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Days of week must be between 0 and 6", nil)
		}
		out = append(out, int64(d))
	}
	return out, nil
}
