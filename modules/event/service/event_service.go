package service

import (
	"context"
	"time"

	"go-calendar-api/core/errors"
	"go-calendar-api/core/logger"
	attendeeEntity "go-calendar-api/modules/attendee/entity"
	calendarEntity "go-calendar-api/modules/calendar/entity"
	"go-calendar-api/modules/event/dto"
	"go-calendar-api/modules/event/entity"
	"go-calendar-api/modules/event/repository"
	recurrenceEntity "go-calendar-api/modules/recurrence/entity"
	whEntity "go-calendar-api/modules/workinghours/entity"

	"github.com/google/uuid"
)

// CalendarFinder is the ownership check against the calendar store.
type CalendarFinder interface {
	GetCalendarByIDAndUserID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*calendarEntity.Calendar, error)
}

// WorkingHoursFinder loads the owner's working-hours record, if any.
type WorkingHoursFinder interface {
	GetWorkingHoursByUserID(ctx context.Context, userID uuid.UUID) (*whEntity.WorkingHours, error)
}

// RecurrenceFinder loads an event's recurrence rule for eager attachment.
type RecurrenceFinder interface {
	GetRecurrenceByEventID(ctx context.Context, eventID uuid.UUID) (*recurrenceEntity.EventRecurrence, error)
}

// AttendeeFinder loads an event's attendees for eager attachment.
type AttendeeFinder interface {
	GetAttendeesByEventID(ctx context.Context, eventID uuid.UUID) ([]attendeeEntity.EventAttendee, error)
}

// ReminderScheduler registers and cancels event reminders. All calls are
// best-effort from the event service's point of view: a failure is logged
// and never surfaced, since the triggering write has already succeeded.
type ReminderScheduler interface {
	ScheduleEventReminder(ctx context.Context, eventID uuid.UUID) error
	CancelEventReminder(ctx context.Context, eventID uuid.UUID) error
}

// EventService owns the event lifecycle: ownership check, time validation,
// working-hours policy, persistence and the post-write reminder side effect.
type EventService struct {
	repo         repository.EventRepositoryInterface
	calendars    CalendarFinder
	workingHours WorkingHoursFinder
	recurrences  RecurrenceFinder
	attendees    AttendeeFinder
	reminders    ReminderScheduler
}

// EventServiceInterface defines the service contract
type EventServiceInterface interface {
	CreateEvent(ctx context.Context, userID uuid.UUID, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError)
	GetMyEvents(ctx context.Context, userID uuid.UUID, category string) ([]dto.EventResponse, *errors.AppError)
	GetEventByID(ctx context.Context, id uuid.UUID) (*dto.EventResponse, *errors.AppError)
	UpdateEvent(ctx context.Context, id uuid.UUID, userID uuid.UUID, req *dto.UpdateEventRequest) (*dto.EventResponse, *errors.AppError)
	DeleteEvent(ctx context.Context, id uuid.UUID, userID uuid.UUID) *errors.AppError
}

func NewEventService(
	repo repository.EventRepositoryInterface,
	calendars CalendarFinder,
	workingHours WorkingHoursFinder,
	recurrences RecurrenceFinder,
	attendees AttendeeFinder,
	reminders ReminderScheduler,
) EventServiceInterface {
	return &EventService{
		repo:         repo,
		calendars:    calendars,
		workingHours: workingHours,
		recurrences:  recurrences,
		attendees:    attendees,
		reminders:    reminders,
	}
}

// CreateEvent validates and persists a new event, then schedules its
// reminder best-effort.
func (s *EventService) CreateEvent(ctx context.Context, userID uuid.UUID, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError) {
	calendarID, err := uuid.Parse(req.CalendarID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidReference, "Invalid calendar", err)
	}

	calendar, err := s.calendars.GetCalendarByIDAndUserID(ctx, calendarID, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check calendar", err)
	}
	if calendar == nil {
		return nil, errors.NewAppError(errors.ErrInvalidReference, "Invalid calendar", nil)
	}

	if req.Title == "" || len(req.Title) > 100 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Title must be between 1 and 100 characters", nil)
	}

	start, end, appErr := parseTimeRange(req.StartTime, req.EndTime)
	if appErr != nil {
		return nil, appErr
	}

	if appErr := s.checkSchedulingPolicy(ctx, userID, start, end); appErr != nil {
		return nil, appErr
	}

	status := entity.EventStatusConfirmed
	if req.Status != "" {
		if !entity.IsValidEventStatus(req.Status) {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid event status", nil)
		}
		status = entity.EventStatus(req.Status)
	}

	eventType := entity.EventTypeAppointment
	if req.Type != "" {
		if !entity.IsValidEventType(req.Type) {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid event type", nil)
		}
		eventType = entity.EventType(req.Type)
	}

	event := &entity.Event{
		Title:      req.Title,
		StartTime:  start,
		EndTime:    end,
		AllDay:     req.AllDay,
		Status:     status,
		Type:       eventType,
		CalendarID: calendarID,
		UserID:     userID,
	}
	if req.Description != "" {
		event.Description = &req.Description
	}
	if req.Color != "" {
		event.Color = &req.Color
	}
	if req.Location != "" {
		event.Location = &req.Location
	}

	created, err := s.repo.CreateEvent(ctx, event)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create event", err)
	}

	// The event exists at this point; a reminder failure must not undo that.
	if err := s.reminders.ScheduleEventReminder(ctx, created.ID); err != nil {
		logger.Error("EventService:CreateEvent:ScheduleEventReminder",
			"event_id", created.ID.String(), "error", err)
	}

	attendees, _ := s.attendees.GetAttendeesByEventID(ctx, created.ID)
	return dto.ToEventResponse(created, calendar, nil, attendees), nil
}

// GetMyEvents lists the caller's events, optionally filtered by category.
func (s *EventService) GetMyEvents(ctx context.Context, userID uuid.UUID, category string) ([]dto.EventResponse, *errors.AppError) {
	var eventType *entity.EventType
	if category != "" {
		if !entity.IsValidEventType(category) {
			return nil, errors.NewAppError(errors.ErrInvalidCategory, "Unknown event category: "+category, nil)
		}
		t := entity.EventType(category)
		eventType = &t
	}

	events, err := s.repo.GetEventsByUserID(ctx, userID, eventType)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get events", err)
	}

	result := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		result = append(result, *s.attachRelations(ctx, &events[i]))
	}
	return result, nil
}

func (s *EventService) GetEventByID(ctx context.Context, id uuid.UUID) (*dto.EventResponse, *errors.AppError) {
	event, err := s.repo.GetEventByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	return s.attachRelations(ctx, event), nil
}

// UpdateEvent merges the partial request over the stored event and re-runs
// the full scheduling validation on the effective time range.
func (s *EventService) UpdateEvent(ctx context.Context, id uuid.UUID, userID uuid.UUID, req *dto.UpdateEventRequest) (*dto.EventResponse, *errors.AppError) {
	event, err := s.repo.GetEventByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}
	if event.UserID != userID {
		return nil, errors.NewAppError(errors.ErrForbidden, "Not authorized", nil)
	}

	start := event.StartTime
	end := event.EndTime
	if req.StartTime != nil {
		start, err = time.Parse(time.RFC3339, *req.StartTime)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidFormat, "Invalid start time format", err)
		}
	}
	if req.EndTime != nil {
		end, err = time.Parse(time.RFC3339, *req.EndTime)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidFormat, "Invalid end time format", err)
		}
	}

	if appErr := s.checkSchedulingPolicy(ctx, event.UserID, start, end); appErr != nil {
		return nil, appErr
	}

	event.StartTime = start
	event.EndTime = end
	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = req.Description
	}
	if req.AllDay != nil {
		event.AllDay = *req.AllDay
	}
	if req.Color != nil {
		event.Color = req.Color
	}
	if req.Location != nil {
		event.Location = req.Location
	}
	if req.Status != nil {
		if !entity.IsValidEventStatus(*req.Status) {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid event status", nil)
		}
		event.Status = entity.EventStatus(*req.Status)
	}
	if req.Type != nil {
		if !entity.IsValidEventType(*req.Type) {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid event type", nil)
		}
		event.Type = entity.EventType(*req.Type)
	}

	if err := s.repo.UpdateEvent(ctx, event); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update event", err)
	}

	// Reschedule the reminder against the new start time.
	if err := s.reminders.CancelEventReminder(ctx, event.ID); err != nil {
		logger.Error("EventService:UpdateEvent:CancelEventReminder",
			"event_id", event.ID.String(), "error", err)
	}
	if err := s.reminders.ScheduleEventReminder(ctx, event.ID); err != nil {
		logger.Error("EventService:UpdateEvent:ScheduleEventReminder",
			"event_id", event.ID.String(), "error", err)
	}

	return s.attachRelations(ctx, event), nil
}

func (s *EventService) DeleteEvent(ctx context.Context, id uuid.UUID, userID uuid.UUID) *errors.AppError {
	event, err := s.repo.GetEventByID(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}
	if event.UserID != userID {
		return errors.NewAppError(errors.ErrForbidden, "Not authorized", nil)
	}

	if err := s.repo.DeleteEvent(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete event", err)
	}

	if err := s.reminders.CancelEventReminder(ctx, id); err != nil {
		logger.Error("EventService:DeleteEvent:CancelEventReminder",
			"event_id", id.String(), "error", err)
	}
	return nil
}

// checkSchedulingPolicy applies the time-range and working-hours rules to a
// proposed range for the given owner.
func (s *EventService) checkSchedulingPolicy(ctx context.Context, userID uuid.UUID, start, end time.Time) *errors.AppError {
	wh, err := s.workingHours.GetWorkingHoursByUserID(ctx, userID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to get working hours", err)
	}

	var window *whEntity.Window
	if wh != nil {
		window = wh.WindowFor(start.Weekday())
	}

	if !IsValidRange(start, end, window) {
		return errors.NewAppError(errors.ErrOutOfPolicy, "Event time range violates scheduling policy", nil)
	}
	return nil
}

func parseTimeRange(startStr, endStr string) (time.Time, time.Time, *errors.AppError) {
	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrInvalidFormat, "Invalid start time format", err)
	}
	end, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrInvalidFormat, "Invalid end time format", err)
	}
	return start, end, nil
}

// attachRelations builds the eager response shape: calendar, recurrence
// rule and attendee list loaded alongside the event.
func (s *EventService) attachRelations(ctx context.Context, event *entity.Event) *dto.EventResponse {
	calendar, err := s.calendars.GetCalendarByIDAndUserID(ctx, event.CalendarID, event.UserID)
	if err != nil {
		logger.Error("EventService:attachRelations:calendar", "event_id", event.ID.String(), "error", err)
	}
	recurrence, err := s.recurrences.GetRecurrenceByEventID(ctx, event.ID)
	if err != nil {
		logger.Error("EventService:attachRelations:recurrence", "event_id", event.ID.String(), "error", err)
	}
	attendees, err := s.attendees.GetAttendeesByEventID(ctx, event.ID)
	if err != nil {
		logger.Error("EventService:attachRelations:attendees", "event_id", event.ID.String(), "error", err)
	}
	return dto.ToEventResponse(event, calendar, recurrence, attendees)
}
