package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-calendar-api/core/constants"
	"go-calendar-api/core/logger"
	eventEntity "go-calendar-api/modules/event/entity"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// EventFinder resolves events when deriving reminder fire times.
type EventFinder interface {
	GetEventByID(ctx context.Context, id uuid.UUID) (*eventEntity.Event, error)
}

// EventRemindPayload is the task payload for a scheduled reminder. Only the
// event ID travels through the queue; everything else is reloaded at fire
// time so stale data is never delivered.
type EventRemindPayload struct {
	EventID string `json:"event_id"`
}

// ReminderService schedules one durable reminder task per event on the
// asynq delayed queue. The task ID is derived from the event ID, so a
// reminder survives process restarts and can be cancelled or replaced when
// its event is deleted or rescheduled.
type ReminderService struct {
	client    *asynq.Client
	inspector *asynq.Inspector
	events    EventFinder
}

// ReminderServiceInterface defines the service contract
type ReminderServiceInterface interface {
	ScheduleEventReminder(ctx context.Context, eventID uuid.UUID) error
	CancelEventReminder(ctx context.Context, eventID uuid.UUID) error
}

func NewReminderService(client *asynq.Client, inspector *asynq.Inspector, events EventFinder) ReminderServiceInterface {
	return &ReminderService{client: client, inspector: inspector, events: events}
}

// TaskIDForEvent is the stable queue task ID for an event's reminder.
func TaskIDForEvent(eventID uuid.UUID) string {
	return "reminder:" + eventID.String()
}

// ScheduleEventReminder enqueues a reminder to fire a fixed lead before the
// event starts. Events starting too soon for the lead get no reminder.
func (s *ReminderService) ScheduleEventReminder(ctx context.Context, eventID uuid.UUID) error {
	event, err := s.events.GetEventByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event == nil {
		return errors.New("reminder: event not found")
	}

	fireAt := event.StartTime.Add(-constants.ReminderLead)
	if !fireAt.After(time.Now()) {
		logger.Debug("ReminderService:ScheduleEventReminder",
			"event_id", eventID.String(), "reason", "fire time already passed")
		return nil
	}

	payload, err := json.Marshal(EventRemindPayload{EventID: eventID.String()})
	if err != nil {
		return err
	}

	task := asynq.NewTask(constants.TaskTypeEventRemind, payload)
	_, err = s.client.EnqueueContext(ctx, task,
		asynq.ProcessAt(fireAt),
		asynq.TaskID(TaskIDForEvent(eventID)),
		asynq.Queue(constants.ReminderQueue),
	)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		// A reminder for this event is already pending. Replace it so the
		// queue reflects the latest start time.
		if err := s.CancelEventReminder(ctx, eventID); err != nil {
			return err
		}
		_, err = s.client.EnqueueContext(ctx, task,
			asynq.ProcessAt(fireAt),
			asynq.TaskID(TaskIDForEvent(eventID)),
			asynq.Queue(constants.ReminderQueue),
		)
	}
	if err != nil {
		return err
	}

	logger.Info("ReminderService:ScheduleEventReminder",
		"event_id", eventID.String(), "fire_at", fireAt.Format(time.RFC3339))
	return nil
}

// CancelEventReminder removes a pending reminder task. A reminder that was
// never scheduled or already fired is not an error.
func (s *ReminderService) CancelEventReminder(ctx context.Context, eventID uuid.UUID) error {
	err := s.inspector.DeleteTask(constants.ReminderQueue, TaskIDForEvent(eventID))
	if err != nil {
		if errors.Is(err, asynq.ErrTaskNotFound) || errors.Is(err, asynq.ErrQueueNotFound) {
			return nil
		}
		return err
	}
	return nil
}
