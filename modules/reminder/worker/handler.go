package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-calendar-api/core/logger"
	"go-calendar-api/core/mailer"
	attendeeEntity "go-calendar-api/modules/attendee/entity"
	authEntity "go-calendar-api/modules/auth/entity"
	eventEntity "go-calendar-api/modules/event/entity"
	"go-calendar-api/modules/reminder/service"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// EventFinder loads the event a reminder refers to.
type EventFinder interface {
	GetEventByID(ctx context.Context, id uuid.UUID) (*eventEntity.Event, error)
}

// AttendeeFinder loads the event's invitees for the recipient list.
type AttendeeFinder interface {
	GetAttendeesByEventID(ctx context.Context, eventID uuid.UUID) ([]attendeeEntity.EventAttendee, error)
}

// UserFinder loads the event owner for their email and timezone.
type UserFinder interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*authEntity.User, error)
}

// Worker consumes reminder tasks and delivers the notification email. All
// event data is reloaded at fire time; a reminder whose event has since
// been deleted is dropped without error. Delivery failures are logged and
// swallowed, never retried into a user-visible failure.
type Worker struct {
	events    EventFinder
	attendees AttendeeFinder
	users     UserFinder
	mail      mailer.Mailer
}

func NewWorker(events EventFinder, attendees AttendeeFinder, users UserFinder, mail mailer.Mailer) *Worker {
	return &Worker{events: events, attendees: attendees, users: users, mail: mail}
}

// Register wires the worker's handlers onto the task mux.
func (w *Worker) Register(mux *asynq.ServeMux, taskType string) {
	mux.HandleFunc(taskType, w.HandleEventRemind)
}

// HandleEventRemind processes one fired reminder task.
func (w *Worker) HandleEventRemind(ctx context.Context, task *asynq.Task) error {
	var payload service.EventRemindPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Error("ReminderWorker:HandleEventRemind", "reason", "bad payload", "error", err)
		return nil
	}

	eventID, err := uuid.Parse(payload.EventID)
	if err != nil {
		logger.Error("ReminderWorker:HandleEventRemind", "reason", "bad event id", "error", err)
		return nil
	}

	event, err := w.events.GetEventByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event == nil {
		logger.Info("ReminderWorker:HandleEventRemind",
			"event_id", eventID.String(), "reason", "event deleted, dropping reminder")
		return nil
	}

	owner, err := w.users.GetUserByID(ctx, event.UserID)
	if err != nil {
		return err
	}
	if owner == nil {
		logger.Info("ReminderWorker:HandleEventRemind",
			"event_id", eventID.String(), "reason", "owner deleted, dropping reminder")
		return nil
	}

	recipients := []string{owner.Email}
	attendees, err := w.attendees.GetAttendeesByEventID(ctx, eventID)
	if err != nil {
		logger.Error("ReminderWorker:HandleEventRemind",
			"event_id", eventID.String(), "error", err)
	}
	for _, a := range attendees {
		if a.Email != owner.Email {
			recipients = append(recipients, a.Email)
		}
	}

	subject, body := renderReminder(event, owner.Timezone)
	if err := w.mail.Send(recipients, subject, body); err != nil {
		logger.Error("ReminderWorker:HandleEventRemind",
			"event_id", eventID.String(), "error", err)
	}
	return nil
}

// renderReminder formats the notification in the owner's timezone. An
// unknown timezone falls back to UTC rather than failing delivery.
func renderReminder(event *eventEntity.Event, timezone string) (subject, body string) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}

	start := event.StartTime.In(loc)
	end := event.EndTime.In(loc)

	subject = fmt.Sprintf("Reminder: %s at %s", event.Title, start.Format("15:04"))
	body = fmt.Sprintf(
		"<p>Your event <strong>%s</strong> starts at %s and ends at %s.</p>",
		event.Title,
		start.Format("Mon, 02 Jan 2006 15:04 MST"),
		end.Format("Mon, 02 Jan 2006 15:04 MST"),
	)
	if event.Location != nil && *event.Location != "" {
		body += fmt.Sprintf("<p>Location: %s</p>", *event.Location)
	}
	return subject, body
}
