package repository

import (
	"context"
	"database/sql"

	"go-calendar-api/core/database"
	"go-calendar-api/core/logger"
	"go-calendar-api/modules/event/entity"

	"github.com/google/uuid"
)

// EventRepositoryInterface defines the repository contract
type EventRepositoryInterface interface {
	CreateEvent(ctx context.Context, event *entity.Event) (*entity.Event, error)
	GetEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	GetEventsByUserID(ctx context.Context, userID uuid.UUID, eventType *entity.EventType) ([]entity.Event, error)
	UpdateEvent(ctx context.Context, event *entity.Event) error
	SetEventRecurring(ctx context.Context, id uuid.UUID, recurring bool) error
	DeleteEvent(ctx context.Context, id uuid.UUID) error
}

// EventRepository handles event database operations
type EventRepository struct {
	DB database.Database
}

func NewEventRepository(db database.Database) *EventRepository {
	return &EventRepository{DB: db}
}

const eventColumns = `
	id, title, description, start_time, end_time, all_day, color, location,
	status, type, is_recurring, calendar_id, user_id, created_at, updated_at
`

func (r *EventRepository) CreateEvent(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	query := `
		INSERT INTO events (title, description, start_time, end_time, all_day, color, location,
		                    status, type, is_recurring, calendar_id, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + eventColumns

	var created entity.Event
	err := r.DB.GetContext(ctx, &created, query,
		event.Title, event.Description, event.StartTime, event.EndTime,
		event.AllDay, event.Color, event.Location, event.Status, event.Type,
		event.IsRecurring, event.CalendarID, event.UserID)
	if err != nil {
		logger.Error("EventRepository:CreateEvent", "error", err)
		return nil, err
	}

	return &created, nil
}

func (r *EventRepository) GetEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	var event entity.Event
	err := r.DB.GetContext(ctx, &event, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:GetEventByID", "error", err)
		return nil, err
	}

	return &event, nil
}

// GetEventsByUserID lists a user's events, optionally restricted to one type.
// Filtering happens in the query, never in the caller.
func (r *EventRepository) GetEventsByUserID(ctx context.Context, userID uuid.UUID, eventType *entity.EventType) ([]entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE user_id = $1`
	args := []any{userID}

	if eventType != nil {
		query += ` AND type = $2`
		args = append(args, *eventType)
	}
	query += ` ORDER BY start_time`

	var events []entity.Event
	err := r.DB.SelectContext(ctx, &events, query, args...)
	if err != nil {
		logger.Error("EventRepository:GetEventsByUserID", "error", err)
		return nil, err
	}

	return events, nil
}

func (r *EventRepository) UpdateEvent(ctx context.Context, event *entity.Event) error {
	query := `
		UPDATE events
		SET title = $2, description = $3, start_time = $4, end_time = $5, all_day = $6,
		    color = $7, location = $8, status = $9, type = $10, is_recurring = $11, updated_at = NOW()
		WHERE id = $1
	`

	err := r.DB.ExecContext(ctx, query,
		event.ID, event.Title, event.Description, event.StartTime, event.EndTime,
		event.AllDay, event.Color, event.Location, event.Status, event.Type, event.IsRecurring)
	if err != nil {
		logger.Error("EventRepository:UpdateEvent", "error", err)
		return err
	}
	return nil
}

// SetEventRecurring flips the denormalized recurrence flag on the event row.
func (r *EventRepository) SetEventRecurring(ctx context.Context, id uuid.UUID, recurring bool) error {
	query := `UPDATE events SET is_recurring = $2, updated_at = NOW() WHERE id = $1`
	err := r.DB.ExecContext(ctx, query, id, recurring)
	if err != nil {
		logger.Error("EventRepository:SetEventRecurring", "error", err)
		return err
	}
	return nil
}

func (r *EventRepository) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM events WHERE id = $1`
	err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("EventRepository:DeleteEvent", "error", err)
		return err
	}
	return nil
}
