package repository

import (
	"context"
	"database/sql"

	"go-calendar-api/core/database"
	"go-calendar-api/core/logger"
	"go-calendar-api/modules/recurrence/entity"

	"github.com/google/uuid"
)

// RecurrenceRepositoryInterface defines the repository contract
type RecurrenceRepositoryInterface interface {
	CreateRecurrence(ctx context.Context, rec *entity.EventRecurrence) (*entity.EventRecurrence, error)
	GetRecurrenceByID(ctx context.Context, id uuid.UUID) (*entity.EventRecurrence, error)
	GetRecurrenceByEventID(ctx context.Context, eventID uuid.UUID) (*entity.EventRecurrence, error)
	UpdateRecurrence(ctx context.Context, rec *entity.EventRecurrence) error
	DeleteRecurrence(ctx context.Context, id uuid.UUID) error
}

// RecurrenceRepository handles recurrence database operations
type RecurrenceRepository struct {
	DB database.Database
}

func NewRecurrenceRepository(db database.Database) *RecurrenceRepository {
	return &RecurrenceRepository{DB: db}
}

const recurrenceColumns = `
	id, event_id, frequency, "interval", days_of_week, end_date, count, created_at, updated_at
`

func (r *RecurrenceRepository) CreateRecurrence(ctx context.Context, rec *entity.EventRecurrence) (*entity.EventRecurrence, error) {
	query := `
		INSERT INTO event_recurrences (event_id, frequency, "interval", days_of_week, end_date, count)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + recurrenceColumns

	var created entity.EventRecurrence
	err := r.DB.GetContext(ctx, &created, query,
		rec.EventID, rec.Frequency, rec.Interval, rec.DaysOfWeek, rec.EndDate, rec.Count)
	if err != nil {
		logger.Error("RecurrenceRepository:CreateRecurrence", "error", err)
		return nil, err
	}

	return &created, nil
}

func (r *RecurrenceRepository) GetRecurrenceByID(ctx context.Context, id uuid.UUID) (*entity.EventRecurrence, error) {
	query := `SELECT ` + recurrenceColumns + ` FROM event_recurrences WHERE id = $1`

	var rec entity.EventRecurrence
	err := r.DB.GetContext(ctx, &rec, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("RecurrenceRepository:GetRecurrenceByID", "error", err)
		return nil, err
	}

	return &rec, nil
}

func (r *RecurrenceRepository) GetRecurrenceByEventID(ctx context.Context, eventID uuid.UUID) (*entity.EventRecurrence, error) {
	query := `SELECT ` + recurrenceColumns + ` FROM event_recurrences WHERE event_id = $1`

	var rec entity.EventRecurrence
	err := r.DB.GetContext(ctx, &rec, query, eventID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("RecurrenceRepository:GetRecurrenceByEventID", "error", err)
		return nil, err
	}

	return &rec, nil
}

func (r *RecurrenceRepository) UpdateRecurrence(ctx context.Context, rec *entity.EventRecurrence) error {
	query := `
		UPDATE event_recurrences
		SET frequency = $2, "interval" = $3, days_of_week = $4, end_date = $5, count = $6, updated_at = NOW()
		WHERE id = $1
	`

	err := r.DB.ExecContext(ctx, query,
		rec.ID, rec.Frequency, rec.Interval, rec.DaysOfWeek, rec.EndDate, rec.Count)
	if err != nil {
		logger.Error("RecurrenceRepository:UpdateRecurrence", "error", err)
		return err
	}
	return nil
}

func (r *RecurrenceRepository) DeleteRecurrence(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM event_recurrences WHERE id = $1`
	err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("RecurrenceRepository:DeleteRecurrence", "error", err)
		return err
	}
	return nil
}
