package repository

import (
	"context"
	"database/sql"

	"go-calendar-api/core/database"
	"go-calendar-api/core/logger"
	"go-calendar-api/modules/attendee/entity"

	"github.com/google/uuid"
)

// AttendeeRepositoryInterface defines the repository contract
type AttendeeRepositoryInterface interface {
	CreateAttendee(ctx context.Context, attendee *entity.EventAttendee) (*entity.EventAttendee, error)
	GetAttendeeByID(ctx context.Context, id uuid.UUID) (*entity.EventAttendee, error)
	GetAttendeeByEventAndEmail(ctx context.Context, eventID uuid.UUID, email string) (*entity.EventAttendee, error)
	GetAttendeesByEventID(ctx context.Context, eventID uuid.UUID) ([]entity.EventAttendee, error)
	UpdateAttendee(ctx context.Context, attendee *entity.EventAttendee) error
	DeleteAttendee(ctx context.Context, id uuid.UUID) error
}

// AttendeeRepository handles attendee database operations
type AttendeeRepository struct {
	DB database.Database
}

func NewAttendeeRepository(db database.Database) *AttendeeRepository {
	return &AttendeeRepository{DB: db}
}

const attendeeColumns = `
	id, event_id, email, name, status, role, created_at, updated_at
`

func (r *AttendeeRepository) CreateAttendee(ctx context.Context, attendee *entity.EventAttendee) (*entity.EventAttendee, error) {
	query := `
		INSERT INTO event_attendees (event_id, email, name, status, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + attendeeColumns

	var created entity.EventAttendee
	err := r.DB.GetContext(ctx, &created, query,
		attendee.EventID, attendee.Email, attendee.Name, attendee.Status, attendee.Role)
	if err != nil {
		logger.Error("AttendeeRepository:CreateAttendee", "error", err)
		return nil, err
	}

	return &created, nil
}

func (r *AttendeeRepository) GetAttendeeByID(ctx context.Context, id uuid.UUID) (*entity.EventAttendee, error) {
	query := `SELECT ` + attendeeColumns + ` FROM event_attendees WHERE id = $1`

	var attendee entity.EventAttendee
	err := r.DB.GetContext(ctx, &attendee, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AttendeeRepository:GetAttendeeByID", "error", err)
		return nil, err
	}

	return &attendee, nil
}

func (r *AttendeeRepository) GetAttendeeByEventAndEmail(ctx context.Context, eventID uuid.UUID, email string) (*entity.EventAttendee, error) {
	query := `SELECT ` + attendeeColumns + ` FROM event_attendees WHERE event_id = $1 AND email = $2`

	var attendee entity.EventAttendee
	err := r.DB.GetContext(ctx, &attendee, query, eventID, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AttendeeRepository:GetAttendeeByEventAndEmail", "error", err)
		return nil, err
	}

	return &attendee, nil
}

func (r *AttendeeRepository) GetAttendeesByEventID(ctx context.Context, eventID uuid.UUID) ([]entity.EventAttendee, error) {
	query := `SELECT ` + attendeeColumns + ` FROM event_attendees WHERE event_id = $1 ORDER BY created_at`

	var attendees []entity.EventAttendee
	err := r.DB.SelectContext(ctx, &attendees, query, eventID)
	if err != nil {
		logger.Error("AttendeeRepository:GetAttendeesByEventID", "error", err)
		return nil, err
	}

	return attendees, nil
}

func (r *AttendeeRepository) UpdateAttendee(ctx context.Context, attendee *entity.EventAttendee) error {
	query := `
		UPDATE event_attendees
		SET email = $2, name = $3, status = $4, role = $5, updated_at = NOW()
		WHERE id = $1
	`

	err := r.DB.ExecContext(ctx, query,
		attendee.ID, attendee.Email, attendee.Name, attendee.Status, attendee.Role)
	if err != nil {
		logger.Error("AttendeeRepository:UpdateAttendee", "error", err)
		return err
	}
	return nil
}

func (r *AttendeeRepository) DeleteAttendee(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM event_attendees WHERE id = $1`
	err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("AttendeeRepository:DeleteAttendee", "error", err)
		return err
	}
	return nil
}
