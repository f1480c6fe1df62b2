package repository

import (
	"context"
	"database/sql"

	"go-calendar-api/core/database"
	"go-calendar-api/core/logger"
	"go-calendar-api/modules/calendar/entity"

	"github.com/google/uuid"
)

// CalendarRepositoryInterface defines the repository contract
type CalendarRepositoryInterface interface {
	CreateCalendar(ctx context.Context, calendar *entity.Calendar) (*entity.Calendar, error)
	GetCalendarByID(ctx context.Context, id uuid.UUID) (*entity.Calendar, error)
	GetCalendarByIDAndUserID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Calendar, error)
	GetCalendarsByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Calendar, error)
	UpdateCalendar(ctx context.Context, calendar *entity.Calendar) error
	DeleteCalendar(ctx context.Context, id uuid.UUID) error
}

// CalendarRepository handles calendar database operations
type CalendarRepository struct {
	DB database.Database
}

func NewCalendarRepository(db database.Database) *CalendarRepository {
	return &CalendarRepository{DB: db}
}

func (r *CalendarRepository) CreateCalendar(ctx context.Context, calendar *entity.Calendar) (*entity.Calendar, error) {
	query := `
		INSERT INTO calendars (name, description, color, is_default, is_visible, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, description, color, is_default, is_visible, user_id, created_at, updated_at
	`

	var created entity.Calendar
	err := r.DB.GetContext(ctx, &created, query,
		calendar.Name, calendar.Description, calendar.Color,
		calendar.IsDefault, calendar.IsVisible, calendar.UserID)
	if err != nil {
		logger.Error("CalendarRepository:CreateCalendar", "error", err)
		return nil, err
	}

	return &created, nil
}

func (r *CalendarRepository) GetCalendarByID(ctx context.Context, id uuid.UUID) (*entity.Calendar, error) {
	query := `
		SELECT id, name, description, color, is_default, is_visible, user_id, created_at, updated_at
		FROM calendars WHERE id = $1
	`

	var calendar entity.Calendar
	err := r.DB.GetContext(ctx, &calendar, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("CalendarRepository:GetCalendarByID", "error", err)
		return nil, err
	}

	return &calendar, nil
}

// GetCalendarByIDAndUserID is the ownership check used by the event service:
// it only returns a calendar when it belongs to the given user.
func (r *CalendarRepository) GetCalendarByIDAndUserID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Calendar, error) {
	query := `
		SELECT id, name, description, color, is_default, is_visible, user_id, created_at, updated_at
		FROM calendars WHERE id = $1 AND user_id = $2
	`

	var calendar entity.Calendar
	err := r.DB.GetContext(ctx, &calendar, query, id, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("CalendarRepository:GetCalendarByIDAndUserID", "error", err)
		return nil, err
	}

	return &calendar, nil
}

func (r *CalendarRepository) GetCalendarsByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Calendar, error) {
	query := `
		SELECT id, name, description, color, is_default, is_visible, user_id, created_at, updated_at
		FROM calendars
		WHERE user_id = $1
		ORDER BY created_at
	`

	var calendars []entity.Calendar
	err := r.DB.SelectContext(ctx, &calendars, query, userID)
	if err != nil {
		logger.Error("CalendarRepository:GetCalendarsByUserID", "error", err)
		return nil, err
	}

	return calendars, nil
}

func (r *CalendarRepository) UpdateCalendar(ctx context.Context, calendar *entity.Calendar) error {
	query := `
		UPDATE calendars
		SET name = $2, description = $3, color = $4, is_default = $5, is_visible = $6, updated_at = NOW()
		WHERE id = $1
	`

	err := r.DB.ExecContext(ctx, query,
		calendar.ID, calendar.Name, calendar.Description,
		calendar.Color, calendar.IsDefault, calendar.IsVisible)
	if err != nil {
		logger.Error("CalendarRepository:UpdateCalendar", "error", err)
		return err
	}
	return nil
}

func (r *CalendarRepository) DeleteCalendar(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM calendars WHERE id = $1`
	err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("CalendarRepository:DeleteCalendar", "error", err)
		return err
	}
	return nil
}
