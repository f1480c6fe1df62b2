package repository

import (
	"context"
	"database/sql"

	"go-calendar-api/core/database"
	"go-calendar-api/core/logger"
	"go-calendar-api/modules/workinghours/entity"

	"github.com/google/uuid"
)

// WorkingHoursRepositoryInterface defines the repository contract
type WorkingHoursRepositoryInterface interface {
	CreateWorkingHours(ctx context.Context, wh *entity.WorkingHours) (*entity.WorkingHours, error)
	GetWorkingHoursByUserID(ctx context.Context, userID uuid.UUID) (*entity.WorkingHours, error)
	UpdateWorkingHours(ctx context.Context, wh *entity.WorkingHours) error
	DeleteWorkingHours(ctx context.Context, id uuid.UUID) error
}

// WorkingHoursRepository handles working-hours database operations
type WorkingHoursRepository struct {
	DB database.Database
}

func NewWorkingHoursRepository(db database.Database) *WorkingHoursRepository {
	return &WorkingHoursRepository{DB: db}
}

const workingHoursColumns = `
	id, user_id,
	monday_start, monday_end, tuesday_start, tuesday_end,
	wednesday_start, wednesday_end, thursday_start, thursday_end,
	friday_start, friday_end, saturday_start, saturday_end,
	sunday_start, sunday_end, created_at, updated_at
`

func (r *WorkingHoursRepository) CreateWorkingHours(ctx context.Context, wh *entity.WorkingHours) (*entity.WorkingHours, error) {
	query := `
		INSERT INTO working_hours (
			user_id,
			monday_start, monday_end, tuesday_start, tuesday_end,
			wednesday_start, wednesday_end, thursday_start, thursday_end,
			friday_start, friday_end, saturday_start, saturday_end,
			sunday_start, sunday_end
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + workingHoursColumns

	var created entity.WorkingHours
	err := r.DB.GetContext(ctx, &created, query,
		wh.UserID,
		wh.MondayStart, wh.MondayEnd, wh.TuesdayStart, wh.TuesdayEnd,
		wh.WednesdayStart, wh.WednesdayEnd, wh.ThursdayStart, wh.ThursdayEnd,
		wh.FridayStart, wh.FridayEnd, wh.SaturdayStart, wh.SaturdayEnd,
		wh.SundayStart, wh.SundayEnd)
	if err != nil {
		logger.Error("WorkingHoursRepository:CreateWorkingHours", "error", err)
		return nil, err
	}

	return &created, nil
}

func (r *WorkingHoursRepository) GetWorkingHoursByUserID(ctx context.Context, userID uuid.UUID) (*entity.WorkingHours, error) {
	query := `SELECT ` + workingHoursColumns + ` FROM working_hours WHERE user_id = $1`

	var wh entity.WorkingHours
	err := r.DB.GetContext(ctx, &wh, query, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("WorkingHoursRepository:GetWorkingHoursByUserID", "error", err)
		return nil, err
	}

	return &wh, nil
}

func (r *WorkingHoursRepository) UpdateWorkingHours(ctx context.Context, wh *entity.WorkingHours) error {
	query := `
		UPDATE working_hours
		SET monday_start = $2, monday_end = $3, tuesday_start = $4, tuesday_end = $5,
		    wednesday_start = $6, wednesday_end = $7, thursday_start = $8, thursday_end = $9,
		    friday_start = $10, friday_end = $11, saturday_start = $12, saturday_end = $13,
		    sunday_start = $14, sunday_end = $15, updated_at = NOW()
		WHERE id = $1
	`

	err := r.DB.ExecContext(ctx, query,
		wh.ID,
		wh.MondayStart, wh.MondayEnd, wh.TuesdayStart, wh.TuesdayEnd,
		wh.WednesdayStart, wh.WednesdayEnd, wh.ThursdayStart, wh.ThursdayEnd,
		wh.FridayStart, wh.FridayEnd, wh.SaturdayStart, wh.SaturdayEnd,
		wh.SundayStart, wh.SundayEnd)
	if err != nil {
		logger.Error("WorkingHoursRepository:UpdateWorkingHours", "error", err)
		return err
	}
	return nil
}

func (r *WorkingHoursRepository) DeleteWorkingHours(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM working_hours WHERE id = $1`
	err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("WorkingHoursRepository:DeleteWorkingHours", "error", err)
		return err
	}
	return nil
}
