package repository

import (
	"context"
	"database/sql"

	"go-calendar-api/core/database"
	"go-calendar-api/core/logger"
	"go-calendar-api/modules/schedule/entity"

	"github.com/google/uuid"
)

// ScheduleRepositoryInterface defines the repository contract
type ScheduleRepositoryInterface interface {
	CreateSchedule(ctx context.Context, schedule *entity.Schedule) (*entity.Schedule, error)
	GetScheduleByID(ctx context.Context, id uuid.UUID) (*entity.Schedule, error)
	GetScheduleByTypeAndUserID(ctx context.Context, scheduleType entity.ScheduleType, userID uuid.UUID) (*entity.Schedule, error)
	GetSchedulesByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Schedule, error)
	UpdateSchedule(ctx context.Context, schedule *entity.Schedule) error
	DeleteSchedule(ctx context.Context, id uuid.UUID) error
}

// ScheduleRepository handles schedule database operations
type ScheduleRepository struct {
	DB database.Database
}

func NewScheduleRepository(db database.Database) *ScheduleRepository {
	return &ScheduleRepository{DB: db}
}

const scheduleColumns = `
	id, name, type, color, user_id, created_at, updated_at
`

func (r *ScheduleRepository) CreateSchedule(ctx context.Context, schedule *entity.Schedule) (*entity.Schedule, error) {
	query := `
		INSERT INTO schedules (name, type, color, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + scheduleColumns

	var created entity.Schedule
	err := r.DB.GetContext(ctx, &created, query,
		schedule.Name, schedule.Type, schedule.Color, schedule.UserID)
	if err != nil {
		logger.Error("ScheduleRepository:CreateSchedule", "error", err)
		return nil, err
	}

	return &created, nil
}

func (r *ScheduleRepository) GetScheduleByID(ctx context.Context, id uuid.UUID) (*entity.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE id = $1`

	var schedule entity.Schedule
	err := r.DB.GetContext(ctx, &schedule, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ScheduleRepository:GetScheduleByID", "error", err)
		return nil, err
	}

	return &schedule, nil
}

func (r *ScheduleRepository) GetScheduleByTypeAndUserID(ctx context.Context, scheduleType entity.ScheduleType, userID uuid.UUID) (*entity.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE type = $1 AND user_id = $2`

	var schedule entity.Schedule
	err := r.DB.GetContext(ctx, &schedule, query, scheduleType, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ScheduleRepository:GetScheduleByTypeAndUserID", "error", err)
		return nil, err
	}

	return &schedule, nil
}

func (r *ScheduleRepository) GetSchedulesByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE user_id = $1 ORDER BY created_at`

	var schedules []entity.Schedule
	err := r.DB.SelectContext(ctx, &schedules, query, userID)
	if err != nil {
		logger.Error("ScheduleRepository:GetSchedulesByUserID", "error", err)
		return nil, err
	}

	return schedules, nil
}

func (r *ScheduleRepository) UpdateSchedule(ctx context.Context, schedule *entity.Schedule) error {
	query := `
		UPDATE schedules
		SET name = $2, type = $3, color = $4, updated_at = NOW()
		WHERE id = $1
	`

	err := r.DB.ExecContext(ctx, query,
		schedule.ID, schedule.Name, schedule.Type, schedule.Color)
	if err != nil {
		logger.Error("ScheduleRepository:UpdateSchedule", "error", err)
		return err
	}
	return nil
}

func (r *ScheduleRepository) DeleteSchedule(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM schedules WHERE id = $1`
	err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("ScheduleRepository:DeleteSchedule", "error", err)
		return err
	}
	return nil
}
