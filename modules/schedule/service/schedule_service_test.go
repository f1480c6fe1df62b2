package service

import (
	"context"
	"testing"

	coreErrors "go-calendar-api/core/errors"
	"go-calendar-api/modules/schedule/dto"
	"go-calendar-api/modules/schedule/entity"

	"github.com/google/uuid"
)

type fakeScheduleRepo struct {
	schedules map[uuid.UUID]*entity.Schedule
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{schedules: make(map[uuid.UUID]*entity.Schedule)}
}

func (f *fakeScheduleRepo) CreateSchedule(_ context.Context, schedule *entity.Schedule) (*entity.Schedule, error) {
	stored := *schedule
	stored.ID = uuid.New()
	f.schedules[stored.ID] = &stored
	return &stored, nil
}

func (f *fakeScheduleRepo) GetScheduleByID(_ context.Context, id uuid.UUID) (*entity.Schedule, error) {
	s, ok := f.schedules[id]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (f *fakeScheduleRepo) GetScheduleByTypeAndUserID(_ context.Context, scheduleType entity.ScheduleType, userID uuid.UUID) (*entity.Schedule, error) {
	for _, s := range f.schedules {
		if s.Type == scheduleType && s.UserID == userID {
			copied := *s
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeScheduleRepo) GetSchedulesByUserID(_ context.Context, userID uuid.UUID) ([]entity.Schedule, error) {
	var out []entity.Schedule
	for _, s := range f.schedules {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) UpdateSchedule(_ context.Context, schedule *entity.Schedule) error {
	copied := *schedule
	f.schedules[schedule.ID] = &copied
	return nil
}

func (f *fakeScheduleRepo) DeleteSchedule(_ context.Context, id uuid.UUID) error {
	delete(f.schedules, id)
	return nil
}

func TestCreateSchedule_DuplicateTypePerUserConflicts(t *testing.T) {
	svc := NewScheduleService(newFakeScheduleRepo())
	userA := uuid.New()
	userB := uuid.New()

	req := &dto.CreateScheduleRequest{Name: "Standup", Type: string(entity.ScheduleTypeDailyStandup)}

	if _, appErr := svc.CreateSchedule(context.Background(), userA, req); appErr != nil {
		t.Fatalf("first create failed: %v", appErr)
	}

	_, appErr := svc.CreateSchedule(context.Background(), userA, req)
	if appErr == nil || appErr.Code != coreErrors.ErrAlreadyExists {
		t.Fatalf("expected %s for same type and user, got %v", coreErrors.ErrAlreadyExists, appErr)
	}

	// A different user may hold the same type.
	if _, appErr := svc.CreateSchedule(context.Background(), userB, req); appErr != nil {
		t.Fatalf("different user should succeed, got %v", appErr)
	}
}

func TestCreateSchedule_InvalidType(t *testing.T) {
	svc := NewScheduleService(newFakeScheduleRepo())

	_, appErr := svc.CreateSchedule(context.Background(), uuid.New(), &dto.CreateScheduleRequest{
		Name: "Misc",
		Type: "Coffee Break",
	})
	if appErr == nil || appErr.Code != coreErrors.ErrInvalidInput {
		t.Fatalf("expected %s, got %v", coreErrors.ErrInvalidInput, appErr)
	}
}

func TestUpdateSchedule_TypeChangeChecksUniqueness(t *testing.T) {
	svc := NewScheduleService(newFakeScheduleRepo())
	userID := uuid.New()

	standup, appErr := svc.CreateSchedule(context.Background(), userID, &dto.CreateScheduleRequest{
		Name: "Standup", Type: string(entity.ScheduleTypeDailyStandup),
	})
	if appErr != nil {
		t.Fatalf("setup create failed: %v", appErr)
	}
	if _, appErr := svc.CreateSchedule(context.Background(), userID, &dto.CreateScheduleRequest{
		Name: "Lunch", Type: string(entity.ScheduleTypeLunchBreak),
	}); appErr != nil {
		t.Fatalf("setup create failed: %v", appErr)
	}

	lunch := string(entity.ScheduleTypeLunchBreak)
	_, appErr = svc.UpdateSchedule(context.Background(), uuid.MustParse(standup.ID), userID, &dto.UpdateScheduleRequest{
		Type: &lunch,
	})
	if appErr == nil || appErr.Code != coreErrors.ErrAlreadyExists {
		t.Fatalf("expected %s when changing to an occupied type, got %v", coreErrors.ErrAlreadyExists, appErr)
	}
}

func TestScheduleOwnership(t *testing.T) {
	svc := NewScheduleService(newFakeScheduleRepo())
	owner := uuid.New()

	created, appErr := svc.CreateSchedule(context.Background(), owner, &dto.CreateScheduleRequest{
		Name: "Standup", Type: string(entity.ScheduleTypeDailyStandup),
	})
	if appErr != nil {
		t.Fatalf("setup create failed: %v", appErr)
	}

	id := uuid.MustParse(created.ID)
	if _, appErr := svc.GetScheduleByID(context.Background(), id, uuid.New()); appErr == nil || appErr.Code != coreErrors.ErrForbidden {
		t.Fatalf("expected %s for foreign user, got %v", coreErrors.ErrForbidden, appErr)
	}
	if appErr := svc.DeleteSchedule(context.Background(), id, owner); appErr != nil {
		t.Fatalf("owner delete failed: %v", appErr)
	}
	if _, appErr := svc.GetScheduleByID(context.Background(), id, owner); appErr == nil || appErr.Code != coreErrors.ErrNotFound {
		t.Fatalf("expected %s after delete, got %v", coreErrors.ErrNotFound, appErr)
	}
}
