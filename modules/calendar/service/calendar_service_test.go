package service

import (
	"context"
	"testing"

	coreErrors "go-calendar-api/core/errors"
	"go-calendar-api/modules/calendar/dto"
	"go-calendar-api/modules/calendar/entity"

	"github.com/google/uuid"
)

type fakeCalendarRepo struct {
	calendars map[uuid.UUID]*entity.Calendar
}

func newFakeCalendarRepo() *fakeCalendarRepo {
	return &fakeCalendarRepo{calendars: make(map[uuid.UUID]*entity.Calendar)}
}

func (f *fakeCalendarRepo) CreateCalendar(_ context.Context, calendar *entity.Calendar) (*entity.Calendar, error) {
	stored := *calendar
	stored.ID = uuid.New()
	f.calendars[stored.ID] = &stored
	return &stored, nil
}

func (f *fakeCalendarRepo) GetCalendarByID(_ context.Context, id uuid.UUID) (*entity.Calendar, error) {
	c, ok := f.calendars[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (f *fakeCalendarRepo) GetCalendarByIDAndUserID(_ context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Calendar, error) {
	c, ok := f.calendars[id]
	if !ok || c.UserID != userID {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (f *fakeCalendarRepo) GetCalendarsByUserID(_ context.Context, userID uuid.UUID) ([]entity.Calendar, error) {
	var out []entity.Calendar
	for _, c := range f.calendars {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCalendarRepo) UpdateCalendar(_ context.Context, calendar *entity.Calendar) error {
	copied := *calendar
	f.calendars[calendar.ID] = &copied
	return nil
}

func (f *fakeCalendarRepo) DeleteCalendar(_ context.Context, id uuid.UUID) error {
	delete(f.calendars, id)
	return nil
}

func TestCreateCalendar_Defaults(t *testing.T) {
	svc := NewCalendarService(newFakeCalendarRepo())

	created, appErr := svc.CreateCalendar(context.Background(), uuid.New(), &dto.CreateCalendarRequest{Name: "Work"})
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if created.Color != defaultColor {
		t.Errorf("color = %s, want %s", created.Color, defaultColor)
	}
	if !created.IsVisible {
		t.Error("calendars should be visible by default")
	}
}

func TestCreateCalendar_NameRequired(t *testing.T) {
	svc := NewCalendarService(newFakeCalendarRepo())

	_, appErr := svc.CreateCalendar(context.Background(), uuid.New(), &dto.CreateCalendarRequest{})
	if appErr == nil || appErr.Code != coreErrors.ErrInvalidInput {
		t.Fatalf("expected %s, got %v", coreErrors.ErrInvalidInput, appErr)
	}
}

func TestGetCalendarByID_ScopedToOwner(t *testing.T) {
	svc := NewCalendarService(newFakeCalendarRepo())
	owner := uuid.New()

	created, appErr := svc.CreateCalendar(context.Background(), owner, &dto.CreateCalendarRequest{Name: "Work"})
	if appErr != nil {
		t.Fatalf("setup create failed: %v", appErr)
	}
	id := uuid.MustParse(created.ID)

	if _, appErr := svc.GetCalendarByID(context.Background(), id, owner); appErr != nil {
		t.Fatalf("owner lookup failed: %v", appErr)
	}
	if _, appErr := svc.GetCalendarByID(context.Background(), id, uuid.New()); appErr == nil || appErr.Code != coreErrors.ErrNotFound {
		t.Fatalf("expected %s for foreign user, got %v", coreErrors.ErrNotFound, appErr)
	}
}

func TestUpdateCalendar_PartialMerge(t *testing.T) {
	svc := NewCalendarService(newFakeCalendarRepo())
	owner := uuid.New()

	created, appErr := svc.CreateCalendar(context.Background(), owner, &dto.CreateCalendarRequest{Name: "Work", Color: "#ff0000"})
	if appErr != nil {
		t.Fatalf("setup create failed: %v", appErr)
	}

	newName := "Office"
	updated, appErr := svc.UpdateCalendar(context.Background(), uuid.MustParse(created.ID), owner, &dto.UpdateCalendarRequest{Name: &newName})
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if updated.Name != "Office" {
		t.Errorf("name = %s, want Office", updated.Name)
	}
	if updated.Color != "#ff0000" {
		t.Errorf("color changed on partial update: %s", updated.Color)
	}
}
