package service

import (
	"context"
	"testing"

	coreErrors "go-calendar-api/core/errors"
	"go-calendar-api/modules/attendee/dto"
	"go-calendar-api/modules/attendee/entity"
	eventEntity "go-calendar-api/modules/event/entity"

	"github.com/google/uuid"
)

type fakeAttendeeRepo struct {
	attendees map[uuid.UUID]*entity.EventAttendee
}

func newFakeAttendeeRepo() *fakeAttendeeRepo {
	return &fakeAttendeeRepo{attendees: make(map[uuid.UUID]*entity.EventAttendee)}
}

func (f *fakeAttendeeRepo) CreateAttendee(_ context.Context, attendee *entity.EventAttendee) (*entity.EventAttendee, error) {
	stored := *attendee
	stored.ID = uuid.New()
	f.attendees[stored.ID] = &stored
	return &stored, nil
}

func (f *fakeAttendeeRepo) GetAttendeeByID(_ context.Context, id uuid.UUID) (*entity.EventAttendee, error) {
	a, ok := f.attendees[id]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (f *fakeAttendeeRepo) GetAttendeeByEventAndEmail(_ context.Context, eventID uuid.UUID, email string) (*entity.EventAttendee, error) {
	for _, a := range f.attendees {
		if a.EventID == eventID && a.Email == email {
			copied := *a
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendeeRepo) GetAttendeesByEventID(_ context.Context, eventID uuid.UUID) ([]entity.EventAttendee, error) {
	var out []entity.EventAttendee
	for _, a := range f.attendees {
		if a.EventID == eventID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAttendeeRepo) UpdateAttendee(_ context.Context, attendee *entity.EventAttendee) error {
	copied := *attendee
	f.attendees[attendee.ID] = &copied
	return nil
}

func (f *fakeAttendeeRepo) DeleteAttendee(_ context.Context, id uuid.UUID) error {
	delete(f.attendees, id)
	return nil
}

type fakeEventFinder struct {
	events map[uuid.UUID]*eventEntity.Event
}

func (f *fakeEventFinder) GetEventByID(_ context.Context, id uuid.UUID) (*eventEntity.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, nil
	}
	return e, nil
}

func newAttendeeFixture() (AttendeeServiceInterface, uuid.UUID) {
	eventID := uuid.New()
	events := &fakeEventFinder{events: map[uuid.UUID]*eventEntity.Event{
		eventID: {ID: eventID, Title: "Planning"},
	}}
	return NewAttendeeService(newFakeAttendeeRepo(), events), eventID
}

func TestAddAttendee_Defaults(t *testing.T) {
	svc, eventID := newAttendeeFixture()

	result, appErr := svc.AddAttendee(context.Background(), eventID, &dto.AddAttendeeRequest{
		Email: "guest@example.com",
	})
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if result.Status != string(entity.AttendeeStatusPending) {
		t.Errorf("default status = %s, want PENDING", result.Status)
	}
	if result.Role != string(entity.AttendeeRoleAttendee) {
		t.Errorf("default role = %s, want ATTENDEE", result.Role)
	}
}

func TestAddAttendee_UnknownEvent(t *testing.T) {
	svc, _ := newAttendeeFixture()

	_, appErr := svc.AddAttendee(context.Background(), uuid.New(), &dto.AddAttendeeRequest{
		Email: "guest@example.com",
	})
	if appErr == nil || appErr.Code != coreErrors.ErrInvalidReference {
		t.Fatalf("expected %s, got %v", coreErrors.ErrInvalidReference, appErr)
	}
}

func TestAddAttendee_DuplicateEmailConflicts(t *testing.T) {
	svc, eventID := newAttendeeFixture()

	req := &dto.AddAttendeeRequest{Email: "guest@example.com"}
	if _, appErr := svc.AddAttendee(context.Background(), eventID, req); appErr != nil {
		t.Fatalf("first invite failed: %v", appErr)
	}

	_, appErr := svc.AddAttendee(context.Background(), eventID, req)
	if appErr == nil || appErr.Code != coreErrors.ErrAlreadyExists {
		t.Fatalf("expected %s on duplicate invite, got %v", coreErrors.ErrAlreadyExists, appErr)
	}
}

func TestAddAttendee_InvalidEmail(t *testing.T) {
	svc, eventID := newAttendeeFixture()

	_, appErr := svc.AddAttendee(context.Background(), eventID, &dto.AddAttendeeRequest{
		Email: "not an email",
	})
	if appErr == nil || appErr.Code != coreErrors.ErrInvalidInput {
		t.Fatalf("expected %s, got %v", coreErrors.ErrInvalidInput, appErr)
	}
}

func TestUpdateAttendee_StatusChange(t *testing.T) {
	svc, eventID := newAttendeeFixture()

	created, appErr := svc.AddAttendee(context.Background(), eventID, &dto.AddAttendeeRequest{
		Email: "guest@example.com",
	})
	if appErr != nil {
		t.Fatalf("setup invite failed: %v", appErr)
	}

	accepted := string(entity.AttendeeStatusAccepted)
	updated, appErr := svc.UpdateAttendee(context.Background(), uuid.MustParse(created.ID), &dto.UpdateAttendeeRequest{
		Status: &accepted,
	})
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if updated.Status != accepted {
		t.Errorf("status = %s, want %s", updated.Status, accepted)
	}
	if updated.EventID != created.EventID {
		t.Error("event binding must not change on update")
	}
}

func TestUpdateAttendee_NotFound(t *testing.T) {
	svc, _ := newAttendeeFixture()

	name := "Someone"
	_, appErr := svc.UpdateAttendee(context.Background(), uuid.New(), &dto.UpdateAttendeeRequest{Name: &name})
	if appErr == nil || appErr.Code != coreErrors.ErrNotFound {
		t.Fatalf("expected %s, got %v", coreErrors.ErrNotFound, appErr)
	}
}

func TestDeleteAttendee(t *testing.T) {
	svc, eventID := newAttendeeFixture()

	created, appErr := svc.AddAttendee(context.Background(), eventID, &dto.AddAttendeeRequest{
		Email: "guest@example.com",
	})
	if appErr != nil {
		t.Fatalf("setup invite failed: %v", appErr)
	}

	id := uuid.MustParse(created.ID)
	if appErr := svc.DeleteAttendee(context.Background(), id); appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if appErr := svc.DeleteAttendee(context.Background(), id); appErr == nil || appErr.Code != coreErrors.ErrNotFound {
		t.Fatalf("expected %s on second delete, got %v", coreErrors.ErrNotFound, appErr)
	}
}
