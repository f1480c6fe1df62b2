package service

import (
	"context"
	"testing"
	"time"

	coreErrors "go-calendar-api/core/errors"
	eventEntity "go-calendar-api/modules/event/entity"
	"go-calendar-api/modules/recurrence/dto"
	"go-calendar-api/modules/recurrence/entity"

	"github.com/google/uuid"
)

type fakeRecurrenceRepo struct {
	rules map[uuid.UUID]*entity.EventRecurrence
}

func newFakeRecurrenceRepo() *fakeRecurrenceRepo {
	return &fakeRecurrenceRepo{rules: make(map[uuid.UUID]*entity.EventRecurrence)}
}

func (f *fakeRecurrenceRepo) CreateRecurrence(_ context.Context, rec *entity.EventRecurrence) (*entity.EventRecurrence, error) {
	stored := *rec
	stored.ID = uuid.New()
	f.rules[stored.ID] = &stored
	return &stored, nil
}

func (f *fakeRecurrenceRepo) GetRecurrenceByID(_ context.Context, id uuid.UUID) (*entity.EventRecurrence, error) {
	r, ok := f.rules[id]
	if !ok {
		return nil, nil
	}
	copied := *r
	return &copied, nil
}

func (f *fakeRecurrenceRepo) GetRecurrenceByEventID(_ context.Context, eventID uuid.UUID) (*entity.EventRecurrence, error) {
	for _, r := range f.rules {
		if r.EventID == eventID {
			copied := *r
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeRecurrenceRepo) UpdateRecurrence(_ context.Context, rec *entity.EventRecurrence) error {
	copied := *rec
	f.rules[rec.ID] = &copied
	return nil
}

func (f *fakeRecurrenceRepo) DeleteRecurrence(_ context.Context, id uuid.UUID) error {
	delete(f.rules, id)
	return nil
}

type fakeEventStore struct {
	events map[uuid.UUID]*eventEntity.Event
}

func (f *fakeEventStore) GetEventByID(_ context.Context, id uuid.UUID) (*eventEntity.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, nil
	}
	return e, nil
}

func (f *fakeEventStore) SetEventRecurring(_ context.Context, id uuid.UUID, recurring bool) error {
	if e, ok := f.events[id]; ok {
		e.IsRecurring = recurring
	}
	return nil
}

type recurrenceFixture struct {
	svc     RecurrenceServiceInterface
	events  *fakeEventStore
	userID  uuid.UUID
	eventID uuid.UUID
}

func newRecurrenceFixture() *recurrenceFixture {
	userID := uuid.New()
	eventID := uuid.New()
	events := &fakeEventStore{events: map[uuid.UUID]*eventEntity.Event{
		eventID: {
			ID:        eventID,
			UserID:    userID,
			StartTime: time.Date(2025, 6, 24, 10, 0, 0, 0, time.UTC),
		},
	}}
	return &recurrenceFixture{
		svc:     NewRecurrenceService(newFakeRecurrenceRepo(), events),
		events:  events,
		userID:  userID,
		eventID: eventID,
	}
}

func TestCreateRecurrence_FlagsEvent(t *testing.T) {
	f := newRecurrenceFixture()

	created, appErr := f.svc.CreateRecurrence(context.Background(), f.eventID, f.userID, &dto.CreateRecurrenceRequest{
		Frequency: "DAILY",
	})
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if created.Interval != 1 {
		t.Errorf("default interval = %d, want 1", created.Interval)
	}
	if !f.events.events[f.eventID].IsRecurring {
		t.Error("event should be flagged recurring after rule creation")
	}
}

func TestCreateRecurrence_OnePerEvent(t *testing.T) {
	f := newRecurrenceFixture()

	req := &dto.CreateRecurrenceRequest{Frequency: "WEEKLY"}
	if _, appErr := f.svc.CreateRecurrence(context.Background(), f.eventID, f.userID, req); appErr != nil {
		t.Fatalf("first create failed: %v", appErr)
	}

	_, appErr := f.svc.CreateRecurrence(context.Background(), f.eventID, f.userID, req)
	if appErr == nil || appErr.Code != coreErrors.ErrAlreadyExists {
		t.Fatalf("expected %s for second rule on same event, got %v", coreErrors.ErrAlreadyExists, appErr)
	}
}

func TestCreateRecurrence_UnknownEvent(t *testing.T) {
	f := newRecurrenceFixture()

	_, appErr := f.svc.CreateRecurrence(context.Background(), uuid.New(), f.userID, &dto.CreateRecurrenceRequest{
		Frequency: "DAILY",
	})
	if appErr == nil || appErr.Code != coreErrors.ErrInvalidReference {
		t.Fatalf("expected %s, got %v", coreErrors.ErrInvalidReference, appErr)
	}
}

func TestCreateRecurrence_InvalidFrequency(t *testing.T) {
	f := newRecurrenceFixture()

	_, appErr := f.svc.CreateRecurrence(context.Background(), f.eventID, f.userID, &dto.CreateRecurrenceRequest{
		Frequency: "HOURLY",
	})
	if appErr == nil || appErr.Code != coreErrors.ErrInvalidInput {
		t.Fatalf("expected %s, got %v", coreErrors.ErrInvalidInput, appErr)
	}
}

func TestCreateRecurrence_ForbiddenForOtherUser(t *testing.T) {
	f := newRecurrenceFixture()

	_, appErr := f.svc.CreateRecurrence(context.Background(), f.eventID, uuid.New(), &dto.CreateRecurrenceRequest{
		Frequency: "DAILY",
	})
	if appErr == nil || appErr.Code != coreErrors.ErrForbidden {
		t.Fatalf("expected %s, got %v", coreErrors.ErrForbidden, appErr)
	}
}

func TestDeleteRecurrence_UnflagsEvent(t *testing.T) {
	f := newRecurrenceFixture()

	created, appErr := f.svc.CreateRecurrence(context.Background(), f.eventID, f.userID, &dto.CreateRecurrenceRequest{
		Frequency: "DAILY",
	})
	if appErr != nil {
		t.Fatalf("setup create failed: %v", appErr)
	}

	if appErr := f.svc.DeleteRecurrence(context.Background(), uuid.MustParse(created.ID), f.userID); appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if f.events.events[f.eventID].IsRecurring {
		t.Error("event should not stay flagged recurring after rule deletion")
	}
}

func TestGetOccurrences_NonRecurringEvent(t *testing.T) {
	f := newRecurrenceFixture()

	result, appErr := f.svc.GetOccurrences(context.Background(), f.eventID, "")
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if len(result.Occurrences) != 1 {
		t.Fatalf("expected the single start time, got %d occurrences", len(result.Occurrences))
	}
}

func TestGetOccurrences_ExpandsRule(t *testing.T) {
	f := newRecurrenceFixture()

	count := 5
	if _, appErr := f.svc.CreateRecurrence(context.Background(), f.eventID, f.userID, &dto.CreateRecurrenceRequest{
		Frequency: "DAILY",
		Count:     &count,
	}); appErr != nil {
		t.Fatalf("setup create failed: %v", appErr)
	}

	result, appErr := f.svc.GetOccurrences(context.Background(), f.eventID, "2025-07-24T00:00:00Z")
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if len(result.Occurrences) != 5 {
		t.Fatalf("expected 5 occurrences, got %d", len(result.Occurrences))
	}
}

func TestGetOccurrences_BadUntil(t *testing.T) {
	f := newRecurrenceFixture()

	_, appErr := f.svc.GetOccurrences(context.Background(), f.eventID, "tomorrow")
	if appErr == nil || appErr.Code != coreErrors.ErrInvalidFormat {
		t.Fatalf("expected %s, got %v", coreErrors.ErrInvalidFormat, appErr)
	}
}
