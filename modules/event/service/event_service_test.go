package service

import (
	"context"
	"errors"
	"testing"

	coreErrors "go-calendar-api/core/errors"
	attendeeEntity "go-calendar-api/modules/attendee/entity"
	calendarEntity "go-calendar-api/modules/calendar/entity"
	"go-calendar-api/modules/event/dto"
	"go-calendar-api/modules/event/entity"
	recurrenceEntity "go-calendar-api/modules/recurrence/entity"
	whEntity "go-calendar-api/modules/workinghours/entity"

	"github.com/google/uuid"
)

type fakeEventRepo struct {
	events  map[uuid.UUID]*entity.Event
	created *entity.Event
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[uuid.UUID]*entity.Event)}
}

func (f *fakeEventRepo) CreateEvent(_ context.Context, event *entity.Event) (*entity.Event, error) {
	stored := *event
	stored.ID = uuid.New()
	f.events[stored.ID] = &stored
	f.created = &stored
	return &stored, nil
}

func (f *fakeEventRepo) GetEventByID(_ context.Context, id uuid.UUID) (*entity.Event, error) {
	event, ok := f.events[id]
	if !ok {
		return nil, nil
	}
	copied := *event
	return &copied, nil
}

func (f *fakeEventRepo) GetEventsByUserID(_ context.Context, userID uuid.UUID, eventType *entity.EventType) ([]entity.Event, error) {
	var out []entity.Event
	for _, e := range f.events {
		if e.UserID != userID {
			continue
		}
		if eventType != nil && e.Type != *eventType {
			continue
		}
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeEventRepo) UpdateEvent(_ context.Context, event *entity.Event) error {
	copied := *event
	f.events[event.ID] = &copied
	return nil
}

func (f *fakeEventRepo) SetEventRecurring(_ context.Context, id uuid.UUID, recurring bool) error {
	if e, ok := f.events[id]; ok {
		e.IsRecurring = recurring
	}
	return nil
}

func (f *fakeEventRepo) DeleteEvent(_ context.Context, id uuid.UUID) error {
	delete(f.events, id)
	return nil
}

type fakeCalendarFinder struct {
	calendars map[uuid.UUID]*calendarEntity.Calendar
}

func (f *fakeCalendarFinder) GetCalendarByIDAndUserID(_ context.Context, id uuid.UUID, userID uuid.UUID) (*calendarEntity.Calendar, error) {
	cal, ok := f.calendars[id]
	if !ok || cal.UserID != userID {
		return nil, nil
	}
	return cal, nil
}

type fakeWorkingHoursFinder struct {
	record *whEntity.WorkingHours
}

func (f *fakeWorkingHoursFinder) GetWorkingHoursByUserID(_ context.Context, _ uuid.UUID) (*whEntity.WorkingHours, error) {
	return f.record, nil
}

type fakeRecurrenceFinder struct{}

func (f *fakeRecurrenceFinder) GetRecurrenceByEventID(_ context.Context, _ uuid.UUID) (*recurrenceEntity.EventRecurrence, error) {
	return nil, nil
}

type fakeAttendeeFinder struct{}

func (f *fakeAttendeeFinder) GetAttendeesByEventID(_ context.Context, _ uuid.UUID) ([]attendeeEntity.EventAttendee, error) {
	return nil, nil
}

type fakeReminderScheduler struct {
	scheduled []uuid.UUID
	cancelled []uuid.UUID
	failWith  error
}

func (f *fakeReminderScheduler) ScheduleEventReminder(_ context.Context, eventID uuid.UUID) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.scheduled = append(f.scheduled, eventID)
	return nil
}

func (f *fakeReminderScheduler) CancelEventReminder(_ context.Context, eventID uuid.UUID) error {
	f.cancelled = append(f.cancelled, eventID)
	return nil
}

type eventFixture struct {
	svc        EventServiceInterface
	repo       *fakeEventRepo
	reminders  *fakeReminderScheduler
	wh         *fakeWorkingHoursFinder
	userID     uuid.UUID
	calendarID uuid.UUID
}

func newEventFixture() *eventFixture {
	userID := uuid.New()
	calendarID := uuid.New()

	repo := newFakeEventRepo()
	reminders := &fakeReminderScheduler{}
	wh := &fakeWorkingHoursFinder{}
	calendars := &fakeCalendarFinder{calendars: map[uuid.UUID]*calendarEntity.Calendar{
		calendarID: {ID: calendarID, Name: "Work", UserID: userID},
	}}

	svc := NewEventService(repo, calendars, wh, &fakeRecurrenceFinder{}, &fakeAttendeeFinder{}, reminders)
	return &eventFixture{
		svc:        svc,
		repo:       repo,
		reminders:  reminders,
		wh:         wh,
		userID:     userID,
		calendarID: calendarID,
	}
}

func validCreateRequest(calendarID uuid.UUID) *dto.CreateEventRequest {
	return &dto.CreateEventRequest{
		Title:      "Team sync",
		StartTime:  "2025-06-24T10:00:00Z",
		EndTime:    "2025-06-24T11:00:00Z",
		CalendarID: calendarID.String(),
	}
}

func TestCreateEvent_Success(t *testing.T) {
	f := newEventFixture()

	result, appErr := f.svc.CreateEvent(context.Background(), f.userID, validCreateRequest(f.calendarID))
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}

	if result.Type != string(entity.EventTypeAppointment) {
		t.Errorf("default type = %s, want APPOINTMENT", result.Type)
	}
	if result.Status != string(entity.EventStatusConfirmed) {
		t.Errorf("default status = %s, want CONFIRMED", result.Status)
	}
	if len(f.reminders.scheduled) != 1 {
		t.Errorf("expected 1 reminder scheduled, got %d", len(f.reminders.scheduled))
	}
	if result.Calendar == nil || result.Calendar.Name != "Work" {
		t.Error("expected owning calendar attached to the response")
	}
}

func TestCreateEvent_CalendarNotOwned(t *testing.T) {
	f := newEventFixture()

	_, appErr := f.svc.CreateEvent(context.Background(), uuid.New(), validCreateRequest(f.calendarID))
	if appErr == nil || appErr.Code != coreErrors.ErrInvalidReference {
		t.Fatalf("expected %s, got %v", coreErrors.ErrInvalidReference, appErr)
	}
}

func TestCreateEvent_UnknownCalendar(t *testing.T) {
	f := newEventFixture()

	_, appErr := f.svc.CreateEvent(context.Background(), f.userID, validCreateRequest(uuid.New()))
	if appErr == nil || appErr.Code != coreErrors.ErrInvalidReference {
		t.Fatalf("expected %s, got %v", coreErrors.ErrInvalidReference, appErr)
	}
}

func TestCreateEvent_BadTimestampFormat(t *testing.T) {
	f := newEventFixture()

	req := validCreateRequest(f.calendarID)
	req.StartTime = "not-a-timestamp"
	_, appErr := f.svc.CreateEvent(context.Background(), f.userID, req)
	if appErr == nil || appErr.Code != coreErrors.ErrInvalidFormat {
		t.Fatalf("expected %s, got %v", coreErrors.ErrInvalidFormat, appErr)
	}
}

func TestCreateEvent_StartEqualsEnd(t *testing.T) {
	f := newEventFixture()

	req := validCreateRequest(f.calendarID)
	req.EndTime = req.StartTime
	_, appErr := f.svc.CreateEvent(context.Background(), f.userID, req)
	if appErr == nil || appErr.Code != coreErrors.ErrOutOfPolicy {
		t.Fatalf("expected %s, got %v", coreErrors.ErrOutOfPolicy, appErr)
	}
}

func TestCreateEvent_WorkingHoursEnforced(t *testing.T) {
	f := newEventFixture()

	nine, five := 540, 1020
	f.wh.record = &whEntity.WorkingHours{
		UserID:      f.userID,
		MondayStart: &nine,
		MondayEnd:   &five,
	}

	// Monday 2025-06-23 before working hours.
	req := validCreateRequest(f.calendarID)
	req.StartTime = "2025-06-23T08:00:00Z"
	req.EndTime = "2025-06-23T08:30:00Z"
	_, appErr := f.svc.CreateEvent(context.Background(), f.userID, req)
	if appErr == nil || appErr.Code != coreErrors.ErrOutOfPolicy {
		t.Fatalf("expected %s for event outside working hours, got %v", coreErrors.ErrOutOfPolicy, appErr)
	}

	// Shifted inside the window it succeeds.
	req.StartTime = "2025-06-23T09:00:00Z"
	req.EndTime = "2025-06-23T09:30:00Z"
	if _, appErr := f.svc.CreateEvent(context.Background(), f.userID, req); appErr != nil {
		t.Fatalf("expected event inside working hours to succeed, got %v", appErr)
	}
}

func TestCreateEvent_ReminderFailureNotPropagated(t *testing.T) {
	f := newEventFixture()
	f.reminders.failWith = errors.New("queue unavailable")

	result, appErr := f.svc.CreateEvent(context.Background(), f.userID, validCreateRequest(f.calendarID))
	if appErr != nil {
		t.Fatalf("reminder failure must not fail the create, got %v", appErr)
	}
	if result == nil {
		t.Fatal("expected created event in response")
	}
}

func TestGetMyEvents_CategoryFilter(t *testing.T) {
	f := newEventFixture()

	req := validCreateRequest(f.calendarID)
	if _, appErr := f.svc.CreateEvent(context.Background(), f.userID, req); appErr != nil {
		t.Fatalf("setup create failed: %v", appErr)
	}
	meeting := validCreateRequest(f.calendarID)
	meeting.Type = string(entity.EventTypeMeeting)
	meeting.StartTime = "2025-06-24T13:00:00Z"
	meeting.EndTime = "2025-06-24T14:00:00Z"
	if _, appErr := f.svc.CreateEvent(context.Background(), f.userID, meeting); appErr != nil {
		t.Fatalf("setup create failed: %v", appErr)
	}

	got, appErr := f.svc.GetMyEvents(context.Background(), f.userID, "APPOINTMENT")
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 appointment, got %d", len(got))
	}

	all, appErr := f.svc.GetMyEvents(context.Background(), f.userID, "")
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 events without filter, got %d", len(all))
	}
}

func TestGetMyEvents_InvalidCategory(t *testing.T) {
	f := newEventFixture()

	_, appErr := f.svc.GetMyEvents(context.Background(), f.userID, "PARTY")
	if appErr == nil || appErr.Code != coreErrors.ErrInvalidCategory {
		t.Fatalf("expected %s, got %v", coreErrors.ErrInvalidCategory, appErr)
	}
}

func TestUpdateEvent_RevalidatesMergedRange(t *testing.T) {
	f := newEventFixture()

	created, appErr := f.svc.CreateEvent(context.Background(), f.userID, validCreateRequest(f.calendarID))
	if appErr != nil {
		t.Fatalf("setup create failed: %v", appErr)
	}
	eventID := uuid.MustParse(created.ID)

	// Moving the end before the unchanged start must fail.
	badEnd := "2025-06-24T09:00:00Z"
	_, appErr = f.svc.UpdateEvent(context.Background(), eventID, f.userID, &dto.UpdateEventRequest{EndTime: &badEnd})
	if appErr == nil || appErr.Code != coreErrors.ErrOutOfPolicy {
		t.Fatalf("expected %s, got %v", coreErrors.ErrOutOfPolicy, appErr)
	}

	// A partial update leaves absent fields unchanged.
	newTitle := "Renamed"
	updated, appErr := f.svc.UpdateEvent(context.Background(), eventID, f.userID, &dto.UpdateEventRequest{Title: &newTitle})
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if updated.Title != "Renamed" {
		t.Errorf("title = %s, want Renamed", updated.Title)
	}
	if !updated.StartTime.Equal(created.StartTime) {
		t.Errorf("start time changed on partial update: %v != %v", updated.StartTime, created.StartTime)
	}
}

func TestUpdateEvent_ReschedulesReminder(t *testing.T) {
	f := newEventFixture()

	created, appErr := f.svc.CreateEvent(context.Background(), f.userID, validCreateRequest(f.calendarID))
	if appErr != nil {
		t.Fatalf("setup create failed: %v", appErr)
	}
	eventID := uuid.MustParse(created.ID)

	newStart := "2025-06-25T10:00:00Z"
	newEnd := "2025-06-25T11:00:00Z"
	if _, appErr := f.svc.UpdateEvent(context.Background(), eventID, f.userID, &dto.UpdateEventRequest{
		StartTime: &newStart,
		EndTime:   &newEnd,
	}); appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}

	if len(f.reminders.cancelled) != 1 {
		t.Errorf("expected old reminder cancelled, got %d cancellations", len(f.reminders.cancelled))
	}
	if len(f.reminders.scheduled) != 2 {
		t.Errorf("expected reminder rescheduled, got %d schedules", len(f.reminders.scheduled))
	}
}

func TestUpdateEvent_NotFound(t *testing.T) {
	f := newEventFixture()

	title := "x"
	_, appErr := f.svc.UpdateEvent(context.Background(), uuid.New(), f.userID, &dto.UpdateEventRequest{Title: &title})
	if appErr == nil || appErr.Code != coreErrors.ErrNotFound {
		t.Fatalf("expected %s, got %v", coreErrors.ErrNotFound, appErr)
	}
}

func TestDeleteEvent_ThenGetFailsNotFound(t *testing.T) {
	f := newEventFixture()

	created, appErr := f.svc.CreateEvent(context.Background(), f.userID, validCreateRequest(f.calendarID))
	if appErr != nil {
		t.Fatalf("setup create failed: %v", appErr)
	}
	eventID := uuid.MustParse(created.ID)

	if appErr := f.svc.DeleteEvent(context.Background(), eventID, f.userID); appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}

	if len(f.reminders.cancelled) != 1 {
		t.Errorf("expected pending reminder cancelled on delete, got %d", len(f.reminders.cancelled))
	}

	_, appErr = f.svc.GetEventByID(context.Background(), eventID)
	if appErr == nil || appErr.Code != coreErrors.ErrNotFound {
		t.Fatalf("expected %s after delete, got %v", coreErrors.ErrNotFound, appErr)
	}
}

func TestDeleteEvent_ForbiddenForOtherUser(t *testing.T) {
	f := newEventFixture()

	created, appErr := f.svc.CreateEvent(context.Background(), f.userID, validCreateRequest(f.calendarID))
	if appErr != nil {
		t.Fatalf("setup create failed: %v", appErr)
	}

	appErr = f.svc.DeleteEvent(context.Background(), uuid.MustParse(created.ID), uuid.New())
	if appErr == nil || appErr.Code != coreErrors.ErrForbidden {
		t.Fatalf("expected %s, got %v", coreErrors.ErrForbidden, appErr)
	}
}
