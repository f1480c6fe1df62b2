package dto

import (
	"time"

	attendeeEntity "go-calendar-api/modules/attendee/entity"
	calendarEntity "go-calendar-api/modules/calendar/entity"
	"go-calendar-api/modules/event/entity"
	recurrenceEntity "go-calendar-api/modules/recurrence/entity"
)

// CreateEventRequest carries timestamps as RFC3339 strings; parsing is part
// of the scheduling validation, not of request binding.
type CreateEventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	AllDay      bool   `json:"all_day"`
	Color       string `json:"color"`
	Location    string `json:"location"`
	Status      string `json:"status"`
	Type        string `json:"type"`
	CalendarID  string `json:"calendar_id"`
}

// UpdateEventRequest is a partial update: absent fields keep their stored
// values, including either timestamp.
type UpdateEventRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	StartTime   *string `json:"start_time,omitempty"`
	EndTime     *string `json:"end_time,omitempty"`
	AllDay      *bool   `json:"all_day,omitempty"`
	Color       *string `json:"color,omitempty"`
	Location    *string `json:"location,omitempty"`
	Status      *string `json:"status,omitempty"`
	Type        *string `json:"type,omitempty"`
}

type EventResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	AllDay      bool      `json:"all_day"`
	Color       *string   `json:"color,omitempty"`
	Location    *string   `json:"location,omitempty"`
	Status      string    `json:"status"`
	Type        string    `json:"type"`
	IsRecurring bool      `json:"is_recurring"`
	CalendarID  string    `json:"calendar_id"`
	UserID      string    `json:"user_id"`

	Calendar   *calendarEntity.Calendar          `json:"calendar,omitempty"`
	Recurrence *recurrenceEntity.EventRecurrence `json:"recurrence,omitempty"`
	Attendees  []attendeeEntity.EventAttendee    `json:"attendees"`
}

func ToEventResponse(
	event *entity.Event,
	calendar *calendarEntity.Calendar,
	recurrence *recurrenceEntity.EventRecurrence,
	attendees []attendeeEntity.EventAttendee,
) *EventResponse {
	if attendees == nil {
		attendees = []attendeeEntity.EventAttendee{}
	}
	return &EventResponse{
		ID:          event.ID.String(),
		Title:       event.Title,
		Description: event.Description,
		StartTime:   event.StartTime,
		EndTime:     event.EndTime,
		AllDay:      event.AllDay,
		Color:       event.Color,
		Location:    event.Location,
		Status:      string(event.Status),
		Type:        string(event.Type),
		IsRecurring: event.IsRecurring,
		CalendarID:  event.CalendarID.String(),
		UserID:      event.UserID.String(),
		Calendar:    calendar,
		Recurrence:  recurrence,
		Attendees:   attendees,
	}
}
