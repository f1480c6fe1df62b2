package entity

import (
	"time"

	coreEntity "go-calendar-api/core/entity"

	"github.com/google/uuid"
)

// EventStatus represents the status of an event
type EventStatus string

const (
	EventStatusConfirmed EventStatus = "CONFIRMED"
	EventStatusTentative EventStatus = "TENTATIVE"
	EventStatusCancelled EventStatus = "CANCELLED"
)

// EventType categorizes an event
type EventType string

const (
	EventTypeAppointment EventType = "APPOINTMENT"
	EventTypeMeeting     EventType = "MEETING"
	EventTypeBirthday    EventType = "BIRTHDAY"
	EventTypeReminder    EventType = "REMINDER"
	EventTypeTask        EventType = "TASK"
	EventTypeOther       EventType = "OTHER"
)

// IsValidEventType reports whether s is one of the declared event types.
func IsValidEventType(s string) bool {
	switch EventType(s) {
	case EventTypeAppointment, EventTypeMeeting, EventTypeBirthday,
		EventTypeReminder, EventTypeTask, EventTypeOther:
		return true
	}
	return false
}

// IsValidEventStatus reports whether s is one of the declared statuses.
func IsValidEventStatus(s string) bool {
	switch EventStatus(s) {
	case EventStatusConfirmed, EventStatusTentative, EventStatusCancelled:
		return true
	}
	return false
}

// Event is a scheduled entry on a calendar.
type Event struct {
	ID          uuid.UUID   `db:"id" json:"id"`
	Title       string      `db:"title" json:"title"`
	Description *string     `db:"description" json:"description,omitempty"`
	StartTime   time.Time   `db:"start_time" json:"start_time"`
	EndTime     time.Time   `db:"end_time" json:"end_time"`
	AllDay      bool        `db:"all_day" json:"all_day"`
	Color       *string     `db:"color" json:"color,omitempty"`
	Location    *string     `db:"location" json:"location,omitempty"`
	Status      EventStatus `db:"status" json:"status"`
	Type        EventType   `db:"type" json:"type"`
	IsRecurring bool        `db:"is_recurring" json:"is_recurring"`
	CalendarID  uuid.UUID   `db:"calendar_id" json:"calendar_id"`
	UserID      uuid.UUID   `db:"user_id" json:"user_id"`
	coreEntity.BaseEntity
}
