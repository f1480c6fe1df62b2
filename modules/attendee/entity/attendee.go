package entity

import (
	coreEntity "go-calendar-api/core/entity"

	"github.com/google/uuid"
)

// AttendeeStatus represents an attendee's reply state.
type AttendeeStatus string

const (
	AttendeeStatusPending   AttendeeStatus = "PENDING"
	AttendeeStatusAccepted  AttendeeStatus = "ACCEPTED"
	AttendeeStatusDeclined  AttendeeStatus = "DECLINED"
	AttendeeStatusTentative AttendeeStatus = "TENTATIVE"
)

// AttendeeRole represents an attendee's role on the event.
type AttendeeRole string

const (
	AttendeeRoleOrganizer AttendeeRole = "ORGANIZER"
	AttendeeRoleAttendee  AttendeeRole = "ATTENDEE"
	AttendeeRoleOptional  AttendeeRole = "OPTIONAL"
)

// IsValidAttendeeStatus reports whether s is a declared status.
func IsValidAttendeeStatus(s string) bool {
	switch AttendeeStatus(s) {
	case AttendeeStatusPending, AttendeeStatusAccepted, AttendeeStatusDeclined, AttendeeStatusTentative:
		return true
	}
	return false
}

// IsValidAttendeeRole reports whether s is a declared role.
func IsValidAttendeeRole(s string) bool {
	switch AttendeeRole(s) {
	case AttendeeRoleOrganizer, AttendeeRoleAttendee, AttendeeRoleOptional:
		return true
	}
	return false
}

// EventAttendee is one invitee on an event. (event_id, email) is unique,
// enforced by a database constraint.
type EventAttendee struct {
	ID      uuid.UUID      `db:"id" json:"id"`
	EventID uuid.UUID      `db:"event_id" json:"event_id"`
	Email   string         `db:"email" json:"email"`
	Name    *string        `db:"name" json:"name,omitempty"`
	Status  AttendeeStatus `db:"status" json:"status"`
	Role    AttendeeRole   `db:"role" json:"role"`
	coreEntity.BaseEntity
}
