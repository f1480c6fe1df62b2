package dto

import (
	"go-calendar-api/modules/attendee/entity"
)

type AddAttendeeRequest struct {
	Email  string `json:"email"`
	Name   string `json:"name"`
	Status string `json:"status"`
	Role   string `json:"role"`
}

// UpdateAttendeeRequest is a partial update. The attendee's event binding
// is immutable; there is intentionally no event field here.
type UpdateAttendeeRequest struct {
	Email  *string `json:"email,omitempty"`
	Name   *string `json:"name,omitempty"`
	Status *string `json:"status,omitempty"`
	Role   *string `json:"role,omitempty"`
}

type AttendeeResponse struct {
	ID      string  `json:"id"`
	EventID string  `json:"event_id"`
	Email   string  `json:"email"`
	Name    *string `json:"name,omitempty"`
	Status  string  `json:"status"`
	Role    string  `json:"role"`
}

func ToAttendeeResponse(attendee *entity.EventAttendee) *AttendeeResponse {
	return &AttendeeResponse{
		ID:      attendee.ID.String(),
		EventID: attendee.EventID.String(),
		Email:   attendee.Email,
		Name:    attendee.Name,
		Status:  string(attendee.Status),
		Role:    string(attendee.Role),
	}
}
