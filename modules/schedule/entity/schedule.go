package entity

import (
	coreEntity "go-calendar-api/core/entity"

	"github.com/google/uuid"
)

// ScheduleType is one of the fixed schedule labels. A user holds at most
// one schedule of each type, enforced by a database constraint.
type ScheduleType string

const (
	ScheduleTypeDailyStandup  ScheduleType = "Daily Standup"
	ScheduleTypeTeamMeeting   ScheduleType = "Team Meeting"
	ScheduleTypeLunchBreak    ScheduleType = "Lunch Break"
	ScheduleTypeClientMeeting ScheduleType = "Client Meeting"
	ScheduleTypeOther         ScheduleType = "Other"
)

// IsValidScheduleType reports whether s is a declared schedule type.
func IsValidScheduleType(s string) bool {
	switch ScheduleType(s) {
	case ScheduleTypeDailyStandup, ScheduleTypeTeamMeeting, ScheduleTypeLunchBreak,
		ScheduleTypeClientMeeting, ScheduleTypeOther:
		return true
	}
	return false
}

type Schedule struct {
	ID     uuid.UUID    `db:"id" json:"id"`
	Name   string       `db:"name" json:"name"`
	Type   ScheduleType `db:"type" json:"type"`
	Color  *string      `db:"color" json:"color,omitempty"`
	UserID uuid.UUID    `db:"user_id" json:"user_id"`
	coreEntity.BaseEntity
}
