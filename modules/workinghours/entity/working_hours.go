package entity

import (
	"time"

	coreEntity "go-calendar-api/core/entity"

	"github.com/google/uuid"
)

// WorkingHours is the single per-user record of allowed time windows,
// one start/end pair per weekday, in minutes from midnight (0-1440).
// A day with neither bound set carries no constraint.
type WorkingHours struct {
	ID     uuid.UUID `db:"id" json:"id"`
	UserID uuid.UUID `db:"user_id" json:"user_id"`

	MondayStart    *int `db:"monday_start" json:"monday_start,omitempty"`
	MondayEnd      *int `db:"monday_end" json:"monday_end,omitempty"`
	TuesdayStart   *int `db:"tuesday_start" json:"tuesday_start,omitempty"`
	TuesdayEnd     *int `db:"tuesday_end" json:"tuesday_end,omitempty"`
	WednesdayStart *int `db:"wednesday_start" json:"wednesday_start,omitempty"`
	WednesdayEnd   *int `db:"wednesday_end" json:"wednesday_end,omitempty"`
	ThursdayStart  *int `db:"thursday_start" json:"thursday_start,omitempty"`
	ThursdayEnd    *int `db:"thursday_end" json:"thursday_end,omitempty"`
	FridayStart    *int `db:"friday_start" json:"friday_start,omitempty"`
	FridayEnd      *int `db:"friday_end" json:"friday_end,omitempty"`
	SaturdayStart  *int `db:"saturday_start" json:"saturday_start,omitempty"`
	SaturdayEnd    *int `db:"saturday_end" json:"saturday_end,omitempty"`
	SundayStart    *int `db:"sunday_start" json:"sunday_start,omitempty"`
	SundayEnd      *int `db:"sunday_end" json:"sunday_end,omitempty"`

	coreEntity.BaseEntity
}

// Window is a time-of-day range in minutes from midnight, both bounds inclusive.
type Window struct {
	StartMinute int
	EndMinute   int
}

// WindowFor returns the window configured for the given weekday, or nil when
// the day is unconstrained. An inverted pair (start > end) has no defined
// overnight semantics and is treated as no constraint.
func (w *WorkingHours) WindowFor(day time.Weekday) *Window {
	var start, end *int
	switch day {
	case time.Monday:
		start, end = w.MondayStart, w.MondayEnd
	case time.Tuesday:
		start, end = w.TuesdayStart, w.TuesdayEnd
	case time.Wednesday:
		start, end = w.WednesdayStart, w.WednesdayEnd
	case time.Thursday:
		start, end = w.ThursdayStart, w.ThursdayEnd
	case time.Friday:
		start, end = w.FridayStart, w.FridayEnd
	case time.Saturday:
		start, end = w.SaturdayStart, w.SaturdayEnd
	case time.Sunday:
		start, end = w.SundayStart, w.SundayEnd
	}

	if start == nil || end == nil {
		return nil
	}
	if *start > *end {
		return nil
	}
	return &Window{StartMinute: *start, EndMinute: *end}
}
