package entity

import (
	"time"

	coreEntity "go-calendar-api/core/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Frequency represents how often a recurring event repeats.
type Frequency string

const (
	FrequencyDaily   Frequency = "DAILY"
	FrequencyWeekly  Frequency = "WEEKLY"
	FrequencyMonthly Frequency = "MONTHLY"
	FrequencyYearly  Frequency = "YEARLY"
)

// IsValidFrequency reports whether s is one of the declared frequencies.
func IsValidFrequency(s string) bool {
	switch Frequency(s) {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// EventRecurrence is the one-to-one recurrence rule attached to an event.
// EndDate (exclusive) and Count are independent optional bounds; with
// neither set the rule is open-ended.
type EventRecurrence struct {
	ID         uuid.UUID     `db:"id" json:"id"`
	EventID    uuid.UUID     `db:"event_id" json:"event_id"`
	Frequency  Frequency     `db:"frequency" json:"frequency"`
	Interval   int           `db:"interval" json:"interval"`
	DaysOfWeek pq.Int64Array `db:"days_of_week" json:"days_of_week,omitempty"`
	EndDate    *time.Time    `db:"end_date" json:"end_date,omitempty"`
	Count      *int          `db:"count" json:"count,omitempty"`
	coreEntity.BaseEntity
}

// Weekdays converts the stored day numbers (0 = Sunday) to time.Weekday.
func (r *EventRecurrence) Weekdays() []time.Weekday {
	if len(r.DaysOfWeek) == 0 {
		return nil
	}
	days := make([]time.Weekday, 0, len(r.DaysOfWeek))
	for _, d := range r.DaysOfWeek {
		if d >= 0 && d <= 6 {
			days = append(days, time.Weekday(d))
		}
	}
	return days
}
