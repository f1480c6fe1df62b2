package dto

import (
	"time"

	"go-calendar-api/modules/recurrence/entity"
)

type CreateRecurrenceRequest struct {
	Frequency  string  `json:"frequency"`
	Interval   int     `json:"interval"`
	DaysOfWeek []int   `json:"days_of_week"`
	EndDate    *string `json:"end_date,omitempty"`
	Count      *int    `json:"count,omitempty"`
}

// UpdateRecurrenceRequest is a partial update over the stored rule.
type UpdateRecurrenceRequest struct {
	Frequency  *string `json:"frequency,omitempty"`
	Interval   *int    `json:"interval,omitempty"`
	DaysOfWeek *[]int  `json:"days_of_week,omitempty"`
	EndDate    *string `json:"end_date,omitempty"`
	Count      *int    `json:"count,omitempty"`
}

type RecurrenceResponse struct {
	ID         string     `json:"id"`
	EventID    string     `json:"event_id"`
	Frequency  string     `json:"frequency"`
	Interval   int        `json:"interval"`
	DaysOfWeek []int      `json:"days_of_week"`
	EndDate    *time.Time `json:"end_date,omitempty"`
	Count      *int       `json:"count,omitempty"`
}

// OccurrencesResponse is the expansion of a rule over a query window.
type OccurrencesResponse struct {
	EventID     string      `json:"event_id"`
	Until       time.Time   `json:"until"`
	Occurrences []time.Time `json:"occurrences"`
}

func ToRecurrenceResponse(rec *entity.EventRecurrence) *RecurrenceResponse {
	days := make([]int, 0, len(rec.DaysOfWeek))
	for _, d := range rec.DaysOfWeek {
		days = append(days, int(d))
	}
	return &RecurrenceResponse{
		ID:         rec.ID.String(),
		EventID:    rec.EventID.String(),
		Frequency:  string(rec.Frequency),
		Interval:   rec.Interval,
		DaysOfWeek: days,
		EndDate:    rec.EndDate,
		Count:      rec.Count,
	}
}
