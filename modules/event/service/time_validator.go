package service

import (
	"time"

	whEntity "go-calendar-api/modules/workinghours/entity"
)

// IsValidRange reports whether [start, end) is a legal event time range.
//
// The range must be strictly ordered (start before end). When a working-hours
// window is supplied, both boundaries must additionally fall inside the
// window of start's calendar day: [midnight+StartMinute, midnight+EndMinute],
// both ends inclusive. The day's midnight is taken in start's location.
func IsValidRange(start, end time.Time, window *whEntity.Window) bool {
	if !start.Before(end) {
		return false
	}
	if window == nil {
		return true
	}

	dayStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	windowStart := dayStart.Add(time.Duration(window.StartMinute) * time.Minute)
	windowEnd := dayStart.Add(time.Duration(window.EndMinute) * time.Minute)

	return within(start, windowStart, windowEnd) && within(end, windowStart, windowEnd)
}

// within reports whether t lies in [lo, hi], inclusive on both ends.
func within(t, lo, hi time.Time) bool {
	return !t.Before(lo) && !t.After(hi)
}
