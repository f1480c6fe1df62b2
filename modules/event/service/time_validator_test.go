package service

import (
	"testing"
	"time"

	whEntity "go-calendar-api/modules/workinghours/entity"
)

func TestIsValidRange_Ordering(t *testing.T) {
	base := time.Date(2025, 6, 24, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"start before end", base, base.Add(time.Hour), true},
		{"start equals end", base, base, false},
		{"start after end", base.Add(time.Hour), base, false},
		{"one second apart", base, base.Add(time.Second), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidRange(tt.start, tt.end, nil); got != tt.want {
				t.Errorf("IsValidRange(%v, %v, nil) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestIsValidRange_WorkingHoursWindow(t *testing.T) {
	// Monday 2025-06-23, window 09:00 to 17:00.
	window := &whEntity.Window{StartMinute: 540, EndMinute: 1020}
	day := time.Date(2025, 6, 23, 0, 0, 0, 0, time.UTC)

	at := func(h, m int) time.Time {
		return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
	}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"inside window", at(10, 0), at(11, 0), true},
		{"exactly on boundaries", at(9, 0), at(17, 0), true},
		{"starts before window", at(8, 0), at(8, 30), false},
		{"ends after window", at(16, 30), at(17, 30), false},
		{"entirely after window", at(18, 0), at(19, 0), false},
		{"starts at window start", at(9, 0), at(9, 30), true},
		{"ends at window end", at(16, 30), at(17, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidRange(tt.start, tt.end, window); got != tt.want {
				t.Errorf("IsValidRange(%v, %v) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestIsValidRange_WindowUsesStartsDay(t *testing.T) {
	window := &whEntity.Window{StartMinute: 540, EndMinute: 1020}

	// An event crossing midnight ends outside the window anchored on the
	// start's day.
	start := time.Date(2025, 6, 23, 16, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 24, 10, 0, 0, 0, time.UTC)
	if IsValidRange(start, end, window) {
		t.Error("expected range crossing past the window to be rejected")
	}
}
