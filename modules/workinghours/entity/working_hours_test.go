package entity

import (
	"testing"
	"time"
)

func intPtr(v int) *int { return &v }

func TestWindowFor(t *testing.T) {
	wh := &WorkingHours{
		MondayStart:  intPtr(540),
		MondayEnd:    intPtr(1020),
		TuesdayStart: intPtr(1200),
		TuesdayEnd:   intPtr(300), // inverted pair
		FridayStart:  intPtr(600),
		// friday end unset
	}

	t.Run("configured day", func(t *testing.T) {
		w := wh.WindowFor(time.Monday)
		if w == nil {
			t.Fatal("expected a window for Monday")
		}
		if w.StartMinute != 540 || w.EndMinute != 1020 {
			t.Errorf("window = %+v, want 540-1020", w)
		}
	})

	t.Run("unconfigured day has no constraint", func(t *testing.T) {
		if w := wh.WindowFor(time.Wednesday); w != nil {
			t.Errorf("expected nil window, got %+v", w)
		}
	})

	t.Run("half-set pair has no constraint", func(t *testing.T) {
		if w := wh.WindowFor(time.Friday); w != nil {
			t.Errorf("expected nil window, got %+v", w)
		}
	})

	t.Run("inverted pair has no constraint", func(t *testing.T) {
		if w := wh.WindowFor(time.Tuesday); w != nil {
			t.Errorf("expected nil window, got %+v", w)
		}
	})
}
