package service

import (
	"sort"
	"time"

	"go-calendar-api/modules/recurrence/entity"
)

// NextOccurrence advances an occurrence time by one recurrence step.
//
// DAILY adds interval days, WEEKLY adds interval weeks. MONTHLY and YEARLY
// add calendar months and clamp the day to the target month's length, so a
// rule anchored on Jan 31 lands on Feb 28 (or 29), never on Mar 2. An
// unrecognized frequency returns the anchor unchanged.
func NextOccurrence(anchor time.Time, freq entity.Frequency, interval int) time.Time {
	if interval < 1 {
		interval = 1
	}

	switch freq {
	case entity.FrequencyDaily:
		return anchor.AddDate(0, 0, interval)
	case entity.FrequencyWeekly:
		return anchor.AddDate(0, 0, interval*7)
	case entity.FrequencyMonthly:
		return addMonthsClamped(anchor, interval)
	case entity.FrequencyYearly:
		return addMonthsClamped(anchor, interval*12)
	}
	return anchor
}

// addMonthsClamped adds months keeping the day-of-month where possible and
// clamping to the last day of the target month otherwise. time.AddDate is
// deliberately avoided here since it normalizes overflow into the next month.
func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	m := int(month) - 1 + months
	targetYear := year + m/12
	targetMonth := time.Month(m%12 + 1)
	if m < 0 {
		// Go's integer division truncates toward zero.
		targetYear = year + (m-11)/12
		targetMonth = time.Month((m%12+12)%12 + 1)
	}

	if max := daysIn(targetYear, targetMonth); day > max {
		day = max
	}

	hour, min, sec := t.Clock()
	return time.Date(targetYear, targetMonth, day, hour, min, sec, t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Expand materializes a rule's occurrence start times from anchor up to and
// including windowEnd. Expansion stops early when the rule's Count is
// reached or an occurrence would fall on or after EndDate (exclusive bound).
// A WEEKLY rule with DaysOfWeek set emits occurrences on each listed weekday
// of the matching weeks; all other rules step the anchor directly.
func Expand(rule *entity.EventRecurrence, anchor, windowEnd time.Time) []time.Time {
	interval := rule.Interval
	if interval < 1 {
		interval = 1
	}

	if rule.Frequency == entity.FrequencyWeekly && len(rule.DaysOfWeek) > 0 {
		return expandWeekdays(rule, anchor, windowEnd, interval)
	}

	var out []time.Time
	cur := anchor
	for !cur.After(windowEnd) {
		if rule.EndDate != nil && !cur.Before(*rule.EndDate) {
			break
		}
		if rule.Count != nil && len(out) >= *rule.Count {
			break
		}
		out = append(out, cur)

		next := NextOccurrence(cur, rule.Frequency, interval)
		if !next.After(cur) {
			break
		}
		cur = next
	}
	return out
}

// expandWeekdays walks whole weeks, emitting the selected weekdays at the
// anchor's clock time. Weeks start on Sunday to match the stored day
// numbering.
func expandWeekdays(rule *entity.EventRecurrence, anchor, windowEnd time.Time, interval int) []time.Time {
	days := rule.Weekdays()
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })

	var out []time.Time
	weekStart := anchor.AddDate(0, 0, -int(anchor.Weekday()))
	for !weekStart.After(windowEnd) {
		for _, day := range days {
			occ := weekStart.AddDate(0, 0, int(day))
			if occ.Before(anchor) || occ.After(windowEnd) {
				continue
			}
			if rule.EndDate != nil && !occ.Before(*rule.EndDate) {
				return out
			}
			if rule.Count != nil && len(out) >= *rule.Count {
				return out
			}
			out = append(out, occ)
		}
		weekStart = weekStart.AddDate(0, 0, interval*7)
	}
	return out
}
