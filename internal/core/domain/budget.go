package domain

import "time"

// TotalBudget derives the campaign total from the schedule: the inclusive
// number of scheduled days multiplied by the daily minimum budget. It returns
// 0 unless both dates are present and the end is not before the start. The
// total is never user-edited while both dates are set.
func (b Budget) TotalBudget() int64 {
	if b.StartDate == nil || b.EndDate == nil {
		return 0
	}
	start := midnight(*b.StartDate)
	end := midnight(*b.EndDate)
	if end.Before(start) {
		return 0
	}
	days := int64(end.Sub(start)/(24*time.Hour)) + 1
	return days * b.MinimumBudget
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last instant of t's calendar day, so a same-day end
// date still covers the full day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999_000_000, t.Location())
}
