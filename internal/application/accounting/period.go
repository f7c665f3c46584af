package accounting

import "time"

// Period tokens accepted by the dashboard filters
const (
	PeriodToday = "today"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// TimeRange is a concrete reporting window, inclusive on both ends
type TimeRange struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t falls inside the range
func (r TimeRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && !t.After(r.To)
}

// IsValidPeriod reports whether token is a recognized named period
func IsValidPeriod(token string) bool {
	switch token {
	case PeriodToday, PeriodWeek, PeriodMonth, PeriodYear:
		return true
	}
	return false
}

// ResolvePeriod maps a named period token to a concrete range ending at now.
// Unrecognized tokens resolve to the current-month window.
func ResolvePeriod(token string, now time.Time) TimeRange {
	switch token {
	case PeriodToday:
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return TimeRange{From: start, To: now}
	case PeriodWeek:
		return TimeRange{From: now.Add(-7 * 24 * time.Hour), To: now}
	case PeriodYear:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return TimeRange{From: start, To: now}
	case PeriodMonth:
		fallthrough
	default:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return TimeRange{From: start, To: now}
	}
}
