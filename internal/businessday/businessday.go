// Package businessday provides calendar-day truncation and comparison.
// A record belongs to a business day when its timestamp, truncated to
// midnight in its own location, equals that day. All date-range filters
// in the record stores compare at this granularity, never by exact
// timestamp.
package businessday

import "time"

// Truncate returns t at midnight in t's location.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Key returns the YYYY-MM-DD join key for t.
func Key(t time.Time) string {
	return t.Format(time.DateOnly)
}

// Equal reports whether a and b fall on the same calendar day.
func Equal(a, b time.Time) bool {
	return Key(a) == Key(b)
}

// Within reports whether t falls on or between the calendar days of from and to.
func Within(t, from, to time.Time) bool {
	d := Truncate(t)
	return !d.Before(Truncate(from)) && !d.After(Truncate(to))
}
