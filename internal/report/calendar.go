package report

import (
	"errors"
	"time"

	"github.com/mise-ops/chobo/internal/businessday"
)

var (
	// ErrInvalidRange is returned when a daily-series query is given
	// from > to.
	ErrInvalidRange = errors.New("invalid date range: from is after to")

	// ErrInvalidMonth is returned when month boundaries cannot be
	// resolved. Defensive; not reachable with a valid time value.
	ErrInvalidMonth = errors.New("cannot resolve month boundaries")
)

// monthRange returns the first and last calendar day of the month
// containing date, both at midnight.
func monthRange(date time.Time) (time.Time, time.Time, error) {
	if date.IsZero() {
		return time.Time{}, time.Time{}, ErrInvalidMonth
	}

	start := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	end := start.AddDate(0, 1, -1)

	return start, end, nil
}

// daysInRange returns each calendar day from start through end,
// inclusive, in ascending order.
func daysInRange(start, end time.Time) []time.Time {
	var days []time.Time

	for d := businessday.Truncate(start); !d.After(businessday.Truncate(end)); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}

	return days
}
