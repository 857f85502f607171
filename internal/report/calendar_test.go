package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeRatio(t *testing.T) {
	got := SafeRatio(3000, 10000)
	require.NotNil(t, got)
	assert.InDelta(t, 0.3, *got, 1e-9)

	// Non-positive denominators yield absence, never zero or a fault.
	assert.Nil(t, SafeRatio(3000, 0))
	assert.Nil(t, SafeRatio(3000, -1))
	assert.Nil(t, SafeRatio(0, 0))
}

func TestMonthRange(t *testing.T) {
	start, end, err := monthRange(time.Date(2024, 6, 15, 13, 45, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), end)

	// Leap February.
	start, end, err = monthRange(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), end)

	_, _, err = monthRange(time.Time{})
	assert.ErrorIs(t, err, ErrInvalidMonth)
}

func TestDaysInRange(t *testing.T) {
	days := daysInRange(
		time.Date(2024, 6, 28, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC),
	)

	require.Len(t, days, 5)
	assert.Equal(t, "2024-06-28", days[0].Format(time.DateOnly))
	assert.Equal(t, "2024-07-02", days[4].Format(time.DateOnly))

	single := daysInRange(
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	)
	assert.Len(t, single, 1)
}
