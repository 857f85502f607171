package businessday_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mise-ops/chobo/internal/businessday"
)

func TestTruncate(t *testing.T) {
	ts := time.Date(2024, 6, 15, 23, 59, 59, 999, time.UTC)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), businessday.Truncate(ts))
}

func TestKey(t *testing.T) {
	assert.Equal(t, "2024-06-15", businessday.Key(time.Date(2024, 6, 15, 18, 30, 0, 0, time.UTC)))
	assert.Equal(t, "2024-01-05", businessday.Key(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)))
}

func TestEqual(t *testing.T) {
	a := time.Date(2024, 6, 15, 0, 0, 1, 0, time.UTC)
	b := time.Date(2024, 6, 15, 23, 59, 59, 0, time.UTC)
	c := time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC)

	assert.True(t, businessday.Equal(a, b))
	assert.False(t, businessday.Equal(b, c))
}

func TestWithin(t *testing.T) {
	from := time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 20, 3, 0, 0, 0, time.UTC)

	// Clock components on the bounds are irrelevant.
	assert.True(t, businessday.Within(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), from, to))
	assert.True(t, businessday.Within(time.Date(2024, 6, 20, 23, 0, 0, 0, time.UTC), from, to))
	assert.False(t, businessday.Within(time.Date(2024, 6, 9, 23, 59, 0, 0, time.UTC), from, to))
	assert.False(t, businessday.Within(time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC), from, to))
}
