package closing

import (
	"context"
	"time"
)

//go:generate mockgen -source=repository.go -destination=repository_mock.go -package=closing
type Repository interface {
	// LoadClosing returns the closing for the store and calendar day,
	// or nil when none has been recorded.
	LoadClosing(ctx context.Context, storeID string, date time.Time) (*DailyClosing, error)
	SaveClosing(ctx context.Context, c *DailyClosing) error
}
