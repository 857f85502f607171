package timecard

import (
	"context"
	"time"
)

// Repository provides read/write access to time records. LoadAll returns
// every record; callers filter by store, status and date, matching how
// monthly aggregation consumes attendance.
type Repository interface {
	Load(ctx context.Context, employeeID int, date time.Time) (*TimeRecord, error)
	Save(ctx context.Context, r *TimeRecord) error
	Delete(ctx context.Context, employeeID int, date time.Time) error
	LoadAll(ctx context.Context) ([]*TimeRecord, error)
}
