package closing

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a daily closing. A draft closing is
// provisional: only confirmed and approved closings contribute to
// variance aggregation.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusConfirmed Status = "confirmed"
	StatusApproved  Status = "approved"
)

// IssueThreshold is the absolute closing difference, in minor units, at
// or above which a day is flagged.
const IssueThreshold = 1000

// DailyClosing is one day's cash-drawer reconciliation.
type DailyClosing struct {
	ID      uuid.UUID
	StoreID string
	Date    time.Time

	PreviousCashBalance int64
	CashSales           int64
	CashInTotal         int64
	CashOutTotal        int64
	ActualCashBalance   int64

	Note   string
	Status Status
}

// Counted reports whether this closing participates in aggregation.
func (c *DailyClosing) Counted() bool {
	return c.Status == StatusConfirmed || c.Status == StatusApproved
}

// ExpectedCashBalance is the theoretical drawer balance for the day.
func (c *DailyClosing) ExpectedCashBalance() int64 {
	return c.PreviousCashBalance + c.CashSales + c.CashInTotal - c.CashOutTotal
}

// Difference is counted minus expected.
func (c *DailyClosing) Difference() int64 {
	return c.ActualCashBalance - c.ExpectedCashBalance()
}

// HasIssue reports whether the difference is at or beyond the threshold.
func (c *DailyClosing) HasIssue() bool {
	d := c.Difference()
	if d < 0 {
		d = -d
	}

	return d >= IssueThreshold
}
