package sales

import (
	"context"
	"time"
)

// Repository provides read/write access to receipts and payment splits.
// Range queries filter by store and by calendar day, inclusive on both
// ends.
type Repository interface {
	FetchReceipts(ctx context.Context, storeID string, from, to time.Time, statuses []ReceiptStatus) ([]*Receipt, error)
	FetchPaymentSplits(ctx context.Context, storeID string, from, to time.Time) ([]*Split, error)

	SaveReceipt(ctx context.Context, r *Receipt) error
	SaveSplit(ctx context.Context, s *Split) error
}
