package cashflow

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("cash transaction not found")

// Filter narrows a date-range cash query. Nil fields match everything.
type Filter struct {
	Type      *Type
	Category  *Category
	MinAmount *int64
	MaxAmount *int64
}

// Repository provides read/write access to cash transactions.
type Repository interface {
	FetchTransactions(ctx context.Context, storeID string, from, to time.Time, filter Filter) ([]*Transaction, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	Save(ctx context.Context, tx *Transaction) error
	Delete(ctx context.Context, id uuid.UUID) error
}
