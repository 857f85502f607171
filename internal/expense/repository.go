package expense

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("expense not found")

// Filter narrows a date-range expense query. Nil fields match everything.
type Filter struct {
	Category      *Category
	PaymentMethod *PaymentMethod
	Reimbursed    *bool
	Status        *Status
	EmployeeID    *int
}

// Repository provides read/write access to expense entries.
type Repository interface {
	FetchExpenses(ctx context.Context, storeID string, from, to time.Time, filter Filter) ([]*Expense, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Expense, error)
	Save(ctx context.Context, e *Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
}
