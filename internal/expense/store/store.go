package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mise-ops/chobo/internal/businessday"
	"github.com/mise-ops/chobo/internal/expense"
)

// Store is the in-memory expense store.
type Store struct {
	mu    sync.RWMutex
	items []*expense.Expense
}

func New() *Store {
	return &Store{}
}

func (s *Store) FetchExpenses(_ context.Context, storeID string, from, to time.Time, filter expense.Filter) ([]*expense.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*expense.Expense

	for _, e := range s.items {
		if e.StoreID != storeID {
			continue
		}

		if !businessday.Within(e.Date, from, to) {
			continue
		}

		if !matches(e, filter) {
			continue
		}

		out = append(out, e)
	}

	slices.SortStableFunc(out, func(a, b *expense.Expense) int {
		return a.Date.Compare(b.Date)
	})

	return out, nil
}

func matches(e *expense.Expense, f expense.Filter) bool {
	if f.Category != nil && e.Category != *f.Category {
		return false
	}

	if f.PaymentMethod != nil && e.PaymentMethod != *f.PaymentMethod {
		return false
	}

	if f.Reimbursed != nil && e.IsReimbursed != *f.Reimbursed {
		return false
	}

	if f.Status != nil && e.Status != *f.Status {
		return false
	}

	if f.EmployeeID != nil && (e.EmployeeID == nil || *e.EmployeeID != *f.EmployeeID) {
		return false
	}

	return true
}

func (s *Store) FindByID(_ context.Context, id uuid.UUID) (*expense.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.items {
		if e.ID == id {
			return e, nil
		}
	}

	return nil, expense.ErrNotFound
}

func (s *Store) Save(_ context.Context, e *expense.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	for i, existing := range s.items {
		if existing.ID == e.ID {
			s.items[i] = e
			return nil
		}
	}

	s.items = append(s.items, e)

	return nil
}

func (s *Store) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = slices.DeleteFunc(s.items, func(e *expense.Expense) bool {
		return e.ID == id
	})

	return nil
}
