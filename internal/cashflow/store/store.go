package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mise-ops/chobo/internal/businessday"
	"github.com/mise-ops/chobo/internal/cashflow"
)

// Store is the in-memory cash transaction store.
type Store struct {
	mu    sync.RWMutex
	items []*cashflow.Transaction
}

func New() *Store {
	return &Store{}
}

func (s *Store) FetchTransactions(_ context.Context, storeID string, from, to time.Time, filter cashflow.Filter) ([]*cashflow.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*cashflow.Transaction

	for _, tx := range s.items {
		if tx.StoreID != storeID {
			continue
		}

		if !businessday.Within(tx.Date, from, to) {
			continue
		}

		if !matches(tx, filter) {
			continue
		}

		out = append(out, tx)
	}

	slices.SortStableFunc(out, func(a, b *cashflow.Transaction) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}

		return timeOf(a).Compare(timeOf(b))
	})

	return out, nil
}

// timeOf orders same-day transactions by intra-day time when present.
func timeOf(tx *cashflow.Transaction) time.Time {
	if tx.Time != nil {
		return *tx.Time
	}

	return tx.Date
}

func matches(tx *cashflow.Transaction, f cashflow.Filter) bool {
	if f.Type != nil && tx.Type != *f.Type {
		return false
	}

	if f.Category != nil && (tx.Category == nil || *tx.Category != *f.Category) {
		return false
	}

	if f.MinAmount != nil && tx.Amount < *f.MinAmount {
		return false
	}

	if f.MaxAmount != nil && tx.Amount > *f.MaxAmount {
		return false
	}

	return true
}

func (s *Store) FindByID(_ context.Context, id uuid.UUID) (*cashflow.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, tx := range s.items {
		if tx.ID == id {
			return tx, nil
		}
	}

	return nil, cashflow.ErrNotFound
}

func (s *Store) Save(_ context.Context, tx *cashflow.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}

	for i, existing := range s.items {
		if existing.ID == tx.ID {
			s.items[i] = tx
			return nil
		}
	}

	s.items = append(s.items, tx)

	return nil
}

func (s *Store) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = slices.DeleteFunc(s.items, func(tx *cashflow.Transaction) bool {
		return tx.ID == id
	})

	return nil
}
