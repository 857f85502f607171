// Package store holds the in-memory sales store. It is the reference
// Repository implementation: one store's records fit in memory and all
// reads are snapshot reads under a shared lock.
package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mise-ops/chobo/internal/businessday"
	"github.com/mise-ops/chobo/internal/sales"
)

type Store struct {
	mu       sync.RWMutex
	receipts []*sales.Receipt
	splits   []*sales.Split
}

func New() *Store {
	return &Store{}
}

func (s *Store) FetchReceipts(_ context.Context, storeID string, from, to time.Time, statuses []sales.ReceiptStatus) ([]*sales.Receipt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*sales.Receipt

	for _, r := range s.receipts {
		if r.StoreID != storeID {
			continue
		}

		if !businessday.Within(r.BusinessDate, from, to) {
			continue
		}

		if !slices.Contains(statuses, r.Status) {
			continue
		}

		out = append(out, r)
	}

	slices.SortStableFunc(out, func(a, b *sales.Receipt) int {
		return a.BusinessDate.Compare(b.BusinessDate)
	})

	return out, nil
}

func (s *Store) FetchPaymentSplits(_ context.Context, storeID string, from, to time.Time) ([]*sales.Split, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*sales.Split

	for _, sp := range s.splits {
		if sp.StoreID != storeID {
			continue
		}

		if !businessday.Within(sp.BusinessDate, from, to) {
			continue
		}

		out = append(out, sp)
	}

	return out, nil
}

func (s *Store) SaveReceipt(_ context.Context, r *sales.Receipt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}

	for i, existing := range s.receipts {
		if existing.ID == r.ID {
			s.receipts[i] = r
			return nil
		}
	}

	s.receipts = append(s.receipts, r)

	return nil
}

func (s *Store) SaveSplit(_ context.Context, sp *sales.Split) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sp.ID == uuid.Nil {
		sp.ID = uuid.New()
	}

	for i, existing := range s.splits {
		if existing.ID == sp.ID {
			s.splits[i] = sp
			return nil
		}
	}

	s.splits = append(s.splits, sp)

	return nil
}
