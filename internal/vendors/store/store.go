package store

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/mise-ops/chobo/internal/vendors"
)

// Store is the in-memory vendor registry.
type Store struct {
	mu    sync.RWMutex
	items []*vendor.Vendor
}

func New() *Store {
	return &Store{}
}

func (s *Store) FetchVendors(_ context.Context, storeID string, filter vendor.Filter) ([]*vendor.Vendor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var q string
	if filter.Search != nil {
		q = strings.ToLower(strings.TrimSpace(*filter.Search))
	}

	var out []*vendor.Vendor

	for _, v := range s.items {
		if v.StoreID != storeID {
			continue
		}

		if q != "" && !strings.Contains(strings.ToLower(v.Name), q) {
			continue
		}

		if filter.Category != nil && v.Category != *filter.Category {
			continue
		}

		if filter.IsActive != nil && v.IsActive != *filter.IsActive {
			continue
		}

		out = append(out, v)
	}

	slices.SortStableFunc(out, func(a, b *vendor.Vendor) int {
		return strings.Compare(a.Name, b.Name)
	})

	return out, nil
}

func (s *Store) FindByID(_ context.Context, id uuid.UUID) (*vendor.Vendor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, v := range s.items {
		if v.ID == id {
			return v, nil
		}
	}

	return nil, vendor.ErrNotFound
}

func (s *Store) Save(_ context.Context, v *vendor.Vendor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}

	for i, existing := range s.items {
		if existing.ID == v.ID {
			s.items[i] = v
			return nil
		}
	}

	s.items = append(s.items, v)

	return nil
}

func (s *Store) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = slices.DeleteFunc(s.items, func(v *vendor.Vendor) bool {
		return v.ID == id
	})

	return nil
}
