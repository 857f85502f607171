package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mise-ops/chobo/internal/businessday"
	"github.com/mise-ops/chobo/internal/closing"
)

// Store is the in-memory daily closing store, keyed by store and
// calendar day (one closing per day).
type Store struct {
	mu    sync.RWMutex
	items map[string]*closing.DailyClosing
}

func New() *Store {
	return &Store{items: make(map[string]*closing.DailyClosing)}
}

func key(storeID string, date time.Time) string {
	return storeID + "/" + businessday.Key(date)
}

func (s *Store) LoadClosing(_ context.Context, storeID string, date time.Time) (*closing.DailyClosing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.items[key(storeID, date)], nil
}

func (s *Store) SaveClosing(_ context.Context, c *closing.DailyClosing) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	s.items[key(c.StoreID, c.Date)] = c

	return nil
}
