package store

import (
	"context"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mise-ops/chobo/internal/businessday"
	"github.com/mise-ops/chobo/internal/timecard"
)

// Store is the in-memory time record store, keyed by employee and
// calendar day (one record per employee per day).
type Store struct {
	mu    sync.RWMutex
	items map[string]*timecard.TimeRecord
}

func New() *Store {
	return &Store{items: make(map[string]*timecard.TimeRecord)}
}

func key(employeeID int, date time.Time) string {
	return businessday.Key(date) + "/" + strconv.Itoa(employeeID)
}

func (s *Store) Load(_ context.Context, employeeID int, date time.Time) (*timecard.TimeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.items[key(employeeID, date)], nil
}

func (s *Store) Save(_ context.Context, r *timecard.TimeRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}

	s.items[key(r.EmployeeID, r.Date)] = r

	return nil
}

func (s *Store) Delete(_ context.Context, employeeID int, date time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, key(employeeID, date))

	return nil
}

func (s *Store) LoadAll(_ context.Context) ([]*timecard.TimeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*timecard.TimeRecord, 0, len(s.items))
	for _, r := range s.items {
		out = append(out, r)
	}

	slices.SortFunc(out, func(a, b *timecard.TimeRecord) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}

		return a.EmployeeID - b.EmployeeID
	})

	return out, nil
}
