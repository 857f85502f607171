package store

import (
	"context"
	"slices"
	"sync"

	"github.com/mise-ops/chobo/internal/costsetting"
)

// Store is the in-memory cost category settings store. First read seeds
// the default mapping and persists it; later reads merge defaults for
// any category missing from persisted state.
type Store struct {
	mu    sync.RWMutex
	items map[string][]costsetting.Setting
}

func New() *Store {
	return &Store{items: make(map[string][]costsetting.Setting)}
}

func (s *Store) LoadSettings(_ context.Context, storeID string) ([]costsetting.Setting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if current, ok := s.items[storeID]; ok {
		return costsetting.MergeDefaults(current), nil
	}

	seeded := costsetting.DefaultSettings()
	s.items[storeID] = slices.Clone(seeded)

	return seeded, nil
}

func (s *Store) SaveSettings(_ context.Context, storeID string, settings []costsetting.Setting) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[storeID] = slices.Clone(settings)

	return nil
}
