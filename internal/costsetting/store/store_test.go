package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mise-ops/chobo/internal/costsetting"
	"github.com/mise-ops/chobo/internal/costsetting/store"
	"github.com/mise-ops/chobo/internal/expense"
)

func TestStore_SeedsOnFirstRead(t *testing.T) {
	ctx := context.Background()
	s := store.New()

	settings, err := s.LoadSettings(ctx, "store-001")
	require.NoError(t, err)
	assert.Equal(t, costsetting.DefaultSettings(), settings)

	// The seed persists: a second read returns the same state.
	again, err := s.LoadSettings(ctx, "store-001")
	require.NoError(t, err)
	assert.Equal(t, settings, again)
}

func TestStore_MergesMissingCategoriesOnRead(t *testing.T) {
	ctx := context.Background()
	s := store.New()

	// Persist a partial, non-default state.
	require.NoError(t, s.SaveSettings(ctx, "store-001", []costsetting.Setting{
		{Category: expense.CategoryFood, IsCOGS: false},
		{Category: expense.CategoryDrink, IsCOGS: true},
	}))

	settings, err := s.LoadSettings(ctx, "store-001")
	require.NoError(t, err)
	require.Len(t, settings, len(expense.Categories))

	byCategory := make(map[expense.Category]bool)
	for _, st := range settings {
		byCategory[st.Category] = st.IsCOGS
	}

	// The persisted override survives the merge.
	assert.False(t, byCategory[expense.CategoryFood])
	assert.True(t, byCategory[expense.CategoryDrink])
	// Unpersisted categories come back with the default flag.
	assert.False(t, byCategory[expense.CategoryUtility])
}

func TestStore_PerStoreIsolation(t *testing.T) {
	ctx := context.Background()
	s := store.New()

	require.NoError(t, s.SaveSettings(ctx, "store-001", []costsetting.Setting{
		{Category: expense.CategoryUtility, IsCOGS: true},
	}))

	other, err := s.LoadSettings(ctx, "store-002")
	require.NoError(t, err)
	assert.Equal(t, costsetting.DefaultSettings(), other)
}
