package costsetting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mise-ops/chobo/internal/costsetting"
	"github.com/mise-ops/chobo/internal/expense"
)

func TestDefaultSettings(t *testing.T) {
	defaults := costsetting.DefaultSettings()
	require.Len(t, defaults, len(expense.Categories))

	byCategory := make(map[expense.Category]bool)
	for _, s := range defaults {
		byCategory[s.Category] = s.IsCOGS
	}

	assert.True(t, byCategory[expense.CategoryFood])
	assert.True(t, byCategory[expense.CategoryDrink])
	assert.False(t, byCategory[expense.CategoryConsumable])
	assert.False(t, byCategory[expense.CategoryUtility])
	assert.False(t, byCategory[expense.CategoryMisc])
	assert.False(t, byCategory[expense.CategoryTransportation])
	assert.False(t, byCategory[expense.CategoryEquipment])
}

func TestMergeDefaults(t *testing.T) {
	// Persisted state predates the transportation and equipment
	// categories and flips two flags away from the default.
	persisted := []costsetting.Setting{
		{Category: expense.CategoryFood, IsCOGS: false},
		{Category: expense.CategoryDrink, IsCOGS: true},
		{Category: expense.CategoryConsumable, IsCOGS: true},
		{Category: expense.CategoryUtility, IsCOGS: false},
		{Category: expense.CategoryMisc, IsCOGS: false},
	}

	merged := costsetting.MergeDefaults(persisted)
	require.Len(t, merged, len(expense.Categories))

	byCategory := make(map[expense.Category]bool)
	for _, s := range merged {
		byCategory[s.Category] = s.IsCOGS
	}

	// Persisted flags survive, even when they contradict the default.
	assert.False(t, byCategory[expense.CategoryFood])
	assert.True(t, byCategory[expense.CategoryConsumable])

	// Missing categories pick up the default.
	assert.False(t, byCategory[expense.CategoryTransportation])
	assert.False(t, byCategory[expense.CategoryEquipment])
}

func TestCOGSCategories(t *testing.T) {
	set := costsetting.COGSCategories([]costsetting.Setting{
		{Category: expense.CategoryFood, IsCOGS: true},
		{Category: expense.CategoryUtility, IsCOGS: false},
	})

	assert.True(t, set[expense.CategoryFood])
	assert.False(t, set[expense.CategoryUtility])
	assert.False(t, set[expense.CategoryDrink])
}
