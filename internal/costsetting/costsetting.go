// Package costsetting holds the per-store mapping of expense categories
// to the cost-of-goods-sold flag that drives COGS aggregation.
package costsetting

import (
	"context"

	"github.com/mise-ops/chobo/internal/expense"
)

// Setting marks one expense category as COGS or not for a store.
type Setting struct {
	Category expense.Category
	IsCOGS   bool
}

// DefaultSettings returns the seeded mapping: food and drink are COGS,
// everything else is not.
func DefaultSettings() []Setting {
	out := make([]Setting, 0, len(expense.Categories))
	for _, c := range expense.Categories {
		out = append(out, Setting{
			Category: c,
			IsCOGS:   c == expense.CategoryFood || c == expense.CategoryDrink,
		})
	}

	return out
}

// MergeDefaults re-seeds any category missing from persisted state so
// that categories added after a store first saved its settings pick up
// the default flag. Persisted flags are never overwritten.
func MergeDefaults(current []Setting) []Setting {
	byCategory := make(map[expense.Category]Setting, len(current))
	for _, s := range current {
		byCategory[s.Category] = s
	}

	out := make([]Setting, 0, len(expense.Categories))

	for _, def := range DefaultSettings() {
		if s, ok := byCategory[def.Category]; ok {
			out = append(out, s)
			continue
		}

		out = append(out, def)
	}

	return out
}

// COGSCategories returns the set of categories flagged as COGS.
func COGSCategories(settings []Setting) map[expense.Category]bool {
	out := make(map[expense.Category]bool)

	for _, s := range settings {
		if s.IsCOGS {
			out[s.Category] = true
		}
	}

	return out
}

//go:generate mockgen -source=costsetting.go -destination=repository_mock.go -package=costsetting
type Repository interface {
	// LoadSettings returns the store's settings, seeding the default on
	// first read and merging in defaults for any missing category.
	LoadSettings(ctx context.Context, storeID string) ([]Setting, error)
	SaveSettings(ctx context.Context, storeID string, settings []Setting) error
}
