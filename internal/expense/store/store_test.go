package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mise-ops/chobo/internal/expense"
	"github.com/mise-ops/chobo/internal/expense/store"
)

func day(d int) time.Time {
	return time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC)
}

func seed(t *testing.T, s *store.Store) {
	t.Helper()
	ctx := context.Background()

	empID := 7

	expenses := []*expense.Expense{
		{StoreID: "store-001", Date: day(5), Amount: 3000, Category: expense.CategoryFood,
			PaymentMethod: expense.PayCash, Status: expense.StatusApproved},
		{StoreID: "store-001", Date: day(10), Amount: 1500, Category: expense.CategoryUtility,
			PaymentMethod: expense.PayBankTransfer, Status: expense.StatusApproved},
		{StoreID: "store-001", Date: day(12), Amount: 800, Category: expense.CategoryMisc,
			PaymentMethod: expense.PayEmployeeAdvance, EmployeeID: &empID, Status: expense.StatusApproved},
		{StoreID: "store-001", Date: day(15), Amount: 2000, Category: expense.CategoryFood,
			PaymentMethod: expense.PayCard, Status: expense.StatusDraft},
	}
	for _, e := range expenses {
		require.NoError(t, s.Save(ctx, e))
	}
}

func TestStore_FetchExpenses_Filters(t *testing.T) {
	s := store.New()
	seed(t, s)

	ctx := context.Background()
	from, to := day(1), day(30)

	t.Run("All", func(t *testing.T) {
		got, err := s.FetchExpenses(ctx, "store-001", from, to, expense.Filter{})
		require.NoError(t, err)
		assert.Len(t, got, 4)
	})

	t.Run("ByStatus", func(t *testing.T) {
		approved := expense.StatusApproved

		got, err := s.FetchExpenses(ctx, "store-001", from, to, expense.Filter{Status: &approved})
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("ByCategory", func(t *testing.T) {
		food := expense.CategoryFood

		got, err := s.FetchExpenses(ctx, "store-001", from, to, expense.Filter{Category: &food})
		require.NoError(t, err)
		require.Len(t, got, 2)
		// Date ascending.
		assert.Equal(t, int64(3000), got[0].Amount)
		assert.Equal(t, int64(2000), got[1].Amount)
	})

	t.Run("ByPaymentMethod", func(t *testing.T) {
		advance := expense.PayEmployeeAdvance

		got, err := s.FetchExpenses(ctx, "store-001", from, to, expense.Filter{PaymentMethod: &advance})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(800), got[0].Amount)
	})

	t.Run("ByEmployee", func(t *testing.T) {
		empID := 7

		got, err := s.FetchExpenses(ctx, "store-001", from, to, expense.Filter{EmployeeID: &empID})
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("OtherStoreEmpty", func(t *testing.T) {
		got, err := s.FetchExpenses(ctx, "store-002", from, to, expense.Filter{})
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestStore_FindByID_Delete(t *testing.T) {
	ctx := context.Background()
	s := store.New()

	e := &expense.Expense{StoreID: "store-001", Date: day(5), Amount: 3000,
		Category: expense.CategoryFood, Status: expense.StatusApproved}
	require.NoError(t, s.Save(ctx, e))

	got, err := s.FindByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, e.Amount, got.Amount)

	require.NoError(t, s.Delete(ctx, e.ID))

	_, err = s.FindByID(ctx, e.ID)
	assert.ErrorIs(t, err, expense.ErrNotFound)
}
