package fixture_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"

	"github.com/mise-ops/chobo/internal/cashflow"
	cashflowstore "github.com/mise-ops/chobo/internal/cashflow/store"
	closingstore "github.com/mise-ops/chobo/internal/closing/store"
	"github.com/mise-ops/chobo/internal/expense"
	expensestore "github.com/mise-ops/chobo/internal/expense/store"
	"github.com/mise-ops/chobo/internal/fixture"
	"github.com/mise-ops/chobo/internal/sales"
	salesstore "github.com/mise-ops/chobo/internal/sales/store"
	"github.com/mise-ops/chobo/internal/timecard"
	timecardstore "github.com/mise-ops/chobo/internal/timecard/store"
	vendorstore "github.com/mise-ops/chobo/internal/vendors/store"
)

const testStoreID = "store-001"

func newStores() fixture.Stores {
	return fixture.Stores{
		Sales:       salesstore.New(),
		Expenses:    expensestore.New(),
		Cash:        cashflowstore.New(),
		Closings:    closingstore.New(),
		TimeRecords: timecardstore.New(),
		Vendors:     vendorstore.New(),
		Employees:   timecard.NewEmployeeDirectory(),
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoader_Load(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	writeFile(t, dir, "receipts.csv",
		"date,total_incl_tax,subtotal_excl_tax,tax_total,guest_count,status\n"+
			"2024-06-15,12000,10910,1090,4,posted\n"+
			"2024-06-15,-2000,-1819,-181,0,refunded\n"+
			"合計,,,,\n") // footer rows are skipped

	writeFile(t, dir, "payment_splits.csv",
		"date,method,amount_incl_tax\n"+
			"2024-06-15,cash,6000\n"+
			"2024-06-15,card,4000\n")

	writeFile(t, dir, "expenses.csv",
		"date,amount,category,payment_method,vendor_name,status\n"+
			"2024-06-15,3000,food,cash,豊洲水産,approved\n"+
			"2024-06-16,1500,utility,bank_transfer,,approved\n")

	writeFile(t, dir, "cash_transactions.csv",
		"date,time,type,category,amount\n"+
			"2024-06-15,09:30,in,change-prep,20000\n"+
			"2024-06-15,,out,,2500\n")

	writeFile(t, dir, "closings.csv",
		"date,previous_cash_balance,cash_sales,cash_in_total,cash_out_total,actual_cash_balance,status\n"+
			"2024-06-15,30000,6000,20000,2500,53400,confirmed\n")

	writeFile(t, dir, "time_records.csv",
		"employee_id,date,clock_in,clock_out,break_minutes,status\n"+
			"1,2024-06-15,09:00,18:00,60,approved\n")

	writeFile(t, dir, "employees.csv",
		"id,name,role\n"+
			"1,佐藤,kitchen\n")

	stores := newStores()
	loader := fixture.NewLoader(stores, testStoreID)
	require.NoError(t, loader.Load(ctx, dir))

	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	receipts, err := stores.Sales.FetchReceipts(ctx, testStoreID, from, to, sales.RevenueStatuses)
	require.NoError(t, err)
	require.Len(t, receipts, 2)
	assert.Equal(t, int64(12000), receipts[0].TotalInclTax)
	assert.Equal(t, 4, receipts[0].GuestCount)

	splits, err := stores.Sales.FetchPaymentSplits(ctx, testStoreID, from, to)
	require.NoError(t, err)
	require.Len(t, splits, 2)

	expenses, err := stores.Expenses.FetchExpenses(ctx, testStoreID, from, to, expense.Filter{})
	require.NoError(t, err)
	require.Len(t, expenses, 2)
	assert.Equal(t, "豊洲水産", expenses[0].VendorNameRaw)

	cash, err := stores.Cash.FetchTransactions(ctx, testStoreID, from, to, cashflow.Filter{})
	require.NoError(t, err)
	require.Len(t, cash, 2)
	require.NotNil(t, cash[0].Time)
	assert.Equal(t, 9, cash[0].Time.Hour())
	assert.Nil(t, cash[1].Category)

	c, err := stores.Closings.LoadClosing(ctx, testStoreID, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, int64(-100), c.Difference())

	records, err := stores.TimeRecords.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 480, records[0].WorkedMinutes())

	assert.Equal(t, "佐藤", stores.Employees.Name(1))
}

func TestLoader_Load_ShiftJIS(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	content := "date,amount,category,vendor_name,memo\n" +
		"2024-06-15,3000,food,豊洲水産,鮮魚の仕入れ。本日の営業分としてまとめて発注したもの。\n" +
		"2024-06-16,1200,drink,町の酒屋,瓶ビールと日本酒の補充。週末の宴会予約に備えた追加分。\n"

	sjis, err := japanese.ShiftJIS.NewEncoder().Bytes([]byte(content))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "expenses.csv"), sjis, 0o644))

	stores := newStores()
	require.NoError(t, fixture.NewLoader(stores, testStoreID).Load(ctx, dir))

	expenses, err := stores.Expenses.FetchExpenses(ctx, testStoreID,
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		expense.Filter{})
	require.NoError(t, err)
	require.Len(t, expenses, 2)
	assert.Equal(t, "豊洲水産", expenses[0].VendorNameRaw)
	assert.Equal(t, "町の酒屋", expenses[1].VendorNameRaw)
}

func TestLoader_Load_MissingDir(t *testing.T) {
	stores := newStores()
	loader := fixture.NewLoader(stores, testStoreID)

	require.NoError(t, loader.Load(context.Background(), filepath.Join(t.TempDir(), "nope")))
	require.NoError(t, loader.Load(context.Background(), ""))
}
