package reportcsv_test

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mise-ops/chobo/internal/report"
	"github.com/mise-ops/chobo/internal/reportcsv"
	"github.com/mise-ops/chobo/internal/timecard"
)

func TestWriteMonthlySummary_RoundTrip(t *testing.T) {
	summary := &report.MonthlySummary{
		YearMonth:                 "2024-06",
		StoreID:                   "store-001",
		StoreName:                 "炉端、焼き",
		SalesTotalInclTax:         1234567,
		SalesCashInclTax:          500000,
		SalesCardInclTax:          600000,
		SalesQRInclTax:            100000,
		SalesOtherInclTax:         34567,
		SalesSubtotalExclTax:      1122334,
		SalesTaxTotal:             112233,
		ExpensesTotal:             400000,
		ExpensesFood:              250000,
		ExpensesDrink:             80000,
		ExpensesConsumable:        30000,
		ExpensesUtility:           25000,
		ExpensesMisc:              15000,
		CashInTotal:               90000,
		CashOutTotal:              120000,
		CashOutPurchaseTotal:      50000,
		CashOutReimburseTotal:     20000,
		CashOutDepositToBankTotal: 50000,
		ClosingDifferenceTotal:    -1500,
		ClosingIssueDays:          2,
	}

	var buf bytes.Buffer
	require.NoError(t, reportcsv.WriteMonthlySummary(&buf, summary))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	header, row := records[0], records[1]
	require.Len(t, row, len(header))

	byName := make(map[string]string, len(header))
	for i, name := range header {
		byName[name] = row[i]
	}

	assert.Equal(t, "2024-06", byName["year_month"])
	// Store name with a comma must survive the escaping round trip.
	assert.Equal(t, "炉端、焼き", byName["store_name"])

	// Integer currency columns must re-parse to the exact originals.
	intCols := map[string]int64{
		"sales_total_incl_tax":           summary.SalesTotalInclTax,
		"sales_cash_incl_tax":            summary.SalesCashInclTax,
		"sales_card_incl_tax":            summary.SalesCardInclTax,
		"sales_qr_incl_tax":              summary.SalesQRInclTax,
		"sales_other_incl_tax":           summary.SalesOtherInclTax,
		"sales_subtotal_excl_tax":        summary.SalesSubtotalExclTax,
		"sales_tax_total":                summary.SalesTaxTotal,
		"expenses_total":                 summary.ExpensesTotal,
		"cash_in_total":                  summary.CashInTotal,
		"cash_out_total":                 summary.CashOutTotal,
		"cash_out_purchase_total":        summary.CashOutPurchaseTotal,
		"cash_out_reimburse_total":       summary.CashOutReimburseTotal,
		"cash_out_deposit_to_bank_total": summary.CashOutDepositToBankTotal,
		"closing_difference_total":       summary.ClosingDifferenceTotal,
	}

	for col, want := range intCols {
		got, err := strconv.ParseInt(byName[col], 10, 64)
		require.NoError(t, err, col)
		assert.Equal(t, want, got, col)
	}
}

func TestWriteMonthlyDaily(t *testing.T) {
	diff := int64(-100)
	expected := int64(53500)
	actual := int64(53400)
	issue := false

	rows := []report.DailyRow{
		{
			DateKey:           "2024-06-15",
			StoreID:           "store-001",
			StoreName:         "テスト店",
			SalesTotalInclTax: 10000,
			SalesCashInclTax:  6000,
			SalesCardInclTax:  4000,
			ExpensesTotal:     4500,
			CashInTotal:       20000,
			CashOutTotal:      2500,

			ExpectedCashBalance: &expected,
			ActualCashBalance:   &actual,
			ClosingDifference:   &diff,
			ClosingIssueFlag:    &issue,
		},
		// No counted closing: the last four columns stay empty.
		{
			DateKey:   "2024-06-16",
			StoreID:   "store-001",
			StoreName: "テスト店",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, reportcsv.WriteMonthlyDaily(&buf, rows))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{
		"date", "store_id", "store_name",
		"sales_total_incl_tax", "sales_subtotal_excl_tax", "sales_tax_total",
		"sales_cash_incl_tax", "sales_card_incl_tax", "sales_qr_incl_tax", "sales_other_incl_tax",
		"expenses_total",
		"cash_in_total", "cash_out_total",
		"expected_cash_balance", "actual_cash_balance", "difference", "issue_flag",
	}, records[0])

	withClosing := records[1]
	assert.Equal(t, "2024-06-15", withClosing[0])
	assert.Equal(t, "53500", withClosing[13])
	assert.Equal(t, "53400", withClosing[14])
	assert.Equal(t, "-100", withClosing[15])
	assert.Equal(t, "false", withClosing[16])

	withoutClosing := records[2]
	assert.Equal(t, "", withoutClosing[13])
	assert.Equal(t, "", withoutClosing[14])
	assert.Equal(t, "", withoutClosing[15])
	assert.Equal(t, "", withoutClosing[16])
}

func TestWriteAttendance(t *testing.T) {
	clockIn := time.Date(2024, 6, 2, 9, 5, 0, 0, time.UTC)
	clockOut := time.Date(2024, 6, 2, 17, 35, 0, 0, time.UTC)

	rows := []report.AttendanceRow{
		{
			EmployeeID:    1,
			EmployeeName:  "佐藤",
			Date:          time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
			ClockIn:       &clockIn,
			ClockOut:      &clockOut,
			BreakMinutes:  60,
			WorkedMinutes: 450,
			Status:        timecard.StatusApproved,
		},
		{
			EmployeeID:   99,
			EmployeeName: "従業員99",
			Date:         time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
			Status:       timecard.StatusDraft,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, reportcsv.WriteAttendance(&buf, rows))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{
		"employeeId", "employeeName", "date",
		"clockIn", "clockOut",
		"breakMinutes", "workedMinutes", "workedHours",
		"status",
	}, records[0])

	assert.Equal(t, []string{"1", "佐藤", "2024-06-02", "09:05", "17:35", "60", "450", "7.50", "approved"}, records[1])
	assert.Equal(t, []string{"99", "従業員99", "2024-06-03", "", "", "0", "0", "0.00", "draft"}, records[2])
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWrite_SinkFailure(t *testing.T) {
	err := reportcsv.WriteMonthlySummary(failingWriter{}, &report.MonthlySummary{YearMonth: "2024-06"})
	require.Error(t, err)
	assert.ErrorIs(t, err, reportcsv.ErrWrite)
	assert.True(t, strings.Contains(err.Error(), "disk full"))
}
