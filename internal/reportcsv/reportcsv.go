// Package reportcsv renders report values as CSV. It is a pure
// formatting layer: all numbers arrive already computed.
package reportcsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/mise-ops/chobo/internal/report"
)

// ErrWrite marks a failure of the underlying sink, as opposed to a bad
// report value (which cannot occur: every value serializes).
var ErrWrite = errors.New("csv write failed")

var monthlySummaryHeader = []string{
	"year_month", "store_id", "store_name",
	"sales_total_incl_tax",
	"sales_cash_incl_tax", "sales_card_incl_tax", "sales_qr_incl_tax", "sales_other_incl_tax",
	"sales_subtotal_excl_tax", "sales_tax_total",
	"expenses_total",
	"expenses_food", "expenses_drink", "expenses_consumable", "expenses_utility", "expenses_misc",
	"cash_in_total", "cash_out_total",
	"cash_out_purchase_total", "cash_out_reimburse_total", "cash_out_deposit_to_bank_total",
	"closing_difference_total", "closing_issue_days",
}

var monthlyDailyHeader = []string{
	"date", "store_id", "store_name",
	"sales_total_incl_tax", "sales_subtotal_excl_tax", "sales_tax_total",
	"sales_cash_incl_tax", "sales_card_incl_tax", "sales_qr_incl_tax", "sales_other_incl_tax",
	"expenses_total",
	"cash_in_total", "cash_out_total",
	"expected_cash_balance", "actual_cash_balance", "difference", "issue_flag",
}

var attendanceHeader = []string{
	"employeeId", "employeeName", "date",
	"clockIn", "clockOut",
	"breakMinutes", "workedMinutes", "workedHours",
	"status",
}

// WriteMonthlySummary renders the single-row monthly summary.
func WriteMonthlySummary(w io.Writer, s *report.MonthlySummary) error {
	row := []string{
		s.YearMonth, s.StoreID, s.StoreName,
		i64(s.SalesTotalInclTax),
		i64(s.SalesCashInclTax), i64(s.SalesCardInclTax), i64(s.SalesQRInclTax), i64(s.SalesOtherInclTax),
		i64(s.SalesSubtotalExclTax), i64(s.SalesTaxTotal),
		i64(s.ExpensesTotal),
		i64(s.ExpensesFood), i64(s.ExpensesDrink), i64(s.ExpensesConsumable), i64(s.ExpensesUtility), i64(s.ExpensesMisc),
		i64(s.CashInTotal), i64(s.CashOutTotal),
		i64(s.CashOutPurchaseTotal), i64(s.CashOutReimburseTotal), i64(s.CashOutDepositToBankTotal),
		i64(s.ClosingDifferenceTotal), strconv.Itoa(s.ClosingIssueDays),
	}

	return writeAll(w, monthlySummaryHeader, [][]string{row})
}

// WriteMonthlyDaily renders one row per day of the series. Closing
// columns are empty, not zero, on days without a confirmed or approved
// closing.
func WriteMonthlyDaily(w io.Writer, rows []report.DailyRow) error {
	records := make([][]string, 0, len(rows))

	for _, d := range rows {
		records = append(records, []string{
			d.DateKey, d.StoreID, d.StoreName,
			i64(d.SalesTotalInclTax), i64(d.SalesSubtotalExclTax), i64(d.SalesTaxTotal),
			i64(d.SalesCashInclTax), i64(d.SalesCardInclTax), i64(d.SalesQRInclTax), i64(d.SalesOtherInclTax),
			i64(d.ExpensesTotal),
			i64(d.CashInTotal), i64(d.CashOutTotal),
			optI64(d.ExpectedCashBalance), optI64(d.ActualCashBalance), optI64(d.ClosingDifference),
			optBool(d.ClosingIssueFlag),
		})
	}

	return writeAll(w, monthlyDailyHeader, records)
}

// WriteAttendance renders one row per time record. Clock times render
// as HH:MM, worked hours with two decimals.
func WriteAttendance(w io.Writer, rows []report.AttendanceRow) error {
	records := make([][]string, 0, len(rows))

	for _, r := range rows {
		records = append(records, []string{
			strconv.Itoa(r.EmployeeID), r.EmployeeName,
			r.Date.Format(time.DateOnly),
			hhmm(r.ClockIn), hhmm(r.ClockOut),
			strconv.Itoa(r.BreakMinutes), strconv.Itoa(r.WorkedMinutes),
			strconv.FormatFloat(float64(r.WorkedMinutes)/60.0, 'f', 2, 64),
			string(r.Status),
		})
	}

	return writeAll(w, attendanceHeader, records)
}

func writeAll(w io.Writer, header []string, records [][]string) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("%w: writing header: %w", ErrWrite, err)
	}

	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("%w: writing rows: %w", ErrWrite, err)
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: flushing: %w", ErrWrite, err)
	}

	return nil
}

func i64(v int64) string {
	return strconv.FormatInt(v, 10)
}

func optI64(v *int64) string {
	if v == nil {
		return ""
	}

	return i64(*v)
}

func optBool(v *bool) string {
	if v == nil {
		return ""
	}

	return strconv.FormatBool(*v)
}

func hhmm(t *time.Time) string {
	if t == nil {
		return ""
	}

	return t.Format("15:04")
}
