package report

import (
	"time"

	"github.com/mise-ops/chobo/internal/expense"
	"github.com/mise-ops/chobo/internal/sales"
	"github.com/mise-ops/chobo/internal/timecard"
)

// DailyRow is one calendar day's derived metrics. Pointer fields are
// absent (not zero) when no confirmed or approved closing exists for the
// day, and for ratios with no denominator data.
type DailyRow struct {
	Date      time.Time `json:"date"`
	DateKey   string    `json:"date_key"`
	StoreID   string    `json:"store_id"`
	StoreName string    `json:"store_name"`

	SalesTotalInclTax    int64 `json:"sales_total_incl_tax"`
	SalesSubtotalExclTax int64 `json:"sales_subtotal_excl_tax"`
	SalesTaxTotal        int64 `json:"sales_tax_total"`

	SalesCashInclTax  int64 `json:"sales_cash_incl_tax"`
	SalesCardInclTax  int64 `json:"sales_card_incl_tax"`
	SalesQRInclTax    int64 `json:"sales_qr_incl_tax"`
	SalesOtherInclTax int64 `json:"sales_other_incl_tax"`

	GuestCount int `json:"guest_count"`

	ExpensesTotal int64    `json:"expenses_total"`
	COGSTotal     int64    `json:"cogs_total"`
	COGSRatio     *float64 `json:"cogs_ratio,omitempty"`

	CashInTotal  int64 `json:"cash_in_total"`
	CashOutTotal int64 `json:"cash_out_total"`

	LaborMinutesTotal int `json:"labor_minutes_total"`

	ExpectedCashBalance *int64 `json:"expected_cash_balance,omitempty"`
	ActualCashBalance   *int64 `json:"actual_cash_balance,omitempty"`
	ClosingDifference   *int64 `json:"closing_difference,omitempty"`
	ClosingIssueFlag    *bool  `json:"closing_issue_flag,omitempty"`
}

// MonthlyKPI is the month-grain headline block. Ratios are recomputed
// from monthly sums, never averaged from daily ratios.
type MonthlyKPI struct {
	SalesTotalInclTax    int64 `json:"sales_total_incl_tax"`
	SalesSubtotalExclTax int64 `json:"sales_subtotal_excl_tax"`
	SalesTaxTotal        int64 `json:"sales_tax_total"`

	ReceiptCount       int      `json:"receipt_count"`
	GuestCount         int      `json:"guest_count"`
	AvgSpendPerGuest   *float64 `json:"avg_spend_per_guest,omitempty"`
	AvgSpendPerReceipt *float64 `json:"avg_spend_per_receipt,omitempty"`

	PayCash  int64 `json:"pay_cash"`
	PayCard  int64 `json:"pay_card"`
	PayQR    int64 `json:"pay_qr"`
	PayOther int64 `json:"pay_other"`
	PayTotal int64 `json:"pay_total"`

	CashRatio  *float64 `json:"cash_ratio,omitempty"`
	CardRatio  *float64 `json:"card_ratio,omitempty"`
	QRRatio    *float64 `json:"qr_ratio,omitempty"`
	OtherRatio *float64 `json:"other_ratio,omitempty"`

	COGSTotal        int64    `json:"cogs_total"`
	GrossProfit      int64    `json:"gross_profit"`
	COGSRatio        *float64 `json:"cogs_ratio,omitempty"`
	GrossMarginRatio *float64 `json:"gross_margin_ratio,omitempty"`

	ExpensesTotal int64 `json:"expenses_total"`

	ClosingDifferenceTotal int64 `json:"closing_difference_total"`
	ClosingIssueDays       int   `json:"closing_issue_days"`
	DepositToBankTotal     int64 `json:"deposit_to_bank_total"`

	LaborMinutesTotal int      `json:"labor_minutes_total"`
	SalesPerLaborHour *float64 `json:"sales_per_labor_hour,omitempty"`
}

// CategoryAmount is one expense category's monthly spend.
type CategoryAmount struct {
	Category expense.Category `json:"category"`
	Amount   int64            `json:"amount"`
}

// MethodAmount is one payment method's monthly volume.
type MethodAmount struct {
	Method sales.PaymentMethod `json:"method"`
	Amount int64               `json:"amount"`
}

// VendorAmount is one vendor's monthly spend under its resolved display
// name.
type VendorAmount struct {
	Name   string `json:"name"`
	Amount int64  `json:"amount"`
}

// MonthlyBreakdowns holds the month-grain groupings, computed directly
// from the month's filtered record sets rather than from the daily
// series.
type MonthlyBreakdowns struct {
	COGSByCategory     []CategoryAmount `json:"cogs_by_category"`
	ExpensesByCategory []CategoryAmount `json:"expenses_by_category"`
	PaymentsByMethod   []MethodAmount   `json:"payments_by_method"`
	ExpensesByVendor   []VendorAmount   `json:"expenses_by_vendor"`
}

// Warning codes.
const WarnSalesPaymentMismatch = "sales_payment_mismatch"

// Warning is one cross-record consistency finding. The engine only
// reports discrepancies, it never corrects data.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Value   int64  `json:"value"`
}

// MonthlyReport is the month-grain output value. It is fully recomputed
// on every request and never persisted.
type MonthlyReport struct {
	Month     string `json:"month"`
	StoreID   string `json:"store_id"`
	StoreName string `json:"store_name"`

	KPI        MonthlyKPI        `json:"kpi"`
	Breakdowns MonthlyBreakdowns `json:"breakdowns"`
	Warnings   []Warning         `json:"warnings"`
}

// MonthlySummary is the flat single-row summary backing the monthly
// summary CSV.
type MonthlySummary struct {
	YearMonth string `json:"year_month"`
	StoreID   string `json:"store_id"`
	StoreName string `json:"store_name"`

	SalesTotalInclTax int64 `json:"sales_total_incl_tax"`
	SalesCashInclTax  int64 `json:"sales_cash_incl_tax"`
	SalesCardInclTax  int64 `json:"sales_card_incl_tax"`
	SalesQRInclTax    int64 `json:"sales_qr_incl_tax"`
	SalesOtherInclTax int64 `json:"sales_other_incl_tax"`

	SalesSubtotalExclTax int64 `json:"sales_subtotal_excl_tax"`
	SalesTaxTotal        int64 `json:"sales_tax_total"`

	ExpensesTotal      int64 `json:"expenses_total"`
	ExpensesFood       int64 `json:"expenses_food"`
	ExpensesDrink      int64 `json:"expenses_drink"`
	ExpensesConsumable int64 `json:"expenses_consumable"`
	ExpensesUtility    int64 `json:"expenses_utility"`
	ExpensesMisc       int64 `json:"expenses_misc"`

	CashInTotal               int64 `json:"cash_in_total"`
	CashOutTotal              int64 `json:"cash_out_total"`
	CashOutPurchaseTotal      int64 `json:"cash_out_purchase_total"`
	CashOutReimburseTotal     int64 `json:"cash_out_reimburse_total"`
	CashOutDepositToBankTotal int64 `json:"cash_out_deposit_to_bank_total"`

	ClosingDifferenceTotal int64 `json:"closing_difference_total"`
	ClosingIssueDays       int   `json:"closing_issue_days"`
}

// AttendanceRow is one time record prepared for the attendance export.
type AttendanceRow struct {
	EmployeeID    int             `json:"employee_id"`
	EmployeeName  string          `json:"employee_name"`
	Date          time.Time       `json:"date"`
	ClockIn       *time.Time      `json:"clock_in,omitempty"`
	ClockOut      *time.Time      `json:"clock_out,omitempty"`
	BreakMinutes  int             `json:"break_minutes"`
	WorkedMinutes int             `json:"worked_minutes"`
	Status        timecard.Status `json:"status"`
}
