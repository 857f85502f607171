package report

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mise-ops/chobo/internal/businessday"
	"github.com/mise-ops/chobo/internal/cashflow"
	"github.com/mise-ops/chobo/internal/closing"
	"github.com/mise-ops/chobo/internal/costsetting"
	"github.com/mise-ops/chobo/internal/expense"
	"github.com/mise-ops/chobo/internal/sales"
	"github.com/mise-ops/chobo/internal/timecard"
	"github.com/mise-ops/chobo/internal/vendors"
)

// UnassignedVendorLabel is the vendor-breakdown bucket for spend that
// resolves to no registered vendor and carries no free-text name.
const UnassignedVendorLabel = "unassigned/other"

// VendorBreakdownLimit caps the vendor breakdown to the top spenders.
const VendorBreakdownLimit = 10

// Stores bundles the record stores the aggregator reads from. The
// aggregator owns no state of its own; every report is a pure function
// of the stores' current contents.
type Stores struct {
	Sales        sales.Repository
	Expenses     expense.Repository
	Cash         cashflow.Repository
	Closings     closing.Repository
	TimeRecords  timecard.Repository
	CostSettings costsetting.Repository
	Vendors      vendor.Repository
}

// Service derives daily and monthly reports for a single store.
type Service struct {
	stores    Stores
	employees *timecard.EmployeeDirectory
	storeName string
}

func NewService(stores Stores, employees *timecard.EmployeeDirectory, storeName string) *Service {
	return &Service{
		stores:    stores,
		employees: employees,
		storeName: storeName,
	}
}

// ComputeDay derives one calendar day's metrics. A day with no records
// yields all-zero sums and absent ratios, never an error.
func (s *Service) ComputeDay(ctx context.Context, storeID string, day time.Time) (DailyRow, error) {
	rows, err := s.ComputeDailyRange(ctx, storeID, day, day)
	if err != nil {
		return DailyRow{}, err
	}

	return rows[0], nil
}

// ComputeDailyRange derives one row per calendar day from from through
// to, inclusive, in ascending date order. The series is deterministic:
// recomputing it over unchanged stores yields identical output.
func (s *Service) ComputeDailyRange(ctx context.Context, storeID string, from, to time.Time) ([]DailyRow, error) {
	fromDay := businessday.Truncate(from)
	toDay := businessday.Truncate(to)

	if fromDay.After(toDay) {
		return nil, ErrInvalidRange
	}

	src, err := s.fetchRange(ctx, storeID, fromDay, toDay)
	if err != nil {
		return nil, err
	}

	receiptsByDay := groupByDay(src.receipts, func(r *sales.Receipt) time.Time { return r.BusinessDate })
	splitsByDay := groupByDay(src.splits, func(sp *sales.Split) time.Time { return sp.BusinessDate })
	expensesByDay := groupByDay(src.expenses, func(e *expense.Expense) time.Time { return e.Date })
	cashByDay := groupByDay(src.cash, func(tx *cashflow.Transaction) time.Time { return tx.Date })
	timeByDay := groupByDay(src.timeRecords, func(r *timecard.TimeRecord) time.Time { return r.Date })

	rows := make([]DailyRow, 0, len(daysInRange(fromDay, toDay)))

	for _, day := range daysInRange(fromDay, toDay) {
		key := businessday.Key(day)

		row := DailyRow{
			Date:      day,
			DateKey:   key,
			StoreID:   storeID,
			StoreName: s.storeName,
		}

		for _, r := range receiptsByDay[key] {
			row.SalesTotalInclTax += r.TotalInclTax
			row.SalesSubtotalExclTax += r.SubtotalExclTax
			row.SalesTaxTotal += r.TaxTotal
			row.GuestCount += r.GuestCount
		}

		for _, sp := range splitsByDay[key] {
			switch sp.Method {
			case sales.MethodCash:
				row.SalesCashInclTax += sp.AmountInclTax
			case sales.MethodCard:
				row.SalesCardInclTax += sp.AmountInclTax
			case sales.MethodQR:
				row.SalesQRInclTax += sp.AmountInclTax
			case sales.MethodOther:
				row.SalesOtherInclTax += sp.AmountInclTax
			}
		}

		for _, e := range expensesByDay[key] {
			row.ExpensesTotal += e.Amount
			if src.cogs[e.Category] {
				row.COGSTotal += e.Amount
			}
		}

		for _, tx := range cashByDay[key] {
			switch tx.Type {
			case cashflow.TypeIn:
				row.CashInTotal += tx.Amount
			case cashflow.TypeOut:
				row.CashOutTotal += tx.Amount
			}
		}

		for _, r := range timeByDay[key] {
			row.LaborMinutesTotal += r.WorkedMinutes()
		}

		row.COGSRatio = SafeRatio(float64(row.COGSTotal), float64(row.SalesTotalInclTax))

		if err := s.applyClosing(ctx, storeID, day, &row); err != nil {
			return nil, err
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// ComputeMonthlyDaily derives the daily series for every calendar day of
// the month containing date.
func (s *Service) ComputeMonthlyDaily(ctx context.Context, storeID string, date time.Time) ([]DailyRow, error) {
	start, end, err := monthRange(date)
	if err != nil {
		return nil, err
	}

	return s.ComputeDailyRange(ctx, storeID, start, end)
}

// ComputeMonth derives the month-grain report for the month containing
// date. Totals equal the per-field sum of the daily series; ratios and
// breakdowns are computed at month grain from the month's record sets.
func (s *Service) ComputeMonth(ctx context.Context, storeID string, date time.Time) (*MonthlyReport, error) {
	start, end, err := monthRange(date)
	if err != nil {
		return nil, err
	}

	src, err := s.fetchRange(ctx, storeID, start, end)
	if err != nil {
		return nil, err
	}

	kpi := MonthlyKPI{ReceiptCount: len(src.receipts)}

	for _, r := range src.receipts {
		kpi.SalesTotalInclTax += r.TotalInclTax
		kpi.SalesSubtotalExclTax += r.SubtotalExclTax
		kpi.SalesTaxTotal += r.TaxTotal
		kpi.GuestCount += r.GuestCount
	}

	for _, sp := range src.splits {
		switch sp.Method {
		case sales.MethodCash:
			kpi.PayCash += sp.AmountInclTax
		case sales.MethodCard:
			kpi.PayCard += sp.AmountInclTax
		case sales.MethodQR:
			kpi.PayQR += sp.AmountInclTax
		case sales.MethodOther:
			kpi.PayOther += sp.AmountInclTax
		}
	}

	kpi.PayTotal = kpi.PayCash + kpi.PayCard + kpi.PayQR + kpi.PayOther

	for _, e := range src.expenses {
		kpi.ExpensesTotal += e.Amount
		if src.cogs[e.Category] {
			kpi.COGSTotal += e.Amount
		}
	}

	kpi.GrossProfit = kpi.SalesTotalInclTax - kpi.COGSTotal

	for _, tx := range src.cash {
		if tx.Type == cashflow.TypeOut && tx.Category != nil && *tx.Category == cashflow.CategoryDepositToBank {
			kpi.DepositToBankTotal += tx.Amount
		}
	}

	for _, r := range src.timeRecords {
		kpi.LaborMinutesTotal += r.WorkedMinutes()
	}

	salesTotal := float64(kpi.SalesTotalInclTax)
	payTotal := float64(kpi.PayTotal)

	kpi.AvgSpendPerGuest = SafeRatio(salesTotal, float64(kpi.GuestCount))
	kpi.AvgSpendPerReceipt = SafeRatio(salesTotal, float64(kpi.ReceiptCount))
	kpi.CashRatio = SafeRatio(float64(kpi.PayCash), payTotal)
	kpi.CardRatio = SafeRatio(float64(kpi.PayCard), payTotal)
	kpi.QRRatio = SafeRatio(float64(kpi.PayQR), payTotal)
	kpi.OtherRatio = SafeRatio(float64(kpi.PayOther), payTotal)
	kpi.COGSRatio = SafeRatio(float64(kpi.COGSTotal), salesTotal)
	kpi.GrossMarginRatio = SafeRatio(float64(kpi.GrossProfit), salesTotal)
	kpi.SalesPerLaborHour = SafeRatio(salesTotal, float64(kpi.LaborMinutesTotal)/60.0)

	diffTotal, issueDays, err := s.closingSummary(ctx, storeID, start, end)
	if err != nil {
		return nil, err
	}

	kpi.ClosingDifferenceTotal = diffTotal
	kpi.ClosingIssueDays = issueDays

	breakdowns, err := s.buildBreakdowns(ctx, src, kpi)
	if err != nil {
		return nil, err
	}

	var warnings []Warning

	if mismatch := kpi.SalesTotalInclTax - kpi.PayTotal; mismatch != 0 {
		warnings = append(warnings, Warning{
			Code:    WarnSalesPaymentMismatch,
			Message: "売上合計と支払合計に差異があります",
			Value:   mismatch,
		})
	}

	return &MonthlyReport{
		Month:      start.Format("2006-01"),
		StoreID:    storeID,
		StoreName:  s.storeName,
		KPI:        kpi,
		Breakdowns: breakdowns,
		Warnings:   warnings,
	}, nil
}

// MonthlySummary derives the flat single-row summary backing the
// monthly summary CSV: daily-series sums plus month-grain expense and
// cash-out breakouts.
func (s *Service) MonthlySummary(ctx context.Context, storeID string, date time.Time) (*MonthlySummary, error) {
	start, end, err := monthRange(date)
	if err != nil {
		return nil, err
	}

	daily, err := s.ComputeDailyRange(ctx, storeID, start, end)
	if err != nil {
		return nil, err
	}

	summary := &MonthlySummary{
		YearMonth: start.Format("2006-01"),
		StoreID:   storeID,
		StoreName: s.storeName,
	}

	for _, d := range daily {
		summary.SalesTotalInclTax += d.SalesTotalInclTax
		summary.SalesCashInclTax += d.SalesCashInclTax
		summary.SalesCardInclTax += d.SalesCardInclTax
		summary.SalesQRInclTax += d.SalesQRInclTax
		summary.SalesOtherInclTax += d.SalesOtherInclTax
		summary.SalesSubtotalExclTax += d.SalesSubtotalExclTax
		summary.SalesTaxTotal += d.SalesTaxTotal
		summary.ExpensesTotal += d.ExpensesTotal
		summary.CashInTotal += d.CashInTotal
		summary.CashOutTotal += d.CashOutTotal

		if d.ClosingDifference != nil {
			summary.ClosingDifferenceTotal += *d.ClosingDifference
		}

		if d.ClosingIssueFlag != nil && *d.ClosingIssueFlag {
			summary.ClosingIssueDays++
		}
	}

	approved := expense.StatusApproved

	expenses, err := s.stores.Expenses.FetchExpenses(ctx, storeID, start, end, expense.Filter{Status: &approved})
	if err != nil {
		return nil, fmt.Errorf("fetching expenses: %w", err)
	}

	for _, e := range expenses {
		switch e.Category {
		case expense.CategoryFood:
			summary.ExpensesFood += e.Amount
		case expense.CategoryDrink:
			summary.ExpensesDrink += e.Amount
		case expense.CategoryConsumable:
			summary.ExpensesConsumable += e.Amount
		case expense.CategoryUtility:
			summary.ExpensesUtility += e.Amount
		case expense.CategoryMisc:
			summary.ExpensesMisc += e.Amount
		}
	}

	cash, err := s.stores.Cash.FetchTransactions(ctx, storeID, start, end, cashflow.Filter{})
	if err != nil {
		return nil, fmt.Errorf("fetching cash transactions: %w", err)
	}

	for _, tx := range cash {
		if tx.Type != cashflow.TypeOut || tx.Category == nil {
			continue
		}

		switch *tx.Category {
		case cashflow.CategoryPurchase:
			summary.CashOutPurchaseTotal += tx.Amount
		case cashflow.CategoryExpenseReimburse:
			summary.CashOutReimburseTotal += tx.Amount
		case cashflow.CategoryDepositToBank:
			summary.CashOutDepositToBankTotal += tx.Amount
		}
	}

	return summary, nil
}

// AttendanceRows returns the month's time records prepared for the
// attendance export, ordered by date then employee name.
func (s *Service) AttendanceRows(ctx context.Context, storeID string, date time.Time) ([]AttendanceRow, error) {
	start, end, err := monthRange(date)
	if err != nil {
		return nil, err
	}

	all, err := s.stores.TimeRecords.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading time records: %w", err)
	}

	var rows []AttendanceRow

	for _, r := range all {
		if r.StoreID != storeID || !businessday.Within(r.Date, start, end) {
			continue
		}

		rows = append(rows, AttendanceRow{
			EmployeeID:    r.EmployeeID,
			EmployeeName:  s.employees.Name(r.EmployeeID),
			Date:          businessday.Truncate(r.Date),
			ClockIn:       r.ClockInAt,
			ClockOut:      r.ClockOutAt,
			BreakMinutes:  r.BreakMinutes,
			WorkedMinutes: r.WorkedMinutes(),
			Status:        r.Status,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].Date.Equal(rows[j].Date) {
			return rows[i].Date.Before(rows[j].Date)
		}

		return rows[i].EmployeeName < rows[j].EmployeeName
	})

	return rows, nil
}

// rangeSources is one snapshot of every record kind for a date range.
type rangeSources struct {
	receipts    []*sales.Receipt
	splits      []*sales.Split
	expenses    []*expense.Expense
	cash        []*cashflow.Transaction
	timeRecords []*timecard.TimeRecord
	cogs        map[expense.Category]bool
}

func (s *Service) fetchRange(ctx context.Context, storeID string, from, to time.Time) (*rangeSources, error) {
	receipts, err := s.stores.Sales.FetchReceipts(ctx, storeID, from, to, sales.RevenueStatuses)
	if err != nil {
		return nil, fmt.Errorf("fetching receipts: %w", err)
	}

	splits, err := s.stores.Sales.FetchPaymentSplits(ctx, storeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("fetching payment splits: %w", err)
	}

	approved := expense.StatusApproved

	expenses, err := s.stores.Expenses.FetchExpenses(ctx, storeID, from, to, expense.Filter{Status: &approved})
	if err != nil {
		return nil, fmt.Errorf("fetching expenses: %w", err)
	}

	cash, err := s.stores.Cash.FetchTransactions(ctx, storeID, from, to, cashflow.Filter{})
	if err != nil {
		return nil, fmt.Errorf("fetching cash transactions: %w", err)
	}

	all, err := s.stores.TimeRecords.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading time records: %w", err)
	}

	var timeRecords []*timecard.TimeRecord

	for _, r := range all {
		if r.StoreID != storeID || r.Status != timecard.StatusApproved {
			continue
		}

		if !businessday.Within(r.Date, from, to) {
			continue
		}

		timeRecords = append(timeRecords, r)
	}

	settings, err := s.stores.CostSettings.LoadSettings(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("loading cost category settings: %w", err)
	}

	return &rangeSources{
		receipts:    receipts,
		splits:      splits,
		expenses:    expenses,
		cash:        cash,
		timeRecords: timeRecords,
		cogs:        costsetting.COGSCategories(settings),
	}, nil
}

// applyClosing copies the day's closing-derived fields onto the row when
// a confirmed or approved closing exists. A draft closing leaves them
// absent: absence must stay distinguishable from a verified zero
// difference.
func (s *Service) applyClosing(ctx context.Context, storeID string, day time.Time, row *DailyRow) error {
	c, err := s.stores.Closings.LoadClosing(ctx, storeID, day)
	if err != nil {
		return fmt.Errorf("loading closing: %w", err)
	}

	if c == nil || !c.Counted() {
		return nil
	}

	expected := c.ExpectedCashBalance()
	actual := c.ActualCashBalance
	diff := c.Difference()
	issue := c.HasIssue()

	row.ExpectedCashBalance = &expected
	row.ActualCashBalance = &actual
	row.ClosingDifference = &diff
	row.ClosingIssueFlag = &issue

	return nil
}

func (s *Service) closingSummary(ctx context.Context, storeID string, from, to time.Time) (int64, int, error) {
	var (
		diffTotal int64
		issueDays int
	)

	for _, day := range daysInRange(from, to) {
		c, err := s.stores.Closings.LoadClosing(ctx, storeID, day)
		if err != nil {
			return 0, 0, fmt.Errorf("loading closing: %w", err)
		}

		if c == nil || !c.Counted() {
			continue
		}

		diffTotal += c.Difference()

		if c.HasIssue() {
			issueDays++
		}
	}

	return diffTotal, issueDays, nil
}

func (s *Service) buildBreakdowns(ctx context.Context, src *rangeSources, kpi MonthlyKPI) (MonthlyBreakdowns, error) {
	var cogsExpenses []*expense.Expense

	for _, e := range src.expenses {
		if src.cogs[e.Category] {
			cogsExpenses = append(cogsExpenses, e)
		}
	}

	vendors, err := s.vendorBreakdown(ctx, src.expenses)
	if err != nil {
		return MonthlyBreakdowns{}, err
	}

	return MonthlyBreakdowns{
		COGSByCategory:     categoryBreakdown(cogsExpenses),
		ExpensesByCategory: categoryBreakdown(src.expenses),
		PaymentsByMethod: []MethodAmount{
			{Method: sales.MethodCash, Amount: kpi.PayCash},
			{Method: sales.MethodCard, Amount: kpi.PayCard},
			{Method: sales.MethodQR, Amount: kpi.PayQR},
			{Method: sales.MethodOther, Amount: kpi.PayOther},
		},
		ExpensesByVendor: vendors,
	}, nil
}

// categoryBreakdown groups expense amounts by category, ordered by
// descending amount with ties broken by the category declaration order.
func categoryBreakdown(expenses []*expense.Expense) []CategoryAmount {
	sums := make(map[expense.Category]int64)

	for _, e := range expenses {
		sums[e.Category] += e.Amount
	}

	out := make([]CategoryAmount, 0, len(sums))

	for _, c := range expense.Categories {
		if amount, ok := sums[c]; ok {
			out = append(out, CategoryAmount{Category: c, Amount: amount})
		}
	}

	// Declaration order built above makes this sort's ties stable.
	slices.SortStableFunc(out, func(a, b CategoryAmount) int {
		switch {
		case a.Amount > b.Amount:
			return -1
		case a.Amount < b.Amount:
			return 1
		default:
			return 0
		}
	})

	return out
}

// vendorBreakdown groups expense amounts by resolved vendor display
// name and keeps the top spenders, descending.
func (s *Service) vendorBreakdown(ctx context.Context, expenses []*expense.Expense) ([]VendorAmount, error) {
	sums := make(map[string]int64)
	names := make(map[uuid.UUID]string)

	for _, e := range expenses {
		name, err := s.resolveVendorName(ctx, e, names)
		if err != nil {
			return nil, err
		}

		sums[name] += e.Amount
	}

	out := make([]VendorAmount, 0, len(sums))
	for name, amount := range sums {
		out = append(out, VendorAmount{Name: name, Amount: amount})
	}

	slices.SortStableFunc(out, func(a, b VendorAmount) int {
		switch {
		case a.Amount > b.Amount:
			return -1
		case a.Amount < b.Amount:
			return 1
		default:
			return strings.Compare(a.Name, b.Name)
		}
	})

	if len(out) > VendorBreakdownLimit {
		out = out[:VendorBreakdownLimit]
	}

	return out, nil
}

// resolveVendorName picks the display name for an expense's spend:
// registered vendor name, then raw free-text, then the unassigned
// bucket.
func (s *Service) resolveVendorName(ctx context.Context, e *expense.Expense, cache map[uuid.UUID]string) (string, error) {
	if e.VendorID != nil {
		if name, ok := cache[*e.VendorID]; ok {
			return name, nil
		}

		v, err := s.stores.Vendors.FindByID(ctx, *e.VendorID)
		if err == nil && v.Name != "" {
			cache[*e.VendorID] = v.Name
			return v.Name, nil
		}

		if err != nil && !errors.Is(err, vendor.ErrNotFound) {
			return "", fmt.Errorf("resolving vendor %s: %w", e.VendorID, err)
		}
	}

	if e.VendorNameRaw != "" {
		return e.VendorNameRaw, nil
	}

	return UnassignedVendorLabel, nil
}

// groupByDay buckets records by their calendar-day key.
func groupByDay[T any](records []T, dateOf func(T) time.Time) map[string][]T {
	out := make(map[string][]T)

	for _, r := range records {
		key := businessday.Key(dateOf(r))
		out[key] = append(out[key], r)
	}

	return out
}
