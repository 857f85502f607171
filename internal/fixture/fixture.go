// Package fixture seeds the in-memory stores from a directory of CSV
// files, so a fresh process can serve meaningful reports without a
// database. Each record kind has its own file; missing files are
// skipped, an absent directory yields empty stores.
package fixture

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mise-ops/chobo/internal/cashflow"
	"github.com/mise-ops/chobo/internal/closing"
	enc "github.com/mise-ops/chobo/internal/encoding"
	"github.com/mise-ops/chobo/internal/expense"
	"github.com/mise-ops/chobo/internal/sales"
	"github.com/mise-ops/chobo/internal/timecard"
	"github.com/mise-ops/chobo/internal/vendors"
)

// File names the loader looks for inside the fixture directory.
const (
	fileReceipts    = "receipts.csv"
	fileSplits      = "payment_splits.csv"
	fileExpenses    = "expenses.csv"
	fileCash        = "cash_transactions.csv"
	fileClosings    = "closings.csv"
	fileTimeRecords = "time_records.csv"
	fileVendors     = "vendors.csv"
	fileEmployees   = "employees.csv"
)

// Stores receives the parsed fixture records.
type Stores struct {
	Sales       sales.Repository
	Expenses    expense.Repository
	Cash        cashflow.Repository
	Closings    closing.Repository
	TimeRecords timecard.Repository
	Vendors     vendor.Repository
	Employees   *timecard.EmployeeDirectory
}

// Loader reads fixture CSVs for one store.
type Loader struct {
	stores  Stores
	storeID string
}

func NewLoader(stores Stores, storeID string) *Loader {
	return &Loader{stores: stores, storeID: storeID}
}

// Load parses every known fixture file under dir and saves the records.
// POS exports arrive in whatever charset the terminal produced, so each
// file goes through encoding detection first.
func (l *Loader) Load(ctx context.Context, dir string) error {
	if dir == "" {
		return nil
	}

	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	steps := []struct {
		file  string
		parse func(context.Context, [][]string, colIndex) error
	}{
		{fileVendors, l.loadVendors},
		{fileEmployees, l.loadEmployees},
		{fileReceipts, l.loadReceipts},
		{fileSplits, l.loadSplits},
		{fileExpenses, l.loadExpenses},
		{fileCash, l.loadCash},
		{fileClosings, l.loadClosings},
		{fileTimeRecords, l.loadTimeRecords},
	}

	for _, step := range steps {
		if err := l.loadFile(ctx, filepath.Join(dir, step.file), step.parse); err != nil {
			return fmt.Errorf("loading %s: %w", step.file, err)
		}
	}

	return nil
}

// colIndex maps header names to their column position.
type colIndex map[string]int

func (l *Loader) loadFile(ctx context.Context, path string, parse func(context.Context, [][]string, colIndex) error) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return err
	}
	defer f.Close()

	rows, err := readCSV(f)
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		return nil
	}

	cols := make(colIndex)

	for i, cell := range rows[0] {
		if name := strings.TrimSpace(cell); name != "" {
			cols[name] = i
		}
	}

	return parse(ctx, rows[1:], cols)
}

func readCSV(r io.Reader) ([][]string, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	return rows, nil
}

func (l *Loader) loadReceipts(ctx context.Context, rows [][]string, cols colIndex) error {
	for i, row := range rows {
		date, ok := parseDate(cellValue(row, cols, "date"))
		if !ok {
			continue
		}

		r := &sales.Receipt{
			StoreID:         l.storeID,
			BusinessDate:    date,
			TotalInclTax:    cellInt64(row, cols, "total_incl_tax"),
			SubtotalExclTax: cellInt64(row, cols, "subtotal_excl_tax"),
			TaxTotal:        cellInt64(row, cols, "tax_total"),
			GuestCount:      cellInt(row, cols, "guest_count"),
			Status:          sales.ReceiptStatus(cellValue(row, cols, "status")),
		}
		if r.Status == "" {
			r.Status = sales.StatusPosted
		}

		if err := l.stores.Sales.SaveReceipt(ctx, r); err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
	}

	return nil
}

func (l *Loader) loadSplits(ctx context.Context, rows [][]string, cols colIndex) error {
	for i, row := range rows {
		date, ok := parseDate(cellValue(row, cols, "date"))
		if !ok {
			continue
		}

		sp := &sales.Split{
			StoreID:       l.storeID,
			BusinessDate:  date,
			Method:        sales.PaymentMethod(cellValue(row, cols, "method")),
			AmountInclTax: cellInt64(row, cols, "amount_incl_tax"),
		}

		if id, err := uuid.Parse(cellValue(row, cols, "receipt_id")); err == nil {
			sp.ReceiptID = id
		}

		if err := l.stores.Sales.SaveSplit(ctx, sp); err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
	}

	return nil
}

func (l *Loader) loadExpenses(ctx context.Context, rows [][]string, cols colIndex) error {
	for i, row := range rows {
		date, ok := parseDate(cellValue(row, cols, "date"))
		if !ok {
			continue
		}

		e := &expense.Expense{
			StoreID:       l.storeID,
			Date:          date,
			Amount:        cellInt64(row, cols, "amount"),
			TaxAmount:     cellInt64(row, cols, "tax_amount"),
			Category:      expense.Category(cellValue(row, cols, "category")),
			PaymentMethod: expense.PaymentMethod(cellValue(row, cols, "payment_method")),
			VendorNameRaw: cellValue(row, cols, "vendor_name"),
			Memo:          cellValue(row, cols, "memo"),
			Status:        expense.Status(cellValue(row, cols, "status")),
		}
		if e.Status == "" {
			e.Status = expense.StatusApproved
		}

		if err := l.stores.Expenses.Save(ctx, e); err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
	}

	return nil
}

func (l *Loader) loadCash(ctx context.Context, rows [][]string, cols colIndex) error {
	for i, row := range rows {
		date, ok := parseDate(cellValue(row, cols, "date"))
		if !ok {
			continue
		}

		tx := &cashflow.Transaction{
			StoreID:     l.storeID,
			Date:        date,
			Type:        cashflow.Type(cellValue(row, cols, "type")),
			Amount:      cellInt64(row, cols, "amount"),
			VendorName:  cellValue(row, cols, "vendor_name"),
			Description: cellValue(row, cols, "description"),
		}

		if c := cellValue(row, cols, "category"); c != "" {
			cat := cashflow.Category(c)
			tx.Category = &cat
		}

		if ts, ok := parseClock(date, cellValue(row, cols, "time")); ok {
			tx.Time = &ts
		}

		if err := l.stores.Cash.Save(ctx, tx); err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
	}

	return nil
}

func (l *Loader) loadClosings(ctx context.Context, rows [][]string, cols colIndex) error {
	for i, row := range rows {
		date, ok := parseDate(cellValue(row, cols, "date"))
		if !ok {
			continue
		}

		c := &closing.DailyClosing{
			StoreID:             l.storeID,
			Date:                date,
			PreviousCashBalance: cellInt64(row, cols, "previous_cash_balance"),
			CashSales:           cellInt64(row, cols, "cash_sales"),
			CashInTotal:         cellInt64(row, cols, "cash_in_total"),
			CashOutTotal:        cellInt64(row, cols, "cash_out_total"),
			ActualCashBalance:   cellInt64(row, cols, "actual_cash_balance"),
			Note:                cellValue(row, cols, "note"),
			Status:              closing.Status(cellValue(row, cols, "status")),
		}
		if c.Status == "" {
			c.Status = closing.StatusConfirmed
		}

		if err := l.stores.Closings.SaveClosing(ctx, c); err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
	}

	return nil
}

func (l *Loader) loadTimeRecords(ctx context.Context, rows [][]string, cols colIndex) error {
	for i, row := range rows {
		date, ok := parseDate(cellValue(row, cols, "date"))
		if !ok {
			continue
		}

		r := &timecard.TimeRecord{
			StoreID:      l.storeID,
			EmployeeID:   cellInt(row, cols, "employee_id"),
			Date:         date,
			BreakMinutes: cellInt(row, cols, "break_minutes"),
			Status:       timecard.Status(cellValue(row, cols, "status")),
		}
		if r.Status == "" {
			r.Status = timecard.StatusApproved
		}

		if in, ok := parseClock(date, cellValue(row, cols, "clock_in")); ok {
			r.ClockInAt = &in
		}

		if out, ok := parseClock(date, cellValue(row, cols, "clock_out")); ok {
			r.ClockOutAt = &out
		}

		if err := l.stores.TimeRecords.Save(ctx, r); err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
	}

	return nil
}

func (l *Loader) loadVendors(ctx context.Context, rows [][]string, cols colIndex) error {
	for i, row := range rows {
		name := cellValue(row, cols, "name")
		if name == "" {
			continue
		}

		v := &vendor.Vendor{
			StoreID:  l.storeID,
			Name:     name,
			Category: vendor.Category(cellValue(row, cols, "category")),
			IsActive: true,
		}

		if s := cellValue(row, cols, "is_active"); s != "" {
			v.IsActive = s == "true" || s == "1"
		}

		if err := l.stores.Vendors.Save(ctx, v); err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
	}

	return nil
}

func (l *Loader) loadEmployees(_ context.Context, rows [][]string, cols colIndex) error {
	for _, row := range rows {
		id := cellInt(row, cols, "id")
		name := cellValue(row, cols, "name")

		if id == 0 || name == "" {
			continue
		}

		l.stores.Employees.Add(timecard.Employee{
			ID:   id,
			Name: name,
			Role: cellValue(row, cols, "role"),
		})
	}

	return nil
}

// cellValue safely gets a trimmed cell value by column name.
func cellValue(row []string, cols colIndex, name string) string {
	idx, ok := cols[name]
	if !ok || idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func cellInt64(row []string, cols colIndex, name string) int64 {
	v, err := strconv.ParseInt(cellValue(row, cols, name), 10, 64)
	if err != nil {
		return 0
	}

	return v
}

func cellInt(row []string, cols colIndex, name string) int {
	return int(cellInt64(row, cols, name))
}

// parseDate accepts YYYY-MM-DD. Unparseable values (footer rows, blank
// lines) skip the row rather than failing the whole file.
func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}

// parseClock combines a HH:MM value with the record's date.
func parseClock(date time.Time, s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	t, err := time.Parse("15:04", s)
	if err != nil {
		return time.Time{}, false
	}

	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location()), true
}
