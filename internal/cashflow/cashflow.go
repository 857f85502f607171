package cashflow

import (
	"time"

	"github.com/google/uuid"
)

// Type is the direction of a cash-drawer transaction.
type Type string

const (
	TypeIn  Type = "in"
	TypeOut Type = "out"
)

// Category classifies a cash transaction. Category is optional on a
// record; uncategorized transactions still count toward in/out totals.
type Category string

const (
	CategoryChangePrep       Category = "change-prep"
	CategoryChangeReturn     Category = "change-return"
	CategoryPurchase         Category = "purchase"
	CategoryExpenseReimburse Category = "expense-reimburse"
	CategoryDepositToBank    Category = "deposit-to-bank"
	CategoryOther            Category = "other"
)

// Transaction is one cash in/out movement at the drawer. Amounts are
// positive integer minor units; direction is carried by Type.
type Transaction struct {
	ID      uuid.UUID
	StoreID string

	Date time.Time
	// Time carries the intra-day timestamp when the drawer records one.
	Time *time.Time

	Type   Type
	Amount int64

	Category   *Category
	ExpenseID  *uuid.UUID
	VendorName string

	Description string

	CreatedBy string
	UpdatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}
