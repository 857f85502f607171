package expense

import (
	"time"

	"github.com/google/uuid"
)

// Category classifies an expense. Declaration order is the stable
// tie-break order for breakdown display.
type Category string

const (
	CategoryFood           Category = "food"
	CategoryDrink          Category = "drink"
	CategoryConsumable     Category = "consumable"
	CategoryUtility        Category = "utility"
	CategoryMisc           Category = "misc"
	CategoryTransportation Category = "transportation"
	CategoryEquipment      Category = "equipment"
)

// Categories lists all categories in stable declaration order.
var Categories = []Category{
	CategoryFood,
	CategoryDrink,
	CategoryConsumable,
	CategoryUtility,
	CategoryMisc,
	CategoryTransportation,
	CategoryEquipment,
}

// PaymentMethod is how an expense was paid.
type PaymentMethod string

const (
	PayCash            PaymentMethod = "cash"
	PayCard            PaymentMethod = "card"
	PayBankTransfer    PaymentMethod = "bank_transfer"
	PayEmployeeAdvance PaymentMethod = "employee_advance"
)

// Status is the approval state of an expense. Only approved expenses
// participate in cost aggregation.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
)

// Expense is one recorded cost entry. Amounts are integer minor units.
type Expense struct {
	ID      uuid.UUID
	StoreID string
	Date    time.Time

	Amount       int64
	TaxAmount    int64
	CurrencyCode string

	Category    Category
	SubCategory string

	// VendorID links to the vendor registry; VendorNameRaw is a
	// free-text fallback when no registered vendor applies.
	VendorID      *uuid.UUID
	VendorNameRaw string

	PaymentMethod PaymentMethod
	// EmployeeID is set for employee advances awaiting reimbursement.
	EmployeeID *int

	IsReimbursed                   bool
	ReimbursedAt                   *time.Time
	ReimbursementCashTransactionID *uuid.UUID

	Memo   string
	Status Status

	CreatedBy  string
	UpdatedBy  string
	ApprovedBy string
	ApprovedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
