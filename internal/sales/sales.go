package sales

import (
	"time"

	"github.com/google/uuid"
)

// ReceiptStatus represents the lifecycle state of a sales receipt.
type ReceiptStatus string

const (
	StatusPosted   ReceiptStatus = "posted"
	StatusRefunded ReceiptStatus = "refunded"
	StatusDraft    ReceiptStatus = "draft"
)

// RevenueStatuses are the receipt statuses that participate in revenue
// aggregation. Refunded receipts carry negative totals, so summation
// nets them out.
var RevenueStatuses = []ReceiptStatus{StatusPosted, StatusRefunded}

// PaymentMethod represents how a receipt (or part of one) was settled.
type PaymentMethod string

const (
	MethodCash  PaymentMethod = "cash"
	MethodCard  PaymentMethod = "card"
	MethodQR    PaymentMethod = "qr"
	MethodOther PaymentMethod = "other"
)

// PaymentMethods lists all methods in stable declaration order.
var PaymentMethods = []PaymentMethod{MethodCash, MethodCard, MethodQR, MethodOther}

// Receipt is one point-of-sale receipt. Amounts are integer minor units.
type Receipt struct {
	ID           uuid.UUID
	StoreID      string
	BusinessDate time.Time

	TotalInclTax    int64
	SubtotalExclTax int64
	TaxTotal        int64
	GuestCount      int

	Status ReceiptStatus
}

// Split is one payment-method portion of a receipt. For a given receipt
// the sum of its splits should equal the receipt's tax-inclusive total;
// the engine does not enforce this, mismatches surface as a monthly
// warning.
type Split struct {
	ID           uuid.UUID
	ReceiptID    uuid.UUID
	StoreID      string
	BusinessDate time.Time

	Method        PaymentMethod
	AmountInclTax int64
}
