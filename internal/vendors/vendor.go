package vendor

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("vendor not found")

// Category classifies a vendor in the registry.
type Category string

const (
	CategoryFoodSupplier  Category = "food_supplier"
	CategoryDrinkSupplier Category = "drink_supplier"
	CategoryConsumable    Category = "consumable"
	CategoryService       Category = "service"
	CategoryOther         Category = "other"
)

// Vendor is one supplier in a store's registry.
type Vendor struct {
	ID      uuid.UUID
	StoreID string

	Name     string
	Category Category

	Phone string
	Email string
	Memo  string

	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Filter narrows a vendor listing. Nil fields match everything; Search
// matches case-insensitively against the name.
type Filter struct {
	Search   *string
	Category *Category
	IsActive *bool
}

// Repository provides read/write access to the vendor registry.
type Repository interface {
	FetchVendors(ctx context.Context, storeID string, filter Filter) ([]*Vendor, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Vendor, error)
	Save(ctx context.Context, v *Vendor) error
	Delete(ctx context.Context, id uuid.UUID) error
}
