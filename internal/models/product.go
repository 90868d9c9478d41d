package models

import (
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Discount kinds.
const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

// Inventory statuses. in_stock and out_of_stock are derived from the
// quantity; the remaining three are manual overrides.
const (
	StatusInStock    = "in_stock"
	StatusOutOfStock = "out_of_stock"
	StatusExpired    = "expired"
	StatusDamaged    = "damaged"
	StatusReturned   = "returned"
)

var validStatuses = map[string]bool{
	StatusInStock:    true,
	StatusOutOfStock: true,
	StatusExpired:    true,
	StatusDamaged:    true,
	StatusReturned:   true,
}

// IsValidStatus reports whether s is one of the known inventory statuses.
func IsValidStatus(s string) bool {
	return validStatuses[s]
}

// Description holds the short/long product copy.
type Description struct {
	Short string `json:"short" validate:"required,max=300"`
	Long  string `json:"long"`
}

// Discount describes a discount applied to a product's base price.
type Discount struct {
	Kind      string     `json:"kind" gorm:"type:varchar(20)" validate:"required,oneof=percentage fixed"`
	Value     float64    `json:"value" validate:"gte=0"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

// Price is the commercial state of a product. Current is derived from
// Base whenever a discount is set and must never be left stale.
type Price struct {
	Base     float64   `json:"base" validate:"gte=0"`
	Current  float64   `json:"current" validate:"gte=0"`
	Currency string    `json:"currency" gorm:"type:varchar(10)"`
	Discount *Discount `json:"discount,omitempty" gorm:"embedded;embeddedPrefix:discount_"`
}

// ApplyDiscount stores the discount descriptor and recomputes Current.
// A fixed discount is subtracted without flooring at zero.
func (p *Price) ApplyDiscount(d Discount) {
	p.Discount = &d
	switch d.Kind {
	case DiscountPercentage:
		p.Current = p.Base * (1 - d.Value/100)
	case DiscountFixed:
		p.Current = p.Base - d.Value
	}
}

// Inventory is the stock state of a product.
type Inventory struct {
	Quantity          int    `json:"quantity" validate:"gte=0"`
	LowStockThreshold int    `json:"lowStockThreshold"`
	Status            string `json:"status" gorm:"type:varchar(20)"`
}

// DeriveStatus sets Status from Quantity: in_stock when positive,
// out_of_stock otherwise. Manual override statuses are applied by the
// caller after this, so they win for the save that set them.
func (i *Inventory) DeriveStatus() {
	if i.Quantity > 0 {
		i.Status = StatusInStock
	} else {
		i.Status = StatusOutOfStock
	}
}

// IsLowStock reports whether the quantity has fallen to or below the
// low-stock threshold.
func (i *Inventory) IsLowStock() bool {
	return i.Quantity <= i.LowStockThreshold
}

// Metadata holds publication and lifecycle flags.
type Metadata struct {
	IsPublished  bool `json:"isPublished"`
	IsDeleted    bool `json:"isDeleted"`
	ShowInSearch bool `json:"showInSearch"`
	IsFeatured   bool `json:"isFeatured"`
}

// Product is a catalog product. Nested sub-documents are mapped to
// prefixed columns via GORM embedded structs.
type Product struct {
	ID          string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string      `json:"name" gorm:"index;type:varchar(100)" validate:"required,min=3,max=100"`
	Slug        string      `json:"slug" gorm:"index;type:varchar(120)"`
	Description Description `json:"description" gorm:"embedded;embeddedPrefix:description_"`
	Price       Price       `json:"price" gorm:"embedded;embeddedPrefix:price_"`
	Inventory   Inventory   `json:"inventory" gorm:"embedded;embeddedPrefix:inventory_"`
	Metadata    Metadata    `json:"metadata" gorm:"embedded;embeddedPrefix:metadata_"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// AfterFind normalizes the discount after a scan: a row stored without
// a discount has NULL discount columns, which must not surface as an
// empty descriptor.
func (p *Product) AfterFind(tx *gorm.DB) error {
	if p.Price.Discount != nil && p.Price.Discount.Kind == "" {
		p.Price.Discount = nil
	}
	return nil
}

var nonSlugChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Slugify derives a product slug from its name: lower-cased, with every
// character outside [a-zA-Z0-9] replaced by a dash. Slugs are assigned
// at creation time and never recomputed.
func Slugify(name string) string {
	return nonSlugChars.ReplaceAllString(strings.ToLower(name), "-")
}
