package models_test

import (
	"testing"

	"kasuwa/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Existing Product":     "existing-product",
		"iPhone 15 Pro (Max)":  "iphone-15-pro--max-",
		"simple":               "simple",
		"Café au Lait":         "caf--au-lait",
		"UPPER case & Symbols": "upper-case---symbols",
		"123-456":              "123-456",
	}

	for name, want := range cases {
		assert.Equal(t, want, models.Slugify(name), "slug for %q", name)
	}
}

func TestPriceApplyDiscount_Percentage(t *testing.T) {
	price := models.Price{Base: 100, Current: 100, Currency: "NGN"}

	price.ApplyDiscount(models.Discount{Kind: models.DiscountPercentage, Value: 20})

	assert.Equal(t, 80.0, price.Current)
	assert.NotNil(t, price.Discount)
	assert.Equal(t, models.DiscountPercentage, price.Discount.Kind)
	assert.Equal(t, 20.0, price.Discount.Value)
}

func TestPriceApplyDiscount_Fixed(t *testing.T) {
	price := models.Price{Base: 100, Current: 100, Currency: "NGN"}

	price.ApplyDiscount(models.Discount{Kind: models.DiscountFixed, Value: 30})

	assert.Equal(t, 70.0, price.Current)
}

// A fixed discount larger than the base price is not clamped at zero.
func TestPriceApplyDiscount_FixedMayGoNegative(t *testing.T) {
	price := models.Price{Base: 100, Current: 100, Currency: "NGN"}

	price.ApplyDiscount(models.Discount{Kind: models.DiscountFixed, Value: 150})

	assert.Equal(t, -50.0, price.Current)
}

func TestInventoryDeriveStatus(t *testing.T) {
	inv := models.Inventory{Quantity: 3}
	inv.DeriveStatus()
	assert.Equal(t, models.StatusInStock, inv.Status)

	inv.Quantity = 0
	inv.DeriveStatus()
	assert.Equal(t, models.StatusOutOfStock, inv.Status)
}

func TestInventoryIsLowStock(t *testing.T) {
	inv := models.Inventory{Quantity: 5, LowStockThreshold: 5}
	assert.True(t, inv.IsLowStock())

	inv.Quantity = 6
	assert.False(t, inv.IsLowStock())
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []string{"in_stock", "out_of_stock", "expired", "damaged", "returned"} {
		assert.True(t, models.IsValidStatus(s))
	}
	assert.False(t, models.IsValidStatus(""))
	assert.False(t, models.IsValidStatus("discontinued"))
}
