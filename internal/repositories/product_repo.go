package repositories

import (
	"kasuwa/internal/models"
)

// ProductQuery describes the filters, pagination and sorting applied by
// List. Pointer fields distinguish "not provided" from zero values.
// Soft-deleted products are always excluded from listings.
type ProductQuery struct {
	Status      string
	IsPublished *bool
	IsFeatured  *bool
	MinPrice    *float64
	MaxPrice    *float64
	Search      string

	Page  int    // 1-based, default 1
	Limit int    // default 10
	Sort  string // field name, default "createdAt"
	Order string // "asc" or "desc", default "desc"
}

// ProductRepository defines the interface for product data access.
// Lookup methods return (nil, nil) when no record matches.
type ProductRepository interface {
	Create(product *models.Product) error
	GetByID(id string) (*models.Product, error)
	// FindActiveByName looks up a non-deleted product by exact name,
	// used for the creation-time uniqueness check.
	FindActiveByName(name string) (*models.Product, error)
	// List returns the matching page of products plus the total count
	// over the filtered set before pagination.
	List(query ProductQuery) ([]models.Product, int64, error)
	// Save performs a full-document rewrite of an existing product.
	Save(product *models.Product) error
}
