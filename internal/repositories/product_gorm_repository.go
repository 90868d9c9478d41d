package repositories

import (
	"fmt"

	"kasuwa/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// sortColumns maps API sort field names onto database columns. Unknown
// fields fall back to created_at.
var sortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"name":      "name",
	"price":     "price_current",
	"quantity":  "inventory_quantity",
}

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// Create inserts a new product, assigning a UUID when none is set.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// GetByID retrieves a single product by its ID. Soft-deleted products
// are still returned; only listings filter them out.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// FindActiveByName retrieves a non-deleted product by exact name.
func (r *GORMProductRepository) FindActiveByName(name string) (*models.Product, error) {
	var product models.Product
	err := r.db.First(&product, "name = ? AND metadata_is_deleted = ?", name, false).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find product by name %s: %w", name, err)
	}
	return &product, nil
}

// List applies the query's filters, counts the filtered set, then
// returns the requested page.
func (r *GORMProductRepository) List(query ProductQuery) ([]models.Product, int64, error) {
	tx := r.db.Model(&models.Product{}).Where("metadata_is_deleted = ?", false)

	if query.Status != "" {
		tx = tx.Where("inventory_status = ?", query.Status)
	}
	if query.IsPublished != nil {
		tx = tx.Where("metadata_is_published = ?", *query.IsPublished)
	}
	if query.IsFeatured != nil {
		tx = tx.Where("metadata_is_featured = ?", *query.IsFeatured)
	}
	if query.MinPrice != nil {
		tx = tx.Where("price_current >= ?", *query.MinPrice)
	}
	if query.MaxPrice != nil {
		tx = tx.Where("price_current <= ?", *query.MaxPrice)
	}
	if query.Search != "" {
		like := "%" + query.Search + "%"
		tx = tx.Where("name LIKE ? OR description_short LIKE ? OR description_long LIKE ?", like, like, like)
	}

	// Total over the filtered set, before pagination.
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = 10
	}

	column, ok := sortColumns[query.Sort]
	if !ok {
		column = "created_at"
	}
	direction := "desc"
	if query.Order == "asc" {
		direction = "asc"
	}

	var products []models.Product
	err := tx.Order(column + " " + direction).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	return products, total, nil
}

// Save rewrites an existing product in full, including zero values.
func (r *GORMProductRepository) Save(product *models.Product) error {
	res := r.db.Save(product)
	if res.Error != nil {
		return fmt.Errorf("failed to save product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s not found for save", product.ID)
	}
	return nil
}
