package services

import (
	"encoding/json"
	"log"
	"time"

	"kasuwa/internal/apperrors"
	"kasuwa/internal/models"
	"kasuwa/internal/repositories"
)

// EventPublisher publishes catalog lifecycle events. It is satisfied by
// *rabbitmq.Client and may be nil, in which case publishing is skipped.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// ProductService owns all reads and writes of a product's commercial and
// stock state. After any mutating operation, price.current and
// inventory.status are consistent with their source fields.
type ProductService struct {
	repo   repositories.ProductRepository
	events EventPublisher
}

// NewProductService creates a new ProductService. publisher may be nil.
func NewProductService(repo repositories.ProductRepository, publisher EventPublisher) *ProductService {
	return &ProductService{
		repo:   repo,
		events: publisher,
	}
}

// CreateProductInput carries the caller-supplied fields for product
// creation. Pointer fields distinguish "not provided" from zero values.
type CreateProductInput struct {
	Name              string
	Description       models.Description
	PriceBase         float64
	PriceCurrent      *float64
	Currency          string
	Quantity          *int
	LowStockThreshold *int
	Metadata          *models.Metadata
}

// CreateProduct creates a new product. The name must be unique among
// non-deleted products; the slug is derived from the name and never
// changes afterwards. The uniqueness check and the insert are separate
// statements, so concurrent creates with the same name can race.
func (s *ProductService) CreateProduct(input CreateProductInput) (*models.Product, error) {
	existing, err := s.repo.FindActiveByName(input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewConflict("Product with this name already exists")
	}

	current := input.PriceBase
	if input.PriceCurrent != nil {
		current = *input.PriceCurrent
	}
	currency := input.Currency
	if currency == "" {
		currency = "NGN"
	}
	quantity := 0
	if input.Quantity != nil {
		quantity = *input.Quantity
	}
	threshold := 5
	if input.LowStockThreshold != nil {
		threshold = *input.LowStockThreshold
	}
	metadata := models.Metadata{ShowInSearch: true}
	if input.Metadata != nil {
		metadata = *input.Metadata
	}

	product := &models.Product{
		Name:        input.Name,
		Slug:        models.Slugify(input.Name),
		Description: input.Description,
		Price: models.Price{
			Base:     input.PriceBase,
			Current:  current,
			Currency: currency,
		},
		Inventory: models.Inventory{
			Quantity:          quantity,
			LowStockThreshold: threshold,
		},
		Metadata: metadata,
	}
	product.Inventory.DeriveStatus()

	if err := s.repo.Create(product); err != nil {
		return nil, err
	}

	s.publish("product.created", product)
	return product, nil
}

// GetProduct retrieves a product by ID. Soft-deleted products are still
// returned here; only listings exclude them.
func (s *ProductService) GetProduct(id string) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperrors.NewNotFound("Product not found")
	}
	return product, nil
}

// ListProducts returns the filtered page of products and the total count
// over the filtered set before pagination.
func (s *ProductService) ListProducts(query repositories.ProductQuery) ([]models.Product, int64, error) {
	return s.repo.List(query)
}

// SetDiscountInput carries a discount descriptor.
type SetDiscountInput struct {
	Kind      string
	Value     float64
	StartDate *time.Time
	EndDate   *time.Time
}

// SetDiscount stores the discount descriptor on the product and
// recomputes the current price from the base price. A fixed discount
// larger than the base price drives the current price negative.
func (s *ProductService) SetDiscount(id string, input SetDiscountInput) (*models.Product, error) {
	product, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}

	product.Price.ApplyDiscount(models.Discount{
		Kind:      input.Kind,
		Value:     input.Value,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	})

	if err := s.repo.Save(product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdatePriceInput carries a partial price update. Nil fields are left
// untouched.
type UpdatePriceInput struct {
	Base     *float64
	Current  *float64
	Currency *string
}

// UpdatePrice overwrites only the provided price fields. It does not
// recompute a discount-derived current price: a caller-supplied current
// wins even while a discount is active.
func (s *ProductService) UpdatePrice(id string, input UpdatePriceInput) (*models.Product, error) {
	product, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}

	if input.Base != nil {
		product.Price.Base = *input.Base
	}
	if input.Current != nil {
		product.Price.Current = *input.Current
	}
	if input.Currency != nil {
		product.Price.Currency = *input.Currency
	}

	if err := s.repo.Save(product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateInventoryInput carries a partial inventory update. Quantity is a
// pointer so zero can be set; LowStockThreshold only applies when
// non-zero; Status only applies when it is a valid inventory status.
type UpdateInventoryInput struct {
	Quantity          *int
	LowStockThreshold int
	Status            string
}

// UpdateInventory updates the provided inventory fields and re-derives
// the stock status from the quantity, unless this call set a manual
// override status.
func (s *ProductService) UpdateInventory(id string, input UpdateInventoryInput) (*models.Product, error) {
	if id == "" {
		return nil, apperrors.NewNotFound("Product ID not provided")
	}

	product, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}

	if input.Quantity != nil {
		product.Inventory.Quantity = *input.Quantity
	}
	if input.LowStockThreshold != 0 {
		product.Inventory.LowStockThreshold = input.LowStockThreshold
	}

	if models.IsValidStatus(input.Status) {
		product.Inventory.Status = input.Status
	} else {
		product.Inventory.DeriveStatus()
	}

	if err := s.repo.Save(product); err != nil {
		return nil, err
	}

	if product.Inventory.IsLowStock() {
		s.publish("product.low_stock", product)
	}
	return product, nil
}

// DeleteProduct soft-deletes a product: the record stays in the store
// with isDeleted set and its publication flags forced off. Deleting an
// already-deleted product is rejected, not a no-op.
func (s *ProductService) DeleteProduct(id string) (*models.Product, error) {
	product, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}

	if product.Metadata.IsDeleted {
		return nil, apperrors.NewBadRequest("Product is already deleted")
	}

	product.Metadata.IsDeleted = true
	product.Metadata.IsPublished = false
	product.Metadata.ShowInSearch = false

	if err := s.repo.Save(product); err != nil {
		return nil, err
	}

	s.publish("product.deleted", product)
	return product, nil
}

// publish sends a catalog event best-effort: failures are logged and
// never surfaced to the caller.
func (s *ProductService) publish(routingKey string, product *models.Product) {
	if s.events == nil {
		return
	}

	body, err := json.Marshal(map[string]interface{}{
		"productID": product.ID,
		"name":      product.Name,
		"status":    product.Inventory.Status,
		"quantity":  product.Inventory.Quantity,
	})
	if err != nil {
		log.Printf("Failed to marshal %s event for product %s: %v", routingKey, product.ID, err)
		return
	}

	if err := s.events.Publish("catalog", routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event for product %s: %v", routingKey, product.ID, err)
	}
}
