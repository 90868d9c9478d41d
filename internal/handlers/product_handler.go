package handlers

import (
	"strconv"
	"time"

	"kasuwa/internal/apperrors"
	"kasuwa/internal/models"
	"kasuwa/internal/repositories"
	"kasuwa/internal/response"
	"kasuwa/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Post("/create", h.HandleCreateProduct)
	productRoutes.Get("/:id", h.HandleGetProduct)
	productRoutes.Patch("/:id/price", h.HandleUpdatePrice)
	productRoutes.Post("/:id/discount", h.HandleSetDiscount)
	productRoutes.Patch("/:id/inventory", h.HandleUpdateInventory)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// MetadataRequest carries the optional metadata flags on creation.
// ShowInSearch is a pointer so its default of true survives an omitted
// field.
type MetadataRequest struct {
	IsPublished  bool  `json:"isPublished"`
	ShowInSearch *bool `json:"showInSearch"`
	IsFeatured   bool  `json:"isFeatured"`
}

// CreateProductRequest is the request body for product creation.
type CreateProductRequest struct {
	Name        string `json:"name" validate:"required,min=3,max=100"`
	Description struct {
		Short string `json:"short" validate:"required,max=300"`
		Long  string `json:"long"`
	} `json:"description"`
	Price struct {
		Base     float64  `json:"base" validate:"gte=0"`
		Current  *float64 `json:"current" validate:"omitempty,gte=0"`
		Currency string   `json:"currency"`
	} `json:"price"`
	Inventory struct {
		Quantity          *int `json:"quantity" validate:"omitempty,gte=0"`
		LowStockThreshold *int `json:"lowStockThreshold"`
	} `json:"inventory"`
	Metadata *MetadataRequest `json:"metadata"`
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("Invalid request body")
	}
	if err := validateStruct(h.validate, req); err != nil {
		return err
	}

	input := services.CreateProductInput{
		Name: req.Name,
		Description: models.Description{
			Short: req.Description.Short,
			Long:  req.Description.Long,
		},
		PriceBase:         req.Price.Base,
		PriceCurrent:      req.Price.Current,
		Currency:          req.Price.Currency,
		Quantity:          req.Inventory.Quantity,
		LowStockThreshold: req.Inventory.LowStockThreshold,
	}
	if req.Metadata != nil {
		showInSearch := true
		if req.Metadata.ShowInSearch != nil {
			showInSearch = *req.Metadata.ShowInSearch
		}
		input.Metadata = &models.Metadata{
			IsPublished:  req.Metadata.IsPublished,
			ShowInSearch: showInSearch,
			IsFeatured:   req.Metadata.IsFeatured,
		}
	}

	product, err := h.service.CreateProduct(input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(response.Success("Product created successfully", product))
}

// HandleGetProduct retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	product, err := h.service.GetProduct(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(response.Success("Product retrieved successfully", product))
}

// HandleListProducts retrieves a filtered, paginated product listing.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	query := repositories.ProductQuery{
		Status: c.Query("status"),
		Search: c.Query("search"),
		Page:   c.QueryInt("page", 1),
		Limit:  c.QueryInt("limit", 10),
		Sort:   c.Query("sort", "createdAt"),
		Order:  c.Query("order", "desc"),
	}

	if raw := c.Query("isPublished"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return apperrors.NewBadRequest("isPublished must be a boolean")
		}
		query.IsPublished = &value
	}
	if raw := c.Query("isFeatured"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return apperrors.NewBadRequest("isFeatured must be a boolean")
		}
		query.IsFeatured = &value
	}
	if raw := c.Query("minPrice"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return apperrors.NewBadRequest("minPrice must be a number")
		}
		query.MinPrice = &value
	}
	if raw := c.Query("maxPrice"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return apperrors.NewBadRequest("maxPrice must be a number")
		}
		query.MaxPrice = &value
	}

	products, total, err := h.service.ListProducts(query)
	if err != nil {
		return err
	}
	return c.JSON(response.Success("Products retrieved successfully", fiber.Map{
		"products": products,
		"total":    total,
	}))
}

// UpdatePriceRequest is the request body for a partial price update.
type UpdatePriceRequest struct {
	Base     *float64 `json:"base" validate:"omitempty,gte=0"`
	Current  *float64 `json:"current" validate:"omitempty,gte=0"`
	Currency *string  `json:"currency"`
}

// HandleUpdatePrice updates only the provided price fields.
func (h *ProductHandler) HandleUpdatePrice(c *fiber.Ctx) error {
	var req UpdatePriceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("Invalid request body")
	}
	if err := validateStruct(h.validate, req); err != nil {
		return err
	}

	product, err := h.service.UpdatePrice(c.Params("id"), services.UpdatePriceInput{
		Base:     req.Base,
		Current:  req.Current,
		Currency: req.Currency,
	})
	if err != nil {
		return err
	}
	return c.JSON(response.Success("Product price updated successfully", product))
}

// SetDiscountRequest is the request body for setting a discount.
type SetDiscountRequest struct {
	Kind      string     `json:"kind" validate:"required,oneof=percentage fixed"`
	Value     float64    `json:"value" validate:"gte=0"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

// HandleSetDiscount stores a discount and recomputes the current price.
func (h *ProductHandler) HandleSetDiscount(c *fiber.Ctx) error {
	var req SetDiscountRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("Invalid request body")
	}
	if err := validateStruct(h.validate, req); err != nil {
		return err
	}

	product, err := h.service.SetDiscount(c.Params("id"), services.SetDiscountInput{
		Kind:      req.Kind,
		Value:     req.Value,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		return err
	}
	return c.JSON(response.Success("Product discount set successfully", product))
}

// UpdateInventoryRequest is the request body for an inventory update.
// Quantity is a pointer so an explicit zero is settable; a zero
// lowStockThreshold is ignored.
type UpdateInventoryRequest struct {
	Quantity          *int   `json:"quantity" validate:"omitempty,gte=0"`
	LowStockThreshold int    `json:"lowStockThreshold" validate:"gte=0"`
	Status            string `json:"status" validate:"omitempty,oneof=in_stock out_of_stock expired damaged returned"`
}

// HandleUpdateInventory updates the provided inventory fields.
func (h *ProductHandler) HandleUpdateInventory(c *fiber.Ctx) error {
	var req UpdateInventoryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("Invalid request body")
	}
	if err := validateStruct(h.validate, req); err != nil {
		return err
	}

	product, err := h.service.UpdateInventory(c.Params("id"), services.UpdateInventoryInput{
		Quantity:          req.Quantity,
		LowStockThreshold: req.LowStockThreshold,
		Status:            req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(response.Success("Product inventory updated successfully", product))
}

// HandleDeleteProduct soft-deletes a product.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	product, err := h.service.DeleteProduct(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(response.Success("Product deleted successfully", product))
}
