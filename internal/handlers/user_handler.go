package handlers

import (
	"kasuwa/internal/response"
	"kasuwa/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for user reads.
type UserHandler struct {
	service *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/", h.HandleGetUsers)
	userRoutes.Get("/:id", h.HandleGetUserByID)
}

// HandleGetUsers retrieves all users.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.service.GetAllUsers()
	if err != nil {
		return err
	}

	message := "Users retrieved successfully"
	if len(users) == 0 {
		message = "No users found"
	}
	return c.JSON(response.Success(message, users))
}

// HandleGetUserByID retrieves a single user by their ID.
func (h *UserHandler) HandleGetUserByID(c *fiber.Ctx) error {
	user, err := h.service.GetUserByID(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(response.Success("User retrieved successfully", user))
}
