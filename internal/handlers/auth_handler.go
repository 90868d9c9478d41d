package handlers

import (
	"kasuwa/internal/apperrors"
	"kasuwa/internal/middleware"
	"kasuwa/internal/models"
	"kasuwa/internal/response"
	"kasuwa/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for registration and authentication.
type AuthHandler struct {
	authService *services.AuthService
	userService *services.UserService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, userService *services.UserService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the public auth routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)
	authRoutes.Post("/login", h.HandleLogin)
}

// RegisterProtectedRoutes registers the auth routes requiring a token.
func (h *AuthHandler) RegisterProtectedRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Get("/me", h.HandleGetCurrentUser)
}

// RegisterRequest is the request body for user registration.
type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required,min=2,max=100"`
	LastName  string `json:"lastName" validate:"required,min=2,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
}

// HandleRegister registers a new user.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("Invalid request body")
	}
	if err := validateStruct(h.validate, req); err != nil {
		return err
	}

	user, err := h.authService.Register(&models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(response.Success("User created", user))
}

// LoginRequest is the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin verifies credentials and issues a session token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("Invalid request body")
	}
	if err := validateStruct(h.validate, req); err != nil {
		return err
	}

	token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(response.Success("Login successful", fiber.Map{"token": token}))
}

// HandleGetCurrentUser returns the user embedded in the request token.
func (h *AuthHandler) HandleGetCurrentUser(c *fiber.Ctx) error {
	userID, ok := c.Locals(middleware.UserIDKey).(string)
	if !ok || userID == "" {
		return apperrors.NewUnauthorized("Not authenticated")
	}

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		return err
	}
	return c.JSON(response.Success("User found", fiber.Map{"user": user}))
}
