package middleware

import (
	"strings"

	"kasuwa/internal/apperrors"
	"kasuwa/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserIDKey is the locals key under which the authenticated user's id is
// stored for downstream handlers.
const UserIDKey = "user_id"

// AuthRequired is a Fiber middleware that rejects requests without a
// valid bearer token and stores the token's user id in the context.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return apperrors.NewUnauthorized("No token, authorization denied")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return apperrors.NewUnauthorized("Authorization header format must be 'Bearer <token>'")
		}

		userID, err := authService.ValidateToken(parts[1])
		if err != nil {
			return err
		}

		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}
