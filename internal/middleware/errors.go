package middleware

import (
	"errors"
	"log"
	"runtime/debug"

	"kasuwa/internal/apperrors"
	"kasuwa/internal/config"
	"kasuwa/internal/response"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler translates errors into the uniform response envelope.
// Operational errors map to their status code; everything else becomes
// a 500 and is logged once here, at the boundary. Stack traces are only
// attached in development.
func ErrorHandler(cfg *config.Config) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if appErr, ok := apperrors.As(err); ok {
			env := response.Fail(appErr.Message)
			env.Errors = appErr.Fields
			return c.Status(appErr.Status).JSON(env)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(response.Fail(fiberErr.Message))
		}

		log.Printf("Unhandled error: %v", err)
		env := response.Fail("Internal server error")
		if cfg.IsDevelopment() {
			env.Stack = err.Error() + "\n" + string(debug.Stack())
		}
		return c.Status(fiber.StatusInternalServerError).JSON(env)
	}
}
