package testutil

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"planforge/internal/httpx/kit"
	"planforge/internal/httpx/mw"
)

// NewApp creates a Fiber app with the standard error handler and applies
// the given mount functions to register selective routes. Useful for tests.
func NewApp(mounts ...func(*fiber.App)) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: kit.ErrorHandler()})
	for _, m := range mounts {
		if m != nil {
			m(app)
		}
	}
	return app
}

// AsUser returns a mount that installs an auth context for the given user id,
// standing in for the JWT middleware.
func AsUser(id uuid.UUID) func(*fiber.App) {
	return func(app *fiber.App) {
		app.Use(func(c *fiber.Ctx) error {
			c.Locals("auth", &mw.AuthContext{Subject: "user:" + id.String(), Kind: "user"})
			return c.Next()
		})
	}
}
