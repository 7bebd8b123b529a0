package health

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the health check endpoint at the root of the
// application, outside the versioned API group.
func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/health", handler.Health)
}
