package status

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the status endpoint on the versioned API router.
func RegisterRoutes(router fiber.Router, handler *Handler) {
	router.Get("/status", handler.Status)
}
