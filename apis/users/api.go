package users

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the user endpoints on the versioned API router.
func RegisterRoutes(router fiber.Router, handler *Handler) {
	router.Get("/users", handler.ListUsers)
	router.Post("/users", handler.CreateUser)
}
