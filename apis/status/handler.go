package status

import (
	"github.com/gofiber/fiber/v2"
)

// Handler serves the service status endpoint.
type Handler struct {
	environment string
}

// NewHandler creates a status handler echoing the given environment label.
func NewHandler(environment string) *Handler {
	return &Handler{environment: environment}
}

// Status handles GET /api/v1/status.
func (h *Handler) Status(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(StatusResponse{
		Message:     RunningMessage,
		Environment: h.environment,
	})
}
