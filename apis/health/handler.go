package health

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/redhat-appstudio/my-microservice/apis/common"
)

// Handler serves the liveness endpoint.
type Handler struct {
	version string
	now     func() time.Time
}

// NewHandler creates a health handler reporting the given version.
func NewHandler(version string) *Handler {
	return &Handler{version: version, now: time.Now}
}

// Health handles GET /health.
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(HealthResponse{
		Status:    StatusOK,
		Timestamp: h.now().UTC().Format(common.ISOTimeLayout),
		Service:   ServiceName,
		Version:   h.version,
	})
}
