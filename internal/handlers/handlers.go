package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/redhat-appstudio/my-microservice/apis/common"
	"github.com/redhat-appstudio/my-microservice/apis/health"
	"github.com/redhat-appstudio/my-microservice/apis/status"
	"github.com/redhat-appstudio/my-microservice/apis/users"
)

// Dependencies carries the collaborators the API handlers need.
type Dependencies struct {
	ServiceVersion string
	Environment    string
	Repository     users.Repository
	// Journal is optional
	Journal users.Journal
}

// SetupRoutes registers every API on the application, followed by the
// catch-all not-found handler. Nothing may be registered after it.
func SetupRoutes(app *fiber.App, deps Dependencies) {
	health.RegisterRoutes(app, health.NewHandler(deps.ServiceVersion))

	v1 := app.Group("/api/v1")
	status.RegisterRoutes(v1, status.NewHandler(deps.Environment))
	users.RegisterRoutes(v1, users.NewHandler(deps.Repository, deps.Journal))

	app.Use(NotFoundHandler)
}

// NotFoundHandler answers any request that matched no route, whatever its
// method.
func NotFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(common.ErrorResponse{
		Error: common.MessageRouteNotFound,
	})
}
