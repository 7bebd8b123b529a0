package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/redhat-appstudio/my-microservice/pkg/logger"
)

// RequestLogger logs method, path, status and duration of every request.
// Errors from later handlers are resolved through the app's ErrorHandler
// here so that the logged status is the one sent to the client.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		logger.Info("request", requestFields(c,
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start).Round(time.Microsecond)),
		)...)

		return nil
	}
}
