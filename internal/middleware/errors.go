package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"

	"github.com/redhat-appstudio/my-microservice/apis/common"
	"github.com/redhat-appstudio/my-microservice/pkg/logger"
)

// ErrorHandler converts every error returned by the handler chain into an
// ErrorResponse. Only validation messages reach the client verbatim;
// anything unexpected is logged and answered with a generic 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status, message := classify(c, err)
	return c.Status(status).JSON(common.ErrorResponse{Error: message})
}

func classify(c *fiber.Ctx, err error) (int, string) {
	var (
		validationErr *common.ValidationError
		fiberErr      *fiber.Error
	)

	switch {
	case errors.As(err, &validationErr):
		return fiber.StatusBadRequest, validationErr.Message

	case common.IsParseError(err):
		logger.Debug("rejected malformed request body", requestFields(c, zap.Error(err))...)
		return fiber.StatusBadRequest, common.ParseErrorMessage

	case errors.As(err, &fiberErr):
		switch {
		case fiberErr.Code == fiber.StatusNotFound:
			return fiber.StatusNotFound, common.MessageRouteNotFound
		case fiberErr.Code >= fiber.StatusInternalServerError:
			logger.Error("request failed", requestFields(c, zap.Error(err))...)
			return fiberErr.Code, common.MessageInternal
		default:
			return fiberErr.Code, utils.StatusMessage(fiberErr.Code)
		}
	}

	logger.Error("unhandled request error", requestFields(c, zap.Error(err))...)
	return fiber.StatusInternalServerError, common.MessageInternal
}

func requestFields(c *fiber.Ctx, extra ...zap.Field) []zap.Field {
	fields := []zap.Field{
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
	}
	if id := RequestIDFromCtx(c); id != "" {
		fields = append(fields, zap.String("request_id", id))
	}
	return append(fields, extra...)
}
