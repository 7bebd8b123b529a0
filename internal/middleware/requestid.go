package middleware

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// requestIDKey is the Locals key holding the current request id.
const requestIDKey = "requestid"

type requestIDContextKey struct{}

// RequestID reuses an incoming X-Request-ID header or assigns a new UUID,
// and echoes it on the response.
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     fiber.HeaderXRequestID,
		Generator:  uuid.NewString,
		ContextKey: requestIDKey,
	})
}

// RequestContext copies the request id into the user context so that
// collaborators that only receive a context.Context can see it. It must
// run after RequestID.
func RequestContext() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id := RequestIDFromCtx(c); id != "" {
			c.SetUserContext(context.WithValue(c.UserContext(), requestIDContextKey{}, id))
		}
		return c.Next()
	}
}

// RequestIDFromCtx returns the id assigned by RequestID, or "".
func RequestIDFromCtx(c *fiber.Ctx) string {
	id, _ := c.Locals(requestIDKey).(string)
	return id
}

// RequestIDFromContext returns the id stored by RequestContext, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey{}).(string)
	return id
}
