package middleware

import (
	"errors"
	"strings"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/redhat-appstudio/my-microservice/apis/common"
)

var errInvalidJSON = errors.New("invalid JSON body")

// JSONBody rejects requests that declare a JSON body which is not
// syntactically valid JSON, before any route runs. Empty bodies pass.
// URL-encoded bodies are left to fiber's BodyParser in the handlers.
func JSONBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := c.Body()
		if len(body) == 0 || !isJSONRequest(c) {
			return c.Next()
		}
		if !json.Valid(body) {
			return &common.ParseError{Cause: errInvalidJSON}
		}
		return c.Next()
	}
}

func isJSONRequest(c *fiber.Ctx) bool {
	ctype := utils.ToLower(string(c.Request().Header.ContentType()))
	ctype = utils.ParseVendorSpecificContentType(ctype)
	return strings.HasPrefix(ctype, fiber.MIMEApplicationJSON)
}
