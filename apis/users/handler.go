package users

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"

	"github.com/redhat-appstudio/my-microservice/apis/common"
	"github.com/redhat-appstudio/my-microservice/pkg/logger"
)

// Handler serves the user endpoints.
type Handler struct {
	repo    Repository
	journal Journal
}

// NewHandler creates a users handler. journal may be nil.
func NewHandler(repo Repository, journal Journal) *Handler {
	return &Handler{repo: repo, journal: journal}
}

// ListUsers handles GET /api/v1/users.
func (h *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := h.repo.List(c.UserContext())
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}
	return c.Status(fiber.StatusOK).JSON(users)
}

// CreateUser handles POST /api/v1/users.
func (h *Handler) CreateUser(c *fiber.Ctx) error {
	req, err := bindCreateUser(c)
	if err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	user, err := h.repo.Create(c.UserContext(), req)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if h.journal != nil {
		if err := h.journal.Record(c.UserContext(), user); err != nil {
			logger.Warn("failed to journal created user",
				zap.Int64("user_id", user.ID),
				zap.Error(err))
		}
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// bindCreateUser reads name and email from JSON and URL-encoded bodies.
// Keys match exactly: "Name" or "EMAIL" do not count. Empty bodies and
// other content types bind to an empty request so that validation reports
// the missing fields. A JSON value that is not a string, or a JSON body
// that is not an object, counts as missing. Syntax errors never get here:
// middleware.JSONBody rejects them first, and without that middleware they
// surface as a validation error.
func bindCreateUser(c *fiber.Ctx) (CreateUserRequest, error) {
	var req CreateUserRequest

	body := c.Body()
	if len(body) == 0 {
		return req, nil
	}

	ctype := utils.ToLower(string(c.Request().Header.ContentType()))
	ctype = utils.ParseVendorSpecificContentType(ctype)

	switch {
	case strings.HasPrefix(ctype, fiber.MIMEApplicationJSON):
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(body, &fields); err != nil {
			return req, common.NewValidationError(MessageNameEmailRequired)
		}
		req.Name = stringField(fields, "name")
		req.Email = stringField(fields, "email")
	case strings.HasPrefix(ctype, fiber.MIMEApplicationForm):
		form := c.Request().PostArgs()
		req.Name = string(form.Peek("name"))
		req.Email = string(form.Peek("email"))
	}

	return req, nil
}

// stringField returns fields[key] when it holds a JSON string, else "".
func stringField(fields map[string]json.RawMessage, key string) string {
	raw, ok := fields[key]
	if !ok {
		return ""
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return ""
	}
	return value
}
