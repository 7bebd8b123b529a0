package health

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(h *Handler) *fiber.App {
	app := fiber.New()
	RegisterRoutes(app, h)
	return app
}

func TestHealth(t *testing.T) {
	h := NewHandler("1.0.0")
	app := newTestApp(h)

	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var got HealthResponse
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, StatusOK, got.Status)
		assert.Equal(t, ServiceName, got.Service)
		assert.Equal(t, "1.0.0", got.Version)

		_, err = time.Parse(time.RFC3339Nano, got.Timestamp)
		assert.NoError(t, err, "timestamp must be a valid date-time")
	}
}

func TestHealth_TimestampFormat(t *testing.T) {
	h := NewHandler("2.0.0")
	h.now = func() time.Time {
		return time.Date(2024, 5, 1, 12, 30, 15, 42*int(time.Millisecond), time.FixedZone("CEST", 2*60*60))
	}
	app := newTestApp(h)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil))
	require.NoError(t, err)

	var got HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "2024-05-01T10:30:15.042Z", got.Timestamp)
	assert.Equal(t, "2.0.0", got.Version)
}
