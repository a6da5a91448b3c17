package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func correlationApp() *fiber.App {
	app := fiber.New()
	app.Use(CorrelationID())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(GetCorrelationID(c))
	})
	return app
}

func TestCorrelationIDHonorsCallerHeader(t *testing.T) {
	app := correlationApp()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Correlation-ID", "caller-supplied")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, "caller-supplied", resp.Header.Get("X-Correlation-ID"))
}

func TestCorrelationIDFallsBackToRequestID(t *testing.T) {
	app := correlationApp()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-42")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, "req-42", resp.Header.Get("X-Correlation-ID"))
}

func TestCorrelationIDGeneratesWhenAbsent(t *testing.T) {
	app := correlationApp()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	generated := resp.Header.Get("X-Correlation-ID")
	require.NotEmpty(t, generated)
	_, err = uuid.Parse(generated)
	require.NoError(t, err)
}
