package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/campuscare/campuscare-api/internal/models"
)

func roleApp(role string, allowed ...string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(LocalUserRole, role)
		return c.Next()
	})
	app.Use(RequireRole(allowed...))
	app.Get("/guarded", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestRequireRoleAllowsListedRoles(t *testing.T) {
	app := roleApp(models.RoleTeacher, models.RoleAdmin, models.RoleTeacher)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRoleRejectsOtherRoles(t *testing.T) {
	app := roleApp(models.RoleTeacher, models.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireRoleRejectsMissingRole(t *testing.T) {
	app := fiber.New()
	app.Use(RequireRole(models.RoleAdmin))
	app.Get("/guarded", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
