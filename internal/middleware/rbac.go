package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campuscare/campuscare-api/internal/utils"
)

// RequireRole ensures the authenticated caller holds one of the allowed
// roles. It runs after JWTProtected, which sets the role local.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocalUserRole).(string)
		if _, ok := allowed[role]; !ok {
			return utils.SendError(c, fiber.StatusForbidden, "insufficient permissions")
		}
		return c.Next()
	}
}
