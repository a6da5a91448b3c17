package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/campuscare/campuscare-api/internal/auth"
	"github.com/campuscare/campuscare-api/internal/utils"
)

// Locals keys set by the JWT middleware and read by handlers.
const (
	LocalUserID   = "user_id"
	LocalUserRole = "user_role"
)

// BearerToken extracts the token from an Authorization header value, or ""
// when the header is absent or not a bearer scheme.
func BearerToken(header string) string {
	const bearer = "Bearer "
	if len(header) < len(bearer) || !strings.EqualFold(header[:len(bearer)], bearer) {
		return ""
	}
	return strings.TrimSpace(header[len(bearer):])
}

// JWTProtected returns a middleware that validates bearer session tokens and
// attaches the caller's id and role to the request.
func JWTProtected(tokens *auth.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return utils.SendError(c, fiber.StatusUnauthorized, "authorization header missing")
		}

		tokenString := BearerToken(header)
		if tokenString == "" {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid authorization header")
		}

		claims, err := tokens.Validate(tokenString)
		if err != nil {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid or expired token")
		}

		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalUserRole, claims.Role)

		return c.Next()
	}
}
