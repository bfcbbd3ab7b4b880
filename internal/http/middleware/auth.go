package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"portfolio/internal/auth"
)

// AdminClaimsLocalKey is where RequireAdmin stores the validated claims.
const AdminClaimsLocalKey = "admin_claims"

// TokenValidator checks a bearer token.
type TokenValidator interface {
	Validate(token string) (*auth.Claims, error)
}

// RequireAdmin rejects requests without a valid "Authorization: Bearer <token>" header.
func RequireAdmin(v TokenValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		parts := strings.Fields(c.Get(fiber.HeaderAuthorization))
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.ErrUnauthorized
		}

		claims, err := v.Validate(parts[1])
		if err != nil {
			return fiber.ErrUnauthorized
		}

		c.Locals(AdminClaimsLocalKey, claims)
		return c.Next()
	}
}
