package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"employee-attendance/pkg/logging"
	"employee-attendance/pkg/token"
)

const userLocalsKey = "user"

func AuthMiddleware(issuer token.Issuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authorization header is required"})
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authorization header format must be Bearer <token>"})
		}

		claims, err := issuer.Validate(parts[1])
		if err != nil {
			msg := "Invalid token"
			if errors.Is(err, token.ErrExpiredToken) {
				msg = "Token has expired"
			}
			logging.Ctx(c.UserContext()).Debug().Err(err).Msg("rejected bearer token")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": msg})
		}

		c.Locals(userLocalsKey, claims)
		l := logging.Ctx(c.UserContext()).With().Str("user_id", claims.UserID).Logger()
		c.SetUserContext(logging.ContextWithLogger(c.UserContext(), l))

		return c.Next()
	}
}

// CurrentUser returns the claims stored by AuthMiddleware.
func CurrentUser(c *fiber.Ctx) (*token.Claims, bool) {
	claims, ok := c.Locals(userLocalsKey).(*token.Claims)
	return claims, ok && claims != nil
}
