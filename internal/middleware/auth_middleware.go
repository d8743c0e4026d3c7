package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"kejani_backend/pkg/utils/jwt"
)

// AuthMiddleware resolves the current user from the bearer token issued
// by the identity provider and rejects the request without one.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, found := strings.CutPrefix(c.Get("Authorization"), "Bearer ")
		if !found || token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing or invalid authorization header",
			})
		}

		claims, err := jwt.ValidateToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		c.Locals("user", claims)
		return c.Next()
	}
}

// OptionalAuth attaches claims when a valid token is present but never
// rejects the request. Public listings use it so favorites can scope to
// the caller when one exists.
func OptionalAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token, found := strings.CutPrefix(c.Get("Authorization"), "Bearer "); found && token != "" {
			if claims, err := jwt.ValidateToken(token); err == nil {
				c.Locals("user", claims)
			}
		}
		return c.Next()
	}
}

// CurrentUserID returns the authenticated user id, or "" when the
// request carries no identity.
func CurrentUserID(c *fiber.Ctx) string {
	if claims, ok := c.Locals("user").(*jwt.Claims); ok {
		return claims.UserID
	}
	return ""
}
