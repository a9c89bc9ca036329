package web

import (
	"crypto/subtle"
	"slices"

	"github.com/gofiber/fiber/v2"

	"github.com/GoPowerDNS-Admin/pdns-api/internal/web/handler"
	"github.com/GoPowerDNS-Admin/pdns-api/pdns/transport"
)

// APIKeyMiddleware answers 401 unless X-API-Key matches key.
// An empty key disables the check. Paths in open are never checked.
func APIKeyMiddleware(key string, open ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if key == "" || slices.Contains(open, c.Path()) {
			return c.Next()
		}

		got := c.Get(transport.HeaderAPIKey)
		if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
			return handler.Error(c, fiber.StatusUnauthorized, "Unauthorized")
		}

		return c.Next()
	}
}
