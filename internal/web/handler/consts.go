package handler

import (
	"github.com/gofiber/fiber/v2"
)

const (
	// ServersPath lists the server descriptors.
	ServersPath = "/servers"

	// ServerPath is a single server descriptor.
	ServerPath = ServersPath + "/:server"

	// ZonesPath lists the zones of a server.
	ZonesPath = ServerPath + "/zones"

	// ZonePath is a single zone.
	ZonePath = ZonesPath + "/:zone"

	// ErrNilACDFatalLogMsg is used if app or cfg or db var pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or db is nil"
)

// Error writes the error body PowerDNS uses: {"error": msg}.
func Error(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// RequireServer answers 404 for any server id other than id.
func RequireServer(id string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Params("server") != id {
			return Error(c, fiber.StatusNotFound, "Not Found")
		}

		return c.Next()
	}
}
