package cors

import (
	"github.com/gofiber/fiber/v2"
)

// Config holds the CORS response headers.
type Config struct {
	AllowOrigins string
	AllowMethods string
	AllowHeaders string
}

// DefaultConfig allows any origin, which is what remote senders expect.
var DefaultConfig = Config{
	AllowOrigins: "*",
	AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	AllowHeaders: "Authorization, Content-Type",
}

// New sets CORS headers on every response and answers OPTIONS requests with
// an empty 200 before any other handler (including authentication) runs.
func New(config ...Config) fiber.Handler {
	cfg := DefaultConfig
	if len(config) > 0 {
		cfg = config[0]
	}

	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAccessControlAllowOrigin, cfg.AllowOrigins)
		c.Set(fiber.HeaderAccessControlAllowMethods, cfg.AllowMethods)
		c.Set(fiber.HeaderAccessControlAllowHeaders, cfg.AllowHeaders)

		if c.Method() == fiber.MethodOptions {
			return c.SendStatus(fiber.StatusOK)
		}
		return c.Next()
	}
}
