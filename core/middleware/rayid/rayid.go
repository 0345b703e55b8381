package rayid

import (
	"post-receptor/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the request and response header carrying the ray id.
const HeaderName = "X-Ray-ID"

// New creates a middleware that assigns every request a ray id. An incoming
// X-Ray-ID header is reused so senders can correlate their own logs.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" || len(rid) > 128 {
			rid = uuid.NewString()
		}
		c.Locals(logger.RayIDKey, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
