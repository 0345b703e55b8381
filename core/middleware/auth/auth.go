package auth

import (
	"context"
	"crypto/subtle"
	"strings"

	"post-receptor/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TokenFunc returns the currently configured token. It is called on every
// request so that a rotated token takes effect immediately.
type TokenFunc func(ctx context.Context) (string, error)

// Config holds configuration for the bearer token middleware.
type Config struct {
	// Token yields the expected bearer token.
	Token TokenFunc
	// Logger receives rejection reasons. Defaults to a no-op logger.
	Logger *zap.Logger
}

// Rejection messages, also returned to the client.
const (
	MsgMissingHeader = "missing authorization header"
	MsgInvalidFormat = "invalid authorization format"
	MsgNotConfigured = "no token configured on the receiver"
	MsgInvalidToken  = "invalid token"
)

// New creates a middleware that rejects requests without a matching
// "Authorization: Bearer <token>" header with 403.
func New(cfg Config) fiber.Handler {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return func(c *fiber.Ctx) error {
		l := logger.WithRayID(log, c)

		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			l.Warn("Authentication failed", zap.String("reason", MsgMissingHeader))
			return forbidden(c, MsgMissingHeader)
		}
		if !strings.HasPrefix(header, "Bearer ") {
			l.Warn("Authentication failed", zap.String("reason", MsgInvalidFormat))
			return forbidden(c, MsgInvalidFormat)
		}
		token := strings.TrimPrefix(header, "Bearer ")

		expected := ""
		if cfg.Token != nil {
			var err error
			expected, err = cfg.Token(c.Context())
			if err != nil {
				l.Error("Failed to load receiver token", zap.Error(err))
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"success": false,
					"error":   "failed to load receiver token",
				})
			}
		}
		if expected == "" {
			l.Warn("Authentication failed", zap.String("reason", MsgNotConfigured))
			return forbidden(c, MsgNotConfigured)
		}
		if subtle.ConstantTimeCompare([]byte(token), []byte(expected)) != 1 {
			l.Warn("Authentication failed", zap.String("reason", MsgInvalidToken), zap.String("token_prefix", prefix(token)))
			return forbidden(c, MsgInvalidToken)
		}

		return c.Next()
	}
}

func forbidden(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
		"success": false,
		"code":    "forbidden",
		"error":   msg,
	})
}

func prefix(token string) string {
	if len(token) > 4 {
		return token[:4] + "..."
	}
	return "..."
}
