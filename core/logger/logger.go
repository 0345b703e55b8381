package logger

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RayIDKey is the fiber local (and log field) carrying the request id.
const RayIDKey = "ray_id"

// New creates a new zap logger based on the configuration.
func New(cfg *Config) (*zap.Logger, error) {
	var config zap.Config

	if cfg.Level == "debug" {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
		if cfg.Level != "" {
			level, err := zapcore.ParseLevel(cfg.Level)
			if err != nil {
				return nil, err
			}
			config.Level = zap.NewAtomicLevelAt(level)
		}
	}

	if cfg.Format == "console" {
		config.Encoding = "console"
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.DisableStacktrace = true
	} else {
		config.Encoding = "json"
	}

	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.MessageKey = "message"

	if cfg.Service != "" {
		config.InitialFields = map[string]interface{}{"service": cfg.Service}
	}

	return config.Build()
}

// RayID returns the request id stored by the rayid middleware, or "".
func RayID(c *fiber.Ctx) string {
	if str, ok := c.Locals(RayIDKey).(string); ok {
		return str
	}
	return ""
}

// WithRayID returns a logger with the ray_id field set from the Fiber context.
func WithRayID(l *zap.Logger, c *fiber.Ctx) *zap.Logger {
	if rid := RayID(c); rid != "" {
		return l.With(zap.String(RayIDKey, rid))
	}
	return l
}
