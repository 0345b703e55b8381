package server

import (
	"strings"
	"time"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// BodyLimitMB caps the size of incoming request bodies.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"16"`
	// ShutdownTimeoutSeconds bounds graceful shutdown.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" default:"15"`
}

// Addr returns the listen address for the configured port.
func (c Config) Addr() string {
	port := strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
	if port == "" {
		port = "8080"
	}
	return ":" + port
}

// BodyLimit returns the body limit in bytes.
func (c Config) BodyLimit() int {
	if c.BodyLimitMB <= 0 {
		return 16 * 1024 * 1024
	}
	return c.BodyLimitMB * 1024 * 1024
}

// ShutdownTimeout returns the graceful shutdown deadline.
func (c Config) ShutdownTimeout() time.Duration {
	if c.ShutdownTimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}
