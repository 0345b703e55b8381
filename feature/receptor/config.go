package receptor

import (
	"strings"
	"time"
)

// Config holds configuration for the receiving endpoints.
type Config struct {
	// BasePath is the prefix of every route. "/" mounts at the root.
	BasePath string `mapstructure:"base_path" default:"/wp-json/post-receptor/v1"`
	// RequestTimeoutSeconds bounds one request. When it expires, pending
	// translations fall back to the source text and the post is still written.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" default:"300"`
	// WriteTimeoutSeconds bounds the store writes and featured image work that
	// follow translation. It runs detached from the request deadline.
	WriteTimeoutSeconds int `mapstructure:"write_timeout_seconds" default:"60"`
	// ServiceUserID is the author of last resort.
	ServiceUserID uint `mapstructure:"service_user_id" default:"0"`
	// MaxImageMB caps the size of a downloaded featured image.
	MaxImageMB int `mapstructure:"max_image_mb" default:"20"`
	// FetchTimeoutSeconds bounds a featured image download.
	FetchTimeoutSeconds int `mapstructure:"fetch_timeout_seconds" default:"30"`
	// Concurrency bounds parallel translations within one request.
	Concurrency int `mapstructure:"concurrency" default:"4"`
}

// Prefix returns the normalized base path, "" for the root.
func (c Config) Prefix() string {
	p := strings.TrimSpace(c.BasePath)
	p = strings.TrimRight(p, "/")
	if p != "" && !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

// RequestTimeout returns the per request deadline. Zero disables it.
func (c Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// WriteTimeout returns the deadline of the write phase, 60s when unset.
func (c Config) WriteTimeout() time.Duration {
	if c.WriteTimeoutSeconds <= 0 {
		return 60 * time.Second
	}
	return time.Duration(c.WriteTimeoutSeconds) * time.Second
}

// FetchTimeout returns the image download timeout.
func (c Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

// MaxImageBytes returns the image size cap in bytes.
func (c Config) MaxImageBytes() int {
	return c.MaxImageMB * 1024 * 1024
}

// Workers returns the translation concurrency, at least 1.
func (c Config) Workers() int {
	if c.Concurrency < 1 {
		return 1
	}
	return c.Concurrency
}
