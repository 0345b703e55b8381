package translation

import "time"

// Config holds configuration for the translation provider.
type Config struct {
	// Model is the chat completion model.
	Model string `mapstructure:"model" default:"gpt-4o-mini"`
	// BaseURL overrides the provider endpoint. Empty uses the public API.
	BaseURL string `mapstructure:"base_url" default:""`
	// Attempts is the number of tries per text before falling back to the source.
	Attempts int `mapstructure:"attempts" default:"3"`
	// TimeoutSeconds bounds every single attempt.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// Temperature is the sampling temperature.
	Temperature float64 `mapstructure:"temperature" default:"0.3"`
	// MaxTokens caps the completion length.
	MaxTokens int64 `mapstructure:"max_tokens" default:"6000"`
}

// DefaultConfig mirrors the struct tag defaults.
func DefaultConfig() Config {
	return Config{
		Model:          "gpt-4o-mini",
		Attempts:       3,
		TimeoutSeconds: 30,
		Temperature:    0.3,
		MaxTokens:      6000,
	}
}

// Timeout returns the per-attempt timeout.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
