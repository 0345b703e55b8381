package settings

import (
	"context"
	"errors"
)

// Option names as stored in the options table.
const (
	OptionAPIKey         = "openai_api_key"
	OptionSystemPrompt   = "system_prompt"
	OptionTargetLanguage = "target_language"
	OptionAuthToken      = "auth_token"
	OptionSenderURL      = "sender_url"
)

// ErrUnknownOption is returned when setting a name outside the known options.
var ErrUnknownOption = errors.New("unknown option")

// Settings is an immutable snapshot of the process-wide options, read once at
// the start of a request and used for its whole duration.
type Settings struct {
	APIKey         string
	SystemPrompt   string
	TargetLanguage string
	AuthToken      string
	SenderURL      string
}

// HasAPIKey reports whether translation is configured.
func (s Settings) HasAPIKey() bool {
	return s.APIKey != ""
}

// HasAuthToken reports whether a receiver token is configured.
func (s Settings) HasAuthToken() bool {
	return s.AuthToken != ""
}

// Source yields the current settings snapshot.
type Source interface {
	Snapshot(ctx context.Context) (Settings, error)
}

// Static is a fixed Source.
type Static Settings

// Snapshot returns the static settings.
func (s Static) Snapshot(context.Context) (Settings, error) {
	return Settings(s), nil
}

func fromOptions(values map[string]string) Settings {
	return Settings{
		APIKey:         values[OptionAPIKey],
		SystemPrompt:   values[OptionSystemPrompt],
		TargetLanguage: values[OptionTargetLanguage],
		AuthToken:      values[OptionAuthToken],
		SenderURL:      values[OptionSenderURL],
	}
}

func knownOption(name string) bool {
	switch name {
	case OptionAPIKey, OptionSystemPrompt, OptionTargetLanguage, OptionAuthToken, OptionSenderURL:
		return true
	default:
		return false
	}
}
