package settings

// Config carries bootstrap values. Each one is written to the options table
// on startup only when the stored option is still empty, so values changed at
// runtime (for example a regenerated token) survive restarts.
type Config struct {
	// OpenAIAPIKey is the translation provider key.
	OpenAIAPIKey string `mapstructure:"openai_api_key" default:""`
	// SystemPrompt is the style/tone prompt spliced into title, body and excerpt translations.
	SystemPrompt string `mapstructure:"system_prompt" default:""`
	// TargetLanguage is the language posts are translated into.
	TargetLanguage string `mapstructure:"target_language" default:"en_US"`
	// AuthToken is the bearer token senders must present.
	AuthToken string `mapstructure:"auth_token" default:""`
	// SenderURL is the address of the sending site (informational).
	SenderURL string `mapstructure:"sender_url" default:""`
}

func (c Config) options() map[string]string {
	return map[string]string{
		OptionAPIKey:         c.OpenAIAPIKey,
		OptionSystemPrompt:   c.SystemPrompt,
		OptionTargetLanguage: c.TargetLanguage,
		OptionAuthToken:      c.AuthToken,
		OptionSenderURL:      c.SenderURL,
	}
}
