package translation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// ErrNoChoices is returned when the provider answers without a completion.
var ErrNoChoices = errors.New("no completion returned")

// Provider sends one chat completion request. The API key travels with every
// call because it comes from the per-request settings snapshot.
type Provider interface {
	Complete(ctx context.Context, apiKey, system, user string) (string, error)
}

// OpenAIProvider calls the OpenAI chat completions API.
type OpenAIProvider struct {
	client openai.Client
	cfg    Config
}

// NewOpenAIProvider creates a provider. SDK retries are disabled; the
// translator applies its own policy.
func NewOpenAIProvider(cfg Config) *OpenAIProvider {
	opts := []option.RequestOption{option.WithMaxRetries(0)}
	if cfg.BaseURL != "" {
		base := cfg.BaseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		opts = append(opts, option.WithBaseURL(base))
	}
	return &OpenAIProvider{
		client: openai.NewClient(opts...),
		cfg:    cfg,
	}
}

// Complete implements Provider.
func (p *OpenAIProvider) Complete(ctx context.Context, apiKey, system, user string) (string, error) {
	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.cfg.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Temperature: openai.Float(p.cfg.Temperature),
		MaxTokens:   openai.Int(p.cfg.MaxTokens),
	}, option.WithAPIKey(apiKey))
	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}
	return resp.Choices[0].Message.Content, nil
}
