package translation

import (
	"context"
	"errors"
	"strings"

	"post-receptor/core/retry"
	"post-receptor/core/settings"

	"go.uber.org/zap"
)

var (
	// ErrEmpty rejects a blank completion.
	ErrEmpty = errors.New("empty translation")
	// ErrUnchanged rejects a completion equal to the input, ignoring case.
	ErrUnchanged = errors.New("translation identical to source")
)

// Translator translates post fields. It never fails: when translation is
// not possible or every attempt is rejected, the input comes back unchanged.
type Translator struct {
	provider Provider
	settings settings.Source
	cfg      Config
	logger   *zap.Logger
}

// NewTranslator creates a translator.
func NewTranslator(provider Provider, source settings.Source, cfg Config, logger *zap.Logger) *Translator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Translator{
		provider: provider,
		settings: source,
		cfg:      cfg,
		logger:   logger,
	}
}

// Translate returns text translated from src to dst under context c.
func (t *Translator) Translate(ctx context.Context, text, src, dst string, c Context) string {
	if text == "" || src == dst {
		return text
	}

	snap, err := t.settings.Snapshot(ctx)
	if err != nil {
		t.logger.Warn("Translation skipped, settings unavailable", zap.Error(err))
		return text
	}
	if !snap.HasAPIKey() {
		return text
	}

	srcName, dstName := LanguageName(src), LanguageName(dst)
	instruction := Instruction(c, srcName, dstName, snap.SystemPrompt)
	user := instruction + "\n\n" + text
	source := strings.TrimSpace(text)

	log := t.logger.With(zap.String("context", string(c)), zap.String("from", src), zap.String("to", dst))

	policy := retry.Policy[string]{
		Attempts: t.cfg.Attempts,
		Timeout:  t.cfg.Timeout(),
		Accept: func(out string) error {
			if out == "" {
				return ErrEmpty
			}
			if strings.EqualFold(out, source) {
				return ErrUnchanged
			}
			return nil
		},
		OnFailure: func(attempt int, err error) {
			if errors.Is(err, ErrUnchanged) || errors.Is(err, ErrEmpty) {
				log.Info("Translation attempt rejected", zap.Int("attempt", attempt), zap.Error(err))
				return
			}
			log.Warn("Translation attempt failed", zap.Int("attempt", attempt), zap.Error(err))
		},
	}

	out, err := policy.Do(ctx, func(ctx context.Context) (string, error) {
		resp, err := t.provider.Complete(ctx, snap.APIKey, instruction, user)
		return strings.TrimSpace(resp), err
	})
	if err != nil {
		log.Warn("Translation failed, keeping source text", zap.Error(err))
		return text
	}
	return out
}
