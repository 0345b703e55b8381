package integrity

import (
	"context"
	"fmt"

	"post-receptor/core/settings"
	"post-receptor/core/storage"
	"post-receptor/feature/translation"

	"go.uber.org/zap"
)

// SchemaVerifier is implemented by stores that can check their tables.
type SchemaVerifier interface {
	VerifySchema() error
}

// Schema names a verifier in the report.
type Schema struct {
	Name     string
	Verifier SchemaVerifier
}

// Check is the outcome of one check. Optional checks never make the report
// unhealthy.
type Check struct {
	Name     string `json:"name"`
	OK       bool   `json:"ok"`
	Required bool   `json:"required"`
	Detail   string `json:"detail,omitempty"`
}

// Report is the outcome of a full run.
type Report struct {
	Healthy bool    `json:"healthy"`
	Checks  []Check `json:"checks"`
}

// Service runs integrity checks.
type Service struct {
	schemas []Schema
	objects storage.Client
	storage storage.Config
	source  settings.Source
	logger  *zap.Logger
}

// NewService creates a new integrity service.
func NewService(objects storage.Client, storageCfg storage.Config, source settings.Source, logger *zap.Logger, schemas ...Schema) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		schemas: schemas,
		objects: objects,
		storage: storageCfg,
		source:  source,
		logger:  logger,
	}
}

// Run executes every check.
func (s *Service) Run(ctx context.Context) Report {
	var checks []Check
	checks = append(checks, s.CheckSchema()...)
	checks = append(checks, s.CheckStorage(ctx))
	checks = append(checks, s.CheckSettings(ctx)...)

	report := Report{Healthy: true, Checks: checks}
	for _, c := range checks {
		if c.Required && !c.OK {
			report.Healthy = false
			s.logger.Warn("Integrity check failed", zap.String("check", c.Name), zap.String("detail", c.Detail))
		}
	}
	return report
}

// CheckSchema verifies every registered store.
func (s *Service) CheckSchema() []Check {
	checks := make([]Check, 0, len(s.schemas))
	for _, schema := range s.schemas {
		c := Check{Name: "schema:" + schema.Name, OK: true, Required: true}
		if err := schema.Verifier.VerifySchema(); err != nil {
			c.OK = false
			c.Detail = err.Error()
		}
		checks = append(checks, c)
	}
	return checks
}

// CheckStorage verifies that the media bucket exists.
func (s *Service) CheckStorage(ctx context.Context) Check {
	c := Check{Name: "storage", Required: true}
	exists, err := s.objects.BucketExists(ctx, s.storage.Bucket)
	switch {
	case err != nil:
		c.Detail = fmt.Sprintf("failed to check bucket %s: %v", s.storage.Bucket, err)
	case !exists:
		c.Detail = fmt.Sprintf("bucket %s does not exist", s.storage.Bucket)
	default:
		c.OK = true
	}
	return c
}

// FixStorage creates the media bucket when missing.
func (s *Service) FixStorage(ctx context.Context) error {
	if err := storage.EnsureBucket(ctx, s.objects, s.storage.Bucket, s.storage.Region); err != nil {
		return err
	}
	s.logger.Info("Media bucket ensured", zap.String("bucket", s.storage.Bucket))
	return nil
}

// CheckSettings inspects the current options.
func (s *Service) CheckSettings(ctx context.Context) []Check {
	snap, err := s.source.Snapshot(ctx)
	if err != nil {
		return []Check{{Name: "settings", Required: true, Detail: err.Error()}}
	}

	token := Check{Name: "settings:auth_token", OK: snap.HasAuthToken(), Required: true}
	if !token.OK {
		token.Detail = "no receiver token configured"
	}

	language := Check{Name: "settings:target_language", OK: translation.IsSupported(snap.TargetLanguage), Required: true}
	if !language.OK {
		language.Detail = fmt.Sprintf("unsupported target language %q", snap.TargetLanguage)
	}

	apiKey := Check{Name: "settings:openai_api_key", OK: snap.HasAPIKey()}
	if !apiKey.OK {
		apiKey.Detail = "posts are stored untranslated"
	}

	return []Check{token, language, apiKey}
}
