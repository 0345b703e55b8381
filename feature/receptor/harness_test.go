package receptor_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"post-receptor/core/middleware/cors"
	"post-receptor/core/reconcile"
	"post-receptor/core/settings"
	"post-receptor/core/storage"
	"post-receptor/core/storage/mocks"
	"post-receptor/feature/content"
	"post-receptor/feature/content/contenttest"
	"post-receptor/feature/receptor"
	"post-receptor/feature/receptor/author"
	"post-receptor/feature/receptor/media"
	"post-receptor/feature/receptor/taxonomy"
	"post-receptor/feature/translation"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testToken = "0123456789abcdef0123456789abcdef"

// dictProvider answers with a fixed dictionary, or tags unknown text.
type dictProvider struct {
	mu    sync.Mutex
	calls int
	dict  map[string]string
}

func (d *dictProvider) Complete(_ context.Context, _, _, user string) (string, error) {
	d.mu.Lock()
	d.calls++
	d.mu.Unlock()

	_, text, _ := strings.Cut(user, "\n\n")
	if out, ok := d.dict[text]; ok {
		return out, nil
	}
	return text + " (en)", nil
}

func (d *dictProvider) Calls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.calls
}

// countingFetcher serves a fixed PNG and records requested urls.
type countingFetcher struct {
	mu   sync.Mutex
	urls []string
}

func (f *countingFetcher) Fetch(_ context.Context, rawURL string) (*media.Download, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.urls = append(f.urls, rawURL)
	return &media.Download{Data: []byte("\x89PNG\r\n\x1a\nfake"), ContentType: "image/png", FileName: "image.png"}, nil
}

func (f *countingFetcher) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.urls)
}

type harness struct {
	app      *fiber.App
	svc      *receptor.Service
	store    *content.Store
	settings *settings.Store
	provider *dictProvider
	fetcher  *countingFetcher
	objects  *mocks.Client
}

type harnessOption func(*harnessConfig)

type harnessConfig struct {
	wrap      func(*content.Store) receptor.Store
	wrapMedia func(*content.Store) media.Store
	provider  translation.Provider
	settings  settings.Config
	cfg       receptor.Config
}

func withStore(wrap func(*content.Store) receptor.Store) harnessOption {
	return func(c *harnessConfig) { c.wrap = wrap }
}

func withSettings(s settings.Config) harnessOption {
	return func(c *harnessConfig) { c.settings = s }
}

func withMediaStore(wrap func(*content.Store) media.Store) harnessOption {
	return func(c *harnessConfig) { c.wrapMedia = wrap }
}

func withProvider(p translation.Provider) harnessOption {
	return func(c *harnessConfig) { c.provider = p }
}

func withConfig(cfg receptor.Config) harnessOption {
	return func(c *harnessConfig) { c.cfg = cfg }
}

func newHarness(t *testing.T, opts ...harnessOption) *harness {
	t.Helper()

	hc := harnessConfig{
		wrap:      func(s *content.Store) receptor.Store { return s },
		wrapMedia: func(s *content.Store) media.Store { return s },
		settings: settings.Config{
			OpenAIAPIKey:   "sk-test",
			SystemPrompt:   "neutral tone",
			TargetLanguage: "en_US",
			AuthToken:      testToken,
		},
		cfg: receptor.Config{
			BasePath:              "/wp-json/post-receptor/v1",
			RequestTimeoutSeconds: 30,
			ServiceUserID:         1,
			Concurrency:           4,
		},
	}
	for _, opt := range opts {
		opt(&hc)
	}

	store := contenttest.NewStore(t)
	settingsStore := settings.NewStore(store.DB())
	require.NoError(t, settingsStore.Migrate())
	require.NoError(t, settingsStore.Bootstrap(context.Background(), hc.settings))

	provider := &dictProvider{dict: map[string]string{
		"Olá Mundo": "Hello World",
		"Notícias":  "News",
		"Novidades": "news",
	}}
	var active translation.Provider = provider
	if hc.provider != nil {
		active = hc.provider
	}
	translator := translation.NewTranslator(active, settingsStore, translation.DefaultConfig(), zap.NewNop())

	objects := new(mocks.Client)
	objects.On("PutObject", mock.Anything, "media", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil).Maybe()
	objects.On("RemoveObject", mock.Anything, "media", mock.Anything, mock.Anything).
		Return(nil).Maybe()

	fetcher := &countingFetcher{}
	logger := zap.NewNop()

	svc := receptor.NewService(
		hc.wrap(store),
		settingsStore,
		translator,
		taxonomy.NewReconciler(store, translator, logger, 4),
		media.NewReconciler(hc.wrapMedia(store), objects, storage.Config{Bucket: "media", Prefix: "uploads"}, fetcher, translator, logger, 4),
		author.NewResolver(store, logger, hc.cfg.ServiceUserID),
		reconcile.NewKeyedMutex(),
		hc.cfg,
		logger,
	)

	app := fiber.New()
	app.Use(cors.New())
	require.NoError(t, receptor.NewFeature(svc, hc.cfg, logger).Load(app))

	return &harness{
		app:      app,
		svc:      svc,
		store:    store,
		settings: settingsStore,
		provider: provider,
		fetcher:  fetcher,
		objects:  objects,
	}
}
