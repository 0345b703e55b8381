package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"post-receptor/core/loader"
	"post-receptor/core/logger"
	"post-receptor/core/middleware/cors"
	"post-receptor/core/middleware/rayid"
	"post-receptor/core/reconcile"
	"post-receptor/core/storage"
	"post-receptor/feature/integrity"
	"post-receptor/feature/receptor"
	"post-receptor/feature/receptor/author"
	"post-receptor/feature/receptor/media"
	"post-receptor/feature/receptor/taxonomy"
	"post-receptor/feature/translation"

	swaggerdocs "post-receptor/docs/swagger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title Post Receptor API
// @version 1.0
// @description Receives, translates and publishes posts pushed by a sending site.
// @host localhost:8080
// @BasePath /wp-json/post-receptor/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the post receptor server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStart(cmd.Context())
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}

func runStart(ctx context.Context) error {
	a, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	cfg := a.cfg
	logg := a.logger
	zap.ReplaceGlobals(logg)

	snap, err := a.settings.Snapshot(ctx)
	if err != nil {
		return err
	}
	if !snap.HasAuthToken() {
		logg.Warn("No receiver token configured; protected endpoints will reject every request. Run `post-receptor token regenerate`.")
	}
	if !snap.HasAPIKey() {
		logg.Warn("No OpenAI API key configured; posts will be stored untranslated")
	}

	// Storage
	objects, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return err
	}
	if err := storage.EnsureBucket(ctx, objects, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
		logg.Warn("Media bucket is not reachable; featured images will be skipped until it is",
			zap.String("bucket", cfg.Storage.Bucket),
			zap.Error(err),
		)
	}

	// Publish lock
	var locker reconcile.Locker = reconcile.NewKeyedMutex()
	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = reconcile.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer redisClient.Close()
		locker = reconcile.NewRedisLocker(redisClient, cfg.Redis)
		logg.Info("Using redis publish lock")
	}

	// Receptor wiring
	workers := cfg.Receptor.Workers()
	translator := translation.NewTranslator(
		translation.NewOpenAIProvider(cfg.Translation),
		a.settings,
		cfg.Translation,
		logg,
	)
	fetcher := media.NewHTTPFetcher(cfg.Receptor.FetchTimeout(), cfg.Receptor.MaxImageBytes())

	service := receptor.NewService(
		a.content,
		a.settings,
		translator,
		taxonomy.NewReconciler(a.content, translator, logg, workers),
		media.NewReconciler(a.content, objects, cfg.Storage, fetcher, translator, logg, workers),
		author.NewResolver(a.content, logg, cfg.Receptor.ServiceUserID),
		locker,
		cfg.Receptor,
		logg,
	)

	app := fiber.New(fiber.Config{
		BodyLimit:             cfg.Server.BodyLimit(),
		DisableStartupMessage: true,
	})

	// Middleware Registration
	app.Use(rayid.New())
	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		start := time.Now()
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		l.Info("Request handled",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("elapsed", time.Since(start)),
		)
		return err
	})
	app.Use(cors.New())

	swaggerdocs.SwaggerInfo.BasePath = cfg.Receptor.Prefix()
	app.Get("/swagger/*", swagger.HandlerDefault)

	mgr := loader.NewManager(logg)
	mgr.Register(receptor.NewFeature(service, cfg.Receptor, logg))
	mgr.Register(integrity.NewFeature(newIntegrityService(a, objects), cfg.Receptor.Prefix(), logg))
	if err := mgr.LoadAll(app); err != nil {
		return err
	}

	listenErr := make(chan error, 1)
	go func() {
		logg.Info("Starting server",
			zap.String("addr", cfg.Server.Addr()),
			zap.String("base_path", cfg.Receptor.Prefix()),
		)
		listenErr <- app.Listen(cfg.Server.Addr())
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-listenErr:
		return err
	case <-quit:
	}

	logg.Info("Shutting down server...")
	if err := app.ShutdownWithTimeout(cfg.Server.ShutdownTimeout()); err != nil {
		logg.Warn("Graceful shutdown incomplete", zap.Error(err))
	}
	return nil
}
