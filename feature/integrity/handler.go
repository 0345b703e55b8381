package integrity

import (
	"context"

	"post-receptor/core/logger"
	"post-receptor/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles integrity HTTP requests.
type Handler struct {
	service *Service
	prefix  string
	logger  *zap.Logger
}

// NewHandler creates a new integrity handler mounted under prefix.
func NewHandler(service *Service, prefix string, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{service: service, prefix: prefix, logger: logger}
}

// RegisterRoutes registers the integrity route behind the receiver token.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app
	if h.prefix != "" {
		group = app.Group(h.prefix)
	}

	requireToken := auth.New(auth.Config{
		Token: func(ctx context.Context) (string, error) {
			snap, err := h.service.source.Snapshot(ctx)
			return snap.AuthToken, err
		},
		Logger: h.logger,
	})

	group.Get("/integrity", requireToken, h.HandleIntegrity)
}

// HandleIntegrity runs all checks.
// @Summary Integrity Report
// @Description Verify database schema, media bucket and settings. Use fix=true to create a missing bucket.
// @Tags integrity
// @Produce json
// @Security BearerAuth
// @Param fix query bool false "Create the media bucket when missing"
// @Success 200 {object} integrity.Report
// @Failure 403 {object} map[string]any "Forbidden"
// @Failure 503 {object} integrity.Report
// @Router /integrity [get]
func (h *Handler) HandleIntegrity(c *fiber.Ctx) error {
	ctx := c.UserContext()
	l := logger.WithRayID(h.logger, c)

	if c.QueryBool("fix") {
		if err := h.service.FixStorage(ctx); err != nil {
			l.Error("Failed to fix storage", zap.Error(err))
		}
	}

	report := h.service.Run(ctx)
	status := fiber.StatusOK
	if !report.Healthy {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(report)
}
