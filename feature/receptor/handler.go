package receptor

import (
	"context"
	"time"

	"post-receptor/core/logger"
	"post-receptor/core/middleware/auth"
	"post-receptor/feature/receptor/payload"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Version is reported by the status endpoint.
const Version = "1.0.0"

// TimestampLayout formats the status endpoint timestamp.
const TimestampLayout = "2006-01-02 15:04:05"

// Handler handles HTTP requests from the sending site.
type Handler struct {
	service *Service
	cfg     Config
	logger  *zap.Logger
	now     func() time.Time
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, cfg Config, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{service: service, cfg: cfg, logger: logger, now: time.Now}
}

// RegisterRoutes registers the receptor routes under the configured prefix.
// Only the status route is public.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app
	if prefix := h.cfg.Prefix(); prefix != "" {
		group = app.Group(prefix)
	}

	requireToken := auth.New(auth.Config{
		Token: func(ctx context.Context) (string, error) {
			snap, err := h.service.Settings(ctx)
			return snap.AuthToken, err
		},
		Logger: h.logger,
	})

	group.Get("/status", h.HandleStatus)
	group.Get("/check-token", requireToken, h.HandleCheckToken)
	group.Post("/receive", requireToken, h.HandleReceive)
	group.Post("/update-status", requireToken, h.HandleUpdateStatus)
	group.Post("/delete", requireToken, h.HandleDelete)
}

func (h *Handler) requestContext(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	if timeout := h.cfg.RequestTimeout(); timeout > 0 {
		return context.WithTimeout(c.UserContext(), timeout)
	}
	return context.WithCancel(c.UserContext())
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
	})
}

func internalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
	})
}

// HandleReceive creates or updates a post.
// @Summary Receive Post
// @Description Translate and upsert a post sent by the source site. Replays with the same ID update the same local post.
// @Tags receptor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body payload.Post true "Post payload"
// @Success 200 {object} map[string]any "success, post_id"
// @Failure 400 {object} map[string]any "Invalid payload"
// @Failure 403 {object} map[string]any "Forbidden"
// @Failure 500 {object} map[string]any "Storage failure"
// @Router /receive [post]
func (h *Handler) HandleReceive(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	p, err := payload.DecodePost(c.Body())
	if err != nil {
		l.Warn("Rejected receive payload", zap.Error(err))
		return badRequest(c, err)
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	result, err := h.service.Receive(ctx, p)
	if err != nil {
		l.Error("Failed to receive post", zap.Int64("source_post_id", int64(p.ID)), zap.Error(err))
		return internalError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"post_id": result.PostID,
	})
}

// HandleUpdateStatus changes the status of a received post.
// @Summary Update Post Status
// @Description Set the status of the post mapped to ID. Unknown IDs succeed without changes.
// @Tags receptor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body payload.StatusRequest true "ID and status"
// @Success 200 {object} map[string]any "success, message"
// @Failure 400 {object} map[string]any "Missing ID or status"
// @Failure 403 {object} map[string]any "Forbidden"
// @Router /update-status [post]
func (h *Handler) HandleUpdateStatus(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	req, err := payload.DecodeStatus(c.Body())
	if err != nil {
		l.Warn("Rejected update-status payload", zap.Error(err))
		return badRequest(c, err)
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	found, err := h.service.UpdateStatus(ctx, req.ID, req.Status)
	if err != nil {
		l.Error("Failed to update post status", zap.Int64("source_post_id", int64(req.ID)), zap.Error(err))
		return internalError(c, err)
	}

	message := "Status updated"
	if !found {
		message = "Post not found, nothing to update"
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": message,
	})
}

// HandleDelete permanently deletes a received post.
// @Summary Delete Post
// @Description Permanently delete the post mapped to ID and its featured image. Unknown IDs succeed without changes.
// @Tags receptor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body payload.DeleteRequest true "ID"
// @Success 200 {object} map[string]any "success, message"
// @Failure 400 {object} map[string]any "Missing ID"
// @Failure 403 {object} map[string]any "Forbidden"
// @Router /delete [post]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	req, err := payload.DecodeDelete(c.Body())
	if err != nil {
		l.Warn("Rejected delete payload", zap.Error(err))
		return badRequest(c, err)
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	found, err := h.service.Delete(ctx, req.ID)
	if err != nil {
		l.Error("Failed to delete post", zap.Int64("source_post_id", int64(req.ID)), zap.Error(err))
		return internalError(c, err)
	}

	message := "Post deleted"
	if !found {
		message = "Post not found, nothing to delete"
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": message,
	})
}

// HandleCheckToken confirms that the caller's token is valid.
// @Summary Check Token
// @Tags receptor
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any "success"
// @Failure 403 {object} map[string]any "Forbidden"
// @Router /check-token [get]
func (h *Handler) HandleCheckToken(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Token is valid",
	})
}

// HandleStatus reports that the receiver is up.
// @Summary Receiver Status
// @Tags receptor
// @Produce json
// @Success 200 {object} map[string]any "status, auth_token_configured, timestamp, version"
// @Router /status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	configured := false
	snap, err := h.service.Settings(c.UserContext())
	if err != nil {
		logger.WithRayID(h.logger, c).Warn("Failed to load settings for status", zap.Error(err))
	} else {
		configured = snap.HasAuthToken()
	}

	return c.JSON(fiber.Map{
		"status":                "active",
		"auth_token_configured": configured,
		"timestamp":             h.now().Format(TimestampLayout),
		"version":               Version,
	})
}
