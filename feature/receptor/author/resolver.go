package author

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"post-receptor/feature/content"
	"post-receptor/feature/content/models"
	"post-receptor/feature/receptor/payload"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RoleAuthor is the role given to provisioned users.
const RoleAuthor = "author"

// FallbackLogins are tried, in order, when the payload names no usable author.
var FallbackLogins = []string{"admin", "administrador"}

// Store is the part of the content store the resolver needs.
type Store interface {
	FindUserByLogin(ctx context.Context, login string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
}

// Resolver maps the payload author onto a local user id.
type Resolver struct {
	store     Store
	logger    *zap.Logger
	principal uint
}

// NewResolver creates a resolver. principal is the service user returned
// when nothing else matches.
func NewResolver(store Store, logger *zap.Logger, principal uint) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{store: store, logger: logger, principal: principal}
}

// Resolve returns the first match of: an existing user named by loginHint, a
// user provisioned from data, the fallback logins, the service principal.
func (r *Resolver) Resolve(ctx context.Context, loginHint string, data *payload.Author) uint {
	if login := strings.TrimSpace(loginHint); login != "" {
		if id, ok := r.lookup(ctx, login); ok {
			return id
		}
	}

	if data != nil && strings.TrimSpace(data.Login) != "" {
		id, err := r.provision(ctx, data)
		if err == nil {
			return id
		}
		r.logger.Warn("Failed to provision author", zap.String("login", data.Login), zap.Error(err))
	}

	for _, login := range FallbackLogins {
		if id, ok := r.lookup(ctx, login); ok {
			return id
		}
	}

	r.logger.Info("Using service principal as author", zap.Uint("user_id", r.principal))
	return r.principal
}

func (r *Resolver) lookup(ctx context.Context, login string) (uint, bool) {
	user, err := r.store.FindUserByLogin(ctx, login)
	if err != nil {
		if !errors.Is(err, content.ErrNotFound) {
			r.logger.Warn("Failed to look up user", zap.String("login", login), zap.Error(err))
		}
		return 0, false
	}
	return user.ID, true
}

func (r *Resolver) provision(ctx context.Context, data *payload.Author) (uint, error) {
	login := strings.TrimSpace(data.Login)
	if id, ok := r.lookup(ctx, login); ok {
		return id, nil
	}

	hash, err := unusablePassword()
	if err != nil {
		return 0, err
	}

	user := &models.User{
		Login:        login,
		Email:        firstNonEmpty(data.Email, login+"@example.com"),
		DisplayName:  firstNonEmpty(data.DisplayName, login),
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Nickname:     data.Nickname,
		URL:          data.URL,
		Description:  data.Description,
		Role:         RoleAuthor,
		PasswordHash: hash,
	}
	if err := r.store.CreateUser(ctx, user); err != nil {
		// Lost a race with a concurrent provisioning of the same login.
		if id, ok := r.lookup(ctx, login); ok {
			return id, nil
		}
		return 0, err
	}

	r.logger.Info("Provisioned author", zap.String("login", login), zap.Uint("user_id", user.ID))
	return user.ID, nil
}

// unusablePassword hashes a random secret nobody knows.
func unusablePassword() (string, error) {
	secret := make([]byte, 24)
	if _, err := rand.Read(secret); err != nil {
		return "", fmt.Errorf("failed to generate password: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(hex.EncodeToString(secret)), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
