package content

import (
	"context"
	"errors"
	"fmt"

	"post-receptor/feature/content/models"

	"gorm.io/gorm"
)

// FindUserByLogin returns the user with the login.
func (s *Store) FindUserByLogin(ctx context.Context, login string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("login = ?", login).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user %q: %w", login, err)
	}
	return &user, nil
}

// CreateUser inserts a user.
func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user %q: %w", user.Login, err)
	}
	return nil
}
