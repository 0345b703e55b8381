package content

import (
	"context"
	"errors"
	"fmt"

	"post-receptor/feature/content/models"

	"gorm.io/gorm"
)

// CreateMedia inserts an attachment row.
func (s *Store) CreateMedia(ctx context.Context, media *models.Media) error {
	if err := s.db.WithContext(ctx).Create(media).Error; err != nil {
		return fmt.Errorf("failed to create media: %w", err)
	}
	return nil
}

// GetMedia returns an attachment by id.
func (s *Store) GetMedia(ctx context.Context, id uint) (*models.Media, error) {
	var media models.Media
	err := s.db.WithContext(ctx).Take(&media, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get media %d: %w", id, err)
	}
	return &media, nil
}

// DeleteMedia removes an attachment row and clears it from any post that
// features it.
func (s *Store) DeleteMedia(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Post{}).
			Where("featured_media_id = ?", id).
			Update("featured_media_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Media{}, id).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete media %d: %w", id, err)
	}
	return nil
}

// SetFeaturedMedia points the post at an attachment.
func (s *Store) SetFeaturedMedia(ctx context.Context, postID, mediaID uint) error {
	err := s.db.WithContext(ctx).Model(&models.Post{}).Where("id = ?", postID).Update("featured_media_id", mediaID).Error
	if err != nil {
		return fmt.Errorf("failed to set featured media of post %d: %w", postID, err)
	}
	return nil
}

// CountMedia counts attachment rows.
func (s *Store) CountMedia(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Media{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count media: %w", err)
	}
	return n, nil
}
