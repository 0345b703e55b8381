package content

import (
	"context"
	"errors"
	"fmt"

	"post-receptor/feature/content/models"

	"gorm.io/gorm"
)

// FindTermBySlug returns the term with the slug in the taxonomy.
func (s *Store) FindTermBySlug(ctx context.Context, taxonomy, slug string) (*models.Term, error) {
	var term models.Term
	err := s.db.WithContext(ctx).Where("taxonomy = ? AND slug = ?", taxonomy, slug).Take(&term).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find %s %q: %w", taxonomy, slug, err)
	}
	return &term, nil
}

// CreateTerm inserts a term. A concurrent insert of the same (taxonomy, slug)
// fails on the unique index.
func (s *Store) CreateTerm(ctx context.Context, term *models.Term) error {
	if err := s.db.WithContext(ctx).Create(term).Error; err != nil {
		return fmt.Errorf("failed to create %s %q: %w", term.Taxonomy, term.Slug, err)
	}
	return nil
}

// CountTerms counts the terms of a taxonomy.
func (s *Store) CountTerms(ctx context.Context, taxonomy string) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Term{}).Where("taxonomy = ?", taxonomy).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count terms: %w", err)
	}
	return n, nil
}
