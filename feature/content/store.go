package content

import (
	"context"
	"errors"
	"fmt"

	"post-receptor/core/database"
	"post-receptor/feature/content/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// ErrSchemaMismatch is returned by VerifySchema when a table lacks columns.
var ErrSchemaMismatch = errors.New("schema mismatch")

// PostMeta holds optional post fields. Empty values leave stored values as they are.
type PostMeta struct {
	MetaDescription string
	FocusKeyword    string
	LayoutData      string
	MediaSnapshot   string
}

// Store is the GORM backed content store.
type Store struct {
	db *gorm.DB
}

// NewStore creates a content store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB returns the underlying connection.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Migrate creates or updates all content tables.
func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate content tables: %w", err)
	}
	return nil
}

// VerifySchema checks that every model column exists, for deployments that
// manage the schema themselves.
func (s *Store) VerifySchema() error {
	for _, m := range models.All() {
		stmt := &gorm.Statement{DB: s.db}
		if err := stmt.Parse(m); err != nil {
			return fmt.Errorf("failed to parse model: %w", err)
		}
		missing, err := database.MissingColumns(s.db, stmt.Schema.Table, stmt.Schema.DBNames)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			return fmt.Errorf("%w: table %s is missing %v", ErrSchemaMismatch, stmt.Schema.Table, missing)
		}
	}
	return nil
}

// FindPostBySourceID returns the live post stamped with the external id.
func (s *Store) FindPostBySourceID(ctx context.Context, sourceID int64) (*models.Post, error) {
	var post models.Post
	err := s.db.WithContext(ctx).Where("source_post_id = ?", sourceID).Take(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find post by source id %d: %w", sourceID, err)
	}
	return &post, nil
}

// FindBySourceID resolves an external id to a local id. A missing post is
// reported through found, not as an error.
func (s *Store) FindBySourceID(ctx context.Context, sourceID int64) (uint, bool, error) {
	post, err := s.FindPostBySourceID(ctx, sourceID)
	if errors.Is(err, ErrNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return post.ID, true, nil
}

// GetPost returns a live post by local id.
func (s *Store) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := s.db.WithContext(ctx).Take(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post %d: %w", id, err)
	}
	return &post, nil
}

// CreatePost inserts a post and fills its id.
func (s *Store) CreatePost(ctx context.Context, post *models.Post) error {
	if err := s.db.WithContext(ctx).Create(post).Error; err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

// UpdatePost writes the core post fields. Status is written only when set.
func (s *Store) UpdatePost(ctx context.Context, post *models.Post) error {
	cols := []string{"title", "content", "excerpt", "slug", "author_id", "updated_at"}
	if post.Status != "" {
		cols = append(cols, "status")
	}
	err := s.db.WithContext(ctx).Model(post).Select(cols).Updates(post).Error
	if err != nil {
		return fmt.Errorf("failed to update post %d: %w", post.ID, err)
	}
	return nil
}

// UpdatePostMeta writes the non-empty optional fields.
func (s *Store) UpdatePostMeta(ctx context.Context, postID uint, meta PostMeta) error {
	values := map[string]any{}
	if meta.MetaDescription != "" {
		values["seo_metadesc"] = meta.MetaDescription
	}
	if meta.FocusKeyword != "" {
		values["focus_keyword"] = meta.FocusKeyword
	}
	if meta.LayoutData != "" {
		values["layout_data"] = meta.LayoutData
	}
	if meta.MediaSnapshot != "" {
		values["media_snapshot"] = meta.MediaSnapshot
	}
	if len(values) == 0 {
		return nil
	}
	err := s.db.WithContext(ctx).Model(&models.Post{}).Where("id = ?", postID).Updates(values).Error
	if err != nil {
		return fmt.Errorf("failed to update meta of post %d: %w", postID, err)
	}
	return nil
}

// UpdatePostStatus changes only the status column.
func (s *Store) UpdatePostStatus(ctx context.Context, postID uint, status string) error {
	err := s.db.WithContext(ctx).Model(&models.Post{}).Where("id = ?", postID).Update("status", status).Error
	if err != nil {
		return fmt.Errorf("failed to update status of post %d: %w", postID, err)
	}
	return nil
}

// SetPostTerms replaces the post's links in one taxonomy.
func (s *Store) SetPostTerms(ctx context.Context, postID uint, taxonomy string, termIDs []uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ? AND taxonomy = ?", postID, taxonomy).Delete(&models.PostTerm{}).Error; err != nil {
			return err
		}
		if len(termIDs) == 0 {
			return nil
		}
		links := make([]models.PostTerm, 0, len(termIDs))
		for _, id := range termIDs {
			links = append(links, models.PostTerm{PostID: postID, TermID: id, Taxonomy: taxonomy})
		}
		return tx.Create(&links).Error
	})
	if err != nil {
		return fmt.Errorf("failed to set %s terms of post %d: %w", taxonomy, postID, err)
	}
	return nil
}

// PostTermIDs lists the term ids linked to the post in one taxonomy.
func (s *Store) PostTermIDs(ctx context.Context, postID uint, taxonomy string) ([]uint, error) {
	var ids []uint
	err := s.db.WithContext(ctx).Model(&models.PostTerm{}).
		Where("post_id = ? AND taxonomy = ?", postID, taxonomy).
		Order("term_id").
		Pluck("term_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list %s terms of post %d: %w", taxonomy, postID, err)
	}
	return ids, nil
}

// PurgePost permanently removes a post and its term links.
func (s *Store) PurgePost(ctx context.Context, postID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&models.PostTerm{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, postID).Error
	})
	if err != nil {
		return fmt.Errorf("failed to purge post %d: %w", postID, err)
	}
	return nil
}

// CountPosts counts rows with the external id.
func (s *Store) CountPosts(ctx context.Context, sourceID int64) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Post{}).Where("source_post_id = ?", sourceID).Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return n, nil
}
