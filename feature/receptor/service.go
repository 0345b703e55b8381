package receptor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"post-receptor/core/reconcile"
	"post-receptor/core/settings"
	"post-receptor/core/utils"
	"post-receptor/feature/content"
	"post-receptor/feature/content/models"
	"post-receptor/feature/receptor/author"
	"post-receptor/feature/receptor/media"
	"post-receptor/feature/receptor/payload"
	"post-receptor/feature/receptor/taxonomy"
	"post-receptor/feature/translation"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Translator translates a single text.
type Translator interface {
	Translate(ctx context.Context, text, src, dst string, c translation.Context) string
}

// Store is the part of the content store the service needs.
type Store interface {
	FindPostBySourceID(ctx context.Context, sourceID int64) (*models.Post, error)
	CreatePost(ctx context.Context, post *models.Post) error
	UpdatePost(ctx context.Context, post *models.Post) error
	UpdatePostMeta(ctx context.Context, postID uint, meta content.PostMeta) error
	UpdatePostStatus(ctx context.Context, postID uint, status string) error
	SetPostTerms(ctx context.Context, postID uint, taxonomy string, termIDs []uint) error
	PurgePost(ctx context.Context, postID uint) error
}

// Result describes a completed receive.
type Result struct {
	PostID  uint
	Created bool
}

// Service reconciles incoming posts into the content store.
type Service struct {
	store      Store
	settings   settings.Source
	translator Translator
	terms      *taxonomy.Reconciler
	media      *media.Reconciler
	authors    *author.Resolver
	locker     reconcile.Locker
	cfg        Config
	logger     *zap.Logger
}

// NewService creates a new receptor service.
func NewService(
	store Store,
	source settings.Source,
	translator Translator,
	terms *taxonomy.Reconciler,
	mediaRec *media.Reconciler,
	authors *author.Resolver,
	locker reconcile.Locker,
	cfg Config,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if locker == nil {
		locker = reconcile.NewKeyedMutex()
	}
	return &Service{
		store:      store,
		settings:   source,
		translator: translator,
		terms:      terms,
		media:      mediaRec,
		authors:    authors,
		locker:     locker,
		cfg:        cfg,
		logger:     logger,
	}
}

// Settings returns the current settings snapshot.
func (s *Service) Settings(ctx context.Context) (settings.Settings, error) {
	return s.settings.Snapshot(ctx)
}

func lockKey(id payload.ExternalID) string {
	return fmt.Sprintf("post:%d", id)
}

// prepared holds everything derived from a payload before the post is written.
type prepared struct {
	title, content, excerpt string
	metaDesc, focusKeyword  string
	authorID                uint
	categories, tags        []uint
	media                   *payload.Media
}

// Receive creates or updates the local post for p.ID. Only a failure to
// write the post itself is returned; every other step degrades.
func (s *Service) Receive(ctx context.Context, p *payload.Post) (*Result, error) {
	log := s.logger.With(zap.Int64("source_post_id", int64(p.ID)))

	snap, err := s.settings.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	src, dst := p.OriginLanguage, snap.TargetLanguage
	if src == "" || dst == "" {
		// Without both languages there is nothing to translate between.
		dst = src
	}

	unlock, err := s.locker.Lock(ctx, lockKey(p.ID))
	if err != nil {
		return nil, fmt.Errorf("failed to lock post %d: %w", p.ID, err)
	}
	defer unlock()

	prep := s.prepare(ctx, p, src, dst)
	if ctx.Err() != nil {
		log.Warn("Request deadline reached during preparation, storing best-effort result", zap.Error(ctx.Err()))
	}

	// Translation degrades on the request deadline; the writes must not.
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.WriteTimeout())
	defer cancel()

	post, created, err := s.upsert(writeCtx, p, prep)
	if err != nil {
		return nil, err
	}
	log = log.With(zap.Uint("post_id", post.ID))

	s.applyMetadata(writeCtx, log, post.ID, p, prep)
	s.reconcileFeatured(writeCtx, log, post, prep.media)

	log.Info("Post received", zap.Bool("created", created), zap.String("from", src), zap.String("to", dst))
	return &Result{PostID: post.ID, Created: created}, nil
}

func (s *Service) prepare(ctx context.Context, p *payload.Post, src, dst string) prepared {
	prep := prepared{
		title:        p.Title,
		content:      p.Content,
		excerpt:      p.Excerpt,
		metaDesc:     p.YoastMetaDesc,
		focusKeyword: p.FocusKeyword,
	}

	g := new(errgroup.Group)
	g.Go(func() error {
		fields := new(errgroup.Group)
		fields.SetLimit(s.cfg.Workers())
		for _, f := range []struct {
			value *string
			ctx   translation.Context
		}{
			{&prep.title, translation.ContextTitle},
			{&prep.content, translation.ContextBody},
			{&prep.excerpt, translation.ContextExcerpt},
			{&prep.metaDesc, translation.ContextDefault},
			{&prep.focusKeyword, translation.ContextDefault},
		} {
			if src == dst || *f.value == "" {
				continue
			}
			fields.Go(func() error {
				*f.value = s.translator.Translate(ctx, *f.value, src, dst, f.ctx)
				return nil
			})
		}
		return fields.Wait()
	})
	g.Go(func() error {
		prep.authorID = s.authors.Resolve(ctx, p.Author, p.AuthorData)
		return nil
	})
	g.Go(func() error {
		prep.categories = s.terms.Categories(ctx, p.Categories, src, dst)
		return nil
	})
	g.Go(func() error {
		prep.tags = s.terms.Tags(ctx, p.Tags, src, dst)
		return nil
	})
	g.Go(func() error {
		prep.media = s.media.Process(ctx, p.Media, src, dst)
		return nil
	})
	_ = g.Wait()

	return prep
}

func (s *Service) upsert(ctx context.Context, p *payload.Post, prep prepared) (*models.Post, bool, error) {
	slug := utils.Slugify(prep.title)
	if slug == "" {
		slug = fmt.Sprintf("post-%d", p.ID)
	}

	post, err := s.store.FindPostBySourceID(ctx, int64(p.ID))
	switch {
	case err == nil:
		post.Title = prep.title
		post.Content = prep.content
		post.Excerpt = prep.excerpt
		post.Slug = slug
		post.Status = p.Status
		post.AuthorID = prep.authorID
		if err := s.store.UpdatePost(ctx, post); err != nil {
			return nil, false, err
		}
		return post, false, nil

	case errors.Is(err, content.ErrNotFound):
		status := p.Status
		if status == "" {
			status = models.StatusDraft
		}
		post = &models.Post{
			SourcePostID: int64(p.ID),
			Title:        prep.title,
			Content:      prep.content,
			Excerpt:      prep.excerpt,
			Slug:         slug,
			Status:       status,
			AuthorID:     prep.authorID,
		}
		if err := s.store.CreatePost(ctx, post); err != nil {
			return nil, false, err
		}
		return post, true, nil

	default:
		return nil, false, err
	}
}

func (s *Service) applyMetadata(ctx context.Context, log *zap.Logger, postID uint, p *payload.Post, prep prepared) {
	if len(prep.categories) > 0 {
		if err := s.store.SetPostTerms(ctx, postID, models.TaxonomyCategory, prep.categories); err != nil {
			log.Error("Failed to link categories", zap.Error(err))
		}
	}
	if len(prep.tags) > 0 {
		if err := s.store.SetPostTerms(ctx, postID, models.TaxonomyTag, prep.tags); err != nil {
			log.Error("Failed to link tags", zap.Error(err))
		}
	}

	meta := content.PostMeta{
		MetaDescription: prep.metaDesc,
		FocusKeyword:    prep.focusKeyword,
		LayoutData:      p.LayoutData(),
	}
	if !prep.media.Empty() {
		if snapshot, err := json.Marshal(prep.media); err == nil {
			meta.MediaSnapshot = string(snapshot)
		} else {
			log.Error("Failed to encode media snapshot", zap.Error(err))
		}
	}
	if err := s.store.UpdatePostMeta(ctx, postID, meta); err != nil {
		log.Error("Failed to store post metadata", zap.Error(err))
	}
}

func (s *Service) reconcileFeatured(ctx context.Context, log *zap.Logger, post *models.Post, processed *payload.Media) {
	url := processed.FeaturedURL()
	if url == "" {
		return
	}

	current, err := s.media.Featured(ctx, post)
	if err != nil && !errors.Is(err, content.ErrNotFound) {
		// Without the current attachment it could not be cleaned up.
		log.Warn("Failed to load current featured image, keeping it", zap.Error(err))
		return
	}
	if current != nil && current.SourceURL == url {
		log.Debug("Featured image unchanged", zap.Uint("media_id", current.ID))
		return
	}

	if current != nil {
		err := s.media.DeleteAttachment(ctx, current.ID)
		switch {
		case err == nil, errors.Is(err, content.ErrNotFound):
		case errors.Is(err, media.ErrOrphanedObject):
			log.Warn("Superseded featured image file not removed", zap.Uint("media_id", current.ID), zap.Error(err))
		default:
			log.Warn("Failed to delete superseded featured image, keeping it", zap.Uint("media_id", current.ID), zap.Error(err))
			return
		}
	}

	img := *processed.FeaturedImage
	img.URL = url
	// Failures are logged by the media reconciler and leave the post as is.
	_, _ = s.media.AttachFeatured(ctx, post.ID, &img)
}

// UpdateStatus sets the status of the post mapped to id. It reports false
// when no such post exists.
func (s *Service) UpdateStatus(ctx context.Context, id payload.ExternalID, status string) (bool, error) {
	unlock, err := s.locker.Lock(ctx, lockKey(id))
	if err != nil {
		return false, fmt.Errorf("failed to lock post %d: %w", id, err)
	}
	defer unlock()

	post, err := s.store.FindPostBySourceID(ctx, int64(id))
	if errors.Is(err, content.ErrNotFound) {
		s.logger.Info("Status update for unknown post", zap.Int64("source_post_id", int64(id)))
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := s.store.UpdatePostStatus(ctx, post.ID, status); err != nil {
		return false, err
	}
	s.logger.Info("Post status updated", zap.Int64("source_post_id", int64(id)), zap.Uint("post_id", post.ID), zap.String("status", status))
	return true, nil
}

// Delete permanently removes the post mapped to id and its featured image.
// It reports false when no such post exists.
func (s *Service) Delete(ctx context.Context, id payload.ExternalID) (bool, error) {
	unlock, err := s.locker.Lock(ctx, lockKey(id))
	if err != nil {
		return false, fmt.Errorf("failed to lock post %d: %w", id, err)
	}
	defer unlock()

	log := s.logger.With(zap.Int64("source_post_id", int64(id)))

	post, err := s.store.FindPostBySourceID(ctx, int64(id))
	if errors.Is(err, content.ErrNotFound) {
		log.Info("Delete for unknown post")
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if post.FeaturedMediaID != nil {
		err := s.media.DeleteAttachment(ctx, *post.FeaturedMediaID)
		switch {
		case err == nil, errors.Is(err, content.ErrNotFound):
		case errors.Is(err, media.ErrOrphanedObject):
			log.Warn("Featured image file not removed", zap.Uint("media_id", *post.FeaturedMediaID), zap.Error(err))
		default:
			// The post stays so a retried delete can still find the attachment.
			return false, fmt.Errorf("failed to delete featured image of post %d: %w", post.ID, err)
		}
	}

	if err := s.store.PurgePost(ctx, post.ID); err != nil {
		return false, err
	}
	log.Info("Post deleted", zap.Uint("post_id", post.ID))
	return true, nil
}
