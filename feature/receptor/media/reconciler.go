package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"post-receptor/core/storage"
	"post-receptor/feature/content/models"
	"post-receptor/feature/receptor/payload"
	"post-receptor/feature/translation"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrFetch wraps failures to download a featured image.
	ErrFetch = errors.New("featured image fetch failed")
	// ErrAttach wraps failures to store or register a downloaded image.
	ErrAttach = errors.New("featured image attach failed")
	// ErrOrphanedObject reports an attachment whose row was deleted but whose
	// stored file could not be removed.
	ErrOrphanedObject = errors.New("attachment object left in storage")
)

// Translator translates a single text.
type Translator interface {
	Translate(ctx context.Context, text, src, dst string, c translation.Context) string
}

// Store is the part of the content store the reconciler needs.
type Store interface {
	CreateMedia(ctx context.Context, media *models.Media) error
	GetMedia(ctx context.Context, id uint) (*models.Media, error)
	DeleteMedia(ctx context.Context, id uint) error
	SetFeaturedMedia(ctx context.Context, postID, mediaID uint) error
}

// Reconciler translates media metadata and manages featured image files.
type Reconciler struct {
	store       Store
	objects     storage.Client
	storageCfg  storage.Config
	fetcher     Fetcher
	translator  Translator
	logger      *zap.Logger
	concurrency int
	now         func() time.Time
}

// NewReconciler creates a media reconciler.
func NewReconciler(store Store, objects storage.Client, storageCfg storage.Config, fetcher Fetcher, translator Translator, logger *zap.Logger, concurrency int) *Reconciler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if concurrency < 1 {
		concurrency = 1
	}
	return &Reconciler{
		store:       store,
		objects:     objects,
		storageCfg:  storageCfg,
		fetcher:     fetcher,
		translator:  translator,
		logger:      logger,
		concurrency: concurrency,
		now:         time.Now,
	}
}

// Process returns a copy of m with alt, title, caption and description of
// every image translated under the media context. Empty fields stay empty.
func (r *Reconciler) Process(ctx context.Context, m *payload.Media, src, dst string) *payload.Media {
	if m == nil {
		return nil
	}

	out := &payload.Media{}
	var images []*payload.Image
	if m.FeaturedImage != nil {
		featured := *m.FeaturedImage
		out.FeaturedImage = &featured
		images = append(images, out.FeaturedImage)
	}
	if m.Attachments != nil {
		out.Attachments = make([]payload.Image, len(m.Attachments))
		copy(out.Attachments, m.Attachments)
		for i := range out.Attachments {
			images = append(images, &out.Attachments[i])
		}
	}
	if src == dst {
		return out
	}

	g := new(errgroup.Group)
	g.SetLimit(r.concurrency)
	for _, img := range images {
		for _, field := range []*string{&img.Alt, &img.Title, &img.Caption, &img.Description} {
			if *field == "" {
				continue
			}
			g.Go(func() error {
				*field = r.translator.Translate(ctx, *field, src, dst, translation.ContextMedia)
				return nil
			})
		}
	}
	_ = g.Wait()
	return out
}

// Featured returns the attachment currently featured by the post, or nil.
func (r *Reconciler) Featured(ctx context.Context, post *models.Post) (*models.Media, error) {
	if post.FeaturedMediaID == nil {
		return nil, nil
	}
	return r.store.GetMedia(ctx, *post.FeaturedMediaID)
}

// AttachFeatured downloads img, stores it, and makes it the featured image
// of the post. It does nothing without a url. Errors wrap ErrFetch or
// ErrAttach and have already been logged.
func (r *Reconciler) AttachFeatured(ctx context.Context, postID uint, img *payload.Image) (*models.Media, error) {
	if img == nil || img.URL == "" {
		return nil, nil
	}
	log := r.logger.With(zap.Uint("post_id", postID), zap.String("url", img.URL))

	dl, err := r.fetcher.Fetch(ctx, img.URL)
	if err != nil {
		log.Warn("Failed to fetch featured image", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	media, err := r.attach(ctx, postID, img, dl)
	if err != nil {
		log.Error("Failed to attach featured image", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrAttach, err)
	}
	log.Info("Attached featured image", zap.Uint("media_id", media.ID), zap.String("public_url", r.URL(media)))
	return media, nil
}

func (r *Reconciler) attach(ctx context.Context, postID uint, img *payload.Image, dl *Download) (*models.Media, error) {
	key := r.objectKey(dl.FileName)
	_, err := r.objects.PutObject(ctx, r.storageCfg.Bucket, key, bytes.NewReader(dl.Data), int64(len(dl.Data)), minio.PutObjectOptions{
		ContentType: dl.ContentType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", key, err)
	}

	media := &models.Media{
		PostID:      postID,
		ObjectKey:   key,
		FileName:    dl.FileName,
		MimeType:    dl.ContentType,
		Size:        int64(len(dl.Data)),
		Title:       img.Title,
		Caption:     img.Caption,
		Description: img.Description,
		Alt:         img.Alt,
		SourceURL:   img.URL,
	}
	if err := r.store.CreateMedia(ctx, media); err != nil {
		r.removeObject(key)
		return nil, err
	}
	if err := r.store.SetFeaturedMedia(ctx, postID, media.ID); err != nil {
		r.removeObject(key)
		_ = r.store.DeleteMedia(context.WithoutCancel(ctx), media.ID)
		return nil, err
	}
	return media, nil
}

// DeleteAttachment removes the attachment row, then its stored file. A failed
// row delete leaves both in place. A failed file delete is reported with
// ErrOrphanedObject after the row is already gone.
func (r *Reconciler) DeleteAttachment(ctx context.Context, mediaID uint) error {
	media, err := r.store.GetMedia(ctx, mediaID)
	if err != nil {
		return err
	}
	if err := r.store.DeleteMedia(ctx, mediaID); err != nil {
		return err
	}
	if media.ObjectKey == "" {
		return nil
	}
	if err := r.objects.RemoveObject(ctx, r.storageCfg.Bucket, media.ObjectKey, minio.RemoveObjectOptions{}); err != nil {
		r.logger.Warn("Orphaned media object", zap.String("object", media.ObjectKey), zap.Error(err))
		return fmt.Errorf("%w: failed to remove object %s: %w", ErrOrphanedObject, media.ObjectKey, err)
	}
	return nil
}

// URL returns the public address of an attachment.
func (r *Reconciler) URL(media *models.Media) string {
	return r.storageCfg.PublicURL(media.ObjectKey)
}

func (r *Reconciler) objectKey(fileName string) string {
	now := r.now().UTC()
	key := fmt.Sprintf("%04d/%02d/%s-%s", now.Year(), int(now.Month()), uuid.NewString()[:8], fileName)
	if r.storageCfg.Prefix != "" {
		key = r.storageCfg.Prefix + "/" + key
	}
	return key
}

func (r *Reconciler) removeObject(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := r.objects.RemoveObject(ctx, r.storageCfg.Bucket, key, minio.RemoveObjectOptions{}); err != nil {
		r.logger.Warn("Failed to remove orphaned object", zap.String("object", key), zap.Error(err))
	}
}
