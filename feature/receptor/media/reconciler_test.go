package media

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"post-receptor/core/storage"
	"post-receptor/core/storage/mocks"
	"post-receptor/feature/content"
	"post-receptor/feature/content/contenttest"
	"post-receptor/feature/content/models"
	"post-receptor/feature/receptor/payload"
	"post-receptor/feature/translation"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type upperTranslator struct{}

func (upperTranslator) Translate(_ context.Context, text, src, dst string, c translation.Context) string {
	if src == dst || c != translation.ContextMedia {
		return text
	}
	return strings.ToUpper(text)
}

type stubFetcher struct {
	dl    *Download
	err   error
	calls []string
}

func (s *stubFetcher) Fetch(_ context.Context, rawURL string) (*Download, error) {
	s.calls = append(s.calls, rawURL)
	return s.dl, s.err
}

var storageCfg = storage.Config{Bucket: "media", Prefix: "uploads", PublicBaseURL: "https://cdn.test"}

func newReconciler(t *testing.T, fetcher Fetcher) (*Reconciler, *content.Store, *mocks.Client) {
	t.Helper()
	store := contenttest.NewStore(t)
	objects := new(mocks.Client)
	r := NewReconciler(store, objects, storageCfg, fetcher, upperTranslator{}, zap.NewNop(), 4)
	r.now = func() time.Time { return time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC) }
	return r, store, objects
}

func TestProcess(t *testing.T) {
	r, _, _ := newReconciler(t, &stubFetcher{})
	in := &payload.Media{
		FeaturedImage: &payload.Image{URL: "https://s.test/a.jpg", Alt: "praia", Title: "verão"},
		Attachments: []payload.Image{
			{URL: "https://s.test/b.jpg", Caption: "legenda"},
			{Description: "descrição"},
		},
	}

	out := r.Process(context.Background(), in, "pt_BR", "en_US")
	require.NotNil(t, out)

	assert.Equal(t, &payload.Image{URL: "https://s.test/a.jpg", Alt: "PRAIA", Title: "VERÃO"}, out.FeaturedImage)
	assert.Equal(t, []payload.Image{
		{URL: "https://s.test/b.jpg", Caption: "LEGENDA"},
		{Description: "DESCRIÇÃO"},
	}, out.Attachments)

	assert.Equal(t, "praia", in.FeaturedImage.Alt, "input is not modified")
	assert.Equal(t, "legenda", in.Attachments[0].Caption)
}

func TestProcess_SameLanguageAndNil(t *testing.T) {
	r, _, _ := newReconciler(t, &stubFetcher{})
	assert.Nil(t, r.Process(context.Background(), nil, "pt_BR", "en_US"))

	in := &payload.Media{Attachments: []payload.Image{{Alt: "x"}}}
	out := r.Process(context.Background(), in, "en_US", "en_US")
	assert.Equal(t, in, out)
	assert.Nil(t, out.FeaturedImage)
}

func TestAttachFeatured(t *testing.T) {
	ctx := context.Background()
	fetcher := &stubFetcher{dl: &Download{Data: pngBytes, ContentType: "image/png", FileName: "a.png"}}
	r, store, objects := newReconciler(t, fetcher)

	post := &models.Post{SourcePostID: 1}
	require.NoError(t, store.CreatePost(ctx, post))

	objects.On("PutObject", mock.Anything, "media",
		mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "uploads/2024/03/") && strings.HasSuffix(key, "-a.png")
		}),
		mock.Anything, int64(len(pngBytes)),
		minio.PutObjectOptions{ContentType: "image/png"},
	).Return(minio.UploadInfo{}, nil).Once()

	img := &payload.Image{URL: "https://s.test/a.png", Alt: "alt", Title: "title", Caption: "cap", Description: "desc"}
	media, err := r.AttachFeatured(ctx, post.ID, img)
	require.NoError(t, err)
	require.NotNil(t, media)

	assert.Equal(t, "https://s.test/a.png", media.SourceURL)
	assert.Equal(t, "alt", media.Alt)
	assert.Equal(t, "cap", media.Caption)
	assert.True(t, strings.HasPrefix(r.URL(media), "https://cdn.test/uploads/2024/03/"))

	got, err := store.GetPost(ctx, post.ID)
	require.NoError(t, err)
	require.NotNil(t, got.FeaturedMediaID)
	assert.Equal(t, media.ID, *got.FeaturedMediaID)

	featured, err := r.Featured(ctx, got)
	require.NoError(t, err)
	assert.Equal(t, media.ID, featured.ID)

	objects.AssertExpectations(t)
}

func TestAttachFeatured_NoURL(t *testing.T) {
	fetcher := &stubFetcher{}
	r, _, _ := newReconciler(t, fetcher)

	media, err := r.AttachFeatured(context.Background(), 1, &payload.Image{Alt: "x"})
	assert.NoError(t, err)
	assert.Nil(t, media)

	media, err = r.AttachFeatured(context.Background(), 1, nil)
	assert.NoError(t, err)
	assert.Nil(t, media)
	assert.Empty(t, fetcher.calls)
}

func TestAttachFeatured_FetchFailure(t *testing.T) {
	ctx := context.Background()
	r, store, objects := newReconciler(t, &stubFetcher{err: errors.New("connection refused")})

	post := &models.Post{SourcePostID: 1}
	require.NoError(t, store.CreatePost(ctx, post))

	_, err := r.AttachFeatured(ctx, post.ID, &payload.Image{URL: "https://s.test/a.png"})
	assert.ErrorIs(t, err, ErrFetch)
	objects.AssertNotCalled(t, "PutObject")

	n, err := store.CountMedia(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestAttachFeatured_UploadFailure(t *testing.T) {
	ctx := context.Background()
	fetcher := &stubFetcher{dl: &Download{Data: pngBytes, ContentType: "image/png", FileName: "a.png"}}
	r, store, objects := newReconciler(t, fetcher)

	post := &models.Post{SourcePostID: 1}
	require.NoError(t, store.CreatePost(ctx, post))

	objects.On("PutObject", mock.Anything, "media", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("bucket gone"))

	_, err := r.AttachFeatured(ctx, post.ID, &payload.Image{URL: "https://s.test/a.png"})
	assert.ErrorIs(t, err, ErrAttach)

	got, err := store.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Nil(t, got.FeaturedMediaID)
}

func TestDeleteAttachment(t *testing.T) {
	ctx := context.Background()
	r, store, objects := newReconciler(t, &stubFetcher{})

	media := &models.Media{PostID: 1, ObjectKey: "uploads/2024/03/x-a.png"}
	require.NoError(t, store.CreateMedia(ctx, media))

	objects.On("RemoveObject", mock.Anything, "media", "uploads/2024/03/x-a.png", minio.RemoveObjectOptions{}).Return(nil).Once()

	require.NoError(t, r.DeleteAttachment(ctx, media.ID))
	_, err := store.GetMedia(ctx, media.ID)
	assert.ErrorIs(t, err, content.ErrNotFound)

	err = r.DeleteAttachment(ctx, media.ID)
	assert.ErrorIs(t, err, content.ErrNotFound)

	objects.AssertExpectations(t)
}

func TestDeleteAttachment_ObjectFailureStillDropsRow(t *testing.T) {
	ctx := context.Background()
	r, store, objects := newReconciler(t, &stubFetcher{})

	media := &models.Media{PostID: 1, ObjectKey: "uploads/k.png"}
	require.NoError(t, store.CreateMedia(ctx, media))

	objects.On("RemoveObject", mock.Anything, "media", "uploads/k.png", mock.Anything).Return(errors.New("timeout"))

	err := r.DeleteAttachment(ctx, media.ID)
	assert.ErrorIs(t, err, ErrOrphanedObject)
	assert.ErrorContains(t, err, "uploads/k.png")
	_, err = store.GetMedia(ctx, media.ID)
	assert.ErrorIs(t, err, content.ErrNotFound)
}
