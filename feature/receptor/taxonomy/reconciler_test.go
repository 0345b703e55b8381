package taxonomy_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"post-receptor/feature/content"
	"post-receptor/feature/content/contenttest"
	"post-receptor/feature/content/models"
	"post-receptor/feature/receptor/payload"
	"post-receptor/feature/receptor/taxonomy"
	"post-receptor/feature/translation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// dictTranslator translates through a fixed dictionary and passes unknown
// words through.
type dictTranslator map[string]string

func (d dictTranslator) Translate(_ context.Context, text, src, dst string, _ translation.Context) string {
	if src == dst {
		return text
	}
	if out, ok := d[text]; ok {
		return out
	}
	return text
}

func terms(names ...string) []payload.Term {
	out := make([]payload.Term, len(names))
	for i, n := range names {
		out[i] = payload.Term{Name: n}
	}
	return out
}

func TestResolve_CreatesAndReuses(t *testing.T) {
	ctx := context.Background()
	store := contenttest.NewStore(t)
	tr := dictTranslator{"Notícias": "News", "Novidades": "news"}
	r := taxonomy.NewReconciler(store, tr, zap.NewNop(), 4)

	first := r.Categories(ctx, terms("Notícias", "Esportes"), "pt_BR", "en_US")
	require.Len(t, first, 2)

	second := r.Categories(ctx, terms("Novidades"), "pt_BR", "en_US")
	assert.Equal(t, first[:1], second, "names translating to the same slug share a term")

	n, err := store.CountTerms(ctx, models.TaxonomyCategory)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	news, err := store.FindTermBySlug(ctx, models.TaxonomyCategory, "news")
	require.NoError(t, err)
	assert.Equal(t, "News", news.Name)
}

func TestResolve_DedupAndSkips(t *testing.T) {
	ctx := context.Background()
	store := contenttest.NewStore(t)
	r := taxonomy.NewReconciler(store, dictTranslator{}, nil, 2)

	ids := r.Tags(ctx, terms("Go", "", "  ", "go", "!!!", "Rust", "GO"), "en_US", "en_US")
	require.Len(t, ids, 2)

	n, err := store.CountTerms(ctx, models.TaxonomyTag)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	assert.Empty(t, r.Tags(ctx, nil, "en_US", "en_US"))
}

func TestResolve_TaxonomiesAreSeparate(t *testing.T) {
	ctx := context.Background()
	store := contenttest.NewStore(t)
	r := taxonomy.NewReconciler(store, dictTranslator{}, nil, 1)

	cats := r.Categories(ctx, terms("Travel"), "en_US", "en_US")
	tags := r.Tags(ctx, terms("Travel"), "en_US", "en_US")
	require.Len(t, cats, 1)
	require.Len(t, tags, 1)
	assert.NotEqual(t, cats[0], tags[0])
}

// emptyTranslator simulates a provider that returns whitespace.
type emptyTranslator struct{}

func (emptyTranslator) Translate(context.Context, string, string, string, translation.Context) string {
	return "   "
}

func TestResolve_EmptyTranslationFallsBack(t *testing.T) {
	ctx := context.Background()
	store := contenttest.NewStore(t)
	r := taxonomy.NewReconciler(store, emptyTranslator{}, nil, 1)

	ids := r.Categories(ctx, terms("Viagem"), "pt_BR", "en_US")
	require.Len(t, ids, 1)

	term, err := store.FindTermBySlug(ctx, models.TaxonomyCategory, "viagem")
	require.NoError(t, err)
	assert.Equal(t, "Viagem", term.Name)
}

// flakyStore fails creation for one slug and simulates a lost insert race
// for another.
type flakyStore struct {
	*content.Store
	mu       sync.Mutex
	failSlug string
	raceSlug string
}

func (f *flakyStore) CreateTerm(ctx context.Context, term *models.Term) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch term.Slug {
	case f.failSlug:
		return errors.New("insert failed")
	case f.raceSlug:
		winner := &models.Term{Taxonomy: term.Taxonomy, Slug: term.Slug, Name: strings.ToUpper(term.Name)}
		if err := f.Store.CreateTerm(ctx, winner); err != nil {
			return err
		}
		return errors.New("duplicate key")
	}
	return f.Store.CreateTerm(ctx, term)
}

func TestResolve_FailuresAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := &flakyStore{Store: contenttest.NewStore(t), failSlug: "broken", raceSlug: "raced"}
	r := taxonomy.NewReconciler(store, dictTranslator{}, nil, 1)

	ids := r.Tags(ctx, terms("Broken", "Raced", "Fine"), "en_US", "en_US")
	require.Len(t, ids, 2)

	raced, err := store.FindTermBySlug(ctx, models.TaxonomyTag, "raced")
	require.NoError(t, err)
	assert.Equal(t, raced.ID, ids[0])
	assert.Equal(t, "RACED", raced.Name)

	_, err = store.FindTermBySlug(ctx, models.TaxonomyTag, "broken")
	assert.ErrorIs(t, err, content.ErrNotFound)
}

func TestResolve_ConcurrentSameTerm(t *testing.T) {
	ctx := context.Background()
	store := contenttest.NewStore(t)
	r := taxonomy.NewReconciler(store, dictTranslator{}, nil, 4)

	var wg sync.WaitGroup
	results := make([][]uint, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = r.Categories(ctx, terms("Breaking News"), "en_US", "en_US")
		}()
	}
	wg.Wait()

	for _, ids := range results {
		require.Len(t, ids, 1)
		assert.Equal(t, results[0][0], ids[0])
	}
	n, err := store.CountTerms(ctx, models.TaxonomyCategory)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
