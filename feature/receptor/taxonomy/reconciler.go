package taxonomy

import (
	"context"
	"errors"
	"strings"

	"post-receptor/core/reconcile"
	"post-receptor/core/utils"
	"post-receptor/feature/content"
	"post-receptor/feature/content/models"
	"post-receptor/feature/receptor/payload"
	"post-receptor/feature/translation"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Translator translates a single text.
type Translator interface {
	Translate(ctx context.Context, text, src, dst string, c translation.Context) string
}

// Store is the part of the content store the reconciler needs.
type Store interface {
	FindTermBySlug(ctx context.Context, taxonomy, slug string) (*models.Term, error)
	CreateTerm(ctx context.Context, term *models.Term) error
}

// Reconciler maps incoming term names onto local terms, creating missing
// ones. Get-or-create runs once per (taxonomy, slug) among concurrent
// callers, and the unique index settles races with other processes.
type Reconciler struct {
	store       Store
	translator  Translator
	logger      *zap.Logger
	concurrency int
	group       reconcile.Group[uint]
}

// NewReconciler creates a reconciler. concurrency bounds parallel
// translations within one call.
func NewReconciler(store Store, translator Translator, logger *zap.Logger, concurrency int) *Reconciler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if concurrency < 1 {
		concurrency = 1
	}
	return &Reconciler{
		store:       store,
		translator:  translator,
		logger:      logger,
		concurrency: concurrency,
	}
}

// Categories resolves category terms.
func (r *Reconciler) Categories(ctx context.Context, terms []payload.Term, src, dst string) []uint {
	return r.Resolve(ctx, models.TaxonomyCategory, terms, src, dst)
}

// Tags resolves tag terms.
func (r *Reconciler) Tags(ctx context.Context, terms []payload.Term, src, dst string) []uint {
	return r.Resolve(ctx, models.TaxonomyTag, terms, src, dst)
}

// Resolve returns the local ids of terms in order of first appearance,
// without duplicates. Terms that cannot be resolved are logged and skipped.
func (r *Reconciler) Resolve(ctx context.Context, taxonomy string, terms []payload.Term, src, dst string) []uint {
	if len(terms) == 0 {
		return nil
	}
	log := r.logger.With(zap.String("taxonomy", taxonomy))

	tc := translation.ContextCategory
	if taxonomy == models.TaxonomyTag {
		tc = translation.ContextTag
	}

	names := make([]string, len(terms))
	g := new(errgroup.Group)
	g.SetLimit(r.concurrency)
	for i, term := range terms {
		original := strings.TrimSpace(term.Name)
		if original == "" {
			continue
		}
		g.Go(func() error {
			name := strings.TrimSpace(r.translator.Translate(ctx, original, src, dst, tc))
			if name == "" {
				name = original
			}
			names[i] = name
			return nil
		})
	}
	_ = g.Wait()

	seen := make(map[uint]struct{}, len(terms))
	ids := make([]uint, 0, len(terms))
	for i, name := range names {
		if name == "" {
			log.Info("Skipping term without name", zap.Int("index", i))
			continue
		}
		slug := utils.Slugify(name)
		if slug == "" {
			log.Info("Skipping term with empty slug", zap.String("name", name))
			continue
		}

		id, err := r.group.Do(taxonomy+"/"+slug, func() (uint, error) {
			return r.getOrCreate(ctx, taxonomy, slug, name)
		})
		if err != nil {
			log.Error("Failed to resolve term", zap.String("name", name), zap.String("slug", slug), zap.Error(err))
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

func (r *Reconciler) getOrCreate(ctx context.Context, taxonomy, slug, name string) (uint, error) {
	term, err := r.store.FindTermBySlug(ctx, taxonomy, slug)
	if err == nil {
		return term.ID, nil
	}
	if !errors.Is(err, content.ErrNotFound) {
		return 0, err
	}

	term = &models.Term{Taxonomy: taxonomy, Slug: slug, Name: name}
	createErr := r.store.CreateTerm(ctx, term)
	if createErr == nil {
		r.logger.Info("Created term", zap.String("taxonomy", taxonomy), zap.String("slug", slug), zap.Uint("term_id", term.ID))
		return term.ID, nil
	}

	// Another process may have won the insert.
	winner, err := r.store.FindTermBySlug(ctx, taxonomy, slug)
	if err == nil {
		return winner.ID, nil
	}
	return 0, createErr
}
