package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/bundle"
	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/cache"
	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/models"
)

// ReferenceService loads the read-only lookup lists behind the console's
// dropdowns, caching each list by its parent id.
type ReferenceService struct {
	backend Backend
	cache   *cache.ReferenceCache
	guard   *bundle.Guard
}

// NewReferenceService constructs a ReferenceService.
func NewReferenceService(backend Backend, refCache *cache.ReferenceCache) *ReferenceService {
	return &ReferenceService{
		backend: backend,
		cache:   refCache,
		guard:   bundle.NewGuard(),
	}
}

// ReferenceData is everything an editing session needs up front.
type ReferenceData struct {
	Schools    []models.School        `json:"schools"`
	Classes    []models.Class         `json:"classes"`
	Languages  []models.ClassLanguage `json:"languages"`
	Categories []models.Category      `json:"categories"`
	Products   []models.Product       `json:"products"`
}

// cached serves key from the cache or fetches and caches it. Fetch failures
// return an empty list with the error. A fetch only writes the cache when no
// newer fetch for the same key started meanwhile.
func cached[T any](ctx context.Context, s *ReferenceService, key string, fetch func(context.Context) ([]T, error)) ([]T, error) {
	var rows []T
	err := s.cache.Load(ctx, key, &rows)
	if err == nil {
		return rows, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		log.Warn().Err(err).Str("key", key).Msg("Reference cache read failed")
	}

	stamp := s.guard.Begin(key)
	defer s.guard.Finish(stamp)

	rows, err = fetch(ctx)
	if err != nil {
		return []T{}, err
	}
	if rows == nil {
		rows = []T{}
	}
	if s.guard.Current(stamp) {
		if err := s.cache.Save(ctx, key, rows); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("Reference cache write failed")
		}
	}
	return rows, nil
}

// Schools lists all schools.
func (s *ReferenceService) Schools(ctx context.Context) ([]models.School, error) {
	return cached(ctx, s, cache.ListKey(cache.KindSchools), s.backend.ListSchools)
}

// Classes lists all classes.
func (s *ReferenceService) Classes(ctx context.Context) ([]models.Class, error) {
	return cached(ctx, s, cache.ListKey(cache.KindClasses), s.backend.ListClasses)
}

// Languages lists all class languages.
func (s *ReferenceService) Languages(ctx context.Context) ([]models.ClassLanguage, error) {
	return cached(ctx, s, cache.ListKey(cache.KindLanguages), s.backend.ListLanguages)
}

// Categories lists all categories.
func (s *ReferenceService) Categories(ctx context.Context) ([]models.Category, error) {
	return cached(ctx, s, cache.ListKey(cache.KindCategories), s.backend.ListCategories)
}

// Brands lists all brands.
func (s *ReferenceService) Brands(ctx context.Context) ([]models.Brand, error) {
	return cached(ctx, s, cache.ListKey(cache.KindBrands), s.backend.ListBrands)
}

// Products lists the whole catalog.
func (s *ReferenceService) Products(ctx context.Context) ([]models.Product, error) {
	return cached(ctx, s, cache.ListKey(cache.KindProducts), s.backend.ListProducts)
}

// SubCategories lists the subcategories of a category.
func (s *ReferenceService) SubCategories(ctx context.Context, categoryID int) ([]models.SubCategory, error) {
	return cached(ctx, s, cache.SubCategoriesKey(categoryID), func(ctx context.Context) ([]models.SubCategory, error) {
		return s.backend.ListSubCategories(ctx, categoryID)
	})
}

// ProductsFor lists the products of one (category, subcategory) pair.
func (s *ReferenceService) ProductsFor(ctx context.Context, categoryID, subCategoryID int) ([]models.Product, error) {
	return cached(ctx, s, cache.ProductsKey(categoryID, subCategoryID), func(ctx context.Context) ([]models.Product, error) {
		return s.backend.ListProductsBy(ctx, categoryID, subCategoryID)
	})
}

// Bootstrap loads schools, classes, languages, categories and the catalog
// concurrently.
func (s *ReferenceService) Bootstrap(ctx context.Context) (*ReferenceData, error) {
	var data ReferenceData
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) { data.Schools, err = s.Schools(gctx); return })
	g.Go(func() (err error) { data.Classes, err = s.Classes(gctx); return })
	g.Go(func() (err error) { data.Languages, err = s.Languages(gctx); return })
	g.Go(func() (err error) { data.Categories, err = s.Categories(gctx); return })
	g.Go(func() (err error) { data.Products, err = s.Products(gctx); return })

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &data, nil
}

// Refresh drops the cached flat lists and loads them again.
func (s *ReferenceService) Refresh(ctx context.Context) error {
	keys := []string{
		cache.ListKey(cache.KindSchools),
		cache.ListKey(cache.KindClasses),
		cache.ListKey(cache.KindLanguages),
		cache.ListKey(cache.KindCategories),
		cache.ListKey(cache.KindBrands),
		cache.ListKey(cache.KindProducts),
	}
	if err := s.cache.Invalidate(ctx, keys...); err != nil {
		return err
	}
	if _, err := s.Bootstrap(ctx); err != nil {
		return err
	}
	_, err := s.Brands(ctx)
	return err
}
