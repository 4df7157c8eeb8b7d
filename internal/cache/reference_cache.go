package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/bundle"
)

// Reference list kinds that are cached under their own name.
const (
	KindSchools    = "schools"
	KindClasses    = "classes"
	KindLanguages  = "languages"
	KindCategories = "categories"
	KindBrands     = "brands"
	KindProducts   = "products"
)

// ReferenceCache caches backend lookup lists. Subcategories are keyed by
// category id and filtered products by the "{categoryId}-{subCategoryId}" pair.
type ReferenceCache struct {
	store Store
	ttl   time.Duration
}

// NewReferenceCache creates a ReferenceCache whose entries live for ttl.
func NewReferenceCache(store Store, ttl time.Duration) *ReferenceCache {
	return &ReferenceCache{store: store, ttl: ttl}
}

// ListKey is the key of a flat reference list.
func ListKey(kind string) string {
	return "ref:" + kind
}

// SubCategoriesKey is the key of a category's subcategory list.
func SubCategoriesKey(categoryID int) string {
	return fmt.Sprintf("ref:subcategories:%d", categoryID)
}

// ProductsKey is the key of the product list for one (category, subcategory).
func ProductsKey(categoryID, subCategoryID int) string {
	return "ref:products:" + bundle.SectionKey(categoryID, subCategoryID)
}

// Load decodes the cached value at key into dest. It returns ErrCacheMiss
// when nothing is cached.
func (c *ReferenceCache) Load(ctx context.Context, key string, dest any) error {
	return getJSON(ctx, c.store, key, dest)
}

// Save caches v at key.
func (c *ReferenceCache) Save(ctx context.Context, key string, v any) error {
	return setJSON(ctx, c.store, key, v, c.ttl)
}

// Invalidate drops cached entries.
func (c *ReferenceCache) Invalidate(ctx context.Context, keys ...string) error {
	return c.store.Delete(ctx, keys...)
}
