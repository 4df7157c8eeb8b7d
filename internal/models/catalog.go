package models

// ListResponse is the envelope every backend list endpoint returns.
type ListResponse[T any] struct {
	Count int `json:"count"`
	Rows  []T `json:"rows"`
}

// School is an onboarded school.
type School struct {
	ID       int    `json:"id" validate:"gt=0"`
	Name     string `json:"name"`
	Code     string `json:"code,omitempty"`
	Address  string `json:"address,omitempty"`
	City     string `json:"city,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Image    string `json:"image,omitempty"`
	IsActive bool   `json:"is_active"`
}

// Class is a grade/class offered by schools.
type Class struct {
	ID   int    `json:"id" validate:"gt=0"`
	Name string `json:"name"`
}

// ClassLanguage is the medium of instruction a bundle targets.
type ClassLanguage struct {
	ID   int    `json:"id" validate:"gt=0"`
	Name string `json:"name"`
}

// Category is a top-level catalog category.
type Category struct {
	ID    int    `json:"id" validate:"gt=0"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// SubCategory belongs to exactly one Category.
type SubCategory struct {
	ID         int    `json:"id" validate:"gt=0"`
	CategoryID int    `json:"category_id"`
	Name       string `json:"name"`
}

// Brand is a product brand.
type Brand struct {
	ID    int    `json:"id" validate:"gt=0"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// CategoryRef is the nested Category object some endpoints embed in a product.
type CategoryRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// SubCategoryRef is the nested SubCategory object some endpoints embed in a product.
type SubCategoryRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Product is a catalog product. The owning category and subcategory arrive
// either as flat ids or as nested Category/SubCategory objects.
type Product struct {
	ID            int             `json:"id" validate:"gt=0"`
	Name          string          `json:"name"`
	SKU           string          `json:"sku,omitempty"`
	Description   string          `json:"description,omitempty"`
	Price         Number          `json:"price"`
	Stock         Number          `json:"stock"`
	Image         string          `json:"image,omitempty"`
	BrandID       int             `json:"brand_id,omitempty"`
	CategoryID    int             `json:"category_id"`
	SubCategoryID int             `json:"sub_category_id"`
	IsActive      bool            `json:"is_active"`
	Category      *CategoryRef    `json:"Category,omitempty"`
	SubCategory   *SubCategoryRef `json:"SubCategory,omitempty"`
}

// Placement returns the product's (category, subcategory) pair, preferring the
// flat ids and falling back to the nested objects.
func (p Product) Placement() (categoryID, subCategoryID int) {
	categoryID, subCategoryID = p.CategoryID, p.SubCategoryID
	if categoryID == 0 && p.Category != nil {
		categoryID = p.Category.ID
	}
	if subCategoryID == 0 && p.SubCategory != nil {
		subCategoryID = p.SubCategory.ID
	}
	return categoryID, subCategoryID
}
