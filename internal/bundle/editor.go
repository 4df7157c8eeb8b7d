package bundle

import (
	"errors"
	"fmt"

	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/models"
)

// Editor errors. On any of them the returned Tree equals the receiver.
var (
	ErrSectionNotFound    = errors.New("section not found")
	ErrProductNotFound    = errors.New("product not found in section")
	ErrSectionIncomplete  = errors.New("select a category and subcategory first")
	ErrProductUnavailable = errors.New("product is not available for this category and subcategory")
	ErrDuplicateProduct   = errors.New("product already added")
)

// AddSection appends an empty section whose id is drawn from ids, or from
// NewID when ids is nil.
func (t Tree) AddSection(ids IDSource) Tree {
	if ids == nil {
		ids = NewID
	}
	id := ids()
	sections := make([]Section, len(t.Sections), len(t.Sections)+1)
	copy(sections, t.Sections)
	return Tree{Sections: append(sections, emptySection(id))}
}

// RemoveSection drops the section with the given id. Unknown ids are ignored.
func (t Tree) RemoveSection(sectionID string) Tree {
	i := t.index(sectionID)
	if i < 0 {
		return t
	}
	sections := make([]Section, 0, len(t.Sections)-1)
	sections = append(sections, t.Sections[:i]...)
	sections = append(sections, t.Sections[i+1:]...)
	return Tree{Sections: sections}
}

// SetSectionCategory selects a category and resets the subcategory and products.
func (t Tree) SetSectionCategory(sectionID string, categoryID int) (Tree, error) {
	i := t.index(sectionID)
	if i < 0 {
		return t, ErrSectionNotFound
	}
	s := t.Sections[i]
	s.CategoryID = categoryID
	s.SubCategoryID = 0
	s.Products = []ProductRow{}
	s.Generation++
	return t.withSection(i, s), nil
}

// SetSectionSubcategory selects a subcategory and resets the products.
func (t Tree) SetSectionSubcategory(sectionID string, subCategoryID int) (Tree, error) {
	i := t.index(sectionID)
	if i < 0 {
		return t, ErrSectionNotFound
	}
	s := t.Sections[i]
	s.SubCategoryID = subCategoryID
	s.Products = []ProductRow{}
	s.Generation++
	return t.withSection(i, s), nil
}

// AddProduct appends productID to a section with quantity 1, marked mandatory.
// options is the product list for the section's (category, subcategory); the
// product must be among them and must not already be anywhere in the bundle.
func (t Tree) AddProduct(sectionID string, productID int, options []models.Product) (Tree, error) {
	i := t.index(sectionID)
	if i < 0 {
		return t, ErrSectionNotFound
	}
	s := t.Sections[i]
	if s.CategoryID == 0 || s.SubCategoryID == 0 {
		return t, ErrSectionIncomplete
	}
	if s.has(productID) {
		return t, ErrDuplicateProduct
	}
	if other, ok := t.Locate(productID); ok {
		return t, fmt.Errorf("%w in section %s", ErrDuplicateProduct, other)
	}

	product, ok := findOption(options, productID, s.CategoryID, s.SubCategoryID)
	if !ok {
		return t, ErrProductUnavailable
	}

	s.Products = append(copyProducts(s.Products, 1), newProductRow(product, 1, true))
	return t.withSection(i, s), nil
}

func findOption(options []models.Product, productID, categoryID, subCategoryID int) (models.Product, bool) {
	for _, p := range options {
		if p.ID != productID {
			continue
		}
		cat, sub := p.Placement()
		// Filtered endpoints may omit the placement; trust the filter then.
		if (cat == 0 || cat == categoryID) && (sub == 0 || sub == subCategoryID) {
			return p, true
		}
	}
	return models.Product{}, false
}

// RemoveProduct drops productID from a section. Unknown ids are ignored.
func (t Tree) RemoveProduct(sectionID string, productID int) Tree {
	i := t.index(sectionID)
	if i < 0 {
		return t
	}
	s := t.Sections[i]
	j := s.productIndex(productID)
	if j < 0 {
		return t
	}
	products := make([]ProductRow, 0, len(s.Products)-1)
	products = append(products, s.Products[:j]...)
	s.Products = append(products, s.Products[j+1:]...)
	return t.withSection(i, s)
}

// AdjustQuantity adds delta to a product's quantity, never going below 1.
func (t Tree) AdjustQuantity(sectionID string, productID, delta int) (Tree, error) {
	return t.updateProduct(sectionID, productID, func(p *ProductRow) {
		p.Quantity = clampQuantity(p.Quantity + delta)
	})
}

// SetMandatory sets a product's mandatory flag.
func (t Tree) SetMandatory(sectionID string, productID int, mandatory bool) (Tree, error) {
	return t.updateProduct(sectionID, productID, func(p *ProductRow) {
		p.IsMandatory = mandatory
	})
}

func (t Tree) updateProduct(sectionID string, productID int, fn func(*ProductRow)) (Tree, error) {
	i := t.index(sectionID)
	if i < 0 {
		return t, ErrSectionNotFound
	}
	s := t.Sections[i]
	j := s.productIndex(productID)
	if j < 0 {
		return t, ErrProductNotFound
	}
	s.Products = copyProducts(s.Products, 0)
	fn(&s.Products[j])
	return t.withSection(i, s), nil
}

// Flatten returns the bundle's contents as wire rows, in section order and
// then product order.
func (t Tree) Flatten() []models.BundleProductRow {
	rows := make([]models.BundleProductRow, 0, t.ProductCount())
	for _, s := range t.Sections {
		for _, p := range s.Products {
			rows = append(rows, models.BundleProductRow{
				ProductID:   p.ProductID,
				Quantity:    clampQuantity(p.Quantity),
				IsMandatory: p.IsMandatory,
			})
		}
	}
	return rows
}
