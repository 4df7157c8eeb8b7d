package bundle

import "github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/models"

// BuildTree reconstructs the editing tree from a bundle's stored associations
// and the catalog-wide product list.
//
// Sections appear in first-encounter order of their (category, subcategory)
// key. Associations whose product is missing from the catalog are dropped
// without an error, and a repeated product id keeps its first occurrence.
// The result always holds at least one section: an empty placeholder when
// nothing could be placed.
func BuildTree(assocs []models.BundleProductRow, catalog []models.Product, ids IDSource) Tree {
	if ids == nil {
		ids = NewID
	}

	byID := make(map[int]models.Product, len(catalog))
	for _, p := range catalog {
		if _, ok := byID[p.ID]; !ok {
			byID[p.ID] = p
		}
	}

	var sections []Section
	sectionAt := make(map[string]int)
	placed := make(map[int]bool)

	for _, a := range assocs {
		p, ok := byID[a.ProductID]
		if !ok {
			// TODO: surface dropped associations once the backend states whether
			// soft-deleted products should leave bundles.
			continue
		}
		if placed[a.ProductID] {
			continue
		}
		placed[a.ProductID] = true

		cat, sub := p.Placement()
		key := SectionKey(cat, sub)
		i, ok := sectionAt[key]
		if !ok {
			i = len(sections)
			sectionAt[key] = i
			sections = append(sections, Section{
				ID:            ids(),
				CategoryID:    cat,
				SubCategoryID: sub,
				Products:      []ProductRow{},
			})
		}
		sections[i].Products = append(sections[i].Products, newProductRow(p, a.Quantity, a.IsMandatory))
	}

	if len(sections) == 0 {
		sections = []Section{emptySection(ids())}
	}
	return Tree{Sections: sections}
}

// NewTree returns a tree holding one empty section, the state of a fresh
// create session.
func NewTree(ids IDSource) Tree {
	if ids == nil {
		ids = NewID
	}
	return Tree{Sections: []Section{emptySection(ids())}}
}

func emptySection(id string) Section {
	return Section{ID: id, Products: []ProductRow{}}
}
