// Package bundle holds the bundle composition model: the category-section
// editing tree, its pure transitions, submission flattening and the list
// aggregation. Nothing here performs I/O.
package bundle

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/models"
)

// Tree is an immutable snapshot of a bundle being edited. Every transition
// returns a new Tree and leaves the receiver untouched.
type Tree struct {
	Sections []Section `json:"sections"`
}

// Section groups the chosen products of one (category, subcategory) pairing.
// A zero CategoryID or SubCategoryID means the selector is still empty.
type Section struct {
	ID            string       `json:"id"`
	CategoryID    int          `json:"category_id"`
	SubCategoryID int          `json:"sub_category_id"`
	Products      []ProductRow `json:"products"`
	// Generation is bumped whenever the category or subcategory changes so a
	// dependent fetch started earlier can detect that its answer is stale.
	Generation uint64 `json:"generation"`
}

// ProductRow is one product inside a section.
type ProductRow struct {
	ID          string `json:"id"`
	ProductID   int    `json:"product_id"`
	Name        string `json:"name"`
	Image       string `json:"image,omitempty"`
	Quantity    int    `json:"quantity"`
	IsMandatory bool   `json:"is_mandatory"`
}

// IDSource produces synthetic section ids. Ids only need to be unique within
// one editing session.
type IDSource func() string

// NewID is the default IDSource.
func NewID() string {
	return uuid.NewString()
}

// SectionKey is the composite key sections are grouped and cached by.
func SectionKey(categoryID, subCategoryID int) string {
	return fmt.Sprintf("%d-%d", categoryID, subCategoryID)
}

func newProductRow(p models.Product, quantity int, mandatory bool) ProductRow {
	return ProductRow{
		ID:          strconv.Itoa(p.ID),
		ProductID:   p.ID,
		Name:        p.Name,
		Image:       p.Image,
		Quantity:    clampQuantity(quantity),
		IsMandatory: mandatory,
	}
}

func clampQuantity(q int) int {
	if q < 1 {
		return 1
	}
	return q
}

// Section returns the section with the given id.
func (t Tree) Section(sectionID string) (Section, bool) {
	if i := t.index(sectionID); i >= 0 {
		return t.Sections[i], true
	}
	return Section{}, false
}

// Locate returns the id of the section holding productID.
func (t Tree) Locate(productID int) (string, bool) {
	for _, s := range t.Sections {
		if s.has(productID) {
			return s.ID, true
		}
	}
	return "", false
}

// ProductCount is the number of product rows across all sections.
func (t Tree) ProductCount() int {
	n := 0
	for _, s := range t.Sections {
		n += len(s.Products)
	}
	return n
}

func (t Tree) index(sectionID string) int {
	for i, s := range t.Sections {
		if s.ID == sectionID {
			return i
		}
	}
	return -1
}

func (s Section) has(productID int) bool {
	return s.productIndex(productID) >= 0
}

func (s Section) productIndex(productID int) int {
	for i, p := range s.Products {
		if p.ProductID == productID {
			return i
		}
	}
	return -1
}

// withSection returns a copy of t whose section i is replaced by s. Only the
// sections slice is copied; s is expected to own its Products slice.
func (t Tree) withSection(i int, s Section) Tree {
	sections := make([]Section, len(t.Sections))
	copy(sections, t.Sections)
	sections[i] = s
	return Tree{Sections: sections}
}

func copyProducts(rows []ProductRow, extra int) []ProductRow {
	out := make([]ProductRow, len(rows), len(rows)+extra)
	copy(out, rows)
	return out
}
