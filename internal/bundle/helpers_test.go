package bundle

import (
	"fmt"

	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/models"
)

func seqIDs() IDSource {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("s%d", n)
	}
}

func fixedID(id string) IDSource {
	return func() string { return id }
}

func product(id, cat, sub int) models.Product {
	return models.Product{
		ID:            id,
		Name:          fmt.Sprintf("Product %d", id),
		CategoryID:    cat,
		SubCategoryID: sub,
	}
}

var testCatalog = []models.Product{
	product(1, 1, 1),
	product(2, 1, 1),
	product(3, 1, 2),
	product(4, 2, 1),
	product(5, 3, 4),
	product(6, 3, 4),
}

func assoc(productID, quantity int) models.BundleProductRow {
	return models.BundleProductRow{ProductID: productID, Quantity: quantity, IsMandatory: true}
}

func productIDs(s Section) []int {
	ids := make([]int, 0, len(s.Products))
	for _, p := range s.Products {
		ids = append(ids, p.ProductID)
	}
	return ids
}

// sectionWith returns a single-section tree whose section is set to (cat, sub).
func sectionWith(t Tree, cat, sub int) Tree {
	id := t.Sections[0].ID
	t, _ = t.SetSectionCategory(id, cat)
	t, _ = t.SetSectionSubcategory(id, sub)
	return t
}
