package bundle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/models"
)

func TestBuildTree_SamePairSharesSection(t *testing.T) {
	tree := BuildTree([]models.BundleProductRow{assoc(1, 2), assoc(2, 1)}, testCatalog, seqIDs())

	require.Len(t, tree.Sections, 1)
	s := tree.Sections[0]
	assert.Equal(t, 1, s.CategoryID)
	assert.Equal(t, 1, s.SubCategoryID)
	assert.Equal(t, []int{1, 2}, productIDs(s))
	assert.Equal(t, 2, s.Products[0].Quantity)
	assert.Equal(t, "Product 1", s.Products[0].Name)
}

func TestBuildTree_FirstEncounterOrder(t *testing.T) {
	tree := BuildTree([]models.BundleProductRow{assoc(3, 1), assoc(1, 1), assoc(4, 1), assoc(2, 1)}, testCatalog, seqIDs())

	require.Len(t, tree.Sections, 3)
	assert.Equal(t, []int{3}, productIDs(tree.Sections[0]))
	assert.Equal(t, []int{1, 2}, productIDs(tree.Sections[1]))
	assert.Equal(t, []int{4}, productIDs(tree.Sections[2]))
	assert.Equal(t, "s1", tree.Sections[0].ID)
	assert.Equal(t, "s3", tree.Sections[2].ID)
}

func TestBuildTree_Deterministic(t *testing.T) {
	assocs := []models.BundleProductRow{assoc(5, 1), assoc(1, 3), assoc(6, 2), assoc(3, 1), assoc(2, 1)}

	first := BuildTree(assocs, testCatalog, seqIDs())
	second := BuildTree(assocs, testCatalog, seqIDs())
	assert.Equal(t, first, second)
}

func TestBuildTree_DropsUnresolvedProducts(t *testing.T) {
	tree := BuildTree([]models.BundleProductRow{assoc(99, 1), assoc(4, 1)}, testCatalog, seqIDs())

	require.Len(t, tree.Sections, 1)
	assert.Equal(t, []int{4}, productIDs(tree.Sections[0]))
}

func TestBuildTree_EmptyFallsBackToPlaceholder(t *testing.T) {
	for name, assocs := range map[string][]models.BundleProductRow{
		"no associations":  nil,
		"all unresolvable": {assoc(98, 1), assoc(99, 1)},
	} {
		t.Run(name, func(t *testing.T) {
			tree := BuildTree(assocs, testCatalog, seqIDs())
			require.Len(t, tree.Sections, 1)
			assert.Equal(t, "s1", tree.Sections[0].ID)
			assert.Zero(t, tree.Sections[0].CategoryID)
			assert.Empty(t, tree.Sections[0].Products)
			assert.NotNil(t, tree.Sections[0].Products)
		})
	}
}

func TestBuildTree_ClampsQuantityAndKeepsFirstDuplicate(t *testing.T) {
	assocs := []models.BundleProductRow{
		{ProductID: 1, Quantity: 0, IsMandatory: false},
		{ProductID: 1, Quantity: 5, IsMandatory: true},
	}
	tree := BuildTree(assocs, testCatalog, seqIDs())

	require.Len(t, tree.Sections[0].Products, 1)
	row := tree.Sections[0].Products[0]
	assert.Equal(t, 1, row.Quantity)
	assert.False(t, row.IsMandatory)
}

func TestBuildTree_NestedPlacement(t *testing.T) {
	catalog := []models.Product{{
		ID:          10,
		Name:        "Geometry box",
		Category:    &models.CategoryRef{ID: 7},
		SubCategory: &models.SubCategoryRef{ID: 8},
	}}
	tree := BuildTree([]models.BundleProductRow{assoc(10, 1)}, catalog, seqIDs())

	require.Len(t, tree.Sections, 1)
	assert.Equal(t, 7, tree.Sections[0].CategoryID)
	assert.Equal(t, 8, tree.Sections[0].SubCategoryID)
}

func TestNewTree(t *testing.T) {
	tree := NewTree(nil)
	require.Len(t, tree.Sections, 1)
	assert.NotEmpty(t, tree.Sections[0].ID)
}

func TestSectionKey(t *testing.T) {
	assert.Equal(t, "3-14", SectionKey(3, 14))
}
