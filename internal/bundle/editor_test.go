package bundle

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/models"
)

func TestTree_AddAndRemoveSection(t *testing.T) {
	tree := NewTree(seqIDs())
	grown := tree.AddSection(fixedID("extra"))

	assert.Len(t, tree.Sections, 1)
	require.Len(t, grown.Sections, 2)
	assert.Equal(t, "extra", grown.Sections[1].ID)

	shrunk := grown.RemoveSection("extra")
	assert.Len(t, shrunk.Sections, 1)
	assert.Len(t, grown.Sections, 2)

	assert.Equal(t, shrunk, shrunk.RemoveSection("missing"))
	assert.NotEmpty(t, tree.AddSection(nil).Sections[1].ID)
}

func TestTree_AddSectionDrawsFromIDSource(t *testing.T) {
	ids := seqIDs()
	tree := NewTree(ids).AddSection(ids).AddSection(ids)

	require.Len(t, tree.Sections, 3)
	assert.Equal(t, "s1", tree.Sections[0].ID)
	assert.Equal(t, "s2", tree.Sections[1].ID)
	assert.Equal(t, "s3", tree.Sections[2].ID)
}

func TestTree_SetSectionCategoryResetsChildren(t *testing.T) {
	tree := BuildTree([]models.BundleProductRow{assoc(1, 1), assoc(2, 1)}, testCatalog, seqIDs())
	id := tree.Sections[0].ID

	changed, err := tree.SetSectionCategory(id, 3)
	require.NoError(t, err)

	s := changed.Sections[0]
	assert.Equal(t, 3, s.CategoryID)
	assert.Zero(t, s.SubCategoryID)
	assert.Empty(t, s.Products)
	assert.Equal(t, tree.Sections[0].Generation+1, s.Generation)

	// previous snapshot untouched
	assert.Len(t, tree.Sections[0].Products, 2)
	assert.Equal(t, 1, tree.Sections[0].SubCategoryID)

	_, err = tree.SetSectionCategory("missing", 3)
	assert.ErrorIs(t, err, ErrSectionNotFound)
}

func TestTree_SetSectionSubcategoryResetsProducts(t *testing.T) {
	tree := BuildTree([]models.BundleProductRow{assoc(1, 1)}, testCatalog, seqIDs())
	id := tree.Sections[0].ID

	// reselecting the same subcategory still clears
	changed, err := tree.SetSectionSubcategory(id, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, changed.Sections[0].CategoryID)
	assert.Equal(t, 1, changed.Sections[0].SubCategoryID)
	assert.Empty(t, changed.Sections[0].Products)
	assert.Len(t, tree.Sections[0].Products, 1)
}

func TestTree_AddProductDefaults(t *testing.T) {
	tree := sectionWith(NewTree(seqIDs()), 3, 4)
	id := tree.Sections[0].ID

	added, err := tree.AddProduct(id, 5, testCatalog)
	require.NoError(t, err)

	require.Len(t, added.Sections[0].Products, 1)
	row := added.Sections[0].Products[0]
	assert.Equal(t, "5", row.ID)
	assert.Equal(t, 5, row.ProductID)
	assert.Equal(t, 1, row.Quantity)
	assert.True(t, row.IsMandatory)
	assert.Empty(t, tree.Sections[0].Products)
}

func TestTree_AddProductTwiceIsRejected(t *testing.T) {
	tree := sectionWith(NewTree(seqIDs()), 3, 4)
	id := tree.Sections[0].ID

	once, err := tree.AddProduct(id, 5, testCatalog)
	require.NoError(t, err)

	twice, err := once.AddProduct(id, 5, testCatalog)
	assert.ErrorIs(t, err, ErrDuplicateProduct)
	assert.Len(t, twice.Sections[0].Products, 1)
	assert.Equal(t, once, twice)
}

func TestTree_AddProductAlreadyInOtherSection(t *testing.T) {
	tree := BuildTree([]models.BundleProductRow{assoc(1, 1)}, testCatalog, seqIDs())
	tree = tree.AddSection(fixedID("second"))
	tree, _ = tree.SetSectionCategory("second", 1)
	tree, _ = tree.SetSectionSubcategory("second", 1)

	_, err := tree.AddProduct("second", 1, testCatalog)
	assert.ErrorIs(t, err, ErrDuplicateProduct)
}

func TestTree_AddProductErrors(t *testing.T) {
	blank := NewTree(seqIDs())
	ready := sectionWith(blank, 1, 1)
	id := blank.Sections[0].ID

	_, err := ready.AddProduct("missing", 1, testCatalog)
	assert.ErrorIs(t, err, ErrSectionNotFound)

	_, err = blank.AddProduct(id, 1, testCatalog)
	assert.ErrorIs(t, err, ErrSectionIncomplete)

	// product 4 belongs to (2,1)
	_, err = ready.AddProduct(id, 4, testCatalog)
	assert.ErrorIs(t, err, ErrProductUnavailable)

	_, err = ready.AddProduct(id, 1, nil)
	assert.ErrorIs(t, err, ErrProductUnavailable)
}

func TestTree_AddProductTrustsFilteredOptionsWithoutPlacement(t *testing.T) {
	tree := sectionWith(NewTree(seqIDs()), 9, 9)
	options := []models.Product{{ID: 42, Name: "Crayons"}}

	added, err := tree.AddProduct(tree.Sections[0].ID, 42, options)
	require.NoError(t, err)
	assert.Equal(t, "Crayons", added.Sections[0].Products[0].Name)
}

func TestTree_RemoveProduct(t *testing.T) {
	tree := BuildTree([]models.BundleProductRow{assoc(1, 1), assoc(2, 1)}, testCatalog, seqIDs())
	id := tree.Sections[0].ID

	removed := tree.RemoveProduct(id, 1)
	assert.Equal(t, []int{2}, productIDs(removed.Sections[0]))
	assert.Equal(t, []int{1, 2}, productIDs(tree.Sections[0]))

	assert.Equal(t, removed, removed.RemoveProduct(id, 1))
	assert.Equal(t, removed, removed.RemoveProduct("missing", 2))
}

func TestTree_AdjustQuantityClampsAtOne(t *testing.T) {
	tree := BuildTree([]models.BundleProductRow{assoc(5, 3)}, testCatalog, seqIDs())
	id := tree.Sections[0].ID

	lowered, err := tree.AdjustQuantity(id, 5, -10)
	require.NoError(t, err)
	assert.Equal(t, 1, lowered.Sections[0].Products[0].Quantity)
	assert.Equal(t, 3, tree.Sections[0].Products[0].Quantity)

	raised, err := lowered.AdjustQuantity(id, 5, 1000)
	require.NoError(t, err)
	assert.Equal(t, 1001, raised.Sections[0].Products[0].Quantity)

	_, err = tree.AdjustQuantity(id, 99, 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
	_, err = tree.AdjustQuantity("missing", 5, 1)
	assert.ErrorIs(t, err, ErrSectionNotFound)
}

func TestTree_AdjustQuantityNeverBelowOne(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tree := BuildTree([]models.BundleProductRow{assoc(1, 1)}, testCatalog, seqIDs())
	id := tree.Sections[0].ID

	for i := 0; i < 500; i++ {
		var err error
		tree, err = tree.AdjustQuantity(id, 1, rng.Intn(21)-10)
		require.NoError(t, err)
		require.GreaterOrEqual(t, tree.Sections[0].Products[0].Quantity, 1)
	}
}

func TestTree_SetMandatory(t *testing.T) {
	tree := BuildTree([]models.BundleProductRow{assoc(1, 1), assoc(2, 1)}, testCatalog, seqIDs())
	id := tree.Sections[0].ID

	optional, err := tree.SetMandatory(id, 2, false)
	require.NoError(t, err)
	assert.True(t, optional.Sections[0].Products[0].IsMandatory)
	assert.False(t, optional.Sections[0].Products[1].IsMandatory)
	assert.True(t, tree.Sections[0].Products[1].IsMandatory)
}

func TestTree_FlattenOrder(t *testing.T) {
	tree := BuildTree([]models.BundleProductRow{assoc(3, 2), assoc(1, 1), assoc(2, 4)}, testCatalog, seqIDs())
	tree, _ = tree.SetMandatory(tree.Sections[1].ID, 2, false)

	assert.Equal(t, []models.BundleProductRow{
		{ProductID: 3, Quantity: 2, IsMandatory: true},
		{ProductID: 1, Quantity: 1, IsMandatory: true},
		{ProductID: 2, Quantity: 4, IsMandatory: false},
	}, tree.Flatten())
	assert.Equal(t, 3, tree.ProductCount())

	where, ok := tree.Locate(2)
	assert.True(t, ok)
	assert.Equal(t, tree.Sections[1].ID, where)
}
