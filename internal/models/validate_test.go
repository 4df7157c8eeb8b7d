package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(Product{ID: 3, Name: "Notebook"}))
	assert.Error(t, Validate(Product{Name: "no id"}))

	req := CreateBundleRequest{Products: []BundleProductRow{{ProductID: 1, Quantity: 1}}}
	assert.NoError(t, Validate(req))

	req.Products = append(req.Products, BundleProductRow{ProductID: 2, Quantity: 0})
	assert.Error(t, Validate(req))
}

func TestProduct_Placement(t *testing.T) {
	flat := Product{ID: 1, CategoryID: 2, SubCategoryID: 3}
	cat, sub := flat.Placement()
	assert.Equal(t, 2, cat)
	assert.Equal(t, 3, sub)

	nested := Product{ID: 1, Category: &CategoryRef{ID: 4}, SubCategory: &SubCategoryRef{ID: 5}}
	cat, sub = nested.Placement()
	assert.Equal(t, 4, cat)
	assert.Equal(t, 5, sub)
}
