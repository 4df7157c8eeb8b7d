package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/models"
	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/service"
	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/utils"
)

// ReferenceHandler serves the lookup lists behind the console dropdowns.
type ReferenceHandler struct {
	refs *service.ReferenceService
}

// NewReferenceHandler constructs a ReferenceHandler.
func NewReferenceHandler(refs *service.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{refs: refs}
}

func respondList[T any](c *gin.Context, message string, load func(context.Context) ([]T, error)) {
	rows, err := load(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, message, rows)
}

// Schools handles GET /v1/admin/schools
func (h *ReferenceHandler) Schools(c *gin.Context) {
	respondList(c, "Schools retrieved", h.refs.Schools)
}

// Classes handles GET /v1/admin/classes
func (h *ReferenceHandler) Classes(c *gin.Context) {
	respondList(c, "Classes retrieved", h.refs.Classes)
}

// Languages handles GET /v1/admin/languages
func (h *ReferenceHandler) Languages(c *gin.Context) {
	respondList(c, "Languages retrieved", h.refs.Languages)
}

// Categories handles GET /v1/admin/categories
func (h *ReferenceHandler) Categories(c *gin.Context) {
	respondList(c, "Categories retrieved", h.refs.Categories)
}

// Brands handles GET /v1/admin/brands
func (h *ReferenceHandler) Brands(c *gin.Context) {
	respondList(c, "Brands retrieved", h.refs.Brands)
}

// Products handles GET /v1/admin/products
func (h *ReferenceHandler) Products(c *gin.Context) {
	respondList(c, "Products retrieved", h.refs.Products)
}

// SubCategories handles GET /v1/admin/categories/:categoryId/subcategories
func (h *ReferenceHandler) SubCategories(c *gin.Context) {
	categoryID, ok := pathID(c, "categoryId")
	if !ok {
		return
	}
	respondList(c, "Subcategories retrieved", func(ctx context.Context) ([]models.SubCategory, error) {
		return h.refs.SubCategories(ctx, categoryID)
	})
}

// ProductsFor handles GET /v1/admin/categories/:categoryId/subcategories/:subCategoryId/products
func (h *ReferenceHandler) ProductsFor(c *gin.Context) {
	categoryID, ok := pathID(c, "categoryId")
	if !ok {
		return
	}
	subCategoryID, ok := pathID(c, "subCategoryId")
	if !ok {
		return
	}
	respondList(c, "Products retrieved", func(ctx context.Context) ([]models.Product, error) {
		return h.refs.ProductsFor(ctx, categoryID, subCategoryID)
	})
}

// Bootstrap handles GET /v1/admin/reference
func (h *ReferenceHandler) Bootstrap(c *gin.Context) {
	data, err := h.refs.Bootstrap(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Reference data retrieved", data)
}
