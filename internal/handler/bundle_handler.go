package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/middleware"
	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/models"
	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/service"
	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/utils"
)

// BundleHandler handles the bundle list and bundle editing session endpoints.
type BundleHandler struct {
	bundles *service.BundleService
}

// NewBundleHandler constructs a BundleHandler.
func NewBundleHandler(bundles *service.BundleService) *BundleHandler {
	return &BundleHandler{bundles: bundles}
}

// ListBundles handles GET /v1/admin/bundles
func (h *BundleHandler) ListBundles(c *gin.Context) {
	bundles, err := h.bundles.List(c.Request.Context(), queryInt(c, "schoolId", 0))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Bundles retrieved", bundles)
}

// DeleteBundle handles DELETE /v1/admin/bundles/:id
func (h *BundleHandler) DeleteBundle(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	msg, err := h.bundles.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if msg == "" {
		msg = "Bundle deleted"
	}
	utils.Success(c, http.StatusOK, msg, gin.H{"bundleId": id})
}

// ListSubmissions handles GET /v1/admin/bundles/submissions
func (h *BundleHandler) ListSubmissions(c *gin.Context) {
	var bundleID *int
	if id := queryInt(c, "bundleId", 0); id > 0 {
		bundleID = &id
	}
	subs, err := h.bundles.Submissions(c.Request.Context(), bundleID, queryInt(c, "limit", 50))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Submissions retrieved", subs)
}

// OpenSession handles POST /v1/admin/bundles/sessions
// A body with bundleId opens an edit session, otherwise a create session.
func (h *BundleHandler) OpenSession(c *gin.Context) {
	var req struct {
		BundleID int `json:"bundleId" binding:"gte=0"`
		SchoolID int `json:"schoolId" binding:"gte=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, utils.CodeInvalidRequest, "Invalid request body")
		return
	}

	ctx := c.Request.Context()
	owner := c.GetString(middleware.ContextAdminID)

	var (
		sess *service.Session
		err  error
	)
	if req.BundleID > 0 {
		sess, err = h.bundles.OpenEdit(ctx, owner, req.BundleID)
	} else {
		sess, err = h.bundles.OpenCreate(ctx, owner, req.SchoolID)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, http.StatusCreated, "Session opened", sess)
}

// GetSession handles GET /v1/admin/bundles/sessions/:sessionId
func (h *BundleHandler) GetSession(c *gin.Context) {
	sess, err := h.bundles.Get(c.Request.Context(), c.GetString(middleware.ContextAdminID), c.Param("sessionId"))
	h.respondSession(c, sess, err)
}

// CancelSession handles DELETE /v1/admin/bundles/sessions/:sessionId
func (h *BundleHandler) CancelSession(c *gin.Context) {
	if err := h.bundles.Cancel(c.Request.Context(), c.GetString(middleware.ContextAdminID), c.Param("sessionId")); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Session discarded", nil)
}

// UpdateHeader handles PATCH /v1/admin/bundles/sessions/:sessionId
func (h *BundleHandler) UpdateHeader(c *gin.Context) {
	var patch service.HeaderPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.Error(c, http.StatusBadRequest, utils.CodeInvalidRequest, "Invalid request body")
		return
	}
	sess, err := h.bundles.UpdateHeader(c.Request.Context(), c.GetString(middleware.ContextAdminID), c.Param("sessionId"), patch)
	h.respondSession(c, sess, err)
}

// AddSection handles POST /v1/admin/bundles/sessions/:sessionId/sections
func (h *BundleHandler) AddSection(c *gin.Context) {
	sess, err := h.bundles.AddSection(c.Request.Context(), c.GetString(middleware.ContextAdminID), c.Param("sessionId"))
	h.respondSession(c, sess, err)
}

// RemoveSection handles DELETE /v1/admin/bundles/sessions/:sessionId/sections/:sectionId
func (h *BundleHandler) RemoveSection(c *gin.Context) {
	sess, err := h.bundles.RemoveSection(c.Request.Context(), c.GetString(middleware.ContextAdminID), c.Param("sessionId"), c.Param("sectionId"))
	h.respondSession(c, sess, err)
}

// SetCategory handles PUT /v1/admin/bundles/sessions/:sessionId/sections/:sectionId/category
func (h *BundleHandler) SetCategory(c *gin.Context) {
	var req struct {
		CategoryID int `json:"categoryId" binding:"gte=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, utils.CodeInvalidRequest, "Invalid request body")
		return
	}
	sess, err := h.bundles.SetSectionCategory(c.Request.Context(), c.GetString(middleware.ContextAdminID), c.Param("sessionId"), c.Param("sectionId"), req.CategoryID)
	h.respondSession(c, sess, err)
}

// SetSubcategory handles PUT /v1/admin/bundles/sessions/:sessionId/sections/:sectionId/subcategory
func (h *BundleHandler) SetSubcategory(c *gin.Context) {
	var req struct {
		SubCategoryID int `json:"subCategoryId" binding:"gte=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, utils.CodeInvalidRequest, "Invalid request body")
		return
	}
	sess, err := h.bundles.SetSectionSubcategory(c.Request.Context(), c.GetString(middleware.ContextAdminID), c.Param("sessionId"), c.Param("sectionId"), req.SubCategoryID)
	h.respondSession(c, sess, err)
}

// SectionOptions handles GET /v1/admin/bundles/sessions/:sessionId/sections/:sectionId/options
func (h *BundleHandler) SectionOptions(c *gin.Context) {
	opts, err := h.bundles.SectionOptions(c.Request.Context(), c.GetString(middleware.ContextAdminID), c.Param("sessionId"), c.Param("sectionId"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Section options retrieved", opts)
}

// AddProduct handles POST /v1/admin/bundles/sessions/:sessionId/sections/:sectionId/products
func (h *BundleHandler) AddProduct(c *gin.Context) {
	var req struct {
		ProductID int `json:"productId" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, utils.CodeInvalidRequest, "productId is required")
		return
	}
	sess, err := h.bundles.AddProduct(c.Request.Context(), c.GetString(middleware.ContextAdminID), c.Param("sessionId"), c.Param("sectionId"), req.ProductID)
	h.respondSession(c, sess, err)
}

// RemoveProduct handles DELETE /v1/admin/bundles/sessions/:sessionId/sections/:sectionId/products/:productId
func (h *BundleHandler) RemoveProduct(c *gin.Context) {
	productID, ok := pathID(c, "productId")
	if !ok {
		return
	}
	sess, err := h.bundles.RemoveProduct(c.Request.Context(), c.GetString(middleware.ContextAdminID), c.Param("sessionId"), c.Param("sectionId"), productID)
	h.respondSession(c, sess, err)
}

// AdjustQuantity handles POST /v1/admin/bundles/sessions/:sessionId/sections/:sectionId/products/:productId/quantity
func (h *BundleHandler) AdjustQuantity(c *gin.Context) {
	productID, ok := pathID(c, "productId")
	if !ok {
		return
	}
	var req struct {
		Delta *int `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, utils.CodeInvalidRequest, "delta is required")
		return
	}
	sess, err := h.bundles.AdjustQuantity(c.Request.Context(), c.GetString(middleware.ContextAdminID), c.Param("sessionId"), c.Param("sectionId"), productID, *req.Delta)
	h.respondSession(c, sess, err)
}

// SetMandatory handles PUT /v1/admin/bundles/sessions/:sessionId/sections/:sectionId/products/:productId/mandatory
func (h *BundleHandler) SetMandatory(c *gin.Context) {
	productID, ok := pathID(c, "productId")
	if !ok {
		return
	}
	var req struct {
		IsMandatory *bool `json:"isMandatory" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, utils.CodeInvalidRequest, "isMandatory is required")
		return
	}
	sess, err := h.bundles.SetMandatory(c.Request.Context(), c.GetString(middleware.ContextAdminID), c.Param("sessionId"), c.Param("sectionId"), productID, *req.IsMandatory)
	h.respondSession(c, sess, err)
}

// Submit handles POST /v1/admin/bundles/sessions/:sessionId/submit
func (h *BundleHandler) Submit(c *gin.Context) {
	result, err := h.bundles.Submit(c.Request.Context(),
		c.GetString(middleware.ContextAdminID),
		c.GetString(middleware.ContextAdminName),
		c.Param("sessionId"))
	if err != nil {
		respondError(c, err)
		return
	}
	msg := result.Message
	if msg == "" {
		msg = "Bundle saved"
	}
	code := http.StatusOK
	if result.Mode == models.SubmissionCreate {
		code = http.StatusCreated
	}
	utils.Success(c, code, msg, result)
}

func (h *BundleHandler) respondSession(c *gin.Context, sess *service.Session, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Session updated", sess)
}
