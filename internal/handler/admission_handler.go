package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/models"
	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/service"
	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/utils"
)

// AdmissionHandler handles admission CRUD HTTP endpoints.
type AdmissionHandler struct {
	admissions *service.AdmissionService
}

// NewAdmissionHandler constructs an AdmissionHandler.
func NewAdmissionHandler(admissions *service.AdmissionService) *AdmissionHandler {
	return &AdmissionHandler{admissions: admissions}
}

// CreateAdmission handles POST /v1/admin/admissions
func (h *AdmissionHandler) CreateAdmission(c *gin.Context) {
	var in models.AdmissionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, utils.CodeMissingField, "Student name, school and class are required")
		return
	}
	msg, id, err := h.admissions.Create(c.Request.Context(), &in)
	if err != nil {
		respondError(c, err)
		return
	}
	if msg == "" {
		msg = "Admission created"
	}
	utils.Success(c, http.StatusCreated, msg, gin.H{"id": id})
}

// ListAdmissions handles GET /v1/admin/admissions
func (h *AdmissionHandler) ListAdmissions(c *gin.Context) {
	filter := &models.AdmissionListRequest{
		SchoolID: queryInt(c, "schoolId", 0),
		ClassID:  queryInt(c, "classId", 0),
		Search:   c.Query("search"),
		Page:     queryInt(c, "page", 1),
		Limit:    queryInt(c, "limit", 50),
	}
	result, err := h.admissions.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	total := result.Count
	if total == 0 {
		total = len(result.Rows)
	}
	utils.SuccessWithPagination(c, http.StatusOK, "Admissions retrieved", result.Rows, filter.Page, filter.Limit, total)
}

// GetAdmission handles GET /v1/admin/admissions/:id
func (h *AdmissionHandler) GetAdmission(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	a, err := h.admissions.View(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Admission retrieved", a)
}

// UpdateAdmission handles PUT /v1/admin/admissions/:id
func (h *AdmissionHandler) UpdateAdmission(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in models.AdmissionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, utils.CodeMissingField, "Student name, school and class are required")
		return
	}
	msg, err := h.admissions.Update(c.Request.Context(), id, &in)
	if err != nil {
		respondError(c, err)
		return
	}
	if msg == "" {
		msg = "Admission updated"
	}
	utils.Success(c, http.StatusOK, msg, gin.H{"id": id})
}

// DeleteAdmission handles DELETE /v1/admin/admissions/:id
func (h *AdmissionHandler) DeleteAdmission(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	msg, err := h.admissions.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if msg == "" {
		msg = "Admission deleted"
	}
	utils.Success(c, http.StatusOK, msg, gin.H{"id": id})
}
