package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/middleware"
	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/service"
	"github.com/Pradeep-photonx/LearnRite-Superadmin-sub000/internal/utils"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /v1/admin/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, utils.CodeInvalidRequest, "Invalid request body")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, http.StatusOK, "Login successful", result)
}

// Logout handles POST /v1/admin/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context(), c.GetString(middleware.ContextTokenID)); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, http.StatusOK, "Logged out", nil)
}

// Me handles GET /v1/admin/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	utils.Success(c, http.StatusOK, "Admin retrieved", gin.H{
		"id":   c.GetString(middleware.ContextAdminID),
		"name": c.GetString(middleware.ContextAdminName),
		"role": c.GetString(middleware.ContextRole),
	})
}
