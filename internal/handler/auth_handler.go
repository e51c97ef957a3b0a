package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hostpicks/hostpicks-backend/internal/common"
	"github.com/hostpicks/hostpicks-backend/internal/domain"
	"github.com/hostpicks/hostpicks-backend/internal/middleware"
	"github.com/hostpicks/hostpicks-backend/internal/service"
)

// AuthHandler handles authentication API endpoints
type AuthHandler struct {
	auth service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	resp, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	common.Success(c, resp)
}

// Refresh handles POST /api/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req domain.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	resp, err := h.auth.Refresh(req.RefreshToken)
	if err != nil {
		respondError(c, err)
		return
	}
	common.Success(c, resp)
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.auth.GetUser(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	common.Success(c, user)
}
