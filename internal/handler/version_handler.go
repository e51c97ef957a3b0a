package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hostpicks/hostpicks-backend/internal/common"
	"github.com/hostpicks/hostpicks-backend/internal/domain"
	"github.com/hostpicks/hostpicks-backend/internal/middleware"
	"github.com/hostpicks/hostpicks-backend/internal/service"
)

// VersionHandler handles version history API endpoints
type VersionHandler struct {
	versions service.VersionService
}

// NewVersionHandler creates a new VersionHandler
func NewVersionHandler(versions service.VersionService) *VersionHandler {
	return &VersionHandler{versions: versions}
}

// List handles GET /api/contents/:id/versions
func (h *VersionHandler) List(c *gin.Context) {
	items, err := h.versions.List(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	common.Success(c, items)
}

// Get handles GET /api/versions/:versionId
func (h *VersionHandler) Get(c *gin.Context) {
	snapshot, err := h.versions.Get(c.Param("versionId"))
	if err != nil {
		respondError(c, err)
		return
	}
	common.Success(c, snapshot)
}

// Rollback handles POST /api/contents/:id/versions. The target is
// addressed by versionId, or by version number when no id is given.
func (h *VersionHandler) Rollback(c *gin.Context) {
	var req domain.RollbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.VersionID == "" && req.Version < 1 {
		common.ErrorResponse(c, http.StatusBadRequest, "Missing versionId or version", nil)
		return
	}

	updatedBy := req.UpdatedBy
	if updatedBy == "" {
		updatedBy = middleware.GetUsername(c)
	}

	var record *domain.ContentRecord
	var err error
	if req.VersionID != "" {
		record, err = h.versions.Rollback(c.Param("id"), req.VersionID, updatedBy)
	} else {
		record, err = h.versions.RollbackToVersion(c.Param("id"), req.Version, updatedBy)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	common.Success(c, record)
}

// Diff handles GET /api/contents/:id/diff?from=&to=&locale=
func (h *VersionHandler) Diff(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		common.ErrorResponse(c, http.StatusBadRequest, "Missing from/to query parameters", nil)
		return
	}
	locale := domain.Locale(c.DefaultQuery("locale", string(domain.LocaleEN)))

	diff, err := h.versions.Diff(c.Param("id"), from, to, locale)
	if err != nil {
		respondError(c, err)
		return
	}
	common.Success(c, gin.H{"diff": diff})
}
