package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hostpicks/hostpicks-backend/internal/common"
	"github.com/hostpicks/hostpicks-backend/internal/domain"
	"github.com/hostpicks/hostpicks-backend/internal/service"
)

// TaxonomyHandler handles category and tag API endpoints
type TaxonomyHandler struct {
	taxonomy service.TaxonomyService
}

// NewTaxonomyHandler creates a new TaxonomyHandler
func NewTaxonomyHandler(taxonomy service.TaxonomyService) *TaxonomyHandler {
	return &TaxonomyHandler{taxonomy: taxonomy}
}

// ListCategories handles GET /api/categories
func (h *TaxonomyHandler) ListCategories(c *gin.Context) {
	categories, err := h.taxonomy.ListCategories()
	if err != nil {
		respondError(c, err)
		return
	}
	common.Success(c, categories)
}

// CreateCategory handles POST /api/categories
func (h *TaxonomyHandler) CreateCategory(c *gin.Context) {
	var req domain.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	category, err := h.taxonomy.CreateCategory(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	common.Created(c, category)
}

// DeleteCategory handles DELETE /api/categories/:id
func (h *TaxonomyHandler) DeleteCategory(c *gin.Context) {
	if err := h.taxonomy.DeleteCategory(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	common.Success(c, gin.H{"deleted": true})
}

// ListTags handles GET /api/tags
func (h *TaxonomyHandler) ListTags(c *gin.Context) {
	tags, err := h.taxonomy.ListTags()
	if err != nil {
		respondError(c, err)
		return
	}
	common.Success(c, tags)
}

// CreateTag handles POST /api/tags
func (h *TaxonomyHandler) CreateTag(c *gin.Context) {
	var req domain.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	tag, err := h.taxonomy.CreateTag(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	common.Created(c, tag)
}

// DeleteTag handles DELETE /api/tags/:id
func (h *TaxonomyHandler) DeleteTag(c *gin.Context) {
	if err := h.taxonomy.DeleteTag(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	common.Success(c, gin.H{"deleted": true})
}
