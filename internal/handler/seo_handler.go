package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hostpicks/hostpicks-backend/internal/common"
	"github.com/hostpicks/hostpicks-backend/internal/domain"
	"github.com/hostpicks/hostpicks-backend/internal/service"
)

// SEOHandler handles SEO generator API endpoints
type SEOHandler struct {
	seo service.SEOService
}

// NewSEOHandler creates a new SEOHandler
func NewSEOHandler(seo service.SEOService) *SEOHandler {
	return &SEOHandler{seo: seo}
}

type seoGenerateRequest struct {
	PageType domain.ContentType `json:"pageType" binding:"required"`
	Vars     map[string]any     `json:"vars"`
	URL      string             `json:"url"`
}

// Generate handles POST /api/seo/generate
func (h *SEOHandler) Generate(c *gin.Context) {
	var req seoGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result, err := h.seo.Generate(req.PageType, req.Vars)
	if err != nil {
		respondError(c, err)
		return
	}
	common.Success(c, result)
}

// GenerateSchema handles POST /api/seo/schema
func (h *SEOHandler) GenerateSchema(c *gin.Context) {
	var req seoGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	schema, err := h.seo.GenerateSchema(req.PageType, req.Vars, req.URL)
	if err != nil {
		respondError(c, err)
		return
	}
	common.Success(c, schema)
}

// Headings handles POST /api/seo/headings
func (h *SEOHandler) Headings(c *gin.Context) {
	var req seoGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	headings, err := h.seo.HeadingSuggestions(req.PageType, req.Vars)
	if err != nil {
		respondError(c, err)
		return
	}
	common.Success(c, headings)
}

// Validate handles POST /api/seo/validate
func (h *SEOHandler) Validate(c *gin.Context) {
	var req struct {
		PageType    domain.ContentType `json:"pageType" binding:"required"`
		Title       string             `json:"title"`
		Description string             `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	validation, err := h.seo.Validate(req.PageType, req.Title, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	common.Success(c, validation)
}

// ListRules handles GET /api/seo/rules
func (h *SEOHandler) ListRules(c *gin.Context) {
	rules, err := h.seo.ListRules()
	if err != nil {
		respondError(c, err)
		return
	}
	common.Success(c, rules)
}

// SaveRule handles PUT /api/seo/rules
func (h *SEOHandler) SaveRule(c *gin.Context) {
	var rule domain.SEORule
	if err := c.ShouldBindJSON(&rule); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.seo.SaveRule(&rule); err != nil {
		respondError(c, err)
		return
	}
	common.Success(c, rule)
}
