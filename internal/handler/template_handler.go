package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hostpicks/hostpicks-backend/internal/common"
	"github.com/hostpicks/hostpicks-backend/internal/domain"
	"github.com/hostpicks/hostpicks-backend/internal/middleware"
	"github.com/hostpicks/hostpicks-backend/internal/service"
)

// TemplateHandler handles template and template-instance API endpoints
type TemplateHandler struct {
	templates service.TemplateService
}

// NewTemplateHandler creates a new TemplateHandler
func NewTemplateHandler(templates service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templates: templates}
}

// List handles GET /api/templates
func (h *TemplateHandler) List(c *gin.Context) {
	templates, err := h.templates.List()
	if err != nil {
		respondError(c, err)
		return
	}
	common.Success(c, templates)
}

// Get handles GET /api/templates/:id
func (h *TemplateHandler) Get(c *gin.Context) {
	template, err := h.templates.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	common.Success(c, template)
}

// Create handles POST /api/templates
func (h *TemplateHandler) Create(c *gin.Context) {
	var req domain.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	template, err := h.templates.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	common.Created(c, template)
}

// Delete handles DELETE /api/templates/:id
func (h *TemplateHandler) Delete(c *gin.Context) {
	if err := h.templates.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	common.Success(c, gin.H{"deleted": true})
}

// Preview handles POST /api/templates/:id/preview
func (h *TemplateHandler) Preview(c *gin.Context) {
	var req domain.PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	fields, err := h.templates.Preview(c.Param("id"), req.Variables)
	if err != nil {
		respondError(c, err)
		return
	}
	middleware.CountTemplateRender()
	common.Success(c, fields)
}

// ListInstances handles GET /api/templates/:id/instances
func (h *TemplateHandler) ListInstances(c *gin.Context) {
	instances, err := h.templates.ListInstances(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	common.Success(c, instances)
}

// CreateInstance handles POST /api/template-instances
func (h *TemplateHandler) CreateInstance(c *gin.Context) {
	var req domain.CreateInstanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	instance, err := h.templates.CreateInstance(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	common.Created(c, instance)
}

// Materialize handles POST /api/template-instances/:id
func (h *TemplateHandler) Materialize(c *gin.Context) {
	record, err := h.templates.Materialize(c.Param("id"), middleware.GetUsername(c))
	if err != nil {
		respondError(c, err)
		return
	}
	common.Created(c, record)
}
