package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hostpicks/hostpicks-backend/internal/common"
	"github.com/hostpicks/hostpicks-backend/internal/domain"
	"github.com/hostpicks/hostpicks-backend/internal/middleware"
	"github.com/hostpicks/hostpicks-backend/internal/service"
)

// ContentHandler handles content record API endpoints
type ContentHandler struct {
	contents service.ContentService
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(contents service.ContentService) *ContentHandler {
	return &ContentHandler{contents: contents}
}

// listData shapes a content page as {contents[], total, ...} inside the
// response data field; admin clients read the list and total from data,
// not from meta.
func listData(result *service.ContentListResult) gin.H {
	return gin.H{
		"contents": result.Items,
		"total":    result.Total,
		"page":     result.Page,
		"pageSize": result.PageSize,
	}
}

// List handles GET /api/contents?page=&pageSize=
func (h *ContentHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	result, err := h.contents.List(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	common.Success(c, listData(result))
}

// Get handles GET /api/contents/:id
func (h *ContentHandler) Get(c *gin.Context) {
	record, err := h.contents.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	common.Success(c, record)
}

// GetBySlug handles GET /api/contents/slug/:slug
func (h *ContentHandler) GetBySlug(c *gin.Context) {
	record, err := h.contents.GetBySlug(c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	common.Success(c, record)
}

// Create handles POST /api/contents
func (h *ContentHandler) Create(c *gin.Context) {
	var req domain.CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	record, err := h.contents.Create(&req, middleware.GetUsername(c))
	if err != nil {
		respondError(c, err)
		return
	}
	common.Created(c, record)
}

// Update handles PUT /api/contents/:id
func (h *ContentHandler) Update(c *gin.Context) {
	var req domain.UpdateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	record, err := h.contents.Update(c.Param("id"), &req, middleware.GetUsername(c))
	if err != nil {
		respondError(c, err)
		return
	}
	common.Success(c, record)
}

// Delete handles DELETE /api/contents/:id
func (h *ContentHandler) Delete(c *gin.Context) {
	if err := h.contents.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	common.Success(c, gin.H{"deleted": true})
}

// Publish handles POST /api/contents/:id/publish
func (h *ContentHandler) Publish(c *gin.Context) {
	record, err := h.contents.Publish(c.Param("id"), middleware.GetUsername(c))
	if err != nil {
		middleware.CountPublish("error")
		respondError(c, err)
		return
	}
	middleware.CountPublish("ok")
	common.Success(c, record)
}

// BatchPublish handles POST /api/contents/batch-publish
func (h *ContentHandler) BatchPublish(c *gin.Context) {
	var req struct {
		IDs []string `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result := h.contents.BatchPublish(req.IDs, middleware.GetUsername(c))
	common.Success(c, result)
}

// Search handles GET /api/contents/search?q=&page=&pageSize=
func (h *ContentHandler) Search(c *gin.Context) {
	keyword := c.Query("q")
	if keyword == "" {
		common.ErrorResponse(c, http.StatusBadRequest, "Missing query parameter q", nil)
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	result, err := h.contents.Search(c.Request.Context(), keyword, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	common.Success(c, listData(result))
}
