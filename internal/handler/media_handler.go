package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hostpicks/hostpicks-backend/internal/common"
	"github.com/hostpicks/hostpicks-backend/internal/middleware"
	"github.com/hostpicks/hostpicks-backend/internal/service"
)

// maxUploadSize caps media uploads at 20 MiB.
const maxUploadSize = 20 << 20

// MediaHandler handles media library API endpoints
type MediaHandler struct {
	media service.MediaService
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(media service.MediaService) *MediaHandler {
	return &MediaHandler{media: media}
}

// Upload handles POST /api/media (multipart form, field "file")
func (h *MediaHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Missing or oversized file", err)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	item, err := h.media.Upload(c.Request.Context(), header.Filename, file, contentType, header.Size, middleware.GetUsername(c))
	if err != nil {
		respondError(c, err)
		return
	}
	common.Created(c, item)
}

// List handles GET /api/media?page=&pageSize=
func (h *MediaHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	items, total, err := h.media.List(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	common.SuccessWithMeta(c, items, common.NewMeta(page, pageSize, total))
}

// Get handles GET /api/media/:id
func (h *MediaHandler) Get(c *gin.Context) {
	item, err := h.media.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	common.Success(c, item)
}

// Delete handles DELETE /api/media/:id
func (h *MediaHandler) Delete(c *gin.Context) {
	if err := h.media.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	common.Success(c, gin.H{"deleted": true})
}
