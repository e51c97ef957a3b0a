package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hostpicks/hostpicks-backend/internal/common"
	"github.com/hostpicks/hostpicks-backend/pkg/analytics"
	"github.com/rs/zerolog/log"
)

// AnalyticsHandler handles page-view tracking and traffic summaries
type AnalyticsHandler struct {
	client *analytics.Client
}

// NewAnalyticsHandler creates a new AnalyticsHandler. client may be nil
// when ClickHouse is not configured.
func NewAnalyticsHandler(client *analytics.Client) *AnalyticsHandler {
	return &AnalyticsHandler{client: client}
}

// Track handles POST /api/analytics/track
func (h *AnalyticsHandler) Track(c *gin.Context) {
	var view analytics.PageView
	if err := c.ShouldBindJSON(&view); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if view.UserAgent == "" {
		view.UserAgent = c.Request.UserAgent()
	}

	if err := h.client.TrackPageView(c.Request.Context(), view); err != nil {
		// Tracking is fire-and-forget from the caller's perspective.
		log.Warn().Err(err).Msg("page view tracking failed")
	}
	common.Success(c, gin.H{"tracked": true})
}

// ViewsByDay handles GET /api/analytics/contents/:id/views?days=
func (h *AnalyticsHandler) ViewsByDay(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
	if days < 1 || days > 365 {
		days = 30
	}

	counts, err := h.client.ViewsByDay(c.Request.Context(), c.Param("id"), days)
	if err != nil {
		respondError(c, err)
		return
	}
	common.Success(c, counts)
}

// TopContents handles GET /api/analytics/top?days=&limit=
func (h *AnalyticsHandler) TopContents(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if days < 1 || days > 365 {
		days = 30
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	totals, err := h.client.TopContents(c.Request.Context(), days, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	common.Success(c, totals)
}
