package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hostpicks/hostpicks-backend/internal/handler"
	"github.com/hostpicks/hostpicks-backend/pkg/jwt"
	"github.com/stretchr/testify/assert"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(gin.Recovery())
	h := &Handlers{
		Auth:      handler.NewAuthHandler(nil),
		Content:   handler.NewContentHandler(nil),
		Template:  handler.NewTemplateHandler(nil),
		Version:   handler.NewVersionHandler(nil),
		SEO:       handler.NewSEOHandler(nil),
		Taxonomy:  handler.NewTaxonomyHandler(nil),
		Media:     handler.NewMediaHandler(nil),
		Analytics: handler.NewAnalyticsHandler(nil),
	}
	Setup(router, h, jwt.NewManager("test-secret", time.Minute, time.Hour))
	return router
}

// Unauthenticated mutations must be turned away by the auth middleware
// (401), which also proves the route itself is registered (not 404).
func TestRoutes_ProtectedRoutesRegistered(t *testing.T) {
	router := testRouter()

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/contents/c1/versions"},
		{http.MethodPost, "/api/contents/c1/rollback"},
		{http.MethodGet, "/api/contents/c1/versions"},
		{http.MethodGet, "/api/templates/t1/instances"},
		{http.MethodPost, "/api/contents"},
		{http.MethodPost, "/api/contents/batch-publish"},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(tc.method, tc.path, strings.NewReader("{}"))
		router.ServeHTTP(w, req)
		assert.Equalf(t, http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.path)
	}
}

func TestRoutes_PublicReadsRegistered(t *testing.T) {
	router := testRouter()

	// Public reads pass the router without a token; anything but 404
	// means the route exists.
	for _, path := range []string{"/api/contents", "/api/categories", "/api/tags"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		router.ServeHTTP(w, req)
		assert.NotEqualf(t, http.StatusNotFound, w.Code, "GET %s", path)
	}
}
