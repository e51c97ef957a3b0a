// Package routes wires handlers onto the gin engine.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/hostpicks/hostpicks-backend/internal/handler"
	"github.com/hostpicks/hostpicks-backend/internal/middleware"
	"github.com/hostpicks/hostpicks-backend/pkg/jwt"
)

// Handlers bundles every handler the router needs.
type Handlers struct {
	Auth      *handler.AuthHandler
	Content   *handler.ContentHandler
	Template  *handler.TemplateHandler
	Version   *handler.VersionHandler
	SEO       *handler.SEOHandler
	Taxonomy  *handler.TaxonomyHandler
	Media     *handler.MediaHandler
	Analytics *handler.AnalyticsHandler
}

// Setup configures all API routes. Reads on contents are public (the
// site frontend consumes them); every mutation requires a session.
func Setup(router *gin.Engine, h *Handlers, jwtManager *jwt.Manager) {
	api := router.Group("/api")
	auth := middleware.JWTAuth(jwtManager)
	admin := middleware.RequireAdmin()

	// Auth
	authGroup := api.Group("/auth")
	authGroup.POST("/login", h.Auth.Login)
	authGroup.POST("/refresh", h.Auth.Refresh)
	authGroup.GET("/me", auth, h.Auth.Me)

	// Contents
	contents := api.Group("/contents")
	contents.GET("", h.Content.List)
	contents.GET("/search", h.Content.Search)
	contents.GET("/slug/:slug", h.Content.GetBySlug)
	contents.GET("/:id", h.Content.Get)
	contents.POST("", auth, h.Content.Create)
	contents.PUT("/:id", auth, h.Content.Update)
	contents.DELETE("/:id", auth, h.Content.Delete)
	contents.POST("/:id/publish", auth, h.Content.Publish)
	contents.POST("/batch-publish", auth, h.Content.BatchPublish)

	// Version history (nested under contents). Rollback is a POST on the
	// versions collection; /rollback is kept as an alias for older
	// admin builds.
	contents.GET("/:id/versions", auth, h.Version.List)
	contents.POST("/:id/versions", auth, h.Version.Rollback)
	contents.POST("/:id/rollback", auth, h.Version.Rollback)
	contents.GET("/:id/diff", auth, h.Version.Diff)
	api.GET("/versions/:versionId", auth, h.Version.Get)

	// Templates
	templates := api.Group("/templates", auth)
	templates.GET("", h.Template.List)
	templates.GET("/:id", h.Template.Get)
	templates.POST("", h.Template.Create)
	templates.DELETE("/:id", h.Template.Delete)
	templates.POST("/:id/preview", h.Template.Preview)
	templates.GET("/:id/instances", h.Template.ListInstances)

	// Template instances
	instances := api.Group("/template-instances", auth)
	instances.POST("", h.Template.CreateInstance)
	instances.POST("/:id", h.Template.Materialize)

	// SEO generator
	seo := api.Group("/seo", auth)
	seo.POST("/generate", h.SEO.Generate)
	seo.POST("/schema", h.SEO.GenerateSchema)
	seo.POST("/headings", h.SEO.Headings)
	seo.POST("/validate", h.SEO.Validate)
	seo.GET("/rules", h.SEO.ListRules)
	seo.PUT("/rules", admin, h.SEO.SaveRule)

	// Taxonomy
	categories := api.Group("/categories")
	categories.GET("", h.Taxonomy.ListCategories)
	categories.POST("", auth, h.Taxonomy.CreateCategory)
	categories.DELETE("/:id", auth, admin, h.Taxonomy.DeleteCategory)

	tags := api.Group("/tags")
	tags.GET("", h.Taxonomy.ListTags)
	tags.POST("", auth, h.Taxonomy.CreateTag)
	tags.DELETE("/:id", auth, admin, h.Taxonomy.DeleteTag)

	// Media library
	media := api.Group("/media", auth)
	media.POST("", h.Media.Upload)
	media.GET("", h.Media.List)
	media.GET("/:id", h.Media.Get)
	media.DELETE("/:id", h.Media.Delete)

	// Analytics
	analytics := api.Group("/analytics")
	analytics.POST("/track", h.Analytics.Track)
	analytics.GET("/contents/:id/views", auth, h.Analytics.ViewsByDay)
	analytics.GET("/top", auth, h.Analytics.TopContents)
}
