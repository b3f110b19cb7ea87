package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Single-user mode: every request acts as the default user.
	router.Use(func(c *gin.Context) {
		c.Set(ContextKeyUserID, DefaultUserID)
		c.Next()
	})

	// Create controllers with appropriate interfaces
	health := NewHealthController(cfg.Database, cfg.Version)
	importController := NewImportController(cfg.BookmarkStore, cfg.JobStore, cfg.JobRunner, cfg.Auditor, cfg.ImportMaxFileSize)
	bookmarksController := NewBookmarksController(cfg.BookmarkStore, cfg.Auditor, cfg.TaskClient)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Import endpoints
	router.POST("/api/import", importController.Import)
	router.GET("/api/import/status/:jobId", importController.Status)
	router.GET("/api/import/formats", importController.Formats)

	// Bookmark endpoints
	router.GET("/api/bookmarks", bookmarksController.ListBookmarks)
	router.POST("/api/bookmarks", bookmarksController.CreateBookmark)
	router.DELETE("/api/bookmarks/:id", bookmarksController.DeleteBookmark)

	// Tag endpoints
	if cfg.TagStore != nil {
		tagsController := NewTagsController(cfg.TagStore, cfg.TaskClient)
		router.GET("/api/tags", tagsController.GetAllTags)
		router.POST("/api/admin/tags/cleanup", tagsController.CleanupOrphanTags)
	}

	// Audit endpoints
	if cfg.Auditor != nil {
		auditController := NewAuditController(cfg.Auditor)
		router.GET("/api/audit", auditController.GetAuditEvents)
	}

	return router
}
