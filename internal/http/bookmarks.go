package http

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookmarks/internal/audit"
	"github.com/mrlokans/bookmarks/internal/entities"
	"github.com/mrlokans/bookmarks/internal/importers"
	"github.com/mrlokans/bookmarks/internal/tasks"
)

// BookmarksStore is the full bookmark CRUD surface the controller needs.
type BookmarksStore interface {
	BookmarkStore
	ListBookmarks(userID uint, limit, offset int) ([]entities.Bookmark, int64, error)
	DeleteBookmark(userID, id uint) error
}

type BookmarksController struct {
	store        BookmarksStore
	auditService *audit.Service
	taskClient   *tasks.Client
}

func NewBookmarksController(store BookmarksStore, auditService *audit.Service, taskClient *tasks.Client) *BookmarksController {
	return &BookmarksController{
		store:        store,
		auditService: auditService,
		taskClient:   taskClient,
	}
}

// ListBookmarks handles GET /api/bookmarks.
func (bc *BookmarksController) ListBookmarks(c *gin.Context) {
	userID := GetUserID(c)
	limit, offset := parsePagination(c)

	bookmarks, total, err := bc.store.ListBookmarks(userID, limit, offset)
	if err != nil {
		respondInternalError(c, err, "list bookmarks")
		return
	}

	c.JSON(http.StatusOK, PaginatedResponse{
		Data:    bookmarks,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: int64(offset+len(bookmarks)) < total,
	})
}

type createBookmarkRequest struct {
	URL         string   `json:"url" binding:"required"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// CreateBookmark handles POST /api/bookmarks - the store collaborator's
// single-record create operation, exposed directly.
func (bc *BookmarksController) CreateBookmark(c *gin.Context) {
	userID := GetUserID(c)

	var req createBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "url is required")
		return
	}

	if !importers.IsValidBookmarkURL(req.URL) {
		respondBadRequest(c, "url must be an absolute HTTP or HTTPS URL")
		return
	}

	parsed := importers.ParsedBookmark{
		URL:         req.URL,
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}

	if err := bc.store.CreateBookmark(context.Background(), userID, parsed); err != nil {
		respondInternalError(c, err, "create bookmark")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "bookmark created"})
}

// DeleteBookmark handles DELETE /api/bookmarks/:id. Deleting a bookmark can
// orphan its tags, so a cleanup task is enqueued afterwards.
func (bc *BookmarksController) DeleteBookmark(c *gin.Context) {
	userID := GetUserID(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := bc.store.DeleteBookmark(userID, id); err != nil {
		respondNotFound(c, "bookmark not found")
		return
	}

	if bc.auditService != nil {
		bc.auditService.LogDelete(userID, id, c.Param("id"))
	}

	if bc.taskClient != nil {
		if _, err := bc.taskClient.Add(tasks.CleanupOrphanTagsTask{}).Save(); err != nil {
			log.Printf("Failed to enqueue cleanup task: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "bookmark deleted"})
}
