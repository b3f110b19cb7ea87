package http

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookmarks/internal/entities"
	"github.com/mrlokans/bookmarks/internal/tasks"
)

// TagStore provides tag listing and orphan cleanup.
type TagStore interface {
	GetAllTags(userID uint) ([]entities.Tag, error)
	DeleteOrphanTags() (int64, error)
}

type TagsController struct {
	store      TagStore
	taskClient *tasks.Client
}

func NewTagsController(store TagStore, taskClient *tasks.Client) *TagsController {
	return &TagsController{
		store:      store,
		taskClient: taskClient,
	}
}

// GetAllTags handles GET /api/tags.
func (tc *TagsController) GetAllTags(c *gin.Context) {
	userID := GetUserID(c)

	tags, err := tc.store.GetAllTags(userID)
	if err != nil {
		respondInternalError(c, err, "list tags")
		return
	}

	c.JSON(http.StatusOK, gin.H{"tags": tags})
}

// CleanupOrphanTags removes all tags that have no associated bookmarks.
// Requires the task queue to be enabled.
// POST /api/admin/tags/cleanup
func (tc *TagsController) CleanupOrphanTags(c *gin.Context) {
	if tc.taskClient == nil {
		respondError(c, http.StatusServiceUnavailable, "task queue is not enabled")
		return
	}

	if _, err := tc.taskClient.Add(tasks.CleanupOrphanTagsTask{}).Save(); err != nil {
		log.Printf("Failed to enqueue cleanup task: %v", err)
		respondInternalError(c, err, "enqueue cleanup task")
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"message": "cleanup task enqueued"})
}
