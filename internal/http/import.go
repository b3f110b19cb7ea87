package http

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookmarks/internal/audit"
	"github.com/mrlokans/bookmarks/internal/importers"
	"github.com/mrlokans/bookmarks/internal/jobs"
)

// Default maximum file size for uploads (20 MB)
const defaultMaxImportFileSize = 20 * 1024 * 1024

// BookmarkStore is the store-of-record boundary the import pipeline needs:
// the existing dedup keys, and single-record creation.
type BookmarkStore interface {
	ListBookmarkBaseURLs(userID uint) ([]string, error)
	CreateBookmark(ctx context.Context, userID uint, bookmark importers.ParsedBookmark) error
}

type ImportController struct {
	store        BookmarkStore
	jobStore     jobs.Store
	runner       *jobs.Runner
	auditService *audit.Service
	maxFileSize  int64
}

func NewImportController(store BookmarkStore, jobStore jobs.Store, runner *jobs.Runner, auditService *audit.Service, maxFileSize int64) *ImportController {
	if maxFileSize <= 0 {
		maxFileSize = defaultMaxImportFileSize
	}
	return &ImportController{
		store:        store,
		jobStore:     jobStore,
		runner:       runner,
		auditService: auditService,
		maxFileSize:  maxFileSize,
	}
}

type ImportResponse struct {
	Success bool          `json:"success"`
	Error   string        `json:"error,omitempty"`
	Result  *ImportResult `json:"result,omitempty"`
	JobID   string        `json:"jobId,omitempty"`
}

// ImportResult reports the outcome of detection, parsing and dedup.
// Imported and Failed are present only when the import resolved
// synchronously; an asynchronous import reports them via the status endpoint.
type ImportResult struct {
	Format   importers.Format `json:"format"`
	Total    int              `json:"total"`
	Skipped  int              `json:"skipped"`
	Imported *int             `json:"imported,omitempty"`
	Failed   *int             `json:"failed,omitempty"`
}

// Import handles POST /api/import: detect the uploaded file's format, parse
// it, drop entries already in the store, and either finish synchronously
// (nothing new to create) or hand the rest to a background job and return
// its id for polling.
func (c *ImportController) Import(ctx *gin.Context) {
	userID := GetUserID(ctx)

	file, _, err := ctx.Request.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ImportResponse{Success: false, Error: "No file provided"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, c.maxFileSize+1))
	if err != nil {
		respondInternalError(ctx, err, "read import upload")
		return
	}
	if int64(len(data)) > c.maxFileSize {
		ctx.JSON(http.StatusBadRequest, ImportResponse{Success: false, Error: "File is too large"})
		return
	}

	content := string(data)
	if strings.TrimSpace(content) == "" {
		ctx.JSON(http.StatusBadRequest, ImportResponse{Success: false, Error: "File is empty"})
		return
	}

	format, ok := importers.Detect(content)
	if !ok {
		ctx.JSON(http.StatusBadRequest, ImportResponse{Success: false, Error: "Unrecognized file format"})
		return
	}

	parsed := importers.Parse(format, content)

	existing, err := c.store.ListBookmarkBaseURLs(userID)
	if err != nil {
		respondInternalError(ctx, err, "list existing bookmarks")
		return
	}

	fresh, skipped := importers.Partition(parsed, existing)

	result := &ImportResult{
		Format:  format,
		Total:   len(parsed),
		Skipped: skipped,
	}

	// Every entry was a duplicate (or nothing parsed): resolve within this
	// request, no job needed.
	if len(fresh) == 0 {
		zero := 0
		result.Imported = &zero
		result.Failed = &zero

		c.logImport(userID, format, result, "")
		ctx.JSON(http.StatusOK, ImportResponse{Success: true, Result: result})
		return
	}

	jobID := c.jobStore.Create(format, len(parsed), skipped)
	c.runner.Launch(jobID, userID, fresh)

	c.logImport(userID, format, result, jobID)
	ctx.JSON(http.StatusOK, ImportResponse{
		Success: true,
		Result:  result,
		JobID:   jobID,
	})
}

// Status handles GET /api/import/status/:jobId. Unknown ids and ids expired
// past the retention window are indistinguishable: both are 404.
func (c *ImportController) Status(ctx *gin.Context) {
	snapshot, ok := c.jobStore.Get(ctx.Param("jobId"))
	if !ok {
		respondNotFound(ctx, "Job not found or expired")
		return
	}

	ctx.JSON(http.StatusOK, snapshot)
}

// Formats handles GET /api/import/formats.
func (c *ImportController) Formats(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"formats": importers.Formats()})
}

func (c *ImportController) logImport(userID uint, format importers.Format, result *ImportResult, jobID string) {
	if c.auditService == nil {
		return
	}

	desc := "Imported " + string(format) + " export"
	if jobID != "" {
		desc += " (job " + jobID + ")"
	}
	c.auditService.LogImport(userID, string(format), desc, result.Total, result.Skipped, nil)
}
