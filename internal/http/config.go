package http

import (
	"github.com/mrlokans/bookmarks/internal/audit"
	"github.com/mrlokans/bookmarks/internal/database"
	"github.com/mrlokans/bookmarks/internal/jobs"
	"github.com/mrlokans/bookmarks/internal/tasks"
)

// RouterConfig holds all dependencies needed to construct the HTTP router.
// Using a config struct improves testability and reduces parameter count.
type RouterConfig struct {
	// Database is the main application database, used for health checks.
	Database *database.Database

	// BookmarkStore is the store of record for bookmarks.
	BookmarkStore BookmarksStore

	// TagStore provides tag listing and cleanup.
	TagStore TagStore

	// JobStore tracks in-flight and recently finished import jobs.
	JobStore jobs.Store

	// JobRunner executes import jobs in the background.
	JobRunner *jobs.Runner

	// Auditor records import/delete events. Optional.
	Auditor *audit.Service

	// TaskClient is the maintenance task queue. Optional.
	TaskClient *tasks.Client

	// ImportMaxFileSize caps upload size in bytes.
	ImportMaxFileSize int64

	// Version is reported by the health endpoint.
	Version string
}
