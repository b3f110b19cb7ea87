// Package jobs tracks the asynchronous execution of bookmark imports.
//
// An import that has at least one non-duplicate entry becomes a Job: a
// background worker creates the records one by one while status-polling
// clients read a consistent snapshot of its progress. Jobs are ephemeral -
// they live in process memory and expire a bounded time after reaching a
// terminal state. A process restart loses them; the status endpoint then
// reports the same 404 it uses for ids that never existed.
package jobs

import (
	"errors"
	"math"
	"time"

	"github.com/mrlokans/bookmarks/internal/importers"
)

// ErrStoreUnavailable marks a creation failure caused by losing the
// underlying bookmark store. A creator returning an error wrapping this
// sentinel aborts the whole job; any other error only fails the one entry.
var ErrStoreUnavailable = errors.New("bookmark store unavailable")

type Status string

const (
	StatusProcessing Status = "processing"
	StatusComplete   Status = "complete"
	StatusFailed     Status = "failed"
)

// Terminal reports whether a job in this status will never change again.
func (s Status) Terminal() bool {
	return s == StatusComplete || s == StatusFailed
}

// Job is the mutable per-import progress record. Total and Skipped are fixed
// at creation; Imported and Failed only ever increase, and
// Imported+Failed <= Total-Skipped holds at all times.
type Job struct {
	ID       string
	Format   importers.Format
	Status   Status
	Total    int
	Skipped  int
	Imported int
	Failed   int

	finishedAt time.Time
}

// Snapshot is a consistent read-only view of a job, shaped for the status
// endpoint's JSON response.
type Snapshot struct {
	ID       string           `json:"id"`
	Status   Status           `json:"status"`
	Format   importers.Format `json:"format"`
	Total    int              `json:"total"`
	Skipped  int              `json:"skipped"`
	Imported int              `json:"imported"`
	Failed   int              `json:"failed"`
	Progress int              `json:"progress"`
}

func (j *Job) snapshot() Snapshot {
	return Snapshot{
		ID:       j.ID,
		Status:   j.Status,
		Format:   j.Format,
		Total:    j.Total,
		Skipped:  j.Skipped,
		Imported: j.Imported,
		Failed:   j.Failed,
		Progress: progress(j.Imported, j.Failed, j.Total, j.Skipped),
	}
}

// progress is round(100 * (imported+failed) / (total-skipped)), clamped to
// 100 when there is nothing to process.
func progress(imported, failed, total, skipped int) int {
	remaining := total - skipped
	if remaining <= 0 {
		return 100
	}
	return int(math.Round(100 * float64(imported+failed) / float64(remaining)))
}
