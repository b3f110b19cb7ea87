package jobs

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/mrlokans/bookmarks/internal/importers"
)

// BookmarkCreator creates one bookmark record in the store of record.
// It must tolerate redundant creates: a file that contains the same URL
// twice produces two create calls within one job run.
type BookmarkCreator interface {
	CreateBookmark(ctx context.Context, userID uint, bookmark importers.ParsedBookmark) error
}

// Runner executes import jobs in the background, decoupled from the HTTP
// request that started them. Entries are processed sequentially with a pause
// between batches so a rate-limited store is not hammered.
type Runner struct {
	store      Store
	creator    BookmarkCreator
	batchSize  int
	batchDelay time.Duration
}

func NewRunner(store Store, creator BookmarkCreator, batchSize int, batchDelay time.Duration) *Runner {
	if batchSize <= 0 {
		batchSize = 10
	}
	return &Runner{
		store:      store,
		creator:    creator,
		batchSize:  batchSize,
		batchDelay: batchDelay,
	}
}

// Launch starts processing the entries for an already-created job and
// returns immediately. The worker owns the job's writes from here on.
func (r *Runner) Launch(jobID string, userID uint, entries []importers.ParsedBookmark) {
	go r.process(jobID, userID, entries)
}

func (r *Runner) process(jobID string, userID uint, entries []importers.ParsedBookmark) {
	ctx := context.Background()
	log.Printf("[IMPORT] Job %s started: %d entries to create", jobID, len(entries))

	for i, entry := range entries {
		if i > 0 && r.batchDelay > 0 && i%r.batchSize == 0 {
			time.Sleep(r.batchDelay)
		}

		err := r.creator.CreateBookmark(ctx, userID, entry)
		if errors.Is(err, ErrStoreUnavailable) {
			// Nothing further can make progress; freeze the counts.
			log.Printf("[IMPORT] Job %s aborted: %v", jobID, err)
			r.store.Finish(jobID, StatusFailed)
			return
		}
		if err != nil {
			log.Printf("[IMPORT] Job %s: failed to create %s: %v", jobID, entry.URL, err)
		}
		r.store.UpdateProgress(jobID, err == nil)
	}

	r.store.Finish(jobID, StatusComplete)
	log.Printf("[IMPORT] Job %s complete", jobID)
}
