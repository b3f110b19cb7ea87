package jobs

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookmarks/internal/importers"
)

// fakeCreator records created bookmarks and fails the URLs it is told to.
type fakeCreator struct {
	mu      sync.Mutex
	created []string
	failOn  map[string]error
}

func newFakeCreator() *fakeCreator {
	return &fakeCreator{failOn: make(map[string]error)}
}

func (f *fakeCreator) CreateBookmark(_ context.Context, _ uint, bookmark importers.ParsedBookmark) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err, ok := f.failOn[bookmark.URL]; ok {
		return err
	}
	f.created = append(f.created, bookmark.URL)
	return nil
}

func (f *fakeCreator) createdCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.created)
}

func entriesFixture(n int) []importers.ParsedBookmark {
	entries := make([]importers.ParsedBookmark, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, importers.ParsedBookmark{
			URL: fmt.Sprintf("https://example.com/%d", i),
		})
	}
	return entries
}

func waitForTerminal(t *testing.T, store Store, jobID string) Snapshot {
	t.Helper()

	var snap Snapshot
	require.Eventually(t, func() bool {
		s, ok := store.Get(jobID)
		if !ok || !s.Status.Terminal() {
			return false
		}
		snap = s
		return true
	}, 2*time.Second, 5*time.Millisecond)
	return snap
}

func TestRunnerCompletesJob(t *testing.T) {
	store := NewMemoryStore(DefaultRetention)
	creator := newFakeCreator()
	runner := NewRunner(store, creator, 10, 0)

	entries := entriesFixture(4)
	jobID := store.Create(importers.FormatPocket, 4, 0)
	runner.Launch(jobID, 0, entries)

	snap := waitForTerminal(t, store, jobID)
	assert.Equal(t, StatusComplete, snap.Status)
	assert.Equal(t, 4, snap.Imported)
	assert.Zero(t, snap.Failed)
	assert.Equal(t, 100, snap.Progress)
	assert.Equal(t, 4, creator.createdCount())
}

func TestRunnerCountsPerEntryFailures(t *testing.T) {
	store := NewMemoryStore(DefaultRetention)
	creator := newFakeCreator()
	creator.failOn["https://example.com/1"] = errors.New("constraint violation")
	runner := NewRunner(store, creator, 10, 0)

	entries := entriesFixture(3)
	jobID := store.Create(importers.FormatPinboard, 3, 0)
	runner.Launch(jobID, 0, entries)

	snap := waitForTerminal(t, store, jobID)
	assert.Equal(t, StatusComplete, snap.Status)
	assert.Equal(t, 2, snap.Imported)
	assert.Equal(t, 1, snap.Failed)
	assert.Equal(t, 100, snap.Progress)
}

func TestRunnerAbortsWhenStoreUnavailable(t *testing.T) {
	store := NewMemoryStore(DefaultRetention)
	creator := newFakeCreator()
	creator.failOn["https://example.com/2"] = fmt.Errorf("insert: %w", ErrStoreUnavailable)
	runner := NewRunner(store, creator, 10, 0)

	entries := entriesFixture(5)
	jobID := store.Create(importers.FormatNetscape, 5, 0)
	runner.Launch(jobID, 0, entries)

	snap := waitForTerminal(t, store, jobID)
	assert.Equal(t, StatusFailed, snap.Status)
	// Counts freeze at the point of the fatal error.
	assert.Equal(t, 2, snap.Imported)
	assert.Zero(t, snap.Failed)
	assert.Equal(t, 2, creator.createdCount())
}
