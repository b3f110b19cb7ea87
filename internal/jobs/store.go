package jobs

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mrlokans/bookmarks/internal/importers"
)

// Store holds import job state. One writer (the job's worker) and any number
// of concurrent readers (status pollers) may use it at the same time.
type Store interface {
	// Create registers a new job in the processing state and returns its id.
	Create(format importers.Format, total, skipped int) string

	// Get returns a consistent snapshot of a job. ok is false for unknown
	// ids and for jobs expired past the retention window alike - callers
	// cannot tell the two apart.
	Get(id string) (Snapshot, bool)

	// UpdateProgress records the outcome of one processed entry.
	UpdateProgress(id string, succeeded bool)

	// Finish moves a job to a terminal status, freezing its counts and
	// starting the retention clock.
	Finish(id string, status Status)
}

// MemoryStore is the process-wide in-memory Store. Jobs are non-durable by
// contract: a restart loses all in-flight and recently finished records.
type MemoryStore struct {
	mu        sync.RWMutex
	jobs      map[string]*Job
	retention time.Duration
}

// DefaultRetention is how long terminal jobs remain pollable.
const DefaultRetention = time.Hour

func NewMemoryStore(retention time.Duration) *MemoryStore {
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &MemoryStore{
		jobs:      make(map[string]*Job),
		retention: retention,
	}
}

func (s *MemoryStore) Create(format importers.Format, total, skipped int) string {
	job := &Job{
		ID:      uuid.New().String(),
		Format:  format,
		Status:  StatusProcessing,
		Total:   total,
		Skipped: skipped,
	}

	s.mu.Lock()
	s.jobs[job.ID] = job
	s.mu.Unlock()

	return job.ID
}

func (s *MemoryStore) Get(id string) (Snapshot, bool) {
	s.mu.RLock()
	job, ok := s.jobs[id]
	if ok && s.expired(job, time.Now()) {
		ok = false
	}
	var snap Snapshot
	if ok {
		snap = job.snapshot()
	}
	s.mu.RUnlock()

	return snap, ok
}

func (s *MemoryStore) UpdateProgress(id string, succeeded bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok || job.Status.Terminal() {
		return
	}

	if succeeded {
		job.Imported++
	} else {
		job.Failed++
	}
}

func (s *MemoryStore) Finish(id string, status Status) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok || job.Status.Terminal() {
		return
	}

	job.Status = status
	job.finishedAt = time.Now()
}

// PurgeExpired removes terminal jobs past the retention window and returns
// how many were dropped. Called on a schedule; Get also hides expired jobs
// between sweeps.
func (s *MemoryStore) PurgeExpired() int {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	purged := 0
	for id, job := range s.jobs {
		if s.expired(job, now) {
			delete(s.jobs, id)
			purged++
		}
	}
	return purged
}

func (s *MemoryStore) expired(job *Job, now time.Time) bool {
	return job.Status.Terminal() && now.Sub(job.finishedAt) > s.retention
}

// Compile-time interface check
var _ Store = (*MemoryStore)(nil)
