package attendance

import (
	"sync"
	"time"

	"github.com/waspernest/pe-bms-node/internal/domain/attendance"
)

// ProgressTracker keeps one progress entry per import job, keyed by job
// id. Concurrent imports each see only their own counters.
type ProgressTracker struct {
	mu        sync.RWMutex
	jobs      map[string]*attendance.JobProgress
	retention time.Duration
}

func NewProgressTracker(retention time.Duration) *ProgressTracker {
	return &ProgressTracker{
		jobs:      make(map[string]*attendance.JobProgress),
		retention: retention,
	}
}

// Create registers a new job in the created state.
func (t *ProgressTracker) Create(jobID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.jobs[jobID] = &attendance.JobProgress{
		JobID:     jobID,
		State:     attendance.JobCreated,
		StartedAt: time.Now(),
	}
}

// Start moves a job to running with a known total.
func (t *ProgressTracker) Start(jobID string, total int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if job, ok := t.jobs[jobID]; ok {
		job.State = attendance.JobRunning
		job.Total = total
	}
}

// Advance bumps the processed counter.
func (t *ProgressTracker) Advance(jobID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if job, ok := t.jobs[jobID]; ok {
		job.Processed++
	}
}

// Complete marks a job finished with a closing message.
func (t *ProgressTracker) Complete(jobID, message string) {
	t.finish(jobID, attendance.JobCompleted, message)
}

// Fail marks a job failed.
func (t *ProgressTracker) Fail(jobID, message string) {
	t.finish(jobID, attendance.JobFailed, message)
}

func (t *ProgressTracker) finish(jobID string, state attendance.JobState, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if job, ok := t.jobs[jobID]; ok {
		now := time.Now()
		job.State = state
		job.Message = message
		job.FinishedAt = &now
	}
}

// Get returns a copy of the job's progress.
func (t *ProgressTracker) Get(jobID string) (attendance.JobProgress, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	job, ok := t.jobs[jobID]
	if !ok {
		return attendance.JobProgress{}, attendance.ErrJobNotFound
	}
	return *job, nil
}

// PurgeExpired drops finished jobs older than the retention window and
// returns how many were removed.
func (t *ProgressTracker) PurgeExpired() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	cutoff := time.Now().Add(-t.retention)
	removed := 0
	for id, job := range t.jobs {
		if job.FinishedAt != nil && job.FinishedAt.Before(cutoff) {
			delete(t.jobs, id)
			removed++
		}
	}
	return removed
}
