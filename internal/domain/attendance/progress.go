package attendance

import "time"

// JobState is the lifecycle of an import job.
type JobState string

const (
	JobCreated   JobState = "created"
	JobRunning   JobState = "running"
	JobCompleted JobState = "completed"
	JobFailed    JobState = "failed"
)

// JobProgress is a point-in-time snapshot of one import job. Each job has
// its own entry keyed by id, so concurrent imports never clobber each
// other's status.
type JobProgress struct {
	JobID      string     `json:"job_id"`
	State      JobState   `json:"state"`
	Total      int        `json:"total"`
	Processed  int        `json:"processed"`
	Message    string     `json:"message,omitempty"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

// Percent returns completion as a whole percentage.
func (p JobProgress) Percent() int {
	if p.Total == 0 {
		return 0
	}
	return p.Processed * 100 / p.Total
}
