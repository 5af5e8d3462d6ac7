package attendance

import (
	"context"
)

// Service defines the punch reconciliation and bulk import operations.
type Service interface {
	// Reconcile consumes one normalized punch and either opens a new record
	// (time_in) or closes the open one (time_out). Calls for the same user
	// are serialized internally.
	Reconcile(ctx context.Context, req PunchRequest) (PunchResult, error)

	// ImportRows persists a batch of normalized rows under the given job id.
	// It never aborts on a single bad row; every row is classified into
	// exactly one of inserted/skipped/error.
	ImportRows(ctx context.Context, jobID string, rows []ImportRow) (ImportResult, error)

	// Progress reports the state of an import job by id.
	Progress(jobID string) (JobProgress, error)

	// List retrieves attendance records for the admin table view.
	List(ctx context.Context, filter ListFilter) (ListResponse, error)
}
