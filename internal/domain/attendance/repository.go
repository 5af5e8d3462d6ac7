package attendance

import (
	"context"
)

// Repository defines data access for attendance records. The engine never
// deletes records; deletion is an administrative concern outside this
// contract.
type Repository interface {
	// GetForUserDate retrieves every record for (biometricID, logDate)
	// ordered by time_in ascending.
	GetForUserDate(ctx context.Context, biometricID string, logDate string) ([]Record, error)

	// Insert creates a new record and returns it with ID and timestamps set.
	Insert(ctx context.Context, record Record) (Record, error)

	// Close sets time_out on an open record. Origin is updated so a device
	// punch closing a manual record is visible in the trail.
	Close(ctx context.Context, id int64, timeOut string, origin Origin) error

	// GetByID retrieves a single record with employee names joined.
	GetByID(ctx context.Context, id int64) (Record, error)

	// List retrieves records with filters and pagination.
	List(ctx context.Context, filter ListFilter) ([]Record, int64, error)

	// GetOpenBefore retrieves open records whose log date is strictly
	// before cutoffDate. Used by the stale-session closer.
	GetOpenBefore(ctx context.Context, cutoffDate string) ([]Record, error)
}
