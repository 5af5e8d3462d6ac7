package schedule

import "context"

// Repository defines data access for schedule groups and their per-date
// assignments.
type Repository interface {
	CreateGroup(ctx context.Context, name string) (Group, error)
	ListGroups(ctx context.Context) ([]Group, error)
	GetGroup(ctx context.Context, id int64) (Group, error)
	DeleteGroup(ctx context.Context, id int64) error

	// GetAssignment retrieves the assignment for a group on an exact date,
	// or nil when none exists.
	GetAssignment(ctx context.Context, groupID int64, date string) (*Assignment, error)

	// ListAssignments retrieves assignments for a group within [startDate,
	// endDate] ordered by date.
	ListAssignments(ctx context.Context, groupID int64, startDate, endDate string) ([]Assignment, error)

	// UpsertAssignment creates or replaces the assignment for (groupID,
	// date).
	UpsertAssignment(ctx context.Context, a Assignment) (Assignment, error)
}
