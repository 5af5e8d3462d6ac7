package schedule

import "context"

// Service defines schedule group management and effective-schedule
// resolution.
type Service interface {
	// Resolve determines the effective schedule for a user on a date:
	// group assignment for that exact date wins, then the employee's own
	// default, then the system fallback.
	Resolve(ctx context.Context, biometricID, date string) (Resolved, error)

	// CreateGroup creates a named schedule group.
	CreateGroup(ctx context.Context, req CreateGroupRequest) (GroupResponse, error)

	// ListGroups retrieves all schedule groups.
	ListGroups(ctx context.Context) ([]GroupResponse, error)

	// DeleteGroup removes a group and its assignments.
	DeleteGroup(ctx context.Context, id int64) error

	// SetAssignment creates or replaces the work time for a group on a date.
	SetAssignment(ctx context.Context, req SetAssignmentRequest) (AssignmentResponse, error)

	// MonthView renders the group's assignments over a full calendar month.
	MonthView(ctx context.Context, groupID int64, year, month int) ([]CalendarDay, error)
}
