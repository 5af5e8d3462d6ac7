package employee

import "context"

// Service defines the employee directory operations.
type Service interface {
	// Get retrieves one employee by biometric id.
	Get(ctx context.Context, biometricID string) (EmployeeResponse, error)

	// List retrieves the full directory.
	List(ctx context.Context) ([]EmployeeResponse, error)

	// UpdateSchedule changes an employee's default schedule, rest day, group
	// membership or reliever flag.
	UpdateSchedule(ctx context.Context, biometricID string, req UpdateScheduleRequest) (EmployeeResponse, error)
}
