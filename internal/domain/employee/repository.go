package employee

import "context"

// Repository defines data access for the employee registry.
type Repository interface {
	// GetByBiometricID retrieves an employee by the device-assigned id.
	GetByBiometricID(ctx context.Context, biometricID string) (Employee, error)

	// List retrieves all employees that are not soft-deleted.
	List(ctx context.Context) ([]Employee, error)

	// UpdateSchedule sets the default schedule, rest day and schedule group
	// for one employee.
	UpdateSchedule(ctx context.Context, biometricID string, req UpdateScheduleRequest) error
}
