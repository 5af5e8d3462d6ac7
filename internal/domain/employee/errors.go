package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrBiometricIDExists   = errors.New("biometric id already registered")
	ErrInvalidScheduleTime = errors.New("schedule time must be in HH:MM format")
)
