package response

import (
	"errors"
	"net/http"

	"github.com/waspernest/pe-bms-node/internal/domain/attendance"
	"github.com/waspernest/pe-bms-node/internal/domain/employee"
	"github.com/waspernest/pe-bms-node/internal/domain/schedule"
	"github.com/waspernest/pe-bms-node/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrPunchBeforeTimeIn):
		Conflict(w, "Punch precedes the open record's time in")
	case errors.Is(err, attendance.ErrPunchBeforeLastClose):
		Conflict(w, "Punch precedes the last closed record's time out")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrJobNotFound):
		NotFound(w, "Import job not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrBiometricIDExists):
		Conflict(w, "Biometric id already registered")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrGroupNotFound):
		NotFound(w, "Schedule group not found")
	case errors.Is(err, schedule.ErrGroupNameExists):
		Conflict(w, "Schedule group name already exists")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
