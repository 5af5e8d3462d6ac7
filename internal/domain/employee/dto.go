package employee

import (
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/waspernest/pe-bms-node/internal/pkg/validator"
)

var clockRegex = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

// UpdateScheduleRequest changes the scheduling fields of one employee.
// Nil fields are left untouched.
type UpdateScheduleRequest struct {
	ScheduleStart   *string `json:"schedule_start,omitempty"` // HH:MM
	ScheduleEnd     *string `json:"schedule_end,omitempty"`   // HH:MM
	RestDay         *string `json:"rest_day,omitempty"`
	ScheduleGroupID *int64  `json:"schedule_group_id,omitempty"`
	IsReliever      *bool   `json:"is_reliever,omitempty"`
}

func (r *UpdateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ScheduleStart != nil && !clockRegex.MatchString(*r.ScheduleStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "schedule_start",
			Message: "schedule_start must be in HH:MM format",
		})
	}
	if r.ScheduleEnd != nil && !clockRegex.MatchString(*r.ScheduleEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "schedule_end",
			Message: "schedule_end must be in HH:MM format",
		})
	}
	if r.RestDay != nil && *r.RestDay != "" {
		if _, err := validator.ParseWeekday(*r.RestDay); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "rest_day",
				Message: "rest_day must be a weekday name or index 0-6 (0=Sunday)",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID              int64            `json:"id"`
	BiometricID     string           `json:"biometric_id"`
	FirstName       string           `json:"first_name"`
	LastName        string           `json:"last_name"`
	JobPosition     *string          `json:"job_position,omitempty"`
	ScheduleStart   string           `json:"schedule_start"`
	ScheduleEnd     string           `json:"schedule_end"`
	RestDay         *string          `json:"rest_day,omitempty"`
	ScheduleGroupID *int64           `json:"schedule_group_id,omitempty"`
	BaseDailyRate   *decimal.Decimal `json:"base_daily_rate,omitempty"`
	IsReliever      bool             `json:"is_reliever"`
}
