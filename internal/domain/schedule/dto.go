package schedule

import (
	"regexp"

	"github.com/waspernest/pe-bms-node/internal/pkg/validator"
)

var clockRegex = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

type CreateGroupRequest struct {
	Name string `json:"name"`
}

func (r *CreateGroupRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "schedule group name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SetAssignmentRequest struct {
	GroupID int64  `json:"-"`
	Date    string `json:"date"`  // YYYY-MM-DD
	Start   string `json:"start"` // HH:MM
	End     string `json:"end"`   // HH:MM
}

func (r *SetAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !clockRegex.MatchString(r.Start) {
		errs = append(errs, validator.ValidationError{
			Field:   "start",
			Message: "start must be in HH:MM format",
		})
	}
	if !clockRegex.MatchString(r.End) {
		errs = append(errs, validator.ValidationError{
			Field:   "end",
			Message: "end must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type GroupResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type AssignmentResponse struct {
	ID    int64  `json:"id"`
	Date  string `json:"date"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// CalendarDay is one day of the month view: every day of the requested
// month appears whether or not an assignment exists.
type CalendarDay struct {
	Date        string              `json:"date"`
	Day         int                 `json:"day"`
	DayName     string              `json:"day_name"`
	HasSchedule bool                `json:"has_schedule"`
	Schedule    *AssignmentResponse `json:"schedule,omitempty"`
}
