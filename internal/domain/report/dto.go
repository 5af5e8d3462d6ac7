package report

import (
	"github.com/waspernest/pe-bms-node/internal/pkg/validator"
)

// WorkHours is the payroll-relevant breakdown of one time-in/time-out
// pair against the resolved schedule. All values are hours rounded to two
// decimals and never negative.
type WorkHours struct {
	NT float64 `json:"nt"` // regular worked hours
	OT float64 `json:"ot"` // overtime past scheduled end
	LT float64 `json:"lt"` // late arrival
	UT float64 `json:"ut"` // undertime against scheduled hours
	ND float64 `json:"nd"` // night differential, 22:00-06:00
}

// DailyMetrics is one day of a user's DTR (daily time record) view.
// Hours is nil when the day had no parseable in/out pair; aggregation
// must treat that as "no metrics" and keep going.
type DailyMetrics struct {
	Date          string     `json:"date"`
	DayName       string     `json:"day_name"`
	TimeIn        *string    `json:"time_in"`
	TimeOut       *string    `json:"time_out"`
	ScheduleStart string     `json:"schedule_start"`
	ScheduleEnd   string     `json:"schedule_end"`
	IsRestDay     bool       `json:"is_rest_day"`
	IsHoliday     bool       `json:"is_holiday"`
	HolidayName   string     `json:"holiday_name,omitempty"`
	HolidayType   string     `json:"holiday_type,omitempty"` // regular | special
	Hours         *WorkHours `json:"hours"`
}

// PeriodSummary rolls a date range of daily metrics up for payroll export.
// Worked counters only move on days with computable hours; the total_*
// counters move for every day in range.
type PeriodSummary struct {
	RegHrs                float64 `json:"reg_hrs"` // hourly rate from base daily rate
	WorkedDays            int     `json:"worked_days"`
	TotalHoursWorked      float64 `json:"total_hours_worked"`
	RegularOT             float64 `json:"regular_ot"`
	TotalLateTime         float64 `json:"total_late_time"`
	TotalUndertime        float64 `json:"total_undertime"`
	TotalNightDiff        float64 `json:"total_night_diff"`
	RestDaysWorked        int     `json:"rest_days_worked"`
	TotalRestDays         int     `json:"total_rest_days"`
	RegularHolidaysWorked int     `json:"regular_holidays_worked"`
	SpecialHolidaysWorked int     `json:"special_holidays_worked"`
	TotalRegularHolidays  int     `json:"total_regular_holidays"`
	TotalSpecialHolidays  int     `json:"total_special_holidays"`
}

type RangeRequest struct {
	BiometricID string `json:"-"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

func (r *RangeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BiometricID) {
		errs = append(errs, validator.ValidationError{
			Field:   "biometric_id",
			Message: "biometric_id is required",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not precede start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DTRResponse struct {
	BiometricID string         `json:"biometric_id"`
	StartDate   string         `json:"start_date"`
	EndDate     string         `json:"end_date"`
	Days        []DailyMetrics `json:"days"`
}

type SummaryResponse struct {
	BiometricID string        `json:"biometric_id"`
	StartDate   string        `json:"start_date"`
	EndDate     string        `json:"end_date"`
	Summary     PeriodSummary `json:"summary"`
}
