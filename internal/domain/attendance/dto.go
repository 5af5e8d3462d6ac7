package attendance

import (
	"strings"

	"github.com/waspernest/pe-bms-node/internal/pkg/validator"
)

// ========================================
// PUNCH DTOs
// ========================================

// PunchRequest is a single normalized punch event. The caller (device poll
// loop, manual entry handler, or anything else) is responsible for having
// already turned raw device output into this shape.
type PunchRequest struct {
	BiometricID string `json:"biometric_id"`
	LogDate     string `json:"log_date"` // YYYY-MM-DD
	Time        string `json:"time"`     // HH:MM[:SS] or h:mm AM/PM
	Origin      Origin `json:"origin,omitempty"`
}

func (r *PunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BiometricID) {
		errs = append(errs, validator.ValidationError{
			Field:   "biometric_id",
			Message: "biometric_id is required",
		})
	}

	if validator.IsEmpty(r.LogDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "log_date",
			Message: "log_date is required",
		})
	} else if _, valid := validator.IsValidDate(r.LogDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "log_date",
			Message: "log_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Time) {
		errs = append(errs, validator.ValidationError{
			Field:   "time",
			Message: "time is required",
		})
	} else if _, err := validator.ClockToSeconds(r.Time); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "time",
			Message: "time must be HH:MM[:SS] or h:mm AM/PM",
		})
	}

	if r.Origin == "" {
		r.Origin = OriginDevice // Default origin
	} else if !validator.IsInSlice(string(r.Origin), OriginValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "origin",
			Message: "origin must be one of: device, manual, import",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// PunchAction says what a successful reconcile did with the punch.
type PunchAction string

const (
	ActionTimeIn  PunchAction = "time_in"
	ActionTimeOut PunchAction = "time_out"
)

type PunchResult struct {
	Action PunchAction    `json:"action"`
	Record RecordResponse `json:"record"`
}

type RecordResponse struct {
	ID          int64   `json:"id"`
	BiometricID string  `json:"biometric_id"`
	LogDate     string  `json:"log_date"`
	TimeIn      *string `json:"time_in"`
	TimeOut     *string `json:"time_out"`
	Origin      string  `json:"origin"`
	IsReliever  bool    `json:"is_reliever"`
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	CreatedAt   string  `json:"created_at,omitempty"`
	UpdatedAt   string  `json:"updated_at,omitempty"`
}

// ========================================
// BULK IMPORT DTOs
// ========================================

// ImportRow is one normalized row from a parsed import file. TimeOut may be
// missing for sources that only carry a single punch per row.
type ImportRow struct {
	BiometricID string  `json:"biometric_id"`
	LogDate     string  `json:"log_date"`
	TimeIn      string  `json:"time_in"`
	TimeOut     *string `json:"time_out,omitempty"`
}

func (r *ImportRow) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BiometricID) {
		errs = append(errs, validator.ValidationError{
			Field:   "biometric_id",
			Message: "biometric_id is required",
		})
	}
	if validator.IsEmpty(r.LogDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "log_date",
			Message: "log_date is required",
		})
	}
	if validator.IsEmpty(r.TimeIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "time_in",
			Message: "time_in is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RowStatus classifies the outcome of a single imported row. Every row ends
// up in exactly one bucket.
type RowStatus string

const (
	RowInserted RowStatus = "inserted"
	RowSkipped  RowStatus = "skipped"
	RowError    RowStatus = "error"
)

type RowOutcome struct {
	Row      ImportRow `json:"row"`
	Status   RowStatus `json:"status"`
	Reason   string    `json:"reason,omitempty"` // skip reason or error message
	RecordID int64     `json:"record_id,omitempty"`
}

// ImportStatus summarizes a whole import run.
type ImportStatus string

const (
	ImportSuccess ImportStatus = "success"
	ImportWarning ImportStatus = "warning" // nothing inserted, everything skipped
	ImportPartial ImportStatus = "partial" // some rows failed, some inserted
	ImportError   ImportStatus = "error"   // every row failed
)

type ImportResult struct {
	JobID          string       `json:"job_id"`
	Status         ImportStatus `json:"status"`
	TotalProcessed int          `json:"total_processed"`
	TotalInserted  int          `json:"total_inserted"`
	TotalSkipped   int          `json:"total_skipped"`
	TotalFailed    int          `json:"total_failed"`
	Errors         []RowOutcome `json:"errors,omitempty"`
	Elapsed        string       `json:"elapsed"`
}

// ========================================
// LIST DTOs
// ========================================

type ListFilter struct {
	Search    *string `json:"search,omitempty"` // matches biometric id or name
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`

	SortOrder string `json:"sort_order"` // asc, desc
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.SortOrder != "" {
		validSortOrders := []string{"asc", "desc"}
		if !validator.IsInSlice(strings.ToLower(f.SortOrder), validSortOrders) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_order",
				Message: "sort_order must be one of: asc, desc",
			})
		}
	} else {
		f.SortOrder = "desc" // Default descending (newest first)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
	Records    []RecordResponse `json:"records"`
}
