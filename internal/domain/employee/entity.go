package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee mirrors the device user registry: BiometricID is the stable id
// the punch device stamps on every log, independent of the row id.
type Employee struct {
	ID              int64
	BiometricID     string
	FirstName       string
	LastName        string
	JobPosition     *string
	ScheduleStart   string  // HH:MM default work schedule
	ScheduleEnd     string  // HH:MM
	RestDay         *string // weekday name or numeric index, 0=Sunday
	ScheduleGroupID *int64  // rotating-shift group membership
	BaseDailyRate   *decimal.Decimal
	IsReliever      bool
	IsDeleted       bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
