package attendance

import (
	"time"
)

// Origin identifies where a punch came from.
type Origin string

const (
	OriginDevice Origin = "device"
	OriginManual Origin = "manual"
	OriginImport Origin = "import"
)

var OriginValues = []string{
	string(OriginDevice),
	string(OriginManual),
	string(OriginImport),
}

// Record is one paired (or still open) attendance row for a user-day.
// TimeOut == nil means the record is open: the user has punched in but not
// yet out. A user may have multiple closed records on the same day
// (split shifts), but never more than one open record at a time.
type Record struct {
	ID          int64
	BiometricID string
	LogDate     string  // YYYY-MM-DD, operating-locale calendar day
	TimeIn      *string // HH:MM:SS
	TimeOut     *string // HH:MM:SS, nil while open
	Origin      Origin
	IsReliever  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined from employees for list views
	FirstName *string
	LastName  *string
}

// Open reports whether the record is still waiting for a closing punch.
func (r Record) Open() bool {
	return r.TimeIn != nil && r.TimeOut == nil
}
