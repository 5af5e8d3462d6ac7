package schedule

import "time"

// Group is a named schedule whose members share date-specific work times.
// Rotating-shift teams get a group; everyone else falls back to their
// default employee schedule.
type Group struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Assignment is the work time for one group on one calendar date. It takes
// precedence over member defaults when resolving the effective schedule.
type Assignment struct {
	ID        int64
	GroupID   int64
	Date      string // YYYY-MM-DD
	Start     string // HH:MM
	End       string // HH:MM
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Resolved is the effective schedule for a user on a date, after override
// and default fallback.
type Resolved struct {
	Start  string `json:"start"` // HH:MM
	End    string `json:"end"`   // HH:MM
	Source string `json:"source"`
}

// Resolution sources, most specific first.
const (
	SourceOverride = "override" // group assignment for the exact date
	SourceDefault  = "default"  // employee's own schedule
	SourceSystem   = "system"   // 09:00-18:00 fallback
)

// System fallback when the employee carries no schedule at all.
const (
	SystemDefaultStart = "09:00"
	SystemDefaultEnd   = "18:00"
)
