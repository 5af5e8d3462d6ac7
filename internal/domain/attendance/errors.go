package attendance

import "errors"

// Attendance domain errors
var (
	// Punch sequencing errors: the stored state is never mutated when
	// one of these is returned.
	ErrPunchBeforeTimeIn    = errors.New("punch precedes the last time in")
	ErrPunchBeforeLastClose = errors.New("punch time is before the last close")

	// General errors
	ErrRecordNotFound = errors.New("attendance record not found")
	ErrJobNotFound    = errors.New("import job not found")
)
