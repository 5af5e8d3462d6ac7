package attendance

import (
	"fmt"

	"github.com/waspernest/pe-bms-node/internal/domain/attendance"
	"github.com/waspernest/pe-bms-node/internal/pkg/validator"
)

// MatchStrategy decides whether an incoming row duplicates an existing
// record for the same user and day.
type MatchStrategy interface {
	Name() string
	Match(row attendance.ImportRow, existing attendance.Record) bool
}

// DuplicateDetector runs an ordered list of strategies; the first match
// wins and its name becomes the skip reason.
type DuplicateDetector struct {
	strategies []MatchStrategy
}

func NewDuplicateDetector(strategies ...MatchStrategy) *DuplicateDetector {
	return &DuplicateDetector{strategies: strategies}
}

// Check returns the matching strategy's name, or "" when the row is not a
// duplicate of anything in existing.
func (d *DuplicateDetector) Check(row attendance.ImportRow, existing []attendance.Record) string {
	for _, strategy := range d.strategies {
		for _, rec := range existing {
			if strategy.Match(row, rec) {
				return strategy.Name()
			}
		}
	}
	return ""
}

// ExactMatch flags rows whose time in equals an existing record's to the
// second.
type ExactMatch struct{}

func (ExactMatch) Name() string { return "exact match" }

func (ExactMatch) Match(row attendance.ImportRow, rec attendance.Record) bool {
	if rec.TimeIn == nil {
		return false
	}
	rowSecs, err := validator.ClockToSeconds(row.TimeIn)
	if err != nil {
		return false
	}
	recSecs, err := validator.ClockToSeconds(*rec.TimeIn)
	if err != nil {
		return false
	}
	return rowSecs == recSecs
}

// ToleranceWindowMatch flags rows whose time in falls within N minutes of
// an existing record's. Catches double-registered punches from devices
// that log the same event seconds or minutes apart.
type ToleranceWindowMatch struct {
	Minutes int
}

func (m ToleranceWindowMatch) Name() string {
	return fmt.Sprintf("within %d-minute window of existing record", m.Minutes)
}

func (m ToleranceWindowMatch) Match(row attendance.ImportRow, rec attendance.Record) bool {
	if rec.TimeIn == nil {
		return false
	}
	rowSecs, err := validator.ClockToSeconds(row.TimeIn)
	if err != nil {
		return false
	}
	recSecs, err := validator.ClockToSeconds(*rec.TimeIn)
	if err != nil {
		return false
	}
	diff := rowSecs - recSecs
	if diff < 0 {
		diff = -diff
	}
	return diff <= m.Minutes*60
}
