package validator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// clock12Regex matches "h:mm AM" / "hh:mm:ss pm" style punches as devices
// and spreadsheets export them.
var clock12Regex = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?\s*([AaPp])\.?[Mm]\.?$`)

// clock24Regex matches "HH:MM" and "HH:MM:SS".
var clock24Regex = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?$`)

// ClockToSeconds parses a clock string in either 12-hour ("5:30 PM") or
// 24-hour ("17:30", "17:30:00") form and returns seconds since midnight.
func ClockToSeconds(clock string) (int, error) {
	clock = strings.TrimSpace(clock)

	if m := clock12Regex.FindStringSubmatch(clock); m != nil {
		hour, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[2])
		sec := 0
		if m[3] != "" {
			sec, _ = strconv.Atoi(m[3])
		}
		if hour < 1 || hour > 12 || min > 59 || sec > 59 {
			return 0, fmt.Errorf("invalid clock value %q", clock)
		}
		if hour == 12 {
			hour = 0
		}
		if m[4] == "P" || m[4] == "p" {
			hour += 12
		}
		return hour*3600 + min*60 + sec, nil
	}

	if m := clock24Regex.FindStringSubmatch(clock); m != nil {
		hour, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[2])
		sec := 0
		if m[3] != "" {
			sec, _ = strconv.Atoi(m[3])
		}
		if hour > 23 || min > 59 || sec > 59 {
			return 0, fmt.Errorf("invalid clock value %q", clock)
		}
		return hour*3600 + min*60 + sec, nil
	}

	return 0, fmt.Errorf("unrecognized clock format %q", clock)
}

// SecondsToClock formats seconds since midnight as "HH:MM:SS".
func SecondsToClock(secs int) string {
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs/60)%60, secs%60)
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday accepts a weekday by name ("Sunday", case-insensitive) or
// by number ("0".."6", 0 = Sunday).
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.TrimSpace(s)
	if d, ok := weekdayNames[strings.ToLower(s)]; ok {
		return d, nil
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n <= 6 {
		return time.Weekday(n), nil
	}
	return 0, fmt.Errorf("unrecognized weekday %q", s)
}
