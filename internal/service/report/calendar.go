package report

import (
	"time"

	"github.com/waspernest/pe-bms-node/internal/pkg/holiday"
	"github.com/waspernest/pe-bms-node/internal/pkg/validator"
)

// DayClass is the calendar classification of one date for one employee.
type DayClass struct {
	DayName     string
	IsRestDay   bool
	IsHoliday   bool
	HolidayName string
	HolidayType string
}

// ClassifyDay marks a date as rest day and/or holiday. restDay is the
// employee's configured rest day (weekday name or 0-6 index) and may be
// nil. An unparseable rest-day value classifies as not a rest day.
func ClassifyDay(date string, restDay *string, calendar holiday.Calendar) DayClass {
	class := DayClass{}

	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return class
	}
	class.DayName = t.Weekday().String()

	if restDay != nil && *restDay != "" {
		if wd, err := validator.ParseWeekday(*restDay); err == nil {
			class.IsRestDay = t.Weekday() == wd
		}
	}

	if calendar != nil {
		if h, ok := calendar.Holiday(date); ok {
			class.IsHoliday = true
			class.HolidayName = h.Name
			class.HolidayType = h.Type
		}
	}

	return class
}
