package report

import (
	"math"

	"github.com/waspernest/pe-bms-node/internal/domain/report"
	"github.com/waspernest/pe-bms-node/internal/pkg/validator"
)

// CalculateWorkHours breaks one in/out pair against a schedule into
// NT/OT/LT/UT/ND hours at minute granularity, rounded to two decimals.
//
// Unparseable or missing inputs return nil rather than an error: a day
// with garbage punches produces no metrics, and callers keep going.
func CalculateWorkHours(timeIn, timeOut *string, scheduleStart, scheduleEnd string) *report.WorkHours {
	if timeIn == nil || timeOut == nil || scheduleStart == "" {
		return nil
	}

	timeInMins, err := clockToMinutes(*timeIn)
	if err != nil {
		return nil
	}
	timeOutMins, err := clockToMinutes(*timeOut)
	if err != nil {
		return nil
	}
	schedStartMins, err := clockToMinutes(scheduleStart)
	if err != nil {
		return nil
	}

	var schedEndMins int
	if scheduleEnd != "" {
		schedEndMins, err = clockToMinutes(scheduleEnd)
		if err != nil {
			return nil
		}
	} else {
		// No end on record: assume a nine-hour shift.
		schedEndMins = schedStartMins + 9*60
	}

	// Closing punch earlier than the opening one means the shift crossed
	// midnight.
	if timeOutMins < timeInMins {
		timeOutMins += 24 * 60
	}

	totalMinutes := timeOutMins - timeInMins
	if totalMinutes < 0 {
		totalMinutes += 24 * 60
	}

	nt := float64(totalMinutes) / 60

	// Overnight schedules get the same midnight adjustment.
	adjustedSchedEndMins := schedEndMins
	if schedEndMins <= schedStartMins {
		adjustedSchedEndMins = schedEndMins + 24*60
	}

	ot := float64(max(0, timeOutMins-adjustedSchedEndMins)) / 60

	scheduledHours := float64(adjustedSchedEndMins-schedStartMins) / 60
	ut := math.Max(0, scheduledHours-nt)

	lt := float64(max(0, timeInMins-schedStartMins)) / 60

	// Night differential covers 22:00-06:00. A minute walk keeps the
	// midnight wrap trivially correct.
	ndMinutes := 0
	for m := timeInMins; m < timeOutMins; m++ {
		hour := (m / 60) % 24
		if hour >= 22 || hour < 6 {
			ndMinutes++
		}
	}
	nd := float64(ndMinutes) / 60

	return &report.WorkHours{
		NT: round2(nt),
		OT: round2(ot),
		LT: round2(lt),
		UT: round2(ut),
		ND: round2(nd),
	}
}

// ScheduleHours returns the length of a schedule in hours, crossing
// midnight when needed. Falls back to 8 on unparseable input.
func ScheduleHours(start, end string) float64 {
	if start == "" || end == "" {
		return 0
	}

	startMins, err := clockToMinutes(start)
	if err != nil {
		return 8
	}
	endMins, err := clockToMinutes(end)
	if err != nil {
		return 8
	}

	total := float64(endMins-startMins) / 60
	if total < 0 {
		total += 24
	}
	return total
}

func clockToMinutes(clock string) (int, error) {
	secs, err := validator.ClockToSeconds(clock)
	if err != nil {
		return 0, err
	}
	return secs / 60, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
