package report

import (
	"github.com/shopspring/decimal"

	"github.com/waspernest/pe-bms-node/internal/domain/report"
	"github.com/waspernest/pe-bms-node/internal/pkg/holiday"
)

// Summarize rolls a range of daily metrics up into one payroll summary.
//
// The hourly rate is derived lazily from the first day that produced
// metrics: base daily rate divided by that day's scheduled hours. Days
// without computable hours still move the total rest-day and holiday
// counters, but never the worked ones.
func Summarize(days []report.DailyMetrics, baseDailyRate decimal.Decimal) report.PeriodSummary {
	var summary report.PeriodSummary

	for _, day := range days {
		if day.Hours != nil {
			if summary.RegHrs == 0 {
				scheduleHours := ScheduleHours(day.ScheduleStart, day.ScheduleEnd)
				if scheduleHours > 0 {
					regHrs := baseDailyRate.Div(decimal.NewFromFloat(scheduleHours))
					summary.RegHrs, _ = regHrs.Round(2).Float64()
				}
			}

			summary.WorkedDays++
			summary.TotalHoursWorked = round2(summary.TotalHoursWorked + day.Hours.NT)
			summary.RegularOT = round2(summary.RegularOT + day.Hours.OT)
			summary.TotalLateTime = round2(summary.TotalLateTime + day.Hours.LT)
			summary.TotalUndertime = round2(summary.TotalUndertime + day.Hours.UT)
			summary.TotalNightDiff = round2(summary.TotalNightDiff + day.Hours.ND)

			if day.IsRestDay {
				summary.RestDaysWorked++
			}
			if day.IsHoliday {
				if day.HolidayType == holiday.TypeRegular {
					summary.RegularHolidaysWorked++
				} else {
					summary.SpecialHolidaysWorked++
				}
			}
		}

		if day.IsRestDay {
			summary.TotalRestDays++
		}
		if day.IsHoliday {
			if day.HolidayType == holiday.TypeRegular {
				summary.TotalRegularHolidays++
			} else {
				summary.TotalSpecialHolidays++
			}
		}
	}

	return summary
}
