package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/waspernest/pe-bms-node/internal/domain/attendance"
	"github.com/waspernest/pe-bms-node/internal/domain/employee"
	"github.com/waspernest/pe-bms-node/internal/domain/report"
	"github.com/waspernest/pe-bms-node/internal/domain/schedule"
	"github.com/waspernest/pe-bms-node/internal/pkg/holiday"
)

type ReportServiceImpl struct {
	attendanceRepo  attendance.Repository
	employeeRepo    employee.Repository
	scheduleService schedule.Service
	calendar        holiday.Calendar
	baseDailyRate   decimal.Decimal
}

func NewReportService(
	attendanceRepo attendance.Repository,
	employeeRepo employee.Repository,
	scheduleService schedule.Service,
	calendar holiday.Calendar,
	baseDailyRate decimal.Decimal,
) report.Service {
	return &ReportServiceImpl{
		attendanceRepo:  attendanceRepo,
		employeeRepo:    employeeRepo,
		scheduleService: scheduleService,
		calendar:        calendar,
		baseDailyRate:   baseDailyRate,
	}
}

// DTR implements report.Service.
func (r *ReportServiceImpl) DTR(ctx context.Context, req report.RangeRequest) (report.DTRResponse, error) {
	days, err := r.buildDays(ctx, req, false)
	if err != nil {
		return report.DTRResponse{}, err
	}

	return report.DTRResponse{
		BiometricID: req.BiometricID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Days:        days,
	}, nil
}

// Summary implements report.Service.
func (r *ReportServiceImpl) Summary(ctx context.Context, req report.RangeRequest) (report.SummaryResponse, error) {
	days, err := r.buildDays(ctx, req, true)
	if err != nil {
		return report.SummaryResponse{}, err
	}

	// An employee-specific daily rate overrides the configured one.
	rate := r.baseDailyRate
	if emp, err := r.employeeRepo.GetByBiometricID(ctx, req.BiometricID); err == nil && emp.BaseDailyRate != nil {
		rate = *emp.BaseDailyRate
	}

	return report.SummaryResponse{
		BiometricID: req.BiometricID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Summary:     Summarize(days, rate),
	}, nil
}

// buildDays walks every calendar day in the range, pairing that day's
// punches with the resolved schedule and the calendar classification.
//
// assumeMidnightOut controls open-record handling: the summary treats a
// missing close as "00:00" (the payroll export convention), while the DTR
// view leaves the day without hours so the gap is visible.
func (r *ReportServiceImpl) buildDays(ctx context.Context, req report.RangeRequest, assumeMidnightOut bool) ([]report.DailyMetrics, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	var restDay *string
	emp, err := r.employeeRepo.GetByBiometricID(ctx, req.BiometricID)
	if err != nil {
		if !errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, fmt.Errorf("failed to load employee: %w", err)
		}
	} else {
		restDay = emp.RestDay
	}

	var days []report.DailyMetrics
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		date := d.Format("2006-01-02")

		records, err := r.attendanceRepo.GetForUserDate(ctx, req.BiometricID, date)
		if err != nil {
			return nil, fmt.Errorf("failed to load records for %s: %w", date, err)
		}

		resolved, err := r.scheduleService.Resolve(ctx, req.BiometricID, date)
		if err != nil {
			return nil, err
		}

		class := ClassifyDay(date, restDay, r.calendar)

		day := report.DailyMetrics{
			Date:          date,
			DayName:       class.DayName,
			ScheduleStart: resolved.Start,
			ScheduleEnd:   resolved.End,
			IsRestDay:     class.IsRestDay,
			IsHoliday:     class.IsHoliday,
			HolidayName:   class.HolidayName,
			HolidayType:   class.HolidayType,
		}

		timeIn, timeOut := collapseDay(records)
		day.TimeIn = timeIn
		day.TimeOut = timeOut

		if timeIn != nil && timeOut == nil && assumeMidnightOut {
			midnight := "00:00"
			timeOut = &midnight
		}
		day.Hours = CalculateWorkHours(timeIn, timeOut, resolved.Start, resolved.End)

		days = append(days, day)
	}

	return days, nil
}

// collapseDay reduces a day's records to one pair: the earliest time in
// and the latest close. Split shifts collapse into their outer envelope.
func collapseDay(records []attendance.Record) (*string, *string) {
	var timeIn, timeOut *string
	for _, rec := range records {
		if rec.TimeIn != nil && timeIn == nil {
			timeIn = rec.TimeIn
		}
		if rec.TimeOut != nil {
			timeOut = rec.TimeOut
		}
	}
	return timeIn, timeOut
}
