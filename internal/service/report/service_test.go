package report

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waspernest/pe-bms-node/internal/domain/attendance"
	"github.com/waspernest/pe-bms-node/internal/domain/employee"
	"github.com/waspernest/pe-bms-node/internal/domain/report"
	"github.com/waspernest/pe-bms-node/internal/domain/schedule"
	"github.com/waspernest/pe-bms-node/internal/pkg/holiday"
)

type stubAttendanceRepo struct {
	// records keyed by biometricID + "_" + logDate
	records map[string][]attendance.Record
}

func (s *stubAttendanceRepo) GetForUserDate(_ context.Context, biometricID, logDate string) ([]attendance.Record, error) {
	return s.records[biometricID+"_"+logDate], nil
}

func (s *stubAttendanceRepo) Insert(_ context.Context, rec attendance.Record) (attendance.Record, error) {
	return rec, nil
}

func (s *stubAttendanceRepo) Close(context.Context, int64, string, attendance.Origin) error {
	return nil
}

func (s *stubAttendanceRepo) GetByID(context.Context, int64) (attendance.Record, error) {
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (s *stubAttendanceRepo) List(context.Context, attendance.ListFilter) ([]attendance.Record, int64, error) {
	return nil, 0, nil
}

func (s *stubAttendanceRepo) GetOpenBefore(context.Context, string) ([]attendance.Record, error) {
	return nil, nil
}

type stubEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (s *stubEmployeeRepo) GetByBiometricID(_ context.Context, biometricID string) (employee.Employee, error) {
	e, ok := s.employees[biometricID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (s *stubEmployeeRepo) List(context.Context) ([]employee.Employee, error) { return nil, nil }

func (s *stubEmployeeRepo) UpdateSchedule(context.Context, string, employee.UpdateScheduleRequest) error {
	return nil
}

// fixedScheduleService resolves every day to the same schedule.
type fixedScheduleService struct {
	start, end string
}

func (f *fixedScheduleService) Resolve(context.Context, string, string) (schedule.Resolved, error) {
	return schedule.Resolved{Start: f.start, End: f.end, Source: schedule.SourceDefault}, nil
}

func (f *fixedScheduleService) CreateGroup(context.Context, schedule.CreateGroupRequest) (schedule.GroupResponse, error) {
	return schedule.GroupResponse{}, nil
}

func (f *fixedScheduleService) ListGroups(context.Context) ([]schedule.GroupResponse, error) {
	return nil, nil
}

func (f *fixedScheduleService) DeleteGroup(context.Context, int64) error { return nil }

func (f *fixedScheduleService) SetAssignment(context.Context, schedule.SetAssignmentRequest) (schedule.AssignmentResponse, error) {
	return schedule.AssignmentResponse{}, nil
}

func (f *fixedScheduleService) MonthView(context.Context, int64, int, int) ([]schedule.CalendarDay, error) {
	return nil, nil
}

func record(in string, out *string) attendance.Record {
	return attendance.Record{BiometricID: "101", TimeIn: &in, TimeOut: out}
}

func TestDTR_RangeWalk(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	sunday := "Sunday"
	svc := NewReportService(
		&stubAttendanceRepo{records: map[string][]attendance.Record{
			"101_2026-08-03": {record("08:55:00", strPtr("18:30:00"))},
			// 08-04 has no punches, 08-05 is still open.
			"101_2026-08-05": {record("09:00:00", nil)},
		}},
		&stubEmployeeRepo{employees: map[string]employee.Employee{
			"101": {BiometricID: "101", RestDay: &sunday},
		}},
		&fixedScheduleService{start: "09:00", end: "18:00"},
		holiday.None{},
		decimal.NewFromFloat(513.00),
	)

	resp, err := svc.DTR(ctx, report.RangeRequest{
		BiometricID: "101", StartDate: "2026-08-02", EndDate: "2026-08-05",
	})
	require.NoError(t, err)
	require.Len(t, resp.Days, 4)

	// Sunday the 2nd: rest day, no punches.
	assert.True(t, resp.Days[0].IsRestDay)
	assert.Nil(t, resp.Days[0].Hours)

	// The 3rd: full day with overtime.
	worked := resp.Days[1]
	require.NotNil(t, worked.Hours)
	assert.InDelta(t, 9.58, worked.Hours.NT, 0.01)
	assert.Equal(t, 0.5, worked.Hours.OT)

	// The 4th: absent, schedule still shown.
	assert.Nil(t, resp.Days[2].Hours)
	assert.Equal(t, "09:00", resp.Days[2].ScheduleStart)

	// The 5th: open record stays visible as a gap in the DTR view.
	open := resp.Days[3]
	require.NotNil(t, open.TimeIn)
	assert.Nil(t, open.TimeOut)
	assert.Nil(t, open.Hours)
}

func TestDTR_SplitShiftCollapses(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewReportService(
		&stubAttendanceRepo{records: map[string][]attendance.Record{
			"101_2026-08-03": {
				record("09:00:00", strPtr("12:00:00")),
				record("13:00:00", strPtr("18:00:00")),
			},
		}},
		&stubEmployeeRepo{employees: map[string]employee.Employee{}},
		&fixedScheduleService{start: "09:00", end: "18:00"},
		holiday.None{},
		decimal.NewFromFloat(513.00),
	)

	resp, err := svc.DTR(ctx, report.RangeRequest{
		BiometricID: "101", StartDate: "2026-08-03", EndDate: "2026-08-03",
	})
	require.NoError(t, err)
	require.Len(t, resp.Days, 1)

	day := resp.Days[0]
	assert.Equal(t, "09:00:00", *day.TimeIn)
	assert.Equal(t, "18:00:00", *day.TimeOut)
	require.NotNil(t, day.Hours)
	assert.Equal(t, 9.0, day.Hours.NT)
}

func TestSummary_OpenRecordAssumesMidnight(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewReportService(
		&stubAttendanceRepo{records: map[string][]attendance.Record{
			"101_2026-08-03": {record("09:00:00", nil)},
		}},
		&stubEmployeeRepo{employees: map[string]employee.Employee{}},
		&fixedScheduleService{start: "09:00", end: "18:00"},
		holiday.None{},
		decimal.NewFromFloat(513.00),
	)

	resp, err := svc.Summary(ctx, report.RangeRequest{
		BiometricID: "101", StartDate: "2026-08-03", EndDate: "2026-08-03",
	})
	require.NoError(t, err)

	// The missing close reads as midnight, wrapping to the next day:
	// fifteen hours on the clock, counted as a worked day.
	assert.Equal(t, 1, resp.Summary.WorkedDays)
	assert.Equal(t, 15.0, resp.Summary.TotalHoursWorked)
}

func TestSummary_EmployeeRateOverridesDefault(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	rate := decimal.NewFromFloat(600.00)
	svc := NewReportService(
		&stubAttendanceRepo{records: map[string][]attendance.Record{
			"101_2026-08-03": {record("09:00:00", strPtr("18:00:00"))},
		}},
		&stubEmployeeRepo{employees: map[string]employee.Employee{
			"101": {BiometricID: "101", BaseDailyRate: &rate},
		}},
		&fixedScheduleService{start: "09:00", end: "18:00"},
		holiday.None{},
		decimal.NewFromFloat(513.00),
	)

	resp, err := svc.Summary(ctx, report.RangeRequest{
		BiometricID: "101", StartDate: "2026-08-03", EndDate: "2026-08-03",
	})
	require.NoError(t, err)

	// 600.00 over a nine-hour schedule instead of the configured 513.00.
	assert.Equal(t, 66.67, resp.Summary.RegHrs)
}

func TestSummary_UnknownEmployee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewReportService(
		&stubAttendanceRepo{records: map[string][]attendance.Record{}},
		&stubEmployeeRepo{employees: map[string]employee.Employee{}},
		&fixedScheduleService{start: "09:00", end: "18:00"},
		holiday.None{},
		decimal.NewFromFloat(513.00),
	)

	resp, err := svc.Summary(ctx, report.RangeRequest{
		BiometricID: "999", StartDate: "2026-08-03", EndDate: "2026-08-04",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Summary.WorkedDays)
}

func TestDTR_RejectsInvertedRange(t *testing.T) {
	t.Parallel()

	svc := NewReportService(
		&stubAttendanceRepo{},
		&stubEmployeeRepo{},
		&fixedScheduleService{start: "09:00", end: "18:00"},
		holiday.None{},
		decimal.NewFromFloat(513.00),
	)

	_, err := svc.DTR(context.Background(), report.RangeRequest{
		BiometricID: "101", StartDate: "2026-08-05", EndDate: "2026-08-03",
	})
	assert.Error(t, err)
}
