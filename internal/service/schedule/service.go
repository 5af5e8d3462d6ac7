package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/waspernest/pe-bms-node/internal/domain/employee"
	"github.com/waspernest/pe-bms-node/internal/domain/schedule"
)

type ScheduleServiceImpl struct {
	scheduleRepo schedule.Repository
	employeeRepo employee.Repository
}

func NewScheduleService(
	scheduleRepo schedule.Repository,
	employeeRepo employee.Repository,
) schedule.Service {
	return &ScheduleServiceImpl{
		scheduleRepo: scheduleRepo,
		employeeRepo: employeeRepo,
	}
}

// Resolve implements schedule.Service.
//
// Precedence: date-specific group assignment, then the employee's default
// schedule, then the system 09:00-18:00 fallback. An unknown user still
// resolves (system source) so work-hour math never dead-ends on missing
// registry rows.
func (s *ScheduleServiceImpl) Resolve(ctx context.Context, biometricID, date string) (schedule.Resolved, error) {
	emp, err := s.employeeRepo.GetByBiometricID(ctx, biometricID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return schedule.Resolved{
				Start:  schedule.SystemDefaultStart,
				End:    schedule.SystemDefaultEnd,
				Source: schedule.SourceSystem,
			}, nil
		}
		return schedule.Resolved{}, fmt.Errorf("failed to resolve schedule: %w", err)
	}

	if emp.ScheduleGroupID != nil {
		assignment, err := s.scheduleRepo.GetAssignment(ctx, *emp.ScheduleGroupID, date)
		if err != nil {
			return schedule.Resolved{}, fmt.Errorf("failed to get schedule assignment: %w", err)
		}
		if assignment != nil {
			return schedule.Resolved{
				Start:  assignment.Start,
				End:    assignment.End,
				Source: schedule.SourceOverride,
			}, nil
		}
	}

	if emp.ScheduleStart != "" && emp.ScheduleEnd != "" {
		return schedule.Resolved{
			Start:  emp.ScheduleStart,
			End:    emp.ScheduleEnd,
			Source: schedule.SourceDefault,
		}, nil
	}

	return schedule.Resolved{
		Start:  schedule.SystemDefaultStart,
		End:    schedule.SystemDefaultEnd,
		Source: schedule.SourceSystem,
	}, nil
}

// CreateGroup implements schedule.Service.
func (s *ScheduleServiceImpl) CreateGroup(ctx context.Context, req schedule.CreateGroupRequest) (schedule.GroupResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.GroupResponse{}, err
	}

	g, err := s.scheduleRepo.CreateGroup(ctx, req.Name)
	if err != nil {
		return schedule.GroupResponse{}, err
	}

	return schedule.GroupResponse{ID: g.ID, Name: g.Name}, nil
}

// ListGroups implements schedule.Service.
func (s *ScheduleServiceImpl) ListGroups(ctx context.Context) ([]schedule.GroupResponse, error) {
	groups, err := s.scheduleRepo.ListGroups(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]schedule.GroupResponse, 0, len(groups))
	for _, g := range groups {
		responses = append(responses, schedule.GroupResponse{ID: g.ID, Name: g.Name})
	}
	return responses, nil
}

// DeleteGroup implements schedule.Service.
func (s *ScheduleServiceImpl) DeleteGroup(ctx context.Context, id int64) error {
	return s.scheduleRepo.DeleteGroup(ctx, id)
}

// SetAssignment implements schedule.Service.
func (s *ScheduleServiceImpl) SetAssignment(ctx context.Context, req schedule.SetAssignmentRequest) (schedule.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.AssignmentResponse{}, err
	}

	if _, err := s.scheduleRepo.GetGroup(ctx, req.GroupID); err != nil {
		return schedule.AssignmentResponse{}, err
	}

	a, err := s.scheduleRepo.UpsertAssignment(ctx, schedule.Assignment{
		GroupID: req.GroupID,
		Date:    req.Date,
		Start:   req.Start,
		End:     req.End,
	})
	if err != nil {
		return schedule.AssignmentResponse{}, err
	}

	return schedule.AssignmentResponse{
		ID:    a.ID,
		Date:  a.Date,
		Start: a.Start,
		End:   a.End,
	}, nil
}

// MonthView implements schedule.Service.
func (s *ScheduleServiceImpl) MonthView(ctx context.Context, groupID int64, year, month int) ([]schedule.CalendarDay, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month must be between 1 and 12")
	}

	if _, err := s.scheduleRepo.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	assignments, err := s.scheduleRepo.ListAssignments(
		ctx, groupID, first.Format("2006-01-02"), last.Format("2006-01-02"),
	)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]schedule.Assignment, len(assignments))
	for _, a := range assignments {
		byDate[a.Date] = a
	}

	days := make([]schedule.CalendarDay, 0, last.Day())
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		date := d.Format("2006-01-02")
		day := schedule.CalendarDay{
			Date:    date,
			Day:     d.Day(),
			DayName: d.Weekday().String(),
		}
		if a, ok := byDate[date]; ok {
			day.HasSchedule = true
			day.Schedule = &schedule.AssignmentResponse{
				ID:    a.ID,
				Date:  a.Date,
				Start: a.Start,
				End:   a.End,
			}
		}
		days = append(days, day)
	}

	return days, nil
}
