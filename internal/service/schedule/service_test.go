package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waspernest/pe-bms-node/internal/domain/employee"
	"github.com/waspernest/pe-bms-node/internal/domain/schedule"
)

type memoryScheduleRepo struct {
	nextID      int64
	groups      map[int64]schedule.Group
	assignments map[int64]map[string]schedule.Assignment // groupID -> date
}

func newMemoryScheduleRepo() *memoryScheduleRepo {
	return &memoryScheduleRepo{
		nextID:      1,
		groups:      make(map[int64]schedule.Group),
		assignments: make(map[int64]map[string]schedule.Assignment),
	}
}

func (m *memoryScheduleRepo) CreateGroup(_ context.Context, name string) (schedule.Group, error) {
	for _, g := range m.groups {
		if g.Name == name {
			return schedule.Group{}, schedule.ErrGroupNameExists
		}
	}
	g := schedule.Group{ID: m.nextID, Name: name}
	m.nextID++
	m.groups[g.ID] = g
	return g, nil
}

func (m *memoryScheduleRepo) ListGroups(_ context.Context) ([]schedule.Group, error) {
	var out []schedule.Group
	for _, g := range m.groups {
		out = append(out, g)
	}
	return out, nil
}

func (m *memoryScheduleRepo) GetGroup(_ context.Context, id int64) (schedule.Group, error) {
	g, ok := m.groups[id]
	if !ok {
		return schedule.Group{}, schedule.ErrGroupNotFound
	}
	return g, nil
}

func (m *memoryScheduleRepo) DeleteGroup(_ context.Context, id int64) error {
	if _, ok := m.groups[id]; !ok {
		return schedule.ErrGroupNotFound
	}
	delete(m.groups, id)
	delete(m.assignments, id)
	return nil
}

func (m *memoryScheduleRepo) GetAssignment(_ context.Context, groupID int64, date string) (*schedule.Assignment, error) {
	if a, ok := m.assignments[groupID][date]; ok {
		return &a, nil
	}
	return nil, nil
}

func (m *memoryScheduleRepo) ListAssignments(_ context.Context, groupID int64, startDate, endDate string) ([]schedule.Assignment, error) {
	var out []schedule.Assignment
	for date, a := range m.assignments[groupID] {
		if date >= startDate && date <= endDate {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memoryScheduleRepo) UpsertAssignment(_ context.Context, a schedule.Assignment) (schedule.Assignment, error) {
	if m.assignments[a.GroupID] == nil {
		m.assignments[a.GroupID] = make(map[string]schedule.Assignment)
	}
	a.ID = m.nextID
	m.nextID++
	m.assignments[a.GroupID][a.Date] = a
	return a, nil
}

type memoryEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (m *memoryEmployeeRepo) GetByBiometricID(_ context.Context, biometricID string) (employee.Employee, error) {
	e, ok := m.employees[biometricID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (m *memoryEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range m.employees {
		out = append(out, e)
	}
	return out, nil
}

func (m *memoryEmployeeRepo) UpdateSchedule(_ context.Context, biometricID string, _ employee.UpdateScheduleRequest) error {
	if _, ok := m.employees[biometricID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func groupID(id int64) *int64 { return &id }

func TestResolve_Precedence(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	scheduleRepo := newMemoryScheduleRepo()
	group, err := scheduleRepo.CreateGroup(ctx, "night rotation")
	require.NoError(t, err)
	_, err = scheduleRepo.UpsertAssignment(ctx, schedule.Assignment{
		GroupID: group.ID, Date: "2026-08-03", Start: "22:00", End: "06:00",
	})
	require.NoError(t, err)

	employeeRepo := &memoryEmployeeRepo{employees: map[string]employee.Employee{
		"101": {
			BiometricID:     "101",
			ScheduleStart:   "08:00",
			ScheduleEnd:     "17:00",
			ScheduleGroupID: groupID(group.ID),
		},
		"202": {BiometricID: "202", ScheduleStart: "08:00", ScheduleEnd: "17:00"},
		"303": {BiometricID: "303"},
	}}

	svc := NewScheduleService(scheduleRepo, employeeRepo)

	// Assignment date: the group override wins.
	resolved, err := svc.Resolve(ctx, "101", "2026-08-03")
	require.NoError(t, err)
	assert.Equal(t, "22:00", resolved.Start)
	assert.Equal(t, "06:00", resolved.End)
	assert.Equal(t, schedule.SourceOverride, resolved.Source)

	// Other dates fall through to the member's own default.
	resolved, err = svc.Resolve(ctx, "101", "2026-08-04")
	require.NoError(t, err)
	assert.Equal(t, "08:00", resolved.Start)
	assert.Equal(t, schedule.SourceDefault, resolved.Source)

	// No group at all: the employee default.
	resolved, err = svc.Resolve(ctx, "202", "2026-08-03")
	require.NoError(t, err)
	assert.Equal(t, schedule.SourceDefault, resolved.Source)

	// No schedule on the employee either: the system fallback.
	resolved, err = svc.Resolve(ctx, "303", "2026-08-03")
	require.NoError(t, err)
	assert.Equal(t, schedule.SystemDefaultStart, resolved.Start)
	assert.Equal(t, schedule.SystemDefaultEnd, resolved.End)
	assert.Equal(t, schedule.SourceSystem, resolved.Source)
}

func TestResolve_UnknownEmployeeGetsSystemDefault(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewScheduleService(
		newMemoryScheduleRepo(),
		&memoryEmployeeRepo{employees: map[string]employee.Employee{}},
	)

	resolved, err := svc.Resolve(ctx, "999", "2026-08-03")
	require.NoError(t, err)
	assert.Equal(t, schedule.SourceSystem, resolved.Source)
	assert.Equal(t, "09:00", resolved.Start)
	assert.Equal(t, "18:00", resolved.End)
}

func TestCreateGroup_Validation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewScheduleService(newMemoryScheduleRepo(), &memoryEmployeeRepo{})

	_, err := svc.CreateGroup(ctx, schedule.CreateGroupRequest{Name: ""})
	assert.Error(t, err)

	created, err := svc.CreateGroup(ctx, schedule.CreateGroupRequest{Name: "day shift"})
	require.NoError(t, err)
	assert.Equal(t, "day shift", created.Name)

	_, err = svc.CreateGroup(ctx, schedule.CreateGroupRequest{Name: "day shift"})
	assert.ErrorIs(t, err, schedule.ErrGroupNameExists)
}

func TestSetAssignment_UnknownGroup(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewScheduleService(newMemoryScheduleRepo(), &memoryEmployeeRepo{})

	_, err := svc.SetAssignment(ctx, schedule.SetAssignmentRequest{
		GroupID: 42, Date: "2026-08-03", Start: "09:00", End: "18:00",
	})
	assert.ErrorIs(t, err, schedule.ErrGroupNotFound)
}

func TestSetAssignment_ReplacesExisting(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := newMemoryScheduleRepo()
	svc := NewScheduleService(repo, &memoryEmployeeRepo{})

	group, err := svc.CreateGroup(ctx, schedule.CreateGroupRequest{Name: "rotation"})
	require.NoError(t, err)

	_, err = svc.SetAssignment(ctx, schedule.SetAssignmentRequest{
		GroupID: group.ID, Date: "2026-08-03", Start: "09:00", End: "18:00",
	})
	require.NoError(t, err)

	_, err = svc.SetAssignment(ctx, schedule.SetAssignmentRequest{
		GroupID: group.ID, Date: "2026-08-03", Start: "22:00", End: "06:00",
	})
	require.NoError(t, err)

	a, err := repo.GetAssignment(ctx, group.ID, "2026-08-03")
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, "22:00", a.Start)
}

func TestSetAssignment_Validation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewScheduleService(newMemoryScheduleRepo(), &memoryEmployeeRepo{})

	_, err := svc.SetAssignment(ctx, schedule.SetAssignmentRequest{
		GroupID: 1, Date: "03-08-2026", Start: "09:00", End: "18:00",
	})
	assert.Error(t, err)

	_, err = svc.SetAssignment(ctx, schedule.SetAssignmentRequest{
		GroupID: 1, Date: "2026-08-03", Start: "25:00", End: "18:00",
	})
	assert.Error(t, err)
}

func TestMonthView_RendersEveryDay(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := newMemoryScheduleRepo()
	svc := NewScheduleService(repo, &memoryEmployeeRepo{})

	group, err := svc.CreateGroup(ctx, schedule.CreateGroupRequest{Name: "rotation"})
	require.NoError(t, err)

	_, err = svc.SetAssignment(ctx, schedule.SetAssignmentRequest{
		GroupID: group.ID, Date: "2026-02-10", Start: "22:00", End: "06:00",
	})
	require.NoError(t, err)

	days, err := svc.MonthView(ctx, group.ID, 2026, 2)
	require.NoError(t, err)
	require.Len(t, days, 28)

	assert.Equal(t, "2026-02-01", days[0].Date)
	assert.Equal(t, "Sunday", days[0].DayName)
	assert.False(t, days[0].HasSchedule)

	tenth := days[9]
	assert.True(t, tenth.HasSchedule)
	require.NotNil(t, tenth.Schedule)
	assert.Equal(t, "22:00", tenth.Schedule.Start)
}

func TestMonthView_BadMonth(t *testing.T) {
	t.Parallel()

	svc := NewScheduleService(newMemoryScheduleRepo(), &memoryEmployeeRepo{})

	_, err := svc.MonthView(context.Background(), 1, 2026, 13)
	assert.Error(t, err)
}

func TestDeleteGroup(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewScheduleService(newMemoryScheduleRepo(), &memoryEmployeeRepo{})

	group, err := svc.CreateGroup(ctx, schedule.CreateGroupRequest{Name: "temp"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteGroup(ctx, group.ID))
	assert.ErrorIs(t, svc.DeleteGroup(ctx, group.ID), schedule.ErrGroupNotFound)
}
