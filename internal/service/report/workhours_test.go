package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCalculateWorkHours_EarlyInLateOut(t *testing.T) {
	t.Parallel()

	// 08:55-18:30 against 09:00-18:00: early arrival is not late time,
	// the half hour past schedule end is overtime.
	hours := CalculateWorkHours(strPtr("08:55"), strPtr("18:30"), "09:00", "18:00")
	require.NotNil(t, hours)

	assert.InDelta(t, 9.58, hours.NT, 0.01)
	assert.Equal(t, 0.5, hours.OT)
	assert.Equal(t, 0.0, hours.LT)
	assert.Equal(t, 0.0, hours.UT)
	assert.Equal(t, 0.0, hours.ND)
}

func TestCalculateWorkHours_OvernightShift(t *testing.T) {
	t.Parallel()

	// 22:10 in, 06:05 out next day against a 22:00-06:00 schedule.
	hours := CalculateWorkHours(strPtr("22:10"), strPtr("06:05"), "22:00", "06:00")
	require.NotNil(t, hours)

	assert.InDelta(t, 7.92, hours.NT, 0.01)
	assert.InDelta(t, 7.92, hours.ND, 0.01)
	assert.InDelta(t, 0.17, hours.LT, 0.01)
	assert.InDelta(t, 0.08, hours.OT, 0.01)
	assert.InDelta(t, 0.08, hours.UT, 0.01)
}

func TestCalculateWorkHours_LateAndUndertime(t *testing.T) {
	t.Parallel()

	hours := CalculateWorkHours(strPtr("09:30"), strPtr("17:00"), "09:00", "18:00")
	require.NotNil(t, hours)

	assert.Equal(t, 7.5, hours.NT)
	assert.Equal(t, 0.5, hours.LT)
	assert.Equal(t, 1.5, hours.UT)
	assert.Equal(t, 0.0, hours.OT)
}

func TestCalculateWorkHours_NightDiffWindow(t *testing.T) {
	t.Parallel()

	// Only the 21:00-06:00 overlap with 22:00-06:00 counts as ND.
	hours := CalculateWorkHours(strPtr("21:00"), strPtr("06:00"), "21:00", "05:00")
	require.NotNil(t, hours)

	assert.Equal(t, 9.0, hours.NT)
	assert.Equal(t, 8.0, hours.ND)
}

func TestCalculateWorkHours_MissingSchedEndDefaultsNineHours(t *testing.T) {
	t.Parallel()

	hours := CalculateWorkHours(strPtr("09:00"), strPtr("19:00"), "09:00", "")
	require.NotNil(t, hours)

	assert.Equal(t, 10.0, hours.NT)
	assert.Equal(t, 1.0, hours.OT)
	assert.Equal(t, 0.0, hours.UT)
}

func TestCalculateWorkHours_TwelveHourPunches(t *testing.T) {
	t.Parallel()

	hours := CalculateWorkHours(strPtr("8:55 AM"), strPtr("6:30 PM"), "09:00", "18:00")
	require.NotNil(t, hours)

	assert.InDelta(t, 9.58, hours.NT, 0.01)
	assert.Equal(t, 0.5, hours.OT)
}

func TestCalculateWorkHours_NilOnBadInput(t *testing.T) {
	t.Parallel()

	assert.Nil(t, CalculateWorkHours(nil, strPtr("18:00"), "09:00", "18:00"))
	assert.Nil(t, CalculateWorkHours(strPtr("09:00"), nil, "09:00", "18:00"))
	assert.Nil(t, CalculateWorkHours(strPtr("09:00"), strPtr("18:00"), "", "18:00"))
	assert.Nil(t, CalculateWorkHours(strPtr("garbage"), strPtr("18:00"), "09:00", "18:00"))
	assert.Nil(t, CalculateWorkHours(strPtr("09:00"), strPtr("garbage"), "09:00", "18:00"))
}

func TestScheduleHours(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 9.0, ScheduleHours("09:00", "18:00"))
	assert.Equal(t, 8.0, ScheduleHours("22:00", "06:00"))
	assert.Equal(t, 0.0, ScheduleHours("", "18:00"))
	assert.Equal(t, 8.0, ScheduleHours("junk", "18:00"))
}
