package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/waspernest/pe-bms-node/internal/pkg/holiday"
)

func TestClassifyDay_RestDay(t *testing.T) {
	t.Parallel()

	sunday := "Sunday"
	class := ClassifyDay("2026-08-30", &sunday, holiday.None{})
	assert.True(t, class.IsRestDay)
	assert.Equal(t, "Sunday", class.DayName)

	class = ClassifyDay("2026-08-31", &sunday, holiday.None{})
	assert.False(t, class.IsRestDay)
	assert.Equal(t, "Monday", class.DayName)
}

func TestClassifyDay_NumericRestDay(t *testing.T) {
	t.Parallel()

	zero := "0" // Sunday
	class := ClassifyDay("2026-08-30", &zero, holiday.None{})
	assert.True(t, class.IsRestDay)
}

func TestClassifyDay_Holiday(t *testing.T) {
	t.Parallel()

	class := ClassifyDay("2026-12-25", nil, holiday.NewPhilippines())
	assert.True(t, class.IsHoliday)
	assert.Equal(t, "Christmas Day", class.HolidayName)
	assert.Equal(t, holiday.TypeRegular, class.HolidayType)
}

func TestClassifyDay_BadRestDayValue(t *testing.T) {
	t.Parallel()

	junk := "someday"
	class := ClassifyDay("2026-08-30", &junk, holiday.None{})
	assert.False(t, class.IsRestDay)
}
