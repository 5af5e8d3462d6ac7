package holiday

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhilippines_FixedHolidays(t *testing.T) {
	t.Parallel()
	ph := NewPhilippines()

	h, ok := ph.Holiday("2026-01-01")
	require.True(t, ok)
	assert.Equal(t, "New Year's Day", h.Name)
	assert.Equal(t, TypeRegular, h.Type)

	h, ok = ph.Holiday("2026-08-21")
	require.True(t, ok)
	assert.Equal(t, "Ninoy Aquino Day", h.Name)
	assert.Equal(t, TypeSpecial, h.Type)

	_, ok = ph.Holiday("2026-03-03")
	assert.False(t, ok)
}

func TestPhilippines_EasterRelative(t *testing.T) {
	t.Parallel()
	ph := NewPhilippines()

	// Easter 2026 falls on April 5.
	h, ok := ph.Holiday("2026-04-03")
	require.True(t, ok)
	assert.Equal(t, "Good Friday", h.Name)
	assert.Equal(t, TypeRegular, h.Type)

	h, ok = ph.Holiday("2026-04-02")
	require.True(t, ok)
	assert.Equal(t, "Maundy Thursday", h.Name)

	h, ok = ph.Holiday("2026-04-04")
	require.True(t, ok)
	assert.Equal(t, "Black Saturday", h.Name)
	assert.Equal(t, TypeSpecial, h.Type)
}

func TestPhilippines_NationalHeroesDay(t *testing.T) {
	t.Parallel()
	ph := NewPhilippines()

	// Last Monday of August 2026.
	h, ok := ph.Holiday("2026-08-31")
	require.True(t, ok)
	assert.Equal(t, "National Heroes Day", h.Name)
}

func TestPhilippines_AddFixed(t *testing.T) {
	t.Parallel()
	ph := NewPhilippines()

	ph.AddFixed("2026-03-20", "Eid'l Fitr", TypeRegular)

	h, ok := ph.Holiday("2026-03-20")
	require.True(t, ok)
	assert.Equal(t, "Eid'l Fitr", h.Name)
}

func TestForRegion(t *testing.T) {
	t.Parallel()

	_, ok := ForRegion("PH").Holiday("2026-12-25")
	assert.True(t, ok)

	_, ok = ForRegion("XX").Holiday("2026-12-25")
	assert.False(t, ok)
}
