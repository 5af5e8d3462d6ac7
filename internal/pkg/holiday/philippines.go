package holiday

import (
	"sync"
	"time"
)

// Philippines is the PH holiday calendar: fixed-date holidays plus the
// Easter-relative movable ones. Islamic holidays (Eid'l Fitr, Eid'l Adha)
// are proclaimed per-year by the government and are not computable here;
// they can be added per deployment via AddFixed.
type Philippines struct {
	mu    sync.Mutex
	years map[int]map[string]Holiday // "MM-DD" -> holiday, per year
	extra map[string]Holiday         // exact "YYYY-MM-DD" additions
}

func NewPhilippines() *Philippines {
	return &Philippines{
		years: make(map[int]map[string]Holiday),
		extra: make(map[string]Holiday),
	}
}

// AddFixed registers a proclaimed holiday for an exact date.
func (p *Philippines) AddFixed(date, name, typ string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.extra[date] = Holiday{Name: name, Type: typ}
}

func (p *Philippines) Holiday(date string) (Holiday, bool) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return Holiday{}, false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if h, ok := p.extra[date]; ok {
		return h, true
	}

	year := t.Year()
	table, ok := p.years[year]
	if !ok {
		table = buildYear(year)
		p.years[year] = table
	}

	h, ok := table[t.Format("01-02")]
	return h, ok
}

func buildYear(year int) map[string]Holiday {
	table := map[string]Holiday{
		"01-01": {Name: "New Year's Day", Type: TypeRegular},
		"04-09": {Name: "Araw ng Kagitingan", Type: TypeRegular},
		"05-01": {Name: "Labor Day", Type: TypeRegular},
		"06-12": {Name: "Independence Day", Type: TypeRegular},
		"11-30": {Name: "Bonifacio Day", Type: TypeRegular},
		"12-25": {Name: "Christmas Day", Type: TypeRegular},
		"12-30": {Name: "Rizal Day", Type: TypeRegular},

		"02-25": {Name: "EDSA People Power Revolution Anniversary", Type: TypeSpecial},
		"08-21": {Name: "Ninoy Aquino Day", Type: TypeSpecial},
		"11-01": {Name: "All Saints' Day", Type: TypeSpecial},
		"11-02": {Name: "All Souls' Day", Type: TypeSpecial},
		"12-08": {Name: "Feast of the Immaculate Conception", Type: TypeSpecial},
		"12-24": {Name: "Christmas Eve", Type: TypeSpecial},
		"12-31": {Name: "New Year's Eve", Type: TypeSpecial},
	}

	// National Heroes Day: last Monday of August.
	table[lastMondayOfAugust(year).Format("01-02")] = Holiday{
		Name: "National Heroes Day", Type: TypeRegular,
	}

	easter := easterSunday(year)
	table[easter.AddDate(0, 0, -3).Format("01-02")] = Holiday{Name: "Maundy Thursday", Type: TypeRegular}
	table[easter.AddDate(0, 0, -2).Format("01-02")] = Holiday{Name: "Good Friday", Type: TypeRegular}
	table[easter.AddDate(0, 0, -1).Format("01-02")] = Holiday{Name: "Black Saturday", Type: TypeSpecial}

	return table
}

func lastMondayOfAugust(year int) time.Time {
	d := time.Date(year, time.August, 31, 0, 0, 0, 0, time.UTC)
	for d.Weekday() != time.Monday {
		d = d.AddDate(0, 0, -1)
	}
	return d
}

// easterSunday computes Gregorian Easter via the anonymous computus.
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

var _ Calendar = (*Philippines)(nil)
