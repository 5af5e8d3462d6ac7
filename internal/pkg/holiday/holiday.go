package holiday

// Holiday types mirror Philippine labor classifications, which carry
// different pay multipliers downstream.
const (
	TypeRegular = "regular"
	TypeSpecial = "special"
)

type Holiday struct {
	Name string
	Type string
}

// Calendar answers whether a date is a holiday in some region.
// Implementations take the date as "YYYY-MM-DD".
type Calendar interface {
	Holiday(date string) (Holiday, bool)
}

// None is a Calendar with no holidays, for regions without a table.
type None struct{}

func (None) Holiday(string) (Holiday, bool) { return Holiday{}, false }

// ForRegion returns the calendar for an ISO country code. Unknown regions
// get an empty calendar rather than an error so classification degrades
// to plain workday/rest-day logic.
func ForRegion(region string) Calendar {
	switch region {
	case "PH", "ph":
		return NewPhilippines()
	default:
		return None{}
	}
}
