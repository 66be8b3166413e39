package schedule

import "time"

// CalendarDay is a selectable cell in the booking month grid.
type CalendarDay struct {
	Day        int
	Date       string // YYYY-MM-DD
	Selectable bool
}

// MonthView is the grid the booking calendar renders: leading blanks to align
// the first day under its weekday column, then the day cells. Days before
// business-local today are rendered but not selectable.
type MonthView struct {
	Year          int
	Month         time.Month
	LeadingBlanks int
	Days          []CalendarDay
}

// NewMonthView builds the grid for a month. today must be a business-local
// midnight; cells strictly before it are disabled.
func NewMonthView(year int, month time.Month, today time.Time) MonthView {
	loc := today.Location()
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	view := MonthView{
		Year:          year,
		Month:         month,
		LeadingBlanks: int(first.Weekday()),
		Days:          make([]CalendarDay, 0, daysInMonth),
	}
	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, loc)
		view.Days = append(view.Days, CalendarDay{
			Day:        d,
			Date:       date.Format("2006-01-02"),
			Selectable: !date.Before(today),
		})
	}
	return view
}

// MonthInPast reports whether the whole month lies before business-local
// today's month. Navigation back into such a month is rejected; past days
// inside the current month remain visible but disabled.
func MonthInPast(year int, month time.Month, today time.Time) bool {
	if year != today.Year() {
		return year < today.Year()
	}
	return month < today.Month()
}

// IsPastDate reports whether a selected calendar date lies before
// business-local today.
func IsPastDate(date time.Time, today time.Time) bool {
	return date.Before(today)
}
