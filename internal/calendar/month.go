// Package calendar builds the render model of a month grid.
package calendar

import (
	"fmt"
	"time"

	"github.com/javiermolinar/agenda/internal/dateutil"
)

// Month is a month/year cursor, independent of any selected date.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing d.
func MonthOf(d dateutil.Date) Month {
	return Month{Year: d.Year(), Month: d.Month()}
}

// CurrentMonth returns the month containing now.
func CurrentMonth(now time.Time) Month {
	return Month{Year: now.Year(), Month: now.Month()}
}

// Next returns the following month, rolling December into January of the next year.
func (m Month) Next() Month {
	if m.Month == time.December {
		return Month{Year: m.Year + 1, Month: time.January}
	}
	return Month{Year: m.Year, Month: m.Month + 1}
}

// Prev returns the preceding month, rolling January into December of the previous year.
func (m Month) Prev() Month {
	if m.Month == time.January {
		return Month{Year: m.Year - 1, Month: time.December}
	}
	return Month{Year: m.Year, Month: m.Month - 1}
}

// Days returns the number of days in the month.
func (m Month) Days() int {
	return dateutil.DaysInMonth(m.Year, m.Month)
}

// FirstWeekday returns the Monday-first index (0=Monday ... 6=Sunday) of the 1st.
func (m Month) FirstWeekday() int {
	first := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
	return dateutil.MondayIndex(first.Weekday())
}

// Label returns the heading shown above the grid, e.g. "October 2026".
func (m Month) Label() string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}
