// Package dateutil provides date parsing, formatting and validation utilities.
package dateutil

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Parse and validation errors.
var (
	ErrRequired       = errors.New("date is required")
	ErrBadFormat      = errors.New("date must be in DD.MM.YYYY format")
	ErrImpossibleDate = errors.New("date does not exist in the calendar")
	ErrYearTooEarly   = errors.New("year is too early")
)

// DisplayLayout is the placeholder shown for an empty date field.
const DisplayLayout = "DD.MM.YYYY"

// ISOLayout is the layout used for storage and machine-readable output.
const ISOLayout = "2006-01-02"

var displayPattern = regexp.MustCompile(`^(\d{2})\.(\d{2})\.(\d{4})$`)

// Date is a calendar date without time of day. The zero value is not a valid
// date; build one with NewDate, FromTime or ParseStrict.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate returns the date for the given components.
// Returns ErrImpossibleDate if the components do not name a real date
// (e.g. 30 February) or the year does not fit in four digits.
func NewDate(year int, month time.Month, day int) (Date, error) {
	if year < 0 || year > 9999 {
		return Date{}, fmt.Errorf("%w: year %d out of range", ErrImpossibleDate, year)
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (31.04 -> 01.05), so a real date must round-trip.
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, ErrImpossibleDate
	}
	return Date{year: year, month: month, day: day}, nil
}

// FromTime returns the local calendar date of t.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// Today returns the current local date.
func Today() Date {
	return FromTime(time.Now())
}

// Year returns the year.
func (d Date) Year() int { return d.year }

// Month returns the month.
func (d Date) Month() time.Month { return d.month }

// Day returns the day of the month.
func (d Date) Day() int { return d.day }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Time returns midnight of d in loc.
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.year != o.year:
		return cmpInt(d.year, o.year)
	case d.month != o.month:
		return cmpInt(int(d.month), int(o.month))
	default:
		return cmpInt(d.day, o.day)
	}
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// After reports whether d is strictly later than o.
func (d Date) After(o Date) bool { return d.Compare(o) > 0 }

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time(time.UTC).AddDate(0, 0, n))
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

// String returns the display form of d.
func (d Date) String() string {
	return Format(d)
}

// Format returns d as DD.MM.YYYY.
func Format(d Date) string {
	return fmt.Sprintf("%02d.%02d.%04d", d.day, int(d.month), d.year)
}

// ParseStrict parses a DD.MM.YYYY string.
// Returns ErrBadFormat if s does not match the pattern and ErrImpossibleDate
// if it matches but names a date that does not exist.
func ParseStrict(s string) (Date, error) {
	m := displayPattern.FindStringSubmatch(s)
	if m == nil {
		return Date{}, ErrBadFormat
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	return NewDate(year, time.Month(month), day)
}

// FormatISO returns d as YYYY-MM-DD.
func FormatISO(d Date) string {
	return d.Time(time.UTC).Format(ISOLayout)
}

// ParseISO parses a YYYY-MM-DD string.
func ParseISO(s string) (Date, error) {
	t, err := time.Parse(ISOLayout, s)
	if err != nil {
		return Date{}, ErrBadFormat
	}
	return FromTime(t), nil
}

// DaysInMonth returns the number of days in month of year.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
