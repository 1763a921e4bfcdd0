package dateutil

import "fmt"

// Reason identifies why a date string failed validation.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonRequired
	ReasonBadFormat
	ReasonImpossibleDate
	ReasonYearTooEarly
)

// String returns the reason name.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "valid"
	case ReasonRequired:
		return "required"
	case ReasonBadFormat:
		return "bad_format"
	case ReasonImpossibleDate:
		return "impossible_date"
	case ReasonYearTooEarly:
		return "year_too_early"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// Result is the outcome of Validate.
type Result struct {
	Reason Reason
	Date   Date // set when Reason is ReasonNone or ReasonYearTooEarly
	Floor  int  // earliest accepted year, set for ReasonYearTooEarly
}

// Valid reports whether the validated string was accepted.
func (r Result) Valid() bool {
	return r.Reason == ReasonNone
}

// Err returns the sentinel error for the failure, or nil when valid.
func (r Result) Err() error {
	switch r.Reason {
	case ReasonNone:
		return nil
	case ReasonRequired:
		return ErrRequired
	case ReasonBadFormat:
		return ErrBadFormat
	case ReasonImpossibleDate:
		return ErrImpossibleDate
	case ReasonYearTooEarly:
		return fmt.Errorf("%w: year cannot be earlier than %d", ErrYearTooEarly, r.Floor)
	default:
		return fmt.Errorf("unknown validation reason %d", int(r.Reason))
	}
}

// Message returns the user-facing message for the failure, or "" when valid.
func (r Result) Message() string {
	switch r.Reason {
	case ReasonNone:
		return ""
	case ReasonRequired:
		return "Date is required"
	case ReasonBadFormat:
		return "Date must be in DD.MM.YYYY format"
	case ReasonImpossibleDate:
		return "Invalid date"
	case ReasonYearTooEarly:
		return fmt.Sprintf("Year cannot be earlier than %d", r.Floor)
	default:
		return "Invalid date"
	}
}

// Validate checks a display date string. Rules run in order and the first
// failure wins: empty, pattern, calendar existence, year floor.
//
// Only the year is bounded below: a date earlier this year is accepted.
func Validate(s string, today Date) Result {
	if s == "" {
		return Result{Reason: ReasonRequired}
	}
	if !displayPattern.MatchString(s) {
		return Result{Reason: ReasonBadFormat}
	}
	d, err := ParseStrict(s)
	if err != nil {
		return Result{Reason: ReasonImpossibleDate}
	}
	if d.Year() < today.Year() {
		return Result{Reason: ReasonYearTooEarly, Date: d, Floor: today.Year()}
	}
	return Result{Reason: ReasonNone, Date: d}
}
