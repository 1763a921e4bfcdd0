// Package event defines the core domain types for agenda.
package event

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/javiermolinar/agenda/internal/dateutil"
)

// Validation errors.
var (
	ErrEmptyTitle = errors.New("title is required")
)

// Domain errors.
var (
	ErrNotFound = errors.New("event not found")
	ErrNoEvents = errors.New("no events to edit")
)

// Event is a titled calendar date.
type Event struct {
	ID        int64
	Title     string
	Date      string // DD.MM.YYYY
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FieldErrors holds per-field validation messages for the event form.
type FieldErrors struct {
	Title string
	Date  string
}

// Empty reports whether no field failed.
func (f FieldErrors) Empty() bool {
	return f.Title == "" && f.Date == ""
}

// Err returns the first failure as an error, title before date.
func (f FieldErrors) Err() error {
	switch {
	case f.Title != "":
		return ErrEmptyTitle
	case f.Date != "":
		return errors.New(f.Date)
	default:
		return nil
	}
}

// Check validates a title and a display date together, so a form can show
// both messages at once.
func Check(title, date string, today dateutil.Date) FieldErrors {
	var fe FieldErrors
	if strings.TrimSpace(title) == "" {
		fe.Title = "Title is required"
	}
	fe.Date = dateutil.Validate(date, today).Message()
	return fe
}

// New creates a new Event with validation.
// date must be DD.MM.YYYY, name a real date and not fall in a year before today's.
func New(title, date string, today dateutil.Date) (*Event, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}
	if err := dateutil.Validate(date, today).Err(); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Event{
		Title:     strings.TrimSpace(title),
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Day returns the parsed date of the event.
func (e *Event) Day() (dateutil.Date, error) {
	return dateutil.ParseStrict(e.Date)
}

// IsPast reports whether the event's date is before today.
func (e *Event) IsPast(today dateutil.Date) bool {
	d, err := e.Day()
	if err != nil {
		return false
	}
	return d.Before(today)
}

// Clipboard returns the one-line form used when copying an event.
func (e *Event) Clipboard() string {
	return e.Date + " " + e.Title
}

// SortByDate orders events by date, then by ID. Unparseable dates sort last.
func SortByDate(events []*Event) {
	sort.SliceStable(events, func(i, j int) bool {
		di, erri := events[i].Day()
		dj, errj := events[j].Day()
		switch {
		case erri != nil || errj != nil:
			return erri == nil && errj != nil
		case di != dj:
			return di.Before(dj)
		default:
			return events[i].ID < events[j].ID
		}
	})
}

// Find returns the event with id, or nil.
func Find(events []*Event, id int64) *Event {
	for _, e := range events {
		if e.ID == id {
			return e
		}
	}
	return nil
}
