package ical

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/javiermolinar/agenda/internal/dateutil"
	"github.com/javiermolinar/agenda/internal/event"
)

// ErrEmptyCalendar is returned when a calendar holds no VEVENTs.
var ErrEmptyCalendar = errors.New("calendar has no events")

// Skipped describes a VEVENT that could not become an event.
type Skipped struct {
	UID    string
	Title  string
	Reason error
}

// Result holds the outcome of parsing a calendar.
type Result struct {
	Events  []*event.Event
	Skipped []Skipped
}

// Import parses a calendar and converts each VEVENT into an event dated on
// its start day. VEVENTs go through the same checks as the event form, so
// untitled events and those in years before today's are skipped.
func Import(r io.Reader, today dateutil.Date) (*Result, error) {
	cal, err := ics.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("parsing calendar: %w", err)
	}

	vevents := cal.Events()
	if len(vevents) == 0 {
		return nil, ErrEmptyCalendar
	}

	res := &Result{}
	for _, ve := range vevents {
		uid, title := propertyValue(ve, ics.ComponentPropertyUniqueId), propertyValue(ve, ics.ComponentPropertySummary)

		day, err := startDay(ve)
		if err != nil {
			res.Skipped = append(res.Skipped, Skipped{UID: uid, Title: title, Reason: err})
			continue
		}

		e, err := event.New(title, dateutil.Format(day), today)
		if err != nil {
			res.Skipped = append(res.Skipped, Skipped{UID: uid, Title: title, Reason: err})
			continue
		}
		res.Events = append(res.Events, e)
	}
	return res, nil
}

func propertyValue(ve *ics.VEvent, prop ics.ComponentProperty) string {
	if p := ve.GetProperty(prop); p != nil {
		return strings.TrimSpace(p.Value)
	}
	return ""
}

// startDay returns the calendar day DTSTART falls on. All-day values are
// taken as written; timed values are converted to local time first.
func startDay(ve *ics.VEvent) (dateutil.Date, error) {
	p := ve.GetProperty(ics.ComponentPropertyDtStart)
	if p == nil || p.Value == "" {
		return dateutil.Date{}, errors.New("missing DTSTART")
	}

	if isAllDay(p) {
		t, err := ve.GetAllDayStartAt()
		if err != nil {
			return dateutil.Date{}, fmt.Errorf("parsing DTSTART: %w", err)
		}
		return dateutil.NewDate(t.Year(), t.Month(), t.Day())
	}

	t, err := ve.GetStartAt()
	if err != nil {
		return dateutil.Date{}, fmt.Errorf("parsing DTSTART: %w", err)
	}
	return dateutil.FromTime(t.In(time.Local)), nil
}

func isAllDay(p *ics.IANAProperty) bool {
	if vs, ok := p.ICalParameters["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
		return true
	}
	return !strings.Contains(p.Value, "T")
}
