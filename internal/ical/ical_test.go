package ical

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/javiermolinar/agenda/internal/dateutil"
	"github.com/javiermolinar/agenda/internal/event"
)

func mustDate(t *testing.T, year int, month time.Month, day int) dateutil.Date {
	t.Helper()
	d, err := dateutil.NewDate(year, month, day)
	if err != nil {
		t.Fatalf("NewDate: %v", err)
	}
	return d
}

func TestExport(t *testing.T) {
	events := []*event.Event{
		{ID: 1, Title: "Dentist", Date: "20.10.2026"},
		{ID: 2, Title: "New year", Date: "31.12.2026"},
	}

	var buf bytes.Buffer
	if err := Export(&buf, events, time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"PRODID:" + ProductID,
		"SUMMARY:Dentist",
		"DTSTART;VALUE=DATE:20261020",
		"DTEND;VALUE=DATE:20261021",
		"DTEND;VALUE=DATE:20270101",
		"UID:" + UID(1),
	} {
		if !strings.Contains(out, want) {
			t.Errorf("export missing %q:\n%s", want, out)
		}
	}
}

func TestExport_InvalidDate(t *testing.T) {
	var buf bytes.Buffer
	err := Export(&buf, []*event.Event{{ID: 9, Title: "x", Date: "99.99.2026"}}, time.Now())
	if !errors.Is(err, dateutil.ErrImpossibleDate) {
		t.Errorf("got error %v, want ErrImpossibleDate", err)
	}
}

func TestUID_Stable(t *testing.T) {
	if UID(7) != UID(7) {
		t.Error("UID should be deterministic")
	}
	if UID(7) == UID(8) {
		t.Error("UIDs of different events should differ")
	}
	if !strings.HasSuffix(UID(7), "@agenda") {
		t.Errorf("UID(7) = %q, want @agenda suffix", UID(7))
	}
}

func TestExportImport(t *testing.T) {
	today := mustDate(t, 2026, time.October, 18)
	events := []*event.Event{
		{ID: 1, Title: "Dentist", Date: "20.10.2026"},
		{ID: 2, Title: "Leap day", Date: "29.02.2028"},
	}

	var buf bytes.Buffer
	if err := Export(&buf, events, time.Now()); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	res, err := Import(&buf, today)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if len(res.Skipped) != 0 {
		t.Fatalf("unexpected skipped: %+v", res.Skipped)
	}
	if len(res.Events) != 2 {
		t.Fatalf("got %d events, want 2", len(res.Events))
	}
	for i, e := range res.Events {
		if e.Title != events[i].Title || e.Date != events[i].Date {
			t.Errorf("event %d = %q %q, want %q %q", i, e.Title, e.Date, events[i].Title, events[i].Date)
		}
	}
}

func TestImport_SkipsInvalid(t *testing.T) {
	today := mustDate(t, 2026, time.October, 18)
	calendar := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//test//EN",
		"BEGIN:VEVENT",
		"UID:ok",
		"SUMMARY:Review",
		"DTSTART;VALUE=DATE:20261101",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:old",
		"SUMMARY:Old",
		"DTSTART;VALUE=DATE:20200101",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:untitled",
		"DTSTART;VALUE=DATE:20261102",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:nostart",
		"SUMMARY:No start",
		"END:VEVENT",
		"END:VCALENDAR",
		"",
	}, "\r\n")

	res, err := Import(strings.NewReader(calendar), today)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if len(res.Events) != 1 || res.Events[0].Title != "Review" || res.Events[0].Date != "01.11.2026" {
		t.Fatalf("got events %+v", res.Events)
	}
	if len(res.Skipped) != 3 {
		t.Fatalf("got %d skipped, want 3", len(res.Skipped))
	}

	reasons := map[string]error{}
	for _, s := range res.Skipped {
		reasons[s.UID] = s.Reason
	}
	if !errors.Is(reasons["old"], dateutil.ErrYearTooEarly) {
		t.Errorf("old: got %v", reasons["old"])
	}
	if !errors.Is(reasons["untitled"], event.ErrEmptyTitle) {
		t.Errorf("untitled: got %v", reasons["untitled"])
	}
	if reasons["nostart"] == nil {
		t.Error("nostart: expected a reason")
	}
}

func TestImport_Empty(t *testing.T) {
	calendar := "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:-//test//EN\r\nEND:VCALENDAR\r\n"
	_, err := Import(strings.NewReader(calendar), mustDate(t, 2026, time.October, 18))
	if !errors.Is(err, ErrEmptyCalendar) {
		t.Errorf("got error %v, want ErrEmptyCalendar", err)
	}
}
