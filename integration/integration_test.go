package integration

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/javiermolinar/agenda/internal/config"
	"github.com/javiermolinar/agenda/internal/dateutil"
	"github.com/javiermolinar/agenda/internal/db"
	"github.com/javiermolinar/agenda/internal/event"
	"github.com/javiermolinar/agenda/internal/ical"
	"github.com/javiermolinar/agenda/internal/tui/theme"
	"github.com/javiermolinar/agenda/internal/ui"
)

// openRepo creates a fresh repository for each test with automatic cleanup.
func openRepo(t *testing.T) *db.SQLite {
	t.Helper()
	return openRepoAt(t, filepath.Join(t.TempDir(), "test.db"))
}

func openRepoAt(t *testing.T, path string) *db.SQLite {
	t.Helper()
	repo, err := db.New(path)
	if err != nil {
		t.Fatalf("failed to open repo: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

// fixedToday is the reference date for validation in these tests.
func fixedToday(t *testing.T) dateutil.Date {
	t.Helper()
	d, err := dateutil.NewDate(2026, time.October, 18)
	if err != nil {
		t.Fatalf("NewDate: %v", err)
	}
	return d
}

// createEvent is a helper to validate and insert an event.
func createEvent(t *testing.T, repo *db.SQLite, title, date string) *event.Event {
	t.Helper()
	e, err := event.New(title, date, fixedToday(t))
	if err != nil {
		t.Fatalf("failed to create event: %v", err)
	}
	if err := repo.CreateEvent(context.Background(), e); err != nil {
		t.Fatalf("failed to insert event: %v", err)
	}
	return e
}

func TestEventLifecycle(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	e := createEvent(t, repo, "Dentist", "20.10.2026")
	if e.ID == 0 {
		t.Fatal("expected event ID to be set after insert")
	}

	got, err := repo.GetEvent(ctx, e.ID)
	if err != nil {
		t.Fatalf("failed to get event: %v", err)
	}
	if got.Title != "Dentist" || got.Date != "20.10.2026" {
		t.Errorf("got %q on %s", got.Title, got.Date)
	}

	got.Title = "Dentist checkup"
	got.Date = "21.10.2026"
	if err := repo.UpdateEvent(ctx, got); err != nil {
		t.Fatalf("failed to update event: %v", err)
	}

	reloaded, err := repo.GetEvent(ctx, e.ID)
	if err != nil {
		t.Fatalf("failed to reload event: %v", err)
	}
	if reloaded.Title != "Dentist checkup" || reloaded.Date != "21.10.2026" {
		t.Errorf("after update got %q on %s", reloaded.Title, reloaded.Date)
	}
	if reloaded.UpdatedAt.Before(reloaded.CreatedAt) {
		t.Errorf("UpdatedAt %v before CreatedAt %v", reloaded.UpdatedAt, reloaded.CreatedAt)
	}

	if err := repo.DeleteEvent(ctx, e.ID); err != nil {
		t.Fatalf("failed to delete event: %v", err)
	}
	if _, err := repo.GetEvent(ctx, e.ID); !errors.Is(err, event.ErrNotFound) {
		t.Errorf("GetEvent after delete: got %v, want ErrNotFound", err)
	}
	if err := repo.DeleteEvent(ctx, e.ID); !errors.Is(err, event.ErrNotFound) {
		t.Errorf("second delete: got %v, want ErrNotFound", err)
	}
}

func TestEventValidation(t *testing.T) {
	today := fixedToday(t)

	tests := []struct {
		name    string
		title   string
		date    string
		wantErr bool
	}{
		{name: "valid", title: "Dentist", date: "20.10.2026"},
		{name: "earlier this year", title: "Retro", date: "01.01.2026"},
		{name: "far future", title: "Eclipse", date: "12.08.2045"},
		{name: "leap day", title: "Leap", date: "29.02.2028"},
		{name: "empty title", title: "  ", date: "20.10.2026", wantErr: true},
		{name: "last year", title: "Old", date: "31.12.2025", wantErr: true},
		{name: "impossible day", title: "Nope", date: "31.11.2026", wantErr: true},
		{name: "no leap day", title: "Nope", date: "29.02.2027", wantErr: true},
		{name: "wrong format", title: "Nope", date: "2026-10-20", wantErr: true},
		{name: "short year", title: "Nope", date: "20.10.26", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := event.New(tt.title, tt.date, today)
			if tt.wantErr && err == nil {
				t.Error("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestDateRangeAcrossYearBoundary(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	createEvent(t, repo, "New year", "01.01.2027")
	createEvent(t, repo, "Party", "31.12.2026")
	createEvent(t, repo, "Shopping", "02.12.2026")
	createEvent(t, repo, "Holiday", "10.01.2027")

	start, _ := dateutil.NewDate(2026, time.December, 30)
	end, _ := dateutil.NewDate(2027, time.January, 2)
	events, err := repo.ListEventsByDateRange(ctx, start, end)
	if err != nil {
		t.Fatalf("ListEventsByDateRange: %v", err)
	}

	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Title != "Party" || events[1].Title != "New year" {
		t.Errorf("range order = %q, %q", events[0].Title, events[1].Title)
	}

	all, err := repo.ListEvents(ctx)
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	event.SortByDate(all)
	var dates []string
	for _, e := range all {
		dates = append(dates, e.Date)
	}
	want := "02.12.2026 31.12.2026 01.01.2027 10.01.2027"
	if got := strings.Join(dates, " "); got != want {
		t.Errorf("sorted dates = %s, want %s", got, want)
	}
}

func TestCalendarRoundTrip(t *testing.T) {
	source := openRepo(t)
	dest := openRepo(t)
	ctx := context.Background()

	createEvent(t, source, "Dentist", "20.10.2026")
	createEvent(t, source, "Party", "31.12.2026")
	createEvent(t, source, "Conference", "15.03.2027")

	events, err := source.ListEvents(ctx)
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}

	var buf bytes.Buffer
	if err := ical.Export(&buf, events, time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Export: %v", err)
	}

	res, err := ical.Import(&buf, fixedToday(t))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if len(res.Skipped) != 0 {
		t.Fatalf("round trip skipped %+v", res.Skipped)
	}
	if err := dest.CreateEvents(ctx, res.Events); err != nil {
		t.Fatalf("CreateEvents: %v", err)
	}

	imported, err := dest.ListEvents(ctx)
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(imported) != len(events) {
		t.Fatalf("imported %d events, want %d", len(imported), len(events))
	}
	for i := range events {
		if imported[i].Title != events[i].Title || imported[i].Date != events[i].Date {
			t.Errorf("event %d: got %q on %s, want %q on %s",
				i, imported[i].Title, imported[i].Date, events[i].Title, events[i].Date)
		}
	}
}

func TestThemePreferenceSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agenda.db")
	ctx := context.Background()

	first, err := db.New(path)
	if err != nil {
		t.Fatalf("db.New: %v", err)
	}
	if err := first.SetPreference(ctx, event.PreferenceTheme, string(theme.ModeLight)); err != nil {
		t.Fatalf("SetPreference: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	second := openRepoAt(t, path)
	value, ok, err := second.Preference(ctx, event.PreferenceTheme)
	if err != nil {
		t.Fatalf("Preference: %v", err)
	}

	detect := func() theme.Mode { return theme.ModeDark }
	if got := theme.Resolve(value, ok, config.ThemeDark, detect); got != theme.ModeLight {
		t.Errorf("resolved %s, want the stored light theme over the config", got)
	}

	if err := second.ClearPreference(ctx, event.PreferenceTheme); err != nil {
		t.Fatalf("ClearPreference: %v", err)
	}
	value, ok, _ = second.Preference(ctx, event.PreferenceTheme)
	if got := theme.Resolve(value, ok, config.ThemeAuto, detect); got != theme.ModeDark {
		t.Errorf("resolved %s after clearing, want detected dark", got)
	}
}

// runCLI runs the command line against the database at path.
func runCLI(t *testing.T, path string, args ...string) string {
	t.Helper()
	cfg := config.Default()
	cfg.Storage.DBPath = path
	cfg.UI.Theme = config.ThemeDark

	app := ui.NewApp(nil, cfg)
	defer func() { _ = app.Close() }()

	var out bytes.Buffer
	root := app.Command()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&out)
	if err := root.Execute(); err != nil {
		t.Fatalf("agenda %s: %v\n%s", strings.Join(args, " "), err, out.String())
	}
	return out.String()
}

func TestCLIWritesThroughToDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agenda.db")

	runCLI(t, path, "add", "Dentist", "--date", "tomorrow")
	runCLI(t, path, "add", "Standup")
	runCLI(t, path, "theme", "light")

	repo := openRepoAt(t, path)
	ctx := context.Background()

	events, err := repo.ListEvents(ctx)
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	today := dateutil.Today()
	if events[0].Date != dateutil.Format(today.AddDays(1)) || events[1].Date != dateutil.Format(today) {
		t.Errorf("stored dates %s and %s", events[0].Date, events[1].Date)
	}

	if value, ok, _ := repo.Preference(ctx, event.PreferenceTheme); !ok || value != "light" {
		t.Errorf("theme preference = %q (%t)", value, ok)
	}

	out := runCLI(t, path, "list", "--from", "today", "--to", "tomorrow")
	if strings.Index(out, "Standup") > strings.Index(out, "Dentist") {
		t.Errorf("list not ordered by date:\n%s", out)
	}
}
