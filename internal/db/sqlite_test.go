package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/javiermolinar/agenda/internal/dateutil"
	"github.com/javiermolinar/agenda/internal/event"
)

func TestCreateEvent(t *testing.T) {
	repo := newTestRepo(t)

	e := &event.Event{Title: "Dentist", Date: "20.10.2026"}
	if err := repo.CreateEvent(context.Background(), e); err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}

	if e.ID == 0 {
		t.Error("expected ID to be set after insert")
	}
	if e.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be stamped")
	}
}

func TestCreateEvent_UniqueIDs(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	seen := make(map[int64]bool)
	for i := 0; i < 5; i++ {
		e := &event.Event{Title: "Standup", Date: "20.10.2026"}
		if err := repo.CreateEvent(ctx, e); err != nil {
			t.Fatalf("CreateEvent failed: %v", err)
		}
		if seen[e.ID] {
			t.Fatalf("duplicate ID %d", e.ID)
		}
		seen[e.ID] = true
	}
}

func TestCreateEvent_InvalidDate(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.CreateEvent(context.Background(), &event.Event{Title: "x", Date: "2026-10-20"})
	if !errors.Is(err, dateutil.ErrBadFormat) {
		t.Errorf("got error %v, want ErrBadFormat", err)
	}
}

func TestGetEvent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created := &event.Event{Title: "Review", Date: "01.11.2026"}
	if err := repo.CreateEvent(ctx, created); err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}

	got, err := repo.GetEvent(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetEvent failed: %v", err)
	}
	if got.Title != "Review" {
		t.Errorf("got title %q, want %q", got.Title, "Review")
	}
	if got.Date != "01.11.2026" {
		t.Errorf("got date %q, want %q", got.Date, "01.11.2026")
	}
	if !got.CreatedAt.Equal(created.CreatedAt.Truncate(time.Second)) {
		t.Errorf("got CreatedAt %v, want %v", got.CreatedAt, created.CreatedAt)
	}
}

func TestGetEvent_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetEvent(context.Background(), 999)
	if !errors.Is(err, event.ErrNotFound) {
		t.Errorf("got error %v, want ErrNotFound", err)
	}
}

func TestUpdateEvent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	e := &event.Event{Title: "Dentist", Date: "20.10.2026"}
	if err := repo.CreateEvent(ctx, e); err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}

	e.Title = "  Orthodontist "
	e.Date = "22.10.2026"
	if err := repo.UpdateEvent(ctx, e); err != nil {
		t.Fatalf("UpdateEvent failed: %v", err)
	}

	got, err := repo.GetEvent(ctx, e.ID)
	if err != nil {
		t.Fatalf("GetEvent failed: %v", err)
	}
	if got.Title != "Orthodontist" || got.Date != "22.10.2026" {
		t.Errorf("got %q %q after update", got.Title, got.Date)
	}
}

func TestUpdateEvent_Errors(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	e := &event.Event{Title: "Dentist", Date: "20.10.2026"}
	if err := repo.CreateEvent(ctx, e); err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}

	tests := []struct {
		name    string
		event   *event.Event
		wantErr error
	}{
		{"not found", &event.Event{ID: 999, Title: "x", Date: "20.10.2026"}, event.ErrNotFound},
		{"empty title", &event.Event{ID: e.ID, Title: " ", Date: "20.10.2026"}, event.ErrEmptyTitle},
		{"impossible date", &event.Event{ID: e.ID, Title: "x", Date: "31.04.2027"}, dateutil.ErrImpossibleDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.UpdateEvent(ctx, tt.event)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got error %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDeleteEvent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	e := &event.Event{Title: "Dentist", Date: "20.10.2026"}
	if err := repo.CreateEvent(ctx, e); err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}

	if err := repo.DeleteEvent(ctx, e.ID); err != nil {
		t.Fatalf("DeleteEvent failed: %v", err)
	}
	if _, err := repo.GetEvent(ctx, e.ID); !errors.Is(err, event.ErrNotFound) {
		t.Errorf("expected deleted event to be gone, got %v", err)
	}
	if err := repo.DeleteEvent(ctx, e.ID); !errors.Is(err, event.ErrNotFound) {
		t.Errorf("second delete: got %v, want ErrNotFound", err)
	}
}

func TestListEvents_InsertionOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, in := range []struct{ title, date string }{
		{"Later", "30.12.2026"},
		{"Sooner", "19.10.2026"},
		{"Middle", "15.11.2026"},
	} {
		if err := repo.CreateEvent(ctx, &event.Event{Title: in.title, Date: in.date}); err != nil {
			t.Fatalf("CreateEvent failed: %v", err)
		}
	}

	events, err := repo.ListEvents(ctx)
	if err != nil {
		t.Fatalf("ListEvents failed: %v", err)
	}

	want := []string{"Later", "Sooner", "Middle"}
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d", len(events), len(want))
	}
	for i, title := range want {
		if events[i].Title != title {
			t.Errorf("position %d: got %q, want %q", i, events[i].Title, title)
		}
	}
}

func TestListEvents_Empty(t *testing.T) {
	repo := newTestRepo(t)

	events, err := repo.ListEvents(context.Background())
	if err != nil {
		t.Fatalf("ListEvents failed: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("got %d events, want 0", len(events))
	}
}

func TestListEventsByDateRange(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, in := range []struct{ title, date string }{
		{"Before", "30.09.2026"},
		{"Second", "31.10.2026"},
		{"First", "01.10.2026"},
		{"After", "01.11.2026"},
	} {
		if err := repo.CreateEvent(ctx, &event.Event{Title: in.title, Date: in.date}); err != nil {
			t.Fatalf("CreateEvent failed: %v", err)
		}
	}

	start, _ := dateutil.NewDate(2026, time.October, 1)
	end, _ := dateutil.NewDate(2026, time.October, 31)
	events, err := repo.ListEventsByDateRange(ctx, start, end)
	if err != nil {
		t.Fatalf("ListEventsByDateRange failed: %v", err)
	}

	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Title != "First" || events[1].Title != "Second" {
		t.Errorf("got %q, %q; want First, Second", events[0].Title, events[1].Title)
	}
}

func TestCreateEvents(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	batch := []*event.Event{
		{Title: "One", Date: "20.10.2026"},
		{Title: "Two", Date: "21.10.2026"},
	}
	if err := repo.CreateEvents(ctx, batch); err != nil {
		t.Fatalf("CreateEvents failed: %v", err)
	}
	for _, e := range batch {
		if e.ID == 0 {
			t.Errorf("expected ID for %q", e.Title)
		}
	}

	events, err := repo.ListEvents(ctx)
	if err != nil {
		t.Fatalf("ListEvents failed: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("got %d events, want 2", len(events))
	}
}

func TestCreateEvents_AllOrNothing(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	batch := []*event.Event{
		{Title: "One", Date: "20.10.2026"},
		{Title: "Broken", Date: "32.10.2026"},
	}
	if err := repo.CreateEvents(ctx, batch); err == nil {
		t.Fatal("expected error for invalid date in batch")
	}

	events, err := repo.ListEvents(ctx)
	if err != nil {
		t.Fatalf("ListEvents failed: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("got %d events, want 0", len(events))
	}
}

func TestCreateEvents_Empty(t *testing.T) {
	repo := newTestRepo(t)
	if err := repo.CreateEvents(context.Background(), nil); err != nil {
		t.Errorf("CreateEvents(nil) = %v", err)
	}
}

func TestPreferences(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if _, ok, err := repo.Preference(ctx, event.PreferenceTheme); err != nil || ok {
		t.Fatalf("fresh store: ok=%v err=%v", ok, err)
	}

	if err := repo.SetPreference(ctx, event.PreferenceTheme, "dark"); err != nil {
		t.Fatalf("SetPreference failed: %v", err)
	}
	if err := repo.SetPreference(ctx, event.PreferenceTheme, "light"); err != nil {
		t.Fatalf("SetPreference overwrite failed: %v", err)
	}

	value, ok, err := repo.Preference(ctx, event.PreferenceTheme)
	if err != nil || !ok || value != "light" {
		t.Fatalf("Preference = %q, %v, %v; want light", value, ok, err)
	}

	if err := repo.ClearPreference(ctx, event.PreferenceTheme); err != nil {
		t.Fatalf("ClearPreference failed: %v", err)
	}
	if _, ok, _ := repo.Preference(ctx, event.PreferenceTheme); ok {
		t.Error("expected preference to be cleared")
	}
}

func TestNew_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "agenda.db")

	repo, err := New(path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := repo.CreateEvent(context.Background(), &event.Event{Title: "Kept", Date: "20.10.2026"}); err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}
	_ = repo.Close()

	reopened, err := New(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer func() { _ = reopened.Close() }()

	events, err := reopened.ListEvents(context.Background())
	if err != nil {
		t.Fatalf("ListEvents failed: %v", err)
	}
	if len(events) != 1 || events[0].Title != "Kept" {
		t.Errorf("got %+v after reopen", events)
	}
}

func TestParseDate_AllFormats(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"date only", "2026-01-15", "15.01.2026", false},
		{"sqlite midnight", "2026-01-15T00:00:00Z", "15.01.2026", false},
		{"display format", "15.01.2026", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && dateutil.Format(got) != tt.want {
				t.Errorf("parseDate(%q) = %s, want %s", tt.input, dateutil.Format(got), tt.want)
			}
		})
	}
}

func newTestRepo(t *testing.T) *SQLite {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	repo, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to create test repo: %v", err)
	}

	t.Cleanup(func() {
		_ = repo.Close()
	})

	return repo
}
