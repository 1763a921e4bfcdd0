package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/agenda/internal/config"
	"github.com/javiermolinar/agenda/internal/dateutil"
	"github.com/javiermolinar/agenda/internal/event"
	"github.com/javiermolinar/agenda/internal/tui/commands"
	"github.com/javiermolinar/agenda/internal/tui/theme"
)

// testNow is the fixed clock used by model tests: Sunday 18.10.2026.
var testNow = time.Date(2026, 10, 18, 12, 0, 0, 0, time.Local)

// memStore is an in-memory event.Store.
type memStore struct {
	events []*event.Event
	nextID int64
	prefs  map[string]string
	err    error
}

func newMemStore(events ...*event.Event) *memStore {
	s := &memStore{prefs: map[string]string{}}
	for _, e := range events {
		s.nextID++
		if e.ID == 0 {
			e.ID = s.nextID
		}
		s.events = append(s.events, e)
	}
	return s
}

func (s *memStore) CreateEvent(_ context.Context, e *event.Event) error {
	if s.err != nil {
		return s.err
	}
	s.nextID++
	e.ID = s.nextID
	s.events = append(s.events, e)
	return nil
}

func (s *memStore) CreateEvents(ctx context.Context, events []*event.Event) error {
	for _, e := range events {
		if err := s.CreateEvent(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (s *memStore) GetEvent(_ context.Context, id int64) (*event.Event, error) {
	if e := event.Find(s.events, id); e != nil {
		return e, nil
	}
	return nil, event.ErrNotFound
}

func (s *memStore) UpdateEvent(_ context.Context, e *event.Event) error {
	if s.err != nil {
		return s.err
	}
	for i, existing := range s.events {
		if existing.ID == e.ID {
			s.events[i] = e
			return nil
		}
	}
	return event.ErrNotFound
}

func (s *memStore) DeleteEvent(_ context.Context, id int64) error {
	for i, e := range s.events {
		if e.ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			return nil
		}
	}
	return event.ErrNotFound
}

func (s *memStore) ListEvents(context.Context) ([]*event.Event, error) {
	return append([]*event.Event(nil), s.events...), s.err
}

func (s *memStore) ListEventsByDateRange(context.Context, dateutil.Date, dateutil.Date) ([]*event.Event, error) {
	return nil, nil
}

func (s *memStore) Close() error { return nil }

func (s *memStore) Preference(_ context.Context, key string) (string, bool, error) {
	v, ok := s.prefs[key]
	return v, ok, nil
}

func (s *memStore) SetPreference(_ context.Context, key, value string) error {
	s.prefs[key] = value
	return nil
}

func (s *memStore) ClearPreference(_ context.Context, key string) error {
	delete(s.prefs, key)
	return nil
}

// newTestModel returns a sized model with a fixed clock, a dark terminal and
// a no-op clipboard. The store's events are loaded as if Init had run.
func newTestModel(t *testing.T, store *memStore) Model {
	t.Helper()
	cfg := config.Default()
	cfg.Storage.DBPath = t.TempDir() + "/agenda.db"

	var s event.Store
	if store != nil {
		s = store
	}
	m := New(s, cfg,
		WithClock(func() time.Time { return testNow }),
		WithThemeDetector(func() theme.Mode { return theme.ModeDark }),
		WithClipboard(func(string) error { return nil }),
	)
	model := update(t, *m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if store != nil {
		events, _ := store.ListEvents(context.Background())
		model = update(t, model, commands.EventsLoadedMsg{Events: events})
	}
	return model
}

// update feeds msg to the model and returns the updated model.
func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return model
}

// run feeds msg to the model, executes the resulting store command and feeds
// its messages back. Only use it for keys that return store commands; ticks
// would block.
func run(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, cmd := m.Update(msg)
	model := updated.(Model)
	for _, out := range execCmd(cmd) {
		model = update(t, model, out)
	}
	return model
}

func execCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, execCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

// typeText sends s one rune at a time.
func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = update(t, m, keyRunes(string(r)))
	}
	return m
}

func mustEvent(t *testing.T, title, date string) *event.Event {
	t.Helper()
	e, err := event.New(title, date, dateutil.FromTime(testNow))
	if err != nil {
		t.Fatalf("event.New(%q, %q): %v", title, date, err)
	}
	return e
}
