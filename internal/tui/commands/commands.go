// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/agenda/internal/event"
	"github.com/javiermolinar/agenda/internal/ical"
	"github.com/javiermolinar/agenda/internal/tui/theme"
)

// EventsLoadedMsg is sent when the event list is (re)loaded.
type EventsLoadedMsg struct {
	Events []*event.Event
}

// EventCreatedMsg is sent after a new event is stored.
type EventCreatedMsg struct {
	Event *event.Event
}

// EventUpdatedMsg is sent after an existing event is saved.
type EventUpdatedMsg struct {
	Event *event.Event
}

// EventDeletedMsg is sent after an event is removed.
type EventDeletedMsg struct {
	ID int64
}

// ThemeLoadedMsg carries the persisted theme preference, if any.
type ThemeLoadedMsg struct {
	Mode      theme.Mode
	Persisted bool
}

// ThemeSavedMsg is sent after the theme preference is stored.
type ThemeSavedMsg struct {
	Mode theme.Mode
}

// ExportedMsg is sent after events are written to an ICS file.
type ExportedMsg struct {
	Path  string
	Count int
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// nowFunc stamps exported calendars.
var nowFunc = time.Now

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// LoadEvents loads every event in insertion order.
func LoadEvents(repo event.Repository) tea.Cmd {
	return func() tea.Msg {
		events, err := repo.ListEvents(context.Background())
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading events: %w", err)}
		}
		return EventsLoadedMsg{Events: events}
	}
}

// CreateEvent stores a new event.
func CreateEvent(repo event.Repository, e *event.Event) tea.Cmd {
	return func() tea.Msg {
		if err := repo.CreateEvent(context.Background(), e); err != nil {
			return ErrMsg{Err: fmt.Errorf("creating event: %w", err)}
		}
		return EventCreatedMsg{Event: e}
	}
}

// UpdateEvent saves the title and date of an existing event.
func UpdateEvent(repo event.Repository, e *event.Event) tea.Cmd {
	return func() tea.Msg {
		if err := repo.UpdateEvent(context.Background(), e); err != nil {
			return ErrMsg{Err: fmt.Errorf("updating event: %w", err)}
		}
		return EventUpdatedMsg{Event: e}
	}
}

// DeleteEvent removes an event.
func DeleteEvent(repo event.Repository, id int64) tea.Cmd {
	return func() tea.Msg {
		if err := repo.DeleteEvent(context.Background(), id); err != nil {
			return ErrMsg{Err: fmt.Errorf("deleting event: %w", err)}
		}
		return EventDeletedMsg{ID: id}
	}
}

// LoadThemePreference reads the persisted theme. An unreadable or unknown
// value is reported as not persisted so detection takes over.
func LoadThemePreference(prefs event.Preferences) tea.Cmd {
	return func() tea.Msg {
		value, ok, err := prefs.Preference(context.Background(), event.PreferenceTheme)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading theme preference: %w", err)}
		}
		if !ok {
			return ThemeLoadedMsg{}
		}
		mode, err := theme.ParseMode(value)
		if err != nil {
			return ThemeLoadedMsg{}
		}
		return ThemeLoadedMsg{Mode: mode, Persisted: true}
	}
}

// SaveThemePreference persists the chosen theme.
func SaveThemePreference(prefs event.Preferences, mode theme.Mode) tea.Cmd {
	return func() tea.Msg {
		if err := prefs.SetPreference(context.Background(), event.PreferenceTheme, string(mode)); err != nil {
			return ErrMsg{Err: fmt.Errorf("saving theme preference: %w", err)}
		}
		return ThemeSavedMsg{Mode: mode}
	}
}

// ExportICS writes the given events to path as an iCalendar file.
func ExportICS(events []*event.Event, path string) tea.Cmd {
	snapshot := append([]*event.Event(nil), events...)
	return func() tea.Msg {
		f, err := os.Create(path)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("creating %s: %w", path, err)}
		}
		if err := ical.Export(f, snapshot, nowFunc()); err != nil {
			_ = f.Close()
			return ErrMsg{Err: fmt.Errorf("exporting events: %w", err)}
		}
		if err := f.Close(); err != nil {
			return ErrMsg{Err: fmt.Errorf("closing %s: %w", path, err)}
		}
		return ExportedMsg{Path: path, Count: len(snapshot)}
	}
}
