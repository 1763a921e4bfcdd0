package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/agenda/internal/event"
	"github.com/javiermolinar/agenda/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout = m.buildLayout(m.width, m.height)
		m.ensureCursorVisible()
		return m, nil

	case commands.EventsLoadedMsg:
		m.events = msg.Events
		m.loading = false
		m.clampCursor()
		m.ensureCursorVisible()
		return m, nil

	case commands.EventCreatedMsg:
		LogStore("create", msg.Event.ID, msg.Event.Title, nil)
		// A successful add clears the form
		m.form.reset()
		if m.modalType == ModalEventForm {
			m = m.closeModal()
		}
		m.events = append(m.events, msg.Event)
		m.selectEvent(msg.Event.ID)
		return m.setStatus(fmt.Sprintf("Added %q on %s", msg.Event.Title, msg.Event.Date))

	case commands.EventUpdatedMsg:
		LogStore("update", msg.Event.ID, msg.Event.Title, nil)
		// A successful edit leaves edit mode
		m.form.reset()
		if m.modalType == ModalEventForm {
			m = m.closeModal()
		}
		m.replaceEvent(msg.Event)
		m.selectEvent(msg.Event.ID)
		return m.setStatus(fmt.Sprintf("Updated %q", msg.Event.Title))

	case commands.EventDeletedMsg:
		LogStore("delete", msg.ID, "", nil)
		if m.form.isEditing() && m.form.editing.ID == msg.ID {
			// The edited event is gone; leave edit mode
			m.form.reset()
		}
		m.removeEvent(msg.ID)
		m.clampCursor()
		m.ensureCursorVisible()
		return m.setStatus("Event deleted")

	case commands.ThemeLoadedMsg:
		if msg.Persisted {
			m.themePersisted = true
			if msg.Mode != m.themeMode {
				m.applyTheme(msg.Mode)
			}
		}
		return m, nil

	case commands.ThemeSavedMsg:
		return m.setStatus(fmt.Sprintf("Theme: %s", msg.Mode))

	case commands.ExportedMsg:
		return m.setStatus(fmt.Sprintf("Exported %d events to %s", msg.Count, msg.Path))

	case commands.ErrMsg:
		LogError("command", msg.Err)
		m.err = msg.Err
		m.loading = false
		m.statusMsg = statusForError(msg.Err)
		m.statusTime = time.Now().Add(5 * time.Second)
		return m, tea.Tick(5*time.Second, func(time.Time) tea.Msg {
			return commands.ClearStatusMsg{}
		})

	case commands.StatusMsgCmd:
		return m.setStatus(msg.Msg)

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	// Handle prompt input when in prompt mode
	if m.mode == ModePrompt {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		m.layout = m.buildLayout(m.width, m.height)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// replaceEvent swaps the stored copy of e in place.
func (m *Model) replaceEvent(e *event.Event) {
	for i, existing := range m.events {
		if existing.ID == e.ID {
			m.events[i] = e
			return
		}
	}
}

// removeEvent drops the event with id from the list.
func (m *Model) removeEvent(id int64) {
	for i, e := range m.events {
		if e.ID == id {
			m.events = append(m.events[:i:i], m.events[i+1:]...)
			return
		}
	}
}
