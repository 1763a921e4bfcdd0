package tui

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/agenda/internal/event"
	"github.com/javiermolinar/agenda/internal/tui/commands"
	"github.com/javiermolinar/agenda/internal/tui/theme"
)

// statusDuration is how long a status message stays visible.
const statusDuration = 3 * time.Second

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Log keystroke
	LogKeyPress(msg)

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	// Mode-specific handling
	switch m.mode {
	case ModePrompt:
		return m.handlePromptKeys(msg)
	case ModeModal:
		return m.handleModalKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Navigation
	case "j", "down":
		m.moveCursor(1, "down")
	case "k", "up":
		m.moveCursor(-1, "up")
	case "pgdown", "ctrl+d":
		m.moveCursor(m.visibleRows(), "page_down")
	case "pgup", "ctrl+u":
		m.moveCursor(-m.visibleRows(), "page_up")
	case "g", "home":
		m.moveCursor(-len(m.events), "top")
	case "G", "end":
		m.moveCursor(len(m.events), "bottom")

	// Events
	case "a", "n":
		m.form.reset()
		return m.openModal(ModalEventForm), nil
	case "enter":
		if e := m.selectedEvent(); e != nil {
			return m.startEdit(e), nil
		}
	case "e":
		return m.openEditPicker()
	case "d", "x":
		e := m.selectedEvent()
		if e == nil {
			return m.setStatus("No event selected")
		}
		return m.confirmDelete(e), nil
	case "y":
		return m.handleYank()
	case "s":
		selected := m.selectedEvent()
		m.sortByDate = !m.sortByDate
		if selected != nil {
			m.selectEvent(selected.ID)
		}
		if m.sortByDate {
			return m.setStatus("Sorted by date")
		}
		return m.setStatus("Sorted by creation")
	case "r":
		m.loading = true
		return m, commands.LoadEvents(m.store)

	// Appearance
	case "t":
		return m.setThemeMode(m.themeMode.Toggle())

	// Prompt
	case "/", ":":
		LogModeChange(m.mode, ModePrompt, "open_prompt")
		m.mode = ModePrompt
		m.prompt.SetValue("/")
		m.prompt.CursorEnd()
		m.layout = m.buildLayout(m.width, m.height)
		return m, m.prompt.Focus()
	}
	return m, nil
}

// handlePromptKeys handles keys in prompt mode.
func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m = m.closePrompt()
		return m, nil

	case "enter":
		value := m.prompt.Value()
		m = m.closePrompt()
		return m.executePrompt(value)

	case "tab":
		if completion, ok := promptCommands.Complete(m.prompt.Value()); ok {
			m.prompt.SetValue(completion)
			m.prompt.CursorEnd()
			m.layout = m.buildLayout(m.width, m.height)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	m.layout = m.buildLayout(m.width, m.height)
	return m, cmd
}

func (m Model) closePrompt() Model {
	LogModeChange(m.mode, ModeNormal, "close_prompt")
	m.mode = ModeNormal
	m.prompt.Blur()
	m.prompt.SetValue("")
	m.layout = m.buildLayout(m.width, m.height)
	return m
}

// handleModalKeys dispatches keys to the open modal.
func (m Model) handleModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modalType {
	case ModalEventForm:
		return m.handleEventFormKeys(msg)
	case ModalEditPicker:
		return m.handleEditPickerKeys(msg)
	case ModalConfirmDelete:
		return m.handleConfirmDeleteKeys(msg)
	case ModalInit:
		return m.handleInitKeys(msg)
	default:
		if msg.String() == "esc" {
			return m.closeModal(), nil
		}
	}
	return m, nil
}

// handleEventFormKeys handles keys in the add/edit form. While the calendar
// is open it gets first pick of navigation keys.
func (m Model) handleEventFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.form
	if f.picker.IsOpen() {
		if handled, model, cmd := m.handleCalendarKeys(msg); handled {
			return model, cmd
		}
	}

	switch msg.String() {
	case "esc":
		if f.isEditing() {
			f.reset()
			m = m.closeModal()
			return m.setStatus("Edit cancelled")
		}
		return m.closeModal(), nil
	case "tab", "shift+tab", "down", "up":
		f.nextField()
		return m, nil
	case "enter":
		return m.submitForm()
	case "ctrl+d":
		if f.isEditing() {
			return m.confirmDelete(f.editing), nil
		}
		return m, nil
	case " ":
		if f.focus == fieldDate {
			f.picker.Toggle()
			LogPicker("toggle", f.picker.State().String())
			return m, nil
		}
	case "ctrl+o":
		f.setFocus(fieldDate)
		f.picker.Toggle()
		LogPicker("toggle", f.picker.State().String())
		return m, nil
	}

	if f.focus == fieldDate {
		return m, f.updateDate(msg)
	}
	return m, f.updateTitle(msg)
}

// handleCalendarKeys handles keys while the calendar popup is open. Keys it
// does not claim fall through to the form.
func (m Model) handleCalendarKeys(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	p := m.form.picker
	switch msg.String() {
	case "left", "h":
		p.MoveFocus(-1)
	case "right", "l":
		p.MoveFocus(1)
	case "up", "k":
		p.MoveFocus(-7)
	case "down", "j":
		p.MoveFocus(7)
	case "pgup", "[", "<":
		p.PrevMonth()
	case "pgdown", "]", ">":
		p.NextMonth()
	case "enter":
		if !p.PickFocused() {
			model, cmd := m.setStatus("Past dates cannot be picked")
			return true, model, cmd
		}
		LogPicker("pick", p.Value())
	case "esc":
		p.Close()
	default:
		return false, m, nil
	}
	return true, m, nil
}

// submitForm validates the form and saves the event. Both field errors are
// shown at once; nothing is saved while either is set.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	f := m.form
	today := m.today()
	if !f.validate(today) {
		return m, nil
	}

	if f.isEditing() {
		updated := *f.editing
		updated.Title = f.titleValue()
		updated.Date = f.date.Value()
		return m, commands.UpdateEvent(m.store, &updated)
	}

	e, err := event.New(f.titleValue(), f.date.Value(), today)
	if err != nil {
		f.titleErr = err.Error()
		return m, nil
	}
	return m, commands.CreateEvent(m.store, e)
}

// handleEditPickerKeys handles keys in the edit picker.
func (m Model) handleEditPickerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	events := m.displayEvents()
	switch msg.String() {
	case "esc", "q":
		return m.closeModal(), nil
	case "j", "down":
		if m.pickCursor < len(events)-1 {
			m.pickCursor++
		}
		m.ensurePickVisible()
	case "k", "up":
		if m.pickCursor > 0 {
			m.pickCursor--
		}
		m.ensurePickVisible()
	case "enter", "e":
		if m.pickCursor < len(events) {
			return m.startEdit(events[m.pickCursor]), nil
		}
	case "d", "x":
		if m.pickCursor < len(events) {
			return m.confirmDelete(events[m.pickCursor]), nil
		}
	}
	return m, nil
}

// handleConfirmDeleteKeys handles keys in the delete confirmation.
func (m Model) handleConfirmDeleteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "n":
		// Go back to the modal we came from, otherwise close
		m.deleteTarget = nil
		if m.deleteReturn != ModalNone {
			LogModalChange(m.modalType, m.deleteReturn)
			m.modalType = m.deleteReturn
			m.deleteReturn = ModalNone
			return m, nil
		}
		return m.closeModal(), nil

	case "enter", "y":
		if m.deleteTarget == nil {
			return m.closeModal(), nil
		}
		id := m.deleteTarget.ID
		m.deleteTarget = nil
		m.deleteReturn = ModalNone
		m = m.closeModal()
		return m, commands.DeleteEvent(m.store, id)
	}
	return m, nil
}

// handleInitKeys handles keys in the first-run setup modal.
func (m Model) handleInitKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		return m, tea.Quit
	case "enter", "y":
		updated, err := m.runSetup()
		if err != nil {
			LogError("runSetup", err)
			updated.initError = err.Error()
			return updated, nil
		}
		updated.initError = ""
		updated.loading = true
		updated = updated.closeModal()
		return updated, updated.loadCmd()
	}
	return m, nil
}

// openModal switches to modal mode showing t.
func (m Model) openModal(t ModalType) Model {
	if m.mode != ModeModal {
		LogModeChange(m.mode, ModeModal, "open_modal")
	}
	LogModalChange(m.modalType, t)
	m.mode = ModeModal
	m.modalType = t
	return m
}

// closeModal returns to normal mode. The form keeps its state; callers
// reset it when they mean to leave edit mode.
func (m Model) closeModal() Model {
	m.form.picker.Close()
	LogModalChange(m.modalType, ModalNone)
	LogModeChange(m.mode, ModeNormal, "close_modal")
	m.mode = ModeNormal
	m.modalType = ModalNone
	return m
}

// startEdit loads e into the form and opens it.
func (m Model) startEdit(e *event.Event) Model {
	m.form.load(e)
	m.selectEvent(e.ID)
	return m.openModal(ModalEventForm)
}

// openEditPicker shows the list of events to edit.
func (m Model) openEditPicker() (tea.Model, tea.Cmd) {
	if len(m.events) == 0 {
		return m.setStatus(statusForError(event.ErrNoEvents))
	}
	m.pickCursor = min(m.cursor, len(m.events)-1)
	m.pickOffset = 0
	m.ensurePickVisible()
	return m.openModal(ModalEditPicker), nil
}

// confirmDelete asks before deleting e, remembering the modal to return to.
func (m Model) confirmDelete(e *event.Event) Model {
	m.deleteTarget = e
	m.deleteReturn = ModalNone
	if m.mode == ModeModal {
		m.deleteReturn = m.modalType
	}
	return m.openModal(ModalConfirmDelete)
}

// handleYank copies the selected event to the clipboard.
func (m Model) handleYank() (tea.Model, tea.Cmd) {
	e := m.selectedEvent()
	if e == nil {
		return m.setStatus("No event to copy")
	}
	if err := m.clipboard(e.Clipboard()); err != nil {
		LogError("clipboard", err)
		return m.setStatus(fmt.Sprintf("Copy failed: %v", err))
	}
	return m.setStatus(fmt.Sprintf("Copied: %s", e.Clipboard()))
}

// setThemeMode applies mode and persists it as the user's preference.
func (m Model) setThemeMode(mode theme.Mode) (tea.Model, tea.Cmd) {
	m.applyTheme(mode)
	m.themePersisted = true
	if m.store == nil {
		return m, nil
	}
	return m, commands.SaveThemePreference(m.store, mode)
}

// setStatus shows msg in the status line and schedules its removal.
func (m Model) setStatus(msg string) (tea.Model, tea.Cmd) {
	m.statusMsg = msg
	m.statusTime = time.Now().Add(statusDuration)
	return m, tea.Tick(statusDuration, func(time.Time) tea.Msg {
		return commands.ClearStatusMsg{}
	})
}

// statusForError formats an error for the status line.
func statusForError(err error) string {
	switch {
	case errors.Is(err, event.ErrNotFound):
		return "Event no longer exists"
	case errors.Is(err, event.ErrNoEvents):
		return "No events to edit"
	}
	return fmt.Sprintf("Error: %v", err)
}
