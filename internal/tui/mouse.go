package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/agenda/internal/tui/view"
)

// handleMouseMsg handles mouse input. Every left press is first reported to
// the dismiss hub, so an open calendar closes when the press lands outside it.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if m.mode == ModeNormal {
			m.moveCursor(-1, "wheel")
		}
		return m, nil
	case tea.MouseButtonWheelDown:
		if m.mode == ModeNormal {
			m.moveCursor(1, "wheel")
		}
		return m, nil
	case tea.MouseButtonLeft:
	default:
		return m, nil
	}

	if m.mode == ModeModal && m.modalType == ModalEventForm {
		return m.handleFormClick(msg)
	}

	m.hub.Interact(msg.X, msg.Y)
	if m.mode == ModeNormal {
		if idx, ok := m.listRowAt(msg.Y); ok {
			LogMouse(msg, "list_row")
			m.cursor = idx
			m.ensureCursorVisible()
			return m, nil
		}
	}
	LogMouse(msg, "none")
	return m, nil
}

// handleFormClick routes a left press inside the event form.
func (m Model) handleFormClick(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	f := m.form
	geom, ok := m.eventFormGeometry()
	if !ok {
		return m, nil
	}

	wasOpen := f.picker.IsOpen()
	f.picker.SetBounds(geom.DateInput, geom.CalendarButton, geom.Calendar)
	if n := m.hub.Interact(msg.X, msg.Y); n > 0 {
		LogPicker("dismiss", "outside_click")
	}

	switch {
	case wasOpen && geom.Calendar.Contains(msg.X, msg.Y):
		LogMouse(msg, "calendar")
		weeks := f.calendarModel().Weeks
		hit, cell := view.HitCalendar(weeks, msg.X-geom.Calendar.X, msg.Y-geom.Calendar.Y)
		switch hit {
		case view.CalendarHitPrev:
			f.picker.PrevMonth()
		case view.CalendarHitNext:
			f.picker.NextMonth()
		case view.CalendarHitDay:
			if !f.picker.Pick(cell.Date) {
				return m.setStatus("Past dates cannot be picked")
			}
			LogPicker("pick", f.picker.Value())
		}
	case geom.CalendarButton.Contains(msg.X, msg.Y):
		LogMouse(msg, "calendar_button")
		f.setFocus(fieldDate)
		f.picker.Toggle()
		LogPicker("toggle", f.picker.State().String())
	case geom.DateInput.Contains(msg.X, msg.Y):
		LogMouse(msg, "date_input")
		f.setFocus(fieldDate)
	case geom.TitleInput.Contains(msg.X, msg.Y):
		LogMouse(msg, "title_input")
		f.setFocus(fieldTitle)
	default:
		LogMouse(msg, "none")
	}
	return m, nil
}
