package tui

import (
	"github.com/javiermolinar/agenda/internal/dateutil"
	"github.com/javiermolinar/agenda/internal/event"
)

// Layout constants for boxed rendering.
const (
	footerCompact = 2

	footerBaseLines       = 4 // Stats(1) + Legend(1) + Status(1) + Help(1)
	promptBorderLines     = 2
	promptMinContentLines = 1

	footerMinHeight     = footerBaseLines + promptBorderLines + promptMinContentLines
	footerFullMinHeight = 15
)

// tableChromeLines is the top border, header, header rule and bottom border.
const tableChromeLines = 4

// listFirstRow is the row of the first event inside the list box.
const listFirstRow = 3

// today returns the current date from the model clock.
func (m Model) today() dateutil.Date {
	return dateutil.FromTime(m.now())
}

// displayEvents returns the events in list order: insertion order, or by
// date when sorting is on. The returned slice is a copy.
func (m Model) displayEvents() []*event.Event {
	out := make([]*event.Event, len(m.events))
	copy(out, m.events)
	if m.sortByDate {
		event.SortByDate(out)
	}
	return out
}

// selectedEvent returns the event under the list cursor.
func (m Model) selectedEvent() *event.Event {
	events := m.displayEvents()
	if m.cursor < 0 || m.cursor >= len(events) {
		return nil
	}
	return events[m.cursor]
}

// visibleRowsForTable returns the number of event rows that fit in gridH.
func visibleRowsForTable(gridH int) int {
	return max(0, gridH-tableChromeLines)
}

// visibleRows returns the number of event rows that fit in the terminal.
func (m *Model) visibleRows() int {
	return max(1, visibleRowsForTable(m.layout.ListH))
}

// clampCursor keeps the cursor on an existing row.
func (m *Model) clampCursor() {
	if m.cursor >= len(m.events) {
		m.cursor = len(m.events) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// ensureCursorVisible adjusts scroll offset to keep cursor visible.
func (m *Model) ensureCursorVisible() {
	visible := m.visibleRows()

	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}
	if m.cursor >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor - visible + 1
	}

	maxScroll := max(0, len(m.events)-visible)
	if m.scrollOffset > maxScroll {
		m.scrollOffset = maxScroll
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
}

// moveCursor moves the list cursor by delta rows.
func (m *Model) moveCursor(delta int, reason string) {
	m.cursor += delta
	m.clampCursor()
	m.ensureCursorVisible()
	LogCursorMove(m.cursor, m.scrollOffset, reason)
}

// selectEvent moves the cursor onto the event with id, if listed.
func (m *Model) selectEvent(id int64) {
	for i, e := range m.displayEvents() {
		if e.ID == id {
			m.cursor = i
			m.ensureCursorVisible()
			return
		}
	}
}

// ensurePickVisible keeps the edit picker cursor in its window.
func (m *Model) ensurePickVisible() {
	if m.pickCursor < m.pickOffset {
		m.pickOffset = m.pickCursor
	}
	if m.pickCursor >= m.pickOffset+editPickerVisibleRows {
		m.pickOffset = m.pickCursor - editPickerVisibleRows + 1
	}
	if m.pickOffset < 0 {
		m.pickOffset = 0
	}
}

// listRowAt maps a screen row to an event index in the list, if any.
func (m Model) listRowAt(y int) (int, bool) {
	top := m.styles.AppStyle.GetPaddingTop() + listFirstRow
	row := y - top
	if row < 0 || row >= visibleRowsForTable(m.layout.ListH) {
		return 0, false
	}
	idx := m.scrollOffset + row
	if idx >= len(m.events) {
		return 0, false
	}
	return idx, true
}
