package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/agenda/internal/tui/view"
)

// emptyListText is shown instead of the table when there are no events.
const emptyListText = "No events. Press a to add one."

// listColumns are the event table columns; the title takes the rest.
var listColumns = []view.Column{
	{Title: "#", Width: idColWidth},
	{Title: "Date", Width: dateColWidth},
	{Title: "Day", Width: weekdayColWidth},
	{Title: "When", Width: dateColWidth},
	{Title: "Title"},
}

// View renders the TUI using a boxed, parent-controlled layout.
func (m Model) View() string {
	modal := ""
	if m.mode == ModeModal && m.modalType != ModalNone {
		modal = m.renderModal()
	}
	return view.Compose(view.Screen{
		Width:   m.width,
		Height:  m.height,
		Base:    m.renderAppContent(),
		Modal:   modal,
		Overlay: m.modalBackdrop().Render,
	})
}

func (m Model) renderAppContent() string {
	layout := m.layout
	if layout.InnerW <= 0 || layout.InnerH <= 0 {
		return "Terminal too small"
	}

	content := lipgloss.JoinVertical(lipgloss.Left, m.renderList(layout), m.footer(layout).Render())
	app := m.styles.AppStyle.Render(content)
	return view.FillBackground(app, m.width, m.height, m.styles.colorBg)
}

// renderList renders the event table, or a hint when there is nothing to list.
func (m Model) renderList(layout screenLayout) string {
	if len(m.events) == 0 && !m.loading {
		return view.PlaceBox(layout.InnerW, layout.ListH, lipgloss.Top,
			m.styles.EmptyListStyle.Render(emptyListText), m.styles.colorBg)
	}
	return m.eventTable(layout).Render()
}

func (m Model) eventTable(layout screenLayout) view.EventTable {
	rows, styles := m.buildTableRows(visibleRowsForTable(layout.ListH))
	return view.EventTable{
		Width:       layout.InnerW,
		Height:      layout.ListH,
		Columns:     listColumns,
		Rows:        rows,
		RowStyles:   styles,
		HeaderStyle: m.styles.ListHeaderStyle,
		BorderStyle: m.styles.ListBorderStyle,
		Bg:          m.styles.colorBg,
	}
}

// buildTableRows renders the visible window of events into table cells, with
// one style per row.
func (m Model) buildTableRows(visible int) ([][]string, []lipgloss.Style) {
	events := m.displayEvents()
	end := min(len(events), m.scrollOffset+visible)
	if m.scrollOffset >= end {
		return nil, nil
	}

	today := m.today()
	rows := make([][]string, 0, end-m.scrollOffset)
	styles := make([]lipgloss.Style, 0, end-m.scrollOffset)

	for i := m.scrollOffset; i < end; i++ {
		e := events[i]
		weekday, when := "", ""
		d, err := e.Day()
		if err == nil {
			weekday = d.Weekday().String()[:3]
			when = view.FormatRelative(d, today)
		}
		rows = append(rows, []string{fmt.Sprintf("%d", e.ID), e.Date, weekday, when, e.Title})

		style := m.styles.RowStyle
		if i%2 == 1 {
			style = m.styles.RowAltStyle
		}
		switch {
		case m.form.isEditing() && m.form.editing.ID == e.ID:
			style = m.styles.RowEditingStyle
		case i == m.cursor:
			style = m.styles.RowCursorStyle
		case err == nil && d.Compare(today) == 0:
			style = m.styles.RowTodayStyle
		case e.IsPast(today):
			style = m.styles.RowPastStyle
		}
		styles = append(styles, style)
	}
	return rows, styles
}

func (m Model) footer(layout screenLayout) view.Footer {
	width := layout.PromptW
	maxLines := m.promptMaxContentLines()

	return view.Footer{
		Width:            layout.InnerW,
		Height:           layout.FooterH,
		Full:             layout.FooterH >= footerMinHeight,
		Stats:            m.renderStatsBar(layout.InnerW),
		Legend:           m.renderLegend(),
		Status:           m.statusMsgOrDefault(),
		Help:             m.renderHelp(),
		PromptLines:      view.ClampPromptLines(m.promptLines(width), maxLines, width),
		PromptMax:        maxLines,
		PromptFocus:      m.mode == ModePrompt,
		ShowPrompt:       m.mode != ModeModal || m.modalType == ModalNone,
		LegendStyle:      layout.LegendStyle,
		StatusStyle:      layout.StatusStyle,
		HelpStyle:        layout.HelpStyle,
		PromptStyle:      layout.PromptStyle,
		PromptFocusStyle: layout.PromptFocusStyle,
		Bg:               m.styles.colorBg,
	}
}
