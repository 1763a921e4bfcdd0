package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/agenda/internal/tui/view"
)

// statusMsgOrDefault returns the status message or a space to preserve layout.
func (m Model) statusMsgOrDefault() string {
	if m.statusMsg == "" {
		return " "
	}
	return m.statusMsg
}

// eventStats counts upcoming and past events and finds the next one.
type eventStats struct {
	Total    int
	Upcoming int
	Past     int
	NextIdx  int // index into events, -1 when nothing is upcoming
}

func (m Model) eventStats() eventStats {
	today := m.today()
	stats := eventStats{Total: len(m.events), NextIdx: -1}
	for i, e := range m.events {
		d, err := e.Day()
		if err != nil {
			continue
		}
		if d.Before(today) {
			stats.Past++
			continue
		}
		stats.Upcoming++
		if stats.NextIdx < 0 {
			stats.NextIdx = i
			continue
		}
		if nd, _ := m.events[stats.NextIdx].Day(); d.Before(nd) {
			stats.NextIdx = i
		}
	}
	return stats
}

// renderStatsBar renders the statistics bar.
func (m Model) renderStatsBar(width int) string {
	stats := m.eventStats()

	barStyle := lipgloss.NewStyle().
		Foreground(m.styles.colorFg).
		Background(m.styles.colorBg)

	var bar strings.Builder
	bar.WriteString(barStyle.Render(fmt.Sprintf("%d events | ", stats.Total)))
	bar.WriteString(m.styles.StatsUpcomingStyle.Render(fmt.Sprintf("%d upcoming", stats.Upcoming)))
	bar.WriteString(barStyle.Render(", "))
	bar.WriteString(m.styles.StatsPastStyle.Render(fmt.Sprintf("%d past", stats.Past)))
	if stats.NextIdx >= 0 {
		next := m.events[stats.NextIdx]
		if d, err := next.Day(); err == nil {
			bar.WriteString(barStyle.Render(fmt.Sprintf(" | next: %s %s", next.Title, view.FormatRelative(d, m.today()))))
		}
	}
	if m.sortByDate {
		bar.WriteString(barStyle.Render(" [by date]"))
	}
	if m.loading {
		bar.WriteString(barStyle.Render(" [Loading...]"))
	}
	if m.form.isEditing() {
		bar.WriteString(barStyle.Render(" [EDIT]"))
	}

	statsStyle := m.layout.StatsStyle
	frameW, _ := statsStyle.GetFrameSize()
	contentWidth := max(0, width-frameW)
	statsStyle = statsStyle.Width(contentWidth)
	content := bar.String()
	if contentWidth > 0 {
		content = ansi.Truncate(content, contentWidth, "")
	}
	return statsStyle.Render(content)
}

// renderLegend renders the legend for row colors.
func (m Model) renderLegend() string {
	baseStyle := lipgloss.NewStyle().
		Foreground(m.styles.colorFg).
		Background(m.styles.colorBg)

	var legend strings.Builder
	legend.WriteString(baseStyle.Render("Legend: "))
	legend.WriteString(m.styles.RowTodayStyle.Render("today"))
	legend.WriteString(baseStyle.Render("  "))
	legend.WriteString(m.styles.RowPastStyle.Render("past"))
	legend.WriteString(baseStyle.Render("  "))
	legend.WriteString(m.styles.RowEditingStyle.Render("editing"))
	legend.WriteString(baseStyle.Render(fmt.Sprintf("  theme: %s", m.themeMode)))
	return legend.String()
}

// promptCursor returns the cursor character if in prompt mode.
func (m Model) promptCursor() string {
	if m.mode == ModePrompt {
		return "_"
	}
	return ""
}

// renderHelp renders the help bar.
func (m Model) renderHelp() string {
	var help string
	switch m.mode {
	case ModePrompt:
		help = "Enter: submit | Tab: complete | Esc: cancel"
	case ModeModal:
		switch m.modalType {
		case ModalEventForm:
			switch {
			case m.form.picker.IsOpen():
				help = "arrows: move | [/]: month | Enter: pick | Esc: close calendar"
			case m.form.isEditing():
				help = "Tab: next field | Space: calendar | Enter: update | Ctrl+D: delete | Esc: cancel edit"
			default:
				help = "Tab: next field | Space: calendar | Enter: add | Esc: cancel"
			}
		case ModalEditPicker:
			help = "j/k: select | Enter: edit | d: delete | Esc: close"
		case ModalConfirmDelete:
			help = "y/Enter: confirm | n/Esc: cancel"
		case ModalInit:
			help = "Enter: create files | Esc: quit"
		default:
			help = "Esc: close"
		}
	default:
		help = "j/k: move | a: add | e: edit | d: delete | y: copy | s: sort | t: theme | /: commands | q: quit"
	}
	return m.styles.HelpStyle.Render(help)
}
