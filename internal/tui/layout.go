package tui

import "github.com/charmbracelet/lipgloss"

// minPromptWidth is the narrowest prompt kept while the screen allows it.
const minPromptWidth = 20

// screenLayout splits the terminal between the event list and the footer.
// It is rebuilt on resize, theme change and prompt edits.
type screenLayout struct {
	InnerW  int
	InnerH  int
	ListH   int
	FooterH int

	// PromptW is the prompt's content width, border excluded.
	PromptW int

	LegendStyle      lipgloss.Style
	StatusStyle      lipgloss.Style
	HelpStyle        lipgloss.Style
	StatsStyle       lipgloss.Style
	PromptStyle      lipgloss.Style
	PromptFocusStyle lipgloss.Style
}

func (m Model) buildLayout(width, height int) screenLayout {
	s := m.styles
	frameW, frameH := s.AppStyle.GetFrameSize()
	l := screenLayout{
		InnerW: max(0, width-frameW),
		InnerH: max(0, height-frameH),
	}
	l.PromptW = promptWidth(s, l.InnerW)

	l.FooterH = footerCompact
	if l.InnerH >= footerFullMinHeight {
		l.FooterH = m.footerHeight(l.InnerH, l.PromptW)
	}
	l.ListH = max(2, l.InnerH-l.FooterH)

	LogChromeBreakdown(map[string]int{
		"terminal": height,
		"inner":    l.InnerH,
		"footer":   l.FooterH,
		"list":     l.ListH,
		"rows":     visibleRowsForTable(l.ListH),
	})

	line := lipgloss.NewStyle().Width(l.InnerW).Background(s.colorBg)
	l.LegendStyle = line
	l.StatusStyle = s.StatusStyle.Inherit(line)
	l.HelpStyle = s.HelpStyle.Inherit(line.Padding(0, 1).Width(max(0, l.InnerW-2)))
	l.StatsStyle = s.StatsBarStyle.Width(l.InnerW)
	l.PromptStyle = s.PromptStyle.Width(l.PromptW)
	l.PromptFocusStyle = s.PromptFocusedStyle.Width(l.PromptW)
	return l
}

// promptWidth is the prompt content width for an inner width of innerW.
func promptWidth(s *Styles, innerW int) int {
	frameW, _ := s.PromptStyle.GetFrameSize()
	w := max(0, innerW-frameW)
	if w < minPromptWidth && innerW >= frameW+minPromptWidth {
		w = minPromptWidth
	}
	return w
}

// footerHeight sizes a full footer so the prompt shows every line it has,
// leaving the list at least two lines.
func (m Model) footerHeight(innerH, promptW int) int {
	limit := innerH - 2
	if limit < footerMinHeight {
		return footerCompact
	}
	lines := max(promptMinContentLines, len(m.promptLines(promptW)))
	return clampInt(footerBaseLines+promptBorderLines+lines, footerMinHeight, limit)
}
