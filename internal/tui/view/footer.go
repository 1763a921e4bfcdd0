package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Footer is the area under the event list. A full footer shows stats,
// legend, prompt, status and help; a compact one only status and help.
// Styles are expected to be sized for Width already.
type Footer struct {
	Width  int
	Height int
	Full   bool

	Stats  string // pre-rendered
	Legend string
	Status string
	Help   string

	PromptLines []string
	PromptMax   int  // content lines reserved for the prompt
	PromptFocus bool // prompt has keyboard focus
	ShowPrompt  bool // false while a modal hides the prompt

	LegendStyle      lipgloss.Style
	StatusStyle      lipgloss.Style
	HelpStyle        lipgloss.Style
	PromptStyle      lipgloss.Style
	PromptFocusStyle lipgloss.Style
	Bg               lipgloss.Color
}

// Render draws the footer bottom-aligned in its box.
func (f Footer) Render() string {
	if f.Height <= 0 {
		return ""
	}

	lines := []string{
		footerLine(f.Width, f.StatusStyle, f.Status),
		footerLine(f.Width, f.HelpStyle, f.Help),
	}
	if f.Full {
		lines = append([]string{
			f.Stats,
			footerLine(f.Width, f.LegendStyle, f.Legend),
			f.prompt(),
		}, lines...)
	}
	return PlaceBox(f.Width, f.Height, lipgloss.Bottom, strings.Join(lines, "\n"), f.Bg)
}

// prompt renders the prompt box. While hidden it keeps its height so the
// layout does not jump when a modal opens.
func (f Footer) prompt() string {
	style := f.PromptStyle
	lines := f.PromptLines
	switch {
	case !f.ShowPrompt:
		lines = make([]string, max(1, f.PromptMax))
	case f.PromptFocus:
		style = f.PromptFocusStyle
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return style.Render(strings.Join(lines, "\n"))
}

// footerLine renders one line, cut so it never wraps inside width.
func footerLine(width int, style lipgloss.Style, content string) string {
	if w := width - style.GetHorizontalFrameSize(); w > 0 {
		content = ansi.Truncate(content, w, "")
	}
	return style.Render(content)
}
