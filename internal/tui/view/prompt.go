package view

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/agenda/internal/tui/input"
)

const (
	promptMarker = "> "
	promptIndent = "  "
)

// PromptState captures prompt input state for rendering.
type PromptState struct {
	Value  string
	Cursor string
	Active bool // suggestions are listed only while typing
}

// PromptLines returns the wrapped input followed, while the prompt is active,
// by the commands matching what has been typed so far.
func PromptLines(state PromptState, width int, commands input.CommandSet) []string {
	lines := prefixLines(wrapLines(state.Value+state.Cursor, width-len(promptMarker)), promptMarker)
	if !state.Active {
		return lines
	}
	for _, cmd := range commands.Matching(state.Value) {
		suggestion := wrapLines(cmd.Name+" "+cmd.Description, width-len(promptIndent))
		lines = append(lines, prefixLines(suggestion, promptIndent)...)
	}
	return lines
}

// ClampPromptLines keeps at most maxLines lines and marks the cut with an
// ellipsis.
func ClampPromptLines(lines []string, maxLines, width int) []string {
	if maxLines <= 0 {
		return nil
	}
	if len(lines) <= maxLines {
		return lines
	}
	clamped := append([]string(nil), lines[:maxLines]...)
	clamped[maxLines-1] = ansi.Truncate(clamped[maxLines-1]+"...", width, "...")
	return clamped
}

// wrapLines word-wraps s to width cells, breaking long words.
func wrapLines(s string, width int) []string {
	if width <= 0 {
		return []string{""}
	}
	return strings.Split(ansi.Wrap(s, width, ""), "\n")
}

// prefixLines puts first before the first line and an equally wide indent
// before the rest.
func prefixLines(lines []string, first string) []string {
	for i := range lines {
		if i == 0 {
			lines[i] = first + lines[i]
			continue
		}
		lines[i] = promptIndent + lines[i]
	}
	return lines
}
