// Package view renders the pieces of the agenda screen: the event list,
// the footer, modals and the calendar popup.
package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Overlay draws content over a width x height base screen.
type Overlay func(base string, width, height int, content string) string

// Screen is one frame of the TUI.
type Screen struct {
	Width   int
	Height  int
	Base    string
	Modal   string // empty when no modal is open
	Overlay Overlay
}

// Compose returns the frame, with the modal laid over the base when one is
// open.
func Compose(s Screen) string {
	if s.Width == 0 || s.Height == 0 {
		return "Loading..."
	}
	if s.Modal == "" || s.Overlay == nil {
		return s.Base
	}
	return s.Overlay(s.Base, s.Width, s.Height, s.Modal)
}

// PlaceBox renders content left-aligned in a w x h box filled with bg.
func PlaceBox(w, h int, vAlign lipgloss.Position, content string, bg lipgloss.Color) string {
	placed := lipgloss.Place(w, h, lipgloss.Left, vAlign, content, lipgloss.WithWhitespaceBackground(bg))
	return FillBackground(placed, w, h, bg)
}

// FillBackground pads content to exactly width x height, filling with bg.
// Wider lines are truncated and extra lines dropped.
func FillBackground(content string, width, height int, bg lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return content
	}

	pad := lipgloss.NewStyle().Background(bg)
	lines := strings.Split(content, "\n")
	out := make([]string, height)
	for i := range out {
		var line string
		if i < len(lines) {
			line = lines[i]
		}
		switch w := lipgloss.Width(line); {
		case w > width:
			line = ansi.Truncate(line, width, "")
		case w < width:
			line += pad.Render(strings.Repeat(" ", width-w))
		}
		out[i] = line
	}
	return strings.Join(out, "\n")
}

// BackgroundSeq returns the escape sequence that sets bg, or "" when bg is
// unset.
func BackgroundSeq(bg lipgloss.Color) string {
	if bg == "" {
		return ""
	}
	return ansi.Style{}.BackgroundColor(ansi.HexColor(string(bg))).String()
}

// KeepBackground re-applies bgSeq after every reset in line, so styled spans
// inside a filled box do not fall back to the terminal background.
func KeepBackground(line, bgSeq string) string {
	if bgSeq == "" || line == "" {
		return line
	}
	for _, reset := range []string{ansi.ResetStyle, "\x1b[0m", "\x1b[49m"} {
		line = strings.ReplaceAll(line, reset, reset+bgSeq)
	}
	return line
}
