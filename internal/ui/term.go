package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// fallbackWidth is used when stdout is not a terminal.
const fallbackWidth = 80

// tone is the role of a piece of CLI output.
type tone int

const (
	toneToday tone = iota
	toneUpcoming
	tonePast
	toneHeader
	toneStats
	toneWarn
	toneMuted
)

var tones = map[tone]*color.Color{
	toneToday:    color.New(color.FgGreen, color.Bold),
	toneUpcoming: color.New(color.FgCyan),
	tonePast:     color.New(color.FgWhite, color.Faint),
	toneHeader:   color.New(color.Bold),
	toneStats:    color.New(color.FgGreen),
	toneWarn:     color.New(color.FgYellow),
	toneMuted:    color.New(color.FgWhite, color.Faint),
}

// paint renders s in the color of t. With color disabled it returns s.
func paint(t tone, s string) string {
	return tones[t].Sprint(s)
}

// termWidth returns the width of stdout, or fallbackWidth.
func termWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return fallbackWidth
}

// isTerminal reports whether stdin is interactive.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// DisableColor turns off colored output for the rest of the process.
func DisableColor() {
	color.NoColor = true
}
