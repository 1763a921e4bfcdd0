package theme

import (
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// Mode is the light or dark appearance of the UI.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// Toggle returns the opposite mode.
func (m Mode) Toggle() Mode {
	if m == ModeLight {
		return ModeDark
	}
	return ModeLight
}

// Valid reports whether m is light or dark.
func (m Mode) Valid() bool {
	return m == ModeLight || m == ModeDark
}

// ParseMode parses "light" or "dark", case-insensitively.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("unknown theme %q (want light or dark)", s)
	}
	return m, nil
}

// Detect asks the terminal for its background color and returns the
// matching mode. Terminals that do not answer are treated as dark.
func Detect() Mode {
	if termenv.NewOutput(os.Stdout).HasDarkBackground() {
		return ModeDark
	}
	return ModeLight
}

// Resolve picks the initial mode. A persisted preference wins, then a fixed
// configured mode ("light" or "dark"), then detect. With setting "auto" and
// nothing persisted the result follows the terminal.
func Resolve(persisted string, hasPersisted bool, setting string, detect func() Mode) Mode {
	if hasPersisted {
		if m, err := ParseMode(persisted); err == nil {
			return m
		}
	}
	if m, err := ParseMode(setting); err == nil {
		return m
	}
	if detect == nil {
		return ModeDark
	}
	return detect()
}
