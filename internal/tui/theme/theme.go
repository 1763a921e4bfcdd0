// Package theme provides the light and dark palettes of the TUI.
package theme

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// Built-in palette per mode, used when the configured one is unusable.
const (
	DefaultDark  = "mocha"
	DefaultLight = "latte"
)

// Theme is one palette file. Empty modal colors are filled from the base
// colors on load.
type Theme struct {
	Name        string `toml:"name"`
	Mode        Mode   `toml:"mode"`
	Bg          string `toml:"bg"`
	BgHighlight string `toml:"bg_highlight"` // panels, calendar popup
	BgSelection string `toml:"bg_selection"` // cursor, focused day
	Fg          string `toml:"fg"`
	FgMuted     string `toml:"fg_muted"` // past days, hints
	Accent      string `toml:"accent"`   // title, selected day, borders
	Today       string `toml:"today"`
	Error       string `toml:"error"`   // field errors
	Warning     string `toml:"warning"` // status warnings, delete confirm

	BaseBg      string `toml:"base_bg"`
	ModalBorder string `toml:"modal_border"`
	TextPrimary string `toml:"text_primary"`
	TextMuted   string `toml:"text_muted"`
	Highlight   string `toml:"highlight"`
}

// catalog parses every embedded palette once.
var catalog = sync.OnceValues(func() (map[string]Theme, error) {
	entries, err := fs.ReadDir(embeddedThemes, "embedded")
	if err != nil {
		return nil, err
	}
	themes := make(map[string]Theme, len(entries))
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
		data, err := embeddedThemes.ReadFile(path.Join("embedded", e.Name()))
		if err != nil {
			return nil, err
		}
		var t Theme
		if err := toml.Unmarshal(data, &t); err != nil {
			return nil, fmt.Errorf("parsing theme %q: %w", name, err)
		}
		t.fill()
		themes[name] = t
	}
	return themes, nil
})

// Load returns the palette called name. Empty and unknown names load the
// default dark palette.
func Load(name string) (*Theme, error) {
	themes, err := catalog()
	if err != nil {
		return nil, fmt.Errorf("loading themes: %w", err)
	}
	t, ok := themes[strings.ToLower(name)]
	if !ok {
		if t, ok = themes[DefaultDark]; !ok {
			return nil, fmt.Errorf("theme %q not found", DefaultDark)
		}
	}
	return &t, nil
}

// ForMode loads the palette configured for mode. An unknown or mismatched
// name falls back to the built-in default for that mode.
func ForMode(mode Mode, lightName, darkName string) (*Theme, error) {
	name, fallback := darkName, DefaultDark
	if mode == ModeLight {
		name, fallback = lightName, DefaultLight
	}
	if !IsAvailable(name) {
		name = fallback
	}
	t, err := Load(name)
	if err != nil {
		return nil, err
	}
	if t.Mode != mode {
		return Load(fallback)
	}
	return t, nil
}

func (t *Theme) fill() {
	if t.Mode == "" {
		t.Mode = ModeDark
		if isLightTheme(t.Bg) {
			t.Mode = ModeLight
		}
	}
	t.BaseBg = coalesce(t.BaseBg, t.BgHighlight, t.Bg)
	t.ModalBorder = coalesce(t.ModalBorder, t.Accent)
	t.TextPrimary = coalesce(t.TextPrimary, t.Fg)
	t.TextMuted = coalesce(t.TextMuted, t.FgMuted)
	t.Highlight = coalesce(t.Highlight, t.BgSelection, t.Accent)
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available returns the embedded palette names, sorted.
func Available() []string {
	themes, err := catalog()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsAvailable reports whether a palette called name is embedded.
func IsAvailable(name string) bool {
	return slices.Contains(Available(), strings.ToLower(name))
}
