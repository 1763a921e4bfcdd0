package theme

import (
	"regexp"
	"slices"
	"testing"
)

var hexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		want     string
		wantMode Mode
	}{
		{"mocha", "mocha", ModeDark},
		{"macchiato", "macchiato", ModeDark},
		{"frappe", "frappe", ModeDark},
		{"latte", "latte", ModeLight},
		{"light", "light", ModeLight},
		{"LATTE", "latte", ModeLight},
		{"", DefaultDark, ModeDark},
		{"nonexistent", DefaultDark, ModeDark},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme, err := Load(tt.name)
			if err != nil {
				t.Fatalf("Load(%q) error = %v", tt.name, err)
			}
			if theme.Name != tt.want || theme.Mode != tt.wantMode {
				t.Errorf("Load(%q) = %s/%s, want %s/%s", tt.name, theme.Name, theme.Mode, tt.want, tt.wantMode)
			}
		})
	}
}

func TestLoadFillsEveryColor(t *testing.T) {
	for _, name := range Available() {
		theme, err := Load(name)
		if err != nil {
			t.Fatalf("Load(%q) error = %v", name, err)
		}
		colors := map[string]string{
			"bg":           theme.Bg,
			"bg_highlight": theme.BgHighlight,
			"bg_selection": theme.BgSelection,
			"fg":           theme.Fg,
			"fg_muted":     theme.FgMuted,
			"accent":       theme.Accent,
			"today":        theme.Today,
			"error":        theme.Error,
			"warning":      theme.Warning,
			"base_bg":      theme.BaseBg,
			"modal_border": theme.ModalBorder,
			"text_primary": theme.TextPrimary,
			"text_muted":   theme.TextMuted,
			"highlight":    theme.Highlight,
		}
		for key, hex := range colors {
			if !hexPattern.MatchString(hex) {
				t.Errorf("%s: %s = %q, want #rrggbb", name, key, hex)
			}
		}
	}
}

func TestLoadReturnsCopy(t *testing.T) {
	a, _ := Load("mocha")
	a.Bg = "#000000"

	b, _ := Load("mocha")
	if b.Bg == "#000000" {
		t.Fatal("changing a loaded theme leaked into the catalog")
	}
}

func TestAvailable(t *testing.T) {
	want := []string{"frappe", "latte", "light", "macchiato", "mocha"}
	if got := Available(); !slices.Equal(got, want) {
		t.Fatalf("Available() = %v, want %v", got, want)
	}
}

func TestIsAvailable(t *testing.T) {
	tests := map[string]bool{
		"mocha":   true,
		"Mocha":   true,
		"unknown": false,
		"":        false,
	}
	for name, want := range tests {
		if got := IsAvailable(name); got != want {
			t.Errorf("IsAvailable(%q) = %t, want %t", name, got, want)
		}
	}
}

func TestForMode(t *testing.T) {
	tests := []struct {
		name     string
		mode     Mode
		light    string
		dark     string
		wantName string
	}{
		{"dark uses dark palette", ModeDark, "latte", "frappe", "frappe"},
		{"light uses light palette", ModeLight, "light", "mocha", "light"},
		{"unknown falls back", ModeLight, "nope", "mocha", DefaultLight},
		{"mismatched mode falls back", ModeDark, "latte", "latte", DefaultDark},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme, err := ForMode(tt.mode, tt.light, tt.dark)
			if err != nil {
				t.Fatalf("ForMode unexpected error: %v", err)
			}
			if theme.Name != tt.wantName {
				t.Errorf("ForMode(%q).Name = %q, want %q", tt.mode, theme.Name, tt.wantName)
			}
		})
	}
}
