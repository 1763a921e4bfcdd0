package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds precomputed colors derived from a Theme.
type Palette struct {
	Mode Mode

	Bg          lipgloss.Color
	BgHighlight lipgloss.Color
	BgSelection lipgloss.Color
	Fg          lipgloss.Color
	FgMuted     lipgloss.Color
	Accent      lipgloss.Color
	Today       lipgloss.Color
	Error       lipgloss.Color
	Warning     lipgloss.Color

	PastFg   lipgloss.Color // days before today in the calendar
	RowAltBg lipgloss.Color // alternate event list rows

	TextOnAccent    lipgloss.Color
	TextOnSelection lipgloss.Color
	TextOnToday     lipgloss.Color
	TextOnWarning   lipgloss.Color

	Modal ModalColors
}

// ModalColors are the colors of modals and the calendar popup.
type ModalColors struct {
	Bg          lipgloss.Color
	Border      lipgloss.AdaptiveColor
	Text        lipgloss.AdaptiveColor
	Muted       lipgloss.AdaptiveColor
	Highlight   lipgloss.AdaptiveColor
	Panel       lipgloss.AdaptiveColor
	ReverseText lipgloss.AdaptiveColor
	Backdrop    lipgloss.Color
}

// NewPalette derives a Palette from t. A nil theme uses the default dark one.
func NewPalette(t *Theme) *Palette {
	if t == nil {
		t, _ = Load(DefaultDark)
	}
	// Hand-built themes skip Load.
	filled := *t
	filled.fill()
	t = &filled

	panel := coalesce(t.BgSelection, t.BgHighlight, t.Bg)

	return &Palette{
		Mode: t.Mode,

		Bg:          lipgloss.Color(t.Bg),
		BgHighlight: lipgloss.Color(t.BgHighlight),
		BgSelection: lipgloss.Color(t.BgSelection),
		Fg:          lipgloss.Color(t.Fg),
		FgMuted:     lipgloss.Color(t.FgMuted),
		Accent:      lipgloss.Color(t.Accent),
		Today:       lipgloss.Color(t.Today),
		Error:       lipgloss.Color(t.Error),
		Warning:     lipgloss.Color(t.Warning),

		PastFg:   lipgloss.Color(blendColors(t.FgMuted, t.Bg, 0.35)),
		RowAltBg: lipgloss.Color(alternateShade(t.Bg, t.Mode == ModeLight)),

		TextOnAccent:    lipgloss.Color(chooseTextColor(t.Accent, t.Bg, t.Fg)),
		TextOnSelection: lipgloss.Color(chooseTextColor(t.BgSelection, t.Bg, t.Fg)),
		TextOnToday:     lipgloss.Color(chooseTextColor(t.Today, t.Bg, t.Fg)),
		TextOnWarning:   lipgloss.Color(chooseTextColor(t.Warning, t.Bg, t.Fg)),

		Modal: ModalColors{
			Bg:          lipgloss.Color(t.BaseBg),
			Border:      sameColor(t.ModalBorder),
			Text:        sameColor(t.TextPrimary),
			Muted:       sameColor(t.TextMuted),
			Highlight:   sameColor(t.Highlight),
			Panel:       sameColor(panel),
			ReverseText: lipgloss.AdaptiveColor{Dark: t.BaseBg, Light: t.TextPrimary},
			Backdrop:    lipgloss.Color(panel),
		},
	}
}

// sameColor uses hex on both light and dark terminals.
func sameColor(hex string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: hex, Light: hex}
}

func isLightTheme(bg string) bool {
	return relativeLuminance(bg) > 0.55
}

// alternateShade nudges hex slightly away from the background for
// striped rows.
func alternateShade(hex string, isLight bool) string {
	if isLight {
		return blendColors(hex, "#000000", 0.04)
	}
	return blendColors(hex, "#ffffff", 0.05)
}

// blendColors mixes b into a by ratio, clamped to [0,1]. Invalid colors
// return a unchanged.
func blendColors(a, b string, ratio float64) string {
	ca, errA := colorful.Hex(a)
	cb, errB := colorful.Hex(b)
	if errA != nil || errB != nil {
		return a
	}
	return ca.BlendRgb(cb, min(max(ratio, 0), 1)).Hex()
}

// chooseTextColor picks whichever of lightText and darkText reads better
// on bg.
func chooseTextColor(bg, lightText, darkText string) string {
	if contrastRatio(bg, lightText) >= contrastRatio(bg, darkText) {
		return lightText
	}
	return darkText
}

func contrastRatio(a, b string) float64 {
	l1, l2 := relativeLuminance(a), relativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// relativeLuminance is the WCAG luminance of hex, 0 when hex is invalid.
func relativeLuminance(hex string) float64 {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}
