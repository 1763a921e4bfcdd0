package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/agenda/internal/tui/theme"
	"github.com/javiermolinar/agenda/internal/tui/view"
)

// Column widths of the event list.
const (
	idColWidth      = 5
	dateColWidth    = 12
	weekdayColWidth = 5
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	// Theme colors as lipgloss colors
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorToday       lipgloss.Color
	colorError       lipgloss.Color
	colorWarning     lipgloss.Color
	colorPast        lipgloss.Color
	colorRowAlt      lipgloss.Color

	colorTextOnAccent    lipgloss.Color
	colorTextOnSelection lipgloss.Color
	colorTextOnToday     lipgloss.Color

	// Event list
	ListHeaderStyle    lipgloss.Style
	RowStyle           lipgloss.Style
	RowAltStyle        lipgloss.Style
	RowPastStyle       lipgloss.Style
	RowTodayStyle      lipgloss.Style
	RowCursorStyle     lipgloss.Style
	RowEditingStyle    lipgloss.Style
	EmptyListStyle     lipgloss.Style
	ListBorderStyle    lipgloss.Style
	StatsBarStyle      lipgloss.Style
	StatsUpcomingStyle lipgloss.Style
	StatsPastStyle     lipgloss.Style

	// Prompt box
	PromptStyle        lipgloss.Style
	PromptFocusedStyle lipgloss.Style

	// Status message
	StatusStyle lipgloss.Style

	// Help text
	HelpStyle lipgloss.Style

	// Modal styles
	ModalStyle             lipgloss.Style
	ModalBackdropColor     lipgloss.Color
	ModalHeaderStyle       lipgloss.Style
	ModalFooterStyle       lipgloss.Style
	ModalTitleStyle        lipgloss.Style
	ModalBodyStyle         lipgloss.Style
	ModalMetaStyle         lipgloss.Style
	ModalSectionTitleStyle lipgloss.Style
	ModalLabelStyle        lipgloss.Style
	ModalInputStyle        lipgloss.Style
	ModalInputFocusedStyle lipgloss.Style
	ModalInputTextStyle    lipgloss.Style
	ModalInputCursorStyle  lipgloss.Style
	ModalPlaceholderStyle  lipgloss.Style
	ModalButtonStyle       lipgloss.Style
	ModalButtonActiveStyle lipgloss.Style
	ModalHintStyle         lipgloss.Style
	ModalErrorStyle        lipgloss.Style
	ModalPickRowStyle      lipgloss.Style
	ModalPickCursorStyle   lipgloss.Style

	// Calendar popup
	CalendarBoxStyle      lipgloss.Style
	CalendarNavStyle      lipgloss.Style
	CalendarHeaderStyle   lipgloss.Style
	CalendarDayStyle      lipgloss.Style
	CalendarPastStyle     lipgloss.Style
	CalendarTodayStyle    lipgloss.Style
	CalendarSelectedStyle lipgloss.Style
	CalendarFocusStyle    lipgloss.Style
	CalendarEmptyStyle    lipgloss.Style

	// App container
	AppStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)

	s.colorBg = palette.Bg
	s.colorBgHighlight = palette.BgHighlight
	s.colorBgSelection = palette.BgSelection
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent
	s.colorToday = palette.Today
	s.colorError = palette.Error
	s.colorWarning = palette.Warning
	s.colorPast = palette.PastFg
	s.colorRowAlt = palette.RowAltBg

	s.colorTextOnAccent = palette.TextOnAccent
	s.colorTextOnSelection = palette.TextOnSelection
	s.colorTextOnToday = palette.TextOnToday

	s.ListHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg).
		Padding(0, 1)

	s.RowStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg).
		Padding(0, 1)

	// Alternate rows: a barely visible shade so long lists stay readable
	s.RowAltStyle = s.RowStyle.
		Background(s.colorRowAlt)

	s.RowPastStyle = s.RowStyle.
		Foreground(s.colorPast)

	s.RowTodayStyle = s.RowStyle.
		Foreground(s.colorToday).
		Bold(true)

	s.RowCursorStyle = s.RowStyle.
		Background(s.colorBgSelection).
		Foreground(s.colorTextOnSelection).
		Bold(true)

	s.RowEditingStyle = s.RowStyle.
		Background(s.colorWarning).
		Foreground(palette.TextOnWarning).
		Bold(true)

	s.EmptyListStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg).
		Italic(true)

	s.ListBorderStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.StatsBarStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg).
		Padding(0, 0)

	s.StatsUpcomingStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(s.colorBg).
		Bold(true)

	s.StatsPastStyle = lipgloss.NewStyle().
		Foreground(s.colorPast).
		Background(s.colorBg).
		Bold(true)

	// Prompt box
	s.PromptStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorFgMuted).
		BorderBackground(s.colorBg).
		Background(s.colorBgHighlight).
		Foreground(s.colorFg).
		Padding(0, 1)

	s.PromptFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorAccent).
		BorderBackground(s.colorBg).
		Background(s.colorBgSelection).
		Foreground(s.colorFg).
		Bold(true).
		Padding(0, 1)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(s.colorBg).
		Bold(true)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	// Modal styles - use high-contrast theme colors
	modal := palette.Modal
	modalBg := modal.Bg
	modalBorder := modal.Border
	modalText := modal.Text
	modalMuted := modal.Muted
	modalHighlight := modal.Highlight
	modalPanel := modal.Panel
	modalReverseText := modal.ReverseText
	s.ModalBackdropColor = modal.Backdrop

	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modalBorder).
		Background(modalBg).
		Foreground(modalText).
		Padding(1, 1).
		Width(modalWidth).
		Align(lipgloss.Left)

	s.ModalHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modalText).
		Background(modalBg).
		Padding(0, 1).
		Align(lipgloss.Center)

	s.ModalFooterStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(modalBg)

	s.ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modalText).
		Background(modalBg)

	s.ModalBodyStyle = lipgloss.NewStyle().
		Foreground(modalText).
		Background(modalBg)

	s.ModalMetaStyle = lipgloss.NewStyle().
		Foreground(modalMuted).
		Background(modalBg)

	s.ModalSectionTitleStyle = lipgloss.NewStyle().
		Foreground(modalText).
		Bold(true).
		PaddingLeft(1).
		Background(modalBg)

	s.ModalLabelStyle = lipgloss.NewStyle().
		Foreground(modalText).
		Bold(true).
		Width(12).
		Background(modalBg)

	s.ModalInputStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(modalBorder).
		Background(modalBg).
		Foreground(modalText).
		Padding(0, 1)

	s.ModalInputFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(modalHighlight).
		Background(modalPanel).
		Foreground(modalText).
		Padding(0, 1)

	s.ModalInputTextStyle = lipgloss.NewStyle().
		Foreground(modalText).
		Background(modalBg)

	s.ModalInputCursorStyle = lipgloss.NewStyle().
		Foreground(modalReverseText).
		Background(modalHighlight)

	s.ModalPlaceholderStyle = lipgloss.NewStyle().
		Foreground(modalMuted).
		Background(modalBg)

	s.ModalButtonStyle = lipgloss.NewStyle().
		Background(modalPanel).
		Foreground(modalText).
		Padding(0, 3)

	s.ModalButtonActiveStyle = lipgloss.NewStyle().
		Background(modalHighlight).
		Foreground(modalReverseText).
		Padding(0, 3).
		MarginRight(0).
		Underline(true)

	s.ModalHintStyle = lipgloss.NewStyle().
		Foreground(modalMuted).
		Background(modalBg)

	s.ModalErrorStyle = lipgloss.NewStyle().
		Foreground(s.colorError).
		Background(modalBg).
		PaddingLeft(1)

	s.ModalPickRowStyle = lipgloss.NewStyle().
		Foreground(modalText).
		Background(modalBg).
		Padding(0, 1)

	s.ModalPickCursorStyle = lipgloss.NewStyle().
		Foreground(modalReverseText).
		Background(modalHighlight).
		Bold(true).
		Padding(0, 1)

	// Calendar popup
	s.CalendarBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorAccent).
		BorderBackground(modalBg).
		Background(modalBg)

	s.CalendarNavStyle = lipgloss.NewStyle().
		Foreground(modalText).
		Background(modalBg).
		Bold(true)

	s.CalendarHeaderStyle = lipgloss.NewStyle().
		Foreground(modalMuted).
		Background(modalBg).
		Width(view.CalendarCellWidth).
		Align(lipgloss.Center)

	s.CalendarDayStyle = lipgloss.NewStyle().
		Foreground(modalText).
		Background(modalBg).
		Width(view.CalendarCellWidth).
		Align(lipgloss.Center)

	s.CalendarPastStyle = s.CalendarDayStyle.
		Foreground(s.colorPast)

	s.CalendarTodayStyle = s.CalendarDayStyle.
		Foreground(s.colorToday).
		Bold(true).
		Underline(true)

	s.CalendarSelectedStyle = s.CalendarDayStyle.
		Background(s.colorAccent).
		Foreground(s.colorTextOnAccent).
		Bold(true)

	s.CalendarFocusStyle = s.CalendarDayStyle.
		Background(s.colorBgSelection).
		Foreground(s.colorTextOnSelection).
		Bold(true)

	s.CalendarEmptyStyle = s.CalendarDayStyle

	// App container - padding provides consistent indentation for all content
	s.AppStyle = lipgloss.NewStyle().
		Background(s.colorBg).
		PaddingTop(1).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingBottom(1)

	return s
}
