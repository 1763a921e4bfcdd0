package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/agenda/internal/datepicker"
)

// Input widths of the event form, padding included.
const (
	TitleInputWidth = 54
	DateInputWidth  = 16
)

// EventFormModel contains the fields needed to render the event form body.
type EventFormModel struct {
	EditingLabel string
	TitleView    string
	DateView     string
	TitleFocused bool
	DateFocused  bool
	TitleError   string
	DateError    string
	CalendarOpen bool
	Calendar     string
}

// EventFormStyles groups styles for the event form body.
type EventFormStyles struct {
	BodyStyle         lipgloss.Style
	MetaStyle         lipgloss.Style
	SectionTitleStyle lipgloss.Style
	InputStyle        lipgloss.Style
	InputFocusedStyle lipgloss.Style
	ErrorStyle        lipgloss.Style
	ButtonStyle       lipgloss.Style
	ButtonActiveStyle lipgloss.Style
}

// EventFormLayout is the rendered body plus the regions a mouse can hit,
// relative to the body's top-left corner.
type EventFormLayout struct {
	Body           string
	TitleInput     datepicker.Rect
	DateInput      datepicker.Rect
	CalendarButton datepicker.Rect
	Calendar       datepicker.Rect
}

// calendarIndent aligns the popup with the section titles.
const calendarIndent = 1

// RenderEventFormBody renders the title and date fields, their inline errors
// and, when open, the calendar popup under the date field.
func RenderEventFormBody(model EventFormModel, styles EventFormStyles) EventFormLayout {
	var (
		layout EventFormLayout
		blocks []string
		row    int
	)
	add := func(block string) int {
		at := row
		blocks = append(blocks, block)
		row += lipgloss.Height(block)
		return at
	}

	if model.EditingLabel != "" {
		add(styles.MetaStyle.Render(" " + model.EditingLabel))
		add("")
	}

	add(styles.SectionTitleStyle.Render("TITLE"))
	titleStyle := styles.InputStyle
	if model.TitleFocused {
		titleStyle = styles.InputFocusedStyle
	}
	titleBox := titleStyle.Width(TitleInputWidth).Render(model.TitleView)
	layout.TitleInput = datepicker.Rect{
		Y:      add(titleBox),
		Width:  lipgloss.Width(titleBox),
		Height: lipgloss.Height(titleBox),
	}
	add(errorLine(model.TitleError, styles))
	add("")

	add(styles.SectionTitleStyle.Render("DATE") + styles.MetaStyle.Render("  DD.MM.YYYY"))
	dateStyle := styles.InputStyle
	if model.DateFocused {
		dateStyle = styles.InputFocusedStyle
	}
	dateBox := dateStyle.Width(DateInputWidth).Render(model.DateView)
	buttonStyle := styles.ButtonStyle.Padding(0, 1)
	if model.CalendarOpen {
		buttonStyle = styles.ButtonActiveStyle.Padding(0, 1)
	}
	button := buttonStyle.Render("Calendar")
	sep := styles.BodyStyle.Render(" ")
	dateRow := lipgloss.JoinHorizontal(lipgloss.Center, dateBox, sep, button)
	dateY := add(dateRow)
	layout.DateInput = datepicker.Rect{
		Y:      dateY,
		Width:  lipgloss.Width(dateBox),
		Height: lipgloss.Height(dateBox),
	}
	layout.CalendarButton = datepicker.Rect{
		X:      lipgloss.Width(dateBox) + lipgloss.Width(sep),
		Y:      dateY + (lipgloss.Height(dateBox)-lipgloss.Height(button))/2,
		Width:  lipgloss.Width(button),
		Height: lipgloss.Height(button),
	}
	add(errorLine(model.DateError, styles))

	if model.CalendarOpen && model.Calendar != "" {
		popup := styles.BodyStyle.PaddingLeft(calendarIndent).Render(model.Calendar)
		layout.Calendar = datepicker.Rect{
			X:      calendarIndent,
			Y:      add(popup),
			Width:  lipgloss.Width(model.Calendar),
			Height: lipgloss.Height(model.Calendar),
		}
	}

	layout.Body = strings.Join(blocks, "\n")
	return layout
}

func errorLine(msg string, styles EventFormStyles) string {
	if msg == "" {
		return styles.BodyStyle.Render(" ")
	}
	return styles.ErrorStyle.Render(msg)
}
