package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// EditPickerRow is one selectable event in the edit picker.
type EditPickerRow struct {
	Date  string
	Title string
}

// EditPickerModel contains the fields needed to render the edit picker body.
type EditPickerModel struct {
	Rows    []EditPickerRow
	Cursor  int
	Offset  int
	Visible int
	Width   int
}

// EditPickerStyles groups styles for the edit picker body.
type EditPickerStyles struct {
	RowStyle    lipgloss.Style
	CursorStyle lipgloss.Style
	MetaStyle   lipgloss.Style
}

// RenderEditPickerBody renders the list of events that can be edited.
func RenderEditPickerBody(model EditPickerModel, styles EditPickerStyles) string {
	if len(model.Rows) == 0 {
		return styles.MetaStyle.Render(" No events")
	}

	end := min(len(model.Rows), model.Offset+model.Visible)
	lines := make([]string, 0, end-model.Offset+1)
	for i := model.Offset; i < end; i++ {
		r := model.Rows[i]
		style := styles.RowStyle
		if i == model.Cursor {
			style = styles.CursorStyle
		}
		frameW, _ := style.GetFrameSize()
		text := ansi.Truncate(r.Date+"  "+r.Title, max(0, model.Width-frameW), "…")
		lines = append(lines, style.Width(model.Width).Render(text))
	}
	if len(model.Rows) > model.Visible {
		lines = append(lines, styles.MetaStyle.Render(fmt.Sprintf(" %d of %d", model.Cursor+1, len(model.Rows))))
	}
	return strings.Join(lines, "\n")
}

// ConfirmDeleteModel contains the fields needed to render the confirm delete body.
type ConfirmDeleteModel struct {
	Title     string
	DateLabel string
	Editing   bool
	HasEvent  bool
}

// ConfirmDeleteStyles groups styles for the confirm delete body.
type ConfirmDeleteStyles struct {
	BodyStyle lipgloss.Style
	MetaStyle lipgloss.Style
}

// RenderConfirmDeleteBody renders the modal body for the delete confirmation.
func RenderConfirmDeleteBody(model ConfirmDeleteModel, styles ConfirmDeleteStyles) string {
	var body strings.Builder

	if model.HasEvent {
		body.WriteString(styles.BodyStyle.Render(fmt.Sprintf(" \"%s\"", model.Title)) + "\n")
		body.WriteString(styles.BodyStyle.Render(" "+model.DateLabel) + "\n\n")
	}
	if model.Editing {
		body.WriteString(styles.MetaStyle.Render(" This event is open in the editor.") + "\n")
	}
	body.WriteString(styles.BodyStyle.Render(" This permanently deletes the event.\n Are you sure?"))

	return body.String()
}

// InitModalModel contains the fields needed to render the init modal body.
type InitModalModel struct {
	ConfigPath    string
	DBPath        string
	ConfigMissing bool
	DBMissing     bool
	ErrorMessage  string
}

// InitModalStyles groups styles for the init modal body.
type InitModalStyles struct {
	BodyStyle  lipgloss.Style
	LabelStyle lipgloss.Style
	HintStyle  lipgloss.Style
	ErrorStyle lipgloss.Style
}

// RenderInitBody renders the startup initialization prompt.
func RenderInitBody(model InitModalModel, styles InitModalStyles) string {
	var body strings.Builder

	body.WriteString(styles.BodyStyle.Render(" agenda needs to create the following files:") + "\n\n")
	if model.ConfigMissing {
		body.WriteString(styles.LabelStyle.Render(" Config") + styles.BodyStyle.Render(model.ConfigPath) + "\n")
	}
	if model.DBMissing {
		body.WriteString(styles.LabelStyle.Render(" Database") + styles.BodyStyle.Render(model.DBPath) + "\n")
	}
	body.WriteString("\n" + styles.HintStyle.Render(" Existing files are never overwritten."))
	if model.ErrorMessage != "" {
		body.WriteString("\n\n" + styles.ErrorStyle.Render(model.ErrorMessage))
	}

	return body.String()
}
