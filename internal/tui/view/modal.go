package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ModalStyles groups the styles needed to render modal frames and buttons.
type ModalStyles struct {
	ModalHeaderStyle       lipgloss.Style
	ModalTitleStyle        lipgloss.Style
	ModalFooterStyle       lipgloss.Style
	ModalStyle             lipgloss.Style
	ModalButtonStyle       lipgloss.Style
	ModalButtonActiveStyle lipgloss.Style
	ModalBodyStyle         lipgloss.Style
}

// Compact returns the styles with one cell of horizontal padding on the
// buttons, for footers with more than two actions.
func (s ModalStyles) Compact() ModalStyles {
	s.ModalButtonStyle = s.ModalButtonStyle.Padding(0, 1)
	s.ModalButtonActiveStyle = s.ModalButtonActiveStyle.Padding(0, 1)
	return s
}

// RenderModalFrame renders a titled modal. Empty body or footer sections are
// left out.
func RenderModalFrame(title, body, footer string, styles ModalStyles) string {
	sections := []string{styles.ModalHeaderStyle.Render(styles.ModalTitleStyle.Render(title))}
	if body != "" {
		sections = append(sections, body)
	}
	if footer != "" {
		sections = append(sections, styles.ModalFooterStyle.Render(footer))
	}
	return styles.ModalStyle.Render(strings.Join(sections, "\n\n"))
}

// RenderModalButtons renders a row of buttons; the first is the default
// action.
func RenderModalButtons(styles ModalStyles, labels ...string) string {
	parts := make([]string, len(labels))
	for i, label := range labels {
		style := styles.ModalButtonStyle
		if i == 0 {
			style = styles.ModalButtonActiveStyle
		}
		parts[i] = style.Render(label)
	}
	return strings.Join(parts, styles.ModalBodyStyle.Render(" "))
}

// EventFormFooter renders the form actions, which name the edit when one is
// in progress.
func EventFormFooter(editing bool, styles ModalStyles) string {
	if editing {
		return RenderModalButtons(styles, "[Enter] Update", "[Esc] Cancel edit")
	}
	return RenderModalButtons(styles, "[Enter] Add", "[Esc] Cancel")
}

// EditPickerFooter renders the edit picker actions.
func EditPickerFooter(styles ModalStyles) string {
	return RenderModalButtons(styles.Compact(), "[Enter] Edit", "[d] Delete", "[Esc] Close")
}

// ConfirmDeleteFooter renders the delete confirmation actions.
func ConfirmDeleteFooter(styles ModalStyles) string {
	return RenderModalButtons(styles, "[y/Enter] Delete", "[n/Esc] Keep")
}

// InitFooter renders the setup actions.
func InitFooter(styles ModalStyles) string {
	return RenderModalButtons(styles, "[Enter] Allow", "[Esc] Quit")
}
