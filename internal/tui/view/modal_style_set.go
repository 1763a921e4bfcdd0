package view

import "github.com/charmbracelet/lipgloss"

// ModalStyleSet groups modal styles to reduce call-site verbosity.
type ModalStyleSet struct {
	BodyStyle         lipgloss.Style
	MetaStyle         lipgloss.Style
	SectionTitleStyle lipgloss.Style
	LabelStyle        lipgloss.Style
	HintStyle         lipgloss.Style
	ErrorStyle        lipgloss.Style
	InputStyle        lipgloss.Style
	InputFocusedStyle lipgloss.Style
	ButtonStyle       lipgloss.Style
	ButtonActiveStyle lipgloss.Style
	PickRowStyle      lipgloss.Style
	PickCursorStyle   lipgloss.Style
}

// EventFormStyles returns the modal styles needed for the event form.
func (s ModalStyleSet) EventFormStyles() EventFormStyles {
	return EventFormStyles{
		BodyStyle:         s.BodyStyle,
		MetaStyle:         s.MetaStyle,
		SectionTitleStyle: s.SectionTitleStyle,
		InputStyle:        s.InputStyle,
		InputFocusedStyle: s.InputFocusedStyle,
		ErrorStyle:        s.ErrorStyle,
		ButtonStyle:       s.ButtonStyle,
		ButtonActiveStyle: s.ButtonActiveStyle,
	}
}

// EditPickerStyles returns the modal styles needed for the edit picker.
func (s ModalStyleSet) EditPickerStyles() EditPickerStyles {
	return EditPickerStyles{
		RowStyle:    s.PickRowStyle,
		CursorStyle: s.PickCursorStyle,
		MetaStyle:   s.MetaStyle,
	}
}

// ConfirmDeleteStyles returns the modal styles needed for delete confirmation.
func (s ModalStyleSet) ConfirmDeleteStyles() ConfirmDeleteStyles {
	return ConfirmDeleteStyles{
		BodyStyle: s.BodyStyle,
		MetaStyle: s.MetaStyle,
	}
}

// InitModalStyles returns the modal styles needed for initialization.
func (s ModalStyleSet) InitModalStyles() InitModalStyles {
	return InitModalStyles{
		BodyStyle:  s.BodyStyle,
		LabelStyle: s.LabelStyle,
		HintStyle:  s.HintStyle,
		ErrorStyle: s.ErrorStyle,
	}
}
