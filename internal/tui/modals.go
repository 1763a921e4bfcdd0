package tui

import "github.com/javiermolinar/agenda/internal/tui/view"

// renderModal renders the current modal.
func (m Model) renderModal() string {
	switch m.modalType {
	case ModalEventForm:
		return m.renderEventFormModal()
	case ModalEditPicker:
		return m.renderEditPickerModal()
	case ModalConfirmDelete:
		return m.renderConfirmDeleteModal()
	case ModalInit:
		return m.renderInitModal()
	default:
		return ""
	}
}

func (m Model) modalStyles() view.ModalStyles {
	return view.ModalStyles{
		ModalHeaderStyle:       m.styles.ModalHeaderStyle,
		ModalTitleStyle:        m.styles.ModalTitleStyle,
		ModalFooterStyle:       m.styles.ModalFooterStyle,
		ModalStyle:             m.styles.ModalStyle,
		ModalButtonStyle:       m.styles.ModalButtonStyle,
		ModalButtonActiveStyle: m.styles.ModalButtonActiveStyle,
		ModalBodyStyle:         m.styles.ModalBodyStyle,
	}
}

// renderEventFormModal renders the add/edit form with its date picker.
func (m Model) renderEventFormModal() string {
	vm := m.eventFormModalViewModel()
	layout := view.RenderEventFormBody(vm.Model, vm.Styles)
	return m.frameEventForm(vm, layout)
}

func (m Model) frameEventForm(vm eventFormModalViewModel, layout view.EventFormLayout) string {
	footer := view.EventFormFooter(m.form.isEditing(), m.modalStyles())
	return view.RenderModalFrame(vm.Title, layout.Body, footer, m.modalStyles())
}

// renderEditPickerModal renders the list of events to choose from.
func (m Model) renderEditPickerModal() string {
	body := view.RenderEditPickerBody(m.editPickerModel(), m.modalStyleSet().EditPickerStyles())
	footer := view.EditPickerFooter(m.modalStyles())
	return view.RenderModalFrame("Edit Event", body, footer, m.modalStyles())
}

// renderConfirmDeleteModal renders the delete confirmation modal.
func (m Model) renderConfirmDeleteModal() string {
	body := view.RenderConfirmDeleteBody(m.confirmDeleteModel(), m.modalStyleSet().ConfirmDeleteStyles())
	footer := view.ConfirmDeleteFooter(m.modalStyles())
	return view.RenderModalFrame("Delete Event", body, footer, m.modalStyles())
}

// renderInitModal renders the startup initialization prompt.
func (m Model) renderInitModal() string {
	body := view.RenderInitBody(m.initModalModel(), m.modalStyleSet().InitModalStyles())
	footer := view.InitFooter(m.modalStyles())
	return view.RenderModalFrame("Setup Required", body, footer, m.modalStyles())
}
