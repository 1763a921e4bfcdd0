package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/agenda/internal/datepicker"
	"github.com/javiermolinar/agenda/internal/tui/view"
)

// editPickerVisibleRows caps how many events the edit picker lists at once.
const editPickerVisibleRows = 8

type eventFormModalViewModel struct {
	Title  string
	Model  view.EventFormModel
	Styles view.EventFormStyles
}

func (m Model) modalStyleSet() view.ModalStyleSet {
	return view.ModalStyleSet{
		BodyStyle:         m.styles.ModalBodyStyle,
		MetaStyle:         m.styles.ModalMetaStyle,
		SectionTitleStyle: m.styles.ModalSectionTitleStyle,
		LabelStyle:        m.styles.ModalLabelStyle,
		HintStyle:         m.styles.ModalHintStyle,
		ErrorStyle:        m.styles.ModalErrorStyle,
		InputStyle:        m.styles.ModalInputStyle,
		InputFocusedStyle: m.styles.ModalInputFocusedStyle,
		ButtonStyle:       m.styles.ModalButtonStyle,
		ButtonActiveStyle: m.styles.ModalButtonActiveStyle,
		PickRowStyle:      m.styles.ModalPickRowStyle,
		PickCursorStyle:   m.styles.ModalPickCursorStyle,
	}
}

func (m Model) calendarStyles() view.CalendarStyles {
	return view.CalendarStyles{
		BoxStyle:      m.styles.CalendarBoxStyle,
		NavStyle:      m.styles.CalendarNavStyle,
		HeaderStyle:   m.styles.CalendarHeaderStyle,
		DayStyle:      m.styles.CalendarDayStyle,
		PastStyle:     m.styles.CalendarPastStyle,
		TodayStyle:    m.styles.CalendarTodayStyle,
		SelectedStyle: m.styles.CalendarSelectedStyle,
		FocusStyle:    m.styles.CalendarFocusStyle,
		EmptyStyle:    m.styles.CalendarEmptyStyle,
	}
}

// inputView renders a text input with the background of its box, which
// differs when focused.
func (m Model) inputView(input textinput.Model, focused bool) string {
	textStyle := m.styles.ModalInputTextStyle
	cursorStyle := textStyle
	if focused {
		focusedBg := m.styles.ModalInputFocusedStyle.GetBackground()
		textStyle = textStyle.Background(focusedBg)
		input.PlaceholderStyle = m.styles.ModalPlaceholderStyle.Background(focusedBg)
		cursorStyle = m.styles.ModalInputCursorStyle
	}
	input.TextStyle = textStyle
	input.PromptStyle = textStyle
	input.Cursor.TextStyle = textStyle
	input.Cursor.Style = cursorStyle
	return input.View()
}

func (m Model) eventFormModalViewModel() eventFormModalViewModel {
	f := m.form
	title := "New Event"
	editingLabel := ""
	if f.isEditing() {
		title = "Edit Event"
		editingLabel = fmt.Sprintf("Editing #%d, created %s", f.editing.ID, f.editing.CreatedAt.Format("02.01.2006"))
	}

	calendarView := ""
	if f.picker.IsOpen() {
		calendarView = view.RenderCalendar(f.calendarModel(), m.calendarStyles())
	}

	return eventFormModalViewModel{
		Title: title,
		Model: view.EventFormModel{
			EditingLabel: editingLabel,
			TitleView:    m.inputView(f.title, f.focus == fieldTitle),
			DateView:     m.inputView(f.date, f.focus == fieldDate),
			TitleFocused: f.focus == fieldTitle,
			DateFocused:  f.focus == fieldDate,
			TitleError:   f.titleErr,
			DateError:    f.dateErr,
			CalendarOpen: f.picker.IsOpen(),
			Calendar:     calendarView,
		},
		Styles: m.modalStyleSet().EventFormStyles(),
	}
}

// formGeometry holds the screen regions of the event form.
type formGeometry struct {
	TitleInput     datepicker.Rect
	DateInput      datepicker.Rect
	CalendarButton datepicker.Rect
	Calendar       datepicker.Rect
}

// eventFormGeometry lays out the form modal the way View does and returns its
// regions in screen cells.
func (m Model) eventFormGeometry() (formGeometry, bool) {
	vm := m.eventFormModalViewModel()
	layout := view.RenderEventFormBody(vm.Model, vm.Styles)
	modal := m.frameEventForm(vm, layout)

	ox, oy, ok := m.modalBackdrop().ContentOrigin(m.width, m.height, modal)
	if !ok {
		return formGeometry{}, false
	}
	bx, by := m.modalBodyOrigin(vm.Title)
	dx, dy := ox+bx, oy+by

	geom := formGeometry{
		TitleInput:     layout.TitleInput.Offset(dx, dy),
		DateInput:      layout.DateInput.Offset(dx, dy),
		CalendarButton: layout.CalendarButton.Offset(dx, dy),
	}
	if !layout.Calendar.Empty() {
		geom.Calendar = layout.Calendar.Offset(dx, dy)
	}
	return geom, true
}

// modalBodyOrigin is where the body starts inside a rendered modal frame:
// past the border, the padding, the header and the blank line under it.
func (m Model) modalBodyOrigin(title string) (int, int) {
	s := m.styles.ModalStyle
	header := m.styles.ModalHeaderStyle.Render(m.styles.ModalTitleStyle.Render(title))
	x := s.GetBorderLeftSize() + s.GetPaddingLeft()
	y := s.GetBorderTopSize() + s.GetPaddingTop() + lipgloss.Height(header) + 1
	return x, y
}

func (m Model) editPickerModel() view.EditPickerModel {
	frameW, _ := m.styles.ModalStyle.GetFrameSize()
	return view.EditPickerModel{
		Rows:    view.NewEditPickerRows(m.displayEvents()),
		Cursor:  m.pickCursor,
		Offset:  m.pickOffset,
		Visible: editPickerVisibleRows,
		Width:   modalWidth - frameW,
	}
}

func (m Model) confirmDeleteModel() view.ConfirmDeleteModel {
	editing := m.form.isEditing() && m.deleteTarget != nil && m.form.editing.ID == m.deleteTarget.ID
	return view.NewConfirmDeleteModel(m.deleteTarget, editing)
}

func (m Model) initModalModel() view.InitModalModel {
	return view.InitModalModel{
		ConfigPath:    m.setup.ConfigPath,
		DBPath:        m.setup.DBPath,
		ConfigMissing: m.setup.ConfigMissing,
		DBMissing:     m.setup.DBMissing,
		ErrorMessage:  m.initError,
	}
}
