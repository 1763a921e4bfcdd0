package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/agenda/internal/calendar"
	"github.com/javiermolinar/agenda/internal/datepicker"
	"github.com/javiermolinar/agenda/internal/dateutil"
	"github.com/javiermolinar/agenda/internal/event"
	"github.com/javiermolinar/agenda/internal/tui/view"
)

type formField int

const (
	fieldTitle formField = iota
	fieldDate
)

// eventForm is the add/edit form. It is shared by pointer between copies of
// the model, like the popup widget it owns.
type eventForm struct {
	title  textinput.Model
	date   textinput.Model
	picker *datepicker.Widget
	hub    *datepicker.Hub

	focus    formField
	titleErr string
	dateErr  string

	// editing is the stored event being changed; nil while adding.
	editing *event.Event
}

func newEventForm(hub *datepicker.Hub, now func() time.Time) *eventForm {
	title := textinput.New()
	title.Placeholder = "What is happening?"
	title.CharLimit = 120
	title.Prompt = ""
	title.Width = view.TitleInputWidth - 4

	date := textinput.New()
	date.Placeholder = "DD.MM.YYYY"
	date.CharLimit = len("DD.MM.YYYY")
	date.Prompt = ""
	date.Width = view.DateInputWidth - 4

	f := &eventForm{
		title: title,
		date:  date,
		hub:   hub,
	}
	f.picker = datepicker.New(f.onDateChange,
		datepicker.WithObserver(hub),
		datepicker.WithClock(now),
		datepicker.WithCloseHook(func(r datepicker.CloseReason) {
			LogPicker("close", r.String())
		}),
	)
	f.setFocus(fieldTitle)
	return f
}

// onDateChange receives every value the picker emits, typed or picked.
func (f *eventForm) onDateChange(value string) {
	f.date.SetValue(value)
	f.date.CursorEnd()
	f.dateErr = ""
}

func (f *eventForm) applyStyles(s *Styles) {
	for _, in := range []*textinput.Model{&f.title, &f.date} {
		in.TextStyle = s.ModalInputTextStyle
		in.PlaceholderStyle = s.ModalPlaceholderStyle
		in.Cursor.Style = s.ModalInputCursorStyle
		in.Cursor.TextStyle = s.ModalInputTextStyle
	}
}

// setFocus moves keyboard focus. Leaving the date field blurs the picker,
// which closes an open popup.
func (f *eventForm) setFocus(field formField) {
	if f.focus == fieldDate && field != fieldDate && f.hub != nil {
		f.hub.Blur()
	}
	f.focus = field
	if field == fieldTitle {
		f.title.Focus()
		f.date.Blur()
		return
	}
	f.date.Focus()
	f.title.Blur()
}

func (f *eventForm) nextField() {
	if f.focus == fieldTitle {
		f.setFocus(fieldDate)
		return
	}
	f.setFocus(fieldTitle)
}

// reset clears every field and leaves edit mode.
func (f *eventForm) reset() {
	f.picker.Close()
	f.title.SetValue("")
	f.date.SetValue("")
	f.picker.SetValue("")
	f.titleErr = ""
	f.dateErr = ""
	f.editing = nil
	f.setFocus(fieldTitle)
}

// load fills the form with an existing event and enters edit mode.
func (f *eventForm) load(e *event.Event) {
	f.reset()
	f.editing = e
	f.title.SetValue(e.Title)
	f.title.CursorEnd()
	f.date.SetValue(e.Date)
	f.date.CursorEnd()
	f.picker.SetValue(e.Date)
}

func (f *eventForm) isEditing() bool {
	return f.editing != nil
}

// validate sets both field errors and reports whether the form is valid.
func (f *eventForm) validate(today dateutil.Date) bool {
	fe := event.Check(f.title.Value(), f.date.Value(), today)
	f.titleErr = fe.Title
	f.dateErr = fe.Date
	return fe.Empty()
}

// updateTitle forwards a key to the title input. Typing clears its error.
func (f *eventForm) updateTitle(msg tea.KeyMsg) tea.Cmd {
	before := f.title.Value()
	var cmd tea.Cmd
	f.title, cmd = f.title.Update(msg)
	if f.title.Value() != before {
		f.titleErr = ""
	}
	return cmd
}

// updateDate forwards a key to the date input and normalizes the result
// through the picker, which echoes it back via onDateChange.
func (f *eventForm) updateDate(msg tea.KeyMsg) tea.Cmd {
	before := f.date.Value()
	var cmd tea.Cmd
	f.date, cmd = f.date.Update(msg)
	if f.date.Value() != before {
		f.picker.Type(f.date.Value())
	}
	return cmd
}

func (f *eventForm) titleValue() string {
	return strings.TrimSpace(f.title.Value())
}

func (f *eventForm) calendarModel() view.CalendarModel {
	return view.CalendarModel{
		Label: f.picker.Cursor().Label(),
		Weeks: calendar.Weeks(f.picker.Cells()),
		Focus: f.picker.Focus(),
	}
}
