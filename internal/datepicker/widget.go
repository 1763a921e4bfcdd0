// Package datepicker implements a date input: a masked DD.MM.YYYY text path
// plus a popup month calendar with an explicit Open/Closed state machine.
package datepicker

import (
	"time"

	"github.com/javiermolinar/agenda/internal/calendar"
	"github.com/javiermolinar/agenda/internal/dateutil"
)

// State is the popup state.
type State int

const (
	Closed State = iota
	Open
)

// String returns the state name.
func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// CloseReason records which transition closed the popup.
type CloseReason int

const (
	CloseToggle CloseReason = iota
	ClosePick
	CloseDismiss
	CloseExplicit
)

// String returns the reason name.
func (r CloseReason) String() string {
	switch r {
	case CloseToggle:
		return "toggle"
	case ClosePick:
		return "pick"
	case CloseDismiss:
		return "dismiss"
	default:
		return "explicit"
	}
}

// Widget owns the open flag, the cursor month and the keyboard focus of one
// date input. The selected date and the text value are exchanged with the
// consumer by value through onChange.
type Widget struct {
	state    State
	value    string
	selected dateutil.Date
	hasSel   bool
	cursor   calendar.Month
	focus    dateutil.Date
	bounds   []Rect

	onChange func(string)
	observer Observer
	cancel   func()
	onClose  func(CloseReason)
	now      func() time.Time
}

// Option configures a Widget.
type Option func(*Widget)

// WithObserver sets the observer used for dismiss-on-outside-interaction.
func WithObserver(o Observer) Option {
	return func(w *Widget) { w.observer = o }
}

// WithClock overrides the time source used for "today".
func WithClock(now func() time.Time) Option {
	return func(w *Widget) { w.now = now }
}

// WithValue sets the initial text value without emitting onChange.
func WithValue(v string) Option {
	return func(w *Widget) { w.SetValue(v) }
}

// WithCloseHook registers a callback run after every Open->Closed transition.
func WithCloseHook(fn func(CloseReason)) Option {
	return func(w *Widget) { w.onClose = fn }
}

// New creates a closed widget. onChange receives every new text value; it may be nil.
func New(onChange func(string), opts ...Option) *Widget {
	w := &Widget{
		onChange: onChange,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.cursor = calendar.CurrentMonth(w.now())
	return w
}

// State returns the popup state.
func (w *Widget) State() State { return w.state }

// IsOpen reports whether the popup is open.
func (w *Widget) IsOpen() bool { return w.state == Open }

// Value returns the current text value, possibly incomplete.
func (w *Widget) Value() string { return w.value }

// Selected returns the selected date, if any.
func (w *Widget) Selected() (dateutil.Date, bool) { return w.selected, w.hasSel }

// Cursor returns the month shown in the popup.
func (w *Widget) Cursor() calendar.Month { return w.cursor }

// Focus returns the day under the keyboard cursor.
func (w *Widget) Focus() dateutil.Date { return w.focus }

// Today returns the widget's notion of the current date.
func (w *Widget) Today() dateutil.Date { return dateutil.FromTime(w.now()) }

// Contains implements Region: (x, y) is inside when any drawn part covers it.
func (w *Widget) Contains(x, y int) bool {
	for _, r := range w.bounds {
		if r.Contains(x, y) {
			return true
		}
	}
	return false
}

// SetBounds records every part the widget draws, such as its input, trigger
// button and popup. The host updates it on every layout.
func (w *Widget) SetBounds(parts ...Rect) { w.bounds = append(w.bounds[:0], parts...) }

// Cells renders the popup grid for the current cursor.
func (w *Widget) Cells() []calendar.Cell {
	var sel *dateutil.Date
	if w.hasSel {
		s := w.selected
		sel = &s
	}
	return calendar.Cells(w.cursor, sel, w.Today())
}

// SetValue replaces the text value from outside (e.g. loading an event for
// editing) and re-derives the selection. It does not emit onChange.
func (w *Widget) SetValue(v string) {
	w.value = v
	w.syncSelection()
}

// Type handles the free-text path: raw is normalized with Mask and echoed to
// onChange whether or not it is complete. Works in both states.
func (w *Widget) Type(raw string) string {
	w.value = Mask(raw)
	w.syncSelection()
	w.emit()
	return w.value
}

// Toggle opens a closed popup or closes an open one.
func (w *Widget) Toggle() {
	if w.state == Open {
		w.close(CloseToggle)
		return
	}
	w.open()
}

// Close closes the popup if it is open.
func (w *Widget) Close() {
	if w.state == Open {
		w.close(CloseExplicit)
	}
}

// Dismiss closes the popup in response to an interaction outside its bounds.
func (w *Widget) Dismiss() {
	if w.state == Open {
		w.close(CloseDismiss)
	}
}

// PrevMonth moves the cursor back one month. The selection is unchanged.
func (w *Widget) PrevMonth() {
	w.cursor = w.cursor.Prev()
	w.clampFocus()
}

// NextMonth moves the cursor forward one month. The selection is unchanged.
func (w *Widget) NextMonth() {
	w.cursor = w.cursor.Next()
	w.clampFocus()
}

// MoveFocus moves the keyboard focus by days, following it into adjacent months.
func (w *Widget) MoveFocus(days int) {
	if w.state != Open {
		return
	}
	w.focus = w.focus.AddDays(days)
	w.cursor = calendar.MonthOf(w.focus)
}

// PickFocused picks the day under the keyboard focus.
func (w *Widget) PickFocused() bool {
	return w.Pick(w.focus)
}

// Pick selects d while the popup is open. Past days are ignored: the popup
// stays open and onChange is not called. Reports whether d was accepted.
func (w *Widget) Pick(d dateutil.Date) bool {
	if w.state != Open || d.IsZero() {
		return false
	}
	if d.Before(w.Today()) {
		return false
	}
	w.selected = d
	w.hasSel = true
	w.value = dateutil.Format(d)
	w.emit()
	w.close(ClosePick)
	return true
}

func (w *Widget) open() {
	w.state = Open
	today := w.Today()
	if w.hasSel {
		w.cursor = calendar.MonthOf(w.selected)
		w.focus = w.selected
	} else {
		w.cursor = calendar.CurrentMonth(w.now())
		w.focus = today
	}
	if w.observer != nil {
		w.cancel = w.observer.Observe(w, w.Dismiss)
	}
}

func (w *Widget) close(reason CloseReason) {
	w.state = Closed
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
	if w.onClose != nil {
		w.onClose(reason)
	}
}

func (w *Widget) emit() {
	if w.onChange != nil {
		w.onChange(w.value)
	}
}

func (w *Widget) syncSelection() {
	d, err := dateutil.ParseStrict(w.value)
	if err != nil {
		if w.value == "" {
			w.hasSel = false
			w.selected = dateutil.Date{}
		}
		return
	}
	w.selected = d
	w.hasSel = true
}

func (w *Widget) clampFocus() {
	day := min(w.focus.Day(), w.cursor.Days())
	if day < 1 {
		day = 1
	}
	d, err := dateutil.NewDate(w.cursor.Year, w.cursor.Month, day)
	if err == nil {
		w.focus = d
	}
}
