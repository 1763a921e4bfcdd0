package view

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/agenda/internal/calendar"
	"github.com/javiermolinar/agenda/internal/dateutil"
)

// CalendarCellWidth is the width of one day column in the popup.
const CalendarCellWidth = 4

// calendarNavWidth is the width of the prev/next arrows on the nav row.
const calendarNavWidth = 3

// Calendar popup rows, relative to the inside of the border.
const (
	CalendarNavRow    = 0
	CalendarHeaderRow = 1
	CalendarFirstWeek = 2
)

// CalendarModel contains the fields needed to render the calendar popup.
type CalendarModel struct {
	Label string
	Weeks [][]calendar.Cell
	Focus dateutil.Date
}

// CalendarStyles groups styles for the calendar popup.
type CalendarStyles struct {
	BoxStyle      lipgloss.Style
	NavStyle      lipgloss.Style
	HeaderStyle   lipgloss.Style
	DayStyle      lipgloss.Style
	PastStyle     lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	FocusStyle    lipgloss.Style
	EmptyStyle    lipgloss.Style
}

// CalendarInnerWidth is the width of the popup without its border.
func CalendarInnerWidth() int {
	return calendar.DaysPerWeek * CalendarCellWidth
}

// RenderCalendar renders the month popup: a nav row, weekday headers and
// one row per week.
func RenderCalendar(model CalendarModel, styles CalendarStyles) string {
	inner := CalendarInnerWidth()
	lines := make([]string, 0, len(model.Weeks)+2)

	prev := styles.NavStyle.Render(" ‹ ")
	next := styles.NavStyle.Render(" › ")
	label := styles.NavStyle.
		Width(inner - 2*calendarNavWidth).
		Align(lipgloss.Center).
		Render(ansi.Truncate(model.Label, inner-2*calendarNavWidth, ""))
	lines = append(lines, prev+label+next)

	headers := make([]string, 0, calendar.DaysPerWeek)
	for _, h := range calendar.WeekdayHeaders {
		headers = append(headers, styles.HeaderStyle.Render(h))
	}
	lines = append(lines, strings.Join(headers, ""))

	for _, week := range model.Weeks {
		var row strings.Builder
		for col := 0; col < calendar.DaysPerWeek; col++ {
			if col >= len(week) {
				row.WriteString(styles.EmptyStyle.Render(""))
				continue
			}
			row.WriteString(renderCalendarCell(week[col], model.Focus, styles))
		}
		lines = append(lines, row.String())
	}

	return styles.BoxStyle.Render(strings.Join(lines, "\n"))
}

func renderCalendarCell(cell calendar.Cell, focus dateutil.Date, styles CalendarStyles) string {
	if !cell.IsDay() {
		return styles.EmptyStyle.Render("")
	}

	style := styles.DayStyle
	switch {
	case cell.Selected:
		style = styles.SelectedStyle
	case !focus.IsZero() && cell.Date.Compare(focus) == 0:
		style = styles.FocusStyle
	case cell.Today:
		style = styles.TodayStyle
	case cell.Past:
		style = styles.PastStyle
	}
	return style.Render(strconv.Itoa(cell.Date.Day()))
}

// CalendarHit is what a click inside the popup landed on.
type CalendarHit int

const (
	CalendarHitNone CalendarHit = iota
	CalendarHitPrev
	CalendarHitNext
	CalendarHitDay
)

// HitCalendar maps a point relative to the popup's top-left corner (border
// included) to a control or a day. The returned cell is only meaningful for
// CalendarHitDay.
func HitCalendar(weeks [][]calendar.Cell, x, y int) (CalendarHit, calendar.Cell) {
	// Step inside the border.
	x--
	y--
	inner := CalendarInnerWidth()
	if x < 0 || x >= inner || y < 0 {
		return CalendarHitNone, calendar.Cell{}
	}

	switch {
	case y == CalendarNavRow && x < calendarNavWidth:
		return CalendarHitPrev, calendar.Cell{}
	case y == CalendarNavRow && x >= inner-calendarNavWidth:
		return CalendarHitNext, calendar.Cell{}
	case y < CalendarFirstWeek:
		return CalendarHitNone, calendar.Cell{}
	}

	week := y - CalendarFirstWeek
	col := x / CalendarCellWidth
	if week >= len(weeks) || col >= len(weeks[week]) {
		return CalendarHitNone, calendar.Cell{}
	}
	cell := weeks[week][col]
	if !cell.IsDay() {
		return CalendarHitNone, calendar.Cell{}
	}
	return CalendarHitDay, cell
}
