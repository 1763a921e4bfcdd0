package calendar

import (
	"iter"

	"github.com/javiermolinar/agenda/internal/dateutil"
)

// DaysPerWeek is the number of columns in the grid.
const DaysPerWeek = 7

// WeekdayHeaders are the Monday-first column headings.
var WeekdayHeaders = [DaysPerWeek]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// CellKind distinguishes leading padding from numbered days.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellDay
)

// Cell is one position of the month grid.
type Cell struct {
	Kind     CellKind
	Date     dateutil.Date // zero for CellEmpty
	Selected bool
	Today    bool
	Past     bool
}

// IsDay reports whether c is a numbered day.
func (c Cell) IsDay() bool {
	return c.Kind == CellDay
}

// Render returns the cells of cursor: one empty cell per weekday before the
// 1st (Monday-first), then one day cell per day of the month. selected may be nil.
// The sequence is computed lazily and can be ranged over more than once.
func Render(cursor Month, selected *dateutil.Date, today dateutil.Date) iter.Seq[Cell] {
	var sel dateutil.Date
	hasSel := selected != nil
	if hasSel {
		sel = *selected
	}

	return func(yield func(Cell) bool) {
		for range cursor.FirstWeekday() {
			if !yield(Cell{Kind: CellEmpty}) {
				return
			}
		}
		for day := 1; day <= cursor.Days(); day++ {
			d, err := dateutil.NewDate(cursor.Year, cursor.Month, day)
			if err != nil {
				// Unreachable for day <= Days(); years outside 0..9999 have no cells.
				return
			}
			cell := Cell{
				Kind:     CellDay,
				Date:     d,
				Selected: hasSel && d == sel,
				Today:    d == today,
				Past:     d.Before(today),
			}
			if !yield(cell) {
				return
			}
		}
	}
}

// Cells collects Render into a slice.
func Cells(cursor Month, selected *dateutil.Date, today dateutil.Date) []Cell {
	cells := make([]Cell, 0, 6*DaysPerWeek)
	for c := range Render(cursor, selected, today) {
		cells = append(cells, c)
	}
	return cells
}

// Weeks splits cells into rows of DaysPerWeek. The last row may be short.
func Weeks(cells []Cell) [][]Cell {
	rows := make([][]Cell, 0, (len(cells)+DaysPerWeek-1)/DaysPerWeek)
	for start := 0; start < len(cells); start += DaysPerWeek {
		end := min(start+DaysPerWeek, len(cells))
		rows = append(rows, cells[start:end])
	}
	return rows
}
