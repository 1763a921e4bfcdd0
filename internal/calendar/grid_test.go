package calendar

import (
	"testing"
	"time"

	"github.com/javiermolinar/agenda/internal/dateutil"
)

func date(t *testing.T, year int, month time.Month, day int) dateutil.Date {
	t.Helper()
	d, err := dateutil.NewDate(year, month, day)
	if err != nil {
		t.Fatalf("NewDate: %v", err)
	}
	return d
}

func countKinds(cells []Cell) (empty, days int) {
	for _, c := range cells {
		if c.IsDay() {
			days++
		} else {
			empty++
		}
	}
	return empty, days
}

func TestRender_March2024(t *testing.T) {
	today := date(t, 2024, time.January, 1)
	cells := Cells(Month{Year: 2024, Month: time.March}, nil, today)

	empty, days := countKinds(cells)
	if empty != 4 {
		t.Errorf("leading empty cells = %d, want 4 (March 1, 2024 is a Friday)", empty)
	}
	if days != 31 {
		t.Errorf("day cells = %d, want 31", days)
	}
	for i := 0; i < 4; i++ {
		if cells[i].IsDay() {
			t.Fatalf("cell %d should be padding", i)
		}
	}
	if got := cells[4].Date; got != date(t, 2024, time.March, 1) {
		t.Errorf("first day cell = %v, want 01.03.2024", got)
	}
}

func TestRender_DayCounts(t *testing.T) {
	today := date(t, 2024, time.January, 1)
	tests := []struct {
		name      string
		month     Month
		wantEmpty int
		wantDays  int
	}{
		{"february leap year", Month{Year: 2024, Month: time.February}, 3, 29},
		{"february common year", Month{Year: 2025, Month: time.February}, 5, 28},
		{"month starting monday", Month{Year: 2026, Month: time.June}, 0, 30},
		{"month starting sunday", Month{Year: 2026, Month: time.March}, 6, 31},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			empty, days := countKinds(Cells(tt.month, nil, today))
			if empty != tt.wantEmpty {
				t.Errorf("empty = %d, want %d", empty, tt.wantEmpty)
			}
			if days != tt.wantDays {
				t.Errorf("days = %d, want %d", days, tt.wantDays)
			}
			if empty+days > 42 {
				t.Errorf("grid has %d cells, want at most 42", empty+days)
			}
		})
	}
}

func TestRender_Flags(t *testing.T) {
	today := date(t, 2026, time.October, 18)
	selected := date(t, 2026, time.October, 20)

	cells := Cells(Month{Year: 2026, Month: time.October}, &selected, today)

	var sawToday, sawSelected bool
	for _, c := range cells {
		if !c.IsDay() {
			if c.Selected || c.Today || c.Past {
				t.Fatalf("padding cell has flags set: %+v", c)
			}
			continue
		}
		day := c.Date.Day()
		if c.Past != (day < 18) {
			t.Errorf("day %d: Past = %v", day, c.Past)
		}
		if c.Today {
			sawToday = true
			if day != 18 {
				t.Errorf("day %d flagged as today", day)
			}
		}
		if c.Selected {
			sawSelected = true
			if day != 20 {
				t.Errorf("day %d flagged as selected", day)
			}
		}
	}
	if !sawToday || !sawSelected {
		t.Errorf("today=%v selected=%v, want both", sawToday, sawSelected)
	}
}

func TestRender_SelectedInOtherMonth(t *testing.T) {
	today := date(t, 2026, time.October, 18)
	selected := date(t, 2026, time.November, 20)

	for c := range Render(Month{Year: 2026, Month: time.October}, &selected, today) {
		if c.Selected {
			t.Fatalf("unexpected selected cell %v", c.Date)
		}
	}
}

func TestRender_PastMonthAllPast(t *testing.T) {
	today := date(t, 2026, time.October, 18)
	for c := range Render(Month{Year: 2026, Month: time.September}, nil, today) {
		if c.IsDay() && !c.Past {
			t.Fatalf("%v should be past", c.Date)
		}
	}
}

func TestRender_Restartable(t *testing.T) {
	today := date(t, 2026, time.October, 18)
	seq := Render(Month{Year: 2026, Month: time.October}, nil, today)

	first, second := 0, 0
	for range seq {
		first++
	}
	for range seq {
		second++
	}
	if first != second || first == 0 {
		t.Errorf("first pass = %d, second pass = %d", first, second)
	}
}

func TestRender_EarlyStop(t *testing.T) {
	today := date(t, 2026, time.October, 18)
	n := 0
	for range Render(Month{Year: 2026, Month: time.October}, nil, today) {
		n++
		if n == 5 {
			break
		}
	}
	if n != 5 {
		t.Errorf("n = %d, want 5", n)
	}
}

func TestWeeks(t *testing.T) {
	today := date(t, 2024, time.January, 1)
	rows := Weeks(Cells(Month{Year: 2024, Month: time.March}, nil, today))

	if len(rows) != 5 {
		t.Fatalf("rows = %d, want 5", len(rows))
	}
	for i, row := range rows[:len(rows)-1] {
		if len(row) != DaysPerWeek {
			t.Errorf("row %d has %d cells", i, len(row))
		}
	}
	if last := rows[len(rows)-1]; len(last) != 35%DaysPerWeek && len(last) != DaysPerWeek {
		t.Errorf("last row has %d cells", len(last))
	}
}
