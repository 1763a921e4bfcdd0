package ui

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/agenda/internal/calendar"
	"github.com/javiermolinar/agenda/internal/dateutil"
	"github.com/javiermolinar/agenda/internal/event"
)

func (a *App) monthCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "month [MM.YYYY]",
		Short: "Show a month calendar with its events",
		Long: `Display a Monday-first month grid followed by the month's events.

Days with events are bold, today is green. Defaults to the current month.`,
		Example: `  agenda month
  agenda month 12.2026`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				DisableColor()
			}

			today := a.today()
			month := calendar.MonthOf(today)
			if len(args) == 1 {
				m, err := parseMonth(args[0])
				if err != nil {
					return err
				}
				month = m
			}

			if err := a.ensureRepo(); err != nil {
				return err
			}

			first, _ := dateutil.NewDate(month.Year, month.Month, 1)
			last := first.AddDays(month.Days() - 1)
			events, err := a.store.ListEventsByDateRange(context.Background(), first, last)
			if err != nil {
				return fmt.Errorf("listing events: %w", err)
			}

			out := cmd.OutOrStdout()
			printMonthGrid(out, month, events, today)

			fmt.Fprintln(out)
			if len(events) == 0 {
				fmt.Fprintln(out, "No events this month.")
				return nil
			}
			for _, e := range events {
				PrintEventRow(out, e, today, PrintOpts{}.CalcMaxTitleWidth(40))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

// parseMonth parses "MM.YYYY".
func parseMonth(s string) (calendar.Month, error) {
	mm, yyyy, ok := strings.Cut(strings.TrimSpace(s), ".")
	if !ok {
		return calendar.Month{}, fmt.Errorf("invalid month %q: want MM.YYYY", s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 1 || m > 12 {
		return calendar.Month{}, fmt.Errorf("invalid month %q: want MM.YYYY", s)
	}
	y, err := strconv.Atoi(yyyy)
	if err != nil || len(yyyy) != 4 {
		return calendar.Month{}, fmt.Errorf("invalid month %q: want MM.YYYY", s)
	}
	return calendar.Month{Year: y, Month: time.Month(m)}, nil
}

// printMonthGrid prints the month as a 7-column grid, 3 cells per day.
func printMonthGrid(w io.Writer, month calendar.Month, events []*event.Event, today dateutil.Date) {
	busy := make(map[int]bool, len(events))
	for _, e := range events {
		if d, err := e.Day(); err == nil {
			busy[d.Day()] = true
		}
	}

	width := calendar.DaysPerWeek*3 - 1
	label := month.Label()
	pad := max(0, (width-len(label))/2)
	fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", pad), paint(toneHeader, label))
	fmt.Fprintln(w, paint(toneMuted, strings.Join(calendar.WeekdayHeaders[:], " ")))

	for _, week := range calendar.Weeks(calendar.Cells(month, nil, today)) {
		cells := make([]string, 0, calendar.DaysPerWeek)
		for _, cell := range week {
			if !cell.IsDay() {
				cells = append(cells, "  ")
				continue
			}
			day := fmt.Sprintf("%2d", cell.Date.Day())
			switch {
			case cell.Today:
				day = paint(toneToday, day)
			case busy[cell.Date.Day()]:
				day = paint(toneHeader, day)
			case cell.Past:
				day = paint(tonePast, day)
			}
			cells = append(cells, day)
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, " "), " "))
	}
}
