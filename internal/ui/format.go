package ui

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize/english"
	"github.com/mattn/go-runewidth"

	"github.com/javiermolinar/agenda/internal/calendar"
	"github.com/javiermolinar/agenda/internal/dateutil"
	"github.com/javiermolinar/agenda/internal/event"
	"github.com/javiermolinar/agenda/internal/tui/view"
)

// Stats holds aggregated counts for a set of events.
type Stats struct {
	Total    int
	Today    int
	Upcoming int // after today
	Past     int
	Next     *event.Event // soonest event from today on
}

// AccumulateStats updates stats with one event.
func AccumulateStats(stats *Stats, e *event.Event, today dateutil.Date) {
	stats.Total++
	d, err := e.Day()
	if err != nil {
		return
	}
	switch c := d.Compare(today); {
	case c < 0:
		stats.Past++
		return
	case c == 0:
		stats.Today++
	default:
		stats.Upcoming++
	}
	if stats.Next == nil {
		stats.Next = e
		return
	}
	if nd, err := stats.Next.Day(); err == nil && d.Before(nd) {
		stats.Next = e
	}
}

// PrintStats prints the stats summary line.
func PrintStats(w io.Writer, stats Stats, today dateutil.Date) {
	fmt.Fprintf(w, "%s | %s | %s | %s\n",
		english.Plural(stats.Total, "event", ""),
		paint(toneToday, fmt.Sprintf("Today: %d", stats.Today)),
		paint(toneUpcoming, fmt.Sprintf("Upcoming: %d", stats.Upcoming)),
		paint(tonePast, fmt.Sprintf("Past: %d", stats.Past)))

	if stats.Next != nil {
		if d, err := stats.Next.Day(); err == nil {
			fmt.Fprintf(w, "Next: %s %s\n", stats.Next.Title, paint(toneStats, "("+view.FormatRelative(d, today)+")"))
		}
	}
}

// PrintOpts configures event printing behavior.
type PrintOpts struct {
	Verbose       bool // Show full titles
	MaxTitleWidth int  // Maximum title width (0 = auto)
}

// CalcMaxTitleWidth calculates the maximum title width based on options.
func (o PrintOpts) CalcMaxTitleWidth(defaultWidth int) int {
	if o.MaxTitleWidth > 0 {
		return o.MaxTitleWidth
	}
	if !o.Verbose {
		return defaultWidth
	}
	// "  ○ #12    Tue 20.10.2026  in 12 days    " = ~42 chars
	available := termWidth() - 42
	if available > defaultWidth {
		return available
	}
	return defaultWidth
}

// PrintEventRow prints a single event row with consistent formatting.
func PrintEventRow(w io.Writer, e *event.Event, today dateutil.Date, maxTitleWidth int) {
	symbol := statusSymbol(e, today)
	title := truncateTitle(e.Title, maxTitleWidth)

	d, err := e.Day()
	if err != nil {
		fmt.Fprintf(w, "  %s #%-4d %s  %s\n", symbol, e.ID, e.Date, title)
		return
	}

	when := fmt.Sprintf("%-12s", view.FormatRelative(d, today))
	switch c := d.Compare(today); {
	case c == 0:
		when = paint(toneToday, when)
	case c < 0:
		when = paint(tonePast, when)
		title = paint(tonePast, title)
	default:
		when = paint(toneUpcoming, when)
	}
	fmt.Fprintf(w, "  %s #%-4d %s  %s  %s\n", symbol, e.ID, view.FormatDateLabel(d), when, title)
}

// printEventList prints events under one header per month.
func printEventList(w io.Writer, events []*event.Event, today dateutil.Date, maxTitleWidth int) {
	var current string
	for _, e := range events {
		label := "Undated"
		if d, err := e.Day(); err == nil {
			label = calendar.MonthOf(d).Label()
		}
		if label != current {
			if current != "" {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "=== %s ===\n", paint(toneHeader, label))
			current = label
		}
		PrintEventRow(w, e, today, maxTitleWidth)
	}
}

// statusSymbol returns the marker for an event relative to today.
func statusSymbol(e *event.Event, today dateutil.Date) string {
	d, err := e.Day()
	if err != nil {
		return "?"
	}
	switch d.Compare(today) {
	case 0:
		return "●"
	case 1:
		return "○"
	default:
		return "·"
	}
}

// truncateTitle shortens s to width terminal cells.
func truncateTitle(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "...")
}
