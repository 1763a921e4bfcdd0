package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/agenda/internal/event"
	"github.com/javiermolinar/agenda/internal/ical"
	"github.com/javiermolinar/agenda/internal/tui/view"
)

func (a *App) showCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "show [event-id]",
		Short: "Show today's events, or one event in detail",
		Long: `Without an argument, display the events dated today.
With an event ID, display that event in detail.`,
		Example: `  agenda show
  agenda show 12`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				DisableColor()
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}

			ctx := context.Background()
			out := cmd.OutOrStdout()
			today := a.today()

			if len(args) == 1 {
				id, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid event ID: %w", err)
				}
				e, err := a.store.GetEvent(ctx, id)
				if err != nil {
					if errors.Is(err, event.ErrNotFound) {
						return fmt.Errorf("event #%d not found", id)
					}
					return fmt.Errorf("fetching event: %w", err)
				}
				printEventDetail(out, e)
				return nil
			}

			events, err := a.store.ListEventsByDateRange(ctx, today, today)
			if err != nil {
				return fmt.Errorf("fetching events: %w", err)
			}

			if len(events) == 0 {
				fmt.Fprintln(out, "No events today.")
				return nil
			}

			fmt.Fprintf(out, "=== %s ===\n\n", paint(toneHeader, view.FormatDateLabel(today)))
			for _, e := range events {
				PrintEventRow(out, e, today, PrintOpts{Verbose: true}.CalcMaxTitleWidth(50))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

func printEventDetail(out io.Writer, e *event.Event) {
	fmt.Fprintf(out, "%s %s\n", paint(toneHeader, fmt.Sprintf("#%d", e.ID)), e.Title)
	if d, err := e.Day(); err == nil {
		fmt.Fprintf(out, "  Date:    %s\n", view.FormatDateLabel(d))
	} else {
		fmt.Fprintf(out, "  Date:    %s\n", e.Date)
	}
	fmt.Fprintf(out, "  Created: %s\n", paint(toneMuted, e.CreatedAt.Format("02.01.2006 15:04")))
	fmt.Fprintf(out, "  Updated: %s\n", paint(toneMuted, e.UpdatedAt.Format("02.01.2006 15:04")))
	fmt.Fprintf(out, "  UID:     %s\n", paint(toneMuted, ical.UID(e.ID)))
}
