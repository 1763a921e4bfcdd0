package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/agenda/internal/dateutil"
	"github.com/javiermolinar/agenda/internal/event"
	"github.com/javiermolinar/agenda/internal/tui/view"
)

func (a *App) addCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a new event",
		Long: `Add a new event.

The date accepts DD.MM.YYYY, YYYY-MM-DD, today, tomorrow, next-week,
a weekday name (monday) or next-<weekday>. Dates in years before the
current one are rejected.`,
		Example: `  agenda add "Dentist" --date=20.10.2026
  agenda add "Team lunch" --date=friday`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			today := a.today()
			d, err := dateutil.ParseRelative(date, today)
			if err != nil {
				return fmt.Errorf("invalid date: %w", err)
			}

			e, err := event.New(args[0], dateutil.Format(d), today)
			if err != nil {
				return err
			}

			if err := a.store.CreateEvent(context.Background(), e); err != nil {
				return fmt.Errorf("creating event: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created event #%d: %s on %s\n",
				e.ID,
				e.Title,
				view.FormatDateLabel(d),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "today", "Event date (DD.MM.YYYY or relative)")

	return cmd
}
