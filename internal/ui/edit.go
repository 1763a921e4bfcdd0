package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/agenda/internal/dateutil"
	"github.com/javiermolinar/agenda/internal/event"
)

func (a *App) editCmd() *cobra.Command {
	var (
		title string
		date  string
	)

	cmd := &cobra.Command{
		Use:   "edit <event-id>",
		Short: "Change the title or date of an event",
		Long: `Change the title, the date, or both, of an existing event.

The new values go through the same checks as a new event: the title
must not be empty and the date must not fall in an earlier year.`,
		Example: `  agenda edit 12 --title="Dentist (moved)"
  agenda edit 12 --date=tomorrow`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid event ID: %w", err)
			}

			flags := cmd.Flags()
			if !flags.Changed("title") && !flags.Changed("date") {
				return fmt.Errorf("nothing to change: pass --title and/or --date")
			}

			ctx := context.Background()
			e, err := a.store.GetEvent(ctx, id)
			if err != nil {
				if errors.Is(err, event.ErrNotFound) {
					return fmt.Errorf("event #%d not found", id)
				}
				return fmt.Errorf("fetching event: %w", err)
			}

			today := a.today()
			updated := *e
			if flags.Changed("title") {
				updated.Title = strings.TrimSpace(title)
			}
			if flags.Changed("date") {
				d, err := dateutil.ParseRelative(date, today)
				if err != nil {
					return fmt.Errorf("invalid date: %w", err)
				}
				updated.Date = dateutil.Format(d)
			}
			if err := event.Check(updated.Title, updated.Date, today).Err(); err != nil {
				return err
			}

			if err := a.store.UpdateEvent(ctx, &updated); err != nil {
				return fmt.Errorf("updating event: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated event #%d: %s on %s\n", updated.ID, updated.Title, updated.Date)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&date, "date", "", "New date (DD.MM.YYYY or relative)")

	return cmd
}
