package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/agenda/internal/event"
)

func (a *App) deleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete [event-id]",
		Aliases: []string{"rm"},
		Short:   "Delete an event",
		Long: `Delete an event by its ID.

When run from a terminal, asks for confirmation unless --yes is given.`,
		Example: `  agenda delete 42
  agenda delete 42 --yes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid event ID: %w", err)
			}

			ctx := context.Background()
			e, err := a.store.GetEvent(ctx, id)
			if err != nil {
				if errors.Is(err, event.ErrNotFound) {
					return fmt.Errorf("event #%d not found", id)
				}
				return fmt.Errorf("fetching event: %w", err)
			}

			if !yes && isTerminal() {
				question := fmt.Sprintf("Delete %s %q on %s?", paint(toneWarn, fmt.Sprintf("#%d", e.ID)), e.Title, e.Date)
				if !promptYesNo(question) {
					fmt.Fprintln(cmd.OutOrStdout(), "Kept.")
					return nil
				}
			}

			if err := a.store.DeleteEvent(ctx, id); err != nil {
				return fmt.Errorf("deleting event: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted event #%d: %s\n", id, e.Title)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}
