package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/agenda/internal/dateutil"
	"github.com/javiermolinar/agenda/internal/event"
)

func (a *App) listCmd() *cobra.Command {
	var (
		startDate string
		endDate   string
		asJSON    bool
		asYAML    bool
		verbose   bool
		noColor   bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List events",
		Long: `List events by date, grouped by month.

Without --from and --to, lists every event. With only --from, lists
that day. With both, lists the range (inclusive). --json and --yaml
print machine-readable records instead.`,
		Example: `  agenda list
  agenda list --from=today --to=next-week
  agenda list --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if asJSON && asYAML {
				return fmt.Errorf("--json and --yaml are mutually exclusive")
			}
			if noColor {
				DisableColor()
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}

			today := a.today()
			events, err := a.listEvents(context.Background(), startDate, endDate, today)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case asJSON:
				return event.WriteJSON(out, events)
			case asYAML:
				return event.WriteYAML(out, events)
			}

			if len(events) == 0 {
				fmt.Fprintln(out, "No events.")
				return nil
			}

			opts := PrintOpts{Verbose: verbose}
			printEventList(out, events, today, opts.CalcMaxTitleWidth(40))

			var stats Stats
			for _, e := range events {
				AccumulateStats(&stats, e, today)
			}
			fmt.Fprintln(out)
			PrintStats(out, stats, today)
			return nil
		},
	}

	cmd.Flags().StringVar(&startDate, "from", "", "First date (DD.MM.YYYY or relative)")
	cmd.Flags().StringVar(&endDate, "to", "", "Last date (DD.MM.YYYY or relative, defaults to --from)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print events as JSON")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print events as YAML")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show full titles")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")

	return cmd
}

// listEvents returns events sorted by date, restricted to [from, to] when
// from is set.
func (a *App) listEvents(ctx context.Context, from, to string, today dateutil.Date) ([]*event.Event, error) {
	if from == "" {
		if to != "" {
			return nil, fmt.Errorf("--to requires --from")
		}
		events, err := a.store.ListEvents(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing events: %w", err)
		}
		event.SortByDate(events)
		return events, nil
	}

	start, err := dateutil.ParseRelative(from, today)
	if err != nil {
		return nil, fmt.Errorf("invalid --from: %w", err)
	}
	end := start
	if to != "" {
		if end, err = dateutil.ParseRelative(to, today); err != nil {
			return nil, fmt.Errorf("invalid --to: %w", err)
		}
	}
	if end.Before(start) {
		return nil, fmt.Errorf("--to %s is before --from %s", dateutil.Format(end), dateutil.Format(start))
	}

	events, err := a.store.ListEventsByDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	return events, nil
}
