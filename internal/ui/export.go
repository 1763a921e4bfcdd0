package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize/english"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/agenda/internal/event"
	"github.com/javiermolinar/agenda/internal/ical"
)

// Export formats.
const (
	formatICS  = "ics"
	formatJSON = "json"
	formatYAML = "yaml"
)

func (a *App) exportCmd() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all events",
		Long: `Export all events, sorted by date.

Formats:
  ics  - iCalendar with one all-day VEVENT per event
  json - an array of event records
  yaml - a list of event records

Without --output the export is written to stdout.`,
		Example: `  agenda export --format=ics -o agenda.ics
  agenda export --format=yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			write, err := exportWriter(format, a.now)
			if err != nil {
				return err
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}

			events, err := a.store.ListEvents(context.Background())
			if err != nil {
				return fmt.Errorf("listing events: %w", err)
			}
			event.SortByDate(events)

			if output == "" || output == "-" {
				return write(cmd.OutOrStdout(), events)
			}

			path, err := resolvePath(output)
			if err != nil {
				return err
			}
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("creating %s: %w", path, err)
			}
			if err := write(f, events); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("closing %s: %w", path, err)
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "Exported %s to %s\n", english.Plural(len(events), "event", ""), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatICS, "Export format: ics, json or yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")

	return cmd
}

// exportWriter returns the writer for format.
func exportWriter(format string, now func() time.Time) (func(io.Writer, []*event.Event) error, error) {
	switch format {
	case formatICS:
		return func(w io.Writer, events []*event.Event) error {
			return ical.Export(w, events, now())
		}, nil
	case formatJSON:
		return event.WriteJSON, nil
	case formatYAML:
		return event.WriteYAML, nil
	default:
		return nil, fmt.Errorf("unknown format %q: must be ics, json or yaml", format)
	}
}
