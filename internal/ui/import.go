package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize/english"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/agenda/internal/dateutil"
	"github.com/javiermolinar/agenda/internal/event"
	"github.com/javiermolinar/agenda/internal/ical"
)

func (a *App) importCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import [calendar.ics]",
		Short: "Import events from an iCalendar file",
		Long: `Import the VEVENTs of an iCalendar file as events dated on their
start day.

Events without a title, or dated in a year before the current one, are
skipped and reported.`,
		Example: `  agenda import ~/Downloads/holidays.ics
  agenda import work.ics --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			sourcePath, err := resolvePath(args[0])
			if err != nil {
				return err
			}

			info, err := os.Stat(sourcePath)
			if err != nil {
				if os.IsNotExist(err) {
					return fmt.Errorf("calendar file does not exist: %s", sourcePath)
				}
				return fmt.Errorf("checking calendar file: %w", err)
			}
			if info.IsDir() {
				return fmt.Errorf("calendar path is a directory: %s", sourcePath)
			}

			res, err := readCalendar(sourcePath, a.today())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, s := range res.Skipped {
				fmt.Fprintf(out, "%s %q: %v\n", paint(toneWarn, "skipped"), s.Title, s.Reason)
			}

			if dryRun {
				for _, e := range res.Events {
					fmt.Fprintf(out, "  %s  %s\n", e.Date, e.Title)
				}
				fmt.Fprintf(out, "Would import %s from %s\n", english.Plural(len(res.Events), "event", ""), sourcePath)
				return nil
			}

			count, err := importEvents(context.Background(), a.store, res.Events)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Imported %s from %s\n", english.Plural(count, "event", ""), sourcePath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "List what would be imported without storing it")
	return cmd
}

func readCalendar(path string, today dateutil.Date) (*ical.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening calendar: %w", err)
	}
	defer func() { _ = f.Close() }()

	res, err := ical.Import(f, today)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return res, nil
}

// importEvents stores events in one transaction.
func importEvents(ctx context.Context, dest event.Repository, events []*event.Event) (int, error) {
	if len(events) == 0 {
		return 0, nil
	}
	if err := dest.CreateEvents(ctx, events); err != nil {
		return 0, fmt.Errorf("importing events: %w", err)
	}
	return len(events), nil
}

func resolvePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("empty path")
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	return absPath, nil
}
