// Package ui implements the agenda command line.
package ui

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/agenda/internal/config"
	"github.com/javiermolinar/agenda/internal/dateutil"
	"github.com/javiermolinar/agenda/internal/db"
	"github.com/javiermolinar/agenda/internal/event"
	"github.com/javiermolinar/agenda/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	store  event.Store
	config *config.Config
	root   *cobra.Command
	debug  bool // Enable debug logging
	owned  bool // store was opened by the app and must be closed
	now    func() time.Time
}

// NewApp creates a new CLI application. A nil store is opened lazily from
// cfg.Storage.DBPath by the commands that need it; the TUI runs its own
// setup check instead.
func NewApp(store event.Store, cfg *config.Config) *App {
	a := &App{store: store, config: cfg, now: time.Now}

	a.root = &cobra.Command{
		Use:   "agenda",
		Short: "A terminal event manager",
		Long: `Agenda keeps a list of dated events.

Run it without a command to open the interactive view, where events are
added with a date field and calendar popup, edited and deleted.`,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.RunWithDebug(a.store, a.config, a.debug)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (writes agenda-debug.log)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.monthCmd())
	a.root.AddCommand(a.editCmd())
	a.root.AddCommand(a.deleteCmd())
	a.root.AddCommand(a.themeCmd())
	a.root.AddCommand(a.exportCmd())
	a.root.AddCommand(a.importCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "agenda %s (commit: %s)\n", Version, Commit)
		},
	}
}

// ensureRepo opens the configured database if no store was injected.
func (a *App) ensureRepo() error {
	if a.store != nil {
		return nil
	}
	path, err := resolvePath(a.config.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("resolving database path: %w", err)
	}
	store, err := db.New(path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	a.store = store
	a.owned = true
	return nil
}

// today returns the current date from the app clock.
func (a *App) today() dateutil.Date {
	return dateutil.FromTime(a.now())
}

// Command returns the root command.
func (a *App) Command() *cobra.Command {
	return a.root
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases a store opened by the app.
func (a *App) Close() error {
	if a.store == nil || !a.owned {
		return nil
	}
	err := a.store.Close()
	a.store = nil
	a.owned = false
	return err
}
