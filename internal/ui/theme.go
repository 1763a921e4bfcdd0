package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/agenda/internal/event"
	"github.com/javiermolinar/agenda/internal/tui/theme"
)

func (a *App) themeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "theme [light|dark|toggle|auto]",
		Short: "Show or change the stored theme",
		Long: `Show or change the theme preference stored with the events.

Without an argument, prints the theme in effect and where it comes from.

Themes:
  light  - always use the light palette
  dark   - always use the dark palette
  toggle - switch to the other theme
  auto   - forget the stored choice and follow the config and terminal`,
		Example: `  agenda theme
  agenda theme toggle`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"light", "dark", "toggle", "auto"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			ctx := context.Background()
			out := cmd.OutOrStdout()
			stored, persisted, err := a.store.Preference(ctx, event.PreferenceTheme)
			if err != nil {
				return fmt.Errorf("reading theme preference: %w", err)
			}
			current := theme.Resolve(stored, persisted, a.config.UI.Theme, theme.Detect)

			if len(args) == 0 {
				source := "detected"
				switch {
				case persisted:
					source = "stored"
				case a.config.UI.Theme != "" && a.config.UI.Theme != "auto":
					source = "config"
				}
				fmt.Fprintf(out, "Theme: %s %s\n", current, paint(toneMuted, "("+source+")"))
				return nil
			}

			var mode theme.Mode
			switch args[0] {
			case "auto":
				if err := a.store.ClearPreference(ctx, event.PreferenceTheme); err != nil {
					return fmt.Errorf("clearing theme preference: %w", err)
				}
				fmt.Fprintln(out, "Theme follows the config and terminal again")
				return nil
			case "toggle":
				mode = current.Toggle()
			default:
				if mode, err = theme.ParseMode(args[0]); err != nil {
					return err
				}
			}

			if err := a.store.SetPreference(ctx, event.PreferenceTheme, string(mode)); err != nil {
				return fmt.Errorf("saving theme preference: %w", err)
			}
			fmt.Fprintf(out, "Theme: %s\n", mode)
			return nil
		},
	}
}
