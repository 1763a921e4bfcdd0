package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/agenda/internal/config"
	"github.com/javiermolinar/agenda/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  agenda config`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInteractive(cmd.OutOrStdout())
		},
	}
}

func runConfigInteractive(out io.Writer) error {
	configPath := config.DefaultConfigPath()
	fmt.Fprintf(out, "Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Check if file exists
	_, fileErr := os.Stat(configPath)
	isNew := os.IsNotExist(fileErr)

	if isNew {
		fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n\n", configPath)
	}

	printConfig(out, cfg)

	if !isTerminal() || !promptYesNo("\nWould you like to edit the configuration?") {
		return nil
	}

	reader := bufio.NewReader(os.Stdin)

	cfg.Storage.DBPath = promptValue(reader, "Database path", cfg.Storage.DBPath)
	cfg.UI.Theme = promptChoice(reader, "Theme", cfg.UI.Theme, config.ThemeAuto, config.ThemeLight, config.ThemeDark)
	cfg.UI.LightPalette = promptPalette(reader, "Light palette", cfg.UI.LightPalette, theme.ModeLight)
	cfg.UI.DarkPalette = promptPalette(reader, "Dark palette", cfg.UI.DarkPalette, theme.ModeDark)
	cfg.UI.Mouse = promptBool(reader, "Mouse support", cfg.UI.Mouse)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out, "──────────────────────")
	fmt.Fprintln(out, "[storage]")
	fmt.Fprintf(out, "  db_path       = %s\n", cfg.Storage.DBPath)
	fmt.Fprintln(out, "\n[ui]")
	fmt.Fprintf(out, "  theme         = %s\n", cfg.UI.Theme)
	fmt.Fprintf(out, "  light_palette = %s\n", cfg.UI.LightPalette)
	fmt.Fprintf(out, "  dark_palette  = %s\n", cfg.UI.DarkPalette)
	fmt.Fprintf(out, "  mouse         = %t\n", cfg.UI.Mouse)
}

func promptYesNo(question string) bool {
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, label, current string) string {
	if current == "" {
		fmt.Printf("  %s: ", label)
	} else {
		fmt.Printf("  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptChoice(reader *bufio.Reader, label, current string, options ...string) string {
	list := strings.Join(options, ", ")
	for {
		value := strings.ToLower(promptValue(reader, fmt.Sprintf("%s (%s)", label, list), current))
		for _, o := range options {
			if value == o {
				return value
			}
		}
		fmt.Printf("  Invalid value %q. Choose one of: %s\n", value, list)
	}
}

func promptPalette(reader *bufio.Reader, label, current string, mode theme.Mode) string {
	var names []string
	for _, name := range theme.Available() {
		if t, err := theme.Load(name); err == nil && t.Mode == mode {
			names = append(names, name)
		}
	}
	return promptChoice(reader, label, current, names...)
}

func promptBool(reader *bufio.Reader, label string, current bool) bool {
	for {
		value := promptValue(reader, label+" (true/false)", strconv.FormatBool(current))
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
		fmt.Printf("  Invalid value %q. Enter true or false\n", value)
	}
}
