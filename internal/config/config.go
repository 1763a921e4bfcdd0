// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/agenda/internal/tui/theme"
)

// Theme settings.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Config holds the application configuration.
type Config struct {
	Storage StorageConfig `toml:"storage"`
	UI      UIConfig      `toml:"ui"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme        string `toml:"theme"`         // "auto", "light", "dark"
	LightPalette string `toml:"light_palette"` // e.g. "latte"
	DarkPalette  string `toml:"dark_palette"`  // e.g. "mocha"
	Mouse        bool   `toml:"mouse"`
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme:        ThemeAuto,
			LightPalette: theme.DefaultLight,
			DarkPalette:  theme.DefaultDark,
			Mouse:        true,
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "agenda.db"
	}
	return filepath.Join(home, ".local", "share", "agenda", "agenda.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "agenda", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)
	cfg.UI.Theme = strings.ToLower(strings.TrimSpace(cfg.UI.Theme))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("AGENDA_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}

	if v := os.Getenv("AGENDA_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("AGENDA_UI_LIGHT_PALETTE"); v != "" {
		cfg.UI.LightPalette = v
	}
	if v := os.Getenv("AGENDA_UI_DARK_PALETTE"); v != "" {
		cfg.UI.DarkPalette = v
	}
	if v := os.Getenv("AGENDA_UI_MOUSE"); v != "" {
		mouse, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("AGENDA_UI_MOUSE: %w", err)
		}
		cfg.UI.Mouse = mouse
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	switch c.UI.Theme {
	case ThemeAuto, ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("theme must be auto, light or dark, got %q", c.UI.Theme)
	}
	if err := validatePalette(c.UI.LightPalette, "light_palette", theme.ModeLight); err != nil {
		return err
	}
	if err := validatePalette(c.UI.DarkPalette, "dark_palette", theme.ModeDark); err != nil {
		return err
	}
	return nil
}

// validatePalette checks that a palette exists and has the expected mode.
func validatePalette(name, field string, mode theme.Mode) error {
	if !theme.IsAvailable(name) {
		return fmt.Errorf("%s: unknown palette %q (available: %s)",
			field, name, strings.Join(theme.Available(), ", "))
	}
	t, err := theme.Load(name)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	if t.Mode != mode {
		return fmt.Errorf("%s: palette %q is a %s palette", field, name, t.Mode)
	}
	return nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
