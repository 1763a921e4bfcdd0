package tui

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/javiermolinar/agenda/internal/config"
	"github.com/javiermolinar/agenda/internal/db"
	"github.com/javiermolinar/agenda/internal/event"
)

// SetupState records which files a first run still has to create.
type SetupState struct {
	ConfigPath    string
	DBPath        string
	ConfigMissing bool
	DBMissing     bool
}

// Needed reports whether the setup modal must run before events load.
func (s SetupState) Needed() bool {
	return s.ConfigMissing || s.DBMissing
}

// CheckSetup looks for the config file and the database named by cfg.
func CheckSetup(cfg *config.Config) (SetupState, error) {
	s := SetupState{
		ConfigPath: config.DefaultConfigPath(),
		DBPath:     cfg.Storage.DBPath,
	}
	var err error
	if s.ConfigMissing, err = missing(s.ConfigPath); err != nil {
		return SetupState{}, fmt.Errorf("checking config path: %w", err)
	}
	if s.DBMissing, err = missing(s.DBPath); err != nil {
		return SetupState{}, fmt.Errorf("checking db path: %w", err)
	}
	return s, nil
}

func missing(path string) (bool, error) {
	if path == "" {
		return true, nil
	}
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, fs.ErrNotExist):
		return true, nil
	default:
		return false, err
	}
}

// openStore opens the database at path, creating it and its directory.
func openStore(path string) (event.Store, error) {
	if path == "" {
		return nil, errors.New("db path is empty")
	}
	store, err := db.New(path)
	if err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}
	return store, nil
}

// runSetup writes the default config and opens the store. On success the
// setup state is cleared.
func (m Model) runSetup() (Model, error) {
	if m.setup.ConfigMissing {
		if err := m.config.SaveTo(m.setup.ConfigPath); err != nil {
			return m, fmt.Errorf("saving config: %w", err)
		}
		m.setup.ConfigMissing = false
	}
	if m.store == nil {
		store, err := openStore(m.setup.DBPath)
		if err != nil {
			return m, err
		}
		m.store = store
	}
	m.setup.DBMissing = false
	return m, nil
}
