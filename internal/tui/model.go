// Package tui provides the terminal user interface for agenda.
package tui

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/agenda/internal/config"
	"github.com/javiermolinar/agenda/internal/datepicker"
	"github.com/javiermolinar/agenda/internal/event"
	"github.com/javiermolinar/agenda/internal/tui/commands"
	"github.com/javiermolinar/agenda/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModePrompt
	ModeModal
)

// ModalType identifies the type of modal.
type ModalType int

const (
	ModalNone       ModalType = iota
	ModalEventForm            // Add or edit an event
	ModalEditPicker           // Choose the event to edit
	ModalConfirmDelete
	ModalInit
)

// modalWidth is the outer width of every modal, padding included.
const modalWidth = 72

// Model is the main TUI model.
type Model struct {
	// Dependencies
	store  event.Store
	config *config.Config

	// Theme and styles
	theme          *theme.Theme
	styles         *Styles
	themeMode      theme.Mode
	themePersisted bool
	detectTheme    func() theme.Mode

	// State
	events       []*event.Event
	cursor       int
	scrollOffset int
	sortByDate   bool
	mode         Mode
	loading      bool

	// Modal state
	modalType    ModalType
	form         *eventForm
	pickCursor   int
	pickOffset   int
	deleteTarget *event.Event
	deleteReturn ModalType // modal to restore when a delete is declined
	setup        SetupState
	initError    string

	// Dismiss-on-outside routing for the date picker
	hub *datepicker.Hub

	// Components
	prompt textinput.Model

	// Terminal dimensions and layout
	width  int
	height int
	layout screenLayout

	// Messages
	statusMsg  string    // Temporary status/error message
	statusTime time.Time // When to clear message

	// Error state
	err error

	now       func() time.Time
	clipboard func(string) error
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithSetupState sets which first-run files are missing.
func WithSetupState(state SetupState) ModelOption {
	return func(m *Model) {
		m.setup = state
		if state.Needed() {
			m.mode = ModeModal
			m.modalType = ModalInit
		}
	}
}

// WithClock overrides the time source used for "today".
func WithClock(now func() time.Time) ModelOption {
	return func(m *Model) { m.now = now }
}

// WithThemeDetector overrides terminal background detection.
func WithThemeDetector(detect func() theme.Mode) ModelOption {
	return func(m *Model) { m.detectTheme = detect }
}

// WithClipboard overrides the clipboard writer.
func WithClipboard(write func(string) error) ModelOption {
	return func(m *Model) { m.clipboard = write }
}

// New creates a new TUI model.
func New(store event.Store, cfg *config.Config, opts ...ModelOption) *Model {
	ti := textinput.New()
	ti.Placeholder = "/add Dentist @ tomorrow"
	ti.CharLimit = 256

	m := &Model{
		store:       store,
		config:      cfg,
		mode:        ModeNormal,
		prompt:      ti,
		hub:         datepicker.NewHub(),
		loading:     store != nil,
		detectTheme: theme.Detect,
		now:         time.Now,
		clipboard:   clipboard.WriteAll,
	}

	for _, opt := range opts {
		opt(m)
	}

	mode := theme.Resolve("", false, cfg.UI.Theme, m.detectTheme)
	m.applyTheme(mode)
	m.form = newEventForm(m.hub, m.now)
	m.form.applyStyles(m.styles)

	return m
}

// applyTheme loads the palette configured for mode and rebuilds all styles.
func (m *Model) applyTheme(mode theme.Mode) {
	t, err := theme.ForMode(mode, m.config.UI.LightPalette, m.config.UI.DarkPalette)
	if err != nil {
		// Fallback to the built-in palette for the mode
		t, _ = theme.ForMode(mode, theme.DefaultLight, theme.DefaultDark)
	}
	m.theme = t
	m.themeMode = mode
	m.styles = NewStyles(t)
	if m.form != nil {
		m.form.applyStyles(m.styles)
	}
	m.layout = m.buildLayout(m.width, m.height)
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	if m.setup.Needed() || m.store == nil {
		return nil
	}
	return m.loadCmd()
}

func (m Model) loadCmd() tea.Cmd {
	return tea.Batch(
		commands.LoadEvents(m.store),
		commands.LoadThemePreference(m.store),
	)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(store event.Store, cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	initialStore := store
	var setup SetupState

	if store == nil {
		state, err := CheckSetup(cfg)
		if err != nil {
			return err
		}
		setup = state
		if !state.Needed() {
			store, err = openStore(state.DBPath)
			if err != nil {
				return err
			}
		}
	}

	model := New(store, cfg, WithSetupState(setup))
	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(*model, programOpts...)
	finalModel, err := p.Run()
	if initialStore == nil {
		if m, ok := finalModel.(Model); ok && m.store != nil {
			_ = m.store.Close()
		}
	}
	return err
}
