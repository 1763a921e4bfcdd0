package tui

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

// DebugLogPath is where --debug writes its JSON lines.
const DebugLogPath = "agenda-debug.log"

var (
	debugLog  = slog.New(slog.DiscardHandler)
	debugFile *os.File
)

// InitDebugLogger starts writing debug events to DebugLogPath when enabled.
func InitDebugLogger(enabled bool) error {
	if !enabled {
		debugLog = slog.New(slog.DiscardHandler)
		return nil
	}
	f, err := os.Create(DebugLogPath)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}
	debugFile = f
	debugLog = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	debugLog.Debug("DEBUG_START", "log_file", DebugLogPath)
	return nil
}

// CloseDebugLogger flushes and closes the debug log.
func CloseDebugLogger() {
	if debugFile == nil {
		return
	}
	debugLog.Debug("DEBUG_END")
	_ = debugFile.Close()
	debugFile = nil
	debugLog = slog.New(slog.DiscardHandler)
}

// LogKeyPress logs a key press.
func LogKeyPress(msg tea.KeyMsg) {
	debugLog.Debug("KEY_PRESS", "key", msg.String(), "type", int(msg.Type))
}

// LogModeChange logs a mode change.
func LogModeChange(from, to Mode, reason string) {
	debugLog.Debug("MODE_CHANGE", "from", from.String(), "to", to.String(), "reason", reason)
}

// LogCursorMove logs list cursor movement.
func LogCursorMove(cursor, offset int, reason string) {
	debugLog.Debug("CURSOR_MOVE", "cursor", cursor, "offset", offset, "reason", reason)
}

// LogModalChange logs a modal being opened or replaced.
func LogModalChange(from, to ModalType) {
	debugLog.Debug("MODAL_CHANGE", "from", from.String(), "to", to.String())
}

// LogPicker logs a date picker transition.
func LogPicker(action, detail string) {
	debugLog.Debug("PICKER", "action", action, "detail", detail)
}

// LogMouse logs a mouse event and the region it hit.
func LogMouse(msg tea.MouseMsg, region string) {
	debugLog.Debug("MOUSE", "x", msg.X, "y", msg.Y, "button", msg.String(), "region", region)
}

// LogStore logs the result of a store operation. Titles are shortened.
func LogStore(op string, id int64, title string, err error) {
	attrs := []any{"op", op, "id", id, "title", runewidth.Truncate(title, 30, "...")}
	if err != nil {
		debugLog.Error("STORE", append(attrs, "error", err)...)
		return
	}
	debugLog.Debug("STORE", attrs...)
}

// LogError logs an error with the operation that produced it.
func LogError(op string, err error) {
	debugLog.Error("ERROR", "context", op, "error", err)
}

// LogChromeBreakdown logs how the terminal height is split between list
// and footer.
func LogChromeBreakdown(breakdown map[string]int) {
	attrs := make([]any, 0, 2*len(breakdown))
	for k, v := range breakdown {
		attrs = append(attrs, k, v)
	}
	debugLog.Debug("CHROME_BREAKDOWN", attrs...)
}

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModePrompt:
		return "Prompt"
	case ModeModal:
		return "Modal"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

func (t ModalType) String() string {
	switch t {
	case ModalNone:
		return "None"
	case ModalEventForm:
		return "EventForm"
	case ModalEditPicker:
		return "EditPicker"
	case ModalConfirmDelete:
		return "ConfirmDelete"
	case ModalInit:
		return "Init"
	default:
		return fmt.Sprintf("Unknown(%d)", int(t))
	}
}
