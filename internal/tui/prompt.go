package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/agenda/internal/dateutil"
	"github.com/javiermolinar/agenda/internal/event"
	"github.com/javiermolinar/agenda/internal/tui/commands"
	"github.com/javiermolinar/agenda/internal/tui/input"
	"github.com/javiermolinar/agenda/internal/tui/theme"
	"github.com/javiermolinar/agenda/internal/tui/view"
)

// defaultExportPath is used by /export without an argument.
const defaultExportPath = "agenda.ics"

var promptCommands = input.CommandSet{
	{
		Name:        "/add",
		Description: "Add an event: /add TITLE @ DATE",
	},
	{
		Name:        "/export",
		Description: "Export to an iCalendar file: /export [PATH]",
	},
	{
		Name:        "/theme",
		Description: "Switch theme: /theme [light|dark]",
	},
	{
		Name:        "/help",
		Description: "Show available commands",
	},
}

func (m Model) promptMaxContentLines() int {
	maxLines := m.layout.FooterH - footerBaseLines - promptBorderLines
	if maxLines < promptMinContentLines {
		return promptMinContentLines
	}
	return maxLines
}

func (m Model) promptLines(contentWidth int) []string {
	state := view.PromptState{
		Value:  m.prompt.Value(),
		Cursor: m.promptCursor(),
		Active: m.mode == ModePrompt,
	}
	return view.PromptLines(state, contentWidth, promptCommands)
}

// executePrompt runs a submitted prompt line.
func (m Model) executePrompt(line string) (tea.Model, tea.Cmd) {
	inv, ok := input.ParseInvocation(line)
	if !ok {
		if strings.TrimSpace(line) == "" {
			return m, nil
		}
		return m.setStatus("Commands start with /. Try /help")
	}

	switch inv.Name {
	case "/add":
		return m.promptAdd(inv.Args)
	case "/export":
		args, err := inv.Fields()
		if err != nil {
			return m.setStatus(err.Error())
		}
		path := defaultExportPath
		if len(args) > 0 {
			path = args[0]
		}
		return m, commands.ExportICS(m.events, path)
	case "/theme":
		mode := m.themeMode.Toggle()
		if inv.Args != "" {
			parsed, err := theme.ParseMode(inv.Args)
			if err != nil {
				return m.setStatus(err.Error())
			}
			mode = parsed
		}
		return m.setThemeMode(mode)
	case "/help":
		return m.setStatus("Commands: " + strings.Join(promptCommands.Names(), " "))
	default:
		return m.setStatus(fmt.Sprintf("Unknown command %s", inv.Name))
	}
}

// promptAdd creates an event from "/add TITLE @ DATE". DATE accepts the
// relative forms of dateutil.ParseRelative and defaults to today.
func (m Model) promptAdd(args string) (tea.Model, tea.Cmd) {
	title, when := input.SplitQuickAdd(args)
	today := m.today()
	d, err := dateutil.ParseRelative(when, today)
	if err != nil {
		return m.setStatus(fmt.Sprintf("Error: %v", err))
	}
	e, err := event.New(title, dateutil.Format(d), today)
	if err != nil {
		return m.setStatus(fmt.Sprintf("Error: %v", err))
	}
	return m, commands.CreateEvent(m.store, e)
}
