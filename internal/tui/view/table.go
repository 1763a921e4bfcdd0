package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Column is one column of the event list.
type Column struct {
	Title string
	Width int // 0 takes the remaining width
}

// EventTable is the visible window of the event list.
type EventTable struct {
	Width       int
	Height      int
	Columns     []Column
	Rows        [][]string
	RowStyles   []lipgloss.Style // one per row
	HeaderStyle lipgloss.Style
	BorderStyle lipgloss.Style
	Bg          lipgloss.Color
}

// Render draws the rows in a rounded border under a header line.
func (t EventTable) Render() string {
	if t.Height <= 0 {
		return ""
	}

	headers := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		headers[i] = c.Title
	}

	grid := table.New().
		Headers(headers...).
		Width(max(0, t.Width-2)).
		Height(t.Height).
		Border(lipgloss.RoundedBorder()).
		BorderRow(false).
		BorderStyle(t.BorderStyle).
		Rows(t.Rows...).
		StyleFunc(t.cellStyle).
		Render()
	return PlaceBox(t.Width, t.Height, lipgloss.Top, grid, t.Bg)
}

func (t EventTable) cellStyle(row, col int) lipgloss.Style {
	style := t.HeaderStyle
	if row != table.HeaderRow {
		if row < 0 || row >= len(t.RowStyles) {
			return lipgloss.NewStyle()
		}
		style = t.RowStyles[row]
	}
	if col >= 0 && col < len(t.Columns) && t.Columns[col].Width > 0 {
		style = style.Width(t.Columns[col].Width)
	}
	return style
}
