package view

import "github.com/javiermolinar/agenda/internal/event"

// NewEditPickerRows builds edit picker rows from events, in the given order.
func NewEditPickerRows(events []*event.Event) []EditPickerRow {
	rows := make([]EditPickerRow, 0, len(events))
	for _, e := range events {
		rows = append(rows, EditPickerRow{Date: e.Date, Title: e.Title})
	}
	return rows
}

// NewConfirmDeleteModel builds a delete confirmation model from an event.
func NewConfirmDeleteModel(e *event.Event, editing bool) ConfirmDeleteModel {
	if e == nil {
		return ConfirmDeleteModel{HasEvent: false}
	}
	label := e.Date
	if d, err := e.Day(); err == nil {
		label = FormatDateLabel(d)
	}
	return ConfirmDeleteModel{
		Title:     e.Title,
		DateLabel: label,
		Editing:   editing,
		HasEvent:  true,
	}
}
