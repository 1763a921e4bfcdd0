package event

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// Record is the machine-readable form of an event used by list and export.
type Record struct {
	ID        int64     `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	Date      string    `json:"date" yaml:"date"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// Records converts events to their export form.
func Records(events []*Event) []Record {
	out := make([]Record, 0, len(events))
	for _, e := range events {
		out = append(out, Record{
			ID:        e.ID,
			Title:     e.Title,
			Date:      e.Date,
			CreatedAt: e.CreatedAt,
			UpdatedAt: e.UpdatedAt,
		})
	}
	return out
}

// WriteJSON writes events as an indented JSON array.
func WriteJSON(w io.Writer, events []*Event) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Records(events)); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}

// WriteYAML writes events as a YAML sequence.
func WriteYAML(w io.Writer, events []*Event) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Records(events)); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}
