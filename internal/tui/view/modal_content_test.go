package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestRenderConfirmDeleteBody_UsesBodyStyleForMessage(t *testing.T) {
	styles := ConfirmDeleteStyles{
		BodyStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		MetaStyle: lipgloss.NewStyle(),
	}
	model := ConfirmDeleteModel{HasEvent: false}

	body := RenderConfirmDeleteBody(model, styles)
	expected := styles.BodyStyle.Render(" This permanently deletes the event.\n Are you sure?")
	if !strings.Contains(body, expected) {
		t.Fatalf("expected confirm delete message to use body style")
	}
}

func TestRenderConfirmDeleteBody_MentionsEditor(t *testing.T) {
	styles := ConfirmDeleteStyles{BodyStyle: lipgloss.NewStyle(), MetaStyle: lipgloss.NewStyle()}
	model := ConfirmDeleteModel{Title: "Dentist", DateLabel: "Mon 12.10.2026", HasEvent: true, Editing: true}

	body := ansi.Strip(RenderConfirmDeleteBody(model, styles))
	for _, want := range []string{`"Dentist"`, "Mon 12.10.2026", "open in the editor"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}
}

func TestRenderEditPickerBody(t *testing.T) {
	styles := EditPickerStyles{
		RowStyle:    lipgloss.NewStyle(),
		CursorStyle: lipgloss.NewStyle().Bold(true),
		MetaStyle:   lipgloss.NewStyle(),
	}

	tests := []struct {
		name  string
		model EditPickerModel
		want  []string
		not   []string
	}{
		{
			name:  "empty",
			model: EditPickerModel{Visible: 5, Width: 40},
			want:  []string{"No events"},
		},
		{
			name: "window",
			model: EditPickerModel{
				Rows: []EditPickerRow{
					{Date: "01.11.2026", Title: "One"},
					{Date: "02.11.2026", Title: "Two"},
					{Date: "03.11.2026", Title: "Three"},
				},
				Cursor:  2,
				Offset:  1,
				Visible: 2,
				Width:   40,
			},
			want: []string{"02.11.2026  Two", "03.11.2026  Three", "3 of 3"},
			not:  []string{"One"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := ansi.Strip(RenderEditPickerBody(tt.model, styles))
			for _, want := range tt.want {
				if !strings.Contains(body, want) {
					t.Errorf("body missing %q:\n%s", want, body)
				}
			}
			for _, not := range tt.not {
				if strings.Contains(body, not) {
					t.Errorf("body should not contain %q:\n%s", not, body)
				}
			}
		})
	}
}

func TestRenderInitBody_ListsMissingFiles(t *testing.T) {
	styles := InitModalStyles{
		BodyStyle:  lipgloss.NewStyle(),
		LabelStyle: lipgloss.NewStyle(),
		HintStyle:  lipgloss.NewStyle(),
		ErrorStyle: lipgloss.NewStyle(),
	}
	model := InitModalModel{
		ConfigPath:   "/tmp/config.toml",
		DBPath:       "/tmp/agenda.db",
		DBMissing:    true,
		ErrorMessage: "permission denied",
	}

	body := ansi.Strip(RenderInitBody(model, styles))
	if strings.Contains(body, "/tmp/config.toml") {
		t.Errorf("config path shown although present:\n%s", body)
	}
	for _, want := range []string{"/tmp/agenda.db", "permission denied"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}
}
