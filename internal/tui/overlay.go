package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/agenda/internal/tui/view"
)

// Backdrop bounds in cells. The backdrop grows past the maximum to fit a
// larger modal, up to the screen size.
const (
	backdropMinWidth  = 18
	backdropMinHeight = 5
	backdropMaxWidth  = 48
	backdropMaxHeight = 12
)

// backdrop lays a modal over the screen, centered in an opaque box.
type backdrop struct {
	bg lipgloss.Color
}

// modalBackdrop returns the backdrop for the active theme.
func (m Model) modalBackdrop() backdrop {
	return backdrop{bg: m.styles.ModalBackdropColor}
}

// backdropBox is where the backdrop and the modal land on screen.
type backdropBox struct {
	left, top          int
	width, height      int
	contentX, contentY int
	contentW, contentH int
}

func (b backdrop) layout(width, height int, lines []string) (backdropBox, bool) {
	if width <= 0 || height <= 0 || len(lines) == 0 {
		return backdropBox{}, false
	}
	contentW := 0
	for _, line := range lines {
		contentW = max(contentW, lipgloss.Width(line))
	}
	if contentW == 0 {
		return backdropBox{}, false
	}

	box := backdropBox{
		width:  min(max(clampInt(width/2, backdropMinWidth, backdropMaxWidth), contentW), width),
		height: min(max(clampInt(height/3, backdropMinHeight, backdropMaxHeight), len(lines)), height),
	}
	box.left = (width - box.width) / 2
	box.top = (height - box.height) / 2
	box.contentW = min(contentW, box.width)
	box.contentH = min(len(lines), box.height)
	box.contentX = box.left + (box.width-box.contentW)/2
	box.contentY = box.top + (box.height-box.contentH)/2
	return box, true
}

// Render splices content, centered in the backdrop, over base.
func (b backdrop) Render(base string, width, height int, content string) string {
	lines := contentLines(content)
	box, ok := b.layout(width, height, lines)
	if !ok {
		return base
	}

	bgSeq := view.BackgroundSeq(b.bg)
	blank := bgSeq + strings.Repeat(" ", box.width) + ansi.ResetStyle
	screen := strings.Split(view.FillBackground(base, width, height, lipgloss.Color("")), "\n")

	for row := box.top; row < box.top+box.height; row++ {
		inner := blank
		if i := row - box.contentY; i >= 0 && i < box.contentH {
			inner = b.contentRow(lines[i], box, bgSeq)
		}
		line := screen[row]
		screen[row] = ansi.Cut(line, 0, box.left) + inner + ansi.Cut(line, box.left+box.width, width)
	}
	return strings.Join(screen, "\n")
}

func (b backdrop) contentRow(line string, box backdropBox, bgSeq string) string {
	switch w := lipgloss.Width(line); {
	case w > box.contentW:
		line = ansi.Cut(line, 0, box.contentW)
	case w < box.contentW:
		line += strings.Repeat(" ", box.contentW-w)
	}
	left := box.contentX - box.left
	right := max(0, box.width-left-box.contentW)
	return bgSeq + strings.Repeat(" ", left) +
		view.KeepBackground(line, bgSeq) +
		bgSeq + strings.Repeat(" ", right) + ansi.ResetStyle
}

// ContentOrigin returns the screen cell where the top-left corner of content
// lands when rendered on a width x height screen.
func (b backdrop) ContentOrigin(width, height int, content string) (x, y int, ok bool) {
	box, ok := b.layout(width, height, contentLines(content))
	return box.contentX, box.contentY, ok
}

func contentLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
