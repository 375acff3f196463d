// Package dialog provides themed modal dialog components for Bubble Tea
// programs: message boxes, confirmations, and progress dialogs. Every
// component renders through a styles.Styles set, so dialogs follow
// preset swaps and token overrides without being rebuilt.
package dialog

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/glint-ui/glint/styles"
)

// Box is a titled modal frame. Components embed it and supply content.
type Box struct {
	Title  string
	Width  int
	Height int
}

// Render draws the framed dialog centered in the terminal area.
func (b Box) Render(s *styles.Styles, content string, termWidth, termHeight int) string {
	width := b.Width
	if width <= 0 {
		width = 50
	}
	if termWidth > 0 && width > termWidth-4 {
		width = termWidth - 4
	}

	var body strings.Builder
	if b.Title != "" {
		title := s.Title.
			Width(width - 2).
			Align(lipgloss.Center).
			Render(b.Title)
		body.WriteString(title)
		body.WriteString("\n")
		body.WriteString(s.Border.Render(strings.Repeat("─", width-2)))
		body.WriteString("\n")
	}
	body.WriteString(content)

	frame := s.Overlay.
		Width(width).
		Padding(0, 1).
		Render(body.String())

	if termWidth <= 0 || termHeight <= 0 {
		return frame
	}
	return lipgloss.Place(termWidth, termHeight, lipgloss.Center, lipgloss.Center, frame)
}

// CloseMsg is emitted when a dialog is dismissed.
type CloseMsg struct{}

func closeCmd() CloseMsg { return CloseMsg{} }

func centerLine(line string, width int) string {
	pad := (width - lipgloss.Width(line)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + line
}
