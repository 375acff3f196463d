package dialog

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/glint-ui/glint/styles"
)

// Message is a simple message box with a single OK action.
type Message struct {
	Box
	Body string

	styles *styles.Styles
	width  int
	height int
}

// NewMessage creates a message box.
func NewMessage(s *styles.Styles, title, body string) Message {
	return Message{
		Box:    Box{Title: title, Width: 50},
		Body:   body,
		styles: s,
	}
}

// Init implements tea.Model.
func (m Message) Init() tea.Cmd { return nil }

// Update dismisses the dialog on enter or esc.
func (m Message) Update(msg tea.Msg) (Message, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc", "q":
			return m, func() tea.Msg { return closeCmd() }
		}
	}
	return m, nil
}

// View renders the message box.
func (m Message) View() string {
	s := m.styles
	innerWidth := m.Box.Width - 4

	var content strings.Builder
	content.WriteString("\n")
	content.WriteString(s.Text.Width(innerWidth).Align(lipgloss.Center).Render(m.Body))
	content.WriteString("\n\n")
	content.WriteString(centerLine(s.Button.Render("OK"), innerWidth))
	content.WriteString("\n")
	content.WriteString(centerLine(s.Muted.Render("enter to dismiss"), innerWidth))

	return m.Box.Render(s, content.String(), m.width, m.height)
}
