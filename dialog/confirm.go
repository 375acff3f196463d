package dialog

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/glint-ui/glint/styles"
)

// Confirm is a yes/no confirmation dialog.
type Confirm struct {
	Box
	Message   string
	OnConfirm tea.Cmd
	OnCancel  tea.Cmd

	styles   *styles.Styles
	selected bool // true = yes
	width    int
	height   int
}

// NewConfirm creates a confirmation dialog. onConfirm and onCancel may
// be nil; the dialog still emits CloseMsg when dismissed.
func NewConfirm(s *styles.Styles, message string, onConfirm, onCancel tea.Cmd) Confirm {
	return Confirm{
		Box:       Box{Title: "Confirm", Width: 50},
		Message:   message,
		OnConfirm: onConfirm,
		OnCancel:  onCancel,
		styles:    s,
		selected:  true,
	}
}

// Init implements tea.Model.
func (c Confirm) Init() tea.Cmd { return nil }

// Update handles confirmation keys: y/n answer directly, arrows move
// the selection, enter accepts it, esc cancels.
func (c Confirm) Update(msg tea.Msg) (Confirm, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width, c.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y":
			return c, c.resolve(true)
		case "n", "N", "esc":
			return c, c.resolve(false)
		case "left", "right", "tab":
			c.selected = !c.selected
		case "enter":
			return c, c.resolve(c.selected)
		}
	}
	return c, nil
}

func (c Confirm) resolve(confirmed bool) tea.Cmd {
	action := c.OnCancel
	if confirmed {
		action = c.OnConfirm
	}
	close := func() tea.Msg { return closeCmd() }
	if action == nil {
		return close
	}
	return tea.Batch(action, close)
}

// View renders the confirmation dialog.
func (c Confirm) View() string {
	s := c.styles
	innerWidth := c.Box.Width - 4

	yes := s.Button.Render("Yes")
	no := s.Button.Render("No")
	if c.selected {
		yes = s.ButtonHot.Render("Yes")
	} else {
		no = s.ButtonHot.Render("No")
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top, yes, "    ", no)

	var content strings.Builder
	content.WriteString("\n")
	content.WriteString(s.Text.Width(innerWidth).Align(lipgloss.Center).Render(c.Message))
	content.WriteString("\n\n")
	content.WriteString(centerLine(buttons, innerWidth))
	content.WriteString("\n")
	content.WriteString(centerLine(s.Muted.Render("y/n to answer, esc to cancel"), innerWidth))

	return c.Box.Render(s, content.String(), c.width, c.height)
}
