package dialog

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/glint-ui/glint/styles"
)

// ProgressMsg updates a determinate progress dialog. Percent is in
// [0, 1].
type ProgressMsg struct {
	Percent float64
	Label   string
}

// ProgressDoneMsg marks the operation as finished; the dialog dismisses
// on the next key press.
type ProgressDoneMsg struct{}

// Progress is a progress dialog. With Indeterminate set it shows a
// spinner; otherwise a bar driven by ProgressMsg.
type Progress struct {
	Box
	Label         string
	Indeterminate bool

	styles  *styles.Styles
	bar     progress.Model
	spin    spinner.Model
	percent float64
	done    bool
	width   int
	height  int
}

// NewProgress creates a determinate progress dialog.
func NewProgress(s *styles.Styles, title, label string) Progress {
	return Progress{
		Box:    Box{Title: title, Width: 54},
		Label:  label,
		styles: s,
		bar:    progress.New(progress.WithDefaultGradient(), progress.WithWidth(44)),
		spin:   spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

// NewBusy creates an indeterminate (spinner) progress dialog.
func NewBusy(s *styles.Styles, title, label string) Progress {
	p := NewProgress(s, title, label)
	p.Indeterminate = true
	return p
}

// Init starts the spinner for indeterminate dialogs.
func (p Progress) Init() tea.Cmd {
	if p.Indeterminate {
		return p.spin.Tick
	}
	return nil
}

// Update advances the bar or spinner.
func (p Progress) Update(msg tea.Msg) (Progress, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width, p.height = msg.Width, msg.Height
	case ProgressMsg:
		p.percent = msg.Percent
		if p.percent > 1 {
			p.percent = 1
		}
		if msg.Label != "" {
			p.Label = msg.Label
		}
	case ProgressDoneMsg:
		p.done = true
		p.percent = 1
	case spinner.TickMsg:
		var cmd tea.Cmd
		p.spin, cmd = p.spin.Update(msg)
		return p, cmd
	case tea.KeyMsg:
		if p.done {
			return p, func() tea.Msg { return closeCmd() }
		}
	}
	return p, nil
}

// Percent returns the current completion in [0, 1].
func (p Progress) Percent() float64 { return p.percent }

// Done reports whether the operation finished.
func (p Progress) Done() bool { return p.done }

// View renders the progress dialog.
func (p Progress) View() string {
	s := p.styles
	innerWidth := p.Box.Width - 4

	var content strings.Builder
	content.WriteString("\n")
	if p.Indeterminate && !p.done {
		content.WriteString(centerLine(p.spin.View()+" "+s.Text.Render(p.Label), innerWidth))
	} else {
		content.WriteString(centerLine(s.Text.Render(p.Label), innerWidth))
		content.WriteString("\n\n")
		content.WriteString(centerLine(p.bar.ViewAs(p.percent), innerWidth))
		content.WriteString("\n")
		content.WriteString(centerLine(s.Muted.Render(fmt.Sprintf("%3.0f%%", p.percent*100)), innerWidth))
	}
	if p.done {
		content.WriteString("\n\n")
		content.WriteString(centerLine(s.Success.Render("Done"), innerWidth))
		content.WriteString("\n")
		content.WriteString(centerLine(s.Muted.Render("press any key"), innerWidth))
	}

	return p.Box.Render(s, content.String(), p.width, p.height)
}
