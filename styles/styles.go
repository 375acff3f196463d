// Package styles converts resolved theme tokens into lipgloss styles.
// A Styles value registers itself as a sync target with the theme
// service and rebuilds after every theme mutation, so components can
// hold it for the lifetime of the program.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/glint-ui/glint/theme"
)

// Styles contains lipgloss styles derived from theme brushes.
type Styles struct {
	Title     lipgloss.Style
	Text      lipgloss.Style
	Secondary lipgloss.Style
	Muted     lipgloss.Style
	Disabled  lipgloss.Style
	Panel     lipgloss.Style
	Overlay   lipgloss.Style
	Border    lipgloss.Style
	Focus     lipgloss.Style
	Link      lipgloss.Style
	LinkHover lipgloss.Style
	Button    lipgloss.Style
	ButtonHot lipgloss.Style
	CloseHint lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Info      lipgloss.Style
}

// New builds a style set from a theme service and keeps it current. The
// service is loaded if it is not already.
func New(svc *theme.Service) (*Styles, error) {
	s := &Styles{}
	if err := svc.RegisterSyncTarget(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Resync rebuilds every style from the brush table. Called by the theme
// synchronizer after each mutation.
func (s *Styles) Resync(b *theme.BrushSet) {
	text := b.Get(theme.TextPrimary).Lipgloss()
	panel := b.Get(theme.SurfacePanel).Lipgloss()
	overlay := b.Get(theme.SurfaceOverlay).Lipgloss()
	border := b.Get(theme.BorderDefault).Lipgloss()
	accent := b.Get(theme.InteractiveDefault)
	accentHot := b.Get(theme.InteractiveHover)

	s.Title = lipgloss.NewStyle().Foreground(text).Bold(true)
	s.Text = lipgloss.NewStyle().Foreground(text)
	s.Secondary = lipgloss.NewStyle().Foreground(b.Get(theme.TextSecondary).Lipgloss())
	s.Muted = lipgloss.NewStyle().Foreground(b.Get(theme.TextMuted).Lipgloss())
	s.Disabled = lipgloss.NewStyle().Foreground(b.Get(theme.TextDisabled).Lipgloss())
	s.Panel = lipgloss.NewStyle().
		Foreground(text).
		Background(panel).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(border)
	s.Overlay = lipgloss.NewStyle().
		Foreground(text).
		Background(overlay).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
	s.Border = lipgloss.NewStyle().Foreground(border)
	s.Focus = lipgloss.NewStyle().Foreground(b.Get(theme.BorderFocus).Lipgloss()).Bold(true)
	s.Link = lipgloss.NewStyle().Foreground(b.Get(theme.LinkDefault).Lipgloss()).Underline(true)
	s.LinkHover = lipgloss.NewStyle().Foreground(b.Get(theme.LinkHover).Lipgloss()).Underline(true)
	s.Button = lipgloss.NewStyle().
		Foreground(ReadableForeground(accent.Color())).
		Background(accent.Lipgloss()).
		Bold(true).
		Padding(0, 2)
	s.ButtonHot = lipgloss.NewStyle().
		Foreground(ReadableForeground(accentHot.Color())).
		Background(accentHot.Lipgloss()).
		Bold(true).
		Padding(0, 2)
	s.CloseHint = lipgloss.NewStyle().Foreground(b.Get(theme.CloseDefault).Lipgloss())
	s.Success = lipgloss.NewStyle().Foreground(b.Get(theme.StatusSuccess).Lipgloss())
	s.Warning = lipgloss.NewStyle().Foreground(b.Get(theme.StatusWarning).Lipgloss())
	s.Error = lipgloss.NewStyle().Foreground(b.Get(theme.StatusError).Lipgloss())
	s.Info = lipgloss.NewStyle().Foreground(b.Get(theme.StatusInfo).Lipgloss())
}

// ReadableForeground picks black or white text for a background color
// based on its relative luminance.
func ReadableForeground(bg theme.Color) lipgloss.Color {
	c := colorful.Color{
		R: float64(bg.R) / 255,
		G: float64(bg.G) / 255,
		B: float64(bg.B) / 255,
	}
	_, _, l := c.Hsl()
	if l > 0.55 {
		return lipgloss.Color("#111827")
	}
	return lipgloss.Color("#FFFFFF")
}
