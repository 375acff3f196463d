package theme

import "github.com/charmbracelet/lipgloss"

// Brush is the mutable handle visual consumers bind to. Styles built
// from a brush go stale when the theme changes; consumers either reread
// the brush on render or register a SyncTarget to rebuild. A brush is
// created lazily on first synchronization, updated in place on every
// subsequent pass, and never destroyed.
type Brush struct {
	token Token
	color Color
}

// Token returns the token this brush tracks.
func (b *Brush) Token() Token { return b.token }

// Color returns the last synchronized color.
func (b *Brush) Color() Color { return b.color }

// Lipgloss returns the brush color as a lipgloss terminal color.
func (b *Brush) Lipgloss() lipgloss.Color { return b.color.Lipgloss() }

// BrushSet is the fixed table of brushes, one per token in the closed
// set that has been synchronized at least once.
type BrushSet struct {
	brushes map[Token]*Brush
}

// Get returns the brush for a token, or nil before the first
// synchronization pass.
func (bs *BrushSet) Get(t Token) *Brush {
	return bs.brushes[t]
}

// SyncTarget is the capability interface for consumers that cache
// styles derived from brushes. After every theme mutation the
// synchronizer calls Resync so the consumer reflects the latest
// resolved values.
type SyncTarget interface {
	Resync(brushes *BrushSet)
}

// Synchronizer re-projects resolved token colors onto brush handles and
// notifies registered targets.
type Synchronizer struct {
	brushes *BrushSet
	targets []SyncTarget
}

// NewSynchronizer creates a synchronizer with an empty brush table.
func NewSynchronizer() *Synchronizer {
	return &Synchronizer{brushes: &BrushSet{brushes: make(map[Token]*Brush, tokenCount)}}
}

// Brushes returns the brush table.
func (s *Synchronizer) Brushes() *BrushSet { return s.brushes }

// AddTarget registers a consumer for resynchronization. The target is
// not resynced immediately; the next SyncAll pass reaches it.
func (s *Synchronizer) AddTarget(t SyncTarget) {
	s.targets = append(s.targets, t)
}

// SyncAll resolves every token in the closed set through resolve and
// pushes the result into its brush, creating the brush on first use and
// mutating it in place afterwards. Registered targets are notified once
// all brushes are current. A resolution failure aborts the pass.
func (s *Synchronizer) SyncAll(resolve func(Token) (Color, error)) error {
	for _, t := range Tokens() {
		c, err := resolve(t)
		if err != nil {
			return err
		}
		if b, ok := s.brushes.brushes[t]; ok {
			b.color = c
			continue
		}
		s.brushes.brushes[t] = &Brush{token: t, color: c}
	}
	for _, target := range s.targets {
		target.Resync(s.brushes)
	}
	return nil
}
