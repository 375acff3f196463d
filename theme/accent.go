package theme

// Accent derivation factors. These are part of the public contract:
// callers may rely on the exact derived shades.
const (
	AccentHoverDarken   = 0.15
	AccentPressedDarken = 0.30
)

// AccentSet holds the tokens derived from a single accent color.
type AccentSet struct {
	Default Color
	Hover   Color
	Pressed Color
}

// DeriveAccent computes the interactive-state variants of a base accent
// color: hover is the base darkened by AccentHoverDarken, pressed by
// AccentPressedDarken. Link default/hover mirror default/hover. The
// derivation is a pure function of the base color.
func DeriveAccent(base Color) AccentSet {
	return AccentSet{
		Default: base,
		Hover:   base.Darken(AccentHoverDarken),
		Pressed: base.Darken(AccentPressedDarken),
	}
}

// tokens returns the derived set as override entries, including the
// mirrored link tokens.
func (a AccentSet) tokens() map[Token]Color {
	return map[Token]Color{
		InteractiveDefault: a.Default,
		InteractiveHover:   a.Hover,
		InteractivePressed: a.Pressed,
		LinkDefault:        a.Default,
		LinkHover:          a.Hover,
	}
}
