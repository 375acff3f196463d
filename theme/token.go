// Package theme implements the layered design-token engine behind glint's
// dialogs and notifications: primitives, base semantics, an active preset,
// and runtime overrides compose into a deterministic token resolution, with
// brush handles kept in sync for visual consumers.
package theme

import (
	"errors"
	"fmt"
)

// ErrUnknownToken is returned when resolving a name outside the closed
// token set, or a name no layer defines. Resolution never falls back to a
// default color.
var ErrUnknownToken = errors.New("unknown theme token")

// Token identifies one named color role in the closed token set.
type Token int

// The closed token set. Every complete preset covers all of these.
const (
	SurfaceWindow Token = iota
	SurfacePanel
	SurfaceOverlay
	SurfaceInput
	TextPrimary
	TextSecondary
	TextMuted
	TextDisabled
	TextOnAccent
	InteractiveDefault
	InteractiveHover
	InteractivePressed
	InteractiveDisabled
	NeutralLow
	NeutralMid
	NeutralHigh
	StatusSuccess
	StatusWarning
	StatusError
	StatusInfo
	BorderDefault
	BorderFocus
	Shadow
	LinkDefault
	LinkHover
	CloseDefault
	CloseHover
	ClosePressed

	tokenCount // sentinel, keep last
)

var tokenNames = [tokenCount]string{
	SurfaceWindow:       "surface-window",
	SurfacePanel:        "surface-panel",
	SurfaceOverlay:      "surface-overlay",
	SurfaceInput:        "surface-input",
	TextPrimary:         "text-primary",
	TextSecondary:       "text-secondary",
	TextMuted:           "text-muted",
	TextDisabled:        "text-disabled",
	TextOnAccent:        "text-on-accent",
	InteractiveDefault:  "interactive-default",
	InteractiveHover:    "interactive-hover",
	InteractivePressed:  "interactive-pressed",
	InteractiveDisabled: "interactive-disabled",
	NeutralLow:          "neutral-low",
	NeutralMid:          "neutral-mid",
	NeutralHigh:         "neutral-high",
	StatusSuccess:       "status-success",
	StatusWarning:       "status-warning",
	StatusError:         "status-error",
	StatusInfo:          "status-info",
	BorderDefault:       "border-default",
	BorderFocus:         "border-focus",
	Shadow:              "shadow",
	LinkDefault:         "link-default",
	LinkHover:           "link-hover",
	CloseDefault:        "close-default",
	CloseHover:          "close-hover",
	ClosePressed:        "close-pressed",
}

var tokensByName = func() map[string]Token {
	m := make(map[string]Token, tokenCount)
	for t, name := range tokenNames {
		m[name] = Token(t)
	}
	return m
}()

// Tokens returns the closed token set in declaration order.
func Tokens() []Token {
	all := make([]Token, tokenCount)
	for i := range all {
		all[i] = Token(i)
	}
	return all
}

// Valid reports whether the token is a member of the closed set.
func (t Token) Valid() bool {
	return t >= 0 && t < tokenCount
}

// String returns the token's stable wire name, e.g. "text-primary".
func (t Token) String() string {
	if !t.Valid() {
		return fmt.Sprintf("token(%d)", int(t))
	}
	return tokenNames[t]
}

// ParseToken maps a wire name back to its token.
func ParseToken(name string) (Token, error) {
	t, ok := tokensByName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownToken, name)
	}
	return t, nil
}
