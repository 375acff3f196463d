package theme

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ErrInvalidColorFormat is returned when color text cannot be parsed.
// Callers driving SetToken from user input are expected to catch this at
// the input boundary and surface it inline.
var ErrInvalidColorFormat = errors.New("invalid color format")

// Color is a 4-channel 8-bit-per-channel ARGB value.
type Color struct {
	A, R, G, B uint8
}

// RGB returns a fully opaque color.
func RGB(r, g, b uint8) Color {
	return Color{A: 0xFF, R: r, G: g, B: b}
}

// ParseColor parses "#RRGGBB" or "#AARRGGBB" hex text. The leading '#'
// is required.
func ParseColor(text string) (Color, error) {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "#") {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, text)
	}
	s = s[1:]

	var digits int
	switch len(s) {
	case 6, 8:
		digits = len(s)
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, text)
	}

	value, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, text)
	}

	c := Color{A: 0xFF}
	if digits == 8 {
		c.A = uint8(value >> 24)
	}
	c.R = uint8(value >> 16)
	c.G = uint8(value >> 8)
	c.B = uint8(value)
	return c, nil
}

// MustColor parses hex text and panics on failure. Intended for
// package-level palette literals only.
func MustColor(text string) Color {
	c, err := ParseColor(text)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex renders the color as "#RRGGBB", or "#AARRGGBB" when the alpha
// channel is not fully opaque.
func (c Color) Hex() string {
	if c.A != 0xFF {
		return fmt.Sprintf("#%02X%02X%02X%02X", c.A, c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Lipgloss converts the color into a lipgloss terminal color.
func (c Color) Lipgloss() lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B))
}

// Darken scales each RGB channel by (1 - factor), rounding to the
// nearest integer (ties to even) and clamping to [0, 255]. Alpha is
// unchanged. The scaling is linear; no gamma correction is applied.
func (c Color) Darken(factor float64) Color {
	return Color{
		A: c.A,
		R: scaleChannel(c.R, factor),
		G: scaleChannel(c.G, factor),
		B: scaleChannel(c.B, factor),
	}
}

func scaleChannel(v uint8, factor float64) uint8 {
	// Ties round to even: 50 at factor 0.15 is exactly 42.5 in
	// float64 and must land on 42.
	scaled := math.RoundToEven(float64(v) * (1 - factor))
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
