package theme

import (
	"errors"
	"testing"
)

func TestParseColor(t *testing.T) {
	t.Run("rgb hex", func(t *testing.T) {
		c, err := ParseColor("#2563EB")
		if err != nil {
			t.Fatalf("ParseColor failed: %v", err)
		}
		want := Color{A: 0xFF, R: 0x25, G: 0x63, B: 0xEB}
		if c != want {
			t.Fatalf("unexpected color: %+v", c)
		}
	})

	t.Run("argb hex", func(t *testing.T) {
		c, err := ParseColor("#80FF0000")
		if err != nil {
			t.Fatalf("ParseColor failed: %v", err)
		}
		want := Color{A: 0x80, R: 0xFF, G: 0x00, B: 0x00}
		if c != want {
			t.Fatalf("unexpected color: %+v", c)
		}
	})

	t.Run("malformed inputs", func(t *testing.T) {
		for _, input := range []string{"", "2563EB", "#25", "#XYZXYZ", "#12345", "rgb(1,2,3)"} {
			if _, err := ParseColor(input); !errors.Is(err, ErrInvalidColorFormat) {
				t.Errorf("ParseColor(%q): expected ErrInvalidColorFormat, got %v", input, err)
			}
		}
	})
}

func TestColorHex(t *testing.T) {
	if got := RGB(0x25, 0x63, 0xEB).Hex(); got != "#2563EB" {
		t.Fatalf("unexpected hex: %s", got)
	}
	if got := (Color{A: 0x66, R: 0, G: 0, B: 0}).Hex(); got != "#66000000" {
		t.Fatalf("unexpected translucent hex: %s", got)
	}
}

func TestDarken(t *testing.T) {
	base := RGB(200, 100, 50)

	hover := base.Darken(AccentHoverDarken)
	if hover != RGB(170, 85, 42) {
		t.Fatalf("hover shade wrong: %+v", hover)
	}

	pressed := base.Darken(AccentPressedDarken)
	if pressed != RGB(140, 70, 35) {
		t.Fatalf("pressed shade wrong: %+v", pressed)
	}

	t.Run("half values round to even", func(t *testing.T) {
		// 50 * (1 - 0.15) is exactly 42.5 in float64; rounding away
		// from zero would give 43.
		if c := RGB(50, 50, 50).Darken(0.15); c != RGB(42, 42, 42) {
			t.Fatalf("expected 42, got %+v", c)
		}
		// 90 * 0.5 = 45 exactly, 91 * 0.5 = 45.5 ties up to 46.
		if c := RGB(90, 91, 0).Darken(0.5); c != RGB(45, 46, 0) {
			t.Fatalf("unexpected tie rounding: %+v", c)
		}
	})

	t.Run("alpha unchanged", func(t *testing.T) {
		c := Color{A: 0x80, R: 100, G: 100, B: 100}.Darken(0.5)
		if c.A != 0x80 {
			t.Fatalf("alpha changed: %+v", c)
		}
	})

	t.Run("full darken clamps to black", func(t *testing.T) {
		if c := RGB(255, 1, 128).Darken(1.0); c != RGB(0, 0, 0) {
			t.Fatalf("expected black, got %+v", c)
		}
	})
}
