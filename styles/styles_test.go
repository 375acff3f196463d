package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/glint-ui/glint/theme"
)

func TestStylesFollowPresetSwap(t *testing.T) {
	svc := theme.NewService(theme.Config{DefaultPreset: theme.PresetLight})
	s, err := New(svc)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	lightFg := s.Text.GetForeground()

	if err := svc.ApplyPreset(theme.PresetDark); err != nil {
		t.Fatalf("ApplyPreset failed: %v", err)
	}

	darkFg := s.Text.GetForeground()
	if lightFg == darkFg {
		t.Fatalf("text style did not follow preset swap: %v", darkFg)
	}

	wantDark, err := svc.Resolve(theme.TextPrimary)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if darkFg != lipgloss.TerminalColor(wantDark.Lipgloss()) {
		t.Fatalf("text style out of sync: %v vs %v", darkFg, wantDark.Hex())
	}
}

func TestStylesFollowOverrides(t *testing.T) {
	svc := theme.NewService(theme.Config{DefaultPreset: theme.PresetDark})
	s, err := New(svc)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := svc.SetToken(theme.StatusError, theme.RGB(0xAA, 0x00, 0x00)); err != nil {
		t.Fatalf("SetToken failed: %v", err)
	}
	if got := s.Error.GetForeground(); got != lipgloss.TerminalColor(lipgloss.Color("#AA0000")) {
		t.Fatalf("error style did not pick up override: %v", got)
	}
}

func TestReadableForeground(t *testing.T) {
	if fg := ReadableForeground(theme.RGB(0xFF, 0xFF, 0xFF)); fg != lipgloss.Color("#111827") {
		t.Fatalf("white background should get dark text, got %v", fg)
	}
	if fg := ReadableForeground(theme.RGB(0x10, 0x10, 0x10)); fg != lipgloss.Color("#FFFFFF") {
		t.Fatalf("dark background should get white text, got %v", fg)
	}
}
