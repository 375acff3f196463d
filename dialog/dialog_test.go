package dialog

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glint-ui/glint/styles"
	"github.com/glint-ui/glint/theme"
)

func testStyles(t *testing.T) *styles.Styles {
	t.Helper()
	svc := theme.NewService(theme.Config{DefaultPreset: theme.PresetDark})
	s, err := styles.New(svc)
	if err != nil {
		t.Fatalf("styles.New failed: %v", err)
	}
	return s
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMessageRender(t *testing.T) {
	m := NewMessage(testStyles(t), "Heads up", "Disk is nearly full")

	view := m.View()
	if !strings.Contains(view, "Heads up") {
		t.Errorf("expected title in view: %s", view)
	}
	if !strings.Contains(view, "Disk is nearly full") {
		t.Errorf("expected body in view: %s", view)
	}
	if !strings.Contains(view, "OK") {
		t.Errorf("expected OK button in view: %s", view)
	}
}

func TestMessageDismiss(t *testing.T) {
	m := NewMessage(testStyles(t), "t", "b")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should dismiss")
	}
	if _, ok := cmd().(CloseMsg); !ok {
		t.Fatalf("expected CloseMsg, got %T", cmd())
	}
}

func TestConfirmKeys(t *testing.T) {
	type confirmed struct{}
	type canceled struct{}

	newConfirm := func(t *testing.T) Confirm {
		return NewConfirm(testStyles(t), "Delete everything?",
			func() tea.Msg { return confirmed{} },
			func() tea.Msg { return canceled{} })
	}

	collect := func(cmd tea.Cmd) []tea.Msg {
		if cmd == nil {
			return nil
		}
		msg := cmd()
		if batch, ok := msg.(tea.BatchMsg); ok {
			var msgs []tea.Msg
			for _, c := range batch {
				msgs = append(msgs, c())
			}
			return msgs
		}
		return []tea.Msg{msg}
	}

	t.Run("y confirms", func(t *testing.T) {
		_, cmd := newConfirm(t).Update(keyMsg("y"))
		msgs := collect(cmd)
		found := false
		for _, m := range msgs {
			if _, ok := m.(confirmed); ok {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected confirm action, got %v", msgs)
		}
	})

	t.Run("n cancels", func(t *testing.T) {
		_, cmd := newConfirm(t).Update(keyMsg("n"))
		msgs := collect(cmd)
		found := false
		for _, m := range msgs {
			if _, ok := m.(canceled); ok {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected cancel action, got %v", msgs)
		}
	})

	t.Run("enter accepts selection", func(t *testing.T) {
		c := newConfirm(t)
		c, _ = c.Update(tea.KeyMsg{Type: tea.KeyTab}) // move selection to No
		_, cmd := c.Update(tea.KeyMsg{Type: tea.KeyEnter})
		msgs := collect(cmd)
		found := false
		for _, m := range msgs {
			if _, ok := m.(canceled); ok {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected cancel after tab+enter, got %v", msgs)
		}
	})
}

func TestProgressLifecycle(t *testing.T) {
	p := NewProgress(testStyles(t), "Copying", "file 1 of 10")

	p, _ = p.Update(ProgressMsg{Percent: 0.5, Label: "file 5 of 10"})
	if p.Percent() != 0.5 {
		t.Fatalf("unexpected percent: %f", p.Percent())
	}
	if !strings.Contains(p.View(), "file 5 of 10") {
		t.Errorf("expected updated label in view")
	}

	p, _ = p.Update(ProgressMsg{Percent: 1.7})
	if p.Percent() != 1 {
		t.Fatalf("percent should clamp to 1, got %f", p.Percent())
	}

	p, _ = p.Update(ProgressDoneMsg{})
	if !p.Done() {
		t.Fatal("expected done")
	}

	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("key after done should dismiss")
	}
	if _, ok := cmd().(CloseMsg); !ok {
		t.Fatalf("expected CloseMsg, got %T", cmd())
	}
}

func TestBusySpinner(t *testing.T) {
	p := NewBusy(testStyles(t), "Working", "contacting server")
	if p.Init() == nil {
		t.Fatal("indeterminate progress should start its spinner")
	}
	if !strings.Contains(p.View(), "contacting server") {
		t.Errorf("expected label in view")
	}
}
