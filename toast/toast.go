// Package toast provides stacked transient notifications for Bubble Tea
// programs. Toasts expire on a timer and render through the shared
// style set, picking up theme changes automatically.
package toast

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/glint-ui/glint/styles"
)

// Level classifies a notification.
type Level string

// Notification levels.
const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// DefaultTTL is how long a toast stays visible unless overridden.
const DefaultTTL = 4 * time.Second

// Notification is a single toast.
type Notification struct {
	ID        string
	Level     Level
	Title     string
	Body      string
	ExpiresAt time.Time
}

// tickMsg drives expiry.
type tickMsg time.Time

// Model holds the visible toast stack, newest first.
type Model struct {
	styles *styles.Styles
	ttl    time.Duration
	items  []Notification
	width  int
}

// New creates an empty toast stack.
func New(s *styles.Styles) Model {
	return Model{styles: s, ttl: DefaultTTL, width: 40}
}

// WithTTL overrides the default time-to-live.
func (m Model) WithTTL(ttl time.Duration) Model {
	m.ttl = ttl
	return m
}

// Push adds a notification and returns the command that keeps the
// expiry timer running.
func (m *Model) Push(level Level, title, body string) tea.Cmd {
	m.items = append([]Notification{{
		ID:        uuid.New().String(),
		Level:     level,
		Title:     title,
		Body:      body,
		ExpiresAt: time.Now().Add(m.ttl),
	}}, m.items...)
	return m.tick()
}

// Len returns the number of visible toasts.
func (m Model) Len() int { return len(m.items) }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update expires toasts as their deadlines pass.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width / 3
		if m.width < 30 {
			m.width = 30
		}
	case tickMsg:
		m.expire(time.Time(msg))
		if len(m.items) > 0 {
			return m, m.tick()
		}
	}
	return m, nil
}

func (m *Model) expire(now time.Time) {
	kept := m.items[:0]
	for _, n := range m.items {
		if n.ExpiresAt.After(now) {
			kept = append(kept, n)
		}
	}
	m.items = kept
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// View renders the toast stack, newest on top.
func (m Model) View() string {
	if len(m.items) == 0 {
		return ""
	}
	rendered := make([]string, 0, len(m.items))
	for _, n := range m.items {
		rendered = append(rendered, m.renderOne(n))
	}
	return strings.Join(rendered, "\n")
}

func (m Model) renderOne(n Notification) string {
	s := m.styles

	var accent lipgloss.Style
	switch n.Level {
	case LevelSuccess:
		accent = s.Success
	case LevelWarning:
		accent = s.Warning
	case LevelError:
		accent = s.Error
	default:
		accent = s.Info
	}

	title := accent.Bold(true).Render(n.Title)
	body := s.Secondary.Render(n.Body)

	frame := s.Overlay.
		Width(m.width).
		Padding(0, 1).
		BorderForeground(accent.GetForeground())

	if n.Body == "" {
		return frame.Render(title)
	}
	return frame.Render(title + "\n" + body)
}
