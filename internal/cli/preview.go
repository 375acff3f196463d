package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/glint-ui/glint/dialog"
	"github.com/glint-ui/glint/internal/logging"
	"github.com/glint-ui/glint/internal/prefs"
	"github.com/glint-ui/glint/styles"
	"github.com/glint-ui/glint/theme"
	"github.com/glint-ui/glint/toast"
)

func init() {
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Launch the themed component showcase",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runPreview(cfg.Theme, cfg.PrefsDB)
	},
}

var accentCycle = []theme.Color{
	theme.RGB(0xC8, 0x64, 0x32),
	theme.RGB(0x3F, 0xB9, 0x50),
	theme.RGB(0x7D, 0x56, 0xF4),
	theme.RGB(0x25, 0x63, 0xEB),
}

type activeDialog int

const (
	dialogNone activeDialog = iota
	dialogMessage
	dialogConfirm
	dialogProgress
)

type previewModel struct {
	svc    *theme.Service
	legacy *theme.Legacy
	styles *styles.Styles
	toasts toast.Model
	store  *prefs.Store

	active   activeDialog
	message  dialog.Message
	confirm  dialog.Confirm
	progress dialog.Progress

	accentIdx  int
	lastAccent string
	width      int
	height     int
}

type progressTickMsg struct{}

func runPreview(themeCfg theme.Config, prefsDB string) error {
	svc := theme.NewService(themeCfg)
	if err := svc.EnsureLoaded(); err != nil {
		return err
	}

	var store *prefs.Store
	if prefsDB != "" {
		s, err := prefs.Open(prefsDB)
		if err != nil {
			return err
		}
		defer s.Close()
		store = s

		snap, err := s.Load(context.Background())
		switch {
		case errors.Is(err, prefs.ErrNoSnapshot):
		case err != nil:
			return err
		default:
			if err := prefs.Restore(svc, snap); err != nil {
				return err
			}
		}
	}

	styleSet, err := styles.New(svc)
	if err != nil {
		return err
	}

	m := previewModel{
		svc:    svc,
		legacy: theme.NewLegacy(svc),
		styles: styleSet,
		toasts: toast.New(styleSet),
		store:  store,
	}

	// The update loop runs on this goroutine, which loaded the service,
	// so theme mutations inside Update stay on the owner.
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m previewModel) Init() tea.Cmd { return nil }

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.toasts, _ = m.toasts.Update(msg)
		return m, nil

	case dialog.CloseMsg:
		m.active = dialogNone
		return m, nil

	case confirmSwitchMsg:
		var cmd tea.Cmd
		if err := m.svc.ApplyPreset(theme.PresetDark); err == nil {
			cmd = m.toasts.Push(toast.LevelSuccess, "Preset applied", "dark")
		}
		return m, cmd

	case progressTickMsg:
		if m.active != dialogProgress || m.progress.Done() {
			return m, nil
		}
		next := m.progress.Percent() + 0.1
		if next >= 1 {
			m.progress, _ = m.progress.Update(dialog.ProgressDoneMsg{})
			return m, nil
		}
		m.progress, _ = m.progress.Update(dialog.ProgressMsg{
			Percent: next,
			Label:   fmt.Sprintf("step %d of 10", int(next*10)),
		})
		return m, progressTick()
	}

	if m.active != dialogNone {
		return m.updateDialog(msg)
	}

	var cmds []tea.Cmd
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "ctrl+c":
			return m, tea.Sequence(m.saveSnapshot(), tea.Quit)
		case "t":
			old := m.legacy.CurrentTheme()
			next := theme.VariantDark
			if old == theme.VariantDark {
				next = theme.VariantLight
			}
			if err := m.legacy.SetTheme(next); err != nil {
				cmds = append(cmds, m.toasts.Push(toast.LevelError, "Theme switch failed", err.Error()))
			} else {
				cmds = append(cmds, m.toasts.Push(toast.LevelInfo, "Theme changed",
					fmt.Sprintf("%s -> %s", old, next)))
			}
		case "a":
			accent := accentCycle[m.accentIdx%len(accentCycle)]
			m.accentIdx++
			if err := m.svc.SetAccentColor(accent); err != nil {
				cmds = append(cmds, m.toasts.Push(toast.LevelError, "Accent failed", err.Error()))
			} else {
				m.lastAccent = accent.Hex()
				cmds = append(cmds, m.toasts.Push(toast.LevelSuccess, "Accent applied", accent.Hex()))
			}
		case "c":
			if err := m.svc.ClearOverrides(); err == nil {
				m.lastAccent = ""
				cmds = append(cmds, m.toasts.Push(toast.LevelInfo, "Overrides cleared", ""))
			}
		case "m":
			m.message = dialog.NewMessage(m.styles, "About glint", "Themed dialogs and toasts for Bubble Tea.")
			m.message, _ = m.message.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
			m.active = dialogMessage
		case "y":
			m.confirm = dialog.NewConfirm(m.styles, "Switch to the dark preset?",
				func() tea.Msg { return confirmSwitchMsg{} }, nil)
			m.confirm, _ = m.confirm.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
			m.active = dialogConfirm
		case "p":
			m.progress = dialog.NewProgress(m.styles, "Working", "step 0 of 10")
			m.progress, _ = m.progress.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
			m.active = dialogProgress
			cmds = append(cmds, progressTick())
		case "s":
			cmds = append(cmds, m.toasts.Push(toast.LevelWarning, "Heads up", "this toast expires shortly"))
		}
	}

	var cmd tea.Cmd
	m.toasts, cmd = m.toasts.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

type confirmSwitchMsg struct{}

func (m previewModel) updateDialog(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.active {
	case dialogMessage:
		m.message, cmd = m.message.Update(msg)
	case dialogConfirm:
		m.confirm, cmd = m.confirm.Update(msg)
	case dialogProgress:
		m.progress, cmd = m.progress.Update(msg)
	}
	return m, cmd
}

func (m previewModel) saveSnapshot() tea.Cmd {
	if m.store == nil {
		return nil
	}
	snap := prefs.Capture(m.svc, m.lastAccent, nil)
	return func() tea.Msg {
		if err := m.store.Save(context.Background(), snap); err != nil {
			logger := logging.Component("preview")
			logger.Error().Err(err).Msg("saving theme snapshot failed")
		}
		return nil
	}
}

func progressTick() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(time.Time) tea.Msg {
		return progressTickMsg{}
	})
}

func (m previewModel) View() string {
	s := m.styles

	if m.active != dialogNone {
		switch m.active {
		case dialogMessage:
			return m.message.View()
		case dialogConfirm:
			return m.confirm.View()
		case dialogProgress:
			return m.progress.View()
		}
	}

	preset := m.svc.CurrentPreset()
	name := string(preset.Tag)
	if preset.Name != "" {
		name = preset.Name
	}

	header := s.Title.Render("glint preview") + "  " + s.Muted.Render("preset: "+name)
	help := s.Muted.Render("t theme  a accent  c clear  m message  y confirm  p progress  s toast  q quit")

	swatches := make([]string, 0, 8)
	for _, token := range []theme.Token{
		theme.InteractiveDefault, theme.InteractiveHover, theme.InteractivePressed,
		theme.StatusSuccess, theme.StatusWarning, theme.StatusError, theme.StatusInfo,
	} {
		b := m.svc.Brushes().Get(token)
		chip := lipgloss.NewStyle().Background(b.Lipgloss()).Render("   ")
		swatches = append(swatches, chip+" "+s.Secondary.Render(token.String()))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, swatches...)
	content := lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", help)

	if toasts := m.toasts.View(); toasts != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, content, "", toasts)
	}
	return content
}
