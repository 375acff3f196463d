package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/glint-ui/glint/internal/config"
	"github.com/glint-ui/glint/theme"
)

var tokensAccent string

func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.Flags().StringVar(&tokensAccent, "accent", "", "accent color to derive (e.g. #C86432)")
}

var tokensCmd = &cobra.Command{
	Use:   "tokens [light|dark|path/to/preset.yaml]",
	Short: "Print the resolved token table for a preset",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		preset := ""
		if len(args) == 1 {
			preset = args[0]
		}
		return runTokens(cmd.OutOrStdout(), cfg, preset, tokensAccent)
	},
}

// runTokens resolves every token for the requested preset and writes
// the table. An empty preset keeps the configured one; a non-builtin
// value is treated as a custom preset path.
func runTokens(out io.Writer, cfg config.Config, preset, accentHex string) error {
	if preset != "" {
		switch tag := theme.PresetTag(preset); tag {
		case theme.PresetLight, theme.PresetDark:
			cfg.Theme.DefaultPreset = tag
			cfg.Theme.CustomPresetPath = ""
		default:
			cfg.Theme.CustomPresetPath = preset
		}
	}

	svc := theme.NewService(cfg.Theme)
	if err := svc.EnsureLoaded(); err != nil {
		return err
	}

	if accentHex != "" {
		accent, err := theme.ParseColor(accentHex)
		if err != nil {
			return err
		}
		if err := svc.SetAccentColor(accent); err != nil {
			return err
		}
	}

	current := svc.CurrentPreset()
	title := string(current.Tag)
	if current.Name != "" {
		title = fmt.Sprintf("%s (%s)", current.Name, current.Tag)
	}
	fmt.Fprintf(out, "preset: %s\n\n", title)

	rows := make([][]string, 0, len(theme.Tokens()))
	for _, token := range theme.Tokens() {
		c, err := svc.Resolve(token)
		if err != nil {
			return err
		}
		rows = append(rows, []string{token.String(), c.Hex()})
	}
	return writeTable(out, []string{"TOKEN", "COLOR"}, rows)
}
