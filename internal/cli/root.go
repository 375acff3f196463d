// Package cli implements the glint command line: a themed component
// preview and token inspection tools.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/glint-ui/glint/internal/config"
	"github.com/glint-ui/glint/internal/logging"
)

var (
	cfgPath  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:           "glint",
	Short:         "Themed dialog and notification components for terminal UIs",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (overrides config)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the configuration file and applies logging setup.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return config.Config{}, err
	}
	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	logging.Setup(level, true)
	return cfg, nil
}
