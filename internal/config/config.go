// Package config loads glint's startup configuration file.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/glint-ui/glint/theme"
)

// Config is the full application configuration.
type Config struct {
	Theme    theme.Config
	LogLevel string
	PrefsDB  string
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Theme:    theme.DefaultConfig(),
		LogLevel: "info",
	}
}

// Load reads a YAML configuration file. An empty path returns the
// defaults. Color and preset values are validated here so a bad config
// fails at startup, not at first render.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("preset", string(theme.PresetLight))
	v.SetDefault("log_level", "info")

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.LogLevel = v.GetString("log_level")
	cfg.PrefsDB = v.GetString("prefs_db")
	cfg.Theme.IncludeLegacyCompat = v.GetBool("legacy_compat")
	cfg.Theme.CustomPresetPath = v.GetString("custom_preset")

	switch tag := theme.PresetTag(v.GetString("preset")); tag {
	case theme.PresetLight, theme.PresetDark:
		cfg.Theme.DefaultPreset = tag
	default:
		return Config{}, fmt.Errorf("config %s: unknown preset %q", path, tag)
	}

	if accent := v.GetString("accent"); accent != "" {
		c, err := theme.ParseColor(accent)
		if err != nil {
			return Config{}, fmt.Errorf("config %s: accent: %w", path, err)
		}
		cfg.Theme.AccentColor = &c
	}

	if overrides := v.GetStringMapString("overrides"); len(overrides) > 0 {
		cfg.Theme.TokenOverrides = make(map[theme.Token]theme.Color, len(overrides))
		for name, hex := range overrides {
			token, err := theme.ParseToken(name)
			if err != nil {
				return Config{}, fmt.Errorf("config %s: overrides: %w", path, err)
			}
			c, err := theme.ParseColor(hex)
			if err != nil {
				return Config{}, fmt.Errorf("config %s: override %s: %w", path, name, err)
			}
			cfg.Theme.TokenOverrides[token] = c
		}
	}

	return cfg, nil
}
