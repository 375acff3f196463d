package theme

// Config is the startup configuration for the theme service. It is read
// once at construction; all later changes go through the service's
// operations.
type Config struct {
	// DefaultPreset is the built-in preset applied at load.
	// Default: PresetLight.
	DefaultPreset PresetTag

	// AccentColor, when set, is applied as an accent derivation
	// immediately after the initial preset load.
	AccentColor *Color

	// CustomPresetPath, when set, overrides DefaultPreset as the
	// initial preset source.
	CustomPresetPath string

	// TokenOverrides are applied as individual overrides after the
	// initial preset and accent.
	TokenOverrides map[Token]Color

	// IncludeLegacyCompat loads the legacy alias layer beneath the
	// active preset.
	IncludeLegacyCompat bool
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() Config {
	return Config{DefaultPreset: PresetLight}
}
