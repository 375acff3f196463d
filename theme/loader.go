package theme

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/glint-ui/glint/internal/logging"
)

// PresetLoadError is returned when a custom preset source is unreachable
// or malformed. Nothing from a broken preset is ever applied.
type PresetLoadError struct {
	Source string
	Err    error
}

func (e *PresetLoadError) Error() string {
	return fmt.Sprintf("load preset %s: %v", e.Source, e.Err)
}

func (e *PresetLoadError) Unwrap() error { return e.Err }

// presetFile is the on-disk shape of a custom preset: a display name
// plus a flat token-name -> hex-color mapping.
type presetFile struct {
	Name   string            `yaml:"name"`
	Colors map[string]string `yaml:"colors"`
}

// Loader loads built-in and custom presets into layers.
type Loader struct {
	logger zerolog.Logger
}

// NewLoader creates a preset loader.
func NewLoader() *Loader {
	return &Loader{logger: logging.Component("theme-loader")}
}

// Load resolves an identifier to a preset layer. A built-in tag loads
// that preset; anything else is treated as a custom preset path.
func (l *Loader) Load(identifier string) (*Layer, Preset, error) {
	switch tag := PresetTag(identifier); tag {
	case PresetLight, PresetDark:
		layer, err := l.LoadBuiltin(tag)
		if err != nil {
			return nil, Preset{}, err
		}
		return layer, Preset{Tag: tag}, nil
	}
	layer, name, err := l.LoadCustom(identifier)
	if err != nil {
		return nil, Preset{}, err
	}
	return layer, Preset{Tag: PresetCustom, Name: name, Source: identifier}, nil
}

// LoadBuiltin returns the layer for a built-in preset tag.
func (l *Loader) LoadBuiltin(tag PresetTag) (*Layer, error) {
	colors, ok := builtinPresets[tag]
	if !ok {
		return nil, &PresetLoadError{
			Source: string(tag),
			Err:    fmt.Errorf("no built-in preset with tag %q", tag),
		}
	}
	layer := NewLayer("preset-"+string(tag), colors())
	l.validate(string(tag), layer)
	return layer, nil
}

// LoadCustom reads a custom preset from a YAML file. The file's display
// name is returned alongside the layer. Unknown token names and
// unparseable colors fail the whole load; missing token names are
// reported as warnings only.
func (l *Loader) LoadCustom(path string) (*Layer, string, error) {
	if strings.TrimSpace(path) == "" {
		return nil, "", &PresetLoadError{Source: path, Err: fmt.Errorf("preset path is required")}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", &PresetLoadError{Source: path, Err: err}
	}

	var file presetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, "", &PresetLoadError{Source: path, Err: err}
	}
	if len(file.Colors) == 0 {
		return nil, "", &PresetLoadError{Source: path, Err: fmt.Errorf("preset defines no colors")}
	}

	colors := make(map[Token]Color, len(file.Colors))
	for name, hex := range file.Colors {
		token, err := ParseToken(name)
		if err != nil {
			return nil, "", &PresetLoadError{Source: path, Err: err}
		}
		color, err := ParseColor(hex)
		if err != nil {
			return nil, "", &PresetLoadError{Source: path, Err: fmt.Errorf("token %s: %w", token, err)}
		}
		colors[token] = color
	}

	name := strings.TrimSpace(file.Name)
	layer := NewLayer("preset-custom", colors)
	l.validate(path, layer)
	return layer, name, nil
}

// validate checks a preset layer against the closed token set. Missing
// names are non-fatal: lower layers keep resolution total, but a custom
// preset that forgets a role should be caught during development.
func (l *Loader) validate(source string, layer *Layer) {
	var missing []string
	for _, t := range Tokens() {
		if _, ok := layer.lookup(t); !ok {
			missing = append(missing, t.String())
		}
	}
	if len(missing) > 0 {
		l.logger.Warn().
			Str("preset", source).
			Strs("missing", missing).
			Msg("preset does not cover the full token set")
	}
}
