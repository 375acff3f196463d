package theme

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/glint-ui/glint/internal/logging"
)

// Service errors.
var (
	// ErrWrongGoroutine is returned when a mutating operation is called
	// off the goroutine that loaded the service. Mutations are never
	// marshaled or queued; the caller made a programming error.
	ErrWrongGoroutine = errors.New("theme mutation off the owning goroutine")

	// ErrSubscriberExists is returned when a subscription id is already
	// registered.
	ErrSubscriberExists = errors.New("subscriber id already registered")

	// ErrSubscriberNotFound is returned when unsubscribing an unknown id.
	ErrSubscriberNotFound = errors.New("subscriber id not registered")
)

// PresetChange is the notification emitted after the active preset is
// replaced. New.Name carries the custom display name when the new
// preset is custom.
type PresetChange struct {
	Old Preset
	New Preset
}

// Service is the theme facade: it owns the layer stack, the override
// set, and the brush synchronizer, and funnels every mutation through
// one surface. One instance exists per application; construct it at the
// composition root and pass it to consumers.
//
// Mutating operations are single-goroutine: the goroutine that loads
// the service owns it, and mutations from any other goroutine fail
// with ErrWrongGoroutine. CurrentPreset is safe to read from anywhere.
type Service struct {
	cfg    Config
	logger zerolog.Logger
	loader *Loader

	store     *LayerStack
	overrides *Overrides
	syncer    *Synchronizer

	presetLayer *Layer

	mu      sync.RWMutex // guards loaded, owner, current for cross-goroutine reads
	loaded  bool
	owner   uint64
	current Preset

	subsMu sync.Mutex
	subs   map[string]func(PresetChange)
}

// NewService creates an unloaded theme service. The first operation
// (or an explicit EnsureLoaded) builds the layer stack and binds the
// calling goroutine as owner.
func NewService(cfg Config) *Service {
	if cfg.DefaultPreset == "" {
		cfg.DefaultPreset = DefaultConfig().DefaultPreset
	}
	return &Service{
		cfg:       cfg,
		logger:    logging.Component("theme"),
		loader:    NewLoader(),
		store:     NewLayerStack(),
		overrides: NewOverrides(),
		syncer:    NewSynchronizer(),
		subs:      make(map[string]func(PresetChange)),
	}
}

// EnsureLoaded transitions the service from Unloaded to Loaded. The
// first call builds the stack, applies the configured preset, accent,
// and overrides, and runs a synchronization pass. Repeat calls are
// no-ops. Every other operation triggers this implicitly.
func (s *Service) EnsureLoaded() error {
	s.mu.Lock()
	if s.loaded {
		owner := s.owner
		s.mu.Unlock()
		if goroutineID() != owner {
			return ErrWrongGoroutine
		}
		return nil
	}
	s.owner = goroutineID()
	s.mu.Unlock()

	return s.load()
}

func (s *Service) load() error {
	// Resolve the initial preset first so a broken custom preset fails
	// the whole load with nothing applied.
	var (
		layer   *Layer
		initial Preset
	)
	if s.cfg.CustomPresetPath != "" {
		l, name, err := s.loader.LoadCustom(s.cfg.CustomPresetPath)
		if err != nil {
			return err
		}
		layer = l
		initial = Preset{Tag: PresetCustom, Name: name, Source: s.cfg.CustomPresetPath}
	} else {
		l, err := s.loader.LoadBuiltin(s.cfg.DefaultPreset)
		if err != nil {
			return err
		}
		layer = l
		initial = Preset{Tag: s.cfg.DefaultPreset}
	}

	s.store.Push(primitivesLayer())
	s.store.Push(baseSemanticsLayer())
	if s.cfg.IncludeLegacyCompat {
		s.store.Push(legacyAliasLayer())
	}
	s.store.Push(layer)
	s.presetLayer = layer
	s.store.Push(s.overrides.Layer())

	if s.cfg.AccentColor != nil {
		s.overrides.SetAll(DeriveAccent(*s.cfg.AccentColor).tokens())
	}
	if len(s.cfg.TokenOverrides) > 0 {
		s.overrides.SetAll(s.cfg.TokenOverrides)
	}

	if err := s.syncer.SyncAll(s.store.Resolve); err != nil {
		return err
	}

	s.mu.Lock()
	s.loaded = true
	s.current = initial
	s.mu.Unlock()

	s.logger.Debug().
		Str("preset", string(initial.Tag)).
		Strs("layers", s.store.Names()).
		Msg("theme service loaded")
	return nil
}

// ApplyPreset replaces the active preset with a built-in one. Runtime
// overrides survive the swap. Emits a preset-changed notification.
func (s *Service) ApplyPreset(tag PresetTag) error {
	if err := s.EnsureLoaded(); err != nil {
		return err
	}
	layer, err := s.loader.LoadBuiltin(tag)
	if err != nil {
		return err
	}
	return s.installPreset(layer, Preset{Tag: tag})
}

// ApplyCustomPreset replaces the active preset with one loaded from a
// locator. displayName, when non-empty, overrides the name declared in
// the preset file. A load failure leaves the current preset in place.
func (s *Service) ApplyCustomPreset(locator, displayName string) error {
	if err := s.EnsureLoaded(); err != nil {
		return err
	}
	layer, fileName, err := s.loader.LoadCustom(locator)
	if err != nil {
		return err
	}
	name := displayName
	if name == "" {
		name = fileName
	}
	return s.installPreset(layer, Preset{Tag: PresetCustom, Name: name, Source: locator})
}

// installPreset swaps the preset layer, keeping the override layer
// topmost: remove overrides, replace preset, re-append overrides.
func (s *Service) installPreset(layer *Layer, preset Preset) error {
	s.store.Remove(s.overrides.Layer())
	s.store.Replace(s.presetLayer, layer)
	s.store.Push(s.overrides.Layer())
	s.presetLayer = layer

	s.mu.Lock()
	old := s.current
	s.current = preset
	s.mu.Unlock()

	if err := s.syncer.SyncAll(s.store.Resolve); err != nil {
		return err
	}

	s.logger.Info().
		Str("old", string(old.Tag)).
		Str("new", string(preset.Tag)).
		Str("name", preset.Name).
		Msg("preset applied")
	s.notify(PresetChange{Old: old, New: preset})
	return nil
}

// SetToken records a runtime override for one token and resynchronizes
// brushes. The override wins over any preset until ClearOverrides.
func (s *Service) SetToken(t Token, c Color) error {
	if err := s.EnsureLoaded(); err != nil {
		return err
	}
	if !t.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownToken, t)
	}
	s.overrides.Set(t, c)
	return s.syncer.SyncAll(s.store.Resolve)
}

// SetTokenHex parses hex color text and records it as an override.
// Malformed text returns ErrInvalidColorFormat with nothing applied.
func (s *Service) SetTokenHex(t Token, hex string) error {
	c, err := ParseColor(hex)
	if err != nil {
		return err
	}
	return s.SetToken(t, c)
}

// SetAccentColor derives the interactive and link variants from base
// and records them as a batch of overrides. The derivation is
// re-applied on every call, not persisted, and is cleared together with
// all other overrides.
func (s *Service) SetAccentColor(base Color) error {
	if err := s.EnsureLoaded(); err != nil {
		return err
	}
	s.overrides.SetAll(DeriveAccent(base).tokens())
	return s.syncer.SyncAll(s.store.Resolve)
}

// ClearOverrides removes every runtime override atomically, reverting
// all overridden tokens to their preset values. There is no per-key
// removal.
func (s *Service) ClearOverrides() error {
	if err := s.EnsureLoaded(); err != nil {
		return err
	}
	s.overrides.Clear()
	return s.syncer.SyncAll(s.store.Resolve)
}

// Resolve returns the current color for a token, loading the service
// first if needed.
func (s *Service) Resolve(t Token) (Color, error) {
	if err := s.EnsureLoaded(); err != nil {
		return Color{}, err
	}
	return s.store.Resolve(t)
}

// CurrentPreset returns the active preset, or the configured default
// before loading. Safe from any goroutine.
func (s *Service) CurrentPreset() Preset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.loaded {
		return s.current
	}
	if s.cfg.CustomPresetPath != "" {
		return Preset{Tag: PresetCustom, Source: s.cfg.CustomPresetPath}
	}
	return Preset{Tag: s.cfg.DefaultPreset}
}

// Brushes returns the brush table for consumers that read colors on
// demand instead of registering a SyncTarget.
func (s *Service) Brushes() *BrushSet {
	return s.syncer.Brushes()
}

// RegisterSyncTarget loads the service if needed, registers the target,
// and resynchronizes it immediately so it starts current.
func (s *Service) RegisterSyncTarget(t SyncTarget) error {
	if err := s.EnsureLoaded(); err != nil {
		return err
	}
	s.syncer.AddTarget(t)
	t.Resync(s.syncer.Brushes())
	return nil
}

// SubscribeFunc registers a preset-change callback under an id.
func (s *Service) SubscribeFunc(id string, fn func(PresetChange)) error {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	if _, ok := s.subs[id]; ok {
		return fmt.Errorf("%w: %q", ErrSubscriberExists, id)
	}
	s.subs[id] = fn
	return nil
}

// Unsubscribe removes a preset-change callback.
func (s *Service) Unsubscribe(id string) error {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	if _, ok := s.subs[id]; !ok {
		return fmt.Errorf("%w: %q", ErrSubscriberNotFound, id)
	}
	delete(s.subs, id)
	return nil
}

func (s *Service) notify(change PresetChange) {
	s.subsMu.Lock()
	fns := make([]func(PresetChange), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subsMu.Unlock()

	for _, fn := range fns {
		fn(change)
	}
}
