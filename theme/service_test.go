package theme

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newLoadedService(t *testing.T, cfg Config) *Service {
	t.Helper()
	svc := NewService(cfg)
	require.NoError(t, svc.EnsureLoaded())
	return svc
}

func TestResolutionTotality(t *testing.T) {
	for _, tag := range []PresetTag{PresetLight, PresetDark} {
		t.Run(string(tag), func(t *testing.T) {
			svc := newLoadedService(t, Config{DefaultPreset: PresetLight})
			require.NoError(t, svc.ApplyPreset(tag))

			for _, token := range Tokens() {
				_, err := svc.Resolve(token)
				require.NoError(t, err, "token %s must resolve", token)
			}
		})
	}
}

func TestOverrideSurvivesPresetSwap(t *testing.T) {
	svc := newLoadedService(t, Config{DefaultPreset: PresetLight})

	custom := RGB(0x12, 0x34, 0x56)
	require.NoError(t, svc.SetToken(InteractiveDefault, custom))
	require.NoError(t, svc.ApplyPreset(PresetDark))

	c, err := svc.Resolve(InteractiveDefault)
	require.NoError(t, err)
	require.Equal(t, custom, c, "override must win after preset swap")
}

func TestClearRevertsToPreset(t *testing.T) {
	svc := newLoadedService(t, Config{DefaultPreset: PresetDark})

	require.NoError(t, svc.SetToken(InteractiveDefault, RGB(1, 2, 3)))
	require.NoError(t, svc.ClearOverrides())

	c, err := svc.Resolve(InteractiveDefault)
	require.NoError(t, err)
	require.Equal(t, darkColors()[InteractiveDefault], c, "clear must revert to the preset's own value")
}

func TestAccentDerivationResolved(t *testing.T) {
	svc := newLoadedService(t, Config{DefaultPreset: PresetLight})
	require.NoError(t, svc.SetAccentColor(RGB(200, 100, 50)))

	hover, err := svc.Resolve(InteractiveHover)
	require.NoError(t, err)
	require.Equal(t, RGB(170, 85, 42), hover)

	pressed, err := svc.Resolve(InteractivePressed)
	require.NoError(t, err)
	require.Equal(t, RGB(140, 70, 35), pressed)

	link, err := svc.Resolve(LinkDefault)
	require.NoError(t, err)
	require.Equal(t, RGB(200, 100, 50), link)
}

func TestEnsureLoadedIdempotent(t *testing.T) {
	svc := NewService(Config{DefaultPreset: PresetLight})
	require.NoError(t, svc.EnsureLoaded())

	layerCount := svc.store.Len()
	names := svc.store.Names()

	require.NoError(t, svc.EnsureLoaded())
	require.Equal(t, layerCount, svc.store.Len(), "repeat load must not duplicate layers")
	require.Equal(t, names, svc.store.Names())
}

func TestPresetChangeNotification(t *testing.T) {
	t.Run("builtin swap", func(t *testing.T) {
		svc := newLoadedService(t, Config{DefaultPreset: PresetLight})

		var changes []PresetChange
		require.NoError(t, svc.SubscribeFunc("test", func(c PresetChange) {
			changes = append(changes, c)
		}))

		require.NoError(t, svc.ApplyPreset(PresetDark))
		require.Len(t, changes, 1, "exactly one notification per apply")
		require.Equal(t, PresetLight, changes[0].Old.Tag)
		require.Equal(t, PresetDark, changes[0].New.Tag)
	})

	t.Run("custom preset carries display name", func(t *testing.T) {
		svc := newLoadedService(t, Config{DefaultPreset: PresetLight})

		path := filepath.Join(t.TempDir(), "ocean.yaml")
		require.NoError(t, os.WriteFile(path, []byte("colors:\n  text-primary: \"#D8E8EE\"\n"), 0o644))

		var got PresetChange
		require.NoError(t, svc.SubscribeFunc("test", func(c PresetChange) { got = c }))

		require.NoError(t, svc.ApplyCustomPreset(path, "Ocean"))
		require.Equal(t, PresetCustom, got.New.Tag)
		require.Equal(t, "Ocean", got.New.Name)
		require.Equal(t, path, got.New.Source)
	})

	t.Run("unsubscribe stops delivery", func(t *testing.T) {
		svc := newLoadedService(t, Config{DefaultPreset: PresetLight})

		count := 0
		require.NoError(t, svc.SubscribeFunc("test", func(PresetChange) { count++ }))
		require.NoError(t, svc.Unsubscribe("test"))
		require.NoError(t, svc.ApplyPreset(PresetDark))
		require.Zero(t, count)
	})

	t.Run("duplicate subscriber id rejected", func(t *testing.T) {
		svc := newLoadedService(t, Config{DefaultPreset: PresetLight})
		require.NoError(t, svc.SubscribeFunc("dup", func(PresetChange) {}))
		require.ErrorIs(t, svc.SubscribeFunc("dup", func(PresetChange) {}), ErrSubscriberExists)
	})
}

func TestOffGoroutineMutationRejected(t *testing.T) {
	svc := newLoadedService(t, Config{DefaultPreset: PresetLight})

	errCh := make(chan error, 1)
	go func() {
		errCh <- svc.SetToken(InteractiveDefault, RGB(1, 2, 3))
	}()

	err := <-errCh
	require.ErrorIs(t, err, ErrWrongGoroutine)
	require.Zero(t, svc.overrides.Len(), "override set must be unchanged")

	t.Run("reads stay allowed", func(t *testing.T) {
		done := make(chan Preset, 1)
		go func() { done <- svc.CurrentPreset() }()
		require.Equal(t, PresetLight, (<-done).Tag)
	})
}

func TestCurrentPresetBeforeLoad(t *testing.T) {
	svc := NewService(Config{DefaultPreset: PresetDark})
	require.Equal(t, PresetDark, svc.CurrentPreset().Tag)

	t.Run("custom path wins as initial source", func(t *testing.T) {
		svc := NewService(Config{DefaultPreset: PresetDark, CustomPresetPath: "/tmp/x.yaml"})
		p := svc.CurrentPreset()
		require.Equal(t, PresetCustom, p.Tag)
		require.Equal(t, "/tmp/x.yaml", p.Source)
	})
}

func TestConfigAppliedAtLoad(t *testing.T) {
	accent := RGB(200, 100, 50)
	svc := newLoadedService(t, Config{
		DefaultPreset: PresetDark,
		AccentColor:   &accent,
		TokenOverrides: map[Token]Color{
			BorderFocus: RGB(9, 9, 9),
		},
		IncludeLegacyCompat: true,
	})

	hover, err := svc.Resolve(InteractiveHover)
	require.NoError(t, err)
	require.Equal(t, RGB(170, 85, 42), hover, "config accent applied after preset")

	border, err := svc.Resolve(BorderFocus)
	require.NoError(t, err)
	require.Equal(t, RGB(9, 9, 9), border, "config overrides applied last")
}

func TestBrokenCustomPresetFailsLoad(t *testing.T) {
	svc := NewService(Config{CustomPresetPath: filepath.Join(t.TempDir(), "missing.yaml")})

	var loadErr *PresetLoadError
	err := svc.EnsureLoaded()
	require.Error(t, err)
	require.True(t, errors.As(err, &loadErr))
}

func TestBrushSynchronization(t *testing.T) {
	svc := newLoadedService(t, Config{DefaultPreset: PresetLight})

	brush := svc.Brushes().Get(InteractiveDefault)
	require.NotNil(t, brush)
	require.Equal(t, lightColors()[InteractiveDefault], brush.Color())

	require.NoError(t, svc.ApplyPreset(PresetDark))

	// Same handle, new color: brushes mutate in place.
	require.Same(t, brush, svc.Brushes().Get(InteractiveDefault))
	require.Equal(t, darkColors()[InteractiveDefault], brush.Color())
}

type recordingTarget struct {
	resyncs int
}

func (r *recordingTarget) Resync(*BrushSet) { r.resyncs++ }

func TestSyncTargetNotified(t *testing.T) {
	svc := newLoadedService(t, Config{DefaultPreset: PresetLight})

	target := &recordingTarget{}
	require.NoError(t, svc.RegisterSyncTarget(target))
	require.Equal(t, 1, target.resyncs, "registration resyncs immediately")

	require.NoError(t, svc.SetToken(TextPrimary, RGB(1, 1, 1)))
	require.Equal(t, 2, target.resyncs)

	require.NoError(t, svc.ClearOverrides())
	require.Equal(t, 3, target.resyncs)
}
