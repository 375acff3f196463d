package theme

// PresetTag identifies the source of the active preset.
type PresetTag string

// Built-in preset tags.
const (
	PresetLight  PresetTag = "light"
	PresetDark   PresetTag = "dark"
	PresetCustom PresetTag = "custom"
)

// Preset describes the active preset: a built-in tag, or a custom
// mapping identified by its source locator and optional display name.
type Preset struct {
	Tag    PresetTag
	Name   string // display name; set for custom presets
	Source string // locator the preset was loaded from; empty for built-ins
}

// Layer names in the fixed stack order.
const (
	layerPrimitives = "primitives"
	layerBase       = "base-semantics"
	layerLegacy     = "legacy-aliases"
	layerOverrides  = "overrides"
)

// primitivesLayer holds the raw neutral ramp the semantic layers draw
// from. It sits at the bottom of the stack and is never swapped.
func primitivesLayer() *Layer {
	return NewLayer(layerPrimitives, map[Token]Color{
		NeutralLow:  MustColor("#F4F5F7"),
		NeutralMid:  MustColor("#9AA3AF"),
		NeutralHigh: MustColor("#1F2733"),
		Shadow:      MustColor("#66000000"),
	})
}

// baseSemanticsLayer is the light-default semantic mapping. It defines
// the full closed set so resolution stays total even under an
// incomplete custom preset.
func baseSemanticsLayer() *Layer {
	return NewLayer(layerBase, lightColors())
}

// legacyAliasLayer carries the close-button roles of the pre-token API,
// aliased onto the text ramp. Loaded only when Config.IncludeLegacyCompat
// is set; sits beneath the active preset so any preset value wins.
func legacyAliasLayer() *Layer {
	return NewLayer(layerLegacy, map[Token]Color{
		CloseDefault: MustColor("#6B7280"),
		CloseHover:   MustColor("#374151"),
		ClosePressed: MustColor("#111827"),
	})
}

func lightColors() map[Token]Color {
	return map[Token]Color{
		SurfaceWindow:       MustColor("#FFFFFF"),
		SurfacePanel:        MustColor("#F7F8FA"),
		SurfaceOverlay:      MustColor("#EDEFF3"),
		SurfaceInput:        MustColor("#FFFFFF"),
		TextPrimary:         MustColor("#111827"),
		TextSecondary:       MustColor("#374151"),
		TextMuted:           MustColor("#6B7280"),
		TextDisabled:        MustColor("#9CA3AF"),
		TextOnAccent:        MustColor("#FFFFFF"),
		InteractiveDefault:  MustColor("#2563EB"),
		InteractiveHover:    MustColor("#1F54C8"),
		InteractivePressed:  MustColor("#1A45A5"),
		InteractiveDisabled: MustColor("#BFD0F5"),
		NeutralLow:          MustColor("#F4F5F7"),
		NeutralMid:          MustColor("#9AA3AF"),
		NeutralHigh:         MustColor("#1F2733"),
		StatusSuccess:       MustColor("#178344"),
		StatusWarning:       MustColor("#B45309"),
		StatusError:         MustColor("#DC2626"),
		StatusInfo:          MustColor("#0369A1"),
		BorderDefault:       MustColor("#D1D5DB"),
		BorderFocus:         MustColor("#2563EB"),
		Shadow:              MustColor("#66000000"),
		LinkDefault:         MustColor("#2563EB"),
		LinkHover:           MustColor("#1F54C8"),
		CloseDefault:        MustColor("#6B7280"),
		CloseHover:          MustColor("#374151"),
		ClosePressed:        MustColor("#111827"),
	}
}

func darkColors() map[Token]Color {
	return map[Token]Color{
		SurfaceWindow:       MustColor("#0B0F14"),
		SurfacePanel:        MustColor("#121821"),
		SurfaceOverlay:      MustColor("#1A2230"),
		SurfaceInput:        MustColor("#101620"),
		TextPrimary:         MustColor("#E6EDF3"),
		TextSecondary:       MustColor("#B9C4D0"),
		TextMuted:           MustColor("#8B9AAE"),
		TextDisabled:        MustColor("#5B6878"),
		TextOnAccent:        MustColor("#0B0F14"),
		InteractiveDefault:  MustColor("#5B8DEF"),
		InteractiveHover:    MustColor("#4D78CB"),
		InteractivePressed:  MustColor("#4063A7"),
		InteractiveDisabled: MustColor("#2A3A57"),
		NeutralLow:          MustColor("#121821"),
		NeutralMid:          MustColor("#334052"),
		NeutralHigh:         MustColor("#D4DCE5"),
		StatusSuccess:       MustColor("#3FB950"),
		StatusWarning:       MustColor("#D29922"),
		StatusError:         MustColor("#F85149"),
		StatusInfo:          MustColor("#58A6FF"),
		BorderDefault:       MustColor("#223043"),
		BorderFocus:         MustColor("#7AA2F7"),
		Shadow:              MustColor("#99000000"),
		LinkDefault:         MustColor("#58A6FF"),
		LinkHover:           MustColor("#4B8DD9"),
		CloseDefault:        MustColor("#8B9AAE"),
		CloseHover:          MustColor("#B9C4D0"),
		ClosePressed:        MustColor("#E6EDF3"),
	}
}

var builtinPresets = map[PresetTag]func() map[Token]Color{
	PresetLight: lightColors,
	PresetDark:  darkColors,
}
