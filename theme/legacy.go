package theme

// Variant is the two-value theme enum of the pre-token API.
type Variant string

// Legacy theme variants.
const (
	VariantLight Variant = "light"
	VariantDark  Variant = "dark"
)

// Legacy maps the old single-property theme API onto the service. It
// holds no state of its own: reads and writes pass straight through,
// and its change event is a field-by-field translation of the
// service's preset-changed notification.
type Legacy struct {
	svc *Service
}

// NewLegacy wraps a theme service in the legacy two-value API.
func NewLegacy(svc *Service) *Legacy {
	return &Legacy{svc: svc}
}

// CurrentTheme returns the active preset collapsed to a variant. Custom
// presets report as dark; the old API has no third value.
func (l *Legacy) CurrentTheme() Variant {
	return variantOf(l.svc.CurrentPreset())
}

// SetTheme applies the built-in preset for a variant.
func (l *Legacy) SetTheme(v Variant) error {
	switch v {
	case VariantLight:
		return l.svc.ApplyPreset(PresetLight)
	default:
		return l.svc.ApplyPreset(PresetDark)
	}
}

// OnThemeChanged registers a change callback under an id. The callback
// receives the old and new variants translated from the service's own
// notification.
func (l *Legacy) OnThemeChanged(id string, fn func(old, new Variant)) error {
	return l.svc.SubscribeFunc(id, func(change PresetChange) {
		fn(variantOf(change.Old), variantOf(change.New))
	})
}

// RemoveThemeChanged unregisters a change callback.
func (l *Legacy) RemoveThemeChanged(id string) error {
	return l.svc.Unsubscribe(id)
}

func variantOf(p Preset) Variant {
	if p.Tag == PresetLight {
		return VariantLight
	}
	return VariantDark
}
