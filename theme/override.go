package theme

// Overrides owns the topmost layer of the stack: caller-set token values
// that win over any preset. Entries are set individually but removed
// only en masse; there is deliberately no per-key removal. Callers that
// need partial rollback must capture pre-override state themselves.
type Overrides struct {
	layer *Layer
}

// NewOverrides creates an empty override set.
func NewOverrides() *Overrides {
	return &Overrides{layer: NewLayer(layerOverrides, nil)}
}

// Layer returns the override layer for stack placement. The layer
// identity is stable across Set and Clear.
func (o *Overrides) Layer() *Layer { return o.layer }

// Set records an override for a token. Last write wins. The token does
// not need to be defined by any lower layer, though introducing a
// net-new name breaks the closed-set guarantee for consumers.
func (o *Overrides) Set(t Token, c Color) {
	o.layer.set(t, c)
}

// SetAll records a batch of overrides.
func (o *Overrides) SetAll(colors map[Token]Color) {
	for t, c := range colors {
		o.layer.set(t, c)
	}
}

// Get returns the current override for a token, if any.
func (o *Overrides) Get(t Token) (Color, bool) {
	return o.layer.lookup(t)
}

// Len returns the number of active overrides.
func (o *Overrides) Len() int { return o.layer.Len() }

// Clear removes every override atomically.
func (o *Overrides) Clear() {
	o.layer.clear()
}
