package theme

import "fmt"

// Layer is one named contributor to the resolved theme: an ordered
// mapping of token to color. Layers are partial; only the stack as a
// whole is required to be total.
type Layer struct {
	name   string
	colors map[Token]Color
}

// NewLayer builds a layer from a token mapping. The mapping is copied.
func NewLayer(name string, colors map[Token]Color) *Layer {
	c := make(map[Token]Color, len(colors))
	for t, v := range colors {
		c[t] = v
	}
	return &Layer{name: name, colors: c}
}

// Name returns the layer's display name.
func (l *Layer) Name() string { return l.name }

// Len returns the number of tokens the layer defines.
func (l *Layer) Len() int { return len(l.colors) }

func (l *Layer) lookup(t Token) (Color, bool) {
	c, ok := l.colors[t]
	return c, ok
}

func (l *Layer) set(t Token, c Color) { l.colors[t] = c }

func (l *Layer) clear() { l.colors = make(map[Token]Color) }

// LayerStack is an ordered list of layers, lowest to highest priority.
// Resolution scans from the top of the stack and returns the first
// definition found.
type LayerStack struct {
	layers []*Layer
}

// NewLayerStack returns an empty stack.
func NewLayerStack() *LayerStack {
	return &LayerStack{}
}

// Push appends a layer as the new highest-priority entry.
func (s *LayerStack) Push(l *Layer) {
	s.layers = append(s.layers, l)
}

// Remove deletes a layer from the stack, preserving the relative order
// of all others. Removing a layer that is not present is a no-op.
func (s *LayerStack) Remove(l *Layer) {
	for i, existing := range s.layers {
		if existing == l {
			s.layers = append(s.layers[:i], s.layers[i+1:]...)
			return
		}
	}
}

// Replace swaps old for new in place, preserving the relative order of
// all other layers. If old is not present, new is pushed on top.
func (s *LayerStack) Replace(old, new *Layer) {
	for i, existing := range s.layers {
		if existing == old {
			s.layers[i] = new
			return
		}
	}
	s.Push(new)
}

// Contains reports whether the layer is in the stack.
func (s *LayerStack) Contains(l *Layer) bool {
	for _, existing := range s.layers {
		if existing == l {
			return true
		}
	}
	return false
}

// Len returns the number of layers in the stack.
func (s *LayerStack) Len() int { return len(s.layers) }

// Names returns layer names lowest to highest priority.
func (s *LayerStack) Names() []string {
	names := make([]string, len(s.layers))
	for i, l := range s.layers {
		names[i] = l.name
	}
	return names
}

// Resolve returns the color for a token, scanning layers from highest
// to lowest priority. A name outside the closed set, or one no layer
// defines, resolves to ErrUnknownToken.
func (s *LayerStack) Resolve(t Token) (Color, error) {
	if !t.Valid() {
		return Color{}, fmt.Errorf("%w: %s", ErrUnknownToken, t)
	}
	for i := len(s.layers) - 1; i >= 0; i-- {
		if c, ok := s.layers[i].lookup(t); ok {
			return c, nil
		}
	}
	return Color{}, fmt.Errorf("%w: %s is not defined by any layer", ErrUnknownToken, t)
}
