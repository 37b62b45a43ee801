package regplot

import "errors"

var ErrFigureClosed = errors.New("figure has been closed")

// LayerKind identifies how a layer is drawn
type LayerKind string

const (
	ScatterLayer LayerKind = "scatter"
	LineLayer    LayerKind = "line"
)

// Layer is a single drawn series of a figure. X and Y are paired by index.
type Layer struct {
	Kind  LayerKind `json:"kind"`
	Label string    `json:"label"`
	Color string    `json:"color"`
	X     []float64 `json:"x"`
	Y     []float64 `json:"y"`
}

// Figure is a scatter plot of observed data overlaid with the fitted regression line.
// The caller owns the figure and decides whether to render it. Close releases the layer
// data, after which the figure can no longer be rendered. A Figure must not be closed
// while it is being rendered from another goroutine.
type Figure struct {
	Title  string  `json:"title"`
	XLabel string  `json:"x_label"`
	YLabel string  `json:"y_label"`
	Legend bool    `json:"legend"`
	Layers []Layer `json:"layers"`

	closed bool
}

// Layer returns the first layer of the given kind
func (f *Figure) Layer(kind LayerKind) (Layer, bool) {
	for _, l := range f.Layers {
		if l.Kind == kind {
			return l, true
		}
	}
	return Layer{}, false
}

// Scatter returns the observed data layer
func (f *Figure) Scatter() Layer {
	l, _ := f.Layer(ScatterLayer)
	return l
}

// Line returns the fitted line layer
func (f *Figure) Line() Layer {
	l, _ := f.Layer(LineLayer)
	return l
}

// Closed reports whether Close has been called
func (f *Figure) Closed() bool {
	return f.closed
}

// Close drops the layer data. Calling Close more than once is a no-op.
func (f *Figure) Close() error {
	f.Layers = nil
	f.closed = true
	return nil
}
