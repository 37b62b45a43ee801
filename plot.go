package regplot

import (
	"errors"
	"fmt"

	"github.com/aouyang1/go-regplot/array"
	"github.com/aouyang1/go-regplot/linearmodel"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrXNotArray          = errors.New("X must be a numeric array")
	ErrYNotArray          = errors.New("y must be a numeric array")
	ErrInterceptNotNumber = errors.New("intercept must be a float or an integer")
	ErrCoefNotNumeric     = errors.New("coef must be a numeric array of numeric types")
	ErrLayerSizeMismatch  = errors.New("x and y must be the same size")
)

// Plotter builds regression figures using a fixed set of options
type Plotter struct {
	opt *Options
}

// NewPlotter creates a Plotter with the provided options. If no options are provided the
// defaults are used.
func NewPlotter(opt *Options) (*Plotter, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid plot options, %w", err)
	}
	return &Plotter{opt: opt}, nil
}

// PlotRegression renders the observed x and y samples as a scatter plot overlaid with the
// line intercept + x·coef using the default options. x, y and coef may be an
// *array.Array, a gonum mat.Matrix, or a flat or nested slice of Go numbers. intercept
// must be a Go integer or float.
func PlotRegression(x, y, intercept, coef any) (*Figure, error) {
	p, err := NewPlotter(nil)
	if err != nil {
		return nil, err
	}
	return p.PlotAny(x, y, intercept, coef)
}

// PlotFlat renders flat sequences of observations, each treated as a single column
func PlotFlat(x, y []float64, intercept float64, coef []float64) (*Figure, error) {
	p, err := NewPlotter(nil)
	if err != nil {
		return nil, err
	}
	return p.Plot(array.New1D(x), array.New1D(y), linearmodel.Params{Intercept: intercept, Coef: coef})
}

// PlotColumns renders observations given as rows, e.g. [][]float64{{0.69}, {0.28}}
func PlotColumns(x, y [][]float64, intercept float64, coef []float64) (*Figure, error) {
	p, err := NewPlotter(nil)
	if err != nil {
		return nil, err
	}
	xArr, err := array.New2D(x)
	if err != nil {
		return nil, fmt.Errorf("%w, %w", ErrXNotArray, err)
	}
	yArr, err := array.New2D(y)
	if err != nil {
		return nil, fmt.Errorf("%w, %w", ErrYNotArray, err)
	}
	return p.Plot(xArr, yArr, linearmodel.Params{Intercept: intercept, Coef: coef})
}

// PlotAny checks the runtime types of the inputs before plotting. All four inputs are
// checked before any computation starts.
func (p *Plotter) PlotAny(x, y, intercept, coef any) (*Figure, error) {
	xArr, err := array.FromAny(x)
	if err != nil {
		return nil, fmt.Errorf("%w, %w", ErrXNotArray, err)
	}
	yArr, err := array.FromAny(y)
	if err != nil {
		return nil, fmt.Errorf("%w, %w", ErrYNotArray, err)
	}
	b, err := array.Scalar(intercept)
	if err != nil {
		return nil, fmt.Errorf("%w, %w", ErrInterceptNotNumber, err)
	}
	coefArr, err := array.FromAny(coef)
	if err != nil {
		return nil, fmt.Errorf("%w, %w", ErrCoefNotNumeric, err)
	}

	c, err := coefVector(coefArr)
	if err != nil {
		return nil, err
	}
	return p.Plot(xArr, yArr, linearmodel.Params{Intercept: b, Coef: c})
}

// Plot builds the figure from typed inputs. Rank 1 x and y are treated as a single
// column. The number of columns of x is only checked against the coefficients when
// Options.CheckFeatureLen is set, otherwise a mismatch is reported by the matrix
// multiply as mat.ErrShape.
func (p *Plotter) Plot(x, y *array.Array, params linearmodel.Params) (*Figure, error) {
	if x == nil {
		return nil, fmt.Errorf("%w, %w", ErrXNotArray, array.ErrUninitializedArray)
	}
	if y == nil {
		return nil, fmt.Errorf("%w, %w", ErrYNotArray, array.ErrUninitializedArray)
	}

	x = x.Column()
	y = y.Column()

	predOpt := &linearmodel.PredictOptions{
		CheckFeatureLen: p.opt.CheckFeatureLen,
	}
	yPred, err := linearmodel.Predict(x, params, predOpt)
	if err != nil {
		return nil, fmt.Errorf("unable to compute predicted values, %w", err)
	}

	scatter, err := newScatterLayer(x, y, p.opt)
	if err != nil {
		return nil, fmt.Errorf("unable to draw observed data, %w", err)
	}
	line, err := newLineLayer(x, yPred, p.opt)
	if err != nil {
		return nil, fmt.Errorf("unable to draw fitted line, %w", err)
	}

	return &Figure{
		Title:  p.opt.Title,
		XLabel: p.opt.XLabel,
		YLabel: p.opt.YLabel,
		Legend: true,
		Layers: []Layer{scatter, line},
	}, nil
}

// coefVector accepts rank 1 coefficients or a single column of coefficients
func coefVector(coef *array.Array) ([]float64, error) {
	m, n := coef.Shape()
	if coef.Ndim() == 2 && n != 1 {
		return nil, fmt.Errorf("coef has shape (%d, %d), %w", m, n, mat.ErrShape)
	}
	return coef.Flatten(), nil
}

func newScatterLayer(x, y *array.Array, opt *Options) (Layer, error) {
	xs := x.Flatten()
	ys := y.Flatten()
	if len(xs) != len(ys) {
		return Layer{}, fmt.Errorf("x has %d values and y has %d values, %w", len(xs), len(ys), ErrLayerSizeMismatch)
	}
	return Layer{
		Kind:  ScatterLayer,
		Label: opt.ScatterLabel,
		Color: opt.ScatterColor,
		X:     xs,
		Y:     ys,
	}, nil
}

func newLineLayer(x *array.Array, yPred []float64, opt *Options) (Layer, error) {
	m, n := x.Shape()
	if n != 1 {
		return Layer{}, fmt.Errorf("x has %d columns for a single line, %w", n, ErrLayerSizeMismatch)
	}
	xs := make([]float64, m)
	for i := 0; i < m; i++ {
		val, err := x.Get(i, 0)
		if err != nil {
			return Layer{}, err
		}
		xs[i] = val
	}
	ys := make([]float64, len(yPred))
	copy(ys, yPred)
	return Layer{
		Kind:  LineLayer,
		Label: opt.LineLabel,
		Color: opt.LineColor,
		X:     xs,
		Y:     ys,
	}, nil
}
