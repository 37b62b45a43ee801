package regplot

import (
	"fmt"
	"image/color"
	"io"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// RenderImage draws the figure as a static image of the given size. Supported formats
// are the ones of gonum.org/v1/plot: png, jpg, jpeg, tif, tiff, svg, pdf and eps.
func (f *Figure) RenderImage(w io.Writer, format string, width, height vg.Length) error {
	if f.closed {
		return ErrFigureClosed
	}
	observed := f.Scatter()
	fitted := f.Line()

	p := plot.New()
	p.Title.Text = f.Title
	p.X.Label.Text = f.XLabel
	p.Y.Label.Text = f.YLabel

	s, err := plotter.NewScatter(plotPoints(observed))
	if err != nil {
		return fmt.Errorf("unable to create scatter plotter, %w", err)
	}
	s.GlyphStyle.Color = layerColor(observed)

	l, err := plotter.NewLine(plotPoints(fitted))
	if err != nil {
		return fmt.Errorf("unable to create line plotter, %w", err)
	}
	l.LineStyle.Color = layerColor(fitted)

	p.Add(s, l)
	if f.Legend {
		p.Legend.Add(observed.Label, s)
		p.Legend.Add(fitted.Label, l)
	}

	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return fmt.Errorf("unable to render %s image, %w", format, err)
	}
	_, err = wt.WriteTo(w)
	return err
}

// plotPoints skips NaN and infinite points since gonum/plot rejects them
func plotPoints(l Layer) plotter.XYs {
	pts := make(plotter.XYs, 0, len(l.X))
	for i := 0; i < len(l.X); i++ {
		if !finitePoint(l.X[i], l.Y[i]) {
			continue
		}
		pts = append(pts, plotter.XY{X: l.X[i], Y: l.Y[i]})
	}
	return pts
}

func layerColor(l Layer) color.Color {
	c, exists := colornames.Map[l.Color]
	if !exists {
		return color.Black
	}
	return c
}
