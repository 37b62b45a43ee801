package regplot

import (
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Chart generates an echart scatter chart of the observed data with the fitted line
// overlapped on the same value axes. Points with a NaN or infinite coordinate are
// skipped.
func (f *Figure) Chart() (*charts.Scatter, error) {
	if f.closed {
		return nil, ErrFigureClosed
	}
	observed := f.Scatter()
	fitted := f.Line()

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: f.Title,
			},
		),
		charts.WithXAxisOpts(
			opts.XAxis{
				Name: f.XLabel,
				Type: "value",
			},
		),
		charts.WithYAxisOpts(
			opts.YAxis{
				Name: f.YLabel,
				Type: "value",
			},
		),
		charts.WithLegendOpts(
			opts.Legend{
				Show: opts.Bool(f.Legend),
			},
		),
	)
	scatter.AddSeries(
		observed.Label,
		scatterData(observed),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: observed.Color}),
	)

	line := charts.NewLine()
	line.AddSeries(
		fitted.Label,
		lineData(fitted),
		charts.WithLineStyleOpts(opts.LineStyle{Color: fitted.Color}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: fitted.Color}),
	)

	scatter.Overlap(line)
	return scatter, nil
}

// Render writes the figure as an html page using the Apache Echarts library
func (f *Figure) Render(w io.Writer) error {
	chart, err := f.Chart()
	if err != nil {
		return err
	}
	page := components.NewPage()
	page.AddCharts(chart)
	return page.Render(w)
}

func scatterData(l Layer) []opts.ScatterData {
	data := make([]opts.ScatterData, 0, len(l.X))
	for i := 0; i < len(l.X); i++ {
		if !finitePoint(l.X[i], l.Y[i]) {
			continue
		}
		data = append(data, opts.ScatterData{Value: []float64{l.X[i], l.Y[i]}})
	}
	return data
}

func lineData(l Layer) []opts.LineData {
	data := make([]opts.LineData, 0, len(l.X))
	for i := 0; i < len(l.X); i++ {
		if !finitePoint(l.X[i], l.Y[i]) {
			continue
		}
		data = append(data, opts.LineData{Value: []float64{l.X[i], l.Y[i]}})
	}
	return data
}

// finitePoint reports whether both coordinates can be drawn
func finitePoint(x, y float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && !math.IsNaN(y) && !math.IsInf(y, 0)
}
