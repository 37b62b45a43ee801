package regplot

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/image/colornames"
)

var ErrUnknownColor = errors.New("unknown color name")

const (
	DefaultTitle        = "Linear Regression Model"
	DefaultXLabel       = "Independent variable (X)"
	DefaultYLabel       = "Dependent variable (y)"
	DefaultScatterLabel = "Observed data"
	DefaultLineLabel    = "Fitted line"
	DefaultScatterColor = "blue"
	DefaultLineColor    = "red"
)

// Options configures the text and colors of a regression figure. Empty fields fall back
// to the defaults.
type Options struct {
	Title        string `json:"title"`
	XLabel       string `json:"x_label"`
	YLabel       string `json:"y_label"`
	ScatterLabel string `json:"scatter_label"`
	LineLabel    string `json:"line_label"`

	// ScatterColor and LineColor are SVG 1.1 color names, e.g. "blue"
	ScatterColor string `json:"scatter_color"`
	LineColor    string `json:"line_color"`

	// CheckFeatureLen rejects a coefficient vector whose length differs from the number
	// of columns of X before computing predictions.
	CheckFeatureLen bool `json:"check_feature_len"`
}

// NewDefaultOptions returns the options producing the standard regression figure
func NewDefaultOptions() *Options {
	return &Options{
		Title:        DefaultTitle,
		XLabel:       DefaultXLabel,
		YLabel:       DefaultYLabel,
		ScatterLabel: DefaultScatterLabel,
		LineLabel:    DefaultLineLabel,
		ScatterColor: DefaultScatterColor,
		LineColor:    DefaultLineColor,
	}
}

// Validate returns a copy of the options with defaults filled in and checks that the
// colors are known
func (o *Options) Validate() (*Options, error) {
	if o == nil {
		return NewDefaultOptions(), nil
	}

	res := *o
	setDefault(&res.Title, DefaultTitle)
	setDefault(&res.XLabel, DefaultXLabel)
	setDefault(&res.YLabel, DefaultYLabel)
	setDefault(&res.ScatterLabel, DefaultScatterLabel)
	setDefault(&res.LineLabel, DefaultLineLabel)
	setDefault(&res.ScatterColor, DefaultScatterColor)
	setDefault(&res.LineColor, DefaultLineColor)

	res.ScatterColor = strings.ToLower(res.ScatterColor)
	res.LineColor = strings.ToLower(res.LineColor)
	if _, exists := colornames.Map[res.ScatterColor]; !exists {
		return nil, fmt.Errorf("scatter color %q, %w", res.ScatterColor, ErrUnknownColor)
	}
	if _, exists := colornames.Map[res.LineColor]; !exists {
		return nil, fmt.Errorf("line color %q, %w", res.LineColor, ErrUnknownColor)
	}
	return &res, nil
}

func setDefault(field *string, val string) {
	if *field == "" {
		*field = val
	}
}
