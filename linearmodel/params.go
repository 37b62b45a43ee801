package linearmodel

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

var ErrNoCoefficients = errors.New("no coefficients in fitted parameters")

// Params holds the output of a previously fitted linear model, y ~ b + m1x1 + m2x2 ...
type Params struct {
	Intercept float64   `json:"intercept"`
	Coef      []float64 `json:"coef"`
}

// ParseParams decodes fitted parameters from their JSON representation, e.g.
// {"intercept": 0.42, "coef": [1.88]}
func ParseParams(data []byte) (Params, error) {
	var p Params
	if err := json.Unmarshal(data, &p); err != nil {
		return Params{}, fmt.Errorf("unable to decode fitted parameters, %w", err)
	}
	if p.Coef == nil {
		return Params{}, ErrNoCoefficients
	}
	return p, nil
}

// String returns the model equation using the fitted parameters
func (p Params) String() string {
	eq := fmt.Sprintf("y ~ %.4f", p.Intercept)
	for i, c := range p.Coef {
		eq += fmt.Sprintf(" + %.4f*x%d", c, i+1)
	}
	return eq
}
