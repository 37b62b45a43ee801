package linearmodel

import (
	"errors"
	"fmt"

	"github.com/aouyang1/go-regplot/array"
	mat_ "github.com/aouyang1/go-regplot/mat"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrNoDesignMatrix     = errors.New("no design matrix for inference")
	ErrFeatureLenMismatch = errors.New("number of features does not match number of model coefficients")
)

// PredictOptions represents input options to compute predictions from fitted parameters
type PredictOptions struct {
	// CheckFeatureLen compares the number of design matrix columns against the number of
	// coefficients before multiplying. When false a mismatch is reported by gonum as
	// mat.ErrShape.
	CheckFeatureLen bool
}

// Validate runs basic validation on prediction options
func (o *PredictOptions) Validate() (*PredictOptions, error) {
	if o == nil {
		o = NewDefaultPredictOptions()
	}
	return o, nil
}

// NewDefaultPredictOptions returns a default set of prediction options
func NewDefaultPredictOptions() *PredictOptions {
	return &PredictOptions{
		CheckFeatureLen: false,
	}
}

// Predict computes intercept + x·coef for every row of x
func Predict(x *array.Array, p Params, opt *PredictOptions) ([]float64, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}
	if x == nil {
		return nil, ErrNoDesignMatrix
	}

	m, n := x.Shape()
	if opt.CheckFeatureLen && n != len(p.Coef) {
		return nil, fmt.Errorf("got %d features in design matrix, but expected %d, %w", n, len(p.Coef), ErrFeatureLenMismatch)
	}

	res := make([]float64, m)
	switch {
	case m > 0 && n > 0:
		desMx, err := mat_.FromArray(x)
		if err != nil {
			return nil, err
		}
		if err := mulVec(res, desMx, p.Coef); err != nil {
			return nil, fmt.Errorf("design matrix has %d columns and %d coefficients, %w", n, len(p.Coef), err)
		}
	case n != len(p.Coef):
		return nil, fmt.Errorf("design matrix has %d columns and %d coefficients, %w", n, len(p.Coef), mat.ErrShape)
	}

	floats.AddConst(p.Intercept, res)
	return res, nil
}

// mulVec stores x·coef into dst converting gonum shape panics into errors
func mulVec(dst []float64, x mat.Matrix, coef []float64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = e
		}
	}()

	coefVec := mat.NewVecDense(len(coef), coef)
	res := mat.NewVecDense(len(dst), dst)
	res.MulVec(x, coefVec)
	return nil
}
