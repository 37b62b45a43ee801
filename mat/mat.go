package mat

import (
	"errors"
	"fmt"

	"github.com/aouyang1/go-regplot/array"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrColMismatch        = errors.New("column size mismatch")
	ErrEmptyArray         = errors.New("array has no rows or no columns")
	ErrUninitializedArray = errors.New("uninitialized array")
)

func NewDenseFromArray(x [][]float64) (*mat.Dense, error) {
	m := len(x)

	n := -1
	for i, row := range x {
		if n >= 0 && len(row) != n {
			return nil, fmt.Errorf("at row %d, %w", i, ErrColMismatch)
		}
		if n < 0 {
			n = len(row)
		}
	}
	if n < 0 {
		n = 0
	}

	// flatten to row order
	data := make([]float64, 0, m*n)
	for _, row := range x {
		data = append(data, row...)
	}
	return mat.NewDense(m, n, data), nil
}

// FromArray builds a dense matrix holding a copy of the array values. gonum cannot
// represent matrices with a zero dimension so those return ErrEmptyArray.
func FromArray(a *array.Array) (*mat.Dense, error) {
	if a == nil {
		return nil, ErrUninitializedArray
	}
	m, n := a.Shape()
	if m == 0 || n == 0 {
		return nil, fmt.Errorf("got shape (%d, %d), %w", m, n, ErrEmptyArray)
	}
	return NewDenseFromArray(a.ToSlice())
}
