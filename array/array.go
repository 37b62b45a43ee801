package array

import (
	"errors"
	"fmt"
)

var (
	ErrColMismatch        = errors.New("column size mismatch")
	ErrUninitializedArray = errors.New("uninitialized array")
	ErrRowOutOfBounds     = errors.New("row is out of bounds")
	ErrColOutOfBounds     = errors.New("column is out of bounds")
)

// Array contains a 2D slice of data stored in column major order where the
// first slice in the stored slice is the first column of the dataset.
// e.g. [][]float64{{1.0, 2.0}, {1.0, 3.0}, {1.0, 4.0}} would be stored like so,
// {1.0, 1.0, 1.0, 2.0, 3.0, 4.0}.
//
// An Array also remembers whether it was built from a flat sequence (rank 1) or
// from rows (rank 2). A rank 1 array of length m has shape (m, 1).
type Array struct {
	arr  []float64
	m    int
	n    int
	ndim int
}

// New1D creates a rank 1 array from a flat sequence of values. The input is copied.
func New1D(x []float64) *Array {
	a := new(Array)
	m := len(x)

	xArr := make([]float64, m)
	copy(xArr, x)

	a.arr = xArr
	a.m = m
	a.n = 1
	a.ndim = 1
	return a
}

// New2D creates a rank 2 array from a slice of rows. Every row must have the same
// number of columns.
func New2D(x [][]float64) (*Array, error) {
	a := new(Array)
	m, n, err := a.derive2DShape(x)
	if err != nil {
		return nil, err
	}

	xArr := make([]float64, m*n)
	for i, row := range x {
		for j, val := range row {
			xArr[j*m+i%m] = val
		}
	}

	a.arr = xArr
	a.m = m
	a.n = n
	a.ndim = 2
	return a, nil
}

func (a *Array) derive2DShape(x [][]float64) (int, int, error) {
	m := len(x)

	n := -1
	for i, row := range x {
		if n >= 0 && len(row) != n {
			return 0, 0, fmt.Errorf("at row %d, %w", i, ErrColMismatch)
		}
		if n < 0 {
			n = len(row)
		}
	}
	if n < 0 {
		n = 0
	}
	return m, n, nil
}

// Shape returns the number of rows and columns. A rank 1 array always reports a
// single column.
func (a *Array) Shape() (int, int) {
	return a.m, a.n
}

// Ndim returns 1 for arrays built from a flat sequence and 2 otherwise
func (a *Array) Ndim() int {
	return a.ndim
}

func (a *Array) Size() int {
	return len(a.arr)
}

// Get retrieves a single value in the array at a specific row and column
func (a *Array) Get(r, c int) (float64, error) {
	m, n := a.Shape()
	if r < 0 || r >= m {
		return 0.0, ErrRowOutOfBounds
	}
	if c < 0 || c >= n {
		return 0.0, ErrColOutOfBounds
	}

	idx := (r % m) + c*m
	return a.arr[idx], nil
}

// GetRow returns a copy of the specified row
func (a *Array) GetRow(r int) ([]float64, error) {
	m, n := a.Shape()
	if r < 0 || r >= m {
		return nil, ErrRowOutOfBounds
	}

	res := make([]float64, 0, n)
	for c := 0; c < n; c++ {
		res = append(res, a.arr[c*m+r])
	}
	return res, nil
}

// Flatten returns the values in row major order
func (a *Array) Flatten() []float64 {
	m, n := a.Shape()
	res := make([]float64, a.Size())
	for i := 0; i < a.Size(); i++ {
		res[(i%m)*n+i/m] = a.arr[i]
	}
	return res
}

// ToSlice returns a copy of the values as a slice of rows
func (a *Array) ToSlice() [][]float64 {
	m, _ := a.Shape()
	res := make([][]float64, m)
	for i := 0; i < m; i++ {
		// rows in range never fail
		res[i], _ = a.GetRow(i)
	}
	return res
}

// Copy returns a deep copy of the array keeping its rank
func (a *Array) Copy() *Array {
	arr := make([]float64, len(a.arr))
	copy(arr, a.arr)
	return &Array{
		arr:  arr,
		m:    a.m,
		n:    a.n,
		ndim: a.ndim,
	}
}

// Column returns a new rank 2 array of shape (m, 1) if the array is rank 1. Rank 2
// arrays are returned as is.
func (a *Array) Column() *Array {
	if a.ndim == 2 {
		return a
	}
	res := a.Copy()
	res.ndim = 2
	return res
}
