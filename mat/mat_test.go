package mat

import (
	"testing"

	"github.com/aouyang1/go-regplot/array"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNewDenseFromArray(t *testing.T) {
	testData := map[string]struct {
		err error
		x   [][]float64
		m   int
		n   int
	}{
		"nil input": {
			mat.ErrZeroLength,
			nil,
			0, 0,
		},
		"empty input": {
			mat.ErrZeroLength,
			[][]float64{},
			0, 0,
		},
		"single element": {
			nil,
			[][]float64{{1}},
			1, 1,
		},
		"one row multiple cols": {
			nil,
			[][]float64{{1, 2, 3}},
			1, 3,
		},
		"multiple rows one col": {
			nil,
			[][]float64{{1}, {2}, {3}},
			3, 1,
		},
		"multiple rows and cols": {
			nil,
			[][]float64{{1, 2, 3}, {4, 5, 6}},
			2, 3,
		},
		"inconsistent cols": {
			ErrColMismatch,
			[][]float64{{1, 2, 3}, {4, 5}},
			0, 0,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			defer func() {
				r := recover()
				if td.err != nil && r != nil {
					err, ok := r.(error)
					require.True(t, ok, "panic is not an error")
					assert.ErrorAs(t, err, &td.err)
				}
			}()
			mx, err := NewDenseFromArray(td.x)
			if td.err != nil {
				require.ErrorAs(t, err, &td.err)
				return
			}
			require.Nil(t, err)

			m, n := mx.Dims()
			assert.Equal(t, td.m, m, "m")
			assert.Equal(t, td.n, n, "n")

			for ri, row := range td.x {
				assert.Equal(t, row, mat.Row(nil, ri, mx), "array")
			}
		})
	}
}

func TestFromArray(t *testing.T) {
	rows, err := array.New2D([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.Nil(t, err)

	testData := map[string]struct {
		err      error
		x        *array.Array
		expected [][]float64
	}{
		"nil array": {
			err: ErrUninitializedArray,
		},
		"empty flat array": {
			err: ErrEmptyArray,
			x:   array.New1D(nil),
		},
		"empty rows": {
			err: ErrEmptyArray,
			x: func() *array.Array {
				a, err := array.New2D([][]float64{{}, {}})
				require.Nil(t, err)
				return a
			}(),
		},
		"flat array": {
			x:        array.New1D([]float64{1, 2, 3}),
			expected: [][]float64{{1}, {2}, {3}},
		},
		"rows": {
			x:        rows,
			expected: [][]float64{{1, 2}, {3, 4}, {5, 6}},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			mx, err := FromArray(td.x)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)

			m, n := mx.Dims()
			assert.Equal(t, len(td.expected), m, "m")
			assert.Equal(t, len(td.expected[0]), n, "n")
			for ri, row := range td.expected {
				assert.Equal(t, row, mat.Row(nil, ri, mx), "row")
			}
		})
	}
}
