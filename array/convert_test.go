package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

type celsius float64

func TestFromAny(t *testing.T) {
	testData := map[string]struct {
		x        any
		err      error
		expected [][]float64
		ndim     int
	}{
		"nil": {
			x:   nil,
			err: ErrUninitializedArray,
		},
		"nil array": {
			x:   (*Array)(nil),
			err: ErrUninitializedArray,
		},
		"nil gonum matrix": {
			x:   (*mat.Dense)(nil),
			err: ErrUninitializedArray,
		},
		"nil gonum vector": {
			x:   (*mat.VecDense)(nil),
			err: ErrUninitializedArray,
		},
		"array": {
			x:        New1D([]float64{1, 2}),
			expected: [][]float64{{1}, {2}},
			ndim:     1,
		},
		"float slice": {
			x:        []float64{1.5, 2.5},
			expected: [][]float64{{1.5}, {2.5}},
			ndim:     1,
		},
		"int slice": {
			x:        []int{1, 2, 3},
			expected: [][]float64{{1}, {2}, {3}},
			ndim:     1,
		},
		"go array of uint": {
			x:        [2]uint16{4, 5},
			expected: [][]float64{{4}, {5}},
			ndim:     1,
		},
		"named float type": {
			x:        []celsius{-1.5},
			expected: [][]float64{{-1.5}},
			ndim:     1,
		},
		"float rows": {
			x:        [][]float64{{1, 2}, {3, 4}},
			expected: [][]float64{{1, 2}, {3, 4}},
			ndim:     2,
		},
		"int32 rows": {
			x:        [][]int32{{1}, {2}},
			expected: [][]float64{{1}, {2}},
			ndim:     2,
		},
		"gonum matrix": {
			x:        mat.NewDense(2, 2, []float64{1, 2, 3, 4}),
			expected: [][]float64{{1, 2}, {3, 4}},
			ndim:     2,
		},
		"gonum vector": {
			x:        mat.NewVecDense(2, []float64{7, 8}),
			expected: [][]float64{{7}, {8}},
			ndim:     2,
		},
		"ragged rows": {
			x:   [][]int{{1, 2}, {3}},
			err: ErrColMismatch,
		},
		"interface slice": {
			x:   []any{1.0, 2.0},
			err: ErrNotNumeric,
		},
		"string": {
			x:   "1,2,3",
			err: ErrNotNumeric,
		},
		"string slice": {
			x:   []string{"1"},
			err: ErrNotNumeric,
		},
		"bool slice": {
			x:   []bool{true},
			err: ErrNotNumeric,
		},
		"scalar": {
			x:   3.0,
			err: ErrNotNumeric,
		},
		"rank 3": {
			x:   [][][]float64{{{1}}},
			err: ErrRankTooHigh,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			arr, err := FromAny(td.x)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.expected, arr.ToSlice())
			assert.Equal(t, td.ndim, arr.Ndim())
		})
	}
}

func TestFromAnyDoesNotShareInput(t *testing.T) {
	x := []float64{1, 2, 3}
	arr, err := FromAny(x)
	require.Nil(t, err)

	x[0] = 10
	val, err := arr.Get(0, 0)
	require.Nil(t, err)
	assert.Equal(t, 1.0, val)

	src := New1D([]float64{1, 2})
	cp, err := FromAny(src)
	require.Nil(t, err)
	assert.NotSame(t, src, cp)
}

func TestScalar(t *testing.T) {
	testData := map[string]struct {
		x        any
		err      error
		expected float64
	}{
		"float64":   {x: 0.4217, expected: 0.4217},
		"float32":   {x: float32(0.5), expected: 0.5},
		"int":       {x: 3, expected: 3.0},
		"int64":     {x: int64(-2), expected: -2.0},
		"uint8":     {x: uint8(7), expected: 7.0},
		"named":     {x: celsius(1.5), expected: 1.5},
		"nil":       {x: nil, err: ErrNotNumeric},
		"bool":      {x: true, err: ErrNotNumeric},
		"string":    {x: "1.0", err: ErrNotNumeric},
		"slice":     {x: []float64{1}, err: ErrNotNumeric},
		"complex":   {x: complex(1, 2), err: ErrNotNumeric},
		"float ptr": {x: new(float64), err: ErrNotNumeric},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			val, err := Scalar(td.x)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.expected, val)
		})
	}
}
