package array

import (
	"errors"
	"fmt"
	"reflect"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrNotNumeric  = errors.New("value is not numeric")
	ErrRankTooHigh = errors.New("arrays with more than 2 dimensions are not supported")
)

// FromAny converts a caller supplied value into an Array. Supported inputs are *Array,
// any gonum mat.Matrix, slices or arrays of Go integer and float kinds (rank 1) and
// slices of those (rank 2). The input is never referenced by the result.
func FromAny(x any) (*Array, error) {
	switch v := x.(type) {
	case nil:
		return nil, ErrUninitializedArray
	case *Array:
		if v == nil {
			return nil, ErrUninitializedArray
		}
		return v.Copy(), nil
	case []float64:
		return New1D(v), nil
	case [][]float64:
		return New2D(v)
	case mat.Matrix:
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Ptr && rv.IsNil() {
			return nil, ErrUninitializedArray
		}
		return fromMatrix(v)
	}

	rv := reflect.ValueOf(x)
	if !isSequence(rv.Kind()) {
		return nil, fmt.Errorf("got %T, %w", x, ErrNotNumeric)
	}

	elemType := rv.Type().Elem()
	if isNumericKind(elemType.Kind()) {
		vals := make([]float64, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			vals[i] = toFloat(rv.Index(i))
		}
		return New1D(vals), nil
	}

	if !isSequence(elemType.Kind()) {
		return nil, fmt.Errorf("got %T, %w", x, ErrNotNumeric)
	}
	innerKind := elemType.Elem().Kind()
	if isSequence(innerKind) {
		return nil, fmt.Errorf("got %T, %w", x, ErrRankTooHigh)
	}
	if !isNumericKind(innerKind) {
		return nil, fmt.Errorf("got %T, %w", x, ErrNotNumeric)
	}

	rows := make([][]float64, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		rowVal := rv.Index(i)
		row := make([]float64, rowVal.Len())
		for j := 0; j < rowVal.Len(); j++ {
			row[j] = toFloat(rowVal.Index(j))
		}
		rows[i] = row
	}
	return New2D(rows)
}

// Scalar converts a Go integer or float value into a float64
func Scalar(x any) (float64, error) {
	if x == nil {
		return 0.0, fmt.Errorf("got nil, %w", ErrNotNumeric)
	}
	rv := reflect.ValueOf(x)
	if !isNumericKind(rv.Kind()) {
		return 0.0, fmt.Errorf("got %T, %w", x, ErrNotNumeric)
	}
	return toFloat(rv), nil
}

func fromMatrix(x mat.Matrix) (*Array, error) {
	m, _ := x.Dims()
	rows := make([][]float64, m)
	for i := 0; i < m; i++ {
		rows[i] = mat.Row(nil, i, x)
	}
	return New2D(rows)
}

func isSequence(k reflect.Kind) bool {
	return k == reflect.Slice || k == reflect.Array
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func toFloat(v reflect.Value) float64 {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint())
	default:
		return v.Float()
	}
}
