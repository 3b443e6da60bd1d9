// Package codec converts the raw buffers exchanged with the engine into Go
// values.
//
// Complex values travel as interleaved (real, imaginary) float64 pairs and
// matrices are column-major. The functions here work on buffers already
// copied into Go memory, so they are shared by the cgo layer and tests.
package codec

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/dss-extensions/dss-go/dsserr"
)

// Complex reinterprets interleaved pairs as complex numbers. A single-value
// buffer is the engine's representation of an empty result; any other odd
// length fails with ErrInvalidComplex.
func Complex(values []float64) ([]complex128, error) {
	n := len(values)
	switch {
	case n == 1:
		n = 0
	case n%2 != 0:
		return nil, fmt.Errorf("%w: %d values", dsserr.ErrInvalidComplex, n)
	}
	res := make([]complex128, n/2)
	for i := range res {
		res[i] = complex(values[2*i], values[2*i+1])
	}
	return res, nil
}

// Interleave is the inverse of Complex.
func Interleave(values []complex128) []float64 {
	res := make([]float64, 2*len(values))
	for i, c := range values {
		res[2*i] = real(c)
		res[2*i+1] = imag(c)
	}
	return res
}

// ComplexScalar decodes a buffer that must hold exactly one complex number.
func ComplexScalar(values []float64) (complex128, error) {
	if len(values) != 2 {
		return 0, dsserr.ErrInvalidComplex
	}
	return complex(values[0], values[1]), nil
}

// Polar converts (magnitude, angle in degrees) pairs into complex numbers.
func Polar(values []float64) []complex128 {
	res := make([]complex128, len(values)/2)
	for i := range res {
		res[i] = cmplx.Rect(values[2*i], values[2*i+1]*math.Pi/180)
	}
	return res
}

// SquareOrder returns n for a buffer holding n*n entries.
func SquareOrder(count int) (int, error) {
	n := int(math.Sqrt(float64(count)) + 0.5)
	if n*n != count {
		return 0, fmt.Errorf("%w: %d entries", dsserr.ErrInvalidMatrix, count)
	}
	return n, nil
}

// CDense builds a square complex matrix from column-major data.
func CDense(values []complex128) (*mat.CDense, error) {
	n, err := SquareOrder(len(values))
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return &mat.CDense{}, nil
	}
	data := make([]complex128, n*n)
	for col := 0; col < n; col++ {
		for row := 0; row < n; row++ {
			data[row*n+col] = values[col*n+row]
		}
	}
	return mat.NewCDense(n, n, data), nil
}

// Dense builds a square real matrix from column-major data.
func Dense(values []float64) (*mat.Dense, error) {
	n, err := SquareOrder(len(values))
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return &mat.Dense{}, nil
	}
	m := mat.NewDense(n, n, nil)
	for col := 0; col < n; col++ {
		for row := 0; row < n; row++ {
			m.Set(row, col, values[col*n+row])
		}
	}
	return m, nil
}

// ColumnMajor flattens a complex matrix back to the engine layout.
func ColumnMajor(m mat.CMatrix) []complex128 {
	rows, cols := m.Dims()
	res := make([]complex128, 0, rows*cols)
	for col := 0; col < cols; col++ {
		for row := 0; row < rows; row++ {
			res = append(res, m.At(row, col))
		}
	}
	return res
}
