package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dss-extensions/dss-go/dsserr"
)

func TestComplex(t *testing.T) {
	c, err := Complex([]float64{1, 2, 3, -4})
	require.NoError(t, err)
	assert.Equal(t, []complex128{1 + 2i, 3 - 4i}, c)

	c, err = Complex([]float64{0})
	require.NoError(t, err)
	assert.Empty(t, c)

	c, err = Complex(nil)
	require.NoError(t, err)
	assert.Empty(t, c)

	_, err = Complex([]float64{1, 2, 3})
	assert.ErrorIs(t, err, dsserr.ErrInvalidComplex)

	assert.Equal(t, []float64{1, 2, 3, -4}, Interleave([]complex128{1 + 2i, 3 - 4i}))
}

func TestComplexScalar(t *testing.T) {
	c, err := ComplexScalar([]float64{5, -1})
	require.NoError(t, err)
	assert.Equal(t, 5-1i, c)

	_, err = ComplexScalar([]float64{0})
	assert.ErrorIs(t, err, dsserr.ErrInvalidComplex)
}

func TestPolar(t *testing.T) {
	res := Polar([]float64{2, 90, 1, 0})
	require.Len(t, res, 2)
	assert.InDelta(t, 0, real(res[0]), 1e-12)
	assert.InDelta(t, 2, imag(res[0]), 1e-12)
	assert.Equal(t, complex(1, 0), res[1])
}

func TestSquareOrder(t *testing.T) {
	n, err := SquareOrder(9)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = SquareOrder(8)
	assert.ErrorIs(t, err, dsserr.ErrInvalidMatrix)
}

func TestCDenseColumnMajor(t *testing.T) {
	// [[a, c], [b, d]] stored column by column
	m, err := CDense([]complex128{1, 2i, 3, 4i})
	require.NoError(t, err)
	r, c := m.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
	assert.Equal(t, complex(1, 0), m.At(0, 0))
	assert.Equal(t, 2i, m.At(1, 0))
	assert.Equal(t, complex(3, 0), m.At(0, 1))
	assert.Equal(t, 4i, m.At(1, 1))

	assert.Equal(t, []complex128{1, 2i, 3, 4i}, ColumnMajor(m))
}

func TestDenseColumnMajor(t *testing.T) {
	m, err := Dense([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(t, err)
	assert.Equal(t, 4.0, m.At(0, 1))
	assert.Equal(t, 2.0, m.At(1, 0))
	assert.Equal(t, 9.0, m.At(2, 2))

	_, err = Dense([]float64{1, 2})
	assert.ErrorIs(t, err, dsserr.ErrInvalidMatrix)
}

func TestCSC(t *testing.T) {
	y := CSC{
		N:      2,
		ColPtr: []int32{0, 2, 3},
		RowIdx: []int32{0, 1, 1},
		Values: []complex128{10 - 10i, -5 + 5i, 10 - 10i},
	}
	assert.Equal(t, 3, y.NNZ())
	assert.Equal(t, -5+5i, y.At(1, 0))
	assert.Equal(t, complex(0, 0), y.At(0, 1))

	m, err := y.CDense()
	require.NoError(t, err)
	assert.Equal(t, 10-10i, m.At(0, 0))
	assert.Equal(t, -5+5i, m.At(1, 0))
	assert.Equal(t, complex(0, 0), m.At(0, 1))
	assert.Equal(t, 10-10i, m.At(1, 1))
}

func TestCSCInvalid(t *testing.T) {
	_, err := CSC{N: 2, ColPtr: []int32{0, 1}}.CDense()
	assert.ErrorIs(t, err, dsserr.ErrInvalidMatrix)

	_, err = CSC{N: 1, ColPtr: []int32{0, 1}, RowIdx: []int32{3}, Values: []complex128{1}}.CDense()
	assert.ErrorIs(t, err, dsserr.ErrInvalidMatrix)

	assert.Equal(t, complex(0, 0), CSC{N: 1, ColPtr: []int32{0, 0}}.At(0, 0))
}
