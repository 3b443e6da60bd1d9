package codec

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/dss-extensions/dss-go/dsserr"
)

// CSC is the compressed sparse column form of the system admittance matrix,
// as produced by YMatrix_GetCompressedYMatrix.
type CSC struct {
	N      int
	ColPtr []int32
	RowIdx []int32
	Values []complex128
}

func (y CSC) validate() error {
	if len(y.ColPtr) != y.N+1 {
		return fmt.Errorf("%w: %d column pointers for order %d", dsserr.ErrInvalidMatrix, len(y.ColPtr), y.N)
	}
	if len(y.RowIdx) != len(y.Values) {
		return fmt.Errorf("%w: %d row indices for %d values", dsserr.ErrInvalidMatrix, len(y.RowIdx), len(y.Values))
	}
	if y.N > 0 && int(y.ColPtr[y.N]) != len(y.Values) {
		return fmt.Errorf("%w: last column pointer is %d, expected %d", dsserr.ErrInvalidMatrix, y.ColPtr[y.N], len(y.Values))
	}
	return nil
}

// NNZ is the number of stored entries.
func (y CSC) NNZ() int { return len(y.Values) }

// At returns entry (row, col), zero when not stored.
func (y CSC) At(row, col int) complex128 {
	for k := y.ColPtr[col]; k < y.ColPtr[col+1]; k++ {
		if int(y.RowIdx[k]) == row {
			return y.Values[k]
		}
	}
	return 0
}

// CDense expands the matrix. Duplicated entries are summed.
func (y CSC) CDense() (*mat.CDense, error) {
	if err := y.validate(); err != nil {
		return nil, err
	}
	if y.N == 0 {
		return &mat.CDense{}, nil
	}
	m := mat.NewCDense(y.N, y.N, nil)
	for col := 0; col < y.N; col++ {
		for k := y.ColPtr[col]; k < y.ColPtr[col+1]; k++ {
			row := int(y.RowIdx[k])
			if row < 0 || row >= y.N {
				return nil, fmt.Errorf("%w: row index %d out of range", dsserr.ErrInvalidMatrix, row)
			}
			m.Set(row, col, m.At(row, col)+y.Values[k])
		}
	}
	return m, nil
}
