package dss

/*
#include <stdlib.h>
#include "dss_capi_ctx.h"
*/
import "C"

import (
	"unsafe"

	"gonum.org/v1/gonum/mat"

	"github.com/dss-extensions/dss-go/internal/codec"
)

// CSC is the compressed sparse column form of the system admittance matrix.
// See (*IYMatrix).CompressedY.
type CSC = codec.CSC

func cdense(values []complex128, err error) (*mat.CDense, error) {
	if err != nil {
		return nil, err
	}
	return codec.CDense(values)
}

func dense(values []float64, err error) (*mat.Dense, error) {
	if err != nil {
		return nil, err
	}
	return codec.Dense(values)
}

// YprimDense returns the primitive admittance matrix of the active element.
func (e *ICktElement) YprimDense() (*mat.CDense, error) { return cdense(e.Yprim()) }

// SystemYDense expands the system admittance matrix of the active circuit.
// For large systems, prefer YMatrix.CompressedY.
func (c *ICircuit) SystemYDense() (*mat.CDense, error) { return cdense(c.SystemY()) }

func (b *IBus) ZscDense() (*mat.CDense, error)    { return cdense(b.ZscMatrix()) }
func (b *IBus) YscDense() (*mat.CDense, error)    { return cdense(b.YscMatrix()) }
func (b *IBus) ZSC012Dense() (*mat.CDense, error) { return cdense(b.ZSC012Matrix()) }

func (l *ILines) YprimDense() (*mat.CDense, error)  { return cdense(l.Get_Yprim()) }
func (l *ILines) RmatrixDense() (*mat.Dense, error) { return dense(l.Get_Rmatrix()) }
func (l *ILines) XmatrixDense() (*mat.Dense, error) { return dense(l.Get_Xmatrix()) }
func (l *ILines) CmatrixDense() (*mat.Dense, error) { return dense(l.Get_Cmatrix()) }

func (l *ILines) SetYprimDense(m mat.CMatrix) error { return l.Set_Yprim(codec.ColumnMajor(m)) }

// CompressedY returns the system admittance matrix in compressed sparse
// column form. With factor set, the matrix is factorized first.
//
// (API Extension)
func (y *IYMatrix) CompressedY(factor bool) (CSC, error) {
	var (
		nBus, nnz      C.uint32_t
		colPtr, rowIdx *C.int32_t
		values         *C.double
	)
	C.ctx_YMatrix_GetCompressedYMatrix(y.ptr, cbool(factor), &nBus, &nnz, &colPtr, &rowIdx, &values)
	defer func() {
		C.DSS_Dispose_PInteger(&colPtr)
		C.DSS_Dispose_PInteger(&rowIdx)
		C.DSS_Dispose_PDouble(&values)
	}()
	err := y.ctx.err()
	if err != nil {
		return CSC{}, err
	}

	n, k := int(nBus), int(nnz)
	res := CSC{N: n, ColPtr: make([]int32, n+1), RowIdx: make([]int32, k)}
	if colPtr != nil {
		copy(res.ColPtr, unsafe.Slice((*int32)(unsafe.Pointer(colPtr)), n+1))
	}
	if k > 0 {
		copy(res.RowIdx, unsafe.Slice((*int32)(unsafe.Pointer(rowIdx)), k))
		if res.Values, err = codec.Complex(unsafe.Slice((*float64)(unsafe.Pointer(values)), 2*k)); err != nil {
			return CSC{}, err
		}
	}
	return res, nil
}
