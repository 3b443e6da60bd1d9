// Package altdss is the Obj/Batch API over the DSS engine.
//
// DSS objects are addressed by native handles and their properties by the
// 1-based property index of their class. A Batch is a native array of object
// handles of a single class, so a property can be read or written on all of
// them with one call.
//
// The package is written against the Engine interface; the cgo
// implementation lives in the dss package (see (*dss.IDSS).Obj).
package altdss

import (
	"fmt"
	"unsafe"

	"github.com/dss-extensions/dss-go/dsserr"
)

// Handle is an opaque pointer to a native DSS object.
type Handle = unsafe.Pointer

// RawBatch is a native array of Count object handles, owned by the engine
// until released through BatchDispose.
type RawBatch struct {
	Ptr   unsafe.Pointer
	Count int32
}

// CheckLen fails with ErrLengthMismatch unless n matches Count. Per-element
// batch writes read exactly Count values on the native side.
func (b RawBatch) CheckLen(n int) error {
	if int32(n) != b.Count {
		return fmt.Errorf("%w: got %d values for %d objects", dsserr.ErrLengthMismatch, n, b.Count)
	}
	return nil
}

// BatchOp selects how a batch write combines with the current value.
type BatchOp int32

const (
	BatchOp_Set       BatchOp = 0
	BatchOp_Multiply  BatchOp = 1
	BatchOp_Increment BatchOp = 2
	BatchOp_Divide    BatchOp = 3
)

// ObjEngine exposes the Obj_* entry points of the engine.
type ObjEngine interface {
	ClassIndex(className string) (int32, error)
	ObjCount(cls int32) (int32, error)
	ObjByName(cls int32, name string) (Handle, error)
	ObjByIndex(cls int32, idx int32) (Handle, error)
	ObjNew(cls int32, name string, activate, beginEdit bool) (Handle, error)

	ObjName(h Handle) (string, error)
	ObjClassName(h Handle) (string, error)
	ObjIndex(h Handle) (int32, error)
	ObjNumProperties(h Handle) (int32, error)

	ObjFloat64(h Handle, prop int32) (float64, error)
	ObjInt32(h Handle, prop int32) (int32, error)
	ObjString(h Handle, prop int32) (string, error)
	ObjAsString(h Handle, prop int32) (string, error)
	ObjObject(h Handle, prop int32) (Handle, error)
	ObjFloat64Array(h Handle, prop int32) ([]float64, error)
	ObjInt32Array(h Handle, prop int32) ([]int32, error)
	ObjStringArray(h Handle, prop int32) ([]string, error)
	ObjObjectArray(h Handle, prop int32) ([]Handle, error)

	ObjSetFloat64(h Handle, prop int32, value float64) error
	ObjSetInt32(h Handle, prop int32, value int32) error
	ObjSetString(h Handle, prop int32, value string) error
	ObjSetAsString(h Handle, prop int32, value string) error
	ObjSetObject(h Handle, prop int32, value Handle) error
	ObjSetFloat64Array(h Handle, prop int32, value []float64) error
	ObjSetInt32Array(h Handle, prop int32, value []int32) error
	ObjSetStringArray(h Handle, prop int32, value []string) error
	ObjSetObjectArray(h Handle, prop int32, value []Handle) error

	ObjBeginEdit(h Handle) error
	ObjEndEdit(h Handle, numChanges int32) error
	ObjActivate(h Handle, allLists bool) error
	ObjToJSON(h Handle, flags int32) (string, error)
}

// BatchEngine exposes the Batch_* entry points of the engine.
type BatchEngine interface {
	BatchByClass(cls int32) (RawBatch, error)
	BatchByRegExp(cls int32, re string) (RawBatch, error)
	BatchByIndex(cls int32, idx []int32) (RawBatch, error)
	BatchByInt32Property(cls int32, prop int32, value int32) (RawBatch, error)
	BatchFromNew(cls int32, names []string, beginEdit bool) (RawBatch, error)
	BatchDispose(b RawBatch)
	BatchHandles(b RawBatch) []Handle

	BatchFloat64(b RawBatch, prop int32) ([]float64, error)
	BatchInt32(b RawBatch, prop int32) ([]int32, error)
	BatchString(b RawBatch, prop int32) ([]string, error)
	BatchObject(b RawBatch, prop int32) ([]Handle, error)

	BatchSetFloat64(b RawBatch, prop int32, op BatchOp, value float64) error
	BatchSetFloat64Array(b RawBatch, prop int32, op BatchOp, values []float64) error
	BatchSetInt32(b RawBatch, prop int32, op BatchOp, value int32) error
	BatchSetInt32Array(b RawBatch, prop int32, op BatchOp, values []int32) error
	BatchSetString(b RawBatch, prop int32, value string) error
	BatchSetStringArray(b RawBatch, prop int32, values []string) error
	BatchSetObject(b RawBatch, prop int32, value Handle) error

	BatchBeginEdit(b RawBatch) error
	BatchEndEdit(b RawBatch, numEdits int32) error
	BatchToJSON(b RawBatch, flags int32) (string, error)
}

// Engine is the full native surface used by this package.
type Engine interface {
	ObjEngine
	BatchEngine
}
