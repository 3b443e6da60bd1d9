package dss

/*
#include <stdlib.h>
#include "dss_capi_ctx.h"
*/
import "C"

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/dss-extensions/dss-go/altdss"
)

// Obj returns the Obj/Batch API bound to this context.
//
// (API Extension)
func (d *IDSS) Obj() *altdss.AltDSS {
	if d.obj == nil {
		d.obj = altdss.New(&objEngine{ctx: d.ctx}, d.ctx.log)
	}
	return d.obj
}

// objEngine implements altdss.Engine over the Obj_* and Batch_* entry
// points. Object handles and batch arrays are owned by the engine. Handles
// are dangling once the context is disposed, so calls taking one check the
// context first.
type objEngine struct {
	ctx *dssContext
}

var _ altdss.Engine = (*objEngine)(nil)

// owned copies a string allocated by the engine and releases it.
func (e *objEngine) owned(s *C.char) (string, error) {
	err := e.ctx.err()
	res := C.GoString(s)
	if s != nil {
		C.DSS_Dispose_String(s)
	}
	return res, err
}

// handle returns a nil handle, without error, for a missing object.
func (e *objEngine) handle(h unsafe.Pointer) (altdss.Handle, error) {
	if err := e.ctx.err(); err != nil {
		return nil, err
	}
	return h, nil
}

// ClassIndex resolves a class through DSS_SetActiveClass, then restores the
// class that was active before, so the classic ActiveClass interface does
// not change under the caller.
func (e *objEngine) ClassIndex(className string) (int32, error) {
	prev, err := e.ctx.str(C.ctx_ActiveClass_Get_Name(e.ctx.ptr))
	if err != nil {
		// no active class yet
		prev = ""
	}
	idx, err := e.setActiveClass(className)
	if err != nil || prev == "" || strings.EqualFold(prev, className) {
		return idx, err
	}
	if _, err := e.setActiveClass(prev); err != nil {
		return 0, fmt.Errorf("restore active class %s: %w", prev, err)
	}
	return idx, nil
}

func (e *objEngine) setActiveClass(className string) (int32, error) {
	return e.ctx.i32(cstr(className, func(cs *C.char) C.int32_t { return C.ctx_DSS_SetActiveClass(e.ctx.ptr, cs) }))
}

func (e *objEngine) ObjCount(cls int32) (int32, error) {
	return e.ctx.i32(C.ctx_Obj_GetCount(e.ctx.ptr, C.int32_t(cls)))
}

func (e *objEngine) ObjByName(cls int32, name string) (altdss.Handle, error) {
	h := cstr(name, func(cs *C.char) unsafe.Pointer { return C.ctx_Obj_GetHandleByName(e.ctx.ptr, C.int32_t(cls), cs) })
	return e.handle(h)
}

func (e *objEngine) ObjByIndex(cls int32, idx int32) (altdss.Handle, error) {
	return e.handle(C.ctx_Obj_GetHandleByIdx(e.ctx.ptr, C.int32_t(cls), C.int32_t(idx)))
}

func (e *objEngine) ObjNew(cls int32, name string, activate, beginEdit bool) (altdss.Handle, error) {
	h := cstr(name, func(cs *C.char) unsafe.Pointer {
		return C.ctx_Obj_New(e.ctx.ptr, C.int32_t(cls), cs, cbool(activate), cbool(beginEdit))
	})
	if err := e.ctx.err(); err != nil {
		return nil, err
	}
	if h == nil {
		return nil, fmt.Errorf("could not create %q", name)
	}
	return h, nil
}

func (e *objEngine) ObjName(h altdss.Handle) (string, error) {
	if err := e.ctx.live(); err != nil {
		return "", err
	}
	return e.ctx.str(C.Obj_GetName(h))
}

func (e *objEngine) ObjClassName(h altdss.Handle) (string, error) {
	if err := e.ctx.live(); err != nil {
		return "", err
	}
	return e.ctx.str(C.Obj_GetClassName(h))
}

func (e *objEngine) ObjIndex(h altdss.Handle) (int32, error) {
	if err := e.ctx.live(); err != nil {
		return 0, err
	}
	return e.ctx.i32(C.Obj_GetIdx(h))
}

func (e *objEngine) ObjNumProperties(h altdss.Handle) (int32, error) {
	if err := e.ctx.live(); err != nil {
		return 0, err
	}
	return e.ctx.i32(C.Obj_GetNumProperties(h))
}

func (e *objEngine) ObjFloat64(h altdss.Handle, prop int32) (float64, error) {
	if err := e.ctx.live(); err != nil {
		return 0, err
	}
	return e.ctx.f64(C.Obj_GetFloat64(h, C.int32_t(prop)))
}

func (e *objEngine) ObjInt32(h altdss.Handle, prop int32) (int32, error) {
	if err := e.ctx.live(); err != nil {
		return 0, err
	}
	return e.ctx.i32(C.Obj_GetInt32(h, C.int32_t(prop)))
}

func (e *objEngine) ObjString(h altdss.Handle, prop int32) (string, error) {
	if err := e.ctx.live(); err != nil {
		return "", err
	}
	return e.owned(C.Obj_GetString(h, C.int32_t(prop)))
}

func (e *objEngine) ObjAsString(h altdss.Handle, prop int32) (string, error) {
	if err := e.ctx.live(); err != nil {
		return "", err
	}
	return e.owned(C.Obj_GetAsString(h, C.int32_t(prop)))
}

// ObjObject returns a nil handle, without error, for an unset reference.
func (e *objEngine) ObjObject(h altdss.Handle, prop int32) (altdss.Handle, error) {
	if err := e.ctx.live(); err != nil {
		return nil, err
	}
	res := C.Obj_GetObject(h, C.int32_t(prop))
	return res, e.ctx.err()
}

func (e *objEngine) ObjFloat64Array(h altdss.Handle, prop int32) ([]float64, error) {
	if err := e.ctx.live(); err != nil {
		return nil, err
	}
	var data *C.double
	var cnt [4]C.int32_t
	C.Obj_GetFloat64Array(&data, &cnt[0], h, C.int32_t(prop))
	return e.float64s(&data, cnt[0])
}

func (e *objEngine) ObjInt32Array(h altdss.Handle, prop int32) ([]int32, error) {
	if err := e.ctx.live(); err != nil {
		return nil, err
	}
	var data *C.int32_t
	var cnt [4]C.int32_t
	C.Obj_GetInt32Array(&data, &cnt[0], h, C.int32_t(prop))
	return e.int32s(&data, cnt[0])
}

func (e *objEngine) ObjStringArray(h altdss.Handle, prop int32) ([]string, error) {
	if err := e.ctx.live(); err != nil {
		return nil, err
	}
	return e.ctx.strings(func(data ***C.char, cnt *C.int32_t) { C.Obj_GetStringArray(data, cnt, h, C.int32_t(prop)) })
}

func (e *objEngine) ObjObjectArray(h altdss.Handle, prop int32) ([]altdss.Handle, error) {
	if err := e.ctx.live(); err != nil {
		return nil, err
	}
	var data *unsafe.Pointer
	var cnt [4]C.int32_t
	C.Obj_GetObjectArray(&data, &cnt[0], h, C.int32_t(prop))
	return e.handles(&data, cnt[0])
}

func (e *objEngine) ObjSetFloat64(h altdss.Handle, prop int32, value float64) error {
	if err := e.ctx.live(); err != nil {
		return err
	}
	C.Obj_SetFloat64(h, C.int32_t(prop), C.double(value))
	return e.ctx.err()
}

func (e *objEngine) ObjSetInt32(h altdss.Handle, prop int32, value int32) error {
	if err := e.ctx.live(); err != nil {
		return err
	}
	C.Obj_SetInt32(h, C.int32_t(prop), C.int32_t(value))
	return e.ctx.err()
}

func (e *objEngine) ObjSetString(h altdss.Handle, prop int32, value string) error {
	if err := e.ctx.live(); err != nil {
		return err
	}
	return e.ctx.withString(value, func(cs *C.char) { C.Obj_SetString(h, C.int32_t(prop), cs) })
}

func (e *objEngine) ObjSetAsString(h altdss.Handle, prop int32, value string) error {
	if err := e.ctx.live(); err != nil {
		return err
	}
	return e.ctx.withString(value, func(cs *C.char) { C.Obj_SetAsString(h, C.int32_t(prop), cs) })
}

func (e *objEngine) ObjSetObject(h altdss.Handle, prop int32, value altdss.Handle) error {
	if err := e.ctx.live(); err != nil {
		return err
	}
	C.Obj_SetObject(h, C.int32_t(prop), value)
	return e.ctx.err()
}

func (e *objEngine) ObjSetFloat64Array(h altdss.Handle, prop int32, value []float64) error {
	if err := e.ctx.live(); err != nil {
		return err
	}
	ptr, cnt := cfloat64s(value)
	C.Obj_SetFloat64Array(h, C.int32_t(prop), ptr, cnt)
	return e.ctx.err()
}

func (e *objEngine) ObjSetInt32Array(h altdss.Handle, prop int32, value []int32) error {
	if err := e.ctx.live(); err != nil {
		return err
	}
	ptr, cnt := cint32s(value)
	C.Obj_SetInt32Array(h, C.int32_t(prop), ptr, cnt)
	return e.ctx.err()
}

func (e *objEngine) ObjSetStringArray(h altdss.Handle, prop int32, value []string) error {
	if err := e.ctx.live(); err != nil {
		return err
	}
	return e.ctx.withStrings(value, func(arr **C.char, cnt C.int32_t) { C.Obj_SetStringArray(h, C.int32_t(prop), arr, cnt) })
}

// ObjSetObjectArray passes the handles from C memory; handles are engine
// pointers and may not be stored in Go memory that cgo checks.
func (e *objEngine) ObjSetObjectArray(h altdss.Handle, prop int32, value []altdss.Handle) error {
	if err := e.ctx.live(); err != nil {
		return err
	}
	if len(value) == 0 {
		C.Obj_SetObjectArray(h, C.int32_t(prop), nil, 0)
		return e.ctx.err()
	}
	arr := (*unsafe.Pointer)(C.malloc(C.size_t(len(value)) * C.size_t(unsafe.Sizeof(uintptr(0)))))
	copy(unsafe.Slice(arr, len(value)), value)
	C.Obj_SetObjectArray(h, C.int32_t(prop), arr, C.int32_t(len(value)))
	C.free(unsafe.Pointer(arr))
	return e.ctx.err()
}

func (e *objEngine) ObjBeginEdit(h altdss.Handle) error {
	if err := e.ctx.live(); err != nil {
		return err
	}
	C.Obj_BeginEdit(h)
	return e.ctx.err()
}

func (e *objEngine) ObjEndEdit(h altdss.Handle, numChanges int32) error {
	if err := e.ctx.live(); err != nil {
		return err
	}
	C.Obj_EndEdit(h, C.int32_t(numChanges))
	return e.ctx.err()
}

func (e *objEngine) ObjActivate(h altdss.Handle, allLists bool) error {
	if err := e.ctx.live(); err != nil {
		return err
	}
	C.Obj_Activate(h, cbool(allLists))
	return e.ctx.err()
}

func (e *objEngine) ObjToJSON(h altdss.Handle, flags int32) (string, error) {
	if err := e.ctx.live(); err != nil {
		return "", err
	}
	return e.owned(C.Obj_ToJSON(h, C.int32_t(flags)))
}

func (e *objEngine) float64s(data **C.double, n C.int32_t) ([]float64, error) {
	defer C.DSS_Dispose_PDouble(data)
	if err := e.ctx.err(); err != nil {
		return nil, err
	}
	res := make([]float64, n)
	if n > 0 {
		copy(res, unsafe.Slice((*float64)(unsafe.Pointer(*data)), n))
	}
	return res, nil
}

func (e *objEngine) int32s(data **C.int32_t, n C.int32_t) ([]int32, error) {
	defer C.DSS_Dispose_PInteger(data)
	if err := e.ctx.err(); err != nil {
		return nil, err
	}
	res := make([]int32, n)
	if n > 0 {
		copy(res, unsafe.Slice((*int32)(unsafe.Pointer(*data)), n))
	}
	return res, nil
}

func (e *objEngine) handles(data **unsafe.Pointer, n C.int32_t) ([]altdss.Handle, error) {
	defer C.DSS_Dispose_PPointer(data)
	if err := e.ctx.err(); err != nil {
		return nil, err
	}
	res := make([]altdss.Handle, n)
	if n > 0 {
		copy(res, unsafe.Slice(*data, n))
	}
	return res, nil
}

// Batches

func (e *objEngine) raw(create func(data **unsafe.Pointer, cnt *C.int32_t)) (altdss.RawBatch, error) {
	var data *unsafe.Pointer
	var cnt [4]C.int32_t
	create(&data, &cnt[0])
	if err := e.ctx.err(); err != nil {
		if data != nil {
			C.Batch_Dispose(data)
		}
		return altdss.RawBatch{}, err
	}
	return altdss.RawBatch{Ptr: unsafe.Pointer(data), Count: int32(cnt[0])}, nil
}

func batchPtr(b altdss.RawBatch) *unsafe.Pointer { return (*unsafe.Pointer)(b.Ptr) }

func (e *objEngine) BatchByClass(cls int32) (altdss.RawBatch, error) {
	return e.raw(func(data **unsafe.Pointer, cnt *C.int32_t) {
		C.ctx_Batch_CreateByClass(e.ctx.ptr, data, cnt, C.int32_t(cls))
	})
}

func (e *objEngine) BatchByRegExp(cls int32, re string) (altdss.RawBatch, error) {
	return cstr(re, func(cs *C.char) (altdss.RawBatch, error) {
		return e.raw(func(data **unsafe.Pointer, cnt *C.int32_t) {
			C.ctx_Batch_CreateByRegExp(e.ctx.ptr, data, cnt, C.int32_t(cls), cs)
		})
	})
}

func (e *objEngine) BatchByIndex(cls int32, idx []int32) (altdss.RawBatch, error) {
	ptr, n := cint32s(idx)
	return e.raw(func(data **unsafe.Pointer, cnt *C.int32_t) {
		C.ctx_Batch_CreateByIndex(e.ctx.ptr, data, cnt, C.int32_t(cls), ptr, n)
	})
}

func (e *objEngine) BatchByInt32Property(cls int32, prop int32, value int32) (altdss.RawBatch, error) {
	return e.raw(func(data **unsafe.Pointer, cnt *C.int32_t) {
		C.ctx_Batch_CreateByInt32Property(e.ctx.ptr, data, cnt, C.int32_t(cls), C.int32_t(prop), C.int32_t(value))
	})
}

func (e *objEngine) BatchFromNew(cls int32, names []string, beginEdit bool) (altdss.RawBatch, error) {
	var res altdss.RawBatch
	var rerr error
	err := e.ctx.withStrings(names, func(arr **C.char, n C.int32_t) {
		res, rerr = e.raw(func(data **unsafe.Pointer, cnt *C.int32_t) {
			C.ctx_Batch_CreateFromNew(e.ctx.ptr, data, cnt, C.int32_t(cls), arr, n, cbool(beginEdit))
		})
	})
	if rerr != nil {
		return altdss.RawBatch{}, rerr
	}
	return res, err
}

func (e *objEngine) BatchDispose(b altdss.RawBatch) {
	if b.Ptr == nil {
		return
	}
	C.Batch_Dispose(batchPtr(b))
}

func (e *objEngine) BatchHandles(b altdss.RawBatch) []altdss.Handle {
	res := make([]altdss.Handle, b.Count)
	if b.Count > 0 {
		copy(res, unsafe.Slice(batchPtr(b), b.Count))
	}
	return res
}

func (e *objEngine) BatchFloat64(b altdss.RawBatch, prop int32) ([]float64, error) {
	if err := e.ctx.live(); err != nil {
		return nil, err
	}
	var data *C.double
	var cnt [4]C.int32_t
	C.Batch_GetFloat64(&data, &cnt[0], batchPtr(b), C.int32_t(b.Count), C.int32_t(prop))
	return e.float64s(&data, cnt[0])
}

func (e *objEngine) BatchInt32(b altdss.RawBatch, prop int32) ([]int32, error) {
	if err := e.ctx.live(); err != nil {
		return nil, err
	}
	var data *C.int32_t
	var cnt [4]C.int32_t
	C.Batch_GetInt32(&data, &cnt[0], batchPtr(b), C.int32_t(b.Count), C.int32_t(prop))
	return e.int32s(&data, cnt[0])
}

func (e *objEngine) BatchString(b altdss.RawBatch, prop int32) ([]string, error) {
	if err := e.ctx.live(); err != nil {
		return nil, err
	}
	return e.ctx.strings(func(data ***C.char, cnt *C.int32_t) {
		C.Batch_GetString(data, cnt, batchPtr(b), C.int32_t(b.Count), C.int32_t(prop))
	})
}

func (e *objEngine) BatchObject(b altdss.RawBatch, prop int32) ([]altdss.Handle, error) {
	if err := e.ctx.live(); err != nil {
		return nil, err
	}
	var data *unsafe.Pointer
	var cnt [4]C.int32_t
	C.Batch_GetObject(&data, &cnt[0], batchPtr(b), C.int32_t(b.Count), C.int32_t(prop))
	return e.handles(&data, cnt[0])
}

func (e *objEngine) BatchSetFloat64(b altdss.RawBatch, prop int32, op altdss.BatchOp, value float64) error {
	if err := e.ctx.live(); err != nil {
		return err
	}
	C.Batch_Float64(batchPtr(b), C.int32_t(b.Count), C.int32_t(prop), C.int32_t(op), C.double(value))
	return e.ctx.err()
}

func (e *objEngine) BatchSetFloat64Array(b altdss.RawBatch, prop int32, op altdss.BatchOp, values []float64) error {
	if err := e.ctx.live(); err != nil {
		return err
	}
	if err := b.CheckLen(len(values)); err != nil {
		return err
	}
	ptr, _ := cfloat64s(values)
	C.Batch_Float64Array(batchPtr(b), C.int32_t(b.Count), C.int32_t(prop), C.int32_t(op), ptr)
	return e.ctx.err()
}

func (e *objEngine) BatchSetInt32(b altdss.RawBatch, prop int32, op altdss.BatchOp, value int32) error {
	if err := e.ctx.live(); err != nil {
		return err
	}
	C.Batch_Int32(batchPtr(b), C.int32_t(b.Count), C.int32_t(prop), C.int32_t(op), C.int32_t(value))
	return e.ctx.err()
}

func (e *objEngine) BatchSetInt32Array(b altdss.RawBatch, prop int32, op altdss.BatchOp, values []int32) error {
	if err := e.ctx.live(); err != nil {
		return err
	}
	if err := b.CheckLen(len(values)); err != nil {
		return err
	}
	ptr, _ := cint32s(values)
	C.Batch_Int32Array(batchPtr(b), C.int32_t(b.Count), C.int32_t(prop), C.int32_t(op), ptr)
	return e.ctx.err()
}

func (e *objEngine) BatchSetString(b altdss.RawBatch, prop int32, value string) error {
	if err := e.ctx.live(); err != nil {
		return err
	}
	return e.ctx.withString(value, func(cs *C.char) {
		C.Batch_SetString(batchPtr(b), C.int32_t(b.Count), C.int32_t(prop), cs)
	})
}

func (e *objEngine) BatchSetStringArray(b altdss.RawBatch, prop int32, values []string) error {
	if err := e.ctx.live(); err != nil {
		return err
	}
	if err := b.CheckLen(len(values)); err != nil {
		return err
	}
	return e.ctx.withStrings(values, func(arr **C.char, _ C.int32_t) {
		C.Batch_SetStringArray(batchPtr(b), C.int32_t(b.Count), C.int32_t(prop), arr)
	})
}

func (e *objEngine) BatchSetObject(b altdss.RawBatch, prop int32, value altdss.Handle) error {
	if err := e.ctx.live(); err != nil {
		return err
	}
	C.Batch_SetObject(batchPtr(b), C.int32_t(b.Count), C.int32_t(prop), value)
	return e.ctx.err()
}

func (e *objEngine) BatchBeginEdit(b altdss.RawBatch) error {
	if err := e.ctx.live(); err != nil {
		return err
	}
	C.Batch_BeginEdit(batchPtr(b), C.int32_t(b.Count))
	return e.ctx.err()
}

func (e *objEngine) BatchEndEdit(b altdss.RawBatch, numEdits int32) error {
	if err := e.ctx.live(); err != nil {
		return err
	}
	C.Batch_EndEdit(batchPtr(b), C.int32_t(b.Count), C.int32_t(numEdits))
	return e.ctx.err()
}

func (e *objEngine) BatchToJSON(b altdss.RawBatch, flags int32) (string, error) {
	if err := e.ctx.live(); err != nil {
		return "", err
	}
	return e.owned(C.Batch_ToJSON(batchPtr(b), C.int32_t(b.Count), C.int32_t(flags)))
}

