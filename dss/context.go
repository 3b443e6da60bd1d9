package dss

import (
	"context"
	"fmt"
	"unsafe"

	"github.com/google/uuid"

	"github.com/dss-extensions/dss-go/dsserr"
	"github.com/dss-extensions/dss-go/internal/codec"
	"github.com/dss-extensions/dss-go/logging"
)

/*
#cgo LDFLAGS: -ldss_capi -Wl,-rpath,$ORIGIN
#include <stdlib.h>
#include "dss_capi_ctx.h"
*/
import "C"

const DSS_CAPI_VERSION = "0.14.0b1"

// dssContext holds the native context pointer and the pointers the engine
// hands out once per context: the error number and the GR buffers.
type dssContext struct {
	ptr unsafe.Pointer

	errorNumber *int32

	// Pointers for the GR buffers
	countPDouble  *[4]int32
	countPPChar   *[4]int32
	countPInteger *[4]int32
	countPByte    *[4]int32

	dataPDouble  **float64
	dataPInteger **int32
	dataPByte    **uint8
	dataPPChar   ***C.char

	id  uuid.UUID
	log logging.Logger

	// Set by IDSS.Dispose. The native context stays allocated, emptied,
	// until release runs, so bound interfaces never see freed memory.
	disposed bool
}

func newContext(ptr unsafe.Pointer, log logging.Logger) *dssContext {
	c := &dssContext{ptr: ptr, id: uuid.New()}
	c.log = log.With("ctx", c.id.String())
	c.errorNumber = (*int32)(unsafe.Pointer(C.ctx_Error_Get_NumberPtr(ptr)))

	C.ctx_DSS_GetGRPointers(
		ptr,
		&c.dataPPChar,
		(***C.double)(unsafe.Pointer(&c.dataPDouble)),
		(***C.int32_t)(unsafe.Pointer(&c.dataPInteger)),
		(***C.int8_t)(unsafe.Pointer(&c.dataPByte)),
		(**C.int32_t)(unsafe.Pointer(&c.countPPChar)),
		(**C.int32_t)(unsafe.Pointer(&c.countPDouble)),
		(**C.int32_t)(unsafe.Pointer(&c.countPInteger)),
		(**C.int32_t)(unsafe.Pointer(&c.countPByte)),
	)
	return c
}

// release frees the native context. It runs as the finalizer of a disposed
// context.
func (c *dssContext) release() {
	C.ctx_Dispose(c.ptr)
	c.log.Debug(context.Background(), "native context released")
}

// live fails with ErrDisposed once the context is disposed.
func (c *dssContext) live() error {
	if c.disposed {
		return fmt.Errorf("context %s: %w", c.id, dsserr.ErrDisposed)
	}
	return nil
}

// err reports the engine's pending error, if any, and clears it. On a
// disposed context every call fails with ErrDisposed.
func (c *dssContext) err() error {
	if c.disposed {
		*c.errorNumber = 0
		return c.live()
	}
	if *c.errorNumber == 0 {
		return nil
	}
	err := dsserr.New(*c.errorNumber, C.GoString(C.ctx_Error_Get_Description(c.ptr)))
	*c.errorNumber = 0
	return err
}

func (c *dssContext) i32(v C.int32_t) (int32, error)  { return int32(v), c.err() }
func (c *dssContext) f64(v C.double) (float64, error) { return float64(v), c.err() }
func (c *dssContext) flag(v C.uint16_t) (bool, error) { return v != 0, c.err() }
func (c *dssContext) str(v *C.char) (string, error)   { return C.GoString(v), c.err() }

func (c *dssContext) float64s() ([]float64, error) {
	err := c.err()
	n := (*c.countPDouble)[0]
	res := make([]float64, n)
	if n > 0 {
		copy(res, unsafe.Slice(*c.dataPDouble, n))
	}
	return res, err
}

func (c *dssContext) int32s() ([]int32, error) {
	err := c.err()
	n := (*c.countPInteger)[0]
	res := make([]int32, n)
	if n > 0 {
		copy(res, unsafe.Slice(*c.dataPInteger, n))
	}
	return res, err
}

func (c *dssContext) bytes() ([]byte, error) {
	err := c.err()
	n := (*c.countPByte)[0]
	res := make([]byte, n)
	if n > 0 {
		copy(res, unsafe.Slice(*c.dataPByte, n))
	}
	return res, err
}

func (c *dssContext) complexes() ([]complex128, error) {
	values, err := c.float64s()
	if err != nil {
		return nil, err
	}
	return codec.Complex(values)
}

func (c *dssContext) complex() (complex128, error) {
	values, err := c.float64s()
	if err != nil {
		return 0, err
	}
	return codec.ComplexScalar(values)
}

// strings copies a string array allocated by the engine and releases it.
func (c *dssContext) strings(call func(data ***C.char, cnt *C.int32_t)) ([]string, error) {
	var cnt [4]C.int32_t
	var data **C.char
	call(&data, &cnt[0])
	err := c.err()
	n := int(cnt[0])
	res := make([]string, n)
	if n > 0 && data != nil {
		for i, s := range unsafe.Slice(data, n) {
			res[i] = C.GoString(s)
		}
	}
	C.DSS_Dispose_PPAnsiChar(&data, cnt[0])
	return res, err
}

func (c *dssContext) withString(s string, call func(cs *C.char)) error {
	cs := C.CString(s)
	call(cs)
	C.free(unsafe.Pointer(cs))
	return c.err()
}

// withStrings passes values as a C array of C strings. Both the array and
// the strings live in C memory for the duration of the call.
func (c *dssContext) withStrings(values []string, call func(arr **C.char, cnt C.int32_t)) error {
	n := len(values)
	if n == 0 {
		call(nil, 0)
		return c.err()
	}
	arr := (**C.char)(C.malloc(C.size_t(n) * C.size_t(unsafe.Sizeof(uintptr(0)))))
	slots := unsafe.Slice(arr, n)
	for i, s := range values {
		slots[i] = C.CString(s)
	}
	call(arr, C.int32_t(n))
	for _, s := range slots {
		C.free(unsafe.Pointer(s))
	}
	C.free(unsafe.Pointer(arr))
	return c.err()
}

// cstr calls fn with a temporary C copy of s.
func cstr[T any](s string, fn func(cs *C.char) T) T {
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))
	return fn(cs)
}

func asEnum[T ~int32](v int32, err error) (T, error) { return T(v), err }

func cbool(v bool) C.uint16_t {
	if v {
		return 1
	}
	return 0
}

func cfloat64s(v []float64) (*C.double, C.int32_t) {
	if len(v) == 0 {
		return nil, 0
	}
	return (*C.double)(unsafe.Pointer(&v[0])), C.int32_t(len(v))
}

func cint32s[T ~int32](v []T) (*C.int32_t, C.int32_t) {
	if len(v) == 0 {
		return nil, 0
	}
	return (*C.int32_t)(unsafe.Pointer(&v[0])), C.int32_t(len(v))
}

// ccomplex and ccomplexes pass complex values as interleaved doubles.
func ccomplex(v complex128) (*C.double, C.int32_t) {
	return cfloat64s([]float64{real(v), imag(v)})
}

func ccomplexes(v []complex128) (*C.double, C.int32_t) {
	if len(v) == 0 {
		return nil, 0
	}
	return (*C.double)(unsafe.Pointer(&v[0])), C.int32_t(2 * len(v))
}

// ICommonData is shared across all interfaces and owned by IDSS.
type ICommonData struct {
	ptr unsafe.Pointer
	ctx *dssContext
}

func (common *ICommonData) bind(ctx *dssContext) {
	common.ctx = ctx
	common.ptr = ctx.ptr
}
