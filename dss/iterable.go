package dss

/*
#include <stdlib.h>
#include "dss_capi_ctx.h"
*/
import "C"

import (
	"iter"
	"unsafe"
)

// iterFuncs lists the native entry points shared by every element
// collection. Each collection provides its own table.
type iterFuncs struct {
	allNames func(p unsafe.Pointer, data ***C.char, cnt *C.int32_t)
	count    func(p unsafe.Pointer) C.int32_t
	first    func(p unsafe.Pointer) C.int32_t
	next     func(p unsafe.Pointer) C.int32_t
	name     func(p unsafe.Pointer) *C.char
	setName  func(p unsafe.Pointer, v *C.char)
	idx      func(p unsafe.Pointer) C.int32_t
	setIdx   func(p unsafe.Pointer, v C.int32_t)
}

// Iterable implements the common members of the element collections
// (Lines, Loads, Transformers, ...).
type Iterable struct {
	ICommonData
	fn *iterFuncs
}

func (it *Iterable) bind(ctx *dssContext, fn *iterFuncs) {
	it.ICommonData.bind(ctx)
	it.fn = fn
}

// Array of strings with all names of the elements in the collection.
func (it *Iterable) AllNames() ([]string, error) {
	return it.ctx.strings(func(data ***C.char, cnt *C.int32_t) { it.fn.allNames(it.ptr, data, cnt) })
}

// Number of elements in the collection.
func (it *Iterable) Count() (int32, error) { return it.ctx.i32(it.fn.count(it.ptr)) }

// Sets the first element active. Returns 0 if there are none.
func (it *Iterable) First() (int32, error) { return it.ctx.i32(it.fn.first(it.ptr)) }

// Sets the next element active. Returns 0 when the collection is exhausted.
func (it *Iterable) Next() (int32, error) { return it.ctx.i32(it.fn.next(it.ptr)) }

// Gets the name of the active element.
func (it *Iterable) Get_Name() (string, error) { return it.ctx.str(it.fn.name(it.ptr)) }

// Sets the active element by name.
func (it *Iterable) Set_Name(value string) error {
	return it.ctx.withString(value, func(cs *C.char) { it.fn.setName(it.ptr, cs) })
}

// Gets the (1-based) index of the active element.
func (it *Iterable) Get_idx() (int32, error) { return it.ctx.i32(it.fn.idx(it.ptr)) }

// Sets the active element by its (1-based) index.
func (it *Iterable) Set_idx(value int32) error {
	it.fn.setIdx(it.ptr, C.int32_t(value))
	return it.ctx.err()
}

// Items activates each element in turn, yielding its name. Iteration stops
// at the first error, which is yielded with an empty name.
//
//	for name, err := range dss.ActiveCircuit.Lines.Items() { ... }
func (it *Iterable) Items() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		idx, err := it.First()
		for ; err == nil && idx != 0; idx, err = it.Next() {
			name, err := it.Get_Name()
			if err != nil {
				yield("", err)
				return
			}
			if !yield(name, nil) {
				return
			}
		}
		if err != nil {
			yield("", err)
		}
	}
}
