package altdss

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/dss-extensions/dss-go/dsserr"
	"github.com/dss-extensions/dss-go/enums"
)

// Batch is a set of objects of one class, backed by a native pointer array.
//
// The array is released by Dispose or, failing that, when the Batch is
// garbage collected. Every method keeps the Batch reachable until its engine
// call returns, so the finalizer never runs while the array is in use. Any
// use after Dispose returns dsserr.ErrDisposed.
type Batch struct {
	a   *AltDSS
	cls *Class

	mu   sync.Mutex
	raw  RawBatch
	gone bool
}

func newBatch(a *AltDSS, cls *Class, raw RawBatch) *Batch {
	b := &Batch{a: a, cls: cls, raw: raw}
	runtime.SetFinalizer(b, (*Batch).finalize)
	return b
}

func (b *Batch) finalize() {
	if b.gone {
		return
	}
	b.a.e.BatchDispose(b.raw)
	b.a.log.Debug(context.Background(), "batch finalized", "class", b.cls.Name, "count", b.raw.Count)
}

// Dispose releases the native array. It is safe to call more than once.
func (b *Batch) Dispose() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.gone {
		return
	}
	b.gone = true
	b.a.e.BatchDispose(b.raw)
	runtime.SetFinalizer(b, nil)
}

func (b *Batch) Class() *Class { return b.cls }

// Len is the number of objects in the batch, 0 once disposed.
func (b *Batch) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.gone {
		return 0
	}
	return int(b.raw.Count)
}

func (b *Batch) get() (RawBatch, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.gone {
		return RawBatch{}, fmt.Errorf("%s batch: %w", b.cls.Name, dsserr.ErrDisposed)
	}
	return b.raw, nil
}

func (b *Batch) sized(n int) (RawBatch, error) {
	raw, err := b.get()
	if err != nil {
		return raw, err
	}
	return raw, raw.CheckLen(n)
}

// Objs returns the members of the batch.
func (b *Batch) Objs() ([]Obj, error) {
	raw, err := b.get()
	defer runtime.KeepAlive(b)
	if err != nil {
		return nil, err
	}
	hs := b.a.e.BatchHandles(raw)
	res := make([]Obj, len(hs))
	for i, h := range hs {
		res[i] = Obj{a: b.a, cls: b.cls, h: h}
	}
	return res, nil
}

func (b *Batch) Names() ([]string, error) {
	objs, err := b.Objs()
	if err != nil {
		return nil, err
	}
	res := make([]string, len(objs))
	for i, o := range objs {
		if res[i], err = o.Name(); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (b *Batch) Float64(prop int32) ([]float64, error) {
	raw, err := b.get()
	defer runtime.KeepAlive(b)
	if err != nil {
		return nil, err
	}
	return b.a.e.BatchFloat64(raw, prop)
}

// SetFloat64 assigns the same value to every object.
func (b *Batch) SetFloat64(prop int32, value float64) error {
	return b.ApplyFloat64(prop, BatchOp_Set, value)
}

// ApplyFloat64 combines value with the current value of every object.
func (b *Batch) ApplyFloat64(prop int32, op BatchOp, value float64) error {
	raw, err := b.get()
	defer runtime.KeepAlive(b)
	if err != nil {
		return err
	}
	return b.a.e.BatchSetFloat64(raw, prop, op, value)
}

// SetFloat64s assigns one value per object, in batch order.
func (b *Batch) SetFloat64s(prop int32, values []float64) error {
	return b.ApplyFloat64s(prop, BatchOp_Set, values)
}

func (b *Batch) ApplyFloat64s(prop int32, op BatchOp, values []float64) error {
	raw, err := b.sized(len(values))
	defer runtime.KeepAlive(b)
	if err != nil {
		return err
	}
	return b.a.e.BatchSetFloat64Array(raw, prop, op, values)
}

func (b *Batch) Int32(prop int32) ([]int32, error) {
	raw, err := b.get()
	defer runtime.KeepAlive(b)
	if err != nil {
		return nil, err
	}
	return b.a.e.BatchInt32(raw, prop)
}

func (b *Batch) SetInt32(prop int32, value int32) error {
	return b.ApplyInt32(prop, BatchOp_Set, value)
}

func (b *Batch) ApplyInt32(prop int32, op BatchOp, value int32) error {
	raw, err := b.get()
	defer runtime.KeepAlive(b)
	if err != nil {
		return err
	}
	return b.a.e.BatchSetInt32(raw, prop, op, value)
}

func (b *Batch) SetInt32s(prop int32, values []int32) error {
	return b.ApplyInt32s(prop, BatchOp_Set, values)
}

func (b *Batch) ApplyInt32s(prop int32, op BatchOp, values []int32) error {
	raw, err := b.sized(len(values))
	defer runtime.KeepAlive(b)
	if err != nil {
		return err
	}
	return b.a.e.BatchSetInt32Array(raw, prop, op, values)
}

func (b *Batch) String(prop int32) ([]string, error) {
	raw, err := b.get()
	defer runtime.KeepAlive(b)
	if err != nil {
		return nil, err
	}
	return b.a.e.BatchString(raw, prop)
}

func (b *Batch) SetString(prop int32, value string) error {
	raw, err := b.get()
	defer runtime.KeepAlive(b)
	if err != nil {
		return err
	}
	return b.a.e.BatchSetString(raw, prop, value)
}

func (b *Batch) SetStrings(prop int32, values []string) error {
	raw, err := b.sized(len(values))
	defer runtime.KeepAlive(b)
	if err != nil {
		return err
	}
	return b.a.e.BatchSetStringArray(raw, prop, values)
}

// Objects reads an object-valued property of every member. Unset
// references come back as Objs for which IsNil is true.
func (b *Batch) Objects(prop int32) ([]Obj, error) {
	raw, err := b.get()
	defer runtime.KeepAlive(b)
	if err != nil {
		return nil, err
	}
	hs, err := b.a.e.BatchObject(raw, prop)
	if err != nil {
		return nil, err
	}
	res := make([]Obj, len(hs))
	for i, h := range hs {
		if h == nil {
			res[i] = Obj{a: b.a}
			continue
		}
		if res[i], err = b.a.wrap(h); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (b *Batch) SetObject(prop int32, value Obj) error {
	raw, err := b.get()
	defer runtime.KeepAlive(b)
	if err != nil {
		return err
	}
	return b.a.e.BatchSetObject(raw, prop, value.h)
}

// Get reads a property by name from every member, in DSS script text form.
func (b *Batch) Get(name string) ([]string, error) {
	p, err := b.cls.Property(name)
	if err != nil {
		return nil, err
	}
	objs, err := b.Objs()
	if err != nil {
		return nil, err
	}
	res := make([]string, len(objs))
	for i, o := range objs {
		if res[i], err = b.a.e.ObjAsString(o.h, p.Index); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Set assigns a property by name on every member from its text form.
func (b *Batch) Set(name, value string) error {
	p, err := b.cls.Property(name)
	if err != nil {
		return err
	}
	objs, err := b.Objs()
	if err != nil {
		return err
	}
	for _, o := range objs {
		if err := b.a.e.ObjSetAsString(o.h, p.Index, value); err != nil {
			return err
		}
	}
	return nil
}

// Edit runs fn between BeginEdit and EndEdit on all members.
func (b *Batch) Edit(fn func() error) error {
	raw, err := b.get()
	defer runtime.KeepAlive(b)
	if err != nil {
		return err
	}
	if err := b.a.e.BatchBeginEdit(raw); err != nil {
		return err
	}
	ferr := fn()
	if err := b.a.e.BatchEndEdit(raw, 1); ferr == nil {
		ferr = err
	}
	return ferr
}

func (b *Batch) ToJSON(flags enums.JSONFlags) (string, error) {
	raw, err := b.get()
	defer runtime.KeepAlive(b)
	if err != nil {
		return "", err
	}
	return b.a.e.BatchToJSON(raw, int32(flags))
}
