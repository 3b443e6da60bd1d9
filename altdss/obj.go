package altdss

import (
	"github.com/dss-extensions/dss-go/enums"
)

// Obj is a handle to one DSS object. The zero value is not usable; objects
// come from a Collection, a Batch or an object-valued property.
//
// The handle is only valid while the native object exists; clearing the
// circuit invalidates every Obj taken from it.
type Obj struct {
	a   *AltDSS
	cls *Class
	h   Handle
}

func (o Obj) base() Obj      { return o }
func (o Obj) Handle() Handle { return o.h }
func (o Obj) Class() *Class  { return o.cls }

// IsNil reports whether o refers to no object (an unset object property).
func (o Obj) IsNil() bool { return o.h == nil }

func (o Obj) Name() (string, error) {
	return o.a.e.ObjName(o.h)
}

func (o Obj) ClassName() (string, error) {
	return o.a.e.ObjClassName(o.h)
}

// FullName returns "class.name", as used by DSS scripts.
func (o Obj) FullName() (string, error) {
	cls, err := o.ClassName()
	if err != nil {
		return "", err
	}
	name, err := o.Name()
	if err != nil {
		return "", err
	}
	return cls + "." + name, nil
}

// Index is the 1-based position of the object in its class.
func (o Obj) Index() (int32, error) {
	return o.a.e.ObjIndex(o.h)
}

func (o Obj) NumProperties() (int32, error) {
	return o.a.e.ObjNumProperties(o.h)
}

func (o Obj) Float64(prop int32) (float64, error) { return o.a.e.ObjFloat64(o.h, prop) }
func (o Obj) Int32(prop int32) (int32, error)     { return o.a.e.ObjInt32(o.h, prop) }
func (o Obj) String(prop int32) (string, error)   { return o.a.e.ObjString(o.h, prop) }

func (o Obj) Float64s(prop int32) ([]float64, error) { return o.a.e.ObjFloat64Array(o.h, prop) }
func (o Obj) Int32s(prop int32) ([]int32, error)     { return o.a.e.ObjInt32Array(o.h, prop) }
func (o Obj) Strings(prop int32) ([]string, error)   { return o.a.e.ObjStringArray(o.h, prop) }

func (o Obj) SetFloat64(prop int32, value float64) error {
	return o.a.e.ObjSetFloat64(o.h, prop, value)
}

func (o Obj) SetInt32(prop int32, value int32) error {
	return o.a.e.ObjSetInt32(o.h, prop, value)
}

func (o Obj) SetString(prop int32, value string) error {
	return o.a.e.ObjSetString(o.h, prop, value)
}

func (o Obj) SetFloat64s(prop int32, value []float64) error {
	return o.a.e.ObjSetFloat64Array(o.h, prop, value)
}

func (o Obj) SetInt32s(prop int32, value []int32) error {
	return o.a.e.ObjSetInt32Array(o.h, prop, value)
}

func (o Obj) SetStrings(prop int32, value []string) error {
	return o.a.e.ObjSetStringArray(o.h, prop, value)
}

// Object reads an object-valued property. An unset reference yields an Obj
// for which IsNil is true.
func (o Obj) Object(prop int32) (Obj, error) {
	h, err := o.a.e.ObjObject(o.h, prop)
	if err != nil || h == nil {
		return Obj{a: o.a}, err
	}
	return o.a.wrap(h)
}

func (o Obj) Objects(prop int32) ([]Obj, error) {
	hs, err := o.a.e.ObjObjectArray(o.h, prop)
	if err != nil {
		return nil, err
	}
	res := make([]Obj, len(hs))
	for i, h := range hs {
		if res[i], err = o.a.wrap(h); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// SetObject points an object-valued property to value; a nil Obj clears it.
func (o Obj) SetObject(prop int32, value Obj) error {
	return o.a.e.ObjSetObject(o.h, prop, value.h)
}

func (o Obj) SetObjects(prop int32, value []Obj) error {
	hs := make([]Handle, len(value))
	for i, v := range value {
		hs[i] = v.h
	}
	return o.a.e.ObjSetObjectArray(o.h, prop, hs)
}

// Get returns a property, looked up by name, in its DSS script text form.
func (o Obj) Get(name string) (string, error) {
	p, err := o.cls.Property(name)
	if err != nil {
		return "", err
	}
	return o.a.e.ObjAsString(o.h, p.Index)
}

// Set assigns a property, looked up by name, from its DSS script text form.
func (o Obj) Set(name, value string) error {
	p, err := o.cls.Property(name)
	if err != nil {
		return err
	}
	return o.a.e.ObjSetAsString(o.h, p.Index, value)
}

func (o Obj) BeginEdit() error { return o.a.e.ObjBeginEdit(o.h) }

func (o Obj) EndEdit(numChanges int32) error { return o.a.e.ObjEndEdit(o.h, numChanges) }

// Edit runs fn between BeginEdit and EndEdit. The edit is closed even when
// fn fails; the first error wins.
func (o Obj) Edit(fn func() error) error {
	if err := o.BeginEdit(); err != nil {
		return err
	}
	ferr := fn()
	if err := o.EndEdit(1); ferr == nil {
		ferr = err
	}
	return ferr
}

// Activate makes o the active element of its class, and of the circuit
// element lists when allLists is set.
func (o Obj) Activate(allLists bool) error {
	return o.a.e.ObjActivate(o.h, allLists)
}

func (o Obj) ToJSON(flags enums.JSONFlags) (string, error) {
	return o.a.e.ObjToJSON(o.h, int32(flags))
}
