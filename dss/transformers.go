package dss

/*
#include <stdlib.h>
#include "dss_capi_ctx.h"
*/
import "C"

import (
	"unsafe"

	"github.com/dss-extensions/dss-go/enums"
)

type ITransformers struct {
	Iterable
}

var transformersIter = iterFuncs{
	allNames: func(p unsafe.Pointer, data ***C.char, cnt *C.int32_t) { C.ctx_Transformers_Get_AllNames(p, data, cnt) },
	count:    func(p unsafe.Pointer) C.int32_t { return C.ctx_Transformers_Get_Count(p) },
	first:    func(p unsafe.Pointer) C.int32_t { return C.ctx_Transformers_Get_First(p) },
	next:     func(p unsafe.Pointer) C.int32_t { return C.ctx_Transformers_Get_Next(p) },
	name:     func(p unsafe.Pointer) *C.char { return C.ctx_Transformers_Get_Name(p) },
	setName:  func(p unsafe.Pointer, v *C.char) { C.ctx_Transformers_Set_Name(p, v) },
	idx:      func(p unsafe.Pointer) C.int32_t { return C.ctx_Transformers_Get_idx(p) },
	setIdx:   func(p unsafe.Pointer, v C.int32_t) { C.ctx_Transformers_Set_idx(p, v) },
}

// Active Winding delta or wye connection?
func (t *ITransformers) Get_IsDelta() (bool, error) {
	return t.ctx.flag(C.ctx_Transformers_Get_IsDelta(t.ptr))
}

func (t *ITransformers) Set_IsDelta(value bool) error {
	C.ctx_Transformers_Set_IsDelta(t.ptr, cbool(value))
	return t.ctx.err()
}

// Active Winding maximum tap in per-unit.
func (t *ITransformers) Get_MaxTap() (float64, error) {
	return t.ctx.f64(C.ctx_Transformers_Get_MaxTap(t.ptr))
}

func (t *ITransformers) Set_MaxTap(value float64) error {
	C.ctx_Transformers_Set_MaxTap(t.ptr, C.double(value))
	return t.ctx.err()
}

// Active Winding minimum tap in per-unit.
func (t *ITransformers) Get_MinTap() (float64, error) {
	return t.ctx.f64(C.ctx_Transformers_Get_MinTap(t.ptr))
}

func (t *ITransformers) Set_MinTap(value float64) error {
	C.ctx_Transformers_Set_MinTap(t.ptr, C.double(value))
	return t.ctx.err()
}

// Active Winding number of tap steps betwein MinTap and MaxTap.
func (t *ITransformers) Get_NumTaps() (int32, error) {
	return t.ctx.i32(C.ctx_Transformers_Get_NumTaps(t.ptr))
}

func (t *ITransformers) Set_NumTaps(value int32) error {
	C.ctx_Transformers_Set_NumTaps(t.ptr, C.int32_t(value))
	return t.ctx.err()
}

// Number of windings on this transformer. Allocates memory; set or change this property first.
func (t *ITransformers) Get_NumWindings() (int32, error) {
	return t.ctx.i32(C.ctx_Transformers_Get_NumWindings(t.ptr))
}

func (t *ITransformers) Set_NumWindings(value int32) error {
	C.ctx_Transformers_Set_NumWindings(t.ptr, C.int32_t(value))
	return t.ctx.err()
}

// Active Winding resistance in %
func (t *ITransformers) Get_R() (float64, error) { return t.ctx.f64(C.ctx_Transformers_Get_R(t.ptr)) }

func (t *ITransformers) Set_R(value float64) error {
	C.ctx_Transformers_Set_R(t.ptr, C.double(value))
	return t.ctx.err()
}

// Active Winding neutral resistance [ohms] for wye connections. Set less than zero for ungrounded wye.
func (t *ITransformers) Get_Rneut() (float64, error) {
	return t.ctx.f64(C.ctx_Transformers_Get_Rneut(t.ptr))
}

func (t *ITransformers) Set_Rneut(value float64) error {
	C.ctx_Transformers_Set_Rneut(t.ptr, C.double(value))
	return t.ctx.err()
}

// Active Winding tap in per-unit.
func (t *ITransformers) Get_Tap() (float64, error) { return t.ctx.f64(C.ctx_Transformers_Get_Tap(t.ptr)) }

func (t *ITransformers) Set_Tap(value float64) error {
	C.ctx_Transformers_Set_Tap(t.ptr, C.double(value))
	return t.ctx.err()
}

// Active Winding Number from 1..NumWindings. Update this before reading or setting a sequence of winding properties (R, Tap, kV, kVA, etc.)
func (t *ITransformers) Get_Wdg() (int32, error) { return t.ctx.i32(C.ctx_Transformers_Get_Wdg(t.ptr)) }

func (t *ITransformers) Set_Wdg(value int32) error {
	C.ctx_Transformers_Set_Wdg(t.ptr, C.int32_t(value))
	return t.ctx.err()
}

// Name of an XfrmCode that supplies electircal parameters for this Transformer.
func (t *ITransformers) Get_XfmrCode() (string, error) {
	return t.ctx.str(C.ctx_Transformers_Get_XfmrCode(t.ptr))
}

func (t *ITransformers) Set_XfmrCode(value string) error {
	return t.ctx.withString(value, func(cs *C.char) { C.ctx_Transformers_Set_XfmrCode(t.ptr, cs) })
}

// Percent reactance between windings 1 and 2, on winding 1 kVA base. Use for 2-winding or 3-winding transformers.
func (t *ITransformers) Get_Xhl() (float64, error) { return t.ctx.f64(C.ctx_Transformers_Get_Xhl(t.ptr)) }

func (t *ITransformers) Set_Xhl(value float64) error {
	C.ctx_Transformers_Set_Xhl(t.ptr, C.double(value))
	return t.ctx.err()
}

// Percent reactance between windigns 1 and 3, on winding 1 kVA base.  Use for 3-winding transformers only.
func (t *ITransformers) Get_Xht() (float64, error) { return t.ctx.f64(C.ctx_Transformers_Get_Xht(t.ptr)) }

func (t *ITransformers) Set_Xht(value float64) error {
	C.ctx_Transformers_Set_Xht(t.ptr, C.double(value))
	return t.ctx.err()
}

// Percent reactance between windings 2 and 3, on winding 1 kVA base. Use for 3-winding transformers only.
func (t *ITransformers) Get_Xlt() (float64, error) { return t.ctx.f64(C.ctx_Transformers_Get_Xlt(t.ptr)) }

func (t *ITransformers) Set_Xlt(value float64) error {
	C.ctx_Transformers_Set_Xlt(t.ptr, C.double(value))
	return t.ctx.err()
}

// Active Winding neutral reactance [ohms] for wye connections.
func (t *ITransformers) Get_Xneut() (float64, error) {
	return t.ctx.f64(C.ctx_Transformers_Get_Xneut(t.ptr))
}

func (t *ITransformers) Set_Xneut(value float64) error {
	C.ctx_Transformers_Set_Xneut(t.ptr, C.double(value))
	return t.ctx.err()
}

// Active Winding kV rating.  Phase-phase for 2 or 3 phases, actual winding kV for 1 phase transformer.
func (t *ITransformers) Get_kV() (float64, error) { return t.ctx.f64(C.ctx_Transformers_Get_kV(t.ptr)) }

func (t *ITransformers) Set_kV(value float64) error {
	C.ctx_Transformers_Set_kV(t.ptr, C.double(value))
	return t.ctx.err()
}

// Active Winding kVA rating. On winding 1, this also determines normal and emergency current ratings for all windings.
func (t *ITransformers) Get_kVA() (float64, error) { return t.ctx.f64(C.ctx_Transformers_Get_kVA(t.ptr)) }

func (t *ITransformers) Set_kVA(value float64) error {
	C.ctx_Transformers_Set_kVA(t.ptr, C.double(value))
	return t.ctx.err()
}

// Complex array of voltages for active winding
func (t *ITransformers) WdgVoltages() ([]complex128, error) {
	C.ctx_Transformers_Get_WdgVoltages_GR(t.ptr)
	return t.ctx.complexes()
}

// All Winding currents (ph1, wdg1, wdg2,... ph2, wdg1, wdg2 ...)
func (t *ITransformers) WdgCurrents() ([]complex128, error) {
	C.ctx_Transformers_Get_WdgCurrents_GR(t.ptr)
	return t.ctx.complexes()
}

// All winding currents in CSV string form like the WdgCurrents property
func (t *ITransformers) StrWdgCurrents() (string, error) {
	return t.ctx.str(C.ctx_Transformers_Get_strWdgCurrents(t.ptr))
}

// Transformer Core Type: 0=Shell; 1=1ph; 3-3leg; 4=4-Leg; 5=5-leg; 9=Core-1-phase
func (t *ITransformers) Get_CoreType() (enums.CoreType, error) {
	return asEnum[enums.CoreType](t.ctx.i32(C.ctx_Transformers_Get_CoreType(t.ptr)))
}

func (t *ITransformers) Set_CoreType(value enums.CoreType) error {
	C.ctx_Transformers_Set_CoreType(t.ptr, C.int32_t(value))
	return t.ctx.err()
}

// dc Resistance of active winding in ohms for GIC analysis
func (t *ITransformers) Get_RdcOhms() (float64, error) {
	return t.ctx.f64(C.ctx_Transformers_Get_RdcOhms(t.ptr))
}

func (t *ITransformers) Set_RdcOhms(value float64) error {
	C.ctx_Transformers_Set_RdcOhms(t.ptr, C.double(value))
	return t.ctx.err()
}

// Complex array with the losses by type (total losses, load losses, no-load losses), in VA
//
// (API Extension)
func (t *ITransformers) LossesByType() ([]complex128, error) {
	C.ctx_Transformers_Get_LossesByType_GR(t.ptr)
	return t.ctx.complexes()
}

// Complex array with the losses by type (total losses, load losses, no-load losses), in VA, concatenated for ALL transformers
//
// (API Extension)
func (t *ITransformers) AllLossesByType() ([]complex128, error) {
	C.ctx_Transformers_Get_AllLossesByType_GR(t.ptr)
	return t.ctx.complexes()
}

type ICapacitors struct {
	Iterable
}

var capacitorsIter = iterFuncs{
	allNames: func(p unsafe.Pointer, data ***C.char, cnt *C.int32_t) { C.ctx_Capacitors_Get_AllNames(p, data, cnt) },
	count:    func(p unsafe.Pointer) C.int32_t { return C.ctx_Capacitors_Get_Count(p) },
	first:    func(p unsafe.Pointer) C.int32_t { return C.ctx_Capacitors_Get_First(p) },
	next:     func(p unsafe.Pointer) C.int32_t { return C.ctx_Capacitors_Get_Next(p) },
	name:     func(p unsafe.Pointer) *C.char { return C.ctx_Capacitors_Get_Name(p) },
	setName:  func(p unsafe.Pointer, v *C.char) { C.ctx_Capacitors_Set_Name(p, v) },
	idx:      func(p unsafe.Pointer) C.int32_t { return C.ctx_Capacitors_Get_idx(p) },
	setIdx:   func(p unsafe.Pointer, v C.int32_t) { C.ctx_Capacitors_Set_idx(p, v) },
}

func (c *ICapacitors) AddStep() (bool, error) { return c.ctx.flag(C.ctx_Capacitors_AddStep(c.ptr)) }

func (c *ICapacitors) Close() error {
	C.ctx_Capacitors_Close(c.ptr)
	return c.ctx.err()
}

func (c *ICapacitors) Open() error {
	C.ctx_Capacitors_Open(c.ptr)
	return c.ctx.err()
}

func (c *ICapacitors) SubtractStep() (bool, error) {
	return c.ctx.flag(C.ctx_Capacitors_SubtractStep(c.ptr))
}

// Number of Steps available in cap bank to be switched ON.
func (c *ICapacitors) AvailableSteps() (int32, error) {
	return c.ctx.i32(C.ctx_Capacitors_Get_AvailableSteps(c.ptr))
}

// Delta connection or wye?
func (c *ICapacitors) Get_IsDelta() (bool, error) { return c.ctx.flag(C.ctx_Capacitors_Get_IsDelta(c.ptr)) }

func (c *ICapacitors) Set_IsDelta(value bool) error {
	C.ctx_Capacitors_Set_IsDelta(c.ptr, cbool(value))
	return c.ctx.err()
}

// Number of steps (default 1) for distributing and switching the total bank kVAR.
func (c *ICapacitors) Get_NumSteps() (int32, error) {
	return c.ctx.i32(C.ctx_Capacitors_Get_NumSteps(c.ptr))
}

func (c *ICapacitors) Set_NumSteps(value int32) error {
	C.ctx_Capacitors_Set_NumSteps(c.ptr, C.int32_t(value))
	return c.ctx.err()
}

// A array of  integer [0..numsteps-1] indicating state of each step. If the read value is -1 an error has occurred.
func (c *ICapacitors) Get_States() ([]int32, error) {
	C.ctx_Capacitors_Get_States_GR(c.ptr)
	return c.ctx.int32s()
}

func (c *ICapacitors) Set_States(value []int32) error {
	ptr, cnt := cint32s(value)
	C.ctx_Capacitors_Set_States(c.ptr, ptr, cnt)
	return c.ctx.err()
}

// Bank kV rating. Use LL for 2 or 3 phases, or actual can rating for 1 phase.
func (c *ICapacitors) Get_kV() (float64, error) { return c.ctx.f64(C.ctx_Capacitors_Get_kV(c.ptr)) }

func (c *ICapacitors) Set_kV(value float64) error {
	C.ctx_Capacitors_Set_kV(c.ptr, C.double(value))
	return c.ctx.err()
}

// Total bank KVAR, distributed equally among phases and steps.
func (c *ICapacitors) Get_kvar() (float64, error) { return c.ctx.f64(C.ctx_Capacitors_Get_kvar(c.ptr)) }

func (c *ICapacitors) Set_kvar(value float64) error {
	C.ctx_Capacitors_Set_kvar(c.ptr, C.double(value))
	return c.ctx.err()
}

type IReactors struct {
	Iterable
}

var reactorsIter = iterFuncs{
	allNames: func(p unsafe.Pointer, data ***C.char, cnt *C.int32_t) { C.ctx_Reactors_Get_AllNames(p, data, cnt) },
	count:    func(p unsafe.Pointer) C.int32_t { return C.ctx_Reactors_Get_Count(p) },
	first:    func(p unsafe.Pointer) C.int32_t { return C.ctx_Reactors_Get_First(p) },
	next:     func(p unsafe.Pointer) C.int32_t { return C.ctx_Reactors_Get_Next(p) },
	name:     func(p unsafe.Pointer) *C.char { return C.ctx_Reactors_Get_Name(p) },
	setName:  func(p unsafe.Pointer, v *C.char) { C.ctx_Reactors_Set_Name(p, v) },
	idx:      func(p unsafe.Pointer) C.int32_t { return C.ctx_Reactors_Get_idx(p) },
	setIdx:   func(p unsafe.Pointer, v C.int32_t) { C.ctx_Reactors_Set_idx(p, v) },
}

// How the reactor data was provided: 1=kvar, 2=R+jX, 3=R and X matrices, 4=sym components.
// Depending on this value, only some properties are filled or make sense in the context.
func (r *IReactors) SpecType() (int32, error) { return r.ctx.i32(C.ctx_Reactors_Get_SpecType(r.ptr)) }

// Delta connection or wye?
func (r *IReactors) Get_IsDelta() (bool, error) { return r.ctx.flag(C.ctx_Reactors_Get_IsDelta(r.ptr)) }

func (r *IReactors) Set_IsDelta(value bool) error {
	C.ctx_Reactors_Set_IsDelta(r.ptr, cbool(value))
	return r.ctx.err()
}

// Indicates whether Rmatrix and Xmatrix are to be considered in parallel.
func (r *IReactors) Get_Parallel() (bool, error) { return r.ctx.flag(C.ctx_Reactors_Get_Parallel(r.ptr)) }

func (r *IReactors) Set_Parallel(value bool) error {
	C.ctx_Reactors_Set_Parallel(r.ptr, cbool(value))
	return r.ctx.err()
}

// Inductance, mH. Alternate way to define the reactance, X, property.
func (r *IReactors) Get_LmH() (float64, error) { return r.ctx.f64(C.ctx_Reactors_Get_LmH(r.ptr)) }

func (r *IReactors) Set_LmH(value float64) error {
	C.ctx_Reactors_Set_LmH(r.ptr, C.double(value))
	return r.ctx.err()
}

// For 2, 3-phase, kV phase-phase. Otherwise specify actual coil rating.
func (r *IReactors) Get_kV() (float64, error) { return r.ctx.f64(C.ctx_Reactors_Get_kV(r.ptr)) }

func (r *IReactors) Set_kV(value float64) error {
	C.ctx_Reactors_Set_kV(r.ptr, C.double(value))
	return r.ctx.err()
}

// Total kvar, all phases.  Evenly divided among phases. Only determines X. Specify R separately
func (r *IReactors) Get_kvar() (float64, error) { return r.ctx.f64(C.ctx_Reactors_Get_kvar(r.ptr)) }

func (r *IReactors) Set_kvar(value float64) error {
	C.ctx_Reactors_Set_kvar(r.ptr, C.double(value))
	return r.ctx.err()
}

// Number of phases.
func (r *IReactors) Get_Phases() (int32, error) { return r.ctx.i32(C.ctx_Reactors_Get_Phases(r.ptr)) }

func (r *IReactors) Set_Phases(value int32) error {
	C.ctx_Reactors_Set_Phases(r.ptr, C.int32_t(value))
	return r.ctx.err()
}

// Name of first bus.
// Bus2 property will default to this bus, node 0, unless previously specified.
// Only Bus1 need be specified for a Yg shunt reactor.
func (r *IReactors) Get_Bus1() (string, error) { return r.ctx.str(C.ctx_Reactors_Get_Bus1(r.ptr)) }

func (r *IReactors) Set_Bus1(value string) error {
	return r.ctx.withString(value, func(cs *C.char) { C.ctx_Reactors_Set_Bus1(r.ptr, cs) })
}

// Name of 2nd bus. Defaults to all phases connected to first bus, node 0, (Shunt Wye Connection) except when Bus2 is specifically defined.
// Not necessary to specify for delta (LL) connection
func (r *IReactors) Get_Bus2() (string, error) { return r.ctx.str(C.ctx_Reactors_Get_Bus2(r.ptr)) }

func (r *IReactors) Set_Bus2(value string) error {
	return r.ctx.withString(value, func(cs *C.char) { C.ctx_Reactors_Set_Bus2(r.ptr, cs) })
}

// Name of XYCurve object, previously defined, describing per-unit variation of phase inductance, L=X/w, vs. frequency. Applies to reactance specified by X, LmH, Z, or kvar property. L generally decreases somewhat with frequency above the base frequency, approaching a limit at a few kHz.
func (r *IReactors) Get_LCurve() (string, error) { return r.ctx.str(C.ctx_Reactors_Get_LCurve(r.ptr)) }

func (r *IReactors) Set_LCurve(value string) error {
	return r.ctx.withString(value, func(cs *C.char) { C.ctx_Reactors_Set_LCurve(r.ptr, cs) })
}

// Name of XYCurve object, previously defined, describing per-unit variation of phase resistance, R, vs. frequency. Applies to resistance specified by R or Z property. If actual values are not known, R often increases by approximately the square root of frequency.
func (r *IReactors) Get_RCurve() (string, error) { return r.ctx.str(C.ctx_Reactors_Get_RCurve(r.ptr)) }

func (r *IReactors) Set_RCurve(value string) error {
	return r.ctx.withString(value, func(cs *C.char) { C.ctx_Reactors_Set_RCurve(r.ptr, cs) })
}

// Resistance (in series with reactance), each phase, ohms. This property applies to REACTOR specified by either kvar or X. See also help on Z.
func (r *IReactors) Get_R() (float64, error) { return r.ctx.f64(C.ctx_Reactors_Get_R(r.ptr)) }

func (r *IReactors) Set_R(value float64) error {
	C.ctx_Reactors_Set_R(r.ptr, C.double(value))
	return r.ctx.err()
}

// Reactance, each phase, ohms at base frequency. See also help on Z and LmH properties.
func (r *IReactors) Get_X() (float64, error) { return r.ctx.f64(C.ctx_Reactors_Get_X(r.ptr)) }

func (r *IReactors) Set_X(value float64) error {
	C.ctx_Reactors_Set_X(r.ptr, C.double(value))
	return r.ctx.err()
}

// Resistance in parallel with R and X (the entire branch). Assumed infinite if not specified.
func (r *IReactors) Get_Rp() (float64, error) { return r.ctx.f64(C.ctx_Reactors_Get_Rp(r.ptr)) }

func (r *IReactors) Set_Rp(value float64) error {
	C.ctx_Reactors_Set_Rp(r.ptr, C.double(value))
	return r.ctx.err()
}

// Resistance matrix, ohms at base frequency. Order of the matrix is the number of phases. Mutually exclusive to specifying parameters by kvar or X.
func (r *IReactors) Get_Rmatrix() ([]float64, error) {
	C.ctx_Reactors_Get_Rmatrix_GR(r.ptr)
	return r.ctx.float64s()
}

func (r *IReactors) Set_Rmatrix(value []float64) error {
	ptr, cnt := cfloat64s(value)
	C.ctx_Reactors_Set_Rmatrix(r.ptr, ptr, cnt)
	return r.ctx.err()
}

// Reactance matrix, ohms at base frequency. Order of the matrix is the number of phases. Mutually exclusive to specifying parameters by kvar or X.
func (r *IReactors) Get_Xmatrix() ([]float64, error) {
	C.ctx_Reactors_Get_Xmatrix_GR(r.ptr)
	return r.ctx.float64s()
}

func (r *IReactors) Set_Xmatrix(value []float64) error {
	ptr, cnt := cfloat64s(value)
	C.ctx_Reactors_Set_Xmatrix(r.ptr, ptr, cnt)
	return r.ctx.err()
}

// Alternative way of defining R and X properties. Enter a 2-element array representing R +jX in ohms.
func (r *IReactors) Get_Z() (complex128, error) {
	C.ctx_Reactors_Get_Z_GR(r.ptr)
	return r.ctx.complex()
}

func (r *IReactors) Set_Z(value complex128) error {
	ptr, cnt := ccomplex(value)
	C.ctx_Reactors_Set_Z(r.ptr, ptr, cnt)
	return r.ctx.err()
}

// Positive-sequence impedance, ohms, as a 2-element array representing a complex number.
func (r *IReactors) Get_Z1() (complex128, error) {
	C.ctx_Reactors_Get_Z1_GR(r.ptr)
	return r.ctx.complex()
}

func (r *IReactors) Set_Z1(value complex128) error {
	ptr, cnt := ccomplex(value)
	C.ctx_Reactors_Set_Z1(r.ptr, ptr, cnt)
	return r.ctx.err()
}

// Negative-sequence impedance, ohms, as a 2-element array representing a complex number.
func (r *IReactors) Get_Z2() (complex128, error) {
	C.ctx_Reactors_Get_Z2_GR(r.ptr)
	return r.ctx.complex()
}

func (r *IReactors) Set_Z2(value complex128) error {
	ptr, cnt := ccomplex(value)
	C.ctx_Reactors_Set_Z2(r.ptr, ptr, cnt)
	return r.ctx.err()
}

// Zero-sequence impedance, ohms, as a 2-element array representing a complex number.
func (r *IReactors) Get_Z0() (complex128, error) {
	C.ctx_Reactors_Get_Z0_GR(r.ptr)
	return r.ctx.complex()
}

func (r *IReactors) Set_Z0(value complex128) error {
	ptr, cnt := ccomplex(value)
	C.ctx_Reactors_Set_Z0(r.ptr, ptr, cnt)
	return r.ctx.err()
}
