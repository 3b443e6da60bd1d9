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

type IGenerators struct {
	Iterable
}

var generatorsIter = iterFuncs{
	allNames: func(p unsafe.Pointer, data ***C.char, cnt *C.int32_t) { C.ctx_Generators_Get_AllNames(p, data, cnt) },
	count:    func(p unsafe.Pointer) C.int32_t { return C.ctx_Generators_Get_Count(p) },
	first:    func(p unsafe.Pointer) C.int32_t { return C.ctx_Generators_Get_First(p) },
	next:     func(p unsafe.Pointer) C.int32_t { return C.ctx_Generators_Get_Next(p) },
	name:     func(p unsafe.Pointer) *C.char { return C.ctx_Generators_Get_Name(p) },
	setName:  func(p unsafe.Pointer, v *C.char) { C.ctx_Generators_Set_Name(p, v) },
	idx:      func(p unsafe.Pointer) C.int32_t { return C.ctx_Generators_Get_idx(p) },
	setIdx:   func(p unsafe.Pointer, v C.int32_t) { C.ctx_Generators_Set_idx(p, v) },
}

// Indicates whether the generator is forced ON regardles of other dispatch criteria.
func (g *IGenerators) Get_ForcedON() (bool, error) {
	return g.ctx.flag(C.ctx_Generators_Get_ForcedON(g.ptr))
}

func (g *IGenerators) Set_ForcedON(value bool) error {
	C.ctx_Generators_Set_ForcedON(g.ptr, cbool(value))
	return g.ctx.err()
}

// Generator Model
func (g *IGenerators) Get_Model() (int32, error) { return g.ctx.i32(C.ctx_Generators_Get_Model(g.ptr)) }

func (g *IGenerators) Set_Model(value int32) error {
	C.ctx_Generators_Set_Model(g.ptr, C.int32_t(value))
	return g.ctx.err()
}

// Power factor (pos. = producing vars). Updates kvar based on present kW value.
func (g *IGenerators) Get_PF() (float64, error) { return g.ctx.f64(C.ctx_Generators_Get_PF(g.ptr)) }

func (g *IGenerators) Set_PF(value float64) error {
	C.ctx_Generators_Set_PF(g.ptr, C.double(value))
	return g.ctx.err()
}

// Number of phases
func (g *IGenerators) Get_Phases() (int32, error) { return g.ctx.i32(C.ctx_Generators_Get_Phases(g.ptr)) }

func (g *IGenerators) Set_Phases(value int32) error {
	C.ctx_Generators_Set_Phases(g.ptr, C.int32_t(value))
	return g.ctx.err()
}

// Array of Names of all generator energy meter registers
func (g *IGenerators) RegisterNames() ([]string, error) {
	return g.ctx.strings(func(data ***C.char, cnt *C.int32_t) { C.ctx_Generators_Get_RegisterNames(g.ptr, data, cnt) })
}

// Array of valus in generator energy meter registers.
func (g *IGenerators) RegisterValues() ([]float64, error) {
	C.ctx_Generators_Get_RegisterValues_GR(g.ptr)
	return g.ctx.float64s()
}

// Vmaxpu for generator model
func (g *IGenerators) Get_Vmaxpu() (float64, error) { return g.ctx.f64(C.ctx_Generators_Get_Vmaxpu(g.ptr)) }

func (g *IGenerators) Set_Vmaxpu(value float64) error {
	C.ctx_Generators_Set_Vmaxpu(g.ptr, C.double(value))
	return g.ctx.err()
}

// Vminpu for Generator model
func (g *IGenerators) Get_Vminpu() (float64, error) { return g.ctx.f64(C.ctx_Generators_Get_Vminpu(g.ptr)) }

func (g *IGenerators) Set_Vminpu(value float64) error {
	C.ctx_Generators_Set_Vminpu(g.ptr, C.double(value))
	return g.ctx.err()
}

// Voltage base for the active generator, kV
func (g *IGenerators) Get_kV() (float64, error) { return g.ctx.f64(C.ctx_Generators_Get_kV(g.ptr)) }

func (g *IGenerators) Set_kV(value float64) error {
	C.ctx_Generators_Set_kV(g.ptr, C.double(value))
	return g.ctx.err()
}

// kVA rating of the generator
func (g *IGenerators) Get_kVArated() (float64, error) {
	return g.ctx.f64(C.ctx_Generators_Get_kVArated(g.ptr))
}

func (g *IGenerators) Set_kVArated(value float64) error {
	C.ctx_Generators_Set_kVArated(g.ptr, C.double(value))
	return g.ctx.err()
}

// kW output for the active generator. kvar is updated for current power factor.
func (g *IGenerators) Get_kW() (float64, error) { return g.ctx.f64(C.ctx_Generators_Get_kW(g.ptr)) }

func (g *IGenerators) Set_kW(value float64) error {
	C.ctx_Generators_Set_kW(g.ptr, C.double(value))
	return g.ctx.err()
}

// kvar output for the active generator. Updates power factor based on present kW value.
func (g *IGenerators) Get_kvar() (float64, error) { return g.ctx.f64(C.ctx_Generators_Get_kvar(g.ptr)) }

func (g *IGenerators) Set_kvar(value float64) error {
	C.ctx_Generators_Set_kvar(g.ptr, C.double(value))
	return g.ctx.err()
}

// Name of the loadshape for a daily generation profile.
//
// (API Extension)
func (g *IGenerators) Get_daily() (string, error) { return g.ctx.str(C.ctx_Generators_Get_daily(g.ptr)) }

func (g *IGenerators) Set_daily(value string) error {
	return g.ctx.withString(value, func(cs *C.char) { C.ctx_Generators_Set_daily(g.ptr, cs) })
}

// Name of the loadshape for a duty cycle simulation.
//
// (API Extension)
func (g *IGenerators) Get_duty() (string, error) { return g.ctx.str(C.ctx_Generators_Get_duty(g.ptr)) }

func (g *IGenerators) Set_duty(value string) error {
	return g.ctx.withString(value, func(cs *C.char) { C.ctx_Generators_Set_duty(g.ptr, cs) })
}

// Name of yearly loadshape
//
// (API Extension)
func (g *IGenerators) Get_Yearly() (string, error) { return g.ctx.str(C.ctx_Generators_Get_Yearly(g.ptr)) }

func (g *IGenerators) Set_Yearly(value string) error {
	return g.ctx.withString(value, func(cs *C.char) { C.ctx_Generators_Set_Yearly(g.ptr, cs) })
}

// Response to dispatch multipliers: Fixed=1 (dispatch multipliers do not apply), Variable=0 (follows curves).
//
// (API Extension)
func (g *IGenerators) Get_Status() (enums.GeneratorStatus, error) {
	return asEnum[enums.GeneratorStatus](g.ctx.i32(C.ctx_Generators_Get_Status(g.ptr)))
}

func (g *IGenerators) Set_Status(value enums.GeneratorStatus) error {
	C.ctx_Generators_Set_Status(g.ptr, C.int32_t(value))
	return g.ctx.err()
}

// Generator connection. True/1 if delta connection, False/0 if wye.
//
// (API Extension)
func (g *IGenerators) Get_IsDelta() (bool, error) { return g.ctx.flag(C.ctx_Generators_Get_IsDelta(g.ptr)) }

func (g *IGenerators) Set_IsDelta(value bool) error {
	C.ctx_Generators_Set_IsDelta(g.ptr, cbool(value))
	return g.ctx.err()
}

// kVA rating of electrical machine. Applied to machine or inverter definition for Dynamics mode solutions.
//
// (API Extension)
func (g *IGenerators) Get_kva() (float64, error) { return g.ctx.f64(C.ctx_Generators_Get_kva(g.ptr)) }

func (g *IGenerators) Set_kva(value float64) error {
	C.ctx_Generators_Set_kva(g.ptr, C.double(value))
	return g.ctx.err()
}

// An arbitrary integer number representing the class of Generator so that Generator values may be segregated by class.
//
// (API Extension)
func (g *IGenerators) Get_Class() (int32, error) { return g.ctx.i32(C.ctx_Generators_Get_Class_(g.ptr)) }

func (g *IGenerators) Set_Class(value int32) error {
	C.ctx_Generators_Set_Class_(g.ptr, C.int32_t(value))
	return g.ctx.err()
}

// Bus to which the Generator is connected. May include specific node specification.
//
// (API Extension)
func (g *IGenerators) Get_Bus1() (string, error) { return g.ctx.str(C.ctx_Generators_Get_Bus1(g.ptr)) }

func (g *IGenerators) Set_Bus1(value string) error {
	return g.ctx.withString(value, func(cs *C.char) { C.ctx_Generators_Set_Bus1(g.ptr, cs) })
}

type IPVSystems struct {
	Iterable
}

var pvSystemsIter = iterFuncs{
	allNames: func(p unsafe.Pointer, data ***C.char, cnt *C.int32_t) { C.ctx_PVSystems_Get_AllNames(p, data, cnt) },
	count:    func(p unsafe.Pointer) C.int32_t { return C.ctx_PVSystems_Get_Count(p) },
	first:    func(p unsafe.Pointer) C.int32_t { return C.ctx_PVSystems_Get_First(p) },
	next:     func(p unsafe.Pointer) C.int32_t { return C.ctx_PVSystems_Get_Next(p) },
	name:     func(p unsafe.Pointer) *C.char { return C.ctx_PVSystems_Get_Name(p) },
	setName:  func(p unsafe.Pointer, v *C.char) { C.ctx_PVSystems_Set_Name(p, v) },
	idx:      func(p unsafe.Pointer) C.int32_t { return C.ctx_PVSystems_Get_idx(p) },
	setIdx:   func(p unsafe.Pointer, v C.int32_t) { C.ctx_PVSystems_Set_idx(p, v) },
}

// Get/set the present value of the Irradiance property in kW/m²
func (pv *IPVSystems) Get_Irradiance() (float64, error) {
	return pv.ctx.f64(C.ctx_PVSystems_Get_Irradiance(pv.ptr))
}

func (pv *IPVSystems) Set_Irradiance(value float64) error {
	C.ctx_PVSystems_Set_Irradiance(pv.ptr, C.double(value))
	return pv.ctx.err()
}

// Get/set the power factor for the active PVSystem
func (pv *IPVSystems) Get_PF() (float64, error) { return pv.ctx.f64(C.ctx_PVSystems_Get_PF(pv.ptr)) }

func (pv *IPVSystems) Set_PF(value float64) error {
	C.ctx_PVSystems_Set_PF(pv.ptr, C.double(value))
	return pv.ctx.err()
}

// Array of PVSYSTEM energy meter register names
func (pv *IPVSystems) RegisterNames() ([]string, error) {
	return pv.ctx.strings(func(data ***C.char, cnt *C.int32_t) { C.ctx_PVSystems_Get_RegisterNames(pv.ptr, data, cnt) })
}

// Array of doubles containing values in PVSystem registers.
func (pv *IPVSystems) RegisterValues() ([]float64, error) {
	C.ctx_PVSystems_Get_RegisterValues_GR(pv.ptr)
	return pv.ctx.float64s()
}

// Get/set Rated kVA of the PVSystem
func (pv *IPVSystems) Get_kVArated() (float64, error) {
	return pv.ctx.f64(C.ctx_PVSystems_Get_kVArated(pv.ptr))
}

func (pv *IPVSystems) Set_kVArated(value float64) error {
	C.ctx_PVSystems_Set_kVArated(pv.ptr, C.double(value))
	return pv.ctx.err()
}

// Get kW output
func (pv *IPVSystems) Get_kW() (float64, error) { return pv.ctx.f64(C.ctx_PVSystems_Get_kW(pv.ptr)) }

// Get/set kvar output value
func (pv *IPVSystems) Get_kvar() (float64, error) { return pv.ctx.f64(C.ctx_PVSystems_Get_kvar(pv.ptr)) }

func (pv *IPVSystems) Set_kvar(value float64) error {
	C.ctx_PVSystems_Set_kvar(pv.ptr, C.double(value))
	return pv.ctx.err()
}

// Name of the dispatch shape to use for daily simulations. Must be previously
// defined as a Loadshape object of 24 hrs, typically. In the default dispatch
// mode, the PVSystem element uses this loadshape to trigger State changes.
//
// (API Extension)
func (pv *IPVSystems) Get_daily() (string, error) { return pv.ctx.str(C.ctx_PVSystems_Get_daily(pv.ptr)) }

func (pv *IPVSystems) Set_daily(value string) error {
	return pv.ctx.withString(value, func(cs *C.char) { C.ctx_PVSystems_Set_daily(pv.ptr, cs) })
}

// Name of the load shape to use for duty cycle dispatch simulations such as
// for solar ramp rate studies. Must be previously defined as a Loadshape
// object. Typically would have time intervals of 1-5 seconds.
//
// (API Extension)
func (pv *IPVSystems) Get_duty() (string, error) { return pv.ctx.str(C.ctx_PVSystems_Get_duty(pv.ptr)) }

func (pv *IPVSystems) Set_duty(value string) error {
	return pv.ctx.withString(value, func(cs *C.char) { C.ctx_PVSystems_Set_duty(pv.ptr, cs) })
}

// Dispatch shape to use for yearly simulations. Must be previously defined
// as a Loadshape object. If this is not specified, the Daily dispatch shape,
// if any, is repeated during Yearly solution modes. In the default dispatch
// mode, the PVSystem element uses this loadshape to trigger State changes.
//
// (API Extension)
func (pv *IPVSystems) Get_yearly() (string, error) { return pv.ctx.str(C.ctx_PVSystems_Get_yearly(pv.ptr)) }

func (pv *IPVSystems) Set_yearly(value string) error {
	return pv.ctx.withString(value, func(cs *C.char) { C.ctx_PVSystems_Set_yearly(pv.ptr, cs) })
}

// Temperature shape to use for daily simulations. Must be previously defined
// as a TShape object of 24 hrs, typically. The PVSystem element uses this
// TShape to determine the Pmpp from the Pmpp vs T curve. Units must agree
// with the Pmpp vs T curve.
//
// (API Extension)
func (pv *IPVSystems) Get_Tdaily() (string, error) { return pv.ctx.str(C.ctx_PVSystems_Get_Tdaily(pv.ptr)) }

func (pv *IPVSystems) Set_Tdaily(value string) error {
	return pv.ctx.withString(value, func(cs *C.char) { C.ctx_PVSystems_Set_Tdaily(pv.ptr, cs) })
}

// Temperature shape to use for duty cycle dispatch simulations such as for
// solar ramp rate studies. Must be previously defined as a TShape object.
// Typically would have time intervals of 1-5 seconds. Designate the number
// of points to solve using the Set Number=xxxx command. If there are fewer
// points in the actual shape, the shape is assumed to repeat. The PVSystem
// model uses this TShape to determine the Pmpp from the Pmpp vs T curve.
// Units must agree with the Pmpp vs T curve.
//
// (API Extension)
func (pv *IPVSystems) Get_Tduty() (string, error) { return pv.ctx.str(C.ctx_PVSystems_Get_Tduty(pv.ptr)) }

func (pv *IPVSystems) Set_Tduty(value string) error {
	return pv.ctx.withString(value, func(cs *C.char) { C.ctx_PVSystems_Set_Tduty(pv.ptr, cs) })
}

// Temperature shape to use for yearly simulations. Must be previously defined
// as a TShape object. If this is not specified, the Daily dispatch shape, if
// any, is repeated during Yearly solution modes. The PVSystem element uses
// this TShape to determine the Pmpp from the Pmpp vs T curve. Units must
// agree with the Pmpp vs T curve.
//
// (API Extension)
func (pv *IPVSystems) Get_Tyearly() (string, error) {
	return pv.ctx.str(C.ctx_PVSystems_Get_Tyearly(pv.ptr))
}

func (pv *IPVSystems) Set_Tyearly(value string) error {
	return pv.ctx.withString(value, func(cs *C.char) { C.ctx_PVSystems_Set_Tyearly(pv.ptr, cs) })
}

// Returns the current irradiance value for the active PVSystem. Use it to
// know what's the current irradiance value for the PV during a simulation.
func (pv *IPVSystems) IrradianceNow() (float64, error) {
	return pv.ctx.f64(C.ctx_PVSystems_Get_IrradianceNow(pv.ptr))
}

// Gets/sets the rated max power of the PV array for 1.0 kW/sq-m irradiance
// and a user-selected array temperature of the active PVSystem.
func (pv *IPVSystems) Get_Pmpp() (float64, error) { return pv.ctx.f64(C.ctx_PVSystems_Get_Pmpp(pv.ptr)) }

func (pv *IPVSystems) Set_Pmpp(value float64) error {
	C.ctx_PVSystems_Set_Pmpp(pv.ptr, C.double(value))
	return pv.ctx.err()
}

// Name of the sensor monitoring this element.
func (pv *IPVSystems) Sensor() (string, error) { return pv.ctx.str(C.ctx_PVSystems_Get_Sensor(pv.ptr)) }

type IStorages struct {
	Iterable
}

var storagesIter = iterFuncs{
	allNames: func(p unsafe.Pointer, data ***C.char, cnt *C.int32_t) { C.ctx_Storages_Get_AllNames(p, data, cnt) },
	count:    func(p unsafe.Pointer) C.int32_t { return C.ctx_Storages_Get_Count(p) },
	first:    func(p unsafe.Pointer) C.int32_t { return C.ctx_Storages_Get_First(p) },
	next:     func(p unsafe.Pointer) C.int32_t { return C.ctx_Storages_Get_Next(p) },
	name:     func(p unsafe.Pointer) *C.char { return C.ctx_Storages_Get_Name(p) },
	setName:  func(p unsafe.Pointer, v *C.char) { C.ctx_Storages_Set_Name(p, v) },
	idx:      func(p unsafe.Pointer) C.int32_t { return C.ctx_Storages_Get_idx(p) },
	setIdx:   func(p unsafe.Pointer, v C.int32_t) { C.ctx_Storages_Set_idx(p, v) },
}

// Per unit state of charge
func (s *IStorages) Get_puSOC() (float64, error) { return s.ctx.f64(C.ctx_Storages_Get_puSOC(s.ptr)) }

func (s *IStorages) Set_puSOC(value float64) error {
	C.ctx_Storages_Set_puSOC(s.ptr, C.double(value))
	return s.ctx.err()
}

// Get/set state: 0=Idling; 1=Discharging; -1=Charging;
func (s *IStorages) Get_State() (int32, error) { return s.ctx.i32(C.ctx_Storages_Get_State(s.ptr)) }

func (s *IStorages) Set_State(value int32) error {
	C.ctx_Storages_Set_State(s.ptr, C.int32_t(value))
	return s.ctx.err()
}

// Array of Names of all Storage energy meter registers
func (s *IStorages) RegisterNames() ([]string, error) {
	return s.ctx.strings(func(data ***C.char, cnt *C.int32_t) { C.ctx_Storages_Get_RegisterNames(s.ptr, data, cnt) })
}

// Array of values in Storage registers.
func (s *IStorages) RegisterValues() ([]float64, error) {
	C.ctx_Storages_Get_RegisterValues_GR(s.ptr)
	return s.ctx.float64s()
}

type IVsources struct {
	Iterable
}

var vsourcesIter = iterFuncs{
	allNames: func(p unsafe.Pointer, data ***C.char, cnt *C.int32_t) { C.ctx_Vsources_Get_AllNames(p, data, cnt) },
	count:    func(p unsafe.Pointer) C.int32_t { return C.ctx_Vsources_Get_Count(p) },
	first:    func(p unsafe.Pointer) C.int32_t { return C.ctx_Vsources_Get_First(p) },
	next:     func(p unsafe.Pointer) C.int32_t { return C.ctx_Vsources_Get_Next(p) },
	name:     func(p unsafe.Pointer) *C.char { return C.ctx_Vsources_Get_Name(p) },
	setName:  func(p unsafe.Pointer, v *C.char) { C.ctx_Vsources_Set_Name(p, v) },
	idx:      func(p unsafe.Pointer) C.int32_t { return C.ctx_Vsources_Get_idx(p) },
	setIdx:   func(p unsafe.Pointer, v C.int32_t) { C.ctx_Vsources_Set_idx(p, v) },
}

// Phase angle of first phase in degrees
func (v *IVsources) Get_AngleDeg() (float64, error) { return v.ctx.f64(C.ctx_Vsources_Get_AngleDeg(v.ptr)) }

func (v *IVsources) Set_AngleDeg(value float64) error {
	C.ctx_Vsources_Set_AngleDeg(v.ptr, C.double(value))
	return v.ctx.err()
}

// Source voltage in kV
func (v *IVsources) Get_BasekV() (float64, error) { return v.ctx.f64(C.ctx_Vsources_Get_BasekV(v.ptr)) }

func (v *IVsources) Set_BasekV(value float64) error {
	C.ctx_Vsources_Set_BasekV(v.ptr, C.double(value))
	return v.ctx.err()
}

// Source frequency in Hz
func (v *IVsources) Get_Frequency() (float64, error) {
	return v.ctx.f64(C.ctx_Vsources_Get_Frequency(v.ptr))
}

func (v *IVsources) Set_Frequency(value float64) error {
	C.ctx_Vsources_Set_Frequency(v.ptr, C.double(value))
	return v.ctx.err()
}

// Number of phases
func (v *IVsources) Get_Phases() (int32, error) { return v.ctx.i32(C.ctx_Vsources_Get_Phases(v.ptr)) }

func (v *IVsources) Set_Phases(value int32) error {
	C.ctx_Vsources_Set_Phases(v.ptr, C.int32_t(value))
	return v.ctx.err()
}

// Per-unit value of source voltage
func (v *IVsources) Get_pu() (float64, error) { return v.ctx.f64(C.ctx_Vsources_Get_pu(v.ptr)) }

func (v *IVsources) Set_pu(value float64) error {
	C.ctx_Vsources_Set_pu(v.ptr, C.double(value))
	return v.ctx.err()
}

type IISources struct {
	Iterable
}

var isourcesIter = iterFuncs{
	allNames: func(p unsafe.Pointer, data ***C.char, cnt *C.int32_t) { C.ctx_ISources_Get_AllNames(p, data, cnt) },
	count:    func(p unsafe.Pointer) C.int32_t { return C.ctx_ISources_Get_Count(p) },
	first:    func(p unsafe.Pointer) C.int32_t { return C.ctx_ISources_Get_First(p) },
	next:     func(p unsafe.Pointer) C.int32_t { return C.ctx_ISources_Get_Next(p) },
	name:     func(p unsafe.Pointer) *C.char { return C.ctx_ISources_Get_Name(p) },
	setName:  func(p unsafe.Pointer, v *C.char) { C.ctx_ISources_Set_Name(p, v) },
	idx:      func(p unsafe.Pointer) C.int32_t { return C.ctx_ISources_Get_idx(p) },
	setIdx:   func(p unsafe.Pointer, v C.int32_t) { C.ctx_ISources_Set_idx(p, v) },
}

// Magnitude of the ISource in amps
func (is *IISources) Get_Amps() (float64, error) { return is.ctx.f64(C.ctx_ISources_Get_Amps(is.ptr)) }

func (is *IISources) Set_Amps(value float64) error {
	C.ctx_ISources_Set_Amps(is.ptr, C.double(value))
	return is.ctx.err()
}

// Phase angle for ISource, degrees
func (is *IISources) Get_AngleDeg() (float64, error) {
	return is.ctx.f64(C.ctx_ISources_Get_AngleDeg(is.ptr))
}

func (is *IISources) Set_AngleDeg(value float64) error {
	C.ctx_ISources_Set_AngleDeg(is.ptr, C.double(value))
	return is.ctx.err()
}

// The present frequency of the ISource, Hz
func (is *IISources) Get_Frequency() (float64, error) {
	return is.ctx.f64(C.ctx_ISources_Get_Frequency(is.ptr))
}

func (is *IISources) Set_Frequency(value float64) error {
	C.ctx_ISources_Set_Frequency(is.ptr, C.double(value))
	return is.ctx.err()
}

type IGICSources struct {
	Iterable
}

var gicSourcesIter = iterFuncs{
	allNames: func(p unsafe.Pointer, data ***C.char, cnt *C.int32_t) { C.ctx_GICSources_Get_AllNames(p, data, cnt) },
	count:    func(p unsafe.Pointer) C.int32_t { return C.ctx_GICSources_Get_Count(p) },
	first:    func(p unsafe.Pointer) C.int32_t { return C.ctx_GICSources_Get_First(p) },
	next:     func(p unsafe.Pointer) C.int32_t { return C.ctx_GICSources_Get_Next(p) },
	name:     func(p unsafe.Pointer) *C.char { return C.ctx_GICSources_Get_Name(p) },
	setName:  func(p unsafe.Pointer, v *C.char) { C.ctx_GICSources_Set_Name(p, v) },
	idx:      func(p unsafe.Pointer) C.int32_t { return C.ctx_GICSources_Get_idx(p) },
	setIdx:   func(p unsafe.Pointer, v C.int32_t) { C.ctx_GICSources_Set_idx(p, v) },
}

// First bus name of GICSource (Created name)
func (g *IGICSources) Bus1() (string, error) { return g.ctx.str(C.ctx_GICSources_Get_Bus1(g.ptr)) }

// Second bus name
func (g *IGICSources) Bus2() (string, error) { return g.ctx.str(C.ctx_GICSources_Get_Bus2(g.ptr)) }

// Number of Phases, this GICSource element.
func (g *IGICSources) Get_Phases() (int32, error) { return g.ctx.i32(C.ctx_GICSources_Get_Phases(g.ptr)) }

func (g *IGICSources) Set_Phases(value int32) error {
	C.ctx_GICSources_Set_Phases(g.ptr, C.int32_t(value))
	return g.ctx.err()
}

// Northward E Field V/km
func (g *IGICSources) Get_EN() (float64, error) { return g.ctx.f64(C.ctx_GICSources_Get_EN(g.ptr)) }

func (g *IGICSources) Set_EN(value float64) error {
	C.ctx_GICSources_Set_EN(g.ptr, C.double(value))
	return g.ctx.err()
}

// Eastward E Field, V/km
func (g *IGICSources) Get_EE() (float64, error) { return g.ctx.f64(C.ctx_GICSources_Get_EE(g.ptr)) }

func (g *IGICSources) Set_EE(value float64) error {
	C.ctx_GICSources_Set_EE(g.ptr, C.double(value))
	return g.ctx.err()
}

// Latitude of Bus1 (degrees)
func (g *IGICSources) Get_Lat1() (float64, error) { return g.ctx.f64(C.ctx_GICSources_Get_Lat1(g.ptr)) }

func (g *IGICSources) Set_Lat1(value float64) error {
	C.ctx_GICSources_Set_Lat1(g.ptr, C.double(value))
	return g.ctx.err()
}

// Latitude of Bus2 (degrees)
func (g *IGICSources) Get_Lat2() (float64, error) { return g.ctx.f64(C.ctx_GICSources_Get_Lat2(g.ptr)) }

func (g *IGICSources) Set_Lat2(value float64) error {
	C.ctx_GICSources_Set_Lat2(g.ptr, C.double(value))
	return g.ctx.err()
}

// Longitude of Bus1 (Degrees)
func (g *IGICSources) Get_Lon1() (float64, error) { return g.ctx.f64(C.ctx_GICSources_Get_Lon1(g.ptr)) }

func (g *IGICSources) Set_Lon1(value float64) error {
	C.ctx_GICSources_Set_Lon1(g.ptr, C.double(value))
	return g.ctx.err()
}

// Longitude of Bus2 (Degrees)
func (g *IGICSources) Get_Lon2() (float64, error) { return g.ctx.f64(C.ctx_GICSources_Get_Lon2(g.ptr)) }

func (g *IGICSources) Set_Lon2(value float64) error {
	C.ctx_GICSources_Set_Lon2(g.ptr, C.double(value))
	return g.ctx.err()
}

// Specify dc voltage directly
func (g *IGICSources) Get_Volts() (float64, error) { return g.ctx.f64(C.ctx_GICSources_Get_Volts(g.ptr)) }

func (g *IGICSources) Set_Volts(value float64) error {
	C.ctx_GICSources_Set_Volts(g.ptr, C.double(value))
	return g.ctx.err()
}
