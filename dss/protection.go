package dss

/*
#include <stdlib.h>
#include "dss_capi_ctx.h"
*/
import "C"

import (
	"unsafe"
)

type IFuses struct {
	Iterable
}

var fusesIter = iterFuncs{
	allNames: func(p unsafe.Pointer, data ***C.char, cnt *C.int32_t) { C.ctx_Fuses_Get_AllNames(p, data, cnt) },
	count:    func(p unsafe.Pointer) C.int32_t { return C.ctx_Fuses_Get_Count(p) },
	first:    func(p unsafe.Pointer) C.int32_t { return C.ctx_Fuses_Get_First(p) },
	next:     func(p unsafe.Pointer) C.int32_t { return C.ctx_Fuses_Get_Next(p) },
	name:     func(p unsafe.Pointer) *C.char { return C.ctx_Fuses_Get_Name(p) },
	setName:  func(p unsafe.Pointer, v *C.char) { C.ctx_Fuses_Set_Name(p, v) },
	idx:      func(p unsafe.Pointer) C.int32_t { return C.ctx_Fuses_Get_idx(p) },
	setIdx:   func(p unsafe.Pointer, v C.int32_t) { C.ctx_Fuses_Set_idx(p, v) },
}

// Close all phases of the fuse.
func (f *IFuses) Close() error {
	C.ctx_Fuses_Close(f.ptr)
	return f.ctx.err()
}

// Current state of the fuses. TRUE if any fuse on any phase is blown. Else FALSE.
func (f *IFuses) IsBlown() (bool, error) { return f.ctx.flag(C.ctx_Fuses_IsBlown(f.ptr)) }

// Manual opening of all phases of the fuse.
func (f *IFuses) Open() error {
	C.ctx_Fuses_Open(f.ptr)
	return f.ctx.err()
}

// Reset fuse to normal state.
func (f *IFuses) Reset() error {
	C.ctx_Fuses_Reset(f.ptr)
	return f.ctx.err()
}

// A fixed delay time in seconds added to the fuse blowing time determined by the TCC curve. Default is 0.
// This represents a fuse clear or other delay.
func (f *IFuses) Get_Delay() (float64, error) { return f.ctx.f64(C.ctx_Fuses_Get_Delay(f.ptr)) }

func (f *IFuses) Set_Delay(value float64) error {
	C.ctx_Fuses_Set_Delay(f.ptr, C.double(value))
	return f.ctx.err()
}

// Full name of the circuit element to which the fuse is connected.
func (f *IFuses) Get_MonitoredObj() (string, error) {
	return f.ctx.str(C.ctx_Fuses_Get_MonitoredObj(f.ptr))
}

func (f *IFuses) Set_MonitoredObj(value string) error {
	return f.ctx.withString(value, func(cs *C.char) { C.ctx_Fuses_Set_MonitoredObj(f.ptr, cs) })
}

// Terminal number to which the fuse is connected.
func (f *IFuses) Get_MonitoredTerm() (int32, error) {
	return f.ctx.i32(C.ctx_Fuses_Get_MonitoredTerm(f.ptr))
}

func (f *IFuses) Set_MonitoredTerm(value int32) error {
	C.ctx_Fuses_Set_MonitoredTerm(f.ptr, C.int32_t(value))
	return f.ctx.err()
}

// Number of phases, this fuse.
func (f *IFuses) NumPhases() (int32, error) { return f.ctx.i32(C.ctx_Fuses_Get_NumPhases(f.ptr)) }

// Multiplier or actual amps for the TCCcurve object. Defaults to 1.0.
// Multiply current values of TCC curve by this to get actual amps.
func (f *IFuses) Get_RatedCurrent() (float64, error) {
	return f.ctx.f64(C.ctx_Fuses_Get_RatedCurrent(f.ptr))
}

func (f *IFuses) Set_RatedCurrent(value float64) error {
	C.ctx_Fuses_Set_RatedCurrent(f.ptr, C.double(value))
	return f.ctx.err()
}

// Full name of the circuit element switch that the fuse controls.
// Defaults to the MonitoredObj.
func (f *IFuses) Get_SwitchedObj() (string, error) { return f.ctx.str(C.ctx_Fuses_Get_SwitchedObj(f.ptr)) }

func (f *IFuses) Set_SwitchedObj(value string) error {
	return f.ctx.withString(value, func(cs *C.char) { C.ctx_Fuses_Set_SwitchedObj(f.ptr, cs) })
}

// Number of the terminal of the controlled element containing the switch controlled by the fuse.
func (f *IFuses) Get_SwitchedTerm() (int32, error) { return f.ctx.i32(C.ctx_Fuses_Get_SwitchedTerm(f.ptr)) }

func (f *IFuses) Set_SwitchedTerm(value int32) error {
	C.ctx_Fuses_Set_SwitchedTerm(f.ptr, C.int32_t(value))
	return f.ctx.err()
}

// Name of the TCCcurve object that determines fuse blowing.
func (f *IFuses) Get_TCCcurve() (string, error) { return f.ctx.str(C.ctx_Fuses_Get_TCCcurve(f.ptr)) }

func (f *IFuses) Set_TCCcurve(value string) error {
	return f.ctx.withString(value, func(cs *C.char) { C.ctx_Fuses_Set_TCCcurve(f.ptr, cs) })
}

// Array of strings indicating the state of each phase of the fuse.
func (f *IFuses) Get_State() ([]string, error) {
	return f.ctx.strings(func(data ***C.char, cnt *C.int32_t) { C.ctx_Fuses_Get_State(f.ptr, data, cnt) })
}

func (f *IFuses) Set_State(value []string) error {
	return f.ctx.withStrings(value, func(arr **C.char, cnt C.int32_t) { C.ctx_Fuses_Set_State(f.ptr, arr, cnt) })
}

// Array of strings indicating the normal state of each phase of the fuse.
func (f *IFuses) Get_NormalState() ([]string, error) {
	return f.ctx.strings(func(data ***C.char, cnt *C.int32_t) { C.ctx_Fuses_Get_NormalState(f.ptr, data, cnt) })
}

func (f *IFuses) Set_NormalState(value []string) error {
	return f.ctx.withStrings(value, func(arr **C.char, cnt C.int32_t) { C.ctx_Fuses_Set_NormalState(f.ptr, arr, cnt) })
}

type IReclosers struct {
	Iterable
}

var reclosersIter = iterFuncs{
	allNames: func(p unsafe.Pointer, data ***C.char, cnt *C.int32_t) { C.ctx_Reclosers_Get_AllNames(p, data, cnt) },
	count:    func(p unsafe.Pointer) C.int32_t { return C.ctx_Reclosers_Get_Count(p) },
	first:    func(p unsafe.Pointer) C.int32_t { return C.ctx_Reclosers_Get_First(p) },
	next:     func(p unsafe.Pointer) C.int32_t { return C.ctx_Reclosers_Get_Next(p) },
	name:     func(p unsafe.Pointer) *C.char { return C.ctx_Reclosers_Get_Name(p) },
	setName:  func(p unsafe.Pointer, v *C.char) { C.ctx_Reclosers_Set_Name(p, v) },
	idx:      func(p unsafe.Pointer) C.int32_t { return C.ctx_Reclosers_Get_idx(p) },
	setIdx:   func(p unsafe.Pointer, v C.int32_t) { C.ctx_Reclosers_Set_idx(p, v) },
}

func (r *IReclosers) Close() error {
	C.ctx_Reclosers_Close(r.ptr)
	return r.ctx.err()
}

func (r *IReclosers) Open() error {
	C.ctx_Reclosers_Open(r.ptr)
	return r.ctx.err()
}

// Ground (3I0) instantaneous trip setting - curve multipler or actual amps.
func (r *IReclosers) Get_GroundInst() (float64, error) {
	return r.ctx.f64(C.ctx_Reclosers_Get_GroundInst(r.ptr))
}

func (r *IReclosers) Set_GroundInst(value float64) error {
	C.ctx_Reclosers_Set_GroundInst(r.ptr, C.double(value))
	return r.ctx.err()
}

// Ground (3I0) trip multiplier or actual amps
func (r *IReclosers) Get_GroundTrip() (float64, error) {
	return r.ctx.f64(C.ctx_Reclosers_Get_GroundTrip(r.ptr))
}

func (r *IReclosers) Set_GroundTrip(value float64) error {
	C.ctx_Reclosers_Set_GroundTrip(r.ptr, C.double(value))
	return r.ctx.err()
}

// Full name of object this Recloser to be monitored.
func (r *IReclosers) Get_MonitoredObj() (string, error) {
	return r.ctx.str(C.ctx_Reclosers_Get_MonitoredObj(r.ptr))
}

func (r *IReclosers) Set_MonitoredObj(value string) error {
	return r.ctx.withString(value, func(cs *C.char) { C.ctx_Reclosers_Set_MonitoredObj(r.ptr, cs) })
}

// Terminal number of Monitored object for the Recloser
func (r *IReclosers) Get_MonitoredTerm() (int32, error) {
	return r.ctx.i32(C.ctx_Reclosers_Get_MonitoredTerm(r.ptr))
}

func (r *IReclosers) Set_MonitoredTerm(value int32) error {
	C.ctx_Reclosers_Set_MonitoredTerm(r.ptr, C.int32_t(value))
	return r.ctx.err()
}

// Number of fast shots
func (r *IReclosers) Get_NumFast() (int32, error) { return r.ctx.i32(C.ctx_Reclosers_Get_NumFast(r.ptr)) }

func (r *IReclosers) Set_NumFast(value int32) error {
	C.ctx_Reclosers_Set_NumFast(r.ptr, C.int32_t(value))
	return r.ctx.err()
}

// Phase instantaneous curve multipler or actual amps
func (r *IReclosers) Get_PhaseInst() (float64, error) {
	return r.ctx.f64(C.ctx_Reclosers_Get_PhaseInst(r.ptr))
}

func (r *IReclosers) Set_PhaseInst(value float64) error {
	C.ctx_Reclosers_Set_PhaseInst(r.ptr, C.double(value))
	return r.ctx.err()
}

// Phase trip curve multiplier or actual amps
func (r *IReclosers) Get_PhaseTrip() (float64, error) {
	return r.ctx.f64(C.ctx_Reclosers_Get_PhaseTrip(r.ptr))
}

func (r *IReclosers) Set_PhaseTrip(value float64) error {
	C.ctx_Reclosers_Set_PhaseTrip(r.ptr, C.double(value))
	return r.ctx.err()
}

// Array of Doubles: reclose intervals, s, between shots.
func (r *IReclosers) RecloseIntervals() ([]float64, error) {
	C.ctx_Reclosers_Get_RecloseIntervals_GR(r.ptr)
	return r.ctx.float64s()
}

// Number of shots to lockout (fast + delayed)
func (r *IReclosers) Get_Shots() (int32, error) { return r.ctx.i32(C.ctx_Reclosers_Get_Shots(r.ptr)) }

func (r *IReclosers) Set_Shots(value int32) error {
	C.ctx_Reclosers_Set_Shots(r.ptr, C.int32_t(value))
	return r.ctx.err()
}

// Full name of the circuit element that is being switched by the Recloser.
func (r *IReclosers) Get_SwitchedObj() (string, error) {
	return r.ctx.str(C.ctx_Reclosers_Get_SwitchedObj(r.ptr))
}

func (r *IReclosers) Set_SwitchedObj(value string) error {
	return r.ctx.withString(value, func(cs *C.char) { C.ctx_Reclosers_Set_SwitchedObj(r.ptr, cs) })
}

// Terminal number of the controlled device being switched by the Recloser
func (r *IReclosers) Get_SwitchedTerm() (int32, error) {
	return r.ctx.i32(C.ctx_Reclosers_Get_SwitchedTerm(r.ptr))
}

func (r *IReclosers) Set_SwitchedTerm(value int32) error {
	C.ctx_Reclosers_Set_SwitchedTerm(r.ptr, C.int32_t(value))
	return r.ctx.err()
}

// Reset recloser to normal state.
// If open, lock out the recloser.
// If closed, resets recloser to first operation.
func (r *IReclosers) Reset() error {
	C.ctx_Reclosers_Reset(r.ptr)
	return r.ctx.err()
}

// Get/Set present state of recloser.
// If set to open (ActionCodes.Open=1), open recloser's controlled element and lock out the recloser.
// If set to close (ActionCodes.Close=2), close recloser's controlled element and resets recloser to first operation.
func (r *IReclosers) Get_State() (int32, error) { return r.ctx.i32(C.ctx_Reclosers_Get_State(r.ptr)) }

func (r *IReclosers) Set_State(value int32) error {
	C.ctx_Reclosers_Set_State(r.ptr, C.int32_t(value))
	return r.ctx.err()
}

// Get/set normal state (ActionCodes.Open=1, ActionCodes.Close=2) of the recloser.
func (r *IReclosers) Get_NormalState() (int32, error) {
	return r.ctx.i32(C.ctx_Reclosers_Get_NormalState(r.ptr))
}

func (r *IReclosers) Set_NormalState(value int32) error {
	C.ctx_Reclosers_Set_NormalState(r.ptr, C.int32_t(value))
	return r.ctx.err()
}

type IRelays struct {
	Iterable
}

var relaysIter = iterFuncs{
	allNames: func(p unsafe.Pointer, data ***C.char, cnt *C.int32_t) { C.ctx_Relays_Get_AllNames(p, data, cnt) },
	count:    func(p unsafe.Pointer) C.int32_t { return C.ctx_Relays_Get_Count(p) },
	first:    func(p unsafe.Pointer) C.int32_t { return C.ctx_Relays_Get_First(p) },
	next:     func(p unsafe.Pointer) C.int32_t { return C.ctx_Relays_Get_Next(p) },
	name:     func(p unsafe.Pointer) *C.char { return C.ctx_Relays_Get_Name(p) },
	setName:  func(p unsafe.Pointer, v *C.char) { C.ctx_Relays_Set_Name(p, v) },
	idx:      func(p unsafe.Pointer) C.int32_t { return C.ctx_Relays_Get_idx(p) },
	setIdx:   func(p unsafe.Pointer, v C.int32_t) { C.ctx_Relays_Set_idx(p, v) },
}

// Full name of object this Relay is monitoring.
func (r *IRelays) Get_MonitoredObj() (string, error) {
	return r.ctx.str(C.ctx_Relays_Get_MonitoredObj(r.ptr))
}

func (r *IRelays) Set_MonitoredObj(value string) error {
	return r.ctx.withString(value, func(cs *C.char) { C.ctx_Relays_Set_MonitoredObj(r.ptr, cs) })
}

// Number of terminal of monitored element that this Relay is monitoring.
func (r *IRelays) Get_MonitoredTerm() (int32, error) {
	return r.ctx.i32(C.ctx_Relays_Get_MonitoredTerm(r.ptr))
}

func (r *IRelays) Set_MonitoredTerm(value int32) error {
	C.ctx_Relays_Set_MonitoredTerm(r.ptr, C.int32_t(value))
	return r.ctx.err()
}

// Full name of element that will be switched when relay trips.
func (r *IRelays) Get_SwitchedObj() (string, error) {
	return r.ctx.str(C.ctx_Relays_Get_SwitchedObj(r.ptr))
}

func (r *IRelays) Set_SwitchedObj(value string) error {
	return r.ctx.withString(value, func(cs *C.char) { C.ctx_Relays_Set_SwitchedObj(r.ptr, cs) })
}

// Terminal number of the switched object that will be opened when the relay trips.
func (r *IRelays) Get_SwitchedTerm() (int32, error) {
	return r.ctx.i32(C.ctx_Relays_Get_SwitchedTerm(r.ptr))
}

func (r *IRelays) Set_SwitchedTerm(value int32) error {
	C.ctx_Relays_Set_SwitchedTerm(r.ptr, C.int32_t(value))
	return r.ctx.err()
}

// Open relay's controlled element and lock out the relay.
func (r *IRelays) Open() error {
	C.ctx_Relays_Open(r.ptr)
	return r.ctx.err()
}

// Close the switched object controlled by the relay. Resets relay to first operation.
func (r *IRelays) Close() error {
	C.ctx_Relays_Close(r.ptr)
	return r.ctx.err()
}

// Reset relay to normal state.
// If open, lock out the relay.
// If closed, resets relay to first operation.
func (r *IRelays) Reset() error {
	C.ctx_Relays_Reset(r.ptr)
	return r.ctx.err()
}

// Get/Set present state of relay.
// If set to open, open relay's controlled element and lock out the relay.
// If set to close, close relay's controlled element and resets relay to first operation.
func (r *IRelays) Get_State() (int32, error) { return r.ctx.i32(C.ctx_Relays_Get_State(r.ptr)) }

func (r *IRelays) Set_State(value int32) error {
	C.ctx_Relays_Set_State(r.ptr, C.int32_t(value))
	return r.ctx.err()
}

// Normal state of relay.
func (r *IRelays) Get_NormalState() (int32, error) { return r.ctx.i32(C.ctx_Relays_Get_NormalState(r.ptr)) }

func (r *IRelays) Set_NormalState(value int32) error {
	C.ctx_Relays_Set_NormalState(r.ptr, C.int32_t(value))
	return r.ctx.err()
}
