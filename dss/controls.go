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

type ICapControls struct {
	Iterable
}

var capControlsIter = iterFuncs{
	allNames: func(p unsafe.Pointer, data ***C.char, cnt *C.int32_t) { C.ctx_CapControls_Get_AllNames(p, data, cnt) },
	count:    func(p unsafe.Pointer) C.int32_t { return C.ctx_CapControls_Get_Count(p) },
	first:    func(p unsafe.Pointer) C.int32_t { return C.ctx_CapControls_Get_First(p) },
	next:     func(p unsafe.Pointer) C.int32_t { return C.ctx_CapControls_Get_Next(p) },
	name:     func(p unsafe.Pointer) *C.char { return C.ctx_CapControls_Get_Name(p) },
	setName:  func(p unsafe.Pointer, v *C.char) { C.ctx_CapControls_Set_Name(p, v) },
	idx:      func(p unsafe.Pointer) C.int32_t { return C.ctx_CapControls_Get_idx(p) },
	setIdx:   func(p unsafe.Pointer, v C.int32_t) { C.ctx_CapControls_Set_idx(p, v) },
}

func (cc *ICapControls) Reset() error {
	C.ctx_CapControls_Reset(cc.ptr)
	return cc.ctx.err()
}

// Transducer ratio from pirmary current to control current.
func (cc *ICapControls) Get_CTratio() (float64, error) {
	return cc.ctx.f64(C.ctx_CapControls_Get_CTratio(cc.ptr))
}

func (cc *ICapControls) Set_CTratio(value float64) error {
	C.ctx_CapControls_Set_CTratio(cc.ptr, C.double(value))
	return cc.ctx.err()
}

// Name of the Capacitor that is controlled.
func (cc *ICapControls) Get_Capacitor() (string, error) {
	return cc.ctx.str(C.ctx_CapControls_Get_Capacitor(cc.ptr))
}

func (cc *ICapControls) Set_Capacitor(value string) error {
	return cc.ctx.withString(value, func(cs *C.char) { C.ctx_CapControls_Set_Capacitor(cc.ptr, cs) })
}

func (cc *ICapControls) Get_DeadTime() (float64, error) {
	return cc.ctx.f64(C.ctx_CapControls_Get_DeadTime(cc.ptr))
}

func (cc *ICapControls) Set_DeadTime(value float64) error {
	C.ctx_CapControls_Set_DeadTime(cc.ptr, C.double(value))
	return cc.ctx.err()
}

// Time delay [s] to switch on after arming.  Control may reset before actually switching.
func (cc *ICapControls) Get_Delay() (float64, error) {
	return cc.ctx.f64(C.ctx_CapControls_Get_Delay(cc.ptr))
}

func (cc *ICapControls) Set_Delay(value float64) error {
	C.ctx_CapControls_Set_Delay(cc.ptr, C.double(value))
	return cc.ctx.err()
}

// Time delay [s] before switching off a step. Control may reset before actually switching.
func (cc *ICapControls) Get_DelayOff() (float64, error) {
	return cc.ctx.f64(C.ctx_CapControls_Get_DelayOff(cc.ptr))
}

func (cc *ICapControls) Set_DelayOff(value float64) error {
	C.ctx_CapControls_Set_DelayOff(cc.ptr, C.double(value))
	return cc.ctx.err()
}

// Type of automatic controller.
func (cc *ICapControls) Get_Mode() (int32, error) { return cc.ctx.i32(C.ctx_CapControls_Get_Mode(cc.ptr)) }

func (cc *ICapControls) Set_Mode(value int32) error {
	C.ctx_CapControls_Set_Mode(cc.ptr, C.int32_t(value))
	return cc.ctx.err()
}

// Full name of the element that PT and CT are connected to.
func (cc *ICapControls) Get_MonitoredObj() (string, error) {
	return cc.ctx.str(C.ctx_CapControls_Get_MonitoredObj(cc.ptr))
}

func (cc *ICapControls) Set_MonitoredObj(value string) error {
	return cc.ctx.withString(value, func(cs *C.char) { C.ctx_CapControls_Set_MonitoredObj(cc.ptr, cs) })
}

// Terminal number on the element that PT and CT are connected to.
func (cc *ICapControls) Get_MonitoredTerm() (int32, error) {
	return cc.ctx.i32(C.ctx_CapControls_Get_MonitoredTerm(cc.ptr))
}

func (cc *ICapControls) Set_MonitoredTerm(value int32) error {
	C.ctx_CapControls_Set_MonitoredTerm(cc.ptr, C.int32_t(value))
	return cc.ctx.err()
}

// Threshold to switch off a step. See Mode for units.
func (cc *ICapControls) Get_OFFSetting() (float64, error) {
	return cc.ctx.f64(C.ctx_CapControls_Get_OFFSetting(cc.ptr))
}

func (cc *ICapControls) Set_OFFSetting(value float64) error {
	C.ctx_CapControls_Set_OFFSetting(cc.ptr, C.double(value))
	return cc.ctx.err()
}

// Threshold to arm or switch on a step.  See Mode for units.
func (cc *ICapControls) Get_ONSetting() (float64, error) {
	return cc.ctx.f64(C.ctx_CapControls_Get_ONSetting(cc.ptr))
}

func (cc *ICapControls) Set_ONSetting(value float64) error {
	C.ctx_CapControls_Set_ONSetting(cc.ptr, C.double(value))
	return cc.ctx.err()
}

// Transducer ratio from primary feeder to control voltage.
func (cc *ICapControls) Get_PTratio() (float64, error) {
	return cc.ctx.f64(C.ctx_CapControls_Get_PTratio(cc.ptr))
}

func (cc *ICapControls) Set_PTratio(value float64) error {
	C.ctx_CapControls_Set_PTratio(cc.ptr, C.double(value))
	return cc.ctx.err()
}

// Enables Vmin and Vmax to override the control Mode
func (cc *ICapControls) Get_UseVoltOverride() (bool, error) {
	return cc.ctx.flag(C.ctx_CapControls_Get_UseVoltOverride(cc.ptr))
}

func (cc *ICapControls) Set_UseVoltOverride(value bool) error {
	C.ctx_CapControls_Set_UseVoltOverride(cc.ptr, cbool(value))
	return cc.ctx.err()
}

// With VoltOverride, swtich off whenever PT voltage exceeds this level.
func (cc *ICapControls) Get_Vmax() (float64, error) {
	return cc.ctx.f64(C.ctx_CapControls_Get_Vmax(cc.ptr))
}

func (cc *ICapControls) Set_Vmax(value float64) error {
	C.ctx_CapControls_Set_Vmax(cc.ptr, C.double(value))
	return cc.ctx.err()
}

// With VoltOverride, switch ON whenever PT voltage drops below this level.
func (cc *ICapControls) Get_Vmin() (float64, error) {
	return cc.ctx.f64(C.ctx_CapControls_Get_Vmin(cc.ptr))
}

func (cc *ICapControls) Set_Vmin(value float64) error {
	C.ctx_CapControls_Set_Vmin(cc.ptr, C.double(value))
	return cc.ctx.err()
}

type IRegControls struct {
	Iterable
}

var regControlsIter = iterFuncs{
	allNames: func(p unsafe.Pointer, data ***C.char, cnt *C.int32_t) { C.ctx_RegControls_Get_AllNames(p, data, cnt) },
	count:    func(p unsafe.Pointer) C.int32_t { return C.ctx_RegControls_Get_Count(p) },
	first:    func(p unsafe.Pointer) C.int32_t { return C.ctx_RegControls_Get_First(p) },
	next:     func(p unsafe.Pointer) C.int32_t { return C.ctx_RegControls_Get_Next(p) },
	name:     func(p unsafe.Pointer) *C.char { return C.ctx_RegControls_Get_Name(p) },
	setName:  func(p unsafe.Pointer, v *C.char) { C.ctx_RegControls_Set_Name(p, v) },
	idx:      func(p unsafe.Pointer) C.int32_t { return C.ctx_RegControls_Get_idx(p) },
	setIdx:   func(p unsafe.Pointer, v C.int32_t) { C.ctx_RegControls_Set_idx(p, v) },
}

func (rc *IRegControls) Reset() error {
	C.ctx_RegControls_Reset(rc.ptr)
	return rc.ctx.err()
}

// CT primary ampere rating (secondary is 0.2 amperes)
func (rc *IRegControls) Get_CTPrimary() (float64, error) {
	return rc.ctx.f64(C.ctx_RegControls_Get_CTPrimary(rc.ptr))
}

func (rc *IRegControls) Set_CTPrimary(value float64) error {
	C.ctx_RegControls_Set_CTPrimary(rc.ptr, C.double(value))
	return rc.ctx.err()
}

// Time delay [s] after arming before the first tap change. Control may reset before actually changing taps.
func (rc *IRegControls) Get_Delay() (float64, error) {
	return rc.ctx.f64(C.ctx_RegControls_Get_Delay(rc.ptr))
}

func (rc *IRegControls) Set_Delay(value float64) error {
	C.ctx_RegControls_Set_Delay(rc.ptr, C.double(value))
	return rc.ctx.err()
}

// Regulation bandwidth in forward direciton, centered on Vreg
func (rc *IRegControls) Get_ForwardBand() (float64, error) {
	return rc.ctx.f64(C.ctx_RegControls_Get_ForwardBand(rc.ptr))
}

func (rc *IRegControls) Set_ForwardBand(value float64) error {
	C.ctx_RegControls_Set_ForwardBand(rc.ptr, C.double(value))
	return rc.ctx.err()
}

// LDC R setting in Volts
func (rc *IRegControls) Get_ForwardR() (float64, error) {
	return rc.ctx.f64(C.ctx_RegControls_Get_ForwardR(rc.ptr))
}

func (rc *IRegControls) Set_ForwardR(value float64) error {
	C.ctx_RegControls_Set_ForwardR(rc.ptr, C.double(value))
	return rc.ctx.err()
}

// Target voltage in the forward direction, on PT secondary base.
func (rc *IRegControls) Get_ForwardVreg() (float64, error) {
	return rc.ctx.f64(C.ctx_RegControls_Get_ForwardVreg(rc.ptr))
}

func (rc *IRegControls) Set_ForwardVreg(value float64) error {
	C.ctx_RegControls_Set_ForwardVreg(rc.ptr, C.double(value))
	return rc.ctx.err()
}

// LDC X setting in Volts
func (rc *IRegControls) Get_ForwardX() (float64, error) {
	return rc.ctx.f64(C.ctx_RegControls_Get_ForwardX(rc.ptr))
}

func (rc *IRegControls) Set_ForwardX(value float64) error {
	C.ctx_RegControls_Set_ForwardX(rc.ptr, C.double(value))
	return rc.ctx.err()
}

// Time delay is inversely adjsuted, proportinal to the amount of voltage outside the regulating band.
func (rc *IRegControls) Get_IsInverseTime() (bool, error) {
	return rc.ctx.flag(C.ctx_RegControls_Get_IsInverseTime(rc.ptr))
}

func (rc *IRegControls) Set_IsInverseTime(value bool) error {
	C.ctx_RegControls_Set_IsInverseTime(rc.ptr, cbool(value))
	return rc.ctx.err()
}

// Regulator can use different settings in the reverse direction.  Usually not applicable to substation transformers.
func (rc *IRegControls) Get_IsReversible() (bool, error) {
	return rc.ctx.flag(C.ctx_RegControls_Get_IsReversible(rc.ptr))
}

func (rc *IRegControls) Set_IsReversible(value bool) error {
	C.ctx_RegControls_Set_IsReversible(rc.ptr, cbool(value))
	return rc.ctx.err()
}

// Maximum tap change per iteration in STATIC solution mode. 1 is more realistic, 16 is the default for a faster soluiton.
func (rc *IRegControls) Get_MaxTapChange() (int32, error) {
	return rc.ctx.i32(C.ctx_RegControls_Get_MaxTapChange(rc.ptr))
}

func (rc *IRegControls) Set_MaxTapChange(value int32) error {
	C.ctx_RegControls_Set_MaxTapChange(rc.ptr, C.int32_t(value))
	return rc.ctx.err()
}

// Name of a remote regulated bus, in lieu of LDC settings
func (rc *IRegControls) Get_MonitoredBus() (string, error) {
	return rc.ctx.str(C.ctx_RegControls_Get_MonitoredBus(rc.ptr))
}

func (rc *IRegControls) Set_MonitoredBus(value string) error {
	return rc.ctx.withString(value, func(cs *C.char) { C.ctx_RegControls_Set_MonitoredBus(rc.ptr, cs) })
}

// PT ratio for voltage control settings
func (rc *IRegControls) Get_PTratio() (float64, error) {
	return rc.ctx.f64(C.ctx_RegControls_Get_PTratio(rc.ptr))
}

func (rc *IRegControls) Set_PTratio(value float64) error {
	C.ctx_RegControls_Set_PTratio(rc.ptr, C.double(value))
	return rc.ctx.err()
}

// Bandwidth in reverse direction, centered on reverse Vreg.
func (rc *IRegControls) Get_ReverseBand() (float64, error) {
	return rc.ctx.f64(C.ctx_RegControls_Get_ReverseBand(rc.ptr))
}

func (rc *IRegControls) Set_ReverseBand(value float64) error {
	C.ctx_RegControls_Set_ReverseBand(rc.ptr, C.double(value))
	return rc.ctx.err()
}

// Reverse LDC R setting in Volts.
func (rc *IRegControls) Get_ReverseR() (float64, error) {
	return rc.ctx.f64(C.ctx_RegControls_Get_ReverseR(rc.ptr))
}

func (rc *IRegControls) Set_ReverseR(value float64) error {
	C.ctx_RegControls_Set_ReverseR(rc.ptr, C.double(value))
	return rc.ctx.err()
}

// Target voltage in the revese direction, on PT secondary base.
func (rc *IRegControls) Get_ReverseVreg() (float64, error) {
	return rc.ctx.f64(C.ctx_RegControls_Get_ReverseVreg(rc.ptr))
}

func (rc *IRegControls) Set_ReverseVreg(value float64) error {
	C.ctx_RegControls_Set_ReverseVreg(rc.ptr, C.double(value))
	return rc.ctx.err()
}

// Reverse LDC X setting in volts.
func (rc *IRegControls) Get_ReverseX() (float64, error) {
	return rc.ctx.f64(C.ctx_RegControls_Get_ReverseX(rc.ptr))
}

func (rc *IRegControls) Set_ReverseX(value float64) error {
	C.ctx_RegControls_Set_ReverseX(rc.ptr, C.double(value))
	return rc.ctx.err()
}

// Time delay [s] for subsequent tap changes in a set. Control may reset before actually changing taps.
func (rc *IRegControls) Get_TapDelay() (float64, error) {
	return rc.ctx.f64(C.ctx_RegControls_Get_TapDelay(rc.ptr))
}

func (rc *IRegControls) Set_TapDelay(value float64) error {
	C.ctx_RegControls_Set_TapDelay(rc.ptr, C.double(value))
	return rc.ctx.err()
}

// Integer number of the tap that the controlled transformer winding is currentliy on.
func (rc *IRegControls) Get_TapNumber() (int32, error) {
	return rc.ctx.i32(C.ctx_RegControls_Get_TapNumber(rc.ptr))
}

func (rc *IRegControls) Set_TapNumber(value int32) error {
	C.ctx_RegControls_Set_TapNumber(rc.ptr, C.int32_t(value))
	return rc.ctx.err()
}

// Tapped winding number
func (rc *IRegControls) Get_TapWinding() (int32, error) {
	return rc.ctx.i32(C.ctx_RegControls_Get_TapWinding(rc.ptr))
}

func (rc *IRegControls) Set_TapWinding(value int32) error {
	C.ctx_RegControls_Set_TapWinding(rc.ptr, C.int32_t(value))
	return rc.ctx.err()
}

// Name of the transformer this regulator controls
func (rc *IRegControls) Get_Transformer() (string, error) {
	return rc.ctx.str(C.ctx_RegControls_Get_Transformer(rc.ptr))
}

func (rc *IRegControls) Set_Transformer(value string) error {
	return rc.ctx.withString(value, func(cs *C.char) { C.ctx_RegControls_Set_Transformer(rc.ptr, cs) })
}

// First house voltage limit on PT secondary base.  Setting to 0 disables this function.
func (rc *IRegControls) Get_VoltageLimit() (float64, error) {
	return rc.ctx.f64(C.ctx_RegControls_Get_VoltageLimit(rc.ptr))
}

func (rc *IRegControls) Set_VoltageLimit(value float64) error {
	C.ctx_RegControls_Set_VoltageLimit(rc.ptr, C.double(value))
	return rc.ctx.err()
}

// Winding number for PT and CT connections
func (rc *IRegControls) Get_Winding() (int32, error) {
	return rc.ctx.i32(C.ctx_RegControls_Get_Winding(rc.ptr))
}

func (rc *IRegControls) Set_Winding(value int32) error {
	C.ctx_RegControls_Set_Winding(rc.ptr, C.int32_t(value))
	return rc.ctx.err()
}

type ISwtControls struct {
	Iterable
}

var swtControlsIter = iterFuncs{
	allNames: func(p unsafe.Pointer, data ***C.char, cnt *C.int32_t) { C.ctx_SwtControls_Get_AllNames(p, data, cnt) },
	count:    func(p unsafe.Pointer) C.int32_t { return C.ctx_SwtControls_Get_Count(p) },
	first:    func(p unsafe.Pointer) C.int32_t { return C.ctx_SwtControls_Get_First(p) },
	next:     func(p unsafe.Pointer) C.int32_t { return C.ctx_SwtControls_Get_Next(p) },
	name:     func(p unsafe.Pointer) *C.char { return C.ctx_SwtControls_Get_Name(p) },
	setName:  func(p unsafe.Pointer, v *C.char) { C.ctx_SwtControls_Set_Name(p, v) },
	idx:      func(p unsafe.Pointer) C.int32_t { return C.ctx_SwtControls_Get_idx(p) },
	setIdx:   func(p unsafe.Pointer, v C.int32_t) { C.ctx_SwtControls_Set_idx(p, v) },
}

func (sw *ISwtControls) Reset() error {
	C.ctx_SwtControls_Reset(sw.ptr)
	return sw.ctx.err()
}

// Open or Close the switch. No effect if switch is locked.  However, Reset removes any lock and then closes the switch (shelf state).
func (sw *ISwtControls) Get_Action() (int32, error) {
	return sw.ctx.i32(C.ctx_SwtControls_Get_Action(sw.ptr))
}

func (sw *ISwtControls) Set_Action(value int32) error {
	C.ctx_SwtControls_Set_Action(sw.ptr, C.int32_t(value))
	return sw.ctx.err()
}

// Time delay [s] betwen arming and opening or closing the switch.  Control may reset before actually operating the switch.
func (sw *ISwtControls) Get_Delay() (float64, error) {
	return sw.ctx.f64(C.ctx_SwtControls_Get_Delay(sw.ptr))
}

func (sw *ISwtControls) Set_Delay(value float64) error {
	C.ctx_SwtControls_Set_Delay(sw.ptr, C.double(value))
	return sw.ctx.err()
}

// The lock prevents both manual and automatic switch operation.
func (sw *ISwtControls) Get_IsLocked() (bool, error) {
	return sw.ctx.flag(C.ctx_SwtControls_Get_IsLocked(sw.ptr))
}

func (sw *ISwtControls) Set_IsLocked(value bool) error {
	C.ctx_SwtControls_Set_IsLocked(sw.ptr, cbool(value))
	return sw.ctx.err()
}

// Get/set Normal state of switch (see actioncodes) dssActionOpen or dssActionClose
func (sw *ISwtControls) Get_NormalState() (enums.ActionCodes, error) {
	return asEnum[enums.ActionCodes](sw.ctx.i32(C.ctx_SwtControls_Get_NormalState(sw.ptr)))
}

func (sw *ISwtControls) Set_NormalState(value enums.ActionCodes) error {
	C.ctx_SwtControls_Set_NormalState(sw.ptr, C.int32_t(value))
	return sw.ctx.err()
}

// Set it to force the switch to a specified state, otherwise read its present state.
func (sw *ISwtControls) Get_State() (int32, error) {
	return sw.ctx.i32(C.ctx_SwtControls_Get_State(sw.ptr))
}

func (sw *ISwtControls) Set_State(value int32) error {
	C.ctx_SwtControls_Set_State(sw.ptr, C.int32_t(value))
	return sw.ctx.err()
}

// Full name of the switched element.
func (sw *ISwtControls) Get_SwitchedObj() (string, error) {
	return sw.ctx.str(C.ctx_SwtControls_Get_SwitchedObj(sw.ptr))
}

func (sw *ISwtControls) Set_SwitchedObj(value string) error {
	return sw.ctx.withString(value, func(cs *C.char) { C.ctx_SwtControls_Set_SwitchedObj(sw.ptr, cs) })
}

// Terminal number where the switch is located on the SwitchedObj
func (sw *ISwtControls) Get_SwitchedTerm() (int32, error) {
	return sw.ctx.i32(C.ctx_SwtControls_Get_SwitchedTerm(sw.ptr))
}

func (sw *ISwtControls) Set_SwitchedTerm(value int32) error {
	C.ctx_SwtControls_Set_SwitchedTerm(sw.ptr, C.int32_t(value))
	return sw.ctx.err()
}
