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

type ILoads struct {
	Iterable
}

var loadsIter = iterFuncs{
	allNames: func(p unsafe.Pointer, data ***C.char, cnt *C.int32_t) { C.ctx_Loads_Get_AllNames(p, data, cnt) },
	count:    func(p unsafe.Pointer) C.int32_t { return C.ctx_Loads_Get_Count(p) },
	first:    func(p unsafe.Pointer) C.int32_t { return C.ctx_Loads_Get_First(p) },
	next:     func(p unsafe.Pointer) C.int32_t { return C.ctx_Loads_Get_Next(p) },
	name:     func(p unsafe.Pointer) *C.char { return C.ctx_Loads_Get_Name(p) },
	setName:  func(p unsafe.Pointer, v *C.char) { C.ctx_Loads_Set_Name(p, v) },
	idx:      func(p unsafe.Pointer) C.int32_t { return C.ctx_Loads_Get_idx(p) },
	setIdx:   func(p unsafe.Pointer, v C.int32_t) { C.ctx_Loads_Set_idx(p, v) },
}

// Factor for allocating loads by connected xfkva
func (l *ILoads) Get_AllocationFactor() (float64, error) {
	return l.ctx.f64(C.ctx_Loads_Get_AllocationFactor(l.ptr))
}

func (l *ILoads) Set_AllocationFactor(value float64) error {
	C.ctx_Loads_Set_AllocationFactor(l.ptr, C.double(value))
	return l.ctx.err()
}

// Name of a loadshape with both Mult and Qmult, for CVR factors as a function of time.
func (l *ILoads) Get_CVRcurve() (string, error) { return l.ctx.str(C.ctx_Loads_Get_CVRcurve(l.ptr)) }

func (l *ILoads) Set_CVRcurve(value string) error {
	return l.ctx.withString(value, func(cs *C.char) { C.ctx_Loads_Set_CVRcurve(l.ptr, cs) })
}

// Percent reduction in Q for percent reduction in V. Must be used with dssLoadModelCVR.
func (l *ILoads) Get_CVRvars() (float64, error) { return l.ctx.f64(C.ctx_Loads_Get_CVRvars(l.ptr)) }

func (l *ILoads) Set_CVRvars(value float64) error {
	C.ctx_Loads_Set_CVRvars(l.ptr, C.double(value))
	return l.ctx.err()
}

// Percent reduction in P for percent reduction in V. Must be used with dssLoadModelCVR.
func (l *ILoads) Get_CVRwatts() (float64, error) { return l.ctx.f64(C.ctx_Loads_Get_CVRwatts(l.ptr)) }

func (l *ILoads) Set_CVRwatts(value float64) error {
	C.ctx_Loads_Set_CVRwatts(l.ptr, C.double(value))
	return l.ctx.err()
}

// Factor relates average to peak kw.  Used for allocation with kwh and kwhdays
func (l *ILoads) Get_Cfactor() (float64, error) { return l.ctx.f64(C.ctx_Loads_Get_Cfactor(l.ptr)) }

func (l *ILoads) Set_Cfactor(value float64) error {
	C.ctx_Loads_Set_Cfactor(l.ptr, C.double(value))
	return l.ctx.err()
}

func (l *ILoads) Get_Class() (int32, error) { return l.ctx.i32(C.ctx_Loads_Get_Class_(l.ptr)) }

func (l *ILoads) Set_Class(value int32) error {
	C.ctx_Loads_Set_Class_(l.ptr, C.int32_t(value))
	return l.ctx.err()
}

// Name of the growthshape curve for yearly load growth factors.
func (l *ILoads) Get_Growth() (string, error) { return l.ctx.str(C.ctx_Loads_Get_Growth(l.ptr)) }

func (l *ILoads) Set_Growth(value string) error {
	return l.ctx.withString(value, func(cs *C.char) { C.ctx_Loads_Set_Growth(l.ptr, cs) })
}

// Delta loads are connected line-to-line.
func (l *ILoads) Get_IsDelta() (bool, error) { return l.ctx.flag(C.ctx_Loads_Get_IsDelta(l.ptr)) }

func (l *ILoads) Set_IsDelta(value bool) error {
	C.ctx_Loads_Set_IsDelta(l.ptr, cbool(value))
	return l.ctx.err()
}

// The Load Model defines variation of P and Q with voltage.
func (l *ILoads) Get_Model() (enums.LoadModels, error) {
	return asEnum[enums.LoadModels](l.ctx.i32(C.ctx_Loads_Get_Model(l.ptr)))
}

func (l *ILoads) Set_Model(value enums.LoadModels) error {
	C.ctx_Loads_Set_Model(l.ptr, C.int32_t(value))
	return l.ctx.err()
}

// Number of customers in this load, defaults to one.
func (l *ILoads) Get_NumCust() (int32, error) { return l.ctx.i32(C.ctx_Loads_Get_NumCust(l.ptr)) }

func (l *ILoads) Set_NumCust(value int32) error {
	C.ctx_Loads_Set_NumCust(l.ptr, C.int32_t(value))
	return l.ctx.err()
}

// Get or set Power Factor for Active Load. Specify leading PF as negative. Updates kvar based on present value of kW
func (l *ILoads) Get_PF() (float64, error) { return l.ctx.f64(C.ctx_Loads_Get_PF(l.ptr)) }

func (l *ILoads) Set_PF(value float64) error {
	C.ctx_Loads_Set_PF(l.ptr, C.double(value))
	return l.ctx.err()
}

// Average percent of nominal load in Monte Carlo studies; only if no loadshape defined for this load.
func (l *ILoads) Get_PctMean() (float64, error) { return l.ctx.f64(C.ctx_Loads_Get_PctMean(l.ptr)) }

func (l *ILoads) Set_PctMean(value float64) error {
	C.ctx_Loads_Set_PctMean(l.ptr, C.double(value))
	return l.ctx.err()
}

// Percent standard deviation for Monte Carlo load studies; if there is no loadshape assigned to this load.
func (l *ILoads) Get_PctStdDev() (float64, error) { return l.ctx.f64(C.ctx_Loads_Get_PctStdDev(l.ptr)) }

func (l *ILoads) Set_PctStdDev(value float64) error {
	C.ctx_Loads_Set_PctStdDev(l.ptr, C.double(value))
	return l.ctx.err()
}

// Relative Weighting factor for the active LOAD
func (l *ILoads) Get_RelWeight() (float64, error) { return l.ctx.f64(C.ctx_Loads_Get_RelWeight(l.ptr)) }

func (l *ILoads) Set_RelWeight(value float64) error {
	C.ctx_Loads_Set_RelWeight(l.ptr, C.double(value))
	return l.ctx.err()
}

// Neutral resistance for wye-connected loads.
func (l *ILoads) Get_Rneut() (float64, error) { return l.ctx.f64(C.ctx_Loads_Get_Rneut(l.ptr)) }

func (l *ILoads) Set_Rneut(value float64) error {
	C.ctx_Loads_Set_Rneut(l.ptr, C.double(value))
	return l.ctx.err()
}

// Name of harmonic current spectrrum shape.
func (l *ILoads) Get_Spectrum() (string, error) { return l.ctx.str(C.ctx_Loads_Get_Spectrum(l.ptr)) }

func (l *ILoads) Set_Spectrum(value string) error {
	return l.ctx.withString(value, func(cs *C.char) { C.ctx_Loads_Set_Spectrum(l.ptr, cs) })
}

// Response to load multipliers: Fixed (growth only), Exempt (no LD curve), Variable (all).
func (l *ILoads) Get_Status() (enums.LoadStatus, error) {
	return asEnum[enums.LoadStatus](l.ctx.i32(C.ctx_Loads_Get_Status(l.ptr)))
}

func (l *ILoads) Set_Status(value enums.LoadStatus) error {
	C.ctx_Loads_Set_Status(l.ptr, C.int32_t(value))
	return l.ctx.err()
}

// Maximum per-unit voltage to use the load model. Above this, constant Z applies.
func (l *ILoads) Get_Vmaxpu() (float64, error) { return l.ctx.f64(C.ctx_Loads_Get_Vmaxpu(l.ptr)) }

func (l *ILoads) Set_Vmaxpu(value float64) error {
	C.ctx_Loads_Set_Vmaxpu(l.ptr, C.double(value))
	return l.ctx.err()
}

// Minimum voltage for unserved energy (UE) evaluation.
func (l *ILoads) Get_Vminemerg() (float64, error) { return l.ctx.f64(C.ctx_Loads_Get_Vminemerg(l.ptr)) }

func (l *ILoads) Set_Vminemerg(value float64) error {
	C.ctx_Loads_Set_Vminemerg(l.ptr, C.double(value))
	return l.ctx.err()
}

// Minimum voltage for energy exceeding normal (EEN) evaluations.
func (l *ILoads) Get_Vminnorm() (float64, error) { return l.ctx.f64(C.ctx_Loads_Get_Vminnorm(l.ptr)) }

func (l *ILoads) Set_Vminnorm(value float64) error {
	C.ctx_Loads_Set_Vminnorm(l.ptr, C.double(value))
	return l.ctx.err()
}

// Minimum voltage to apply the load model. Below this, constant Z is used.
func (l *ILoads) Get_Vminpu() (float64, error) { return l.ctx.f64(C.ctx_Loads_Get_Vminpu(l.ptr)) }

func (l *ILoads) Set_Vminpu(value float64) error {
	C.ctx_Loads_Set_Vminpu(l.ptr, C.double(value))
	return l.ctx.err()
}

// Neutral reactance for wye-connected loads.
func (l *ILoads) Get_Xneut() (float64, error) { return l.ctx.f64(C.ctx_Loads_Get_Xneut(l.ptr)) }

func (l *ILoads) Set_Xneut(value float64) error {
	C.ctx_Loads_Set_Xneut(l.ptr, C.double(value))
	return l.ctx.err()
}

// Name of yearly duration loadshape
func (l *ILoads) Get_Yearly() (string, error) { return l.ctx.str(C.ctx_Loads_Get_Yearly(l.ptr)) }

func (l *ILoads) Set_Yearly(value string) error {
	return l.ctx.withString(value, func(cs *C.char) { C.ctx_Loads_Set_Yearly(l.ptr, cs) })
}

// Array of 7 doubles with values for ZIPV property of the load object
func (l *ILoads) Get_ZIPV() ([]float64, error) {
	C.ctx_Loads_Get_ZIPV_GR(l.ptr)
	return l.ctx.float64s()
}

func (l *ILoads) Set_ZIPV(value []float64) error {
	ptr, cnt := cfloat64s(value)
	C.ctx_Loads_Set_ZIPV(l.ptr, ptr, cnt)
	return l.ctx.err()
}

// Name of the loadshape for a daily load profile.
func (l *ILoads) Get_daily() (string, error) { return l.ctx.str(C.ctx_Loads_Get_daily(l.ptr)) }

func (l *ILoads) Set_daily(value string) error {
	return l.ctx.withString(value, func(cs *C.char) { C.ctx_Loads_Set_daily(l.ptr, cs) })
}

// Name of the loadshape for a duty cycle simulation.
func (l *ILoads) Get_duty() (string, error) { return l.ctx.str(C.ctx_Loads_Get_duty(l.ptr)) }

func (l *ILoads) Set_duty(value string) error {
	return l.ctx.withString(value, func(cs *C.char) { C.ctx_Loads_Set_duty(l.ptr, cs) })
}

// Set kV rating for active Load. For 2 or more phases set Line-Line kV. Else actual kV across terminals.
func (l *ILoads) Get_kV() (float64, error) { return l.ctx.f64(C.ctx_Loads_Get_kV(l.ptr)) }

func (l *ILoads) Set_kV(value float64) error {
	C.ctx_Loads_Set_kV(l.ptr, C.double(value))
	return l.ctx.err()
}

// Set kW for active Load. Updates kvar based on present PF.
func (l *ILoads) Get_kW() (float64, error) { return l.ctx.f64(C.ctx_Loads_Get_kW(l.ptr)) }

func (l *ILoads) Set_kW(value float64) error {
	C.ctx_Loads_Set_kW(l.ptr, C.double(value))
	return l.ctx.err()
}

// Base load kva. Also defined kw and kvar or pf input, or load allocation by kwh or xfkva.
func (l *ILoads) Get_kva() (float64, error) { return l.ctx.f64(C.ctx_Loads_Get_kva(l.ptr)) }

func (l *ILoads) Set_kva(value float64) error {
	C.ctx_Loads_Set_kva(l.ptr, C.double(value))
	return l.ctx.err()
}

// Get/set kvar for active Load. If set, updates PF based on present kW.
func (l *ILoads) Get_kvar() (float64, error) { return l.ctx.f64(C.ctx_Loads_Get_kvar(l.ptr)) }

func (l *ILoads) Set_kvar(value float64) error {
	C.ctx_Loads_Set_kvar(l.ptr, C.double(value))
	return l.ctx.err()
}

// kwh billed for this period. Can be used with Cfactor for load allocation.
func (l *ILoads) Get_kwh() (float64, error) { return l.ctx.f64(C.ctx_Loads_Get_kwh(l.ptr)) }

func (l *ILoads) Set_kwh(value float64) error {
	C.ctx_Loads_Set_kwh(l.ptr, C.double(value))
	return l.ctx.err()
}

// Length of kwh billing period for average demand calculation. Default 30.
func (l *ILoads) Get_kwhdays() (float64, error) { return l.ctx.f64(C.ctx_Loads_Get_kwhdays(l.ptr)) }

func (l *ILoads) Set_kwhdays(value float64) error {
	C.ctx_Loads_Set_kwhdays(l.ptr, C.double(value))
	return l.ctx.err()
}

// Percent of Load that is modeled as series R-L for harmonics studies
func (l *ILoads) Get_pctSeriesRL() (float64, error) { return l.ctx.f64(C.ctx_Loads_Get_pctSeriesRL(l.ptr)) }

func (l *ILoads) Set_pctSeriesRL(value float64) error {
	C.ctx_Loads_Set_pctSeriesRL(l.ptr, C.double(value))
	return l.ctx.err()
}

// Rated service transformer kVA for load allocation, using AllocationFactor. Affects kW, kvar, and pf.
func (l *ILoads) Get_xfkVA() (float64, error) { return l.ctx.f64(C.ctx_Loads_Get_xfkVA(l.ptr)) }

func (l *ILoads) Set_xfkVA(value float64) error {
	C.ctx_Loads_Set_xfkVA(l.ptr, C.double(value))
	return l.ctx.err()
}

// Name of the sensor monitoring this load.
func (l *ILoads) Sensor() (string, error) { return l.ctx.str(C.ctx_Loads_Get_Sensor(l.ptr)) }

// Number of phases
//
// (API Extension)
func (l *ILoads) Get_Phases() (int32, error) { return l.ctx.i32(C.ctx_Loads_Get_Phases(l.ptr)) }

func (l *ILoads) Set_Phases(value int32) error {
	C.ctx_Loads_Set_Phases(l.ptr, C.int32_t(value))
	return l.ctx.err()
}

type ILoadShapes struct {
	Iterable
}

var loadShapesIter = iterFuncs{
	allNames: func(p unsafe.Pointer, data ***C.char, cnt *C.int32_t) { C.ctx_LoadShapes_Get_AllNames(p, data, cnt) },
	count:    func(p unsafe.Pointer) C.int32_t { return C.ctx_LoadShapes_Get_Count(p) },
	first:    func(p unsafe.Pointer) C.int32_t { return C.ctx_LoadShapes_Get_First(p) },
	next:     func(p unsafe.Pointer) C.int32_t { return C.ctx_LoadShapes_Get_Next(p) },
	name:     func(p unsafe.Pointer) *C.char { return C.ctx_LoadShapes_Get_Name(p) },
	setName:  func(p unsafe.Pointer, v *C.char) { C.ctx_LoadShapes_Set_Name(p, v) },
	idx:      func(p unsafe.Pointer) C.int32_t { return C.ctx_LoadShapes_Get_idx(p) },
	setIdx:   func(p unsafe.Pointer, v C.int32_t) { C.ctx_LoadShapes_Set_idx(p, v) },
}

func (ls *ILoadShapes) New(name string) (int32, error) {
	return ls.ctx.i32(cstr(name, func(cs *C.char) C.int32_t { return C.ctx_LoadShapes_New(ls.ptr, cs) }))
}

func (ls *ILoadShapes) Normalize() error {
	C.ctx_LoadShapes_Normalize(ls.ptr)
	return ls.ctx.err()
}

// Fixed interval time value, hours.
func (ls *ILoadShapes) Get_HrInterval() (float64, error) {
	return ls.ctx.f64(C.ctx_LoadShapes_Get_HrInterval(ls.ptr))
}

func (ls *ILoadShapes) Set_HrInterval(value float64) error {
	C.ctx_LoadShapes_Set_HrInterval(ls.ptr, C.double(value))
	return ls.ctx.err()
}

// Fixed Interval time value, in minutes
func (ls *ILoadShapes) Get_MinInterval() (float64, error) {
	return ls.ctx.f64(C.ctx_LoadShapes_Get_MinInterval(ls.ptr))
}

func (ls *ILoadShapes) Set_MinInterval(value float64) error {
	C.ctx_LoadShapes_Set_MinInterval(ls.ptr, C.double(value))
	return ls.ctx.err()
}

// Get/set Number of points in active Loadshape.
func (ls *ILoadShapes) Get_Npts() (int32, error) { return ls.ctx.i32(C.ctx_LoadShapes_Get_Npts(ls.ptr)) }

func (ls *ILoadShapes) Set_Npts(value int32) error {
	C.ctx_LoadShapes_Set_Npts(ls.ptr, C.int32_t(value))
	return ls.ctx.err()
}

func (ls *ILoadShapes) Get_PBase() (float64, error) {
	return ls.ctx.f64(C.ctx_LoadShapes_Get_PBase(ls.ptr))
}

func (ls *ILoadShapes) Set_PBase(value float64) error {
	C.ctx_LoadShapes_Set_PBase(ls.ptr, C.double(value))
	return ls.ctx.err()
}

// Array of doubles for the P multiplier in the Loadshape.
func (ls *ILoadShapes) Get_Pmult() ([]float64, error) {
	C.ctx_LoadShapes_Get_Pmult_GR(ls.ptr)
	return ls.ctx.float64s()
}

func (ls *ILoadShapes) Set_Pmult(value []float64) error {
	ptr, cnt := cfloat64s(value)
	C.ctx_LoadShapes_Set_Pmult(ls.ptr, ptr, cnt)
	return ls.ctx.err()
}

// Base for normalizing Q curve. If left at zero, the peak value is used.
func (ls *ILoadShapes) Get_QBase() (float64, error) {
	return ls.ctx.f64(C.ctx_LoadShapes_Get_Qbase(ls.ptr))
}

func (ls *ILoadShapes) Set_QBase(value float64) error {
	C.ctx_LoadShapes_Set_Qbase(ls.ptr, C.double(value))
	return ls.ctx.err()
}

// Array of doubles containing the Q multipliers.
func (ls *ILoadShapes) Get_Qmult() ([]float64, error) {
	C.ctx_LoadShapes_Get_Qmult_GR(ls.ptr)
	return ls.ctx.float64s()
}

func (ls *ILoadShapes) Set_Qmult(value []float64) error {
	ptr, cnt := cfloat64s(value)
	C.ctx_LoadShapes_Set_Qmult(ls.ptr, ptr, cnt)
	return ls.ctx.err()
}

// Time array in hours correscponding to P and Q multipliers when the Interval=0.
func (ls *ILoadShapes) Get_TimeArray() ([]float64, error) {
	C.ctx_LoadShapes_Get_TimeArray_GR(ls.ptr)
	return ls.ctx.float64s()
}

func (ls *ILoadShapes) Set_TimeArray(value []float64) error {
	ptr, cnt := cfloat64s(value)
	C.ctx_LoadShapes_Set_TimeArray(ls.ptr, ptr, cnt)
	return ls.ctx.err()
}

// Boolean flag to let Loads know to use the actual value in the curve rather than use the value as a multiplier.
func (ls *ILoadShapes) Get_UseActual() (bool, error) {
	return ls.ctx.flag(C.ctx_LoadShapes_Get_UseActual(ls.ptr))
}

func (ls *ILoadShapes) Set_UseActual(value bool) error {
	C.ctx_LoadShapes_Set_UseActual(ls.ptr, cbool(value))
	return ls.ctx.err()
}

func (ls *ILoadShapes) Get_sInterval() (float64, error) {
	return ls.ctx.f64(C.ctx_LoadShapes_Get_SInterval(ls.ptr))
}

func (ls *ILoadShapes) Set_sInterval(value float64) error {
	C.ctx_LoadShapes_Set_SInterval(ls.ptr, C.double(value))
	return ls.ctx.err()
}

// Converts the current LoadShape data to float32/single precision.
// If there is no data or the data is already represented using float32, nothing is done.
//
// (API Extension)
func (ls *ILoadShapes) UseFloat32() error {
	C.ctx_LoadShapes_UseFloat32(ls.ptr)
	return ls.ctx.err()
}

// Converts the current LoadShape data to float64/double precision.
// If there is no data or the data is already represented using float64, nothing is done.
//
// (API Extension)
func (ls *ILoadShapes) UseFloat64() error {
	C.ctx_LoadShapes_UseFloat64(ls.ptr)
	return ls.ctx.err()
}

type IXYCurves struct {
	Iterable
}

var xyCurvesIter = iterFuncs{
	allNames: func(p unsafe.Pointer, data ***C.char, cnt *C.int32_t) { C.ctx_XYCurves_Get_AllNames(p, data, cnt) },
	count:    func(p unsafe.Pointer) C.int32_t { return C.ctx_XYCurves_Get_Count(p) },
	first:    func(p unsafe.Pointer) C.int32_t { return C.ctx_XYCurves_Get_First(p) },
	next:     func(p unsafe.Pointer) C.int32_t { return C.ctx_XYCurves_Get_Next(p) },
	name:     func(p unsafe.Pointer) *C.char { return C.ctx_XYCurves_Get_Name(p) },
	setName:  func(p unsafe.Pointer, v *C.char) { C.ctx_XYCurves_Set_Name(p, v) },
	idx:      func(p unsafe.Pointer) C.int32_t { return C.ctx_XYCurves_Get_idx(p) },
	setIdx:   func(p unsafe.Pointer, v C.int32_t) { C.ctx_XYCurves_Set_idx(p, v) },
}

// Get/Set Number of points in X-Y curve
func (xy *IXYCurves) Get_Npts() (int32, error) { return xy.ctx.i32(C.ctx_XYCurves_Get_Npts(xy.ptr)) }

func (xy *IXYCurves) Set_Npts(value int32) error {
	C.ctx_XYCurves_Set_Npts(xy.ptr, C.int32_t(value))
	return xy.ctx.err()
}

// Get/set X values as a Array of doubles. Set Npts to max number expected if setting
func (xy *IXYCurves) Get_Xarray() ([]float64, error) {
	C.ctx_XYCurves_Get_Xarray_GR(xy.ptr)
	return xy.ctx.float64s()
}

func (xy *IXYCurves) Set_Xarray(value []float64) error {
	ptr, cnt := cfloat64s(value)
	C.ctx_XYCurves_Set_Xarray(xy.ptr, ptr, cnt)
	return xy.ctx.err()
}

// Factor to scale X values from original curve
func (xy *IXYCurves) Get_Xscale() (float64, error) { return xy.ctx.f64(C.ctx_XYCurves_Get_Xscale(xy.ptr)) }

func (xy *IXYCurves) Set_Xscale(value float64) error {
	C.ctx_XYCurves_Set_Xscale(xy.ptr, C.double(value))
	return xy.ctx.err()
}

// Amount to shift X value from original curve
func (xy *IXYCurves) Get_Xshift() (float64, error) { return xy.ctx.f64(C.ctx_XYCurves_Get_Xshift(xy.ptr)) }

func (xy *IXYCurves) Set_Xshift(value float64) error {
	C.ctx_XYCurves_Set_Xshift(xy.ptr, C.double(value))
	return xy.ctx.err()
}

// Get/Set Y values in curve; Set Npts to max number expected if setting
func (xy *IXYCurves) Get_Yarray() ([]float64, error) {
	C.ctx_XYCurves_Get_Yarray_GR(xy.ptr)
	return xy.ctx.float64s()
}

func (xy *IXYCurves) Set_Yarray(value []float64) error {
	ptr, cnt := cfloat64s(value)
	C.ctx_XYCurves_Set_Yarray(xy.ptr, ptr, cnt)
	return xy.ctx.err()
}

// Factor to scale Y values from original curve
func (xy *IXYCurves) Get_Yscale() (float64, error) { return xy.ctx.f64(C.ctx_XYCurves_Get_Yscale(xy.ptr)) }

func (xy *IXYCurves) Set_Yscale(value float64) error {
	C.ctx_XYCurves_Set_Yscale(xy.ptr, C.double(value))
	return xy.ctx.err()
}

// Amount to shift Y value from original curve
func (xy *IXYCurves) Get_Yshift() (float64, error) { return xy.ctx.f64(C.ctx_XYCurves_Get_Yshift(xy.ptr)) }

func (xy *IXYCurves) Set_Yshift(value float64) error {
	C.ctx_XYCurves_Set_Yshift(xy.ptr, C.double(value))
	return xy.ctx.err()
}

// Set X value or get interpolated value after setting Y
func (xy *IXYCurves) Get_x() (float64, error) { return xy.ctx.f64(C.ctx_XYCurves_Get_x(xy.ptr)) }

func (xy *IXYCurves) Set_x(value float64) error {
	C.ctx_XYCurves_Set_x(xy.ptr, C.double(value))
	return xy.ctx.err()
}

// Set Y value or get interpolated Y value after setting X
func (xy *IXYCurves) Get_y() (float64, error) { return xy.ctx.f64(C.ctx_XYCurves_Get_y(xy.ptr)) }

func (xy *IXYCurves) Set_y(value float64) error {
	C.ctx_XYCurves_Set_y(xy.ptr, C.double(value))
	return xy.ctx.err()
}
