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

type ILines struct {
	Iterable
}

var linesIter = iterFuncs{
	allNames: func(p unsafe.Pointer, data ***C.char, cnt *C.int32_t) { C.ctx_Lines_Get_AllNames(p, data, cnt) },
	count:    func(p unsafe.Pointer) C.int32_t { return C.ctx_Lines_Get_Count(p) },
	first:    func(p unsafe.Pointer) C.int32_t { return C.ctx_Lines_Get_First(p) },
	next:     func(p unsafe.Pointer) C.int32_t { return C.ctx_Lines_Get_Next(p) },
	name:     func(p unsafe.Pointer) *C.char { return C.ctx_Lines_Get_Name(p) },
	setName:  func(p unsafe.Pointer, v *C.char) { C.ctx_Lines_Set_Name(p, v) },
	idx:      func(p unsafe.Pointer) C.int32_t { return C.ctx_Lines_Get_idx(p) },
	setIdx:   func(p unsafe.Pointer, v C.int32_t) { C.ctx_Lines_Set_idx(p, v) },
}

func (l *ILines) New(name string) (int32, error) {
	return l.ctx.i32(cstr(name, func(cs *C.char) C.int32_t { return C.ctx_Lines_New(l.ptr, cs) }))
}

// Name of bus for terminal 1.
func (l *ILines) Get_Bus1() (string, error) { return l.ctx.str(C.ctx_Lines_Get_Bus1(l.ptr)) }

func (l *ILines) Set_Bus1(value string) error {
	return l.ctx.withString(value, func(cs *C.char) { C.ctx_Lines_Set_Bus1(l.ptr, cs) })
}

// Name of bus for terminal 2.
func (l *ILines) Get_Bus2() (string, error) { return l.ctx.str(C.ctx_Lines_Get_Bus2(l.ptr)) }

func (l *ILines) Set_Bus2(value string) error {
	return l.ctx.withString(value, func(cs *C.char) { C.ctx_Lines_Set_Bus2(l.ptr, cs) })
}

// Zero Sequence capacitance, nanofarads per unit length.
func (l *ILines) Get_C0() (float64, error) { return l.ctx.f64(C.ctx_Lines_Get_C0(l.ptr)) }

func (l *ILines) Set_C0(value float64) error {
	C.ctx_Lines_Set_C0(l.ptr, C.double(value))
	return l.ctx.err()
}

// Positive Sequence capacitance, nanofarads per unit length.
func (l *ILines) Get_C1() (float64, error) { return l.ctx.f64(C.ctx_Lines_Get_C1(l.ptr)) }

func (l *ILines) Set_C1(value float64) error {
	C.ctx_Lines_Set_C1(l.ptr, C.double(value))
	return l.ctx.err()
}

func (l *ILines) Get_Cmatrix() ([]float64, error) {
	C.ctx_Lines_Get_Cmatrix_GR(l.ptr)
	return l.ctx.float64s()
}

func (l *ILines) Set_Cmatrix(value []float64) error {
	ptr, cnt := cfloat64s(value)
	C.ctx_Lines_Set_Cmatrix(l.ptr, ptr, cnt)
	return l.ctx.err()
}

// Emergency (maximum) ampere rating of Line.
func (l *ILines) Get_EmergAmps() (float64, error) { return l.ctx.f64(C.ctx_Lines_Get_EmergAmps(l.ptr)) }

func (l *ILines) Set_EmergAmps(value float64) error {
	C.ctx_Lines_Set_EmergAmps(l.ptr, C.double(value))
	return l.ctx.err()
}

// Line geometry code
func (l *ILines) Get_Geometry() (string, error) { return l.ctx.str(C.ctx_Lines_Get_Geometry(l.ptr)) }

func (l *ILines) Set_Geometry(value string) error {
	return l.ctx.withString(value, func(cs *C.char) { C.ctx_Lines_Set_Geometry(l.ptr, cs) })
}

// Length of line section in units compatible with the LineCode definition.
func (l *ILines) Get_Length() (float64, error) { return l.ctx.f64(C.ctx_Lines_Get_Length(l.ptr)) }

func (l *ILines) Set_Length(value float64) error {
	C.ctx_Lines_Set_Length(l.ptr, C.double(value))
	return l.ctx.err()
}

// Name of LineCode object that defines the impedances.
func (l *ILines) Get_LineCode() (string, error) { return l.ctx.str(C.ctx_Lines_Get_LineCode(l.ptr)) }

func (l *ILines) Set_LineCode(value string) error {
	return l.ctx.withString(value, func(cs *C.char) { C.ctx_Lines_Set_LineCode(l.ptr, cs) })
}

// Normal ampere rating of Line.
func (l *ILines) Get_NormAmps() (float64, error) { return l.ctx.f64(C.ctx_Lines_Get_NormAmps(l.ptr)) }

func (l *ILines) Set_NormAmps(value float64) error {
	C.ctx_Lines_Set_NormAmps(l.ptr, C.double(value))
	return l.ctx.err()
}

// Number of customers on this line section.
func (l *ILines) NumCust() (int32, error) { return l.ctx.i32(C.ctx_Lines_Get_NumCust(l.ptr)) }

// Sets Parent of the active Line to be the active line. Returns 0 if no parent or action fails.
func (l *ILines) Parent() (int32, error) { return l.ctx.i32(C.ctx_Lines_Get_Parent(l.ptr)) }

// Number of Phases, this Line element.
func (l *ILines) Get_Phases() (int32, error) { return l.ctx.i32(C.ctx_Lines_Get_Phases(l.ptr)) }

func (l *ILines) Set_Phases(value int32) error {
	C.ctx_Lines_Set_Phases(l.ptr, C.int32_t(value))
	return l.ctx.err()
}

// Zero Sequence resistance, ohms per unit length.
func (l *ILines) Get_R0() (float64, error) { return l.ctx.f64(C.ctx_Lines_Get_R0(l.ptr)) }

func (l *ILines) Set_R0(value float64) error {
	C.ctx_Lines_Set_R0(l.ptr, C.double(value))
	return l.ctx.err()
}

// Positive Sequence resistance, ohms per unit length.
func (l *ILines) Get_R1() (float64, error) { return l.ctx.f64(C.ctx_Lines_Get_R1(l.ptr)) }

func (l *ILines) Set_R1(value float64) error {
	C.ctx_Lines_Set_R1(l.ptr, C.double(value))
	return l.ctx.err()
}

// Earth return resistance value used to compute line impedances at power frequency
func (l *ILines) Get_Rg() (float64, error) { return l.ctx.f64(C.ctx_Lines_Get_Rg(l.ptr)) }

func (l *ILines) Set_Rg(value float64) error {
	C.ctx_Lines_Set_Rg(l.ptr, C.double(value))
	return l.ctx.err()
}

// Earth Resistivity, m-ohms
func (l *ILines) Get_Rho() (float64, error) { return l.ctx.f64(C.ctx_Lines_Get_Rho(l.ptr)) }

func (l *ILines) Set_Rho(value float64) error {
	C.ctx_Lines_Set_Rho(l.ptr, C.double(value))
	return l.ctx.err()
}

// Resistance matrix (full), ohms per unit length. Array of doubles.
func (l *ILines) Get_Rmatrix() ([]float64, error) {
	C.ctx_Lines_Get_Rmatrix_GR(l.ptr)
	return l.ctx.float64s()
}

func (l *ILines) Set_Rmatrix(value []float64) error {
	ptr, cnt := cfloat64s(value)
	C.ctx_Lines_Set_Rmatrix(l.ptr, ptr, cnt)
	return l.ctx.err()
}

// Line spacing code
func (l *ILines) Get_Spacing() (string, error) { return l.ctx.str(C.ctx_Lines_Get_Spacing(l.ptr)) }

func (l *ILines) Set_Spacing(value string) error {
	return l.ctx.withString(value, func(cs *C.char) { C.ctx_Lines_Set_Spacing(l.ptr, cs) })
}

// Total Number of customers served from this line section.
func (l *ILines) TotalCust() (int32, error) { return l.ctx.i32(C.ctx_Lines_Get_TotalCust(l.ptr)) }

func (l *ILines) Get_Units() (enums.LineUnits, error) {
	return asEnum[enums.LineUnits](l.ctx.i32(C.ctx_Lines_Get_Units(l.ptr)))
}

func (l *ILines) Set_Units(value enums.LineUnits) error {
	C.ctx_Lines_Set_Units(l.ptr, C.int32_t(value))
	return l.ctx.err()
}

// Zero Sequence reactance ohms per unit length.
func (l *ILines) Get_X0() (float64, error) { return l.ctx.f64(C.ctx_Lines_Get_X0(l.ptr)) }

func (l *ILines) Set_X0(value float64) error {
	C.ctx_Lines_Set_X0(l.ptr, C.double(value))
	return l.ctx.err()
}

// Positive Sequence reactance, ohms per unit length.
func (l *ILines) Get_X1() (float64, error) { return l.ctx.f64(C.ctx_Lines_Get_X1(l.ptr)) }

func (l *ILines) Set_X1(value float64) error {
	C.ctx_Lines_Set_X1(l.ptr, C.double(value))
	return l.ctx.err()
}

// Earth return reactance value used to compute line impedances at power frequency
func (l *ILines) Get_Xg() (float64, error) { return l.ctx.f64(C.ctx_Lines_Get_Xg(l.ptr)) }

func (l *ILines) Set_Xg(value float64) error {
	C.ctx_Lines_Set_Xg(l.ptr, C.double(value))
	return l.ctx.err()
}

// Reactance matrix (full), ohms per unit length. Array of doubles.
func (l *ILines) Get_Xmatrix() ([]float64, error) {
	C.ctx_Lines_Get_Xmatrix_GR(l.ptr)
	return l.ctx.float64s()
}

func (l *ILines) Set_Xmatrix(value []float64) error {
	ptr, cnt := cfloat64s(value)
	C.ctx_Lines_Set_Xmatrix(l.ptr, ptr, cnt)
	return l.ctx.err()
}

// Yprimitive for the active line object (complex array).
func (l *ILines) Get_Yprim() ([]complex128, error) {
	C.ctx_Lines_Get_Yprim_GR(l.ptr)
	return l.ctx.complexes()
}

func (l *ILines) Set_Yprim(value []complex128) error {
	ptr, cnt := ccomplexes(value)
	C.ctx_Lines_Set_Yprim(l.ptr, ptr, cnt)
	return l.ctx.err()
}

// Delivers the rating for the current season (in Amps)  if the "SeasonalRatings" option is active
func (l *ILines) SeasonRating() (float64, error) { return l.ctx.f64(C.ctx_Lines_Get_SeasonRating(l.ptr)) }

// Sets/gets the Line element switch status. Setting it has side-effects to the line parameters.
//
// (API Extension)
func (l *ILines) Get_IsSwitch() (bool, error) { return l.ctx.flag(C.ctx_Lines_Get_IsSwitch(l.ptr)) }

func (l *ILines) Set_IsSwitch(value bool) error {
	C.ctx_Lines_Set_IsSwitch(l.ptr, cbool(value))
	return l.ctx.err()
}

type ILineCodes struct {
	Iterable
}

var lineCodesIter = iterFuncs{
	allNames: func(p unsafe.Pointer, data ***C.char, cnt *C.int32_t) { C.ctx_LineCodes_Get_AllNames(p, data, cnt) },
	count:    func(p unsafe.Pointer) C.int32_t { return C.ctx_LineCodes_Get_Count(p) },
	first:    func(p unsafe.Pointer) C.int32_t { return C.ctx_LineCodes_Get_First(p) },
	next:     func(p unsafe.Pointer) C.int32_t { return C.ctx_LineCodes_Get_Next(p) },
	name:     func(p unsafe.Pointer) *C.char { return C.ctx_LineCodes_Get_Name(p) },
	setName:  func(p unsafe.Pointer, v *C.char) { C.ctx_LineCodes_Set_Name(p, v) },
	idx:      func(p unsafe.Pointer) C.int32_t { return C.ctx_LineCodes_Get_idx(p) },
	setIdx:   func(p unsafe.Pointer, v C.int32_t) { C.ctx_LineCodes_Set_idx(p, v) },
}

// Zero-sequence capacitance, nF per unit length
func (lc *ILineCodes) Get_C0() (float64, error) { return lc.ctx.f64(C.ctx_LineCodes_Get_C0(lc.ptr)) }

func (lc *ILineCodes) Set_C0(value float64) error {
	C.ctx_LineCodes_Set_C0(lc.ptr, C.double(value))
	return lc.ctx.err()
}

// Positive-sequence capacitance, nF per unit length
func (lc *ILineCodes) Get_C1() (float64, error) { return lc.ctx.f64(C.ctx_LineCodes_Get_C1(lc.ptr)) }

func (lc *ILineCodes) Set_C1(value float64) error {
	C.ctx_LineCodes_Set_C1(lc.ptr, C.double(value))
	return lc.ctx.err()
}

// Capacitance matrix, nF per unit length
func (lc *ILineCodes) Get_Cmatrix() ([]float64, error) {
	C.ctx_LineCodes_Get_Cmatrix_GR(lc.ptr)
	return lc.ctx.float64s()
}

func (lc *ILineCodes) Set_Cmatrix(value []float64) error {
	ptr, cnt := cfloat64s(value)
	C.ctx_LineCodes_Set_Cmatrix(lc.ptr, ptr, cnt)
	return lc.ctx.err()
}

// Emergency ampere rating
func (lc *ILineCodes) Get_EmergAmps() (float64, error) {
	return lc.ctx.f64(C.ctx_LineCodes_Get_EmergAmps(lc.ptr))
}

func (lc *ILineCodes) Set_EmergAmps(value float64) error {
	C.ctx_LineCodes_Set_EmergAmps(lc.ptr, C.double(value))
	return lc.ctx.err()
}

// Flag denoting whether impedance data were entered in symmetrical components
func (lc *ILineCodes) IsZ1Z0() (bool, error) { return lc.ctx.flag(C.ctx_LineCodes_Get_IsZ1Z0(lc.ptr)) }

// Normal Ampere rating
func (lc *ILineCodes) Get_NormAmps() (float64, error) {
	return lc.ctx.f64(C.ctx_LineCodes_Get_NormAmps(lc.ptr))
}

func (lc *ILineCodes) Set_NormAmps(value float64) error {
	C.ctx_LineCodes_Set_NormAmps(lc.ptr, C.double(value))
	return lc.ctx.err()
}

// Number of Phases
func (lc *ILineCodes) Get_Phases() (int32, error) { return lc.ctx.i32(C.ctx_LineCodes_Get_Phases(lc.ptr)) }

func (lc *ILineCodes) Set_Phases(value int32) error {
	C.ctx_LineCodes_Set_Phases(lc.ptr, C.int32_t(value))
	return lc.ctx.err()
}

// Zero-Sequence Resistance, ohms per unit length
func (lc *ILineCodes) Get_R0() (float64, error) { return lc.ctx.f64(C.ctx_LineCodes_Get_R0(lc.ptr)) }

func (lc *ILineCodes) Set_R0(value float64) error {
	C.ctx_LineCodes_Set_R0(lc.ptr, C.double(value))
	return lc.ctx.err()
}

// Positive-sequence resistance ohms per unit length
func (lc *ILineCodes) Get_R1() (float64, error) { return lc.ctx.f64(C.ctx_LineCodes_Get_R1(lc.ptr)) }

func (lc *ILineCodes) Set_R1(value float64) error {
	C.ctx_LineCodes_Set_R1(lc.ptr, C.double(value))
	return lc.ctx.err()
}

// Resistance matrix, ohms per unit length
func (lc *ILineCodes) Get_Rmatrix() ([]float64, error) {
	C.ctx_LineCodes_Get_Rmatrix_GR(lc.ptr)
	return lc.ctx.float64s()
}

func (lc *ILineCodes) Set_Rmatrix(value []float64) error {
	ptr, cnt := cfloat64s(value)
	C.ctx_LineCodes_Set_Rmatrix(lc.ptr, ptr, cnt)
	return lc.ctx.err()
}

func (lc *ILineCodes) Get_Units() (enums.LineUnits, error) {
	return asEnum[enums.LineUnits](lc.ctx.i32(C.ctx_LineCodes_Get_Units(lc.ptr)))
}

func (lc *ILineCodes) Set_Units(value enums.LineUnits) error {
	C.ctx_LineCodes_Set_Units(lc.ptr, C.int32_t(value))
	return lc.ctx.err()
}

// Zero Sequence Reactance, Ohms per unit length
func (lc *ILineCodes) Get_X0() (float64, error) { return lc.ctx.f64(C.ctx_LineCodes_Get_X0(lc.ptr)) }

func (lc *ILineCodes) Set_X0(value float64) error {
	C.ctx_LineCodes_Set_X0(lc.ptr, C.double(value))
	return lc.ctx.err()
}

// Posiive-sequence reactance, ohms per unit length
func (lc *ILineCodes) Get_X1() (float64, error) { return lc.ctx.f64(C.ctx_LineCodes_Get_X1(lc.ptr)) }

func (lc *ILineCodes) Set_X1(value float64) error {
	C.ctx_LineCodes_Set_X1(lc.ptr, C.double(value))
	return lc.ctx.err()
}

// Reactance matrix, ohms per unit length
func (lc *ILineCodes) Get_Xmatrix() ([]float64, error) {
	C.ctx_LineCodes_Get_Xmatrix_GR(lc.ptr)
	return lc.ctx.float64s()
}

func (lc *ILineCodes) Set_Xmatrix(value []float64) error {
	ptr, cnt := cfloat64s(value)
	C.ctx_LineCodes_Set_Xmatrix(lc.ptr, ptr, cnt)
	return lc.ctx.err()
}

type ILineGeometries struct {
	Iterable
}

var lineGeometriesIter = iterFuncs{
	allNames: func(p unsafe.Pointer, data ***C.char, cnt *C.int32_t) { C.ctx_LineGeometries_Get_AllNames(p, data, cnt) },
	count:    func(p unsafe.Pointer) C.int32_t { return C.ctx_LineGeometries_Get_Count(p) },
	first:    func(p unsafe.Pointer) C.int32_t { return C.ctx_LineGeometries_Get_First(p) },
	next:     func(p unsafe.Pointer) C.int32_t { return C.ctx_LineGeometries_Get_Next(p) },
	name:     func(p unsafe.Pointer) *C.char { return C.ctx_LineGeometries_Get_Name(p) },
	setName:  func(p unsafe.Pointer, v *C.char) { C.ctx_LineGeometries_Set_Name(p, v) },
	idx:      func(p unsafe.Pointer) C.int32_t { return C.ctx_LineGeometries_Get_idx(p) },
	setIdx:   func(p unsafe.Pointer, v C.int32_t) { C.ctx_LineGeometries_Set_idx(p, v) },
}

// Array of strings with names of all conductors in the active LineGeometry object
func (lg *ILineGeometries) Conductors() ([]string, error) {
	return lg.ctx.strings(func(data ***C.char, cnt *C.int32_t) { C.ctx_LineGeometries_Get_Conductors(lg.ptr, data, cnt) })
}

// Emergency ampere rating
func (lg *ILineGeometries) Get_EmergAmps() (float64, error) {
	return lg.ctx.f64(C.ctx_LineGeometries_Get_EmergAmps(lg.ptr))
}

func (lg *ILineGeometries) Set_EmergAmps(value float64) error {
	C.ctx_LineGeometries_Set_EmergAmps(lg.ptr, C.double(value))
	return lg.ctx.err()
}

// Normal ampere rating
func (lg *ILineGeometries) Get_NormAmps() (float64, error) {
	return lg.ctx.f64(C.ctx_LineGeometries_Get_NormAmps(lg.ptr))
}

func (lg *ILineGeometries) Set_NormAmps(value float64) error {
	C.ctx_LineGeometries_Set_NormAmps(lg.ptr, C.double(value))
	return lg.ctx.err()
}

func (lg *ILineGeometries) Get_RhoEarth() (float64, error) {
	return lg.ctx.f64(C.ctx_LineGeometries_Get_RhoEarth(lg.ptr))
}

func (lg *ILineGeometries) Set_RhoEarth(value float64) error {
	C.ctx_LineGeometries_Set_RhoEarth(lg.ptr, C.double(value))
	return lg.ctx.err()
}

func (lg *ILineGeometries) Get_Reduce() (bool, error) {
	return lg.ctx.flag(C.ctx_LineGeometries_Get_Reduce(lg.ptr))
}

func (lg *ILineGeometries) Set_Reduce(value bool) error {
	C.ctx_LineGeometries_Set_Reduce(lg.ptr, cbool(value))
	return lg.ctx.err()
}

// Number of Phases
func (lg *ILineGeometries) Get_Phases() (int32, error) {
	return lg.ctx.i32(C.ctx_LineGeometries_Get_Phases(lg.ptr))
}

func (lg *ILineGeometries) Set_Phases(value int32) error {
	C.ctx_LineGeometries_Set_Phases(lg.ptr, C.int32_t(value))
	return lg.ctx.err()
}

// Resistance matrix, ohms
func (lg *ILineGeometries) Rmatrix(frequency float64, length float64, units int32) ([]float64, error) {
	C.ctx_LineGeometries_Get_Rmatrix_GR(lg.ptr, C.double(frequency), C.double(length), C.int32_t(units))
	return lg.ctx.float64s()
}

// Reactance matrix, ohms
func (lg *ILineGeometries) Xmatrix(frequency float64, length float64, units int32) ([]float64, error) {
	C.ctx_LineGeometries_Get_Xmatrix_GR(lg.ptr, C.double(frequency), C.double(length), C.int32_t(units))
	return lg.ctx.float64s()
}

// Complex impedance matrix, ohms
func (lg *ILineGeometries) Zmatrix(frequency float64, length float64, units int32) ([]complex128, error) {
	C.ctx_LineGeometries_Get_Zmatrix_GR(lg.ptr, C.double(frequency), C.double(length), C.int32_t(units))
	return lg.ctx.complexes()
}

// Capacitance matrix, nF
func (lg *ILineGeometries) Cmatrix(frequency float64, length float64, units int32) ([]float64, error) {
	C.ctx_LineGeometries_Get_Cmatrix_GR(lg.ptr, C.double(frequency), C.double(length), C.int32_t(units))
	return lg.ctx.float64s()
}

func (lg *ILineGeometries) Get_Units() ([]enums.LineUnits, error) {
	C.ctx_LineGeometries_Get_Units_GR(lg.ptr)
	values, err := lg.ctx.int32s()
	res := make([]enums.LineUnits, len(values))
	for i, v := range values {
		res[i] = enums.LineUnits(v)
	}
	return res, err
}

func (lg *ILineGeometries) Set_Units(value []enums.LineUnits) error {
	ptr, cnt := cint32s(value)
	C.ctx_LineGeometries_Set_Units(lg.ptr, ptr, cnt)
	return lg.ctx.err()
}

// Get/Set the X (horizontal) coordinates of the conductors
func (lg *ILineGeometries) Get_Xcoords() ([]float64, error) {
	C.ctx_LineGeometries_Get_Xcoords_GR(lg.ptr)
	return lg.ctx.float64s()
}

func (lg *ILineGeometries) Set_Xcoords(value []float64) error {
	ptr, cnt := cfloat64s(value)
	C.ctx_LineGeometries_Set_Xcoords(lg.ptr, ptr, cnt)
	return lg.ctx.err()
}

// Get/Set the Y (vertical/height) coordinates of the conductors
func (lg *ILineGeometries) Get_Ycoords() ([]float64, error) {
	C.ctx_LineGeometries_Get_Ycoords_GR(lg.ptr)
	return lg.ctx.float64s()
}

func (lg *ILineGeometries) Set_Ycoords(value []float64) error {
	ptr, cnt := cfloat64s(value)
	C.ctx_LineGeometries_Set_Ycoords(lg.ptr, ptr, cnt)
	return lg.ctx.err()
}

// Number of conductors in this geometry. Default is 3. Triggers memory allocations. Define first!
func (lg *ILineGeometries) Get_Nconds() (int32, error) {
	return lg.ctx.i32(C.ctx_LineGeometries_Get_Nconds(lg.ptr))
}

func (lg *ILineGeometries) Set_Nconds(value int32) error {
	C.ctx_LineGeometries_Set_Nconds(lg.ptr, C.int32_t(value))
	return lg.ctx.err()
}

type ILineSpacings struct {
	Iterable
}

var lineSpacingsIter = iterFuncs{
	allNames: func(p unsafe.Pointer, data ***C.char, cnt *C.int32_t) { C.ctx_LineSpacings_Get_AllNames(p, data, cnt) },
	count:    func(p unsafe.Pointer) C.int32_t { return C.ctx_LineSpacings_Get_Count(p) },
	first:    func(p unsafe.Pointer) C.int32_t { return C.ctx_LineSpacings_Get_First(p) },
	next:     func(p unsafe.Pointer) C.int32_t { return C.ctx_LineSpacings_Get_Next(p) },
	name:     func(p unsafe.Pointer) *C.char { return C.ctx_LineSpacings_Get_Name(p) },
	setName:  func(p unsafe.Pointer, v *C.char) { C.ctx_LineSpacings_Set_Name(p, v) },
	idx:      func(p unsafe.Pointer) C.int32_t { return C.ctx_LineSpacings_Get_idx(p) },
	setIdx:   func(p unsafe.Pointer, v C.int32_t) { C.ctx_LineSpacings_Set_idx(p, v) },
}

// Number of Phases
func (sp *ILineSpacings) Get_Phases() (int32, error) {
	return sp.ctx.i32(C.ctx_LineSpacings_Get_Phases(sp.ptr))
}

func (sp *ILineSpacings) Set_Phases(value int32) error {
	C.ctx_LineSpacings_Set_Phases(sp.ptr, C.int32_t(value))
	return sp.ctx.err()
}

func (sp *ILineSpacings) Get_Nconds() (int32, error) {
	return sp.ctx.i32(C.ctx_LineSpacings_Get_Nconds(sp.ptr))
}

func (sp *ILineSpacings) Set_Nconds(value int32) error {
	C.ctx_LineSpacings_Set_Nconds(sp.ptr, C.int32_t(value))
	return sp.ctx.err()
}

func (sp *ILineSpacings) Get_Units() (enums.LineUnits, error) {
	return asEnum[enums.LineUnits](sp.ctx.i32(C.ctx_LineSpacings_Get_Units(sp.ptr)))
}

func (sp *ILineSpacings) Set_Units(value enums.LineUnits) error {
	C.ctx_LineSpacings_Set_Units(sp.ptr, C.int32_t(value))
	return sp.ctx.err()
}

// Get/Set the X (horizontal) coordinates of the conductors
func (sp *ILineSpacings) Get_Xcoords() ([]float64, error) {
	C.ctx_LineSpacings_Get_Xcoords_GR(sp.ptr)
	return sp.ctx.float64s()
}

func (sp *ILineSpacings) Set_Xcoords(value []float64) error {
	ptr, cnt := cfloat64s(value)
	C.ctx_LineSpacings_Set_Xcoords(sp.ptr, ptr, cnt)
	return sp.ctx.err()
}

// Get/Set the Y (vertical/height) coordinates of the conductors
func (sp *ILineSpacings) Get_Ycoords() ([]float64, error) {
	C.ctx_LineSpacings_Get_Ycoords_GR(sp.ptr)
	return sp.ctx.float64s()
}

func (sp *ILineSpacings) Set_Ycoords(value []float64) error {
	ptr, cnt := cfloat64s(value)
	C.ctx_LineSpacings_Set_Ycoords(sp.ptr, ptr, cnt)
	return sp.ctx.err()
}

type IWireData struct {
	Iterable
}

var wireDataIter = iterFuncs{
	allNames: func(p unsafe.Pointer, data ***C.char, cnt *C.int32_t) { C.ctx_WireData_Get_AllNames(p, data, cnt) },
	count:    func(p unsafe.Pointer) C.int32_t { return C.ctx_WireData_Get_Count(p) },
	first:    func(p unsafe.Pointer) C.int32_t { return C.ctx_WireData_Get_First(p) },
	next:     func(p unsafe.Pointer) C.int32_t { return C.ctx_WireData_Get_Next(p) },
	name:     func(p unsafe.Pointer) *C.char { return C.ctx_WireData_Get_Name(p) },
	setName:  func(p unsafe.Pointer, v *C.char) { C.ctx_WireData_Set_Name(p, v) },
	idx:      func(p unsafe.Pointer) C.int32_t { return C.ctx_WireData_Get_idx(p) },
	setIdx:   func(p unsafe.Pointer, v C.int32_t) { C.ctx_WireData_Set_idx(p, v) },
}

// Emergency ampere rating
func (w *IWireData) Get_EmergAmps() (float64, error) {
	return w.ctx.f64(C.ctx_WireData_Get_EmergAmps(w.ptr))
}

func (w *IWireData) Set_EmergAmps(value float64) error {
	C.ctx_WireData_Set_EmergAmps(w.ptr, C.double(value))
	return w.ctx.err()
}

// Normal Ampere rating
func (w *IWireData) Get_NormAmps() (float64, error) { return w.ctx.f64(C.ctx_WireData_Get_NormAmps(w.ptr)) }

func (w *IWireData) Set_NormAmps(value float64) error {
	C.ctx_WireData_Set_NormAmps(w.ptr, C.double(value))
	return w.ctx.err()
}

func (w *IWireData) Get_Rdc() (float64, error) { return w.ctx.f64(C.ctx_WireData_Get_Rdc(w.ptr)) }

func (w *IWireData) Set_Rdc(value float64) error {
	C.ctx_WireData_Set_Rdc(w.ptr, C.double(value))
	return w.ctx.err()
}

func (w *IWireData) Get_Rac() (float64, error) { return w.ctx.f64(C.ctx_WireData_Get_Rac(w.ptr)) }

func (w *IWireData) Set_Rac(value float64) error {
	C.ctx_WireData_Set_Rac(w.ptr, C.double(value))
	return w.ctx.err()
}

func (w *IWireData) Get_GMRac() (float64, error) { return w.ctx.f64(C.ctx_WireData_Get_GMRac(w.ptr)) }

func (w *IWireData) Set_GMRac(value float64) error {
	C.ctx_WireData_Set_GMRac(w.ptr, C.double(value))
	return w.ctx.err()
}

func (w *IWireData) Get_GMRUnits() (enums.LineUnits, error) {
	return asEnum[enums.LineUnits](w.ctx.i32(C.ctx_WireData_Get_GMRUnits(w.ptr)))
}

func (w *IWireData) Set_GMRUnits(value enums.LineUnits) error {
	C.ctx_WireData_Set_GMRUnits(w.ptr, C.int32_t(value))
	return w.ctx.err()
}

func (w *IWireData) Get_Radius() (float64, error) { return w.ctx.f64(C.ctx_WireData_Get_Radius(w.ptr)) }

func (w *IWireData) Set_Radius(value float64) error {
	C.ctx_WireData_Set_Radius(w.ptr, C.double(value))
	return w.ctx.err()
}

func (w *IWireData) Get_RadiusUnits() (int32, error) {
	return w.ctx.i32(C.ctx_WireData_Get_RadiusUnits(w.ptr))
}

func (w *IWireData) Set_RadiusUnits(value int32) error {
	C.ctx_WireData_Set_RadiusUnits(w.ptr, C.int32_t(value))
	return w.ctx.err()
}

func (w *IWireData) Get_ResistanceUnits() (enums.LineUnits, error) {
	return asEnum[enums.LineUnits](w.ctx.i32(C.ctx_WireData_Get_ResistanceUnits(w.ptr)))
}

func (w *IWireData) Set_ResistanceUnits(value enums.LineUnits) error {
	C.ctx_WireData_Set_ResistanceUnits(w.ptr, C.int32_t(value))
	return w.ctx.err()
}

func (w *IWireData) Get_Diameter() (float64, error) { return w.ctx.f64(C.ctx_WireData_Get_Diameter(w.ptr)) }

func (w *IWireData) Set_Diameter(value float64) error {
	C.ctx_WireData_Set_Diameter(w.ptr, C.double(value))
	return w.ctx.err()
}

// Equivalent conductor radius for capacitance calcs. Specify this for bundled conductors. Defaults to same value as radius.
func (w *IWireData) Get_CapRadius() (float64, error) {
	return w.ctx.f64(C.ctx_WireData_Get_CapRadius(w.ptr))
}

func (w *IWireData) Set_CapRadius(value float64) error {
	C.ctx_WireData_Set_CapRadius(w.ptr, C.double(value))
	return w.ctx.err()
}

type ICNData struct {
	Iterable
}

var cnDataIter = iterFuncs{
	allNames: func(p unsafe.Pointer, data ***C.char, cnt *C.int32_t) { C.ctx_CNData_Get_AllNames(p, data, cnt) },
	count:    func(p unsafe.Pointer) C.int32_t { return C.ctx_CNData_Get_Count(p) },
	first:    func(p unsafe.Pointer) C.int32_t { return C.ctx_CNData_Get_First(p) },
	next:     func(p unsafe.Pointer) C.int32_t { return C.ctx_CNData_Get_Next(p) },
	name:     func(p unsafe.Pointer) *C.char { return C.ctx_CNData_Get_Name(p) },
	setName:  func(p unsafe.Pointer, v *C.char) { C.ctx_CNData_Set_Name(p, v) },
	idx:      func(p unsafe.Pointer) C.int32_t { return C.ctx_CNData_Get_idx(p) },
	setIdx:   func(p unsafe.Pointer, v C.int32_t) { C.ctx_CNData_Set_idx(p, v) },
}

// Emergency ampere rating
func (cn *ICNData) Get_EmergAmps() (float64, error) {
	return cn.ctx.f64(C.ctx_CNData_Get_EmergAmps(cn.ptr))
}

func (cn *ICNData) Set_EmergAmps(value float64) error {
	C.ctx_CNData_Set_EmergAmps(cn.ptr, C.double(value))
	return cn.ctx.err()
}

// Normal Ampere rating
func (cn *ICNData) Get_NormAmps() (float64, error) { return cn.ctx.f64(C.ctx_CNData_Get_NormAmps(cn.ptr)) }

func (cn *ICNData) Set_NormAmps(value float64) error {
	C.ctx_CNData_Set_NormAmps(cn.ptr, C.double(value))
	return cn.ctx.err()
}

func (cn *ICNData) Get_Rdc() (float64, error) { return cn.ctx.f64(C.ctx_CNData_Get_Rdc(cn.ptr)) }

func (cn *ICNData) Set_Rdc(value float64) error {
	C.ctx_CNData_Set_Rdc(cn.ptr, C.double(value))
	return cn.ctx.err()
}

func (cn *ICNData) Get_Rac() (float64, error) { return cn.ctx.f64(C.ctx_CNData_Get_Rac(cn.ptr)) }

func (cn *ICNData) Set_Rac(value float64) error {
	C.ctx_CNData_Set_Rac(cn.ptr, C.double(value))
	return cn.ctx.err()
}

func (cn *ICNData) Get_GMRac() (float64, error) { return cn.ctx.f64(C.ctx_CNData_Get_GMRac(cn.ptr)) }

func (cn *ICNData) Set_GMRac(value float64) error {
	C.ctx_CNData_Set_GMRac(cn.ptr, C.double(value))
	return cn.ctx.err()
}

func (cn *ICNData) Get_GMRUnits() (enums.LineUnits, error) {
	return asEnum[enums.LineUnits](cn.ctx.i32(C.ctx_CNData_Get_GMRUnits(cn.ptr)))
}

func (cn *ICNData) Set_GMRUnits(value enums.LineUnits) error {
	C.ctx_CNData_Set_GMRUnits(cn.ptr, C.int32_t(value))
	return cn.ctx.err()
}

func (cn *ICNData) Get_Radius() (float64, error) { return cn.ctx.f64(C.ctx_CNData_Get_Radius(cn.ptr)) }

func (cn *ICNData) Set_Radius(value float64) error {
	C.ctx_CNData_Set_Radius(cn.ptr, C.double(value))
	return cn.ctx.err()
}

func (cn *ICNData) Get_RadiusUnits() (enums.LineUnits, error) {
	return asEnum[enums.LineUnits](cn.ctx.i32(C.ctx_CNData_Get_RadiusUnits(cn.ptr)))
}

func (cn *ICNData) Set_RadiusUnits(value enums.LineUnits) error {
	C.ctx_CNData_Set_RadiusUnits(cn.ptr, C.int32_t(value))
	return cn.ctx.err()
}

func (cn *ICNData) Get_ResistanceUnits() (enums.LineUnits, error) {
	return asEnum[enums.LineUnits](cn.ctx.i32(C.ctx_CNData_Get_ResistanceUnits(cn.ptr)))
}

func (cn *ICNData) Set_ResistanceUnits(value enums.LineUnits) error {
	C.ctx_CNData_Set_ResistanceUnits(cn.ptr, C.int32_t(value))
	return cn.ctx.err()
}

func (cn *ICNData) Get_Diameter() (float64, error) { return cn.ctx.f64(C.ctx_CNData_Get_Diameter(cn.ptr)) }

func (cn *ICNData) Set_Diameter(value float64) error {
	C.ctx_CNData_Set_Diameter(cn.ptr, C.double(value))
	return cn.ctx.err()
}

func (cn *ICNData) Get_EpsR() (float64, error) { return cn.ctx.f64(C.ctx_CNData_Get_EpsR(cn.ptr)) }

func (cn *ICNData) Set_EpsR(value float64) error {
	C.ctx_CNData_Set_EpsR(cn.ptr, C.double(value))
	return cn.ctx.err()
}

func (cn *ICNData) Get_InsLayer() (float64, error) { return cn.ctx.f64(C.ctx_CNData_Get_InsLayer(cn.ptr)) }

func (cn *ICNData) Set_InsLayer(value float64) error {
	C.ctx_CNData_Set_InsLayer(cn.ptr, C.double(value))
	return cn.ctx.err()
}

func (cn *ICNData) Get_DiaIns() (float64, error) { return cn.ctx.f64(C.ctx_CNData_Get_DiaIns(cn.ptr)) }

func (cn *ICNData) Set_DiaIns(value float64) error {
	C.ctx_CNData_Set_DiaIns(cn.ptr, C.double(value))
	return cn.ctx.err()
}

func (cn *ICNData) Get_DiaCable() (float64, error) { return cn.ctx.f64(C.ctx_CNData_Get_DiaCable(cn.ptr)) }

func (cn *ICNData) Set_DiaCable(value float64) error {
	C.ctx_CNData_Set_DiaCable(cn.ptr, C.double(value))
	return cn.ctx.err()
}

func (cn *ICNData) Get_k() (int32, error) { return cn.ctx.i32(C.ctx_CNData_Get_k(cn.ptr)) }

func (cn *ICNData) Set_k(value int32) error {
	C.ctx_CNData_Set_k(cn.ptr, C.int32_t(value))
	return cn.ctx.err()
}

func (cn *ICNData) Get_DiaStrand() (float64, error) {
	return cn.ctx.f64(C.ctx_CNData_Get_DiaStrand(cn.ptr))
}

func (cn *ICNData) Set_DiaStrand(value float64) error {
	C.ctx_CNData_Set_DiaStrand(cn.ptr, C.double(value))
	return cn.ctx.err()
}

func (cn *ICNData) Get_GmrStrand() (float64, error) {
	return cn.ctx.f64(C.ctx_CNData_Get_GmrStrand(cn.ptr))
}

func (cn *ICNData) Set_GmrStrand(value float64) error {
	C.ctx_CNData_Set_GmrStrand(cn.ptr, C.double(value))
	return cn.ctx.err()
}

func (cn *ICNData) Get_RStrand() (float64, error) { return cn.ctx.f64(C.ctx_CNData_Get_RStrand(cn.ptr)) }

func (cn *ICNData) Set_RStrand(value float64) error {
	C.ctx_CNData_Set_RStrand(cn.ptr, C.double(value))
	return cn.ctx.err()
}

type ITSData struct {
	Iterable
}

var tsDataIter = iterFuncs{
	allNames: func(p unsafe.Pointer, data ***C.char, cnt *C.int32_t) { C.ctx_TSData_Get_AllNames(p, data, cnt) },
	count:    func(p unsafe.Pointer) C.int32_t { return C.ctx_TSData_Get_Count(p) },
	first:    func(p unsafe.Pointer) C.int32_t { return C.ctx_TSData_Get_First(p) },
	next:     func(p unsafe.Pointer) C.int32_t { return C.ctx_TSData_Get_Next(p) },
	name:     func(p unsafe.Pointer) *C.char { return C.ctx_TSData_Get_Name(p) },
	setName:  func(p unsafe.Pointer, v *C.char) { C.ctx_TSData_Set_Name(p, v) },
	idx:      func(p unsafe.Pointer) C.int32_t { return C.ctx_TSData_Get_idx(p) },
	setIdx:   func(p unsafe.Pointer, v C.int32_t) { C.ctx_TSData_Set_idx(p, v) },
}

// Emergency ampere rating
func (ts *ITSData) Get_EmergAmps() (float64, error) {
	return ts.ctx.f64(C.ctx_TSData_Get_EmergAmps(ts.ptr))
}

func (ts *ITSData) Set_EmergAmps(value float64) error {
	C.ctx_TSData_Set_EmergAmps(ts.ptr, C.double(value))
	return ts.ctx.err()
}

// Normal Ampere rating
func (ts *ITSData) Get_NormAmps() (float64, error) { return ts.ctx.f64(C.ctx_TSData_Get_NormAmps(ts.ptr)) }

func (ts *ITSData) Set_NormAmps(value float64) error {
	C.ctx_TSData_Set_NormAmps(ts.ptr, C.double(value))
	return ts.ctx.err()
}

func (ts *ITSData) Get_Rdc() (float64, error) { return ts.ctx.f64(C.ctx_TSData_Get_Rdc(ts.ptr)) }

func (ts *ITSData) Set_Rdc(value float64) error {
	C.ctx_TSData_Set_Rdc(ts.ptr, C.double(value))
	return ts.ctx.err()
}

func (ts *ITSData) Get_Rac() (float64, error) { return ts.ctx.f64(C.ctx_TSData_Get_Rac(ts.ptr)) }

func (ts *ITSData) Set_Rac(value float64) error {
	C.ctx_TSData_Set_Rac(ts.ptr, C.double(value))
	return ts.ctx.err()
}

func (ts *ITSData) Get_GMRac() (float64, error) { return ts.ctx.f64(C.ctx_TSData_Get_GMRac(ts.ptr)) }

func (ts *ITSData) Set_GMRac(value float64) error {
	C.ctx_TSData_Set_GMRac(ts.ptr, C.double(value))
	return ts.ctx.err()
}

func (ts *ITSData) Get_GMRUnits() (int32, error) { return ts.ctx.i32(C.ctx_TSData_Get_GMRUnits(ts.ptr)) }

func (ts *ITSData) Set_GMRUnits(value int32) error {
	C.ctx_TSData_Set_GMRUnits(ts.ptr, C.int32_t(value))
	return ts.ctx.err()
}

func (ts *ITSData) Get_Radius() (float64, error) { return ts.ctx.f64(C.ctx_TSData_Get_Radius(ts.ptr)) }

func (ts *ITSData) Set_Radius(value float64) error {
	C.ctx_TSData_Set_Radius(ts.ptr, C.double(value))
	return ts.ctx.err()
}

func (ts *ITSData) Get_RadiusUnits() (int32, error) {
	return ts.ctx.i32(C.ctx_TSData_Get_RadiusUnits(ts.ptr))
}

func (ts *ITSData) Set_RadiusUnits(value int32) error {
	C.ctx_TSData_Set_RadiusUnits(ts.ptr, C.int32_t(value))
	return ts.ctx.err()
}

func (ts *ITSData) Get_ResistanceUnits() (int32, error) {
	return ts.ctx.i32(C.ctx_TSData_Get_ResistanceUnits(ts.ptr))
}

func (ts *ITSData) Set_ResistanceUnits(value int32) error {
	C.ctx_TSData_Set_ResistanceUnits(ts.ptr, C.int32_t(value))
	return ts.ctx.err()
}

func (ts *ITSData) Get_Diameter() (float64, error) { return ts.ctx.f64(C.ctx_TSData_Get_Diameter(ts.ptr)) }

func (ts *ITSData) Set_Diameter(value float64) error {
	C.ctx_TSData_Set_Diameter(ts.ptr, C.double(value))
	return ts.ctx.err()
}

func (ts *ITSData) Get_EpsR() (float64, error) { return ts.ctx.f64(C.ctx_TSData_Get_EpsR(ts.ptr)) }

func (ts *ITSData) Set_EpsR(value float64) error {
	C.ctx_TSData_Set_EpsR(ts.ptr, C.double(value))
	return ts.ctx.err()
}

func (ts *ITSData) Get_InsLayer() (float64, error) { return ts.ctx.f64(C.ctx_TSData_Get_InsLayer(ts.ptr)) }

func (ts *ITSData) Set_InsLayer(value float64) error {
	C.ctx_TSData_Set_InsLayer(ts.ptr, C.double(value))
	return ts.ctx.err()
}

func (ts *ITSData) Get_DiaIns() (float64, error) { return ts.ctx.f64(C.ctx_TSData_Get_DiaIns(ts.ptr)) }

func (ts *ITSData) Set_DiaIns(value float64) error {
	C.ctx_TSData_Set_DiaIns(ts.ptr, C.double(value))
	return ts.ctx.err()
}

func (ts *ITSData) Get_DiaCable() (float64, error) { return ts.ctx.f64(C.ctx_TSData_Get_DiaCable(ts.ptr)) }

func (ts *ITSData) Set_DiaCable(value float64) error {
	C.ctx_TSData_Set_DiaCable(ts.ptr, C.double(value))
	return ts.ctx.err()
}

func (ts *ITSData) Get_DiaShield() (float64, error) {
	return ts.ctx.f64(C.ctx_TSData_Get_DiaShield(ts.ptr))
}

func (ts *ITSData) Set_DiaShield(value float64) error {
	C.ctx_TSData_Set_DiaShield(ts.ptr, C.double(value))
	return ts.ctx.err()
}

func (ts *ITSData) Get_TapeLayer() (float64, error) {
	return ts.ctx.f64(C.ctx_TSData_Get_TapeLayer(ts.ptr))
}

func (ts *ITSData) Set_TapeLayer(value float64) error {
	C.ctx_TSData_Set_TapeLayer(ts.ptr, C.double(value))
	return ts.ctx.err()
}

func (ts *ITSData) Get_TapeLap() (float64, error) { return ts.ctx.f64(C.ctx_TSData_Get_TapeLap(ts.ptr)) }

func (ts *ITSData) Set_TapeLap(value float64) error {
	C.ctx_TSData_Set_TapeLap(ts.ptr, C.double(value))
	return ts.ctx.err()
}
