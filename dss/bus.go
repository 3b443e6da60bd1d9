package dss

/*
#include <stdlib.h>
#include "dss_capi_ctx.h"
*/
import "C"

type IBus struct {
	ICommonData
}

// Returns an array with the names of all PCE connected to the active bus
func (b *IBus) AllPCEatBus() ([]string, error) {
	return b.ctx.strings(func(data ***C.char, cnt *C.int32_t) { C.ctx_Bus_Get_AllPCEatBus(b.ptr, data, cnt) })
}

// Returns an array with the names of all PDE connected to the active bus
func (b *IBus) AllPDEatBus() ([]string, error) {
	return b.ctx.strings(func(data ***C.char, cnt *C.int32_t) { C.ctx_Bus_Get_AllPDEatBus(b.ptr, data, cnt) })
}

func (b *IBus) GetUniqueNodeNumber(startNumber int32) (int32, error) {
	return b.ctx.i32(C.ctx_Bus_GetUniqueNodeNumber(b.ptr, C.int32_t(startNumber)))
}

// Refreshes the Zsc matrix for the active bus.
func (b *IBus) ZscRefresh() (bool, error) { return b.ctx.flag(C.ctx_Bus_ZscRefresh(b.ptr)) }

// Indicates whether a coordinate has been defined for this bus
func (b *IBus) Coorddefined() (bool, error) { return b.ctx.flag(C.ctx_Bus_Get_Coorddefined(b.ptr)) }

// Complex Double array of Sequence Voltages (0, 1, 2) at this Bus.
func (b *IBus) CplxSeqVoltages() ([]complex128, error) {
	C.ctx_Bus_Get_CplxSeqVoltages_GR(b.ptr)
	return b.ctx.complexes()
}

// Accumulated customer outage durations
func (b *IBus) Cust_Duration() (float64, error) { return b.ctx.f64(C.ctx_Bus_Get_Cust_Duration(b.ptr)) }

// Annual number of customer-interruptions from this bus
func (b *IBus) Cust_Interrupts() (float64, error) { return b.ctx.f64(C.ctx_Bus_Get_Cust_Interrupts(b.ptr)) }

// Distance from energymeter (if non-zero)
func (b *IBus) Distance() (float64, error) { return b.ctx.f64(C.ctx_Bus_Get_Distance(b.ptr)) }

// Average interruption duration, hr.
func (b *IBus) Int_Duration() (float64, error) { return b.ctx.f64(C.ctx_Bus_Get_Int_Duration(b.ptr)) }

// Short circuit currents at bus; Complex Array.
func (b *IBus) Isc() ([]complex128, error) {
	C.ctx_Bus_Get_Isc_GR(b.ptr)
	return b.ctx.complexes()
}

// Accumulated failure rate downstream from this bus; faults per year
func (b *IBus) Lambda() (float64, error) { return b.ctx.f64(C.ctx_Bus_Get_Lambda(b.ptr)) }

// Total numbers of customers served downline from this bus
func (b *IBus) N_Customers() (int32, error) { return b.ctx.i32(C.ctx_Bus_Get_N_Customers(b.ptr)) }

// Number of interruptions this bus per year
func (b *IBus) N_interrupts() (float64, error) { return b.ctx.f64(C.ctx_Bus_Get_N_interrupts(b.ptr)) }

// Name of Bus
func (b *IBus) Name() (string, error) { return b.ctx.str(C.ctx_Bus_Get_Name(b.ptr)) }

// Integer Array of Node Numbers defined at the bus in same order as the voltages.
func (b *IBus) Nodes() ([]int32, error) {
	C.ctx_Bus_Get_Nodes_GR(b.ptr)
	return b.ctx.int32s()
}

// Number of Nodes this bus.
func (b *IBus) NumNodes() (int32, error) { return b.ctx.i32(C.ctx_Bus_Get_NumNodes(b.ptr)) }

// Integer ID of the feeder section in which this bus is located.
func (b *IBus) SectionID() (int32, error) { return b.ctx.i32(C.ctx_Bus_Get_SectionID(b.ptr)) }

// Double Array of sequence voltages at this bus. Magnitudes only.
func (b *IBus) SeqVoltages() ([]float64, error) {
	C.ctx_Bus_Get_SeqVoltages_GR(b.ptr)
	return b.ctx.float64s()
}

// Total length of line downline from this bus, in miles. For recloser siting algorithm.
func (b *IBus) TotalMiles() (float64, error) { return b.ctx.f64(C.ctx_Bus_Get_TotalMiles(b.ptr)) }

// For 2- and 3-phase buses, returns array of complex numbers represetin L-L voltages in volts. Returns -1.0 for 1-phase bus. If more than 3 phases, returns only first 3.
func (b *IBus) VLL() ([]complex128, error) {
	C.ctx_Bus_Get_VLL_GR(b.ptr)
	return b.ctx.complexes()
}

// Array of doubles containing voltages in Magnitude (VLN), angle (degrees)
func (b *IBus) VMagAngle() ([]float64, error) {
	C.ctx_Bus_Get_VMagAngle_GR(b.ptr)
	return b.ctx.float64s()
}

// Open circuit voltage; Complex array.
func (b *IBus) Voc() ([]complex128, error) {
	C.ctx_Bus_Get_Voc_GR(b.ptr)
	return b.ctx.complexes()
}

// Complex array of voltages at this bus.
func (b *IBus) Voltages() ([]complex128, error) {
	C.ctx_Bus_Get_Voltages_GR(b.ptr)
	return b.ctx.complexes()
}

// Complex array of Ysc matrix at bus. Column by column.
func (b *IBus) YscMatrix() ([]complex128, error) {
	C.ctx_Bus_Get_YscMatrix_GR(b.ptr)
	return b.ctx.complexes()
}

// Complex Zero-Sequence short circuit impedance at bus.
func (b *IBus) Zsc0() (complex128, error) {
	C.ctx_Bus_Get_Zsc0_GR(b.ptr)
	return b.ctx.complex()
}

// Complex Positive-Sequence short circuit impedance at bus.
func (b *IBus) Zsc1() (complex128, error) {
	C.ctx_Bus_Get_Zsc1_GR(b.ptr)
	return b.ctx.complex()
}

// Complex array of Zsc matrix at bus. Column by column.
func (b *IBus) ZscMatrix() ([]complex128, error) {
	C.ctx_Bus_Get_ZscMatrix_GR(b.ptr)
	return b.ctx.complexes()
}

// Base voltage at bus in kV
func (b *IBus) Get_kVBase() (float64, error) { return b.ctx.f64(C.ctx_Bus_Get_kVBase(b.ptr)) }

// Returns Complex array of pu L-L voltages for 2- and 3-phase buses. Returns -1.0 for 1-phase bus. If more than 3 phases, returns only 3 phases.
func (b *IBus) PUVLL() ([]complex128, error) {
	C.ctx_Bus_Get_puVLL_GR(b.ptr)
	return b.ctx.complexes()
}

// Array of doubles containing voltage magnitude, angle (degrees) pairs in per unit
func (b *IBus) PUVMagAngle() ([]float64, error) {
	C.ctx_Bus_Get_puVmagAngle_GR(b.ptr)
	return b.ctx.float64s()
}

// Complex Array of pu voltages at the bus.
func (b *IBus) PUVoltages() ([]complex128, error) {
	C.ctx_Bus_Get_puVoltages_GR(b.ptr)
	return b.ctx.complexes()
}

// Array of doubles (complex) containing the complete 012 Zsc matrix.
// Only available after Zsc is computed, either through the "ZscRefresh" command, or running a "FaultStudy" solution.
// Only available for buses with 3 nodes.
func (b *IBus) ZSC012Matrix() ([]complex128, error) {
	C.ctx_Bus_Get_ZSC012Matrix_GR(b.ptr)
	return b.ctx.complexes()
}

// X Coordinate for bus (double)
func (b *IBus) Get_x() (float64, error) { return b.ctx.f64(C.ctx_Bus_Get_x(b.ptr)) }

func (b *IBus) Set_x(value float64) error {
	C.ctx_Bus_Set_x(b.ptr, C.double(value))
	return b.ctx.err()
}

// Y coordinate for bus(double)
func (b *IBus) Get_y() (float64, error) { return b.ctx.f64(C.ctx_Bus_Get_y(b.ptr)) }

func (b *IBus) Set_y(value float64) error {
	C.ctx_Bus_Set_y(b.ptr, C.double(value))
	return b.ctx.err()
}

// List of strings: Full Names of LOAD elements connected to the active bus.
func (b *IBus) LoadList() ([]string, error) {
	return b.ctx.strings(func(data ***C.char, cnt *C.int32_t) { C.ctx_Bus_Get_LoadList(b.ptr, data, cnt) })
}

// List of strings: Full Names of LINE elements connected to the active bus.
func (b *IBus) LineList() ([]string, error) {
	return b.ctx.strings(func(data ***C.char, cnt *C.int32_t) { C.ctx_Bus_Get_LineList(b.ptr, data, cnt) })
}
