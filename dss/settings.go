package dss

/*
#include <stdlib.h>
#include "dss_capi_ctx.h"
*/
import "C"

type ISettings struct {
	ICommonData
}

// {True | False*} Designates whether to allow duplicate names of objects
func (s *ISettings) Get_AllowDuplicates() (bool, error) {
	return s.ctx.flag(C.ctx_Settings_Get_AllowDuplicates(s.ptr))
}

func (s *ISettings) Set_AllowDuplicates(value bool) error {
	C.ctx_Settings_Set_AllowDuplicates(s.ptr, cbool(value))
	return s.ctx.err()
}

// List of Buses or (File=xxxx) syntax for the AutoAdd solution mode.
func (s *ISettings) Get_AutoBusList() (string, error) {
	return s.ctx.str(C.ctx_Settings_Get_AutoBusList(s.ptr))
}

func (s *ISettings) Set_AutoBusList(value string) error {
	return s.ctx.withString(value, func(cs *C.char) { C.ctx_Settings_Set_AutoBusList(s.ptr, cs) })
}

// {dssMultiphase (0) * | dssPositiveSeq (1) } Indicate if the circuit model is positive sequence.
func (s *ISettings) Get_CktModel() (int32, error) { return s.ctx.i32(C.ctx_Settings_Get_CktModel(s.ptr)) }

func (s *ISettings) Set_CktModel(value int32) error {
	C.ctx_Settings_Set_CktModel(s.ptr, C.int32_t(value))
	return s.ctx.err()
}

// {True | False*} Denotes whether to trace the control actions to a file.
func (s *ISettings) Get_ControlTrace() (bool, error) {
	return s.ctx.flag(C.ctx_Settings_Get_ControlTrace(s.ptr))
}

func (s *ISettings) Set_ControlTrace(value bool) error {
	C.ctx_Settings_Set_ControlTrace(s.ptr, cbool(value))
	return s.ctx.err()
}

// Per Unit maximum voltage for Emergency conditions.
func (s *ISettings) Get_EmergVmaxpu() (float64, error) {
	return s.ctx.f64(C.ctx_Settings_Get_EmergVmaxpu(s.ptr))
}

func (s *ISettings) Set_EmergVmaxpu(value float64) error {
	C.ctx_Settings_Set_EmergVmaxpu(s.ptr, C.double(value))
	return s.ctx.err()
}

// Per Unit minimum voltage for Emergency conditions.
func (s *ISettings) Get_EmergVminpu() (float64, error) {
	return s.ctx.f64(C.ctx_Settings_Get_EmergVminpu(s.ptr))
}

func (s *ISettings) Set_EmergVminpu(value float64) error {
	C.ctx_Settings_Set_EmergVminpu(s.ptr, C.double(value))
	return s.ctx.err()
}

// Integer array defining which energy meter registers to use for computing losses
func (s *ISettings) Get_LossRegs() ([]int32, error) {
	C.ctx_Settings_Get_LossRegs_GR(s.ptr)
	return s.ctx.int32s()
}

func (s *ISettings) Set_LossRegs(value []int32) error {
	ptr, cnt := cint32s(value)
	C.ctx_Settings_Set_LossRegs(s.ptr, ptr, cnt)
	return s.ctx.err()
}

// Weighting factor applied to Loss register values.
func (s *ISettings) Get_LossWeight() (float64, error) {
	return s.ctx.f64(C.ctx_Settings_Get_LossWeight(s.ptr))
}

func (s *ISettings) Set_LossWeight(value float64) error {
	C.ctx_Settings_Set_LossWeight(s.ptr, C.double(value))
	return s.ctx.err()
}

// Per Unit maximum voltage for Normal conditions.
func (s *ISettings) Get_NormVmaxpu() (float64, error) {
	return s.ctx.f64(C.ctx_Settings_Get_NormVmaxpu(s.ptr))
}

func (s *ISettings) Set_NormVmaxpu(value float64) error {
	C.ctx_Settings_Set_NormVmaxpu(s.ptr, C.double(value))
	return s.ctx.err()
}

// Per Unit minimum voltage for Normal conditions.
func (s *ISettings) Get_NormVminpu() (float64, error) {
	return s.ctx.f64(C.ctx_Settings_Get_NormVminpu(s.ptr))
}

func (s *ISettings) Set_NormVminpu(value float64) error {
	C.ctx_Settings_Set_NormVminpu(s.ptr, C.double(value))
	return s.ctx.err()
}

// Name of LoadShape object that serves as the source of price signal data for yearly simulations, etc.
func (s *ISettings) Get_PriceCurve() (string, error) {
	return s.ctx.str(C.ctx_Settings_Get_PriceCurve(s.ptr))
}

func (s *ISettings) Set_PriceCurve(value string) error {
	return s.ctx.withString(value, func(cs *C.char) { C.ctx_Settings_Set_PriceCurve(s.ptr, cs) })
}

// Price Signal for the Circuit
func (s *ISettings) Get_PriceSignal() (float64, error) {
	return s.ctx.f64(C.ctx_Settings_Get_PriceSignal(s.ptr))
}

func (s *ISettings) Set_PriceSignal(value float64) error {
	C.ctx_Settings_Set_PriceSignal(s.ptr, C.double(value))
	return s.ctx.err()
}

// Gets value of trapezoidal integration flag in energy meters. Defaults to `False`.
func (s *ISettings) Get_Trapezoidal() (bool, error) {
	return s.ctx.flag(C.ctx_Settings_Get_Trapezoidal(s.ptr))
}

func (s *ISettings) Set_Trapezoidal(value bool) error {
	C.ctx_Settings_Set_Trapezoidal(s.ptr, cbool(value))
	return s.ctx.err()
}

// Array of Integers defining energy meter registers to use for computing UE
func (s *ISettings) Get_UEregs() ([]int32, error) {
	C.ctx_Settings_Get_UEregs_GR(s.ptr)
	return s.ctx.int32s()
}

func (s *ISettings) Set_UEregs(value []int32) error {
	ptr, cnt := cint32s(value)
	C.ctx_Settings_Set_UEregs(s.ptr, ptr, cnt)
	return s.ctx.err()
}

// Weighting factor applied to UE register values.
func (s *ISettings) Get_UEweight() (float64, error) { return s.ctx.f64(C.ctx_Settings_Get_UEweight(s.ptr)) }

func (s *ISettings) Set_UEweight(value float64) error {
	C.ctx_Settings_Set_UEweight(s.ptr, C.double(value))
	return s.ctx.err()
}

// Array of doubles defining the legal voltage bases in kV L-L
func (s *ISettings) Get_VoltageBases() ([]float64, error) {
	C.ctx_Settings_Get_VoltageBases_GR(s.ptr)
	return s.ctx.float64s()
}

func (s *ISettings) Set_VoltageBases(value []float64) error {
	ptr, cnt := cfloat64s(value)
	C.ctx_Settings_Set_VoltageBases(s.ptr, ptr, cnt)
	return s.ctx.err()
}

// {True | False*}  Locks Zones on energy meters to prevent rebuilding if a circuit change occurs.
func (s *ISettings) Get_ZoneLock() (bool, error) { return s.ctx.flag(C.ctx_Settings_Get_ZoneLock(s.ptr)) }

func (s *ISettings) Set_ZoneLock(value bool) error {
	C.ctx_Settings_Set_ZoneLock(s.ptr, cbool(value))
	return s.ctx.err()
}

func (s *ISettings) Set_AllocationFactors(value float64) error {
	C.ctx_Settings_Set_AllocationFactors(s.ptr, C.double(value))
	return s.ctx.err()
}

// Controls whether the terminals are checked when updating the currents in Load component. Defaults to True.
// If the loads are guaranteed to have their terminals closed throughout the simulation, this can be set to False to save some time.
//
// (API Extension)
func (s *ISettings) Get_LoadsTerminalCheck() (bool, error) {
	return s.ctx.flag(C.ctx_Settings_Get_LoadsTerminalCheck(s.ptr))
}

func (s *ISettings) Set_LoadsTerminalCheck(value bool) error {
	C.ctx_Settings_Set_LoadsTerminalCheck(s.ptr, cbool(value))
	return s.ctx.err()
}

// Controls whether `First`/`Next` iteration includes or skips disabled circuit elements.
// The default behavior from OpenDSS is to skip those. The user can still activate the element by name or index.
//
// (API Extension)
func (s *ISettings) Get_IterateDisabled() (int32, error) {
	return s.ctx.i32(C.ctx_Settings_Get_IterateDisabled(s.ptr))
}

func (s *ISettings) Set_IterateDisabled(value int32) error {
	C.ctx_Settings_Set_IterateDisabled(s.ptr, C.int32_t(value))
	return s.ctx.err()
}

type ITopology struct {
	ICommonData
}

// Returns index of the active branch
func (t *ITopology) ActiveBranch() (int32, error) {
	return t.ctx.i32(C.ctx_Topology_Get_ActiveBranch(t.ptr))
}

// Topological depth of the active branch
func (t *ITopology) ActiveLevel() (int32, error) { return t.ctx.i32(C.ctx_Topology_Get_ActiveLevel(t.ptr)) }

// Array of all isolated branch names.
func (t *ITopology) AllIsolatedBranches() ([]string, error) {
	return t.ctx.strings(func(data ***C.char, cnt *C.int32_t) { C.ctx_Topology_Get_AllIsolatedBranches(t.ptr, data, cnt) })
}

// Array of all isolated load names.
func (t *ITopology) AllIsolatedLoads() ([]string, error) {
	return t.ctx.strings(func(data ***C.char, cnt *C.int32_t) { C.ctx_Topology_Get_AllIsolatedLoads(t.ptr, data, cnt) })
}

// Array of all looped element names, by pairs.
func (t *ITopology) AllLoopedPairs() ([]string, error) {
	return t.ctx.strings(func(data ***C.char, cnt *C.int32_t) { C.ctx_Topology_Get_AllLoopedPairs(t.ptr, data, cnt) })
}

// Move back toward the source, return index of new active branch, or 0 if no more.
func (t *ITopology) BackwardBranch() (int32, error) {
	return t.ctx.i32(C.ctx_Topology_Get_BackwardBranch(t.ptr))
}

// Name of the active branch.
func (t *ITopology) Get_BranchName() (string, error) {
	return t.ctx.str(C.ctx_Topology_Get_BranchName(t.ptr))
}

func (t *ITopology) Set_BranchName(value string) error {
	return t.ctx.withString(value, func(cs *C.char) { C.ctx_Topology_Set_BranchName(t.ptr, cs) })
}

// Set the active branch to one containing this bus, return index or 0 if not found
func (t *ITopology) Get_BusName() (string, error) { return t.ctx.str(C.ctx_Topology_Get_BusName(t.ptr)) }

func (t *ITopology) Set_BusName(value string) error {
	return t.ctx.withString(value, func(cs *C.char) { C.ctx_Topology_Set_BusName(t.ptr, cs) })
}

// Sets the first branch active, returns 0 if none.
func (t *ITopology) First() (int32, error) { return t.ctx.i32(C.ctx_Topology_Get_First(t.ptr)) }

// First load at the active branch, return index or 0 if none.
func (t *ITopology) FirstLoad() (int32, error) { return t.ctx.i32(C.ctx_Topology_Get_FirstLoad(t.ptr)) }

// Move forward in the tree, return index of new active branch or 0 if no more
func (t *ITopology) ForwardBranch() (int32, error) {
	return t.ctx.i32(C.ctx_Topology_Get_ForwardBranch(t.ptr))
}

// Move to looped branch, return index or 0 if none.
func (t *ITopology) LoopedBranch() (int32, error) {
	return t.ctx.i32(C.ctx_Topology_Get_LoopedBranch(t.ptr))
}

// Sets the next branch active, returns 0 if no more.
func (t *ITopology) Next() (int32, error) { return t.ctx.i32(C.ctx_Topology_Get_Next(t.ptr)) }

// Next load at the active branch, return index or 0 if no more.
func (t *ITopology) NextLoad() (int32, error) { return t.ctx.i32(C.ctx_Topology_Get_NextLoad(t.ptr)) }

// Number of isolated branches (PD elements and capacitors).
func (t *ITopology) NumIsolatedBranches() (int32, error) {
	return t.ctx.i32(C.ctx_Topology_Get_NumIsolatedBranches(t.ptr))
}

// Number of isolated loads
func (t *ITopology) NumIsolatedLoads() (int32, error) {
	return t.ctx.i32(C.ctx_Topology_Get_NumIsolatedLoads(t.ptr))
}

// Number of loops
func (t *ITopology) NumLoops() (int32, error) { return t.ctx.i32(C.ctx_Topology_Get_NumLoops(t.ptr)) }

// Move to directly parallel branch, return index or 0 if none.
func (t *ITopology) ParallelBranch() (int32, error) {
	return t.ctx.i32(C.ctx_Topology_Get_ParallelBranch(t.ptr))
}
