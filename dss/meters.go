package dss

/*
#include <stdlib.h>
#include "dss_capi_ctx.h"
*/
import "C"

import (
	"unsafe"
)

type IMonitors struct {
	Iterable
}

var monitorsIter = iterFuncs{
	allNames: func(p unsafe.Pointer, data ***C.char, cnt *C.int32_t) { C.ctx_Monitors_Get_AllNames(p, data, cnt) },
	count:    func(p unsafe.Pointer) C.int32_t { return C.ctx_Monitors_Get_Count(p) },
	first:    func(p unsafe.Pointer) C.int32_t { return C.ctx_Monitors_Get_First(p) },
	next:     func(p unsafe.Pointer) C.int32_t { return C.ctx_Monitors_Get_Next(p) },
	name:     func(p unsafe.Pointer) *C.char { return C.ctx_Monitors_Get_Name(p) },
	setName:  func(p unsafe.Pointer, v *C.char) { C.ctx_Monitors_Set_Name(p, v) },
	idx:      func(p unsafe.Pointer) C.int32_t { return C.ctx_Monitors_Get_idx(p) },
	setIdx:   func(p unsafe.Pointer, v C.int32_t) { C.ctx_Monitors_Set_idx(p, v) },
}

// Array of float64 for the specified channel (usage: MyArray = DSSMonitor.Channel(i)).
// A Save or SaveAll should be executed first. Done automatically by most standard solution modes.
// Channels start at index 1.
func (m *IMonitors) Channel(index int32) ([]float64, error) {
	C.ctx_Monitors_Get_Channel_GR(m.ptr, C.int32_t(index))
	return m.ctx.float64s()
}

func (m *IMonitors) Process() error {
	C.ctx_Monitors_Process(m.ptr)
	return m.ctx.err()
}

func (m *IMonitors) ProcessAll() error {
	C.ctx_Monitors_ProcessAll(m.ptr)
	return m.ctx.err()
}

func (m *IMonitors) Reset() error {
	C.ctx_Monitors_Reset(m.ptr)
	return m.ctx.err()
}

func (m *IMonitors) ResetAll() error {
	C.ctx_Monitors_ResetAll(m.ptr)
	return m.ctx.err()
}

func (m *IMonitors) Sample() error {
	C.ctx_Monitors_Sample(m.ptr)
	return m.ctx.err()
}

func (m *IMonitors) SampleAll() error {
	C.ctx_Monitors_SampleAll(m.ptr)
	return m.ctx.err()
}

func (m *IMonitors) Save() error {
	C.ctx_Monitors_Save(m.ptr)
	return m.ctx.err()
}

func (m *IMonitors) SaveAll() error {
	C.ctx_Monitors_SaveAll(m.ptr)
	return m.ctx.err()
}

func (m *IMonitors) Show() error {
	C.ctx_Monitors_Show(m.ptr)
	return m.ctx.err()
}

// Byte Array containing monitor stream values. Make sure a "save" is done first (standard solution modes do this automatically)
func (m *IMonitors) ByteStream() ([]byte, error) {
	C.ctx_Monitors_Get_ByteStream_GR(m.ptr)
	return m.ctx.bytes()
}

// Full object name of element being monitored.
func (m *IMonitors) Get_Element() (string, error) { return m.ctx.str(C.ctx_Monitors_Get_Element(m.ptr)) }

func (m *IMonitors) Set_Element(value string) error {
	return m.ctx.withString(value, func(cs *C.char) { C.ctx_Monitors_Set_Element(m.ptr, cs) })
}

// Name of CSV file associated with active Monitor.
func (m *IMonitors) FileName() (string, error) { return m.ctx.str(C.ctx_Monitors_Get_FileName(m.ptr)) }

// Monitor File Version (integer)
func (m *IMonitors) FileVersion() (int32, error) { return m.ctx.i32(C.ctx_Monitors_Get_FileVersion(m.ptr)) }

// Header string;  Array of strings containing Channel names
func (m *IMonitors) Header() ([]string, error) {
	return m.ctx.strings(func(data ***C.char, cnt *C.int32_t) { C.ctx_Monitors_Get_Header(m.ptr, data, cnt) })
}

// Set Monitor mode (bitmask integer - see DSS Help)
func (m *IMonitors) Get_Mode() (int32, error) { return m.ctx.i32(C.ctx_Monitors_Get_Mode(m.ptr)) }

func (m *IMonitors) Set_Mode(value int32) error {
	C.ctx_Monitors_Set_Mode(m.ptr, C.int32_t(value))
	return m.ctx.err()
}

// Number of Channels in the active Monitor
func (m *IMonitors) NumChannels() (int32, error) { return m.ctx.i32(C.ctx_Monitors_Get_NumChannels(m.ptr)) }

// Size of each record in ByteStream (Integer). Same as NumChannels.
func (m *IMonitors) RecordSize() (int32, error) { return m.ctx.i32(C.ctx_Monitors_Get_RecordSize(m.ptr)) }

// Number of Samples in Monitor at Present
func (m *IMonitors) SampleCount() (int32, error) { return m.ctx.i32(C.ctx_Monitors_Get_SampleCount(m.ptr)) }

// Terminal number of element being monitored.
func (m *IMonitors) Get_Terminal() (int32, error) { return m.ctx.i32(C.ctx_Monitors_Get_Terminal(m.ptr)) }

func (m *IMonitors) Set_Terminal(value int32) error {
	C.ctx_Monitors_Set_Terminal(m.ptr, C.int32_t(value))
	return m.ctx.err()
}

// Array of doubles containing frequency values for harmonics mode solutions; Empty for time mode solutions (use dblHour)
func (m *IMonitors) DblFreq() ([]float64, error) {
	C.ctx_Monitors_Get_dblFreq_GR(m.ptr)
	return m.ctx.float64s()
}

// Array of doubles containing time value in hours for time-sampled monitor values; Empty if frequency-sampled values for harmonics solution (see dblFreq)
func (m *IMonitors) DblHour() ([]float64, error) {
	C.ctx_Monitors_Get_dblHour_GR(m.ptr)
	return m.ctx.float64s()
}

type IMeters struct {
	Iterable
}

var metersIter = iterFuncs{
	allNames: func(p unsafe.Pointer, data ***C.char, cnt *C.int32_t) { C.ctx_Meters_Get_AllNames(p, data, cnt) },
	count:    func(p unsafe.Pointer) C.int32_t { return C.ctx_Meters_Get_Count(p) },
	first:    func(p unsafe.Pointer) C.int32_t { return C.ctx_Meters_Get_First(p) },
	next:     func(p unsafe.Pointer) C.int32_t { return C.ctx_Meters_Get_Next(p) },
	name:     func(p unsafe.Pointer) *C.char { return C.ctx_Meters_Get_Name(p) },
	setName:  func(p unsafe.Pointer, v *C.char) { C.ctx_Meters_Set_Name(p, v) },
	idx:      func(p unsafe.Pointer) C.int32_t { return C.ctx_Meters_Get_idx(p) },
	setIdx:   func(p unsafe.Pointer, v C.int32_t) { C.ctx_Meters_Set_idx(p, v) },
}

// Returns the list of all PCE within the area covered by the energy meter
func (m *IMeters) ZonePCE() ([]string, error) {
	return m.ctx.strings(func(data ***C.char, cnt *C.int32_t) { C.ctx_Meters_Get_ZonePCE(m.ptr, data, cnt) })
}

// Close All Demand Interval Files. Users are required to close the DI files at the end of a run.
func (m *IMeters) CloseAllDIFiles() error {
	C.ctx_Meters_CloseAllDIFiles(m.ptr)
	return m.ctx.err()
}

// Calculate reliability indices
func (m *IMeters) DoReliabilityCalc(assumeRestoration bool) error {
	C.ctx_Meters_DoReliabilityCalc(m.ptr, cbool(assumeRestoration))
	return m.ctx.err()
}

// Open Demand Interval (DI) files
func (m *IMeters) OpenAllDIFiles() error {
	C.ctx_Meters_OpenAllDIFiles(m.ptr)
	return m.ctx.err()
}

// Resets registers of active meter.
func (m *IMeters) Reset() error {
	C.ctx_Meters_Reset(m.ptr)
	return m.ctx.err()
}

// Resets registers of all meter objects.
func (m *IMeters) ResetAll() error {
	C.ctx_Meters_ResetAll(m.ptr)
	return m.ctx.err()
}

// Forces active Meter to take a sample.
func (m *IMeters) Sample() error {
	C.ctx_Meters_Sample(m.ptr)
	return m.ctx.err()
}

// Causes all EnergyMeter objects to take a sample at the present time.
func (m *IMeters) SampleAll() error {
	C.ctx_Meters_SampleAll(m.ptr)
	return m.ctx.err()
}

// Saves meter register values.
func (m *IMeters) Save() error {
	C.ctx_Meters_Save(m.ptr)
	return m.ctx.err()
}

// Save All EnergyMeter objects
func (m *IMeters) SaveAll() error {
	C.ctx_Meters_SaveAll(m.ptr)
	return m.ctx.err()
}

func (m *IMeters) SetActiveSection(sectIdx int32) error {
	C.ctx_Meters_SetActiveSection(m.ptr, C.int32_t(sectIdx))
	return m.ctx.err()
}

// Wide string list of all branches in zone of the active EnergyMeter object.
func (m *IMeters) AllBranchesInZone() ([]string, error) {
	return m.ctx.strings(func(data ***C.char, cnt *C.int32_t) { C.ctx_Meters_Get_AllBranchesInZone(m.ptr, data, cnt) })
}

// Array of names of all zone end elements.
func (m *IMeters) AllEndElements() ([]string, error) {
	return m.ctx.strings(func(data ***C.char, cnt *C.int32_t) { C.ctx_Meters_Get_AllEndElements(m.ptr, data, cnt) })
}

// Array of doubles: set the phase allocation factors for the active meter.
func (m *IMeters) Get_AllocFactors() ([]float64, error) {
	C.ctx_Meters_Get_AllocFactors_GR(m.ptr)
	return m.ctx.float64s()
}

func (m *IMeters) Set_AllocFactors(value []float64) error {
	ptr, cnt := cfloat64s(value)
	C.ctx_Meters_Set_AllocFactors(m.ptr, ptr, cnt)
	return m.ctx.err()
}

// Average Repair time in this section of the meter zone
func (m *IMeters) AvgRepairTime() (float64, error) {
	return m.ctx.f64(C.ctx_Meters_Get_AvgRepairTime(m.ptr))
}

// Set the magnitude of the real part of the Calculated Current (normally determined by solution) for the Meter to force some behavior on Load Allocation
func (m *IMeters) Get_CalcCurrent() ([]float64, error) {
	C.ctx_Meters_Get_CalcCurrent_GR(m.ptr)
	return m.ctx.float64s()
}

func (m *IMeters) Set_CalcCurrent(value []float64) error {
	ptr, cnt := cfloat64s(value)
	C.ctx_Meters_Set_CalcCurrent(m.ptr, ptr, cnt)
	return m.ctx.err()
}

// Number of branches in Active energymeter zone. (Same as sequencelist size)
func (m *IMeters) CountBranches() (int32, error) { return m.ctx.i32(C.ctx_Meters_Get_CountBranches(m.ptr)) }

// Number of zone end elements in the active meter zone.
func (m *IMeters) CountEndElements() (int32, error) {
	return m.ctx.i32(C.ctx_Meters_Get_CountEndElements(m.ptr))
}

// Total customer interruptions for this Meter zone based on reliability calcs.
func (m *IMeters) CustInterrupts() (float64, error) {
	return m.ctx.f64(C.ctx_Meters_Get_CustInterrupts(m.ptr))
}

// Global Flag in the DSS to indicate if Demand Interval (DI) files have been properly opened.
func (m *IMeters) DIFilesAreOpen() (bool, error) {
	return m.ctx.flag(C.ctx_Meters_Get_DIFilesAreOpen(m.ptr))
}

// Sum of Fault Rate time Repair Hrs in this section of the meter zone
func (m *IMeters) FaultRateXRepairHrs() (float64, error) {
	return m.ctx.f64(C.ctx_Meters_Get_FaultRateXRepairHrs(m.ptr))
}

// Set Name of metered element
func (m *IMeters) Get_MeteredElement() (string, error) {
	return m.ctx.str(C.ctx_Meters_Get_MeteredElement(m.ptr))
}

func (m *IMeters) Set_MeteredElement(value string) error {
	return m.ctx.withString(value, func(cs *C.char) { C.ctx_Meters_Set_MeteredElement(m.ptr, cs) })
}

// set Number of Metered Terminal
func (m *IMeters) Get_MeteredTerminal() (int32, error) {
	return m.ctx.i32(C.ctx_Meters_Get_MeteredTerminal(m.ptr))
}

func (m *IMeters) Set_MeteredTerminal(value int32) error {
	C.ctx_Meters_Set_MeteredTerminal(m.ptr, C.int32_t(value))
	return m.ctx.err()
}

// Number of branches (lines) in this section
func (m *IMeters) NumSectionBranches() (int32, error) {
	return m.ctx.i32(C.ctx_Meters_Get_NumSectionBranches(m.ptr))
}

// Number of Customers in the active section.
func (m *IMeters) NumSectionCustomers() (int32, error) {
	return m.ctx.i32(C.ctx_Meters_Get_NumSectionCustomers(m.ptr))
}

// Number of feeder sections in this meter's zone
func (m *IMeters) NumSections() (int32, error) { return m.ctx.i32(C.ctx_Meters_Get_NumSections(m.ptr)) }

// Type of OCP device. 1=Fuse; 2=Recloser; 3=Relay
func (m *IMeters) OCPDeviceType() (int32, error) { return m.ctx.i32(C.ctx_Meters_Get_OCPDeviceType(m.ptr)) }

// Array of doubles to set values of Peak Current property
func (m *IMeters) Get_Peakcurrent() ([]float64, error) {
	C.ctx_Meters_Get_Peakcurrent_GR(m.ptr)
	return m.ctx.float64s()
}

func (m *IMeters) Set_Peakcurrent(value []float64) error {
	ptr, cnt := cfloat64s(value)
	C.ctx_Meters_Set_Peakcurrent(m.ptr, ptr, cnt)
	return m.ctx.err()
}

// Array of strings containing the names of the registers.
func (m *IMeters) RegisterNames() ([]string, error) {
	return m.ctx.strings(func(data ***C.char, cnt *C.int32_t) { C.ctx_Meters_Get_RegisterNames(m.ptr, data, cnt) })
}

// Array of all the values contained in the Meter registers for the active Meter.
func (m *IMeters) RegisterValues() ([]float64, error) {
	C.ctx_Meters_Get_RegisterValues_GR(m.ptr)
	return m.ctx.float64s()
}

// SAIDI for this meter's zone. Execute DoReliabilityCalc first.
func (m *IMeters) SAIDI() (float64, error) { return m.ctx.f64(C.ctx_Meters_Get_SAIDI(m.ptr)) }

// Returns SAIFI for this meter's Zone. Execute Reliability Calc method first.
func (m *IMeters) SAIFI() (float64, error) { return m.ctx.f64(C.ctx_Meters_Get_SAIFI(m.ptr)) }

// SAIFI based on kW rather than number of customers. Get after reliability calcs.
func (m *IMeters) SAIFIKW() (float64, error) { return m.ctx.f64(C.ctx_Meters_Get_SAIFIKW(m.ptr)) }

// SequenceIndex of the branch at the head of this section
func (m *IMeters) SectSeqIdx() (int32, error) { return m.ctx.i32(C.ctx_Meters_Get_SectSeqIdx(m.ptr)) }

// Total Customers downline from this section
func (m *IMeters) SectTotalCust() (int32, error) { return m.ctx.i32(C.ctx_Meters_Get_SectTotalCust(m.ptr)) }

// Size of Sequence List
func (m *IMeters) SeqListSize() (int32, error) { return m.ctx.i32(C.ctx_Meters_Get_SeqListSize(m.ptr)) }

// Get/set Index into Meter's SequenceList that contains branch pointers in lexical order. Earlier index guaranteed to be upline from later index. Sets PDelement active.
func (m *IMeters) Get_SequenceIndex() (int32, error) {
	return m.ctx.i32(C.ctx_Meters_Get_SequenceIndex(m.ptr))
}

func (m *IMeters) Set_SequenceIndex(value int32) error {
	C.ctx_Meters_Set_SequenceIndex(m.ptr, C.int32_t(value))
	return m.ctx.err()
}

// Sum of the branch fault rates in this section of the meter's zone
func (m *IMeters) SumBranchFltRates() (float64, error) {
	return m.ctx.f64(C.ctx_Meters_Get_SumBranchFltRates(m.ptr))
}

// Total Number of customers in this zone (downline from the EnergyMeter)
func (m *IMeters) TotalCustomers() (int32, error) {
	return m.ctx.i32(C.ctx_Meters_Get_TotalCustomers(m.ptr))
}

// Totals of all registers of all meters
func (m *IMeters) Totals() ([]float64, error) {
	C.ctx_Meters_Get_Totals_GR(m.ptr)
	return m.ctx.float64s()
}

type ISensors struct {
	Iterable
}

var sensorsIter = iterFuncs{
	allNames: func(p unsafe.Pointer, data ***C.char, cnt *C.int32_t) { C.ctx_Sensors_Get_AllNames(p, data, cnt) },
	count:    func(p unsafe.Pointer) C.int32_t { return C.ctx_Sensors_Get_Count(p) },
	first:    func(p unsafe.Pointer) C.int32_t { return C.ctx_Sensors_Get_First(p) },
	next:     func(p unsafe.Pointer) C.int32_t { return C.ctx_Sensors_Get_Next(p) },
	name:     func(p unsafe.Pointer) *C.char { return C.ctx_Sensors_Get_Name(p) },
	setName:  func(p unsafe.Pointer, v *C.char) { C.ctx_Sensors_Set_Name(p, v) },
	idx:      func(p unsafe.Pointer) C.int32_t { return C.ctx_Sensors_Get_idx(p) },
	setIdx:   func(p unsafe.Pointer, v C.int32_t) { C.ctx_Sensors_Set_idx(p, v) },
}

func (s *ISensors) Reset() error {
	C.ctx_Sensors_Reset(s.ptr)
	return s.ctx.err()
}

func (s *ISensors) ResetAll() error {
	C.ctx_Sensors_ResetAll(s.ptr)
	return s.ctx.err()
}

// Array of doubles for the line current measurements; don't use with kWS and kVARS.
func (s *ISensors) Get_Currents() ([]float64, error) {
	C.ctx_Sensors_Get_Currents_GR(s.ptr)
	return s.ctx.float64s()
}

func (s *ISensors) Set_Currents(value []float64) error {
	ptr, cnt := cfloat64s(value)
	C.ctx_Sensors_Set_Currents(s.ptr, ptr, cnt)
	return s.ctx.err()
}

// True if measured voltages are line-line. Currents are always line currents.
func (s *ISensors) Get_IsDelta() (bool, error) { return s.ctx.flag(C.ctx_Sensors_Get_IsDelta(s.ptr)) }

func (s *ISensors) Set_IsDelta(value bool) error {
	C.ctx_Sensors_Set_IsDelta(s.ptr, cbool(value))
	return s.ctx.err()
}

// Full Name of the measured element
func (s *ISensors) Get_MeteredElement() (string, error) {
	return s.ctx.str(C.ctx_Sensors_Get_MeteredElement(s.ptr))
}

func (s *ISensors) Set_MeteredElement(value string) error {
	return s.ctx.withString(value, func(cs *C.char) { C.ctx_Sensors_Set_MeteredElement(s.ptr, cs) })
}

// Number of the measured terminal in the measured element.
func (s *ISensors) Get_MeteredTerminal() (int32, error) {
	return s.ctx.i32(C.ctx_Sensors_Get_MeteredTerminal(s.ptr))
}

func (s *ISensors) Set_MeteredTerminal(value int32) error {
	C.ctx_Sensors_Set_MeteredTerminal(s.ptr, C.int32_t(value))
	return s.ctx.err()
}

// Assumed percent error in the Sensor measurement. Default is 1.
func (s *ISensors) Get_PctError() (float64, error) { return s.ctx.f64(C.ctx_Sensors_Get_PctError(s.ptr)) }

func (s *ISensors) Set_PctError(value float64) error {
	C.ctx_Sensors_Set_PctError(s.ptr, C.double(value))
	return s.ctx.err()
}

// True if voltage measurements are 1-3, 3-2, 2-1.
func (s *ISensors) Get_ReverseDelta() (bool, error) {
	return s.ctx.flag(C.ctx_Sensors_Get_ReverseDelta(s.ptr))
}

func (s *ISensors) Set_ReverseDelta(value bool) error {
	C.ctx_Sensors_Set_ReverseDelta(s.ptr, cbool(value))
	return s.ctx.err()
}

// Weighting factor for this Sensor measurement with respect to other Sensors. Default is 1.
func (s *ISensors) Get_Weight() (float64, error) { return s.ctx.f64(C.ctx_Sensors_Get_Weight(s.ptr)) }

func (s *ISensors) Set_Weight(value float64) error {
	C.ctx_Sensors_Set_Weight(s.ptr, C.double(value))
	return s.ctx.err()
}

// Array of doubles for Q measurements. Overwrites Currents with a new estimate using kWS.
func (s *ISensors) Get_kVARS() ([]float64, error) {
	C.ctx_Sensors_Get_kVARS_GR(s.ptr)
	return s.ctx.float64s()
}

func (s *ISensors) Set_kVARS(value []float64) error {
	ptr, cnt := cfloat64s(value)
	C.ctx_Sensors_Set_kVARS(s.ptr, ptr, cnt)
	return s.ctx.err()
}

// Array of doubles for the LL or LN (depending on Delta connection) voltage measurements.
func (s *ISensors) Get_kVS() ([]float64, error) {
	C.ctx_Sensors_Get_kVS_GR(s.ptr)
	return s.ctx.float64s()
}

func (s *ISensors) Set_kVS(value []float64) error {
	ptr, cnt := cfloat64s(value)
	C.ctx_Sensors_Set_kVS(s.ptr, ptr, cnt)
	return s.ctx.err()
}

// Voltage base for the sensor measurements. LL for 2 and 3-phase sensors, LN for 1-phase sensors.
func (s *ISensors) Get_kVbase() (float64, error) { return s.ctx.f64(C.ctx_Sensors_Get_kVbase(s.ptr)) }

func (s *ISensors) Set_kVbase(value float64) error {
	C.ctx_Sensors_Set_kVbase(s.ptr, C.double(value))
	return s.ctx.err()
}

// Array of doubles for P measurements. Overwrites Currents with a new estimate using kVARS.
func (s *ISensors) Get_kWS() ([]float64, error) {
	C.ctx_Sensors_Get_kWS_GR(s.ptr)
	return s.ctx.float64s()
}

func (s *ISensors) Set_kWS(value []float64) error {
	ptr, cnt := cfloat64s(value)
	C.ctx_Sensors_Set_kWS(s.ptr, ptr, cnt)
	return s.ctx.err()
}

// Array of doubles for the allocation factors for each phase.
func (s *ISensors) AllocationFactor() ([]float64, error) {
	C.ctx_Sensors_Get_AllocationFactor_GR(s.ptr)
	return s.ctx.float64s()
}
