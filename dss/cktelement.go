package dss

/*
#include <stdlib.h>
#include "dss_capi_ctx.h"
*/
import "C"

import (
	"fmt"

	"github.com/dss-extensions/dss-go/dsserr"
	"github.com/dss-extensions/dss-go/enums"
)

type ICktElement struct {
	ICommonData
	Properties IDSSProperty
}

func (e *ICktElement) bind(ctx *dssContext) {
	e.ICommonData.bind(ctx)
	e.Properties.bind(ctx)
}

func (e *ICktElement) varResult(v C.double, code C.int32_t, what any) (float64, error) {
	if err := e.ctx.err(); err != nil {
		return 0, err
	}
	if code > 0 {
		return 0, fmt.Errorf("%w: variable %v", dsserr.ErrNotFound, what)
	}
	return float64(v), nil
}

// For PCElement, get the value of a variable by name. Fails with
// dsserr.ErrNotFound if there is no variable by this name or the element is
// not a PCElement.
func (e *ICktElement) Get_VariableByName(name string) (float64, error) {
	var code C.int32_t
	v := cstr(name, func(cs *C.char) C.double { return C.ctx_CktElement_Get_Variable(e.ptr, cs, &code) })
	return e.varResult(v, code, name)
}

// For PCElement, get the value of a variable by its (1-based) index.
func (e *ICktElement) Get_VariableByIndex(idx int32) (float64, error) {
	var code C.int32_t
	v := C.ctx_CktElement_Get_Variablei(e.ptr, C.int32_t(idx), &code)
	return e.varResult(v, code, idx)
}

func (e *ICktElement) Get_Variable(name string) (float64, error) { return e.Get_VariableByName(name) }
func (e *ICktElement) Get_Variablei(idx int32) (float64, error)  { return e.Get_VariableByIndex(idx) }

// Set the value of a PCElement variable by name.
func (e *ICktElement) Set_VariableByName(name string, value float64) error {
	var code C.int32_t
	err := e.ctx.withString(name, func(cs *C.char) { C.ctx_CktElement_Set_Variable(e.ptr, cs, &code, C.double(value)) })
	if err == nil && code > 0 {
		err = fmt.Errorf("%w: variable %s", dsserr.ErrNotFound, name)
	}
	return err
}

// Set the value of a PCElement variable by its (1-based) index.
func (e *ICktElement) Set_VariableByIndex(idx int32, value float64) error {
	var code C.int32_t
	C.ctx_CktElement_Set_Variablei(e.ptr, C.int32_t(idx), &code, C.double(value))
	_, err := e.varResult(0, code, idx)
	return err
}

func (e *ICktElement) Close(term int32, phs int32) error {
	C.ctx_CktElement_Close(e.ptr, C.int32_t(term), C.int32_t(phs))
	return e.ctx.err()
}

// Full name of the i-th controller attached to this element. Ex: str = Controller(2).  See NumControls to determine valid index range
func (e *ICktElement) Controller(idx int32) (string, error) {
	return e.ctx.str(C.ctx_CktElement_Get_Controller(e.ptr, C.int32_t(idx)))
}

func (e *ICktElement) IsOpen(term int32, phs int32) (bool, error) {
	return e.ctx.flag(C.ctx_CktElement_IsOpen(e.ptr, C.int32_t(term), C.int32_t(phs)))
}

func (e *ICktElement) Open(term int32, phs int32) error {
	C.ctx_CktElement_Open(e.ptr, C.int32_t(term), C.int32_t(phs))
	return e.ctx.err()
}

// Array containing all property names of the active device.
func (e *ICktElement) AllPropertyNames() ([]string, error) {
	return e.ctx.strings(func(data ***C.char, cnt *C.int32_t) { C.ctx_CktElement_Get_AllPropertyNames(e.ptr, data, cnt) })
}

// Array of strings listing all the published state variable names.
// Valid only for PCElements.
func (e *ICktElement) AllVariableNames() ([]string, error) {
	return e.ctx.strings(func(data ***C.char, cnt *C.int32_t) { C.ctx_CktElement_Get_AllVariableNames(e.ptr, data, cnt) })
}

// Array of doubles. Values of state variables of active element if PC element.
// Valid only for PCElements.
func (e *ICktElement) AllVariableValues() ([]float64, error) {
	C.ctx_CktElement_Get_AllVariableValues_GR(e.ptr)
	return e.ctx.float64s()
}

// Array of strings. Get  Bus definitions to which each terminal is connected.
func (e *ICktElement) Get_BusNames() ([]string, error) {
	return e.ctx.strings(func(data ***C.char, cnt *C.int32_t) { C.ctx_CktElement_Get_BusNames(e.ptr, data, cnt) })
}

func (e *ICktElement) Set_BusNames(value []string) error {
	return e.ctx.withStrings(value, func(arr **C.char, cnt C.int32_t) { C.ctx_CktElement_Set_BusNames(e.ptr, arr, cnt) })
}

// Complex double array of Sequence Currents for all conductors of all terminals of active circuit element.
func (e *ICktElement) CplxSeqCurrents() ([]complex128, error) {
	C.ctx_CktElement_Get_CplxSeqCurrents_GR(e.ptr)
	return e.ctx.complexes()
}

// Complex double array of Sequence Voltage for all terminals of active circuit element.
func (e *ICktElement) CplxSeqVoltages() ([]complex128, error) {
	C.ctx_CktElement_Get_CplxSeqVoltages_GR(e.ptr)
	return e.ctx.complexes()
}

// Complex array of currents into each conductor of each terminal
func (e *ICktElement) Currents() ([]complex128, error) {
	C.ctx_CktElement_Get_Currents_GR(e.ptr)
	return e.ctx.complexes()
}

// Currents in magnitude, angle (degrees) format as a array of doubles.
func (e *ICktElement) CurrentsMagAng() ([]float64, error) {
	C.ctx_CktElement_Get_CurrentsMagAng_GR(e.ptr)
	return e.ctx.float64s()
}

// Display name of the object (not necessarily unique)
func (e *ICktElement) Get_DisplayName() (string, error) {
	return e.ctx.str(C.ctx_CktElement_Get_DisplayName(e.ptr))
}

func (e *ICktElement) Set_DisplayName(value string) error {
	return e.ctx.withString(value, func(cs *C.char) { C.ctx_CktElement_Set_DisplayName(e.ptr, cs) })
}

// Emergency Ampere Rating for PD elements
func (e *ICktElement) Get_EmergAmps() (float64, error) {
	return e.ctx.f64(C.ctx_CktElement_Get_EmergAmps(e.ptr))
}

func (e *ICktElement) Set_EmergAmps(value float64) error {
	C.ctx_CktElement_Set_EmergAmps(e.ptr, C.double(value))
	return e.ctx.err()
}

// Boolean indicating that element is currently in the circuit.
func (e *ICktElement) Get_Enabled() (bool, error) { return e.ctx.flag(C.ctx_CktElement_Get_Enabled(e.ptr)) }

func (e *ICktElement) Set_Enabled(value bool) error {
	C.ctx_CktElement_Set_Enabled(e.ptr, cbool(value))
	return e.ctx.err()
}

// Name of the Energy Meter this element is assigned to.
func (e *ICktElement) EnergyMeter() (string, error) {
	return e.ctx.str(C.ctx_CktElement_Get_EnergyMeter(e.ptr))
}

// globally unique identifier for this object
func (e *ICktElement) GUID() (string, error) { return e.ctx.str(C.ctx_CktElement_Get_GUID(e.ptr)) }

// Pointer to this object
func (e *ICktElement) Handle() (int32, error) { return e.ctx.i32(C.ctx_CktElement_Get_Handle(e.ptr)) }

// True if a recloser, relay, or fuse controlling this ckt element. OCP = Overcurrent Protection
func (e *ICktElement) HasOCPDevice() (bool, error) {
	return e.ctx.flag(C.ctx_CktElement_Get_HasOCPDevice(e.ptr))
}

// This element has a SwtControl attached.
func (e *ICktElement) HasSwitchControl() (bool, error) {
	return e.ctx.flag(C.ctx_CktElement_Get_HasSwitchControl(e.ptr))
}

// This element has a CapControl or RegControl attached.
func (e *ICktElement) HasVoltControl() (bool, error) {
	return e.ctx.flag(C.ctx_CktElement_Get_HasVoltControl(e.ptr))
}

// Total losses in the element: two-element double array (complex), in VA (watts, vars)
func (e *ICktElement) Losses() (complex128, error) {
	C.ctx_CktElement_Get_Losses_GR(e.ptr)
	return e.ctx.complex()
}

// Full Name of Active Circuit Element
func (e *ICktElement) Name() (string, error) { return e.ctx.str(C.ctx_CktElement_Get_Name(e.ptr)) }

// Array of integer containing the node numbers (representing phases, for example) for each conductor of each terminal.
func (e *ICktElement) NodeOrder() ([]int32, error) {
	C.ctx_CktElement_Get_NodeOrder_GR(e.ptr)
	return e.ctx.int32s()
}

// Normal ampere rating for PD Elements
func (e *ICktElement) Get_NormalAmps() (float64, error) {
	return e.ctx.f64(C.ctx_CktElement_Get_NormalAmps(e.ptr))
}

func (e *ICktElement) Set_NormalAmps(value float64) error {
	C.ctx_CktElement_Set_NormalAmps(e.ptr, C.double(value))
	return e.ctx.err()
}

// Number of Conductors per Terminal
func (e *ICktElement) NumConductors() (int32, error) {
	return e.ctx.i32(C.ctx_CktElement_Get_NumConductors(e.ptr))
}

// Number of controls connected to this device.
// Use to determine valid range for index into Controller array.
func (e *ICktElement) NumControls() (int32, error) {
	return e.ctx.i32(C.ctx_CktElement_Get_NumControls(e.ptr))
}

// Number of Phases
func (e *ICktElement) NumPhases() (int32, error) { return e.ctx.i32(C.ctx_CktElement_Get_NumPhases(e.ptr)) }

// Number of Properties this Circuit Element.
func (e *ICktElement) NumProperties() (int32, error) {
	return e.ctx.i32(C.ctx_CktElement_Get_NumProperties(e.ptr))
}

// Number of Terminals this Circuit Element
func (e *ICktElement) NumTerminals() (int32, error) {
	return e.ctx.i32(C.ctx_CktElement_Get_NumTerminals(e.ptr))
}

// Index into Controller list of OCP Device controlling this CktElement
func (e *ICktElement) OCPDevIndex() (int32, error) {
	return e.ctx.i32(C.ctx_CktElement_Get_OCPDevIndex(e.ptr))
}

// 0=None; 1=Fuse; 2=Recloser; 3=Relay;  Type of OCP controller device
func (e *ICktElement) OCPDevType() (enums.OCPDevType, error) {
	return asEnum[enums.OCPDevType](e.ctx.i32(C.ctx_CktElement_Get_OCPDevType(e.ptr)))
}

// Complex array of losses (kVA) by phase
func (e *ICktElement) PhaseLosses() ([]complex128, error) {
	C.ctx_CktElement_Get_PhaseLosses_GR(e.ptr)
	return e.ctx.complexes()
}

// Complex array of powers (kVA) into each conductor of each terminal
func (e *ICktElement) Powers() ([]complex128, error) {
	C.ctx_CktElement_Get_Powers_GR(e.ptr)
	return e.ctx.complexes()
}

// Residual currents for each terminal: (magnitude, angle in degrees)
func (e *ICktElement) Residuals() ([]float64, error) {
	C.ctx_CktElement_Get_Residuals_GR(e.ptr)
	return e.ctx.float64s()
}

// Double array of symmetrical component currents (magnitudes only) into each 3-phase terminal
func (e *ICktElement) SeqCurrents() ([]float64, error) {
	C.ctx_CktElement_Get_SeqCurrents_GR(e.ptr)
	return e.ctx.float64s()
}

// Complex array of sequence powers (kW, kvar) into each 3-phase teminal
func (e *ICktElement) SeqPowers() ([]complex128, error) {
	C.ctx_CktElement_Get_SeqPowers_GR(e.ptr)
	return e.ctx.complexes()
}

// Double array of symmetrical component voltages (magnitudes only) at each 3-phase terminal
func (e *ICktElement) SeqVoltages() ([]float64, error) {
	C.ctx_CktElement_Get_SeqVoltages_GR(e.ptr)
	return e.ctx.float64s()
}

// Complex array of voltages at terminals
func (e *ICktElement) Voltages() ([]complex128, error) {
	C.ctx_CktElement_Get_Voltages_GR(e.ptr)
	return e.ctx.complexes()
}

// Voltages at each conductor in magnitude, angle form as array of doubles.
func (e *ICktElement) VoltagesMagAng() ([]float64, error) {
	C.ctx_CktElement_Get_VoltagesMagAng_GR(e.ptr)
	return e.ctx.float64s()
}

// YPrim matrix, column order, complex numbers
func (e *ICktElement) Yprim() ([]complex128, error) {
	C.ctx_CktElement_Get_Yprim_GR(e.ptr)
	return e.ctx.complexes()
}

// Returns true if the current active element is isolated.
// Note that this only fetches the current value. See also the Topology interface.
//
// (API Extension)
func (e *ICktElement) IsIsolated() (bool, error) {
	return e.ctx.flag(C.ctx_CktElement_Get_IsIsolated(e.ptr))
}

// Returns an array with the total powers (complex, kVA) at ALL terminals of the active circuit element.
func (e *ICktElement) TotalPowers() ([]complex128, error) {
	C.ctx_CktElement_Get_TotalPowers_GR(e.ptr)
	return e.ctx.complexes()
}

// Array of integers, a copy of the internal NodeRef of the CktElement.
func (e *ICktElement) NodeRef() ([]int32, error) {
	C.ctx_CktElement_Get_NodeRef_GR(e.ptr)
	return e.ctx.int32s()
}

type IDSSElement struct {
	ICommonData
	Properties IDSSProperty
}

func (e *IDSSElement) bind(ctx *dssContext) {
	e.ICommonData.bind(ctx)
	e.Properties.bind(ctx)
}

// Array of strings containing the names of all properties for the active DSS object.
func (e *IDSSElement) AllPropertyNames() ([]string, error) {
	return e.ctx.strings(func(data ***C.char, cnt *C.int32_t) { C.ctx_DSSElement_Get_AllPropertyNames(e.ptr, data, cnt) })
}

// Full Name of Active DSS Object (general element or circuit element).
func (e *IDSSElement) Name() (string, error) { return e.ctx.str(C.ctx_DSSElement_Get_Name(e.ptr)) }

// Number of Properties for the active DSS object.
func (e *IDSSElement) NumProperties() (int32, error) {
	return e.ctx.i32(C.ctx_DSSElement_Get_NumProperties(e.ptr))
}

// Returns the properties of the active DSS object as a JSON-encoded string.
//
// (API Extension)
func (e *IDSSElement) ToJSON(options int32) (string, error) {
	return e.ctx.str(C.ctx_DSSElement_ToJSON(e.ptr, C.int32_t(options)))
}

type IDSSProperty struct {
	ICommonData
}

func (p *IDSSProperty) Set_idx(key int32) error {
	C.ctx_DSSProperty_Set_Index(p.ptr, C.int32_t(key))
	return p.ctx.err()
}

func (p *IDSSProperty) Set_Name(key string) error {
	return p.ctx.withString(key, func(cs *C.char) { C.ctx_DSSProperty_Set_Name(p.ptr, cs) })
}

// Description of the property.
func (p *IDSSProperty) Description() (string, error) {
	return p.ctx.str(C.ctx_DSSProperty_Get_Description(p.ptr))
}

// Name of Property
func (p *IDSSProperty) Name() (string, error) { return p.ctx.str(C.ctx_DSSProperty_Get_Name(p.ptr)) }

func (p *IDSSProperty) Get_Val() (string, error) { return p.ctx.str(C.ctx_DSSProperty_Get_Val(p.ptr)) }

func (p *IDSSProperty) Set_Val(value string) error {
	return p.ctx.withString(value, func(cs *C.char) { C.ctx_DSSProperty_Set_Val(p.ptr, cs) })
}

type IPDElements struct {
	ICommonData
}

// accummulated failure rate for this branch on downline
func (pd *IPDElements) AccumulatedL() (float64, error) {
	return pd.ctx.f64(C.ctx_PDElements_Get_AccumulatedL(pd.ptr))
}

// Number of PD elements (including disabled elements)
func (pd *IPDElements) Count() (int32, error) { return pd.ctx.i32(C.ctx_PDElements_Get_Count(pd.ptr)) }

// Get/Set Number of failures per year.
// For LINE elements: Number of failures per unit length per year.
func (pd *IPDElements) Get_FaultRate() (float64, error) {
	return pd.ctx.f64(C.ctx_PDElements_Get_FaultRate(pd.ptr))
}

func (pd *IPDElements) Set_FaultRate(value float64) error {
	C.ctx_PDElements_Set_FaultRate(pd.ptr, C.double(value))
	return pd.ctx.err()
}

// Set the first enabled PD element to be the active element.
// Returns 0 if none found.
func (pd *IPDElements) First() (int32, error) { return pd.ctx.i32(C.ctx_PDElements_Get_First(pd.ptr)) }

// Number of the terminal of active PD element that is on the "from"
// side. This is set after the meter zone is determined.
func (pd *IPDElements) FromTerminal() (int32, error) {
	return pd.ctx.i32(C.ctx_PDElements_Get_FromTerminal(pd.ptr))
}

// Boolean indicating of PD element should be treated as a shunt
// element rather than a series element. Applies to Capacitor and Reactor
// elements in particular.
func (pd *IPDElements) IsShunt() (bool, error) { return pd.ctx.flag(C.ctx_PDElements_Get_IsShunt(pd.ptr)) }

// Failure rate for this branch. Faults per year including length of line.
func (pd *IPDElements) Lambda() (float64, error) { return pd.ctx.f64(C.ctx_PDElements_Get_Lambda(pd.ptr)) }

// Get/Set name of active PD Element. Returns null string if active element
// is not PDElement type.
func (pd *IPDElements) Get_Name() (string, error) { return pd.ctx.str(C.ctx_PDElements_Get_Name(pd.ptr)) }

func (pd *IPDElements) Set_Name(value string) error {
	return pd.ctx.withString(value, func(cs *C.char) { C.ctx_PDElements_Set_Name(pd.ptr, cs) })
}

// Advance to the next PD element in the circuit. Enabled elements
// only. Returns 0 when no more elements.
func (pd *IPDElements) Next() (int32, error) { return pd.ctx.i32(C.ctx_PDElements_Get_Next(pd.ptr)) }

// Number of customers, this branch
func (pd *IPDElements) Numcustomers() (int32, error) {
	return pd.ctx.i32(C.ctx_PDElements_Get_Numcustomers(pd.ptr))
}

// Sets the parent PD element to be the active circuit element.
// Returns 0 if no more elements upline.
func (pd *IPDElements) ParentPDElement() (int32, error) {
	return pd.ctx.i32(C.ctx_PDElements_Get_ParentPDElement(pd.ptr))
}

// Average repair time for this element in hours
func (pd *IPDElements) Get_RepairTime() (float64, error) {
	return pd.ctx.f64(C.ctx_PDElements_Get_RepairTime(pd.ptr))
}

func (pd *IPDElements) Set_RepairTime(value float64) error {
	C.ctx_PDElements_Set_RepairTime(pd.ptr, C.double(value))
	return pd.ctx.err()
}

// Integer ID of the feeder section that this PDElement branch is part of
func (pd *IPDElements) SectionID() (int32, error) {
	return pd.ctx.i32(C.ctx_PDElements_Get_SectionID(pd.ptr))
}

// Total miles of line from this element to the end of the zone. For recloser siting algorithm.
func (pd *IPDElements) TotalMiles() (float64, error) {
	return pd.ctx.f64(C.ctx_PDElements_Get_TotalMiles(pd.ptr))
}

// Total number of customers from this branch to the end of the zone
func (pd *IPDElements) Totalcustomers() (int32, error) {
	return pd.ctx.i32(C.ctx_PDElements_Get_Totalcustomers(pd.ptr))
}

// Get/Set percent of faults that are permanent (require repair). Otherwise, fault is assumed to be transient/temporary.
func (pd *IPDElements) Get_pctPermanent() (float64, error) {
	return pd.ctx.f64(C.ctx_PDElements_Get_pctPermanent(pd.ptr))
}

func (pd *IPDElements) Set_pctPermanent(value float64) error {
	C.ctx_PDElements_Set_pctPermanent(pd.ptr, C.double(value))
	return pd.ctx.err()
}

// Array of strings consisting of all PD element names.
//
// (API Extension)
func (pd *IPDElements) AllNames() ([]string, error) {
	return pd.ctx.strings(func(data ***C.char, cnt *C.int32_t) { C.ctx_PDElements_Get_AllNames(pd.ptr, data, cnt) })
}

// Array of doubles with the maximum current across the conductors, for each PD
// element.
//
// (API Extension)
func (pd *IPDElements) AllMaxCurrents(allNodes bool) ([]float64, error) {
	C.ctx_PDElements_Get_AllMaxCurrents_GR(pd.ptr, cbool(allNodes))
	return pd.ctx.float64s()
}

// Array of doubles with the maximum current across the conductors as a percentage
// of the Normal Ampere Rating, for each PD element.
//
// (API Extension)
func (pd *IPDElements) AllPctNorm(allNodes bool) ([]float64, error) {
	C.ctx_PDElements_Get_AllPctNorm_GR(pd.ptr, cbool(allNodes))
	return pd.ctx.float64s()
}

// Array of doubles with the maximum current across the conductors as a percentage
// of the Emergency Ampere Rating, for each PD element.
//
// (API Extension)
func (pd *IPDElements) AllPctEmerg(allNodes bool) ([]float64, error) {
	C.ctx_PDElements_Get_AllPctEmerg_GR(pd.ptr, cbool(allNodes))
	return pd.ctx.float64s()
}

// Complex array of currents for all conductors, all terminals, for each PD element.
//
// (API Extension)
func (pd *IPDElements) AllCurrents() ([]complex128, error) {
	C.ctx_PDElements_Get_AllCurrents_GR(pd.ptr)
	return pd.ctx.complexes()
}

// Complex array (magnitude and angle format) of currents for all conductors, all terminals, for each PD element.
//
// (API Extension)
func (pd *IPDElements) AllCurrentsMagAng() ([]float64, error) {
	C.ctx_PDElements_Get_AllCurrentsMagAng_GR(pd.ptr)
	return pd.ctx.float64s()
}

// Complex double array of Sequence Currents for all conductors of all terminals, for each PD elements.
//
// (API Extension)
func (pd *IPDElements) AllCplxSeqCurrents() ([]complex128, error) {
	C.ctx_PDElements_Get_AllCplxSeqCurrents_GR(pd.ptr)
	return pd.ctx.complexes()
}

// Double array of the symmetrical component currents (magnitudes only) into each 3-phase terminal, for each PD element.
//
// (API Extension)
func (pd *IPDElements) AllSeqCurrents() ([]float64, error) {
	C.ctx_PDElements_Get_AllSeqCurrents_GR(pd.ptr)
	return pd.ctx.float64s()
}

// Complex array of powers into each conductor of each terminal, for each PD element.
//
// (API Extension)
func (pd *IPDElements) AllPowers() ([]complex128, error) {
	C.ctx_PDElements_Get_AllPowers_GR(pd.ptr)
	return pd.ctx.complexes()
}

// Complex array of sequence powers into each 3-phase teminal, for each PD element
//
// (API Extension)
func (pd *IPDElements) AllSeqPowers() ([]complex128, error) {
	C.ctx_PDElements_Get_AllSeqPowers_GR(pd.ptr)
	return pd.ctx.complexes()
}

// Integer array listing the number of phases of all PD elements
//
// (API Extension)
func (pd *IPDElements) AllNumPhases() ([]int32, error) {
	C.ctx_PDElements_Get_AllNumPhases_GR(pd.ptr)
	return pd.ctx.int32s()
}

// Integer array listing the number of conductors of all PD elements
//
// (API Extension)
func (pd *IPDElements) AllNumConductors() ([]int32, error) {
	C.ctx_PDElements_Get_AllNumConductors_GR(pd.ptr)
	return pd.ctx.int32s()
}

// Integer array listing the number of terminals of all PD elements
//
// (API Extension)
func (pd *IPDElements) AllNumTerminals() ([]int32, error) {
	C.ctx_PDElements_Get_AllNumTerminals_GR(pd.ptr)
	return pd.ctx.int32s()
}

type IActiveClass struct {
	ICommonData
}

// Returns name of active class.
func (ac *IActiveClass) ActiveClassName() (string, error) {
	return ac.ctx.str(C.ctx_ActiveClass_Get_ActiveClassName(ac.ptr))
}

// Array of strings consisting of all element names in the active class.
func (ac *IActiveClass) AllNames() ([]string, error) {
	return ac.ctx.strings(func(data ***C.char, cnt *C.int32_t) { C.ctx_ActiveClass_Get_AllNames(ac.ptr, data, cnt) })
}

// Number of elements in Active Class. Same as NumElements Property.
func (ac *IActiveClass) Count() (int32, error) { return ac.ctx.i32(C.ctx_ActiveClass_Get_Count(ac.ptr)) }

// Sets first element in the active class to be the active DSS object. If object is a CktElement, ActiveCktELment also points to this element. Returns 0 if none.
func (ac *IActiveClass) First() (int32, error) { return ac.ctx.i32(C.ctx_ActiveClass_Get_First(ac.ptr)) }

// Name of the Active Element of the Active Class
func (ac *IActiveClass) Get_Name() (string, error) { return ac.ctx.str(C.ctx_ActiveClass_Get_Name(ac.ptr)) }

func (ac *IActiveClass) Set_Name(value string) error {
	return ac.ctx.withString(value, func(cs *C.char) { C.ctx_ActiveClass_Set_Name(ac.ptr, cs) })
}

// Sets next element in active class to be the active DSS object. If object is a CktElement, ActiveCktElement also points to this element.  Returns 0 if no more.
func (ac *IActiveClass) Next() (int32, error) { return ac.ctx.i32(C.ctx_ActiveClass_Get_Next(ac.ptr)) }

// Number of elements in this class. Same as Count property.
func (ac *IActiveClass) NumElements() (int32, error) {
	return ac.ctx.i32(C.ctx_ActiveClass_Get_NumElements(ac.ptr))
}

// Get the name of the parent class of the active class
func (ac *IActiveClass) ActiveClassParent() (string, error) {
	return ac.ctx.str(C.ctx_ActiveClass_Get_ActiveClassParent(ac.ptr))
}

// Returns the data (as a list) of all elements from the active class as a JSON-encoded string.
//
// (API Extension)
func (ac *IActiveClass) ToJSON(options int32) (string, error) {
	return ac.ctx.str(C.ctx_ActiveClass_ToJSON(ac.ptr, C.int32_t(options)))
}
