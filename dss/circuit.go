package dss

/*
#include <stdlib.h>
#include "dss_capi_ctx.h"
*/
import "C"

import (
	"fmt"

	"github.com/dss-extensions/dss-go/dsserr"
)

type ICircuit struct {
	ICommonData
	Buses            IBus
	CktElements      ICktElement
	ActiveElement    ICktElement
	Solution         ISolution
	ActiveBus        IBus
	Generators       IGenerators
	Meters           IMeters
	Monitors         IMonitors
	Settings         ISettings
	Lines            ILines
	CtrlQueue        ICtrlQueue
	Loads            ILoads
	ActiveCktElement ICktElement
	ActiveDSSElement IDSSElement
	ActiveClass      IActiveClass
	CapControls      ICapControls
	RegControls      IRegControls
	SwtControls      ISwtControls
	Transformers     ITransformers
	Capacitors       ICapacitors
	Topology         ITopology
	Sensors          ISensors
	XYCurves         IXYCurves
	PDElements       IPDElements
	Reclosers        IReclosers
	Relays           IRelays
	LoadShapes       ILoadShapes
	Fuses            IFuses
	PVSystems        IPVSystems
	Vsources         IVsources
	ISources         IISources
	LineCodes        ILineCodes
	LineGeometries   ILineGeometries
	LineSpacings     ILineSpacings
	WireData         IWireData
	CNData           ICNData
	TSData           ITSData
	Reactors         IReactors
	ReduceCkt        IReduceCkt
	Storages         IStorages
	GICSources       IGICSources
	Parallel         IParallel
}

func (c *ICircuit) bind(ctx *dssContext) {
	c.ICommonData.bind(ctx)
	for _, e := range []interface{ bind(*dssContext) }{
		&c.Buses, &c.CktElements, &c.ActiveElement, &c.Solution, &c.ActiveBus,
		&c.Settings, &c.CtrlQueue, &c.ActiveCktElement, &c.ActiveDSSElement,
		&c.ActiveClass, &c.Topology, &c.PDElements, &c.ReduceCkt, &c.Parallel,
	} {
		e.bind(ctx)
	}
	c.Generators.bind(ctx, &generatorsIter)
	c.Meters.bind(ctx, &metersIter)
	c.Monitors.bind(ctx, &monitorsIter)
	c.Lines.bind(ctx, &linesIter)
	c.Loads.bind(ctx, &loadsIter)
	c.CapControls.bind(ctx, &capControlsIter)
	c.RegControls.bind(ctx, &regControlsIter)
	c.SwtControls.bind(ctx, &swtControlsIter)
	c.Transformers.bind(ctx, &transformersIter)
	c.Capacitors.bind(ctx, &capacitorsIter)
	c.Sensors.bind(ctx, &sensorsIter)
	c.XYCurves.bind(ctx, &xyCurvesIter)
	c.Reclosers.bind(ctx, &reclosersIter)
	c.Relays.bind(ctx, &relaysIter)
	c.LoadShapes.bind(ctx, &loadShapesIter)
	c.Fuses.bind(ctx, &fusesIter)
	c.PVSystems.bind(ctx, &pvSystemsIter)
	c.Vsources.bind(ctx, &vsourcesIter)
	c.ISources.bind(ctx, &isourcesIter)
	c.LineCodes.bind(ctx, &lineCodesIter)
	c.LineGeometries.bind(ctx, &lineGeometriesIter)
	c.LineSpacings.bind(ctx, &lineSpacingsIter)
	c.WireData.bind(ctx, &wireDataIter)
	c.CNData.bind(ctx, &cnDataIter)
	c.TSData.bind(ctx, &tsDataIter)
	c.Reactors.bind(ctx, &reactorsIter)
	c.Storages.bind(ctx, &storagesIter)
	c.GICSources.bind(ctx, &gicSourcesIter)
}

// BusByIndex activates a bus by its (zero-based) index and returns
// ActiveBus.
func (c *ICircuit) BusByIndex(idx int32) (*IBus, error) {
	res := C.ctx_Circuit_SetActiveBusi(c.ptr, C.int32_t(idx))
	if err := c.ctx.err(); err != nil {
		return nil, err
	}
	if res < 0 {
		return nil, fmt.Errorf("%w: bus #%d", dsserr.ErrNotFound, idx)
	}
	return &c.ActiveBus, nil
}

// BusByName activates a bus by its name and returns ActiveBus.
func (c *ICircuit) BusByName(name string) (*IBus, error) {
	res, err := c.SetActiveBus(name)
	if err != nil {
		return nil, err
	}
	if res < 0 {
		return nil, fmt.Errorf("%w: bus %q", dsserr.ErrNotFound, name)
	}
	return &c.ActiveBus, nil
}

// CktElementByIndex activates a circuit element by its global (zero-based)
// index and returns ActiveCktElement.
func (c *ICircuit) CktElementByIndex(idx int32) (*ICktElement, error) {
	C.ctx_Circuit_SetCktElementIndex(c.ptr, C.int32_t(idx))
	if err := c.ctx.err(); err != nil {
		return nil, err
	}
	return &c.ActiveCktElement, nil
}

// CktElementByName activates a circuit element by its full name (e.g.
// "load.abc") and returns ActiveCktElement.
func (c *ICircuit) CktElementByName(fullName string) (*ICktElement, error) {
	err := c.ctx.withString(fullName, func(cs *C.char) { C.ctx_Circuit_SetCktElementName(c.ptr, cs) })
	if err != nil {
		return nil, err
	}
	return &c.ActiveCktElement, nil
}

func (c *ICircuit) Capacity(start float64, increment float64) (float64, error) {
	return c.ctx.f64(C.ctx_Circuit_Capacity(c.ptr, C.double(start), C.double(increment)))
}

func (c *ICircuit) Disable(name string) error {
	return c.ctx.withString(name, func(cs *C.char) { C.ctx_Circuit_Disable(c.ptr, cs) })
}

func (c *ICircuit) Enable(name string) error {
	return c.ctx.withString(name, func(cs *C.char) { C.ctx_Circuit_Enable(c.ptr, cs) })
}

func (c *ICircuit) EndOfTimeStepUpdate() error {
	C.ctx_Circuit_EndOfTimeStepUpdate(c.ptr)
	return c.ctx.err()
}

func (c *ICircuit) FirstElement() (int32, error) { return c.ctx.i32(C.ctx_Circuit_FirstElement(c.ptr)) }

func (c *ICircuit) FirstPCElement() (int32, error) { return c.ctx.i32(C.ctx_Circuit_FirstPCElement(c.ptr)) }

func (c *ICircuit) FirstPDElement() (int32, error) { return c.ctx.i32(C.ctx_Circuit_FirstPDElement(c.ptr)) }

// Returns an array of doubles representing the distances to parent EnergyMeter. Sequence of array corresponds to other node ByPhase properties.
func (c *ICircuit) AllNodeDistancesByPhase(phase int32) ([]float64, error) {
	C.ctx_Circuit_Get_AllNodeDistancesByPhase_GR(c.ptr, C.int32_t(phase))
	return c.ctx.float64s()
}

// Return array of strings of the node names for the By Phase criteria. Sequence corresponds to other ByPhase properties.
func (c *ICircuit) AllNodeNamesByPhase(phase int32) ([]string, error) {
	return c.ctx.strings(func(data ***C.char, cnt *C.int32_t) { C.ctx_Circuit_Get_AllNodeNamesByPhase(c.ptr, data, cnt, C.int32_t(phase)) })
}

// Returns Array of doubles represent voltage magnitudes for nodes on the specified phase.
func (c *ICircuit) AllNodeVmagByPhase(phase int32) ([]float64, error) {
	C.ctx_Circuit_Get_AllNodeVmagByPhase_GR(c.ptr, C.int32_t(phase))
	return c.ctx.float64s()
}

// Returns array of per unit voltage magnitudes for each node by phase
func (c *ICircuit) AllNodeVmagPUByPhase(phase int32) ([]float64, error) {
	C.ctx_Circuit_Get_AllNodeVmagPUByPhase_GR(c.ptr, C.int32_t(phase))
	return c.ctx.float64s()
}

func (c *ICircuit) NextElement() (int32, error) { return c.ctx.i32(C.ctx_Circuit_NextElement(c.ptr)) }

func (c *ICircuit) NextPCElement() (int32, error) { return c.ctx.i32(C.ctx_Circuit_NextPCElement(c.ptr)) }

func (c *ICircuit) NextPDElement() (int32, error) { return c.ctx.i32(C.ctx_Circuit_NextPDElement(c.ptr)) }

func (c *ICircuit) Sample() error {
	C.ctx_Circuit_Sample(c.ptr)
	return c.ctx.err()
}

func (c *ICircuit) SaveSample() error {
	C.ctx_Circuit_SaveSample(c.ptr)
	return c.ctx.err()
}

func (c *ICircuit) SetActiveBus(busName string) (int32, error) {
	return c.ctx.i32(cstr(busName, func(cs *C.char) C.int32_t { return C.ctx_Circuit_SetActiveBus(c.ptr, cs) }))
}

func (c *ICircuit) SetActiveBusi(busIndex int32) (int32, error) {
	return c.ctx.i32(C.ctx_Circuit_SetActiveBusi(c.ptr, C.int32_t(busIndex)))
}

func (c *ICircuit) SetActiveClass(className string) (int32, error) {
	return c.ctx.i32(cstr(className, func(cs *C.char) C.int32_t { return C.ctx_Circuit_SetActiveClass(c.ptr, cs) }))
}

func (c *ICircuit) SetActiveElement(fullName string) (int32, error) {
	return c.ctx.i32(cstr(fullName, func(cs *C.char) C.int32_t { return C.ctx_Circuit_SetActiveElement(c.ptr, cs) }))
}

func (c *ICircuit) UpdateStorage() error {
	C.ctx_Circuit_UpdateStorage(c.ptr)
	return c.ctx.err()
}

// Returns distance from each bus to parent EnergyMeter. Corresponds to sequence in AllBusNames.
func (c *ICircuit) AllBusDistances() ([]float64, error) {
	C.ctx_Circuit_Get_AllBusDistances_GR(c.ptr)
	return c.ctx.float64s()
}

// Array of strings containing names of all buses in circuit (see AllNodeNames).
func (c *ICircuit) AllBusNames() ([]string, error) {
	return c.ctx.strings(func(data ***C.char, cnt *C.int32_t) { C.ctx_Circuit_Get_AllBusNames(c.ptr, data, cnt) })
}

// Array of magnitudes (doubles) of voltages at all buses
func (c *ICircuit) AllBusVmag() ([]float64, error) {
	C.ctx_Circuit_Get_AllBusVmag_GR(c.ptr)
	return c.ctx.float64s()
}

// Double Array of all bus voltages (each node) magnitudes in Per unit
func (c *ICircuit) AllBusVmagPu() ([]float64, error) {
	C.ctx_Circuit_Get_AllBusVmagPu_GR(c.ptr)
	return c.ctx.float64s()
}

// Complex array of all bus, node voltages from most recent solution
func (c *ICircuit) AllBusVolts() ([]complex128, error) {
	C.ctx_Circuit_Get_AllBusVolts_GR(c.ptr)
	return c.ctx.complexes()
}

// Array of total losses (complex) in each circuit element
func (c *ICircuit) AllElementLosses() ([]complex128, error) {
	C.ctx_Circuit_Get_AllElementLosses_GR(c.ptr)
	return c.ctx.complexes()
}

// Array of strings containing Full Name of all elements.
func (c *ICircuit) AllElementNames() ([]string, error) {
	return c.ctx.strings(func(data ***C.char, cnt *C.int32_t) { C.ctx_Circuit_Get_AllElementNames(c.ptr, data, cnt) })
}

// Returns an array of distances from parent EnergyMeter for each Node. Corresponds to AllBusVMag sequence.
func (c *ICircuit) AllNodeDistances() ([]float64, error) {
	C.ctx_Circuit_Get_AllNodeDistances_GR(c.ptr)
	return c.ctx.float64s()
}

// Array of strings containing full name of each node in system in same order as returned by AllBusVolts, etc.
func (c *ICircuit) AllNodeNames() ([]string, error) {
	return c.ctx.strings(func(data ***C.char, cnt *C.int32_t) { C.ctx_Circuit_Get_AllNodeNames(c.ptr, data, cnt) })
}

// Complex total line losses in the circuit
func (c *ICircuit) LineLosses() (complex128, error) {
	C.ctx_Circuit_Get_LineLosses_GR(c.ptr)
	return c.ctx.complex()
}

// Total losses in active circuit, complex number (two-element array of double).
func (c *ICircuit) Losses() (complex128, error) {
	C.ctx_Circuit_Get_Losses_GR(c.ptr)
	return c.ctx.complex()
}

// Name of the active circuit.
func (c *ICircuit) Name() (string, error) { return c.ctx.str(C.ctx_Circuit_Get_Name(c.ptr)) }

// Total number of Buses in the circuit.
func (c *ICircuit) NumBuses() (int32, error) { return c.ctx.i32(C.ctx_Circuit_Get_NumBuses(c.ptr)) }

// Number of CktElements in the circuit.
func (c *ICircuit) NumCktElements() (int32, error) {
	return c.ctx.i32(C.ctx_Circuit_Get_NumCktElements(c.ptr))
}

// Total number of nodes in the circuit.
func (c *ICircuit) NumNodes() (int32, error) { return c.ctx.i32(C.ctx_Circuit_Get_NumNodes(c.ptr)) }

// Sets Parent PD element, if any, to be the active circuit element and returns index>0; Returns 0 if it fails or not applicable.
func (c *ICircuit) ParentPDElement() (int32, error) {
	return c.ctx.i32(C.ctx_Circuit_Get_ParentPDElement(c.ptr))
}

// Complex losses in all transformers designated to substations.
func (c *ICircuit) SubstationLosses() (complex128, error) {
	C.ctx_Circuit_Get_SubstationLosses_GR(c.ptr)
	return c.ctx.complex()
}

// System Y matrix (after a solution has been performed).
// This is deprecated as it returns a dense matrix. Only use it for small systems.
// For large-scale systems, prefer YMatrix.GetCompressedYMatrix.
func (c *ICircuit) SystemY() ([]complex128, error) {
	C.ctx_Circuit_Get_SystemY_GR(c.ptr)
	return c.ctx.complexes()
}

// Total power (complex), kVA delivered to the circuit
func (c *ICircuit) TotalPower() (complex128, error) {
	C.ctx_Circuit_Get_TotalPower_GR(c.ptr)
	return c.ctx.complex()
}

// Array of doubles containing complex injection currents for the present solution. It is the "I" vector of I=YV
func (c *ICircuit) YCurrents() ([]complex128, error) {
	C.ctx_Circuit_Get_YCurrents_GR(c.ptr)
	return c.ctx.complexes()
}

// Array of strings containing the names of the nodes in the same order as the Y matrix
func (c *ICircuit) YNodeOrder() ([]string, error) {
	return c.ctx.strings(func(data ***C.char, cnt *C.int32_t) { C.ctx_Circuit_Get_YNodeOrder(c.ptr, data, cnt) })
}

// Complex array of actual node voltages in same order as SystemY matrix.
func (c *ICircuit) YNodeVarray() ([]complex128, error) {
	C.ctx_Circuit_Get_YNodeVarray_GR(c.ptr)
	return c.ctx.complexes()
}

// Returns data for all objects and basic circuit properties as a JSON-encoded string.
//
// (API Extension)
func (c *ICircuit) ToJSON(options int32) (string, error) {
	return c.ctx.str(C.ctx_Circuit_ToJSON(c.ptr, C.int32_t(options)))
}
