package dss

/*
#include <stdlib.h>
#include "dss_capi_ctx.h"
*/
import "C"

import (
	"github.com/dss-extensions/dss-go/enums"
)

type ISolution struct {
	ICommonData
}

func (s *ISolution) BuildYMatrix(buildOption int32, allocateVI int32) error {
	C.ctx_Solution_BuildYMatrix(s.ptr, C.int32_t(buildOption), C.int32_t(allocateVI))
	return s.ctx.err()
}

func (s *ISolution) CheckControls() error {
	C.ctx_Solution_CheckControls(s.ptr)
	return s.ctx.err()
}

func (s *ISolution) CheckFaultStatus() error {
	C.ctx_Solution_CheckFaultStatus(s.ptr)
	return s.ctx.err()
}

func (s *ISolution) Cleanup() error {
	C.ctx_Solution_Cleanup(s.ptr)
	return s.ctx.err()
}

func (s *ISolution) DoControlActions() error {
	C.ctx_Solution_DoControlActions(s.ptr)
	return s.ctx.err()
}

func (s *ISolution) FinishTimeStep() error {
	C.ctx_Solution_FinishTimeStep(s.ptr)
	return s.ctx.err()
}

func (s *ISolution) InitSnap() error {
	C.ctx_Solution_InitSnap(s.ptr)
	return s.ctx.err()
}

func (s *ISolution) SampleControlDevices() error {
	C.ctx_Solution_SampleControlDevices(s.ptr)
	return s.ctx.err()
}

func (s *ISolution) Sample_DoControlActions() error {
	C.ctx_Solution_Sample_DoControlActions(s.ptr)
	return s.ctx.err()
}

func (s *ISolution) Solve() error {
	C.ctx_Solution_Solve(s.ptr)
	return s.ctx.err()
}

func (s *ISolution) SolveDirect() error {
	C.ctx_Solution_SolveDirect(s.ptr)
	return s.ctx.err()
}

func (s *ISolution) SolveNoControl() error {
	C.ctx_Solution_SolveNoControl(s.ptr)
	return s.ctx.err()
}

func (s *ISolution) SolvePflow() error {
	C.ctx_Solution_SolvePflow(s.ptr)
	return s.ctx.err()
}

func (s *ISolution) SolvePlusControl() error {
	C.ctx_Solution_SolvePlusControl(s.ptr)
	return s.ctx.err()
}

func (s *ISolution) SolveSnap() error {
	C.ctx_Solution_SolveSnap(s.ptr)
	return s.ctx.err()
}

// Type of device to add in AutoAdd Mode: {dssGen (Default) | dssCap}
func (s *ISolution) Get_AddType() (int32, error) { return s.ctx.i32(C.ctx_Solution_Get_AddType(s.ptr)) }

func (s *ISolution) Set_AddType(value int32) error {
	C.ctx_Solution_Set_AddType(s.ptr, C.int32_t(value))
	return s.ctx.err()
}

// Base Solution algorithm: {dssNormalSolve | dssNewtonSolve}
func (s *ISolution) Get_Algorithm() (enums.SolutionAlgorithms, error) {
	return asEnum[enums.SolutionAlgorithms](s.ctx.i32(C.ctx_Solution_Get_Algorithm(s.ptr)))
}

func (s *ISolution) Set_Algorithm(value enums.SolutionAlgorithms) error {
	C.ctx_Solution_Set_Algorithm(s.ptr, C.int32_t(value))
	return s.ctx.err()
}

// Capacitor kvar for adding capacitors in AutoAdd mode
func (s *ISolution) Get_Capkvar() (float64, error) { return s.ctx.f64(C.ctx_Solution_Get_Capkvar(s.ptr)) }

func (s *ISolution) Set_Capkvar(value float64) error {
	C.ctx_Solution_Set_Capkvar(s.ptr, C.double(value))
	return s.ctx.err()
}

// Flag indicating the control actions are done.
func (s *ISolution) Get_ControlActionsDone() (bool, error) {
	return s.ctx.flag(C.ctx_Solution_Get_ControlActionsDone(s.ptr))
}

func (s *ISolution) Set_ControlActionsDone(value bool) error {
	C.ctx_Solution_Set_ControlActionsDone(s.ptr, cbool(value))
	return s.ctx.err()
}

// Value of the control iteration counter
func (s *ISolution) Get_ControlIterations() (int32, error) {
	return s.ctx.i32(C.ctx_Solution_Get_ControlIterations(s.ptr))
}

func (s *ISolution) Set_ControlIterations(value int32) error {
	C.ctx_Solution_Set_ControlIterations(s.ptr, C.int32_t(value))
	return s.ctx.err()
}

// {dssStatic* | dssEvent | dssTime}  Modes for control devices
func (s *ISolution) Get_ControlMode() (enums.ControlModes, error) {
	return asEnum[enums.ControlModes](s.ctx.i32(C.ctx_Solution_Get_ControlMode(s.ptr)))
}

func (s *ISolution) Set_ControlMode(value enums.ControlModes) error {
	C.ctx_Solution_Set_ControlMode(s.ptr, C.int32_t(value))
	return s.ctx.err()
}

// Flag to indicate whether the circuit solution converged
func (s *ISolution) Get_Converged() (bool, error) { return s.ctx.flag(C.ctx_Solution_Get_Converged(s.ptr)) }

func (s *ISolution) Set_Converged(value bool) error {
	C.ctx_Solution_Set_Converged(s.ptr, cbool(value))
	return s.ctx.err()
}

// Default daily load shape (defaults to "Default")
func (s *ISolution) Get_DefaultDaily() (string, error) {
	return s.ctx.str(C.ctx_Solution_Get_DefaultDaily(s.ptr))
}

func (s *ISolution) Set_DefaultDaily(value string) error {
	return s.ctx.withString(value, func(cs *C.char) { C.ctx_Solution_Set_DefaultDaily(s.ptr, cs) })
}

// Default Yearly load shape (defaults to "Default")
func (s *ISolution) Get_DefaultYearly() (string, error) {
	return s.ctx.str(C.ctx_Solution_Get_DefaultYearly(s.ptr))
}

func (s *ISolution) Set_DefaultYearly(value string) error {
	return s.ctx.withString(value, func(cs *C.char) { C.ctx_Solution_Set_DefaultYearly(s.ptr, cs) })
}

// Array of strings containing the Event Log
func (s *ISolution) EventLog() ([]string, error) {
	return s.ctx.strings(func(data ***C.char, cnt *C.int32_t) { C.ctx_Solution_Get_EventLog(s.ptr, data, cnt) })
}

// Set the Frequency for next solution
func (s *ISolution) Get_Frequency() (float64, error) {
	return s.ctx.f64(C.ctx_Solution_Get_Frequency(s.ptr))
}

func (s *ISolution) Set_Frequency(value float64) error {
	C.ctx_Solution_Set_Frequency(s.ptr, C.double(value))
	return s.ctx.err()
}

// Default Multiplier applied to generators (like LoadMult)
func (s *ISolution) Get_GenMult() (float64, error) { return s.ctx.f64(C.ctx_Solution_Get_GenMult(s.ptr)) }

func (s *ISolution) Set_GenMult(value float64) error {
	C.ctx_Solution_Set_GenMult(s.ptr, C.double(value))
	return s.ctx.err()
}

// PF for generators in AutoAdd mode
func (s *ISolution) Get_GenPF() (float64, error) { return s.ctx.f64(C.ctx_Solution_Get_GenPF(s.ptr)) }

func (s *ISolution) Set_GenPF(value float64) error {
	C.ctx_Solution_Set_GenPF(s.ptr, C.double(value))
	return s.ctx.err()
}

// Generator kW for AutoAdd mode
func (s *ISolution) Get_GenkW() (float64, error) { return s.ctx.f64(C.ctx_Solution_Get_GenkW(s.ptr)) }

func (s *ISolution) Set_GenkW(value float64) error {
	C.ctx_Solution_Set_GenkW(s.ptr, C.double(value))
	return s.ctx.err()
}

// Set Hour for time series solutions.
func (s *ISolution) Get_Hour() (int32, error) { return s.ctx.i32(C.ctx_Solution_Get_Hour(s.ptr)) }

func (s *ISolution) Set_Hour(value int32) error {
	C.ctx_Solution_Set_Hour(s.ptr, C.int32_t(value))
	return s.ctx.err()
}

// Get/Set the Solution.IntervalHrs variable used for devices that integrate / custom solution algorithms
func (s *ISolution) Get_IntervalHrs() (float64, error) {
	return s.ctx.f64(C.ctx_Solution_Get_IntervalHrs(s.ptr))
}

func (s *ISolution) Set_IntervalHrs(value float64) error {
	C.ctx_Solution_Set_IntervalHrs(s.ptr, C.double(value))
	return s.ctx.err()
}

// Number of iterations taken for last solution. (Same as Totaliterations)
func (s *ISolution) Iterations() (int32, error) { return s.ctx.i32(C.ctx_Solution_Get_Iterations(s.ptr)) }

// Load-Duration Curve name for LD modes
func (s *ISolution) Get_LDCurve() (string, error) { return s.ctx.str(C.ctx_Solution_Get_LDCurve(s.ptr)) }

func (s *ISolution) Set_LDCurve(value string) error {
	return s.ctx.withString(value, func(cs *C.char) { C.ctx_Solution_Set_LDCurve(s.ptr, cs) })
}

// Load Model: {dssPowerFlow (default) | dssAdmittance}
func (s *ISolution) Get_LoadModel() (int32, error) { return s.ctx.i32(C.ctx_Solution_Get_LoadModel(s.ptr)) }

func (s *ISolution) Set_LoadModel(value int32) error {
	C.ctx_Solution_Set_LoadModel(s.ptr, C.int32_t(value))
	return s.ctx.err()
}

// Default load multiplier applied to all non-fixed loads
func (s *ISolution) Get_LoadMult() (float64, error) { return s.ctx.f64(C.ctx_Solution_Get_LoadMult(s.ptr)) }

func (s *ISolution) Set_LoadMult(value float64) error {
	C.ctx_Solution_Set_LoadMult(s.ptr, C.double(value))
	return s.ctx.err()
}

// Maximum allowable control iterations
func (s *ISolution) Get_MaxControlIterations() (int32, error) {
	return s.ctx.i32(C.ctx_Solution_Get_MaxControlIterations(s.ptr))
}

func (s *ISolution) Set_MaxControlIterations(value int32) error {
	C.ctx_Solution_Set_MaxControlIterations(s.ptr, C.int32_t(value))
	return s.ctx.err()
}

// Max allowable iterations.
func (s *ISolution) Get_MaxIterations() (int32, error) {
	return s.ctx.i32(C.ctx_Solution_Get_MaxIterations(s.ptr))
}

func (s *ISolution) Set_MaxIterations(value int32) error {
	C.ctx_Solution_Set_MaxIterations(s.ptr, C.int32_t(value))
	return s.ctx.err()
}

// Minimum number of iterations required for a power flow solution.
func (s *ISolution) Get_MinIterations() (int32, error) {
	return s.ctx.i32(C.ctx_Solution_Get_MinIterations(s.ptr))
}

func (s *ISolution) Set_MinIterations(value int32) error {
	C.ctx_Solution_Set_MinIterations(s.ptr, C.int32_t(value))
	return s.ctx.err()
}

// Set present solution mode
func (s *ISolution) Get_Mode() (enums.SolveModes, error) {
	return asEnum[enums.SolveModes](s.ctx.i32(C.ctx_Solution_Get_Mode(s.ptr)))
}

func (s *ISolution) Set_Mode(value enums.SolveModes) error {
	C.ctx_Solution_Set_Mode(s.ptr, C.int32_t(value))
	return s.ctx.err()
}

// ID (text) of the present solution mode
func (s *ISolution) ModeID() (string, error) { return s.ctx.str(C.ctx_Solution_Get_ModeID(s.ptr)) }

// Max number of iterations required to converge at any control iteration of the most recent solution.
func (s *ISolution) MostIterationsDone() (int32, error) {
	return s.ctx.i32(C.ctx_Solution_Get_MostIterationsDone(s.ptr))
}

// Number of solutions to perform for Monte Carlo and time series simulations
func (s *ISolution) Get_Number() (int32, error) { return s.ctx.i32(C.ctx_Solution_Get_Number(s.ptr)) }

func (s *ISolution) Set_Number(value int32) error {
	C.ctx_Solution_Set_Number(s.ptr, C.int32_t(value))
	return s.ctx.err()
}

// Gets the time required to perform the latest solution (Read only)
func (s *ISolution) Process_Time() (float64, error) {
	return s.ctx.f64(C.ctx_Solution_Get_Process_Time(s.ptr))
}

// Randomization mode for random variables "Gaussian" or "Uniform"
func (s *ISolution) Get_Random() (int32, error) { return s.ctx.i32(C.ctx_Solution_Get_Random(s.ptr)) }

func (s *ISolution) Set_Random(value int32) error {
	C.ctx_Solution_Set_Random(s.ptr, C.int32_t(value))
	return s.ctx.err()
}

// Seconds from top of the hour.
func (s *ISolution) Get_Seconds() (float64, error) { return s.ctx.f64(C.ctx_Solution_Get_Seconds(s.ptr)) }

func (s *ISolution) Set_Seconds(value float64) error {
	C.ctx_Solution_Set_Seconds(s.ptr, C.double(value))
	return s.ctx.err()
}

// Time step size in sec
func (s *ISolution) Get_StepSize() (float64, error) { return s.ctx.f64(C.ctx_Solution_Get_StepSize(s.ptr)) }

func (s *ISolution) Set_StepSize(value float64) error {
	C.ctx_Solution_Set_StepSize(s.ptr, C.double(value))
	return s.ctx.err()
}

// Flag that indicates if elements of the System Y have been changed by recent activity.
func (s *ISolution) SystemYChanged() (bool, error) {
	return s.ctx.flag(C.ctx_Solution_Get_SystemYChanged(s.ptr))
}

// Get the solution process time + sample time for time step
func (s *ISolution) Time_of_Step() (float64, error) {
	return s.ctx.f64(C.ctx_Solution_Get_Time_of_Step(s.ptr))
}

// Solution convergence tolerance.
func (s *ISolution) Get_Tolerance() (float64, error) {
	return s.ctx.f64(C.ctx_Solution_Get_Tolerance(s.ptr))
}

func (s *ISolution) Set_Tolerance(value float64) error {
	C.ctx_Solution_Set_Tolerance(s.ptr, C.double(value))
	return s.ctx.err()
}

// Gets/sets the accumulated time of the simulation
func (s *ISolution) Get_Total_Time() (float64, error) {
	return s.ctx.f64(C.ctx_Solution_Get_Total_Time(s.ptr))
}

func (s *ISolution) Set_Total_Time(value float64) error {
	C.ctx_Solution_Set_Total_Time(s.ptr, C.double(value))
	return s.ctx.err()
}

// Total iterations including control iterations for most recent solution.
func (s *ISolution) Totaliterations() (int32, error) {
	return s.ctx.i32(C.ctx_Solution_Get_Totaliterations(s.ptr))
}

// Set year for planning studies
func (s *ISolution) Get_Year() (int32, error) { return s.ctx.i32(C.ctx_Solution_Get_Year(s.ptr)) }

func (s *ISolution) Set_Year(value int32) error {
	C.ctx_Solution_Set_Year(s.ptr, C.int32_t(value))
	return s.ctx.err()
}

// Hour as a double, including fractional part
func (s *ISolution) Get_dblHour() (float64, error) { return s.ctx.f64(C.ctx_Solution_Get_dblHour(s.ptr)) }

func (s *ISolution) Set_dblHour(value float64) error {
	C.ctx_Solution_Set_dblHour(s.ptr, C.double(value))
	return s.ctx.err()
}

// Percent default  annual load growth rate
func (s *ISolution) Get_pctGrowth() (float64, error) {
	return s.ctx.f64(C.ctx_Solution_Get_pctGrowth(s.ptr))
}

func (s *ISolution) Set_pctGrowth(value float64) error {
	C.ctx_Solution_Set_pctGrowth(s.ptr, C.double(value))
	return s.ctx.err()
}

func (s *ISolution) Set_StepsizeHr(value float64) error {
	C.ctx_Solution_Set_StepsizeHr(s.ptr, C.double(value))
	return s.ctx.err()
}

func (s *ISolution) Set_StepsizeMin(value float64) error {
	C.ctx_Solution_Set_StepsizeMin(s.ptr, C.double(value))
	return s.ctx.err()
}

func (s *ISolution) BusLevels() ([]int32, error) {
	C.ctx_Solution_Get_BusLevels_GR(s.ptr)
	return s.ctx.int32s()
}

func (s *ISolution) IncMatrix() ([]int32, error) {
	C.ctx_Solution_Get_IncMatrix_GR(s.ptr)
	return s.ctx.int32s()
}

func (s *ISolution) IncMatrixCols() ([]string, error) {
	return s.ctx.strings(func(data ***C.char, cnt *C.int32_t) { C.ctx_Solution_Get_IncMatrixCols(s.ptr, data, cnt) })
}

func (s *ISolution) IncMatrixRows() ([]string, error) {
	return s.ctx.strings(func(data ***C.char, cnt *C.int32_t) { C.ctx_Solution_Get_IncMatrixRows(s.ptr, data, cnt) })
}

func (s *ISolution) Laplacian() ([]int32, error) {
	C.ctx_Solution_Get_Laplacian_GR(s.ptr)
	return s.ctx.int32s()
}

func (s *ISolution) SolveAll() error {
	C.ctx_Solution_SolveAll(s.ptr)
	return s.ctx.err()
}

type ICtrlQueue struct {
	ICommonData
}

func (q *ICtrlQueue) ClearActions() error {
	C.ctx_CtrlQueue_ClearActions(q.ptr)
	return q.ctx.err()
}

func (q *ICtrlQueue) ClearQueue() error {
	C.ctx_CtrlQueue_ClearQueue(q.ptr)
	return q.ctx.err()
}

func (q *ICtrlQueue) Delete(actionHandle int32) error {
	C.ctx_CtrlQueue_Delete(q.ptr, C.int32_t(actionHandle))
	return q.ctx.err()
}

func (q *ICtrlQueue) DoAllQueue() error {
	C.ctx_CtrlQueue_DoAllQueue(q.ptr)
	return q.ctx.err()
}

func (q *ICtrlQueue) Show() error {
	C.ctx_CtrlQueue_Show(q.ptr)
	return q.ctx.err()
}

// Code for the active action. Long integer code to tell the control device what to do
func (q *ICtrlQueue) ActionCode() (int32, error) { return q.ctx.i32(C.ctx_CtrlQueue_Get_ActionCode(q.ptr)) }

// Handle (User defined) to device that must act on the pending action.
func (q *ICtrlQueue) DeviceHandle() (int32, error) {
	return q.ctx.i32(C.ctx_CtrlQueue_Get_DeviceHandle(q.ptr))
}

// Number of Actions on the current actionlist (that have been popped off the control queue by CheckControlActions)
func (q *ICtrlQueue) NumActions() (int32, error) { return q.ctx.i32(C.ctx_CtrlQueue_Get_NumActions(q.ptr)) }

// Push a control action onto the DSS control queue by time, action code, and device handle (user defined). Returns Control Queue handle.
func (q *ICtrlQueue) Push(hour int32, seconds float64, actionCode int32, deviceHandle int32) (int32, error) {
	return q.ctx.i32(C.ctx_CtrlQueue_Push(q.ptr, C.int32_t(hour), C.double(seconds), C.int32_t(actionCode), C.int32_t(deviceHandle)))
}

// Pops next action off the action list and makes it the active action. Returns zero if none.
func (q *ICtrlQueue) PopAction() (int32, error) { return q.ctx.i32(C.ctx_CtrlQueue_Get_PopAction(q.ptr)) }

// Array of strings containing the entire queue in CSV format
func (q *ICtrlQueue) Queue() ([]string, error) {
	return q.ctx.strings(func(data ***C.char, cnt *C.int32_t) { C.ctx_CtrlQueue_Get_Queue(q.ptr, data, cnt) })
}

// Number of items on the OpenDSS control Queue
func (q *ICtrlQueue) QueueSize() (int32, error) { return q.ctx.i32(C.ctx_CtrlQueue_Get_QueueSize(q.ptr)) }

func (q *ICtrlQueue) Set_Action(value int32) error {
	C.ctx_CtrlQueue_Set_Action(q.ptr, C.int32_t(value))
	return q.ctx.err()
}
