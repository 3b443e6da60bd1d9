package dss

/*
#include <stdlib.h>
#include "dss_capi_ctx.h"
*/
import "C"

type IYMatrix struct {
	ICommonData
}

// Sparse solver options. See the enumeration SparseSolverOptions
func (y *IYMatrix) Get_SolverOptions() (uint64, error) {
	return uint64(C.ctx_YMatrix_Get_SolverOptions(y.ptr)), y.ctx.err()
}

func (y *IYMatrix) Set_SolverOptions(value uint64) error {
	C.ctx_YMatrix_Set_SolverOptions(y.ptr, C.uint64_t(value))
	return y.ctx.err()
}

func (y *IYMatrix) ZeroInjCurr() error {
	C.ctx_YMatrix_ZeroInjCurr(y.ptr)
	return y.ctx.err()
}

func (y *IYMatrix) GetSourceInjCurrents() error {
	C.ctx_YMatrix_GetSourceInjCurrents(y.ptr)
	return y.ctx.err()
}

func (y *IYMatrix) GetPCInjCurr() error {
	C.ctx_YMatrix_GetPCInjCurr(y.ptr)
	return y.ctx.err()
}

func (y *IYMatrix) BuildYMatrixD(buildOps int32, allocateVI int32) error {
	C.ctx_YMatrix_BuildYMatrixD(y.ptr, C.int32_t(buildOps), C.int32_t(allocateVI))
	return y.ctx.err()
}

func (y *IYMatrix) AddInAuxCurrents(sType int32) error {
	C.ctx_YMatrix_AddInAuxCurrents(y.ptr, C.int32_t(sType))
	return y.ctx.err()
}

func (y *IYMatrix) Get_SystemYChanged() (bool, error) {
	return y.ctx.flag(C.ctx_YMatrix_Get_SystemYChanged(y.ptr))
}

func (y *IYMatrix) Set_SystemYChanged(value bool) error {
	C.ctx_YMatrix_Set_SystemYChanged(y.ptr, cbool(value))
	return y.ctx.err()
}

func (y *IYMatrix) Get_UseAuxCurrents() (bool, error) {
	return y.ctx.flag(C.ctx_YMatrix_Get_UseAuxCurrents(y.ptr))
}

func (y *IYMatrix) Set_UseAuxCurrents(value bool) error {
	C.ctx_YMatrix_Set_UseAuxCurrents(y.ptr, cbool(value))
	return y.ctx.err()
}

func (y *IYMatrix) CheckConvergence() (bool, error) {
	return y.ctx.flag(C.ctx_YMatrix_CheckConvergence(y.ptr))
}

func (y *IYMatrix) SetGeneratordQdV() error {
	C.ctx_YMatrix_SetGeneratordQdV(y.ptr)
	return y.ctx.err()
}

func (y *IYMatrix) Get_LoadsNeedUpdating() (bool, error) {
	return y.ctx.flag(C.ctx_YMatrix_Get_LoadsNeedUpdating(y.ptr))
}

func (y *IYMatrix) Set_LoadsNeedUpdating(value bool) error {
	C.ctx_YMatrix_Set_LoadsNeedUpdating(y.ptr, cbool(value))
	return y.ctx.err()
}

func (y *IYMatrix) Get_SolutionInitialized() (bool, error) {
	return y.ctx.flag(C.ctx_YMatrix_Get_SolutionInitialized(y.ptr))
}

func (y *IYMatrix) Set_SolutionInitialized(value bool) error {
	C.ctx_YMatrix_Set_SolutionInitialized(y.ptr, cbool(value))
	return y.ctx.err()
}

func (y *IYMatrix) Get_Iteration() (int32, error) { return y.ctx.i32(C.ctx_YMatrix_Get_Iteration(y.ptr)) }

func (y *IYMatrix) Set_Iteration(value int32) error {
	C.ctx_YMatrix_Set_Iteration(y.ptr, C.int32_t(value))
	return y.ctx.err()
}

type IReduceCkt struct {
	ICommonData
}

// Zmag (ohms) for Reduce Option for Z of short lines
func (r *IReduceCkt) Get_Zmag() (float64, error) { return r.ctx.f64(C.ctx_ReduceCkt_Get_Zmag(r.ptr)) }

func (r *IReduceCkt) Set_Zmag(value float64) error {
	C.ctx_ReduceCkt_Set_Zmag(r.ptr, C.double(value))
	return r.ctx.err()
}

// Keep load flag for Reduction options that remove branches
func (r *IReduceCkt) Get_KeepLoad() (bool, error) { return r.ctx.flag(C.ctx_ReduceCkt_Get_KeepLoad(r.ptr)) }

func (r *IReduceCkt) Set_KeepLoad(value bool) error {
	C.ctx_ReduceCkt_Set_KeepLoad(r.ptr, cbool(value))
	return r.ctx.err()
}

// Edit String for RemoveBranches functions
func (r *IReduceCkt) Get_EditString() (string, error) {
	return r.ctx.str(C.ctx_ReduceCkt_Get_EditString(r.ptr))
}

func (r *IReduceCkt) Set_EditString(value string) error {
	return r.ctx.withString(value, func(cs *C.char) { C.ctx_ReduceCkt_Set_EditString(r.ptr, cs) })
}

// Start element for Remove Branch function
func (r *IReduceCkt) Get_StartPDElement() (string, error) {
	return r.ctx.str(C.ctx_ReduceCkt_Get_StartPDElement(r.ptr))
}

func (r *IReduceCkt) Set_StartPDElement(value string) error {
	return r.ctx.withString(value, func(cs *C.char) { C.ctx_ReduceCkt_Set_StartPDElement(r.ptr, cs) })
}

// Name of Energymeter to use for reduction
func (r *IReduceCkt) Get_EnergyMeter() (string, error) {
	return r.ctx.str(C.ctx_ReduceCkt_Get_EnergyMeter(r.ptr))
}

func (r *IReduceCkt) Set_EnergyMeter(value string) error {
	return r.ctx.withString(value, func(cs *C.char) { C.ctx_ReduceCkt_Set_EnergyMeter(r.ptr, cs) })
}

// Save present (reduced) circuit
// Filename is listed in the Text Result interface
func (r *IReduceCkt) SaveCircuit(cktName string) error {
	return r.ctx.withString(cktName, func(cs *C.char) { C.ctx_ReduceCkt_SaveCircuit(r.ptr, cs) })
}

// Do Default Reduction algorithm
func (r *IReduceCkt) DoDefault() error {
	C.ctx_ReduceCkt_DoDefault(r.ptr)
	return r.ctx.err()
}

// Do ShortLines algorithm: Set Zmag first if you don't want the default
func (r *IReduceCkt) DoShortLines() error {
	C.ctx_ReduceCkt_DoShortLines(r.ptr)
	return r.ctx.err()
}

// Reduce Dangling Algorithm; branches with nothing connected
func (r *IReduceCkt) DoDangling() error {
	C.ctx_ReduceCkt_DoDangling(r.ptr)
	return r.ctx.err()
}

func (r *IReduceCkt) DoLoopBreak() error {
	C.ctx_ReduceCkt_DoLoopBreak(r.ptr)
	return r.ctx.err()
}

func (r *IReduceCkt) DoParallelLines() error {
	C.ctx_ReduceCkt_DoParallelLines(r.ptr)
	return r.ctx.err()
}

func (r *IReduceCkt) DoSwitches() error {
	C.ctx_ReduceCkt_DoSwitches(r.ptr)
	return r.ctx.err()
}

func (r *IReduceCkt) Do1phLaterals() error {
	C.ctx_ReduceCkt_Do1phLaterals(r.ptr)
	return r.ctx.err()
}

func (r *IReduceCkt) DoBranchRemove() error {
	C.ctx_ReduceCkt_DoBranchRemove(r.ptr)
	return r.ctx.err()
}

type IParallel struct {
	ICommonData
}

func (p *IParallel) CreateActor() error {
	C.ctx_Parallel_CreateActor(p.ptr)
	return p.ctx.err()
}

func (p *IParallel) Wait() error {
	C.ctx_Parallel_Wait(p.ptr)
	return p.ctx.err()
}

// Gets/sets the ID of the Active Actor
func (p *IParallel) Get_ActiveActor() (int32, error) {
	return p.ctx.i32(C.ctx_Parallel_Get_ActiveActor(p.ptr))
}

func (p *IParallel) Set_ActiveActor(value int32) error {
	C.ctx_Parallel_Set_ActiveActor(p.ptr, C.int32_t(value))
	return p.ctx.err()
}

// (read) Sets ON/OFF (1/0) Parallel features of the Engine
// (write) Delivers if the Parallel features of the Engine are Active
func (p *IParallel) Get_ActiveParallel() (int32, error) {
	return p.ctx.i32(C.ctx_Parallel_Get_ActiveParallel(p.ptr))
}

func (p *IParallel) Set_ActiveParallel(value int32) error {
	C.ctx_Parallel_Set_ActiveParallel(p.ptr, C.int32_t(value))
	return p.ctx.err()
}

// Gets/sets the CPU of the Active Actor
func (p *IParallel) Get_ActorCPU() (int32, error) { return p.ctx.i32(C.ctx_Parallel_Get_ActorCPU(p.ptr)) }

func (p *IParallel) Set_ActorCPU(value int32) error {
	C.ctx_Parallel_Set_ActorCPU(p.ptr, C.int32_t(value))
	return p.ctx.err()
}

// Gets the progress of all existing actors in pct
func (p *IParallel) ActorProgress() ([]int32, error) {
	C.ctx_Parallel_Get_ActorProgress_GR(p.ptr)
	return p.ctx.int32s()
}

// Gets the status of each actor
func (p *IParallel) ActorStatus() ([]int32, error) {
	C.ctx_Parallel_Get_ActorStatus_GR(p.ptr)
	return p.ctx.int32s()
}

// (read) Reads the values of the ConcatenateReports option (1=enabled, 0=disabled)
// (write) Enable/Disable (1/0) the ConcatenateReports option for extracting monitors data
func (p *IParallel) Get_ConcatenateReports() (int32, error) {
	return p.ctx.i32(C.ctx_Parallel_Get_ConcatenateReports(p.ptr))
}

func (p *IParallel) Set_ConcatenateReports(value int32) error {
	C.ctx_Parallel_Set_ConcatenateReports(p.ptr, C.int32_t(value))
	return p.ctx.err()
}

// Delivers the number of CPUs on the current PC
func (p *IParallel) NumCPUs() (int32, error) { return p.ctx.i32(C.ctx_Parallel_Get_NumCPUs(p.ptr)) }

// Delivers the number of Cores of the local PC
func (p *IParallel) NumCores() (int32, error) { return p.ctx.i32(C.ctx_Parallel_Get_NumCores(p.ptr)) }

// Gets the number of Actors created
func (p *IParallel) NumOfActors() (int32, error) { return p.ctx.i32(C.ctx_Parallel_Get_NumOfActors(p.ptr)) }

type IZIP struct {
	ICommonData
}

// Extracts the contents of the file "FileName" from the current (open) ZIP file.
//
// (API Extension)
func (z *IZIP) Extract(fileName string) ([]byte, error) {
	if err := z.ctx.withString(fileName, func(cs *C.char) { C.ctx_ZIP_Extract_GR(z.ptr, cs) }); err != nil {
		return nil, err
	}
	return z.ctx.bytes()
}

// List of strings consisting of all names match the regular expression provided in regexp.
// If no expression is provided (empty string), all names in the current open ZIP are returned.
//
// (API Extension)
func (z *IZIP) List(regexp string) ([]string, error) {
	return cstr(regexp, func(cs *C.char) ([]string, error) {
		return z.ctx.strings(func(data ***C.char, cnt *C.int32_t) { C.ctx_ZIP_List(z.ptr, data, cnt, cs) })
	})
}

// Opens and prepares a ZIP file to be used by the DSS text parser.
// Currently, the ZIP format support is limited by what is provided in the Free Pascal distribution.
// Besides that, the full filenames inside the ZIP must be shorter than 256 characters.
// The limitations should be removed in a future revision.
//
// (API Extension)
func (z *IZIP) Open(fileName string) error {
	return z.ctx.withString(fileName, func(cs *C.char) { C.ctx_ZIP_Open(z.ptr, cs) })
}

// Closes the current open ZIP file
//
// (API Extension)
func (z *IZIP) Close() error {
	C.ctx_ZIP_Close(z.ptr)
	return z.ctx.err()
}

// Runs a "Redirect" command inside the current (open) ZIP file.
// In the current implementation, all files required by the script must
// be present inside the ZIP, using relative paths. The only exceptions are
// memory-mapped files.
//
// (API Extension)
func (z *IZIP) Redirect(fileInZip string) error {
	return z.ctx.withString(fileInZip, func(cs *C.char) { C.ctx_ZIP_Redirect(z.ptr, cs) })
}

// Check if the given path name is present in the current ZIP file.
//
// (API Extension)
func (z *IZIP) Contains(name string) (bool, error) {
	return z.ctx.flag(cstr(name, func(cs *C.char) C.uint16_t { return C.ctx_ZIP_Contains(z.ptr, cs) }))
}
