package dss

/*
#include <stdlib.h>
#include "dss_capi_ctx.h"
*/
import "C"

func (d *IDSS) ClearAll() error {
	C.ctx_DSS_ClearAll(d.ptr)
	return d.ctx.err()
}

// This is a no-op function, does nothing. Left for compatibility.
func (d *IDSS) Reset() error {
	C.ctx_DSS_Reset(d.ptr)
	return d.ctx.err()
}

func (d *IDSS) SetActiveClass(className string) (int32, error) {
	return d.ctx.i32(cstr(className, func(cs *C.char) C.int32_t { return C.ctx_DSS_SetActiveClass(d.ptr, cs) }))
}

// This is a no-op function, does nothing. Left for compatibility.
func (d *IDSS) Start(code int32) (bool, error) {
	return d.ctx.flag(C.ctx_DSS_Start(d.ptr, C.int32_t(code)))
}

// List of DSS intrinsic classes (names of the classes)
func (d *IDSS) Classes() ([]string, error) {
	return d.ctx.strings(func(data ***C.char, cnt *C.int32_t) { C.ctx_DSS_Get_Classes(d.ptr, data, cnt) })
}

// DSS Data File Path.  Default path for reports, etc. from DSS
func (d *IDSS) Get_DataPath() (string, error) { return d.ctx.str(C.ctx_DSS_Get_DataPath(d.ptr)) }

func (d *IDSS) Set_DataPath(value string) error {
	return d.ctx.withString(value, func(cs *C.char) { C.ctx_DSS_Set_DataPath(d.ptr, cs) })
}

// Returns the path name for the default text editor.
func (d *IDSS) DefaultEditor() (string, error) { return d.ctx.str(C.ctx_DSS_Get_DefaultEditor(d.ptr)) }

// Number of Circuits currently defined
func (d *IDSS) NumCircuits() (int32, error) { return d.ctx.i32(C.ctx_DSS_Get_NumCircuits(d.ptr)) }

// Number of DSS intrinsic classes
func (d *IDSS) NumClasses() (int32, error) { return d.ctx.i32(C.ctx_DSS_Get_NumClasses(d.ptr)) }

// Number of user-defined classes
func (d *IDSS) NumUserClasses() (int32, error) { return d.ctx.i32(C.ctx_DSS_Get_NumUserClasses(d.ptr)) }

// List of user-defined classes
func (d *IDSS) UserClasses() ([]string, error) {
	return d.ctx.strings(func(data ***C.char, cnt *C.int32_t) { C.ctx_DSS_Get_UserClasses(d.ptr, data, cnt) })
}

// Get version string for the DSS.
func (d *IDSS) Version() (string, error) { return d.ctx.str(C.ctx_DSS_Get_Version(d.ptr)) }

// Gets/sets whether text output is allowed
func (d *IDSS) Get_AllowForms() (bool, error) { return d.ctx.flag(C.ctx_DSS_Get_AllowForms(d.ptr)) }

func (d *IDSS) Set_AllowForms(value bool) error {
	C.ctx_DSS_Set_AllowForms(d.ptr, cbool(value))
	return d.ctx.err()
}

// Gets/sets whether running the external editor for "Show" is allowed
//
// (API Extension)
func (d *IDSS) Get_AllowEditor() (bool, error) { return d.ctx.flag(C.ctx_DSS_Get_AllowEditor(d.ptr)) }

func (d *IDSS) Set_AllowEditor(value bool) error {
	C.ctx_DSS_Set_AllowEditor(d.ptr, cbool(value))
	return d.ctx.err()
}

// LegacyModels was a flag used to toggle legacy (pre-2019) models for PVSystem, InvControl, Storage and
// StorageControl.
// In the official OpenDSS version 9.0, the old models were removed. They were temporarily present here
// but were also removed in DSS C-API v0.13.0.
//
// (API Extension)
func (d *IDSS) Get_LegacyModels() (bool, error) { return d.ctx.flag(C.ctx_DSS_Get_LegacyModels(d.ptr)) }

func (d *IDSS) Set_LegacyModels(value bool) error {
	C.ctx_DSS_Set_LegacyModels(d.ptr, cbool(value))
	return d.ctx.err()
}

// If disabled, the engine will not change the active working directory during execution. E.g. a "compile"
// command will not "chdir" to the file path.
//
// (API Extension)
func (d *IDSS) Get_AllowChangeDir() (bool, error) { return d.ctx.flag(C.ctx_DSS_Get_AllowChangeDir(d.ptr)) }

func (d *IDSS) Set_AllowChangeDir(value bool) error {
	C.ctx_DSS_Set_AllowChangeDir(d.ptr, cbool(value))
	return d.ctx.err()
}

// If enabled, the `DOScmd` command is allowed. Otherwise, an error is reported if the user tries to use it.
//
// (API Extension)
func (d *IDSS) Get_AllowDOScmd() (bool, error) { return d.ctx.flag(C.ctx_DSS_Get_AllowDOScmd(d.ptr)) }

func (d *IDSS) Set_AllowDOScmd(value bool) error {
	C.ctx_DSS_Set_AllowDOScmd(d.ptr, cbool(value))
	return d.ctx.err()
}

// If enabled, in case of errors or empty arrays, the API returns arrays with values compatible with the
// official OpenDSS COM interface.
//
// (API Extension)
func (d *IDSS) Get_COMErrorResults() (bool, error) {
	return d.ctx.flag(C.ctx_DSS_Get_COMErrorResults(d.ptr))
}

func (d *IDSS) Set_COMErrorResults(value bool) error {
	C.ctx_DSS_Set_COMErrorResults(d.ptr, cbool(value))
	return d.ctx.err()
}
