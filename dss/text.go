package dss

/*
#include <stdlib.h>
#include "dss_capi_ctx.h"
*/
import "C"

import "context"

type IText struct {
	ICommonData
}

// Runs a list of strings as commands directly in the DSS engine.
// Intermediate results are ignored.
//
// (API Extension)
func (t *IText) Commands(value []string) error {
	t.ctx.log.Debug(context.Background(), "commands", "count", len(value))
	return t.ctx.withStrings(value, func(arr **C.char, cnt C.int32_t) { C.ctx_Text_CommandArray(t.ptr, arr, cnt) })
}

// Runs a large string as commands directly in the DSS engine.
// Intermediate results are ignored.
//
// (API Extension)
func (t *IText) CommandBlock(value string) error {
	return t.ctx.withString(value, func(cs *C.char) { C.ctx_Text_CommandBlock(t.ptr, cs) })
}

// Input command string for the DSS.
func (t *IText) Get_Command() (string, error) { return t.ctx.str(C.ctx_Text_Get_Command(t.ptr)) }

func (t *IText) Set_Command(value string) error {
	t.ctx.log.Debug(context.Background(), "command", "text", value)
	return t.ctx.withString(value, func(cs *C.char) { C.ctx_Text_Set_Command(t.ptr, cs) })
}

// Result string for the last command.
func (t *IText) Result() (string, error) { return t.ctx.str(C.ctx_Text_Get_Result(t.ptr)) }

type IError struct {
	ICommonData
}

// Description of error for last operation
func (e *IError) Description() (string, error) { return e.ctx.str(C.ctx_Error_Get_Description(e.ptr)) }

// Error Number (returns current value and then resets to zero)
func (e *IError) Number() (int32, error) { return e.ctx.i32(C.ctx_Error_Get_Number(e.ptr)) }

// EarlyAbort controls whether all errors halts the DSS script processing (Compile/Redirect), defaults to True.
//
// (API Extension)
func (e *IError) Get_EarlyAbort() (bool, error) { return e.ctx.flag(C.ctx_Error_Get_EarlyAbort(e.ptr)) }

func (e *IError) Set_EarlyAbort(value bool) error {
	C.ctx_Error_Set_EarlyAbort(e.ptr, cbool(value))
	return e.ctx.err()
}

// Controls whether the extended error mechanism is used. Defaults to True.
//
// (API Extension)
func (e *IError) Get_ExtendedErrors() (bool, error) {
	return e.ctx.flag(C.ctx_Error_Get_ExtendedErrors(e.ptr))
}

func (e *IError) Set_ExtendedErrors(value bool) error {
	C.ctx_Error_Set_ExtendedErrors(e.ptr, cbool(value))
	return e.ctx.err()
}

type IDSS_Executive struct {
	ICommonData
}

// Get i-th command
func (ex *IDSS_Executive) Command(i int32) (string, error) {
	return ex.ctx.str(C.ctx_DSS_Executive_Get_Command(ex.ptr, C.int32_t(i)))
}

// Get help string for i-th command
func (ex *IDSS_Executive) CommandHelp(i int32) (string, error) {
	return ex.ctx.str(C.ctx_DSS_Executive_Get_CommandHelp(ex.ptr, C.int32_t(i)))
}

// Get i-th option
func (ex *IDSS_Executive) Option(i int32) (string, error) {
	return ex.ctx.str(C.ctx_DSS_Executive_Get_Option(ex.ptr, C.int32_t(i)))
}

// Get help string for i-th option
func (ex *IDSS_Executive) OptionHelp(i int32) (string, error) {
	return ex.ctx.str(C.ctx_DSS_Executive_Get_OptionHelp(ex.ptr, C.int32_t(i)))
}

// Get present value of i-th option
func (ex *IDSS_Executive) OptionValue(i int32) (string, error) {
	return ex.ctx.str(C.ctx_DSS_Executive_Get_OptionValue(ex.ptr, C.int32_t(i)))
}

// Number of DSS Executive Commands
func (ex *IDSS_Executive) NumCommands() (int32, error) {
	return ex.ctx.i32(C.ctx_DSS_Executive_Get_NumCommands(ex.ptr))
}

// Number of DSS Executive Options
func (ex *IDSS_Executive) NumOptions() (int32, error) {
	return ex.ctx.i32(C.ctx_DSS_Executive_Get_NumOptions(ex.ptr))
}

type IDSSProgress struct {
	ICommonData
}

func (p *IDSSProgress) Close() error {
	C.ctx_DSSProgress_Close(p.ptr)
	return p.ctx.err()
}

func (p *IDSSProgress) Show() error {
	C.ctx_DSSProgress_Show(p.ptr)
	return p.ctx.err()
}

func (p *IDSSProgress) Set_Caption(value string) error {
	return p.ctx.withString(value, func(cs *C.char) { C.ctx_DSSProgress_Set_Caption(p.ptr, cs) })
}

func (p *IDSSProgress) Set_PctProgress(value int32) error {
	C.ctx_DSSProgress_Set_PctProgress(p.ptr, C.int32_t(value))
	return p.ctx.err()
}

type IParser struct {
	ICommonData
}

// Use this property to parse a Matrix token in OpenDSS format.  Returns square matrix of order specified. Order same as default Fortran order: column by column.
func (p *IParser) Matrix(expectedOrder int32) ([]float64, error) {
	C.ctx_Parser_Get_Matrix_GR(p.ptr, C.int32_t(expectedOrder))
	return p.ctx.float64s()
}

// Use this property to parse a matrix token specified in lower triangle form. Symmetry is forced.
func (p *IParser) SymMatrix(expectedOrder int32) ([]float64, error) {
	C.ctx_Parser_Get_SymMatrix_GR(p.ptr, C.int32_t(expectedOrder))
	return p.ctx.float64s()
}

// Returns token as array of doubles. For parsing quoted array syntax.
func (p *IParser) Vector(expectedSize int32) ([]float64, error) {
	C.ctx_Parser_Get_Vector_GR(p.ptr, C.int32_t(expectedSize))
	return p.ctx.float64s()
}

func (p *IParser) ResetDelimiters() error {
	C.ctx_Parser_ResetDelimiters(p.ptr)
	return p.ctx.err()
}

// Default is FALSE. If TRUE parser automatically advances to next token after DblValue, IntValue, or StrValue. Simpler when you don't need to check for parameter names.
func (p *IParser) Get_AutoIncrement() (bool, error) {
	return p.ctx.flag(C.ctx_Parser_Get_AutoIncrement(p.ptr))
}

func (p *IParser) Set_AutoIncrement(value bool) error {
	C.ctx_Parser_Set_AutoIncrement(p.ptr, cbool(value))
	return p.ctx.err()
}

// Get/Set String containing the the characters for Quoting in OpenDSS scripts. Matching pairs defined in EndQuote. Default is "'([{.
func (p *IParser) Get_BeginQuote() (string, error) { return p.ctx.str(C.ctx_Parser_Get_BeginQuote(p.ptr)) }

func (p *IParser) Set_BeginQuote(value string) error {
	return p.ctx.withString(value, func(cs *C.char) { C.ctx_Parser_Set_BeginQuote(p.ptr, cs) })
}

// String to be parsed. Loading this string resets the Parser to the beginning of the line. Then parse off the tokens in sequence.
func (p *IParser) Get_CmdString() (string, error) { return p.ctx.str(C.ctx_Parser_Get_CmdString(p.ptr)) }

func (p *IParser) Set_CmdString(value string) error {
	return p.ctx.withString(value, func(cs *C.char) { C.ctx_Parser_Set_CmdString(p.ptr, cs) })
}

// Return next parameter as a double.
func (p *IParser) DblValue() (float64, error) { return p.ctx.f64(C.ctx_Parser_Get_DblValue(p.ptr)) }

// String defining hard delimiters used to separate token on the command string. Default is , and =. The = separates token name from token value. These override whitesspace to separate tokens.
func (p *IParser) Get_Delimiters() (string, error) { return p.ctx.str(C.ctx_Parser_Get_Delimiters(p.ptr)) }

func (p *IParser) Set_Delimiters(value string) error {
	return p.ctx.withString(value, func(cs *C.char) { C.ctx_Parser_Set_Delimiters(p.ptr, cs) })
}

// String containing characters, in order, that match the beginning quote characters in BeginQuote. Default is "')]}
func (p *IParser) Get_EndQuote() (string, error) { return p.ctx.str(C.ctx_Parser_Get_EndQuote(p.ptr)) }

func (p *IParser) Set_EndQuote(value string) error {
	return p.ctx.withString(value, func(cs *C.char) { C.ctx_Parser_Set_EndQuote(p.ptr, cs) })
}

// Return next parameter as a long integer.
func (p *IParser) IntValue() (int32, error) { return p.ctx.i32(C.ctx_Parser_Get_IntValue(p.ptr)) }

// Get next token and return tag name (before = sign) if any. See AutoIncrement.
func (p *IParser) NextParam() (string, error) { return p.ctx.str(C.ctx_Parser_Get_NextParam(p.ptr)) }

// Return next parameter as a string
func (p *IParser) StrValue() (string, error) { return p.ctx.str(C.ctx_Parser_Get_StrValue(p.ptr)) }

// Get/set the characters used for White space in the command string.  Default is blank and Tab.
func (p *IParser) Get_WhiteSpace() (string, error) { return p.ctx.str(C.ctx_Parser_Get_WhiteSpace(p.ptr)) }

func (p *IParser) Set_WhiteSpace(value string) error {
	return p.ctx.withString(value, func(cs *C.char) { C.ctx_Parser_Set_WhiteSpace(p.ptr, cs) })
}
