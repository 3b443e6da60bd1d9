package dss

/*
#include <stdlib.h>
#include "dss_capi_ctx.h"
*/
import "C"

import (
	"context"
	"fmt"
	"runtime"
	"unsafe"

	"github.com/google/uuid"

	"github.com/dss-extensions/dss-go/altdss"
	"github.com/dss-extensions/dss-go/dssconfig"
	"github.com/dss-extensions/dss-go/dsserr"
	"github.com/dss-extensions/dss-go/enums"
	"github.com/dss-extensions/dss-go/logging"
)

type IDSS struct {
	ICommonData

	ActiveCircuit ICircuit
	Circuits      ICircuit
	Error         IError
	Text          IText
	DSSProgress   IDSSProgress
	ActiveClass   IActiveClass
	Executive     IDSS_Executive
	Parser        IParser
	YMatrix       IYMatrix
	ZIP           IZIP

	obj      *altdss.AltDSS
	log      logging.Logger
	cfg      dssconfig.Config
	prime    bool
	disposed bool
}

// Option customizes an engine wrapper created by New.
type Option func(*IDSS)

// WithLogger sets the logger used by the context and every context created
// from it through NewContext.
func WithLogger(log logging.Logger) Option {
	return func(d *IDSS) { d.log = log }
}

// New wraps the prime (default) DSS engine instance and applies cfg.
func New(cfg dssconfig.Config, opts ...Option) (*IDSS, error) {
	d := &IDSS{}
	for _, opt := range opts {
		opt(d)
	}
	d.Init(nil)
	if err := d.Configure(cfg); err != nil {
		return nil, err
	}
	return d, nil
}

// Initialize all structures of the classic DSS API.
//
// A nil ctxPtr selects the prime instance. For creating new independent DSS
// instances, use NewContext.
func (d *IDSS) Init(ctxPtr unsafe.Pointer) {
	if ctxPtr == nil {
		ctxPtr = C.ctx_Get_Prime()
		d.prime = true
	}
	C.ctx_DSS_Start(ctxPtr, 0)
	if d.log == nil {
		d.log = logging.New(nil)
	}

	ctx := newContext(ctxPtr, d.log)
	d.bind(ctx)
	d.ActiveCircuit.bind(ctx)
	d.Circuits.bind(ctx)
	d.Error.bind(ctx)
	d.Text.bind(ctx)
	d.DSSProgress.bind(ctx)
	d.ActiveClass.bind(ctx)
	d.Executive.bind(ctx)
	d.Parser.bind(ctx)
	d.YMatrix.bind(ctx)
	d.ZIP.bind(ctx)
	ctx.log.Debug(context.Background(), "context initialized", "prime", d.prime)
}

// ID identifies the context in log output.
func (d *IDSS) ID() uuid.UUID { return d.ctx.id }

// Logger returns the context's logger, already tagged with its ID.
func (d *IDSS) Logger() logging.Logger { return d.ctx.log }

// Configure applies the engine options in cfg. Unset options keep the
// current engine value.
func (d *IDSS) Configure(cfg dssconfig.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	toggles := []struct {
		name  string
		value *bool
		set   func(bool) error
	}{
		{"allow_forms", cfg.AllowForms, d.Set_AllowForms},
		{"allow_editor", cfg.AllowEditor, d.Set_AllowEditor},
		{"allow_change_dir", cfg.AllowChangeDir, d.Set_AllowChangeDir},
		{"allow_dos_cmd", cfg.AllowDOScmd, d.Set_AllowDOScmd},
		{"com_error_results", cfg.COMErrorResults, d.Set_COMErrorResults},
		{"legacy_models", cfg.LegacyModels, d.Set_LegacyModels},
	}
	for _, t := range toggles {
		if t.value == nil {
			continue
		}
		if err := t.set(*t.value); err != nil {
			return fmt.Errorf("%s: %w", t.name, err)
		}
	}
	if flags, ok, _ := cfg.Compat(); ok {
		if err := d.Set_CompatFlags(flags); err != nil {
			return fmt.Errorf("compat_flags: %w", err)
		}
	}
	if style, ok, _ := cfg.NameStyle(); ok {
		if err := d.Set_PropertyNameStyle(style); err != nil {
			return fmt.Errorf("property_name_style: %w", err)
		}
	}
	if cfg.DataPath != "" {
		if err := d.Set_DataPath(cfg.DataPath); err != nil {
			return fmt.Errorf("data_path: %w", err)
		}
	}
	d.cfg = cfg
	d.ctx.log.Debug(context.Background(), "engine configured",
		"compat_flags", cfg.CompatFlags, "property_name_style", cfg.PropertyNameStyle, "data_path", cfg.DataPath)
	return nil
}

// Creates a new DSS engine context.
// A DSS Context encapsulates most of the global state of the original OpenDSS engine,
// allowing the user to create multiple instances in the same process. By creating contexts
// manually, the management of threads and potential issues should be handled by the user.
//
// The new context inherits the logger and configuration of d.
//
// (API Extension)
func (d *IDSS) NewContext() (*IDSS, error) {
	ptr := C.ctx_New()
	if ptr == nil {
		return nil, dsserr.ErrContextCreate
	}
	n := &IDSS{log: d.log}
	n.Init(ptr)
	if err := n.Configure(d.cfg); err != nil {
		n.Dispose()
		return nil, err
	}
	n.ctx.log.Info(context.Background(), "context created", "parent", d.ctx.id.String())
	return n, nil
}

// Dispose releases a context created with NewContext. The circuit and all
// its objects are freed immediately; every later call through d, its
// interfaces or its Obj API returns dsserr.ErrDisposed. The emptied native
// context itself is freed once nothing references it anymore.
//
// The prime instance is never released. Calling Dispose more than once is a
// no-op.
//
// (API Extension)
func (d *IDSS) Dispose() error {
	if d.prime || d.disposed {
		return nil
	}
	d.disposed = true
	C.ctx_DSS_ClearAll(d.ptr)
	err := d.ctx.err()
	d.ctx.disposed = true
	runtime.SetFinalizer(d.ctx, (*dssContext).release)
	if err != nil {
		d.ctx.log.Warn(context.Background(), "context disposed with error", "error", err)
		return fmt.Errorf("dispose: %w", err)
	}
	d.ctx.log.Info(context.Background(), "context disposed")
	return nil
}

func (d *IDSS) NewCircuit(name string) (*ICircuit, error) {
	if err := d.ctx.withString(name, func(cs *C.char) { C.ctx_DSS_NewCircuit(d.ptr, cs) }); err != nil {
		return nil, err
	}
	return &d.ActiveCircuit, nil
}

// Controls some compatibility flags introduced to toggle some behavior from the official OpenDSS.
//
// **THESE FLAGS ARE GLOBAL, affecting all DSS engines in the process.**
//
// These flags may change for each version of DSS C-API, but the same value will not be reused. That is,
// when we remove a compatibility flag, it will have no effect but will also not affect anything else
// besides raising an error if the user tries to toggle a flag that was available in a previous version.
//
// Related enumeration: enums.CompatFlags
//
// (API Extension)
func (d *IDSS) Get_CompatFlags() (enums.CompatFlags, error) {
	return enums.CompatFlags(C.ctx_DSS_Get_CompatFlags(d.ptr)), d.ctx.err()
}

func (d *IDSS) Set_CompatFlags(value enums.CompatFlags) error {
	C.ctx_DSS_Set_CompatFlags(d.ptr, C.uint32_t(value))
	return d.ctx.err()
}

// Sets the naming convention for the DSS properties, affecting the property
// names returned by the engine and JSON exports.
//
// (API Extension)
func (d *IDSS) Set_PropertyNameStyle(value enums.DSSPropertyNameStyle) error {
	C.ctx_DSS_SetPropertyNameStyle(d.ptr, C.int32_t(value))
	return d.ctx.err()
}
