// Package enums mirrors the enumerations declared in the DSS C-API headers.
//
// Values are bit-exact with the native library; names follow the
// COM/DSS C-API spelling (`Type_Member`).
package enums

type ActionCodes int32

const (
	ActionCodes_none    ActionCodes = 0 // No action
	ActionCodes_Open    ActionCodes = 1 // Open a switch
	ActionCodes_Close   ActionCodes = 2 // Close a switch
	ActionCodes_Reset   ActionCodes = 3 // Back to the shelf state (unlocked, closed)
	ActionCodes_Lock    ActionCodes = 4 // Block manual and automatic operation
	ActionCodes_Unlock  ActionCodes = 5 // Allow manual and automatic operation
	ActionCodes_TapUp   ActionCodes = 6 // Regulator tap up
	ActionCodes_TapDown ActionCodes = 7 // Regulator tap down
)

// AltDSSEvent codes. The Legacy_* events exist in the COM implementation,
// the others are DSS C-API extensions.
type AltDSSEvent int32

const (
	AltDSSEvent_Legacy_InitControls  AltDSSEvent = 0
	AltDSSEvent_Legacy_CheckControls AltDSSEvent = 1
	AltDSSEvent_Legacy_StepControls  AltDSSEvent = 2
	AltDSSEvent_Clear                AltDSSEvent = 3
	AltDSSEvent_ReprocessBuses       AltDSSEvent = 4
	AltDSSEvent_BuildSystemY         AltDSSEvent = 5
)

type AutoAddTypes int32

const (
	AutoAddTypes_AddGen AutoAddTypes = 1
	AutoAddTypes_AddCap AutoAddTypes = 2
)

type CapControlModes int32

const (
	CapControlModes_Current CapControlModes = 0 // ON/OFF settings on CT secondary
	CapControlModes_Voltage CapControlModes = 1 // ON/OFF settings on PT secondary base
	CapControlModes_KVAR    CapControlModes = 2 // ON/OFF settings on PT/CT base
	CapControlModes_Time    CapControlModes = 3 // ON/OFF settings in seconds from midnight
	CapControlModes_PF      CapControlModes = 4 // ON/OFF settings as power factor, negative for leading
)

type CktModels int32

const (
	CktModels_Multiphase  CktModels = 0
	CktModels_PositiveSeq CktModels = 1
)

type ControlModes int32

const (
	ControlModes_Static    ControlModes = 0
	ControlModes_Event     ControlModes = 1
	ControlModes_Time      ControlModes = 2
	ControlModes_Multirate ControlModes = 3
	ControlModes_Off       ControlModes = -1
)

// CoreType is the transformer core type.
type CoreType int32

const (
	CoreType_shell        CoreType = 0
	CoreType_one_phase    CoreType = 1
	CoreType_three_leg    CoreType = 3
	CoreType_four_leg     CoreType = 4
	CoreType_five_leg     CoreType = 5
	CoreType_core_1_phase CoreType = 9
)

// CompatFlags toggles engine behavior back to the official OpenDSS one.
// Flags are combined with bitwise OR.
type CompatFlags uint32

const (
	// Skip NaN checks in the inner solution loop.
	CompatFlags_NoSolverFloatChecks CompatFlags = 1

	// Use the lower precision sequence/phase transform matrices of the
	// official implementation.
	CompatFlags_BadPrecision CompatFlags = 2

	// InvControl behavior introduced in OpenDSS 9.6.1.1.
	CompatFlags_InvControl9611 CompatFlags = 4

	// Keep "CalcVoltageBases" active in scripts written by "save circuit".
	CompatFlags_SaveCalcVoltageBases CompatFlags = 8

	// Lines API operates on the active circuit element instead of the
	// active line.
	CompatFlags_ActiveLine CompatFlags = 16

	// Do not mark invalidated property values as unset.
	CompatFlags_NoPropertyTracking CompatFlags = 32

	// Skip the side-effects omitted by some official API functions
	// (mostly Loads and Generators).
	CompatFlags_SkipSideEffects CompatFlags = 64
)

// JSONFlags controls the JSON exports (ToJSON on circuits, elements and
// batches). Flags are combined with bitwise OR.
type JSONFlags int32

const (
	JSONFlags_Full               JSONFlags = 1   // all properties, filled or not
	JSONFlags_SkipRedundant      JSONFlags = 2   // skip redundant properties
	JSONFlags_EnumAsInt          JSONFlags = 4   // enums as integers
	JSONFlags_FullNames          JSONFlags = 8   // names include the class
	JSONFlags_Pretty             JSONFlags = 16  // indented output
	JSONFlags_ExcludeDisabled    JSONFlags = 32  // collections only
	JSONFlags_SkipDSSClass       JSONFlags = 64  // omit "DSSClass"
	JSONFlags_LowercaseKeys      JSONFlags = 128 // lowercase property names
	JSONFlags_IncludeDefaultObjs JSONFlags = 256 // include unchanged default objects
)

// DSSPropertyNameStyle selects the capitalization of property names.
type DSSPropertyNameStyle int32

const (
	DSSPropertyNameStyle_Modern    DSSPropertyNameStyle = 0
	DSSPropertyNameStyle_Lowercase DSSPropertyNameStyle = 1
	DSSPropertyNameStyle_Legacy    DSSPropertyNameStyle = 2
)

type GeneratorStatus int32

const (
	GeneratorStatus_Variable GeneratorStatus = 0
	GeneratorStatus_Fixed    GeneratorStatus = 1
)

type LineUnits int32

const (
	LineUnits_none  LineUnits = 0
	LineUnits_Miles LineUnits = 1
	LineUnits_kFt   LineUnits = 2
	LineUnits_km    LineUnits = 3
	LineUnits_meter LineUnits = 4
	LineUnits_ft    LineUnits = 5
	LineUnits_inch  LineUnits = 6
	LineUnits_cm    LineUnits = 7
	LineUnits_mm    LineUnits = 8
)

type LoadModels int32

const (
	LoadModels_ConstPQ      LoadModels = 1
	LoadModels_ConstZ       LoadModels = 2
	LoadModels_Motor        LoadModels = 3
	LoadModels_CVR          LoadModels = 4
	LoadModels_ConstI       LoadModels = 5
	LoadModels_ConstPFixedQ LoadModels = 6
	LoadModels_ConstPFixedX LoadModels = 7
	LoadModels_ZIPV         LoadModels = 8
)

type LoadStatus int32

const (
	LoadStatus_Variable LoadStatus = 0
	LoadStatus_Fixed    LoadStatus = 1
	LoadStatus_Exempt   LoadStatus = 2
)

// MonitorModes values 0..3 select what is recorded; 16, 32 and 64 are
// flags added on top.
type MonitorModes int32

const (
	MonitorModes_VI        MonitorModes = 0
	MonitorModes_Power     MonitorModes = 1
	MonitorModes_Taps      MonitorModes = 2
	MonitorModes_States    MonitorModes = 3
	MonitorModes_Sequence  MonitorModes = 16
	MonitorModes_Magnitude MonitorModes = 32
	MonitorModes_PosOnly   MonitorModes = 64
)

// OCPDevType is the overcurrent protection device type.
type OCPDevType int32

const (
	OCPDevType_none     OCPDevType = 0
	OCPDevType_Fuse     OCPDevType = 1
	OCPDevType_Recloser OCPDevType = 2
	OCPDevType_Relay    OCPDevType = 3
)

// Options is kept for old scripts. Deprecated: use AutoAddTypes, CktModels,
// ControlModes, SolutionLoadModels, SolutionAlgorithms or RandomModes.
type Options int32

const (
	Options_PowerFlow   Options = 1
	Options_Admittance  Options = 2
	Options_NormalSolve Options = 0
	Options_LogNormal   Options = 3
	Options_ControlOFF  Options = -1
)

type RandomModes int32

const (
	RandomModes_Gaussian  RandomModes = 1
	RandomModes_Uniform   RandomModes = 2
	RandomModes_LogNormal RandomModes = 3
)

type SolutionAlgorithms int32

const (
	SolutionAlgorithms_NormalSolve SolutionAlgorithms = 0
	SolutionAlgorithms_NewtonSolve SolutionAlgorithms = 1
)

type SolutionLoadModels int32

const (
	SolutionLoadModels_PowerFlow  SolutionLoadModels = 1
	SolutionLoadModels_Admittance SolutionLoadModels = 2
)

type SolveModes int32

const (
	SolveModes_SnapShot   SolveModes = 0
	SolveModes_Daily      SolveModes = 1
	SolveModes_Yearly     SolveModes = 2
	SolveModes_Monte1     SolveModes = 3
	SolveModes_LD1        SolveModes = 4
	SolveModes_PeakDay    SolveModes = 5
	SolveModes_DutyCycle  SolveModes = 6
	SolveModes_Direct     SolveModes = 7
	SolveModes_MonteFault SolveModes = 8
	SolveModes_FaultStudy SolveModes = 9
	SolveModes_Monte2     SolveModes = 10
	SolveModes_Monte3     SolveModes = 11
	SolveModes_LD2        SolveModes = 12
	SolveModes_AutoAdd    SolveModes = 13
	SolveModes_Dynamic    SolveModes = 14
	SolveModes_Harmonic   SolveModes = 15
	SolveModes_Time       SolveModes = 16
	SolveModes_HarmonicT  SolveModes = 17
)

type SparseSolverOptions int32

const (
	SparseSolverOptions_ReuseNothing               SparseSolverOptions = 0
	SparseSolverOptions_ReuseCompressedMatrix      SparseSolverOptions = 1
	SparseSolverOptions_ReuseSymbolicFactorization SparseSolverOptions = 2
	SparseSolverOptions_ReuseNumericFactorization  SparseSolverOptions = 3

	// Bit flag: clear the YPrim dirty flag of components that never do it
	// themselves.
	SparseSolverOptions_AlwaysResetYPrimInvalid SparseSolverOptions = 268435456
)

type YMatrixModes int32

const (
	YMatrixModes_SeriesOnly  YMatrixModes = 1
	YMatrixModes_WholeMatrix YMatrixModes = 2
)
