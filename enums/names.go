package enums

import (
	"fmt"
	"strconv"
	"strings"
)

type nameTable[T ~int32 | ~uint32] []struct {
	value T
	name  string
}

func (tbl nameTable[T]) name(v T) string {
	for _, e := range tbl {
		if e.value == v {
			return e.name
		}
	}
	return strconv.FormatInt(int64(v), 10)
}

func (tbl nameTable[T]) parse(kind, s string) (T, error) {
	for _, e := range tbl {
		if strings.EqualFold(e.name, s) {
			return e.value, nil
		}
	}
	if n, err := strconv.ParseInt(s, 10, 32); err == nil {
		return T(n), nil
	}
	return 0, fmt.Errorf("enums: invalid %s %q", kind, s)
}

// parseFlags accepts "a|b", "a,b" or a plain integer.
func (tbl nameTable[T]) parseFlags(kind, s string) (T, error) {
	var res T
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' || r == ' ' })
	for _, f := range fields {
		v, err := tbl.parse(kind, f)
		if err != nil {
			return 0, err
		}
		res |= v
	}
	return res, nil
}

func (tbl nameTable[T]) flagsString(v T) string {
	if v == 0 {
		return "0"
	}
	var parts []string
	rest := v
	for _, e := range tbl {
		if e.value != 0 && v&e.value == e.value {
			parts = append(parts, e.name)
			rest &^= e.value
		}
	}
	if rest != 0 {
		parts = append(parts, strconv.FormatInt(int64(rest), 10))
	}
	return strings.Join(parts, "|")
}

var solveModeNames = nameTable[SolveModes]{
	{SolveModes_SnapShot, "SnapShot"},
	{SolveModes_Daily, "Daily"},
	{SolveModes_Yearly, "Yearly"},
	{SolveModes_Monte1, "Monte1"},
	{SolveModes_LD1, "LD1"},
	{SolveModes_PeakDay, "PeakDay"},
	{SolveModes_DutyCycle, "DutyCycle"},
	{SolveModes_Direct, "Direct"},
	{SolveModes_MonteFault, "MonteFault"},
	{SolveModes_FaultStudy, "FaultStudy"},
	{SolveModes_Monte2, "Monte2"},
	{SolveModes_Monte3, "Monte3"},
	{SolveModes_LD2, "LD2"},
	{SolveModes_AutoAdd, "AutoAdd"},
	{SolveModes_Dynamic, "Dynamic"},
	{SolveModes_Harmonic, "Harmonic"},
	{SolveModes_Time, "Time"},
	{SolveModes_HarmonicT, "HarmonicT"},
}

func (m SolveModes) String() string { return solveModeNames.name(m) }

// ParseSolveMode accepts the mode name (case-insensitive) or its number.
func ParseSolveMode(s string) (SolveModes, error) { return solveModeNames.parse("solve mode", s) }

var lineUnitNames = nameTable[LineUnits]{
	{LineUnits_none, "none"},
	{LineUnits_Miles, "mi"},
	{LineUnits_kFt, "kft"},
	{LineUnits_km, "km"},
	{LineUnits_meter, "m"},
	{LineUnits_ft, "ft"},
	{LineUnits_inch, "in"},
	{LineUnits_cm, "cm"},
	{LineUnits_mm, "mm"},
}

func (u LineUnits) String() string { return lineUnitNames.name(u) }

func ParseLineUnits(s string) (LineUnits, error) { return lineUnitNames.parse("line units", s) }

var controlModeNames = nameTable[ControlModes]{
	{ControlModes_Static, "Static"},
	{ControlModes_Event, "Event"},
	{ControlModes_Time, "Time"},
	{ControlModes_Multirate, "Multirate"},
	{ControlModes_Off, "Off"},
}

func (m ControlModes) String() string { return controlModeNames.name(m) }

func ParseControlMode(s string) (ControlModes, error) {
	return controlModeNames.parse("control mode", s)
}

var propertyNameStyleNames = nameTable[DSSPropertyNameStyle]{
	{DSSPropertyNameStyle_Modern, "modern"},
	{DSSPropertyNameStyle_Lowercase, "lowercase"},
	{DSSPropertyNameStyle_Legacy, "legacy"},
}

func (s DSSPropertyNameStyle) String() string { return propertyNameStyleNames.name(s) }

func ParsePropertyNameStyle(s string) (DSSPropertyNameStyle, error) {
	return propertyNameStyleNames.parse("property name style", s)
}

var compatFlagNames = nameTable[CompatFlags]{
	{CompatFlags_NoSolverFloatChecks, "NoSolverFloatChecks"},
	{CompatFlags_BadPrecision, "BadPrecision"},
	{CompatFlags_InvControl9611, "InvControl9611"},
	{CompatFlags_SaveCalcVoltageBases, "SaveCalcVoltageBases"},
	{CompatFlags_ActiveLine, "ActiveLine"},
	{CompatFlags_NoPropertyTracking, "NoPropertyTracking"},
	{CompatFlags_SkipSideEffects, "SkipSideEffects"},
}

func (f CompatFlags) String() string { return compatFlagNames.flagsString(f) }

// ParseCompatFlags parses a list such as "ActiveLine|SkipSideEffects".
func ParseCompatFlags(s string) (CompatFlags, error) {
	return compatFlagNames.parseFlags("compat flag", s)
}

var jsonFlagNames = nameTable[JSONFlags]{
	{JSONFlags_Full, "Full"},
	{JSONFlags_SkipRedundant, "SkipRedundant"},
	{JSONFlags_EnumAsInt, "EnumAsInt"},
	{JSONFlags_FullNames, "FullNames"},
	{JSONFlags_Pretty, "Pretty"},
	{JSONFlags_ExcludeDisabled, "ExcludeDisabled"},
	{JSONFlags_SkipDSSClass, "SkipDSSClass"},
	{JSONFlags_LowercaseKeys, "LowercaseKeys"},
	{JSONFlags_IncludeDefaultObjs, "IncludeDefaultObjs"},
}

func (f JSONFlags) String() string { return jsonFlagNames.flagsString(f) }

func ParseJSONFlags(s string) (JSONFlags, error) { return jsonFlagNames.parseFlags("JSON flag", s) }
