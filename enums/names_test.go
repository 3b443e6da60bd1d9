package enums_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dss-extensions/dss-go/enums"
)

func TestSolveModeNames(t *testing.T) {
	assert.Equal(t, "Daily", enums.SolveModes_Daily.String())
	assert.Equal(t, "99", enums.SolveModes(99).String())

	m, err := enums.ParseSolveMode("faultstudy")
	require.NoError(t, err)
	assert.Equal(t, enums.SolveModes_FaultStudy, m)

	m, err = enums.ParseSolveMode("16")
	require.NoError(t, err)
	assert.Equal(t, enums.SolveModes_Time, m)

	_, err = enums.ParseSolveMode("sideways")
	assert.Error(t, err)
}

func TestLineUnitsNames(t *testing.T) {
	u, err := enums.ParseLineUnits("KFT")
	require.NoError(t, err)
	assert.Equal(t, enums.LineUnits_kFt, u)
	assert.Equal(t, "mi", enums.LineUnits_Miles.String())
}

func TestNegativeControlMode(t *testing.T) {
	m, err := enums.ParseControlMode("off")
	require.NoError(t, err)
	assert.Equal(t, enums.ControlModes_Off, m)
	assert.Equal(t, "Off", enums.ControlModes(-1).String())
}

func TestCompatFlags(t *testing.T) {
	f, err := enums.ParseCompatFlags("ActiveLine|SkipSideEffects")
	require.NoError(t, err)
	assert.Equal(t, enums.CompatFlags(16|64), f)
	assert.Equal(t, "ActiveLine|SkipSideEffects", f.String())

	f, err = enums.ParseCompatFlags("")
	require.NoError(t, err)
	assert.Equal(t, enums.CompatFlags(0), f)
	assert.Equal(t, "0", f.String())

	assert.Equal(t, "BadPrecision|1024", (enums.CompatFlags_BadPrecision | 1024).String())
}

func TestJSONFlags(t *testing.T) {
	f, err := enums.ParseJSONFlags("Pretty, FullNames")
	require.NoError(t, err)
	assert.Equal(t, enums.JSONFlags_Pretty|enums.JSONFlags_FullNames, f)

	_, err = enums.ParseJSONFlags("Pretty|Ugly")
	assert.Error(t, err)
}

func TestPropertyNameStyle(t *testing.T) {
	s, err := enums.ParsePropertyNameStyle("Legacy")
	require.NoError(t, err)
	assert.Equal(t, enums.DSSPropertyNameStyle_Legacy, s)
	assert.Equal(t, "lowercase", enums.DSSPropertyNameStyle_Lowercase.String())
}
