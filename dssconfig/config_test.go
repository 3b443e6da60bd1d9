package dssconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dss-extensions/dss-go/dssconfig"
	"github.com/dss-extensions/dss-go/enums"
)

const runYAML = `
engine:
  allow_forms: false
  allow_change_dir: true
  compat_flags: ActiveLine|SkipSideEffects
  property_name_style: legacy
script: ${DSSGO_TEST_DIR}/master.dss
commands:
  - set maxcontroliter=50
solve: true
mode: daily
output: json
json_flags: Pretty|FullNames
`

func TestParseRunFile(t *testing.T) {
	t.Setenv("DSSGO_TEST_DIR", "/cases/13bus")

	r, err := dssconfig.Parse([]byte(runYAML))
	require.NoError(t, err)

	assert.Equal(t, "/cases/13bus/master.dss", r.Script)
	assert.Equal(t, []string{"set maxcontroliter=50"}, r.Commands)
	require.NotNil(t, r.Engine.AllowForms)
	assert.False(t, *r.Engine.AllowForms)
	require.NotNil(t, r.Engine.AllowChangeDir)
	assert.True(t, *r.Engine.AllowChangeDir)
	assert.Nil(t, r.Engine.AllowEditor)

	flags, set, err := r.Engine.Compat()
	require.NoError(t, err)
	assert.True(t, set)
	assert.Equal(t, enums.CompatFlags_ActiveLine|enums.CompatFlags_SkipSideEffects, flags)

	style, set, err := r.Engine.NameStyle()
	require.NoError(t, err)
	assert.True(t, set)
	assert.Equal(t, enums.DSSPropertyNameStyle_Legacy, style)

	mode, err := r.SolveMode()
	require.NoError(t, err)
	assert.Equal(t, enums.SolveModes_Daily, mode)

	jf, err := r.Flags()
	require.NoError(t, err)
	assert.Equal(t, enums.JSONFlags_Pretty|enums.JSONFlags_FullNames, jf)
}

func TestDefaults(t *testing.T) {
	r, err := dssconfig.Parse([]byte("commands: [\"new circuit.x\"]\n"))
	require.NoError(t, err)
	assert.Equal(t, dssconfig.OutputSummary, r.Output)

	mode, err := r.SolveMode()
	require.NoError(t, err)
	assert.Equal(t, enums.SolveModes_SnapShot, mode)

	_, set, err := r.Engine.Compat()
	require.NoError(t, err)
	assert.False(t, set)
}

func TestValidationErrors(t *testing.T) {
	_, err := dssconfig.Parse([]byte("solve: true\n"))
	assert.ErrorContains(t, err, "script or commands required")

	_, err = dssconfig.Parse([]byte("script: a.dss\noutput: csv\n"))
	assert.ErrorContains(t, err, "invalid output")

	_, err = dssconfig.Parse([]byte("script: a.dss\nengine:\n  compat_flags: Nope\n"))
	assert.Error(t, err)

	_, err = dssconfig.Parse([]byte("script: a.dss\nengine:\n  data_path: /does/not/exist\n"))
	assert.ErrorContains(t, err, "data_path")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("script: x.dss\nengine:\n  data_path: "+dir+"\n"), 0o600))

	r, err := dssconfig.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "x.dss", r.Script)
	assert.Equal(t, dir, r.Engine.DataPath)

	_, err = dssconfig.Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
