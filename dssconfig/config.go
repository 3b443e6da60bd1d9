// Package dssconfig describes engine options and run files for the DSS
// bindings. Both are plain structs with YAML tags so they can be loaded from
// disk or filled in code.
package dssconfig

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dss-extensions/dss-go/enums"
)

// Config holds the engine options applied when a context is created.
// Nil pointers and empty strings leave the engine default untouched.
type Config struct {
	AllowForms      *bool `yaml:"allow_forms"`
	AllowEditor     *bool `yaml:"allow_editor"`
	AllowChangeDir  *bool `yaml:"allow_change_dir"`
	AllowDOScmd     *bool `yaml:"allow_dos_cmd"`
	COMErrorResults *bool `yaml:"com_error_results"`
	LegacyModels    *bool `yaml:"legacy_models"`

	// CompatFlags lists flag names, e.g. "ActiveLine|SkipSideEffects".
	CompatFlags string `yaml:"compat_flags"`

	// PropertyNameStyle is one of modern, lowercase or legacy.
	PropertyNameStyle string `yaml:"property_name_style"`

	DataPath string `yaml:"data_path"`
}

// Compat returns the parsed compatibility flags and whether any were set.
func (c Config) Compat() (enums.CompatFlags, bool, error) {
	if c.CompatFlags == "" {
		return 0, false, nil
	}
	f, err := enums.ParseCompatFlags(c.CompatFlags)
	return f, err == nil, err
}

// NameStyle returns the parsed property name style and whether it was set.
func (c Config) NameStyle() (enums.DSSPropertyNameStyle, bool, error) {
	if c.PropertyNameStyle == "" {
		return 0, false, nil
	}
	s, err := enums.ParsePropertyNameStyle(c.PropertyNameStyle)
	return s, err == nil, err
}

func (c Config) Validate() error {
	var errs []error
	if _, _, err := c.Compat(); err != nil {
		errs = append(errs, err)
	}
	if _, _, err := c.NameStyle(); err != nil {
		errs = append(errs, err)
	}
	if c.DataPath != "" {
		if fi, err := os.Stat(c.DataPath); err != nil {
			errs = append(errs, fmt.Errorf("data_path: %w", err))
		} else if !fi.IsDir() {
			errs = append(errs, fmt.Errorf("data_path: %s is not a directory", c.DataPath))
		}
	}
	return errors.Join(errs...)
}

// Output formats for a run file.
const (
	OutputSummary = "summary"
	OutputJSON    = "json"
)

// RunFile describes a scripted run for the command line tool.
type RunFile struct {
	Engine Config `yaml:"engine"`

	// Script is compiled with "redirect" before Commands run.
	Script   string   `yaml:"script"`
	Commands []string `yaml:"commands"`

	Solve bool   `yaml:"solve"`
	Mode  string `yaml:"mode"`

	Output    string `yaml:"output"`
	JSONFlags string `yaml:"json_flags"`
}

func (r *RunFile) SolveMode() (enums.SolveModes, error) {
	if r.Mode == "" {
		return enums.SolveModes_SnapShot, nil
	}
	return enums.ParseSolveMode(r.Mode)
}

func (r *RunFile) Flags() (enums.JSONFlags, error) {
	return enums.ParseJSONFlags(r.JSONFlags)
}

func (r *RunFile) Validate() error {
	var errs []error
	if err := r.Engine.Validate(); err != nil {
		errs = append(errs, err)
	}
	if r.Script == "" && len(r.Commands) == 0 {
		errs = append(errs, errors.New("run file: script or commands required"))
	}
	if _, err := r.SolveMode(); err != nil {
		errs = append(errs, err)
	}
	if _, err := r.Flags(); err != nil {
		errs = append(errs, err)
	}
	switch r.Output {
	case "", OutputSummary, OutputJSON:
	default:
		errs = append(errs, fmt.Errorf("run file: invalid output %q", r.Output))
	}
	return errors.Join(errs...)
}

// Parse decodes a run file, expands environment variables in paths and
// validates the result.
func Parse(data []byte) (*RunFile, error) {
	r := &RunFile{}
	if err := yaml.Unmarshal(data, r); err != nil {
		return nil, fmt.Errorf("run file: %w", err)
	}
	r.Script = os.ExpandEnv(r.Script)
	r.Engine.DataPath = os.ExpandEnv(r.Engine.DataPath)
	if r.Output == "" {
		r.Output = OutputSummary
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func Load(path string) (*RunFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}
