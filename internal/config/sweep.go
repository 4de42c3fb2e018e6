package config

import (
	"fmt"
)

// Range is a half-open integer range [Start, Stop) stepped by Step,
// describing one sweep dimension in MW.
type Range struct {
	Start int `yaml:"start" mapstructure:"start"`
	Stop  int `yaml:"stop" mapstructure:"stop"`
	Step  int `yaml:"step" mapstructure:"step"`
}

// Values materializes the range. A non-positive step yields nil; callers
// are expected to have validated first.
func (r Range) Values() []int {
	if r.Step <= 0 {
		return nil
	}
	var vals []int
	for v := r.Start; v < r.Stop; v += r.Step {
		vals = append(vals, v)
	}
	return vals
}

// Count returns the number of values the range expands to.
func (r Range) Count() int {
	if r.Step <= 0 || r.Stop <= r.Start {
		return 0
	}
	return (r.Stop - r.Start + r.Step - 1) / r.Step
}

// SweepConfig describes one ensemble sweep: three capacity dimensions plus
// the fixed location, load, and generator type shared by every case.
type SweepConfig struct {
	Latitude  float64 `yaml:"latitude" mapstructure:"latitude"`
	Longitude float64 `yaml:"longitude" mapstructure:"longitude"`

	DatacenterLoadMW float64 `yaml:"datacenter_load_mw" mapstructure:"datacenter_load_mw"`
	GeneratorType    string  `yaml:"generator_type" mapstructure:"generator_type"`

	Solar     Range `yaml:"solar" mapstructure:"solar"`
	Storage   Range `yaml:"storage" mapstructure:"storage"`
	Generator Range `yaml:"generator" mapstructure:"generator"`
}

// InputValidationError aborts a whole run before any case is generated.
type InputValidationError struct {
	Field  string
	Reason string
}

func (e *InputValidationError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Reason)
}

// Validate checks the whole-run preconditions. Any violation means the run
// must not start: no cases generated, nothing evaluated.
func (c *SweepConfig) Validate() error {
	for _, dim := range []struct {
		name string
		r    Range
	}{
		{"solar", c.Solar},
		{"storage", c.Storage},
		{"generator", c.Generator},
	} {
		if dim.r.Step <= 0 {
			return &InputValidationError{
				Field:  dim.name + ".step",
				Reason: fmt.Sprintf("step must be > 0, got %d", dim.r.Step),
			}
		}
		if dim.r.Count() == 0 {
			return &InputValidationError{
				Field:  dim.name,
				Reason: fmt.Sprintf("empty sweep: range [%d, %d) step %d expands to no values", dim.r.Start, dim.r.Stop, dim.r.Step),
			}
		}
	}
	if c.DatacenterLoadMW <= 0 {
		return &InputValidationError{
			Field:  "datacenter_load_mw",
			Reason: fmt.Sprintf("must be > 0, got %g", c.DatacenterLoadMW),
		}
	}
	if c.Latitude < -90 || c.Latitude > 90 {
		return &InputValidationError{
			Field:  "latitude",
			Reason: fmt.Sprintf("must be within [-90, 90], got %g", c.Latitude),
		}
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return &InputValidationError{
			Field:  "longitude",
			Reason: fmt.Sprintf("must be within [-180, 180], got %g", c.Longitude),
		}
	}
	if _, ok := Generators[c.GeneratorType]; !ok {
		return &InputValidationError{
			Field:  "generator_type",
			Reason: fmt.Sprintf("unknown generator type %q", c.GeneratorType),
		}
	}
	return nil
}

// CaseCount returns the size of the Cartesian sweep.
func (c *SweepConfig) CaseCount() int {
	return c.Solar.Count() * c.Storage.Count() * c.Generator.Count()
}
