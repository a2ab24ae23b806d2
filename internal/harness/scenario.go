// Package harness runs declarative conversion scenarios against the
// chrono scales and compares their rendered results to golden files.
//
// A scenario is a YAML file naming a sequence of steps; each step builds a
// timestamp in some scale and applies one operation. The runner renders
// every result as a stable text line, so goldie can diff whole scenarios
// at once and a golden update shows exactly which conversions moved.
package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Scenario is a named list of conversion steps.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Steps       []Step `yaml:"steps"`
}

// Step describes one operation on one timestamp.
type Step struct {
	// Op selects the operation: convert, round, add, sub, mjd, jd or
	// gps-weeks.
	Op string `yaml:"op"`

	// Scale names the scale the input timestamp is expressed in.
	Scale string `yaml:"scale"`

	// Days and Secs form the input timestamp. Secs is a decimal literal
	// so fractional seconds survive YAML intact.
	Days int64  `yaml:"days"`
	Secs string `yaml:"secs"`

	// To names the target scale for convert, and the day-numbering scale
	// for mjd/jd (defaulting to Scale).
	To string `yaml:"to,omitempty"`

	// Prec is the precision for round.
	Prec int `yaml:"prec,omitempty"`

	// Span is the seconds to add or subtract.
	Span string `yaml:"span,omitempty"`

	// TZDelta shifts mjd/jd scale-natively by whole seconds.
	TZDelta string `yaml:"tz_delta,omitempty"`
}

// Load reads a single scenario file.
func Load(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if s.Name == "" {
		return nil, fmt.Errorf("scenario %s has no name", path)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("scenario %s has no steps", path)
	}
	return &s, nil
}

// LoadDir reads every *.yaml scenario under dir, sorted by file name so
// runs are deterministic.
func LoadDir(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	scenarios := make([]*Scenario, 0, len(paths))
	for _, p := range paths {
		s, err := Load(p)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}
