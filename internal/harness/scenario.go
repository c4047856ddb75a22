package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/roach88/relcheck/internal/sqltype"
)

// Scenario defines one compatibility test case: an operator and the row
// shapes of its two operands, with an optional expected outcome.
type Scenario struct {
	// Name uniquely identifies this scenario. Also names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Operator is the set operator's display name (e.g. "UNION").
	Operator string `yaml:"operator"`

	// Left and Right are the operand row shapes.
	Left  []sqltype.ColumnSpec `yaml:"left"`
	Right []sqltype.ColumnSpec `yaml:"right"`

	// Expect specifies the expected outcome. If nil, the scenario only
	// records what happened (useful for golden comparison).
	Expect *Expectation `yaml:"expect,omitempty"`
}

// Expectation specifies the expected outcome of a scenario.
type Expectation struct {
	// Compatible is the expected decision.
	Compatible bool `yaml:"compatible"`

	// Code is the expected validation error code when Compatible is
	// false (e.g. "E201"). Empty means any failure code is accepted.
	Code string `yaml:"code,omitempty"`
}

// LoadScenario reads a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &s, nil
}

// LoadScenarioDir loads every *.yaml scenario in a directory, sorted by
// file name for deterministic ordering.
func LoadScenarioDir(dir string) ([]*Scenario, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read scenario dir: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), ".yaml") || strings.HasSuffix(e.Name(), ".yml") {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, p := range paths {
		s, err := LoadScenario(p)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// validate checks the structural requirements of a scenario.
func (s *Scenario) validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(s.Operator) == "" {
		return fmt.Errorf("operator is required")
	}
	if len(s.Left) == 0 || len(s.Right) == 0 {
		return fmt.Errorf("both operands need at least one column")
	}
	return nil
}
