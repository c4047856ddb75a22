package harness

import (
	"fmt"

	"github.com/roach88/relcheck/internal/algebra"
	"github.com/roach88/relcheck/internal/sema"
	"github.com/roach88/relcheck/internal/sqltype"
)

// Report is the outcome of running one scenario. Field values are
// deterministic functions of the scenario, so reports are safe to compare
// against golden files.
type Report struct {
	Scenario   string   `json:"scenario"`
	Operator   string   `json:"operator"`
	Left       string   `json:"left"`  // canonical row rendering
	Right      string   `json:"right"` // canonical row rendering
	Compatible bool     `json:"compatible"`
	Code       string   `json:"code,omitempty"`    // validation error code on failure
	Detail     string   `json:"detail,omitempty"`  // strict-mode error text on failure
	Widened    []string `json:"widened,omitempty"` // per-column widened types on success

	// Pass indicates the expectation matched (always true without one).
	Pass bool `json:"pass"`

	// Errors lists expectation mismatches. Empty when Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// Run executes a scenario: builds the operand binding, runs the
// set-operation checker in both modes, and evaluates the expectation.
func Run(s *Scenario) (*Report, error) {
	left, err := sqltype.RowFromSpecs(s.Left)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: left operand: %w", s.Name, err)
	}
	right, err := sqltype.RowFromSpecs(s.Right)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: right operand: %w", s.Name, err)
	}

	lattice := sqltype.DefaultLattice{}
	binding := sema.NewCallBinding(s.Operator, lattice,
		sema.Operand{Node: &algebra.TableRef{Name: "left", Position: algebra.Position{Line: 1, Col: 1}}, Type: left},
		sema.Operand{Node: &algebra.TableRef{Name: "right", Position: algebra.Position{Line: 2, Col: 1}}, Type: right},
	)

	checker := sema.SetOpChecker{}
	compatible, strictErr := checker.Check(binding, true)
	speculative, _ := checker.Check(binding, false)

	// Speculative and strict agree on the decision for any binding; a
	// disagreement is a checker bug the harness must surface loudly.
	if speculative != (strictErr == nil) {
		return nil, fmt.Errorf("scenario %s: speculative/strict disagreement", s.Name)
	}

	report := &Report{
		Scenario:   s.Name,
		Operator:   s.Operator,
		Left:       sqltype.Canonical(left),
		Right:      sqltype.Canonical(right),
		Compatible: compatible,
		Pass:       true,
	}

	if strictErr != nil {
		report.Code = sema.CodeOf(strictErr)
		report.Detail = strictErr.Error()
	} else {
		for i := 0; i < left.FieldCount(); i++ {
			widened, ok := lattice.LeastRestrictive(
				[]sqltype.Type{left.Field(i).Type, right.Field(i).Type})
			if !ok {
				return nil, fmt.Errorf("scenario %s: column %d lost its common type after a passing check", s.Name, i+1)
			}
			report.Widened = append(report.Widened, sqltype.Canonical(widened))
		}
	}

	evaluateExpectation(s, report)
	return report, nil
}

// evaluateExpectation compares the observed outcome against the scenario's
// expectation, collecting mismatches into the report.
func evaluateExpectation(s *Scenario, r *Report) {
	if s.Expect == nil {
		return
	}
	if r.Compatible != s.Expect.Compatible {
		r.addError(fmt.Sprintf("expected compatible=%v, got %v", s.Expect.Compatible, r.Compatible))
	}
	if s.Expect.Code != "" && r.Code != s.Expect.Code {
		r.addError(fmt.Sprintf("expected code %s, got %q", s.Expect.Code, r.Code))
	}
}

// addError records an expectation mismatch and fails the report.
func (r *Report) addError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Pass = false
}
