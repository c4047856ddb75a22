package decisionlog

import (
	"context"
	"fmt"

	"github.com/roach88/relcheck/internal/algebra"
	"github.com/roach88/relcheck/internal/sema"
	"github.com/roach88/relcheck/internal/sqltype"
)

// Divergence reports a logged decision whose outcome differs when re-run
// against the current lattice.
type Divergence struct {
	Decision Decision `json:"decision"`
	Outcome  string   `json:"outcome"` // outcome under the current lattice
}

// Replay re-runs every logged decision against the given lattice and
// returns the decisions that now produce a different outcome. An empty
// result means the lattice still agrees with the log.
//
// Replay is read-only: divergences are reported, never written back.
func (l *Log) Replay(ctx context.Context, lattice sqltype.Lattice) ([]Divergence, error) {
	decisions, err := l.List(ctx)
	if err != nil {
		return nil, err
	}

	divergences := []Divergence{}
	for _, d := range decisions {
		outcome, err := Recheck(d, lattice)
		if err != nil {
			return nil, fmt.Errorf("replay decision %s: %w", d.ID, err)
		}
		if outcome != d.Outcome {
			divergences = append(divergences, Divergence{Decision: d, Outcome: outcome})
		}
	}
	return divergences, nil
}

// Recheck runs a logged decision's operand pair through the set-operation
// checker under the given lattice and returns the resulting outcome string.
func Recheck(d Decision, lattice sqltype.Lattice) (string, error) {
	left, err := sqltype.RowFromSpecs(d.Left)
	if err != nil {
		return "", fmt.Errorf("left operand: %w", err)
	}
	right, err := sqltype.RowFromSpecs(d.Right)
	if err != nil {
		return "", fmt.Errorf("right operand: %w", err)
	}

	b := sema.NewCallBinding(d.Operator, lattice,
		sema.Operand{Node: &algebra.TableRef{Name: "left"}, Type: left},
		sema.Operand{Node: &algebra.TableRef{Name: "right"}, Type: right},
	)

	ok, err := sema.SetOpChecker{}.Check(b, true)
	if ok {
		return OutcomeCompatible, nil
	}
	if code := sema.CodeOf(err); code != "" {
		return code, nil
	}
	return "", fmt.Errorf("strict check returned no outcome")
}
