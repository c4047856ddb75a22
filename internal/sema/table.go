package sema

import (
	"strings"

	"github.com/roach88/relcheck/internal/algebra"
)

// OperatorKind categorizes an operator for reporting purposes.
type OperatorKind int

const (
	SetOperator OperatorKind = iota
	ComparisonOperator
	ArithmeticOperator
)

// String implements fmt.Stringer.
func (k OperatorKind) String() string {
	switch k {
	case SetOperator:
		return "set"
	case ComparisonOperator:
		return "comparison"
	case ArithmeticOperator:
		return "arithmetic"
	default:
		return "unknown"
	}
}

// Operator associates a display name with the operand strategy that
// validates its calls. Operators are immutable after registration.
type Operator struct {
	Name    string
	Kind    OperatorKind
	Checker OperandChecker
}

// Table holds the registered operators. Lookup is case-insensitive on the
// display name. Multiple operators may share a name; resolution probes them
// in registration order.
type Table struct {
	order []*Operator
	byName map[string][]*Operator
}

// NewTable creates an empty operator table.
func NewTable() *Table {
	return &Table{byName: make(map[string][]*Operator)}
}

// Register adds an operator to the table.
func (t *Table) Register(op *Operator) {
	key := strings.ToUpper(op.Name)
	t.order = append(t.order, op)
	t.byName[key] = append(t.byName[key], op)
}

// Lookup returns the operators registered under name, in registration
// order. The slice is shared; callers must not mutate it.
func (t *Table) Lookup(name string) []*Operator {
	return t.byName[strings.ToUpper(name)]
}

// Operators returns all registered operators in registration order.
func (t *Table) Operators() []*Operator {
	out := make([]*Operator, len(t.order))
	copy(out, t.order)
	return out
}

// Resolve selects the operator that accepts the binding's operands, probing
// each candidate with a speculative check. Candidates whose operand count
// range rejects the binding are skipped without probing. When no candidate
// accepts, Resolve returns an ErrNoMatchingSignature error carrying the
// allowed signatures of every candidate.
//
// The probes themselves never raise: failure of one candidate just moves
// resolution to the next.
func (t *Table) Resolve(name string, b *CallBinding) (*Operator, error) {
	candidates := t.Lookup(name)
	if len(candidates) == 0 {
		return nil, &ValidationError{
			Code:    ErrNoMatchingSignature,
			Message: "unknown operator " + name,
		}
	}

	for _, op := range candidates {
		if !op.Checker.OperandCountRange().Accepts(b.OperandCount()) {
			continue
		}
		if ok, _ := op.Checker.Check(b, false); ok {
			return op, nil
		}
	}

	signatures := make([]string, len(candidates))
	for i, op := range candidates {
		signatures[i] = op.Checker.AllowedSignatures(op.Name)
	}
	pos := algebra.Position{}
	if b.OperandCount() > 0 && b.OperandNode(0) != nil {
		pos = b.OperandNode(0).Pos()
	}
	return nil, &ValidationError{
		Code:    ErrNoMatchingSignature,
		Message: "no matching signature for " + name + "; allowed: " + strings.Join(signatures, " | "),
		Pos:     pos,
	}
}

// DefaultTable returns a table pre-registered with the language's binary
// operators: the six set operators, the comparison operators, and the
// arithmetic operators.
func DefaultTable() *Table {
	t := NewTable()

	for _, kind := range []algebra.SetOpKind{
		algebra.Union, algebra.UnionAll,
		algebra.Intersect, algebra.IntersectAll,
		algebra.Except, algebra.ExceptAll,
	} {
		t.Register(&Operator{Name: kind.String(), Kind: SetOperator, Checker: SetOpChecker{}})
	}

	for _, name := range []string{"=", "<>", "<", "<=", ">", ">="} {
		t.Register(&Operator{Name: name, Kind: ComparisonOperator, Checker: ComparisonChecker{}})
	}

	for _, name := range []string{"+", "-", "*", "/"} {
		t.Register(&Operator{Name: name, Kind: ArithmeticOperator, Checker: ArithmeticChecker{}})
	}

	return t
}
