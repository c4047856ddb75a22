package sema

import (
	"fmt"

	"github.com/roach88/relcheck/internal/algebra"
	"github.com/roach88/relcheck/internal/sqltype"
)

// Operand pairs a syntax node with its already-resolved type. Resolution
// itself (name lookup, expression typing) happens upstream; the semantic
// layer only reads the pairing.
type Operand struct {
	Node algebra.Node
	Type sqltype.Type
}

// CallBinding binds one operator invocation to its typed operand list in a
// specific validation context. It is the sole input of an OperandChecker:
// it exposes the operand shapes, the syntax nodes for error locations, the
// promotion lattice, and a factory for located errors.
//
// A CallBinding is read-only after construction. Checkers never mutate it.
type CallBinding struct {
	operator string
	operands []Operand
	lattice  sqltype.Lattice
}

// NewCallBinding creates a binding for the named operator. A nil lattice
// defaults to sqltype.DefaultLattice.
func NewCallBinding(operator string, lattice sqltype.Lattice, operands ...Operand) *CallBinding {
	if lattice == nil {
		lattice = sqltype.DefaultLattice{}
	}
	b := &CallBinding{
		operator: operator,
		operands: make([]Operand, len(operands)),
		lattice:  lattice,
	}
	copy(b.operands, operands)
	return b
}

// Operator returns the operator's display name (e.g. "UNION").
func (b *CallBinding) Operator() string {
	return b.operator
}

// OperandCount returns the number of operands bound to the call.
func (b *CallBinding) OperandCount() int {
	return len(b.operands)
}

// OperandType returns the resolved type of operand i.
func (b *CallBinding) OperandType(i int) sqltype.Type {
	return b.operands[i].Type
}

// OperandNode returns the syntax node of operand i.
func (b *CallBinding) OperandNode(i int) algebra.Node {
	return b.operands[i].Node
}

// Lattice returns the least-restrictive-type capability for this context.
func (b *CallBinding) Lattice() sqltype.Lattice {
	return b.lattice
}

// NewError creates a ValidationError located at node. A nil node produces
// an unlocated error.
func (b *CallBinding) NewError(node algebra.Node, code, format string, args ...any) *ValidationError {
	pos := algebra.Position{}
	if node != nil {
		pos = node.Pos()
	}
	return b.newErrorAt(pos, code, format, args...)
}

func (b *CallBinding) newErrorAt(pos algebra.Position, code, format string, args ...any) *ValidationError {
	return &ValidationError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
	}
}
