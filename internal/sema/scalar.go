package sema

import (
	"fmt"

	"github.com/roach88/relcheck/internal/render"
	"github.com/roach88/relcheck/internal/sqltype"
)

// ComparisonChecker is the operand strategy for binary comparison operators
// (=, <>, <, <=, >, >=). Both operands must be scalar and must share a
// least-restrictive common type to be compared at.
type ComparisonChecker struct{}

var _ OperandChecker = ComparisonChecker{}

// Check implements OperandChecker.
func (c ComparisonChecker) Check(b *CallBinding, strict bool) (bool, error) {
	if fail := c.check(b); fail != nil {
		if strict {
			return false, fail
		}
		return false, nil
	}
	return true, nil
}

func (c ComparisonChecker) check(b *CallBinding) *ValidationError {
	requireOperandCount(b, 2)

	scalars := make([]sqltype.Type, 2)
	for i := range scalars {
		argType := b.OperandType(i)
		if argType.IsRow() {
			return b.NewError(b.OperandNode(i), ErrNotComparable,
				"operand %d of %s is row-valued; comparison requires scalar operands", i+1, b.Operator())
		}
		scalars[i] = argType
	}

	if _, ok := b.Lattice().LeastRestrictive(scalars); !ok {
		return b.NewError(b.OperandNode(1), ErrNotComparable,
			"cannot compare %s with %s using %s", scalars[0], scalars[1], b.Operator())
	}
	return nil
}

// OperandCountRange implements OperandChecker.
func (ComparisonChecker) OperandCountRange() OperandCountRange {
	return CountOf(2)
}

// AllowedSignatures implements OperandChecker.
func (ComparisonChecker) AllowedSignatures(opName string) string {
	return render.ScalarSignature(opName)
}

// ArithmeticChecker is the operand strategy for binary arithmetic operators
// (+, -, *, /). Both operands must be scalars of the numeric family.
type ArithmeticChecker struct{}

var _ OperandChecker = ArithmeticChecker{}

// Check implements OperandChecker.
func (c ArithmeticChecker) Check(b *CallBinding, strict bool) (bool, error) {
	if fail := c.check(b); fail != nil {
		if strict {
			return false, fail
		}
		return false, nil
	}
	return true, nil
}

func (c ArithmeticChecker) check(b *CallBinding) *ValidationError {
	requireOperandCount(b, 2)

	for i := 0; i < 2; i++ {
		s, ok := b.OperandType(i).(sqltype.Scalar)
		if !ok || (s.Kind.Family() != sqltype.FamilyNumeric && s.Kind != sqltype.KindUnknown) {
			return b.NewError(b.OperandNode(i), ErrNotNumeric,
				"operand %d of %s must be numeric, got %s", i+1, b.Operator(), b.OperandType(i))
		}
	}
	return nil
}

// OperandCountRange implements OperandChecker.
func (ArithmeticChecker) OperandCountRange() OperandCountRange {
	return CountOf(2)
}

// AllowedSignatures implements OperandChecker.
func (ArithmeticChecker) AllowedSignatures(opName string) string {
	return render.ScalarSignature(opName)
}

// requireOperandCount panics when the binding's operand count breaches the
// checker's contract. The resolver filters candidates by operand count
// before invoking Check, so hitting this is a programming error.
func requireOperandCount(b *CallBinding, want int) {
	if got := b.OperandCount(); got != want {
		panic(fmt.Sprintf("%s: expected %d operands, got %d", b.Operator(), want, got))
	}
}
