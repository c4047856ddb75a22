package sema

import (
	"fmt"

	"github.com/roach88/relcheck/internal/algebra"
	"github.com/roach88/relcheck/internal/render"
	"github.com/roach88/relcheck/internal/sqltype"
)

// SetOpChecker is the operand strategy for the binary set operators
// (UNION, INTERSECT, EXCEPT and their ALL variants). Both operands must be
// row-shaped with the same number of columns, and each pair of
// corresponding columns must have a least-restrictive common type.
//
// Set operations are binary (for now): Check panics on a binding with an
// operand count other than 2, and on an operand whose resolved type is not
// a row. Those are contract breaches by the upstream resolver, never
// user-facing validation failures.
type SetOpChecker struct{}

var _ OperandChecker = SetOpChecker{}

// Check implements OperandChecker.
func (c SetOpChecker) Check(b *CallBinding, strict bool) (bool, error) {
	if fail := c.check(b); fail != nil {
		if strict {
			return false, fail
		}
		return false, nil
	}
	return true, nil
}

// check runs the compatibility decision and returns nil when the operands
// are union-compatible. Order is fixed: arity first, then columns in
// strictly ascending order, stopping at the first failing column.
func (c SetOpChecker) check(b *CallBinding) *ValidationError {
	if n := b.OperandCount(); n != 2 {
		panic(fmt.Sprintf("set operations are binary (for now): got %d operands", n))
	}

	rows := make([]*sqltype.Row, 2)
	for i := range rows {
		argType := b.OperandType(i)
		row, ok := argType.(*sqltype.Row)
		if !ok {
			panic(fmt.Sprintf("set operation operand %d must resolve to a row type, got %s", i, argType))
		}
		rows[i] = row
	}

	// Each operand must have the same number of columns.
	colCount := rows[0].FieldCount()
	if rows[1].FieldCount() != colCount {
		node := b.OperandNode(1)
		msg := fmt.Sprintf("operands of %s must have the same number of columns: %d vs %d",
			b.Operator(), colCount, rows[1].FieldCount())
		if sel, ok := node.(*algebra.Select); ok {
			// Point at the column list, not the whole sub-select.
			return b.newErrorAt(sel.SelectListPos(), ErrColumnCountMismatch, "%s", msg)
		}
		return b.NewError(node, ErrColumnCountMismatch, "%s", msg)
	}

	// The columns must be pairwise union-compatible: for each ordinal,
	// the slice of both operands' types at that ordinal must have a
	// least-restrictive type.
	for i := 0; i < colCount; i++ {
		slice := []sqltype.Type{rows[0].Field(i).Type, rows[1].Field(i).Type}
		if _, ok := b.Lattice().LeastRestrictive(slice); !ok {
			fail := b.NewError(
				algebra.SelectListItem(b.OperandNode(0), i),
				ErrColumnTypeMismatch,
				"column %d of %s has incompatible types: %s versus %s",
				i+1, // 1-based in user-facing messages
				b.Operator(), slice[0], slice[1])
			fail.Ordinal = i + 1
			return fail
		}
	}

	return nil
}

// OperandCountRange implements OperandChecker. Always exactly 2; this is a
// static contract, not computed from any binding.
func (SetOpChecker) OperandCountRange() OperandCountRange {
	return CountOf(2)
}

// AllowedSignatures implements OperandChecker.
func (SetOpChecker) AllowedSignatures(opName string) string {
	return render.BinarySignature(opName)
}
