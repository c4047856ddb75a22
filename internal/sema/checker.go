package sema

import "fmt"

// OperandCountRange describes how many operands a checker accepts. Ranges
// are closed and static: they are a published fact about the checker, not
// computed from any particular binding.
type OperandCountRange struct {
	min int
	max int
}

// CountOf returns a range accepting exactly n operands.
func CountOf(n int) OperandCountRange {
	return OperandCountRange{min: n, max: n}
}

// CountBetween returns a range accepting between min and max operands,
// inclusive.
func CountBetween(min, max int) OperandCountRange {
	return OperandCountRange{min: min, max: max}
}

// Min returns the smallest accepted operand count.
func (r OperandCountRange) Min() int { return r.min }

// Max returns the largest accepted operand count.
func (r OperandCountRange) Max() int { return r.max }

// Accepts reports whether the range admits count operands.
func (r OperandCountRange) Accepts(count int) bool {
	return count >= r.min && count <= r.max
}

// String implements fmt.Stringer.
func (r OperandCountRange) String() string {
	if r.min == r.max {
		return fmt.Sprintf("exactly %d", r.min)
	}
	return fmt.Sprintf("between %d and %d", r.min, r.max)
}

// OperandChecker is the capability interface the operator framework invokes
// polymorphically across checker strategies. Each strategy (set operation,
// comparison, arithmetic, ...) is a distinct implementing type; operators
// select their strategy by configuration, never by inheritance.
type OperandChecker interface {
	// Check decides whether the binding's operands are acceptable.
	//
	// In strict mode a failure is returned as a located *ValidationError
	// and the bool is false; Check never returns (false, nil) in strict
	// mode. In speculative mode (strict=false) failures collapse to a
	// plain false with no error and no location work - the framework is
	// merely probing whether this operator could apply.
	//
	// Violations of a checker's own preconditions (operand count outside
	// its range, a malformed operand shape the upstream resolver must
	// never produce) panic: they are contract breaches by the caller, not
	// user-facing validation failures.
	Check(b *CallBinding, strict bool) (bool, error)

	// OperandCountRange publishes how many operands the checker accepts.
	OperandCountRange() OperandCountRange

	// AllowedSignatures renders a generic signature template for the
	// operator's display name, for use in usage and resolution errors.
	AllowedSignatures(opName string) string
}
