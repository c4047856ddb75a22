// Package sema implements operand type checking for the query language's
// operators, centered on the set-operation compatibility rule.
//
// CHECKER STRATEGIES:
//
// OperandChecker is a capability interface invoked polymorphically by the
// operator framework. Each strategy is a distinct type:
//
//   - SetOpChecker: UNION / INTERSECT / EXCEPT operand compatibility
//   - ComparisonChecker: scalar operands with a common comparison type
//   - ArithmeticChecker: numeric scalar operands
//
// An Operator selects its strategy by configuration (the Checker field);
// the Table resolves a call to an operator by probing candidates with
// speculative checks.
//
// STRICT VS SPECULATIVE:
//
// Every checker runs the same algorithm in both modes; only the failure
// channel differs. Strict mode surfaces the first failure as a located
// *ValidationError. Speculative mode collapses failure to a plain false so
// overload resolution can move on to the next candidate. For any binding,
// speculative mode returns true exactly when strict mode raises no error.
//
// CONTRACT FAULTS:
//
// A checker's own preconditions are the caller's responsibility: handing
// SetOpChecker a binding with three operands, or an operand that did not
// resolve to a row type, panics. These conditions can only arise from a
// broken resolver, so they are assertion failures, not validation errors.
//
// Checks are pure and synchronous: no I/O, no caching, no state across
// calls. A binding plus a lattice fully determines the outcome, so checks
// are trivially safe to run concurrently.
package sema
