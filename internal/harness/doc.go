// Package harness runs declarative compatibility scenarios against the
// set-operation checker.
//
// A scenario is a YAML file naming an operator and the row shapes of its
// two operands, with an optional expected outcome:
//
//	name: union-widening
//	operator: UNION
//	left:
//	  - {name: id, type: INT}
//	right:
//	  - {name: id, type: BIGINT}
//	expect:
//	  compatible: true
//
// Run produces a deterministic Report; RunWithGolden compares the report
// against a golden file, so a change in checker behavior shows up as a
// golden diff rather than a silent drift. The harness also cross-checks
// strict and speculative mode on every run and fails hard if they ever
// disagree.
package harness
