// Package algebra provides the syntax nodes the semantic layer attaches
// diagnostics to.
//
// The package deliberately contains no parser: trees are built
// programmatically by the surrounding tooling (case loader, tests). Each
// node carries the source position of the construct it stands for, so a
// validation error can point at the offending operand or column item.
//
// SEALED INTERFACE:
//
// Node is a sealed interface using the marker method pattern. Only types in
// this package implement Node. This enables exhaustive type switches in the
// semantic layer and the renderer:
//
//	switch n := node.(type) {
//	case *Select:
//	    // Locate at the projection list
//	case *SetOp:
//	    // ...
//	}
package algebra
