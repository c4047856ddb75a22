// Package sqltype defines the resolved type system of the query language:
// scalar types, row types, and the promotion lattice.
//
// TYPE SHAPE:
//
// Type is a sealed interface with exactly two implementations:
//
//   - Scalar: a kind (INT, VARCHAR, ...) plus nullability
//   - Row: an ordered, named sequence of columns
//
// Row is the only "row-shaped" type. Set-operation operands must resolve
// to a Row; everything else in an expression tree resolves to a Scalar.
//
// PROMOTION LATTICE:
//
// Scalar kinds group into families (numeric, character, datetime, boolean)
// with a fixed widening order inside each family:
//
//	INT < BIGINT < DECIMAL < DOUBLE
//	CHAR < VARCHAR
//	DATE < TIMESTAMP
//
// The Lattice capability answers the single question the semantic layer
// asks: given a sequence of types, what is the narrowest type all of them
// can be implicitly widened to? Kinds in different families have no common
// widened type; that absence is what makes two columns union-incompatible.
//
// All values in this package are immutable after construction. The lattice
// is a pure function of its inputs, so concurrent use needs no locking.
package sqltype
