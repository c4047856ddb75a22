package sqltype

// Lattice is the least-restrictive-type capability consumed by the semantic
// layer. Given a sequence of candidate types it returns the narrowest type
// every input can be implicitly widened to, or ok=false when no such type
// exists (the inputs are not union-compatible).
//
// Implementations must be pure: no mutation of inputs, no state across
// calls. The default implementation is DefaultLattice.
type Lattice interface {
	LeastRestrictive(types []Type) (Type, bool)
}

// DefaultLattice implements the promotion rules of the language:
//
//   - Scalars of the same family widen to the family member with the
//     greatest rank among the inputs (INT + BIGINT → BIGINT).
//   - UNKNOWN widens to any scalar; the result is nullable.
//   - The result is nullable if any input is nullable.
//   - Scalars of different families have no common type.
//   - Rows widen field-wise when all inputs have the same column count;
//     column names are taken from the first row. A single incompatible
//     column pair means the rows have no common type.
//   - A scalar and a row never have a common type. An empty input sequence
//     has no common type.
//
// The zero value is ready to use.
type DefaultLattice struct{}

var _ Lattice = DefaultLattice{}

// LeastRestrictive implements Lattice.
func (l DefaultLattice) LeastRestrictive(types []Type) (Type, bool) {
	if len(types) == 0 {
		return nil, false
	}

	if _, ok := types[0].(*Row); ok {
		return l.leastRestrictiveRows(types)
	}
	return l.leastRestrictiveScalars(types)
}

// leastRestrictiveScalars folds the scalar widening order over the inputs.
func (DefaultLattice) leastRestrictiveScalars(types []Type) (Type, bool) {
	result := Scalar{Kind: KindUnknown}
	for _, t := range types {
		s, ok := t.(Scalar)
		if !ok {
			// Mixed scalar/row input.
			return nil, false
		}

		if s.Nullable || s.Kind == KindUnknown {
			result.Nullable = true
		}

		switch {
		case s.Kind == KindUnknown:
			// UNKNOWN widens to anything; keep the accumulated kind.
		case result.Kind == KindUnknown:
			result.Kind = s.Kind
		case s.Kind.Family() != result.Kind.Family():
			return nil, false
		case s.Kind.rank() > result.Kind.rank():
			result.Kind = s.Kind
		}
	}
	return result, true
}

// leastRestrictiveRows widens rows field-wise. All inputs must be rows with
// the same column count; names come from the first row.
func (l DefaultLattice) leastRestrictiveRows(types []Type) (Type, bool) {
	first, ok := types[0].(*Row)
	if !ok {
		return nil, false
	}

	rows := make([]*Row, len(types))
	for i, t := range types {
		r, ok := t.(*Row)
		if !ok || r.FieldCount() != first.FieldCount() {
			return nil, false
		}
		rows[i] = r
	}

	fields := make([]Field, first.FieldCount())
	for i := range fields {
		slice := make([]Type, len(rows))
		for j, r := range rows {
			slice[j] = r.Field(i).Type
		}
		widened, ok := l.LeastRestrictive(slice)
		if !ok {
			return nil, false
		}
		fields[i] = Field{Name: first.Field(i).Name, Type: widened}
	}
	return NewRow(fields...), true
}
