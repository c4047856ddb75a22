package sqltype

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Canonical produces a deterministic rendering of a type for golden files
// and the decision log. It differs from String in one way: column names are
// NFC normalized, so two rows whose names are the same characters in
// different Unicode compositions render identically.
//
// CRITICAL: this is the only rendering that should be compared across
// process boundaries (goldens, decision-log replay).
func Canonical(t Type) string {
	switch v := t.(type) {
	case Scalar:
		return v.String()
	case *Row:
		var b strings.Builder
		b.WriteString("ROW(")
		for i := 0; i < v.FieldCount(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			f := v.Field(i)
			b.WriteString(norm.NFC.String(f.Name))
			b.WriteString(" ")
			b.WriteString(Canonical(f.Type))
		}
		b.WriteString(")")
		return b.String()
	default:
		// Type is sealed; unreachable.
		return t.String()
	}
}
