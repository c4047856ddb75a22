// Package render produces deterministic SQL-flavored text for diagnostics,
// signature templates, and CLI output. It never consults the lattice or
// makes decisions; everything here is descriptive text generation.
package render

import (
	"fmt"
	"strings"

	"github.com/roach88/relcheck/internal/algebra"
	"github.com/roach88/relcheck/internal/sqltype"
)

// BinarySignature renders the generic two-operand signature template for an
// operator display name, e.g. "{0} UNION {1}". The placeholders stand for
// the operand positions and are filled in by the message layer, not here.
func BinarySignature(opName string) string {
	return "{0} " + opName + " {1}"
}

// ScalarSignature renders a scalar operator signature with explicit operand
// placeholders, e.g. "<EXPR> = <EXPR>".
func ScalarSignature(opName string) string {
	return "<EXPR> " + opName + " <EXPR>"
}

// RowTypeSQL renders a row type as a parenthesized column list, the shape
// users see in a projection: "(id INT, name VARCHAR)".
func RowTypeSQL(row *sqltype.Row) string {
	var b strings.Builder
	b.WriteString("(")
	for i := 0; i < row.FieldCount(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		f := row.Field(i)
		fmt.Fprintf(&b, "%s %s", f.Name, f.Type)
	}
	b.WriteString(")")
	return b.String()
}

// NodeSQL renders a syntax node back to SQL-ish text for diagnostics.
// Rendering is lossy (no positions) but deterministic.
func NodeSQL(node algebra.Node) string {
	switch n := node.(type) {
	case *algebra.ColumnItem:
		return n.Name
	case *algebra.TableRef:
		return n.Name
	case *algebra.Select:
		items := make([]string, len(n.Items))
		for i, item := range n.Items {
			items[i] = item.Name
		}
		cols := "*"
		if len(items) > 0 {
			cols = strings.Join(items, ", ")
		}
		if n.From != nil {
			return fmt.Sprintf("SELECT %s FROM %s", cols, n.From.Name)
		}
		return "SELECT " + cols
	case *algebra.SetOp:
		return fmt.Sprintf("%s %s %s", NodeSQL(n.Left), n.Kind, NodeSQL(n.Right))
	default:
		// Node is sealed; unreachable.
		return fmt.Sprintf("%T", node)
	}
}
