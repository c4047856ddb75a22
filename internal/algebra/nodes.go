package algebra

import "fmt"

// Position is a 1-based source location. The zero value means "unknown",
// which renders as no location at all rather than 0:0.
type Position struct {
	Line int
	Col  int
}

// IsValid reports whether the position carries a real location.
func (p Position) IsValid() bool {
	return p.Line > 0
}

// String implements fmt.Stringer.
func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Node represents a syntax construct the validator can attach an error to.
//
// This is a sealed interface - only types in this package implement it.
type Node interface {
	Pos() Position

	syntaxNode() // Marker method - seals interface to this package
}

// SetOpKind identifies a binary set operator.
type SetOpKind int

const (
	Union SetOpKind = iota
	UnionAll
	Intersect
	IntersectAll
	Except
	ExceptAll
)

// String returns the SQL keyword for the set operation kind.
func (k SetOpKind) String() string {
	switch k {
	case Union:
		return "UNION"
	case UnionAll:
		return "UNION ALL"
	case Intersect:
		return "INTERSECT"
	case IntersectAll:
		return "INTERSECT ALL"
	case Except:
		return "EXCEPT"
	case ExceptAll:
		return "EXCEPT ALL"
	default:
		return fmt.Sprintf("SetOpKind(%d)", int(k))
	}
}

// ColumnItem is a single entry of a projection list.
type ColumnItem struct {
	Name     string
	Position Position
}

func (*ColumnItem) syntaxNode() {}

// Pos implements Node.
func (c *ColumnItem) Pos() Position { return c.Position }

// TableRef names a relation used as a set-operation operand directly
// (e.g. a named view), as opposed to a nested sub-select.
type TableRef struct {
	Name     string
	Position Position
}

func (*TableRef) syntaxNode() {}

// Pos implements Node.
func (t *TableRef) Pos() Position { return t.Position }

// Select is a sub-select operand. Items is the projection list; arity
// errors against a Select are located at the projection list rather than
// the whole sub-select, so the message points at the actual column list.
type Select struct {
	Items    []*ColumnItem
	From     *TableRef
	Position Position
}

func (*Select) syntaxNode() {}

// Pos implements Node.
func (s *Select) Pos() Position { return s.Position }

// SelectListPos returns the position of the projection list: the first
// item's position when present, else the select's own.
func (s *Select) SelectListPos() Position {
	if len(s.Items) > 0 {
		return s.Items[0].Position
	}
	return s.Position
}

// SetOp is a binary set operation over two operand nodes.
type SetOp struct {
	Kind     SetOpKind
	Left     Node
	Right    Node
	Position Position
}

func (*SetOp) syntaxNode() {}

// Pos implements Node.
func (s *SetOp) Pos() Position { return s.Position }

// SelectListItem returns the i'th projection item of node when node is a
// sub-select with enough items, and node itself otherwise. Locators for
// per-column diagnostics use this so a column mismatch points at the
// column item instead of the whole operand.
func SelectListItem(node Node, i int) Node {
	if sel, ok := node.(*Select); ok && i >= 0 && i < len(sel.Items) {
		return sel.Items[i]
	}
	return node
}
