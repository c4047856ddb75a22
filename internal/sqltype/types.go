package sqltype

import (
	"fmt"
	"strings"
)

// Type is a sealed interface representing a resolved query type.
// Only Scalar and Row implement it. The marker method pattern prevents
// external implementations and enables exhaustive type switches in the
// semantic layer.
type Type interface {
	// String returns a SQL-flavored rendering (e.g. "VARCHAR", "ROW(id INT)").
	String() string

	// Equal reports structural equality, including nullability.
	Equal(other Type) bool

	// IsRow reports whether the type is row-shaped (a composite of named
	// columns) as opposed to a scalar.
	IsRow() bool

	typeNode() // Marker method - seals interface to this package
}

// Kind identifies a scalar type within the promotion lattice.
type Kind int

const (
	// KindUnknown is the type of an untyped expression (e.g. a bare NULL
	// literal). It widens to any other scalar kind.
	KindUnknown Kind = iota
	KindBoolean
	KindInt
	KindBigint
	KindDecimal
	KindDouble
	KindChar
	KindVarchar
	KindDate
	KindTimestamp
)

// Family groups scalar kinds that share a widening order.
// Kinds in different families have no common widened type.
type Family int

const (
	FamilyUnknown Family = iota
	FamilyBoolean
	FamilyNumeric
	FamilyCharacter
	FamilyDatetime
)

// kindInfo carries the static lattice data for a scalar kind.
// rank orders kinds within a family: a kind widens to any kind of the same
// family with a greater or equal rank.
type kindInfo struct {
	name   string
	family Family
	rank   int
}

var kinds = map[Kind]kindInfo{
	KindUnknown:   {name: "UNKNOWN", family: FamilyUnknown, rank: 0},
	KindBoolean:   {name: "BOOLEAN", family: FamilyBoolean, rank: 0},
	KindInt:       {name: "INT", family: FamilyNumeric, rank: 1},
	KindBigint:    {name: "BIGINT", family: FamilyNumeric, rank: 2},
	KindDecimal:   {name: "DECIMAL", family: FamilyNumeric, rank: 3},
	KindDouble:    {name: "DOUBLE", family: FamilyNumeric, rank: 4},
	KindChar:      {name: "CHAR", family: FamilyCharacter, rank: 1},
	KindVarchar:   {name: "VARCHAR", family: FamilyCharacter, rank: 2},
	KindDate:      {name: "DATE", family: FamilyDatetime, rank: 1},
	KindTimestamp: {name: "TIMESTAMP", family: FamilyDatetime, rank: 2},
}

// String returns the SQL keyword for the kind.
func (k Kind) String() string {
	if info, ok := kinds[k]; ok {
		return info.name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Family returns the widening family the kind belongs to.
func (k Kind) Family() Family {
	return kinds[k].family
}

// rank returns the position of the kind within its family's widening order.
func (k Kind) rank() int {
	return kinds[k].rank
}

// Scalar is a non-composite type: a kind plus nullability.
type Scalar struct {
	Kind     Kind
	Nullable bool
}

func (Scalar) typeNode() {}

// IsRow implements Type. Scalars are never row-shaped.
func (Scalar) IsRow() bool { return false }

// String implements Type.
func (s Scalar) String() string {
	if s.Nullable {
		return s.Kind.String() + " NULL"
	}
	return s.Kind.String()
}

// Equal implements Type.
func (s Scalar) Equal(other Type) bool {
	o, ok := other.(Scalar)
	return ok && s == o
}

// Field is one named column of a Row.
type Field struct {
	Name string
	Type Type
}

// Row is an ordered, named sequence of columns. It is the only row-shaped
// type; set-operation operands must resolve to a Row.
type Row struct {
	fields []Field
}

func (*Row) typeNode() {}

// NewRow creates a Row from the given fields. The field slice is copied so
// callers cannot mutate the row afterwards.
func NewRow(fields ...Field) *Row {
	r := &Row{fields: make([]Field, len(fields))}
	copy(r.fields, fields)
	return r
}

// IsRow implements Type.
func (*Row) IsRow() bool { return true }

// FieldCount returns the number of columns.
func (r *Row) FieldCount() int {
	return len(r.fields)
}

// Field returns the i'th column. Panics if i is out of range, matching
// slice indexing semantics.
func (r *Row) Field(i int) Field {
	return r.fields[i]
}

// Fields returns a copy of the column list.
func (r *Row) Fields() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}

// String implements Type.
func (r *Row) String() string {
	var b strings.Builder
	b.WriteString("ROW(")
	for i, f := range r.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Name)
		b.WriteString(" ")
		b.WriteString(f.Type.String())
	}
	b.WriteString(")")
	return b.String()
}

// Equal implements Type. Rows are equal when they have the same column
// names and types in the same order.
func (r *Row) Equal(other Type) bool {
	o, ok := other.(*Row)
	if !ok || len(r.fields) != len(o.fields) {
		return false
	}
	for i, f := range r.fields {
		if f.Name != o.fields[i].Name || !f.Type.Equal(o.fields[i].Type) {
			return false
		}
	}
	return true
}
