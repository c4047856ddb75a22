package sqltype

import "fmt"

// ColumnSpec is the serializable form of one row column, as written in
// scenario files, CUE cases, and the decision log. Type uses the spellings
// accepted by ParseScalar (e.g. "INT", "VARCHAR NULL").
type ColumnSpec struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// RowFromSpecs builds a Row from serialized column specs.
func RowFromSpecs(cols []ColumnSpec) (*Row, error) {
	fields := make([]Field, len(cols))
	for i, c := range cols {
		s, err := ParseScalar(c.Type)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", c.Name, err)
		}
		fields[i] = Field{Name: c.Name, Type: s}
	}
	return NewRow(fields...), nil
}

// SpecsFromRow is the inverse of RowFromSpecs for rows of scalar columns.
// Row-valued columns render through String and will not round-trip.
func SpecsFromRow(row *Row) []ColumnSpec {
	cols := make([]ColumnSpec, row.FieldCount())
	for i := range cols {
		f := row.Field(i)
		cols[i] = ColumnSpec{Name: f.Name, Type: f.Type.String()}
	}
	return cols
}
