package sqltype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarString(t *testing.T) {
	assert.Equal(t, "INT", Scalar{Kind: KindInt}.String())
	assert.Equal(t, "VARCHAR NULL", Scalar{Kind: KindVarchar, Nullable: true}.String())
}

func TestScalarEqual(t *testing.T) {
	assert.True(t, Scalar{Kind: KindInt}.Equal(Scalar{Kind: KindInt}))
	assert.False(t, Scalar{Kind: KindInt}.Equal(Scalar{Kind: KindBigint}))
	assert.False(t, Scalar{Kind: KindInt}.Equal(Scalar{Kind: KindInt, Nullable: true}))
	assert.False(t, Scalar{Kind: KindInt}.Equal(NewRow()))
}

func TestScalarIsNotRow(t *testing.T) {
	assert.False(t, Scalar{Kind: KindInt}.IsRow())
}

func TestRowFields(t *testing.T) {
	row := NewRow(
		Field{Name: "id", Type: Scalar{Kind: KindInt}},
		Field{Name: "name", Type: Scalar{Kind: KindVarchar}},
	)

	require.Equal(t, 2, row.FieldCount())
	assert.Equal(t, "id", row.Field(0).Name)
	assert.Equal(t, "name", row.Field(1).Name)
	assert.True(t, row.IsRow())
}

func TestRowString(t *testing.T) {
	row := NewRow(
		Field{Name: "id", Type: Scalar{Kind: KindInt}},
		Field{Name: "name", Type: Scalar{Kind: KindVarchar}},
	)
	assert.Equal(t, "ROW(id INT, name VARCHAR)", row.String())
}

func TestRowEqual(t *testing.T) {
	a := NewRow(Field{Name: "id", Type: Scalar{Kind: KindInt}})
	b := NewRow(Field{Name: "id", Type: Scalar{Kind: KindInt}})
	c := NewRow(Field{Name: "id", Type: Scalar{Kind: KindBigint}})
	d := NewRow(Field{Name: "other", Type: Scalar{Kind: KindInt}})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.False(t, a.Equal(Scalar{Kind: KindInt}))
}

func TestNewRowCopiesFields(t *testing.T) {
	fields := []Field{{Name: "id", Type: Scalar{Kind: KindInt}}}
	row := NewRow(fields...)

	// Mutating the input slice must not affect the row.
	fields[0].Name = "mutated"
	assert.Equal(t, "id", row.Field(0).Name)
}

func TestRowFieldsReturnsCopy(t *testing.T) {
	row := NewRow(Field{Name: "id", Type: Scalar{Kind: KindInt}})

	got := row.Fields()
	got[0].Name = "mutated"
	assert.Equal(t, "id", row.Field(0).Name)
}

func TestKindFamilies(t *testing.T) {
	assert.Equal(t, FamilyNumeric, KindInt.Family())
	assert.Equal(t, FamilyNumeric, KindDouble.Family())
	assert.Equal(t, FamilyCharacter, KindVarchar.Family())
	assert.Equal(t, FamilyDatetime, KindTimestamp.Family())
	assert.Equal(t, FamilyBoolean, KindBoolean.Family())
	assert.Equal(t, FamilyUnknown, KindUnknown.Family())
}
