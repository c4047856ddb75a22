package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/relcheck/internal/sqltype"
)

func TestColBuilders(t *testing.T) {
	assert.Equal(t,
		sqltype.Field{Name: "id", Type: sqltype.Scalar{Kind: sqltype.KindInt}},
		IntCol("id"))
	assert.Equal(t,
		sqltype.Field{Name: "name", Type: sqltype.Scalar{Kind: sqltype.KindVarchar}},
		VarcharCol("name"))
	assert.Equal(t,
		sqltype.Field{Name: "when", Type: sqltype.Scalar{Kind: sqltype.KindDate, Nullable: true}},
		NullableCol("when", sqltype.KindDate))
}
