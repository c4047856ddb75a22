// Package testutil provides shared row-type builders for tests. Binding
// builders live in the sema tests themselves: hosting them here would make
// this package import sema, which sema's in-package tests could then not
// import back.
package testutil

import "github.com/roach88/relcheck/internal/sqltype"

// Col builds a non-nullable column field of the given kind.
func Col(name string, kind sqltype.Kind) sqltype.Field {
	return sqltype.Field{Name: name, Type: sqltype.Scalar{Kind: kind}}
}

// NullableCol builds a nullable column field of the given kind.
func NullableCol(name string, kind sqltype.Kind) sqltype.Field {
	return sqltype.Field{Name: name, Type: sqltype.Scalar{Kind: kind, Nullable: true}}
}

// IntCol builds an INT column field.
func IntCol(name string) sqltype.Field {
	return Col(name, sqltype.KindInt)
}

// VarcharCol builds a VARCHAR column field.
func VarcharCol(name string) sqltype.Field {
	return Col(name, sqltype.KindVarchar)
}
