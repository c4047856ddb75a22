package sqltype

import (
	"fmt"
	"strings"
)

// ParseKind resolves a scalar type name as written in scenario and case
// files. Matching is case-insensitive; INTEGER is accepted as a synonym
// for INT.
func ParseKind(name string) (Kind, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "BOOLEAN", "BOOL":
		return KindBoolean, nil
	case "INT", "INTEGER":
		return KindInt, nil
	case "BIGINT":
		return KindBigint, nil
	case "DECIMAL":
		return KindDecimal, nil
	case "DOUBLE":
		return KindDouble, nil
	case "CHAR":
		return KindChar, nil
	case "VARCHAR":
		return KindVarchar, nil
	case "DATE":
		return KindDate, nil
	case "TIMESTAMP":
		return KindTimestamp, nil
	case "UNKNOWN":
		return KindUnknown, nil
	default:
		return KindUnknown, fmt.Errorf("unknown scalar type %q", name)
	}
}

// ParseScalar resolves a scalar type spec of the form "TYPE" or
// "TYPE NULL" (e.g. "VARCHAR NULL").
func ParseScalar(spec string) (Scalar, error) {
	s := strings.TrimSpace(spec)
	nullable := false
	if rest, found := strings.CutSuffix(strings.ToUpper(s), " NULL"); found {
		nullable = true
		s = strings.TrimSpace(rest)
	}
	kind, err := ParseKind(s)
	if err != nil {
		return Scalar{}, err
	}
	return Scalar{Kind: kind, Nullable: nullable}, nil
}
