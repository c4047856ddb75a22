package sema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/relcheck/internal/algebra"
	"github.com/roach88/relcheck/internal/sqltype"
	"github.com/roach88/relcheck/internal/testutil"
)

func TestDefaultTableRegistersSetOperators(t *testing.T) {
	table := DefaultTable()

	for _, name := range []string{"UNION", "UNION ALL", "INTERSECT", "INTERSECT ALL", "EXCEPT", "EXCEPT ALL"} {
		ops := table.Lookup(name)
		require.Len(t, ops, 1, "operator %s", name)
		assert.Equal(t, SetOperator, ops[0].Kind)
		assert.IsType(t, SetOpChecker{}, ops[0].Checker)
	}
}

func TestTableLookupIsCaseInsensitive(t *testing.T) {
	table := DefaultTable()
	assert.NotEmpty(t, table.Lookup("union"))
	assert.NotEmpty(t, table.Lookup("Union All"))
	assert.Empty(t, table.Lookup("MERGE"))
}

func TestResolveSetOperator(t *testing.T) {
	table := DefaultTable()
	row := sqltype.NewRow(testutil.IntCol("id"))
	b := NewCallBinding("UNION", nil,
		Operand{Node: &algebra.TableRef{Name: "a"}, Type: row},
		Operand{Node: &algebra.TableRef{Name: "b"}, Type: row},
	)

	op, err := table.Resolve("UNION", b)
	require.NoError(t, err)
	assert.Equal(t, "UNION", op.Name)
	assert.Equal(t, SetOperator, op.Kind)
}

func TestResolveUnknownOperator(t *testing.T) {
	table := DefaultTable()
	b := NewCallBinding("NO SUCH", nil)

	_, err := table.Resolve("NO SUCH", b)
	require.Error(t, err)
	assert.Equal(t, ErrNoMatchingSignature, CodeOf(err))
}

func TestResolveIncompatibleOperandsListsSignatures(t *testing.T) {
	table := DefaultTable()
	left := sqltype.NewRow(testutil.IntCol("id"))
	right := sqltype.NewRow(
		testutil.IntCol("id"),
		testutil.VarcharCol("name"),
	)
	b := NewCallBinding("EXCEPT", nil,
		Operand{Node: &algebra.TableRef{Name: "a", Position: algebra.Position{Line: 1, Col: 1}}, Type: left},
		Operand{Node: &algebra.TableRef{Name: "b"}, Type: right},
	)

	_, err := table.Resolve("EXCEPT", b)
	require.Error(t, err)
	assert.Equal(t, ErrNoMatchingSignature, CodeOf(err))
	assert.Contains(t, err.Error(), "{0} EXCEPT {1}")

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, algebra.Position{Line: 1, Col: 1}, ve.Pos)
}

func TestResolveSkipsCandidatesByOperandCount(t *testing.T) {
	// A single operand never reaches SetOpChecker.Check (which would
	// panic): the count range filters the candidate out first.
	table := DefaultTable()
	row := sqltype.NewRow(testutil.IntCol("id"))
	b := NewCallBinding("UNION", nil,
		Operand{Node: &algebra.TableRef{Name: "a"}, Type: row})

	require.NotPanics(t, func() {
		_, err := table.Resolve("UNION", b)
		assert.Error(t, err)
	})
}

func TestResolveProbesOverloadsInOrder(t *testing.T) {
	// Two operators share a name; resolution picks the first whose
	// speculative check accepts.
	table := NewTable()
	table.Register(&Operator{Name: "MINUS", Kind: ArithmeticOperator, Checker: ArithmeticChecker{}})
	table.Register(&Operator{Name: "MINUS", Kind: SetOperator, Checker: SetOpChecker{}})

	row := sqltype.NewRow(testutil.IntCol("id"))
	b := NewCallBinding("MINUS", nil,
		Operand{Node: &algebra.TableRef{Name: "a"}, Type: row},
		Operand{Node: &algebra.TableRef{Name: "b"}, Type: row},
	)

	op, err := table.Resolve("MINUS", b)
	require.NoError(t, err)
	assert.Equal(t, SetOperator, op.Kind, "arithmetic probe fails on row operands, set operator accepts")
}

func TestOperatorKindString(t *testing.T) {
	assert.Equal(t, "set", SetOperator.String())
	assert.Equal(t, "comparison", ComparisonOperator.String())
	assert.Equal(t, "arithmetic", ArithmeticOperator.String())
}
