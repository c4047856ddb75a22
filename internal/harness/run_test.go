package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/relcheck/internal/sema"
	"github.com/roach88/relcheck/internal/sqltype"
)

func TestRunCompatibleScenario(t *testing.T) {
	s := &Scenario{
		Name:     "widening",
		Operator: "UNION",
		Left:     []sqltype.ColumnSpec{{Name: "id", Type: "INT"}},
		Right:    []sqltype.ColumnSpec{{Name: "id", Type: "BIGINT"}},
		Expect:   &Expectation{Compatible: true},
	}

	report, err := Run(s)
	require.NoError(t, err)
	assert.True(t, report.Compatible)
	assert.True(t, report.Pass)
	assert.Empty(t, report.Errors)
	assert.Equal(t, []string{"BIGINT"}, report.Widened)
	assert.Equal(t, "ROW(id INT)", report.Left)
}

func TestRunIncompatibleScenario(t *testing.T) {
	s := &Scenario{
		Name:     "mismatch",
		Operator: "INTERSECT",
		Left:     []sqltype.ColumnSpec{{Name: "id", Type: "INT"}},
		Right:    []sqltype.ColumnSpec{{Name: "id", Type: "VARCHAR"}},
		Expect:   &Expectation{Compatible: false, Code: sema.ErrColumnTypeMismatch},
	}

	report, err := Run(s)
	require.NoError(t, err)
	assert.False(t, report.Compatible)
	assert.True(t, report.Pass)
	assert.Equal(t, sema.ErrColumnTypeMismatch, report.Code)
	assert.Contains(t, report.Detail, "column 1")
	assert.Empty(t, report.Widened)
}

func TestRunExpectationMismatch(t *testing.T) {
	s := &Scenario{
		Name:     "wrong-expectation",
		Operator: "UNION",
		Left:     []sqltype.ColumnSpec{{Name: "id", Type: "INT"}},
		Right:    []sqltype.ColumnSpec{{Name: "id", Type: "INT"}},
		Expect:   &Expectation{Compatible: false, Code: sema.ErrColumnCountMismatch},
	}

	report, err := Run(s)
	require.NoError(t, err)
	assert.False(t, report.Pass)
	assert.Len(t, report.Errors, 2, "both the decision and the code mismatch")
}

func TestRunRejectsBadColumnType(t *testing.T) {
	s := &Scenario{
		Name:     "bad-type",
		Operator: "UNION",
		Left:     []sqltype.ColumnSpec{{Name: "id", Type: "FLOATY"}},
		Right:    []sqltype.ColumnSpec{{Name: "id", Type: "INT"}},
	}

	_, err := Run(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "left operand")
}

func TestRunWithoutExpectationAlwaysPasses(t *testing.T) {
	s := &Scenario{
		Name:     "observational",
		Operator: "EXCEPT ALL",
		Left:     []sqltype.ColumnSpec{{Name: "a", Type: "DATE"}},
		Right:    []sqltype.ColumnSpec{{Name: "a", Type: "VARCHAR"}},
	}

	report, err := Run(s)
	require.NoError(t, err)
	assert.False(t, report.Compatible)
	assert.True(t, report.Pass)
}
