package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/relcheck/internal/decisionlog"
)

// execute runs the root command with args and returns stdout and the
// command error.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCheckCompatibleCases(t *testing.T) {
	dir := writeCaseDir(t, `
case: "orders-union": {
	op: "UNION"
	left: [{name: "id", type: "INT"}, {name: "total", type: "DECIMAL"}]
	right: [{name: "id", type: "BIGINT"}, {name: "total", type: "DOUBLE"}]
}
`)

	out, err := execute(t, "check", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "ok   orders-union")
	assert.Contains(t, out, "1 case(s): 1 compatible, 0 incompatible")
}

func TestCheckIncompatibleCaseExitsOne(t *testing.T) {
	dir := writeCaseDir(t, `
case: "mismatch": {
	op: "UNION"
	left: [{name: "id", type: "INT"}]
	right: [{name: "id", type: "VARCHAR"}]
}
`)

	out, err := execute(t, "check", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "FAIL mismatch")
	assert.Contains(t, out, "[E202]")
	assert.Contains(t, out, "column 1 of UNION has incompatible types")
}

func TestCheckColumnCountMismatch(t *testing.T) {
	dir := writeCaseDir(t, `
case: "arity": {
	op: "INTERSECT"
	left: [{name: "id", type: "INT"}, {name: "name", type: "VARCHAR"}]
	right: [{name: "id", type: "INT"}]
}
`)

	out, err := execute(t, "check", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "[E201]")
	assert.Contains(t, out, "same number of columns: 2 vs 1")
}

func TestCheckJSONOutput(t *testing.T) {
	dir := writeCaseDir(t, `
case: "mismatch": {
	op: "UNION ALL"
	left: [{name: "id", type: "INT"}, {name: "name", type: "VARCHAR"}]
	right: [{name: "id", type: "INT"}, {name: "name", type: "DATE"}]
}
`)

	out, err := execute(t, "--format", "json", "check", dir)
	require.Error(t, err)

	var resp struct {
		Status string       `json:"status"`
		Data   CheckSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data.Cases, 1)

	r := resp.Data.Cases[0]
	assert.Equal(t, "UNION ALL", r.Operator)
	assert.False(t, r.Compatible)
	assert.Equal(t, "E202", r.Code)
	assert.Equal(t, 2, r.Ordinal)
	assert.Equal(t, "ROW(id INT, name VARCHAR)", r.Left)
	assert.Equal(t, 1, resp.Data.Incompatible)
}

func TestCheckMissingDirExitsTwo(t *testing.T) {
	out, err := execute(t, "check", filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E002]")
}

func TestCheckRejectsNonSetOperator(t *testing.T) {
	dir := writeCaseDir(t, `
case: "bad-op": {
	op: "="
	left: [{name: "id", type: "INT"}]
	right: [{name: "id", type: "INT"}]
}
`)

	out, err := execute(t, "check", dir)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "not a set operator")
}

func TestCheckAppendsDecisionLog(t *testing.T) {
	dir := writeCaseDir(t, `
case: "logged": {
	op: "EXCEPT"
	left: [{name: "id", type: "INTEGER"}]
	right: [{name: "id", type: "VARCHAR"}]
}
`)
	dbPath := filepath.Join(t.TempDir(), "decisions.db")

	_, err := execute(t, "check", "--log", dbPath, dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	log, err := decisionlog.Open(dbPath)
	require.NoError(t, err)
	defer log.Close()

	decisions, err := log.List(context.Background())
	require.NoError(t, err)
	require.Len(t, decisions, 1)
	assert.Equal(t, "EXCEPT", decisions[0].Operator)
	assert.Equal(t, "E202", decisions[0].Outcome)
	assert.Equal(t, 1, decisions[0].Ordinal)

	// Logged specs reflect the checked row, so the INTEGER synonym is
	// stored in canonical spelling.
	require.Len(t, decisions[0].Left, 1)
	assert.Equal(t, "INT", decisions[0].Left[0].Type)
}
