// Package decisionlog persists set-operation compatibility decisions to a
// SQLite database for post-hoc inspection.
//
// The log is strictly an audit artifact. The checker itself is pure and
// does no I/O; the CLI layer appends a record around each check it runs.
// Replay re-runs logged operand pairs against the current lattice and
// reports divergences, which is how lattice changes are audited against
// past decisions.
package decisionlog
