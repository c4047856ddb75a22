package decisionlog

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/roach88/relcheck/internal/sqltype"
)

//go:embed schema.sql
var schemaSQL string

// OutcomeCompatible is the outcome recorded for a successful check. Failed
// checks record the validation error code instead (E201, E202, ...).
const OutcomeCompatible = "compatible"

// Decision is one logged compatibility decision. Left and Right hold the
// operand row shapes; Outcome holds OutcomeCompatible or the error code.
type Decision struct {
	ID         string               `json:"id"`
	Seq        int64                `json:"seq"`
	Operator   string               `json:"operator"`
	Left       []sqltype.ColumnSpec `json:"left"`
	Right      []sqltype.ColumnSpec `json:"right"`
	Outcome    string               `json:"outcome"`
	Ordinal    int                  `json:"ordinal,omitempty"` // 1-based failing column, 0 when n/a
	Message    string               `json:"message,omitempty"`
	RecordedAt time.Time            `json:"recorded_at"`
}

// Log is an append-only SQLite record of compatibility decisions. It is an
// audit artifact: the checker never consults it, so its content can never
// influence a decision.
type Log struct {
	db *sql.DB
}

// Open creates or opens a decision log at the given path.
// Applies required pragmas and the schema automatically; idempotent.
//
// The database is configured with:
//   - WAL mode for concurrent reads during writes
//   - NORMAL synchronous mode
//   - 5-second busy timeout for lock contention
func Open(path string) (*Log, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open decision log: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect decision log: %w", err)
	}

	// SQLite supports one writer at a time; a single connection avoids
	// SQLITE_BUSY under concurrent appends.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("execute %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply decision log schema: %w", err)
	}

	return &Log{db: db}, nil
}

// Close closes the underlying database.
func (l *Log) Close() error {
	if l.db == nil {
		return nil
	}
	return l.db.Close()
}

// Append records a decision. A missing ID is assigned a UUIDv7; a missing
// RecordedAt is assigned the current time. The stored decision, including
// its assigned sequence number, is returned.
func (l *Log) Append(ctx context.Context, d Decision) (Decision, error) {
	if d.ID == "" {
		d.ID = uuid.Must(uuid.NewV7()).String()
	}
	if d.RecordedAt.IsZero() {
		d.RecordedAt = time.Now().UTC()
	}

	leftJSON, err := json.Marshal(d.Left)
	if err != nil {
		return Decision{}, fmt.Errorf("append decision: %w", err)
	}
	rightJSON, err := json.Marshal(d.Right)
	if err != nil {
		return Decision{}, fmt.Errorf("append decision: %w", err)
	}

	res, err := l.db.ExecContext(ctx, `
		INSERT INTO decisions
		(id, operator, left_cols, right_cols, outcome, ordinal, message, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		d.ID,
		d.Operator,
		string(leftJSON),
		string(rightJSON),
		d.Outcome,
		d.Ordinal,
		d.Message,
		d.RecordedAt.Unix(),
	)
	if err != nil {
		return Decision{}, fmt.Errorf("append decision: %w", err)
	}

	seq, err := res.LastInsertId()
	if err != nil {
		return Decision{}, fmt.Errorf("append decision: %w", err)
	}
	d.Seq = seq
	return d, nil
}

// List returns all logged decisions in deterministic order:
// ORDER BY seq ASC, id ASC COLLATE BINARY.
// Returns an empty slice (not nil) when the log is empty.
func (l *Log) List(ctx context.Context) ([]Decision, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT seq, id, operator, left_cols, right_cols, outcome, ordinal, message, recorded_at
		FROM decisions
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query decisions: %w", err)
	}
	defer rows.Close()

	decisions := []Decision{}
	for rows.Next() {
		var d Decision
		var leftJSON, rightJSON string
		var recordedAt int64
		if err := rows.Scan(&d.Seq, &d.ID, &d.Operator, &leftJSON, &rightJSON,
			&d.Outcome, &d.Ordinal, &d.Message, &recordedAt); err != nil {
			return nil, fmt.Errorf("scan decision: %w", err)
		}
		if err := json.Unmarshal([]byte(leftJSON), &d.Left); err != nil {
			return nil, fmt.Errorf("decode decision %s: %w", d.ID, err)
		}
		if err := json.Unmarshal([]byte(rightJSON), &d.Right); err != nil {
			return nil, fmt.Errorf("decode decision %s: %w", d.ID, err)
		}
		d.RecordedAt = time.Unix(recordedAt, 0).UTC()
		decisions = append(decisions, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate decisions: %w", err)
	}
	return decisions, nil
}
