// Package store persists a log of tool invocations in SQLite. The log is
// optional; when disabled the server runs purely in memory.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"anthrobot/internal/logging"
)

// Invocation is one recorded tool call.
type Invocation struct {
	ID         string    `json:"id"`
	Tool       string    `json:"tool"`
	Arguments  string    `json:"arguments"`
	Success    bool      `json:"success"`
	Error      string    `json:"error,omitempty"`
	DurationMs int64     `json:"duration_ms"`
	CalledAt   time.Time `json:"called_at"`
}

// InvocationLog implements the server's Recorder over a SQLite file.
type InvocationLog struct {
	db     *sql.DB
	mu     sync.Mutex
	dbPath string
}

// Open initializes the SQLite database at the given path, creating the
// parent directory and schema as needed.
func Open(path string) (*InvocationLog, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	l := &InvocationLog{db: db, dbPath: path}
	if err := l.initialize(); err != nil {
		db.Close()
		return nil, err
	}

	logging.Get(logging.CategoryStore).Debugf("invocation log open at %s", path)
	return l, nil
}

// initialize creates the required tables.
func (l *InvocationLog) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS invocations (
		id TEXT PRIMARY KEY,
		tool TEXT NOT NULL,
		arguments TEXT NOT NULL,
		success INTEGER NOT NULL,
		error TEXT,
		duration_ms INTEGER NOT NULL,
		called_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_invocations_tool ON invocations(tool);
	CREATE INDEX IF NOT EXISTS idx_invocations_called_at ON invocations(called_at);
	`
	if _, err := l.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// RecordCall stores one invocation row.
func (l *InvocationLog) RecordCall(ctx context.Context, tool string, args map[string]any, durationMs int64, callErr error) error {
	argsJSON, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("failed to encode arguments: %w", err)
	}

	errText := ""
	if callErr != nil {
		errText = callErr.Error()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	_, err = l.db.ExecContext(ctx,
		`INSERT INTO invocations (id, tool, arguments, success, error, duration_ms, called_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		uuid.New().String(), tool, string(argsJSON), callErr == nil, errText, durationMs,
		time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to insert invocation: %w", err)
	}
	return nil
}

// Recent returns up to limit invocations, newest first.
func (l *InvocationLog) Recent(ctx context.Context, limit int) ([]Invocation, error) {
	if limit <= 0 {
		limit = 50
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	rows, err := l.db.QueryContext(ctx,
		`SELECT id, tool, arguments, success, error, duration_ms, called_at
		 FROM invocations ORDER BY called_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query invocations: %w", err)
	}
	defer rows.Close()

	var out []Invocation
	for rows.Next() {
		var inv Invocation
		var calledAt string
		if err := rows.Scan(&inv.ID, &inv.Tool, &inv.Arguments, &inv.Success, &inv.Error, &inv.DurationMs, &calledAt); err != nil {
			return nil, fmt.Errorf("failed to scan invocation: %w", err)
		}
		if t, err := time.Parse(time.RFC3339Nano, calledAt); err == nil {
			inv.CalledAt = t
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

// CountByTool returns invocation counts keyed by tool name.
func (l *InvocationLog) CountByTool(ctx context.Context) (map[string]int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rows, err := l.db.QueryContext(ctx,
		`SELECT tool, COUNT(*) FROM invocations GROUP BY tool`)
	if err != nil {
		return nil, fmt.Errorf("failed to count invocations: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var tool string
		var n int
		if err := rows.Scan(&tool, &n); err != nil {
			return nil, fmt.Errorf("failed to scan count: %w", err)
		}
		counts[tool] = n
	}
	return counts, rows.Err()
}

// Close releases the database handle.
func (l *InvocationLog) Close() error {
	if l.db == nil {
		return nil
	}
	return l.db.Close()
}
