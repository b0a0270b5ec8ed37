// Package sqlite opens the service database and bootstraps its schema.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-process database.
const MemoryPath = ":memory:"

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	title TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	priority TEXT NOT NULL DEFAULT 'medium' CHECK (priority IN ('low', 'medium', 'high')),
	completed INTEGER NOT NULL DEFAULT 0,
	due_date TEXT,
	created_at TEXT NOT NULL,
	completed_at TEXT
);

CREATE TABLE IF NOT EXISTS ai_interaction (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	query_text TEXT NOT NULL,
	response_text TEXT,
	status TEXT NOT NULL CHECK (status IN ('pending', 'completed', 'failed', 'timeout')),
	error_message TEXT,
	token_count INTEGER CHECK (token_count >= 0),
	suggestions_json TEXT,
	query_timestamp TEXT NOT NULL,
	response_timestamp TEXT
);

CREATE INDEX IF NOT EXISTS idx_tasks_user_id ON tasks(user_id, created_at);
CREATE INDEX IF NOT EXISTS idx_ai_interaction_user_id ON ai_interaction(user_id);
CREATE INDEX IF NOT EXISTS idx_ai_interaction_timestamp ON ai_interaction(query_timestamp);
`

// Open opens (creating if needed) the database at path and applies the schema.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite: path is required")
	}

	if path != MemoryPath {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create database directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Each connection to :memory: is a separate database.
	if path == MemoryPath {
		db.SetMaxOpenConns(1)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return db, nil
}
