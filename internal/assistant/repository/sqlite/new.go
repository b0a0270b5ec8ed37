package sqlite

import (
	"database/sql"
	"fmt"

	"ai-task-assistant/internal/assistant/repository"
	"ai-task-assistant/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed Repository for the assistant domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("assistant/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("assistant/repository/sqlite.%s", method)
}
