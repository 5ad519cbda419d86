package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLDB is the subset of *sql.DB the stores use.
type SQLDB interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// InitDB initializes the database schema for the SQLite store backend.
// PRE: db is a valid database connection
// POST: All tables are created, WAL mode enabled
func InitDB(db *sql.DB) error {
	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS student (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		student_id TEXT NOT NULL UNIQUE,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		age TEXT NOT NULL,
		gender TEXT NOT NULL,
		address TEXT NOT NULL,
		state TEXT NOT NULL,
		phone TEXT NOT NULL,
		email TEXT NOT NULL,
		program TEXT NOT NULL,
		registered_at TEXT NOT NULL,
		status TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS contact_message (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT,
		subject TEXT NOT NULL,
		body TEXT NOT NULL,
		submitted_at TEXT NOT NULL,
		status TEXT NOT NULL
	);
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
