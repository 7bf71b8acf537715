package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/cs4241-c25/a4-adequatej/cliparse"
	"github.com/cs4241-c25/a4-adequatej/models"
)

// Open opens a database handle for the configured driver.
// The caller is responsible for Ping and Close.
func Open(cfg cliparse.Config) (*sql.DB, error) {
	switch cfg.DatabaseType {
	case models.DBTypeSQLite:
		conn, err := sql.Open("sqlite", cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		// SQLite ships with foreign keys off
		if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
		return conn, nil
	case models.DBTypePostgres:
		conn, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres database: %w", err)
		}
		return conn, nil
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Timestamps are always bound from application code so the same
// statements work on both sqlite and postgres.
const schema = `
-- Users
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);

-- Anime records
CREATE TABLE IF NOT EXISTS anime (
    id TEXT PRIMARY KEY,
    owner_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    title TEXT NOT NULL,
    rating REAL NOT NULL,
    episodes INTEGER NOT NULL,
    image_url TEXT,
    popularity_score REAL NOT NULL,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_anime_owner ON anime(owner_id);
CREATE INDEX IF NOT EXISTS idx_anime_owner_score ON anime(owner_id, popularity_score);
`
