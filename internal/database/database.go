package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DBPath returns the default path of the shared database
func DBPath() string {
	return filepath.Join("data", "strait-current.db")
}

// Open opens the database at dbPath, creating its directory and schema if
// needed
func Open(dbPath string) (*sql.DB, error) {
	if dir := filepath.Dir(dbPath); dir != "" && dbPath != ":memory:" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// Set pragmas for performance
	_, _ = db.Exec("PRAGMA journal_mode=WAL")
	_, _ = db.Exec("PRAGMA synchronous=NORMAL")

	if err := EnsureSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// EnsureSchema creates the catch log and tide cache tables if they do not
// exist. It is safe to call repeatedly.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS catch_logs (
			id TEXT PRIMARY KEY,
			caught_at TEXT NOT NULL,
			species TEXT NOT NULL,
			spot TEXT,
			length_cm INTEGER,
			notes TEXT,
			direction TEXT NOT NULL,
			strength TEXT NOT NULL,
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_catch_logs_caught_at ON catch_logs(caught_at);
	`)
	if err != nil {
		return fmt.Errorf("creating catch_logs table: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS tide_days (
			station TEXT NOT NULL,
			day TEXT NOT NULL,
			payload TEXT NOT NULL,
			fetched_at TEXT DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (station, day)
		);
	`)
	if err != nil {
		return fmt.Errorf("creating tide_days table: %w", err)
	}

	return nil
}
