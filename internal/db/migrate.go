package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent so
// re-running against an existing database is safe.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS rounds (
		id TEXT PRIMARY KEY,
		mode TEXT NOT NULL CHECK (mode IN ('flashcards', 'quiz', 'typed', 'speed', 'sentences')),
		category TEXT NOT NULL,
		score INTEGER NOT NULL DEFAULT 0,
		total INTEGER NOT NULL DEFAULT 0,
		xp_earned INTEGER NOT NULL DEFAULT 0,
		new_best INTEGER NOT NULL DEFAULT 0,
		played_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_rounds_played_at ON rounds(played_at)`,
	`CREATE INDEX IF NOT EXISTS idx_rounds_category ON rounds(category)`,
}
