package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// migrations is the ordered list of idempotent schema statements. Each run
// replays the whole list; CREATE ... IF NOT EXISTS keeps that cheap.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS blueprints (
		id TEXT PRIMARY KEY,
		goal TEXT NOT NULL,
		created_at TEXT NOT NULL,
		summary TEXT NOT NULL DEFAULT '[]',
		length_advice TEXT,
		ideas TEXT NOT NULL DEFAULT '[]',
		problem_program TEXT,
		problem_audience TEXT,
		generated TEXT NOT NULL DEFAULT '',
		next_steps TEXT NOT NULL DEFAULT '',
		prompt TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_blueprints_created_at ON blueprints(created_at)`,
}
