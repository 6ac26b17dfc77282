package db

import (
	"database/sql"
	"fmt"
)

// History entries use random UUIDs, so ordering relies on created_at
// (RFC3339 text sorts lexicographically) with rowid as tie-breaker.
const baseSchema = `
CREATE TABLE IF NOT EXISTS history_entries (
  id TEXT PRIMARY KEY,
  label TEXT NOT NULL,
  ads TEXT NOT NULL,
  url TEXT,
  custom_prompt TEXT,
  created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_history_entries_created_at ON history_entries(created_at);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}
	return nil
}
