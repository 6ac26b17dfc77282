// Package testutil provides shared helpers for repository tests.
package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/domzi1231/fb-ads-generator/internal/db"
)

// NewTestDB opens a migrated sqlite database in a per-test temp dir.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}
