// Package testutil builds migrated throwaway databases for tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/codr1/pagecraft/internal/db"
)

// NewTestDB opens a fresh SQLite file under t.TempDir with every migration applied.
func NewTestDB(t *testing.T) *db.DB {
	t.Helper()

	database, err := db.New(filepath.Join(t.TempDir(), "pagecraft.db"))
	if err != nil {
		t.Fatalf("create test db: %v", err)
	}
	t.Cleanup(func() {
		if err := database.Close(); err != nil {
			t.Errorf("close test db: %v", err)
		}
	})
	return database
}

// NewTestRepository is a repository over NewTestDB.
func NewTestRepository(t *testing.T) *db.Repository {
	t.Helper()
	return db.NewRepository(NewTestDB(t))
}
