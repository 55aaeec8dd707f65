package testutil

import (
	"path/filepath"
	"testing"

	"github.com/xxxsen/todolist/internal/repo"
)

// OpenTestDB opens a throwaway sqlite database with migrations applied. The
// file lives in the test's temp dir and disappears with it.
func OpenTestDB(t *testing.T) (*repo.DB, func()) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "todolist_test.db")
	db, err := repo.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := repo.ApplyMigrations(db); err != nil {
		t.Fatalf("migrations: %v", err)
	}
	return db, func() {
		_ = db.Close()
	}
}
