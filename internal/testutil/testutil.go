// Package testutil holds shared test fixtures.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/eihojp/corpsite/internal/store"
)

// NewStore opens a fresh SQLite database under t.TempDir() with the schema
// applied, and closes it when the test finishes.
func NewStore(t *testing.T) *store.DB {
	t.Helper()

	db, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("close test store: %v", err)
		}
	})
	return db
}

// StrPtr returns a pointer to s, for building patch literals.
func StrPtr(s string) *string { return &s }

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool { return &b }
