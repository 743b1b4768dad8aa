package database

import (
	"path/filepath"
	"testing"
)

func TestMigrateIsIdempotent(t *testing.T) {
	db, err := New(filepath.Join(t.TempDir(), "tracker.db"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer db.Close()

	if err := Migrate(db); err != nil {
		t.Fatalf("first Migrate() error = %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("second Migrate() error = %v", err)
	}

	for _, table := range []string{"users", "exercises"} {
		var n int
		err := db.Get(&n, `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table)
		if err != nil {
			t.Fatalf("query sqlite_master: %v", err)
		}
		if n != 1 {
			t.Errorf("table %s missing after migration", table)
		}
	}
}

func TestWithPragmas(t *testing.T) {
	if got := withPragmas("a.db"); got != "a.db?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)" {
		t.Errorf("withPragmas(a.db) = %q", got)
	}
	if got := withPragmas("file:a.db?mode=rwc"); got != "file:a.db?mode=rwc&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)" {
		t.Errorf("withPragmas(file:a.db?mode=rwc) = %q", got)
	}
}
