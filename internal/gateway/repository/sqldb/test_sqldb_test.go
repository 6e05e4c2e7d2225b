package sqldb

import (
	"context"
	"path/filepath"
	"testing"

	"entgo.io/ent/dialect"
)

func TestOpenSQLiteMemory(t *testing.T) {
	h, err := OpenSQLite(context.Background(), MemoryPath)
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	defer h.Close()
	if h.Dialect != dialect.SQLite || h.Postgres() {
		t.Fatalf("unexpected dialect %q", h.Dialect)
	}
	var fk int
	if err := h.DB.QueryRow("PRAGMA foreign_keys").Scan(&fk); err != nil {
		t.Fatalf("query pragma: %v", err)
	}
	if fk != 1 {
		t.Fatalf("foreign_keys = %d, want 1", fk)
	}
}

func TestOpenSQLiteFileUsesWAL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "guide.db")
	h, err := OpenSQLite(context.Background(), path)
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	defer h.Close()
	var mode string
	if err := h.DB.QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("query pragma: %v", err)
	}
	if mode != "wal" {
		t.Fatalf("journal_mode = %q, want wal", mode)
	}
}

func TestOpenRejectsEmpty(t *testing.T) {
	if _, err := OpenSQLite(context.Background(), " "); err == nil {
		t.Fatalf("expected error for empty sqlite path")
	}
	if _, err := OpenPostgres(context.Background(), ""); err == nil {
		t.Fatalf("expected error for empty dsn")
	}
}
