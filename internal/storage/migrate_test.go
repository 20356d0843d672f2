package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
)

func TestMigrateRoundTripCompatibility(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate-roundtrip.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := MigrateUp(db); err != nil {
		t.Fatalf("first migrate up failed: %v", err)
	}

	if err := MigrateDown(db); err != nil {
		t.Fatalf("migrate down failed: %v", err)
	}

	if err := MigrateUp(db); err != nil {
		t.Fatalf("second migrate up failed: %v", err)
	}

	store, err := NewSQLiteStore(db, DefaultSlot)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	ctx := context.Background()
	if err := store.Save(ctx, []Todo{{ID: 9, Text: "roundtrip", Done: true}}); err != nil {
		t.Fatalf("save after roundtrip failed: %v", err)
	}
	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load after roundtrip failed: %v", err)
	}
	if len(got) != 1 || got[0].Text != "roundtrip" {
		t.Fatalf("unexpected snapshot after roundtrip: %#v", got)
	}
}
