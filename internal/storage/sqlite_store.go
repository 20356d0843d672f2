package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteTimeLayout = time.RFC3339Nano

// SQLiteStore keeps the snapshot in a single row of the snapshots table,
// keyed by slot name. Saves overwrite the previous payload.
type SQLiteStore struct {
	db   *sql.DB
	slot string
}

func NewSQLiteStore(db *sql.DB, slot string) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if slot == "" {
		slot = DefaultSlot
	}
	return &SQLiteStore{db: db, slot: slot}, nil
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	store, err := NewSQLiteStore(db, DefaultSlot)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Load(ctx context.Context) ([]Todo, error) {
	row := s.db.QueryRowContext(ctx, `SELECT payload FROM snapshots WHERE slot = ?`, s.slot)
	var payload []byte
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoSnapshot
		}
		return nil, err
	}
	return decodeSnapshot(payload)
}

func (s *SQLiteStore) Save(ctx context.Context, todos []Todo) error {
	payload, err := encodeSnapshot(todos)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO snapshots (slot, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		s.slot, payload, time.Now().UTC().Format(sqliteTimeLayout),
	)
	return err
}
