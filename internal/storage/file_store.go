package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// FileStore keeps the snapshot in a single JSON file. Writes go through a
// temp file and rename so a crash never leaves a half-written snapshot.
type FileStore struct {
	path string
}

func NewFileStore(path string) (*FileStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage: empty snapshot path")
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) Load(_ context.Context) ([]Todo, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSnapshot
		}
		return nil, err
	}
	return decodeSnapshot(raw)
}

func (s *FileStore) Save(_ context.Context, todos []Todo) error {
	payload, err := encodeSnapshot(todos)
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, append(payload, '\n'), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
