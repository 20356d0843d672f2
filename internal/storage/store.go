package storage

import (
	"context"
	"errors"
)

// ErrNoSnapshot is returned by Load when nothing has been persisted yet.
var ErrNoSnapshot = errors.New("storage: no snapshot")

// DefaultSlot is the well-known storage slot the todo list lives under.
// Every save overwrites the previous value of the slot.
const DefaultSlot = "todos"

// Store persists the full todo list as a single snapshot.
type Store interface {
	Load(ctx context.Context) ([]Todo, error)
	Save(ctx context.Context, todos []Todo) error
	Close() error
}
