package model

import (
	"errors"
	"fmt"
)

var ErrInvalidFilter = errors.New("model: invalid filter")

type Filter string

const (
	FilterAll        Filter = "All"
	FilterIncomplete Filter = "Incomplete"
	FilterComplete   Filter = "Complete"
)

func (f Filter) IsValid() bool {
	switch f {
	case FilterAll, FilterIncomplete, FilterComplete:
		return true
	default:
		return false
	}
}

// ParseFilter accepts the canonical filter names case-insensitively.
func ParseFilter(raw string) (Filter, error) {
	switch raw {
	case "All", "all":
		return FilterAll, nil
	case "Incomplete", "incomplete", "active":
		return FilterIncomplete, nil
	case "Complete", "complete", "done":
		return FilterComplete, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFilter, raw)
	}
}

// Todo is a single task record. IDs are opaque random values drawn from
// the full signed 64-bit range; uniqueness is probabilistic and ids are
// never reused.
type Todo struct {
	ID   int64
	Text string
	Done bool
}

// Apply selects the todos matching the filter without reordering them.
func Apply(todos []Todo, filter Filter) []Todo {
	if filter == FilterAll {
		return todos
	}
	out := make([]Todo, 0, len(todos))
	for _, t := range todos {
		switch filter {
		case FilterIncomplete:
			if !t.Done {
				out = append(out, t)
			}
		case FilterComplete:
			if t.Done {
				out = append(out, t)
			}
		}
	}
	return out
}

// AllComplete reports whether every todo is done. Vacuously true for an
// empty list.
func AllComplete(todos []Todo) bool {
	for _, t := range todos {
		if !t.Done {
			return false
		}
	}
	return true
}

func CountIncomplete(todos []Todo) int {
	n := 0
	for _, t := range todos {
		if !t.Done {
			n++
		}
	}
	return n
}

// IndexByID returns the position of the todo with the given id, or -1.
func IndexByID(todos []Todo, id int64) int {
	for i, t := range todos {
		if t.ID == id {
			return i
		}
	}
	return -1
}
