package storage

import (
	"encoding/json"
	"fmt"
)

// Todo is the persisted form of a task record.
type Todo struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"isComplete"`
}

func encodeSnapshot(todos []Todo) ([]byte, error) {
	if todos == nil {
		todos = []Todo{}
	}
	payload, err := json.Marshal(todos)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return payload, nil
}

func decodeSnapshot(payload []byte) ([]Todo, error) {
	var todos []Todo
	if err := json.Unmarshal(payload, &todos); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return todos, nil
}
