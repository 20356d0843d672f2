package update

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bryanjenningz/todotui/internal/model"
	"github.com/bryanjenningz/todotui/internal/storage"
)

func toRecords(todos []model.Todo) []storage.Todo {
	out := make([]storage.Todo, 0, len(todos))
	for _, t := range todos {
		out = append(out, storage.Todo{ID: t.ID, Text: t.Text, Done: t.Done})
	}
	return out
}

func fromRecords(records []storage.Todo) []model.Todo {
	out := make([]model.Todo, 0, len(records))
	for _, r := range records {
		out = append(out, model.Todo{ID: r.ID, Text: r.Text, Done: r.Done})
	}
	return out
}

// persistCmd hands the full current list to the store. Write failures
// are not surfaced anywhere; persistence is best effort.
func (m Model) persistCmd() tea.Cmd {
	if m.store == nil {
		return nil
	}
	store := m.store
	records := toRecords(m.Todos)
	return func() tea.Msg {
		_ = store.Save(context.Background(), records)
		return nil
	}
}

// loadSnapshotCmd decodes the persisted snapshot. A missing or invalid
// snapshot silently starts the app with an empty list.
func loadSnapshotCmd(store storage.Store) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		records, err := store.Load(context.Background())
		if err != nil {
			return SnapshotLoadedMsg{}
		}
		return SnapshotLoadedMsg{Todos: fromRecords(records)}
	}
}

func (m Model) requestIDCmd() tea.Cmd {
	if m.ids == nil {
		return nil
	}
	gen := m.ids
	return func() tea.Msg {
		gen.Request()
		return nil
	}
}

func waitForIDCmd(ch <-chan int64) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		id, ok := <-ch
		if !ok {
			return nil
		}
		return IDReadyMsg{ID: id}
	}
}
