package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bryanjenningz/todotui/internal/model"
)

// beginEdit detaches a copy of the matching entry for editing. An absent
// id clears any edit in progress.
func (m Model) beginEdit(id int64) Model {
	idx := model.IndexByID(m.Todos, id)
	if idx < 0 {
		m.Editing = nil
		return m
	}
	entry := m.Todos[idx]
	m.Editing = &entry
	m.editInput.SetValue(entry.Text)
	m.editInput.Focus()
	m.Status = StatusBar{Text: fmt.Sprintf("editing %d", id), IsError: false}
	return m
}

func (m Model) setEditText(text string) Model {
	if m.Editing == nil {
		return m
	}
	edited := *m.Editing
	edited.Text = text
	m.Editing = &edited
	return m
}

func (m Model) cancelEdit() Model {
	m.Editing = nil
	m.editInput.Blur()
	m.Status = StatusBar{Text: "edit cancelled", IsError: false}
	return m
}

// applySaveEdit swaps the detached copy back over the matching entry and
// persists. Without an edit in progress it is a no-op.
func (m Model) applySaveEdit() (Model, tea.Cmd, bool) {
	if m.Editing == nil {
		return m, nil, false
	}
	edited := *m.Editing
	idx := model.IndexByID(m.Todos, edited.ID)
	if idx >= 0 {
		todos := cloneTodos(m.Todos)
		todos[idx] = edited
		m.Todos = todos
	}
	m.Editing = nil
	m.editInput.Blur()
	m.Status = StatusBar{Text: fmt.Sprintf("saved %d", edited.ID), IsError: false}
	return m, m.persistCmd(), true
}

func (m Model) handleEditKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.cancelEdit(), nil
	case "enter":
		next, cmd, _ := m.applySaveEdit()
		return next, cmd
	}
	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return m.setEditText(m.editInput.Value()), cmd
}
