package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bryanjenningz/todotui/internal/model"
)

// applyAddTodo consumes the pending id and appends a new todo built from
// the draft text. Without a pending id it is a no-op.
func (m Model) applyAddTodo() (Model, tea.Cmd, bool) {
	if m.PendingID == nil {
		m.Status = StatusBar{Text: "add disabled: waiting for an id", IsError: false}
		return m, nil, false
	}
	todo := model.Todo{ID: *m.PendingID, Text: m.Draft, Done: false}
	m.Todos = append(cloneTodos(m.Todos), todo)
	m.PendingID = nil
	m.Draft = ""
	m.Cursor = model.IndexByID(m.visibleTodos(), todo.ID)
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	m.Status = StatusBar{Text: fmt.Sprintf("added: %s", todo.Text), IsError: false}
	return m, tea.Batch(m.persistCmd(), m.requestIDCmd(), m.idSpinner.Tick), true
}

func (m Model) applyToggleTodo(id int64, done bool) (Model, tea.Cmd, bool) {
	idx := model.IndexByID(m.Todos, id)
	if idx < 0 {
		return m, nil, false
	}
	todos := cloneTodos(m.Todos)
	todos[idx].Done = done
	m.Todos = todos
	m.clampCursor()
	return m, m.persistCmd(), true
}

func (m Model) applyRemoveTodo(id int64) (Model, tea.Cmd, bool) {
	idx := model.IndexByID(m.Todos, id)
	if idx < 0 {
		return m, nil, false
	}
	todos := cloneTodos(m.Todos)
	m.Todos = append(todos[:idx], todos[idx+1:]...)
	m.clampCursor()
	return m, m.persistCmd(), true
}

func (m Model) applyToggleAll(done bool) (Model, tea.Cmd) {
	todos := cloneTodos(m.Todos)
	for i := range todos {
		todos[i].Done = done
	}
	m.Todos = todos
	return m, m.persistCmd()
}

func (m Model) setFilter(filter model.Filter) Model {
	if !filter.IsValid() {
		return m
	}
	m.Filter = filter
	m.Cursor = 0
	m.Status = StatusBar{Text: fmt.Sprintf("filter: %s", filter), IsError: false}
	return m
}

func (m Model) cycleFilter() Model {
	switch m.Filter {
	case model.FilterAll:
		return m.setFilter(model.FilterIncomplete)
	case model.FilterIncomplete:
		return m.setFilter(model.FilterComplete)
	default:
		return m.setFilter(model.FilterAll)
	}
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case m.Keys.Add, "enter":
		m.Capture = true
		m.draftInput.Focus()
		m.Status = StatusBar{Text: "capture mode", IsError: false}
		return m, nil
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
		return m, nil
	case "down", "j":
		if m.Cursor < len(m.visibleTodos())-1 {
			m.Cursor++
		}
		return m, nil
	case " ":
		if todo, ok := m.todoAtCursor(); ok {
			next, cmd, _ := m.applyToggleTodo(todo.ID, !todo.Done)
			return next, cmd
		}
		return m, nil
	case m.Keys.Remove:
		if todo, ok := m.todoAtCursor(); ok {
			next, cmd, _ := m.applyRemoveTodo(todo.ID)
			return next, cmd
		}
		return m, nil
	case m.Keys.Edit:
		if todo, ok := m.todoAtCursor(); ok {
			return m.beginEdit(todo.ID), nil
		}
		return m, nil
	case m.Keys.ToggleAll:
		return m.applyToggleAll(!model.AllComplete(m.Todos))
	case m.Keys.Filter:
		return m.cycleFilter(), nil
	case "1":
		return m.setFilter(model.FilterAll), nil
	case "2":
		return m.setFilter(model.FilterIncomplete), nil
	case "3":
		return m.setFilter(model.FilterComplete), nil
	}
	if msg.Type == tea.KeyRunes {
		m.Capture = true
		m.draftInput.Focus()
		m.draftInput.SetValue(string(msg.Runes))
		m.Draft = m.draftInput.Value()
		return m, nil
	}
	return m, nil
}

func (m Model) handleCaptureKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Capture = false
		m.draftInput.Blur()
		m.Status = StatusBar{Text: "list mode", IsError: false}
		return m, nil
	case "enter":
		next, cmd, _ := m.applyAddTodo()
		return next, cmd
	}
	var cmd tea.Cmd
	m.draftInput, cmd = m.draftInput.Update(msg)
	m.Draft = m.draftInput.Value()
	return m, cmd
}
