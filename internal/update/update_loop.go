package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bryanjenningz/todotui/internal/model"
	"github.com/bryanjenningz/todotui/internal/views"
)

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{loadSnapshotCmd(m.store)}
	if m.ids != nil {
		// Prime the first add with one id request.
		cmds = append(cmds, m.requestIDCmd(), waitForIDCmd(m.ids.C()), m.idSpinner.Tick)
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.syncBubbleData()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if typed.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		if m.Palette.Active {
			return m.handlePaletteKey(typed)
		}
		if m.Editing != nil {
			return m.handleEditKey(typed)
		}
		if m.Capture {
			return m.handleCaptureKey(typed)
		}
		switch typed.String() {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.Focus()
			m.commandInput.SetValue("")
			m.Status = StatusBar{Text: "command palette active", IsError: false}
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			return m, nil
		case m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}
		return m.handleListKey(typed)

	case spinner.TickMsg:
		if m.waitingForID() {
			var cmd tea.Cmd
			m.idSpinner, cmd = m.idSpinner.Update(typed)
			return m, cmd
		}
		return m, nil

	case IDReadyMsg:
		id := typed.ID
		m.PendingID = &id
		if m.ids != nil {
			return m, waitForIDCmd(m.ids.C())
		}
		return m, nil

	case SnapshotLoadedMsg:
		m.Todos = typed.Todos
		m.Cursor = 0
		return m, nil

	case SetDraftMsg:
		m.Draft = typed.Text
		return m, nil

	case AddTodoMsg:
		next, cmd, _ := m.applyAddTodo()
		return next, cmd

	case ToggleTodoMsg:
		next, cmd, _ := m.applyToggleTodo(typed.ID, typed.Done)
		return next, cmd

	case RemoveTodoMsg:
		next, cmd, _ := m.applyRemoveTodo(typed.ID)
		return next, cmd

	case StartEditMsg:
		return m.beginEdit(typed.ID), nil

	case SetEditTextMsg:
		return m.setEditText(typed.Text), nil

	case CancelEditMsg:
		return m.cancelEdit(), nil

	case SaveEditMsg:
		next, cmd, _ := m.applySaveEdit()
		return next, cmd

	case ToggleAllMsg:
		return m.applyToggleAll(typed.Done)

	case SetFilterMsg:
		return m.setFilter(typed.Filter), nil

	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil

	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	right := strings.TrimSpace(strings.Join([]string{
		m.renderEditPane(),
		m.renderDetailPane(),
		views.RenderCommandPalette(m.Palette.Active, m.Palette.Input),
		m.renderHelpIfVisible(),
	}, "\n"))

	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("todotui | filter: %s | %d items left", m.Filter, model.CountIncomplete(m.Todos)),
		LeftPane:   m.renderTodoPanel(),
		RightPane:  right,
		StatusLine: status,
		Footer: fmt.Sprintf("keys: %s add | space toggle | %s edit | %s remove | %s toggle-all | %s filter | / cmd | %s help | %s quit",
			m.Keys.Add, m.Keys.Edit, m.Keys.Remove, m.Keys.ToggleAll, m.Keys.Filter, m.Keys.Help, m.Keys.Quit),
	})
}

func (m Model) renderTodoPanel() string {
	visible := m.visibleTodos()
	items := make([]views.TodoItemData, 0, len(visible))
	for _, t := range visible {
		items = append(items, views.TodoItemData{ID: t.ID, Text: t.Text, Done: t.Done})
	}
	selected, hasSelection := m.todoAtCursor()
	idWait := ""
	if m.waitingForID() {
		idWait = m.idSpinner.View()
	}
	return views.RenderTodoPanel(views.TodoPanelData{
		QuickAddView: m.draftInput.View(),
		IDWaitView:   idWait,
		ListView:     m.todoList.View(),
		Items:        items,
		SelectedID:   selected.ID,
		HasSelection: hasSelection,
		Filter:       string(m.Filter),
		ItemsLeft:    model.CountIncomplete(m.Todos),
		AllComplete:  model.AllComplete(m.Todos),
	})
}

func (m Model) renderEditPane() string {
	if m.Editing == nil {
		return ""
	}
	return views.RenderEditPanel(views.EditPanelData{
		Active:    true,
		ID:        m.Editing.ID,
		InputView: m.editInput.View(),
	})
}

// renderDetailPane shows the selected todo with its text rendered as
// markdown, so longer notes stay readable.
func (m Model) renderDetailPane() string {
	if m.Editing != nil {
		return ""
	}
	selected, ok := m.todoAtCursor()
	if !ok {
		return ""
	}
	state := "incomplete"
	if selected.Done {
		state = "complete"
	}
	return fmt.Sprintf("detail:\nid: %d\nstate: %s\n%s", selected.ID, state, views.RenderMarkdown(selected.Text))
}
