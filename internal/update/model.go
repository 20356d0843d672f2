package update

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/bryanjenningz/todotui/internal/ident"
	"github.com/bryanjenningz/todotui/internal/model"
	"github.com/bryanjenningz/todotui/internal/storage"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Add       string
	Edit      string
	Remove    string
	ToggleAll string
	Filter    string
	Help      string
	Quit      string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

// Model owns all application state. Each user action is applied to
// completion before the next one arrives; the only asynchronous inputs
// are pre-generated ids and the loaded snapshot, both delivered as
// messages.
type Model struct {
	Todos  []model.Todo
	Filter model.Filter

	// Draft is the in-progress text for a not-yet-created todo.
	Draft string
	// PendingID is the pre-generated id the next add will consume.
	// While it is nil, add is a no-op.
	PendingID *int64
	// Editing is a detached copy of the entry being edited. It is
	// swapped back into Todos on save and discarded on cancel.
	Editing *model.Todo

	Cursor      int
	Capture     bool
	Palette     CommandPaletteState
	HelpVisible bool
	Status      StatusBar
	Keys        GlobalKeyMap
	Quitting    bool

	store storage.Store
	ids   *ident.Generator

	// Bubble components used for rich TUI controls
	todoList     list.Model
	draftInput   textinput.Model
	editInput    textinput.Model
	commandInput textinput.Model
	idSpinner    spinner.Model
	helpModel    help.Model
}

type listItem struct {
	title       string
	description string
}

func (i listItem) FilterValue() string { return i.title }
func (i listItem) Title() string       { return i.title }
func (i listItem) Description() string { return i.description }

type SetDraftMsg struct {
	Text string
}

// IDReadyMsg delivers the next pre-generated id.
type IDReadyMsg struct {
	ID int64
}

type AddTodoMsg struct{}

type ToggleTodoMsg struct {
	ID   int64
	Done bool
}

type RemoveTodoMsg struct {
	ID int64
}

type StartEditMsg struct {
	ID int64
}

type SetEditTextMsg struct {
	Text string
}

type CancelEditMsg struct{}

type SaveEditMsg struct{}

type ToggleAllMsg struct {
	Done bool
}

type SetFilterMsg struct {
	Filter model.Filter
}

// SnapshotLoadedMsg carries the decoded persisted todo list. A missing
// or undecodable snapshot arrives as an empty list.
type SnapshotLoadedMsg struct {
	Todos []model.Todo
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

func NewModel() Model {
	m := Model{
		Filter:  model.FilterAll,
		Capture: true,
		Keys: GlobalKeyMap{
			Add:       "i",
			Edit:      "e",
			Remove:    "x",
			ToggleAll: "a",
			Filter:    "f",
			Help:      "?",
			Quit:      "q",
		},
	}
	m.initBubbleComponents()
	m.syncBubbleData()
	return m
}

func NewModelWithRuntime(store storage.Store, ids *ident.Generator, cfg RuntimeConfig) Model {
	m := NewModel()
	m.store = store
	m.ids = ids
	if cfg.InitialFilter != "" {
		if filter, err := model.ParseFilter(cfg.InitialFilter); err == nil {
			m.Filter = filter
		}
	}
	return m
}

func (m *Model) initBubbleComponents() {
	m.todoList = list.New([]list.Item{}, list.NewDefaultDelegate(), 56, 12)
	m.todoList.Title = "Todos (list)"
	m.todoList.SetShowHelp(false)
	m.todoList.SetFilteringEnabled(false)

	m.draftInput = textinput.New()
	m.draftInput.Prompt = "add> "
	m.draftInput.CharLimit = 256
	m.draftInput.Width = 42

	m.editInput = textinput.New()
	m.editInput.Prompt = "edit> "
	m.editInput.CharLimit = 256
	m.editInput.Width = 42

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.idSpinner = spinner.New()
	m.idSpinner.Spinner = spinner.Dot

	m.helpModel = help.New()
}

func (m *Model) syncBubbleData() {
	visible := m.visibleTodos()
	items := make([]list.Item, 0, len(visible))
	for _, t := range visible {
		state := "incomplete"
		if t.Done {
			state = "complete"
		}
		items = append(items, listItem{title: t.Text, description: state})
	}
	m.todoList.SetItems(items)
	if len(items) > 0 && m.Cursor < len(items) {
		m.todoList.Select(m.Cursor)
	}

	m.draftInput.SetValue(m.Draft)
	if m.Capture && m.Editing == nil && !m.Palette.Active {
		m.draftInput.Focus()
	}
	if m.Editing != nil {
		m.editInput.SetValue(m.Editing.Text)
		m.editInput.Focus()
	}
	m.commandInput.SetValue(m.Palette.Input)
	if m.Palette.Active {
		m.commandInput.Focus()
	}
}

// visibleTodos applies the active filter without reordering.
func (m Model) visibleTodos() []model.Todo {
	return model.Apply(m.Todos, m.Filter)
}

func (m Model) todoAtCursor() (model.Todo, bool) {
	visible := m.visibleTodos()
	if len(visible) == 0 || m.Cursor < 0 || m.Cursor >= len(visible) {
		return model.Todo{}, false
	}
	return visible[m.Cursor], true
}

func (m Model) waitingForID() bool {
	return m.ids != nil && m.PendingID == nil
}

func (m *Model) clampCursor() {
	max := len(m.visibleTodos()) - 1
	if m.Cursor > max {
		m.Cursor = max
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

func cloneTodos(todos []model.Todo) []model.Todo {
	out := make([]model.Todo, len(todos))
	copy(out, todos)
	return out
}
