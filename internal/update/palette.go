package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bryanjenningz/todotui/internal/commands"
	"github.com/bryanjenningz/todotui/internal/model"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
		return m, nil
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	m.Palette.Input = m.commandInput.Value()
	return m, cmd
}

func (m Model) executePaletteCommand() (Model, tea.Cmd) {
	raw := m.Palette.Input
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()

	parsed, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	var outCmd tea.Cmd
	res, err := commands.Execute(parsed, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			m.Draft = a.Text
			var added bool
			m, outCmd, added = m.applyAddTodo()
			if !added {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "add disabled: waiting for an id"}
			}
			return commands.Result{Message: fmt.Sprintf("added: %s", a.Text)}, nil
		},
		Toggle: func(a commands.ToggleArgs) (commands.Result, error) {
			if a.All {
				m, outCmd = m.applyToggleAll(a.Done)
				return commands.Result{Message: "toggled all"}, nil
			}
			var ok bool
			m, outCmd, ok = m.applyToggleTodo(a.ID, a.Done)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no todo with id %d", a.ID)}
			}
			return commands.Result{Message: fmt.Sprintf("toggled %d", a.ID)}, nil
		},
		Remove: func(a commands.RemoveArgs) (commands.Result, error) {
			var ok bool
			m, outCmd, ok = m.applyRemoveTodo(a.ID)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no todo with id %d", a.ID)}
			}
			return commands.Result{Message: fmt.Sprintf("removed %d", a.ID)}, nil
		},
		Filter: func(a commands.FilterArgs) (commands.Result, error) {
			filter, parseErr := model.ParseFilter(a.Name)
			if parseErr != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown filter: %s", a.Name)}
			}
			m = m.setFilter(filter)
			return commands.Result{Message: fmt.Sprintf("filter: %s", filter)}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, outCmd
	}
	m.Status = StatusBar{Text: res.Message, IsError: false}
	return m, outCmd
}
