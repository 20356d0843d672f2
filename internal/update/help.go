package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/bryanjenningz/todotui/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return m.renderHelpView()
}

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.keyBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		Bindings: plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}

func (m Model) keyBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Add + "/enter", Action: "capture a new todo"},
		{Key: "esc", Action: "leave capture or edit mode"},
		{Key: "j/k", Action: "move cursor"},
		{Key: "space", Action: "toggle completion"},
		{Key: m.Keys.Edit, Action: "edit selected todo"},
		{Key: m.Keys.Remove, Action: "remove selected todo"},
		{Key: m.Keys.ToggleAll, Action: "toggle all todos"},
		{Key: m.Keys.Filter + "/1/2/3", Action: "cycle or set filter"},
		{Key: "/", Action: "open command palette"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit app"},
	}
}

func (m Model) helpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(m.keyBindings()))
	for _, kb := range m.keyBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
