package views

import (
	"fmt"
	"strings"
)

type TodoItemData struct {
	ID   int64
	Text string
	Done bool
}

type TodoPanelData struct {
	QuickAddView string
	IDWaitView   string
	ListView     string
	Items        []TodoItemData
	SelectedID   int64
	HasSelection bool
	Filter       string
	ItemsLeft    int
	AllComplete  bool
}

type EditPanelData struct {
	Active    bool
	ID        int64
	InputView string
}

type HelpPanelData struct {
	Bindings []string
	HelpView string
}

func RenderTodoPanel(data TodoPanelData) string {
	var b strings.Builder
	b.WriteString("todos:\n")
	b.WriteString(data.QuickAddView + "\n")
	if data.IDWaitView != "" {
		b.WriteString(fmt.Sprintf("add disabled: %s waiting for id\n", data.IDWaitView))
	}
	b.WriteString("actions: [enter]add [space]toggle [e]edit [x]remove [a]toggle-all [f]filter\n")
	b.WriteString(fmt.Sprintf("filter: %s | %d items left\n", data.Filter, data.ItemsLeft))
	if data.AllComplete && len(data.Items) > 0 {
		b.WriteString("all complete\n")
	}
	if data.ListView != "" {
		b.WriteString(data.ListView + "\n")
	}
	if len(data.Items) == 0 {
		b.WriteString("(no todos)")
		return strings.TrimSpace(b.String())
	}
	for _, item := range data.Items {
		cursor := " "
		if data.HasSelection && data.SelectedID == item.ID {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s %s (%d)\n", cursor, doneMarker(item.Done), item.Text, item.ID))
	}
	return strings.TrimSpace(b.String())
}

func RenderEditPanel(data EditPanelData) string {
	if !data.Active {
		return ""
	}
	var b strings.Builder
	b.WriteString("edit:\n")
	b.WriteString(fmt.Sprintf("id: %d\n", data.ID))
	b.WriteString(data.InputView + "\n")
	b.WriteString("keys: [enter]save [esc]cancel")
	return b.String()
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\n%s\n%s",
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}

func doneMarker(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
