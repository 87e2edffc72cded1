package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/focusdeck/internal/model"
	"github.com/idilsaglam/focusdeck/internal/ui"
)

// taskItem adapts a model.Task to bubbles/list.Item.
type taskItem struct {
	task model.Task
}

func (i taskItem) Title() string {
	t := ui.Current()
	box := t.BoxUnchecked
	if i.task.Done {
		box = t.BoxChecked
	}
	return fmt.Sprintf("%s %s", box, i.task.Text)
}

func (i taskItem) Description() string { return "" }
func (i taskItem) FilterValue() string { return i.task.Text }

// taskDelegate renders items on a single line.
type taskDelegate struct{}

func (d taskDelegate) Height() int                               { return 1 }
func (d taskDelegate) Spacing() int                              { return 0 }
func (d taskDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(taskItem)
	if !ok {
		return
	}
	t := ui.Current()

	box := t.Muted.Render(t.BoxUnchecked)
	text := it.task.Text
	if it.task.Done {
		box = t.Success.Render(t.BoxChecked)
		text = t.Done.Render(text)
	}

	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render("> ")
	}
	fmt.Fprintln(w, prefix+box+" "+text)
}
