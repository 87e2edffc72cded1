package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Add    key.Binding
	Toggle key.Binding
	Delete key.Binding
	Start  key.Binding
	Pause  key.Binding
	Reset  key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
	Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Start:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start")),
	Pause:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
	Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// extraBindings feed the list's help footer, same trick the list uses for
// its own keys.
func (k keyMap) extraBindings() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Delete, k.Start, k.Pause, k.Reset}
}
