package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"pixelpulse/internal/config"
)

type keyMap struct {
	Quit     key.Binding
	Focus    key.Binding
	Up       key.Binding
	Down     key.Binding
	Toggle   key.Binding
	Delete   key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
	TabTasks key.Binding
	TabNotes key.Binding
	TabMood  key.Binding
	Confirm  key.Binding
	Cancel   key.Binding
}

func newKeyMap(k config.Keymap) keyMap {
	return keyMap{
		Quit:     bind("quit", k.Quit, "ctrl+c"),
		Focus:    bind("write", k.Focus),
		Up:       bind("up", k.Up, "up"),
		Down:     bind("down", k.Down, "down"),
		Toggle:   bind("toggle", k.Toggle),
		Delete:   bind("delete", k.Delete),
		NextTab:  bind("next tab", k.NextTab),
		PrevTab:  bind("prev tab", k.PrevTab),
		TabTasks: bind("tasks", k.TabTasks),
		TabNotes: bind("notes", k.TabNotes),
		TabMood:  bind("mood", k.TabMood),
		Confirm:  bind("add", k.Confirm),
		Cancel:   bind("back", k.Cancel),
	}
}

func bind(desc, primary string, extra ...string) key.Binding {
	keys := append([]string{primary}, extra...)
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(keyLabel(primary), desc),
	)
}

func keyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

func (k keyMap) listHelp(tasksTab bool) []key.Binding {
	b := []key.Binding{k.Up, k.Down, k.Focus}
	if tasksTab {
		b = append(b, k.Toggle)
	}
	return append(b, k.Delete, k.NextTab, k.Quit)
}

func (k keyMap) inputHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel}
}
