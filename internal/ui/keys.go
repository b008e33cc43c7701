package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the display key bindings. It satisfies help.KeyMap.
type keyMap struct {
	PrevDay key.Binding
	NextDay key.Binding
	Today   key.Binding
	Pause   key.Binding
	Catch   key.Binding
	Catches key.Binding
	Back    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevDay, k.NextDay, k.Today, k.Catch, k.Catches, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevDay, k.NextDay, k.Today},
		{k.Pause, k.Catch, k.Catches, k.Back},
		{k.Help, k.Quit},
	}
}

var keys = keyMap{
	PrevDay: key.NewBinding(
		key.WithKeys("[", "left"),
		key.WithHelp("[", "prev day"),
	),
	NextDay: key.NewBinding(
		key.WithKeys("]", "right"),
		key.WithHelp("]", "next day"),
	),
	Today: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "today"),
	),
	Pause: key.NewBinding(
		key.WithKeys("p", " "),
		key.WithHelp("p", "pause flow"),
	),
	Catch: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "log catch"),
	),
	Catches: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "catches"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
