package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Nope    key.Binding
	Like    key.Binding
	Back    key.Binding
	Forward key.Binding
	Reload  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Nope:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "nope")),
		Like:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "like")),
		Back:    key.NewBinding(key.WithKeys("b", "alt+left"), key.WithHelp("b", "back")),
		Forward: key.NewBinding(key.WithKeys("f", "alt+right"), key.WithHelp("f", "forward")),
		Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Nope, k.Like, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Nope, k.Like}, {k.Back, k.Forward, k.Reload}, {k.Help, k.Quit}}
}
