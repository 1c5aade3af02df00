package replay

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the replay view.
type keyMap struct {
	pause   key.Binding
	faster  key.Binding
	slower  key.Binding
	finish  key.Binding
	restart key.Binding
	mute    key.Binding
	help    key.Binding
	about   key.Binding
	quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		pause:   key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space/p", "pause")),
		faster:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "faster")),
		slower:  key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "slower")),
		finish:  key.NewBinding(key.WithKeys("f", "end"), key.WithHelp("f", "finish")),
		restart: key.NewBinding(key.WithKeys("r", "home"), key.WithHelp("r", "restart")),
		mute:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sound")),
		help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		about:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "about")),
		quit:    key.NewBinding(key.WithKeys("q", "ctrl+c", "enter", "esc"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.pause, k.help, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.pause, k.faster, k.slower},
		{k.finish, k.restart, k.mute},
		{k.help, k.about, k.quit},
	}
}
