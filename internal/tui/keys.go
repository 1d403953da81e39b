package tui

import "github.com/charmbracelet/bubbles/key"

// StandardKeys defines the key bindings of the outline browser.
type StandardKeys struct {
	Quit   key.Binding
	Select key.Binding
	Back   key.Binding
	Filter key.Binding
	Help   key.Binding
}

// NewStandardKeys creates a standard set of key bindings.
func NewStandardKeys() StandardKeys {
	return StandardKeys{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", "right", "l"),
			key.WithHelp("enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("backspace", "left", "h"),
			key.WithHelp("backspace", "back"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// ShortHelp returns a slice of key bindings for the short help view.
func (k StandardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Back, k.Help, k.Quit}
}

// FullHelp returns every binding, listed when help is toggled on.
func (k StandardKeys) FullHelp() []key.Binding {
	return []key.Binding{k.Select, k.Back, k.Filter, k.Help, k.Quit}
}

// Shortcuts converts bindings to footer entries keyed by their help key.
func Shortcuts(bindings []key.Binding) []ShortcutEntry {
	out := make([]ShortcutEntry, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		out = append(out, ShortcutEntry{Key: h.Key, Label: h.Key + " " + h.Desc})
	}
	return out
}
