package components

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/Akashdeep-Patra/listkit/internal/config"
)

// ListKeyMap holds the bindings a list widget reacts to.
type ListKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Select   key.Binding
	Extend   key.Binding
	Toggle   key.Binding
	Clear    key.Binding
	Open     key.Binding
	Close    key.Binding
	Cancel   key.Binding
}

// NewListKeyMap builds the list bindings from the configured keys.
func NewListKeyMap(kb config.KeyBindings) ListKeyMap {
	return ListKeyMap{
		Up:       key.NewBinding(key.WithKeys(kb.Up...), key.WithHelp("↑", "previous")),
		Down:     key.NewBinding(key.WithKeys(kb.Down...), key.WithHelp("↓", "next")),
		Left:     key.NewBinding(key.WithKeys(kb.Left...), key.WithHelp("←", "previous")),
		Right:    key.NewBinding(key.WithKeys(kb.Right...), key.WithHelp("→", "next")),
		PageUp:   key.NewBinding(key.WithKeys(kb.PageUp...), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys(kb.PageDown...), key.WithHelp("pgdn", "page down")),
		Home:     key.NewBinding(key.WithKeys(kb.Home...), key.WithHelp("home", "first")),
		End:      key.NewBinding(key.WithKeys(kb.End...), key.WithHelp("end", "last")),
		Select:   key.NewBinding(key.WithKeys(kb.Select...), key.WithHelp("enter", "select")),
		Extend:   key.NewBinding(key.WithKeys(kb.Extend...), key.WithHelp("shift+↑↓", "extend")),
		Toggle:   key.NewBinding(key.WithKeys(kb.Toggle...), key.WithHelp("ctrl+space", "toggle")),
		Clear:    key.NewBinding(key.WithKeys(kb.Clear...), key.WithHelp("ctrl+x", "clear")),
		Open:     key.NewBinding(key.WithKeys(kb.Open...), key.WithHelp("enter", "open")),
		Close:    key.NewBinding(key.WithKeys(kb.Close...), key.WithHelp("esc", "close")),
		Cancel:   key.NewBinding(key.WithKeys(kb.Cancel...), key.WithHelp("esc", "cancel drag")),
	}
}

// DefaultListKeyMap returns the bindings for the default key configuration.
func DefaultListKeyMap() ListKeyMap { return NewListKeyMap(config.DefaultKeyBindings()) }
