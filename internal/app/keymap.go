package app

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/Akashdeep-Patra/listkit/internal/config"
)

// KeyMap defines the global keybindings used across the application.
// Letters are never bound here; the lists use them for type-to-select.
type KeyMap struct {
	Quit    key.Binding
	Help    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Save    key.Binding
	Reload  key.Binding
	Back    key.Binding

	// Alt+digit tab shortcuts, matching the hints in the tab bar.
	TabList     key.Binding
	TabStrip    key.Binding
	TabDropdown key.Binding
	TabCombobox key.Binding
}

// NewKeyMap builds the global bindings from the configured keys.
func NewKeyMap(kb config.KeyBindings) KeyMap {
	return KeyMap{
		Quit:    key.NewBinding(key.WithKeys(kb.Quit...), key.WithHelp("ctrl+c", "quit")),
		Help:    key.NewBinding(key.WithKeys(kb.Help...), key.WithHelp("?", "help")),
		NextTab: key.NewBinding(key.WithKeys(kb.Tab...), key.WithHelp("tab", "next tab")),
		PrevTab: key.NewBinding(key.WithKeys(kb.ShiftTab...), key.WithHelp("shift+tab", "prev tab")),
		Save:    key.NewBinding(key.WithKeys(kb.Save...), key.WithHelp("ctrl+s", "save order")),
		Reload:  key.NewBinding(key.WithKeys(kb.Reload...), key.WithHelp("ctrl+r", "reload")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),

		TabList:     key.NewBinding(key.WithKeys("alt+1"), key.WithHelp("alt+1", "list")),
		TabStrip:    key.NewBinding(key.WithKeys("alt+2"), key.WithHelp("alt+2", "strip")),
		TabDropdown: key.NewBinding(key.WithKeys("alt+3"), key.WithHelp("alt+3", "dropdown")),
		TabCombobox: key.NewBinding(key.WithKeys("alt+4"), key.WithHelp("alt+4", "combobox")),
	}
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap { return NewKeyMap(config.DefaultKeyBindings()) }
