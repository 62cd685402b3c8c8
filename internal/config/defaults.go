package config

// KeyBindings maps actions to keys. Letter keys are left free for
// type-to-select.
type KeyBindings struct {
	Quit     []string
	Help     []string
	Tab      []string
	ShiftTab []string
	Save     []string
	Reload   []string

	Up       []string
	Down     []string
	Left     []string
	Right    []string
	PageUp   []string
	PageDown []string
	Home     []string
	End      []string
	Select   []string
	Extend   []string
	Toggle   []string
	Clear    []string

	Open   []string
	Close  []string
	Cancel []string
}

// DefaultKeyBindings returns the default key bindings.
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Quit:     []string{"ctrl+c"},
		Help:     []string{"?"},
		Tab:      []string{"tab"},
		ShiftTab: []string{"shift+tab"},
		Save:     []string{"ctrl+s"},
		Reload:   []string{"ctrl+r"},

		Up:       []string{"up"},
		Down:     []string{"down"},
		Left:     []string{"left"},
		Right:    []string{"right"},
		PageUp:   []string{"pgup"},
		PageDown: []string{"pgdown"},
		Home:     []string{"home"},
		End:      []string{"end"},
		Select:   []string{"enter", " "},
		Extend:   []string{"shift+up", "shift+down", "shift+left", "shift+right"},
		Toggle:   []string{"ctrl+@"},
		Clear:    []string{"ctrl+x"},

		Open:   []string{"enter", " ", "alt+down"},
		Close:  []string{"esc", "alt+up"},
		Cancel: []string{"esc"},
	}
}
