package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"

	"github.com/Akashdeep-Patra/listkit/internal/collection"
	"github.com/Akashdeep-Patra/listkit/internal/dragdrop"
	"github.com/Akashdeep-Patra/listkit/internal/selection"
	"github.com/Akashdeep-Patra/listkit/internal/ui"
)

// Combobox is a text input that filters a popup list of options. The list
// is single-select with type-to-select and drag disabled; typed text goes to
// the input.
type Combobox[T any] struct {
	input  textinput.Model
	list   *List[T]
	all    *collection.Collection[T]
	styles ui.Styles
	keys   ListKeyMap
	fold   cases.Caser

	// value is the committed option. Filtering never clears it.
	value *collection.Item[T]

	open    bool
	focused bool
	width   int
	height  int
}

// NewCombobox creates a closed combobox over coll.
func NewCombobox[T any](coll *collection.Collection[T], styles ui.Styles, opts ListOptions, placeholder string) *Combobox[T] {
	opts.Selection.Strategy = selection.Default
	opts.Selection.DisableTypeToSelect = true
	opts.Drag.Mode = dragdrop.Off
	opts.OverflowLabel = ""

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "⌕ "
	ti.CharLimit = 120

	l := NewList(coll, styles, opts)
	return &Combobox[T]{
		input:  ti,
		list:   l,
		all:    l.Collection(),
		styles: styles,
		keys:   l.opts.Keys,
		fold:   cases.Fold(),
	}
}

// List exposes the popup list.
func (c *Combobox[T]) List() *List[T] { return c.list }

// IsOpen reports whether the popup is showing.
func (c *Combobox[T]) IsOpen() bool { return c.open }

// Value returns the committed option.
func (c *Combobox[T]) Value() (collection.Item[T], bool) {
	if c.value == nil {
		return collection.Item[T]{}, false
	}
	return *c.value, true
}

// Query returns the input text.
func (c *Combobox[T]) Query() string { return c.input.Value() }

// InputCapture reports whether keys should go to the text input.
func (c *Combobox[T]) InputCapture() bool { return c.focused }

// SetSize gives the combobox its space.
func (c *Combobox[T]) SetSize(width, height int) {
	c.width, c.height = width, height
	c.input.Width = max(1, width-lipgloss.Width(c.input.Prompt)-3)
	c.list.SetSize(width, max(0, height-1))
}

// Height is the number of rows the combobox occupies.
func (c *Combobox[T]) Height() int {
	if c.open {
		return 1 + c.list.Height()
	}
	return 1
}

// SetCollection replaces the options and re-applies the filter. A committed
// value that no longer exists is dropped.
func (c *Combobox[T]) SetCollection(coll *collection.Collection[T]) tea.Cmd {
	if coll == nil {
		coll = collection.Empty[T]()
	}
	c.all = coll
	if c.value != nil {
		if it, ok := coll.Get(c.value.ID); ok {
			c.value = &it
		} else {
			c.value = nil
		}
	}
	c.refilter()
	return nil
}

// Filter returns the options whose label contains query, ignoring case.
func (c *Combobox[T]) Filter(query string) *collection.Collection[T] {
	q := c.fold.String(strings.TrimSpace(query))
	if q == "" {
		return c.all
	}
	return c.all.Filter(func(it collection.Item[T]) bool {
		return it.Header || strings.Contains(c.fold.String(it.Label), q)
	})
}

// refilter narrows the list to the current query. The list's own selection
// follows silently; the committed value lives on the combobox.
func (c *Combobox[T]) refilter() {
	query := c.input.Value()
	if c.value != nil && query == c.value.Label {
		query = ""
	}
	c.list.SetCollection(c.Filter(query))
	if c.open {
		c.list.engine.HighlightFirst()
		c.list.ScrollTo(0)
	}
}

// SetOpen opens or closes the popup.
func (c *Combobox[T]) SetOpen(open bool) tea.Cmd {
	if open == c.open {
		return nil
	}
	c.open = open
	if open {
		c.list.focused = true
		c.list.engine.HighlightFirst()
	} else {
		c.list.focused = false
	}
	return emit(OpenChangeMsg{ListID: c.list.ID(), Open: open})
}

// Focus focuses the text input.
func (c *Combobox[T]) Focus() tea.Cmd {
	c.focused = true
	return c.input.Focus()
}

// Blur closes the popup and restores the committed value's label.
func (c *Combobox[T]) Blur() tea.Cmd {
	c.focused = false
	c.input.Blur()
	c.restore()
	return c.SetOpen(false)
}

func (c *Combobox[T]) restore() {
	if c.value != nil {
		c.input.SetValue(c.value.Label)
	} else {
		c.input.Reset()
	}
	c.refilter()
}

// Update handles list messages, keys and input-relative mouse events.
func (c *Combobox[T]) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case SelectMsg[T]:
		if msg.ListID != c.list.ID() {
			return nil
		}
		return c.commit(msg.Item)
	case tea.KeyMsg:
		if !c.focused {
			return nil
		}
		return c.handleKey(msg)
	case tea.MouseMsg:
		return c.handleMouse(msg)
	}
	if !c.focused {
		return c.list.Update(msg)
	}
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return tea.Batch(cmd, c.list.Update(msg))
}

// commit makes it the committed value and closes the popup.
func (c *Combobox[T]) commit(it collection.Item[T]) tea.Cmd {
	c.value = &it
	c.input.SetValue(it.Label)
	c.input.CursorEnd()
	c.refilter()
	return c.SetOpen(false)
}

func (c *Combobox[T]) handleKey(msg tea.KeyMsg) tea.Cmd {
	k := c.keys
	if c.open {
		switch {
		case key.Matches(msg, k.Up), key.Matches(msg, k.Down),
			key.Matches(msg, k.PageUp), key.Matches(msg, k.PageDown):
			cmd, _ := c.list.HandleKey(msg)
			return cmd
		case msg.Type == tea.KeyEnter:
			c.list.takeCommit()
			cmd, _ := c.list.HandleKey(msg)
			return c.commitTaken(cmd)
		case key.Matches(msg, k.Close):
			c.restore()
			return c.SetOpen(false)
		}
	} else if key.Matches(msg, k.Down) || msg.String() == "alt+down" {
		return c.SetOpen(true)
	}

	before := c.input.Value()
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	if c.input.Value() == before {
		return cmd
	}
	c.refilter()
	return tea.Batch(cmd, c.SetOpen(true))
}

func (c *Combobox[T]) handleMouse(msg tea.MouseMsg) tea.Cmd {
	inner := msg
	inner.Y--
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && msg.Y == 0 {
		return c.SetOpen(!c.open)
	}
	if c.open && msg.Y >= 1 {
		c.list.takeCommit()
		return c.commitTaken(c.list.HandleMouse(inner))
	}
	return nil
}

// commitTaken commits whatever the list just landed on, so picking the
// current value again still closes the popup.
func (c *Combobox[T]) commitTaken(cmd tea.Cmd) tea.Cmd {
	it, ok := c.list.takeCommit()
	if !ok {
		return cmd
	}
	return tea.Sequence(cmd, c.commit(it))
}

// View renders the input and, when open, the filtered list.
func (c *Combobox[T]) View() string {
	style := c.styles.Trigger
	if c.open {
		style = c.styles.TriggerOpen
	}
	line := style.Render(ui.Fit(c.input.View(), max(0, c.width-2)))
	if !c.open {
		return line
	}
	if c.list.Collection().Len() == 0 {
		return line + "\n" + c.styles.Placeholder.Render(ui.Fit(" No matches", c.width))
	}
	return line + "\n" + c.list.View()
}
