package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Akashdeep-Patra/listkit/internal/collection"
	"github.com/Akashdeep-Patra/listkit/internal/selection"
	"github.com/Akashdeep-Patra/listkit/internal/ui"
)

// Dropdown is a trigger line that opens a List below it. Single-selection
// dropdowns close when an item is picked; multi-selection ones stay open.
type Dropdown[T any] struct {
	list        *List[T]
	styles      ui.Styles
	keys        ListKeyMap
	placeholder string

	open    bool
	focused bool
	width   int
	height  int
}

// NewDropdown creates a closed dropdown over coll.
func NewDropdown[T any](coll *collection.Collection[T], styles ui.Styles, opts ListOptions, placeholder string) *Dropdown[T] {
	l := NewList(coll, styles, opts)
	return &Dropdown[T]{
		list:        l,
		styles:      styles,
		keys:        l.opts.Keys,
		placeholder: placeholder,
	}
}

// List exposes the popup list.
func (d *Dropdown[T]) List() *List[T] { return d.list }

// IsOpen reports whether the popup is showing.
func (d *Dropdown[T]) IsOpen() bool { return d.open }

// SetSize gives the dropdown its space; the popup gets everything below the
// trigger.
func (d *Dropdown[T]) SetSize(width, height int) {
	d.width, d.height = width, height
	d.list.SetSize(width, max(0, height-1))
}

// Height is the number of rows the dropdown occupies.
func (d *Dropdown[T]) Height() int {
	if d.open {
		return 1 + d.list.Height()
	}
	return 1
}

// SetCollection replaces the options.
func (d *Dropdown[T]) SetCollection(coll *collection.Collection[T]) tea.Cmd {
	return d.list.SetCollection(coll)
}

// SetOpen opens or closes the popup.
func (d *Dropdown[T]) SetOpen(open bool) tea.Cmd {
	if open == d.open {
		return nil
	}
	d.open = open
	var cmd tea.Cmd
	if open {
		cmd = d.list.Focus()
	} else {
		d.list.focused = false
		d.list.drag.Cancel()
	}
	return tea.Sequence(emit(OpenChangeMsg{ListID: d.list.ID(), Open: open}), cmd)
}

// Focus gives the trigger keyboard focus.
func (d *Dropdown[T]) Focus() tea.Cmd {
	d.focused = true
	return nil
}

// Blur closes the popup. Tab-to-select applies to the highlighted option.
func (d *Dropdown[T]) Blur() tea.Cmd {
	d.focused = false
	closeCmd := d.SetOpen(false)
	return tea.Batch(closeCmd, d.list.Blur())
}

// Update handles list messages, keys and trigger-relative mouse events.
func (d *Dropdown[T]) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case SelectMsg[T]:
		return nil
	case tea.KeyMsg:
		if !d.focused {
			return nil
		}
		return d.handleKey(msg)
	case tea.MouseMsg:
		return d.handleMouse(msg)
	}
	return d.list.Update(msg)
}

func (d *Dropdown[T]) handleKey(msg tea.KeyMsg) tea.Cmd {
	if d.open {
		d.list.takeCommit()
		if cmd, handled := d.list.HandleKey(msg); handled {
			return d.closeOnCommit(cmd)
		}
		if key.Matches(msg, d.keys.Close) {
			return d.SetOpen(false)
		}
		return nil
	}

	switch {
	case key.Matches(msg, d.keys.Open):
		return d.SetOpen(true)
	case msg.Type == tea.KeyRunes && !msg.Alt && !d.list.Engine().Strategy().Multi():
		// Typing on a closed single-select trigger picks the match directly.
		e := d.list.Engine()
		idx, moved := e.TypeAhead(string(msg.Runes), d.list.now())
		if !moved {
			return nil
		}
		cmd := d.list.emitChange(e.Apply(selection.Interaction{Kind: selection.Key}))
		return tea.Sequence(d.list.emitHighlight(idx), cmd)
	}
	return nil
}

func (d *Dropdown[T]) handleMouse(msg tea.MouseMsg) tea.Cmd {
	inner := msg
	inner.Y--
	d.list.takeCommit()
	if d.list.Captured() {
		return d.closeOnCommit(d.list.HandleMouse(inner))
	}
	onTrigger := msg.Y == 0 && msg.X >= 0 && msg.X < d.width
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		switch {
		case onTrigger:
			return d.SetOpen(!d.open)
		case d.open && (msg.Y > d.list.Height() || msg.Y < 0):
			return d.SetOpen(false)
		}
	}
	if d.open && msg.Y >= 1 {
		return d.closeOnCommit(d.list.HandleMouse(inner))
	}
	return nil
}

// closeOnCommit closes a single-select popup once the list committed an
// item, including a re-click on the current value that changes nothing.
func (d *Dropdown[T]) closeOnCommit(cmd tea.Cmd) tea.Cmd {
	if _, ok := d.list.takeCommit(); !ok || d.list.Engine().Strategy().Multi() {
		return cmd
	}
	return tea.Sequence(cmd, d.SetOpen(false))
}

// Label is the trigger text: the placeholder, the selected label or a
// count for several selected items.
func (d *Dropdown[T]) Label() string {
	sel := d.list.Selection()
	switch len(sel) {
	case 0:
		return ""
	case 1:
		return sel[0].Label
	}
	return fmt.Sprintf("%d items selected", len(sel))
}

// View renders the trigger and, when open, the popup list.
func (d *Dropdown[T]) View() string {
	arrow := " ▾"
	style := d.styles.Trigger
	if d.open {
		arrow = " ▴"
		style = d.styles.TriggerOpen
	}
	inner := max(0, d.width-2-lipgloss.Width(arrow))

	label := d.Label()
	var text string
	if label == "" {
		text = d.styles.Placeholder.Render(ui.Fit(d.placeholder, inner))
	} else {
		text = ui.Fit(label, inner)
	}
	if d.focused && !d.open {
		style = style.Underline(true)
	}
	trigger := style.Render(text + arrow)

	if !d.open {
		return trigger
	}
	return trigger + "\n" + d.list.View()
}
