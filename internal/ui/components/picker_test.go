package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akashdeep-Patra/listkit/internal/selection"
)

// feed delivers msgs back to an updater and returns what it emits.
func feed(update func(tea.Msg) tea.Cmd, msgs []tea.Msg) []tea.Msg {
	var out []tea.Msg
	for _, m := range msgs {
		out = append(out, collect(update(m))...)
	}
	return out
}

// ── Dropdown ────────────────────────────────────────────────────────────────

func newTestDropdown(t *testing.T, strategy selection.Strategy) *Dropdown[string] {
	t.Helper()
	d := NewDropdown(numbered(t, 4), testStyles, ListOptions{
		ID:        "dd",
		Displayed: 4,
		Selection: selection.Options{Strategy: strategy},
	}, "Pick one")
	d.SetSize(30, 8)
	d.Focus()
	return d
}

func TestDropdown_SingleSelectCloses(t *testing.T) {
	d := newTestDropdown(t, selection.Default)
	assert.Contains(t, d.View(), "Pick one")
	assert.Equal(t, 1, d.Height())

	msgs := collect(d.Update(keyMsg(tea.KeyEnter)))
	require.NotEmpty(t, msgs)
	assert.Equal(t, OpenChangeMsg{ListID: "dd", Open: true}, msgs[0])
	assert.True(t, d.IsOpen())
	assert.Equal(t, 5, d.Height())

	collect(d.Update(keyMsg(tea.KeyDown)))
	msgs = collect(d.Update(keyMsg(tea.KeyEnter)))
	require.Len(t, msgsOf[SelectMsg[string]](msgs), 1)
	assert.Contains(t, msgs, tea.Msg(OpenChangeMsg{ListID: "dd", Open: false}))
	assert.False(t, d.IsOpen())

	assert.Empty(t, feed(d.Update, msgs), "the select echo is a no-op")
	assert.Equal(t, "Item 01", d.Label())
	assert.Contains(t, d.View(), "Item 01")
}

func TestDropdown_ReclickingCurrentValueCloses(t *testing.T) {
	d := newTestDropdown(t, selection.Default)
	collect(d.Update(press(2, 0)))
	feed(d.Update, collect(d.Update(press(2, 2))))
	require.False(t, d.IsOpen())
	require.Equal(t, "Item 01", d.Label())

	collect(d.Update(press(2, 0)))
	require.True(t, d.IsOpen())
	msgs := collect(d.Update(press(2, 2)))
	assert.Empty(t, msgsOf[SelectMsg[string]](msgs), "the selection did not change")
	assert.Contains(t, msgs, tea.Msg(OpenChangeMsg{ListID: "dd", Open: false}))
	assert.False(t, d.IsOpen())

	collect(d.Update(keyMsg(tea.KeyEnter)))
	require.True(t, d.IsOpen())
	collect(d.Update(keyMsg(tea.KeyEnter)))
	assert.False(t, d.IsOpen(), "enter on the current value closes too")
}

func TestDropdown_MultiStaysOpen(t *testing.T) {
	d := newTestDropdown(t, selection.Multiple)
	collect(d.Update(keyMsg(tea.KeyEnter)))

	feed(d.Update, collect(d.Update(keyMsg(tea.KeyEnter))))
	collect(d.Update(keyMsg(tea.KeyDown)))
	feed(d.Update, collect(d.Update(keyMsg(tea.KeyEnter))))

	assert.True(t, d.IsOpen())
	assert.Equal(t, "2 items selected", d.Label())

	collect(d.Update(keyMsg(tea.KeyEsc)))
	assert.False(t, d.IsOpen())
}

func TestDropdown_TypingOnClosedTriggerSelects(t *testing.T) {
	d := NewDropdown(fruits(t), testStyles, ListOptions{ID: "fruit"}, "Fruit")
	d.SetSize(30, 8)
	d.Focus()

	msgs := collect(d.Update(runes("c")))
	assert.Contains(t, msgs, tea.Msg(HighlightMsg{ListID: "fruit", Index: 2}))
	assert.False(t, d.IsOpen())
	assert.Equal(t, "Cherry", d.Label())
}

func TestDropdown_MouseOpenAndPick(t *testing.T) {
	d := newTestDropdown(t, selection.Default)

	collect(d.Update(press(2, 0)))
	require.True(t, d.IsOpen())

	msgs := collect(d.Update(press(2, 2)))
	sel := msgsOf[SelectMsg[string]](msgs)
	require.Len(t, sel, 1)
	assert.Equal(t, "i1", sel[0].Item.ID)

	feed(d.Update, msgs)
	assert.False(t, d.IsOpen())
}

func TestDropdown_IgnoresKeysWhenBlurred(t *testing.T) {
	d := newTestDropdown(t, selection.Default)
	d.Blur()
	assert.Nil(t, d.Update(keyMsg(tea.KeyEnter)))
	assert.False(t, d.IsOpen())
}

// ── Combobox ────────────────────────────────────────────────────────────────

func newTestCombobox(t *testing.T) *Combobox[string] {
	t.Helper()
	c := NewCombobox(fruits(t), testStyles, ListOptions{ID: "cb"}, "Search fruit")
	c.SetSize(30, 8)
	_ = c.Focus()
	return c
}

func TestCombobox_Filter(t *testing.T) {
	c := newTestCombobox(t)

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"Apple", "Banana", "Cherry", "Mango", "Orange"}},
		{"an", []string{"Banana", "Mango", "Orange"}},
		{"AN", []string{"Banana", "Mango", "Orange"}},
		{"  err ", []string{"Cherry"}},
		{"kiwi", nil},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var got []string
			for _, it := range c.Filter(tt.query).Items() {
				got = append(got, it.Label)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCombobox_TypeAndCommit(t *testing.T) {
	c := newTestCombobox(t)
	assert.True(t, c.InputCapture())

	_ = c.Update(runes("c"))
	_ = c.Update(runes("h"))
	require.True(t, c.IsOpen())
	assert.Equal(t, "ch", c.Query())
	assert.Equal(t, 1, c.List().Collection().Len())

	msgs := collect(c.Update(keyMsg(tea.KeyEnter)))
	require.Len(t, msgsOf[SelectMsg[string]](msgs), 1)
	feed(c.Update, msgs)

	v, ok := c.Value()
	require.True(t, ok)
	assert.Equal(t, "Cherry", v.Label)
	assert.Equal(t, "Cherry", c.Query())
	assert.False(t, c.IsOpen())
	assert.Equal(t, 5, c.List().Collection().Len(), "the filter clears once the value is committed")
}

func TestCombobox_EscRestoresValue(t *testing.T) {
	c := newTestCombobox(t)
	_ = c.Update(runes("ban"))
	feed(c.Update, collect(c.Update(keyMsg(tea.KeyEnter))))
	require.Equal(t, "Banana", c.Query())

	_ = c.Update(runes("x"))
	require.True(t, c.IsOpen())
	assert.Equal(t, 0, c.List().Collection().Len())
	assert.Contains(t, c.View(), "No matches")

	_ = c.Update(keyMsg(tea.KeyEsc))
	assert.False(t, c.IsOpen())
	assert.Equal(t, "Banana", c.Query())
}

func TestCombobox_SpaceIsText(t *testing.T) {
	c := newTestCombobox(t)
	_ = c.Update(runes("a"))
	_ = c.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.Equal(t, "a ", c.Query())
	assert.Empty(t, c.List().Selection())
}
