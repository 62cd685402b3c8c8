package views

import (
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akashdeep-Patra/listkit/internal/collection"
	"github.com/Akashdeep-Patra/listkit/internal/common"
	"github.com/Akashdeep-Patra/listkit/internal/config"
	"github.com/Akashdeep-Patra/listkit/internal/dragdrop"
	"github.com/Akashdeep-Patra/listkit/internal/ui"
	"github.com/Akashdeep-Patra/listkit/internal/ui/components"
)

var cmdType = reflect.TypeOf((*tea.Cmd)(nil)).Elem()

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if msg == nil {
		return nil
	}
	if v := reflect.ValueOf(msg); v.Kind() == reflect.Slice && v.Type().Elem() == cmdType {
		var out []tea.Msg
		for i := range v.Len() {
			c, _ := v.Index(i).Interface().(tea.Cmd)
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func testItems(t *testing.T) common.Items {
	t.Helper()
	doc := &collection.Document{Items: []collection.Record{
		{ID: "a", Label: "Alpha"},
		{ID: "b", Label: "Bravo"},
		{ID: "c", Label: "Charlie"},
		{ID: "d", Label: "Delta"},
	}}
	items, err := collection.ToCollection(doc)
	require.NoError(t, err)
	return items
}

func testOptions(dragMode string) Options {
	return Options{
		Styles: ui.DefaultStyles(),
		Keys:   components.DefaultListKeyMap(),
		List: config.ListOptions{
			SelectionStrategy:  "default",
			AllowDragDrop:      dragMode,
			Orientation:        "vertical",
			DisplayedItemCount: 10,
			ItemHeight:         1,
			ItemWidth:          12,
			RenderBuffer:       2,
			DragThreshold:      dragdrop.DefaultDragThreshold,
			HoldTimeout:        dragdrop.DefaultHoldTimeout,
			ScrollInterval:     dragdrop.DefaultScrollInterval,
			ScrollStep:         1,
			SettleDuration:     dragdrop.DefaultSettleDuration,
			SpacerFrames:       dragdrop.DefaultSpacerFrames,
		},
	}
}

func leftPress(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestListView_DropBecomesMove(t *testing.T) {
	v, err := NewListView(testItems(t), testOptions("natural-movement"))
	require.NoError(t, err)

	_, cmd := v.Update(dragdrop.DropMsg{ListID: ListID, From: 0, To: 2})
	assert.Equal(t, []tea.Msg{common.MoveMsg{From: 0, To: 2}}, collect(cmd))
	assert.Equal(t, "moved Alpha → 3", v.Status().Detail)

	_, cmd = v.Update(dragdrop.DropMsg{ListID: StripID, From: 0, To: 2})
	assert.Nil(t, cmd, "drops from other lists are ignored")
}

func TestListView_ClickBelowHeader(t *testing.T) {
	v, err := NewListView(testItems(t), testOptions("off"))
	require.NoError(t, err)
	v.SetSize(80, 20)

	_, cmd := v.Update(leftPress(3, headerRows+1))
	msgs := collect(cmd)
	require.NotEmpty(t, msgs)
	change, ok := msgs[0].(components.SelectionChangeMsg[record])
	require.True(t, ok)
	assert.Equal(t, []string{"b"}, change.Selection.IDs())

	status := v.Status()
	assert.Equal(t, "default", status.Strategy)
	assert.Equal(t, 1, status.Selected)
	assert.Equal(t, 4, status.Total)
	assert.Contains(t, v.View(), "Selected (1)")
}

func TestListView_CollectionMsgPrunesSelection(t *testing.T) {
	v, err := NewListView(testItems(t), testOptions("off"))
	require.NoError(t, err)
	v.SetSize(80, 20)
	_, cmd := v.Update(leftPress(3, headerRows))
	collect(cmd)
	require.Equal(t, 1, v.Status().Selected)

	next := testItems(t).Filter(func(it collection.Item[record]) bool { return it.ID != "a" })
	_, cmd = v.Update(common.CollectionMsg{Items: next, Title: "Trimmed"})
	msgs := collect(cmd)
	require.NotEmpty(t, msgs)
	change, ok := msgs[0].(components.SelectionChangeMsg[record])
	require.True(t, ok)
	assert.Empty(t, change.Selection)
	assert.Equal(t, 3, v.Status().Total)
	assert.Contains(t, v.View(), "Trimmed")
}

func TestStripView_OverflowDropMovesToEnd(t *testing.T) {
	v, err := NewStripView(testItems(t), testOptions("natural-movement"))
	require.NoError(t, err)
	v.SetSize(80, 10)
	assert.Contains(t, v.View(), overflowLabel)

	_, cmd := v.Update(dragdrop.DropMsg{ListID: StripID, From: 1, To: -1})
	assert.Equal(t, []tea.Msg{common.MoveMsg{From: 1, To: -1}}, collect(cmd))
	assert.Equal(t, "moved Bravo → end", v.Status().Detail)
}

func TestDropdownView_MouseOffsets(t *testing.T) {
	v, err := NewDropdownView(testItems(t), testOptions("natural-movement"))
	require.NoError(t, err)
	v.SetSize(80, 20)
	collect(v.Focus())

	_, cmd := v.Update(leftPress(pickerIndent+1, headerRows))
	collect(cmd)
	require.True(t, v.Dropdown().IsOpen())
	assert.Equal(t, "open", v.Status().Detail)

	_, cmd = v.Update(leftPress(pickerIndent+1, headerRows+3))
	msgs := collect(cmd)
	for _, m := range msgs {
		_, fcmd := v.Update(m)
		collect(fcmd)
	}
	assert.False(t, v.Dropdown().IsOpen())
	assert.Equal(t, "Charlie", v.Dropdown().Label())
	assert.Contains(t, v.View(), "Charlie")
}

func TestComboboxView_CapturesInputWhileFocused(t *testing.T) {
	v, err := NewComboboxView(testItems(t), testOptions("natural-movement"))
	require.NoError(t, err)
	v.SetSize(80, 20)
	assert.False(t, v.InputCapture())

	_ = v.Focus()
	assert.True(t, v.InputCapture())

	_, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("del")})
	require.True(t, v.Combobox().IsOpen())
	assert.Equal(t, "1 matches", v.Status().Detail)

	_ = v.Blur()
	assert.False(t, v.InputCapture())
	assert.False(t, v.Combobox().IsOpen())
}
