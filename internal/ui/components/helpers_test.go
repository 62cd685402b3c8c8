package components

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/Akashdeep-Patra/listkit/internal/collection"
	"github.com/Akashdeep-Patra/listkit/internal/ui"
)

var cmdType = reflect.TypeOf((*tea.Cmd)(nil)).Elem()

// collect runs cmd and every command it batches or sequences, in order.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if msg == nil {
		return nil
	}
	// Batch and Sequence both return a slice of commands.
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

// pumpList feeds the list's own timer messages back to it and returns the
// rest.
func pumpList(l *List[string], cmd tea.Cmd) []tea.Msg {
	var out []tea.Msg
	queue := collect(cmd)
	for len(queue) > 0 {
		msg := queue[0]
		queue = queue[1:]
		if next, handled := l.drag.Update(msg); handled {
			queue = append(queue, collect(next)...)
			continue
		}
		out = append(out, msg)
	}
	return out
}

func immediate(_ time.Duration, msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func numbered(t *testing.T, n int) *collection.Collection[string] {
	t.Helper()
	items := make([]collection.Item[string], n)
	for i := range items {
		items[i] = collection.Item[string]{ID: fmt.Sprintf("i%d", i), Label: fmt.Sprintf("Item %02d", i)}
	}
	c, err := collection.New(items)
	require.NoError(t, err)
	return c
}

func fruits(t *testing.T) *collection.Collection[string] {
	t.Helper()
	var items []collection.Item[string]
	for _, name := range []string{"Apple", "Banana", "Cherry", "Mango", "Orange"} {
		items = append(items, collection.Item[string]{ID: name, Label: name, Value: name})
	}
	c, err := collection.New(items)
	require.NoError(t, err)
	return c
}

func keyMsg(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}
}

var testStyles = ui.DefaultStyles()

func msgsOf[M any](msgs []tea.Msg) []M {
	var out []M
	for _, m := range msgs {
		if v, ok := m.(M); ok {
			out = append(out, v)
		}
	}
	return out
}
