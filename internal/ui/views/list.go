package views

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Akashdeep-Patra/listkit/internal/common"
	"github.com/Akashdeep-Patra/listkit/internal/dragdrop"
	"github.com/Akashdeep-Patra/listkit/internal/ui"
	"github.com/Akashdeep-Patra/listkit/internal/ui/components"
)

// ListID tags the messages of the list tab.
const ListID = "list"

// ListView shows the collection as a list with the selection in a side
// panel. Drops are forwarded to the app as MoveMsg.
type ListView struct {
	list   *components.List[record]
	items  common.Items
	styles ui.Styles
	title  string
	event  string
	width  int
	height int
}

// NewListView creates the list tab over items.
func NewListView(items common.Items, opts Options) (*ListView, error) {
	lo, err := opts.listOptions(ListID)
	if err != nil {
		return nil, err
	}
	return &ListView{
		list:   components.NewList(items, opts.Styles, lo),
		items:  items,
		styles: opts.Styles,
	}, nil
}

// List exposes the list widget.
func (v *ListView) List() *components.List[record] { return v.list }

func (v *ListView) Init() tea.Cmd { return nil }

func (v *ListView) SetSize(w, h int) {
	v.width, v.height = w, h
	mainW := w
	if p := components.SidePanelWidth(w); p > 0 {
		mainW = w - p - 3
	}
	v.list.SetSize(mainW, max(0, h-headerRows))
}

func (v *ListView) Focus() tea.Cmd { return v.list.Focus() }
func (v *ListView) Blur() tea.Cmd  { return v.list.Blur() }

func (v *ListView) InputCapture() bool { return false }

func (v *ListView) Update(msg tea.Msg) (common.View, tea.Cmd) {
	switch msg := msg.(type) {
	case common.CollectionMsg:
		v.items, v.title = msg.Items, msg.Title
		return v, v.list.SetCollection(msg.Items)

	case dragdrop.DragStartMsg:
		if msg.ListID == ListID {
			it, _ := v.items.At(msg.Index)
			v.event = "dragging " + it.Label
		}
		return v, nil

	case dragdrop.DropMsg:
		if msg.ListID != ListID {
			return v, nil
		}
		v.event = dropSummary(v.items, msg)
		return v, moveCmd(msg)

	case components.SelectMsg[record]:
		if msg.ListID == ListID {
			v.event = "selected " + msg.Item.Label
		}
		return v, nil

	case components.SelectionChangeMsg[record], components.HighlightMsg:
		return v, nil

	case tea.MouseMsg:
		msg.Y -= headerRows
		return v, v.list.Update(msg)
	}
	return v, v.list.Update(msg)
}

func (v *ListView) View() string {
	title := "List"
	if v.title != "" {
		title = v.title
	}
	hint := fmt.Sprintf("%d items · drag to reorder", v.items.Len())
	header := renderHeader(v.styles, title, hint, v.width)

	side := selectionLines(v.styles, v.list.Selection())
	panelTitle := fmt.Sprintf("Selected (%d)", len(v.list.Selection()))
	body := components.RenderSideBySide(v.styles, v.list.View(), panelTitle, side, v.width, max(0, v.height-headerRows))
	return header + "\n" + body
}

func (v *ListView) Status() components.StatusBarData {
	data := listStatus(v.list, v.items.Len())
	data.Detail = v.event
	return data
}

func (v *ListView) ShortHelp() []components.HelpEntry {
	return []components.HelpEntry{
		{Key: "drag", Desc: "Reorder"},
		{Key: "shift+↑↓", Desc: "Extend selection"},
		{Key: "ctrl+s", Desc: "Save the new order"},
	}
}
