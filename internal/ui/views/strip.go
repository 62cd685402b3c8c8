package views

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Akashdeep-Patra/listkit/internal/common"
	"github.com/Akashdeep-Patra/listkit/internal/dragdrop"
	"github.com/Akashdeep-Patra/listkit/internal/ui"
	"github.com/Akashdeep-Patra/listkit/internal/ui/components"
)

// StripID tags the messages of the strip tab.
const StripID = "strip"

// overflowLabel marks the trailing drop target of the strip.
const overflowLabel = "⋯ to end"

// StripView shows the collection as a single horizontal row with a
// trailing overflow target. Dropping on the target moves an item to the
// end.
type StripView struct {
	list   *components.List[record]
	items  common.Items
	styles ui.Styles
	event  string
	width  int
	height int
}

// NewStripView creates the strip tab over items.
func NewStripView(items common.Items, opts Options) (*StripView, error) {
	lo, err := opts.listOptions(StripID)
	if err != nil {
		return nil, err
	}
	lo.Orientation = dragdrop.Horizontal
	lo.ItemSize = opts.List.ItemWidth
	lo.Displayed = 0
	lo.OverflowLabel = overflowLabel
	return &StripView{
		list:   components.NewList(items, opts.Styles, lo),
		items:  items,
		styles: opts.Styles,
	}, nil
}

// List exposes the strip widget.
func (v *StripView) List() *components.List[record] { return v.list }

func (v *StripView) Init() tea.Cmd { return nil }

func (v *StripView) SetSize(w, h int) {
	v.width, v.height = w, h
	v.list.SetSize(w, max(0, h-headerRows))
}

func (v *StripView) Focus() tea.Cmd     { return v.list.Focus() }
func (v *StripView) Blur() tea.Cmd      { return v.list.Blur() }
func (v *StripView) InputCapture() bool { return false }

func (v *StripView) Update(msg tea.Msg) (common.View, tea.Cmd) {
	switch msg := msg.(type) {
	case common.CollectionMsg:
		v.items = msg.Items
		return v, v.list.SetCollection(msg.Items)

	case dragdrop.DropMsg:
		if msg.ListID != StripID {
			return v, nil
		}
		v.event = dropSummary(v.items, msg)
		return v, moveCmd(msg)

	case components.SelectMsg[record]:
		if msg.ListID == StripID {
			v.event = "selected " + msg.Item.Label
		}
		return v, nil

	case tea.MouseMsg:
		msg.Y -= headerRows
		return v, v.list.Update(msg)
	}
	return v, v.list.Update(msg)
}

func (v *StripView) View() string {
	hint := fmt.Sprintf("%d items · ←/→ to move · drop on %q to send to the end", v.items.Len(), overflowLabel)
	header := renderHeader(v.styles, "Strip", hint, v.width)

	lines := []string{v.list.View(), ""}
	lines = append(lines, v.styles.Subtitle.Render(fmt.Sprintf("Selected (%d)", len(v.list.Selection()))))
	lines = append(lines, selectionLines(v.styles, v.list.Selection())...)
	if v.event != "" {
		lines = append(lines, "", v.styles.Muted.Render(v.event))
	}
	for i := range lines {
		lines[i] = ui.Truncate(lines[i], v.width)
	}
	return header + "\n" + joinLines(lines...)
}

func (v *StripView) Status() components.StatusBarData {
	data := listStatus(v.list, v.items.Len())
	data.Detail = v.event
	return data
}

func (v *StripView) ShortHelp() []components.HelpEntry {
	return []components.HelpEntry{
		{Key: "←/→", Desc: "Move highlight"},
		{Key: "drag", Desc: "Reorder"},
		{Key: "drop on " + overflowLabel, Desc: "Move to the end"},
	}
}
