package views

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Akashdeep-Patra/listkit/internal/collection"
	"github.com/Akashdeep-Patra/listkit/internal/common"
	"github.com/Akashdeep-Patra/listkit/internal/config"
	"github.com/Akashdeep-Patra/listkit/internal/dragdrop"
	"github.com/Akashdeep-Patra/listkit/internal/selection"
	"github.com/Akashdeep-Patra/listkit/internal/ui"
	"github.com/Akashdeep-Patra/listkit/internal/ui/components"
)

// headerRows is the title line plus the blank line under it.
const headerRows = 2

// pickerIndent is the left margin of the dropdown and combobox.
const pickerIndent = 2

type record = collection.Record

// Options carry what every view needs to build its widgets.
type Options struct {
	Styles ui.Styles
	List   config.ListOptions
	Keys   components.ListKeyMap
	Logger *slog.Logger
}

// listOptions converts the configured list options for the list with id.
func (o Options) listOptions(id string) (components.ListOptions, error) {
	sel, err := o.List.SelectionOptions()
	if err != nil {
		return components.ListOptions{}, fmt.Errorf("list %s: %w", id, err)
	}
	drag, err := o.List.DragOptions()
	if err != nil {
		return components.ListOptions{}, fmt.Errorf("list %s: %w", id, err)
	}
	return components.ListOptions{
		ID:           id,
		Orientation:  drag.Orientation,
		ItemSize:     o.List.ItemSize(),
		Gap:          o.List.ItemGapSize,
		Displayed:    o.List.DisplayedItemCount,
		RenderBuffer: o.List.RenderBuffer,
		Selection:    sel,
		Drag:         drag,
		Keys:         o.Keys,
		Logger:       o.Logger,
	}, nil
}

// pickerOptions are list options for a popup: vertical, one row per item
// and no dragging.
func (o Options) pickerOptions(id string) (components.ListOptions, error) {
	opts, err := o.listOptions(id)
	if err != nil {
		return opts, err
	}
	opts.Orientation = dragdrop.Vertical
	opts.ItemSize = 1
	opts.Gap = 0
	opts.Displayed = min(8, max(1, opts.Displayed))
	opts.Drag = dragdrop.Options{Mode: dragdrop.Off}
	return opts, nil
}

func renderHeader(styles ui.Styles, title, hint string, width int) string {
	t := styles.Theme
	line := lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Render("  " + title)
	if hint != "" {
		line += "  " + styles.Muted.Render(hint)
	}
	return ui.Truncate(line, width) + "\n"
}

// selectionLines lists the selected labels, one per line.
func selectionLines(styles ui.Styles, sel selection.Selection[record]) []string {
	if len(sel) == 0 {
		return []string{styles.Muted.Render("nothing selected")}
	}
	lines := make([]string, 0, len(sel))
	for _, it := range sel {
		lines = append(lines, "• "+it.Label)
	}
	return lines
}

func listStatus(l *components.List[record], total int) components.StatusBarData {
	data := components.StatusBarData{
		Strategy: l.Engine().Strategy().String(),
		Selected: len(l.Selection()),
		Total:    total,
	}
	if s := l.Drag().State(); s != dragdrop.Idle {
		data.DragState = s.String()
	}
	return data
}

// moveCmd turns a drop into a request to reorder the shared collection.
func moveCmd(msg dragdrop.DropMsg) tea.Cmd {
	return func() tea.Msg { return common.MoveMsg{From: msg.From, To: msg.To} }
}

func dropSummary(items common.Items, msg dragdrop.DropMsg) string {
	it, _ := items.At(msg.From)
	to := fmt.Sprint(msg.To + 1)
	if msg.To < 0 {
		to = "end"
	}
	return fmt.Sprintf("moved %s → %s", it.Label, to)
}

func joinLines(lines ...string) string { return strings.Join(lines, "\n") }
