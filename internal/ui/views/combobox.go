package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Akashdeep-Patra/listkit/internal/common"
	"github.com/Akashdeep-Patra/listkit/internal/ui"
	"github.com/Akashdeep-Patra/listkit/internal/ui/components"
)

// ComboboxID tags the messages of the combobox tab.
const ComboboxID = "combobox"

// ComboboxView shows a filterable single-select combobox over the
// collection. It captures text input while active.
type ComboboxView struct {
	cb     *components.Combobox[record]
	items  common.Items
	styles ui.Styles
	width  int
	height int
}

// NewComboboxView creates the combobox tab over items.
func NewComboboxView(items common.Items, opts Options) (*ComboboxView, error) {
	lo, err := opts.pickerOptions(ComboboxID)
	if err != nil {
		return nil, err
	}
	return &ComboboxView{
		cb:     components.NewCombobox(items, opts.Styles, lo, "Type to filter…"),
		items:  items,
		styles: opts.Styles,
	}, nil
}

// Combobox exposes the combobox widget.
func (v *ComboboxView) Combobox() *components.Combobox[record] { return v.cb }

func (v *ComboboxView) Init() tea.Cmd { return nil }

func (v *ComboboxView) SetSize(w, h int) {
	v.width, v.height = w, h
	v.cb.SetSize(min(maxPickerWidth, max(0, w-pickerIndent)), max(0, h-headerRows))
}

func (v *ComboboxView) Focus() tea.Cmd     { return v.cb.Focus() }
func (v *ComboboxView) Blur() tea.Cmd      { return v.cb.Blur() }
func (v *ComboboxView) InputCapture() bool { return v.cb.InputCapture() }

func (v *ComboboxView) Update(msg tea.Msg) (common.View, tea.Cmd) {
	switch msg := msg.(type) {
	case common.CollectionMsg:
		v.items = msg.Items
		return v, v.cb.SetCollection(msg.Items)

	case components.OpenChangeMsg, components.SelectionChangeMsg[record], components.HighlightMsg:
		return v, nil

	case tea.MouseMsg:
		msg.X -= pickerIndent
		msg.Y -= headerRows
		return v, v.cb.Update(msg)
	}
	return v, v.cb.Update(msg)
}

func (v *ComboboxView) View() string {
	header := renderHeader(v.styles, "Combobox", "type to filter · ↓ to browse · enter to commit", v.width)
	pad := strings.Repeat(" ", pickerIndent)

	lines := strings.Split(v.cb.View(), "\n")
	for i := range lines {
		lines[i] = pad + lines[i]
	}
	if !v.cb.IsOpen() {
		value := "none"
		if it, ok := v.cb.Value(); ok {
			value = it.Label
		}
		lines = append(lines, "", pad+ui.RenderKeyValue(v.styles, "Value", value))
	}
	return header + "\n" + joinLines(lines...)
}

func (v *ComboboxView) Status() components.StatusBarData {
	data := listStatus(v.cb.List(), v.items.Len())
	if v.cb.IsOpen() {
		data.Detail = fmt.Sprintf("%d matches", v.cb.List().Collection().Len())
	}
	return data
}

func (v *ComboboxView) ShortHelp() []components.HelpEntry {
	return []components.HelpEntry{
		{Key: "a-z", Desc: "Filter"},
		{Key: "↓/↑", Desc: "Browse matches"},
		{Key: "enter", Desc: "Commit"},
		{Key: "esc", Desc: "Restore the committed value"},
	}
}
