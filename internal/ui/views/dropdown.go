package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Akashdeep-Patra/listkit/internal/common"
	"github.com/Akashdeep-Patra/listkit/internal/ui"
	"github.com/Akashdeep-Patra/listkit/internal/ui/components"
)

// DropdownID tags the messages of the dropdown tab.
const DropdownID = "dropdown"

// maxPickerWidth caps the width of the dropdown and combobox.
const maxPickerWidth = 40

// DropdownView shows a dropdown over the collection using the configured
// selection strategy.
type DropdownView struct {
	dd     *components.Dropdown[record]
	items  common.Items
	styles ui.Styles
	event  string
	width  int
	height int
}

// NewDropdownView creates the dropdown tab over items.
func NewDropdownView(items common.Items, opts Options) (*DropdownView, error) {
	lo, err := opts.pickerOptions(DropdownID)
	if err != nil {
		return nil, err
	}
	return &DropdownView{
		dd:     components.NewDropdown(items, opts.Styles, lo, "Choose an item…"),
		items:  items,
		styles: opts.Styles,
	}, nil
}

// Dropdown exposes the dropdown widget.
func (v *DropdownView) Dropdown() *components.Dropdown[record] { return v.dd }

func (v *DropdownView) Init() tea.Cmd { return nil }

func (v *DropdownView) SetSize(w, h int) {
	v.width, v.height = w, h
	v.dd.SetSize(min(maxPickerWidth, max(0, w-pickerIndent)), max(0, h-headerRows))
}

func (v *DropdownView) Focus() tea.Cmd     { return v.dd.Focus() }
func (v *DropdownView) Blur() tea.Cmd      { return v.dd.Blur() }
func (v *DropdownView) InputCapture() bool { return false }

func (v *DropdownView) Update(msg tea.Msg) (common.View, tea.Cmd) {
	switch msg := msg.(type) {
	case common.CollectionMsg:
		v.items = msg.Items
		return v, v.dd.SetCollection(msg.Items)

	case components.SelectMsg[record]:
		if msg.ListID == DropdownID {
			v.event = "picked " + msg.Item.Label
		}
		return v, v.dd.Update(msg)

	case components.OpenChangeMsg, components.SelectionChangeMsg[record], components.HighlightMsg:
		return v, nil

	case tea.MouseMsg:
		msg.X -= pickerIndent
		msg.Y -= headerRows
		return v, v.dd.Update(msg)
	}
	return v, v.dd.Update(msg)
}

func (v *DropdownView) View() string {
	header := renderHeader(v.styles, "Dropdown", "enter to open · type to pick", v.width)
	pad := strings.Repeat(" ", pickerIndent)

	lines := strings.Split(v.dd.View(), "\n")
	for i := range lines {
		lines[i] = pad + lines[i]
	}
	if !v.dd.IsOpen() {
		lines = append(lines, "", pad+ui.RenderKeyValue(v.styles, "Value", valueOr(v.dd.Label(), "none")))
		if v.event != "" {
			lines = append(lines, pad+v.styles.Muted.Render(v.event))
		}
	}
	return header + "\n" + joinLines(lines...)
}

func (v *DropdownView) Status() components.StatusBarData {
	data := listStatus(v.dd.List(), v.items.Len())
	if v.dd.IsOpen() {
		data.Detail = "open"
	} else {
		data.Detail = v.event
	}
	return data
}

func (v *DropdownView) ShortHelp() []components.HelpEntry {
	return []components.HelpEntry{
		{Key: "enter/space", Desc: "Open"},
		{Key: "esc", Desc: "Close"},
		{Key: "a-z", Desc: "Pick by label while closed"},
	}
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
