package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Akashdeep-Patra/listkit/internal/ui"
)

// DialogKind specifies the type of dialog.
type DialogKind int

const (
	DialogConfirm DialogKind = iota
	DialogInput
)

// DialogResult is sent when the dialog is dismissed.
type DialogResult struct {
	Confirmed bool
	Value     string
	Tag       string // identifies which dialog this was
}

// Dialog is a modal confirmation or input dialog.
type Dialog struct {
	Kind    DialogKind
	Title   string
	Message string
	Tag     string
	// Accept and Reject label the confirm buttons.
	Accept string
	Reject string

	input   textinput.Model
	focused int // 0 = accept/input, 1 = reject
	styles  ui.Styles
	visible bool
}

// NewConfirmDialog creates an accept/reject confirmation dialog.
func NewConfirmDialog(styles ui.Styles, title, message, tag string) Dialog {
	return Dialog{
		Kind:    DialogConfirm,
		Title:   title,
		Message: message,
		Tag:     tag,
		Accept:  "Yes",
		Reject:  "No",
		styles:  styles,
		visible: true,
	}
}

// NewInputDialog creates a text input dialog prefilled with value.
func NewInputDialog(styles ui.Styles, title, message, value, tag string) Dialog {
	ti := textinput.New()
	ti.Placeholder = "items.yaml"
	ti.CharLimit = 255
	ti.Width = 48
	ti.SetValue(value)
	ti.Focus()
	return Dialog{
		Kind:    DialogInput,
		Title:   title,
		Message: message,
		Tag:     tag,
		input:   ti,
		styles:  styles,
		visible: true,
	}
}

// Visible returns whether the dialog is showing.
func (d Dialog) Visible() bool { return d.visible }

// Update handles key events for the dialog.
func (d Dialog) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			d.visible = false
			tag := d.Tag
			return d, func() tea.Msg { return DialogResult{Tag: tag} }

		case "enter":
			d.visible = false
			result := DialogResult{Confirmed: d.focused == 0, Tag: d.Tag}
			if d.Kind == DialogInput {
				result = DialogResult{Confirmed: d.input.Value() != "", Value: d.input.Value(), Tag: d.Tag}
			}
			return d, func() tea.Msg { return result }

		case "tab", "left", "right":
			if d.Kind == DialogConfirm {
				d.focused = 1 - d.focused
				return d, nil
			}
		}
	}

	if d.Kind == DialogInput {
		var cmd tea.Cmd
		d.input, cmd = d.input.Update(msg)
		return d, cmd
	}
	return d, nil
}

// View renders the dialog.
func (d Dialog) View() string {
	if !d.visible {
		return ""
	}
	t := d.styles.Theme

	title := lipgloss.NewStyle().Foreground(t.Text).Bold(true).Render(d.Title)
	message := lipgloss.NewStyle().Foreground(t.TextMuted).Render(d.Message)

	var content string
	if d.Kind == DialogConfirm {
		activeBtn := lipgloss.NewStyle().Foreground(t.TextInverse).Background(t.Primary).Bold(true).Padding(0, 2)
		inactiveBtn := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Padding(0, 2)
		yes, no := inactiveBtn, inactiveBtn
		if d.focused == 0 {
			yes = activeBtn
		} else {
			no = activeBtn
		}
		buttons := lipgloss.JoinHorizontal(lipgloss.Top, yes.Render(d.Accept), "  ", no.Render(d.Reject))
		content = title + "\n\n" + message + "\n\n" + buttons
	} else {
		content = title + "\n\n"
		if d.Message != "" {
			content += message + "\n\n"
		}
		content += d.input.View()
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(t.Primary).
		Padding(1, 3).
		Width(56).
		Render(content)
}
