package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/Akashdeep-Patra/listkit/internal/ui"
)

// HelpEntry is a single key-description pair for the help overlay.
type HelpEntry struct {
	Key  string
	Desc string
}

// helpOrder is the order sections appear in the overlay.
var helpOrder = []string{"This tab", "Navigation", "Selection", "Drag & drop", "Pickers", "Tabs", "General"}

// RenderHelp renders a full-screen help overlay.
func RenderHelp(styles ui.Styles, title string, sections map[string][]HelpEntry, width, height int) string {
	t := styles.Theme

	titleStr := lipgloss.NewStyle().
		Foreground(t.Primary).Bold(true).
		Align(lipgloss.Center).
		Width(max(0, width-4)).
		Render(title)

	var body strings.Builder
	body.WriteString(titleStr + "\n\n")

	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Underline(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Width(16).Align(lipgloss.Right)
	descStyle := lipgloss.NewStyle().Foreground(t.Text)

	for _, section := range helpOrder {
		entries := sections[section]
		if len(entries) == 0 {
			continue
		}
		body.WriteString(sectionStyle.Render(section) + "\n")
		for _, e := range entries {
			body.WriteString("  " + keyStyle.Render(e.Key) + "  " + descStyle.Render(e.Desc) + "\n")
		}
		body.WriteString("\n")
	}

	overlay := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(t.Primary).
		Padding(1, 3).
		Width(min(70, max(0, width-4))).
		MaxHeight(max(0, height-2)).
		Render(body.String())

	return ui.PlaceCentre(width, height, overlay)
}

// BindingHelp converts bindings to help entries, skipping disabled ones.
func BindingHelp(bindings ...key.Binding) []HelpEntry {
	out := make([]HelpEntry, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		out = append(out, HelpEntry{Key: h.Key, Desc: h.Desc})
	}
	return out
}

// GlobalHelpEntries returns the help entries for the list and global
// bindings.
func GlobalHelpEntries(k ListKeyMap) map[string][]HelpEntry {
	return map[string][]HelpEntry{
		"Navigation": append(BindingHelp(k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End),
			HelpEntry{Key: "a-z", Desc: "Jump to label (type-ahead)"},
			HelpEntry{Key: "wheel", Desc: "Scroll"},
		),
		"Selection": append(BindingHelp(k.Select, k.Toggle, k.Extend, k.Clear),
			HelpEntry{Key: "click", Desc: "Select"},
			HelpEntry{Key: "ctrl+click", Desc: "Toggle"},
			HelpEntry{Key: "shift+click", Desc: "Select range"},
		),
		"Drag & drop": {
			{Key: "drag", Desc: "Move an item"},
			{Key: "hold", Desc: "Pick up without moving"},
			{Key: "esc", Desc: "Cancel drag"},
		},
		"Pickers": BindingHelp(k.Open, k.Close),
		"Tabs": {
			{Key: "tab", Desc: "Next tab"},
			{Key: "shift+tab", Desc: "Previous tab"},
			{Key: "alt+1…4", Desc: "Jump to tab"},
			{Key: "click", Desc: "Switch tab"},
		},
		"General": {
			{Key: "ctrl+s", Desc: "Save order"},
			{Key: "ctrl+r", Desc: "Reload"},
			{Key: "?", Desc: "Toggle this help"},
			{Key: "ctrl+c", Desc: "Quit"},
		},
	}
}
