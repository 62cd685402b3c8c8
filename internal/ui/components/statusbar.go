package components

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Akashdeep-Patra/listkit/internal/ui"
)

// StatusBarData carries the info displayed in the bottom status bar.
type StatusBarData struct {
	Tab       string
	Strategy  string
	Selected  int
	Total     int
	DragState string // "" when idle
	Detail    string // view-specific summary
	Dirty     bool
	Message   string // transient info/error message
	IsError   bool
	Source    string
}

// RenderStatusBar renders the bottom status bar with sections separated by
// dim vertical bars.
//
// Wide (>= 60):   List │ extended 2/40 │ ⇅ dragging │ ● unsaved      items.yaml
// Medium (40-59): List │ extended 2/40 │ ⇅ dragging │ ● unsaved
// Narrow (< 40):  List │ 2/40
func RenderStatusBar(styles ui.Styles, data StatusBarData, width int) string {
	t := styles.Theme
	sep := lipgloss.NewStyle().Foreground(t.Border).Faint(true).Render(" │ ")

	// ── Left sections ────────────────────────────────────────────

	left := " " + lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Render(data.Tab)

	count := fmt.Sprintf("%d/%d", data.Selected, data.Total)
	if width >= 40 && data.Strategy != "" {
		count = data.Strategy + " " + count
	}
	left += sep + lipgloss.NewStyle().Foreground(t.Selected).Render(count)

	if width >= 40 {
		if data.DragState != "" {
			badge := lipgloss.NewStyle().
				Foreground(t.TextInverse).
				Background(t.Ghost).
				Bold(true).
				Padding(0, 1).
				Render("⇅ " + strings.ToUpper(data.DragState))
			left += sep + badge
		} else if data.Detail != "" {
			left += sep + lipgloss.NewStyle().Foreground(t.TextMuted).Render(data.Detail)
		}
		if data.Dirty {
			left += sep + lipgloss.NewStyle().Foreground(t.Warning).Render("● unsaved")
		}
	}

	// ── Right section ────────────────────────────────────────────

	var right string
	if data.Message != "" {
		fg := t.Info
		if data.IsError {
			fg = t.Error
		}
		right = lipgloss.NewStyle().Foreground(fg).Render(data.Message) + " "
	} else if width >= 60 && data.Source != "" {
		right = lipgloss.NewStyle().Foreground(t.TextSubtle).Render(filepath.Base(data.Source)) + " "
	}

	// ── Assemble ─────────────────────────────────────────────────

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 1
		right = ""
	}
	return styles.StatusBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
