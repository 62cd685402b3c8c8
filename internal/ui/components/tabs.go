package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/Akashdeep-Patra/listkit/internal/ui"
)

// TabBarRows is the height of the tab bar: one label row and the underline.
const TabBarRows = 2

// TabInfo describes a single tab for rendering.
type TabInfo struct {
	Name     string
	Icon     string
	Shortcut string
	Active   bool
	Group    string
}

// TabZone is the half-open column span a tab occupies on the label row.
type TabZone struct {
	Start int
	End   int
}

// tabDisplayMode controls how tab labels are rendered.
type tabDisplayMode int

const (
	tabDisplayFull  tabDisplayMode = iota // "☰ List"
	tabDisplayShort                       // "☰ Lis"
	tabDisplayIcon                        // "☰"
)

func tabLabel(tab TabInfo, mode tabDisplayMode) string {
	switch mode {
	case tabDisplayFull:
		return tab.Icon + " " + tab.Name
	case tabDisplayShort:
		return tab.Icon + " " + ansi.Truncate(tab.Name, 3, "")
	}
	return tab.Icon
}

// layoutTabs measures every tab in mode and returns the zones and the total
// width. Zones start after the one-column left padding.
func layoutTabs(tabs []TabInfo, mode tabDisplayMode) ([]TabZone, int) {
	zones := make([]TabZone, len(tabs))
	col := 1
	for i, tab := range tabs {
		if i > 0 && tab.Group != tabs[i-1].Group {
			col += 3 // " │ "
		}
		w := 2 + ansi.StringWidth(tabLabel(tab, mode))
		zones[i] = TabZone{Start: col, End: col + w}
		col += w
	}
	return zones, col
}

// bestMode picks the widest display mode that fits on one row.
func bestMode(tabs []TabInfo, width int) (tabDisplayMode, []TabZone) {
	for _, mode := range []tabDisplayMode{tabDisplayFull, tabDisplayShort} {
		if zones, w := layoutTabs(tabs, mode); w <= width {
			return mode, zones
		}
	}
	zones, _ := layoutTabs(tabs, tabDisplayIcon)
	return tabDisplayIcon, zones
}

// TabAt returns the tab whose zone contains column x, or -1.
func TabAt(zones []TabZone, x int) int {
	for i, z := range zones {
		if x >= z.Start && x < z.End {
			return i
		}
	}
	return -1
}

// RenderTabs renders the tab bar and returns the click zone of each tab.
// Labels shrink to three letters and then to icons as the width drops. The
// active tab is bold and has an accent segment in the underline.
func RenderTabs(styles ui.Styles, tabs []TabInfo, width int) (string, []TabZone) {
	t := styles.Theme
	mode, zones := bestMode(tabs, width)

	activeStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	groupSepStyle := lipgloss.NewStyle().Foreground(t.Border)

	var row strings.Builder
	row.WriteByte(' ')
	activeStart, activeEnd := -1, -1
	for i, tab := range tabs {
		if i > 0 && tab.Group != tabs[i-1].Group {
			row.WriteString(groupSepStyle.Render(" │ "))
		}
		label := tabLabel(tab, mode)
		if tab.Active {
			row.WriteString(" " + activeStyle.Render(label) + " ")
			activeStart, activeEnd = zones[i].Start, zones[i].End
		} else {
			row.WriteString(" " + inactiveStyle.Render(label) + " ")
		}
	}

	labels := lipgloss.NewStyle().
		Width(width).
		MaxWidth(width).
		Background(t.Bg).
		Render(row.String())

	borderStyle := lipgloss.NewStyle().Foreground(t.Border)
	accentStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)

	underline := buildUnderline(width, activeStart, activeEnd, borderStyle, accentStyle)
	hint := lipgloss.NewStyle().Foreground(t.TextSubtle).Faint(true).Render("tab  ?help")
	if hintW := lipgloss.Width(hint); hintW+4 < width && activeEnd < width-hintW-1 {
		underline = buildUnderline(width-hintW-1, activeStart, activeEnd, borderStyle, accentStyle) + " " + hint
	}

	return lipgloss.JoinVertical(lipgloss.Left, labels, underline), zones
}

// buildUnderline builds a width-wide underline with a bold accent segment
// over [activeStart, activeEnd).
func buildUnderline(width, activeStart, activeEnd int, borderSt, accentSt lipgloss.Style) string {
	const thin, bold = "─", "━"
	if activeStart < 0 || activeEnd < 0 {
		return borderSt.Render(strings.Repeat(thin, max(0, width)))
	}
	activeStart = min(activeStart, width)
	activeEnd = min(activeEnd, width)

	var b strings.Builder
	if activeStart > 0 {
		b.WriteString(borderSt.Render(strings.Repeat(thin, activeStart)))
	}
	if seg := activeEnd - activeStart; seg > 0 {
		b.WriteString(accentSt.Render(strings.Repeat(bold, seg)))
	}
	if rem := width - activeEnd; rem > 0 {
		b.WriteString(borderSt.Render(strings.Repeat(thin, rem)))
	}
	return b.String()
}
