package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Akashdeep-Patra/listkit/internal/ui"
)

// minPanelWidth is the narrowest width at which the side panel is shown.
const minPanelWidth = 16

// SidePanelWidth is the width RenderSideBySide gives the right panel, or 0
// when totalWidth is too narrow to show it.
func SidePanelWidth(totalWidth int) int {
	w := totalWidth / 3
	if w < minPanelWidth || totalWidth-w-3 < minPanelWidth {
		return 0
	}
	return w
}

// RenderSideBySide joins a main block and a titled side panel with a
// vertical separator. The side lines are truncated to the panel; the panel
// is dropped entirely when the width cannot fit it.
func RenderSideBySide(styles ui.Styles, main, title string, side []string, totalWidth, height int) string {
	panelW := SidePanelWidth(totalWidth)
	if panelW == 0 {
		return main
	}
	mainW := totalWidth - panelW - 3

	mainLines := strings.Split(main, "\n")
	rightLines := append([]string{styles.Subtitle.Render(ui.Truncate(title, panelW))}, side...)
	rows := max(len(mainLines), min(len(rightLines), height))

	sep := lipgloss.NewStyle().Foreground(styles.Theme.Border).Render(" │ ")

	var b strings.Builder
	for i := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		var l, r string
		if i < len(mainLines) {
			l = mainLines[i]
		}
		if i < len(rightLines) && i < height {
			r = ui.Truncate(rightLines[i], panelW)
		}
		b.WriteString(ui.PadRight(ui.Truncate(l, mainW), mainW) + sep + r)
	}
	return b.String()
}
