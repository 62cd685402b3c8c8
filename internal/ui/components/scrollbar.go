package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Akashdeep-Patra/listkit/internal/ui"
)

// RenderScrollbar returns a vertical scrollbar track of the given height for
// a viewport of visible cells at offset into content cells.
//
// Returns an empty string if all content fits (no scrolling needed).
func RenderScrollbar(styles ui.Styles, height, content, visible, offset int) string {
	if content <= visible || height < 1 {
		return ""
	}
	t := styles.Theme

	thumb := max(1, min(height, height*visible/content))
	travel := height - thumb
	maxOffset := content - visible
	start := 0
	if maxOffset > 0 {
		start = (max(0, min(offset, maxOffset))*travel + maxOffset/2) / maxOffset
	}

	thumbStyle := lipgloss.NewStyle().Foreground(t.Primary)
	trackStyle := lipgloss.NewStyle().Foreground(t.Border)

	var b strings.Builder
	b.Grow(height * 4)
	for i := range height {
		if i > 0 {
			b.WriteByte('\n')
		}
		if i >= start && i < start+thumb {
			b.WriteString(thumbStyle.Render("█"))
		} else {
			b.WriteString(trackStyle.Render("░"))
		}
	}
	return b.String()
}
