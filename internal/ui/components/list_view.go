package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/Akashdeep-Patra/listkit/internal/collection"
	"github.com/Akashdeep-Patra/listkit/internal/dragdrop"
	"github.com/Akashdeep-Patra/listkit/internal/ui"
)

// rowState is the visual state a rendered row depends on.
type rowState uint8

const (
	rowSelected rowState = 1 << iota
	rowHighlighted
	rowFocused
	rowMulti
)

// renderedRow caches one slot's output. It is reused while the slot shows
// the same item in the same state.
type renderedRow struct {
	id    string
	label string
	state rowState
	width int
	lines []string
}

type segmentKind int

const (
	segItem segmentKind = iota
	segSpacer
	segIndicator
)

// segment is one laid-out piece of the list in content coordinates.
type segment struct {
	kind  segmentKind
	start int
	size  int
	index int
}

// View renders the list.
func (l *List[T]) View() string {
	if l.width <= 0 || l.height <= 0 {
		return ""
	}
	if l.ItemCount() == 0 {
		return l.styles.Placeholder.Render(ui.Truncate("No items", l.width))
	}
	if l.opts.Orientation == dragdrop.Horizontal {
		return l.viewHorizontal()
	}
	return l.viewVertical()
}

// layout places the materialized items in content coordinates. While
// dragging, the dragged item leaves the flow and the displacer's spacers
// open room at the drop position.
func (l *List[T]) layout() []segment {
	lo, hi := l.tracker.Materialized()
	ext := l.tracker.Geometry().Extent()
	gap := l.opts.Gap
	dragged, _, dragging := l.drag.Ghost()

	pos := lo * ext
	if dragging {
		hi = min(l.ItemCount(), hi+1)
		if dragged < lo {
			pos -= ext
		}
	}

	before := map[string]dragdrop.Spacer{}
	after := map[string]dragdrop.Spacer{}
	if dragging {
		for _, sp := range l.drag.Displacer().Spacers() {
			if sp.Placement == dragdrop.Before {
				before[sp.TargetID] = sp
			} else {
				after[sp.TargetID] = sp
			}
		}
	}

	spacer := func(sp dragdrop.Spacer) segment {
		kind := segSpacer
		if sp.Indicator {
			kind = segIndicator
		}
		seg := segment{kind: kind, start: pos, size: sp.Size, index: -1}
		if sp.Size > 0 {
			pos += sp.Size + gap
		}
		return seg
	}

	segs := make([]segment, 0, hi-lo+2)
	for i := lo; i < hi; i++ {
		if dragging && i == dragged {
			continue
		}
		id := l.ItemID(i)
		if sp, ok := before[id]; ok {
			segs = append(segs, spacer(sp))
		}
		segs = append(segs, segment{kind: segItem, start: pos, size: l.opts.ItemSize, index: i})
		pos += ext
		if sp, ok := after[id]; ok {
			segs = append(segs, spacer(sp))
		}
	}
	return segs
}

// ── Vertical ───────────────────────────────────────────────────────────────

func (l *List[T]) viewVertical() string {
	c := l.container()
	scroll := l.tracker.Scroll()
	width := l.width
	bar := RenderScrollbar(l.styles, c, l.ScrollSize(), c, scroll)
	if bar != "" {
		width--
	}

	blank := strings.Repeat(" ", width)
	lines := make([]string, c)
	for i := range lines {
		lines[i] = blank
	}
	put := func(start int, block []string) {
		for k, s := range block {
			if y := start + k - scroll; y >= 0 && y < c {
				lines[y] = s
			}
		}
	}

	for _, seg := range l.layout() {
		switch seg.kind {
		case segItem:
			put(seg.start, l.renderItem(seg.index, width))
		case segSpacer:
			put(seg.start, repeatLine(l.styles.Spacer.Render(strings.Repeat("┄", width)), seg.size))
		case segIndicator:
			put(seg.start, repeatLine(l.styles.Indicator.Render(strings.Repeat("━", width)), seg.size))
		}
	}

	if index, pos, ok := l.drag.Ghost(); ok {
		ghost := l.ghostLines(index, width)
		for k, s := range ghost {
			if y := pos + k; y >= 0 && y < c {
				lines[y] = s
			}
		}
	}

	body := strings.Join(lines, "\n")
	if bar == "" {
		return body
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, body, bar)
}

// ── Horizontal ─────────────────────────────────────────────────────────────

func (l *List[T]) viewHorizontal() string {
	c := l.container()
	scroll := l.tracker.Scroll()
	segs := l.layout()
	if len(segs) == 0 {
		return strings.Repeat(" ", c)
	}

	base := segs[0].start
	var b strings.Builder
	cursor := base
	for _, seg := range segs {
		if seg.start > cursor {
			b.WriteString(strings.Repeat(" ", seg.start-cursor))
			cursor = seg.start
		}
		switch seg.kind {
		case segItem:
			b.WriteString(l.renderItem(seg.index, seg.size)[0])
		case segSpacer:
			b.WriteString(l.styles.Spacer.Render(strings.Repeat("┄", seg.size)))
		case segIndicator:
			b.WriteString(l.styles.Indicator.Render(strings.Repeat("┃", seg.size)))
		}
		cursor += seg.size
	}

	line := ansi.Cut(b.String(), scroll-base, scroll-base+c)
	line = ui.PadRight(line, c)
	if index, pos, ok := l.drag.Ghost(); ok {
		line = ui.Splice(line, l.ghostLines(index, l.opts.ItemSize)[0], pos)
		line = ansi.Truncate(line, c, "")
	}
	return line
}

// ── Rows ───────────────────────────────────────────────────────────────────

// renderItem renders the item at index into its ItemSize lines (vertical)
// or its single ItemSize-wide cell (horizontal), reusing the slot's cache.
func (l *List[T]) renderItem(index, width int) []string {
	if l.IsOverflowIndicator(index) {
		return l.renderOverflow(width)
	}
	it, _ := l.engine.Collection().At(index)
	state := l.rowState(it, index)

	slot, keyed := l.slots.KeyFor(index)
	if keyed {
		if r, ok := l.rows[slot]; ok && r.id == it.ID && r.label == it.Label && r.state == state && r.width == width {
			return r.lines
		}
	}

	style := l.rowStyle(it, state)
	text := ui.Fit(rowPrefix(it, state)+it.Label, width)
	lines := []string{style.Render(text)}
	if l.opts.Orientation == dragdrop.Vertical {
		fill := style.Render(strings.Repeat(" ", width))
		for len(lines) < l.opts.ItemSize {
			lines = append(lines, fill)
		}
	}

	if keyed {
		l.rows[slot] = renderedRow{id: it.ID, label: it.Label, state: state, width: width, lines: lines}
	}
	return lines
}

func (l *List[T]) renderOverflow(width int) []string {
	line := l.styles.Overflow.Render(ui.Fit(" "+l.opts.OverflowLabel, width))
	if l.opts.Orientation == dragdrop.Horizontal {
		return []string{line}
	}
	return append([]string{line}, repeatLine(strings.Repeat(" ", width), l.opts.ItemSize-1)...)
}

func (l *List[T]) ghostLines(index, width int) []string {
	label := l.opts.OverflowLabel
	if it, ok := l.engine.Collection().At(index); ok {
		label = it.Label
	}
	line := l.styles.Ghost.Render(ui.Fit("≡ "+label, width))
	if l.opts.Orientation == dragdrop.Horizontal {
		return []string{line}
	}
	fill := l.styles.Ghost.Render(strings.Repeat(" ", width))
	return append([]string{line}, repeatLine(fill, l.opts.ItemSize-1)...)
}

func (l *List[T]) rowState(it collection.Item[T], index int) rowState {
	var s rowState
	if l.engine.IsSelected(it.ID) {
		s |= rowSelected
	}
	if index == l.engine.Highlight() {
		s |= rowHighlighted
	}
	if l.focused {
		s |= rowFocused
	}
	if l.engine.Strategy().Multi() {
		s |= rowMulti
	}
	return s
}

func (l *List[T]) rowStyle(it collection.Item[T], s rowState) lipgloss.Style {
	highlighted := s&rowHighlighted != 0 && s&rowFocused != 0
	switch {
	case it.Header:
		return l.styles.RowHeader
	case it.Disabled:
		return l.styles.RowDisabled
	case s&rowSelected != 0 && highlighted:
		return l.styles.RowSelectedHighlight
	case s&rowSelected != 0:
		return l.styles.RowSelected
	case highlighted:
		return l.styles.RowHighlight
	}
	return l.styles.Row
}

func rowPrefix[T any](it collection.Item[T], s rowState) string {
	if it.Header {
		switch {
		case it.ChildCount == 0:
			return ""
		case it.Expanded:
			return "▾ "
		}
		return "▸ "
	}
	selected := s&rowSelected != 0
	if s&rowMulti != 0 {
		if selected {
			return "☑ "
		}
		return "☐ "
	}
	if selected {
		return "● "
	}
	return "  "
}

func repeatLine(line string, n int) []string {
	if n <= 0 {
		return nil
	}
	out := make([]string, n)
	for i := range out {
		out[i] = line
	}
	return out
}
