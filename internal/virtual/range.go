package virtual

// DefaultRenderBuffer is the number of rows materialized past each edge of
// the visible range.
const DefaultRenderBuffer = 5

// Range is the window of visible rows, inclusive on both ends.
type Range struct {
	From    int
	To      int
	AtStart bool
	AtEnd   bool
}

// Contains reports whether index is inside the range.
func (r Range) Contains(index int) bool { return index >= r.From && index <= r.To }

// Len returns the number of rows in the range.
func (r Range) Len() int { return r.To - r.From + 1 }

// Geometry is the fixed layout of a virtualized list along its scroll axis.
type Geometry struct {
	ItemSize  int
	Gap       int
	ItemCount int
	Container int
}

// Extent is the distance between the starts of two adjacent rows.
func (g Geometry) Extent() int { return max(1, g.ItemSize+g.Gap) }

// ContentSize is the scrollable length of all rows.
func (g Geometry) ContentSize() int {
	if g.ItemCount == 0 {
		return 0
	}
	return g.ItemCount*g.Extent() - g.Gap
}

// MaxScroll is the largest valid scroll offset.
func (g Geometry) MaxScroll() int { return max(0, g.ContentSize()-g.Container) }

// RangeTracker converts a scroll offset into the visible Range and reports
// when that range changes.
type RangeTracker struct {
	geo    Geometry
	buffer int
	scroll int
	cur    Range
}

// NewRangeTracker creates a tracker at scroll offset 0. A negative buffer
// selects DefaultRenderBuffer.
func NewRangeTracker(geo Geometry, buffer int) *RangeTracker {
	if buffer < 0 {
		buffer = DefaultRenderBuffer
	}
	t := &RangeTracker{geo: geo, buffer: buffer}
	t.cur = t.compute(0)
	return t
}

// compute returns the range for a scroll offset without touching the tracker.
func (t *RangeTracker) compute(scroll int) Range {
	ext := t.geo.Extent()
	from := max(0, scroll/ext)
	visible := (t.geo.Container + ext - 1) / ext
	to := from + max(1, visible) - 1
	return Range{
		From:    from,
		To:      to,
		AtStart: from == 0,
		AtEnd:   to >= t.geo.ItemCount-1,
	}
}

// Update records a scroll offset. The bool is true only when From or To
// moved; scrolling within a row never reports a change.
func (t *RangeTracker) Update(scroll int) (Range, bool) {
	t.scroll = max(0, min(scroll, t.geo.MaxScroll()))
	next := t.compute(t.scroll)
	changed := next.From != t.cur.From || next.To != t.cur.To
	t.cur = next
	return next, changed
}

// Resize installs new geometry (container resize or item count change) and
// re-clamps the scroll offset.
func (t *RangeTracker) Resize(geo Geometry) (Range, bool) {
	t.geo = geo
	return t.Update(t.scroll)
}

// Range returns the current range.
func (t *RangeTracker) Range() Range { return t.cur }

// Scroll returns the clamped scroll offset.
func (t *RangeTracker) Scroll() int { return t.scroll }

// Geometry returns the tracker's layout.
func (t *RangeTracker) Geometry() Geometry { return t.geo }

// Materialized returns the half-open window of rows to render: the current
// range widened by the render buffer and clamped to the item count.
func (t *RangeTracker) Materialized() (lo, hi int) {
	lo = max(0, t.cur.From-t.buffer)
	hi = min(t.geo.ItemCount, t.cur.To+1+t.buffer)
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// DragAdjusted widens r to account for the dragged row being taken out of
// the flow: rows after it shift up by one slot.
func DragAdjusted(r Range, dragIndex int) Range {
	switch {
	case dragIndex < r.From:
		r.From++
		r.To++
	case dragIndex <= r.To:
		r.To++
	}
	return r
}
