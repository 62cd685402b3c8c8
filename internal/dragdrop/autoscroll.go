package dragdrop

// ScrollContainer is the scrollable viewport the auto-scroller drives.
type ScrollContainer interface {
	ScrollPos() int
	// ScrollSize is the full content length.
	ScrollSize() int
	// ClientSize is the visible length.
	ClientSize() int
	ScrollTo(pos int)
}

// ScrollSettle describes where an auto-scroll stopped.
type ScrollSettle struct {
	Direction Direction
	Pos       int
	// AtEnd is true when scrolling stopped because it hit 0 or the maximum.
	AtEnd bool
}

// AutoScroller scrolls a container in fixed steps while a drag sits in an
// edge hot zone. It holds no timer; the orchestrator calls Step on every
// scroll tick.
type AutoScroller struct {
	c      ScrollContainer
	dir    Direction
	rate   int
	step   int
	active bool
}

// NewAutoScroller creates a stopped auto-scroller over c.
func NewAutoScroller(c ScrollContainer) *AutoScroller {
	return &AutoScroller{c: c}
}

// Active reports whether a scroll is running.
func (a *AutoScroller) Active() bool { return a.active }

// Direction returns the running scroll's direction, or Static.
func (a *AutoScroller) Direction() Direction {
	if !a.active {
		return Static
	}
	return a.dir
}

// Start begins scrolling. It reports false when dir is Static or there is no
// room left to scroll in that direction.
func (a *AutoScroller) Start(dir Direction, rate, step int) bool {
	if dir == Static {
		return false
	}
	a.dir, a.rate, a.step = dir, max(1, rate), max(1, step)
	if a.remaining() == 0 {
		a.active = false
		return false
	}
	a.active = true
	return true
}

func (a *AutoScroller) remaining() int {
	pos := a.c.ScrollPos()
	if a.dir == Backward {
		return max(0, pos)
	}
	return max(0, a.c.ScrollSize()-a.c.ClientSize()-pos)
}

// Step scrolls by min(remaining, rate*step). When that reaches the limit,
// scrolling halts and the returned settle has AtEnd set; the bool is true
// only for that halting step. Steps on a stopped scroller do nothing, so a
// halt is reported once.
func (a *AutoScroller) Step() (ScrollSettle, bool) {
	if !a.active {
		return ScrollSettle{}, false
	}
	remaining := a.remaining()
	delta := min(remaining, a.rate*a.step)
	pos := a.c.ScrollPos()
	if a.dir == Backward {
		pos -= delta
	} else {
		pos += delta
	}
	a.c.ScrollTo(pos)
	if delta == remaining {
		return a.Stop(true), true
	}
	return ScrollSettle{}, false
}

// Stop halts scrolling and reports where it stopped.
func (a *AutoScroller) Stop(atEnd bool) ScrollSettle {
	settle := ScrollSettle{Direction: a.dir, Pos: a.c.ScrollPos(), AtEnd: atEnd}
	a.active = false
	return settle
}
