package dragdrop

// DefaultSpacerFrames is the number of Step calls a spacer transition takes.
const DefaultSpacerFrames = 3

// Placement says on which side of its target a spacer is drawn.
type Placement int

const (
	Before Placement = iota
	After
)

// Spacer is reserved space next to a drop target.
type Spacer struct {
	TargetID    string
	Placement   Placement
	Size        int
	Orientation Orientation
	// Indicator spacers are drawn as a drop line rather than a gap.
	Indicator bool

	from int
	goal int
}

// Displacer owns the spacers that make room for the dragged item. Two slots
// cross-fade: when the spacer moves, the old one shrinks to zero while the
// new one grows to its goal size. Only one target is displaced at a time.
type Displacer struct {
	frames    int
	indicator bool

	slots  [2]*Spacer
	active int
	frame  int
}

// NewDisplacer creates a displacer. Frames below 1 make every change instant.
func NewDisplacer(frames int, indicator bool) *Displacer {
	return &Displacer{frames: max(1, frames), indicator: indicator}
}

// Displace reserves size cells at target: after it when moving forward,
// before it when moving backward or settling.
func (d *Displacer) Displace(target MeasuredDropTarget, size int, animate bool, dir Direction, o Orientation) {
	placement := Before
	if dir == Forward {
		placement = After
	}
	d.place(target.ID, placement, size, animate, o)
}

// DisplaceLast reserves size cells after the last target.
func (d *Displacer) DisplaceLast(last MeasuredDropTarget, size int, animate bool, o Orientation) {
	d.place(last.ID, After, size, animate, o)
}

func (d *Displacer) place(id string, p Placement, size int, animate bool, o Orientation) {
	if cur := d.slots[d.active]; cur != nil && cur.TargetID == id && cur.Placement == p && cur.goal == size {
		return
	}
	next := &Spacer{
		TargetID:    id,
		Placement:   p,
		Orientation: o,
		Indicator:   d.indicator,
		goal:        size,
	}
	if !animate || d.frames == 1 {
		next.Size = size
		next.from = size
		d.slots = [2]*Spacer{next, nil}
		d.active = 0
		d.frame = d.frames
		return
	}

	old := d.slots[d.active]
	if old != nil {
		old.from = old.Size
		old.goal = 0
	}
	d.active = 1 - d.active
	d.slots[d.active] = next
	d.slots[1-d.active] = old
	d.frame = 0
}

// Step advances a transition by one frame. It reports whether another frame
// is still needed.
func (d *Displacer) Step() bool {
	if !d.Transitioning() {
		return false
	}
	d.frame++
	for i, s := range d.slots {
		if s == nil {
			continue
		}
		s.Size = s.from + (s.goal-s.from)*d.frame/d.frames
		if d.frame >= d.frames && s.goal == 0 && i != d.active {
			d.slots[i] = nil
		}
	}
	return d.Transitioning()
}

// Transitioning reports whether a cross-fade is in flight.
func (d *Displacer) Transitioning() bool { return d.frame < d.frames }

// ClearDisplaced shrinks the active spacer away, animated when the
// displacer animates, and keeps the engine usable for the next Displace.
func (d *Displacer) ClearDisplaced(animate bool) {
	cur := d.slots[d.active]
	if cur == nil {
		return
	}
	if !animate || d.frames == 1 {
		d.Clear()
		return
	}
	for i, s := range d.slots {
		if s == nil {
			continue
		}
		s.from = s.Size
		s.goal = 0
		d.slots[i] = s
	}
	// Leave no active slot so every spacer is dropped at the last frame.
	d.active = d.nextFree()
	d.frame = 0
}

func (d *Displacer) nextFree() int {
	if d.slots[0] == nil {
		return 0
	}
	if d.slots[1] == nil {
		return 1
	}
	// Both fading: drop the smaller one now.
	if d.slots[0].Size <= d.slots[1].Size {
		d.slots[0] = nil
		return 0
	}
	d.slots[1] = nil
	return 1
}

// Clear drops every spacer immediately.
func (d *Displacer) Clear() {
	d.slots = [2]*Spacer{}
	d.active = 0
	d.frame = d.frames
}

// Spacers returns the spacers with a non-zero size, in no particular order.
func (d *Displacer) Spacers() []Spacer {
	var out []Spacer
	for _, s := range d.slots {
		if s != nil && s.Size > 0 {
			out = append(out, *s)
		}
	}
	return out
}

// Current returns the spacer that is growing or settled, if any.
func (d *Displacer) Current() (Spacer, bool) {
	s := d.slots[d.active]
	if s == nil {
		return Spacer{}, false
	}
	return *s, true
}
