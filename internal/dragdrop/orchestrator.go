package dragdrop

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Akashdeep-Patra/listkit/internal/logging"
	"github.com/Akashdeep-Patra/listkit/internal/virtual"
)

// Defaults for Options fields left zero.
const (
	DefaultDragThreshold  = 3
	DefaultHoldTimeout    = 500 * time.Millisecond
	DefaultScrollInterval = 100 * time.Millisecond
	DefaultSettleDuration = 150 * time.Millisecond
	DefaultFrameInterval  = 30 * time.Millisecond
	DefaultIndicatorSize  = 1
)

// State is the gesture lifecycle.
type State int

const (
	Idle State = iota
	Pending
	Dragging
	Settling
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Dragging:
		return "dragging"
	case Settling:
		return "settling"
	default:
		return "idle"
	}
}

// Host is the list side of a drag: geometry, the scroll container and the
// currently visible window.
type Host interface {
	Measurer
	ScrollContainer
	VisibleRange() virtual.Range
	// Viewport is the container's extent along the scroll axis.
	Viewport() Rect
}

// Options configure an Orchestrator.
type Options struct {
	Mode           Mode
	Orientation    Orientation
	DragThreshold  int
	HoldTimeout    time.Duration
	ScrollInterval time.Duration
	ScrollStep     int
	ScrollRate     int
	SettleDuration time.Duration
	SpacerFrames   int
	FrameInterval  time.Duration
	IndicatorSize  int
	// Schedule delivers msg after d. Nil means tea.Tick.
	Schedule func(d time.Duration, msg tea.Msg) tea.Cmd
	Logger   *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.DragThreshold <= 0 {
		o.DragThreshold = DefaultDragThreshold
	}
	if o.HoldTimeout <= 0 {
		o.HoldTimeout = DefaultHoldTimeout
	}
	if o.ScrollInterval <= 0 {
		o.ScrollInterval = DefaultScrollInterval
	}
	if o.ScrollStep <= 0 {
		o.ScrollStep = 1
	}
	if o.ScrollRate <= 0 {
		o.ScrollRate = 1
	}
	if o.SettleDuration <= 0 {
		o.SettleDuration = DefaultSettleDuration
	}
	if o.SpacerFrames <= 0 {
		o.SpacerFrames = DefaultSpacerFrames
	}
	if o.FrameInterval <= 0 {
		o.FrameInterval = DefaultFrameInterval
	}
	if o.IndicatorSize <= 0 {
		o.IndicatorSize = DefaultIndicatorSize
	}
	if o.Schedule == nil {
		o.Schedule = func(d time.Duration, msg tea.Msg) tea.Cmd {
			return tea.Tick(d, func(time.Time) tea.Msg { return msg })
		}
	}
	o.Logger = logging.OrDiscard(o.Logger)
	return o
}

// DragSession is the state of one gesture. Only the Orchestrator mutates it.
type DragSession struct {
	Dragged MeasuredDropTarget
	// Offset is the pointer's distance from the dragged item's start.
	Offset  int
	Pointer int
	// DragPos is the ghost's start, clamped to the drag limits.
	DragPos         int
	Direction       Direction
	TargetID        string
	Scrolling       bool
	OverflowShowing bool
	Mode            Mode
	From            int
	To              int

	pressPos   int
	targets    []MeasuredDropTarget
	insertAt   int
	spacerSize int
	gap        int
}

// Targets returns the measured targets in displaced layout. The dragged item
// is not among them.
func (s *DragSession) Targets() []MeasuredDropTarget { return s.targets }

// InsertAt is the position in Targets the spacer sits before.
func (s *DragSession) InsertAt() int { return s.insertAt }

// Orchestrator owns the drag gesture of one list.
type Orchestrator struct {
	id   string
	host Host
	opts Options
	log  *slog.Logger

	state     State
	seq       int
	session   *DragSession
	displacer *Displacer
	scroller  *AutoScroller
	framing   bool
}

// New creates an idle orchestrator. id tags every message it emits.
func New(id string, host Host, opts Options) *Orchestrator {
	opts = opts.withDefaults()
	return &Orchestrator{
		id:        id,
		host:      host,
		opts:      opts,
		log:       opts.Logger.With("component", "dragdrop", "list", id),
		displacer: NewDisplacer(opts.SpacerFrames, opts.Mode == DropIndicator),
		scroller:  NewAutoScroller(host),
	}
}

// State returns the lifecycle state.
func (o *Orchestrator) State() State { return o.state }

// Mode returns the drag mode.
func (o *Orchestrator) Mode() Mode { return o.opts.Mode }

// Session returns the active session, or nil when idle.
func (o *Orchestrator) Session() *DragSession { return o.session }

// Displacer exposes the spacers for rendering.
func (o *Orchestrator) Displacer() *Displacer { return o.displacer }

// Dragging reports whether a drag is visibly in progress.
func (o *Orchestrator) Dragging() bool { return o.state == Dragging }

// Ghost returns the dragged index and the ghost's start while dragging.
func (o *Orchestrator) Ghost() (index, pos int, ok bool) {
	if o.state != Dragging {
		return 0, 0, false
	}
	return o.session.Dragged.Index, o.session.DragPos, true
}

// ── Gesture input ──────────────────────────────────────────────────────────

// Press arms a drag on index at pointer position pos.
func (o *Orchestrator) Press(index, pos int) tea.Cmd {
	if !o.opts.Mode.Enabled() || o.state != Idle {
		return nil
	}
	n := o.host.ItemCount()
	if index < 0 || index >= n || o.host.IsOverflowIndicator(index) {
		return nil
	}
	o.seq++
	o.session = &DragSession{
		Dragged:  measureOne(o.host, index, n),
		Pointer:  pos,
		Mode:     o.opts.Mode,
		From:     index,
		To:       index,
		pressPos: pos,
	}
	o.state = Pending
	return o.opts.Schedule(o.opts.HoldTimeout, holdMsg{id: o.id, seq: o.seq})
}

// Move feeds a pointer position.
func (o *Orchestrator) Move(pos int) tea.Cmd {
	switch o.state {
	case Pending:
		o.session.Pointer = pos
		if abs(pos-o.session.pressPos) > o.opts.DragThreshold {
			return o.beginDrag()
		}
	case Dragging:
		return o.moveDrag(pos)
	}
	return nil
}

// Release ends the gesture. clicked is true when the press never became a
// drag; the caller then treats it as a click.
func (o *Orchestrator) Release() (cmd tea.Cmd, clicked bool) {
	switch o.state {
	case Pending:
		o.teardown()
		return nil, true
	case Dragging:
		return o.commitDrop(), false
	}
	return nil, false
}

// Cancel abandons the gesture without a reorder. Pending ticks become inert.
func (o *Orchestrator) Cancel() {
	if o.state == Idle {
		return
	}
	o.log.Debug("drag cancelled", "state", o.state.String())
	o.teardown()
}

// CollectionChanged cancels a gesture the new snapshot invalidates. A drag
// in progress is always cancelled; a settling drop survives as long as its
// item still exists.
func (o *Orchestrator) CollectionChanged(contains func(id string) bool) {
	switch o.state {
	case Pending, Dragging:
		o.Cancel()
	case Settling:
		if !contains(o.session.Dragged.ID) {
			o.Cancel()
		}
	}
}

// Update handles the orchestrator's own timer messages. handled is false for
// messages that belong to someone else.
func (o *Orchestrator) Update(msg tea.Msg) (cmd tea.Cmd, handled bool) {
	switch m := msg.(type) {
	case holdMsg:
		if m.id != o.id {
			return nil, false
		}
		if m.seq == o.seq && o.state == Pending {
			return o.beginDrag(), true
		}
		return nil, true
	case scrollTickMsg:
		if m.id != o.id {
			return nil, false
		}
		if m.seq == o.seq && o.state == Dragging && o.session.Scrolling {
			return o.scrollStep(), true
		}
		return nil, true
	case frameMsg:
		if m.id != o.id {
			return nil, false
		}
		if m.seq != o.seq {
			return nil, true
		}
		o.framing = false
		if o.displacer.Step() {
			o.framing = true
			return o.opts.Schedule(o.opts.FrameInterval, frameMsg{id: o.id, seq: o.seq}), true
		}
		return nil, true
	case settleMsg:
		if m.id != o.id {
			return nil, false
		}
		if m.seq == o.seq && o.state == Settling {
			return o.finishSettle(), true
		}
		return nil, true
	}
	return nil, false
}

// ── Transitions ────────────────────────────────────────────────────────────

func (o *Orchestrator) beginDrag() tea.Cmd {
	s := o.session
	d := s.Dragged.Index
	s.Dragged = measureOne(o.host, d, o.host.ItemCount())
	s.Offset = s.pressPos - s.Dragged.Start
	s.DragPos = s.Dragged.Start
	s.gap = o.measureGap(d)
	s.spacerSize = s.Dragged.Size
	if o.opts.Mode == DropIndicator {
		s.spacerSize = o.opts.IndicatorSize
	}

	o.remeasure(o.host.VisibleRange())
	s.insertAt = 0
	for _, t := range s.targets {
		if t.Index < d {
			s.insertAt++
		}
	}
	o.applySpacer()
	o.displaceAtInsert()
	o.state = Dragging

	o.log.Debug("drag begin", "index", d, "mode", o.opts.Mode.String(), "targets", len(s.targets))
	start := emit(DragStartMsg{ListID: o.id, Index: d})
	return tea.Batch(start, o.moveDrag(s.Pointer))
}

func (o *Orchestrator) moveDrag(pos int) tea.Cmd {
	s := o.session
	s.Pointer = pos
	next := o.clampDragPos(pos - s.Offset)

	if s.Scrolling {
		if o.scrollDirection(next) != o.scroller.Direction() {
			return o.settleScroll(o.scroller.Stop(false))
		}
		return nil
	}

	dir := Static
	switch {
	case next > s.DragPos:
		dir = Forward
	case next < s.DragPos:
		dir = Backward
	}
	s.DragPos = next

	var cmds []tea.Cmd
	if dir != Static {
		s.Direction = dir
		cmds = append(cmds, o.resolveAt(dir))
	}
	if sd := o.scrollDirection(next); sd != Static {
		cmds = append(cmds, o.startScroll(sd))
	}
	return tea.Batch(cmds...)
}

func (o *Orchestrator) resolveAt(dir Direction) tea.Cmd {
	s := o.session
	edge := s.DragPos
	if dir == Forward {
		edge += s.Dragged.Size
	}
	k := ResolveIndex(s.targets, s.Dragged.ID, edge, dir)
	if k < 0 {
		return nil
	}
	target := s.targets[k]
	s.TargetID = target.ID
	s.OverflowShowing = target.IsOverflowIndicator

	insert := k
	if dir == Forward {
		insert = k + 1
	}
	if insert == s.insertAt {
		return nil
	}
	o.moveSpacer(insert)
	o.displacer.Displace(s.targets[k], s.spacerSize, o.opts.SpacerFrames > 1, dir, o.opts.Orientation)
	s.To = o.toIndex()
	return o.startFrames()
}

func (o *Orchestrator) startScroll(dir Direction) tea.Cmd {
	if !o.scroller.Start(dir, o.opts.ScrollRate, o.opts.ScrollStep) {
		return nil
	}
	o.session.Scrolling = true
	o.displacer.ClearDisplaced(o.opts.SpacerFrames > 1)
	o.log.Debug("auto-scroll start", "direction", dir.String())
	frames := o.startFrames()
	return tea.Batch(frames, o.scrollStep())
}

func (o *Orchestrator) scrollStep() tea.Cmd {
	if settle, halted := o.scroller.Step(); halted {
		return o.settleScroll(settle)
	}
	return o.opts.Schedule(o.opts.ScrollInterval, scrollTickMsg{id: o.id, seq: o.seq})
}

// settleScroll re-measures the window revealed by scrolling and resolves the
// drop position statically at the ghost's centre.
func (o *Orchestrator) settleScroll(settle ScrollSettle) tea.Cmd {
	s := o.session
	s.Scrolling = false
	o.remeasure(virtual.DragAdjusted(o.host.VisibleRange(), s.Dragged.Index))
	s.DragPos = o.clampDragPos(s.Pointer - s.Offset)

	if settle.AtEnd && settle.Direction == Forward {
		s.insertAt = len(s.targets)
		s.OverflowShowing = false
	} else {
		mid := s.DragPos + s.Dragged.Size/2
		k := ResolveIndex(s.targets, s.Dragged.ID, mid, Static)
		if k < 0 {
			k = len(s.targets)
			for i, t := range s.targets {
				if t.Start > mid {
					k = i
					break
				}
			}
		}
		s.insertAt = k
		s.OverflowShowing = k < len(s.targets) && s.targets[k].IsOverflowIndicator
	}
	o.applySpacer()
	o.displaceAtInsert()
	s.To = o.toIndex()

	o.log.Debug("auto-scroll settle",
		"pos", settle.Pos,
		"at_end", settle.AtEnd,
		"insert_at", s.insertAt,
		"to", s.To,
	)
	return nil
}

func (o *Orchestrator) commitDrop() tea.Cmd {
	s := o.session
	if s.Scrolling {
		o.scroller.Stop(false)
		s.Scrolling = false
	}
	s.To = o.toIndex()
	if s.OverflowShowing {
		s.To = -1
	}
	// The spacer shrinks away while the ghost settles.
	o.displacer.ClearDisplaced(o.opts.SpacerFrames > 1)
	o.state = Settling
	o.log.Debug("drop", "from", s.From, "to", s.To)

	cmds := []tea.Cmd{o.startFrames()}
	if s.From != s.To {
		cmds = append(cmds, emit(DropMsg{ListID: o.id, From: s.From, To: s.To}))
	}
	cmds = append(cmds, o.opts.Schedule(o.opts.SettleDuration, settleMsg{id: o.id, seq: o.seq}))
	return tea.Batch(cmds...)
}

func (o *Orchestrator) finishSettle() tea.Cmd {
	index := o.session.To
	o.displacer.Clear()
	o.session = nil
	o.state = Idle
	return emit(DropSettleMsg{ListID: o.id, Index: index})
}

// teardown ends the session on every exit path. Bumping the sequence makes
// every tick already scheduled for it a no-op.
func (o *Orchestrator) teardown() {
	o.seq++
	o.displacer.Clear()
	if o.scroller.Active() {
		o.scroller.Stop(false)
	}
	o.framing = false
	o.session = nil
	o.state = Idle
}

// ── Layout bookkeeping ─────────────────────────────────────────────────────

// remeasure rebuilds the targets for r with the dragged item taken out of
// the flow: items after it move up by its extent and one index.
func (o *Orchestrator) remeasure(r virtual.Range) {
	s := o.session
	all := Measure(o.host, r)
	targets := make([]MeasuredDropTarget, 0, len(all))
	for _, t := range all {
		if t.ID == s.Dragged.ID {
			continue
		}
		if t.Index > s.Dragged.Index {
			Reposition(&t, -(s.Dragged.Size + s.gap), -1)
		}
		targets = append(targets, t)
	}
	s.targets = targets
}

// applySpacer opens the spacer before targets[insertAt] in a freshly
// collapsed layout.
func (o *Orchestrator) applySpacer() {
	s := o.session
	extent := s.spacerSize + s.gap
	for i := s.insertAt; i < len(s.targets); i++ {
		Reposition(&s.targets[i], extent, 1)
	}
}

// moveSpacer moves the spacer to a new slot, shifting the targets it
// crosses.
func (o *Orchestrator) moveSpacer(insert int) {
	s := o.session
	extent := s.spacerSize + s.gap
	if insert > s.insertAt {
		for i := s.insertAt; i < insert; i++ {
			Reposition(&s.targets[i], -extent, -1)
		}
	} else {
		for i := insert; i < s.insertAt; i++ {
			Reposition(&s.targets[i], extent, 1)
		}
	}
	s.insertAt = insert
}

func (o *Orchestrator) displaceAtInsert() {
	s := o.session
	switch {
	case len(s.targets) == 0:
		o.displacer.Clear()
	case s.insertAt < len(s.targets):
		o.displacer.Displace(s.targets[s.insertAt], s.spacerSize, false, Static, o.opts.Orientation)
	default:
		o.displacer.DisplaceLast(s.targets[len(s.targets)-1], s.spacerSize, false, o.opts.Orientation)
	}
}

// toIndex is the collection index the dragged item lands on if dropped now.
func (o *Orchestrator) toIndex() int {
	s := o.session
	n := len(s.targets)
	switch {
	case n == 0:
		return s.From
	case s.insertAt < n:
		return s.targets[s.insertAt].CurrentIndex - 1
	case s.targets[n-1].IsOverflowIndicator:
		// Past a trailing indicator is still the end of the real items.
		return s.targets[n-1].CurrentIndex
	default:
		return s.targets[n-1].CurrentIndex + 1
	}
}

func (o *Orchestrator) startFrames() tea.Cmd {
	if !o.displacer.Transitioning() || o.framing {
		return nil
	}
	o.framing = true
	return o.opts.Schedule(o.opts.FrameInterval, frameMsg{id: o.id, seq: o.seq})
}

func (o *Orchestrator) measureGap(d int) int {
	n := o.host.ItemCount()
	switch {
	case d+1 < n:
		return max(0, o.host.ItemRect(d+1).Start-o.host.ItemRect(d).End)
	case d > 0:
		return max(0, o.host.ItemRect(d).Start-o.host.ItemRect(d-1).End)
	}
	return 0
}

func (o *Orchestrator) scrollable() bool { return o.host.ScrollSize() > o.host.ClientSize() }

// limits bounds the ghost's start: the viewport when the list scrolls, the
// laid-out content otherwise.
func (o *Orchestrator) limits() (lo, hi int) {
	s := o.session
	vp := o.host.Viewport()
	lo = vp.Start
	if o.scrollable() || len(s.targets) == 0 {
		return lo, max(lo, vp.End-s.Dragged.Size)
	}
	last := s.targets[len(s.targets)-1]
	end := last.End
	if s.insertAt == len(s.targets) {
		end += s.gap + s.spacerSize
	}
	return lo, max(lo, end-s.Dragged.Size)
}

func (o *Orchestrator) clampDragPos(pos int) int {
	lo, hi := o.limits()
	return max(lo, min(hi, pos))
}

// scrollDirection is the auto-scroll direction for a ghost at dragPos: the
// ghost pinned against an edge with room left to scroll that way.
func (o *Orchestrator) scrollDirection(dragPos int) Direction {
	if !o.scrollable() {
		return Static
	}
	lo, hi := o.limits()
	pos := o.host.ScrollPos()
	maxScroll := o.host.ScrollSize() - o.host.ClientSize()
	switch {
	case pos > 0 && dragPos <= lo:
		return Backward
	case pos < maxScroll && dragPos >= hi:
		return Forward
	}
	return Static
}

func emit(msg tea.Msg) tea.Cmd { return func() tea.Msg { return msg } }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
