package components

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Akashdeep-Patra/listkit/internal/collection"
	"github.com/Akashdeep-Patra/listkit/internal/dragdrop"
	"github.com/Akashdeep-Patra/listkit/internal/logging"
	"github.com/Akashdeep-Patra/listkit/internal/selection"
	"github.com/Akashdeep-Patra/listkit/internal/ui"
	"github.com/Akashdeep-Patra/listkit/internal/virtual"
)

// overflowID is the item id of the trailing overflow indicator.
const overflowID = "\x00overflow"

// ListOptions configure a List.
type ListOptions struct {
	// ID tags every message the list emits.
	ID          string
	Orientation dragdrop.Orientation
	// ItemSize is the extent of one item along the list axis: rows for a
	// vertical list, columns for a horizontal one.
	ItemSize int
	Gap      int
	// Displayed is how many items the viewport shows at once. Zero fills
	// the space the list is given.
	Displayed    int
	RenderBuffer int
	// OverflowLabel adds a trailing indicator item with this label. Dropping
	// on it moves the dragged item to the end.
	OverflowLabel string

	Selection selection.Options
	Drag      dragdrop.Options
	Keys      ListKeyMap
	Logger    *slog.Logger
}

// List is a virtualized, selectable list with drag-and-drop reordering.
// It is the Host its drag orchestrator measures and scrolls.
type List[T any] struct {
	opts   ListOptions
	styles ui.Styles
	log    *slog.Logger
	now    func() time.Time

	engine  *selection.Engine[T]
	tracker *virtual.RangeTracker
	slots   *virtual.KeySet
	rows    map[int]renderedRow
	drag    *dragdrop.Orchestrator

	width   int
	height  int
	focused bool

	// press remembers the item and modifiers of a pending press so the
	// release can be replayed as a click.
	press pressState

	// committed is the item the last click or select key landed on, whether
	// or not the selection changed. Pickers close on it.
	committed *collection.Item[T]
}

type pressState struct {
	index       int
	ctrl, shift bool
}

var _ dragdrop.Host = (*List[string])(nil)

// NewList creates a list over coll.
func NewList[T any](coll *collection.Collection[T], styles ui.Styles, opts ListOptions) *List[T] {
	if opts.ItemSize <= 0 {
		opts.ItemSize = 1
	}
	if opts.Gap < 0 {
		opts.Gap = 0
	}
	if opts.Keys.Select.Keys() == nil {
		opts.Keys = DefaultListKeyMap()
	}
	opts.Logger = logging.OrDiscard(opts.Logger)
	opts.Selection.Logger = opts.Logger
	opts.Drag.Logger = opts.Logger
	opts.Drag.Orientation = opts.Orientation

	l := &List[T]{
		opts:   opts,
		styles: styles,
		log:    opts.Logger.With("component", "list", "list", opts.ID),
		now:    time.Now,
		engine: selection.New(coll, opts.Selection),
		slots:  virtual.NewKeySet(),
		rows:   map[int]renderedRow{},
	}
	l.tracker = virtual.NewRangeTracker(l.geometry(), opts.RenderBuffer)
	l.drag = dragdrop.New(opts.ID, l, opts.Drag)
	l.rewindow()
	return l
}

// ── Accessors ──────────────────────────────────────────────────────────────

// ID returns the list id.
func (l *List[T]) ID() string { return l.opts.ID }

// Engine exposes the selection engine.
func (l *List[T]) Engine() *selection.Engine[T] { return l.engine }

// Drag exposes the drag orchestrator.
func (l *List[T]) Drag() *dragdrop.Orchestrator { return l.drag }

// Collection returns the current snapshot.
func (l *List[T]) Collection() *collection.Collection[T] { return l.engine.Collection() }

// Selection returns the current selection.
func (l *List[T]) Selection() selection.Selection[T] { return l.engine.Selection() }

// Highlight returns the highlighted index, or -1.
func (l *List[T]) Highlight() int { return l.engine.Highlight() }

// Focused reports whether the list has keyboard focus.
func (l *List[T]) Focused() bool { return l.focused }

// Captured reports whether a press or drag is in flight. Callers forward
// every mouse event to a captured list, even outside its bounds.
func (l *List[T]) Captured() bool {
	s := l.drag.State()
	return s == dragdrop.Pending || s == dragdrop.Dragging
}

// ── Size ───────────────────────────────────────────────────────────────────

// SetSize gives the list its space. The viewport is clipped to it.
func (l *List[T]) SetSize(width, height int) {
	l.width, l.height = max(0, width), max(0, height)
	l.tracker.Resize(l.geometry())
	l.rewindow()
}

// Height is the number of terminal rows the list occupies.
func (l *List[T]) Height() int {
	if l.opts.Orientation == dragdrop.Horizontal {
		return min(1, l.height)
	}
	return l.container()
}

// container is the viewport length along the list axis.
func (l *List[T]) container() int {
	avail := l.height
	if l.opts.Orientation == dragdrop.Horizontal {
		avail = l.width
	}
	if l.opts.Displayed > 0 {
		ext := max(1, l.opts.ItemSize+l.opts.Gap)
		avail = min(avail, l.opts.Displayed*ext-l.opts.Gap)
	}
	return max(0, avail)
}

func (l *List[T]) geometry() virtual.Geometry {
	return virtual.Geometry{
		ItemSize:  l.opts.ItemSize,
		Gap:       l.opts.Gap,
		ItemCount: l.ItemCount(),
		Container: l.container(),
	}
}

// rewindow re-keys the materialized rows after the range moved.
func (l *List[T]) rewindow() {
	lo, hi := l.tracker.Materialized()
	if n := l.slots.Reset(lo, hi); n > 0 {
		l.log.Debug("window", "lo", lo, "hi", hi, "rekeyed", n)
	}
}

// ── Host ───────────────────────────────────────────────────────────────────

// ItemCount counts the items plus the overflow indicator.
func (l *List[T]) ItemCount() int {
	n := l.engine.Collection().Len()
	if l.opts.OverflowLabel != "" {
		n++
	}
	return n
}

// ItemID returns the id of the item at index.
func (l *List[T]) ItemID(index int) string {
	if l.IsOverflowIndicator(index) {
		return overflowID
	}
	it, _ := l.engine.Collection().At(index)
	return it.ID
}

// ItemRect is the item's extent in viewport coordinates.
func (l *List[T]) ItemRect(index int) dragdrop.Rect {
	ext := l.tracker.Geometry().Extent()
	return dragdrop.RectAt(index*ext-l.tracker.Scroll(), l.opts.ItemSize)
}

// IsOverflowIndicator reports whether index is the trailing indicator.
func (l *List[T]) IsOverflowIndicator(index int) bool {
	return l.opts.OverflowLabel != "" && index == l.engine.Collection().Len()
}

func (l *List[T]) ScrollPos() int  { return l.tracker.Scroll() }
func (l *List[T]) ScrollSize() int { return l.tracker.Geometry().ContentSize() }
func (l *List[T]) ClientSize() int { return l.tracker.Geometry().Container }

// ScrollTo moves the viewport; offsets are clamped to the content.
func (l *List[T]) ScrollTo(pos int) {
	if _, changed := l.tracker.Update(pos); changed {
		l.rewindow()
	}
}

// VisibleRange is the window of items inside the viewport.
func (l *List[T]) VisibleRange() virtual.Range { return l.tracker.Range() }

// Viewport is the viewport's extent along the list axis.
func (l *List[T]) Viewport() dragdrop.Rect { return dragdrop.RectAt(0, l.container()) }

// ── Collection ─────────────────────────────────────────────────────────────

// SetCollection replaces the snapshot. The selection keeps the ids that
// survive; a drag the new snapshot invalidates is cancelled.
func (l *List[T]) SetCollection(coll *collection.Collection[T]) tea.Cmd {
	ch, changed := l.engine.SetCollection(coll)
	l.tracker.Resize(l.geometry())
	l.rewindow()
	l.drag.CollectionChanged(l.engine.Collection().Contains)
	return l.emitChange(ch, changed)
}

// ── Focus ──────────────────────────────────────────────────────────────────

// Focus gives the list keyboard focus and highlights the first selected
// item, the remembered one or the first selectable one.
func (l *List[T]) Focus() tea.Cmd {
	l.focused = true
	idx, moved := l.engine.Focus()
	if !moved {
		return nil
	}
	return l.highlightMoved(idx)
}

// Blur removes keyboard focus. A gesture in flight is cancelled.
func (l *List[T]) Blur() tea.Cmd {
	l.focused = false
	l.drag.Cancel()
	ch, changed := l.engine.Apply(selection.Interaction{Kind: selection.TabOut})
	return l.emitChange(ch, changed)
}

// ── Update ─────────────────────────────────────────────────────────────────

// Update handles drag timers, drop settling, keys and mouse events with
// list-local coordinates.
func (l *List[T]) Update(msg tea.Msg) tea.Cmd {
	if cmd, handled := l.drag.Update(msg); handled {
		return cmd
	}
	switch msg := msg.(type) {
	case dragdrop.DropSettleMsg:
		if msg.ListID != l.opts.ID {
			return nil
		}
		index := msg.Index
		if index < 0 {
			index = l.engine.Collection().Len() - 1
		}
		if l.engine.SetHighlight(index) {
			return l.highlightMoved(l.engine.Highlight())
		}
	case tea.KeyMsg:
		cmd, _ := l.HandleKey(msg)
		return cmd
	case tea.MouseMsg:
		return l.HandleMouse(msg)
	}
	return nil
}

// HandleKey applies a key press. handled is false for keys the list does
// not bind, so containers can act on them.
func (l *List[T]) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	k := l.opts.Keys
	prev, next := k.Up, k.Down
	if l.opts.Orientation == dragdrop.Horizontal {
		prev, next = k.Left, k.Right
	}

	switch {
	case key.Matches(msg, k.Cancel) && l.drag.State() != dragdrop.Idle:
		l.drag.Cancel()
		return nil, true
	case key.Matches(msg, prev):
		return l.moveHighlight(-1), true
	case key.Matches(msg, next):
		return l.moveHighlight(1), true
	case key.Matches(msg, k.Extend):
		return l.extend(msg), true
	case key.Matches(msg, k.PageUp):
		return l.moveHighlight(-l.pageSize()), true
	case key.Matches(msg, k.PageDown):
		return l.moveHighlight(l.pageSize()), true
	case key.Matches(msg, k.Home):
		idx, moved := l.engine.HighlightFirst()
		return l.highlightIf(idx, moved), true
	case key.Matches(msg, k.End):
		idx, moved := l.engine.HighlightLast()
		return l.highlightIf(idx, moved), true
	case key.Matches(msg, k.Select):
		return l.apply(selection.Interaction{Kind: selection.Key}), true
	case key.Matches(msg, k.Toggle):
		return l.emitChange(l.engine.Apply(selection.Interaction{Kind: selection.Key, Ctrl: true})), true
	case key.Matches(msg, k.Clear):
		return l.emitChange(l.engine.Clear()), true
	case msg.Type == tea.KeyRunes && !msg.Alt:
		idx, moved := l.engine.TypeAhead(string(msg.Runes), l.now())
		return l.highlightIf(idx, moved), true
	}
	return nil, false
}

// extend moves the highlight with shift held. Extended lists grow the
// range from the anchor; other strategies only move.
func (l *List[T]) extend(msg tea.KeyMsg) tea.Cmd {
	delta := 1
	switch msg.String() {
	case "shift+up", "shift+left":
		delta = -1
	}
	if l.opts.Orientation == dragdrop.Horizontal && (msg.String() == "shift+up" || msg.String() == "shift+down") {
		return nil
	}
	if l.opts.Orientation == dragdrop.Vertical && (msg.String() == "shift+left" || msg.String() == "shift+right") {
		return nil
	}
	idx, moved := l.engine.MoveHighlight(delta)
	cmd := l.highlightIf(idx, moved)
	if !moved || l.engine.Strategy() != selection.Extended {
		return cmd
	}
	change := l.emitChange(l.engine.Apply(selection.Interaction{Kind: selection.Key, Shift: true}))
	return tea.Sequence(cmd, change)
}

// HandleMouse applies a mouse event whose coordinates are relative to the
// list's top-left corner.
func (l *List[T]) HandleMouse(msg tea.MouseMsg) tea.Cmd {
	pos := msg.Y
	if l.opts.Orientation == dragdrop.Horizontal {
		pos = msg.X
	}

	if tea.MouseEvent(msg).IsWheel() {
		if l.Captured() {
			return nil
		}
		step := l.tracker.Geometry().Extent()
		switch msg.Button {
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
			l.ScrollTo(l.ScrollPos() - step)
		case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
			l.ScrollTo(l.ScrollPos() + step)
		}
		return nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !l.inside(msg) {
			return nil
		}
		index, ok := l.IndexAt(pos)
		if !ok || l.IsOverflowIndicator(index) {
			return nil
		}
		l.press = pressState{index: index, ctrl: msg.Ctrl, shift: msg.Shift}
		cmd := l.drag.Press(index, pos)
		if l.drag.State() == dragdrop.Idle {
			return l.click()
		}
		return cmd
	case tea.MouseActionMotion:
		return l.drag.Move(pos)
	case tea.MouseActionRelease:
		cmd, clicked := l.drag.Release()
		if clicked {
			return tea.Sequence(cmd, l.click())
		}
		return cmd
	}
	return nil
}

// IndexAt maps a viewport position along the list axis to an item. Gaps
// between items hit nothing.
func (l *List[T]) IndexAt(pos int) (int, bool) {
	if pos < 0 || pos >= l.container() {
		return -1, false
	}
	ext := l.tracker.Geometry().Extent()
	off := pos + l.tracker.Scroll()
	index := off / ext
	if off%ext >= l.opts.ItemSize || index >= l.ItemCount() {
		return -1, false
	}
	return index, true
}

func (l *List[T]) inside(msg tea.MouseMsg) bool {
	if l.opts.Orientation == dragdrop.Horizontal {
		return msg.Y == 0 && msg.X >= 0 && msg.X < l.container()
	}
	return msg.X >= 0 && msg.X < l.width && msg.Y >= 0 && msg.Y < l.container()
}

func (l *List[T]) click() tea.Cmd {
	p := l.press
	cmd := l.apply(selection.Interaction{
		Kind:  selection.Click,
		Index: p.index,
		Ctrl:  p.ctrl,
		Shift: p.shift,
	})
	if l.engine.Highlight() == p.index {
		l.ensureVisible(p.index)
		return tea.Sequence(cmd, l.emitHighlight(p.index))
	}
	return cmd
}

// ── Highlight ──────────────────────────────────────────────────────────────

func (l *List[T]) pageSize() int {
	if l.opts.Displayed > 0 {
		return l.opts.Displayed
	}
	return max(1, l.container()/l.tracker.Geometry().Extent())
}

func (l *List[T]) moveHighlight(delta int) tea.Cmd {
	idx, moved := l.engine.MoveHighlight(delta)
	return l.highlightIf(idx, moved)
}

func (l *List[T]) highlightIf(idx int, moved bool) tea.Cmd {
	if !moved {
		return nil
	}
	return l.highlightMoved(idx)
}

func (l *List[T]) highlightMoved(idx int) tea.Cmd {
	l.ensureVisible(idx)
	return l.emitHighlight(idx)
}

// ensureVisible scrolls the least distance that brings index fully into
// the viewport.
func (l *List[T]) ensureVisible(index int) {
	if index < 0 {
		return
	}
	ext := l.tracker.Geometry().Extent()
	start := index * ext
	end := start + l.opts.ItemSize
	scroll, c := l.tracker.Scroll(), l.container()
	switch {
	case start < scroll:
		l.ScrollTo(start)
	case end > scroll+c:
		l.ScrollTo(end - c)
	}
}

// apply runs a committing interaction and remembers the item it landed on.
func (l *List[T]) apply(in selection.Interaction) tea.Cmd {
	ch, changed := l.engine.Apply(in)
	l.committed = ch.Selected
	return l.emitChange(ch, changed)
}

// takeCommit returns the item committed since the last call, if any.
func (l *List[T]) takeCommit() (collection.Item[T], bool) {
	it := l.committed
	l.committed = nil
	if it == nil {
		return collection.Item[T]{}, false
	}
	return *it, true
}

// ── Messages ───────────────────────────────────────────────────────────────

// emitChange reports a changed selection followed by the touched item.
func (l *List[T]) emitChange(ch selection.Change[T], changed bool) tea.Cmd {
	if !changed {
		return nil
	}
	l.log.Debug("selection changed", "selected", len(ch.Selection))
	cmds := []tea.Cmd{emit(SelectionChangeMsg[T]{ListID: l.opts.ID, Selection: ch.Selection})}
	if ch.Selected != nil {
		cmds = append(cmds, emit(SelectMsg[T]{ListID: l.opts.ID, Item: *ch.Selected}))
	}
	return tea.Sequence(cmds...)
}

func (l *List[T]) emitHighlight(index int) tea.Cmd {
	return emit(HighlightMsg{ListID: l.opts.ID, Index: index})
}

func emit(msg tea.Msg) tea.Cmd { return func() tea.Msg { return msg } }
