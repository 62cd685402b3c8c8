package selection

import (
	"log/slog"
	"slices"
	"time"

	"github.com/Akashdeep-Patra/listkit/internal/collection"
	"github.com/Akashdeep-Patra/listkit/internal/logging"
)

// Kind is the source of an interaction.
type Kind int

// Interaction kinds.
const (
	// Click is a pointer click on Index.
	Click Kind = iota
	// Key commits the highlighted item (Enter, Space, or a modifier chord).
	Key
	// TabOut is focus leaving the widget.
	TabOut
)

// Interaction is one user action fed to Engine.Apply.
type Interaction struct {
	Kind  Kind
	Index int
	Ctrl  bool
	Shift bool
}

// Selection is the ordered set of selected items. Multiple keeps
// first-toggle-on order; Extended keeps positional order.
type Selection[T any] []collection.Item[T]

// IDs returns the ids in selection order.
func (s Selection[T]) IDs() []string {
	ids := make([]string, len(s))
	for i, it := range s {
		ids[i] = it.ID
	}
	return ids
}

// Contains reports whether id is selected.
func (s Selection[T]) Contains(id string) bool {
	for _, it := range s {
		if it.ID == id {
			return true
		}
	}
	return false
}

// Change is the outcome of an interaction.
type Change[T any] struct {
	// Selection is the full new selection.
	Selection Selection[T]
	// Selected is the item reported to onSelect. Nil when nothing was touched.
	Selected *collection.Item[T]
}

// Options configure an Engine.
type Options struct {
	Strategy            Strategy
	TabToSelect         bool
	DisableTypeToSelect bool
	RestoreLastFocus    bool
	TypeAheadTimeout    time.Duration
	Logger              *slog.Logger
}

// Engine is the selection state machine for one widget. It is not safe for
// concurrent use; Bubbletea calls it from the Update goroutine only.
type Engine[T any] struct {
	opts   Options
	log    *slog.Logger
	coll   *collection.Collection[T]
	ids    []string
	anchor string

	highlight     int
	lastHighlight string
	typeAhead     *typeAhead
}

// New creates an engine over coll.
func New[T any](coll *collection.Collection[T], opts Options) *Engine[T] {
	logger := logging.OrDiscard(opts.Logger)
	if coll == nil {
		coll = collection.Empty[T]()
	}
	return &Engine[T]{
		opts:      opts,
		log:       logger.With("component", "selection"),
		coll:      coll,
		highlight: -1,
		typeAhead: newTypeAhead(opts.TypeAheadTimeout),
	}
}

// Strategy returns the engine's strategy.
func (e *Engine[T]) Strategy() Strategy { return e.opts.Strategy }

// Collection returns the current snapshot.
func (e *Engine[T]) Collection() *collection.Collection[T] { return e.coll }

// Selection returns the current selection resolved against the snapshot.
func (e *Engine[T]) Selection() Selection[T] {
	out := make(Selection[T], 0, len(e.ids))
	for _, id := range e.ids {
		if it, ok := e.coll.Get(id); ok {
			out = append(out, it)
		}
	}
	return out
}

// IsSelected reports whether id is selected.
func (e *Engine[T]) IsSelected(id string) bool { return slices.Contains(e.ids, id) }

// Anchor returns the id ranges extend from, or "".
func (e *Engine[T]) Anchor() string { return e.anchor }

// ── Interactions ────────────────────────────────────────────────────────────

// Apply maps an interaction to a new selection. The bool reports whether the
// selection set changed; callers emit onSelectionChange and onSelect only then.
func (e *Engine[T]) Apply(in Interaction) (Change[T], bool) {
	switch in.Kind {
	case Click:
		if e.selectable(in.Index) {
			e.highlight = in.Index
			e.rememberHighlight()
		}
		return e.click(in.Index, in.Ctrl, in.Shift, false)
	case Key:
		return e.click(e.highlight, in.Ctrl, in.Shift, false)
	case TabOut:
		if !e.opts.TabToSelect || e.opts.Strategy.Multi() {
			return Change[T]{Selection: e.Selection()}, false
		}
		return e.click(e.highlight, false, false, true)
	}
	return Change[T]{Selection: e.Selection()}, false
}

func (e *Engine[T]) click(index int, ctrl, shift, keep bool) (Change[T], bool) {
	item, ok := e.coll.At(index)
	if !ok || !item.Selectable() {
		return Change[T]{Selection: e.Selection()}, false
	}

	before := slices.Clone(e.ids)
	selected := &item

	switch e.opts.Strategy {
	case Default:
		e.ids = []string{item.ID}
	case Deselectable:
		if len(e.ids) == 1 && e.ids[0] == item.ID && !keep {
			e.ids = nil
		} else {
			e.ids = []string{item.ID}
		}
	case Multiple:
		if i := slices.Index(e.ids, item.ID); i >= 0 {
			e.ids = slices.Delete(e.ids, i, i+1)
		} else {
			e.ids = append(e.ids, item.ID)
		}
	case Extended:
		selected = e.extend(item, ctrl, shift)
	}
	if e.opts.Strategy != Extended || !shift {
		e.anchor = item.ID
	}

	changed := !slices.Equal(before, e.ids)
	if changed {
		e.log.Debug("selection changed",
			"strategy", e.opts.Strategy.String(),
			"index", index,
			"count", len(e.ids),
		)
	}
	return Change[T]{Selection: e.Selection(), Selected: selected}, changed
}

// extend applies Extended semantics. A range click reports the last item of
// the range in position order: the clicked item on a forward range, the
// anchor on a backward one.
func (e *Engine[T]) extend(item collection.Item[T], ctrl, shift bool) *collection.Item[T] {
	if !shift {
		if ctrl {
			if i := slices.Index(e.ids, item.ID); i >= 0 {
				e.ids = slices.Delete(e.ids, i, i+1)
			} else {
				e.ids = append(e.ids, item.ID)
			}
			e.sortByPosition()
		} else {
			e.ids = []string{item.ID}
		}
		return &item
	}

	anchor, ok := e.coll.Get(e.anchor)
	if !ok {
		// No anchor yet: the range degenerates to the clicked item.
		anchor = item
		e.anchor = item.ID
	}
	lo, hi := min(anchor.Index, item.Index), max(anchor.Index, item.Index)
	span := make([]string, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		if it, ok := e.coll.At(i); ok && it.Selectable() {
			span = append(span, it.ID)
		}
	}
	if ctrl {
		for _, id := range span {
			if !slices.Contains(e.ids, id) {
				e.ids = append(e.ids, id)
			}
		}
	} else {
		e.ids = span
	}
	e.sortByPosition()
	last := item
	if anchor.Index > item.Index {
		last = anchor
	}
	return &last
}

func (e *Engine[T]) sortByPosition() {
	slices.SortFunc(e.ids, func(a, b string) int {
		return e.coll.IndexOf(a) - e.coll.IndexOf(b)
	})
}

// Clear empties the selection.
func (e *Engine[T]) Clear() (Change[T], bool) {
	changed := len(e.ids) > 0
	e.ids = nil
	e.anchor = ""
	return Change[T]{Selection: Selection[T]{}}, changed
}

// SetCollection installs a new snapshot, pruning selected ids that no longer
// exist. The bool reports whether pruning changed the selection.
func (e *Engine[T]) SetCollection(coll *collection.Collection[T]) (Change[T], bool) {
	if coll == nil {
		coll = collection.Empty[T]()
	}
	highlighted := e.lastHighlight
	e.coll = coll

	kept := e.ids[:0:0]
	for _, id := range e.ids {
		if coll.Contains(id) {
			kept = append(kept, id)
		}
	}
	changed := len(kept) != len(e.ids)
	e.ids = kept
	if e.opts.Strategy == Extended {
		e.sortByPosition()
	}
	if !coll.Contains(e.anchor) {
		e.anchor = ""
	}

	switch {
	case e.highlight < 0:
	case coll.Contains(highlighted):
		e.highlight = coll.IndexOf(highlighted)
	default:
		e.highlight = e.nearestSelectable(min(e.highlight, coll.Len()-1))
		e.rememberHighlight()
	}
	e.typeAhead.reset()

	if changed {
		e.log.Debug("selection pruned", "count", len(e.ids))
	}
	return Change[T]{Selection: e.Selection()}, changed
}

// ── Highlight ──────────────────────────────────────────────────────────────

// Highlight returns the highlighted index, or -1.
func (e *Engine[T]) Highlight() int { return e.highlight }

// SetHighlight moves the highlight to index when it is selectable.
func (e *Engine[T]) SetHighlight(index int) bool {
	if !e.selectable(index) || index == e.highlight {
		return false
	}
	e.highlight = index
	e.rememberHighlight()
	return true
}

// MoveHighlight moves the highlight by delta rows, skipping headers and
// disabled items. It stops at the ends instead of wrapping.
func (e *Engine[T]) MoveHighlight(delta int) (int, bool) {
	n := e.coll.Len()
	if n == 0 || delta == 0 {
		return e.highlight, false
	}
	if e.highlight < 0 {
		if delta > 0 {
			return e.HighlightFirst()
		}
		return e.HighlightLast()
	}

	step := 1
	if delta < 0 {
		step = -1
	}
	target := max(0, min(n-1, e.highlight+delta))
	for i := target; i >= 0 && i < n; i += step {
		if e.selectable(i) {
			return e.moveTo(i)
		}
	}
	// Nothing selectable past the target: fall back towards the start point.
	for i := target - step; i != e.highlight && i >= 0 && i < n; i -= step {
		if e.selectable(i) {
			return e.moveTo(i)
		}
	}
	return e.highlight, false
}

// HighlightFirst moves to the first selectable item.
func (e *Engine[T]) HighlightFirst() (int, bool) {
	for i := 0; i < e.coll.Len(); i++ {
		if e.selectable(i) {
			return e.moveTo(i)
		}
	}
	return e.highlight, false
}

// HighlightLast moves to the last selectable item.
func (e *Engine[T]) HighlightLast() (int, bool) {
	for i := e.coll.Len() - 1; i >= 0; i-- {
		if e.selectable(i) {
			return e.moveTo(i)
		}
	}
	return e.highlight, false
}

// Focus places the highlight when the widget gains focus: the last
// highlighted item with RestoreLastFocus, else the first selected item, else
// the first selectable item.
func (e *Engine[T]) Focus() (int, bool) {
	if e.opts.RestoreLastFocus && e.coll.Contains(e.lastHighlight) {
		i := e.coll.IndexOf(e.lastHighlight)
		return e.moveTo(i)
	}
	if sel := e.Selection(); len(sel) > 0 {
		return e.moveTo(sel[0].Index)
	}
	return e.HighlightFirst()
}

// TypeAhead feeds printable text to type-to-select and moves the highlight to
// the next item whose label starts with the accumulated prefix.
func (e *Engine[T]) TypeAhead(text string, now time.Time) (int, bool) {
	if e.opts.DisableTypeToSelect || text == "" {
		return e.highlight, false
	}
	prefix, fresh := e.typeAhead.push(text, now)
	n := e.coll.Len()
	if n == 0 {
		return e.highlight, false
	}

	start := max(e.highlight, 0)
	if fresh && e.highlight >= 0 {
		start = e.highlight + 1
	}
	for k := 0; k < n; k++ {
		i := (start + k) % n
		it, _ := e.coll.At(i)
		if it.Selectable() && e.typeAhead.matches(it.Label, prefix) {
			return e.moveTo(i)
		}
	}
	return e.highlight, false
}

// TypeAheadPrefix returns the current search prefix.
func (e *Engine[T]) TypeAheadPrefix() string { return e.typeAhead.prefix }

func (e *Engine[T]) moveTo(index int) (int, bool) {
	moved := e.SetHighlight(index)
	return e.highlight, moved
}

func (e *Engine[T]) selectable(index int) bool {
	it, ok := e.coll.At(index)
	return ok && it.Selectable()
}

func (e *Engine[T]) rememberHighlight() {
	if it, ok := e.coll.At(e.highlight); ok {
		e.lastHighlight = it.ID
	} else {
		e.lastHighlight = ""
	}
}

func (e *Engine[T]) nearestSelectable(index int) int {
	n := e.coll.Len()
	for d := 0; d < n; d++ {
		if e.selectable(index + d) {
			return index + d
		}
		if e.selectable(index - d) {
			return index - d
		}
	}
	return -1
}
