package dragdrop

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akashdeep-Patra/listkit/internal/collection"
)

func newOrchestrator(h *fakeHost, mode Mode) *Orchestrator {
	return New("list", h, Options{Mode: mode, Schedule: immediate})
}

// manualClock queues scheduled messages until the test delivers them.
type manualClock struct{ queue []tea.Msg }

func (c *manualClock) schedule(_ time.Duration, msg tea.Msg) tea.Cmd {
	c.queue = append(c.queue, msg)
	return nil
}

func (c *manualClock) deliver(o *Orchestrator) {
	queue := c.queue
	c.queue = nil
	for _, msg := range queue {
		cmd, _ := o.Update(msg)
		drain(cmd)
	}
}

func TestOrchestrator_ForwardDrop(t *testing.T) {
	h := newFakeHost(5, 1, 0, 10)
	o := newOrchestrator(h, NaturalMovement)

	_ = o.Press(1, 1)
	assert.Equal(t, Pending, o.State())

	msgs := pump(o, o.Move(5))
	require.Equal(t, Dragging, o.State())
	assert.Contains(t, msgs, tea.Msg(DragStartMsg{ListID: "list", Index: 1}))
	assert.Equal(t, 4, o.Session().To)

	index, pos, ok := o.Ghost()
	require.True(t, ok)
	assert.Equal(t, 1, index)
	assert.Equal(t, 4, pos, "ghost clamped to the last row")

	assert.Empty(t, drops(pump(o, o.Move(5))), "a stationary pointer changes nothing")
	assert.Equal(t, 4, o.Session().To)

	cmd, clicked := o.Release()
	require.False(t, clicked)
	msgs = pump(o, cmd)
	assert.Equal(t, []DropMsg{{ListID: "list", From: 1, To: 4}}, drops(msgs))
	assert.Contains(t, msgs, tea.Msg(DropSettleMsg{ListID: "list", Index: 4}))
	assert.Equal(t, Idle, o.State())
	assert.Empty(t, o.Displacer().Spacers())
}

func TestOrchestrator_SpacerShrinksWhileSettling(t *testing.T) {
	h := newFakeHost(5, 1, 0, 10)
	clock := &manualClock{}
	o := New("list", h, Options{Mode: NaturalMovement, Schedule: clock.schedule})

	o.Press(1, 1)
	drain(o.Move(5))
	require.Equal(t, Dragging, o.State())
	for range 5 {
		clock.deliver(o)
	}
	require.False(t, o.Displacer().Transitioning())
	require.NotEmpty(t, o.Displacer().Spacers())

	cmd, _ := o.Release()
	assert.Equal(t, []DropMsg{{ListID: "list", From: 1, To: 4}}, drops(drain(cmd)))
	require.Equal(t, Settling, o.State())
	_, displacing := o.Displacer().Current()
	assert.False(t, displacing)
	assert.True(t, o.Displacer().Transitioning(), "the spacer fades out")
	assert.NotEmpty(t, o.Displacer().Spacers())

	clock.deliver(o)
	assert.Equal(t, Idle, o.State())
	assert.Empty(t, o.Displacer().Spacers(), "settling drops whatever is left")
}

func TestOrchestrator_HoldThenBackwardDrop(t *testing.T) {
	h := newFakeHost(5, 1, 0, 10)
	o := newOrchestrator(h, NaturalMovement)

	msgs := pump(o, o.Press(3, 3))
	require.Equal(t, Dragging, o.State(), "hold timeout starts the drag")
	assert.Contains(t, msgs, tea.Msg(DragStartMsg{ListID: "list", Index: 3}))
	assert.Equal(t, 3, o.Session().To)

	pump(o, o.Move(0))
	assert.Equal(t, 0, o.Session().InsertAt())
	assert.Equal(t, 0, o.Session().To)

	cmd, _ := o.Release()
	assert.Equal(t, []DropMsg{{ListID: "list", From: 3, To: 0}}, drops(pump(o, cmd)))
}

func TestOrchestrator_DropAppliesAsMove(t *testing.T) {
	h := newFakeHost(5, 1, 0, 10)
	o := newOrchestrator(h, NaturalMovement)
	pump(o, o.Press(3, 3))
	pump(o, o.Move(1))
	cmd, _ := o.Release()
	got := drops(pump(o, cmd))
	require.Len(t, got, 1)

	items := make([]collection.Item[int], 5)
	for i := range items {
		items[i] = collection.Item[int]{ID: h.ItemID(i), Value: i}
	}
	c, err := collection.New(items)
	require.NoError(t, err)
	moved, err := c.Move(got[0].From, got[0].To)
	require.NoError(t, err)

	order := []int{}
	for _, it := range moved.Items() {
		order = append(order, it.Value)
	}
	assert.Equal(t, []int{0, 3, 1, 2, 4}, order)
}

func TestOrchestrator_ReleaseWithoutDragIsClick(t *testing.T) {
	h := newFakeHost(5, 1, 0, 10)
	o := newOrchestrator(h, NaturalMovement)

	hold := o.Press(2, 2)
	_ = o.Move(4)
	cmd, clicked := o.Release()
	assert.True(t, clicked)
	assert.Nil(t, cmd)
	assert.Equal(t, Idle, o.State())

	assert.Empty(t, pump(o, hold), "stale hold tick is ignored")
	assert.Equal(t, Idle, o.State())
}

func TestOrchestrator_NoDropWhenPositionUnchanged(t *testing.T) {
	h := newFakeHost(5, 1, 0, 10)
	o := newOrchestrator(h, NaturalMovement)
	pump(o, o.Press(2, 2))

	cmd, _ := o.Release()
	msgs := pump(o, cmd)
	assert.Empty(t, drops(msgs))
	assert.Contains(t, msgs, tea.Msg(DropSettleMsg{ListID: "list", Index: 2}))
}

func TestOrchestrator_CancelAndIgnoredPress(t *testing.T) {
	h := newFakeHost(5, 1, 0, 10)
	o := newOrchestrator(h, NaturalMovement)
	_ = o.Press(1, 1)
	pump(o, o.Move(5))
	require.Equal(t, Dragging, o.State())

	assert.Nil(t, o.Press(0, 0), "press during a drag is ignored")
	assert.Equal(t, 1, o.Session().Dragged.Index)

	o.Cancel()
	assert.Equal(t, Idle, o.State())
	assert.Nil(t, o.Session())
	assert.Empty(t, o.Displacer().Spacers())

	cmd, clicked := o.Release()
	assert.Nil(t, cmd)
	assert.False(t, clicked)
}

func TestOrchestrator_DisabledOrOverflow(t *testing.T) {
	h := newFakeHost(5, 1, 0, 10)
	assert.Nil(t, newOrchestrator(h, Off).Press(1, 1))

	h.overflow = 4
	o := newOrchestrator(h, NaturalMovement)
	assert.Nil(t, o.Press(4, 4), "the overflow indicator cannot be dragged")
	assert.Nil(t, o.Press(9, 9))
	assert.Equal(t, Idle, o.State())
}

func TestOrchestrator_DropOnOverflowIndicator(t *testing.T) {
	h := newFakeHost(5, 1, 0, 10)
	h.overflow = 4
	o := newOrchestrator(h, NaturalMovement)
	_ = o.Press(1, 1)
	pump(o, o.Move(5))
	require.True(t, o.Session().OverflowShowing)

	cmd, _ := o.Release()
	assert.Equal(t, []DropMsg{{ListID: "list", From: 1, To: -1}}, drops(pump(o, cmd)))
}

func TestOrchestrator_AutoScrollToEnd(t *testing.T) {
	// 20 rows, 5 visible: max scroll 15.
	h := newFakeHost(20, 1, 0, 5)
	o := newOrchestrator(h, NaturalMovement)
	_ = o.Press(2, 2)

	pump(o, o.Move(6))
	require.Equal(t, Dragging, o.State())
	assert.Equal(t, 15, h.ScrollPos(), "scrolled until the end")
	assert.False(t, o.Session().Scrolling)
	assert.Equal(t, 4, o.Session().InsertAt(), "spacer after the last target")
	assert.Equal(t, 19, o.Session().To)

	cmd, _ := o.Release()
	assert.Equal(t, []DropMsg{{ListID: "list", From: 2, To: 19}}, drops(pump(o, cmd)))
}

func TestOrchestrator_LeavingHotZoneSettles(t *testing.T) {
	h := newFakeHost(20, 1, 0, 5)
	clock := &manualClock{}
	o := New("list", h, Options{Mode: NaturalMovement, Schedule: clock.schedule})

	o.Press(2, 2)
	clock.queue = nil
	drain(o.Move(6))
	require.True(t, o.Session().Scrolling)
	assert.Equal(t, 1, h.ScrollPos(), "first step is immediate")
	_, displacing := o.Displacer().Current()
	assert.False(t, displacing, "no spacer is held open while scrolling")

	clock.deliver(o)
	assert.Equal(t, 2, h.ScrollPos())

	drain(o.Move(7))
	assert.Equal(t, 2, h.ScrollPos(), "moves while scrolling only record the pointer")
	assert.Equal(t, 7, o.Session().Pointer)
	require.True(t, o.Session().Scrolling)

	drain(o.Move(2))
	require.False(t, o.Session().Scrolling)
	clock.deliver(o)
	assert.Equal(t, 2, h.ScrollPos(), "ticks after the settle are inert")

	assert.Equal(t, 2, o.Session().InsertAt())
	assert.Equal(t, 4, o.Session().To)
	assert.NotEmpty(t, o.Displacer().Spacers())
}

func TestOrchestrator_DropIndicator(t *testing.T) {
	h := newFakeHost(5, 2, 0, 20)
	o := newOrchestrator(h, DropIndicator)

	pump(o, o.Press(1, 2))
	require.Equal(t, Dragging, o.State())

	starts := []int{}
	for _, tg := range o.Session().Targets() {
		starts = append(starts, tg.Start)
	}
	assert.Equal(t, []int{0, 3, 5, 7}, starts, "rows collapse around a one cell indicator")

	pump(o, o.Move(8))
	spacer, ok := o.Displacer().Current()
	require.True(t, ok)
	assert.True(t, spacer.Indicator)
	assert.Equal(t, 1, spacer.Size)
	assert.Equal(t, After, spacer.Placement)

	cmd, _ := o.Release()
	assert.Equal(t, []DropMsg{{ListID: "list", From: 1, To: 4}}, drops(pump(o, cmd)))
}

func TestOrchestrator_CollectionChanged(t *testing.T) {
	h := newFakeHost(5, 1, 0, 10)
	clock := &manualClock{}
	o := New("list", h, Options{Mode: NaturalMovement, Schedule: clock.schedule})

	o.Press(1, 1)
	drain(o.Move(5))
	o.CollectionChanged(func(string) bool { return true })
	assert.Equal(t, Idle, o.State(), "a drag never survives a replace")

	o.Press(1, 1)
	drain(o.Move(5))
	cmd, _ := o.Release()
	drain(cmd)
	require.Equal(t, Settling, o.State())
	o.CollectionChanged(func(id string) bool { return id == "item-1" })
	assert.Equal(t, Settling, o.State(), "the settling item still exists")

	o.CollectionChanged(func(string) bool { return false })
	assert.Equal(t, Idle, o.State())
	clock.deliver(o)
	assert.Equal(t, Idle, o.State())
}
