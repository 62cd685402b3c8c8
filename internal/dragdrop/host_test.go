package dragdrop

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Akashdeep-Patra/listkit/internal/virtual"
)

// fakeHost lays out n rows of a fixed size in a container and scrolls it.
type fakeHost struct {
	n, size, gap int
	container    int
	scroll       int
	overflow     int // index of an overflow indicator, or -1
}

func newFakeHost(n, size, gap, container int) *fakeHost {
	return &fakeHost{n: n, size: size, gap: gap, container: container, overflow: -1}
}

func (h *fakeHost) geo() virtual.Geometry {
	return virtual.Geometry{ItemSize: h.size, Gap: h.gap, ItemCount: h.n, Container: h.container}
}

func (h *fakeHost) ItemCount() int                 { return h.n }
func (h *fakeHost) ItemID(i int) string            { return fmt.Sprintf("item-%d", i) }
func (h *fakeHost) IsOverflowIndicator(i int) bool { return i == h.overflow }

func (h *fakeHost) ItemRect(i int) Rect {
	return RectAt(i*(h.size+h.gap)-h.scroll, h.size)
}

func (h *fakeHost) ScrollPos() int   { return h.scroll }
func (h *fakeHost) ScrollSize() int  { return h.geo().ContentSize() }
func (h *fakeHost) ClientSize() int  { return h.container }
func (h *fakeHost) ScrollTo(pos int) { h.scroll = max(0, min(pos, h.geo().MaxScroll())) }

func (h *fakeHost) VisibleRange() virtual.Range {
	t := virtual.NewRangeTracker(h.geo(), 0)
	r, _ := t.Update(h.scroll)
	return r
}

func (h *fakeHost) Viewport() Rect { return RectAt(0, h.container) }

// immediate schedules msg without waiting; tests deliver it by hand.
func immediate(_ time.Duration, msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// drain runs cmd and every command it batches, returning the messages.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// pump feeds timer messages back to the orchestrator until none are left
// and returns every message meant for the outside.
func pump(o *Orchestrator, cmd tea.Cmd) []tea.Msg {
	var out []tea.Msg
	queue := drain(cmd)
	for len(queue) > 0 {
		msg := queue[0]
		queue = queue[1:]
		if next, handled := o.Update(msg); handled {
			queue = append(queue, drain(next)...)
			continue
		}
		out = append(out, msg)
	}
	return out
}

func drops(msgs []tea.Msg) []DropMsg {
	var out []DropMsg
	for _, m := range msgs {
		if d, ok := m.(DropMsg); ok {
			out = append(out, d)
		}
	}
	return out
}
