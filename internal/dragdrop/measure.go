package dragdrop

import "github.com/Akashdeep-Patra/listkit/internal/virtual"

// MeasuredDropTarget is one candidate drop position. Index is the item's
// position in the collection; CurrentIndex is where the item sits in the
// displaced layout of the current drag.
type MeasuredDropTarget struct {
	ID                  string
	Index               int
	CurrentIndex        int
	Start               int
	Mid                 int
	End                 int
	Size                int
	IsLast              bool
	IsOverflowIndicator bool
}

// Rect returns the target's extent.
func (t MeasuredDropTarget) Rect() Rect { return Rect{Start: t.Start, End: t.End, Size: t.Size} }

// Measurer reports item geometry. The list implements it from its layout;
// tests implement it with fixed rows.
type Measurer interface {
	ItemCount() int
	ItemID(index int) string
	// ItemRect is the item's extent in container coordinates at the current
	// scroll offset.
	ItemRect(index int) Rect
	IsOverflowIndicator(index int) bool
}

// Measure records every item of r, clamped to the item count.
func Measure(m Measurer, r virtual.Range) []MeasuredDropTarget {
	n := m.ItemCount()
	from, to := max(0, r.From), min(n-1, r.To)
	if to < from {
		return nil
	}
	out := make([]MeasuredDropTarget, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, measureOne(m, i, n))
	}
	return out
}

func measureOne(m Measurer, i, n int) MeasuredDropTarget {
	rect := m.ItemRect(i)
	return MeasuredDropTarget{
		ID:                  m.ItemID(i),
		Index:               i,
		CurrentIndex:        i,
		Start:               rect.Start,
		Mid:                 rect.Mid(),
		End:                 rect.End,
		Size:                rect.Size,
		IsLast:              i == n-1,
		IsOverflowIndicator: m.IsOverflowIndicator(i),
	}
}

// Reposition shifts a target along the axis by distance and its current
// index by indexShift.
func Reposition(t *MeasuredDropTarget, distance, indexShift int) {
	t.Start += distance
	t.Mid += distance
	t.End += distance
	t.CurrentIndex += indexShift
}
