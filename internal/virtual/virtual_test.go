package virtual

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeySet_SlideRekeysOneRow(t *testing.T) {
	k := NewKeySet()
	assert.Equal(t, 10, k.Reset(0, 10))

	before := map[int]int{}
	for i := 1; i < 10; i++ {
		before[i], _ = k.KeyFor(i)
	}
	dropped, _ := k.KeyFor(0)

	assert.Equal(t, 1, k.Reset(1, 11))
	for i := 1; i < 10; i++ {
		key, ok := k.KeyFor(i)
		require.True(t, ok)
		assert.Equal(t, before[i], key, "row %d keeps its slot", i)
	}
	key, ok := k.KeyFor(10)
	require.True(t, ok)
	assert.Equal(t, dropped, key, "revealed row reuses the released key")

	_, ok = k.KeyFor(0)
	assert.False(t, ok)
	assert.Equal(t, 10, k.Len())
}

func TestKeySet_KeysStayUnique(t *testing.T) {
	k := NewKeySet()
	k.Reset(0, 5)
	k.Reset(3, 12)
	k.Reset(20, 24)
	k.Reset(18, 26)

	seen := map[int]bool{}
	for i := 18; i < 26; i++ {
		key, ok := k.KeyFor(i)
		require.True(t, ok)
		assert.False(t, seen[key], "duplicate key %d", key)
		seen[key] = true
	}
	lo, hi := k.Window()
	assert.Equal(t, 18, lo)
	assert.Equal(t, 26, hi)
}

func TestKeySet_EmptyWindow(t *testing.T) {
	k := NewKeySet()
	k.Reset(0, 4)
	assert.Equal(t, 0, k.Reset(5, 2))
	assert.Equal(t, 0, k.Len())
}

func TestRangeTracker_Compute(t *testing.T) {
	// rows of 2 cells with a 1 cell gap: extent 3. Container of 10 shows 4 rows.
	geo := Geometry{ItemSize: 2, Gap: 1, ItemCount: 20, Container: 10}

	tests := []struct {
		scroll int
		want   Range
	}{
		{0, Range{From: 0, To: 3, AtStart: true}},
		{2, Range{From: 0, To: 3, AtStart: true}},
		{3, Range{From: 1, To: 4}},
		{48, Range{From: 16, To: 19, AtEnd: true}},
		{500, Range{From: 16, To: 19, AtEnd: true}},
	}
	for _, tt := range tests {
		tr := NewRangeTracker(geo, 0)
		got, _ := tr.Update(tt.scroll)
		assert.Equal(t, tt.want, got, "scroll %d", tt.scroll)
	}
}

func TestRangeTracker_NoRedundantChange(t *testing.T) {
	tr := NewRangeTracker(Geometry{ItemSize: 3, ItemCount: 50, Container: 9}, 0)

	changes := 0
	for scroll := 0; scroll <= 30; scroll++ {
		if _, changed := tr.Update(scroll); changed {
			changes++
		}
	}
	// from advances every 3 cells: 1..10.
	assert.Equal(t, 10, changes)

	_, changed := tr.Update(31)
	assert.False(t, changed)
	_, changed = tr.Update(32)
	assert.False(t, changed)
}

func TestRangeTracker_Resize(t *testing.T) {
	tr := NewRangeTracker(Geometry{ItemSize: 1, ItemCount: 100, Container: 10}, 0)
	tr.Update(90)
	require.Equal(t, 90, tr.Scroll())

	r, changed := tr.Resize(Geometry{ItemSize: 1, ItemCount: 30, Container: 10})
	assert.True(t, changed)
	assert.Equal(t, 20, tr.Scroll(), "scroll clamped to the new maximum")
	assert.Equal(t, Range{From: 20, To: 29, AtEnd: true}, r)
}

func TestRangeTracker_Materialized(t *testing.T) {
	tr := NewRangeTracker(Geometry{ItemSize: 1, ItemCount: 40, Container: 10}, -1)
	lo, hi := tr.Materialized()
	assert.Equal(t, 0, lo)
	assert.Equal(t, 15, hi)

	tr.Update(20)
	lo, hi = tr.Materialized()
	assert.Equal(t, 15, lo)
	assert.Equal(t, 35, hi)

	tr.Update(30)
	_, hi = tr.Materialized()
	assert.Equal(t, 40, hi)
}

func TestGeometry(t *testing.T) {
	g := Geometry{ItemSize: 2, Gap: 1, ItemCount: 4, Container: 5}
	assert.Equal(t, 3, g.Extent())
	assert.Equal(t, 11, g.ContentSize())
	assert.Equal(t, 6, g.MaxScroll())
	assert.Equal(t, 0, Geometry{}.ContentSize())
}

func TestDragAdjusted(t *testing.T) {
	r := Range{From: 4, To: 8}
	assert.Equal(t, Range{From: 5, To: 9}, DragAdjusted(r, 2))
	assert.Equal(t, Range{From: 4, To: 9}, DragAdjusted(r, 4))
	assert.Equal(t, Range{From: 4, To: 9}, DragAdjusted(r, 8))
	assert.Equal(t, r, DragAdjusted(r, 9))
}
