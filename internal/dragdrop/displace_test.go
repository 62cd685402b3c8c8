package dragdrop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func target(id string) MeasuredDropTarget { return MeasuredDropTarget{ID: id} }

func TestDisplacer_PlacementFollowsDirection(t *testing.T) {
	d := NewDisplacer(1, false)

	d.Displace(target("a"), 2, true, Forward, Vertical)
	s, ok := d.Current()
	require.True(t, ok)
	assert.Equal(t, After, s.Placement)
	assert.Equal(t, 2, s.Size, "a single frame is instant")
	assert.False(t, d.Transitioning())

	d.Displace(target("b"), 2, true, Backward, Vertical)
	s, _ = d.Current()
	assert.Equal(t, "b", s.TargetID)
	assert.Equal(t, Before, s.Placement)

	d.Displace(target("c"), 2, false, Static, Horizontal)
	s, _ = d.Current()
	assert.Equal(t, Before, s.Placement)
	assert.Equal(t, Horizontal, s.Orientation)

	d.DisplaceLast(target("z"), 2, false, Vertical)
	s, _ = d.Current()
	assert.Equal(t, After, s.Placement)
	assert.Len(t, d.Spacers(), 1)
}

func TestDisplacer_CrossFade(t *testing.T) {
	d := NewDisplacer(2, false)
	d.Displace(target("a"), 4, false, Static, Vertical)

	d.Displace(target("b"), 4, true, Backward, Vertical)
	require.True(t, d.Transitioning())
	spacers := d.Spacers()
	require.Len(t, spacers, 1, "the new spacer starts empty")
	assert.Equal(t, "a", spacers[0].TargetID)

	assert.True(t, d.Step())
	sizes := map[string]int{}
	for _, s := range d.Spacers() {
		sizes[s.TargetID] = s.Size
	}
	assert.Equal(t, map[string]int{"a": 2, "b": 2}, sizes)

	assert.False(t, d.Step())
	spacers = d.Spacers()
	require.Len(t, spacers, 1)
	assert.Equal(t, "b", spacers[0].TargetID)
	assert.Equal(t, 4, spacers[0].Size)
	assert.False(t, d.Step(), "nothing left to animate")
}

func TestDisplacer_SameSlotIsNoop(t *testing.T) {
	d := NewDisplacer(3, false)
	d.Displace(target("a"), 3, false, Static, Vertical)
	d.Displace(target("a"), 3, true, Backward, Vertical)
	assert.False(t, d.Transitioning())
	assert.Len(t, d.Spacers(), 1)
}

func TestDisplacer_ClearDisplaced(t *testing.T) {
	d := NewDisplacer(2, true)
	d.Displace(target("a"), 1, false, Static, Vertical)
	s, _ := d.Current()
	assert.True(t, s.Indicator)

	d.ClearDisplaced(true)
	_, ok := d.Current()
	assert.False(t, ok)
	assert.True(t, d.Transitioning())
	d.Step()
	d.Step()
	assert.Empty(t, d.Spacers())

	d.Displace(target("b"), 1, false, Static, Vertical)
	assert.Len(t, d.Spacers(), 1, "usable after clearing")

	d.ClearDisplaced(false)
	assert.Empty(t, d.Spacers())
}

func TestDisplacer_Clear(t *testing.T) {
	d := NewDisplacer(3, false)
	d.Displace(target("a"), 2, false, Static, Vertical)
	d.Displace(target("b"), 2, true, Forward, Vertical)
	d.Clear()
	assert.Empty(t, d.Spacers())
	assert.False(t, d.Transitioning())
}
