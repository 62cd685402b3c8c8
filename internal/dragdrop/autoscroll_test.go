package dragdrop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutoScroller_HaltsAtEndOnce(t *testing.T) {
	tests := []struct {
		name      string
		start     int
		dir       Direction
		rate      int
		step      int
		wantPos   int
		wantSteps int
	}{
		{"forward to max", 9, Forward, 1, 2, 15, 3},
		{"backward to zero", 5, Backward, 2, 1, 0, 3},
		{"single overshooting step", 14, Forward, 3, 3, 15, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// 20 one-cell rows in a 5 cell viewport: max scroll 15.
			h := newFakeHost(20, 1, 0, 5)
			h.scroll = tt.start
			a := NewAutoScroller(h)
			require.True(t, a.Start(tt.dir, tt.rate, tt.step))

			halts, steps := 0, 0
			var last ScrollSettle
			for range 50 {
				settle, halted := a.Step()
				if a.Active() || halted {
					steps++
				}
				if halted {
					halts++
					last = settle
				}
			}
			assert.Equal(t, 1, halts, "halt reported exactly once")
			assert.Equal(t, tt.wantSteps, steps)
			assert.True(t, last.AtEnd)
			assert.Equal(t, tt.dir, last.Direction)
			assert.Equal(t, tt.wantPos, last.Pos)
			assert.Equal(t, tt.wantPos, h.ScrollPos())
			assert.False(t, a.Active())
		})
	}
}

func TestAutoScroller_StartAtLimit(t *testing.T) {
	h := newFakeHost(20, 1, 0, 5)
	a := NewAutoScroller(h)
	assert.False(t, a.Start(Backward, 1, 1))
	assert.False(t, a.Start(Static, 1, 1))
	assert.False(t, a.Active())

	h.scroll = 15
	assert.False(t, a.Start(Forward, 1, 1))
}

func TestAutoScroller_Stop(t *testing.T) {
	h := newFakeHost(20, 1, 0, 5)
	a := NewAutoScroller(h)
	require.True(t, a.Start(Forward, 1, 1))
	a.Step()
	assert.Equal(t, Forward, a.Direction())

	settle := a.Stop(false)
	assert.False(t, settle.AtEnd)
	assert.Equal(t, 1, settle.Pos)
	assert.Equal(t, Static, a.Direction())

	_, halted := a.Step()
	assert.False(t, halted)
	assert.Equal(t, 1, h.ScrollPos())
}
