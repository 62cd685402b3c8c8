// Package dragdrop is the drag-to-reorder engine: it measures drop targets
// over a virtualized window, resolves the target under the dragged item,
// reserves space with spacers, auto-scrolls near the edges and commits a
// single (from, to) reorder on release.
//
// Geometry is in terminal cells along the list's scroll axis, in container
// coordinates: 0 is the first visible cell of the list.
package dragdrop

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned by ParseMode for unrecognised values.
var ErrUnknownMode = errors.New("unknown drag mode")

// ErrUnknownOrientation is returned by ParseOrientation.
var ErrUnknownOrientation = errors.New("unknown orientation")

// Rect is an extent along the scroll axis. End is exclusive.
type Rect struct {
	Start int
	End   int
	Size  int
}

// RectAt builds a Rect from a start and a size.
func RectAt(start, size int) Rect { return Rect{Start: start, End: start + size, Size: size} }

// Mid is the midpoint of the extent.
func (r Rect) Mid() int { return r.Start + r.Size/2 }

// Contains reports whether pos lies in [Start, End).
func (r Rect) Contains(pos int) bool { return pos >= r.Start && pos < r.End }

// Orientation is the list's scroll axis.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// ParseOrientation maps a config value to an Orientation.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "vertical", "v":
		return Vertical, nil
	case "horizontal", "h":
		return Horizontal, nil
	}
	return Vertical, fmt.Errorf("%w: %q", ErrUnknownOrientation, s)
}

// Direction is the movement of the dragged item since the last move.
type Direction int

const (
	Static Direction = iota
	Forward
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "static"
	}
}

// Mode selects how the drop position is shown while dragging.
type Mode int

const (
	// Off disables drag and drop.
	Off Mode = iota
	// NaturalMovement opens a gap the size of the dragged row.
	NaturalMovement
	// DropIndicator draws a thin line where the row will land.
	DropIndicator
)

func (m Mode) String() string {
	switch m {
	case NaturalMovement:
		return "natural-movement"
	case DropIndicator:
		return "drop-indicator"
	default:
		return "off"
	}
}

// Enabled reports whether dragging is allowed.
func (m Mode) Enabled() bool { return m != Off }

// ParseMode maps the allow_drag_drop option to a Mode. Booleans are
// accepted: true means natural movement.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "false", "0", "no", "off":
		return Off, nil
	case "true", "1", "yes", "on", "natural-movement", "natural":
		return NaturalMovement, nil
	case "drop-indicator", "indicator":
		return DropIndicator, nil
	}
	return Off, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}
