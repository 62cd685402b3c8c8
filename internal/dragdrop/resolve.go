package dragdrop

// ResolveIndex returns the position in targets of the drop target for a
// dragged item whose leading edge is at pos, or -1 when the target does not
// change. draggedID is never returned.
//
// Moving forward, the leading edge is the far end of the dragged item: it
// claims a target once it passes the target's midpoint. Moving backward, the
// leading edge is the near end and the scan runs from the tail. Static
// resolution (after an auto-scroll settles) picks the target under pos.
func ResolveIndex(targets []MeasuredDropTarget, draggedID string, pos int, dir Direction) int {
	i := resolve(targets, pos, dir)
	if i < 0 || targets[i].ID == draggedID {
		return -1
	}
	return i
}

func resolve(targets []MeasuredDropTarget, pos int, dir Direction) int {
	n := len(targets)
	switch dir {
	case Forward:
		for i := 0; i < n; i++ {
			t := targets[i]
			if pos > t.End {
				continue
			}
			if pos > t.Mid {
				return i
			}
			if pos > t.Start {
				// Between start and mid: the target before it still holds.
				return i - 1
			}
			return -1
		}
	case Backward:
		for i := n - 1; i >= 0; i-- {
			t := targets[i]
			if pos < t.Start {
				continue
			}
			if pos < backMid(t) {
				return i
			}
			if pos < t.End {
				return min(n-1, i+1)
			}
			return -1
		}
	default:
		for i := 0; i < n; i++ {
			if targets[i].Rect().Contains(pos) {
				return i
			}
		}
	}
	return -1
}

// backMid is the midpoint measured from the far end. Positions are whole
// cells, so Mid rounds towards Start; a backward scan needs the mirrored
// rounding for a one-cell row to be claimable from its first cell.
func backMid(t MeasuredDropTarget) int { return t.End - t.Size/2 }

// NextDropTarget is ResolveIndex returning the target itself, or nil.
func NextDropTarget(targets []MeasuredDropTarget, dragged *MeasuredDropTarget, pos int, dir Direction) *MeasuredDropTarget {
	id := ""
	if dragged != nil {
		id = dragged.ID
	}
	i := ResolveIndex(targets, id, pos, dir)
	if i < 0 {
		return nil
	}
	return &targets[i]
}
