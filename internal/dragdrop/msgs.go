package dragdrop

// DragStartMsg is sent when a press turns into a drag.
type DragStartMsg struct {
	ListID string
	Index  int
}

// DropMsg asks the owner of the collection to move the item at From to To.
// To is -1 when the item was dropped on an overflow indicator.
type DropMsg struct {
	ListID string
	From   int
	To     int
}

// DropSettleMsg is sent once the settle animation after a drop has finished.
type DropSettleMsg struct {
	ListID string
	Index  int
}

// tick identifies the session a timer was scheduled for. The orchestrator
// drops ticks whose sequence is no longer current.
type tick struct {
	id  string
	seq int
}

// Timer messages.
type (
	holdMsg       tick
	scrollTickMsg tick
	frameMsg      tick
	settleMsg     tick
)
