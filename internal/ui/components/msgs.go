package components

import (
	"github.com/Akashdeep-Patra/listkit/internal/collection"
	"github.com/Akashdeep-Patra/listkit/internal/selection"
)

// SelectionChangeMsg is sent after an interaction changed a list's selection.
type SelectionChangeMsg[T any] struct {
	ListID    string
	Selection selection.Selection[T]
}

// SelectMsg reports the item an interaction selected or deselected. It
// follows the SelectionChangeMsg of the same interaction.
type SelectMsg[T any] struct {
	ListID string
	Item   collection.Item[T]
}

// HighlightMsg is sent when keyboard focus moves to another item.
type HighlightMsg struct {
	ListID string
	Index  int
}

// OpenChangeMsg is sent when a dropdown or combobox opens or closes.
type OpenChangeMsg struct {
	ListID string
	Open   bool
}
