// Package collection holds the ordered item snapshots that lists render,
// select from and reorder, plus the file-backed sources they are loaded from.
package collection

import (
	"errors"
	"fmt"
)

// ErrDuplicateID is returned when two items of one snapshot share an id.
var ErrDuplicateID = errors.New("duplicate item id")

// Item is one entry of a collection snapshot.
type Item[T any] struct {
	ID         string
	Value      T
	Index      int
	Label      string
	Disabled   bool
	Header     bool
	ChildCount int
	Expanded   bool
}

// Selectable reports whether the item can be highlighted or selected.
// Headers and disabled items are rendered but never selectable.
func (it Item[T]) Selectable() bool { return !it.Disabled && !it.Header }

// Collection is an immutable, ordered snapshot of items keyed by id.
// Sources never patch a snapshot in place; a change produces a new one.
type Collection[T any] struct {
	items []Item[T]
	byID  map[string]int
}

// New builds a snapshot from items, assigning Index from slice position.
func New[T any](items []Item[T]) (*Collection[T], error) {
	c := &Collection[T]{
		items: make([]Item[T], len(items)),
		byID:  make(map[string]int, len(items)),
	}
	for i, it := range items {
		if _, dup := c.byID[it.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, it.ID)
		}
		it.Index = i
		c.items[i] = it
		c.byID[it.ID] = i
	}
	return c, nil
}

// Empty returns a snapshot with no items.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{byID: map[string]int{}}
}

// Len returns the number of items. A nil snapshot is empty.
func (c *Collection[T]) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// At returns the item at index i.
func (c *Collection[T]) At(i int) (Item[T], bool) {
	if c == nil || i < 0 || i >= len(c.items) {
		return Item[T]{}, false
	}
	return c.items[i], true
}

// Get returns the item with the given id.
func (c *Collection[T]) Get(id string) (Item[T], bool) {
	i := c.IndexOf(id)
	if i < 0 {
		return Item[T]{}, false
	}
	return c.items[i], true
}

// IndexOf returns the position of id, or -1.
func (c *Collection[T]) IndexOf(id string) int {
	if c == nil {
		return -1
	}
	if i, ok := c.byID[id]; ok {
		return i
	}
	return -1
}

// Contains reports whether id is part of the snapshot.
func (c *Collection[T]) Contains(id string) bool { return c.IndexOf(id) >= 0 }

// Items returns a copy of the ordered items.
func (c *Collection[T]) Items() []Item[T] {
	if c == nil {
		return nil
	}
	out := make([]Item[T], len(c.items))
	copy(out, c.items)
	return out
}

// Move returns a new snapshot where the item at from sits at to and every
// item in between has shifted by one slot.
func (c *Collection[T]) Move(from, to int) (*Collection[T], error) {
	n := c.Len()
	if from < 0 || from >= n || to < 0 || to >= n {
		return nil, fmt.Errorf("move %d -> %d: index out of range [0,%d)", from, to, n)
	}
	items := c.Items()
	moved := items[from]
	if from < to {
		copy(items[from:to], items[from+1:to+1])
	} else if from > to {
		copy(items[to+1:from+1], items[to:from])
	}
	items[to] = moved
	return New(items)
}

// Filter returns a new snapshot with the items keep accepts, re-indexed.
func (c *Collection[T]) Filter(keep func(Item[T]) bool) *Collection[T] {
	var kept []Item[T]
	for _, it := range c.Items() {
		if keep(it) {
			kept = append(kept, it)
		}
	}
	// ids are already unique, so New cannot fail here.
	out, _ := New(kept)
	return out
}
