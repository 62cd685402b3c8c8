// Package virtual maps a scroll offset onto the window of rows a list
// materializes, and gives those rows stable slot keys.
package virtual

import "slices"

// KeySet assigns stable synthetic keys to the sliding window of
// materialized rows. Keys belong to slots, not items: a row scrolled out of
// the window releases its key and the next revealed row reuses it, so
// sliding the window by one row re-keys exactly one row.
type KeySet struct {
	lo, hi int
	keys   map[int]int
	free   []int
	next   int
}

// NewKeySet returns an empty key set.
func NewKeySet() *KeySet {
	return &KeySet{keys: map[int]int{}}
}

// Reset materializes rows [lo, hi). Rows leaving the window give their keys
// to the free list; rows entering take free keys before new ones are minted.
// It returns the number of rows that received a key they did not hold before.
func (k *KeySet) Reset(lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	for idx, key := range k.keys {
		if idx < lo || idx >= hi {
			delete(k.keys, idx)
			k.free = append(k.free, key)
		}
	}
	// Map iteration is random; keep reuse deterministic.
	slices.Sort(k.free)

	rekeyed := 0
	for idx := lo; idx < hi; idx++ {
		if _, ok := k.keys[idx]; ok {
			continue
		}
		if len(k.free) > 0 {
			k.keys[idx] = k.free[0]
			k.free = k.free[1:]
		} else {
			k.keys[idx] = k.next
			k.next++
		}
		rekeyed++
	}
	k.lo, k.hi = lo, hi
	return rekeyed
}

// KeyFor returns the slot key of a materialized row.
func (k *KeySet) KeyFor(index int) (int, bool) {
	key, ok := k.keys[index]
	return key, ok
}

// Window returns the materialized half-open range.
func (k *KeySet) Window() (lo, hi int) { return k.lo, k.hi }

// Len returns the number of materialized rows.
func (k *KeySet) Len() int { return len(k.keys) }
