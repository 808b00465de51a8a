// ABOUTME: In-memory collection cache standing in for a resource list
// ABOUTME: Replaced wholesale on fetch, patched in place on mutation success

package store

// Entity is anything with a stable server-assigned key.
type Entity interface {
	Key() string
}

// Collection caches one resource list between network round-trips. It is
// never authoritative: every mutation is applied only after the server
// confirmed it, and a fresh GET replaces the contents wholesale.
type Collection[T Entity] struct {
	items []T
}

// Replace swaps in a full snapshot. No partial-merge logic.
func (c *Collection[T]) Replace(items []T) {
	c.items = make([]T, len(items))
	copy(c.items, items)
}

// Prepend puts a newly created entity at index 0.
func (c *Collection[T]) Prepend(item T) {
	c.items = append([]T{item}, c.items...)
}

// Patch replaces the entry with the same key in place, preserving order.
// Returns false when no entry matches.
func (c *Collection[T]) Patch(item T) bool {
	for i := range c.items {
		if c.items[i].Key() == item.Key() {
			c.items[i] = item
			return true
		}
	}
	return false
}

// Remove filters out the entry with the given key. Returns false when no
// entry matches.
func (c *Collection[T]) Remove(key string) bool {
	for i := range c.items {
		if c.items[i].Key() == key {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the entry with the given key.
func (c *Collection[T]) Get(key string) (T, bool) {
	for i := range c.items {
		if c.items[i].Key() == key {
			return c.items[i], true
		}
	}
	var zero T
	return zero, false
}

// Items returns a copy of the cached list.
func (c *Collection[T]) Items() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of cached entries.
func (c *Collection[T]) Len() int {
	return len(c.items)
}

// Clear drops all cached entries. Used at logout so one admin's data does
// not leak into the next session on a shared machine.
func (c *Collection[T]) Clear() {
	c.items = nil
}
