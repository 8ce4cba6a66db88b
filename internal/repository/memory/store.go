// Package memory holds the process-local stores backing the alert,
// transaction and user repositories.
package memory

import (
	"fmt"
	"sync"
)

// collection is an insertion-ordered set of records keyed by id. Callers
// hold mu; records are cloned on the way in and out.
type collection[T any] struct {
	mu    sync.RWMutex
	items []T
	index map[string]int
}

func newCollection[T any](records []T, id func(T) string, clone func(T) T) (*collection[T], error) {
	c := &collection[T]{
		items: make([]T, 0, len(records)),
		index: make(map[string]int, len(records)),
	}
	for _, r := range records {
		key := id(r)
		if key == "" {
			return nil, fmt.Errorf("record at position %d has an empty id", len(c.items))
		}
		if _, dup := c.index[key]; dup {
			return nil, fmt.Errorf("duplicate id %q", key)
		}
		c.index[key] = len(c.items)
		c.items = append(c.items, clone(r))
	}
	return c, nil
}

func (c *collection[T]) get(id string, clone func(T) T) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return clone(c.items[i]), true
}

func (c *collection[T]) list(clone func(T) T) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	for i, r := range c.items {
		out[i] = clone(r)
	}
	return out
}

func (c *collection[T]) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
