// Package memstore is an in-memory stand-in for a document collection. It
// keeps records in insertion order and is safe for concurrent use.
package memstore

import (
	"errors"
	"sync"
)

var ErrDuplicateID = errors.New("memstore: duplicate id")

type Collection[T any] struct {
	mu    sync.RWMutex
	ids   []string
	items map[string]T
}

func New[T any]() *Collection[T] {
	return &Collection[T]{items: make(map[string]T)}
}

func (c *Collection[T]) Insert(id string, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.items[id]; exists {
		return ErrDuplicateID
	}
	c.ids = append(c.ids, id)
	c.items[id] = item
	return nil
}

func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.items[id]
	return item, ok
}

// Replace overwrites an existing record and keeps its position.
func (c *Collection[T]) Replace(id string, item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.items[id]; !exists {
		return false
	}
	c.items[id] = item
	return true
}

// Update applies fn to the record under the write lock. The result is stored
// only when fn reports true, so callers can compare and modify in one step.
func (c *Collection[T]) Update(id string, fn func(T) (T, bool)) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	item, exists := c.items[id]
	if !exists {
		var zero T
		return zero, false
	}
	updated, ok := fn(item)
	if !ok {
		return item, false
	}
	c.items[id] = updated
	return updated, true
}

func (c *Collection[T]) Delete(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.items[id]; !exists {
		return false
	}
	delete(c.items, id)
	for i, existing := range c.ids {
		if existing == id {
			c.ids = append(c.ids[:i], c.ids[i+1:]...)
			break
		}
	}
	return true
}

// Ascending returns all records, oldest first.
func (c *Collection[T]) Ascending() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.ids))
	for _, id := range c.ids {
		out = append(out, c.items[id])
	}
	return out
}

// Descending returns all records, newest first.
func (c *Collection[T]) Descending() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.ids))
	for i := len(c.ids) - 1; i >= 0; i-- {
		out = append(out, c.items[c.ids[i]])
	}
	return out
}

// Find returns the first record, in insertion order, matching fn.
func (c *Collection[T]) Find(fn func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, id := range c.ids {
		if item := c.items[id]; fn(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// DeleteWhere removes every record matching fn and reports how many went.
func (c *Collection[T]) DeleteWhere(fn func(T) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.ids[:0]
	removed := 0
	for _, id := range c.ids {
		if fn(c.items[id]) {
			delete(c.items, id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	c.ids = kept
	return removed
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.ids)
}
