// Package reactive provides observable state cells for view-models.
//
// A Cell holds one value. Set and Update replace it and notify every
// subscriber synchronously, in subscription order, with the new value.
// Subscribers run on the goroutine that changed the cell and must not call
// back into the owner of the cell.
package reactive

import "sync"

type Cell[T any] struct {
	mu     sync.RWMutex
	value  T
	nextID int
	subs   []subscription[T]
}

type subscription[T any] struct {
	id int
	fn func(T)
}

func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{value: initial}
}

// Get returns the current value. Reference values such as slices are shared
// with the cell, not copied; callers must treat them as read-only and change
// state through Set or Update so subscribers are notified.
func (c *Cell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	c.value = v
	subs := c.snapshot()
	c.mu.Unlock()

	notify(subs, v)
}

// Update replaces the value with fn applied to the current one.
func (c *Cell[T]) Update(fn func(T) T) {
	c.mu.Lock()
	v := fn(c.value)
	c.value = v
	subs := c.snapshot()
	c.mu.Unlock()

	notify(subs, v)
}

// Subscribe registers fn for future changes and returns a function that
// removes it. fn is not called with the current value.
func (c *Cell[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	id := c.nextID
	c.subs = append(c.subs, subscription[T]{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			for i, s := range c.subs {
				if s.id == id {
					c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
					return
				}
			}
		})
	}
}

func (c *Cell[T]) snapshot() []subscription[T] {
	if len(c.subs) == 0 {
		return nil
	}
	out := make([]subscription[T], len(c.subs))
	copy(out, c.subs)
	return out
}

func notify[T any](subs []subscription[T], v T) {
	for _, s := range subs {
		s.fn(v)
	}
}
