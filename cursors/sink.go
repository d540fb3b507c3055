package cursors

import "sync"

// SinkCursor appends written elements to a destination slice. It is
// write-only: there is no Deref, so it fails the dereference requirement of
// every readable capability.
type SinkCursor[E any] struct {
	dst *[]E
}

// NewSinkCursor returns a cursor writing into dst.
func NewSinkCursor[E any](dst *[]E) SinkCursor[E] {
	return SinkCursor[E]{dst: dst}
}

// Set writes v at the current position.
func (c *SinkCursor[E]) Set(v E) {
	*c.dst = append(*c.dst, v)
}

// Next advances the cursor and returns it. Position is implicit in the
// destination, so this only exists to satisfy the traversal surface.
func (c *SinkCursor[E]) Next() *SinkCursor[E] {
	return c
}

// GuardedCursor wraps contiguous storage behind a mutex. The lock travels by
// value, so copying a GuardedCursor duplicates lock state and it fails the
// copyability requirements of the Cursor role.
type GuardedCursor[E any] struct {
	mu   sync.Mutex
	data []E
	pos  int
}

// NewGuardedCursor returns a cursor at the first element of s.
func NewGuardedCursor[E any](s []E) *GuardedCursor[E] {
	return &GuardedCursor[E]{data: s}
}

// Deref returns a reference to the current element.
func (c *GuardedCursor[E]) Deref() *E {
	c.mu.Lock()
	defer c.mu.Unlock()
	return &c.data[c.pos]
}

// Next advances the cursor and returns it.
func (c *GuardedCursor[E]) Next() *GuardedCursor[E] {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pos++
	return c
}

// Opaque is a bare behavioral contract with no traversal surface. As an
// interface type it has no zero value of its own and no safe equality, so it
// satisfies neither DefaultConstructible nor EqualityComparable.
type Opaque interface {
	opaque()
}
