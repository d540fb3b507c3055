// Package cursors provides concrete cursor types over common sequence
// shapes. They serve two roles: usable traversal primitives, and black-box
// subjects for capability verification. Each type intentionally stops at a
// different rung of the taxonomy.
package cursors

// SliceCursor walks contiguous storage. It carries the full random-access
// surface: constant-time advance, offset, distance, and indexing.
type SliceCursor[E any] struct {
	data []E
	pos  int
}

// SliceBegin returns a cursor at the first element of s.
func SliceBegin[E any](s []E) SliceCursor[E] {
	return SliceCursor[E]{data: s}
}

// SliceEnd returns the past-the-end cursor of s.
func SliceEnd[E any](s []E) SliceCursor[E] {
	return SliceCursor[E]{data: s, pos: len(s)}
}

// Deref returns a reference to the current element.
func (c *SliceCursor[E]) Deref() *E {
	return &c.data[c.pos]
}

// Next advances the cursor and returns it.
func (c *SliceCursor[E]) Next() *SliceCursor[E] {
	c.pos++
	return c
}

// PostNext advances the cursor and returns a copy of its prior position.
func (c *SliceCursor[E]) PostNext() SliceCursor[E] {
	prior := *c
	c.pos++
	return prior
}

// Prev steps the cursor back and returns it.
func (c *SliceCursor[E]) Prev() *SliceCursor[E] {
	c.pos--
	return c
}

// PostPrev steps the cursor back and returns a copy of its prior position.
func (c *SliceCursor[E]) PostPrev() SliceCursor[E] {
	prior := *c
	c.pos--
	return prior
}

// Advance moves the cursor by a signed distance and returns it.
func (c *SliceCursor[E]) Advance(n int) *SliceCursor[E] {
	c.pos += n
	return c
}

// Offset returns a cursor n positions away without moving the receiver.
func (c *SliceCursor[E]) Offset(n int) SliceCursor[E] {
	moved := *c
	moved.pos += n
	return moved
}

// Distance returns how many increments move o to the receiver's position.
func (c *SliceCursor[E]) Distance(o SliceCursor[E]) int {
	return c.pos - o.pos
}

// At returns a reference to the element n positions away.
func (c *SliceCursor[E]) At(n int) *E {
	return &c.data[c.pos+n]
}

// Equal reports whether both cursors denote the same position of sequences
// of the same length.
func (c *SliceCursor[E]) Equal(o SliceCursor[E]) bool {
	return c.pos == o.pos && len(c.data) == len(o.data)
}

// Less orders cursors by position.
func (c *SliceCursor[E]) Less(o SliceCursor[E]) bool {
	return c.pos < o.pos
}
