package cursors

import (
	list "github.com/bahlo/generic-list-go"
)

// ListCursor walks a doubly linked list. It moves in both directions but has
// no constant-time indexing or ordering, so it tops out at
// BidirectionalCursor.
//
// A nil element denotes the past-the-end position; stepping back from it
// lands on the last element, matching the usual begin/end pairing.
type ListCursor[E any] struct {
	list *list.List[E]
	el   *list.Element[E]
}

// ListBegin returns a cursor at the first element of l.
func ListBegin[E any](l *list.List[E]) ListCursor[E] {
	return ListCursor[E]{list: l, el: l.Front()}
}

// ListEnd returns the past-the-end cursor of l.
func ListEnd[E any](l *list.List[E]) ListCursor[E] {
	return ListCursor[E]{list: l}
}

// Deref returns a reference to the current element.
func (c *ListCursor[E]) Deref() *E {
	return &c.el.Value
}

// Next advances the cursor and returns it.
func (c *ListCursor[E]) Next() *ListCursor[E] {
	c.el = c.el.Next()
	return c
}

// PostNext advances the cursor and returns a copy of its prior position.
func (c *ListCursor[E]) PostNext() ListCursor[E] {
	prior := *c
	c.el = c.el.Next()
	return prior
}

// Prev steps the cursor back and returns it.
func (c *ListCursor[E]) Prev() *ListCursor[E] {
	if c.el == nil {
		c.el = c.list.Back()
	} else {
		c.el = c.el.Prev()
	}
	return c
}

// PostPrev steps the cursor back and returns a copy of its prior position.
func (c *ListCursor[E]) PostPrev() ListCursor[E] {
	prior := *c
	c.Prev()
	return prior
}
