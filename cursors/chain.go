package cursors

type chainNode[E any] struct {
	value E
	next  *chainNode[E]
}

// ChainCursor walks a singly linked chain. It only moves forward, so it
// satisfies ForwardCursor but not BidirectionalCursor.
type ChainCursor[E any] struct {
	node *chainNode[E]
}

// NewChain builds a chain from values and returns its begin and end cursors.
func NewChain[E any](values ...E) (begin, end ChainCursor[E]) {
	var head *chainNode[E]
	for i := len(values) - 1; i >= 0; i-- {
		head = &chainNode[E]{value: values[i], next: head}
	}
	return ChainCursor[E]{node: head}, ChainCursor[E]{}
}

// Deref returns a reference to the current element.
func (c *ChainCursor[E]) Deref() *E {
	return &c.node.value
}

// Next advances the cursor and returns it.
func (c *ChainCursor[E]) Next() *ChainCursor[E] {
	c.node = c.node.next
	return c
}

// PostNext advances the cursor and returns a copy of its prior position.
func (c *ChainCursor[E]) PostNext() ChainCursor[E] {
	prior := *c
	c.node = c.node.next
	return prior
}
