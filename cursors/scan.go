package cursors

import (
	"bufio"
	"io"
)

// ScanCursor reads bytes from a stream, one pass only. Reading consumes the
// stream, so a copy taken by PostNext cannot be advanced independently.
// PostNext therefore returns a ScanPos snapshot instead of a cursor, which
// keeps ScanCursor an InputCursor and not a ForwardCursor.
type ScanCursor struct {
	r   *bufio.Reader
	cur byte
	eof bool
}

// NewScanCursor wraps r and primes the first byte.
func NewScanCursor(r io.Reader) ScanCursor {
	c := ScanCursor{r: bufio.NewReader(r)}
	c.advance()
	return c
}

// ScanEnd returns the exhausted-stream cursor.
func ScanEnd() ScanCursor {
	return ScanCursor{eof: true}
}

func (c *ScanCursor) advance() {
	b, err := c.r.ReadByte()
	if err != nil {
		c.eof = true
		c.cur = 0
		return
	}
	c.cur = b
}

// Deref returns the current byte.
func (c *ScanCursor) Deref() byte {
	return c.cur
}

// Next consumes the current byte and returns the cursor.
func (c *ScanCursor) Next() *ScanCursor {
	if !c.eof {
		c.advance()
	}
	return c
}

// PostNext consumes the current byte and returns a snapshot of it.
func (c *ScanCursor) PostNext() ScanPos {
	pos := ScanPos{b: c.cur}
	c.Next()
	return pos
}

// Equal reports whether both cursors are at the same stream state; for a
// single-pass cursor only exhaustion is meaningfully comparable.
func (c *ScanCursor) Equal(o ScanCursor) bool {
	return c.eof == o.eof
}

// ScanPos is the dereferenceable snapshot PostNext leaves behind.
type ScanPos struct {
	b byte
}

// Deref returns the snapshotted byte.
func (p ScanPos) Deref() byte {
	return p.b
}
