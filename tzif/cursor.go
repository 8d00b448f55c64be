package tzif

import "fmt"

// cursor tracks a read position into a byte buffer. Every advance is
// bounds-checked so that a section running past the end of the buffer
// surfaces as ErrTruncated instead of an out-of-range panic.
type cursor struct {
	buf []byte
	off int
}

// take returns the next n bytes and advances the cursor past them.
// The returned slice aliases the underlying buffer.
func (c *cursor) take(n int) ([]byte, error) {
	if n < 0 || n > len(c.buf)-c.off {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrTruncated, n, c.off, len(c.buf)-c.off)
	}
	b := c.buf[c.off : c.off+n]
	c.off += n
	return b, nil
}

// skip advances the cursor past n bytes without exposing them.
func (c *cursor) skip(n int) error {
	_, err := c.take(n)
	return err
}
