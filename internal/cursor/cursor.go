package cursor

import (
	"io"
	"strings"

	"github.com/indigo-web/multipart/source"
	"github.com/indigo-web/utils/uf"
)

// Cursor is a read-ahead window over a chunked source. It hides the
// granularity in which the source delivers data: however the underlying
// transport slices the stream, the window grows and shrinks the same way.
//
// Consumed bytes are gone irreversibly. Slices returned by Consume and Read
// point into the internal buffer and stay valid only until the next call that
// pulls from the source; callers wishing to keep them must copy.
type Cursor struct {
	src source.Source
	buf []byte
	pos int
	eof bool
}

func New(src source.Source, prealloc int) *Cursor {
	return &Cursor{
		src: src,
		buf: make([]byte, 0, prealloc),
	}
}

// Window returns the buffered, not yet consumed bytes.
func (c *Cursor) Window() []byte {
	return c.buf[c.pos:]
}

// EOF tells whether the source is exhausted. The window may still be non-empty.
func (c *Cursor) EOF() bool {
	return c.eof
}

// Fill grows the window until it holds at least min bytes or the source is
// exhausted, whichever comes first.
func (c *Cursor) Fill(min int) error {
	for len(c.Window()) < min && !c.eof {
		if err := c.More(); err != nil {
			return err
		}
	}

	return nil
}

// More pulls the next piece from the source into the window. Reaching the end
// of the source is not an error and is reported via EOF() instead.
func (c *Cursor) More() error {
	if c.eof {
		return nil
	}

	// compact the consumed prefix away before growing, so that the buffer
	// stays proportional to the window and not to the whole stream
	if c.pos > 0 {
		c.buf = append(c.buf[:0], c.buf[c.pos:]...)
		c.pos = 0
	}

	piece, err := c.src.Fetch()
	c.buf = append(c.buf, piece...)

	switch err {
	case nil:
	case io.EOF:
		c.eof = true
	default:
		return err
	}

	return nil
}

// Find looks for the first occurrence of pattern, growing the window as
// needed. The search gives up once the window reaches limit bytes (0 stands
// for no limit) or the source is exhausted; which of the two happened can be
// told by EOF().
func (c *Cursor) Find(pattern string, limit int) (idx int, found bool, err error) {
	searched := 0

	for {
		window := c.Window()

		// a pattern occurrence may span the old window edge, so back off
		from := searched - len(pattern) + 1
		if from < 0 {
			from = 0
		}

		if i := strings.Index(uf.B2S(window[from:]), pattern); i >= 0 {
			idx = from + i
			if limit > 0 && idx+len(pattern) > limit {
				return 0, false, nil
			}

			return idx, true, nil
		}

		searched = len(window)

		if limit > 0 && searched >= limit {
			return 0, false, nil
		}

		if c.eof {
			return 0, false, nil
		}

		if err = c.More(); err != nil {
			return 0, false, err
		}
	}
}

// Consume releases the first n window bytes, returning them.
func (c *Cursor) Consume(n int) []byte {
	window := c.Window()
	if n > len(window) {
		n = len(window)
	}

	c.pos += n

	return window[:n]
}

// Read consumes and returns up to n bytes, pulling from the source as needed.
// Fewer than n bytes are returned only if the source is exhausted.
func (c *Cursor) Read(n int) ([]byte, error) {
	if err := c.Fill(n); err != nil {
		return nil, err
	}

	return c.Consume(n), nil
}
