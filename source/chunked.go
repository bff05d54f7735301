package source

import (
	"io"

	"github.com/indigo-web/chunkedbody"
)

type chunked struct {
	src     Source
	parser  *chunkedbody.Parser
	pending []byte
	trailer bool
	done    bool
}

// Chunked wraps a source carrying a chunked transfer-encoded body and yields
// the decoded payload. The source is left positioned right past the final
// chunk, so whatever follows it stays intact.
func Chunked(src Source, trailer bool) Source {
	return &chunked{
		src:     src,
		parser:  chunkedbody.NewParser(chunkedbody.DefaultSettings()),
		trailer: trailer,
	}
}

func (c *chunked) Fetch() ([]byte, error) {
	if c.done {
		return nil, io.EOF
	}

	for {
		data := c.pending
		c.pending = nil

		if len(data) == 0 {
			var err error
			data, err = c.src.Fetch()
			if err != nil && err != io.EOF {
				return nil, err
			}

			if len(data) == 0 {
				// the underlying stream ended before the final chunk
				return nil, io.ErrUnexpectedEOF
			}
		}

		chunk, extra, err := c.parser.Parse(data, c.trailer)
		c.pending = extra

		switch err {
		case nil:
		case io.EOF:
			c.done = true
			return chunk, io.EOF
		default:
			return nil, err
		}

		if len(chunk) > 0 {
			return chunk, nil
		}
	}
}
