package source

import "io"

// Source supplies a body in pieces of arbitrary, transport-defined sizes. The
// final piece is followed (or accompanied) by io.EOF. A returned piece stays
// valid only until the next call.
//
// Whether Fetch blocks the calling goroutine or is backed by a channel fed
// from elsewhere is up to the implementation; the parser is agnostic to it.
type Source interface {
	Fetch() ([]byte, error)
}

// Func adapts an ordinary function to the Source interface.
type Func func() ([]byte, error)

func (f Func) Fetch() ([]byte, error) {
	return f()
}

type reader struct {
	r    io.Reader
	buff []byte
}

// New adapts an io.Reader to a Source, reading into an internal buffer of the
// given size.
func New(r io.Reader, buffSize int) Source {
	return &reader{
		r:    r,
		buff: make([]byte, buffSize),
	}
}

func (r *reader) Fetch() ([]byte, error) {
	n, err := r.r.Read(r.buff)
	return r.buff[:n], err
}
