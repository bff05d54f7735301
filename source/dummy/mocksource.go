package dummy

import (
	"io"

	"github.com/indigo-web/multipart/source"
)

var _ source.Source = new(Mock)

// Mock replays the pieces it was initialised with, one per Fetch call, and
// reports io.EOF once they run out. Piece sizes are preserved exactly as
// given, making the mock a convenient tool for chunk-boundary tests.
type Mock struct {
	pieces  [][]byte
	pointer int
}

func NewMock(pieces ...[]byte) *Mock {
	return &Mock{pieces: pieces}
}

// Split slices data into consecutive pieces of at most n bytes each.
func Split(data []byte, n int) *Mock {
	var pieces [][]byte

	for len(data) > n {
		pieces = append(pieces, data[:n])
		data = data[n:]
	}

	return NewMock(append(pieces, data)...)
}

func (m *Mock) Fetch() ([]byte, error) {
	if m.pointer >= len(m.pieces) {
		return nil, io.EOF
	}

	piece := m.pieces[m.pointer]
	m.pointer++

	return piece, nil
}
