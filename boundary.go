package multipart

import (
	"strings"

	"github.com/indigo-web/multipart/internal/cursor"
	"github.com/indigo-web/multipart/status"
	"github.com/indigo-web/utils/uf"
)

// scanner locates boundary delimiters in the stream. The delimiter it works
// with is the full "\r\n--<token>" sequence; the two bytes following an
// occurrence decide whether more parts follow ("\r\n") or the form is over
// ("--").
type scanner struct {
	cur   *cursor.Cursor
	delim string
}

func newScanner(cur *cursor.Cursor, boundary string) scanner {
	return scanner{
		cur:   cur,
		delim: "\r\n--" + boundary,
	}
}

// skipPreamble discards everything up to and including the first boundary
// line. The very first boundary is customarily not preceded by CRLF; some
// agents on top prepend free-form prose, which is discarded piece by piece
// without accumulating.
func (s *scanner) skipPreamble() error {
	dash := s.delim[2:]

	if err := s.cur.Fill(len(dash)); err != nil {
		return err
	}

	for {
		window := s.cur.Window()

		if i := strings.Index(uf.B2S(window), dash); i >= 0 {
			s.cur.Consume(i + len(dash))
			return nil
		}

		if keep := tailOverlap(window, dash); len(window) > keep {
			s.cur.Consume(len(window) - keep)
		}

		if s.cur.EOF() {
			return status.ErrUnexpectedStructure
		}

		if err := s.cur.More(); err != nil {
			return err
		}
	}
}

// content returns the next piece of the current part's content. Returned
// pieces stay valid until the next scanner or cursor call. end reports that
// the delimiter was reached and consumed; the returned piece may be non-empty
// alongside it.
func (s *scanner) content() (piece []byte, end bool, err error) {
	for {
		window := s.cur.Window()

		if i := strings.Index(uf.B2S(window), s.delim); i >= 0 {
			piece = s.cur.Consume(i)
			s.cur.Consume(len(s.delim))

			return piece, true, nil
		}

		// everything that cannot be the beginning of the delimiter is
		// content and may be released right away
		safe := len(window) - tailOverlap(window, s.delim)
		if safe > 0 {
			return s.cur.Consume(safe), false, nil
		}

		if s.cur.EOF() {
			// the stream ended mid-content, no closing boundary
			return nil, false, status.ErrUnexpectedStructure
		}

		if err = s.cur.More(); err != nil {
			return nil, false, err
		}
	}
}

// crossBoundary inspects the two bytes following a just-consumed delimiter.
// An inner boundary ("\r\n", left unconsumed: it doubles as part of the
// header block framing) means more parts follow; the terminal one ("--",
// which must itself be terminated by CRLF) completes the form. Anything else,
// including a premature end of the stream, is a structural error.
func (s *scanner) crossBoundary() (last bool, err error) {
	if err := s.cur.Fill(2); err != nil {
		return false, err
	}

	window := s.cur.Window()
	if len(window) < 2 {
		return false, status.ErrUnexpectedStructure
	}

	switch {
	case window[0] == '\r' && window[1] == '\n':
		return false, nil
	case window[0] == '-' && window[1] == '-':
		s.cur.Consume(2)

		if err := s.cur.Fill(2); err != nil {
			return false, err
		}

		window = s.cur.Window()
		if len(window) < 2 || window[0] != '\r' || window[1] != '\n' {
			return false, status.ErrUnexpectedStructure
		}

		s.cur.Consume(2)

		return true, nil
	default:
		return false, status.ErrUnexpectedStructure
	}
}

// tailOverlap returns the length of the longest window suffix which is also a
// proper prefix of delim. Boundary tokens cannot contain CR, so in practice
// at most one suffix qualifies.
func tailOverlap(window []byte, delim string) int {
	max := len(delim) - 1
	if len(window) < max {
		max = len(window)
	}

	for k := max; k > 0; k-- {
		if uf.B2S(window[len(window)-k:]) == delim[:k] {
			return k
		}
	}

	return 0
}
