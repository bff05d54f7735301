package multipart

import (
	"io"
	"iter"

	"github.com/indigo-web/multipart/internal/cursor"
	"github.com/indigo-web/multipart/internal/strutil"
	"github.com/indigo-web/multipart/mime"
	"github.com/indigo-web/multipart/source"
	"github.com/indigo-web/multipart/status"
)

type formState uint8

const (
	// the first boundary (and a possible preamble) is yet to be crossed
	stateInit formState = iota
	// positioned right past a "--<token>" occurrence
	stateAwaitPart
	stateDone
	stateErrored
)

// Form produces the body parts of a multipart stream one at a time, in wire
// order. It is a single forward cursor: at most one part is live, and
// requesting the next one finishes (or discards) the current one first.
//
// A Form is not safe for concurrent use, which mirrors the stream it wraps.
type Form struct {
	cfg        Options
	cur        *cursor.Cursor
	scan       scanner
	state      formState
	err        error
	live       *Part
	generation int
	parts      int
	charset    mime.Charset
}

// New constructs a form over the source. The contentType must be
// multipart/form-data and carry a boundary parameter of 1 to 70 characters.
//
// The source is consumed lazily: nothing is read until the first part is
// requested.
func New(contentType string, src source.Source, cfg Options) (*Form, error) {
	if !mime.Complies(mime.FormData, contentType) {
		return nil, status.ErrUnsupportedMediaType
	}

	return newForm(contentType, src, cfg.normalized())
}

// newForm accepts the whole multipart family and skips options normalization:
// nested forms inherit the parent's options verbatim.
func newForm(contentType string, src source.Source, cfg Options) (*Form, error) {
	if !mime.IsMultipart(contentType) {
		return nil, status.ErrUnsupportedMediaType
	}

	boundary, err := boundaryToken(contentType)
	if err != nil {
		return nil, err
	}

	cur := cursor.New(src, cfg.BufferPrealloc)

	return &Form{
		cfg:     cfg,
		cur:     cur,
		scan:    newScanner(cur, boundary),
		charset: cfg.DefaultCharset,
	}, nil
}

// Next returns the following part of the form, implicitly draining the
// current one. io.EOF is returned if and only if the terminal boundary was
// well-formed; any structural defect, including a truncated stream, surfaces
// as an error which every subsequent call keeps returning.
func (f *Form) Next() (*Part, error) {
	switch f.state {
	case stateDone:
		return nil, io.EOF
	case stateErrored:
		return nil, f.err
	}

	part, err := f.next()
	switch err {
	case nil:
		return part, nil
	case io.EOF:
		f.state = stateDone
		return nil, io.EOF
	default:
		return nil, f.fail(err)
	}
}

// Parts iterates over the remaining parts. The sequence ends cleanly on a
// well-formed terminal boundary; otherwise the error is yielded as the last
// element.
func (f *Form) Parts() iter.Seq2[*Part, error] {
	return func(yield func(*Part, error) bool) {
		for {
			part, err := f.Next()
			switch err {
			case nil:
			case io.EOF:
				return
			default:
				yield(nil, err)
				return
			}

			if !yield(part, nil) {
				return
			}
		}
	}
}

// Error returns the error the form failed with, if any.
func (f *Form) Error() error {
	return f.err
}

func (f *Form) next() (*Part, error) {
	if f.live != nil {
		if err := f.live.discard(); err != nil {
			return nil, err
		}

		f.live = nil
		f.generation++
	}

	if f.state == stateInit {
		if err := f.scan.skipPreamble(); err != nil {
			return nil, err
		}

		f.state = stateAwaitPart
	}

	for {
		last, err := f.scan.crossBoundary()
		if err != nil {
			return nil, err
		}

		if last {
			return nil, io.EOF
		}

		f.parts++
		if f.cfg.MaxPartCount != 0 && f.parts > f.cfg.MaxPartCount {
			return nil, status.ErrTooManyParts
		}

		hdr, err := f.readHeaderBlock()
		if err != nil {
			return nil, err
		}

		part := newPart(f, hdr)

		// a field named _charset_ is a directive, not data: it re-defaults
		// the charset of the parts following it
		if part.Name == "_charset_" && !part.HasFilename() {
			data, err := part.Data()
			if err != nil {
				return nil, err
			}

			if len(data) == 0 {
				return nil, status.ErrBadCharset
			}

			f.charset = string(data)
			continue
		}

		f.live = part

		return part, nil
	}
}

func (f *Form) fail(err error) error {
	f.state = stateErrored
	f.err = err

	return err
}

// boundaryToken extracts and validates the boundary parameter of a multipart
// content-type header value.
func boundaryToken(contentType string) (string, error) {
	params := strutil.CutParams(contentType)
	if len(params) == 0 {
		return "", status.ErrMissingBoundary
	}

	var boundary string

	for key, value := range strutil.WalkKV(params) {
		if key == "boundary" {
			if len(boundary) != 0 {
				// ambiguous: smells like a smuggling attempt
				return "", status.ErrMissingBoundary
			}

			boundary = value
		}
	}

	switch {
	case len(boundary) == 0:
		return "", status.ErrMissingBoundary
	case len(boundary) > 70:
		return "", status.ErrBoundaryTooLong
	}

	return boundary, nil
}

// Serialize is the write-direction counterpart of New. Generating multipart
// output is deliberately unsupported; the method exists to say so explicitly.
func (f *Form) Serialize(io.Writer) error {
	return status.ErrNotImplemented
}
