package multipart

import (
	"io"

	"github.com/indigo-web/multipart/internal/strutil"
	"github.com/indigo-web/multipart/kv"
	"github.com/indigo-web/multipart/mime"
	"github.com/indigo-web/multipart/status"
)

// Part is a single named unit of a form: its headers plus a lazy view over
// its content region. The content is pulled from the stream on demand and at
// most once; derived representations (Data, Text, Media, the filenames) are
// computed on first access and memoized, errors included.
//
// A part stays valid until the owning form advances past it. Whatever was
// memoized by then remains accessible; everything still requiring the stream
// reports status.ErrStalePart.
type Part struct {
	// Name is the field name from Content-Disposition.
	Name string
	// ContentType is the part's MIME, parameters aside. Defaults to text/plain.
	ContentType mime.MIME
	// Charset is the declared (or inherited) content charset.
	Charset mime.Charset
	// Headers keep the part's raw header lines, unrecognized ones included.
	Headers *kv.Storage

	form *Form
	gen  int
	hdr  partHeader

	contentEnd bool
	pending    []byte
	fetchErr   error

	data     lazy[[]byte]
	text     lazy[string]
	media    lazy[any]
	filename lazy[string]
	secure   lazy[string]
}

func newPart(form *Form, hdr partHeader) *Part {
	contentType, _ := strutil.CutHeader(hdr.contentType)
	contentType = strutil.RStripWS(contentType)

	part := &Part{
		Name:        hdr.name,
		ContentType: contentType,
		Charset:     hdr.charset,
		Headers:     hdr.headers,
		form:        form,
		gen:         form.generation,
		hdr:         hdr,
	}

	if len(part.ContentType) == 0 {
		part.ContentType = form.cfg.DefaultContentType
	}

	if len(part.Charset) == 0 {
		part.Charset = form.charset
	}

	return part
}

// Fetch returns the next piece of the part's content, io.EOF accompanying (or
// following) the last one. Pieces stay valid until the next Fetch.
func (p *Part) Fetch() ([]byte, error) {
	if err := p.live(); err != nil {
		return nil, err
	}

	if p.contentEnd {
		return nil, io.EOF
	}

	piece, end, err := p.form.scan.content()
	if err != nil {
		return nil, p.form.fail(err)
	}

	if end {
		p.contentEnd = true
		return piece, io.EOF
	}

	return piece, nil
}

// Read implements the io.Reader interface over the part's content.
func (p *Part) Read(into []byte) (n int, err error) {
	if err = p.live(); err != nil {
		// pending pieces alias the stream buffer and die with the part
		return 0, err
	}

	if len(p.pending) == 0 && p.fetchErr == nil {
		p.pending, p.fetchErr = p.Fetch()
	}

	n = copy(into, p.pending)
	p.pending = p.pending[n:]

	if len(p.pending) == 0 && p.fetchErr != nil {
		err = p.fetchErr
	}

	return n, err
}

// Data reads the part's content to exhaustion and returns it whole. The
// result is memoized, so is the error if any.
func (p *Part) Data() ([]byte, error) {
	return p.data.memoize(func() ([]byte, error) {
		buff := make([]byte, 0, p.form.cfg.BufferPrealloc)

		for {
			piece, err := p.Fetch()

			if max := p.form.cfg.MaxPartSize; max != 0 && len(buff)+len(piece) > max {
				return nil, p.form.fail(status.ErrPartTooLarge)
			}

			buff = append(buff, piece...)

			switch err {
			case nil:
			case io.EOF:
				return buff, nil
			default:
				return nil, err
			}
		}
	})
}

// Text decodes the part's content according to its charset. Only textual
// content types qualify. An invalid byte sequence or an unrecognized charset
// is reported here and only here, never during the structural parse.
func (p *Part) Text() (string, error) {
	return p.text.memoize(func() (string, error) {
		if !mime.IsTextual(p.ContentType) {
			return "", status.ErrUnsupportedMediaType
		}

		data, err := p.Data()
		if err != nil {
			return "", err
		}

		return mime.DecodeCharset(data, p.Charset)
	})
}

// Media deserializes the part's content via the form's handler registry. A
// multipart/* part with no dedicated handler is parsed recursively: the
// returned value is a nested *Form scoped to this part's content, subject to
// its own Options. The result is memoized; the handler runs at most once.
func (p *Part) Media() (any, error) {
	return p.media.memoize(func() (any, error) {
		if handler := p.form.cfg.Handlers.Resolve(p.ContentType); handler != nil {
			data, err := p.Data()
			if err != nil {
				return nil, err
			}

			return handler.Deserialize(data, p.hdr.contentType)
		}

		if mime.IsMultipart(p.ContentType) {
			return newForm(p.hdr.contentType, p, p.form.cfg)
		}

		return nil, status.ErrUnsupportedMediaType
	})
}

// HasFilename distinguishes a part with no filename at all from one with an
// explicitly empty filename.
func (p *Part) HasFilename() bool {
	return p.hdr.hasFilename || p.hdr.hasExtFilename
}

// Filename returns the declared filename, the extended (filename*) form
// taking precedence over the plain one. Decoding happens on first access:
// a foreign charset tag or a broken percent-sequence is reported here, not
// during the structural parse. Parts without a filename get an empty string.
func (p *Part) Filename() (string, error) {
	return p.filename.memoize(func() (string, error) {
		if p.hdr.hasExtFilename {
			return decodeExtParam(p.hdr.extFilename)
		}

		return p.hdr.filename, nil
	})
}

// SecureFilename reduces Filename to something safe to use as a path segment:
// directory components are dropped, characters outside a conservative ASCII
// subset become underscores, leading dots are stripped. Accessing it on a
// part with an empty (or absent, or fully unsalvageable) filename fails with
// status.ErrEmptyFilename.
func (p *Part) SecureFilename() (string, error) {
	return p.secure.memoize(func() (string, error) {
		filename, err := p.Filename()
		if err != nil {
			return "", err
		}

		sanitized := secureFilename(filename)
		if len(sanitized) == 0 {
			return "", status.ErrEmptyFilename
		}

		return sanitized, nil
	})
}

// live verifies the part hasn't been invalidated by the form advancing.
func (p *Part) live() error {
	if p.gen != p.form.generation {
		return status.ErrStalePart
	}

	return nil
}

// discard fast-forwards the stream past the part's content.
func (p *Part) discard() error {
	for !p.contentEnd {
		_, err := p.Fetch()
		switch err {
		case nil:
		case io.EOF:
			return nil
		default:
			return err
		}
	}

	return nil
}
