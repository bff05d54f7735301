package multipart

import (
	"github.com/indigo-web/multipart/media"
	"github.com/indigo-web/multipart/mime"
)

// Options hold the restrictions and defaults applied to a single form. The
// zero value is usable but unconfigured; start from Default() and modify what
// needs modifying.
type Options struct {
	// MaxPartCount limits the number of body parts in a form. The limit is
	// enforced lazily, as parts are requested. 0 stands for no limit.
	MaxPartCount int
	// MaxHeadersSize limits the size of a single part's header block,
	// framing included.
	MaxHeadersSize int
	// MaxPartSize limits the amount of content a single part may be buffered
	// with via Data (and everything deriving from it). Streaming a part via
	// Fetch is not subject to the limit. 0 stands for no limit.
	MaxPartSize int
	// BufferPrealloc is the initial capacity of the buffer a part's content
	// is collected into, if its length isn't known in advance.
	BufferPrealloc int
	// Handlers resolve content types to deserializers when a part's Media is
	// requested. Nil falls back to media.Defaults().
	Handlers *media.Registry
	// DefaultCharset applies to parts which don't declare one, unless
	// overridden by a _charset_ field.
	DefaultCharset mime.Charset
	// DefaultContentType applies to parts carrying no Content-Type header.
	DefaultContentType mime.MIME
}

// Default returns well-balanced defaults: permissive enough for real-world
// forms, strict enough to not be a DoS invitation.
func Default() Options {
	return Options{
		MaxPartCount: 1000,
		// a couple of header lines would fit in far less, however filenames
		// may be extremely long
		MaxHeadersSize:     16 * 1024,
		MaxPartSize:        512 * 1024 * 1024,
		BufferPrealloc:     1024,
		Handlers:           media.Defaults(),
		DefaultCharset:     mime.UTF8,
		DefaultContentType: mime.Plain,
	}
}

func (o Options) normalized() Options {
	defaults := Default()

	if o.MaxHeadersSize == 0 {
		o.MaxHeadersSize = defaults.MaxHeadersSize
	}
	if o.BufferPrealloc == 0 {
		o.BufferPrealloc = defaults.BufferPrealloc
	}
	if o.Handlers == nil {
		o.Handlers = media.Defaults()
	}
	if len(o.DefaultCharset) == 0 {
		o.DefaultCharset = defaults.DefaultCharset
	}
	if len(o.DefaultContentType) == 0 {
		o.DefaultContentType = defaults.DefaultContentType
	}

	return o
}
