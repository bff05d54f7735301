// Package media hosts the pluggable deserializers the parser consults when a
// part's structured representation is requested. The registry is an explicit
// dependency of the parser rather than a process-wide table: two forms may
// happily disagree on how application/json is to be decoded.
package media

import "strings"

// Handler turns raw part content into a structured value. The full
// content-type header value, parameters included, is passed along, as some
// formats need them.
type Handler interface {
	Deserialize(data []byte, contentType string) (any, error)
}

// HandlerFunc adapts an ordinary function to the Handler interface.
type HandlerFunc func(data []byte, contentType string) (any, error)

func (f HandlerFunc) Deserialize(data []byte, contentType string) (any, error) {
	return f(data, contentType)
}

type entry struct {
	mime    string
	handler Handler
}

// Registry is an ordered mapping of content types to handlers. Lookups prefer
// an exact match; failing that, the first registered entry whose mime is a
// prefix of the looked up one wins (so "multipart/" covers the whole family).
type Registry struct {
	entries []entry
}

func NewRegistry() *Registry {
	return new(Registry)
}

// Defaults returns a registry with the built-in handler set.
func Defaults() *Registry {
	return NewRegistry().
		Register("application/json", JSON{}).
		Register("application/x-www-form-urlencoded", URLEncoded{})
}

// Register adds a handler for the content type (or content-type prefix).
// Entries registered earlier take precedence on prefix lookups.
func (r *Registry) Register(mime string, handler Handler) *Registry {
	r.entries = append(r.entries, entry{mime: mime, handler: handler})
	return r
}

// Resolve returns the handler responsible for the content type, nil if there
// is none.
func (r *Registry) Resolve(mime string) Handler {
	for _, e := range r.entries {
		if e.mime == mime {
			return e.handler
		}
	}

	for _, e := range r.entries {
		if strings.HasPrefix(mime, e.mime) {
			return e.handler
		}
	}

	return nil
}
