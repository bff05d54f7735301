// Package multipart implements a streaming multipart/form-data parser.
//
// The package is built around a single forward pass over the source: the
// Form hands out Parts in wire order, and each Part exposes its content both
// as a raw stream (Fetch, Read) and through lazily computed, memoized views
// (Data, Text, Media, Filename, SecureFilename). Structural defects of the
// stream fail the whole form; defects confined to a single part's payload,
// such as an invalid byte sequence or an undecodable filename, surface only
// when the corresponding view is accessed.
//
// Memory stays proportional to the configured limits rather than the input:
// content pieces are served straight out of the read buffer, and only the
// views that buffer by nature (Data and what derives from it) accumulate.
package multipart
