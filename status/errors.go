package status

// Error is a plain value error. Two errors are the same if they are the same
// value, so callers may compare against the predefined set directly.
type Error struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return Error{
		Code:    code,
		Message: message,
	}
}

func (e Error) Error() string {
	return e.Message
}

// All structural, limit and decoding failures share the single "malformed
// multipart media" category and differ in description only. Truncated input and
// corrupted input are deliberately not told apart: both are equally
// unrecoverable for a forward-only stream.
var (
	ErrUnsupportedMediaType = NewError(UnsupportedMediaType, "unsupported media type")

	ErrMissingBoundary = NewError(BadRequest, "malformed multipart media: missing or invalid boundary parameter")
	ErrBoundaryTooLong = NewError(BadRequest, "malformed multipart media: boundary token is longer than 70 characters")

	ErrUnexpectedStructure = NewError(BadRequest, "malformed multipart media: unexpected form structure")

	ErrMissingDisposition          = NewError(BadRequest, "malformed multipart media: part misses the Content-Disposition header")
	ErrBadDisposition              = NewError(BadRequest, "malformed multipart media: malformed Content-Disposition parameters")
	ErrUnsupportedTransferEncoding = NewError(BadRequest, "malformed multipart media: the Content-Transfer-Encoding scheme is not supported")

	ErrHeadersTooLarge = NewError(HeaderFieldsTooLarge, "malformed multipart media: part header block is too large")
	ErrTooManyParts    = NewError(RequestEntityTooLarge, "malformed multipart media: too many body parts")
	ErrPartTooLarge    = NewError(RequestEntityTooLarge, "malformed multipart media: body part content is too large")

	ErrBadCharset  = NewError(BadRequest, "malformed multipart media: unrecognized charset")
	ErrBadEncoding = NewError(BadRequest, "malformed multipart media: invalid byte sequence for the declared charset")
	ErrURLDecoding = NewError(BadRequest, "malformed multipart media: invalid percent-encoded sequence")

	ErrEmptyFilename = NewError(BadRequest, "the part filename is empty, nothing to sanitize")
	ErrStalePart     = NewError(BadRequest, "the body part was invalidated by advancing the form")

	ErrNotImplemented = NewError(NotImplemented, "multipart serialization is not implemented")
)
