package status

// Code is the protocol-level class of an error. The parser itself never renders
// responses; the embedding HTTP layer is expected to map the code of a reported
// error onto the response status.
type Code uint16

const (
	BadRequest            Code = 400
	RequestEntityTooLarge Code = 413
	UnsupportedMediaType  Code = 415
	HeaderFieldsTooLarge  Code = 431
	NotImplemented        Code = 501
)
