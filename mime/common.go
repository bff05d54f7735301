package mime

import (
	"strings"

	"github.com/indigo-web/multipart/internal/strutil"
)

type MIME = string

const (
	OctetStream    MIME = "application/octet-stream"
	Plain          MIME = "text/plain"
	HTML           MIME = "text/html"
	XML            MIME = "text/xml"
	JSON           MIME = "application/json"
	YAML           MIME = "application/yaml"
	FormUrlencoded MIME = "application/x-www-form-urlencoded"
	FormData       MIME = "multipart/form-data"
	Mixed          MIME = "multipart/mixed"
	PNG            MIME = "image/png"
	JPEG           MIME = "image/jpeg"
)

// Complies returns whether two MIMEs are compatible. Empty MIME is considered
// compatible with any other MIME.
func Complies(mime MIME, with string) bool {
	// get rid of parameters if any
	with, _ = strutil.CutHeader(with)
	return len(with) == 0 || strutil.RStripWS(with) == mime
}

// IsMultipart tells whether the MIME belongs to the multipart family,
// parameters aside.
func IsMultipart(mime string) bool {
	value, _ := strutil.CutHeader(mime)
	return strings.HasPrefix(value, "multipart/")
}

// IsTextual tells whether a body of the MIME can be meaningfully represented
// as a string.
func IsTextual(mime MIME) bool {
	switch mime {
	case JSON, XML, YAML, FormUrlencoded:
		return true
	}

	return strings.HasPrefix(mime, "text/")
}
