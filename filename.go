package multipart

import (
	"strings"
	"unicode/utf8"

	"github.com/indigo-web/multipart/internal/urlencoded"
	"github.com/indigo-web/multipart/status"
	"github.com/indigo-web/utils/strcomp"
)

// decodeExtParam decodes an RFC 5987 extended parameter value of the
// charset'language'percent-encoded shape. Only the utf-8 charset tag is
// accepted; the language tag is ignored.
func decodeExtParam(raw string) (string, error) {
	charset, rest, found := strings.Cut(raw, "'")
	if !found {
		return "", status.ErrBadDisposition
	}

	_, value, found := strings.Cut(rest, "'")
	if !found {
		return "", status.ErrBadDisposition
	}

	if !strcomp.EqualFold(charset, "utf-8") && !strcomp.EqualFold(charset, "utf8") {
		return "", status.ErrBadCharset
	}

	decoded, _, err := urlencoded.DecodeString(value, nil)
	if err != nil {
		return "", err
	}

	if !utf8.ValidString(decoded) {
		return "", status.ErrBadEncoding
	}

	return decoded, nil
}

// secureFilename reduces an arbitrary declared filename to a conservative
// ASCII path segment. Everything resembling a directory prefix is dropped,
// unsafe runes (a whole multibyte rune at a time) collapse into underscores,
// and leading dots are stripped so the result can neither traverse upwards
// nor hide itself. An empty result means there was nothing to salvage.
func secureFilename(filename string) string {
	if i := strings.LastIndexAny(filename, `/\`); i != -1 {
		filename = filename[i+1:]
	}

	var b strings.Builder
	b.Grow(len(filename))

	for _, r := range filename {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	return strings.TrimLeft(b.String(), ".")
}
