package mime

import (
	"strings"
	"unicode/utf8"

	"github.com/indigo-web/multipart/status"
	"github.com/indigo-web/utils/uf"
	"golang.org/x/text/encoding/htmlindex"
)

type Charset = string

const (
	UTF8   Charset = "utf8"
	UTF16  Charset = "utf16"
	ASCII  Charset = "ascii"
	CP1251 Charset = "cp1251"
	CP1252 Charset = "cp1252"
)

// DecodeCharset decodes data into a string according to the charset. UTF-8 and
// US-ASCII inputs are validated byte-wise; the rest is handed over to the
// WHATWG encoding index, so any label it recognizes (windows-125x, koi8-r,
// shift_jis, ...) is accepted. An unrecognized label results in
// status.ErrBadCharset, a byte sequence invalid for the declared charset in
// status.ErrBadEncoding.
func DecodeCharset(data []byte, charset Charset) (string, error) {
	switch strings.ToLower(charset) {
	case "", UTF8, "utf-8":
		if !utf8.Valid(data) {
			return "", status.ErrBadEncoding
		}

		return string(data), nil
	case ASCII, "us-ascii":
		for _, c := range data {
			if c >= 0x80 {
				return "", status.ErrBadEncoding
			}
		}

		return string(data), nil
	case UTF16:
		// the WHATWG index knows the label only in its dashed spelling
		charset = "utf-16"
	}

	enc, err := htmlindex.Get(charset)
	if err != nil {
		return "", status.ErrBadCharset
	}

	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", status.ErrBadEncoding
	}

	return uf.B2S(decoded), nil
}
