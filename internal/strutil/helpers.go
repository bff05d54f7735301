package strutil

import "strings"

func LStripWS(str string) string {
	for i, c := range str {
		switch c {
		case ' ', '\t':
		default:
			return str[i:]
		}
	}

	return ""
}

func RStripWS(str string) string {
	for i := len(str); i > 0; i-- {
		switch str[i-1] {
		case ' ', '\t':
		default:
			return str[:i]
		}
	}

	return ""
}

// CutHeader splits a header value into the value itself and its parameters,
// stripping the whitespace between the value and the first parameter.
func CutHeader(header string) (value, params string) {
	sep := strings.IndexByte(header, ';')
	if sep == -1 {
		return header, ""
	}

	return header[:sep], LStripWS(header[sep+1:])
}

// CutParams behaves exactly as CutHeader, except the value is dropped.
func CutParams(header string) (params string) {
	_, params = CutHeader(header)
	return params
}

func Unquote(str string) string {
	if len(str) > 1 && str[0] == '"' && str[len(str)-1] == '"' {
		return str[1 : len(str)-1]
	}

	return str
}
