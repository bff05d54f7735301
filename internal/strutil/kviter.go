package strutil

import (
	"iter"
)

// safeChars covers the characters a parameter key or value may consist of.
// Percent is included, as WalkKV doesn't decode keys or values, therefore
// percent-encoded sequences appear verbatim. Asterisk and the single quote
// are needed for extended (RFC 5987) parameters, e.g. filename*=utf-8''a%20b.
// Bytes above 0x7f are let through as-is: quoted filenames are regularly sent
// in raw unicode, and sanitizing them is not this function's job.
var safeChars = [256]bool{}

func init() {
	const individual = " ()[]{}<>.,/|\\%\"'*-_=:+@!#$&^~?"

	for c := byte('a'); c <= 'z'; c++ {
		safeChars[c] = true
	}

	for c := byte('A'); c <= 'Z'; c++ {
		safeChars[c] = true
	}

	for c := byte('0'); c <= '9'; c++ {
		safeChars[c] = true
	}

	for i := 0; i < len(individual); i++ {
		safeChars[individual[i]] = true
	}

	for c := 0x80; c <= 0xff; c++ {
		safeChars[c] = true
	}
}

// WalkKV iterates over semicolon-separated key=value parameters. An error is
// reported as the empty key-value pair (key="" and value=""), which is always
// the last one. Values are unquoted. A key without the equality sign is
// yielded with an empty value.
func WalkKV(data string) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		var key string

	paramKey:
		for i := 0; i < len(data); i++ {
			c := data[i]

			if c == '=' {
				key = data[:i]
				data = data[i+1:]
				goto paramValue
			}

			if !safeChars[c] {
				yield("", "")
				return
			}
		}

		yield(data, "")
		return

	paramValue:
		for i := 0; i < len(data); i++ {
			c := data[i]

			if c == ';' {
				value := data[:i]
				data = LStripWS(data[i+1:])

				if !yield(key, Unquote(value)) {
					return
				}

				goto paramKey
			}

			if !safeChars[c] {
				yield("", "")
				return
			}
		}

		yield(key, Unquote(data))
		return
	}
}
