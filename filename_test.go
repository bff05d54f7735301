package multipart

import (
	"testing"

	"github.com/indigo-web/multipart/status"
	"github.com/stretchr/testify/require"
)

func TestDecodeExtParam(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		decoded, err := decodeExtParam("utf-8''hello.txt")
		require.NoError(t, err)
		require.Equal(t, "hello.txt", decoded)
	})

	t.Run("percent-encoded", func(t *testing.T) {
		decoded, err := decodeExtParam("UTF-8'en'a%20b%20c.txt")
		require.NoError(t, err)
		require.Equal(t, "a b c.txt", decoded)
	})

	t.Run("multibyte", func(t *testing.T) {
		decoded, err := decodeExtParam("utf-8''%D0%BE%D1%82%D1%87%D1%91%D1%82.pdf")
		require.NoError(t, err)
		require.Equal(t, "отчёт.pdf", decoded)
	})

	t.Run("missing quotes", func(t *testing.T) {
		_, err := decodeExtParam("utf-8hello.txt")
		require.ErrorIs(t, err, status.ErrBadDisposition)

		_, err = decodeExtParam("utf-8'hello.txt")
		require.ErrorIs(t, err, status.ErrBadDisposition)
	})

	t.Run("foreign charset", func(t *testing.T) {
		_, err := decodeExtParam("iso-8859-1''f%e9e.txt")
		require.ErrorIs(t, err, status.ErrBadCharset)
	})

	t.Run("broken percent-sequence", func(t *testing.T) {
		_, err := decodeExtParam("utf-8''a%zz")
		require.ErrorIs(t, err, status.ErrURLDecoding)

		_, err = decodeExtParam("utf-8''a%2")
		require.ErrorIs(t, err, status.ErrURLDecoding)
	})

	t.Run("decodes into invalid utf-8", func(t *testing.T) {
		_, err := decodeExtParam("utf-8''%ff%fe")
		require.ErrorIs(t, err, status.ErrBadEncoding)
	})
}

func TestSecureFilename(t *testing.T) {
	cases := map[string]string{
		"report.txt":            "report.txt",
		"../../etc/passwd":      "passwd",
		`..\..\windows\cmd.exe`: "cmd.exe",
		"/absolute/path.txt":    "path.txt",
		".hidden":               "hidden",
		"...":                   "",
		"has spaces.txt":        "has_spaces.txt",
		"résumé.pdf":            "r_sum_.pdf",
		"mixed/slash\\dirs.txt": "dirs.txt",
		"":                      "",
	}

	for input, want := range cases {
		require.Equalf(t, want, secureFilename(input), "input: %q", input)
	}
}
