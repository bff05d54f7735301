package mime

import (
	"testing"

	"github.com/indigo-web/multipart/status"
	"github.com/stretchr/testify/require"
)

func TestComplies(t *testing.T) {
	require.True(t, Complies(JSON, "application/json"))
	require.True(t, Complies(JSON, "application/json; charset=utf-8"))
	require.True(t, Complies(JSON, ""))
	require.False(t, Complies(JSON, "text/plain"))
}

func TestIsMultipart(t *testing.T) {
	require.True(t, IsMultipart("multipart/form-data; boundary=x"))
	require.True(t, IsMultipart(Mixed))
	require.False(t, IsMultipart("application/json"))
}

func TestIsTextual(t *testing.T) {
	require.True(t, IsTextual(Plain))
	require.True(t, IsTextual("text/csv"))
	require.True(t, IsTextual(JSON))
	require.True(t, IsTextual(FormUrlencoded))
	require.False(t, IsTextual(OctetStream))
	require.False(t, IsTextual(PNG))
}

func TestDecodeCharset(t *testing.T) {
	t.Run("utf8", func(t *testing.T) {
		decoded, err := DecodeCharset([]byte("привет"), UTF8)
		require.NoError(t, err)
		require.Equal(t, "привет", decoded)

		// the empty charset means utf8 as well
		_, err = DecodeCharset([]byte("hello"), "")
		require.NoError(t, err)

		_, err = DecodeCharset([]byte{0xff, 0xfe}, "utf-8")
		require.ErrorIs(t, err, status.ErrBadEncoding)
	})

	t.Run("ascii", func(t *testing.T) {
		decoded, err := DecodeCharset([]byte("hello"), ASCII)
		require.NoError(t, err)
		require.Equal(t, "hello", decoded)

		_, err = DecodeCharset([]byte("h\xc3\xa9llo"), "us-ascii")
		require.ErrorIs(t, err, status.ErrBadEncoding)
	})

	t.Run("single-byte codepages", func(t *testing.T) {
		decoded, err := DecodeCharset([]byte{0xef, 0xf0, 0xe8, 0xe2, 0xe5, 0xf2}, CP1251)
		require.NoError(t, err)
		require.Equal(t, "привет", decoded)

		decoded, err = DecodeCharset([]byte{0x93, 0x94}, "windows-1252")
		require.NoError(t, err)
		require.Equal(t, "“”", decoded)
	})

	t.Run("unknown label", func(t *testing.T) {
		_, err := DecodeCharset([]byte("data"), "klingon")
		require.ErrorIs(t, err, status.ErrBadCharset)
	})
}
