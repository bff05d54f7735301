package source_test

import (
	"io"
	"strings"
	"testing"

	"github.com/indigo-web/multipart/source"
	"github.com/indigo-web/multipart/source/dummy"
	"github.com/stretchr/testify/require"
)

// drain collects every piece the source yields until io.EOF.
func drain(t *testing.T, src source.Source) string {
	var b strings.Builder

	for {
		piece, err := src.Fetch()
		b.Write(piece)

		switch err {
		case nil:
		case io.EOF:
			return b.String()
		default:
			require.NoError(t, err)
		}
	}
}

func TestMock(t *testing.T) {
	src := dummy.NewMock([]byte("one"), []byte("two"))

	piece, err := src.Fetch()
	require.NoError(t, err)
	require.Equal(t, "one", string(piece))

	piece, err = src.Fetch()
	require.NoError(t, err)
	require.Equal(t, "two", string(piece))

	_, err = src.Fetch()
	require.ErrorIs(t, err, io.EOF)
	_, err = src.Fetch()
	require.ErrorIs(t, err, io.EOF)
}

func TestSplit(t *testing.T) {
	require.Equal(t, "0123456789", drain(t, dummy.Split([]byte("0123456789"), 3)))
	require.Equal(t, "0123456789", drain(t, dummy.Split([]byte("0123456789"), 100)))
}

func TestReaderAdapter(t *testing.T) {
	src := source.New(strings.NewReader("streamed through a reader"), 8)
	require.Equal(t, "streamed through a reader", drain(t, src))
}

func TestChunked(t *testing.T) {
	const encoded = "7\r\nMozilla\r\n9\r\nDeveloper\r\n7\r\nNetwork\r\n0\r\n\r\n"

	t.Run("whole body at once", func(t *testing.T) {
		src := source.Chunked(dummy.NewMock([]byte(encoded)), false)
		require.Equal(t, "MozillaDeveloperNetwork", drain(t, src))
	})

	t.Run("chunked delivery", func(t *testing.T) {
		for _, size := range []int{1, 3, 8} {
			src := source.Chunked(dummy.Split([]byte(encoded), size), false)
			require.Equal(t, "MozillaDeveloperNetwork", drain(t, src))
		}
	})

	t.Run("premature end", func(t *testing.T) {
		src := source.Chunked(dummy.NewMock([]byte("7\r\nMozi")), false)

		var err error
		for err == nil {
			_, err = src.Fetch()
		}

		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})
}
