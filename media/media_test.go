package media

import (
	"testing"

	"github.com/indigo-web/multipart/kv"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	exact := HandlerFunc(func([]byte, string) (any, error) { return "exact", nil })
	family := HandlerFunc(func([]byte, string) (any, error) { return "family", nil })

	r := NewRegistry().
		Register("multipart/form-data", exact).
		Register("multipart/", family)

	resolve := func(mime string) any {
		handler := r.Resolve(mime)
		require.NotNil(t, handler)
		value, err := handler.Deserialize(nil, mime)
		require.NoError(t, err)
		return value
	}

	require.Equal(t, "exact", resolve("multipart/form-data"))
	require.Equal(t, "family", resolve("multipart/mixed"))
	require.Nil(t, r.Resolve("application/json"))
}

func TestJSON(t *testing.T) {
	value, err := JSON{}.Deserialize([]byte(`{"a": [1, "two", null]}`), "application/json")
	require.NoError(t, err)
	require.Equal(t, map[string]any{"a": []any{float64(1), "two", nil}}, value)

	_, err = JSON{}.Deserialize([]byte(`{"truncated`), "application/json")
	require.Error(t, err)
}

func TestURLEncoded(t *testing.T) {
	value, err := URLEncoded{}.Deserialize([]byte("a=1&b=hello+world&a=%2F&flag"), "")
	require.NoError(t, err)

	pairs, ok := value.(*kv.Storage)
	require.True(t, ok)
	require.Equal(t, []kv.Pair{
		{Key: "a", Value: "1"},
		{Key: "b", Value: "hello world"},
		{Key: "a", Value: "/"},
		{Key: "flag", Value: ""},
	}, pairs.Unwrap())

	_, err = URLEncoded{}.Deserialize([]byte("a=%zz"), "")
	require.Error(t, err)
}
