package strutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStripWS(t *testing.T) {
	require.Equal(t, "value", LStripWS("  \tvalue"))
	require.Equal(t, "value", LStripWS("value"))
	require.Empty(t, LStripWS("   "))

	require.Equal(t, "value", RStripWS("value \t "))
	require.Equal(t, "value", RStripWS("value"))
	require.Empty(t, RStripWS("   "))
}

func TestCutHeader(t *testing.T) {
	value, params := CutHeader("text/plain; charset=utf-8")
	require.Equal(t, "text/plain", value)
	require.Equal(t, "charset=utf-8", params)

	value, params = CutHeader("text/plain")
	require.Equal(t, "text/plain", value)
	require.Empty(t, params)

	require.Equal(t, "a=b", CutParams("form-data;   a=b"))
}

func TestUnquote(t *testing.T) {
	require.Equal(t, "value", Unquote(`"value"`))
	require.Equal(t, "value", Unquote("value"))
	require.Equal(t, "", Unquote(`""`))
	require.Equal(t, `"`, Unquote(`"`))
	require.Equal(t, `"half`, Unquote(`"half`))
}

func TestWalkKV(t *testing.T) {
	collect := func(data string) (pairs [][2]string) {
		for key, value := range WalkKV(data) {
			pairs = append(pairs, [2]string{key, value})
		}
		return pairs
	}

	t.Run("multiple params", func(t *testing.T) {
		require.Equal(t, [][2]string{
			{"name", "field"},
			{"filename", "a b.txt"},
		}, collect(`name="field"; filename="a b.txt"`))
	})

	t.Run("extended param", func(t *testing.T) {
		require.Equal(t, [][2]string{
			{"filename*", "utf-8''a%20b"},
		}, collect("filename*=utf-8''a%20b"))
	})

	t.Run("key without a value", func(t *testing.T) {
		require.Equal(t, [][2]string{{"lonely", ""}}, collect("lonely"))
	})

	t.Run("raw unicode value", func(t *testing.T) {
		require.Equal(t, [][2]string{
			{"filename", "отчёт.txt"},
		}, collect(`filename="отчёт.txt"`))
	})

	t.Run("forbidden byte yields the error pair", func(t *testing.T) {
		pairs := collect("name=\"fie\x00ld\"")
		require.Equal(t, [2]string{"", ""}, pairs[len(pairs)-1])

		pairs = collect("na\x01me=field")
		require.Equal(t, [2]string{"", ""}, pairs[len(pairs)-1])
	})
}
