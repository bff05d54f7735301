package media

import (
	"strings"

	"github.com/indigo-web/multipart/internal/urlencoded"
	"github.com/indigo-web/multipart/kv"
	"github.com/indigo-web/utils/uf"
)

// URLEncoded deserializes application/x-www-form-urlencoded bodies into
// *kv.Storage, preserving the pair order and key repetitions.
type URLEncoded struct{}

func (URLEncoded) Deserialize(data []byte, _ string) (any, error) {
	pairs := kv.New()
	buff := make([]byte, 0, len(data))
	rest := uf.B2S(data)

	for len(rest) > 0 {
		var segment string
		segment, rest, _ = strings.Cut(rest, "&")

		key, value, _ := strings.Cut(segment, "=")

		var err error
		key, buff, err = urlencoded.ExtendedDecodeString(key, buff)
		if err != nil {
			return nil, err
		}

		value, buff, err = urlencoded.ExtendedDecodeString(value, buff)
		if err != nil {
			return nil, err
		}

		pairs.Add(key, value)
	}

	return pairs, nil
}
