package media

import (
	"io"

	json "github.com/json-iterator/go"
)

// JSON deserializes application/json bodies into generic values (maps, slices,
// strings, float64 numbers).
type JSON struct{}

func (JSON) Deserialize(data []byte, _ string) (any, error) {
	var value any

	iterator := json.ConfigDefault.BorrowIterator(data)
	iterator.ReadVal(&value)
	err := iterator.Error
	json.ConfigDefault.ReturnIterator(iterator)

	if err != nil && err != io.EOF {
		return nil, err
	}

	return value, nil
}
