package kv

import (
	"iter"

	"github.com/indigo-web/utils/strcomp"
)

type Pair struct {
	Key, Value string
}

// Storage is an associative structure for (string, string) pairs, preserving
// the insertion order. It acts as a map but uses linear search instead, which
// proves to be more efficient on a relatively low amount of entries, which a
// part header block always is.
type Storage struct {
	pairs []Pair
}

func New() *Storage {
	return new(Storage)
}

// NewPrealloc returns an instance of Storage with pre-allocated underlying storage.
func NewPrealloc(n int) *Storage {
	return &Storage{
		pairs: make([]Pair, 0, n),
	}
}

// Add adds a new pair of key and value.
func (s *Storage) Add(key, value string) *Storage {
	s.pairs = append(s.pairs, Pair{
		Key:   key,
		Value: value,
	})
	return s
}

// Value returns the first value corresponding to the key, otherwise an empty
// string.
func (s *Storage) Value(key string) string {
	value, _ := s.Get(key)
	return value
}

// Get returns a value and a bool, indicating whether the value was found.
// Keys are compared case-insensitively.
func (s *Storage) Get(key string) (string, bool) {
	for _, pair := range s.pairs {
		if strcomp.EqualFold(key, pair.Key) {
			return pair.Value, true
		}
	}

	return "", false
}

// Has indicates whether there's an entry of the key.
func (s *Storage) Has(key string) bool {
	_, found := s.Get(key)
	return found
}

// Iter returns an iterator over the pairs in the insertion order.
func (s *Storage) Iter() iter.Seq[Pair] {
	return func(yield func(Pair) bool) {
		for _, pair := range s.pairs {
			if !yield(pair) {
				break
			}
		}
	}
}

// Len returns the number of stored pairs.
func (s *Storage) Len() int {
	return len(s.pairs)
}

// Unwrap reveals the underlying data structure. Try to avoid the method if
// possible, as changing the signature may not affect a major version.
func (s *Storage) Unwrap() []Pair {
	return s.pairs
}
