package multipart

// lazy is a memoized computation outcome: unevaluated, evaluated or failed.
// A failed one keeps re-reporting the same error on each access instead of
// silently degrading to the zero value.
type lazy[T any] struct {
	value T
	err   error
	done  bool
}

func (l *lazy[T]) memoize(compute func() (T, error)) (T, error) {
	if !l.done {
		l.value, l.err = compute()
		l.done = true
	}

	return l.value, l.err
}
