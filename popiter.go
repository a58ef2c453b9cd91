package holder

import "iter"

// PopIter drains a slice from the back: every Next removes and returns the
// last remaining element. The iterator borrows the slice for its lifetime,
// the caller must not touch it until draining is done. Popped slots are
// zeroed so the backing array drops its references.
type PopIter[T any] struct {
	s *[]T
}

// NewPopIter returns a draining iterator over s.
func NewPopIter[T any](s *[]T) *PopIter[T] {
	return &PopIter[T]{s: s}
}

// Next removes and returns the last remaining element. ok is false once the
// slice is empty.
func (it *PopIter[T]) Next() (T, bool) {
	s := *it.s
	if len(s) == 0 {
		var zero T
		return zero, false
	}

	v := s[len(s)-1]

	var zero T
	s[len(s)-1] = zero
	*it.s = s[:len(s)-1]

	return v, true
}

// Len returns the number of elements left to yield.
func (it *PopIter[T]) Len() int {
	return len(*it.s)
}

// Last removes and returns the element that repeated Next calls would yield
// last, draining the slice in one O(1) step. That element is the front of
// the remaining slice.
func (it *PopIter[T]) Last() (T, bool) {
	s := *it.s
	if len(s) == 0 {
		var zero T
		return zero, false
	}

	v := s[0]
	clear(s)
	*it.s = s[:0]

	return v, true
}

// Seq adapts the iterator to range-over-func loops. Elements consumed by
// the loop stay removed from the slice even when the loop stops early.
func (it *PopIter[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
