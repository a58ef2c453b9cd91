package holder

import "unsafe"

// RetainFunc removes, in place, every element of s for which keep returns
// false. The predicate receives a pointer, so it may mutate the element
// before deciding. Relative order of the kept elements is preserved and
// nothing is allocated; freed tail slots are zeroed.
func RetainFunc[T any](s *[]T, keep func(*T) bool) {
	v := *s
	del := 0

	for i := range v {
		if !keep(&v[i]) {
			del++
		} else if del > 0 {
			v[i-del], v[i] = v[i], v[i-del]
		}
	}

	if del > 0 {
		clear(v[len(v)-del:])
		*s = v[:len(v)-del]
	}
}

// GetTwo returns pointers to elements i and j of s for simultaneous
// mutation. ok is false when the indices are equal or either is out of
// bounds.
func GetTwo[T any](s []T, i, j int) (*T, *T, bool) {
	if i == j || i < 0 || j < 0 || i >= len(s) || j >= len(s) {
		return nil, nil, false
	}

	return &s[i], &s[j], true
}

// GetTwoUnchecked is GetTwo without validation. The caller must guarantee
// i != j and that both indices are in range; anything else reads or writes
// past the slice.
func GetTwoUnchecked[T any](s []T, i, j int) (*T, *T) {
	var zero T

	data := unsafe.Pointer(unsafe.SliceData(s))
	size := unsafe.Sizeof(zero)

	a := (*T)(unsafe.Add(data, uintptr(i)*size))
	b := (*T)(unsafe.Add(data, uintptr(j)*size))

	return a, b
}
