package holder

// Holder is a string-keyed container that can be read and inserted into
// through the same handle. A pointer returned by Get or Insert stays valid
// for the lifetime of the Holder (or until Clear), no matter how many other
// keys are inserted afterwards: every value is individually heap-allocated,
// so growing the swiss-table index underneath moves boxed pointers around,
// never the values themselves.
//
// A key is written once. Inserting under an existing key never replaces the
// stored value; the caller gets the existing value back instead. Returned
// pointers are read-only by contract, the Holder owns every stored value.
//
// Holder is not safe for concurrent use. It is built for the
// single-goroutine case of reading through a handle while filling it from
// the same call chain (recursive or reentrant cache-fill patterns). Since
// the index rehashes in place on growth, iteration over entries is not
// provided.
type Holder[T any] struct {
	table[T]
}

// New returns an empty Holder. No memory is allocated until the first
// insert.
func New[T any](opts ...Option[T]) *Holder[T] {
	var h Holder[T]
	h.init(0, opts...)

	return &h
}

// WithCapacity returns an empty Holder able to hold at least capacity
// entries without rebuilding its index.
func WithCapacity[T any](capacity int, opts ...Option[T]) *Holder[T] {
	var h Holder[T]
	h.init(capacity, opts...)

	return &h
}

// Get returns a pointer to the value stored under key, or nil if the key is
// absent.
func (h *Holder[T]) Get(key string) *T {
	return h.get(key)
}

// Insert stores value under key and returns nil. If the key is already
// present, the supplied value is discarded and a pointer to the existing
// value is returned instead. A non-nil return is not an error, it is the
// idempotent-insert contract: "your value was not stored; here is what's
// already there".
func (h *Holder[T]) Insert(key string, value T) *T {
	return h.put(key, func() T { return value })
}

// InsertFunc is Insert with a lazily constructed value: produce is invoked
// at most once, and not at all when the key is already present. Useful when
// building the value is expensive and the common path is "already cached".
func (h *Holder[T]) InsertFunc(key string, produce func() T) *T {
	return h.put(key, produce)
}

// Clear removes every entry, keeping the index capacity for reuse. Pointers
// handed out before the call must not be used afterwards.
func (h *Holder[T]) Clear() {
	h.clear()
}

// Len returns the number of entries.
func (h *Holder[T]) Len() int {
	return int(h.size)
}

// Capacity returns a lower bound on the number of entries the Holder can
// hold without rebuilding its index.
func (h *Holder[T]) Capacity() int {
	return int(h.capacityEffective)
}

// ShrinkToFit rebuilds the index at the smallest capacity holding the
// current entries and releases the rest. Entries are retained and pointers
// handed out earlier stay valid, since values live outside the index. An
// empty Holder shrinks to capacity zero.
func (h *Holder[T]) ShrinkToFit() {
	h.shrinkToFit()
}
