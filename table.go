package holder

import (
	"hash/maphash"
	"unsafe"
)

type table[V any] struct {
	groups []group[V]

	capacity          uintptr
	numGroupsMask     uintptr
	capacityEffective uintptr
	size              uintptr

	hashFunc HashFunc
}

type Option[V any] func(t *table[V])

// Override default hash function.
func WithHashFunc[V any](f HashFunc) Option[V] {
	return func(t *table[V]) {
		t.hashFunc = f
	}
}

func (t *table[V]) init(capacity int, opts ...Option[V]) {
	if capacity > 0 {
		t.rebuild(slotsFor(uintptr(capacity)))
	}

	for _, opt := range opts {
		opt(t)
	}

	if t.hashFunc == nil {
		t.hashFunc = MakeDefaultHashFunc(maphash.MakeSeed())
	}
}

// slotsFor returns the smallest power-of-two slot count whose effective
// capacity (87.5% load factor) holds at least n entries.
func slotsFor(n uintptr) uintptr {
	slots := uintptr(NextPowerOf2(uint32((n*8 + 6) / 7)))
	if slots < groupSize {
		slots = groupSize
	}

	return slots
}

func (t *table[V]) get(key string) *V {
	if len(t.groups) == 0 {
		return nil
	}

	h1, h2 := HashSplit(t.hashFunc(key))
	mask := t.numGroupsMask
	start := (h1 / groupSize) & mask

	for p, offset := uintptr(0), start; p <= mask; p++ {
		g := &t.groups[offset]
		ctrl := *(*uint64)(unsafe.Pointer(&g.ctrls))

		// SIMD-like match
		matches := matchH2(ctrl, h2)
		for matches != 0 {
			idx := matches.first()
			if g.slots[idx] == key {
				return g.values[idx]
			}

			matches = matches.removeFirst()
		}

		// Termination
		if matchEmpty(ctrl) != 0 {
			return nil
		}

		// Quadratic probe math
		offset = (start + (p+1)*(p+2)/2) & mask
	}

	return nil
}

// put returns the boxed value already stored under key, if any. Otherwise it
// stores the value obtained from produce and returns nil. produce is called
// at most once, and only after the miss is confirmed.
func (t *table[V]) put(key string, produce func() V) *V {
	h1, h2 := HashSplit(t.hashFunc(key))

	if len(t.groups) != 0 {
		mask := t.numGroupsMask
		start := (h1 / groupSize) & mask

		for p, offset := uintptr(0), start; p <= mask; p++ {
			g := &t.groups[offset]
			ctrl := *(*uint64)(unsafe.Pointer(&g.ctrls))

			// 1. Existing check
			matches := matchH2(ctrl, h2)
			for matches != 0 {
				idx := matches.first()
				if g.slots[idx] == key {
					return g.values[idx]
				}

				matches = matches.removeFirst()
			}

			// 2. Termination condition
			if matchEmpty(ctrl) != 0 {
				break
			}

			offset = (start + (p+1)*(p+2)/2) & mask
		}
	}

	// We reached the 87.5% of the capacity, the group array needs to grow
	// before this entry goes in.
	if t.size >= t.capacityEffective {
		t.grow()
	}

	boxed := new(V)
	*boxed = produce()

	t.place(key, h1, h2, boxed)
	t.size++

	return nil
}

// place stores an entry known to be absent. The caller guarantees at least
// one empty slot exists.
func (t *table[V]) place(key string, h1 uintptr, h2 uint8, value *V) {
	mask := t.numGroupsMask
	start := (h1 / groupSize) & mask

	for p, offset := uintptr(0), start; ; p++ {
		g := &t.groups[offset]
		ctrl := *(*uint64)(unsafe.Pointer(&g.ctrls))

		if matches := matchEmpty(ctrl); matches != 0 {
			idx := matches.first()
			g.ctrls[idx] = h2
			g.slots[idx] = key
			g.values[idx] = value

			return
		}

		offset = (start + (p+1)*(p+2)/2) & mask
	}
}

func (t *table[V]) grow() {
	slots := t.capacity * 2
	if slots < groupSize {
		slots = groupSize
	}

	t.rebuild(slots)
}

// rebuild reallocates the group array at the given power-of-two slot count
// and re-places every entry. Only keys and boxed pointers move between
// groups; the values the pointers address stay where they are.
func (t *table[V]) rebuild(slots uintptr) {
	old := t.groups

	t.groups = make([]group[V], slots/groupSize)
	t.capacity = slots
	t.numGroupsMask = slots/groupSize - 1
	t.capacityEffective = slots * 7 / 8

	for i := range t.groups {
		t.groups[i].ctrls = emptyCtrls
	}

	for i := range old {
		g := &old[i]
		for j := range groupSize {
			if g.ctrls[j]&slotEmpty != 0 {
				continue
			}

			h1, h2 := HashSplit(t.hashFunc(g.slots[j]))
			t.place(g.slots[j], h1, h2, g.values[j])
		}
	}
}

func (t *table[V]) clear() {
	for i := range t.groups {
		// Zero the whole group so the backing array drops its key and
		// boxed pointer references.
		t.groups[i] = group[V]{}
		t.groups[i].ctrls = emptyCtrls
	}

	t.size = 0
}

func (t *table[V]) shrinkToFit() {
	if t.size == 0 {
		t.groups = nil
		t.capacity = 0
		t.numGroupsMask = 0
		t.capacityEffective = 0

		return
	}

	slots := slotsFor(t.size)
	if slots >= t.capacity {
		return
	}

	t.rebuild(slots)
}
