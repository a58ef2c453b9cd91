package holder

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTable[V any](capacity int, opts ...Option[V]) *table[V] {
	var tt table[V]
	tt.init(capacity, opts...)

	return &tt
}

func TestTable_init(t *testing.T) {
	var tt table[int]

	tt.init(100)

	// slotsFor(100) rounds ceil(100 * 8/7) = 115 up to 128 slots.
	require.Len(t, tt.groups, 128/groupSize)
	require.Equal(t, uintptr(128/groupSize-1), tt.numGroupsMask)
	require.Equal(t, uintptr(128*7/8), tt.capacityEffective)
}

func TestTable_init_Zero(t *testing.T) {
	var tt table[int]

	tt.init(0)

	require.Nil(t, tt.groups)
	require.Zero(t, tt.capacity)
	require.Zero(t, tt.capacityEffective)
	require.NotNil(t, tt.hashFunc)
}

func Test_slotsFor(t *testing.T) {
	tests := []struct {
		name string
		n    uintptr
		want uintptr
	}{
		{"one entry", 1, groupSize},
		{"one group worth", 7, groupSize},
		{"just past one group", 8, 16},
		{"exact fit", 14, 16},
		{"just past", 15, 32},
		{"large", 4096, 8192},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slotsFor(tt.n)

			require.Equal(t, tt.want, got)
			require.GreaterOrEqual(t, got*7/8, tt.n)
		})
	}
}

func TestTable_put(t *testing.T) {
	tt := newTable[string](16)

	existing := tt.put("foo", func() string { return "bar" })
	require.Nil(t, existing)

	v := tt.get("foo")
	require.NotNil(t, v)
	assert.Equal(t, "bar", *v)

	existing = tt.put("foo", func() string { return "bar2" })
	require.Same(t, v, existing)
	assert.Equal(t, "bar", *existing)
}

func TestTable_put_Fill(t *testing.T) {
	tt := newTable[int](4096)

	capacity := tt.capacity
	effective := int(tt.capacityEffective)

	// Up to the effective capacity no rebuild happens.
	for i := range effective {
		require.Nil(t, tt.put(strconv.Itoa(i), func() int { return i }))
		require.Equal(t, capacity, tt.capacity)
	}

	// The next new key doubles the slot count.
	require.Nil(t, tt.put("overflow", func() int { return -1 }))
	require.Equal(t, capacity*2, tt.capacity)

	// Nothing was lost in the rebuild.
	for i := range effective {
		v := tt.get(strconv.Itoa(i))
		require.NotNil(t, v)
		require.Equal(t, i, *v)
	}
}

func TestTable_grow_KeepsBoxedValues(t *testing.T) {
	tt := newTable[int](8)

	boxed := make([]*int, 0, 100)
	for i := range 100 {
		require.Nil(t, tt.put(strconv.Itoa(i), func() int { return i }))
		boxed = append(boxed, tt.get(strconv.Itoa(i)))
	}

	// Growth rebuilt the group array several times; every box survived.
	for i, p := range boxed {
		require.Same(t, p, tt.get(strconv.Itoa(i)))
		require.Equal(t, i, *p)
	}
}

func TestTable_clear(t *testing.T) {
	tt := newTable[int](16)

	for i := range 5 {
		tt.put(strconv.Itoa(i), func() int { return i })
	}

	capacity := tt.capacity

	tt.clear()

	require.Zero(t, tt.size)
	require.Equal(t, capacity, tt.capacity)
	require.Nil(t, tt.get("0"))
}

func TestTable_shrinkToFit(t *testing.T) {
	tt := newTable[int](4096)

	for i := range 10 {
		tt.put(strconv.Itoa(i), func() int { return i })
	}

	tt.shrinkToFit()

	require.Equal(t, slotsFor(10), tt.capacity)

	for i := range 10 {
		v := tt.get(strconv.Itoa(i))
		require.NotNil(t, v)
		require.Equal(t, i, *v)
	}

	// Shrinking an already minimal table is a no-op.
	capacity := tt.capacity
	tt.shrinkToFit()
	require.Equal(t, capacity, tt.capacity)
}

func TestTable_put_BoundaryMirror(t *testing.T) {
	// 16 slots / 8 per group = 2 groups
	tt := newTable[int](14)

	// The last valid group index is tt.numGroupsMask (which is 1)
	targetGroupIdx := tt.numGroupsMask

	lastIdxKey := 0
	for {
		h1, _ := HashSplit(tt.hashFunc(strconv.Itoa(lastIdxKey)))
		// h1/8 gives the group index. Mask it to find keys landing in the last group.
		if (h1 / 8 & tt.numGroupsMask) == targetGroupIdx {
			break
		}
		lastIdxKey++
	}

	key := strconv.Itoa(lastIdxKey)
	require.Nil(t, tt.put(key, func() int { return lastIdxKey }))

	v := tt.get(key)
	require.NotNil(t, v, "Failed to find key at the boundary of the capacity")
	require.Equal(t, lastIdxKey, *v)
}
