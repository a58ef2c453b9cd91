package holder

const (
	groupSize = 8

	slotEmpty = 0x80
)

type group[V any] struct {
	// 8 bytes of metadata (h2 or the empty state)
	// This fits perfectly in a single uint64 load
	ctrls [groupSize]uint8

	// 8 keys stored immediately after the metadata
	slots [groupSize]string

	// 8 boxed value pointers stored after the keys.
	// Values are never stored inline: the box is what keeps a value's
	// address fixed when the group array itself is reallocated. Only
	// these pointers move on a rebuild.
	values [groupSize]*V
}

var emptyCtrls = [groupSize]uint8{
	slotEmpty,
	slotEmpty,
	slotEmpty,
	slotEmpty,

	slotEmpty,
	slotEmpty,
	slotEmpty,
	slotEmpty,
}
