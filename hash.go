package holder

import "hash/maphash"

type HashFunc func(string) uint64

// MakeDefaultHashFunc returns a maphash-backed hash function using the given seed.
func MakeDefaultHashFunc(seed maphash.Seed) HashFunc {
	return func(k string) uint64 {
		return maphash.String(seed, k)
	}
}

func HashSplit(hash uint64) (uintptr, uint8) {
	h1 := uintptr(hash >> 7)
	h2 := uint8(hash & 0x7F)

	return h1, h2
}
