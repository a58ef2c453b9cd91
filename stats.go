package holder

type Stats struct {
	Size       int
	Capacity   int
	LoadFactor float32
}

// Stats reports the current shape of the index.
func (h *Holder[T]) Stats() Stats {
	s := Stats{
		Size:     int(h.size),
		Capacity: int(h.capacityEffective),
	}

	if h.capacity > 0 {
		s.LoadFactor = float32(h.size) / float32(h.capacity)
	}

	return s
}
