package vec

// Stats contains a snapshot of a vector's storage accounting.
type Stats struct {
	Len         int     // live elements
	Cap         int     // allocated slots
	Utilization float64 // ratio of live to allocated slots (0.0-1.0)
}

// Utilization returns the ratio of live elements to allocated slots.
// Returns 0.0 when no storage is allocated.
func (v *Vector[T]) Utilization() float64 {
	if len(v.buf) == 0 {
		return 0
	}
	return float64(v.size) / float64(len(v.buf))
}

// Stats returns a snapshot of the vector's storage accounting.
func (v *Vector[T]) Stats() Stats {
	return Stats{
		Len:         v.Len(),
		Cap:         v.Cap(),
		Utilization: v.Utilization(),
	}
}

// Thread-safe metrics for SafeVector

// Utilization thread-safely returns the ratio of live to allocated slots.
func (s *SafeVector[T]) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Utilization()
}

// Stats thread-safely returns a snapshot of the storage accounting.
func (s *SafeVector[T]) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Stats()
}
