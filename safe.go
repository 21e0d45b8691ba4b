package vec

import (
	"fmt"
	"sync"
)

// SafeVector is a mutex-protected wrapper around Vector for concurrent
// access. All operations are goroutine-safe but come with the overhead
// of mutex locking.
type SafeVector[T any] struct {
	mu sync.Mutex
	v  Vector[T]
}

// NewSafeVector creates a new empty goroutine-safe vector.
func NewSafeVector[T any]() *SafeVector[T] {
	return &SafeVector[T]{}
}

// Push thread-safely appends a copy of x. Strong guarantee.
func (s *SafeVector[T]) Push(x T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.PushBack(x)
}

// Pop thread-safely releases the last element.
func (s *SafeVector[T]) Pop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.PopBack()
}

// Get thread-safely returns the element at index i by value. The read
// does not invoke the element's copy hook.
func (s *SafeVector[T]) Get(i int) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.v.At(i)
}

// Set thread-safely replaces the element at index i with a copy of x.
// The previous element is released. Strong guarantee.
func (s *SafeVector[T]) Set(i int, x T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	owned, err := copyValue(x)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCopyFailed, err)
	}
	releaseSlot(s.v.At(i))
	*s.v.At(i) = owned
	return nil
}

// Len thread-safely returns the number of live elements.
func (s *SafeVector[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Len()
}

// Cap thread-safely returns the number of allocated slots.
func (s *SafeVector[T]) Cap() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Cap()
}

// Clear thread-safely releases all elements, keeping capacity.
func (s *SafeVector[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Clear()
}

// Reserve thread-safely grows capacity to exactly n slots.
func (s *SafeVector[T]) Reserve(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Reserve(n)
}
