package vec

import (
	"errors"
	"fmt"
)

// ErrCopyFailed is wrapped around every element copy failure surfaced
// by a vector operation.
var ErrCopyFailed = errors.New("vec: element copy failed")

// Vector is a growable array of T. The zero value is an empty vector
// with no allocated storage, ready to use. Vector is not goroutine-safe.
type Vector[T any] struct {
	buf  []T // backing storage; len(buf) is the capacity
	size int // live elements occupy buf[:size]
}

// New returns a new empty vector. Equivalent to new(Vector[T]).
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int { return len(v.buf) }

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool { return v.size == 0 }

// Data returns the live-element prefix of the backing array, sharing
// its storage. It is nil when the vector has no allocated storage.
func (v *Vector[T]) Data() []T {
	if v.buf == nil {
		return nil
	}
	return v.buf[:v.size]
}

// At returns a pointer to the element at index i, valid until the next
// reallocating call. No bounds check is made beyond the runtime's own.
func (v *Vector[T]) At(i int) *T { return &v.buf[i] }

// Front returns a pointer to the first live element. Calling it on an
// empty vector panics.
func (v *Vector[T]) Front() *T { return &v.buf[0] }

// Back returns a pointer to the last live element. Calling it on an
// empty vector panics.
func (v *Vector[T]) Back() *T { return &v.buf[v.size-1] }

// PushBack appends a copy of x. O(1) amortized, strong guarantee: on
// failure the vector is unchanged. The value is captured before any
// mutation, so appending an element of the vector to itself is safe
// even when the append reallocates.
func (v *Vector[T]) PushBack(x T) error {
	owned, err := copyValue(x)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCopyFailed, err)
	}
	if v.size < len(v.buf) {
		v.buf[v.size] = owned
		v.size++
		return nil
	}
	newCap := 1
	if len(v.buf) > 0 {
		newCap = 2*len(v.buf) + 1
	}
	buf, err := newBuffer(v.buf, v.size, newCap)
	if err != nil {
		releaseSlot(&owned)
		return err
	}
	buf[v.size] = owned
	v.replaceBuffer(buf)
	v.size++
	return nil
}

// PopBack releases the last live element. O(1), never fails. Calling it
// on an empty vector panics.
func (v *Vector[T]) PopBack() {
	releaseSlot(&v.buf[v.size-1])
	v.size--
}

// Clear releases all elements from the back, keeping capacity and
// buffer identity. O(n), never fails.
func (v *Vector[T]) Clear() {
	for v.size > 0 {
		v.PopBack()
	}
}

// Reserve grows capacity to exactly n slots. When n <= Cap() it is a
// no-op and the backing array identity is preserved. Strong guarantee.
func (v *Vector[T]) Reserve(n int) error {
	if n <= len(v.buf) {
		return nil
	}
	buf, err := newBuffer(v.buf, v.size, n)
	if err != nil {
		return err
	}
	v.replaceBuffer(buf)
	return nil
}

// ShrinkToFit reallocates so that Cap() == Len(). When they are already
// equal it is a strict no-op preserving buffer identity. Strong
// guarantee.
func (v *Vector[T]) ShrinkToFit() error {
	if v.size == len(v.buf) {
		return nil
	}
	buf, err := newBuffer(v.buf, v.size, v.size)
	if err != nil {
		return err
	}
	v.replaceBuffer(buf)
	return nil
}

// Insert places a copy of x at index i, shifting elements at and after
// i one slot right by pairwise exchange. The only failure point is the
// initial append; on failure the vector is unchanged (strong
// guarantee). Returns a pointer to the inserted element.
func (v *Vector[T]) Insert(i int, x T) (*T, error) {
	if err := v.PushBack(x); err != nil {
		return nil, err
	}
	for j := v.size - 1; j > i; j-- {
		v.buf[j], v.buf[j-1] = v.buf[j-1], v.buf[j]
	}
	return &v.buf[i], nil
}

// Erase removes the element at index i. Equivalent to EraseRange(i, i+1).
func (v *Vector[T]) Erase(i int) int {
	return v.EraseRange(i, i+1)
}

// EraseRange removes elements in [first, last), exchanging trailing
// elements left into the vacated slots and then popping the tail.
// Capacity and buffer identity never change. The exchanges construct
// nothing and cannot fail; no slot is leaked. Returns the index of the
// first element after the removed range.
func (v *Vector[T]) EraseRange(first, last int) int {
	for i := last; i < v.size; i++ {
		v.buf[i-(last-first)], v.buf[i] = v.buf[i], v.buf[i-(last-first)]
	}
	for n := last - first; n > 0; n-- {
		v.PopBack()
	}
	return first
}

// Clone returns a copy of the vector whose capacity equals its length.
// Strong guarantee: on a failed element copy, already-made copies are
// released in reverse order and the error is returned.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	buf, err := newBuffer(v.buf, v.size, v.size)
	if err != nil {
		return nil, err
	}
	return &Vector[T]{buf: buf, size: v.size}, nil
}

// Assign replaces the receiver's contents with a copy of src.
// Self-assignment is a no-op. Strong guarantee: on failure the receiver
// is unmodified and the transient copy is released.
func (v *Vector[T]) Assign(src *Vector[T]) error {
	if v == src {
		return nil
	}
	c, err := src.Clone()
	if err != nil {
		return err
	}
	v.Swap(c)
	c.teardown()
	return nil
}

// Move transfers ownership of the backing storage to a new vector and
// leaves the receiver in the zero state. O(1), no per-element work.
func (v *Vector[T]) Move() *Vector[T] {
	m := &Vector[T]{buf: v.buf, size: v.size}
	v.buf, v.size = nil, 0
	return m
}

// MoveFrom releases the receiver's current contents and takes over
// src's storage, leaving src in the zero state. Self-move is a no-op.
// O(1) plus the release of the old contents, never fails.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.teardown()
	v.buf, v.size = src.buf, src.size
	src.buf, src.size = nil, 0
}

// Swap exchanges the contents of two vectors. O(1), never fails.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf, other.buf = other.buf, v.buf
	v.size, other.size = other.size, v.size
}

// teardown releases every live element in reverse construction order
// and drops the backing storage, leaving the zero state.
func (v *Vector[T]) teardown() {
	for i := v.size; i > 0; i-- {
		releaseSlot(&v.buf[i-1])
	}
	v.buf, v.size = nil, 0
}

// replaceBuffer installs buf as the backing storage. Elements of a
// deep-copied type were duplicated into buf, so the old live slots are
// released in reverse order; elements of other types were relocated and
// the old storage is simply dropped.
func (v *Vector[T]) replaceBuffer(buf []T) {
	old := v.buf
	v.buf = buf
	if fallibleCopy[T]() {
		for i := v.size; i > 0; i-- {
			releaseSlot(&old[i-1])
		}
	}
}

// newBuffer allocates newCap slots and fills the first n with copies of
// src's live prefix. On a failed copy every slot constructed so far is
// released in reverse order and nothing is retained. newCap of zero
// yields no allocation.
func newBuffer[T any](src []T, n, newCap int) ([]T, error) {
	if newCap == 0 {
		return nil, nil
	}
	buf := make([]T, newCap)
	if !fallibleCopy[T]() {
		copy(buf, src[:n])
		return buf, nil
	}
	for i := 0; i < n; i++ {
		c, err := copyValue(src[i])
		if err != nil {
			for j := i; j > 0; j-- {
				releaseSlot(&buf[j-1])
			}
			return nil, fmt.Errorf("%w: index %d: %w", ErrCopyFailed, i, err)
		}
		buf[i] = c
	}
	return buf, nil
}
