package vec

import "iter"

// All returns an iterator over index/element pairs of the live prefix,
// in order. The yielded pointers allow in-place mutation and stay valid
// until the next reallocating call.
func (v *Vector[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, &v.buf[i]) {
				return
			}
		}
	}
}

// Values returns a read-only iterator over the live elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.buf[i]) {
				return
			}
		}
	}
}
