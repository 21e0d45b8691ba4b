package vec

// Copier is implemented by element types whose duplication can fail.
// The vector duplicates elements through Copy during PushBack capture,
// Insert, Clone, Assign, Reserve and ShrinkToFit; a returned error
// aborts the operation under the guarantee it documents. Types that do
// not implement Copier are duplicated by plain assignment, which never
// fails, and are relocated wholesale during reallocation.
type Copier[T any] interface {
	Copy() (T, error)
}

// Destroyer is implemented by element types with an explicit release
// hook. The vector invokes Destroy exactly once per live element when
// the element is removed, overwritten by reallocation of a deep-copied
// type, or unwound after a failed operation. Destroy must not fail.
type Destroyer interface {
	Destroy()
}

// copyValue duplicates x through its Copy hook when present.
func copyValue[T any](x T) (T, error) {
	if c, ok := any(x).(Copier[T]); ok {
		return c.Copy()
	}
	return x, nil
}

// releaseSlot destroys the element at p and returns the slot to the
// zero state so the backing array holds no stale references.
func releaseSlot[T any](p *T) {
	if d, ok := any(*p).(Destroyer); ok {
		d.Destroy()
	}
	var zero T
	*p = zero
}

// fallibleCopy reports whether T carries a Copy hook. When it does not,
// reallocation relocates elements with the builtin copy instead of
// duplicating them one by one, and the old storage is dropped without
// release hooks (the elements moved, they were not duplicated).
func fallibleCopy[T any]() bool {
	var zero T
	_, ok := any(zero).(Copier[T])
	return ok
}
