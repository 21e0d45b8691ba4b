// Package vec implements a growable array container with manual control
// over allocated capacity versus logical length.
//
// # Overview
//
// A Vector owns a single contiguous backing array sized to a capacity,
// of which a prefix of Len() slots holds live elements; the remainder is
// released storage that is never read. Unlike the builtin append, every
// mutating operation states an explicit failure contract, which matters
// for element types whose duplication can fail (deep copies that
// allocate, handles that must be re-acquired, instrumented test
// elements). This is useful for:
//
//   - Containers of resource-owning values with explicit release hooks
//   - Code that must reason about partial failure during reallocation
//   - Deterministic teardown in reverse construction order
//   - Verifying failure-path correctness with injected faults
//
// # Basic Usage
//
//	var v vec.Vector[int]        // zero value is an empty vector
//	if err := v.Reserve(100); err != nil {
//		return err
//	}
//	for i := 0; i < 100; i++ {
//		if err := v.PushBack(i); err != nil {
//			return err
//		}
//	}
//	fmt.Println(v.Len(), v.Cap(), *v.At(42))
//
// # Failure Model
//
// The only failure class is "element operation failed": an element type
// may implement Copier to make its duplication fallible, and every
// vector operation that duplicates elements (PushBack, Insert, Clone,
// Assign, Reserve, ShrinkToFit) returns an error wrapping the element's
// failure. Operations documented as strong either complete fully or
// leave the vector exactly as it was; no partial state is ever
// observable. PopBack, Clear, Swap and the move operations never fail.
// Element types without a Copy hook are relocated wholesale during
// reallocation, so for them the fallible paths cannot fail at all.
//
// # Thread Safety
//
// Vector is not goroutine-safe. Callers sharing a vector across
// goroutines must synchronize externally or use SafeVector:
//
//	s := vec.NewSafeVector[int]()
//	_ = s.Push(42)
//
// # Performance Characteristics
//
//   - PushBack: O(1) amortized; capacity grows 1, 3, 7, 15, ... (2n+1)
//   - PopBack, Swap, move operations: O(1)
//   - Insert, Erase: O(n) element exchanges; erase never reallocates
//   - Reserve, ShrinkToFit, Clone: O(n) element copies
//   - Indexed access: O(1), no bounds checks beyond the runtime's own
package vec
