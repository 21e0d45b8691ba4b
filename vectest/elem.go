package vectest

import (
	"fmt"
	"sync"
	"testing"
)

// reg is the live-instance registry shared by all Elem values.
var reg struct {
	mu     sync.Mutex
	nextID uint64
	live   map[uint64]int // id -> value, kept for diagnostics
	copies int
}

func register(val int) uint64 {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if reg.live == nil {
		reg.live = make(map[uint64]int)
	}
	reg.nextID++
	reg.live[reg.nextID] = val
	return reg.nextID
}

// Elem is an instance-counted element with a fallible copy, used to
// observe leaks and copy traffic inside the container. Each constructed
// or copied Elem registers a unique live instance; Destroy removes it.
// The zero Elem is inert: it registers nothing and destroys nothing.
type Elem struct {
	val int
	id  uint64
}

// NewElem constructs an element holding v and registers it as live.
func NewElem(v int) Elem {
	return Elem{val: v, id: register(v)}
}

// Copy duplicates the element, registering the duplicate as a new live
// instance. It fails when the injector fires on this call.
func (e Elem) Copy() (Elem, error) {
	if shouldFail() {
		return Elem{}, ErrInjected
	}
	reg.mu.Lock()
	reg.copies++
	reg.mu.Unlock()
	return Elem{val: e.val, id: register(e.val)}, nil
}

// Destroy removes the element from the live-instance registry.
// Destroying an instance twice panics, as does destroying a value that
// was never registered.
func (e Elem) Destroy() {
	if e.id == 0 {
		return
	}
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if _, ok := reg.live[e.id]; !ok {
		panic(fmt.Sprintf("vectest: Destroy of dead element id=%d val=%d", e.id, e.val))
	}
	delete(reg.live, e.id)
}

// Value returns the element's payload.
func (e Elem) Value() int { return e.val }

// LiveCount returns the number of registered instances currently alive.
func LiveCount() int {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	return len(reg.live)
}

// CopyCount returns the number of successful copies since the last
// ResetCounters.
func CopyCount() int {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	return reg.copies
}

// ResetCounters zeroes the copy counter. Live instances are unaffected.
func ResetCounters() {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.copies = 0
}

// LeakCheck snapshots the live-instance count and returns a function
// that asserts the count is back at the snapshot. Typical use:
//
//	check := vectest.LeakCheck(t)
//	defer check()
func LeakCheck(t *testing.T) func() {
	t.Helper()
	before := LiveCount()
	return func() {
		t.Helper()
		if n := LiveCount(); n != before {
			t.Errorf("leaked %d element instance(s)", n-before)
		}
	}
}

// Values extracts the payloads of a slice of elements, for comparing
// container contents without touching copy hooks.
func Values(elems []Elem) []int {
	out := make([]int, len(elems))
	for i, e := range elems {
		out[i] = e.val
	}
	return out
}
