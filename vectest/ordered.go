package vectest

import (
	"fmt"
	"sync"
)

// ord records the global construction order of OrderedElem instances.
var ord struct {
	mu         sync.Mutex
	nextSeq    uint64
	stack      []uint64 // construction order, destroyed entries popped
	violations []string
}

// ordSlot is the shared record behind an OrderedElem and its copies.
// Copying bumps owner, so only the newest copy releases the slot; stale
// originals become inert, matching move-style ownership transfer.
type ordSlot struct {
	seq   uint64
	owner uint64
}

// OrderedElem participates in a global construction-order log. Destroy
// verifies that elements are torn down in exactly the reverse order of
// construction; violations are collected rather than failing in place,
// since Destroy runs deep inside container operations.
type OrderedElem struct {
	s   *ordSlot
	gen uint64
}

// NewOrderedElem constructs an element and appends it to the global
// construction order.
func NewOrderedElem() OrderedElem {
	ord.mu.Lock()
	defer ord.mu.Unlock()
	ord.nextSeq++
	ord.stack = append(ord.stack, ord.nextSeq)
	return OrderedElem{s: &ordSlot{seq: ord.nextSeq, owner: 1}, gen: 1}
}

// Copy transfers ownership of the order record to the duplicate; the
// source becomes inert. It fails when the injector fires on this call.
func (e OrderedElem) Copy() (OrderedElem, error) {
	if shouldFail() {
		return OrderedElem{}, ErrInjected
	}
	ord.mu.Lock()
	defer ord.mu.Unlock()
	e.s.owner++
	return OrderedElem{s: e.s, gen: e.s.owner}, nil
}

// Destroy pops the element's entry from the construction-order stack,
// recording a violation when it is not on top. Inert values (zero or
// copied-from) are ignored.
func (e OrderedElem) Destroy() {
	if e.s == nil {
		return
	}
	ord.mu.Lock()
	defer ord.mu.Unlock()
	if e.gen != e.s.owner {
		return
	}
	if len(ord.stack) == 0 {
		ord.violations = append(ord.violations,
			fmt.Sprintf("destroy of seq %d with empty construction stack", e.s.seq))
		return
	}
	top := ord.stack[len(ord.stack)-1]
	if top != e.s.seq {
		ord.violations = append(ord.violations,
			fmt.Sprintf("destroyed seq %d but seq %d was constructed last", e.s.seq, top))
		return
	}
	ord.stack = ord.stack[:len(ord.stack)-1]
}

// Seq returns the element's position in the global construction order.
func (e OrderedElem) Seq() uint64 { return e.s.seq }

// ResetOrder clears the construction-order log and any recorded
// violations.
func ResetOrder() {
	ord.mu.Lock()
	defer ord.mu.Unlock()
	ord.stack = nil
	ord.violations = nil
}

// OrderViolations returns the destruction-order violations recorded
// since the last ResetOrder.
func OrderViolations() []string {
	ord.mu.Lock()
	defer ord.mu.Unlock()
	return append([]string(nil), ord.violations...)
}
