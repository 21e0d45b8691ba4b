package vectest

import (
	"errors"
	"sync"
	"testing"
)

// ErrInjected is the failure produced by an armed injector.
var ErrInjected = errors.New("vectest: injected fault")

var inj struct {
	mu        sync.Mutex
	armed     bool
	remaining int  // element operations until the fault fires
	disabled  int  // scoped-disable depth
	tripped   bool // the armed fault has fired
}

// FailAfter arms the injector: the k-th element operation from now
// (zero-based) fails with ErrInjected. One fault fires per arming.
func FailAfter(k int) {
	inj.mu.Lock()
	defer inj.mu.Unlock()
	inj.armed = true
	inj.remaining = k
	inj.tripped = false
}

// Disarm turns the injector off.
func Disarm() {
	inj.mu.Lock()
	defer inj.mu.Unlock()
	inj.armed = false
	inj.tripped = false
}

// Disable suspends injection until the returned restore function runs,
// so assertions made while checking post-failure state do not trip the
// injector themselves. Nested calls stack.
func Disable() (restore func()) {
	inj.mu.Lock()
	inj.disabled++
	inj.mu.Unlock()
	return func() {
		inj.mu.Lock()
		inj.disabled--
		inj.mu.Unlock()
	}
}

// Tripped reports whether the armed fault has fired since FailAfter.
func Tripped() bool {
	inj.mu.Lock()
	defer inj.mu.Unlock()
	return inj.tripped
}

// shouldFail is consulted by instrumented element operations.
func shouldFail() bool {
	inj.mu.Lock()
	defer inj.mu.Unlock()
	if !inj.armed || inj.disabled > 0 || inj.tripped {
		return false
	}
	if inj.remaining > 0 {
		inj.remaining--
		return false
	}
	inj.tripped = true
	return true
}

// Run executes body repeatedly, injecting a failure at element
// operation 0, 1, 2, ... in successive runs, until body completes
// without hitting the injector. A body that swallows an injected
// failure, or that fails on a clean run, fails the test. Element
// operations performed under Disable are not counted.
func Run(t *testing.T, body func() error) {
	t.Helper()
	defer Disarm()
	for k := 0; ; k++ {
		FailAfter(k)
		err := body()
		if !Tripped() {
			if err != nil {
				t.Fatalf("run with no injected fault failed: %v", err)
			}
			return
		}
		if err == nil {
			t.Fatalf("fault injected at element operation %d was swallowed", k)
		}
		if !errors.Is(err, ErrInjected) {
			t.Fatalf("fault injected at element operation %d surfaced as unexpected error: %v", k, err)
		}
	}
}
