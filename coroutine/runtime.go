package coroutine

import (
	"runtime"
	"sync"

	"golang.org/x/exp/slices"
)

// waiter is one entry in the runtime's FIFO: a suspended body waiting for
// ready to return true, unless owner is cancelled first.
type waiter struct {
	owner  int
	ready  func() bool
	resume chan struct{}
}

// Runtime is the FIFO scheduler: a single queue of suspended coroutine
// bodies, resumed one at a time in insertion order, skipping any owned by
// a cancelled party.
type Runtime struct {
	mu          sync.Mutex
	entries     []*waiter
	isCancelled func(owner int) bool
}

// NewRuntime creates a Runtime. isCancelled, if non-nil, is consulted on
// every scheduling pass to skip a cancelled party's suspended bodies; it
// is typically backed by a simulation context's cancellation bitmap.
func NewRuntime(isCancelled func(owner int) bool) *Runtime {
	return &Runtime{isCancelled: isCancelled}
}

func (rt *Runtime) cancelled(owner int) bool {
	return rt.isCancelled != nil && rt.isCancelled(owner)
}

// suspend parks the calling goroutine until ready returns true on some
// future scheduling pass. It must only be called from a body launched via
// Go, never from the scheduling goroutine itself.
func (rt *Runtime) suspend(owner int, ready func() bool) {
	w := &waiter{owner: owner, ready: ready, resume: make(chan struct{})}
	rt.mu.Lock()
	rt.entries = append(rt.entries, w)
	rt.mu.Unlock()
	<-w.resume
}

// Next scans the FIFO in insertion order for the first entry whose owner
// is not cancelled and whose predicate currently returns true, removes it,
// and resumes it. It reports whether anything was resumed; a false result
// is the "no-op handle" case from the spec.
func (rt *Runtime) Next() bool {
	rt.mu.Lock()
	idx := slices.IndexFunc(rt.entries, func(w *waiter) bool {
		return !rt.cancelled(w.owner) && w.ready()
	})
	if idx < 0 {
		rt.mu.Unlock()
		return false
	}
	w := rt.entries[idx]
	rt.entries = slices.Delete(rt.entries, idx, idx+1)
	rt.mu.Unlock()
	close(w.resume)
	return true
}

// Run pumps Next until done reports true. When a pass resumes nothing, it
// yields to let suspended goroutines make progress (enqueue new waiters,
// or have their ready predicates' dependencies change) before trying
// again.
func (rt *Runtime) Run(done func() bool) {
	for !done() {
		if !rt.Next() {
			runtime.Gosched()
		}
	}
}

// Pending returns the number of currently suspended bodies, for tests and
// diagnostics.
func (rt *Runtime) Pending() int {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return len(rt.entries)
}
