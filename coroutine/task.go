// Package coroutine implements scl's single-threaded cooperative scheduler:
// Task[T] results, a Runtime that resumes exactly one suspended body per
// scheduling pass, and the predicate/duration/task/batch awaitables that
// drive it.
//
// The original is built on native (C++20) coroutines, stackful state
// machines with explicit suspension points the runtime can inspect. Go has
// no equivalent — goroutines cannot be paused and resumed by a third
// party — so a coroutine body here runs on its own goroutine and blocks on
// an unbuffered channel at every await point; Runtime.Next is the only
// thing that ever unblocks one, and it only ever unblocks one at a time,
// reproducing the single-resumption-per-pass scheduling discipline the
// spec describes even though real goroutines (not a literal single OS
// thread) underlie it.
package coroutine

import "sync"

// Task is the result of a coroutine body, obtained by calling Go. It can
// be awaited by another coroutine via AwaitTask.
type Task[T any] struct {
	owner int

	mu     sync.Mutex
	done   bool
	value  T
	err    error
	doneCh chan struct{}
}

func newTask[T any](owner int) *Task[T] {
	return &Task[T]{owner: owner, doneCh: make(chan struct{})}
}

func (t *Task[T]) complete(v T, err error) {
	t.mu.Lock()
	if !t.done {
		t.value = v
		t.err = err
		t.done = true
		close(t.doneCh)
	}
	t.mu.Unlock()
}

// Done reports whether the task's body has finished.
func (t *Task[T]) Done() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.done
}

// Result returns the task's outcome. Calling it before Done is true
// returns the zero value and a nil error — callers are expected to await
// Done first.
func (t *Task[T]) Result() (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.value, t.err
}

// Go launches body on its own goroutine, owned by owner for cancellation
// purposes, and returns a Task tracking its eventual result. body receives
// an Awaiter bound to rt and owner to use for suspension.
//
// body does not run a single instruction until the scheduler's first
// explicit resume of this task: Go enqueues a start gate into rt's FIFO
// synchronously (in the caller's goroutine, before returning), in the
// same insertion-order position a real suspension would take, and the
// spawned goroutine blocks on that gate before calling body. Without this,
// the spawned goroutine would race every other party's pre-suspend work
// against the Go scheduler's own timing, rather than against the FIFO's
// deterministic order.
func Go[T any](rt *Runtime, owner int, body func(*Awaiter) (T, error)) *Task[T] {
	t := newTask[T](owner)
	aw := &Awaiter{rt: rt, owner: owner}

	gate := &waiter{owner: owner, ready: func() bool { return true }, resume: make(chan struct{})}
	rt.mu.Lock()
	rt.entries = append(rt.entries, gate)
	rt.mu.Unlock()

	go func() {
		<-gate.resume
		v, err := body(aw)
		t.complete(v, err)
	}()
	return t
}
