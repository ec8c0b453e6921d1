package coroutine

import (
	"fmt"
	"time"

	"github.com/scl-mpc/scl/scerr"
)

// Clock reads a virtual or wall-clock elapsed time, abstracting over the
// simulator's per-party virtual clock versus a real-time clock used when
// running outside the simulator.
type Clock interface {
	Now() time.Duration
}

// Awaiter is the suspension handle a coroutine body receives from Go. It
// is bound to the Runtime and the owning party, and exposes the three
// awaitable kinds the spec allows: a predicate, a duration, and another
// task (or batch of tasks).
type Awaiter struct {
	rt    *Runtime
	owner int
}

// Owner returns the party id this Awaiter suspends on behalf of.
func (a *Awaiter) Owner() int { return a.owner }

// Predicate suspends until ready returns true on some future scheduling
// pass. If the owning party is cancelled while suspended here, the
// scheduler simply never resumes it again (Runtime.Next skips cancelled
// owners) — this call blocks forever, matching "the scheduler will
// subsequently skip its handles". Self-cancellation is a distinct,
// explicit act (see CancelSelf), not something Predicate detects on its
// own.
func (a *Awaiter) Predicate(ready func() bool) {
	a.rt.suspend(a.owner, ready)
}

// CancelSelf models a coroutine cancelling its own party: unlike
// cancelling another party (which only takes effect at that party's next
// suspension point), self-cancellation unwinds immediately. Callers
// return the resulting error up the call stack without suspending again.
func (a *Awaiter) CancelSelf() error {
	return fmt.Errorf("party %d cancelled itself: %w", a.owner, scerr.ErrCancelled)
}

// Duration suspends until clock has advanced by at least d from the
// moment Duration was called.
func (a *Awaiter) Duration(clock Clock, d time.Duration) {
	target := clock.Now() + d
	a.Predicate(func() bool { return clock.Now() >= target })
}

// AwaitTask suspends until t is done, then returns its result.
func AwaitTask[T any](a *Awaiter, t *Task[T]) (T, error) {
	a.Predicate(t.Done)
	return t.Result()
}

// AwaitBatch suspends until every task in tasks is done, excluding any
// whose owner is cancelled (which may never complete), then collects their
// results in order.
func AwaitBatch[T any](a *Awaiter, tasks []*Task[T]) ([]T, error) {
	ready := func() bool {
		for _, t := range tasks {
			if a.rt.cancelled(t.owner) {
				continue
			}
			if !t.Done() {
				return false
			}
		}
		return true
	}
	a.Predicate(ready)
	out := make([]T, 0, len(tasks))
	for _, t := range tasks {
		if a.rt.cancelled(t.owner) && !t.Done() {
			continue
		}
		v, err := t.Result()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
