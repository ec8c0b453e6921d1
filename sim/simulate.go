package sim

import (
	"errors"

	"github.com/scl-mpc/scl/coroutine"
	"github.com/scl-mpc/scl/protocol"
	"github.com/scl-mpc/scl/scerr"
)

// Simulate runs one replication of the protocol manager describes,
// co-executing every party's protocol chain on a single FIFO scheduler
// and delivering their traces to manager.HandleSimulatorOutput when
// every party has finished (or been cancelled), per §4.14:
//
//  1. Ask the manager for the protocol vector (one per party).
//  2. Build a context sized to the vector length, with the manager's
//     network configuration and hooks wired in.
//  3. Schedule each party's protocol chain as its own coroutine task.
//  4. Schedule a driver task that waits for every non-cancelled task to
//     finish.
//  5. Pump the runtime until the driver completes.
//  6. Hand each party's trace to the manager.
func Simulate(manager Manager) {
	protocols := manager.Protocol()
	n := len(protocols)

	ctx := NewContext(n, manager.NetworkConfiguration(), manager.Hooks())
	rt := coroutine.NewRuntime(ctx.IsCancelled)

	tasks := make([]*coroutine.Task[struct{}], n)
	for i := range protocols {
		id, p := i, protocols[i]
		tasks[id] = coroutine.Go(rt, id, func(aw *coroutine.Awaiter) (struct{}, error) {
			return struct{}{}, runProtocol(aw, ctx, manager, id, p)
		})
	}

	driver := coroutine.Go(rt, -1, func(aw *coroutine.Awaiter) (struct{}, error) {
		aw.Predicate(func() bool {
			for i, t := range tasks {
				if ctx.IsCancelled(i) {
					continue
				}
				if !t.Done() {
					return false
				}
			}
			return true
		})
		return struct{}{}, nil
	})

	rt.Run(driver.Done)

	for i := 0; i < n; i++ {
		manager.HandleSimulatorOutput(i, ctx.Trace(i))
	}
}

// runProtocol drives a single party's protocol chain to completion,
// recording the surrounding start/stop/protocol_begin/protocol_end/output
// events, and translating a cancellation error into a CANCELLED event
// (rather than propagating it) versus any other error into a KILLED one.
func runProtocol(aw *coroutine.Awaiter, ctx *Context, manager Manager, id int, p protocol.Protocol) error {
	view := ctx.View(id)

	view.StartClock()
	view.RecordEvent(EventStart(view.ElapsedTime()))

	if p == nil {
		view.RecordEvent(EventStop(view.ElapsedTime()))
		return nil
	}

	env := &protocol.Env{
		Network: NewNetwork(id, ctx),
		Clock:   NewClock(view),
	}

	current := p
	for current != nil {
		view.StartClock()
		view.RecordEvent(EventProtocolBegin(view.ElapsedTime(), current.Name()))

		result, err := current.Run(aw, env)
		if err != nil {
			if errors.Is(err, scerr.ErrCancelled) {
				view.RecordEvent(EventCancelled(view.ElapsedTime()))
				return nil
			}
			view.RecordEvent(EventKilled(view.ElapsedTime(), err.Error()))
			return err
		}

		view.RecordEvent(EventProtocolEnd(view.ElapsedTime(), current.Name()))

		if result.HasOutput {
			view.RecordEvent(EventOutput(view.ElapsedTime()))
			manager.HandleProtocolOutput(id, result.Output)
		}

		current = result.Next
	}

	view.RecordEvent(EventStop(view.ElapsedTime()))
	return nil
}
