package protocol

import (
	"fmt"

	"github.com/scl-mpc/scl/coroutine"
	"github.com/scl-mpc/scl/scerr"
)

// Evaluate runs p to completion inside a fresh coroutine owned by
// env.Network.MyID(), following result.Next until a Result with Next == nil
// is produced. Every intermediate output is delivered to onOutput, in the
// order the chain produces them. It returns the task driving the whole
// chain; callers pump rt (directly, or via rt.Run) to make progress.
func Evaluate(rt *coroutine.Runtime, p Protocol, env *Env, onOutput func(any)) *coroutine.Task[struct{}] {
	return coroutine.Go(rt, env.Network.MyID(), func(aw *coroutine.Awaiter) (struct{}, error) {
		current := p
		for current != nil {
			result, err := current.Run(aw, env)
			if err != nil {
				return struct{}{}, fmt.Errorf("protocol %q: %w", current.Name(), err)
			}
			if result.HasOutput && onOutput != nil {
				onOutput(result.Output)
			}
			current = result.Next
		}
		return struct{}{}, nil
	})
}

// EvaluateTyped runs p to completion the same way Evaluate does, but expects
// the final Result in the chain (the one with Next == nil) to carry an
// output assignable to R, and returns it. It is an error for the chain to
// terminate without an output of the expected type.
func EvaluateTyped[R any](rt *coroutine.Runtime, p Protocol, env *Env) *coroutine.Task[R] {
	return coroutine.Go(rt, env.Network.MyID(), func(aw *coroutine.Awaiter) (R, error) {
		var zero R
		current := p
		for current != nil {
			result, err := current.Run(aw, env)
			if err != nil {
				return zero, fmt.Errorf("protocol %q: %w", current.Name(), err)
			}
			if result.Next == nil {
				if !result.HasOutput {
					return zero, fmt.Errorf("protocol %q produced no output: %w", current.Name(), scerr.ErrInvalidInput)
				}
				out, ok := result.Output.(R)
				if !ok {
					return zero, fmt.Errorf("protocol %q output has unexpected type: %w", current.Name(), scerr.ErrInvalidInput)
				}
				return out, nil
			}
			current = result.Next
		}
		return zero, fmt.Errorf("protocol chain ended unexpectedly: %w", scerr.ErrInvalidInput)
	})
}

// EvaluateVoid runs p to completion ignoring every intermediate output. It
// is the no-output specialization of Evaluate.
func EvaluateVoid(rt *coroutine.Runtime, p Protocol, env *Env) *coroutine.Task[struct{}] {
	return Evaluate(rt, p, env, nil)
}
