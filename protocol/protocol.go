// Package protocol defines the Protocol abstraction every scl protocol
// implements, the environment it runs against, and the Evaluate loop that
// drives a (possibly chained) protocol to completion.
package protocol

import (
	"github.com/scl-mpc/scl/coroutine"
	"github.com/scl-mpc/scl/netio"
)

// DefaultName is the name a Sequence reports when it was built with an
// empty name. The simulator records each step's Name in its PROTOCOL_BEGIN
// and PROTOCOL_END events.
const DefaultName = "UNNAMED"

// Network is a party's view of the channels to every other party.
type Network interface {
	// Party returns the channel connecting this party to party id.
	Party(id int) netio.Channel
	// MyID returns this party's own index.
	MyID() int
	// NumParties returns the total number of parties.
	NumParties() int
}

// Env is the environment the runtime injects into every protocol step: its
// network view and a clock to read virtual or wall time from.
type Env struct {
	Network Network
	Clock   coroutine.Clock
}

// Result is what a protocol step produces: an optional next protocol to
// chain into, and an optional output value. The two are independent — a
// step may produce an output and still chain, or chain with no output, or
// terminate (Next == nil) with or without an output.
type Result struct {
	Next      Protocol
	Output    any
	HasOutput bool
}

// Done builds a terminating Result carrying output.
func Done(output any) Result {
	return Result{Output: output, HasOutput: true}
}

// DoneNoOutput builds a terminating Result with no output.
func DoneNoOutput() Result {
	return Result{}
}

// Chain builds a Result with no output that continues execution with
// next.
func Chain(next Protocol) Result {
	return Result{Next: next}
}

// ChainWithOutput builds a Result that both produces output and
// continues execution with next.
func ChainWithOutput(next Protocol, output any) Result {
	return Result{Next: next, Output: output, HasOutput: true}
}

// Protocol is the code a party runs in an interactive protocol. Run may
// suspend via aw at any point (sending/receiving on env.Network's
// channels, awaiting other tasks) before producing a Result.
type Protocol interface {
	Run(aw *coroutine.Awaiter, env *Env) (Result, error)
	Name() string
}
