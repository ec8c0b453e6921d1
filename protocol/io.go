package protocol

import (
	"github.com/scl-mpc/scl/coroutine"
	"github.com/scl-mpc/scl/netio"
	"github.com/scl-mpc/scl/serialize"
)

// Recv suspends via aw until ch has a packet ready, then returns it. Using
// this instead of calling ch.Recv() directly keeps the coroutine's
// suspension point visible to the runtime's scheduling discipline (one
// resumption per pass) instead of blocking the underlying goroutine
// directly on the channel's queue.
func Recv(aw *coroutine.Awaiter, ch netio.Channel) (*serialize.Packet, error) {
	aw.Predicate(ch.HasData)
	return ch.Recv()
}

// Send writes p to ch. Sending never blocks on the remote side in scl's
// channel model, so there is nothing to suspend on.
func Send(ch netio.Channel, p *serialize.Packet) error {
	return ch.Send(p)
}
