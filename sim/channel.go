package sim

import (
	"github.com/scl-mpc/scl/serialize"
)

// Channel is the netio.Channel implementation used during simulations. It
// never blocks: HasData reports the transport's current state directly,
// Send hands its packet straight to the transport, and Recv (which
// protocol.Recv only calls once HasData has returned true) computes the
// simulated delivery delay and reports the packet as arriving then.
type Channel struct {
	cid       ChannelID
	view      *PartyView
	transport *Transport
}

// NewChannel builds the simulated channel party view.id uses to talk to
// cid.Remote.
func NewChannel(cid ChannelID, view *PartyView, transport *Transport) *Channel {
	return &Channel{cid: cid, view: view, transport: transport}
}

// Close records a CLOSE event. The transport itself needs no explicit
// teardown.
func (c *Channel) Close() error {
	c.view.RecordEvent(EventClose(c.view.ElapsedTime(), c.cid))
	return nil
}

// Send hands packet to the transport for the remote party to receive,
// records a SEND event, and records the send timestamp so the eventual
// Recv on the other side can compute its delivery delay. It never
// suspends.
func (c *Channel) Send(packet *serialize.Packet) error {
	ts := c.view.ElapsedTime()
	amount := packet.Size()
	c.transport.Send(c.cid, packet)
	c.view.Send(c.cid.Remote, ts)
	c.view.RecordEvent(EventSend(ts, c.cid, amount))
	c.view.StartClock()
	return nil
}

// HasData reports whether the transport has a packet queued for this
// channel. A HAS_DATA event is only recorded once data is actually
// available, rather than on every poll of what is typically awaited in a
// retry loop.
func (c *Channel) HasData() bool {
	has := c.transport.HasData(c.cid)
	if has {
		c.view.RecordEvent(EventHasData(c.view.ElapsedTime(), c.cid))
		c.view.StartClock()
	}
	return has
}

// Recv pops the next packet queued for this channel and reports it as
// having arrived at the delay §4.13 prescribes for the channel's
// configured network conditions, recording a RECV event at that arrival
// time and resetting the party's virtual clock so that subsequent work
// begins from there. Callers must only call Recv once HasData is true.
func (c *Channel) Recv() (*serialize.Packet, error) {
	c.view.RecvStart(c.cid.Remote)
	packet := c.transport.Recv(c.cid)
	arrival := c.view.Recv(c.cid.Remote, packet.Size())
	c.view.RecvDone(c.cid.Remote)

	c.view.RecordEvent(EventRecv(arrival, c.cid, packet.Size()))
	c.view.StartClock()
	return packet, nil
}
