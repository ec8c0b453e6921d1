package protocol

import "github.com/scl-mpc/scl/netio"

// ChannelNetwork is the straightforward Network implementation: a fixed set
// of channels indexed by party id, as seen by party myID.
type ChannelNetwork struct {
	myID       int
	numParties int
	channels   map[int]netio.Channel
}

// NewChannelNetwork builds a Network for myID, out of numParties total
// parties, from a map of peer id to channel. myID need not have an entry
// (a party does not dial itself through the same map it uses to reach
// others, unless a loopback channel is supplied for it).
func NewChannelNetwork(myID, numParties int, channels map[int]netio.Channel) *ChannelNetwork {
	return &ChannelNetwork{myID: myID, numParties: numParties, channels: channels}
}

func (n *ChannelNetwork) Party(id int) netio.Channel { return n.channels[id] }
func (n *ChannelNetwork) MyID() int                  { return n.myID }
func (n *ChannelNetwork) NumParties() int            { return n.numParties }
