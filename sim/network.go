package sim

import "github.com/scl-mpc/scl/netio"

// Network is the protocol.Network implementation used during simulations:
// party id's view of every other party, each channel backed by the
// shared Context/Transport.
type Network struct {
	id       int
	ctx      *Context
	channels map[int]*Channel
}

// NewNetwork builds the simulated network view for party id.
func NewNetwork(id int, ctx *Context) *Network {
	view := ctx.View(id)
	channels := make(map[int]*Channel, ctx.NumParties())
	for j := 0; j < ctx.NumParties(); j++ {
		channels[j] = NewChannel(ChannelID{Local: id, Remote: j}, view, ctx.Transport())
	}
	return &Network{id: id, ctx: ctx, channels: channels}
}

// Party returns the channel id uses to talk to party.
func (n *Network) Party(party int) netio.Channel { return n.channels[party] }

// MyID returns id's own party id.
func (n *Network) MyID() int { return n.id }

// NumParties returns the total number of parties in the simulation.
func (n *Network) NumParties() int { return n.ctx.NumParties() }
