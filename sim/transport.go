package sim

import (
	"sync"

	"github.com/scl-mpc/scl/serialize"
	"golang.org/x/exp/maps"
)

// pending is one queued delivery on a channel: a concrete packet, or an
// index into shared, for a packet that may still be awaited by other
// receivers.
type pending struct {
	packet  *serialize.Packet
	index   int
	isIndex bool
}

// pooledPacket is a packet shared across multiple pending receive
// deliveries, with a count of how many deliveries still reference it.
type pooledPacket struct {
	packet *serialize.Packet
	count  int
}

// Transport is the shared substrate every simulated channel sends and
// receives through, per §4.12. Send stores its own copy of the packet on
// every call; SendShared stores a packet handed to several recipients
// (e.g. one buffer broadcast to every party) only once.
type Transport struct {
	mu       sync.Mutex
	channels map[ChannelID][]pending
	pool     []pooledPacket
}

// NewTransport creates an empty Transport.
func NewTransport() *Transport {
	return &Transport{channels: make(map[ChannelID][]pending)}
}

func clonePacket(p *serialize.Packet) *serialize.Packet {
	clone := serialize.NewPacket(p.Size())
	clone.AppendRaw(p.Bytes())
	clone.ResetReadPtr()
	return clone
}

// Send delivers packet on cid, queuing it for the flipped channel (the
// recipient's own view of the same pairwise link). The transport keeps its
// own copy, decoupled from the caller's packet.
func (t *Transport) Send(cid ChannelID, packet *serialize.Packet) {
	t.mu.Lock()
	defer t.mu.Unlock()
	dest := cid.Flip()
	t.channels[dest] = append(t.channels[dest], pending{packet: clonePacket(packet)})
}

// SendShared is like Send, but packet is understood to possibly be handed
// to several channels from the same call site (e.g. broadcasting one
// buffer to every party); the transport stores the bytes once in a shared
// pool and hands out independent copies on receive, matching the
// refcounted "packet_copy" path of §4.12.
func (t *Transport) SendShared(cid ChannelID, packet *serialize.Packet, poolIndex *int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	dest := cid.Flip()
	if *poolIndex < 0 {
		t.pool = append(t.pool, pooledPacket{packet: clonePacket(packet), count: 0})
		*poolIndex = len(t.pool) - 1
	}
	t.pool[*poolIndex].count++
	t.channels[dest] = append(t.channels[dest], pending{index: *poolIndex, isIndex: true})
}

// HasData reports whether a Recv on cid would return immediately.
func (t *Transport) HasData(cid ChannelID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.channels[cid]) > 0
}

// Recv pops and returns the next packet queued for cid. It must only be
// called when HasData(cid) is true.
func (t *Transport) Recv(cid ChannelID) *serialize.Packet {
	t.mu.Lock()
	defer t.mu.Unlock()
	queue := t.channels[cid]
	head := queue[0]
	t.channels[cid] = queue[1:]

	if !head.isIndex {
		return head.packet
	}

	entry := &t.pool[head.index]
	entry.count--
	return clonePacket(entry.packet)
}

// PendingChannels returns the channel ids that currently have at least one
// queued delivery waiting to be received, for diagnostics and tests.
func (t *Transport) PendingChannels() []ChannelID {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]ChannelID, 0, len(t.channels))
	for _, cid := range maps.Keys(t.channels) {
		if len(t.channels[cid]) > 0 {
			out = append(out, cid)
		}
	}
	return out
}
