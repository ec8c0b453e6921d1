// Package netio implements scl's channel abstraction: the Channel
// interface two parties communicate over, and in-memory Loopback/
// PairedLoopback implementations used by tests and by a party talking to
// itself.
package netio

import (
	"sync"

	"github.com/scl-mpc/scl/serialize"
)

// Channel is the interface a protocol's network environment sends and
// receives packets over. Recv blocks until a packet is available or the
// channel is closed.
type Channel interface {
	// Close releases any resources held by the channel. Further Send
	// calls after Close are undefined.
	Close() error

	// Send enqueues p for the remote party. It does not block on the
	// remote actually reading it.
	Send(p *serialize.Packet) error

	// Recv blocks until a packet is available and returns it.
	Recv() (*serialize.Packet, error)

	// HasData reports whether Recv would return immediately.
	HasData() bool
}

// queue is an unbounded FIFO of packets guarded by a mutex/condition
// variable, the shared substrate both Loopback and PairedLoopback use for
// their in and out buffers.
type queue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  []*serialize.Packet
	closed bool
}

func newQueue() *queue {
	q := &queue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

func (q *queue) push(p *serialize.Packet) {
	q.mu.Lock()
	q.items = append(q.items, p)
	q.cond.Signal()
	q.mu.Unlock()
}

func (q *queue) pop() *serialize.Packet {
	q.mu.Lock()
	for len(q.items) == 0 && !q.closed {
		q.cond.Wait()
	}
	var p *serialize.Packet
	if len(q.items) > 0 {
		p = q.items[0]
		q.items = q.items[1:]
	}
	q.mu.Unlock()
	return p
}

func (q *queue) hasData() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items) > 0
}

func (q *queue) close() {
	q.mu.Lock()
	q.closed = true
	q.cond.Broadcast()
	q.mu.Unlock()
}

// Loopback is a Channel that receives anything it sends, useful for a
// party that talks with itself.
type Loopback struct {
	buf *queue
}

// NewLoopback creates a self-connected Channel.
func NewLoopback() *Loopback {
	return &Loopback{buf: newQueue()}
}

func (l *Loopback) Close() error { l.buf.close(); return nil }

func (l *Loopback) Send(p *serialize.Packet) error {
	l.buf.push(p)
	return nil
}

func (l *Loopback) Recv() (*serialize.Packet, error) {
	return l.buf.pop(), nil
}

func (l *Loopback) HasData() bool { return l.buf.hasData() }

// pairedEnd is one side of a PairedLoopback pair: it sends into the
// peer's inbound queue and receives from its own.
type pairedEnd struct {
	in  *queue
	out *queue
}

func (c *pairedEnd) Close() error { c.in.close(); return nil }

func (c *pairedEnd) Send(p *serialize.Packet) error {
	c.out.push(p)
	return nil
}

func (c *pairedEnd) Recv() (*serialize.Packet, error) {
	return c.in.pop(), nil
}

func (c *pairedEnd) HasData() bool { return c.in.hasData() }

// NewPairedLoopback creates two connected Channels such that anything sent
// on one can be received on the other, and vice versa.
func NewPairedLoopback() (Channel, Channel) {
	a, b := newQueue(), newQueue()
	return &pairedEnd{in: a, out: b}, &pairedEnd{in: b, out: a}
}
