package sim

import (
	"sync"
	"time"
)

// Hook reacts to events produced during a simulation; it can be used for
// custom logging, or to terminate a party (or the whole simulation) early
// through the SimulationContext it is given.
type Hook interface {
	Run(partyID int, ctx SimulationContext)
}

// HookFunc adapts a plain function to Hook.
type HookFunc func(partyID int, ctx SimulationContext)

// Run implements Hook.
func (f HookFunc) Run(partyID int, ctx SimulationContext) { f(partyID, ctx) }

// TriggerHook pairs a Hook with the event type that should run it. A nil
// Trigger means "run on every event".
type TriggerHook struct {
	Trigger *EventType
	Hook    Hook
}

// OnEvent builds a TriggerHook that only fires for events of type t.
func OnEvent(t EventType, h Hook) TriggerHook {
	trigger := t
	return TriggerHook{Trigger: &trigger, Hook: h}
}

// OnAnyEvent builds a TriggerHook that fires for every event.
func OnAnyEvent(h Hook) TriggerHook {
	return TriggerHook{Hook: h}
}

// Context is the global state shared by every party in one simulation run:
// event traces, pending-send timestamps keyed by channel, each party's
// virtual clock, which parties are mid-receive from whom, a cancellation
// bitmap, the registered hooks, and the packet transport. It plays the
// role of the original's GlobalContext, with LocalContext folded into the
// PartyView type below (Go has no nested-class equivalent worth the
// indirection here).
type Context struct {
	mu sync.Mutex

	numParties int
	netConfig  NetworkConfig
	transport  *Transport

	traces     []Trace
	sends      map[ChannelID][]time.Duration
	wallStart  []time.Time
	recvFrom   [][]bool
	cancelled  []bool
	hooks      []TriggerHook
}

// NewContext creates a Context for a simulation of numParties parties.
func NewContext(numParties int, netConfig NetworkConfig, hooks []TriggerHook) *Context {
	recvFrom := make([][]bool, numParties)
	for i := range recvFrom {
		recvFrom[i] = make([]bool, numParties)
	}
	return &Context{
		numParties: numParties,
		netConfig:  netConfig,
		transport:  NewTransport(),
		traces:     make([]Trace, numParties),
		sends:      make(map[ChannelID][]time.Duration),
		wallStart:  make([]time.Time, numParties),
		recvFrom:   recvFrom,
		cancelled:  make([]bool, numParties),
		hooks:      hooks,
	}
}

// NumParties returns the number of parties in the simulation.
func (c *Context) NumParties() int { return c.numParties }

// Transport returns the shared packet transport every simulated channel
// sends and receives through.
func (c *Context) Transport() *Transport { return c.transport }

// IsCancelled reports whether party has been cancelled. It is the
// function NewRuntime's isCancelled callback is built from. Out-of-range
// party ids (e.g. the driver task's synthetic id) are never cancelled.
func (c *Context) IsCancelled(party int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if party < 0 || party >= len(c.cancelled) {
		return false
	}
	return c.cancelled[party]
}

// Cancel marks party as cancelled; its suspended coroutine bodies will
// never be resumed again.
func (c *Context) Cancel(party int) {
	c.mu.Lock()
	c.cancelled[party] = true
	c.mu.Unlock()
}

// CancelAll cancels every party, stopping the simulation.
func (c *Context) CancelAll() {
	c.mu.Lock()
	for i := range c.cancelled {
		c.cancelled[i] = true
	}
	c.mu.Unlock()
}

// Trace returns a snapshot of party's event trace so far.
func (c *Context) Trace(party int) Trace {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(Trace, len(c.traces[party]))
	copy(out, c.traces[party])
	return out
}

// View returns party's mutable view of this context.
func (c *Context) View(party int) *PartyView {
	return &PartyView{id: party, ctx: c}
}

func (c *Context) runHooks(partyID int, evtType EventType) {
	for _, th := range c.hooks {
		if th.Trigger != nil && *th.Trigger != evtType {
			continue
		}
		th.Hook.Run(partyID, SimulationContext{id: partyID, ctx: c})
	}
}

// PartyView is a single party's mutable window into a Context: recording
// its own events, tracking its own virtual clock, and bookkeeping the
// sends it has issued or is currently receiving.
type PartyView struct {
	id  int
	ctx *Context
}

// ID returns the party id this view belongs to.
func (v *PartyView) ID() int { return v.id }

// RecordEvent appends e to this party's trace and runs any hooks it
// triggers. Hooks run after the event has been appended, so they may
// safely assume the party's trace is non-empty.
func (v *PartyView) RecordEvent(e Event) {
	v.ctx.mu.Lock()
	v.ctx.traces[v.id] = append(v.ctx.traces[v.id], e)
	v.ctx.mu.Unlock()
	v.ctx.runHooks(v.id, e.Type)
}

// LastEventTimestamp returns the timestamp of the most recently recorded
// event, or zero if none has been recorded yet.
func (v *PartyView) LastEventTimestamp() time.Duration {
	v.ctx.mu.Lock()
	defer v.ctx.mu.Unlock()
	tr := v.ctx.traces[v.id]
	if len(tr) == 0 {
		return 0
	}
	return tr[len(tr)-1].Timestamp
}

// StartClock checkpoints the wall-clock time against which subsequent
// ElapsedTime reads are measured. It must be called whenever the party
// starts doing "real work" after being resumed — at the top of each
// protocol step, and just before a simulated channel's Send/Recv/HasData
// returns — so that only the wall time the party actually spent executing
// counts toward its virtual clock.
func (v *PartyView) StartClock() {
	v.ctx.mu.Lock()
	v.ctx.wallStart[v.id] = time.Now()
	v.ctx.mu.Unlock()
}

// ElapsedTime returns the party's current virtual time: the timestamp of
// its last event, plus the wall-clock time elapsed since StartClock was
// last called.
func (v *PartyView) ElapsedTime() time.Duration {
	last := v.LastEventTimestamp()
	v.ctx.mu.Lock()
	start := v.ctx.wallStart[v.id]
	v.ctx.mu.Unlock()
	if start.IsZero() {
		return last
	}
	return last + time.Since(start)
}

// CurrentTimeOf returns the virtual time of some other party.
func (v *PartyView) CurrentTimeOf(other int) time.Duration {
	return v.ctx.View(other).ElapsedTime()
}

// Send records that this party sent to receiver at timestamp (its elapsed
// time when the send happened), so a later Recv on the other side can
// compute the delivery delay.
func (v *PartyView) Send(receiver int, timestamp time.Duration) {
	cid := ChannelID{Local: v.id, Remote: receiver}
	v.ctx.mu.Lock()
	v.ctx.sends[cid] = append(v.ctx.sends[cid], timestamp)
	v.ctx.mu.Unlock()
}

// popSendTimestamp pops the oldest pending send timestamp that sender
// recorded for a message to this party.
func (v *PartyView) popSendTimestamp(sender int) (time.Duration, bool) {
	cid := ChannelID{Local: sender, Remote: v.id}
	v.ctx.mu.Lock()
	defer v.ctx.mu.Unlock()
	q := v.ctx.sends[cid]
	if len(q) == 0 {
		return 0, false
	}
	v.ctx.sends[cid] = q[1:]
	return q[0], true
}

// Recv computes the delivery time for an nbytes message received from
// sender, given this party's current elapsed time, per §4.13: the later
// of "now" and "when the message would arrive given the configured
// network conditions for the channel". It does not itself suspend or
// touch the transport — callers pop the packet from the Transport
// separately.
func (v *PartyView) Recv(sender int, nbytes int) time.Duration {
	sendTS, ok := v.popSendTimestamp(sender)
	if !ok {
		sendTS = 0
	}
	cfg := v.ctx.netConfig.ConfigFor(ChannelID{Local: v.id, Remote: sender})
	delay := ComputeRecvTime(cfg, nbytes)
	arrival := sendTS + delay
	now := v.ElapsedTime()
	if now > arrival {
		return now
	}
	return arrival
}

// RecvStart marks this party as currently in the process of receiving
// from sender.
func (v *PartyView) RecvStart(sender int) {
	v.ctx.mu.Lock()
	v.ctx.recvFrom[v.id][sender] = true
	v.ctx.mu.Unlock()
}

// RecvDone clears the in-process-of-receiving marker set by RecvStart.
func (v *PartyView) RecvDone(sender int) {
	v.ctx.mu.Lock()
	v.ctx.recvFrom[v.id][sender] = false
	v.ctx.mu.Unlock()
}

// Receiving reports whether this party is currently receiving from
// sender.
func (v *PartyView) Receiving(sender int) bool {
	v.ctx.mu.Lock()
	defer v.ctx.mu.Unlock()
	return v.ctx.recvFrom[v.id][sender]
}

// Dead reports whether party has been cancelled.
func (v *PartyView) Dead(party int) bool { return v.ctx.IsCancelled(party) }

// NetworkConfig returns the configured network parameters for cid.
func (v *PartyView) NetworkConfig(cid ChannelID) ChannelConfig {
	return v.ctx.netConfig.ConfigFor(cid)
}

// SimulationContext returns the read-mostly view of the simulation that
// hooks are given.
func (v *PartyView) SimulationContext() SimulationContext {
	return SimulationContext{id: v.id, ctx: v.ctx}
}

// SimulationContext is the read-mostly view of a running simulation passed
// to hooks: it can read traces and times, and cancel parties (or the
// whole simulation), but cannot otherwise mutate state.
type SimulationContext struct {
	id  int
	ctx *Context
}

// Trace returns party's event trace so far.
func (s SimulationContext) Trace(party int) Trace { return s.ctx.Trace(party) }

// CurrentTimeOf returns party's current virtual time.
func (s SimulationContext) CurrentTimeOf(party int) time.Duration {
	return s.ctx.View(party).ElapsedTime()
}

// Dead reports whether party has been cancelled.
func (s SimulationContext) Dead(party int) bool { return s.ctx.IsCancelled(party) }

// Cancel stops party. Cancelling the party the hook is running for takes
// effect at that party's next suspension point, same as cancelling any
// other party — unlike the original, which unwinds the caller immediately
// via an exception when it cancels itself; a hook here is a plain
// synchronous call; it has no coroutine body to unwind.
func (s SimulationContext) Cancel(party int) {
	s.ctx.Cancel(party)
}

// CancelSimulation stops every party in the simulation.
func (s SimulationContext) CancelSimulation() {
	s.ctx.CancelAll()
}
