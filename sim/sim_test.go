package sim

import (
	"testing"

	"github.com/scl-mpc/scl/coroutine"
	"github.com/scl-mpc/scl/protocol"
	"github.com/scl-mpc/scl/serialize"
	"github.com/stretchr/testify/require"
)

// echoStep sends this party's id to peer and receives peer's id back,
// producing it as output.
type echoStep struct {
	peer int
}

func (e *echoStep) Name() string { return "Echo" }

func (e *echoStep) Run(aw *coroutine.Awaiter, env *protocol.Env) (protocol.Result, error) {
	ch := env.Network.Party(e.peer)
	out := serialize.NewPacket(64)
	serialize.WriteTo(out, uint32(env.Network.MyID()), serialize.Uint32Serializer{})
	if err := protocol.Send(ch, out); err != nil {
		return protocol.Result{}, err
	}
	in, err := protocol.Recv(aw, ch)
	if err != nil {
		return protocol.Result{}, err
	}
	id, err := serialize.ReadFrom(in, serialize.Uint32Serializer{})
	if err != nil {
		return protocol.Result{}, err
	}
	return protocol.Done(int(id)), nil
}

type echoManager struct {
	BaseManager
	outputs map[int]any
	traces  map[int]Trace
}

func newEchoManager() *echoManager {
	return &echoManager{outputs: make(map[int]any), traces: make(map[int]Trace)}
}

func (m *echoManager) Protocol() []protocol.Protocol {
	return []protocol.Protocol{
		&echoStep{peer: 1},
		&echoStep{peer: 0},
	}
}

func (m *echoManager) HandleProtocolOutput(partyID int, output any) {
	m.outputs[partyID] = output
}

func (m *echoManager) HandleSimulatorOutput(partyID int, trace Trace) {
	m.traces[partyID] = trace
}

func TestSimulateEchoesPeerIDAndRecordsTrace(t *testing.T) {
	m := newEchoManager()
	Simulate(m)

	require.Equal(t, 1, m.outputs[0])
	require.Equal(t, 0, m.outputs[1])

	require.NotEmpty(t, m.traces[0])
	require.Equal(t, Start, m.traces[0][0].Type)
	require.Equal(t, Stop, m.traces[0][len(m.traces[0])-1].Type)

	var sawSend, sawRecv bool
	for _, e := range m.traces[0] {
		if e.Type == Send {
			sawSend = true
		}
		if e.Type == Recv {
			sawRecv = true
		}
	}
	require.True(t, sawSend)
	require.True(t, sawRecv)
}

func TestSimulateHookCanCancelOtherParty(t *testing.T) {
	m := newEchoManager()
	cancelled := false
	m.AddHook(OnEvent(Stop, HookFunc(func(partyID int, ctx SimulationContext) {
		if partyID == 0 {
			ctx.Cancel(1)
			cancelled = true
		}
	})))

	Simulate(m)

	require.True(t, cancelled)
}

func TestChannelIDFlip(t *testing.T) {
	cid := ChannelID{Local: 0, Remote: 1}
	require.Equal(t, ChannelID{Local: 1, Remote: 0}, cid.Flip())
}

func TestComputeRecvTimeLoopbackIsInstant(t *testing.T) {
	require.Equal(t, int64(0), int64(ComputeRecvTime(LoopbackChannelConfig(), 1024)))
}

func TestComputeRecvTimeGrowsWithSize(t *testing.T) {
	cfg := DefaultChannelConfig()
	small := ComputeRecvTime(cfg, 64)
	large := ComputeRecvTime(cfg, 1_000_000)
	require.Greater(t, large, small)
}

func TestComputeRecvTimeWithLossIsSlower(t *testing.T) {
	cfg := DefaultChannelConfig()
	noLoss := ComputeRecvTime(cfg, 100_000)

	lossy := cfg
	lossy.PacketLoss = 0.05
	withLoss := ComputeRecvTime(lossy, 100_000)

	require.GreaterOrEqual(t, withLoss, noLoss)
}

func TestTransportPendingChannelsTracksQueuedDeliveries(t *testing.T) {
	transport := NewTransport()
	cid := ChannelID{Local: 0, Remote: 1}

	require.Empty(t, transport.PendingChannels())

	packet := serialize.NewPacket(8)
	serialize.WriteTo(packet, uint32(7), serialize.Uint32Serializer{})
	transport.Send(cid, packet)

	require.Equal(t, []ChannelID{cid.Flip()}, transport.PendingChannels())

	transport.Recv(cid.Flip())
	require.Empty(t, transport.PendingChannels())
}

func TestStatsHookSummarizesAcrossReplications(t *testing.T) {
	hook := NewStatsHook(2)
	for i := 0; i < 3; i++ {
		m := newEchoManager()
		m.AddHook(OnEvent(Stop, hook))
		Simulate(m)
	}

	summary, err := hook.Summary(0)
	require.NoError(t, err)
	require.GreaterOrEqual(t, summary.Mean, 0.0)
}
