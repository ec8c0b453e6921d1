package protocol

import (
	"testing"

	"github.com/scl-mpc/scl/coroutine"
	"github.com/scl-mpc/scl/netio"
	"github.com/scl-mpc/scl/serialize"
	"github.com/stretchr/testify/require"
)

// echoStep sends its own party id to the peer, then receives the peer's id
// back, and produces it as output.
type echoStep struct {
	peer int
}

func (e *echoStep) Name() string { return "Echo" }

func (e *echoStep) Run(aw *coroutine.Awaiter, env *Env) (Result, error) {
	ch := env.Network.Party(e.peer)
	out := serialize.NewPacket(64)
	serialize.WriteTo(out, uint32(env.Network.MyID()), serialize.Uint32Serializer{})
	if err := Send(ch, out); err != nil {
		return Result{}, err
	}
	in, err := Recv(aw, ch)
	if err != nil {
		return Result{}, err
	}
	id, err := serialize.ReadFrom(in, serialize.Uint32Serializer{})
	if err != nil {
		return Result{}, err
	}
	return Done(int(id)), nil
}

type incrementStep struct {
	base int
}

func (s *incrementStep) Name() string { return "Increment" }

func (s *incrementStep) Run(aw *coroutine.Awaiter, env *Env) (Result, error) {
	return Done(s.base + 1), nil
}

func twoPartyEnv(t *testing.T) (*Env, *Env, *coroutine.Runtime) {
	t.Helper()
	chA, chB := netio.NewPairedLoopback()
	rt := coroutine.NewRuntime(nil)
	envA := &Env{Network: NewChannelNetwork(0, 2, map[int]netio.Channel{1: chA})}
	envB := &Env{Network: NewChannelNetwork(1, 2, map[int]netio.Channel{0: chB})}
	return envA, envB, rt
}

func TestEvaluateTypedEchoesPeerID(t *testing.T) {
	envA, envB, rt := twoPartyEnv(t)

	taskA := EvaluateTyped[int](rt, &echoStep{peer: 1}, envA)
	taskB := EvaluateTyped[int](rt, &echoStep{peer: 0}, envB)

	rt.Run(func() bool { return taskA.Done() && taskB.Done() })

	gotA, err := taskA.Result()
	require.NoError(t, err)
	require.Equal(t, 1, gotA)

	gotB, err := taskB.Result()
	require.NoError(t, err)
	require.Equal(t, 0, gotB)
}

func TestEvaluateDeliversIntermediateOutputs(t *testing.T) {
	rt := coroutine.NewRuntime(nil)
	env := &Env{Network: NewChannelNetwork(0, 1, map[int]netio.Channel{})}

	seq := NewSequence("count-up", []Protocol{
		&incrementStep{base: 0},
		&incrementStep{base: 1},
		&incrementStep{base: 2},
	})

	var outputs []any
	task := Evaluate(rt, seq, env, func(v any) { outputs = append(outputs, v) })
	rt.Run(task.Done)

	_, err := task.Result()
	require.NoError(t, err)
	require.Equal(t, []any{1, 2, 3}, outputs)
}

func TestEvaluateTypedFailsWithoutOutput(t *testing.T) {
	rt := coroutine.NewRuntime(nil)
	env := &Env{Network: NewChannelNetwork(0, 1, map[int]netio.Channel{})}

	noop := NewSequence("noop", nil)
	task := EvaluateTyped[int](rt, noop, env)
	rt.Run(task.Done)

	_, err := task.Result()
	require.Error(t, err)
}
