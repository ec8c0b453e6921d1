package netio

import (
	"testing"
	"time"

	"github.com/scl-mpc/scl/serialize"
	"github.com/stretchr/testify/require"
)

func packetWithByte(b byte) *serialize.Packet {
	p := serialize.NewPacket(0)
	serialize.WriteTo(p, b, serialize.ByteSerializer{})
	return p
}

func TestLoopbackEchoesToItself(t *testing.T) {
	l := NewLoopback()
	require.False(t, l.HasData())

	require.NoError(t, l.Send(packetWithByte(7)))
	require.True(t, l.HasData())

	got, err := l.Recv()
	require.NoError(t, err)
	v, err := serialize.ReadFrom(got, serialize.ByteSerializer{})
	require.NoError(t, err)
	require.Equal(t, byte(7), v)
}

func TestPairedLoopbackCrossesOver(t *testing.T) {
	a, b := NewPairedLoopback()

	require.NoError(t, a.Send(packetWithByte(1)))
	require.True(t, b.HasData())
	require.False(t, a.HasData())

	got, err := b.Recv()
	require.NoError(t, err)
	v, err := serialize.ReadFrom(got, serialize.ByteSerializer{})
	require.NoError(t, err)
	require.Equal(t, byte(1), v)
}

func TestPairedLoopbackBothDirections(t *testing.T) {
	a, b := NewPairedLoopback()

	require.NoError(t, a.Send(packetWithByte(9)))
	require.NoError(t, b.Send(packetWithByte(10)))

	got, err := b.Recv()
	require.NoError(t, err)
	v, _ := serialize.ReadFrom(got, serialize.ByteSerializer{})
	require.Equal(t, byte(9), v)

	got, err = a.Recv()
	require.NoError(t, err)
	v, _ = serialize.ReadFrom(got, serialize.ByteSerializer{})
	require.Equal(t, byte(10), v)
}

func TestRecvBlocksUntilSend(t *testing.T) {
	a, b := NewPairedLoopback()
	done := make(chan struct{})

	go func() {
		got, err := b.Recv()
		require.NoError(t, err)
		v, _ := serialize.ReadFrom(got, serialize.ByteSerializer{})
		require.Equal(t, byte(42), v)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, a.Send(packetWithByte(42)))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Recv did not unblock after Send")
	}
}

func TestCloseUnblocksRecv(t *testing.T) {
	l := NewLoopback()
	done := make(chan struct{})

	go func() {
		p, err := l.Recv()
		require.NoError(t, err)
		require.Nil(t, p)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, l.Close())

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Recv did not unblock after Close")
	}
}
