package prg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeterministicForSameSeed(t *testing.T) {
	a, err := New([]byte("0123456789abcdef"))
	require.NoError(t, err)
	b, err := New([]byte("0123456789abcdef"))
	require.NoError(t, err)

	require.Equal(t, a.NextN(100), b.NextN(100))
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a, err := New([]byte("0123456789abcdef"))
	require.NoError(t, err)
	b, err := New([]byte("fedcba9876543210"))
	require.NoError(t, err)

	require.NotEqual(t, a.NextN(32), b.NextN(32))
}

func TestResetReproducesSequence(t *testing.T) {
	p, err := New([]byte("0123456789abcdef"))
	require.NoError(t, err)

	first := p.NextN(64)
	p.Reset()
	second := p.NextN(64)

	require.Equal(t, first, second)
}

func TestNextAdvancesAcrossCalls(t *testing.T) {
	p, err := New([]byte("0123456789abcdef"))
	require.NoError(t, err)

	whole := p.NextN(32)

	p.Reset()
	first := p.NextN(16)
	second := p.NextN(16)

	require.Equal(t, whole, append(first, second...))
}

func TestSeedShorterThanBlockIsZeroPadded(t *testing.T) {
	a, err := New([]byte("short"))
	require.NoError(t, err)
	var padded [SeedSize]byte
	copy(padded[:], "short")
	b, err := New(padded[:])
	require.NoError(t, err)

	require.Equal(t, a.NextN(32), b.NextN(32))
}

func TestZeroSeeded(t *testing.T) {
	a := NewZeroSeeded()
	b, err := New(nil)
	require.NoError(t, err)

	require.Equal(t, a.NextN(16), b.NextN(16))
}

func TestNonBlockAlignedLength(t *testing.T) {
	p, err := New([]byte("0123456789abcdef"))
	require.NoError(t, err)

	out := p.NextN(17)
	require.Len(t, out, 17)
}
