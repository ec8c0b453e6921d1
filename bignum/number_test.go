package bignum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArithmetic(t *testing.T) {
	a := NewInt(17)
	b := NewInt(5)

	require.Equal(t, "22", new(Number).Add(a, b).String())
	require.Equal(t, "12", new(Number).Sub(a, b).String())
	require.Equal(t, "85", new(Number).Mul(a, b).String())
	require.Equal(t, "3", new(Number).Div(a, b).String())
	require.Equal(t, "2", new(Number).Mod(a, b).String())
}

func TestInverse(t *testing.T) {
	m := NewInt(7)
	a := NewInt(3)
	inv, err := new(Number).Inv(a, m)
	require.NoError(t, err)
	prod := new(Number).Mul(a, inv)
	require.Equal(t, int64(1), new(Number).Mod(prod, m).Int64())

	_, err = new(Number).Inv(NewInt(0), m)
	require.Error(t, err)
}

func TestHexRoundTrip(t *testing.T) {
	a := NewInt(0xdeadbeef)
	hex := a.ToHex()
	b, err := FromHex(hex)
	require.NoError(t, err)
	require.True(t, a.Equal(b))

	b2, err := FromHex("0x" + hex)
	require.NoError(t, err)
	require.True(t, a.Equal(b2))
}

func TestRandomBits(t *testing.T) {
	n, err := RandomBits(128)
	require.NoError(t, err)
	require.Equal(t, 128, n.BitLen())
}

func TestCopyIsIndependent(t *testing.T) {
	a := NewInt(5)
	b := Copy(a)
	b.Add(b, NewInt(1))
	require.Equal(t, int64(5), a.Int64())
	require.Equal(t, int64(6), b.Int64())
}
