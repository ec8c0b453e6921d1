package ring2k

import (
	"math/big"
	"testing"

	"github.com/scl-mpc/scl/algebra"
	"github.com/scl-mpc/scl/field"
	"github.com/stretchr/testify/require"
)

func TestArithmeticWraps(t *testing.T) {
	a := New(8, 200)
	b := New(8, 100)
	sum := a.Add(b) // 300 mod 256 = 44
	require.Equal(t, "44", sum.String())

	diff := b.Sub(a) // 100 - 200 = -100 mod 256 = 156
	require.Equal(t, "156", diff.String())
}

func TestInverseOfOddElement(t *testing.T) {
	for _, k := range []int{8, 16, 32, 63, 64, 65, 128} {
		a := New(k, 12345|1) // force odd
		inv, err := a.Inverse()
		require.NoError(t, err)
		require.True(t, a.Mul(inv).Equal(a.One()), "k=%d", k)
	}
}

func TestEvenElementHasNoInverse(t *testing.T) {
	a := New(16, 2)
	_, err := a.Inverse()
	require.Error(t, err)
}

func TestByteRoundTrip(t *testing.T) {
	a := New(37, 123456789)
	data := a.Bytes()
	require.Equal(t, 5, len(data)) // ceil(37/8) = 5
	got := a.FromBytes(data)
	require.True(t, a.Equal(got))
}

func TestFromBigIntMasks(t *testing.T) {
	big300 := big.NewInt(300)
	a := FromBigInt(8, big300)
	require.Equal(t, "44", a.String())
}

func TestStringRoundTrip(t *testing.T) {
	a := New(16, 4660) // 0x1234
	s := a.String()
	zero := a.Zero()
	got, err := zero.FromString(s, field.Decimal)
	require.NoError(t, err)
	require.True(t, a.Equal(got))

	hex, err := zero.FromString("1234", field.Hex)
	require.NoError(t, err)
	require.True(t, a.Equal(hex))
}

func TestMismatchedWidthPanics(t *testing.T) {
	a := New(8, 1)
	b := New(16, 1)
	require.Panics(t, func() { a.Add(b) })
}

func TestRing64Inverse(t *testing.T) {
	a := NewRing64(1<<30 + 7) // odd
	inv, err := a.Inverse()
	require.NoError(t, err)
	require.Equal(t, Ring64(1), a.Mul(inv))
}

func TestRing64EvenHasNoInverse(t *testing.T) {
	a := NewRing64(8)
	_, err := a.Inverse()
	require.Error(t, err)
}

func TestRing64ByteRoundTrip(t *testing.T) {
	a := NewRing64(123456789)
	got := a.FromBytes(a.Bytes())
	require.True(t, a.Equal(got))
}

func TestRing32Inverse(t *testing.T) {
	a := NewRing32(12345)
	inv, err := a.Inverse()
	require.NoError(t, err)
	require.Equal(t, Ring32(1), a.Mul(inv))
}

func TestRing32Wraparound(t *testing.T) {
	a := Ring32(4294967295) // 2^32 - 1 = -1
	one := NewRing32(1)
	require.Equal(t, Ring32(0), a.Add(one))
}

func TestRing64WorksAsAlgebraElement(t *testing.T) {
	v := algebra.VectorFromSlice([]Ring64{NewRing64(1), NewRing64(2), NewRing64(3)})
	sum, err := v.Add(algebra.VectorFromSlice([]Ring64{NewRing64(10), NewRing64(20), NewRing64(30)}))
	require.NoError(t, err)
	require.True(t, sum.Equal(algebra.VectorFromSlice([]Ring64{NewRing64(11), NewRing64(22), NewRing64(33)})))

	m := algebra.Identity[Ring64](3)
	prod, err := m.MatVec(v)
	require.NoError(t, err)
	require.True(t, prod.Equal(v))
}
