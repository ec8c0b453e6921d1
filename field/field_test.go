package field

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// elt is the minimal contract exercised generically across all four fields,
// mirroring the teacher's table-driven-over-element-type test style
// (utils/structs/structs_test.go's testVector[T]/testMatrix[T]).
type elt[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Neg() T
	Equal(T) bool
	IsZero() bool
	Bytes() []byte
}

func testFieldLaws[T elt[T]](t *testing.T, a, b, zero, one T, fromBytes func([]byte) T) {
	t.Helper()

	require.True(t, a.Add(b).Equal(b.Add(a)), "commutative +")
	require.True(t, a.Mul(b).Equal(b.Mul(a)), "commutative *")
	require.True(t, a.Mul(one).Equal(a), "identity *")
	require.True(t, a.Add(zero).Equal(a), "identity +")
	require.True(t, a.Add(a.Neg()).Equal(zero), "additive inverse")

	data := a.Bytes()
	require.True(t, fromBytes(data).Equal(a), "byte round-trip")
}

func TestMersenne61Laws(t *testing.T) {
	a := NewMersenne61(123456789)
	b := NewMersenne61(987654321)
	testFieldLaws[Mersenne61](t, a, b, Mersenne61{}.Zero(), Mersenne61{}.One(),
		func(d []byte) Mersenne61 { return Mersenne61{}.FromBytes(d) })

	inv, err := a.Inverse()
	require.NoError(t, err)
	require.True(t, a.Mul(inv).Equal(Mersenne61{}.One()))

	_, err = Mersenne61{}.Inverse()
	require.Error(t, err)
}

func TestMersenne127Laws(t *testing.T) {
	a := NewMersenne127(123456789)
	b := NewMersenne127(987654321)
	testFieldLaws[Mersenne127](t, a, b, Mersenne127{}.Zero(), Mersenne127{}.One(),
		func(d []byte) Mersenne127 { return Mersenne127{}.FromBytes(d) })

	inv, err := a.Inverse()
	require.NoError(t, err)
	require.True(t, a.Mul(inv).Equal(Mersenne127{}.One()))
}

func TestSecp256k1FieldLaws(t *testing.T) {
	a := NewSecp256k1Field(12345)
	b := NewSecp256k1Field(67890)
	testFieldLaws[Secp256k1FieldElt](t, a, b, Secp256k1FieldElt{}.Zero(), Secp256k1FieldElt{}.One(),
		func(d []byte) Secp256k1FieldElt { return Secp256k1FieldElt{}.FromBytes(d) })

	inv, err := a.Inverse()
	require.NoError(t, err)
	require.True(t, a.Mul(inv).Equal(Secp256k1FieldElt{}.One()))
}

func TestSecp256k1ScalarLaws(t *testing.T) {
	a := NewSecp256k1Scalar(12345)
	b := NewSecp256k1Scalar(67890)
	testFieldLaws[Secp256k1ScalarElt](t, a, b, Secp256k1ScalarElt{}.Zero(), Secp256k1ScalarElt{}.One(),
		func(d []byte) Secp256k1ScalarElt { return Secp256k1ScalarElt{}.FromBytes(d) })
}

func TestFieldStringRoundTrip(t *testing.T) {
	for _, base := range []NumberBase{Decimal, Hex, Binary, Base64} {
		a := NewMersenne61(424242)
		s := fieldToString(&a.v, base)
		b, err := Mersenne61{}.FromString(s, base)
		require.NoError(t, err)
		require.True(t, a.Equal(b), "base %d round-trip", base)
	}
}

func TestSqrt(t *testing.T) {
	a := NewSecp256k1Field(16)
	root := a.Sqrt()
	require.True(t, root.Mul(root).Equal(a))
}
