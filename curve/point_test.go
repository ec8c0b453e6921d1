package curve

import (
	"testing"

	"github.com/scl-mpc/scl/field"
	"github.com/stretchr/testify/require"
)

func TestGeneratorIsOnCurve(t *testing.T) {
	g := Generator()
	x, y := g.Affine()
	_, err := FromAffine(x, y)
	require.NoError(t, err)
}

func TestAddInfinityIsIdentity(t *testing.T) {
	g := Generator()
	inf := Infinity()
	require.True(t, g.Add(inf).Equal(g))
	require.True(t, inf.Add(g).Equal(g))
}

func TestDoubleMatchesAdd(t *testing.T) {
	g := Generator()
	require.True(t, g.Add(g).Equal(g.Double()))
}

func TestAddInverseIsInfinity(t *testing.T) {
	g := Generator()
	require.True(t, g.Add(g.Neg()).Equal(Infinity()))
}

func TestScalarMulMatchesRepeatedAdd(t *testing.T) {
	g := Generator()
	sum := Infinity()
	for i := 0; i < 7; i++ {
		sum = sum.Add(g)
	}
	got := g.ScalarMul(field.NewSecp256k1Scalar(7))
	require.True(t, got.Equal(sum))
}

func TestScalarMulByZeroIsInfinity(t *testing.T) {
	g := Generator()
	got := g.ScalarMul(field.NewSecp256k1Scalar(0))
	require.True(t, got.IsInfinity())
}

func TestScalarMulDistributesOverAddition(t *testing.T) {
	g := Generator()
	a := field.NewSecp256k1Scalar(123)
	b := field.NewSecp256k1Scalar(456)
	lhs := g.ScalarMul(a.Add(b))
	rhs := g.ScalarMul(a).Add(g.ScalarMul(b))
	require.True(t, lhs.Equal(rhs))
}

func TestMarshalUnmarshalFull(t *testing.T) {
	g := Generator()
	data := g.MarshalFull()
	require.Equal(t, ByteSizeFull, len(data))
	got, err := Unmarshal(data)
	require.NoError(t, err)
	require.True(t, g.Equal(got))
}

func TestMarshalUnmarshalCompressed(t *testing.T) {
	g := Generator()
	data := g.MarshalCompressed()
	require.Equal(t, ByteSizeCompressed, len(data))
	got, err := Unmarshal(data)
	require.NoError(t, err)
	require.True(t, g.Equal(got))
}

func TestMarshalUnmarshalInfinity(t *testing.T) {
	inf := Infinity()
	data := inf.MarshalCompressed()
	got, err := Unmarshal(data)
	require.NoError(t, err)
	require.True(t, got.IsInfinity())

	// readers tolerate any tail bytes once the infinity flag is set
	got2, err := Unmarshal([]byte{0x02, 0xff, 0xff, 0xff})
	require.NoError(t, err)
	require.True(t, got2.IsInfinity())
}

func TestFromAffineRejectsOffCurvePoint(t *testing.T) {
	x := field.NewSecp256k1Field(1)
	y := field.NewSecp256k1Field(1)
	_, err := FromAffine(x, y)
	require.Error(t, err)
}
