package algebra

import (
	"testing"

	"github.com/scl-mpc/scl/field"
	"github.com/stretchr/testify/require"
)

func m61(x int) field.Mersenne61 { return field.NewMersenne61(x) }

func TestVectorOps(t *testing.T) {
	a := VectorFromSlice([]field.Mersenne61{m61(1), m61(2), m61(3)})
	b := VectorFromSlice([]field.Mersenne61{m61(4), m61(5), m61(6)})

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.True(t, sum.Equal(VectorFromSlice([]field.Mersenne61{m61(5), m61(7), m61(9)})))

	dot, err := a.Dot(b)
	require.NoError(t, err)
	require.True(t, dot.Equal(m61(1*4+2*5+3*6)))

	require.True(t, a.Sum().Equal(m61(6)))

	rng := Range[field.Mersenne61](2, 5)
	require.True(t, rng.Equal(VectorFromSlice([]field.Mersenne61{m61(2), m61(3), m61(4)})))
}

func TestVectorMarshalRoundTrip(t *testing.T) {
	v := VectorFromSlice([]field.Mersenne61{m61(10), m61(20), m61(30)})
	data, err := v.MarshalBinary()
	require.NoError(t, err)
	var v2 Vector[field.Mersenne61]
	require.NoError(t, v2.UnmarshalBinary(data))
	require.True(t, v.Equal(v2))
}

func TestMatrixOps(t *testing.T) {
	a, err := FromFlatSlice(2, 2, []field.Mersenne61{m61(1), m61(2), m61(3), m61(4)})
	require.NoError(t, err)

	id := Identity[field.Mersenne61](2)
	prod, err := a.MatMul(id)
	require.NoError(t, err)
	require.True(t, prod.Equal(a))

	tr := a.Transpose()
	require.True(t, tr.At(0, 1).Equal(m61(3)))
}

func TestMatrixMarshalRoundTrip(t *testing.T) {
	a, _ := FromFlatSlice(2, 3, []field.Mersenne61{m61(1), m61(2), m61(3), m61(4), m61(5), m61(6)})
	data, err := a.MarshalBinary()
	require.NoError(t, err)
	var b Matrix[field.Mersenne61]
	require.NoError(t, b.UnmarshalBinary(data))
	require.True(t, a.Equal(b))
}

func TestSolveLinearSystem(t *testing.T) {
	// 2x + y = 5; x + 3y = 10  =>  x = 1, y = 3
	a, _ := FromFlatSlice(2, 2, []field.Mersenne61{m61(2), m61(1), m61(1), m61(3)})
	b := VectorFromSlice([]field.Mersenne61{m61(5), m61(10)})

	x, ok, err := SolveLinearSystem(a, b)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, x.At(0).Equal(m61(1)))
	require.True(t, x.At(1).Equal(m61(3)))

	check, err := a.MatVec(x)
	require.NoError(t, err)
	require.True(t, check.Equal(b))
}

func TestInvert(t *testing.T) {
	a, _ := FromFlatSlice(2, 2, []field.Mersenne61{m61(4), m61(7), m61(2), m61(6)})
	inv, err := Invert(a)
	require.NoError(t, err)
	prod, err := a.MatMul(inv)
	require.NoError(t, err)
	require.True(t, prod.IsIdentity())
}

func TestVandermonde(t *testing.T) {
	xs := VectorFromSlice([]field.Mersenne61{m61(1), m61(2), m61(3)})
	v, err := Vandermonde(3, 3, xs)
	require.NoError(t, err)
	require.True(t, v.At(2, 2).Equal(m61(9))) // 3^2
}

func TestHyperInvertible(t *testing.T) {
	m, err := HyperInvertible[field.Mersenne61](3, 3)
	require.NoError(t, err)
	_, err = Invert(m)
	require.NoError(t, err)
}

func TestLagrangeInterpolation(t *testing.T) {
	nodes := Range[field.Mersenne61](1, 4) // 1, 2, 3
	// f(x) = x^2, so f(1)=1, f(2)=4, f(3)=9
	ys := VectorFromSlice([]field.Mersenne61{m61(1), m61(4), m61(9)})
	basis, err := LagrangeBasis(nodes, m61(5))
	require.NoError(t, err)
	got, err := ys.Dot(basis)
	require.NoError(t, err)
	require.True(t, got.Equal(m61(25)))
}

func TestPolynomial(t *testing.T) {
	p := NewPolynomial([]field.Mersenne61{m61(1), m61(2), m61(3)}) // 1 + 2x + 3x^2
	require.Equal(t, 2, p.Degree())
	require.True(t, p.Evaluate(m61(2)).Equal(m61(1+4+12)))

	zero := NewPolynomial[field.Mersenne61](nil)
	require.True(t, zero.IsZero())
	require.Equal(t, 0, zero.Degree())
}

func TestPolynomialDivide(t *testing.T) {
	// (x^2 - 1) / (x - 1) = x + 1
	p := NewPolynomial([]field.Mersenne61{m61(-1), m61(0), m61(1)})
	d := NewPolynomial([]field.Mersenne61{m61(-1), m61(1)})
	q, r, err := Divide(p, d)
	require.NoError(t, err)
	require.True(t, r.IsZero())
	require.True(t, q.Evaluate(m61(10)).Equal(m61(11)))
}

func TestPolynomialDivideByZeroFails(t *testing.T) {
	p := NewPolynomial([]field.Mersenne61{m61(1)})
	_, _, err := Divide(p, NewPolynomial[field.Mersenne61](nil))
	require.Error(t, err)
}

func TestArray(t *testing.T) {
	a := NewArray(m61(1), m61(2))
	b := NewArray(m61(3), m61(4))
	sum := a.Add(b)
	require.True(t, sum.Equal(NewArray(m61(4), m61(6))))
}
