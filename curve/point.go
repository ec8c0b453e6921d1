// Package curve implements the secp256k1 elliptic curve group: the short
// Weierstrass curve y^2 = x^3 + 7 over field.Secp256k1FieldElt.
//
// Points are held in projective (X, Y, Z) coordinates, and addition uses
// the complete formulas of Renes, Costello and Batina ("Complete addition
// formulas for prime order elliptic curves", Algorithm 7 for a=0 curves,
// Algorithm 9 for doubling) so a single code path handles every input,
// including equal and inverse operands — no special-casing for the point
// at infinity or for P == Q. This mirrors original_source's
// secp256k1_curve.cc, which uses the same algorithm for the same reason.
package curve

import (
	"fmt"
	"math/big"

	"github.com/scl-mpc/scl/field"
	"github.com/scl-mpc/scl/scerr"
)

// curveB is the secp256k1 curve equation constant (y^2 = x^3 + b).
var curveB = field.NewSecp256k1Field(7)

// Point is a secp256k1 group element in projective coordinates. The point
// at infinity is the canonical triple (0, 1, 0).
type Point struct {
	x, y, z field.Secp256k1FieldElt
}

// Infinity returns the point at infinity, the group's identity element.
func Infinity() Point {
	return Point{x: field.Secp256k1FieldElt{}.Zero(), y: field.Secp256k1FieldElt{}.One(), z: field.Secp256k1FieldElt{}.Zero()}
}

// Generator returns secp256k1's standard base point G.
func Generator() Point {
	gx, _ := field.Secp256k1FieldElt{}.FromString(
		"79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798", field.Hex)
	gy, _ := field.Secp256k1FieldElt{}.FromString(
		"483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8", field.Hex)
	return Point{x: gx, y: gy, z: field.Secp256k1FieldElt{}.One()}
}

// FromAffine builds a Point from affine coordinates, rejecting any pair
// that does not satisfy the curve equation y^2 = x^3 + 7.
func FromAffine(x, y field.Secp256k1FieldElt) (Point, error) {
	lhs := y.Mul(y)
	rhs := x.Mul(x).Mul(x).Add(curveB)
	if !lhs.Equal(rhs) {
		return Point{}, fmt.Errorf("point (%s, %s) is not on the curve: %w", x, y, scerr.ErrNotOnCurve)
	}
	return Point{x: x, y: y, z: field.Secp256k1FieldElt{}.One()}, nil
}

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool { return p.z.IsZero() }

// Affine returns p's affine (x, y) coordinates. Calling this on the point
// at infinity is a programming error and panics, since affine infinity has
// no representation in field.Secp256k1FieldElt.
func (p Point) Affine() (field.Secp256k1FieldElt, field.Secp256k1FieldElt) {
	if p.IsInfinity() {
		panic("curve: Affine called on the point at infinity")
	}
	zInv, err := p.z.Inverse()
	if err != nil {
		panic("curve: non-infinity point has zero Z")
	}
	return p.x.Mul(zInv), p.y.Mul(zInv)
}

// Equal reports whether p and q denote the same group element, comparing
// by cross-multiplication so no inversion is needed.
func (p Point) Equal(q Point) bool {
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() == q.IsInfinity()
	}
	x1 := p.x.Mul(q.z)
	x2 := q.x.Mul(p.z)
	y1 := p.y.Mul(q.z)
	y2 := q.y.Mul(p.z)
	return x1.Equal(x2) && y1.Equal(y2)
}

// Neg returns -p.
func (p Point) Neg() Point {
	return Point{x: p.x, y: p.y.Neg(), z: p.z}
}

// threeB is 3*curveB, precomputed for the addition/doubling formulas below.
var threeB = curveB.Add(curveB).Add(curveB)

// Add returns p + q using the complete addition law for a=0 short
// Weierstrass curves (Renes-Costello-Batina Algorithm 7). The formula is
// valid unconditionally: p == q, p or q at infinity, and p == -q are all
// handled without branching.
func (p Point) Add(q Point) Point {
	x1, y1, z1 := p.x, p.y, p.z
	x2, y2, z2 := q.x, q.y, q.z

	t0 := x1.Mul(x2)
	t1 := y1.Mul(y2)
	t2 := z1.Mul(z2)
	t3 := x1.Add(y1)
	t4 := x2.Add(y2)
	t3 = t3.Mul(t4)
	t4 = t0.Add(t1)
	t3 = t3.Sub(t4)
	t4 = y1.Add(z1)
	x3 := y2.Add(z2)
	t4 = t4.Mul(x3)
	x3 = t1.Add(t2)
	t4 = t4.Sub(x3)
	x3 = x1.Add(z1)
	y3 := x2.Add(z2)
	x3 = x3.Mul(y3)
	y3 = t0.Add(t2)
	y3 = x3.Sub(y3)
	x3 = t0.Add(t0)
	t0 = x3.Add(t0)
	t2 = threeB.Mul(t2)
	z3 := t1.Add(t2)
	t1 = t1.Sub(t2)
	y3 = threeB.Mul(y3)
	x3 = t4.Mul(y3)
	t2 = t3.Mul(t1)
	x3 = t2.Sub(x3)
	y3 = y3.Mul(t0)
	t1 = t1.Mul(z3)
	y3 = t1.Add(y3)
	t0 = t0.Mul(t3)
	z3 = z3.Mul(t4)
	z3 = z3.Add(t0)

	return Point{x: x3, y: y3, z: z3}
}

// Double returns p + p using the dedicated a=0 doubling law (Algorithm 9).
func (p Point) Double() Point {
	x, y, z := p.x, p.y, p.z

	t0 := y.Mul(y)
	z3 := t0.Add(t0)
	z3 = z3.Add(z3)
	z3 = z3.Add(z3)
	t1 := y.Mul(z)
	t2 := z.Mul(z)
	t2 = threeB.Mul(t2)
	x3 := t2.Mul(z3)
	y3 := t0.Add(t2)
	z3 = t1.Mul(z3)
	t1 = t2.Add(t2)
	t2 = t1.Add(t2)
	t0 = t0.Sub(t2)
	y3 = t0.Mul(y3)
	y3 = x3.Add(y3)
	t1 = x.Mul(y)
	x3 = t0.Mul(t1)
	x3 = x3.Add(x3)

	return Point{x: x3, y: y3, z: z3}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return p.Add(q.Neg()) }

// naf computes the width-w non-adjacent form of k's digits, least
// significant first, each in {0, +-1, +-3, ..., +-(2^(w-1)-1)}. A plain
// signed-binary NAF (w=2) is used here: digits in {-1, 0, 1}, about 1/3
// fewer non-zero digits than the binary expansion, per spec.md's "NAF with
// precomputed point doublings" instruction.
func naf(k *big.Int) []int8 {
	n := new(big.Int).Set(k)
	var digits []int8
	for n.Sign() != 0 {
		if n.Bit(0) == 1 {
			// digit in {-1, 1}: odd, take n mod 4 to decide sign.
			mod4 := new(big.Int).And(n, big.NewInt(3))
			if mod4.Int64() == 3 {
				digits = append(digits, -1)
				n.Add(n, big.NewInt(1))
			} else {
				digits = append(digits, 1)
				n.Sub(n, big.NewInt(1))
			}
		} else {
			digits = append(digits, 0)
		}
		n.Rsh(n, 1)
	}
	return digits
}

// ScalarMul computes k*p via NAF double-and-add-or-subtract, iterating the
// digits high-to-low. The scalar is taken out of field.Secp256k1ScalarElt's
// canonical form via BigInt() before NAF encoding, per spec.md's "the
// scalar is first removed from Montgomery form" instruction.
func (p Point) ScalarMul(k field.Secp256k1ScalarElt) Point {
	digits := naf(k.BigInt())
	acc := Infinity()
	for i := len(digits) - 1; i >= 0; i-- {
		acc = acc.Double()
		switch digits[i] {
		case 1:
			acc = acc.Add(p)
		case -1:
			acc = acc.Sub(p)
		}
	}
	return acc
}

// BaseScalarMul computes k*G for the standard generator G.
func BaseScalarMul(k field.Secp256k1ScalarElt) Point {
	return Generator().ScalarMul(k)
}
