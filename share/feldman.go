package share

import (
	"fmt"

	"github.com/scl-mpc/scl/algebra"
	"github.com/scl-mpc/scl/curve"
	"github.com/scl-mpc/scl/field"
	"github.com/scl-mpc/scl/prg"
	"github.com/scl-mpc/scl/scerr"
)

// FeldmanBundle is the result of a Feldman verifiable secret-sharing: the
// shares themselves plus t+1 EC commitments, one per coefficient of the
// sharing polynomial (constant term first). Commitments are a plain slice,
// not an algebra.Vector, because curve.Point is a group element (no
// multiplicative ring structure) and so does not satisfy algebra.Elt.
type FeldmanBundle struct {
	Shares      algebra.Vector[field.Secp256k1ScalarElt]
	Commitments []curve.Point
}

// FeldmanShare creates a degree-t Feldman VSS sharing of secret among n
// parties.
func FeldmanShare(secret field.Secp256k1ScalarElt, n, t int, p *prg.PRG) (FeldmanBundle, error) {
	poly, err := SharingPolynomial(secret, t, p)
	if err != nil {
		return FeldmanBundle{}, err
	}
	shares := SharesFromPolynomial(poly, CanonicalAlphas[field.Secp256k1ScalarElt](n))

	gen := curve.Generator()
	commitments := make([]curve.Point, t+1)
	for i := 0; i <= t; i++ {
		commitments[i] = gen.ScalarMul(poly.Coefficient(i))
	}
	return FeldmanBundle{Shares: shares, Commitments: commitments}, nil
}

// FeldmanVerify checks that share is consistent with commitments for the
// party at the given 0-indexed position (evaluation point partyIndex+1).
func FeldmanVerify(share field.Secp256k1ScalarElt, commitments []curve.Point, partyIndex int, t int) (bool, error) {
	if len(commitments) < t+1 {
		return false, fmt.Errorf("insufficient commitments for verification (have %d, need %d): %w", len(commitments), t+1, scerr.ErrInvalidInput)
	}
	var zero field.Secp256k1ScalarElt
	alpha := zero.FromInt(partyIndex + 1)

	acc := curve.Infinity()
	for i := 0; i <= t; i++ {
		power := powInt(alpha, i)
		acc = acc.Add(commitments[i].ScalarMul(power))
	}
	return acc.Equal(curve.Generator().ScalarMul(share)), nil
}

// powInt computes x^n for a non-negative integer exponent by repeated
// multiplication.
func powInt(x field.Secp256k1ScalarElt, n int) field.Secp256k1ScalarElt {
	acc := x.One()
	for i := 0; i < n; i++ {
		acc = acc.Mul(x)
	}
	return acc
}
