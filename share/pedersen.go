package share

import (
	"fmt"

	"github.com/scl-mpc/scl/algebra"
	"github.com/scl-mpc/scl/curve"
	"github.com/scl-mpc/scl/field"
	"github.com/scl-mpc/scl/prg"
	"github.com/scl-mpc/scl/scerr"
)

// PedersenOpening is a party's share of the secret together with the
// blinding randomness needed to open its commitment: (share, randomness).
type PedersenOpening = algebra.Array[field.Secp256k1ScalarElt]

// PedersenSharing is the result of verifiably secret-sharing a value with
// the Pedersen scheme: every party's (share, randomness) pair plus the
// first t+1 commitments of the underlying two polynomials. Commitments
// beyond index t are not stored explicitly — CommitmentAt recomputes them
// via Lagrange interpolation in the exponent. Openings and Commitments are
// plain slices, not algebra.Vectors, because neither algebra.Array nor
// curve.Point satisfies algebra.Elt (neither has a multiplicative ring
// structure).
type PedersenSharing struct {
	Openings    []PedersenOpening
	Commitments []curve.Point
}

// PedersenShare is a single party's view of a PedersenSharing: its own
// opening plus the full commitment vector needed to verify it.
type PedersenShare struct {
	Opening     PedersenOpening
	Commitments []curve.Point
}

func newOpening(share, randomness field.Secp256k1ScalarElt) PedersenOpening {
	return algebra.NewArray(share, randomness)
}

// PedersenShareSecret verifiably secret-shares secret with threshold t
// among n parties, committing under generators (G, h) where G is the
// standard curve generator. randomness blinds the secret's own commitment.
func PedersenShareSecret(secret field.Secp256k1ScalarElt, t, n int, p *prg.PRG, h curve.Point, randomness field.Secp256k1ScalarElt) (PedersenSharing, error) {
	secretPoly, err := SharingPolynomial(secret, t, p)
	if err != nil {
		return PedersenSharing{}, err
	}
	randPoly, err := SharingPolynomial(randomness, t, p)
	if err != nil {
		return PedersenSharing{}, err
	}

	alphas := CanonicalAlphas[field.Secp256k1ScalarElt](n)
	shareVals := SharesFromPolynomial(secretPoly, alphas)
	randVals := SharesFromPolynomial(randPoly, alphas)

	openings := make([]PedersenOpening, n)
	for i := 0; i < n; i++ {
		openings[i] = newOpening(shareVals.At(i), randVals.At(i))
	}

	gen := curve.Generator()
	commitments := make([]curve.Point, t+1)
	commitments[0] = gen.ScalarMul(secret).Add(h.ScalarMul(randomness))
	for i := 0; i < t; i++ {
		commitments[i+1] = gen.ScalarMul(shareVals.At(i)).Add(h.ScalarMul(randVals.At(i)))
	}
	return PedersenSharing{Openings: openings, Commitments: commitments}, nil
}

// PedersenShareSecretRandomized is PedersenShareSecret with a freshly drawn
// blinding randomness.
func PedersenShareSecretRandomized(secret field.Secp256k1ScalarElt, t, n int, p *prg.PRG, h curve.Point) (PedersenSharing, error) {
	r, err := algebra.RandomVector[field.Secp256k1ScalarElt](1, p)
	if err != nil {
		return PedersenSharing{}, fmt.Errorf("drawing commitment randomness: %w", err)
	}
	return PedersenShareSecret(secret, t, n, p, h, r.At(0))
}

// ShareForParty extracts party index's opening and the full commitment
// vector, i.e. the bundle that party actually holds.
func (s PedersenSharing) ShareForParty(index int) PedersenShare {
	return PedersenShare{Opening: s.Openings[index], Commitments: s.Commitments}
}

// CommitmentAt returns the commitment for position (0 is the secret's own
// commitment f(0), i is the commitment for the party holding canonical
// share i, i.e. evaluation point i), computing it via Lagrange
// interpolation in the exponent when position falls beyond the explicitly
// stored t+1 commitments.
func CommitmentAt(commitments []curve.Point, position int) (curve.Point, error) {
	if position < len(commitments) {
		return commitments[position], nil
	}
	nodes := algebra.Range[field.Secp256k1ScalarElt](0, len(commitments))
	var zero field.Secp256k1ScalarElt
	basis, err := algebra.LagrangeBasis(nodes, zero.FromInt(position))
	if err != nil {
		return curve.Point{}, err
	}
	acc := curve.Infinity()
	for i := range commitments {
		acc = acc.Add(commitments[i].ScalarMul(basis.At(i)))
	}
	return acc, nil
}

// PedersenVerify checks that share is a valid opening for the party at
// 0-indexed position index (canonical evaluation point index+1) against h.
func PedersenVerify(share PedersenShare, index int, h curve.Point) (bool, error) {
	if share.Opening.Len() != 2 {
		return false, fmt.Errorf("malformed pedersen opening of length %d: %w", share.Opening.Len(), scerr.ErrInvalidInput)
	}
	commitment, err := CommitmentAt(share.Commitments, index+1)
	if err != nil {
		return false, err
	}
	val, rand := share.Opening.At(0), share.Opening.At(1)
	expected := curve.Generator().ScalarMul(val).Add(h.ScalarMul(rand))
	return commitment.Equal(expected), nil
}

// ApplyMatrix left-multiplies a vector of Pedersen shares (openings and
// commitments alike) by matrix, useful for re-randomizing a batch of shares
// with e.g. a Vandermonde or hyper-invertible matrix (as in the DN07
// protocol).
func ApplyMatrix(shares []PedersenShare, matrix algebra.Matrix[field.Secp256k1ScalarElt]) ([]PedersenShare, error) {
	if len(shares) == 0 {
		return nil, nil
	}
	p := matrix.Cols()
	if p != len(shares) {
		return nil, fmt.Errorf("matrix has %d columns but %d shares were given: %w", p, len(shares), scerr.ErrInvalidInput)
	}
	n := matrix.Rows()
	m := len(shares[0].Commitments)

	out := make([]PedersenShare, n)
	for i := 0; i < n; i++ {
		openingSum := algebra.ZeroArray[field.Secp256k1ScalarElt](2)
		commitSum := make([]curve.Point, m)
		for j := range commitSum {
			commitSum[j] = curve.Infinity()
		}
		for k := 0; k < p; k++ {
			coeff := matrix.At(i, k)
			openingSum = openingSum.Add(shares[k].Opening.ScalarMul(coeff))
			for j := 0; j < m; j++ {
				commitSum[j] = commitSum[j].Add(shares[k].Commitments[j].ScalarMul(coeff))
			}
		}
		out[i] = PedersenShare{Opening: openingSum, Commitments: commitSum}
	}
	return out, nil
}
