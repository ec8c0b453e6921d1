package share

import (
	"fmt"

	"github.com/scl-mpc/scl/algebra"
	"github.com/scl-mpc/scl/prg"
	"github.com/scl-mpc/scl/scerr"
)

// CanonicalAlphas returns the evaluation points [1, 2, ..., n], the default
// Shamir shares are indexed by unless the caller supplies its own.
func CanonicalAlphas[T algebra.Elt[T]](n int) algebra.Vector[T] {
	return algebra.Range[T](1, n+1)
}

// SharingPolynomial draws a random degree-t polynomial whose constant term
// is secret, suitable for generating degree-t Shamir shares.
func SharingPolynomial[T algebra.Elt[T]](secret T, t int, p *prg.PRG) (algebra.Polynomial[T], error) {
	if t <= 0 {
		return algebra.Polynomial[T]{}, fmt.Errorf("threshold cannot be %d: %w", t, scerr.ErrInvalidInput)
	}
	coeffs, err := algebra.RandomVector[T](t+1, p)
	if err != nil {
		return algebra.Polynomial[T]{}, fmt.Errorf("drawing random coefficients: %w", err)
	}
	coeffs.Set(0, secret)
	return algebra.NewPolynomial(coeffs.Slice()), nil
}

// SharesFromPolynomial evaluates poly at every point in alphas, producing
// one share per point.
func SharesFromPolynomial[T algebra.Elt[T]](poly algebra.Polynomial[T], alphas algebra.Vector[T]) algebra.Vector[T] {
	shares := algebra.NewVector[T](alphas.Size())
	for i := 0; i < alphas.Size(); i++ {
		shares.Set(i, poly.Evaluate(alphas.At(i)))
	}
	return shares
}

// CreateShares creates a degree-t Shamir sharing of secret among n parties,
// using the canonical evaluation points.
func CreateShares[T algebra.Elt[T]](secret T, n, t int, p *prg.PRG) (algebra.Vector[T], error) {
	poly, err := SharingPolynomial(secret, t, p)
	if err != nil {
		return algebra.Vector[T]{}, err
	}
	return SharesFromPolynomial(poly, CanonicalAlphas[T](n)), nil
}

// interpolateAt evaluates, at x, the degree-(k-1) polynomial passing
// through the first k points of (xs, ys).
func interpolateAt[T algebra.Field[T]](ys, xs algebra.Vector[T], k int, x T) (T, error) {
	var zero T
	ysK, err := ys.SubRange(0, k)
	if err != nil {
		return zero, err
	}
	xsK, err := xs.SubRange(0, k)
	if err != nil {
		return zero, err
	}
	basis, err := algebra.LagrangeBasis(xsK, x)
	if err != nil {
		return zero, err
	}
	return ysK.Dot(basis)
}

// ReconstructPassive reconstructs the value at pos of a degree-t sharing,
// with no protection against a corrupted share.
func ReconstructPassive[T algebra.Field[T]](shares, alphas algebra.Vector[T], pos T, t int) (T, error) {
	var zero T
	if shares.Size() < t+1 {
		return zero, fmt.Errorf("not enough shares to reconstruct (have %d, need %d): %w", shares.Size(), t+1, scerr.ErrInvalidInput)
	}
	if alphas.Size() < t+1 {
		return zero, fmt.Errorf("not enough evaluation points to reconstruct (have %d, need %d): %w", alphas.Size(), t+1, scerr.ErrInvalidInput)
	}
	return interpolateAt(shares, alphas, t+1, pos)
}

// ReconstructPassiveCanonical reconstructs the secret (position 0) of a
// degree-t sharing made with the canonical evaluation points.
func ReconstructPassiveCanonical[T algebra.Field[T]](shares algebra.Vector[T], t int) (T, error) {
	var zero T
	return ReconstructPassive(shares, CanonicalAlphas[T](shares.Size()), zero, t)
}

// ReconstructDetect reconstructs the value at pos of a degree-t sharing,
// verifying t additional shares against the interpolated polynomial and
// failing with ErrIntegrityFailure if any disagree.
func ReconstructDetect[T algebra.Field[T]](shares, alphas algebra.Vector[T], pos T, t int) (T, error) {
	var zero T
	need := 2*t + 1
	if shares.Size() < need {
		return zero, fmt.Errorf("not enough shares to reconstruct with error detection (have %d, need %d): %w", shares.Size(), need, scerr.ErrInvalidInput)
	}
	if alphas.Size() < need {
		return zero, fmt.Errorf("not enough evaluation points to reconstruct with error detection (have %d, need %d): %w", alphas.Size(), need, scerr.ErrInvalidInput)
	}
	for k := t + 1; k < need; k++ {
		s, err := interpolateAt(shares, alphas, t+1, alphas.At(k))
		if err != nil {
			return zero, err
		}
		if !s.Equal(shares.At(k)) {
			return zero, fmt.Errorf("share at index %d is inconsistent with the others: %w", k, scerr.ErrIntegrityFailure)
		}
	}
	return interpolateAt(shares, alphas, t+1, pos)
}

// ReconstructDetectCanonical reconstructs the secret of a canonically
// indexed degree-t sharing, detecting (but not correcting) any corrupted
// share.
func ReconstructDetectCanonical[T algebra.Field[T]](shares algebra.Vector[T], t int) (T, error) {
	var zero T
	return ReconstructDetect(shares, CanonicalAlphas[T](shares.Size()), zero, t)
}

// errorLocatorAndQuotient sets up the Berlekamp-Welch linear system for the
// error weights e = t, t-1, ..., 0 in turn, following the original's
// descending search order, and stops at the first one with a unique
// solution. It fails if no weight has one, or if the error locator found
// there does not divide the quotient polynomial exactly.
func errorLocatorAndQuotient[T algebra.Field[T]](shares, alphas algebra.Vector[T], t int) (algebra.Polynomial[T], algebra.Polynomial[T], error) {
	n := 3*t + 1
	if shares.Size() < n {
		return algebra.Polynomial[T]{}, algebra.Polynomial[T]{}, fmt.Errorf("not enough shares to reconstruct with error correction (have %d, need %d): %w", shares.Size(), n, scerr.ErrInvalidInput)
	}
	if alphas.Size() < n {
		return algebra.Polynomial[T]{}, algebra.Polynomial[T]{}, fmt.Errorf("not enough evaluation points to reconstruct with error correction (have %d, need %d): %w", alphas.Size(), n, scerr.ErrInvalidInput)
	}

	var x algebra.Vector[T]
	var solved bool
	var e int
	for k := 0; k <= t; k++ {
		e = t - k
		a := algebra.NewMatrix[T](n, n)
		b := algebra.NewVector[T](n)
		for i := 0; i < n; i++ {
			alpha := alphas.At(i)
			share := shares.At(i)
			b.Set(i, share.Neg())
			a.Set(i, 0, share)
			for j := 1; j <= e; j++ {
				a.Set(i, j, a.At(i, j-1).Mul(alpha))
				b.Set(i, b.At(i).Mul(alpha))
			}
			var zeroT T
			a.Set(i, e, zeroT.One().Neg())
			for j := e + 1; j < n; j++ {
				a.Set(i, j, a.At(i, j-1).Mul(alpha))
			}
		}
		sol, ok, err := algebra.SolveLinearSystem(a, b)
		if err != nil {
			return algebra.Polynomial[T]{}, algebra.Polynomial[T]{}, err
		}
		if ok {
			x = sol
			solved = true
			break
		}
	}
	if !solved {
		return algebra.Polynomial[T]{}, algebra.Polynomial[T]{}, fmt.Errorf("could not correct shares: %w", scerr.ErrIntegrityFailure)
	}

	cE := make([]T, e+1)
	for i := 0; i <= e; i++ {
		cE[i] = x.At(i)
	}
	cE[e] = cE[e].One()
	errorLocator := algebra.NewPolynomial(cE)

	qCoeffs := make([]T, x.Size()-e)
	for i := e; i < x.Size(); i++ {
		qCoeffs[i-e] = x.At(i)
	}
	numerator := algebra.NewPolynomial(qCoeffs)

	quotient, remainder, err := algebra.Divide(numerator, errorLocator)
	if err != nil {
		return algebra.Polynomial[T]{}, algebra.Polynomial[T]{}, err
	}
	if !remainder.IsZero() {
		return algebra.Polynomial[T]{}, algebra.Polynomial[T]{}, fmt.Errorf("could not correct shares: %w", scerr.ErrIntegrityFailure)
	}
	return quotient, errorLocator, nil
}

// ReconstructRobust reconstructs a degree-t sharing from up to t corrupted
// shares among 3t+1 given shares, via Berlekamp-Welch error correction. It
// returns the reconstructed sharing polynomial and the error locator
// polynomial (whose roots identify the corrupted positions).
func ReconstructRobust[T algebra.Field[T]](shares, alphas algebra.Vector[T], t int) (algebra.Polynomial[T], algebra.Polynomial[T], error) {
	return errorLocatorAndQuotient(shares, alphas, t)
}

// ReconstructRobustCanonical reconstructs the secret of a canonically
// indexed degree-t sharing, correcting up to t corrupted shares.
func ReconstructRobustCanonical[T algebra.Field[T]](shares algebra.Vector[T], t int) (T, error) {
	quotient, _, err := ReconstructRobust(shares, CanonicalAlphas[T](shares.Size()), t)
	if err != nil {
		var zero T
		return zero, err
	}
	var zero T
	return quotient.Evaluate(zero), nil
}
