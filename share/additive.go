// Package share implements scl's secret-sharing schemes: plain additive
// sharing, Shamir sharing (passive, error-detecting, and Berlekamp-Welch
// error-correcting reconstruction), and the two verifiable schemes built on
// top of Shamir — Feldman (single EC commitment per coefficient) and
// Pedersen (two-generator, information-theoretically hiding commitments).
package share

import (
	"fmt"

	"github.com/scl-mpc/scl/algebra"
	"github.com/scl-mpc/scl/prg"
	"github.com/scl-mpc/scl/scerr"
)

// CreateAdditiveShares splits secret into n additive shares: n-1 random
// values plus a correction term so the shares sum to secret.
func CreateAdditiveShares[T algebra.Elt[T]](secret T, n int, p *prg.PRG) (algebra.Vector[T], error) {
	if n <= 0 {
		return algebra.Vector[T]{}, fmt.Errorf("cannot create shares for %d parties: %w", n, scerr.ErrInvalidInput)
	}
	shares, err := algebra.RandomVector[T](n, p)
	if err != nil {
		return algebra.Vector[T]{}, fmt.Errorf("drawing random shares: %w", err)
	}
	sumRest := secret.Zero()
	for i := 1; i < n; i++ {
		sumRest = sumRest.Add(shares.At(i))
	}
	shares.Set(0, secret.Sub(sumRest))
	return shares, nil
}

// ReconstructAdditive reconstructs an additively shared secret by summing
// the shares.
func ReconstructAdditive[T algebra.Elt[T]](shares algebra.Vector[T]) T {
	return shares.Sum()
}
