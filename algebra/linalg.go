package algebra

import (
	"fmt"

	"github.com/scl-mpc/scl/scerr"
)

// rowReduceInPlace brings a into reduced row echelon form, in place. Grounded
// on the teacher's RREF pivoting strategy (original_source/include/scl/math/la.h):
// for each column, find a pivot at-or-below the current row, normalize it to
// 1, and eliminate it from every other row.
func rowReduceInPlace[T Field[T]](a Matrix[T]) {
	n, m := a.Rows(), a.Cols()
	r, c := 0, 0
	for r < n && c < m {
		pivot := r
		for pivot < n && a.At(pivot, c).IsZero() {
			pivot++
		}
		if pivot == n {
			c++
			continue
		}
		if pivot != r {
			for j := 0; j < m; j++ {
				tmp := a.At(r, j)
				a.Set(r, j, a.At(pivot, j))
				a.Set(pivot, j, tmp)
			}
		}
		inv, _ := a.At(r, c).Inverse()
		for j := 0; j < m; j++ {
			a.Set(r, j, a.At(r, j).Mul(inv))
		}
		for k := 0; k < n; k++ {
			if k == r {
				continue
			}
			t := a.At(k, c)
			if t.IsZero() {
				continue
			}
			negT := t.Neg()
			for j := 0; j < m; j++ {
				a.Set(k, j, a.At(k, j).Add(a.At(r, j).Mul(negT)))
			}
		}
		r++
		c++
	}
}

// Invert computes the inverse of a square matrix via Gauss-Jordan
// elimination on the augmented matrix [A | I]. Per spec (and the teacher's
// original), singularity is not checked beforehand: inverting a singular
// matrix yields a well-defined but meaningless result (see DESIGN.md, Open
// Question 2).
func Invert[T Field[T]](a Matrix[T]) (Matrix[T], error) {
	if !a.IsSquare() {
		return Matrix[T]{}, fmt.Errorf("cannot invert a %dx%d matrix: %w", a.Rows(), a.Cols(), scerr.ErrUnsupported)
	}
	n := a.Rows()
	aug := NewMatrix[T](n, 2*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			aug.Set(i, j, a.At(i, j))
		}
		var zero T
		aug.Set(i, n+i, zero.One())
	}
	rowReduceInPlace(aug)
	out := NewMatrix[T](n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.Set(i, j, aug.At(i, n+j))
		}
	}
	return out, nil
}

func augment[T Elt[T]](a Matrix[T], b Vector[T]) Matrix[T] {
	n, m := a.Rows(), a.Cols()
	out := NewMatrix[T](n, m+1)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			out.Set(i, j, a.At(i, j))
		}
		out.Set(i, m, b.At(i))
	}
	return out
}

// hasUniqueSolution reports whether an augmented matrix in RREF represents
// a consistent system with no free variables, i.e. the coefficient part of
// every row is either all-zero (then the row must be trivial) or contains a
// pivot.
func hasUniqueSolution[T Elt[T]](aug Matrix[T]) bool {
	n, m := aug.Rows(), aug.Cols()
	pivots := 0
	for i := 0; i < n; i++ {
		allZero := true
		for j := 0; j < m-1; j++ {
			if !aug.At(i, j).IsZero() {
				allZero = false
				break
			}
		}
		if allZero {
			if !aug.At(i, m-1).IsZero() {
				return false
			}
			continue
		}
		pivots++
	}
	return pivots == m-1
}

// SolveLinearSystem solves A*x = b. It returns (solution, true, nil) if a
// unique solution exists, or (_, false, nil) if the system has no solution
// or infinitely many. An error is returned only for malformed input
// (dimension mismatch).
func SolveLinearSystem[T Field[T]](a Matrix[T], b Vector[T]) (Vector[T], bool, error) {
	if a.Rows() != b.Size() {
		return Vector[T]{}, false, fmt.Errorf("system has %d equations but %d values: %w", a.Rows(), b.Size(), scerr.ErrInvalidInput)
	}
	aug := augment(a, b)
	rowReduceInPlace(aug)
	if !hasUniqueSolution(aug) {
		return Vector[T]{}, false, nil
	}
	n, m := aug.Rows(), aug.Cols()
	x := NewVector[T](m - 1)
	for i := 0; i < n && i < m-1; i++ {
		x.Set(i, aug.At(i, m-1))
	}
	return x, true, nil
}

// Vandermonde builds the n-by-m matrix V(i,j) = xs[i]^j.
func Vandermonde[T Elt[T]](n, m int, xs Vector[T]) (Matrix[T], error) {
	if xs.Size() != n {
		return Matrix[T]{}, fmt.Errorf("expected %d x-values, got %d: %w", n, xs.Size(), scerr.ErrInvalidInput)
	}
	var zero T
	out := NewMatrix[T](n, m)
	for i := 0; i < n; i++ {
		out.Set(i, 0, zero.One())
		for j := 1; j < m; j++ {
			out.Set(i, j, out.At(i, j-1).Mul(xs.At(i)))
		}
	}
	return out, nil
}

// VandermondeCanonical builds an n-by-m Vandermonde matrix using the
// canonical x-values (1, 2, ..., n).
func VandermondeCanonical[T Elt[T]](n, m int) Matrix[T] {
	v, _ := Vandermonde[T](n, m, Range[T](1, n+1))
	return v
}

// LagrangeBasis computes l_i(x) = prod_{j != i} (x - x_j)/(x_i - x_j) for
// the given pairwise-distinct nodes. If two nodes coincide, the resulting
// inversion failure is surfaced to the caller.
func LagrangeBasis[T Field[T]](nodes Vector[T], x T) (Vector[T], error) {
	n := nodes.Size()
	var zero T
	out := NewVector[T](n)
	for i := 0; i < n; i++ {
		ell := zero.One()
		xi := nodes.At(i)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			xj := nodes.At(j)
			denom, err := xi.Sub(xj).Inverse()
			if err != nil {
				return Vector[T]{}, fmt.Errorf("nodes are not pairwise distinct: %w", scerr.ErrInvalidInput)
			}
			ell = ell.Mul(x.Sub(xj)).Mul(denom)
		}
		out.Set(i, ell)
	}
	return out, nil
}

// HyperInvertible builds an n-by-m matrix every square submatrix of which
// is invertible (for fields large enough), by writing into row i the
// Lagrange basis evaluated at -i over the canonical node set {1, ..., m}.
func HyperInvertible[T Field[T]](n, m int) (Matrix[T], error) {
	nodes := Range[T](1, m+1)
	out := NewMatrix[T](n, m)
	var zero T
	for i := 0; i < n; i++ {
		x := zero.FromInt(-i)
		row, err := LagrangeBasis(nodes, x)
		if err != nil {
			return Matrix[T]{}, err
		}
		for j := 0; j < m; j++ {
			out.Set(i, j, row.At(j))
		}
	}
	return out, nil
}
