package algebra

import (
	"fmt"

	"github.com/scl-mpc/scl/scerr"
)

// Polynomial is a univariate polynomial over T, with the constant term at
// coefficient index 0.
type Polynomial[T Elt[T]] struct {
	coeffs []T
}

// NewPolynomial creates a Polynomial from coeffs, stripping trailing zero
// coefficients. An empty or all-zero input yields the zero polynomial
// (a single zero coefficient, degree 0) — see DESIGN.md, Open Question 3.
func NewPolynomial[T Elt[T]](coeffs []T) Polynomial[T] {
	n := len(coeffs)
	for n > 0 && coeffs[n-1].IsZero() {
		n--
	}
	out := make([]T, n)
	copy(out, coeffs[:n])
	if len(out) == 0 {
		var zero T
		out = []T{zero}
	}
	return Polynomial[T]{coeffs: out}
}

// Degree returns the polynomial's degree.
func (p Polynomial[T]) Degree() int { return len(p.coeffs) - 1 }

// Coefficient returns the i-th coefficient (0 above the degree).
func (p Polynomial[T]) Coefficient(i int) T {
	if i < 0 || i >= len(p.coeffs) {
		var zero T
		return zero
	}
	return p.coeffs[i]
}

// IsZero reports whether p is the zero polynomial.
func (p Polynomial[T]) IsZero() bool {
	return len(p.coeffs) == 1 && p.coeffs[0].IsZero()
}

// Evaluate computes p(x) via Horner's method, starting from the leading
// coefficient.
func (p Polynomial[T]) Evaluate(x T) T {
	acc := p.coeffs[len(p.coeffs)-1]
	for i := len(p.coeffs) - 2; i >= 0; i-- {
		acc = acc.Mul(x).Add(p.coeffs[i])
	}
	return acc
}

// Add returns p + q.
func (p Polynomial[T]) Add(q Polynomial[T]) Polynomial[T] {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = p.Coefficient(i).Add(q.Coefficient(i))
	}
	return NewPolynomial(out)
}

// Sub returns p - q.
func (p Polynomial[T]) Sub(q Polynomial[T]) Polynomial[T] {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = p.Coefficient(i).Sub(q.Coefficient(i))
	}
	return NewPolynomial(out)
}

// Mul returns p * q, computed in O(deg(p) * deg(q)).
func (p Polynomial[T]) Mul(q Polynomial[T]) Polynomial[T] {
	out := make([]T, len(p.coeffs)+len(q.coeffs)-1)
	for i, a := range p.coeffs {
		if a.IsZero() {
			continue
		}
		for j, b := range q.coeffs {
			out[i+j] = out[i+j].Add(a.Mul(b))
		}
	}
	return NewPolynomial(out)
}

// Divide performs polynomial long division of p by divisor, returning
// (quotient, remainder) with deg(remainder) < deg(divisor). It needs
// Field[T], not just Elt[T], because it must invert the divisor's leading
// coefficient — hence a free function rather than a Polynomial[T] method.
func Divide[T Field[T]](p, divisor Polynomial[T]) (Polynomial[T], Polynomial[T], error) {
	if divisor.IsZero() {
		return Polynomial[T]{}, Polynomial[T]{}, fmt.Errorf("division by the zero polynomial: %w", scerr.ErrInvalidInput)
	}
	remainder := make([]T, len(p.coeffs))
	copy(remainder, p.coeffs)
	dDeg := divisor.Degree()
	lead, err := divisor.coeffs[dDeg].Inverse()
	if err != nil {
		return Polynomial[T]{}, Polynomial[T]{}, fmt.Errorf("leading coefficient of divisor is not invertible: %w", err)
	}

	quotientDeg := len(remainder) - 1 - dDeg
	if quotientDeg < 0 {
		return NewPolynomial[T](nil), NewPolynomial(remainder), nil
	}
	quotient := make([]T, quotientDeg+1)

	for deg := len(remainder) - 1; deg >= dDeg; deg-- {
		coeff := remainder[deg]
		if coeff.IsZero() {
			continue
		}
		factor := coeff.Mul(lead)
		quotient[deg-dDeg] = factor
		for j := 0; j <= dDeg; j++ {
			remainder[deg-dDeg+j] = remainder[deg-dDeg+j].Sub(factor.Mul(divisor.coeffs[j]))
		}
	}
	return NewPolynomial(quotient), NewPolynomial(remainder), nil
}

// Equal reports whether p and q have the same (canonicalized) coefficients.
func (p Polynomial[T]) Equal(q Polynomial[T]) bool {
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if !p.coeffs[i].Equal(q.coeffs[i]) {
			return false
		}
	}
	return true
}
