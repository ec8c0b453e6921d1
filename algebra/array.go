package algebra

import (
	"fmt"

	"github.com/scl-mpc/scl/scerr"
)

// Array is a fixed-length sequence of T with componentwise addition,
// subtraction and scalar multiplication. It does not implement Elt (it has
// no componentwise product, Zero, One or byte encoding of its own), so it
// cannot be the element type of a Vector or Matrix. scl uses it to carry
// structured shares — e.g. a Pedersen VSS share packs a field value and its
// blinding randomness into an Array[T] of length 2.
//
// Go has no value-level const generics for array length, so unlike the
// source's std::array-backed Array<T,N>, N is a run-time invariant enforced
// by the constructor rather than a compile-time type parameter.
type Array[T Elt[T]] struct {
	data []T
}

// NewArray builds an Array from the given elements.
func NewArray[T Elt[T]](elems ...T) Array[T] {
	data := make([]T, len(elems))
	copy(data, elems)
	return Array[T]{data: data}
}

// ZeroArray builds a length-n Array of zero-valued elements.
func ZeroArray[T Elt[T]](n int) Array[T] {
	return Array[T]{data: make([]T, n)}
}

// Len returns the array's fixed length.
func (a Array[T]) Len() int { return len(a.data) }

// At returns the i-th component.
func (a Array[T]) At(i int) T { return a.data[i] }

// Set assigns the i-th component.
func (a Array[T]) Set(i int, x T) { a.data[i] = x }

func (a Array[T]) ensureSameLen(b Array[T]) error {
	if len(a.data) != len(b.data) {
		return fmt.Errorf("array length mismatch (%d vs %d): %w", len(a.data), len(b.data), scerr.ErrInvalidInput)
	}
	return nil
}

// Add returns the componentwise sum of a and b.
func (a Array[T]) Add(b Array[T]) Array[T] {
	if err := a.ensureSameLen(b); err != nil {
		panic(err)
	}
	out := make([]T, len(a.data))
	for i := range out {
		out[i] = a.data[i].Add(b.data[i])
	}
	return Array[T]{data: out}
}

// Sub returns the componentwise difference of a and b.
func (a Array[T]) Sub(b Array[T]) Array[T] {
	if err := a.ensureSameLen(b); err != nil {
		panic(err)
	}
	out := make([]T, len(a.data))
	for i := range out {
		out[i] = a.data[i].Sub(b.data[i])
	}
	return Array[T]{data: out}
}

// ScalarMul returns a scaled componentwise by s.
func (a Array[T]) ScalarMul(s T) Array[T] {
	out := make([]T, len(a.data))
	for i, x := range a.data {
		out[i] = x.Mul(s)
	}
	return Array[T]{data: out}
}

// Equal reports whether a and b hold the same components.
func (a Array[T]) Equal(b Array[T]) bool {
	if len(a.data) != len(b.data) {
		return false
	}
	for i := range a.data {
		if !a.data[i].Equal(b.data[i]) {
			return false
		}
	}
	return true
}
