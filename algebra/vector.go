package algebra

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/scl-mpc/scl/scerr"
)

// Vector is an ordered, resizable sequence of T.
type Vector[T Elt[T]] struct {
	data []T
}

// NewVector creates a length-n vector of zero-valued elements.
func NewVector[T Elt[T]](n int) Vector[T] {
	return Vector[T]{data: make([]T, n)}
}

// VectorFromSlice wraps an existing slice without copying.
func VectorFromSlice[T Elt[T]](s []T) Vector[T] {
	return Vector[T]{data: s}
}

// Range returns the vector T{a}, T{a+1}, ..., T{b-1}.
func Range[T Elt[T]](a, b int) Vector[T] {
	var zero T
	v := make([]T, 0, b-a)
	for i := a; i < b; i++ {
		v = append(v, zero.FromInt(i))
	}
	return Vector[T]{data: v}
}

// RandomVector draws n elements by reading ByteSize() bytes per element
// from r (typically a prg.PRG).
func RandomVector[T Elt[T]](n int, r io.Reader) (Vector[T], error) {
	var zero T
	v := make([]T, n)
	buf := make([]byte, zero.ByteSize())
	for i := 0; i < n; i++ {
		if _, err := io.ReadFull(r, buf); err != nil {
			return Vector[T]{}, fmt.Errorf("reading random vector element %d: %w", i, err)
		}
		v[i] = zero.FromBytes(buf)
	}
	return Vector[T]{data: v}, nil
}

// Size returns the number of elements in v.
func (v Vector[T]) Size() int { return len(v.data) }

// At returns the i-th element.
func (v Vector[T]) At(i int) T { return v.data[i] }

// Set assigns the i-th element.
func (v Vector[T]) Set(i int, x T) { v.data[i] = x }

// Slice returns the underlying slice; callers must not retain it across a
// mutation of v unless they intend to alias storage.
func (v Vector[T]) Slice() []T { return v.data }

func (v Vector[T]) ensureSameSize(other Vector[T]) error {
	if v.Size() != other.Size() {
		return fmt.Errorf("vector size mismatch (%d vs %d): %w", v.Size(), other.Size(), scerr.ErrInvalidInput)
	}
	return nil
}

// Add returns the entrywise sum of v and other.
func (v Vector[T]) Add(other Vector[T]) (Vector[T], error) {
	if err := v.ensureSameSize(other); err != nil {
		return Vector[T]{}, err
	}
	r := make([]T, v.Size())
	for i := range r {
		r[i] = v.data[i].Add(other.data[i])
	}
	return Vector[T]{data: r}, nil
}

// Sub returns the entrywise difference of v and other.
func (v Vector[T]) Sub(other Vector[T]) (Vector[T], error) {
	if err := v.ensureSameSize(other); err != nil {
		return Vector[T]{}, err
	}
	r := make([]T, v.Size())
	for i := range r {
		r[i] = v.data[i].Sub(other.data[i])
	}
	return Vector[T]{data: r}, nil
}

// Mul returns the entrywise product of v and other.
func (v Vector[T]) Mul(other Vector[T]) (Vector[T], error) {
	if err := v.ensureSameSize(other); err != nil {
		return Vector[T]{}, err
	}
	r := make([]T, v.Size())
	for i := range r {
		r[i] = v.data[i].Mul(other.data[i])
	}
	return Vector[T]{data: r}, nil
}

// ScalarMul returns v scaled by s.
func (v Vector[T]) ScalarMul(s T) Vector[T] {
	r := make([]T, v.Size())
	for i := range r {
		r[i] = v.data[i].Mul(s)
	}
	return Vector[T]{data: r}
}

// Dot computes the inner product of v and other.
func (v Vector[T]) Dot(other Vector[T]) (T, error) {
	var zero T
	if err := v.ensureSameSize(other); err != nil {
		return zero, err
	}
	acc := zero
	for i := range v.data {
		acc = acc.Add(v.data[i].Mul(other.data[i]))
	}
	return acc, nil
}

// Sum returns the sum of all elements of v.
func (v Vector[T]) Sum() T {
	var acc T
	for _, x := range v.data {
		acc = acc.Add(x)
	}
	return acc
}

// SubRange returns v[a:b] as a fresh vector.
func (v Vector[T]) SubRange(a, b int) (Vector[T], error) {
	if a < 0 || b > v.Size() || a > b {
		return Vector[T]{}, fmt.Errorf("invalid sub-range [%d:%d) of size-%d vector: %w", a, b, v.Size(), scerr.ErrInvalidInput)
	}
	r := make([]T, b-a)
	copy(r, v.data[a:b])
	return Vector[T]{data: r}, nil
}

// ToRowMatrix returns v as a 1-by-n matrix.
func (v Vector[T]) ToRowMatrix() Matrix[T] {
	return Matrix[T]{rows: 1, cols: v.Size(), data: append([]T(nil), v.data...)}
}

// ToColumnMatrix returns v as an n-by-1 matrix.
func (v Vector[T]) ToColumnMatrix() Matrix[T] {
	return Matrix[T]{rows: v.Size(), cols: 1, data: append([]T(nil), v.data...)}
}

// Equal reports whether v and other hold the same elements in the same
// order.
func (v Vector[T]) Equal(other Vector[T]) bool {
	if v.Size() != other.Size() {
		return false
	}
	for i := range v.data {
		if !v.data[i].Equal(other.data[i]) {
			return false
		}
	}
	return true
}

// MarshalBinary encodes v as a 4-byte little-endian element count followed
// by each element's fixed-size byte frame, matching the StlVecSizeType wire
// convention used throughout scl's serialize package.
func (v Vector[T]) MarshalBinary() ([]byte, error) {
	var zero T
	out := make([]byte, 4, 4+len(v.data)*zero.ByteSize())
	binary.LittleEndian.PutUint32(out, uint32(len(v.data)))
	for _, x := range v.data {
		out = append(out, x.Bytes()...)
	}
	return out, nil
}

// UnmarshalBinary decodes v from the format produced by MarshalBinary.
func (v *Vector[T]) UnmarshalBinary(data []byte) error {
	var zero T
	if len(data) < 4 {
		return fmt.Errorf("vector header truncated: %w", scerr.ErrMalformed)
	}
	n := int(binary.LittleEndian.Uint32(data))
	data = data[4:]
	size := zero.ByteSize()
	if len(data) < n*size {
		return fmt.Errorf("vector body truncated: %w", scerr.ErrMalformed)
	}
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = zero.FromBytes(data[i*size : (i+1)*size])
	}
	v.data = out
	return nil
}
