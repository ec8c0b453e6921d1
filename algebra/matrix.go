package algebra

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/scl-mpc/scl/scerr"
)

// Matrix is a row-major n-by-m matrix over T. All cells default-initialize
// to T's zero value, matching Go's own zero-value semantics for the
// element types in package field and package ring2k.
type Matrix[T Elt[T]] struct {
	rows, cols int
	data       []T
}

// NewMatrix creates an n-by-m matrix of zero-valued elements.
func NewMatrix[T Elt[T]](n, m int) Matrix[T] {
	return Matrix[T]{rows: n, cols: m, data: make([]T, n*m)}
}

// NewSquare creates an n-by-n matrix of zero-valued elements.
func NewSquare[T Elt[T]](n int) Matrix[T] { return NewMatrix[T](n, n) }

// Identity creates the n-by-n identity matrix.
func Identity[T Elt[T]](n int) Matrix[T] {
	m := NewSquare[T](n)
	var zero T
	for i := 0; i < n; i++ {
		m.Set(i, i, zero.One())
	}
	return m
}

// FromFlatSlice builds an n-by-m matrix from a row-major flat slice of n*m
// elements.
func FromFlatSlice[T Elt[T]](n, m int, vec []T) (Matrix[T], error) {
	if len(vec) != n*m {
		return Matrix[T]{}, fmt.Errorf("expected %d elements, got %d: %w", n*m, len(vec), scerr.ErrInvalidInput)
	}
	data := make([]T, n*m)
	copy(data, vec)
	return Matrix[T]{rows: n, cols: m, data: data}, nil
}

// RandomMatrix draws n*m elements by reading ByteSize() bytes per element
// from r.
func RandomMatrix[T Elt[T]](n, m int, r io.Reader) (Matrix[T], error) {
	v, err := RandomVector[T](n*m, r)
	if err != nil {
		return Matrix[T]{}, err
	}
	return Matrix[T]{rows: n, cols: m, data: v.Slice()}, nil
}

// Rows returns the number of rows.
func (m Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m Matrix[T]) Cols() int { return m.cols }

// IsSquare reports whether the matrix has the same number of rows and
// columns.
func (m Matrix[T]) IsSquare() bool { return m.rows == m.cols }

// At returns the element at (row, col).
func (m Matrix[T]) At(row, col int) T { return m.data[row*m.cols+col] }

// Set assigns the element at (row, col).
func (m Matrix[T]) Set(row, col int, x T) { m.data[row*m.cols+col] = x }

func (m Matrix[T]) ensureSameDims(other Matrix[T]) error {
	if m.rows != other.rows || m.cols != other.cols {
		return fmt.Errorf("matrix dimension mismatch (%dx%d vs %dx%d): %w",
			m.rows, m.cols, other.rows, other.cols, scerr.ErrInvalidInput)
	}
	return nil
}

// Add returns the entrywise sum of m and other.
func (m Matrix[T]) Add(other Matrix[T]) (Matrix[T], error) {
	if err := m.ensureSameDims(other); err != nil {
		return Matrix[T]{}, err
	}
	r := make([]T, len(m.data))
	for i := range r {
		r[i] = m.data[i].Add(other.data[i])
	}
	return Matrix[T]{rows: m.rows, cols: m.cols, data: r}, nil
}

// Sub returns the entrywise difference of m and other.
func (m Matrix[T]) Sub(other Matrix[T]) (Matrix[T], error) {
	if err := m.ensureSameDims(other); err != nil {
		return Matrix[T]{}, err
	}
	r := make([]T, len(m.data))
	for i := range r {
		r[i] = m.data[i].Sub(other.data[i])
	}
	return Matrix[T]{rows: m.rows, cols: m.cols, data: r}, nil
}

// EntrywiseMul returns the entrywise (Hadamard) product of m and other.
func (m Matrix[T]) EntrywiseMul(other Matrix[T]) (Matrix[T], error) {
	if err := m.ensureSameDims(other); err != nil {
		return Matrix[T]{}, err
	}
	r := make([]T, len(m.data))
	for i := range r {
		r[i] = m.data[i].Mul(other.data[i])
	}
	return Matrix[T]{rows: m.rows, cols: m.cols, data: r}, nil
}

// ScalarMul returns m scaled by s.
func (m Matrix[T]) ScalarMul(s T) Matrix[T] {
	r := make([]T, len(m.data))
	for i, x := range m.data {
		r[i] = x.Mul(s)
	}
	return Matrix[T]{rows: m.rows, cols: m.cols, data: r}
}

// MatMul performs the matrix product m * other.
func (m Matrix[T]) MatMul(other Matrix[T]) (Matrix[T], error) {
	if m.cols != other.rows {
		return Matrix[T]{}, fmt.Errorf("cannot multiply %dx%d by %dx%d: %w",
			m.rows, m.cols, other.rows, other.cols, scerr.ErrInvalidInput)
	}
	out := NewMatrix[T](m.rows, other.cols)
	for i := 0; i < m.rows; i++ {
		for k := 0; k < m.cols; k++ {
			aik := m.At(i, k)
			if aik.IsZero() {
				continue
			}
			for j := 0; j < other.cols; j++ {
				out.Set(i, j, out.At(i, j).Add(aik.Mul(other.At(k, j))))
			}
		}
	}
	return out, nil
}

// MatVec computes A*x for an n-by-m matrix A and length-m vector x,
// returning a length-n vector.
func (m Matrix[T]) MatVec(x Vector[T]) (Vector[T], error) {
	if m.cols != x.Size() {
		return Vector[T]{}, fmt.Errorf("cannot multiply %dx%d matrix by size-%d vector: %w",
			m.rows, m.cols, x.Size(), scerr.ErrInvalidInput)
	}
	out := NewVector[T](m.rows)
	for i := 0; i < m.rows; i++ {
		var acc T
		for j := 0; j < m.cols; j++ {
			acc = acc.Add(m.At(i, j).Mul(x.At(j)))
		}
		out.Set(i, acc)
	}
	return out, nil
}

// Transpose returns the transpose of m.
func (m Matrix[T]) Transpose() Matrix[T] {
	out := NewMatrix[T](m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.Set(j, i, m.At(i, j))
		}
	}
	return out
}

// IsIdentity reports whether m is the identity matrix.
func (m Matrix[T]) IsIdentity() bool {
	if !m.IsSquare() {
		return false
	}
	var zero T
	one := zero.One()
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			want := zero
			if i == j {
				want = one
			}
			if !m.At(i, j).Equal(want) {
				return false
			}
		}
	}
	return true
}

// Equal reports whether m and other have the same dimensions and elements.
func (m Matrix[T]) Equal(other Matrix[T]) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.data {
		if !m.data[i].Equal(other.data[i]) {
			return false
		}
	}
	return true
}

// String renders m as a human-readable grid.
func (m Matrix[T]) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ {
		b.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(m.At(i, j).String())
		}
		b.WriteString("]\n")
	}
	return b.String()
}

// MarshalBinary encodes m as two 4-byte little-endian dimensions followed
// by the row-major elements.
func (m Matrix[T]) MarshalBinary() ([]byte, error) {
	out := make([]byte, 8)
	binary.LittleEndian.PutUint32(out[0:4], uint32(m.rows))
	binary.LittleEndian.PutUint32(out[4:8], uint32(m.cols))
	for _, x := range m.data {
		out = append(out, x.Bytes()...)
	}
	return out, nil
}

// UnmarshalBinary decodes m from the format produced by MarshalBinary.
func (m *Matrix[T]) UnmarshalBinary(data []byte) error {
	var zero T
	if len(data) < 8 {
		return fmt.Errorf("matrix header truncated: %w", scerr.ErrMalformed)
	}
	rows := int(binary.LittleEndian.Uint32(data[0:4]))
	cols := int(binary.LittleEndian.Uint32(data[4:8]))
	data = data[8:]
	size := zero.ByteSize()
	if len(data) < rows*cols*size {
		return fmt.Errorf("matrix body truncated: %w", scerr.ErrMalformed)
	}
	out := make([]T, rows*cols)
	for i := range out {
		out[i] = zero.FromBytes(data[i*size : (i+1)*size])
	}
	m.rows, m.cols, m.data = rows, cols, out
	return nil
}
