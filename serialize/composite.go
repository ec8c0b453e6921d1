package serialize

import (
	"fmt"

	"github.com/scl-mpc/scl/algebra"
	"github.com/scl-mpc/scl/curve"
	"github.com/scl-mpc/scl/scerr"
)

// VectorSerializerFor builds a Serializer for algebra.Vector[T], matching
// Vector's own MarshalBinary/UnmarshalBinary wire format (4-byte element
// count + fixed-size elements) so a Vector written via WriteTo can also be
// decoded with Vector.UnmarshalBinary and vice versa.
func VectorSerializerFor[T algebra.Elt[T]]() Serializer[algebra.Vector[T]] {
	return vectorSerializer[T]{}
}

type vectorSerializer[T algebra.Elt[T]] struct{}

func (vectorSerializer[T]) SizeOf(v algebra.Vector[T]) int {
	var zero T
	return SizeType + v.Size()*zero.ByteSize()
}

func (vectorSerializer[T]) Write(v algebra.Vector[T], buf []byte) int {
	data, _ := v.MarshalBinary()
	return copy(buf, data)
}

func (vectorSerializer[T]) Read(buf []byte) (algebra.Vector[T], int, error) {
	var zero T
	var v algebra.Vector[T]
	if len(buf) < SizeType {
		return v, 0, fmt.Errorf("buffer too short for vector header: %w", scerr.ErrMalformed)
	}
	n := int(buf[0]) | int(buf[1])<<8 | int(buf[2])<<16 | int(buf[3])<<24
	total := SizeType + n*zero.ByteSize()
	if len(buf) < total {
		return v, 0, fmt.Errorf("buffer too short for vector body: %w", scerr.ErrMalformed)
	}
	if err := v.UnmarshalBinary(buf[:total]); err != nil {
		return v, 0, err
	}
	return v, total, nil
}

// MatrixSerializerFor builds a Serializer for algebra.Matrix[T], matching
// Matrix's own MarshalBinary/UnmarshalBinary wire format (two 4-byte
// dimensions + row-major fixed-size elements).
func MatrixSerializerFor[T algebra.Elt[T]]() Serializer[algebra.Matrix[T]] {
	return matrixSerializer[T]{}
}

type matrixSerializer[T algebra.Elt[T]] struct{}

func (matrixSerializer[T]) SizeOf(m algebra.Matrix[T]) int {
	var zero T
	return 2*SizeType + m.Rows()*m.Cols()*zero.ByteSize()
}

func (matrixSerializer[T]) Write(m algebra.Matrix[T], buf []byte) int {
	data, _ := m.MarshalBinary()
	return copy(buf, data)
}

func (matrixSerializer[T]) Read(buf []byte) (algebra.Matrix[T], int, error) {
	var zero T
	var m algebra.Matrix[T]
	if len(buf) < 2*SizeType {
		return m, 0, fmt.Errorf("buffer too short for matrix header: %w", scerr.ErrMalformed)
	}
	rows := int(buf[0]) | int(buf[1])<<8 | int(buf[2])<<16 | int(buf[3])<<24
	cols := int(buf[4]) | int(buf[5])<<8 | int(buf[6])<<16 | int(buf[7])<<24
	total := 2*SizeType + rows*cols*zero.ByteSize()
	if len(buf) < total {
		return m, 0, fmt.Errorf("buffer too short for matrix body: %w", scerr.ErrMalformed)
	}
	if err := m.UnmarshalBinary(buf[:total]); err != nil {
		return m, 0, err
	}
	return m, total, nil
}

// ArraySerializerFor builds a Serializer for algebra.Array[T] of a fixed,
// known-in-advance length n. Unlike Vector/Matrix, Array carries no length
// prefix on the wire — spec.md describes it as a fixed-size sequence whose
// length both sides already agree on — so the length must be supplied here
// rather than discovered by reading a prefix.
func ArraySerializerFor[T algebra.Elt[T]](n int) Serializer[algebra.Array[T]] {
	return arraySerializer[T]{n: n}
}

type arraySerializer[T algebra.Elt[T]] struct{ n int }

func (s arraySerializer[T]) SizeOf(algebra.Array[T]) int {
	var zero T
	return s.n * zero.ByteSize()
}

func (s arraySerializer[T]) Write(a algebra.Array[T], buf []byte) int {
	offset := 0
	for i := 0; i < s.n; i++ {
		offset += copy(buf[offset:], a.At(i).Bytes())
	}
	return offset
}

func (s arraySerializer[T]) Read(buf []byte) (algebra.Array[T], int, error) {
	var zero T
	size := zero.ByteSize()
	total := s.n * size
	if len(buf) < total {
		return algebra.Array[T]{}, 0, fmt.Errorf("buffer too short for array of %d elements: %w", s.n, scerr.ErrMalformed)
	}
	out := algebra.ZeroArray[T](s.n)
	for i := 0; i < s.n; i++ {
		out.Set(i, zero.FromBytes(buf[i*size:(i+1)*size]))
	}
	return out, total, nil
}

// PointSerializer encodes curve.Point values using their compressed wire
// form.
type PointSerializer struct{}

func (PointSerializer) SizeOf(curve.Point) int { return curve.ByteSizeCompressed }

func (PointSerializer) Write(p curve.Point, buf []byte) int {
	return copy(buf, p.MarshalCompressed())
}

func (PointSerializer) Read(buf []byte) (curve.Point, int, error) {
	if len(buf) < curve.ByteSizeCompressed {
		return curve.Point{}, 0, fmt.Errorf("buffer too short for compressed point: %w", scerr.ErrMalformed)
	}
	p, err := curve.Unmarshal(buf[:curve.ByteSizeCompressed])
	if err != nil {
		return curve.Point{}, 0, err
	}
	return p, curve.ByteSizeCompressed, nil
}
