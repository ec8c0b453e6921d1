package serialize

import (
	"encoding/binary"
	"fmt"

	"github.com/scl-mpc/scl/scerr"
)

// Serializer provides the size/write/read triple the original's
// Serializer<T> template specializes on a type-by-type basis. A
// Serializer value carries no state of its own (it is typically an empty
// struct); behavior is selected by which Serializer[T] implementation the
// caller passes to WriteTo/ReadFrom.
type Serializer[T any] interface {
	// SizeOf returns the number of bytes writing v would take.
	SizeOf(v T) int
	// Write encodes v into buf, which is guaranteed to have at least
	// SizeOf(v) bytes, and returns the number of bytes written.
	Write(v T, buf []byte) int
	// Read decodes a T from the front of buf and returns it along with the
	// number of bytes consumed.
	Read(buf []byte) (T, int, error)
}

// Uint32Serializer encodes a uint32 as 4 little-endian bytes — the
// trivially-copyable case for the wire's length-prefix type.
type Uint32Serializer struct{}

func (Uint32Serializer) SizeOf(uint32) int { return 4 }

func (Uint32Serializer) Write(v uint32, buf []byte) int {
	binary.LittleEndian.PutUint32(buf, v)
	return 4
}

func (Uint32Serializer) Read(buf []byte) (uint32, int, error) {
	if len(buf) < 4 {
		return 0, 0, fmt.Errorf("buffer too short for uint32: %w", scerr.ErrMalformed)
	}
	return binary.LittleEndian.Uint32(buf), 4, nil
}

// Uint64Serializer encodes a uint64 as 8 little-endian bytes.
type Uint64Serializer struct{}

func (Uint64Serializer) SizeOf(uint64) int { return 8 }

func (Uint64Serializer) Write(v uint64, buf []byte) int {
	binary.LittleEndian.PutUint64(buf, v)
	return 8
}

func (Uint64Serializer) Read(buf []byte) (uint64, int, error) {
	if len(buf) < 8 {
		return 0, 0, fmt.Errorf("buffer too short for uint64: %w", scerr.ErrMalformed)
	}
	return binary.LittleEndian.Uint64(buf), 8, nil
}

// ByteSerializer encodes a single byte verbatim.
type ByteSerializer struct{}

func (ByteSerializer) SizeOf(byte) int { return 1 }

func (ByteSerializer) Write(v byte, buf []byte) int {
	buf[0] = v
	return 1
}

func (ByteSerializer) Read(buf []byte) (byte, int, error) {
	if len(buf) < 1 {
		return 0, 0, fmt.Errorf("buffer too short for byte: %w", scerr.ErrMalformed)
	}
	return buf[0], 1, nil
}

// BoolSerializer encodes a bool as a single 0/1 byte.
type BoolSerializer struct{}

func (BoolSerializer) SizeOf(bool) int { return 1 }

func (BoolSerializer) Write(v bool, buf []byte) int {
	if v {
		buf[0] = 1
	} else {
		buf[0] = 0
	}
	return 1
}

func (BoolSerializer) Read(buf []byte) (bool, int, error) {
	if len(buf) < 1 {
		return false, 0, fmt.Errorf("buffer too short for bool: %w", scerr.ErrMalformed)
	}
	return buf[0] != 0, 1, nil
}

// ByteSliceSerializer is the analog of the original's
// Serializer<std::vector<unsigned char>>: a 4-byte length prefix followed
// by the raw bytes.
type ByteSliceSerializer struct{}

func (ByteSliceSerializer) SizeOf(v []byte) int { return SizeType + len(v) }

func (ByteSliceSerializer) Write(v []byte, buf []byte) int {
	binary.LittleEndian.PutUint32(buf, uint32(len(v)))
	copy(buf[SizeType:], v)
	return SizeType + len(v)
}

func (ByteSliceSerializer) Read(buf []byte) ([]byte, int, error) {
	if len(buf) < SizeType {
		return nil, 0, fmt.Errorf("buffer too short for byte-slice length prefix: %w", scerr.ErrMalformed)
	}
	n := int(binary.LittleEndian.Uint32(buf))
	if len(buf) < SizeType+n {
		return nil, 0, fmt.Errorf("buffer too short for %d-byte slice body: %w", n, scerr.ErrMalformed)
	}
	out := make([]byte, n)
	copy(out, buf[SizeType:SizeType+n])
	return out, SizeType + n, nil
}

// VectorSerializer is the generic-vector<T> analog: a 4-byte element-count
// prefix followed by each element encoded with Elem.
type VectorSerializer[T any] struct {
	Elem Serializer[T]
}

func (s VectorSerializer[T]) SizeOf(v []T) int {
	n := SizeType
	for _, e := range v {
		n += s.Elem.SizeOf(e)
	}
	return n
}

func (s VectorSerializer[T]) Write(v []T, buf []byte) int {
	binary.LittleEndian.PutUint32(buf, uint32(len(v)))
	offset := SizeType
	for _, e := range v {
		offset += s.Elem.Write(e, buf[offset:])
	}
	return offset
}

func (s VectorSerializer[T]) Read(buf []byte) ([]T, int, error) {
	if len(buf) < SizeType {
		return nil, 0, fmt.Errorf("buffer too short for vector length prefix: %w", scerr.ErrMalformed)
	}
	n := int(binary.LittleEndian.Uint32(buf))
	out := make([]T, n)
	offset := SizeType
	for i := 0; i < n; i++ {
		v, read, err := s.Elem.Read(buf[offset:])
		if err != nil {
			return nil, 0, fmt.Errorf("reading vector element %d: %w", i, err)
		}
		out[i] = v
		offset += read
	}
	return out, offset, nil
}

// FixedElt is the shape every scl ring/field element and fixed-width
// type (field.Mersenne61/127, field.Secp256k1*, ring2k.Ring64/Ring32)
// already satisfies — a fixed byte size and a byte round-trip.
type FixedElt[T any] interface {
	ByteSize() int
	Bytes() []byte
	FromBytes([]byte) T
}

// FixedSerializer wraps any FixedElt[T] type, matching the original's
// "field elements (fixed size, delegate to element's byte IO)"
// specialization.
type FixedSerializer[T FixedElt[T]] struct{}

func (FixedSerializer[T]) SizeOf(v T) int { return v.ByteSize() }

func (FixedSerializer[T]) Write(v T, buf []byte) int {
	return copy(buf, v.Bytes())
}

func (s FixedSerializer[T]) Read(buf []byte) (T, int, error) {
	var zero T
	n := zero.ByteSize()
	if len(buf) < n {
		return zero, 0, fmt.Errorf("buffer too short for fixed-width element (want %d): %w", n, scerr.ErrMalformed)
	}
	return zero.FromBytes(buf[:n]), n, nil
}
