// Package serialize implements scl's wire format: an auto-growing byte
// buffer with independent read/write cursors (Packet), and a type-directed
// Serializer abstraction used to encode/decode every core type onto it.
//
// Go's lack of template specialization means the C++ original's single
// Serializer<T> template with partial specializations becomes a Serializer
// interface plus one constructor per concern (trivial integers, byte
// slices, generic slices, fixed-width ring/field elements, Array, Bitmap).
// WriteTo/ReadFrom are free functions rather than Packet methods because
// Go methods cannot introduce their own type parameters on a
// non-generic receiver.
package serialize

import (
	"fmt"

	"github.com/scl-mpc/scl/scerr"
)

// SizeType is the wire width of a length prefix, matching the original's
// StlVecSizeType: a fixed 4-byte width so sender and receiver agree
// regardless of platform size_t width.
const SizeType = 4

// Packet is a byte buffer with an independent read cursor and write
// cursor. Writes auto-grow the buffer; reads consume from wherever the
// read cursor currently sits.
type Packet struct {
	buf      []byte
	readPtr  int
	writePtr int
}

// NewPacket creates an empty packet with the given initial capacity.
func NewPacket(initialCap int) *Packet {
	if initialCap <= 0 {
		initialCap = 1024
	}
	return &Packet{buf: make([]byte, initialCap)}
}

// Size returns the number of bytes written to p.
func (p *Packet) Size() int { return p.writePtr }

// Remaining returns the number of unread bytes.
func (p *Packet) Remaining() int { return p.writePtr - p.readPtr }

// Bytes returns the written prefix of p's buffer. The returned slice
// aliases p's storage and must not be retained across further writes.
func (p *Packet) Bytes() []byte { return p.buf[:p.writePtr] }

// SetWritePtr moves the write cursor, effectively truncating or exposing
// previously-written content. The read cursor is clamped to not exceed
// it.
func (p *Packet) SetWritePtr(n int) {
	p.writePtr = n
	if p.readPtr > p.writePtr {
		p.readPtr = p.writePtr
	}
}

// ResetWritePtr rewinds the write cursor to the start, discarding content.
func (p *Packet) ResetWritePtr() { p.SetWritePtr(0) }

// SetReadPtr moves the read cursor, allowing re-reading or skipping
// objects.
func (p *Packet) SetReadPtr(n int) { p.readPtr = n }

// ResetReadPtr rewinds the read cursor to the start.
func (p *Packet) ResetReadPtr() { p.SetReadPtr(0) }

func (p *Packet) reserve(n int) {
	need := p.writePtr + n
	if need <= len(p.buf) {
		return
	}
	newCap := need
	if 2*len(p.buf) > newCap {
		newCap = 2 * len(p.buf)
	}
	grown := make([]byte, newCap)
	copy(grown, p.buf[:p.writePtr])
	p.buf = grown
}

// AppendRaw writes raw bytes to p without any length prefix, advancing the
// write cursor. It is the Go analog of the original's Packet-to-Packet
// write overload (concatenating one packet's content into another).
func (p *Packet) AppendRaw(data []byte) int {
	p.reserve(len(data))
	copy(p.buf[p.writePtr:], data)
	p.writePtr += len(data)
	return len(data)
}

// readRaw consumes exactly n bytes from the read cursor.
func (p *Packet) readRaw(n int) ([]byte, error) {
	if p.Remaining() < n {
		return nil, fmt.Errorf("packet has %d unread bytes, need %d: %w", p.Remaining(), n, scerr.ErrMalformed)
	}
	out := p.buf[p.readPtr : p.readPtr+n]
	p.readPtr += n
	return out, nil
}

// Equal reports whether p and other hold the same written byte prefix,
// ignoring cursor positions.
func (p *Packet) Equal(other *Packet) bool {
	if p.Size() != other.Size() {
		return false
	}
	for i := 0; i < p.Size(); i++ {
		if p.buf[i] != other.buf[i] {
			return false
		}
	}
	return true
}

// WriteTo serializes v onto p using s, advancing the write cursor, and
// returns the number of bytes written.
func WriteTo[T any](p *Packet, v T, s Serializer[T]) int {
	n := s.SizeOf(v)
	p.reserve(n)
	written := s.Write(v, p.buf[p.writePtr:p.writePtr+n])
	p.writePtr += written
	return written
}

// ReadFrom deserializes a T from p's read cursor using s, advancing the
// cursor by the number of bytes consumed.
func ReadFrom[T any](p *Packet, s Serializer[T]) (T, error) {
	v, n, err := s.Read(p.buf[p.readPtr:p.writePtr])
	if err != nil {
		var zero T
		return zero, err
	}
	p.readPtr += n
	return v, nil
}
