package serialize

import (
	"encoding/binary"
	"fmt"

	"github.com/scl-mpc/scl/scerr"
)

// Bitmap is a fixed-size bit vector backed by 64-bit blocks, used for the
// simulator's pending-receive and cancellation bitmaps and for
// MerkleProof's left/right direction bits.
type Bitmap struct {
	n      int
	blocks []uint64
}

// NewBitmap creates an n-bit bitmap with every bit cleared.
func NewBitmap(n int) Bitmap {
	return Bitmap{n: n, blocks: make([]uint64, (n+63)/64)}
}

// Len returns the number of bits in the map.
func (b Bitmap) Len() int { return b.n }

// Set sets bit i to 1.
func (b *Bitmap) Set(i int) { b.blocks[i/64] |= 1 << uint(i%64) }

// Clear sets bit i to 0.
func (b *Bitmap) Clear(i int) { b.blocks[i/64] &^= 1 << uint(i%64) }

// Get returns whether bit i is set.
func (b Bitmap) Get(i int) bool { return b.blocks[i/64]&(1<<uint(i%64)) != 0 }

// Any reports whether any bit is set.
func (b Bitmap) Any() bool {
	for _, w := range b.blocks {
		if w != 0 {
			return true
		}
	}
	return false
}

// BitmapSerializer encodes a Bitmap as a 4-byte bit count followed by its
// blocks, each 8 bytes little-endian.
type BitmapSerializer struct{}

func (BitmapSerializer) SizeOf(b Bitmap) int { return SizeType + 8*len(b.blocks) }

func (BitmapSerializer) Write(b Bitmap, buf []byte) int {
	binary.LittleEndian.PutUint32(buf, uint32(b.n))
	offset := SizeType
	for _, w := range b.blocks {
		binary.LittleEndian.PutUint64(buf[offset:], w)
		offset += 8
	}
	return offset
}

func (BitmapSerializer) Read(buf []byte) (Bitmap, int, error) {
	if len(buf) < SizeType {
		return Bitmap{}, 0, fmt.Errorf("buffer too short for bitmap header: %w", scerr.ErrMalformed)
	}
	n := int(binary.LittleEndian.Uint32(buf))
	numBlocks := (n + 63) / 64
	total := SizeType + 8*numBlocks
	if len(buf) < total {
		return Bitmap{}, 0, fmt.Errorf("buffer too short for bitmap body: %w", scerr.ErrMalformed)
	}
	blocks := make([]uint64, numBlocks)
	offset := SizeType
	for i := range blocks {
		blocks[i] = binary.LittleEndian.Uint64(buf[offset:])
		offset += 8
	}
	return Bitmap{n: n, blocks: blocks}, total, nil
}
