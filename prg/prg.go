// Package prg implements a deterministic pseudorandom generator based on
// AES in counter mode, matching the fixed wire semantics relied on by
// reproducible protocol traces: next(n) always returns the same bytes for
// the same seed and call sequence, nonce, and initial counter.
package prg

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"fmt"

	"github.com/klauspost/cpuid/v2"
)

// SeedSize is the width of a PRG seed and of one AES block.
const SeedSize = 16

// nonce is prepended to the monotonic block counter to form each block's
// AES input. It is a build-time constant, not configurable per instance,
// so that two PRGs seeded identically always produce identical output.
const nonce uint64 = 0x0123456789ABCDEF

// initialCounter is the counter value a freshly created or Reset PRG
// starts from.
const initialCounter uint64 = 0

// PRG generates pseudorandom bytes by encrypting a nonce||counter block
// under AES with the seed as key. The n'th output block is
// AES(seed, nonce || (initialCounter+n)), each 16 bytes wide.
type PRG struct {
	seed    [SeedSize]byte
	block   cipher.Block
	counter uint64
}

// HasAESNI reports whether the running CPU advertises hardware AES
// instructions. Go's crypto/aes already dispatches to them automatically;
// this is purely a diagnostic surfaced to callers who want to log it.
func HasAESNI() bool {
	return cpuid.CPU.Supports(cpuid.AESNI)
}

// New creates a PRG seeded with seed. If seed is shorter than SeedSize it
// is zero-padded; if longer, it is truncated, matching the original's
// seed-length handling.
func New(seed []byte) (*PRG, error) {
	var s [SeedSize]byte
	copy(s[:], seed)
	block, err := aes.NewCipher(s[:])
	if err != nil {
		return nil, fmt.Errorf("initializing PRG cipher: %w", err)
	}
	return &PRG{seed: s, block: block, counter: initialCounter}, nil
}

// NewZeroSeeded creates a PRG with an all-zero seed, matching the
// original's default-constructed PRG.
func NewZeroSeeded() *PRG {
	p, _ := New(nil)
	return p
}

// Reset rewinds the PRG's counter to its initial value so Next reproduces
// the same output sequence from the start.
func (p *PRG) Reset() { p.counter = initialCounter }

// Seed returns the PRG's seed.
func (p *PRG) Seed() [SeedSize]byte { return p.seed }

func (p *PRG) block16(counter uint64) [16]byte {
	var in, out [16]byte
	binary.LittleEndian.PutUint64(in[0:8], counter)
	binary.LittleEndian.PutUint64(in[8:16], nonce)
	p.block.Encrypt(out[:], in[:])
	return out
}

// Next fills buf with len(buf) pseudorandom bytes and advances the
// counter by the number of blocks consumed.
func (p *PRG) Next(buf []byte) {
	n := len(buf)
	offset := 0
	for offset < n {
		blk := p.block16(p.counter)
		p.counter++
		offset += copy(buf[offset:], blk[:])
	}
}

// NextN allocates and returns n pseudorandom bytes.
func (p *PRG) NextN(n int) []byte {
	buf := make([]byte, n)
	p.Next(buf)
	return buf
}

// Read implements io.Reader so a PRG can feed algebra.RandomVector/
// RandomMatrix and similar byte-hungry constructors directly.
func (p *PRG) Read(buf []byte) (int, error) {
	p.Next(buf)
	return len(buf), nil
}
