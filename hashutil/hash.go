// Package hashutil wires scl's hash-dependent primitives: an
// interchangeable hash registry, a Merkle tree/proof pair built generically
// over any hash and leaf type, and ECDSA over secp256k1.
package hashutil

import (
	"crypto/sha256"
	"hash"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/sha3"
)

// Algorithm names an interchangeable digest function.
type Algorithm int

const (
	SHA256 Algorithm = iota
	SHA3_256
	SHA3_384
	SHA3_512
	BLAKE3
)

// New returns a fresh, reset hash.Hash for the given algorithm.
func New(alg Algorithm) hash.Hash {
	switch alg {
	case SHA256:
		return sha256.New()
	case SHA3_256:
		return sha3.New256()
	case SHA3_384:
		return sha3.New384()
	case SHA3_512:
		return sha3.New512()
	case BLAKE3:
		return blake3.New()
	default:
		panic("hashutil: unknown algorithm")
	}
}

// Digest is a fixed-size hash output. Its length depends on the algorithm
// used to produce it.
type Digest []byte

// Sum hashes data in one shot with the given algorithm.
func Sum(alg Algorithm, data []byte) Digest {
	h := New(alg)
	h.Write(data)
	return h.Sum(nil)
}

// Hasher accumulates bytes across multiple Update calls before producing a
// Digest, mirroring the original's update-then-finalize hash object shape.
type Hasher struct {
	alg Algorithm
	h   hash.Hash
}

// NewHasher creates a Hasher for the given algorithm.
func NewHasher(alg Algorithm) *Hasher {
	return &Hasher{alg: alg, h: New(alg)}
}

// Update feeds data into the running hash and returns the Hasher so calls
// can be chained, matching the original's fluent update().update()... style.
func (h *Hasher) Update(data []byte) *Hasher {
	h.h.Write(data)
	return h
}

// Finalize returns the digest of everything written so far.
func (h *Hasher) Finalize() Digest {
	return h.h.Sum(nil)
}
