package hashutil

import (
	"fmt"

	"github.com/scl-mpc/scl/scerr"
	"github.com/scl-mpc/scl/serialize"
)

// Leaf is the shape a Merkle tree's elements must have: something that can
// be turned into bytes to feed the hash.
type Leaf interface {
	Bytes() []byte
}

// Proof is a Merkle inclusion proof: the sibling digest at each level from
// a leaf up to the root, plus a direction bit per level recording whether
// the proved node was the right child (true) or left child (false) of its
// sibling pair.
type Proof struct {
	Path      []Digest
	Direction serialize.Bitmap
}

// hashLeaves hashes every leaf and duplicates the last digest if there is
// an odd count, so pairing always has an even number of entries.
func hashLeaves[T Leaf](alg Algorithm, data []T) []Digest {
	digests := make([]Digest, 0, len(data)+1)
	for _, d := range data {
		digests = append(digests, Sum(alg, d.Bytes()))
	}
	if len(digests)%2 == 1 {
		digests = append(digests, digests[len(digests)-1])
	}
	return digests
}

func hashPair(alg Algorithm, left, right Digest) Digest {
	h := NewHasher(alg)
	h.Update(left).Update(right)
	return h.Finalize()
}

// MerkleRoot computes the root digest of data under alg.
func MerkleRoot[T Leaf](alg Algorithm, data []T) Digest {
	if len(data) == 0 {
		return Sum(alg, nil)
	}
	digests := hashLeaves(alg, data)
	for len(digests) > 1 {
		next := make([]Digest, 0, (len(digests)+1)/2)
		for i := 0; i < len(digests); i += 2 {
			next = append(next, hashPair(alg, digests[i], digests[i+1]))
		}
		if len(next) > 1 && len(next)%2 == 1 {
			next = append(next, next[len(next)-1])
		}
		digests = next
	}
	return digests[0]
}

// MerkleProve builds an inclusion proof for data[index].
func MerkleProve[T Leaf](alg Algorithm, data []T, index int) (Proof, error) {
	if index < 0 || index >= len(data) {
		return Proof{}, fmt.Errorf("index %d out of range for %d leaves: %w", index, len(data), scerr.ErrInvalidInput)
	}
	digests := hashLeaves(alg, data)

	var path []Digest
	var directions []bool

	for len(digests) > 1 {
		next := make([]Digest, 0, (len(digests)+1)/2)
		for i := 0; i < len(digests); i += 2 {
			left, right := digests[i], digests[i+1]
			j := len(next)
			next = append(next, hashPair(alg, left, right))
			if i == index {
				path = append(path, right)
				directions = append(directions, false)
				index = j
			} else if i+1 == index {
				path = append(path, left)
				directions = append(directions, true)
				index = j
			}
		}
		if len(next) > 1 && len(next)%2 == 1 {
			next = append(next, next[len(next)-1])
		}
		digests = next
	}

	bm := serialize.NewBitmap(len(directions))
	for i, d := range directions {
		if d {
			bm.Set(i)
		}
	}
	return Proof{Path: path, Direction: bm}, nil
}

// MerkleVerify checks that leaf is included under root according to proof.
func MerkleVerify[T Leaf](alg Algorithm, leaf T, root Digest, proof Proof) bool {
	digest := Sum(alg, leaf.Bytes())
	for i, sibling := range proof.Path {
		if proof.Direction.Get(i) {
			digest = hashPair(alg, sibling, digest)
		} else {
			digest = hashPair(alg, digest, sibling)
		}
	}
	return string(digest) == string(root)
}
