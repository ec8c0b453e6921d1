package hashutil

import (
	"fmt"

	"github.com/scl-mpc/scl/curve"
	"github.com/scl-mpc/scl/field"
	"github.com/scl-mpc/scl/prg"
	"github.com/scl-mpc/scl/scerr"
)

// Signature is an ECDSA signature over secp256k1: the r and s components,
// both scalar-field elements.
type Signature struct {
	R field.Secp256k1ScalarElt
	S field.Secp256k1ScalarElt
}

// ByteSize is the wire size of a Signature: two 32-byte scalars.
const ByteSize = 64

// Bytes encodes sig as r||s, little-endian per field element, matching
// the scl wire convention used throughout this module.
func (sig Signature) Bytes() []byte {
	out := make([]byte, ByteSize)
	copy(out[0:32], sig.R.Bytes())
	copy(out[32:64], sig.S.Bytes())
	return out
}

// SignatureFromBytes decodes a Signature produced by Signature.Bytes.
func SignatureFromBytes(b []byte) (Signature, error) {
	if len(b) < ByteSize {
		return Signature{}, fmt.Errorf("signature encoding truncated: %w", scerr.ErrMalformed)
	}
	return Signature{
		R: field.Secp256k1ScalarElt{}.FromBytes(b[0:32]),
		S: field.Secp256k1ScalarElt{}.FromBytes(b[32:64]),
	}, nil
}

// DerivePublicKey computes the public key corresponding to secretKey.
func DerivePublicKey(secretKey field.Secp256k1ScalarElt) curve.Point {
	return curve.Generator().ScalarMul(secretKey)
}

// conversionFunc is ECDSA's C(R): convert a curve point's X coordinate
// into a scalar-field element (r = R.x mod n).
func conversionFunc(p curve.Point) field.Secp256k1ScalarElt {
	x, _ := p.Affine()
	var zero field.Secp256k1ScalarElt
	return zero.FromBytes(x.Bytes())
}

// digestToScalar converts a hash digest into a scalar-field element,
// zero-padding on the left if the digest is shorter than a scalar.
func digestToScalar(digest Digest) field.Secp256k1ScalarElt {
	var zero field.Secp256k1ScalarElt
	size := zero.ByteSize()
	if len(digest) >= size {
		return zero.FromBytes(digest[:size])
	}
	buf := make([]byte, size)
	copy(buf, digest)
	return zero.FromBytes(buf)
}

// Sign produces an ECDSA signature of digest under secretKey, drawing the
// per-signature nonce from p.
func Sign(secretKey field.Secp256k1ScalarElt, digest Digest, p *prg.PRG) (Signature, error) {
	var zero field.Secp256k1ScalarElt
	k := zero.FromBytes(p.NextN(zero.ByteSize()))
	if k.IsZero() {
		return Signature{}, fmt.Errorf("drew zero nonce: %w", scerr.ErrInvalidInput)
	}
	R := curve.Generator().ScalarMul(k)
	r := conversionFunc(R)
	h := digestToScalar(digest)

	kInv, err := k.Inverse()
	if err != nil {
		return Signature{}, fmt.Errorf("inverting nonce: %w", err)
	}
	s := kInv.Mul(h.Add(secretKey.Mul(r)))
	return Signature{R: r, S: s}, nil
}

// Verify reports whether sig is a valid ECDSA signature of digest under
// publicKey.
func Verify(publicKey curve.Point, sig Signature, digest Digest) bool {
	if sig.S.IsZero() {
		return false
	}
	sInv, err := sig.S.Inverse()
	if err != nil {
		return false
	}
	h := digestToScalar(digest)
	R1 := curve.Generator().ScalarMul(h.Mul(sInv))
	R2 := publicKey.ScalarMul(sig.R.Mul(sInv))
	R := R1.Add(R2)
	if R.IsInfinity() {
		return false
	}
	return conversionFunc(R).Equal(sig.R)
}
